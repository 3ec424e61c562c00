package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncPagesWritten()
	pr.IncPagesWritten()
	pr.IncCollisions(1)
	pr.IncCollisions(0)
	pr.ObserveRenderDuration(150 * time.Microsecond)
	pr.ObserveRunDuration(5 * time.Millisecond)
	pr.IncRunOutcome(OutcomeSuccess)

	require.InDelta(t, 2, testutil.ToFloat64(pr.pagesWritten), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.collisions), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.runOutcome.WithLabelValues("success")), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 5)
}

func TestPrometheusRecorderNilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncPagesWritten()
	pr.IncCollisions(3)
	pr.ObserveRenderDuration(time.Millisecond)
	pr.ObserveRunDuration(time.Millisecond)
	pr.IncRunOutcome(OutcomeFailed)
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncPagesWritten()
	pr.IncRunOutcome(OutcomeSuccess)

	path := filepath.Join(t.TempDir(), "nodedocs.prom")
	require.NoError(t, WriteTextfile(path, reg))

	// #nosec G304 -- path is controlled by test.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.True(t, strings.Contains(text, "nodedocs_pages_written_total 1"), text)
	require.True(t, strings.Contains(text, `nodedocs_run_outcomes_total{outcome="success"} 1`), text)
}

func TestWriteTextfileBadDir(t *testing.T) {
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), prom.NewRegistry())
	require.Error(t, err)
}
