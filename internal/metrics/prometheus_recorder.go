package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	pagesWritten   prom.Counter
	collisions     prom.Counter
	renderDuration prom.Histogram
	runDuration    prom.Histogram
	runOutcome     *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the generator metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		pagesWritten: prom.NewCounter(prom.CounterOpts{
			Namespace: "nodedocs",
			Name:      "pages_written_total",
			Help:      "Node pages written to the output directory",
		}),
		collisions: prom.NewCounter(prom.CounterOpts{
			Namespace: "nodedocs",
			Name:      "filename_collisions_total",
			Help:      "Derived file names shared by more than one node",
		}),
		renderDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "nodedocs",
			Name:      "page_render_duration_seconds",
			Help:      "Duration of rendering a single node page",
			Buckets:   prom.ExponentialBuckets(0.00001, 4, 8),
		}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "nodedocs",
			Name:      "run_duration_seconds",
			Help:      "Total generator run duration",
			Buckets:   prom.DefBuckets,
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "nodedocs",
			Name:      "run_outcomes_total",
			Help:      "Generator runs by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.pagesWritten, pr.collisions, pr.renderDuration, pr.runDuration, pr.runOutcome)
	return pr
}

func (p *PrometheusRecorder) IncPagesWritten() {
	if p == nil {
		return
	}
	p.pagesWritten.Inc()
}

func (p *PrometheusRecorder) IncCollisions(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.collisions.Add(float64(n))
}

func (p *PrometheusRecorder) ObserveRenderDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.renderDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
}

// WriteTextfile writes every metric gathered from g to path in the text
// exposition format, replacing the file atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
