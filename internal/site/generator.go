// Package site renders node descriptions into static HTML pages: one page per
// node plus a sidebar linking every page, written in a single sequential pass.
package site

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	derrors "git.home.luguber.info/inful/nodedocs/internal/errors"
	"git.home.luguber.info/inful/nodedocs/internal/logfields"
	"git.home.luguber.info/inful/nodedocs/internal/metrics"
	"git.home.luguber.info/inful/nodedocs/internal/nodes"
	"git.home.luguber.info/inful/nodedocs/internal/observability"
)

// Generator writes node pages into a filesystem rooted at the output directory.
type Generator struct {
	fs       billy.Filesystem
	report   io.Writer
	recorder metrics.Recorder
	layout   Layout
	describe Describer
	strict   bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithReport sets where the per-file progress lines go (default io.Discard).
func WithReport(w io.Writer) Option { return func(g *Generator) { g.report = w } }

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option { return func(g *Generator) { g.recorder = r } }

// WithLayout overrides the stylesheet and image references.
func WithLayout(l Layout) Option { return func(g *Generator) { g.layout = l } }

// WithDescriber overrides how descriptions are rendered.
func WithDescriber(d Describer) Option { return func(g *Generator) { g.describe = d } }

// WithStrict makes derived file name collisions fatal.
func WithStrict(strict bool) Option { return func(g *Generator) { g.strict = strict } }

// NewGenerator returns a Generator writing into fs.
func NewGenerator(fs billy.Filesystem, opts ...Option) *Generator {
	g := &Generator{
		fs:       fs,
		report:   io.Discard,
		recorder: metrics.NoopRecorder{},
		layout:   DefaultLayout,
		describe: ParagraphDescriber,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// EnsureOutputDir creates dir if absent and returns a filesystem rooted there.
func EnsureOutputDir(dir string) (billy.Filesystem, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, derrors.OutputDirError(dir, err)
	}
	return osfs.New(dir), nil
}

// Collision is a derived file name shared by several nodes, in input order.
type Collision struct {
	FileName string
	Names    []string
}

// CheckCollisions returns every derived file name produced by more than one
// node, ordered by first occurrence.
func CheckCollisions(list []nodes.NodeDescription) []Collision {
	byFile := make(map[string][]string, len(list))
	var order []string
	for _, n := range list {
		fn := n.FileName()
		if _, seen := byFile[fn]; !seen {
			order = append(order, fn)
		}
		byFile[fn] = append(byFile[fn], n.Name)
	}

	var out []Collision
	for _, fn := range order {
		if names := byFile[fn]; len(names) > 1 {
			out = append(out, Collision{FileName: fn, Names: names})
		}
	}
	return out
}

// Result summarizes a generator run.
type Result struct {
	Files      []string // file names in write order; repeats when collisions overwrite
	Collisions []Collision
}

// Generate renders and writes one page per node, in input order. Cancellation
// is honoured between pages.
func (g *Generator) Generate(ctx context.Context, list []nodes.NodeDescription) (res *Result, err error) {
	start := time.Now()
	defer func() {
		g.recorder.ObserveRunDuration(time.Since(start))
		switch {
		case err == nil:
			g.recorder.IncRunOutcome(metrics.OutcomeSuccess)
		case ctx.Err() != nil:
			g.recorder.IncRunOutcome(metrics.OutcomeCanceled)
		default:
			g.recorder.IncRunOutcome(metrics.OutcomeFailed)
		}
	}()

	res = &Result{Files: make([]string, 0, len(list))}
	res.Collisions = CheckCollisions(list)
	if len(res.Collisions) > 0 {
		g.recorder.IncCollisions(len(res.Collisions))
		if g.strict {
			c := res.Collisions[0]
			return res, derrors.FilenameCollision(c.FileName, c.Names).
				WithContext("collisions", len(res.Collisions))
		}
		for _, c := range res.Collisions {
			observability.WarnContext(ctx, "Nodes share a file name; later pages overwrite earlier ones",
				logfields.File(c.FileName), slog.Any("nodes", c.Names))
		}
	}

	sidebar := Sidebar(list)
	for i, n := range list {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("generation interrupted after %d of %d pages: %w", i, len(list), err)
		}

		renderStart := time.Now()
		page, err := RenderPage(n, sidebar, g.layout, g.describe)
		if err != nil {
			return res, derrors.InternalError("page render failed", err).WithContext("node", n.Name)
		}
		g.recorder.ObserveRenderDuration(time.Since(renderStart))

		fileName, err := g.WritePage(n, page)
		if err != nil {
			return res, err
		}
		res.Files = append(res.Files, fileName)
		g.recorder.IncPagesWritten()

		_, _ = fmt.Fprintf(g.report, "- %s\n", fileName)
		observability.DebugContext(ctx, "Page written", logfields.Node(n.Name), logfields.File(fileName))
	}
	return res, nil
}

// WritePage writes a rendered page under the node's derived file name,
// replacing any existing file.
func (g *Generator) WritePage(n nodes.NodeDescription, page string) (string, error) {
	fileName := n.FileName()
	if err := util.WriteFile(g.fs, fileName, []byte(page), 0o644); err != nil {
		return fileName, derrors.WriteFailed(fileName, err)
	}
	return fileName, nil
}
