package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/nodedocs/internal/config"
	derrors "git.home.luguber.info/inful/nodedocs/internal/errors"
	"git.home.luguber.info/inful/nodedocs/internal/logfields"
	"git.home.luguber.info/inful/nodedocs/internal/metrics"
	"git.home.luguber.info/inful/nodedocs/internal/nodes"
	"git.home.luguber.info/inful/nodedocs/internal/observability"
	"git.home.luguber.info/inful/nodedocs/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Input       string `short:"i" help:"JSON node document (default docs/source/nodes.json)" type:"path"`
	Output      string `short:"o" help:"Output directory for generated pages (default docs)" type:"path"`
	Strict      bool   `help:"Fail when two nodes derive the same file name instead of overwriting"`
	Markdown    bool   `help:"Render node descriptions as Markdown"`
	DryRun      bool   `name:"dry-run" help:"Render every page in memory and report it without writing"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus run metrics to this textfile" type:"path"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return derrors.ConfigUnreadable(root.Config, err)
	}
	b.apply(cfg)
	configureLogging(cfg, root.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = RunBuild(ctx, cfg, b.DryRun, os.Stdout)
	return err
}

// apply layers explicitly set flags over the loaded configuration.
func (b *BuildCmd) apply(cfg *config.Config) {
	if b.Input != "" {
		cfg.Input = b.Input
	}
	if b.Output != "" {
		cfg.Output = b.Output
	}
	if b.MetricsFile != "" {
		cfg.Metrics.Textfile = b.MetricsFile
	}
	cfg.Strict = cfg.Strict || b.Strict
	cfg.Markdown = cfg.Markdown || b.Markdown
}

// RunBuild performs one generator pass: ensure the output directory, load the
// node document, then render and write every page, reporting each file on out.
func RunBuild(ctx context.Context, cfg *config.Config, dryRun bool, out io.Writer) (*site.Result, error) {
	ctx = observability.NewRun(ctx)
	start := time.Now()
	observability.InfoContext(ctx, "Starting node page generation",
		logfields.Input(cfg.Input), logfields.OutputDir(cfg.Output), slog.Bool("dry_run", dryRun))

	var fs billy.Filesystem
	if dryRun {
		fs = memfs.New()
	} else {
		var err error
		if fs, err = site.EnsureOutputDir(cfg.Output); err != nil {
			return nil, err
		}
	}

	ctx = observability.WithStage(ctx, "load")
	list, err := nodes.Load(cfg.Input)
	if err != nil {
		return nil, err
	}
	observability.DebugContext(ctx, "Node document loaded", logfields.Count(len(list)))

	var (
		recorder metrics.Recorder = metrics.NoopRecorder{}
		registry *prom.Registry
	)
	if cfg.Metrics.Textfile != "" {
		registry = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	opts := []site.Option{
		site.WithReport(out),
		site.WithRecorder(recorder),
		site.WithStrict(cfg.Strict),
		site.WithLayout(site.Layout{Stylesheet: cfg.Stylesheet, ImageDir: cfg.ImageDir}),
	}
	if cfg.Markdown {
		opts = append(opts, site.WithDescriber(site.MarkdownDescriber()))
	}

	ctx = observability.WithStage(ctx, "generate")
	res, err := site.NewGenerator(fs, opts...).Generate(ctx, list)

	if registry != nil {
		if werr := metrics.WriteTextfile(cfg.Metrics.Textfile, registry); werr != nil {
			if err == nil {
				return res, derrors.WriteFailed(cfg.Metrics.Textfile, werr)
			}
			observability.WarnContext(ctx, "Failed to write metrics textfile", logfields.Error(werr))
		}
	}
	if err != nil {
		return res, err
	}

	observability.InfoContext(ctx, "Node pages generated",
		logfields.Count(len(res.Files)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return res, nil
}
