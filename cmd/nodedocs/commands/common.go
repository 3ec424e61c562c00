package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/nodedocs/internal/config"
	"git.home.luguber.info/inful/nodedocs/internal/observability"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (optional)" default:"nodedocs.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" default:"1" help:"Generate one HTML page per node (default command)"`
	Init  InitCmd  `cmd:"" help:"Write a configuration file holding the defaults"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(observability.NewLogger(os.Stderr, level, string(config.LogFormatText)))
	return nil
}

// configureLogging re-initializes the default logger once the configuration
// file is known. --verbose always wins over the configured level.
func configureLogging(cfg *config.Config, verbose bool) {
	level := observability.ParseLevel(string(cfg.Logging.Level))
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(observability.NewLogger(os.Stderr, level, string(cfg.Logging.Format)))
}
