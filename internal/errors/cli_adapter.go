package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
		exit:    os.Exit,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if nde, ok := As(err); ok {
		return a.exitCodeFromNodeDocs(nde)
	}

	return 1
}

// exitCodeFromNodeDocs maps NodeDocsError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromNodeDocs(err *NodeDocsError) int {
	switch err.Category {
	case CategoryInput, CategoryValidation:
		return 2 // Invalid input
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryFileSystem:
		return 11 // Output error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if nde, ok := As(err); ok {
		return a.formatNodeDocs(nde)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatNodeDocs formats a NodeDocsError for display.
func (a *CLIErrorAdapter) formatNodeDocs(err *NodeDocsError) string {
	if a.verbose {
		return err.Error() + formatContext(err.Context)
	}

	msg := err.Message
	if err.Category != CategoryConfig && err.Category != CategoryValidation && err.Category != CategoryInput {
		msg = fmt.Sprintf("%s: %s", err.Category, err.Message)
	}
	if err.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, err.Cause)
	}
	return msg + formatContext(err.Context)
}

// formatContext renders context fields in stable key order.
func formatContext(fields ContextFields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	_, _ = fmt.Fprintf(a.out, "%s\n", message)
	a.exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if nde, ok := As(err); ok {
		return nde.Category == CategoryInternal || nde.Severity == SeverityFatal
	}

	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if nde, ok := As(err); ok {
		level := slogLevelFromSeverity(nde.Severity)
		attrs := []slog.Attr{
			slog.String("category", string(nde.Category)),
		}
		if nde.Cause != nil {
			attrs = append(attrs, slog.String("cause", nde.Cause.Error()))
		}

		a.logger.LogAttrs(context.Background(), level, nde.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

// slogLevelFromSeverity converts NodeDocsError severity to slog level.
func slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
