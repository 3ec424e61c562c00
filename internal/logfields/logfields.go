package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run.id"
	KeyStage      = "stage"
	KeyNode       = "node"
	KeyFile       = "file"
	KeyInput      = "input"
	KeyOutputDir  = "output_dir"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Node(name string) slog.Attr      { return slog.String(KeyNode, name) }
func File(name string) slog.Attr      { return slog.String(KeyFile, name) }
func Input(path string) slog.Attr     { return slog.String(KeyInput, path) }
func OutputDir(dir string) slog.Attr  { return slog.String(KeyOutputDir, dir) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
