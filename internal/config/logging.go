package config

import "strings"

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// NormalizeLogLevel maps raw input onto a LogLevel, defaulting to info.
func NormalizeLogLevel(raw string) LogLevel {
	switch l := LogLevel(strings.ToLower(strings.TrimSpace(raw))); l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return l
	default:
		return LogLevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// NormalizeLogFormat maps raw input onto a LogFormat, defaulting to text.
func NormalizeLogFormat(raw string) LogFormat {
	if LogFormat(strings.ToLower(strings.TrimSpace(raw))) == LogFormatJSON {
		return LogFormatJSON
	}
	return LogFormatText
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}
