package config

const (
	DefaultConfigFile = "nodedocs.yaml"
	DefaultInput      = "docs/source/nodes.json"
	DefaultOutput     = "docs"
	DefaultStylesheet = "./style.css"
	DefaultImageDir   = "./svg"
)

// DefaultEnvFiles are tried in order by Load; the first one found wins.
var DefaultEnvFiles = []string{".env", ".env.local"}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Input:      DefaultInput,
		Output:     DefaultOutput,
		Stylesheet: DefaultStylesheet,
		ImageDir:   DefaultImageDir,
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}
}

// applyDefaults fills blanks left by a partial YAML document.
func applyDefaults(cfg *Config) {
	if cfg.Input == "" {
		cfg.Input = DefaultInput
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Stylesheet == "" {
		cfg.Stylesheet = DefaultStylesheet
	}
	if cfg.ImageDir == "" {
		cfg.ImageDir = DefaultImageDir
	}
	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
}
