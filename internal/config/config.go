package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the generator configuration. Every field is optional;
// a missing configuration file yields Default().
type Config struct {
	Input      string        `yaml:"input"`                // JSON node document
	Output     string        `yaml:"output"`               // Directory receiving the generated pages
	Stylesheet string        `yaml:"stylesheet,omitempty"` // Stylesheet href embedded in every page
	ImageDir   string        `yaml:"image_dir,omitempty"`  // Prefix for node image sources
	Strict     bool          `yaml:"strict"`               // Reject derived file name collisions
	Markdown   bool          `yaml:"markdown"`             // Render descriptions as Markdown
	Logging    LoggingConfig `yaml:"logging"`
	Metrics    MetricsConfig `yaml:"metrics,omitempty"`
}

// MetricsConfig configures the optional Prometheus textfile written after a run.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Load loads configuration from the specified file. .env files in the working
// directory are loaded first so ${VAR} references in the YAML can use them.
// A missing file is not an error.
func Load(configPath string) (*Config, error) {
	if _, err := LoadEnvFiles(DefaultEnvFiles...); err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(configPath) // #nosec G304 -- path comes from the operator.
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	dec := yaml.NewDecoder(strings.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// Init creates a new configuration file holding the defaults.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := "# nodedocs configuration. Command line flags override these values.\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
