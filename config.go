package graphley

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "30s" or "250ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("graphley: invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds client configuration, loadable from a YAML file.
type Config struct {
	// URL is the base address of the graph database.
	URL string `yaml:"url" validate:"required,url"`
	// Version is the HTTP API version segment.
	Version string `yaml:"version" validate:"required"`
	// Timeout bounds each request.
	Timeout Duration `yaml:"timeout" validate:"gte=0"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		URL:     DefaultURL,
		Version: DefaultVersion,
		Timeout: Duration(defaultTimeout),
	}
}

// LoadConfig reads a YAML config file, filling unset fields from
// DefaultConfig and validating the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphley: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("graphley: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration fields.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("graphley: invalid config: %w", err)
	}
	return nil
}
