package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultPath = "config.yaml"

type Config struct {
	Draw      DrawConfig      `yaml:"draw"`
	Input     InputConfig     `yaml:"input"`
	Generator GeneratorConfig `yaml:"generator"`
}

type DrawConfig struct {
	Format string `yaml:"format"`
}

type InputConfig struct {
	Repository string `yaml:"repository"`
	// Delimiters maps a file suffix (".csv") to its single-character delimiter.
	Delimiters map[string]string `yaml:"delimiters"`
	Progress   bool              `yaml:"progress"`
}

type GeneratorConfig struct {
	// MaxAttempts caps rejection sampling; 0 retries until an unseen draw appears.
	MaxAttempts int   `yaml:"max_attempts"`
	Seed        int64 `yaml:"seed"`
}

func defaults() Config {
	return Config{
		Draw: DrawConfig{Format: "5_boules"},
		Input: InputConfig{
			Delimiters: map[string]string{".csv": ";"},
		},
	}
}

// Load reads the YAML config at path. An empty path falls back to
// ./config.yaml, which may be absent.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	if cfg.Draw.Format == "" {
		cfg.Draw.Format = "5_boules"
	}
	if cfg.Generator.MaxAttempts < 0 {
		cfg.Generator.MaxAttempts = 0
	}
	for suffix, delim := range cfg.Input.Delimiters {
		if len([]rune(delim)) != 1 {
			return nil, fmt.Errorf("delimiter for %s must be a single character, got %q", suffix, delim)
		}
		if !strings.HasPrefix(suffix, ".") {
			return nil, fmt.Errorf("suffix %q must start with '.'", suffix)
		}
	}

	return &cfg, nil
}
