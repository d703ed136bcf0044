package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and compiles the header pattern.
func Validate(cfg *Config) error {
	if len(cfg.Sources) == 0 {
		return errors.New("sources: at least one chat export is required")
	}

	if err := validateHeaderFormat(&cfg.HeaderFormat); err != nil {
		return fmt.Errorf("header_format: %w", err)
	}

	return nil
}

func validateHeaderFormat(h *HeaderConfig) error {
	if h.Pattern == "" {
		return errors.New("pattern is required")
	}

	re, err := regexp.Compile(h.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	if re.NumSubexp() < 4 {
		return errors.New("pattern must have four capture groups: date, time, sender, message")
	}

	h.compiledPattern = re

	if h.Layout == "" {
		return errors.New("layout is required")
	}

	return nil
}
