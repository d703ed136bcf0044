// Package config provides configuration loading and validation for chatlog.
package config

import "regexp"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Sources      []string     `yaml:"sources"`
	HeaderFormat HeaderConfig `yaml:"header_format"`
	Index        IndexConfig  `yaml:"index,omitempty"`
}

// HeaderConfig defines how entry header lines are recognized and split.
type HeaderConfig struct {
	// Pattern is a regex with four capture groups: date, time,
	// sender, and message, in that order.
	Pattern string `yaml:"pattern"`

	// Layout is the Go time layout for parsing the captured date and
	// time fields, joined by a space.
	// See https://pkg.go.dev/time#pkg-constants for format.
	Layout string `yaml:"layout"`

	// compiledPattern is the pre-compiled regex (populated during validation).
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled header regex.
func (h *HeaderConfig) CompiledPattern() *regexp.Regexp {
	return h.compiledPattern
}

// IndexConfig configures the optional SQLite search index.
type IndexConfig struct {
	// Path is the index database file. Empty disables indexing.
	Path string `yaml:"path,omitempty"`
}
