package config

import "os"

// Default values for configuration.
const (
	DefaultHeaderPattern = `^\[(\d{2}\.\d{2}\.\d{2}), (\d{2}:\d{2}:\d{2})\] ([^:]+): (.+)$`
	DefaultHeaderLayout  = "02.01.06 15:04:05"
)

// Environment variable names.
const (
	EnvHeaderLayout = "CHATLOG_HEADER_LAYOUT"
	EnvIndexPath    = "CHATLOG_INDEX_PATH"
)

// DefaultConfig returns a configuration matching the fixed export
// line format.
func DefaultConfig() *Config {
	return &Config{
		Sources: []string{},
		HeaderFormat: HeaderConfig{
			Pattern: DefaultHeaderPattern,
			Layout:  DefaultHeaderLayout,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	// Override header layout from environment if set
	if layout := os.Getenv(EnvHeaderLayout); layout != "" {
		c.HeaderFormat.Layout = layout
	}

	// Override index path from environment if set
	if path := os.Getenv(EnvIndexPath); path != "" {
		c.Index.Path = path
	}
}
