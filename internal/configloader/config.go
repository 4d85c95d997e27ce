// Package configloader provides configuration loading and resolution.
// It discovers a project config file by searching upward from the working
// directory and merges it over built-in defaults.
package configloader

// Config holds the tool configuration.
type Config struct {
	// Paths are the default paths to process when none are given on the
	// command line.
	Paths []string `yaml:"paths,omitempty"`

	// Jobs is the worker pool size. 0 means one worker per CPU.
	Jobs int `yaml:"jobs,omitempty"`

	// Color controls colored output: "auto", "always", or "never".
	Color string `yaml:"color,omitempty"`

	// LogLevel sets the logging verbosity: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level,omitempty"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Color:    "auto",
		LogLevel: "info",
	}
}

// merge overlays non-zero fields of overlay onto base and returns base.
func merge(base, overlay *Config) *Config {
	if overlay == nil {
		return base
	}
	if len(overlay.Paths) > 0 {
		base.Paths = overlay.Paths
	}
	if overlay.Jobs != 0 {
		base.Jobs = overlay.Jobs
	}
	if overlay.Color != "" {
		base.Color = overlay.Color
	}
	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}
	return base
}
