package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *Config

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.intlmsg.yml upward search)
//  4. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}
	cfg := NewConfig()

	if opts.ExplicitPath != "" {
		explicitCfg, err := loadConfigFile(opts.ExplicitPath)
		if err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		cfg = merge(cfg, explicitCfg)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	} else {
		projectPath, err := FindProjectConfig(ctx, opts.WorkingDir)
		if err != nil {
			return nil, fmt.Errorf("discover project config: %w", err)
		}
		if projectPath != "" {
			projectCfg, err := loadConfigFile(projectPath)
			if err != nil {
				return nil, fmt.Errorf("load project config: %w", err)
			}
			cfg = merge(cfg, projectCfg)
			result.LoadedFrom = append(result.LoadedFrom, projectPath)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return cfg, nil
}

// validate rejects values no later stage could act on.
func validate(cfg *Config) error {
	switch cfg.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", cfg.Color)
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.Jobs < 0 {
		return fmt.Errorf("invalid jobs value %d (must be zero or positive)", cfg.Jobs)
	}

	return nil
}
