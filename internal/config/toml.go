// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/textlens/internal/model"
)

// Defaults for settings that may come from flags or the config file.
const (
	DefaultReadabilityDelay = 800 * time.Millisecond
	DefaultCloudLimit       = 30
	DefaultCharLimit        = 6
	DefaultWorkers          = 0
	DefaultFormat           = "text"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Batch    BatchConfig    `toml:"batch"`
}

// AnalysisConfig maps display and readability settings.
type AnalysisConfig struct {
	ReadabilityDelay *string `toml:"readability-delay"`
	CloudLimit       *int    `toml:"cloud-limit"`
	CharLimit        *int    `toml:"char-limit"`
}

// BatchConfig maps settings of the analyze command.
type BatchConfig struct {
	Workers *int    `toml:"workers"`
	Format  *string `toml:"format"`
}

// Defaults returns the built-in configuration.
func Defaults() model.Config {
	return model.Config{
		ReadabilityDelay: DefaultReadabilityDelay,
		CloudLimit:       DefaultCloudLimit,
		CharLimit:        DefaultCharLimit,
		Workers:          DefaultWorkers,
		Format:           DefaultFormat,
	}
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if cfg.Analysis.ReadabilityDelay != nil {
		if _, err := time.ParseDuration(*cfg.Analysis.ReadabilityDelay); err != nil {
			return FileConfig{}, fmt.Errorf("invalid readability-delay: %w", err)
		}
	}
	return cfg, nil
}

// Delay returns the parsed readability delay, or nil when unset.
func (a AnalysisConfig) Delay() *time.Duration {
	if a.ReadabilityDelay == nil {
		return nil
	}
	d, err := time.ParseDuration(*a.ReadabilityDelay)
	if err != nil {
		return nil
	}
	return &d
}

// Template returns a commented config file with the built-in defaults.
func Template() string {
	return fmt.Sprintf(`# textlens configuration
# Uncomment a value to enable it. CLI flags override config values.

[analysis]
# readability-delay = %q   # Simulated processing time of the readability analysis
# cloud-limit = %d           # Words shown in the word cloud (1-50)
# char-limit = %d             # Characters shown in the frequency table (1-15)

[batch]
# workers = %d                # Concurrent files for analyze (0 = number of CPUs)
# format = %q            # Output format: text, json, yaml
`,
		DefaultReadabilityDelay.String(),
		DefaultCloudLimit,
		DefaultCharLimit,
		DefaultWorkers,
		DefaultFormat,
	)
}
