// Package config provides YAML-based configuration loading for the pong
// engine host.
package config

import (
	"time"

	"github.com/vovakirdan/pong-engine/internal/core"
)

// Config contains all host configuration.
type Config struct {
	Runtime  RuntimeConfig  `yaml:"runtime"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
	Simulate SimulateConfig `yaml:"simulate"`
}

// RuntimeConfig defines how sessions are seeded and paced.
type RuntimeConfig struct {
	Seed        int64 `yaml:"seed"`          // 0 = random based on time
	TickDelayMs int   `yaml:"tick_delay_ms"` // Milliseconds between ticks
}

// StorageConfig defines where checkpoints are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	Prefix     string `yaml:"prefix"`
	Timestamps bool   `yaml:"timestamps"`
}

// SimulateConfig defines defaults for batch simulation.
type SimulateConfig struct {
	Sessions int `yaml:"sessions"`
	Ticks    int `yaml:"ticks"`
	Workers  int `yaml:"workers"`
}

// RuntimeConfig converts the runtime section to the core representation.
func (c Config) RuntimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = c.Runtime.Seed
	if c.Runtime.TickDelayMs > 0 {
		rc.TickDelay = time.Duration(c.Runtime.TickDelayMs) * time.Millisecond
	}
	return rc
}
