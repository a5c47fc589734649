package config

import (
	_ "embed"

	"github.com/vovakirdan/pong-engine/internal/games/pong"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultConfig returns the hard-coded default configuration.
func DefaultConfig() Config {
	return Config{
		Runtime: RuntimeConfig{
			Seed:        0,
			TickDelayMs: pong.TickDelay,
		},
		Storage: StorageConfig{
			DBPath: "~/.pong/checkpoints.db",
		},
		Log: LogConfig{
			Level:      "info",
			Prefix:     "pong",
			Timestamps: true,
		},
		Simulate: SimulateConfig{
			Sessions: 8,
			Ticks:    6000,
			Workers:  4,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
