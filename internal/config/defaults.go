package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded fallback configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			TickRate: 30,
		},
		Game: GameConfig{
			Seed: 0,
		},
		Storage: StorageConfig{
			DBPath: "~/.flappy/scores.db",
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 2222,
			// KeyPath empty: the server auto-generates a host key.
			KeyPath: "",
		},
	}
}
