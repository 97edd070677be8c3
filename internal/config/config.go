// Package config provides YAML-based configuration loading for the
// flappy arcade binary.
package config

// Config holds every tunable the binary reads at startup.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// DisplayConfig defines the terminal presentation parameters.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation steps per second
}

// GameConfig defines per-run game parameters.
type GameConfig struct {
	// Seed for obstacle placement. 0 means seed from the clock.
	Seed int64 `yaml:"seed"`
}

// StorageConfig defines where scores are persisted.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server listen address.
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	KeyPath string `yaml:"key_path"`
}
