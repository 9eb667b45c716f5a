package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/axolotl.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend:    "file",
			Path:       "~/.axolotl/high_scores.json",
			SQLitePath: "~/.axolotl/scores.db",
			Redis: RedisConfig{
				Addr:    "localhost:6379",
				Key:     "axolotl:high_scores",
				Timeout: 3 * time.Second,
			},
		},
		Log: LogConfig{
			Level: "info",
		},
		Serve: ServeConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
