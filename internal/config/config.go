// Package config provides YAML-based configuration loading for the
// leaderboard store, logging, and the SSH scoreboard server.
package config

import (
	"time"

	"github.com/vovakirdan/axolotl-dash/internal/storage"
)

// Config contains all configuration for Axolotl Dash.
type Config struct {
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`
	Serve ServeConfig `yaml:"serve"`
}

// StoreConfig selects where the high-score ranking is persisted.
type StoreConfig struct {
	Backend    string      `yaml:"backend"`     // "file", "sqlite", or "redis"
	Path       string      `yaml:"path"`        // JSON file for the file backend
	SQLitePath string      `yaml:"sqlite_path"` // Database for the sqlite backend
	Redis      RedisConfig `yaml:"redis"`
}

// RedisConfig defines the Redis connection for the redis backend.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Key      string        `yaml:"key"`
	Timeout  time.Duration `yaml:"timeout"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ServeConfig defines the SSH scoreboard server.
type ServeConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"` // Auto-generated under ~/.axolotl when empty
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// StorageOptions converts the store section into storage.Open options.
func (c StoreConfig) StorageOptions() storage.Options {
	return storage.Options{
		Backend:    c.Backend,
		Path:       c.Path,
		SQLitePath: c.SQLitePath,
		Redis: storage.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Key:      c.Redis.Key,
			Timeout:  c.Redis.Timeout,
		},
	}
}
