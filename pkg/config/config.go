package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pileup/pileup/pkg/steam"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:pileup.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Steam SteamConfig `yaml:"steam" json:"steam" jsonschema:"description=Steam Web API configuration"`

	Sync struct {
		Interval       time.Duration `yaml:"interval" json:"interval" jsonschema:"default=6h,description=Library sync interval"`
		DetectInterval time.Duration `yaml:"detect_interval" json:"detect_interval" jsonschema:"default=24h,description=Abandoned game detection interval"`
		AbandonAfter   time.Duration `yaml:"abandon_after" json:"abandon_after" jsonschema:"default=2160h,description=Inactivity period before a playing game counts as abandoned"`
	} `yaml:"sync" json:"sync" jsonschema:"description=Background sync configuration"`

	User struct {
		Name string `yaml:"name" json:"name" jsonschema:"description=Display name used in greetings and share cards"`
	} `yaml:"user" json:"user" jsonschema:"description=User profile"`
}

// SteamConfig holds Steam Web API credentials and tuning
type SteamConfig struct {
	APIKey  string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=Steam Web API key (can use environment variable)"`
	SteamID string        `yaml:"steam_id" json:"steam_id" jsonschema:"required,description=64-bit SteamID of the account to track"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:pileup.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for steam
	if cfg.Steam.Timeout == 0 {
		cfg.Steam.Timeout = 30 * time.Second
	}

	// set defaults for sync
	if cfg.Sync.Interval == 0 {
		cfg.Sync.Interval = 6 * time.Hour
	}
	if cfg.Sync.DetectInterval == 0 {
		cfg.Sync.DetectInterval = 24 * time.Hour
	}
	if cfg.Sync.AbandonAfter == 0 {
		cfg.Sync.AbandonAfter = 90 * 24 * time.Hour
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate steam config
	if cfg.Steam.APIKey == "" {
		return fmt.Errorf("steam.api_key is required")
	}
	if cfg.Steam.SteamID == "" {
		return fmt.Errorf("steam.steam_id is required")
	}
	if err := steam.ValidateSteamID(cfg.Steam.SteamID); err != nil {
		return fmt.Errorf("steam.steam_id: %w", err)
	}

	// validate sync config
	if cfg.Sync.Interval < time.Minute {
		return fmt.Errorf("sync.interval must be at least 1 minute")
	}
	if cfg.Sync.AbandonAfter < 24*time.Hour {
		return fmt.Errorf("sync.abandon_after must be at least 24 hours")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetUserName returns the configured display name
func (c *Config) GetUserName() string {
	return c.User.Name
}

// GetSteamConfig returns Steam API configuration
func (c *Config) GetSteamConfig() SteamConfig {
	return c.Steam
}
