// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port            string
	GinMode         string
	AssetsDir       string
	ContactAddress  string // overrides the address in the content file when set
	TitleInterval   time.Duration
	ShutdownTimeout time.Duration
	IPHashSalt      string // random per process when empty
	Log             LogConfig
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load reads a .env file if one exists, then the environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	interval, err := getEnvDuration("TITLE_INTERVAL", 3*time.Second)
	if err != nil {
		return nil, err
	}
	shutdown, err := getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "release"),
		AssetsDir:       getEnv("ASSETS_DIR", "./public"),
		ContactAddress:  getEnv("CONTACT_ADDRESS", ""),
		TitleInterval:   interval,
		ShutdownTimeout: shutdown,
		IPHashSalt:      getEnv("IP_HASH_SALT", ""),
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.TitleInterval <= 0 {
		return fmt.Errorf("TITLE_INTERVAL must be > 0")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// IsDevelopment returns true when gin runs in debug mode.
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
