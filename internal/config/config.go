// Package config loads demo configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvLatitude  = "POGO_LATITUDE"
	EnvLongitude = "POGO_LONGITUDE"
	EnvSeed      = "POGO_SEED"
	EnvLogLevel  = "POGO_LOG_LEVEL"

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Config holds runtime configuration for the demo binary.
type Config struct {
	Latitude  float64
	Longitude float64
	// Seed pins the session randomness when SeedSet is true; otherwise the
	// session is seeded from the OS CSPRNG.
	Seed     int64
	SeedSet  bool
	LogLevel string
}

// LoadFromEnv loads and validates configuration from environment variables.
func LoadFromEnv() (Config, error) {
	cfg := Config{
		Latitude:  floatEnvOrDefault(EnvLatitude, 52.3740),
		Longitude: floatEnvOrDefault(EnvLongitude, 4.9010),
		LogLevel:  envOrDefault(EnvLogLevel, "info"),
	}

	if raw := strings.TrimSpace(os.Getenv(EnvSeed)); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
		cfg.SeedSet = true
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is coherent.
func (c Config) Validate() error {
	if c.Latitude < MinLatitude || c.Latitude > MaxLatitude {
		return fmt.Errorf("invalid %s: must be in range %v..%v", EnvLatitude, MinLatitude, MaxLatitude)
	}
	if c.Longitude < MinLongitude || c.Longitude > MaxLongitude {
		return fmt.Errorf("invalid %s: must be in range %v..%v", EnvLongitude, MinLongitude, MaxLongitude)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid %s: must be one of debug, info, warn, error", EnvLogLevel)
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func floatEnvOrDefault(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
