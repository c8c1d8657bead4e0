package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	for _, key := range []string{EnvLatitude, EnvLongitude, EnvSeed, EnvLogLevel} {
		t.Setenv(key, "")
	}

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.InDelta(t, 52.3740, cfg.Latitude, 1e-9)
	assert.InDelta(t, 4.9010, cfg.Longitude, 1e-9)
	assert.False(t, cfg.SeedSet)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvLatitude, "-33.8688")
	t.Setenv(EnvLongitude, "151.2093")
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.InDelta(t, -33.8688, cfg.Latitude, 1e-9)
	assert.InDelta(t, 151.2093, cfg.Longitude, 1e-9)
	assert.True(t, cfg.SeedSet)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFromEnvRejectsBadSeed(t *testing.T) {
	t.Setenv(EnvSeed, "not-a-number")
	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestValidateRejectsOutOfRangeCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
	}{
		{"latitude too high", 91, 0},
		{"latitude too low", -91, 0},
		{"longitude too high", 0, 181},
		{"longitude too low", 0, -181},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Latitude: tc.lat, Longitude: tc.lng, LogLevel: "info"}
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := Config{LogLevel: "trace"}
	assert.Error(t, cfg.Validate())
}
