package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "https://ufoodapi.herokuapp.com", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.Equal(t, "~/.ufood", c.DataDir)
	assert.Equal(t, "ufood.db", c.DatabasePath)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Zero(t, c.RateLimit)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		mutate      func(c *Config)
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://localhost:3000", "-t", "3s", "-d", "/tmp/x.db", "-l", "debug", "-r", "2.5"},
			mutate: func(c *Config) {
				c.APIBaseURL = "http://localhost:3000"
				c.RequestTimeout = 3 * time.Second
				c.DatabasePath = "/tmp/x.db"
				c.LogLevel = "debug"
				c.RateLimit = 2.5
			},
		},
		{
			name:   "unknown flags ignored",
			args:   []string{"-c", "cfg.json", "-z", "1", "-l", "error"},
			mutate: func(c *Config) { c.LogLevel = "error" },
		},
		{
			name:        "bad duration",
			args:        []string{"-t", "soon"},
			expectPanic: true,
		},
		{
			name:        "bad rate",
			args:        []string{"-r", "fast"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			want := defaults()
			tt.mutate(want)
			if diff := cmp.Diff(want, cfg); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseJson(t *testing.T) {
	t.Run("overlays present keys only", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"api_base_url":    "http://api.local",
			"request_timeout": "2s",
			"token_ttl":       int64(time.Hour),
			"rate_limit":      0,
		})

		cfg := defaults()
		cfg.RateLimit = 9
		parseJson(cfg, []string{"-config", path})

		want := defaults()
		want.APIBaseURL = "http://api.local"
		want.RequestTimeout = 2 * time.Second
		want.TokenTTL = time.Hour
		want.RateLimit = 0
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Fatalf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no -c flag leaves config alone", func(t *testing.T) {
		cfg := defaults()
		parseJson(cfg, []string{"-a", "x"})
		assert.Empty(t, cmp.Diff(defaults(), cfg))
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(defaults(), []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(defaults(), []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"api_base_url": "http://from-json",
		"log_level":    "info",
		"data_dir":     "/var/lib/ufood",
	})

	cfg := loadConfig([]string{"-c", path, "-a", "http://from-flag"})

	assert.Equal(t, "http://from-flag", cfg.APIBaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/var/lib/ufood", cfg.DataDir)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
