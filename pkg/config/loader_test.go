package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "intake.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitializeDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Engine.PauseTTL)
	assert.Equal(t, 25, cfg.Enforcement.MinHistory)
	assert.Equal(t, 5, cfg.Enforcement.MinSymptoms)
	assert.Equal(t, 15, cfg.RateLimits.ChatBurst)
	assert.True(t, cfg.DatabaseEnabled())
}

func TestInitializeMergesUserYAML(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9090
engine:
  extract_every: 5
enforcement:
  min_history: 30
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Engine.ExtractEvery)
	assert.Equal(t, 30, cfg.Enforcement.MinHistory)
	// Unset fields keep built-in defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 60*time.Second, cfg.Engine.ChatDeadline)
	assert.Equal(t, 5, cfg.Enforcement.MinSymptoms)
}

func TestInitializeExpandsEnvTemplates(t *testing.T) {
	t.Setenv("INTAKE_TEST_DB_PASSWORD", "s3cret$pass")
	dir := writeConfig(t, `
database:
  password: "{{.INTAKE_TEST_DB_PASSWORD}}"
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "s3cret$pass", cfg.Database.Password)
}

func TestDatabaseCanBeDisabled(t *testing.T) {
	dir := writeConfig(t, `
database:
  enabled: false
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.False(t, cfg.DatabaseEnabled())
}

func TestInitializeRejectsInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "server: [not a mapping")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		section string
	}{
		{"bad port", func(c *Config) { c.Server.Port = -1 }, "server"},
		{"empty model", func(c *Config) { c.LLM.Model = "" }, "llm"},
		{"bad temperature", func(c *Config) { c.LLM.Temperature = 3.0 }, "llm"},
		{"zero pause ttl", func(c *Config) { c.Engine.PauseTTL = 0 }, "engine"},
		{"zero min history", func(c *Config) { c.Enforcement.MinHistory = 0 }, "enforcement"},
		{"zero rate limit", func(c *Config) { c.RateLimits.ChatBurst = 0 }, "rate_limits"},
		{"webhook without timeout", func(c *Config) {
			c.Notify.WebhookURL = "https://pager.example/hook"
			c.Notify.Timeout = 0
		}, "notifications"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(cfg)
			err := validate(cfg)
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.section, verr.Section)
		})
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, validate(Defaults()))
	})
}
