// Package config loads and validates the intake service configuration from
// intake.yaml plus environment variables. Values merge over built-in
// defaults; anything left invalid after merging fails startup.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize and
// threaded through the application.
type Config struct {
	configDir string

	Server      *ServerConfig      `yaml:"server"`
	Database    *DatabaseConfig    `yaml:"database"`
	LLM         *LLMConfig         `yaml:"llm"`
	Engine      *EngineConfig      `yaml:"engine"`
	Enforcement *EnforcementConfig `yaml:"enforcement"`
	Cleanup     *CleanupConfig     `yaml:"cleanup"`
	RateLimits  *RateLimitConfig   `yaml:"rate_limits"`
	Notify      *NotifyConfig      `yaml:"notifications"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// AuthTokenEnv names the environment variable carrying the API bearer
	// token. An unset variable runs the server unauthenticated.
	AuthTokenEnv string `yaml:"auth_token_env"`
}

// DatabaseConfig holds PostgreSQL connection settings. Password normally
// arrives via the {{.INTAKE_DB_PASSWORD}} template in intake.yaml.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`

	// Enabled false runs the service on the in-memory store. Development
	// only; paused sessions do not survive a restart without a database.
	// Pointer so an explicit false survives the defaults merge.
	Enabled *bool `yaml:"enabled"`
}

// DatabaseEnabled reports whether the durable store should be used.
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Enabled == nil || *c.Database.Enabled
}

// LLMConfig holds the language-model provider settings.
type LLMConfig struct {
	// Model is the Anthropic model identifier.
	Model string `yaml:"model"`
	// APIKeyEnv names the environment variable carrying the API key.
	APIKeyEnv string `yaml:"api_key_env"`
	// MaxTokens bounds a single completion.
	MaxTokens int `yaml:"max_tokens"`
	// Temperature for conversational turns.
	Temperature float64 `yaml:"temperature"`
	// ExtractTemperature for structured extraction and report synthesis.
	ExtractTemperature float64 `yaml:"extract_temperature"`
}

// EngineConfig holds the conversation engine tunables.
type EngineConfig struct {
	// PauseTTL is how long a paused session stays resumable.
	PauseTTL time.Duration `yaml:"pause_ttl"`
	// ChatDeadline bounds one chat call wall-clock.
	ChatDeadline time.Duration `yaml:"chat_deadline"`
	// ExtractEvery is how many user turns pass between structured
	// extraction calls.
	ExtractEvery int `yaml:"extract_every"`
}

// EnforcementConfig holds the screener enforcement gate thresholds. These
// are clinical policy; change them with the clinical team, not casually.
type EnforcementConfig struct {
	MinHistory  int `yaml:"min_history"`
	MinSymptoms int `yaml:"min_symptoms"`
}

// CleanupConfig controls the background session sweeper.
type CleanupConfig struct {
	// Interval between sweeps.
	Interval time.Duration `yaml:"interval"`
	// EvictAfter is how long abandoned sessions stay cached. Rows are
	// never deleted from durable storage.
	EvictAfter time.Duration `yaml:"evict_after"`
}

// NotifyConfig controls escalation delivery to external channels.
type NotifyConfig struct {
	// WebhookURL receives one JSON POST per escalation notification.
	// Empty disables external delivery; notification rows still persist.
	WebhookURL string `yaml:"webhook_url"`
	// Timeout bounds one delivery attempt.
	Timeout time.Duration `yaml:"timeout"`
}

// RateLimitConfig holds per-remote-address request limits.
type RateLimitConfig struct {
	// ChatBurst is the short-window chat allowance (requests per 10s).
	ChatBurst int `yaml:"chat_burst"`
	// ChatPerMinute is the sustained chat rate.
	ChatPerMinute int `yaml:"chat_per_minute"`
	// StartPerMinute bounds session creation.
	StartPerMinute int `yaml:"start_per_minute"`
	// PauseResumePerMinute bounds pause and resume calls.
	PauseResumePerMinute int `yaml:"pause_resume_per_minute"`
}

// Defaults returns the built-in configuration. User YAML merges over it.
func Defaults() *Config {
	return &Config{
		Server: &ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			AuthTokenEnv: "INTAKE_API_TOKEN",
		},
		Database: &DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "intake",
			Database: "intake",
			SSLMode:  "disable",
		},
		LLM: &LLMConfig{
			Model:              "claude-sonnet-4-20250514",
			APIKeyEnv:          "ANTHROPIC_API_KEY",
			MaxTokens:          1024,
			Temperature:        0.7,
			ExtractTemperature: 0.1,
		},
		Engine: &EngineConfig{
			PauseTTL:     24 * time.Hour,
			ChatDeadline: 60 * time.Second,
			ExtractEvery: 3,
		},
		Enforcement: &EnforcementConfig{
			MinHistory:  25,
			MinSymptoms: 5,
		},
		Cleanup: &CleanupConfig{
			Interval:   time.Hour,
			EvictAfter: 48 * time.Hour,
		},
		RateLimits: &RateLimitConfig{
			ChatBurst:            15,
			ChatPerMinute:        60,
			StartPerMinute:       10,
			PauseResumePerMinute: 20,
		},
		Notify: &NotifyConfig{
			Timeout: 10 * time.Second,
		},
	}
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}
