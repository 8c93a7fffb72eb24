package config

import "fmt"

// validate performs comprehensive validation on merged configuration.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return NewValidationError("server", "port",
			fmt.Errorf("%w: %d", ErrInvalidValue, cfg.Server.Port))
	}
	if cfg.DatabaseEnabled() {
		if cfg.Database.Host == "" {
			return NewValidationError("database", "host", ErrInvalidValue)
		}
		if cfg.Database.Database == "" {
			return NewValidationError("database", "database", ErrInvalidValue)
		}
	}
	if cfg.LLM.Model == "" {
		return NewValidationError("llm", "model", ErrInvalidValue)
	}
	if cfg.LLM.MaxTokens < 1 {
		return NewValidationError("llm", "max_tokens",
			fmt.Errorf("%w: %d", ErrInvalidValue, cfg.LLM.MaxTokens))
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 1 {
		return NewValidationError("llm", "temperature",
			fmt.Errorf("%w: %v", ErrInvalidValue, cfg.LLM.Temperature))
	}
	if cfg.Engine.PauseTTL <= 0 {
		return NewValidationError("engine", "pause_ttl", ErrInvalidValue)
	}
	if cfg.Engine.ChatDeadline <= 0 {
		return NewValidationError("engine", "chat_deadline", ErrInvalidValue)
	}
	if cfg.Engine.ExtractEvery < 1 {
		return NewValidationError("engine", "extract_every", ErrInvalidValue)
	}
	if cfg.Enforcement.MinHistory < 1 {
		return NewValidationError("enforcement", "min_history", ErrInvalidValue)
	}
	if cfg.Enforcement.MinSymptoms < 1 {
		return NewValidationError("enforcement", "min_symptoms", ErrInvalidValue)
	}
	if cfg.Cleanup.Interval <= 0 {
		return NewValidationError("cleanup", "interval", ErrInvalidValue)
	}
	if cfg.RateLimits.ChatBurst < 1 || cfg.RateLimits.ChatPerMinute < 1 ||
		cfg.RateLimits.StartPerMinute < 1 || cfg.RateLimits.PauseResumePerMinute < 1 {
		return NewValidationError("rate_limits", "*", ErrInvalidValue)
	}
	if cfg.Notify.WebhookURL != "" && cfg.Notify.Timeout <= 0 {
		return NewValidationError("notifications", "timeout", ErrInvalidValue)
	}
	return nil
}
