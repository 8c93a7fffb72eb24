package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, merges, validates, and returns ready-to-use
// configuration. A missing intake.yaml is not an error; the defaults run a
// development instance against localhost.
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized",
		"server_port", cfg.Server.Port,
		"database_enabled", cfg.DatabaseEnabled(),
		"llm_model", cfg.LLM.Model)
	return cfg, nil
}

func load(configDir string) (*Config, error) {
	cfg := Defaults()
	cfg.configDir = configDir

	user, err := loadYAML(filepath.Join(configDir, "intake.yaml"))
	if err != nil {
		return nil, NewLoadError("intake.yaml", err)
	}
	if user == nil {
		return cfg, nil
	}

	// Non-zero user values override defaults section by section; unset
	// fields keep the built-in value.
	if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merging configuration: %w", err)
	}
	return cfg, nil
}

// loadYAML reads and parses one configuration file. Returns nil without
// error when the file does not exist.
func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Info("No configuration file found, using defaults", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// Expand {{.VAR}} environment templates before parsing.
	data = ExpandEnv(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}
