// Intake service: patient-facing conversation API, background session
// sweeper, and the intake engine over PostgreSQL or an in-memory store.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/joho/godotenv"

	"github.com/meridianhealth/intake/pkg/api"
	"github.com/meridianhealth/intake/pkg/cleanup"
	"github.com/meridianhealth/intake/pkg/config"
	"github.com/meridianhealth/intake/pkg/database"
	"github.com/meridianhealth/intake/pkg/enforce"
	"github.com/meridianhealth/intake/pkg/engine"
	"github.com/meridianhealth/intake/pkg/escalate"
	"github.com/meridianhealth/intake/pkg/llm"
	"github.com/meridianhealth/intake/pkg/notify"
	"github.com/meridianhealth/intake/pkg/report"
	"github.com/meridianhealth/intake/pkg/screener"
	"github.com/meridianhealth/intake/pkg/store"
	"github.com/meridianhealth/intake/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env from the config directory before anything reads env vars.
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// Storage: durable PostgreSQL in production, in-memory for development.
	var (
		st       store.Store
		dbClient *database.Client
	)
	if cfg.DatabaseEnabled() {
		dbClient, err = database.NewClient(ctx, database.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			Database: cfg.Database.Database,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		st = store.NewEntStore(dbClient.Client, 3)
		slog.Info("Connected to PostgreSQL database")
	} else {
		st = store.NewMemory()
		slog.Warn("Running on the in-memory store; sessions will not survive a restart")
	}

	// LLM gateway. The SDK reads ANTHROPIC_API_KEY itself; an explicit
	// api_key_env override is passed through as a request option.
	var llmOpts []option.RequestOption
	if cfg.LLM.APIKeyEnv != "ANTHROPIC_API_KEY" {
		key := os.Getenv(cfg.LLM.APIKeyEnv)
		if key == "" {
			slog.Error("LLM API key is not set", "env", cfg.LLM.APIKeyEnv)
			os.Exit(1)
		}
		llmOpts = append(llmOpts, option.WithAPIKey(key))
	}
	gateway := llm.NewAnthropicGateway(cfg.LLM.Model, int64(cfg.LLM.MaxTokens), llmOpts...)
	slog.Info("LLM gateway initialized", "model", cfg.LLM.Model)

	logger := slog.Default()

	// Escalation fan-out. The webhook sink is optional; notification rows
	// persist with the session either way.
	var sinks []escalate.Sink
	if sink := notify.NewWebhookSink(notify.Config{
		WebhookURL: cfg.Notify.WebhookURL,
		Timeout:    cfg.Notify.Timeout,
	}); sink != nil {
		sinks = append(sinks, sink)
		slog.Info("Escalation webhook enabled")
	}
	escalator := escalate.NewEscalator(st, logger, sinks...)

	enforcer := enforce.NewService(screener.NewRegistry(), enforce.Thresholds{
		MinHistory:  cfg.Enforcement.MinHistory,
		MinSymptoms: cfg.Enforcement.MinSymptoms,
	})
	synthesizer := report.NewSynthesizer(gateway, cfg.LLM.ExtractTemperature, logger)

	eng := engine.New(st, gateway, enforcer, escalator, synthesizer, report.TextRenderer{},
		engine.Config{
			PauseTTL:           cfg.Engine.PauseTTL,
			ChatDeadline:       cfg.Engine.ChatDeadline,
			ExtractEvery:       cfg.Engine.ExtractEvery,
			Temperature:        cfg.LLM.Temperature,
			ExtractTemperature: cfg.LLM.ExtractTemperature,
		}, logger)

	sweeper := cleanup.NewService(cleanup.Config{
		Interval:   cfg.Cleanup.Interval,
		EvictAfter: cfg.Cleanup.EvictAfter,
	}, st)
	sweeper.Start(ctx)

	var auth api.Authenticator = api.AllowAll{}
	if token := os.Getenv(cfg.Server.AuthTokenEnv); token != "" {
		auth = api.StaticToken(token)
	} else {
		slog.Warn("API authentication disabled", "env", cfg.Server.AuthTokenEnv)
	}

	srv := api.NewServer(eng, dbClient, auth, *cfg.RateLimits, logger)
	httpServer := srv.HTTPServer(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("Intake service started", "version", version.Full())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop accepting requests first; in-flight SSE streams get the engine's
	// own turn deadline to finish.
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	sweeper.Stop()
	slog.Info("Shutdown complete")
}
