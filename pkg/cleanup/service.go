// Package cleanup runs the background session sweeper:
//   - Paused sessions past their expiry transition to abandoned.
//   - Cache entries for long-abandoned sessions are evicted; rows stay in
//     durable storage for audit.
//
// All operations are idempotent and safe to run from multiple replicas.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/meridianhealth/intake/pkg/metrics"
	"github.com/meridianhealth/intake/pkg/store"
)

// Config carries the sweeper tunables.
type Config struct {
	// Interval between sweeps.
	Interval time.Duration
	// EvictAfter is how long an abandoned session may stay in cache.
	EvictAfter time.Duration
}

// DefaultConfig returns the shipped sweeper policy.
func DefaultConfig() Config {
	return Config{
		Interval:   time.Hour,
		EvictAfter: 48 * time.Hour,
	}
}

// cacheEvictor is the optional store capability of dropping idle cache
// entries. The in-memory store has no separate cache and does not need it.
type cacheEvictor interface {
	EvictIdle(keep time.Duration) int
}

// Service is the periodic sweeper.
type Service struct {
	config Config
	store  store.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the sweeper.
func NewService(cfg Config, s store.Store) *Service {
	return &Service{config: cfg, store: s}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Session sweeper started",
		"interval", s.config.Interval,
		"evict_after", s.config.EvictAfter)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Session sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass. Exposed so operators can trigger it on demand.
func (s *Service) Sweep(ctx context.Context) {
	count, err := s.store.SweepExpired(ctx, time.Now().UTC())
	if err != nil {
		slog.Error("Sweeper: expiring paused sessions failed", "error", err)
	} else if count > 0 {
		metrics.SessionsAbandoned.Add(float64(count))
		slog.Info("Sweeper: expired paused sessions abandoned", "count", count)
	}

	if evictor, ok := s.store.(cacheEvictor); ok {
		if evicted := evictor.EvictIdle(s.config.EvictAfter); evicted > 0 {
			slog.Info("Sweeper: idle cache entries evicted", "count", evicted)
		}
	}
}
