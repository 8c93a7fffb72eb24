package database

import (
	"context"
	"time"
)

// HealthStatus is the database portion of the readiness payload. Pool
// saturation shows up in the wait counters before it shows up as chat
// latency, so they are part of the surface.
type HealthStatus struct {
	Status string    `json:"status"`
	PingMS int64     `json:"ping_ms"`
	Pool   PoolStats `json:"pool"`
}

// PoolStats is a snapshot of the sql.DB connection pool.
type PoolStats struct {
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	MaxOpen   int   `json:"max_open"`
	WaitCount int64 `json:"wait_count"`
	WaitMS    int64 `json:"wait_ms"`
}

// Health pings the database and snapshots the pool for the readiness
// endpoint. On ping failure the partial status is returned alongside the
// error so the caller can surface both.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()
	if err := c.db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status: "unhealthy",
			PingMS: time.Since(start).Milliseconds(),
		}, err
	}

	stats := c.db.Stats()
	return &HealthStatus{
		Status: "healthy",
		PingMS: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:      stats.OpenConnections,
			InUse:     stats.InUse,
			Idle:      stats.Idle,
			MaxOpen:   stats.MaxOpenConnections,
			WaitCount: stats.WaitCount,
			WaitMS:    stats.WaitDuration.Milliseconds(),
		},
	}, nil
}
