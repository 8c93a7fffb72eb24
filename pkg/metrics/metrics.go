// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SessionsStarted counts intake sessions created.
	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "intake_sessions_started_total",
		Help: "Total intake sessions started",
	})

	// SessionsCompleted counts sessions that reached report generation.
	SessionsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "intake_sessions_completed_total",
		Help: "Total intake sessions completed with a report",
	})

	// SessionsAbandoned counts paused sessions swept after expiry.
	SessionsAbandoned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "intake_sessions_abandoned_total",
		Help: "Total paused sessions abandoned after resume expiry",
	})

	// SessionsPaused counts pause operations.
	SessionsPaused = promauto.NewCounter(prometheus.CounterOpts{
		Name: "intake_sessions_paused_total",
		Help: "Total pause operations",
	})

	// SessionsResumed counts successful resume operations.
	SessionsResumed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "intake_sessions_resumed_total",
		Help: "Total successful resume operations",
	})

	// ChatTurns counts accepted chat turns.
	ChatTurns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "intake_chat_turns_total",
		Help: "Total accepted chat turns",
	})

	// ScreenersScored counts completed screener administrations by instrument.
	ScreenersScored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intake_screeners_scored_total",
		Help: "Total completed screener administrations",
	}, []string{"instrument"})

	// RiskEscalations counts risk flags that triggered escalation by kind.
	RiskEscalations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intake_risk_escalations_total",
		Help: "Total risk flags escalated to administrators",
	}, []string{"kind"})

	// RequestDuration observes HTTP handler latency.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "intake_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
