// Package api is the HTTP surface of the intake service. Conversation
// output streams to clients as server-sent events; everything else is
// plain JSON.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meridianhealth/intake/pkg/config"
	"github.com/meridianhealth/intake/pkg/database"
	"github.com/meridianhealth/intake/pkg/engine"
	"github.com/meridianhealth/intake/pkg/metrics"
)

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	engine *engine.Engine
	db     *database.Client // nil when running on the in-memory store
	auth   Authenticator
	logger *slog.Logger

	startLimiter       *ipLimiter
	chatLimiter        *ipLimiter
	pauseResumeLimiter *ipLimiter
}

// NewServer wires the API server. db may be nil; the health endpoint then
// reports storage as in-memory.
func NewServer(eng *engine.Engine, db *database.Client, auth Authenticator, limits config.RateLimitConfig, logger *slog.Logger) *Server {
	return &Server{
		engine:             eng,
		db:                 db,
		auth:               auth,
		logger:             logger.With("component", "api"),
		startLimiter:       newIPLimiter(limits.StartPerMinute, limits.StartPerMinute),
		chatLimiter:        newIPLimiter(limits.ChatPerMinute, limits.ChatBurst),
		pauseResumeLimiter: newIPLimiter(limits.PauseResumePerMinute, limits.PauseResumePerMinute),
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders(), s.observe())

	r.GET("/healthz", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	intake := r.Group("/intake", s.authenticate())
	intake.POST("/start", s.limit(s.startLimiter), s.startHandler)
	intake.POST("/chat", s.limit(s.chatLimiter), s.chatHandler)
	intake.POST("/pause", s.limit(s.pauseResumeLimiter), s.pauseHandler)
	intake.POST("/resume", s.limit(s.pauseResumeLimiter), s.resumeHandler)
	intake.POST("/finish", s.finishHandler)
	intake.GET("/session/:token", s.sessionHandler)

	return r
}

// observe records per-route request latency.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// HTTPServer wraps the router in an http.Server with sane timeouts.
// WriteTimeout stays at zero because chat responses are long-lived SSE
// streams; the engine bounds each turn with its own deadline.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
