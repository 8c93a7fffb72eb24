// Package engine is the intake conversation state machine. It owns phase
// progression, screener administration, risk escalation, and the assistant
// token stream. Every session mutation flows through the engine under a
// per-session write lease.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meridianhealth/intake/pkg/enforce"
	"github.com/meridianhealth/intake/pkg/escalate"
	"github.com/meridianhealth/intake/pkg/llm"
	"github.com/meridianhealth/intake/pkg/metrics"
	"github.com/meridianhealth/intake/pkg/models"
	"github.com/meridianhealth/intake/pkg/report"
	"github.com/meridianhealth/intake/pkg/screener"
	"github.com/meridianhealth/intake/pkg/store"
)

var (
	// ErrNotActive is returned when a turn arrives for a session that is
	// paused, completed, or abandoned.
	ErrNotActive = errors.New("session is not active")

	// ErrBadDirective is returned for a control directive that is not
	// valid in the session's current state.
	ErrBadDirective = errors.New("directive not valid here")

	// ErrEmptyPrompt is returned for a chat call with no user text.
	ErrEmptyPrompt = errors.New("prompt must not be empty")
)

// Config carries the engine's tunables. Zero values are replaced by
// defaults in New.
type Config struct {
	// PauseTTL is how long a paused session stays resumable.
	PauseTTL time.Duration
	// ChatDeadline bounds one chat call wall-clock.
	ChatDeadline time.Duration
	// ExtractEvery is how many user turns pass between structured
	// extraction calls.
	ExtractEvery int
	// Temperature for conversational turns.
	Temperature float64
	// ExtractTemperature for structured extraction calls.
	ExtractTemperature float64
}

// DefaultConfig returns the shipped engine tunables.
func DefaultConfig() Config {
	return Config{
		PauseTTL:           24 * time.Hour,
		ChatDeadline:       60 * time.Second,
		ExtractEvery:       3,
		Temperature:        0.7,
		ExtractTemperature: 0.1,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PauseTTL <= 0 {
		c.PauseTTL = d.PauseTTL
	}
	if c.ChatDeadline <= 0 {
		c.ChatDeadline = d.ChatDeadline
	}
	if c.ExtractEvery <= 0 {
		c.ExtractEvery = d.ExtractEvery
	}
	if c.Temperature == 0 {
		c.Temperature = d.Temperature
	}
	if c.ExtractTemperature == 0 {
		c.ExtractTemperature = d.ExtractTemperature
	}
	return c
}

// Engine drives intake conversations. Construct one per process and share
// it; all methods are safe for concurrent use across sessions.
type Engine struct {
	store       store.Store
	gateway     llm.Gateway
	enforcer    *enforce.Service
	escalator   *escalate.Escalator
	synthesizer *report.Synthesizer
	renderer    report.Renderer
	cfg         Config
	logger      *slog.Logger
	leases      leaseTable
}

// New wires the engine from its collaborators.
func New(
	s store.Store,
	gateway llm.Gateway,
	enforcer *enforce.Service,
	escalator *escalate.Escalator,
	synthesizer *report.Synthesizer,
	renderer report.Renderer,
	cfg Config,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		store:       s,
		gateway:     gateway,
		enforcer:    enforcer,
		escalator:   escalator,
		synthesizer: synthesizer,
		renderer:    renderer,
		cfg:         cfg.withDefaults(),
		logger:      logger.With("component", "engine"),
	}
}

// leaseTable serializes turns per session token. One writer at a time;
// cross-session work proceeds in parallel.
type leaseTable struct {
	sems sync.Map // token -> chan struct{} (capacity 1)
}

func (l *leaseTable) acquire(ctx context.Context, token string) (release func(), err error) {
	v, _ := l.sems.LoadOrStore(token, make(chan struct{}, 1))
	sem := v.(chan struct{})
	select {
	case sem <- struct{}{}:
		return func() { <-sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *leaseTable) drop(token string) {
	l.sems.Delete(token)
}

// Start creates a session and streams the opening assistant turn.
func (e *Engine) Start(ctx context.Context, patientID *string, userName string) (*models.Session, <-chan models.Frame, error) {
	sess, err := e.store.Create(ctx, patientID, userName)
	if err != nil {
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}
	if err := e.store.Commit(ctx, sess, &store.SideEffects{
		AuditLogs: []models.AuditLog{e.audit(sess.Token, models.AuditSessionCreated, nil)},
	}); err != nil {
		return nil, nil, fmt.Errorf("recording session creation: %w", err)
	}
	e.logger.Info("session started", "session_token", sess.Token, "anonymous", patientID == nil)
	metrics.SessionsStarted.Inc()

	release, err := e.leases.acquire(ctx, sess.Token)
	if err != nil {
		return nil, nil, err
	}
	snapshot := sess.Clone()
	out := make(chan models.Frame)
	go func() {
		defer close(out)
		defer release()
		ctx, cancel := context.WithTimeout(ctx, e.cfg.ChatDeadline)
		defer cancel()
		e.streamAssistantTurn(ctx, sess, out, openingPrompt(sess))
	}()
	return snapshot, out, nil
}

// Snapshot returns a read-only copy of the session for inspection.
func (e *Engine) Snapshot(ctx context.Context, token string) (*models.Session, error) {
	return e.store.Load(ctx, token)
}

// Pause suspends an active session. The pause is durable before this
// returns; the resume token expires after the configured TTL.
func (e *Engine) Pause(ctx context.Context, token string) (resumeToken string, expiresAt time.Time, err error) {
	release, err := e.leases.acquire(ctx, token)
	if err != nil {
		return "", time.Time{}, err
	}
	defer release()

	sess, err := e.store.Load(ctx, token)
	if err != nil {
		return "", time.Time{}, err
	}
	if sess.Status != models.StatusActive {
		return "", time.Time{}, fmt.Errorf("%w: status %s", ErrNotActive, sess.Status)
	}

	now := time.Now().UTC()
	expiry := now.Add(e.cfg.PauseTTL)
	sess.Status = models.StatusPaused
	sess.PausedAt = &now
	sess.ExpiresAt = &expiry
	sess.ResumeToken = store.NewToken()

	fx := &store.SideEffects{AuditLogs: []models.AuditLog{
		e.audit(token, models.AuditSessionPaused, map[string]any{"expires_at": expiry}),
	}}
	if err := e.commit(ctx, sess, fx); err != nil {
		return "", time.Time{}, err
	}
	e.logger.Info("session paused", "session_token", token, "expires_at", expiry)
	metrics.SessionsPaused.Inc()
	return sess.ResumeToken, expiry, nil
}

// Resume reactivates a paused session and streams a re-engagement turn.
// An expired resume token marks the session abandoned and returns
// store.ErrExpired.
func (e *Engine) Resume(ctx context.Context, resumeToken string) (*models.Session, <-chan models.Frame, error) {
	sess, err := e.store.LoadByResumeToken(ctx, resumeToken)
	if errors.Is(err, store.ErrExpired) {
		e.abandonExpired(ctx, resumeToken)
		return nil, nil, err
	}
	if err != nil {
		return nil, nil, err
	}

	release, err := e.leases.acquire(ctx, sess.Token)
	if err != nil {
		return nil, nil, err
	}

	sess.Status = models.StatusActive
	sess.PausedAt = nil
	sess.ExpiresAt = nil
	sess.ResumeToken = ""
	fx := &store.SideEffects{AuditLogs: []models.AuditLog{
		e.audit(sess.Token, models.AuditSessionResumed, nil),
	}}
	if err := e.commit(ctx, sess, fx); err != nil {
		release()
		return nil, nil, err
	}
	e.logger.Info("session resumed", "session_token", sess.Token, "phase", sess.Phase)
	metrics.SessionsResumed.Inc()

	// The re-engagement turn is presentational only. History must come
	// back from a pause exactly as it went in.
	snapshot := sess.Clone()
	out := make(chan models.Frame)
	go func() {
		defer close(out)
		defer release()
		ctx, cancel := context.WithTimeout(ctx, e.cfg.ChatDeadline)
		defer cancel()
		if sess.CurrentScreener != "" {
			e.emitScreenerQuestion(ctx, sess, out, "Welcome back. Let's pick up where we left off.")
			emit(ctx, out, models.DoneFrame())
			return
		}
		e.streamTransient(ctx, sess, out, resumePrompt(sess))
	}()
	return snapshot, out, nil
}

// abandonExpired transitions a session with an expired resume token to
// abandoned. Best effort; the hourly sweeper catches anything missed here.
func (e *Engine) abandonExpired(ctx context.Context, resumeToken string) {
	n, err := e.store.SweepExpired(ctx, time.Now().UTC())
	if err != nil {
		e.logger.Error("abandoning expired session", "error", err)
		return
	}
	if n > 0 {
		e.logger.Info("expired sessions abandoned on resume attempt", "count", n)
	}
	_ = resumeToken
}

// Finish ends the conversation and returns the final frame carrying the
// rendered report artifacts. If risk signals are present and the C-SSRS has
// not been administered, the engine inserts it instead of finishing.
func (e *Engine) Finish(ctx context.Context, token string) (models.Frame, error) {
	release, err := e.leases.acquire(ctx, token)
	if err != nil {
		return models.Frame{}, err
	}
	defer release()

	sess, err := e.store.Load(ctx, token)
	if err != nil {
		return models.Frame{}, err
	}
	if sess.Status != models.StatusActive {
		return models.Frame{}, fmt.Errorf("%w: status %s", ErrNotActive, sess.Status)
	}

	frame, pending, err := e.safetyCheck(ctx, sess)
	if err != nil {
		return models.Frame{}, err
	}
	if pending {
		return frame, nil
	}
	return e.finishSession(ctx, sess)
}

// safetyCheck inserts the C-SSRS before finishing when risk signals exist
// without it. Returns the screener frame and true when insertion happened.
// A commit failure aborts the finish; the gate never degrades to
// best-effort.
func (e *Engine) safetyCheck(ctx context.Context, sess *models.Session) (models.Frame, bool, error) {
	if len(sess.RiskFlags) == 0 || sess.HasCompletedScreener(screener.CSSRS) {
		return models.Frame{}, false, nil
	}
	sess.Phase = models.PhaseScreening
	sess.CurrentScreener = screener.CSSRS
	sess.ScreenerProgress = nil
	if err := e.commit(ctx, sess, nil); err != nil {
		return models.Frame{}, false, fmt.Errorf("inserting safety screener: %w", err)
	}
	e.logger.Warn("finish deferred for safety screening", "session_token", sess.Token)

	frame := e.screenerQuestionFrame(sess,
		"Before we wrap up, I need to ask a few brief safety questions. Please answer each one.")
	frame.Done = true
	return frame, true, nil
}

// finishSession synthesizes the report, renders artifacts, and completes
// the session. Report row and completion commit atomically.
func (e *Engine) finishSession(ctx context.Context, sess *models.Session) (models.Frame, error) {
	sess.Phase = models.PhaseReportGeneration

	rep, err := e.synthesizer.Synthesize(ctx, sess)
	if err != nil {
		return models.Frame{}, fmt.Errorf("synthesizing report: %w", err)
	}
	artifacts, err := report.Artifacts(e.renderer, rep)
	if err != nil {
		return models.Frame{}, fmt.Errorf("rendering report: %w", err)
	}

	now := time.Now().UTC()
	sess.MarkPhaseCompleted(models.PhaseReportGeneration)
	sess.Phase = models.PhaseCompleted
	sess.Status = models.StatusCompleted
	sess.CompletedAt = &now

	fx := &store.SideEffects{
		Report: rep,
		AuditLogs: []models.AuditLog{
			e.audit(sess.Token, models.AuditSessionCompleted, map[string]any{
				"screeners_completed": len(sess.ScreenersCompleted),
				"risk_flags":          len(sess.RiskFlags),
			}),
		},
	}
	if err := e.commit(ctx, sess, fx); err != nil {
		return models.Frame{}, err
	}
	e.leases.drop(sess.Token)
	e.logger.Info("session completed", "session_token", sess.Token)
	metrics.SessionsCompleted.Inc()

	frame := models.Frame{
		Role:      models.RoleAssistant,
		Content:   "Thank you for completing your intake. Your report has been shared with your care team, and a copy is attached for you.",
		Timestamp: now,
		Done:      true,
		Artifacts: artifacts,
	}
	return frame, nil
}

// commit writes the session with CAS retry and fans committed
// notifications out to the delivery sinks.
func (e *Engine) commit(ctx context.Context, sess *models.Session, fx *store.SideEffects) error {
	if err := e.store.Commit(ctx, sess, fx); err != nil {
		return err
	}
	if fx != nil && len(fx.Notifications) > 0 {
		notifications := append([]models.Notification(nil), fx.Notifications...)
		go func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
			defer cancel()
			e.escalator.Deliver(ctx, notifications)
		}()
	}
	return nil
}

func (e *Engine) audit(token, eventType string, detail map[string]any) models.AuditLog {
	return models.AuditLog{
		ID:           uuid.NewString(),
		SessionToken: token,
		EventType:    eventType,
		Detail:       detail,
		CreatedAt:    time.Now().UTC(),
	}
}

// emit sends a frame unless the context has been canceled.
func emit(ctx context.Context, out chan<- models.Frame, frame models.Frame) bool {
	select {
	case out <- frame:
		return true
	case <-ctx.Done():
		return false
	}
}
