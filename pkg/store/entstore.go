package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meridianhealth/intake/ent"
	"github.com/meridianhealth/intake/ent/adminuser"
	"github.com/meridianhealth/intake/ent/intakesession"
	"github.com/meridianhealth/intake/ent/notification"
	"github.com/meridianhealth/intake/pkg/models"
)

// EntStore persists sessions in PostgreSQL through the ent client and keeps
// a read-through cache of recently touched sessions. Paused sessions are
// durable before the pause acknowledgment returns; the cache only ever
// holds clones, so readers cannot observe torn writes.
type EntStore struct {
	client     *ent.Client
	maxRetries int

	mu    sync.RWMutex
	cache map[string]*models.Session
}

// NewEntStore creates a store over an ent client. maxRetries bounds the
// optimistic-concurrency retry loop.
func NewEntStore(client *ent.Client, maxRetries int) *EntStore {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &EntStore{
		client:     client,
		maxRetries: maxRetries,
		cache:      make(map[string]*models.Session),
	}
}

// Create persists a fresh active session.
func (s *EntStore) Create(ctx context.Context, patientID *string, userName string) (*models.Session, error) {
	sess := NewSession(patientID, userName)

	_, err := s.client.IntakeSession.Create().
		SetID(sess.Token).
		SetNillablePatientID(patientID).
		SetUserName(userName).
		SetCurrentPhase(string(sess.Phase)).
		SetStatus(intakesession.StatusActive).
		SetExtractedData(sess.ExtractedData).
		SetSymptomsDetected(sess.Symptoms).
		SetVersion(sess.Version).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.cachePut(sess)
	return sess, nil
}

// Load returns a snapshot by token, preferring the cache.
func (s *EntStore) Load(ctx context.Context, token string) (*models.Session, error) {
	s.mu.RLock()
	cached, ok := s.cache[token]
	s.mu.RUnlock()
	if ok {
		return cached.Clone(), nil
	}

	row, err := s.client.IntakeSession.Get(ctx, token)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	sess, err := rowToSession(row)
	if err != nil {
		return nil, err
	}
	s.cachePut(sess)
	return sess.Clone(), nil
}

// LoadByResumeToken returns the paused session holding the resume token.
// Expired sessions surface ErrExpired; marking them abandoned is the
// caller's (engine's) decision so the transition is audited.
func (s *EntStore) LoadByResumeToken(ctx context.Context, resumeToken string) (*models.Session, error) {
	if resumeToken == "" {
		return nil, ErrNotFound
	}

	row, err := s.client.IntakeSession.Query().
		Where(
			intakesession.ResumeTokenEQ(resumeToken),
			intakesession.StatusEQ(intakesession.StatusPaused),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session by resume token: %w", err)
	}

	sess, err := rowToSession(row)
	if err != nil {
		return nil, err
	}
	if sess.ExpiresAt != nil && time.Now().After(*sess.ExpiresAt) {
		return nil, ErrExpired
	}
	return sess, nil
}

// Commit applies a compare-and-set on the session version. Side effects
// land in the same transaction as the session row.
//
// A version conflict fails immediately: under the engine's single-writer
// lease a stale snapshot can never win a retry, it means the lease was
// lost (or the sweeper moved the row) and the caller must reload. The
// jittered-backoff retries absorb transient database errors only.
func (s *EntStore) Commit(ctx context.Context, sess *models.Session, fx *SideEffects) error {
	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoffWithJitter(attempt)):
			}
		}

		err := s.commitOnce(ctx, sess, fx)
		if err == nil {
			sess.Version++
			sess.UpdatedAt = time.Now().UTC()
			s.cachePut(sess)
			return nil
		}
		if err == ErrConflict || err == ErrNotFound || ctx.Err() != nil {
			return err
		}
		lastErr = err
		slog.Warn("Session commit failed, retrying",
			"session_token", sess.Token,
			"version", sess.Version,
			"attempt", attempt+1,
			"error", err)
	}
	return lastErr
}

func (s *EntStore) commitOnce(ctx context.Context, sess *models.Session, fx *SideEffects) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	history, err := toJSONSlice(sess.History)
	if err != nil {
		return err
	}
	flags, err := toJSONSlice(sess.RiskFlags)
	if err != nil {
		return err
	}
	scores, err := toJSONMap(sess.ScreenerScores)
	if err != nil {
		return err
	}

	update := tx.IntakeSession.Update().
		Where(
			intakesession.IDEQ(sess.Token),
			intakesession.VersionEQ(sess.Version),
		).
		SetCurrentPhase(string(sess.Phase)).
		SetStatus(intakesession.Status(sess.Status)).
		SetConversationHistory(history).
		SetExtractedData(sess.ExtractedData).
		SetSymptomsDetected(sess.Symptoms).
		SetCompletedPhases(phasesToStrings(sess.CompletedPhases)).
		SetCompletedScreeners(sess.ScreenersCompleted).
		SetScreenerScores(scores).
		SetCurrentScreener(sess.CurrentScreener).
		SetScreenerProgress(sess.ScreenerProgress).
		SetRiskFlags(flags).
		SetTurnsSinceExtract(sess.TurnsSinceExtract).
		SetVersion(sess.Version + 1).
		SetUpdatedAt(time.Now())

	if sess.PausedAt != nil {
		update = update.SetPausedAt(*sess.PausedAt).SetExpiresAt(*sess.ExpiresAt)
	} else {
		update = update.ClearPausedAt().ClearExpiresAt()
	}
	if sess.ResumeToken != "" {
		update = update.SetResumeToken(sess.ResumeToken)
	} else {
		update = update.ClearResumeToken()
	}
	if sess.CompletedAt != nil {
		update = update.SetCompletedAt(*sess.CompletedAt)
	}

	count, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if count == 0 {
		// Row missing or version moved. Distinguish for the caller.
		exists, qerr := tx.IntakeSession.Query().
			Where(intakesession.IDEQ(sess.Token)).
			Exist(ctx)
		if qerr != nil {
			return fmt.Errorf("failed to check session existence: %w", qerr)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrConflict
	}

	if err := s.applySideEffects(ctx, tx, sess.Token, fx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *EntStore) applySideEffects(ctx context.Context, tx *ent.Tx, token string, fx *SideEffects) error {
	if fx.Empty() {
		return nil
	}
	for _, n := range fx.Notifications {
		_, err := tx.Notification.Create().
			SetID(n.ID).
			SetSessionToken(token).
			SetAdminUserID(n.AdminUserID).
			SetPriority(notificationPriority(n.Priority)).
			SetTitle(n.Title).
			SetBody(n.Body).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
	}
	for _, a := range fx.AuditLogs {
		_, err := tx.AuditLog.Create().
			SetID(a.ID).
			SetSessionToken(token).
			SetEventType(a.EventType).
			SetDetail(a.Detail).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create audit log: %w", err)
		}
	}
	if fx.Report != nil {
		report, err := toJSONMap(fx.Report)
		if err != nil {
			return err
		}
		_, err = tx.IntakeReport.Create().
			SetID(NewToken()).
			SetSessionToken(token).
			SetReport(report).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}
	}
	return nil
}

// SweepExpired transitions paused sessions past expiry to abandoned and
// evicts them from the cache. Durable rows are never deleted. Each
// transition writes its audit row in the same transaction. A paused row
// without an expiry should not exist; it is abandoned as well, with an
// invariant-violation audit entry instead of the lifecycle one.
func (s *EntStore) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	rows, err := s.client.IntakeSession.Query().
		Where(
			intakesession.StatusEQ(intakesession.StatusPaused),
			intakesession.Or(
				intakesession.ExpiresAtLT(now),
				intakesession.ExpiresAtIsNil(),
			),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired sessions: %w", err)
	}

	count := 0
	for _, row := range rows {
		abandoned, err := s.abandonOne(ctx, row)
		if err != nil {
			return count, fmt.Errorf("failed to abandon session %s: %w", row.ID, err)
		}
		if abandoned {
			count++
			s.Evict(row.ID)
		}
	}
	return count, nil
}

func (s *EntStore) abandonOne(ctx context.Context, row *ent.IntakeSession) (bool, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.IntakeSession.Update().
		Where(
			intakesession.IDEQ(row.ID),
			intakesession.VersionEQ(row.Version),
		).
		SetStatus(intakesession.StatusAbandoned).
		ClearResumeToken().
		SetVersion(row.Version + 1).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, err
	}
	if n == 0 {
		// Lost the race to a concurrent resume or sweep; nothing to audit.
		return false, nil
	}

	eventType := models.AuditSessionAbandoned
	detail := map[string]any{}
	if row.ExpiresAt == nil {
		eventType = models.AuditInvariantViolated
		detail["reason"] = "paused session without expiry"
	} else {
		detail["expired_at"] = *row.ExpiresAt
	}
	_, err = tx.AuditLog.Create().
		SetID(uuid.NewString()).
		SetSessionToken(row.ID).
		SetEventType(eventType).
		SetDetail(detail).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return true, tx.Commit()
}

// ActiveAdmins returns the active admin roster for escalation fan-out.
func (s *EntStore) ActiveAdmins(ctx context.Context) ([]models.AdminUser, error) {
	rows, err := s.client.AdminUser.Query().
		Where(adminuser.ActiveEQ(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active admins: %w", err)
	}
	admins := make([]models.AdminUser, len(rows))
	for i, r := range rows {
		admins[i] = models.AdminUser{ID: r.ID, Email: r.Email, Active: r.Active}
	}
	return admins, nil
}

// MarkDelivery records the delivery outcome of a committed notification.
func (s *EntStore) MarkDelivery(ctx context.Context, notificationID string, status models.DeliveryStatus) error {
	err := s.client.Notification.UpdateOneID(notificationID).
		SetDeliveryStatus(notification.DeliveryStatus(status)).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to mark notification delivery: %w", err)
	}
	return nil
}

// Evict drops a session from the in-memory cache. Durable state is
// untouched.
func (s *EntStore) Evict(token string) {
	s.mu.Lock()
	delete(s.cache, token)
	s.mu.Unlock()
}

// EvictIdle drops cache entries not touched within keep. Used by the
// cleanup sweeper for abandoned sessions older than the retention window.
func (s *EntStore) EvictIdle(keep time.Duration) int {
	cutoff := time.Now().Add(-keep)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for token, sess := range s.cache {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.cache, token)
			n++
		}
	}
	return n
}

func (s *EntStore) cachePut(sess *models.Session) {
	s.mu.Lock()
	s.cache[sess.Token] = sess.Clone()
	s.mu.Unlock()
}

// backoffWithJitter returns 10-30ms, 20-60ms, 40-120ms for attempts 1..3.
func backoffWithJitter(attempt int) time.Duration {
	base := 10 * time.Millisecond << (attempt - 1)
	return base + time.Duration(rand.Int63n(int64(2*base)))
}

func notificationPriority(p models.NotificationPriority) notification.Priority {
	if p == models.PriorityUrgent {
		return notification.PriorityUrgent
	}
	return notification.PriorityNormal
}

// rowToSession rehydrates the typed session from an ent row.
func rowToSession(row *ent.IntakeSession) (*models.Session, error) {
	sess := &models.Session{
		Token:             row.ID,
		PatientID:         row.PatientID,
		UserName:          row.UserName,
		Phase:             models.Phase(row.CurrentPhase),
		Status:            models.SessionStatus(row.Status),
		ExtractedData:     row.ExtractedData,
		Symptoms:          row.SymptomsDetected,
		CurrentScreener:   row.CurrentScreener,
		ScreenerProgress:  row.ScreenerProgress,
		TurnsSinceExtract: row.TurnsSinceExtract,
		PausedAt:          row.PausedAt,
		ExpiresAt:         row.ExpiresAt,
		Version:           row.Version,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
		CompletedAt:       row.CompletedAt,
	}
	if row.ResumeToken != nil {
		sess.ResumeToken = *row.ResumeToken
	}
	if sess.ExtractedData == nil {
		sess.ExtractedData = map[string]any{}
	}
	if sess.Symptoms == nil {
		sess.Symptoms = map[string]bool{}
	}
	for _, p := range row.CompletedPhases {
		sess.CompletedPhases = append(sess.CompletedPhases, models.Phase(p))
	}
	sess.ScreenersCompleted = append(sess.ScreenersCompleted, row.CompletedScreeners...)

	if err := fromJSONSlice(row.ConversationHistory, &sess.History); err != nil {
		return nil, err
	}
	if err := fromJSONSlice(row.RiskFlags, &sess.RiskFlags); err != nil {
		return nil, err
	}
	sess.ScreenerScores = map[string]*models.ScoredResult{}
	if row.ScreenerScores != nil {
		if err := fromJSONMap(row.ScreenerScores, &sess.ScreenerScores); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

func phasesToStrings(phases []models.Phase) []string {
	out := make([]string, len(phases))
	for i, p := range phases {
		out[i] = string(p)
	}
	return out
}

// JSON column helpers: ent stores loosely typed JSON; the domain types stay
// strongly typed by round-tripping through encoding/json.

func toJSONSlice(v any) ([]map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON column: %w", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON column: %w", err)
	}
	return out, nil
}

func fromJSONSlice(col []map[string]any, target any) error {
	if col == nil {
		return nil
	}
	raw, err := json.Marshal(col)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON column: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON column: %w", err)
	}
	return nil
}

func toJSONMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON column: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON column: %w", err)
	}
	return out, nil
}

func fromJSONMap(col map[string]any, target any) error {
	raw, err := json.Marshal(col)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON column: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON column: %w", err)
	}
	return nil
}
