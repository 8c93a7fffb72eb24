package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meridianhealth/intake/pkg/models"
)

// Memory is an in-process Store. It backs unit tests and single-node
// development runs; paused-session durability across restarts requires the
// ent store.
type Memory struct {
	mu            sync.RWMutex
	sessions      map[string]*models.Session
	notifications []models.Notification
	auditLogs     []models.AuditLog
	reports       map[string]*models.IntakeReport
	admins        []models.AdminUser
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string]*models.Session),
		reports:  make(map[string]*models.IntakeReport),
	}
}

// SetAdmins replaces the admin roster used for escalation fan-out.
func (m *Memory) SetAdmins(admins []models.AdminUser) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.admins = append([]models.AdminUser(nil), admins...)
}

// Create persists a fresh active session.
func (m *Memory) Create(_ context.Context, patientID *string, userName string) (*models.Session, error) {
	sess := NewSession(patientID, userName)
	m.mu.Lock()
	m.sessions[sess.Token] = sess.Clone()
	m.mu.Unlock()
	return sess, nil
}

// Load returns a snapshot by token.
func (m *Memory) Load(_ context.Context, token string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	return sess.Clone(), nil
}

// LoadByResumeToken returns the paused session holding the resume token.
func (m *Memory) LoadByResumeToken(_ context.Context, resumeToken string) (*models.Session, error) {
	if resumeToken == "" {
		return nil, ErrNotFound
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, sess := range m.sessions {
		if sess.ResumeToken == resumeToken {
			if sess.Status != models.StatusPaused {
				return nil, ErrNotFound
			}
			if sess.ExpiresAt != nil && time.Now().After(*sess.ExpiresAt) {
				return nil, ErrExpired
			}
			return sess.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

// Commit applies a compare-and-set on the session version.
func (m *Memory) Commit(_ context.Context, sess *models.Session, fx *SideEffects) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.sessions[sess.Token]
	if !ok {
		return ErrNotFound
	}
	if current.Version != sess.Version {
		return ErrConflict
	}

	sess.Version++
	sess.UpdatedAt = time.Now().UTC()
	m.sessions[sess.Token] = sess.Clone()

	if !fx.Empty() {
		for _, n := range fx.Notifications {
			if n.Delivery == "" {
				n.Delivery = models.DeliveryPending
			}
			m.notifications = append(m.notifications, n)
		}
		m.auditLogs = append(m.auditLogs, fx.AuditLogs...)
		if fx.Report != nil {
			r := *fx.Report
			m.reports[sess.Token] = &r
		}
	}
	return nil
}

// SweepExpired transitions paused sessions past expiry to abandoned. Each
// transition leaves an audit row. A paused session without an expiry should
// not exist; the sweep abandons it too and records the violation.
func (m *Memory) SweepExpired(_ context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, sess := range m.sessions {
		if sess.Status != models.StatusPaused {
			continue
		}
		if sess.ExpiresAt == nil {
			m.abandonLocked(sess, now, models.AuditInvariantViolated,
				map[string]any{"reason": "paused session without expiry"})
			count++
			continue
		}
		if sess.ExpiresAt.Before(now) {
			m.abandonLocked(sess, now, models.AuditSessionAbandoned,
				map[string]any{"expired_at": *sess.ExpiresAt})
			count++
		}
	}
	return count, nil
}

func (m *Memory) abandonLocked(sess *models.Session, now time.Time, eventType string, detail map[string]any) {
	sess.Status = models.StatusAbandoned
	sess.ResumeToken = ""
	sess.Version++
	sess.UpdatedAt = now
	m.auditLogs = append(m.auditLogs, models.AuditLog{
		ID:           uuid.NewString(),
		SessionToken: sess.Token,
		EventType:    eventType,
		Detail:       detail,
		CreatedAt:    now,
	})
}

// ActiveAdmins returns the active subset of the admin roster.
func (m *Memory) ActiveAdmins(_ context.Context) ([]models.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.AdminUser
	for _, a := range m.admins {
		if a.Active {
			out = append(out, a)
		}
	}
	return out, nil
}

// MarkDelivery records a delivery outcome on a stored notification.
func (m *Memory) MarkDelivery(_ context.Context, notificationID string, status models.DeliveryStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notifications {
		if m.notifications[i].ID == notificationID {
			m.notifications[i].Delivery = status
		}
	}
	return nil
}

// Notifications returns a copy of all persisted notifications (test hook).
func (m *Memory) Notifications() []models.Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Notification(nil), m.notifications...)
}

// AuditLogs returns a copy of all persisted audit entries (test hook).
func (m *Memory) AuditLogs() []models.AuditLog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.AuditLog(nil), m.auditLogs...)
}

// Report returns the stored report for a session, if any (test hook).
func (m *Memory) Report(token string) *models.IntakeReport {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reports[token]
}
