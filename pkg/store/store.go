// Package store persists intake sessions. The engine holds a single-writer
// lease per session; the store still guards every commit with a
// compare-and-set on a monotonic version so that a lost lease can never
// silently clobber a newer write.
package store

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/meridianhealth/intake/pkg/models"
)

var (
	// ErrNotFound is returned for unknown session or resume tokens.
	ErrNotFound = errors.New("session not found")

	// ErrConflict is returned when the optimistic compare-and-set fails
	// after the configured retries.
	ErrConflict = errors.New("concurrent modification detected")

	// ErrExpired is returned when a resume token refers to a paused
	// session past its expiry.
	ErrExpired = errors.New("session expired")
)

// SideEffects are records that must land atomically with a session commit.
// A reader must never observe a risk flag without its audit entry.
type SideEffects struct {
	Notifications []models.Notification
	AuditLogs     []models.AuditLog
	Report        *models.IntakeReport
}

// Empty reports whether the commit carries no side-effect records.
func (fx *SideEffects) Empty() bool {
	return fx == nil || (len(fx.Notifications) == 0 && len(fx.AuditLogs) == 0 && fx.Report == nil)
}

// Store is the session persistence contract. Implementations must be safe
// for concurrent use across sessions; per-session write ordering is the
// engine's responsibility.
type Store interface {
	// Create persists a fresh active session and returns it.
	Create(ctx context.Context, patientID *string, userName string) (*models.Session, error)

	// Load returns a self-consistent snapshot by session token.
	Load(ctx context.Context, token string) (*models.Session, error)

	// LoadByResumeToken returns the paused session holding the given
	// resume token, or ErrNotFound / ErrExpired.
	LoadByResumeToken(ctx context.Context, resumeToken string) (*models.Session, error)

	// Commit writes the session back iff its version is unchanged,
	// incrementing the version on success. Side effects commit in the
	// same transaction.
	Commit(ctx context.Context, sess *models.Session, fx *SideEffects) error

	// SweepExpired transitions paused sessions past expiry to abandoned
	// and returns how many were transitioned.
	SweepExpired(ctx context.Context, now time.Time) (int, error)

	// ActiveAdmins returns the admin users that receive escalation
	// notifications.
	ActiveAdmins(ctx context.Context) ([]models.AdminUser, error)

	// MarkDelivery records the delivery outcome of a committed
	// notification. Unknown ids are ignored; the row is the audit
	// trail, not the delivery queue.
	MarkDelivery(ctx context.Context, notificationID string, status models.DeliveryStatus) error
}

// NewToken returns an unguessable URL-safe token. 32 random bytes gives 256
// bits of entropy.
func NewToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failure means the process environment is broken;
		// nothing sensible to degrade to.
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// NewSession builds the initial in-memory state for a fresh session.
func NewSession(patientID *string, userName string) *models.Session {
	now := time.Now().UTC()
	return &models.Session{
		Token:           NewToken(),
		PatientID:       patientID,
		UserName:        userName,
		Phase:           models.PhaseGreeting,
		Status:          models.StatusActive,
		ExtractedData:   map[string]any{},
		Symptoms:        map[string]bool{},
		ScreenerScores:  map[string]*models.ScoredResult{},
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
