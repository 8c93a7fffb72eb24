package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/intake/pkg/models"
)

func TestCreateAndLoad(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	patientID := "patient-42"
	sess, err := m.Create(ctx, &patientID, "Ada")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, models.StatusActive, sess.Status)
	assert.Equal(t, models.PhaseGreeting, sess.Phase)
	assert.EqualValues(t, 1, sess.Version)

	loaded, err := m.Load(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, loaded.Token)
	require.NotNil(t, loaded.PatientID)
	assert.Equal(t, "patient-42", *loaded.PatientID)

	_, err = m.Load(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommitCAS(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	sess, err := m.Create(ctx, nil, "")
	require.NoError(t, err)

	// First writer commits and bumps the version.
	a, err := m.Load(ctx, sess.Token)
	require.NoError(t, err)
	b, err := m.Load(ctx, sess.Token)
	require.NoError(t, err)

	a.AppendMessage(models.RoleUser, "hello")
	require.NoError(t, m.Commit(ctx, a, nil))
	assert.EqualValues(t, 2, a.Version)

	// Second writer holds a stale version and must lose.
	b.AppendMessage(models.RoleUser, "stale")
	assert.ErrorIs(t, m.Commit(ctx, b, nil), ErrConflict)

	// The committed history is the winner's.
	final, err := m.Load(ctx, sess.Token)
	require.NoError(t, err)
	require.Len(t, final.History, 1)
	assert.Equal(t, "hello", final.History[0].Content)
}

func TestCommitSideEffectsAtomic(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	sess, err := m.Create(ctx, nil, "")
	require.NoError(t, err)

	flag := models.RiskFlag{Kind: models.RiskHighSuicide, Source: "C-SSRS", At: time.Now()}
	sess.RiskFlags = append(sess.RiskFlags, flag)
	fx := &SideEffects{
		Notifications: []models.Notification{{ID: "n1", AdminUserID: "admin-1", SessionToken: sess.Token, Priority: models.PriorityUrgent}},
		AuditLogs:     []models.AuditLog{{ID: "a1", SessionToken: sess.Token, EventType: models.AuditHighRiskDetected}},
	}
	require.NoError(t, m.Commit(ctx, sess, fx))

	assert.Len(t, m.Notifications(), 1)
	assert.Len(t, m.AuditLogs(), 1)

	// A stale commit must not persist its side effects.
	stale := sess.Clone()
	stale.Version = 1
	err = m.Commit(ctx, stale, &SideEffects{
		AuditLogs: []models.AuditLog{{ID: "a2", SessionToken: sess.Token, EventType: models.AuditHighRiskDetected}},
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Len(t, m.AuditLogs(), 1)
}

func TestResumeTokenLookup(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	sess, err := m.Create(ctx, nil, "")
	require.NoError(t, err)

	pausedAt := time.Now().UTC()
	expires := pausedAt.Add(24 * time.Hour)
	sess.Status = models.StatusPaused
	sess.PausedAt = &pausedAt
	sess.ExpiresAt = &expires
	sess.ResumeToken = NewToken()
	require.NoError(t, m.Commit(ctx, sess, nil))

	found, err := m.LoadByResumeToken(ctx, sess.ResumeToken)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, found.Token)

	_, err = m.LoadByResumeToken(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.LoadByResumeToken(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadByResumeTokenExpired(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	sess, err := m.Create(ctx, nil, "")
	require.NoError(t, err)

	pausedAt := time.Now().Add(-25 * time.Hour)
	expires := pausedAt.Add(24 * time.Hour)
	sess.Status = models.StatusPaused
	sess.PausedAt = &pausedAt
	sess.ExpiresAt = &expires
	sess.ResumeToken = NewToken()
	require.NoError(t, m.Commit(ctx, sess, nil))

	_, err = m.LoadByResumeToken(ctx, sess.ResumeToken)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestSweepExpired(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	fresh, err := m.Create(ctx, nil, "")
	require.NoError(t, err)

	expired, err := m.Create(ctx, nil, "")
	require.NoError(t, err)
	pausedAt := time.Now().Add(-30 * time.Hour)
	expiresAt := pausedAt.Add(24 * time.Hour)
	expired.Status = models.StatusPaused
	expired.PausedAt = &pausedAt
	expired.ExpiresAt = &expiresAt
	expired.ResumeToken = NewToken()
	require.NoError(t, m.Commit(ctx, expired, nil))

	n, err := m.SweepExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	swept, err := m.Load(ctx, expired.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbandoned, swept.Status)
	assert.Empty(t, swept.ResumeToken)

	// Active sessions untouched.
	untouched, err := m.Load(ctx, fresh.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, untouched.Status)

	// The transition is audited.
	var audited []models.AuditLog
	for _, a := range m.AuditLogs() {
		if a.SessionToken == expired.Token {
			audited = append(audited, a)
		}
	}
	require.Len(t, audited, 1)
	assert.Equal(t, models.AuditSessionAbandoned, audited[0].EventType)
}

func TestSweepPausedWithoutExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	broken, err := m.Create(ctx, nil, "")
	require.NoError(t, err)
	broken.Status = models.StatusPaused
	broken.ResumeToken = NewToken()
	require.NoError(t, m.Commit(ctx, broken, nil))

	n, err := m.SweepExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	swept, err := m.Load(ctx, broken.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbandoned, swept.Status)

	logs := m.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditInvariantViolated, logs[0].EventType)
}

func TestTokensAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok := NewToken()
		assert.False(t, seen[tok])
		seen[tok] = true
	}
}
