package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/intake/ent/auditlog"
	"github.com/meridianhealth/intake/ent/intakereport"
	"github.com/meridianhealth/intake/ent/intakesession"
	"github.com/meridianhealth/intake/ent/notification"
	"github.com/meridianhealth/intake/pkg/models"
	"github.com/meridianhealth/intake/test/util"
)

func newTestEntStore(t *testing.T) *EntStore {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return NewEntStore(client, 1)
}

func TestEntStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestEntStore(t)

	patientID := "patient-7"
	sess, err := s.Create(ctx, &patientID, "Ada")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, sess.Status)
	assert.Equal(t, models.PhaseGreeting, sess.Phase)
	assert.EqualValues(t, 1, sess.Version)

	sess.AppendMessage(models.RoleUser, "I have not been sleeping")
	sess.AppendMessage(models.RoleAssistant, "How long has this been going on?")
	sess.Symptoms["sleep"] = true
	sess.ScreenerScores["phq9"] = &models.ScoredResult{
		ID:         "phq9",
		Score:      14,
		MaxScore:   27,
		Severity:   "moderately_severe",
		ItemScores: []int{2, 2, 2, 2, 2, 2, 1, 1, 0},
	}
	sess.ScreenersCompleted = append(sess.ScreenersCompleted, "phq9")
	require.NoError(t, s.Commit(ctx, sess, nil))
	assert.EqualValues(t, 2, sess.Version)

	// Evict so the reload exercises the database row, not the cache.
	s.Evict(sess.Token)
	loaded, err := s.Load(ctx, sess.Token)
	require.NoError(t, err)
	require.NotNil(t, loaded.PatientID)
	assert.Equal(t, "patient-7", *loaded.PatientID)
	assert.Equal(t, "Ada", loaded.UserName)
	require.Len(t, loaded.History, 2)
	assert.Equal(t, models.RoleUser, loaded.History[0].Role)
	assert.True(t, loaded.Symptoms["sleep"])
	require.Contains(t, loaded.ScreenerScores, "phq9")
	assert.Equal(t, 14, loaded.ScreenerScores["phq9"].Score)
	assert.Equal(t, []int{2, 2, 2, 2, 2, 2, 1, 1, 0}, loaded.ScreenerScores["phq9"].ItemScores)
	assert.EqualValues(t, 2, loaded.Version)

	_, err = s.Load(ctx, "missing-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntStoreCommitSideEffectsAtomic(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	s := NewEntStore(client, 1)

	sess, err := s.Create(ctx, nil, "")
	require.NoError(t, err)

	sess.RiskFlags = append(sess.RiskFlags, models.RiskFlag{
		Kind:   models.RiskHighSuicide,
		Source: "cssrs",
		Detail: "ideation with plan",
		At:     time.Now().UTC(),
	})
	fx := &SideEffects{
		Notifications: []models.Notification{{
			ID:           NewToken(),
			AdminUserID:  "admin-1",
			SessionToken: sess.Token,
			Priority:     models.PriorityUrgent,
			Title:        "High suicide risk detected",
			Body:         "Immediate review required",
		}},
		AuditLogs: []models.AuditLog{{
			ID:           NewToken(),
			SessionToken: sess.Token,
			EventType:    models.AuditHighRiskDetected,
			Detail:       map[string]any{"kind": "high_suicide_risk"},
		}},
	}
	require.NoError(t, s.Commit(ctx, sess, fx))

	n, err := client.Notification.Query().
		Where(notification.SessionTokenEQ(sess.Token)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", n.AdminUserID)
	assert.Equal(t, notification.PriorityUrgent, n.Priority)
	assert.Equal(t, "High suicide risk detected", n.Title)
	assert.Equal(t, notification.DeliveryStatusPending, n.DeliveryStatus)

	require.NoError(t, s.MarkDelivery(ctx, n.ID, models.DeliverySent))
	n, err = client.Notification.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, notification.DeliveryStatusSent, n.DeliveryStatus)

	a, err := client.AuditLog.Query().
		Where(auditlog.SessionTokenEQ(sess.Token)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AuditHighRiskDetected, a.EventType)
	assert.Equal(t, "high_suicide_risk", a.Detail["kind"])

	s.Evict(sess.Token)
	loaded, err := s.Load(ctx, sess.Token)
	require.NoError(t, err)
	require.Len(t, loaded.RiskFlags, 1)
	assert.Equal(t, models.RiskHighSuicide, loaded.RiskFlags[0].Kind)
}

func TestEntStoreCommitReport(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	s := NewEntStore(client, 1)

	sess, err := s.Create(ctx, nil, "")
	require.NoError(t, err)

	now := time.Now().UTC()
	sess.Status = models.StatusCompleted
	sess.CompletedAt = &now
	fx := &SideEffects{
		Report: &models.IntakeReport{
			SessionToken:   sess.Token,
			ChiefComplaint: "Persistent low mood and insomnia",
			RiskAssessment: "Low acute risk",
			GeneratedAt:    now,
		},
	}
	require.NoError(t, s.Commit(ctx, sess, fx))

	row, err := client.IntakeReport.Query().
		Where(intakereport.SessionTokenEQ(sess.Token)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Persistent low mood and insomnia", row.Report["chief_complaint"])

	s.Evict(sess.Token)
	loaded, err := s.Load(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, loaded.Status)
	require.NotNil(t, loaded.CompletedAt)
}

func TestEntStoreCommitConflict(t *testing.T) {
	ctx := context.Background()
	s := newTestEntStore(t)

	sess, err := s.Create(ctx, nil, "")
	require.NoError(t, err)

	stale := sess.Clone()
	sess.AppendMessage(models.RoleUser, "first writer")
	require.NoError(t, s.Commit(ctx, sess, nil))

	stale.AppendMessage(models.RoleUser, "second writer")
	err = s.Commit(ctx, stale, nil)
	assert.ErrorIs(t, err, ErrConflict)

	// The winning write survives intact.
	s.Evict(sess.Token)
	loaded, err := s.Load(ctx, sess.Token)
	require.NoError(t, err)
	require.Len(t, loaded.History, 1)
	assert.Equal(t, "first writer", loaded.History[0].Content)
}

func TestEntStoreResumeTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestEntStore(t)

	sess, err := s.Create(ctx, nil, "")
	require.NoError(t, err)

	pausedAt := time.Now().UTC()
	expiresAt := pausedAt.Add(24 * time.Hour)
	sess.Status = models.StatusPaused
	sess.PausedAt = &pausedAt
	sess.ExpiresAt = &expiresAt
	sess.ResumeToken = NewToken()
	require.NoError(t, s.Commit(ctx, sess, nil))

	loaded, err := s.LoadByResumeToken(ctx, sess.ResumeToken)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, loaded.Token)
	assert.Equal(t, models.StatusPaused, loaded.Status)

	_, err = s.LoadByResumeToken(ctx, "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)

	// Resuming clears the pause fields; the old resume token stops
	// resolving.
	oldToken := sess.ResumeToken
	sess.Status = models.StatusActive
	sess.PausedAt = nil
	sess.ExpiresAt = nil
	sess.ResumeToken = ""
	require.NoError(t, s.Commit(ctx, sess, nil))

	_, err = s.LoadByResumeToken(ctx, oldToken)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntStoreResumeTokenExpired(t *testing.T) {
	ctx := context.Background()
	s := newTestEntStore(t)

	sess, err := s.Create(ctx, nil, "")
	require.NoError(t, err)

	pausedAt := time.Now().UTC().Add(-25 * time.Hour)
	expiresAt := pausedAt.Add(24 * time.Hour)
	sess.Status = models.StatusPaused
	sess.PausedAt = &pausedAt
	sess.ExpiresAt = &expiresAt
	sess.ResumeToken = NewToken()
	require.NoError(t, s.Commit(ctx, sess, nil))

	_, err = s.LoadByResumeToken(ctx, sess.ResumeToken)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestEntStoreSweepExpired(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	s := NewEntStore(client, 1)

	pause := func(offset time.Duration) *models.Session {
		sess, err := s.Create(ctx, nil, "")
		require.NoError(t, err)
		pausedAt := time.Now().UTC().Add(offset - 24*time.Hour)
		expiresAt := pausedAt.Add(24 * time.Hour)
		sess.Status = models.StatusPaused
		sess.PausedAt = &pausedAt
		sess.ExpiresAt = &expiresAt
		sess.ResumeToken = NewToken()
		require.NoError(t, s.Commit(ctx, sess, nil))
		return sess
	}

	expired := pause(-1 * time.Hour)
	live := pause(1 * time.Hour)

	count, err := s.SweepExpired(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	loaded, err := s.Load(ctx, expired.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbandoned, loaded.Status)
	assert.Empty(t, loaded.ResumeToken)

	stillPaused, err := s.LoadByResumeToken(ctx, live.ResumeToken)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaused, stillPaused.Status)

	// The transition is audited in the same transaction.
	a, err := client.AuditLog.Query().
		Where(auditlog.SessionTokenEQ(expired.Token)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AuditSessionAbandoned, a.EventType)

	// Second sweep finds nothing new.
	count, err = s.SweepExpired(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEntStoreSweepPausedWithoutExpiry(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	s := NewEntStore(client, 1)

	sess, err := s.Create(ctx, nil, "")
	require.NoError(t, err)

	// Corrupt the row directly: paused with no expiry can never be swept
	// by the expiry predicate alone.
	err = client.IntakeSession.UpdateOneID(sess.Token).
		SetStatus(intakesession.StatusPaused).
		SetResumeToken(NewToken()).
		Exec(ctx)
	require.NoError(t, err)
	s.Evict(sess.Token)

	count, err := s.SweepExpired(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	loaded, err := s.Load(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbandoned, loaded.Status)

	a, err := client.AuditLog.Query().
		Where(auditlog.SessionTokenEQ(sess.Token)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AuditInvariantViolated, a.EventType)
}

func TestEntStoreActiveAdmins(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	s := NewEntStore(client, 1)

	_, err := client.AdminUser.Create().
		SetID("admin-1").
		SetEmail("oncall@clinic.example").
		SetActive(true).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.AdminUser.Create().
		SetID("admin-2").
		SetEmail("former@clinic.example").
		SetActive(false).
		Save(ctx)
	require.NoError(t, err)

	admins, err := s.ActiveAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin-1", admins[0].ID)
	assert.Equal(t, "oncall@clinic.example", admins[0].Email)
}
