package escalate

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/intake/pkg/models"
	"github.com/meridianhealth/intake/pkg/store"
)

type recordingSink struct {
	mu        sync.Mutex
	delivered []models.Notification
	err       error
}

func (s *recordingSink) Deliver(_ context.Context, _ models.AdminUser, n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.delivered = append(s.delivered, n)
	return nil
}

func testAdmins() []models.AdminUser {
	return []models.AdminUser{
		{ID: "admin-1", Email: "oncall@clinic.example", Active: true},
		{ID: "admin-2", Email: "supervisor@clinic.example", Active: true},
	}
}

func testFlag() models.RiskFlag {
	return models.RiskFlag{
		Kind:   models.RiskHighSuicide,
		Source: "C-SSRS",
		Detail: "ideation with plan",
		At:     time.Now().UTC(),
	}
}

func TestPrepare(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("one notification per admin per flag", func(t *testing.T) {
		mem := store.NewMemory()
		mem.SetAdmins(testAdmins())
		esc := NewEscalator(mem, logger)

		sess := store.NewSession(nil, "Jordan")
		flags := []models.RiskFlag{
			testFlag(),
			{Kind: models.RiskSevereDepression, Source: "PHQ-9", Detail: "score 22/27", At: time.Now().UTC()},
		}
		fx, err := esc.Prepare(ctx, sess, flags)
		require.NoError(t, err)
		require.Len(t, fx.Notifications, 4)
		require.Len(t, fx.AuditLogs, 2)

		for _, n := range fx.Notifications {
			assert.Equal(t, models.PriorityUrgent, n.Priority)
			assert.Equal(t, sess.Token, n.SessionToken)
			assert.NotEmpty(t, n.ID)
			assert.NotEmpty(t, n.Body)
		}
		assert.Contains(t, fx.Notifications[0].Title, "high suicide risk")

		for _, a := range fx.AuditLogs {
			assert.Equal(t, models.AuditHighRiskDetected, a.EventType)
			assert.Equal(t, sess.Token, a.SessionToken)
		}
		assert.Equal(t, "high_suicide_risk", fx.AuditLogs[0].Detail["kind"])
	})

	t.Run("no flags means no records", func(t *testing.T) {
		mem := store.NewMemory()
		mem.SetAdmins(testAdmins())
		esc := NewEscalator(mem, logger)

		fx, err := esc.Prepare(ctx, store.NewSession(nil, ""), nil)
		require.NoError(t, err)
		assert.True(t, fx.Empty())
	})

	t.Run("no admins still writes audit trail", func(t *testing.T) {
		mem := store.NewMemory()
		esc := NewEscalator(mem, logger)

		fx, err := esc.Prepare(ctx, store.NewSession(nil, ""), []models.RiskFlag{testFlag()})
		require.NoError(t, err)
		assert.Empty(t, fx.Notifications)
		assert.Len(t, fx.AuditLogs, 1)
	})
}

func TestDeliver(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("delivers to every sink", func(t *testing.T) {
		mem := store.NewMemory()
		mem.SetAdmins(testAdmins())
		first := &recordingSink{}
		second := &recordingSink{}
		esc := NewEscalator(mem, logger, first, second)

		sess := store.NewSession(nil, "")
		fx, err := esc.Prepare(ctx, sess, []models.RiskFlag{testFlag()})
		require.NoError(t, err)

		esc.Deliver(ctx, fx.Notifications)
		assert.Len(t, first.delivered, 2)
		assert.Len(t, second.delivered, 2)
	})

	t.Run("sink failure does not stop the rest", func(t *testing.T) {
		mem := store.NewMemory()
		mem.SetAdmins(testAdmins())
		failing := &recordingSink{err: errors.New("pager unreachable")}
		working := &recordingSink{}
		esc := NewEscalator(mem, logger, failing, working)

		fx, err := esc.Prepare(ctx, store.NewSession(nil, ""), []models.RiskFlag{testFlag()})
		require.NoError(t, err)

		esc.Deliver(ctx, fx.Notifications)
		assert.Len(t, working.delivered, 2)
	})

	t.Run("records delivery outcome", func(t *testing.T) {
		mem := store.NewMemory()
		mem.SetAdmins(testAdmins())
		working := &recordingSink{}
		esc := NewEscalator(mem, logger, working)

		sess, err := mem.Create(ctx, nil, "")
		require.NoError(t, err)
		fx, err := esc.Prepare(ctx, sess, []models.RiskFlag{testFlag()})
		require.NoError(t, err)
		require.NoError(t, mem.Commit(ctx, sess, fx))

		esc.Deliver(ctx, fx.Notifications)
		for _, n := range mem.Notifications() {
			assert.Equal(t, models.DeliverySent, n.Delivery)
		}

		failing := NewEscalator(mem, logger, &recordingSink{err: errors.New("pager unreachable")})
		failing.Deliver(ctx, fx.Notifications)
		for _, n := range mem.Notifications() {
			assert.Equal(t, models.DeliveryFailed, n.Delivery)
		}
	})

	t.Run("unknown admin skipped", func(t *testing.T) {
		mem := store.NewMemory()
		sink := &recordingSink{}
		esc := NewEscalator(mem, logger, sink)

		esc.Deliver(ctx, []models.Notification{{ID: "n1", AdminUserID: "gone"}})
		assert.Empty(t, sink.delivered)
	})
}
