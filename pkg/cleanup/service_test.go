package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/intake/pkg/models"
	"github.com/meridianhealth/intake/pkg/store"
)

func pauseSession(t *testing.T, mem *store.Memory, expired bool) *models.Session {
	t.Helper()
	ctx := context.Background()
	sess, err := mem.Create(ctx, nil, "")
	require.NoError(t, err)

	now := time.Now().UTC()
	expiry := now.Add(24 * time.Hour)
	if expired {
		expiry = now.Add(-time.Minute)
	}
	sess.Status = models.StatusPaused
	sess.PausedAt = &now
	sess.ExpiresAt = &expiry
	sess.ResumeToken = store.NewToken()
	require.NoError(t, mem.Commit(ctx, sess, nil))
	return sess
}

func TestSweepAbandonsExpiredSessions(t *testing.T) {
	mem := store.NewMemory()
	expired := pauseSession(t, mem, true)
	fresh := pauseSession(t, mem, false)

	svc := NewService(DefaultConfig(), mem)
	svc.Sweep(context.Background())

	got, err := mem.Load(context.Background(), expired.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbandoned, got.Status)
	assert.Empty(t, got.ResumeToken)

	got, err = mem.Load(context.Background(), fresh.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaused, got.Status)
}

func TestSweepIsIdempotent(t *testing.T) {
	mem := store.NewMemory()
	sess := pauseSession(t, mem, true)

	svc := NewService(DefaultConfig(), mem)
	svc.Sweep(context.Background())
	svc.Sweep(context.Background())

	got, err := mem.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbandoned, got.Status)
}

func TestStartStop(t *testing.T) {
	mem := store.NewMemory()
	sess := pauseSession(t, mem, true)

	svc := NewService(Config{Interval: 10 * time.Millisecond, EvictAfter: time.Hour}, mem)
	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		got, err := mem.Load(context.Background(), sess.Token)
		return err == nil && got.Status == models.StatusAbandoned
	}, time.Second, 5*time.Millisecond)

	svc.Stop()
	// Stop twice is a no-op.
	svc.Stop()
}
