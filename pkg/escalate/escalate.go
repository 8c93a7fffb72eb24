// Package escalate turns risk flags into persisted notifications and audit
// records, then delivers them to external channels. Persistence is atomic
// with the session write that raised the flag; delivery is best-effort and
// never blocks or fails the conversation.
package escalate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meridianhealth/intake/pkg/metrics"
	"github.com/meridianhealth/intake/pkg/models"
	"github.com/meridianhealth/intake/pkg/store"
)

// Sink delivers a persisted notification to an external channel (pager,
// email, chat). Implementations must be safe for concurrent use.
type Sink interface {
	Deliver(ctx context.Context, admin models.AdminUser, n models.Notification) error
}

// Escalator fans risk flags out to every active admin.
type Escalator struct {
	store  store.Store
	sinks  []Sink
	logger *slog.Logger
}

// NewEscalator creates an escalator. Sinks may be empty; persistence alone
// already satisfies the escalation invariant.
func NewEscalator(s store.Store, logger *slog.Logger, sinks ...Sink) *Escalator {
	return &Escalator{store: s, sinks: sinks, logger: logger.With("component", "escalator")}
}

// Prepare builds the notification and audit records for newly raised flags.
// The caller merges them into the side effects of the session commit so
// that flag, notifications, and audit trail land in one transaction.
func (e *Escalator) Prepare(ctx context.Context, sess *models.Session, flags []models.RiskFlag) (*store.SideEffects, error) {
	if len(flags) == 0 {
		return &store.SideEffects{}, nil
	}
	admins, err := e.store.ActiveAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active admins: %w", err)
	}
	if len(admins) == 0 {
		e.logger.Warn("no active admins to notify", "session_token", sess.Token, "flags", len(flags))
	}

	fx := &store.SideEffects{}
	now := time.Now().UTC()
	for _, flag := range flags {
		metrics.RiskEscalations.WithLabelValues(string(flag.Kind)).Inc()
		for _, admin := range admins {
			fx.Notifications = append(fx.Notifications, models.Notification{
				ID:           uuid.NewString(),
				AdminUserID:  admin.ID,
				SessionToken: sess.Token,
				Priority:     models.PriorityUrgent,
				Title:        title(flag),
				Body:         body(sess, flag),
				CreatedAt:    now,
			})
		}
		fx.AuditLogs = append(fx.AuditLogs, models.AuditLog{
			ID:           uuid.NewString(),
			SessionToken: sess.Token,
			EventType:    models.AuditHighRiskDetected,
			Detail: map[string]any{
				"kind":   string(flag.Kind),
				"source": flag.Source,
				"detail": flag.Detail,
			},
			CreatedAt: now,
		})
	}
	return fx, nil
}

// Deliver pushes committed notifications to the configured sinks. Failures
// are logged and swallowed; the rows are already persisted and delivery
// will be retried out of band.
func (e *Escalator) Deliver(ctx context.Context, notifications []models.Notification) {
	if len(e.sinks) == 0 || len(notifications) == 0 {
		return
	}
	admins, err := e.store.ActiveAdmins(ctx)
	if err != nil {
		e.logger.Error("loading admins for delivery", "error", err)
		return
	}
	byID := make(map[string]models.AdminUser, len(admins))
	for _, a := range admins {
		byID[a.ID] = a
	}
	for _, n := range notifications {
		admin, ok := byID[n.AdminUserID]
		if !ok {
			continue
		}
		status := models.DeliverySent
		for _, sink := range e.sinks {
			if err := sink.Deliver(ctx, admin, n); err != nil {
				status = models.DeliveryFailed
				e.logger.Error("notification delivery failed",
					"notification_id", n.ID,
					"admin_user_id", n.AdminUserID,
					"error", err)
			}
		}
		if err := e.store.MarkDelivery(ctx, n.ID, status); err != nil {
			e.logger.Error("recording delivery status failed",
				"notification_id", n.ID,
				"error", err)
		}
	}
}

func title(flag models.RiskFlag) string {
	return fmt.Sprintf("URGENT: %s detected in intake session", strings.ReplaceAll(string(flag.Kind), "_", " "))
}

func body(sess *models.Session, flag models.RiskFlag) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Risk signal: %s\n", flag.Kind)
	fmt.Fprintf(&b, "Source: %s\n", flag.Source)
	fmt.Fprintf(&b, "Detail: %s\n", flag.Detail)
	fmt.Fprintf(&b, "Session: %s\n", sess.Token)
	if sess.PatientID != nil {
		fmt.Fprintf(&b, "Patient: %s\n", *sess.PatientID)
	}
	fmt.Fprintf(&b, "Phase: %s\n", sess.Phase)
	b.WriteString("Review the session and initiate the safety protocol immediately.")
	return b.String()
}
