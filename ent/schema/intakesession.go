package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IntakeSession holds the schema definition for the IntakeSession entity.
// One row per intake conversation; the engine is the only writer and commits
// under optimistic concurrency (the version column).
type IntakeSession struct {
	ent.Schema
}

// Fields of the IntakeSession.
func (IntakeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_token").
			Unique().
			Immutable().
			Comment("Opaque URL-safe session token"),
		field.String("patient_id").
			Optional().
			Nillable().
			Comment("Null for anonymous sessions"),
		field.String("user_name").
			Optional(),
		field.String("current_phase").
			Default("greeting"),
		field.Enum("status").
			Values("active", "paused", "completed", "abandoned").
			Default("active"),
		field.JSON("conversation_history", []map[string]any{}).
			Optional(),
		field.JSON("extracted_data", map[string]any{}).
			Optional(),
		field.JSON("symptoms_detected", map[string]bool{}).
			Optional(),
		field.JSON("completed_phases", []string{}).
			Optional(),
		field.JSON("completed_screeners", []string{}).
			Optional(),
		field.JSON("screener_scores", map[string]any{}).
			Optional(),
		field.String("current_screener").
			Optional().
			Comment("Active screener id; empty when no screener in flight"),
		field.JSON("screener_progress", []int{}).
			Optional().
			Comment("Partial response vector for the active screener"),
		field.JSON("risk_flags", []map[string]any{}).
			Optional(),
		field.Int("turns_since_extract").
			Default(0),
		field.Time("paused_at").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("paused_at + pause TTL; resume past this marks the session abandoned"),
		field.String("resume_token").
			Optional().
			Nillable().
			Unique().
			Comment("Unguessable continuation token, unique while valid"),
		field.Int64("version").
			Default(1).
			Comment("Monotonic optimistic-concurrency version"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the IntakeSession.
func (IntakeSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("report", IntakeReport.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("notifications", Notification.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audit_logs", AuditLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the IntakeSession.
func (IntakeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "expires_at"),
	}
}
