package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity. Append-only;
// rows are never updated or deleted by the application (retention only
// evicts cache entries, never durable audit rows).
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("session_token").
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("e.g. session_created, high_risk_detected"),
		field.JSON("detail", map[string]any{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AuditLog.
func (AuditLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", IntakeSession.Type).
			Ref("audit_logs").
			Field("session_token").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_token", "created_at"),
		index.Fields("event_type"),
	}
}
