package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
// One row per admin recipient per risk escalation; written in the same
// transaction as the session update that produced it.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("notification_id").
			Unique().
			Immutable(),
		field.String("session_token").
			Immutable(),
		field.String("admin_user_id"),
		field.Enum("priority").
			Values("urgent", "normal").
			Default("normal"),
		field.String("title"),
		field.Text("body"),
		field.Enum("delivery_status").
			Values("pending", "sent", "failed").
			Default("pending").
			Comment("External delivery is best-effort; the row itself is the at-least-once record"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", IntakeSession.Type).
			Ref("notifications").
			Field("session_token").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("admin_user_id", "created_at"),
	}
}
