package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// IntakeReport holds the schema definition for the IntakeReport entity.
// Exactly one per completed session.
type IntakeReport struct {
	ent.Schema
}

// Fields of the IntakeReport.
func (IntakeReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.String("session_token").
			Unique().
			Immutable(),
		field.JSON("report", map[string]any{}).
			Comment("Structured clinical report as synthesized"),
		field.Time("generated_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the IntakeReport.
func (IntakeReport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", IntakeSession.Type).
			Ref("report").
			Field("session_token").
			Unique().
			Required().
			Immutable(),
	}
}
