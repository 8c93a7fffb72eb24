package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AdminUser holds the schema definition for the AdminUser entity. Admin
// provisioning itself is out of scope; the engine only reads the active set
// for escalation fan-out.
type AdminUser struct {
	ent.Schema
}

// Fields of the AdminUser.
func (AdminUser) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("admin_user_id").
			Unique().
			Immutable(),
		field.String("email").
			Unique(),
		field.Bool("active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
