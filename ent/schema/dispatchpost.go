package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DispatchPost holds the schema definition for an operator-controllable
// station. Current dispatcher identities are realtime-only and live in the
// cache, not here.
type DispatchPost struct {
	ent.Schema
}

// Fields of the DispatchPost.
func (DispatchPost) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("post_id").
			Unique().
			Immutable(),
		field.String("foreign_id").
			Immutable().
			Comment("24-hex upstream identifier"),
		field.String("server_id").
			Immutable(),
		field.String("name"),
		field.String("point_id").
			Optional().
			Nillable().
			Comment("Resolved by name against the static point provider"),
		field.Float("latitude"),
		field.Float("longitude"),
		field.Int("difficulty").
			Min(1).
			Max(5),
		field.String("main_image_url").
			Optional(),
		field.String("detail_image_url").
			Optional(),
		field.Bool("deleted").
			Default(false),
		field.Time("update_time").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the DispatchPost.
func (DispatchPost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("server_id"),
		index.Fields("server_id", "foreign_id").
			Unique(),
	}
}
