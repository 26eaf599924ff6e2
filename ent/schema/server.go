package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Server holds the schema definition for a game server. The id is the
// UUIDv5 of the upstream foreign id; online state is intentionally absent —
// it lives only in the realtime cache.
type Server struct {
	ent.Schema
}

// Fields of the Server.
func (Server) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("server_id").
			Unique().
			Immutable(),
		field.String("foreign_id").
			Unique().
			Immutable().
			Comment("24-hex upstream identifier"),
		field.String("code").
			Comment("Short server code, e.g. 'de1'"),
		field.Enum("region").
			Values("ASIA", "EUROPE", "US_NORTH"),
		field.String("scenery").
			Optional(),
		field.Int("utc_offset_hours").
			Default(0).
			Comment("May change with DST"),
		field.String("language").
			Optional().
			Comment("Spoken language tag"),
		field.JSON("tags", []string{}).
			Optional(),
		field.Bool("deleted").
			Default(false),
		field.Time("registered_since").
			Comment("Decoded from the foreign id's timestamp prefix"),
		field.Time("update_time").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Server.
func (Server) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code"),
		index.Fields("deleted"),
	}
}
