package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Journey holds the schema definition for one scheduled train run on one
// server. The id is the UUIDv5 of the upstream run identifier.
type Journey struct {
	ent.Schema
}

// Fields of the Journey.
func (Journey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("journey_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Unique().
			Immutable().
			Comment("Upstream run identifier"),
		field.String("server_id").
			Immutable(),
		field.String("train_number"),
		field.String("train_name").
			Optional(),
		field.String("category").
			Comment("Transport category derived from the train type code"),
		field.Time("first_seen_time").
			Optional().
			Nillable().
			Comment("Null until the run first appears live"),
		field.Time("last_seen_time").
			Optional().
			Nillable().
			Comment("Set when the run disappears from the live listing"),
		field.Bool("cancelled").
			Default(false),
		field.String("continuation_journey_id").
			Optional().
			Nillable().
			Comment("The journey this one flows into at its terminal point"),
		field.String("state_checksum").
			Optional().
			Comment("Canonical-JSON checksum of the reconciled state, for update suppression"),
		field.Bool("deleted").
			Default(false),
		field.Time("update_time").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Journey.
func (Journey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", JourneyEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sequence", VehicleSequence.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Journey.
func (Journey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("server_id"),
		index.Fields("server_id", "train_number"),
		index.Fields("update_time"),
	}
}
