package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VehicleSequence holds the schema definition for the vehicle consist of a
// journey. Identity is a UUIDv7; the resolve key carries a predicted
// sequence forward across runs of the same scheduled slot until the real
// one is observed.
type VehicleSequence struct {
	ent.Schema
}

// Fields of the VehicleSequence.
func (VehicleSequence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sequence_id").
			Unique().
			Immutable(),
		field.String("journey_id").
			Unique(),
		field.Enum("status").
			Values("PREDICTION", "REAL"),
		field.JSON("vehicles", []map[string]any{}).
			Comment("Railcar references with per-vehicle loads and optional named locomotives"),
		field.String("resolve_key").
			Unique().
			Comment("category‖number‖origin‖destination‖departure-time"),
		field.Time("update_time").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the VehicleSequence.
func (VehicleSequence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("journey", Journey.Type).
			Ref("sequence").
			Field("journey_id").
			Unique().
			Required(),
	}
}

// Indexes of the VehicleSequence.
func (VehicleSequence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
