package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JourneyEvent holds the schema definition for one scheduled/realised
// arrival or departure of a journey at one point. The id is the UUIDv5 of
// (journey id, event index, event type).
//
// A partial covering index on playable events — used by cancellation
// inference — is created via migration SQL, not here (see
// pkg/database/migrations).
type JourneyEvent struct {
	ent.Schema
}

// Fields of the JourneyEvent.
func (JourneyEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("journey_id").
			Immutable(),
		field.Int("event_index").
			NonNegative().
			Comment("Dense ordinal along route order, starting at 0"),
		field.Enum("event_type").
			Values("ARRIVAL", "DEPARTURE"),
		field.String("point_id"),
		field.String("point_name").
			Optional(),
		field.Bool("in_playable_border").
			Default(false).
			Comment("True iff the point lies inside the server's playable polygon"),
		field.Time("scheduled_time").
			Comment("Server-local schedule time"),
		field.Time("realtime_time").
			Optional().
			Nillable(),
		field.Enum("realtime_time_type").
			Values("SCHEDULE", "PREDICTION", "REAL").
			Default("SCHEDULE"),
		field.JSON("transport", map[string]any{}).
			Optional().
			Comment("Embedded descriptor: category/number/line/label/type/max speed"),
		field.Enum("stop_type").
			Values("NONE", "NON_PASSENGER", "PASSENGER").
			Default("NONE"),
		field.Int("scheduled_platform").
			Optional().
			Nillable(),
		field.Int("scheduled_track").
			Optional().
			Nillable(),
		field.Int("realtime_platform").
			Optional().
			Nillable(),
		field.Int("realtime_track").
			Optional().
			Nillable(),
		field.Bool("cancelled").
			Default(false),
		field.Bool("additional").
			Default(false),
	}
}

// Edges of the JourneyEvent.
func (JourneyEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("journey", Journey.Type).
			Ref("events").
			Field("journey_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JourneyEvent.
func (JourneyEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("journey_id", "event_index").
			Unique(),
		index.Fields("point_id"),
	}
}
