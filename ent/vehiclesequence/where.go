// Code generated by ent, DO NOT EDIT.

package vehiclesequence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/simtrack/sit-collector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldContainsFold(FieldID, id))
}

// JourneyID applies equality check predicate on the "journey_id" field. It's identical to JourneyIDEQ.
func JourneyID(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldEQ(FieldJourneyID, v))
}

// ResolveKey applies equality check predicate on the "resolve_key" field. It's identical to ResolveKeyEQ.
func ResolveKey(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldEQ(FieldResolveKey, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldEQ(FieldUpdateTime, v))
}

// JourneyIDEQ applies the EQ predicate on the "journey_id" field.
func JourneyIDEQ(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldEQ(FieldJourneyID, v))
}

// JourneyIDNEQ applies the NEQ predicate on the "journey_id" field.
func JourneyIDNEQ(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldNEQ(FieldJourneyID, v))
}

// JourneyIDIn applies the In predicate on the "journey_id" field.
func JourneyIDIn(vs ...string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldIn(FieldJourneyID, vs...))
}

// JourneyIDNotIn applies the NotIn predicate on the "journey_id" field.
func JourneyIDNotIn(vs ...string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldNotIn(FieldJourneyID, vs...))
}

// JourneyIDGT applies the GT predicate on the "journey_id" field.
func JourneyIDGT(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldGT(FieldJourneyID, v))
}

// JourneyIDGTE applies the GTE predicate on the "journey_id" field.
func JourneyIDGTE(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldGTE(FieldJourneyID, v))
}

// JourneyIDLT applies the LT predicate on the "journey_id" field.
func JourneyIDLT(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldLT(FieldJourneyID, v))
}

// JourneyIDLTE applies the LTE predicate on the "journey_id" field.
func JourneyIDLTE(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldLTE(FieldJourneyID, v))
}

// JourneyIDContains applies the Contains predicate on the "journey_id" field.
func JourneyIDContains(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldContains(FieldJourneyID, v))
}

// JourneyIDHasPrefix applies the HasPrefix predicate on the "journey_id" field.
func JourneyIDHasPrefix(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldHasPrefix(FieldJourneyID, v))
}

// JourneyIDHasSuffix applies the HasSuffix predicate on the "journey_id" field.
func JourneyIDHasSuffix(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldHasSuffix(FieldJourneyID, v))
}

// JourneyIDEqualFold applies the EqualFold predicate on the "journey_id" field.
func JourneyIDEqualFold(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldEqualFold(FieldJourneyID, v))
}

// JourneyIDContainsFold applies the ContainsFold predicate on the "journey_id" field.
func JourneyIDContainsFold(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldContainsFold(FieldJourneyID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldNotIn(FieldStatus, vs...))
}

// ResolveKeyEQ applies the EQ predicate on the "resolve_key" field.
func ResolveKeyEQ(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldEQ(FieldResolveKey, v))
}

// ResolveKeyNEQ applies the NEQ predicate on the "resolve_key" field.
func ResolveKeyNEQ(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldNEQ(FieldResolveKey, v))
}

// ResolveKeyIn applies the In predicate on the "resolve_key" field.
func ResolveKeyIn(vs ...string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldIn(FieldResolveKey, vs...))
}

// ResolveKeyNotIn applies the NotIn predicate on the "resolve_key" field.
func ResolveKeyNotIn(vs ...string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldNotIn(FieldResolveKey, vs...))
}

// ResolveKeyGT applies the GT predicate on the "resolve_key" field.
func ResolveKeyGT(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldGT(FieldResolveKey, v))
}

// ResolveKeyGTE applies the GTE predicate on the "resolve_key" field.
func ResolveKeyGTE(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldGTE(FieldResolveKey, v))
}

// ResolveKeyLT applies the LT predicate on the "resolve_key" field.
func ResolveKeyLT(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldLT(FieldResolveKey, v))
}

// ResolveKeyLTE applies the LTE predicate on the "resolve_key" field.
func ResolveKeyLTE(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldLTE(FieldResolveKey, v))
}

// ResolveKeyContains applies the Contains predicate on the "resolve_key" field.
func ResolveKeyContains(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldContains(FieldResolveKey, v))
}

// ResolveKeyHasPrefix applies the HasPrefix predicate on the "resolve_key" field.
func ResolveKeyHasPrefix(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldHasPrefix(FieldResolveKey, v))
}

// ResolveKeyHasSuffix applies the HasSuffix predicate on the "resolve_key" field.
func ResolveKeyHasSuffix(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldHasSuffix(FieldResolveKey, v))
}

// ResolveKeyEqualFold applies the EqualFold predicate on the "resolve_key" field.
func ResolveKeyEqualFold(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldEqualFold(FieldResolveKey, v))
}

// ResolveKeyContainsFold applies the ContainsFold predicate on the "resolve_key" field.
func ResolveKeyContainsFold(v string) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldContainsFold(FieldResolveKey, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.FieldLTE(FieldUpdateTime, v))
}

// HasJourney applies the HasEdge predicate on the "journey" edge.
func HasJourney() predicate.VehicleSequence {
	return predicate.VehicleSequence(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, JourneyTable, JourneyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJourneyWith applies the HasEdge predicate on the "journey" edge with a given conditions (other predicates).
func HasJourneyWith(preds ...predicate.Journey) predicate.VehicleSequence {
	return predicate.VehicleSequence(func(s *sql.Selector) {
		step := newJourneyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VehicleSequence) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VehicleSequence) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VehicleSequence) predicate.VehicleSequence {
	return predicate.VehicleSequence(sql.NotPredicates(p))
}
