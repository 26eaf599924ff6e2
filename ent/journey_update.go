// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/simtrack/sit-collector/ent/journey"
	"github.com/simtrack/sit-collector/ent/journeyevent"
	"github.com/simtrack/sit-collector/ent/predicate"
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
)

// JourneyUpdate is the builder for updating Journey entities.
type JourneyUpdate struct {
	config
	hooks    []Hook
	mutation *JourneyMutation
}

// Where appends a list predicates to the JourneyUpdate builder.
func (_u *JourneyUpdate) Where(ps ...predicate.Journey) *JourneyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTrainNumber sets the "train_number" field.
func (_u *JourneyUpdate) SetTrainNumber(v string) *JourneyUpdate {
	_u.mutation.SetTrainNumber(v)
	return _u
}

// SetNillableTrainNumber sets the "train_number" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableTrainNumber(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetTrainNumber(*v)
	}
	return _u
}

// SetTrainName sets the "train_name" field.
func (_u *JourneyUpdate) SetTrainName(v string) *JourneyUpdate {
	_u.mutation.SetTrainName(v)
	return _u
}

// SetNillableTrainName sets the "train_name" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableTrainName(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetTrainName(*v)
	}
	return _u
}

// ClearTrainName clears the value of the "train_name" field.
func (_u *JourneyUpdate) ClearTrainName() *JourneyUpdate {
	_u.mutation.ClearTrainName()
	return _u
}

// SetCategory sets the "category" field.
func (_u *JourneyUpdate) SetCategory(v string) *JourneyUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableCategory(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetFirstSeenTime sets the "first_seen_time" field.
func (_u *JourneyUpdate) SetFirstSeenTime(v time.Time) *JourneyUpdate {
	_u.mutation.SetFirstSeenTime(v)
	return _u
}

// SetNillableFirstSeenTime sets the "first_seen_time" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableFirstSeenTime(v *time.Time) *JourneyUpdate {
	if v != nil {
		_u.SetFirstSeenTime(*v)
	}
	return _u
}

// ClearFirstSeenTime clears the value of the "first_seen_time" field.
func (_u *JourneyUpdate) ClearFirstSeenTime() *JourneyUpdate {
	_u.mutation.ClearFirstSeenTime()
	return _u
}

// SetLastSeenTime sets the "last_seen_time" field.
func (_u *JourneyUpdate) SetLastSeenTime(v time.Time) *JourneyUpdate {
	_u.mutation.SetLastSeenTime(v)
	return _u
}

// SetNillableLastSeenTime sets the "last_seen_time" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableLastSeenTime(v *time.Time) *JourneyUpdate {
	if v != nil {
		_u.SetLastSeenTime(*v)
	}
	return _u
}

// ClearLastSeenTime clears the value of the "last_seen_time" field.
func (_u *JourneyUpdate) ClearLastSeenTime() *JourneyUpdate {
	_u.mutation.ClearLastSeenTime()
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *JourneyUpdate) SetCancelled(v bool) *JourneyUpdate {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableCancelled(v *bool) *JourneyUpdate {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetContinuationJourneyID sets the "continuation_journey_id" field.
func (_u *JourneyUpdate) SetContinuationJourneyID(v string) *JourneyUpdate {
	_u.mutation.SetContinuationJourneyID(v)
	return _u
}

// SetNillableContinuationJourneyID sets the "continuation_journey_id" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableContinuationJourneyID(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetContinuationJourneyID(*v)
	}
	return _u
}

// ClearContinuationJourneyID clears the value of the "continuation_journey_id" field.
func (_u *JourneyUpdate) ClearContinuationJourneyID() *JourneyUpdate {
	_u.mutation.ClearContinuationJourneyID()
	return _u
}

// SetStateChecksum sets the "state_checksum" field.
func (_u *JourneyUpdate) SetStateChecksum(v string) *JourneyUpdate {
	_u.mutation.SetStateChecksum(v)
	return _u
}

// SetNillableStateChecksum sets the "state_checksum" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableStateChecksum(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetStateChecksum(*v)
	}
	return _u
}

// ClearStateChecksum clears the value of the "state_checksum" field.
func (_u *JourneyUpdate) ClearStateChecksum() *JourneyUpdate {
	_u.mutation.ClearStateChecksum()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *JourneyUpdate) SetDeleted(v bool) *JourneyUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableDeleted(v *bool) *JourneyUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *JourneyUpdate) SetUpdateTime(v time.Time) *JourneyUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// AddEventIDs adds the "events" edge to the JourneyEvent entity by IDs.
func (_u *JourneyUpdate) AddEventIDs(ids ...string) *JourneyUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the JourneyEvent entity.
func (_u *JourneyUpdate) AddEvents(v ...*JourneyEvent) *JourneyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetSequenceID sets the "sequence" edge to the VehicleSequence entity by ID.
func (_u *JourneyUpdate) SetSequenceID(id string) *JourneyUpdate {
	_u.mutation.SetSequenceID(id)
	return _u
}

// SetNillableSequenceID sets the "sequence" edge to the VehicleSequence entity by ID if the given value is not nil.
func (_u *JourneyUpdate) SetNillableSequenceID(id *string) *JourneyUpdate {
	if id != nil {
		_u = _u.SetSequenceID(*id)
	}
	return _u
}

// SetSequence sets the "sequence" edge to the VehicleSequence entity.
func (_u *JourneyUpdate) SetSequence(v *VehicleSequence) *JourneyUpdate {
	return _u.SetSequenceID(v.ID)
}

// Mutation returns the JourneyMutation object of the builder.
func (_u *JourneyUpdate) Mutation() *JourneyMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the JourneyEvent entity.
func (_u *JourneyUpdate) ClearEvents() *JourneyUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to JourneyEvent entities by IDs.
func (_u *JourneyUpdate) RemoveEventIDs(ids ...string) *JourneyUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to JourneyEvent entities.
func (_u *JourneyUpdate) RemoveEvents(v ...*JourneyEvent) *JourneyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearSequence clears the "sequence" edge to the VehicleSequence entity.
func (_u *JourneyUpdate) ClearSequence() *JourneyUpdate {
	_u.mutation.ClearSequence()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JourneyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JourneyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JourneyUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := journey.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *JourneyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(journey.Table, journey.Columns, sqlgraph.NewFieldSpec(journey.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TrainNumber(); ok {
		_spec.SetField(journey.FieldTrainNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrainName(); ok {
		_spec.SetField(journey.FieldTrainName, field.TypeString, value)
	}
	if _u.mutation.TrainNameCleared() {
		_spec.ClearField(journey.FieldTrainName, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(journey.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeenTime(); ok {
		_spec.SetField(journey.FieldFirstSeenTime, field.TypeTime, value)
	}
	if _u.mutation.FirstSeenTimeCleared() {
		_spec.ClearField(journey.FieldFirstSeenTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeenTime(); ok {
		_spec.SetField(journey.FieldLastSeenTime, field.TypeTime, value)
	}
	if _u.mutation.LastSeenTimeCleared() {
		_spec.ClearField(journey.FieldLastSeenTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(journey.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContinuationJourneyID(); ok {
		_spec.SetField(journey.FieldContinuationJourneyID, field.TypeString, value)
	}
	if _u.mutation.ContinuationJourneyIDCleared() {
		_spec.ClearField(journey.FieldContinuationJourneyID, field.TypeString)
	}
	if value, ok := _u.mutation.StateChecksum(); ok {
		_spec.SetField(journey.FieldStateChecksum, field.TypeString, value)
	}
	if _u.mutation.StateChecksumCleared() {
		_spec.ClearField(journey.FieldStateChecksum, field.TypeString)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(journey.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(journey.FieldUpdateTime, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   journey.EventsTable,
			Columns: []string{journey.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   journey.EventsTable,
			Columns: []string{journey.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   journey.EventsTable,
			Columns: []string{journey.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SequenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   journey.SequenceTable,
			Columns: []string{journey.SequenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vehiclesequence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SequenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   journey.SequenceTable,
			Columns: []string{journey.SequenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vehiclesequence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JourneyUpdateOne is the builder for updating a single Journey entity.
type JourneyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JourneyMutation
}

// SetTrainNumber sets the "train_number" field.
func (_u *JourneyUpdateOne) SetTrainNumber(v string) *JourneyUpdateOne {
	_u.mutation.SetTrainNumber(v)
	return _u
}

// SetNillableTrainNumber sets the "train_number" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableTrainNumber(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetTrainNumber(*v)
	}
	return _u
}

// SetTrainName sets the "train_name" field.
func (_u *JourneyUpdateOne) SetTrainName(v string) *JourneyUpdateOne {
	_u.mutation.SetTrainName(v)
	return _u
}

// SetNillableTrainName sets the "train_name" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableTrainName(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetTrainName(*v)
	}
	return _u
}

// ClearTrainName clears the value of the "train_name" field.
func (_u *JourneyUpdateOne) ClearTrainName() *JourneyUpdateOne {
	_u.mutation.ClearTrainName()
	return _u
}

// SetCategory sets the "category" field.
func (_u *JourneyUpdateOne) SetCategory(v string) *JourneyUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableCategory(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetFirstSeenTime sets the "first_seen_time" field.
func (_u *JourneyUpdateOne) SetFirstSeenTime(v time.Time) *JourneyUpdateOne {
	_u.mutation.SetFirstSeenTime(v)
	return _u
}

// SetNillableFirstSeenTime sets the "first_seen_time" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableFirstSeenTime(v *time.Time) *JourneyUpdateOne {
	if v != nil {
		_u.SetFirstSeenTime(*v)
	}
	return _u
}

// ClearFirstSeenTime clears the value of the "first_seen_time" field.
func (_u *JourneyUpdateOne) ClearFirstSeenTime() *JourneyUpdateOne {
	_u.mutation.ClearFirstSeenTime()
	return _u
}

// SetLastSeenTime sets the "last_seen_time" field.
func (_u *JourneyUpdateOne) SetLastSeenTime(v time.Time) *JourneyUpdateOne {
	_u.mutation.SetLastSeenTime(v)
	return _u
}

// SetNillableLastSeenTime sets the "last_seen_time" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableLastSeenTime(v *time.Time) *JourneyUpdateOne {
	if v != nil {
		_u.SetLastSeenTime(*v)
	}
	return _u
}

// ClearLastSeenTime clears the value of the "last_seen_time" field.
func (_u *JourneyUpdateOne) ClearLastSeenTime() *JourneyUpdateOne {
	_u.mutation.ClearLastSeenTime()
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *JourneyUpdateOne) SetCancelled(v bool) *JourneyUpdateOne {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableCancelled(v *bool) *JourneyUpdateOne {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetContinuationJourneyID sets the "continuation_journey_id" field.
func (_u *JourneyUpdateOne) SetContinuationJourneyID(v string) *JourneyUpdateOne {
	_u.mutation.SetContinuationJourneyID(v)
	return _u
}

// SetNillableContinuationJourneyID sets the "continuation_journey_id" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableContinuationJourneyID(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetContinuationJourneyID(*v)
	}
	return _u
}

// ClearContinuationJourneyID clears the value of the "continuation_journey_id" field.
func (_u *JourneyUpdateOne) ClearContinuationJourneyID() *JourneyUpdateOne {
	_u.mutation.ClearContinuationJourneyID()
	return _u
}

// SetStateChecksum sets the "state_checksum" field.
func (_u *JourneyUpdateOne) SetStateChecksum(v string) *JourneyUpdateOne {
	_u.mutation.SetStateChecksum(v)
	return _u
}

// SetNillableStateChecksum sets the "state_checksum" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableStateChecksum(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetStateChecksum(*v)
	}
	return _u
}

// ClearStateChecksum clears the value of the "state_checksum" field.
func (_u *JourneyUpdateOne) ClearStateChecksum() *JourneyUpdateOne {
	_u.mutation.ClearStateChecksum()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *JourneyUpdateOne) SetDeleted(v bool) *JourneyUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableDeleted(v *bool) *JourneyUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *JourneyUpdateOne) SetUpdateTime(v time.Time) *JourneyUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// AddEventIDs adds the "events" edge to the JourneyEvent entity by IDs.
func (_u *JourneyUpdateOne) AddEventIDs(ids ...string) *JourneyUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the JourneyEvent entity.
func (_u *JourneyUpdateOne) AddEvents(v ...*JourneyEvent) *JourneyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetSequenceID sets the "sequence" edge to the VehicleSequence entity by ID.
func (_u *JourneyUpdateOne) SetSequenceID(id string) *JourneyUpdateOne {
	_u.mutation.SetSequenceID(id)
	return _u
}

// SetNillableSequenceID sets the "sequence" edge to the VehicleSequence entity by ID if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableSequenceID(id *string) *JourneyUpdateOne {
	if id != nil {
		_u = _u.SetSequenceID(*id)
	}
	return _u
}

// SetSequence sets the "sequence" edge to the VehicleSequence entity.
func (_u *JourneyUpdateOne) SetSequence(v *VehicleSequence) *JourneyUpdateOne {
	return _u.SetSequenceID(v.ID)
}

// Mutation returns the JourneyMutation object of the builder.
func (_u *JourneyUpdateOne) Mutation() *JourneyMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the JourneyEvent entity.
func (_u *JourneyUpdateOne) ClearEvents() *JourneyUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to JourneyEvent entities by IDs.
func (_u *JourneyUpdateOne) RemoveEventIDs(ids ...string) *JourneyUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to JourneyEvent entities.
func (_u *JourneyUpdateOne) RemoveEvents(v ...*JourneyEvent) *JourneyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearSequence clears the "sequence" edge to the VehicleSequence entity.
func (_u *JourneyUpdateOne) ClearSequence() *JourneyUpdateOne {
	_u.mutation.ClearSequence()
	return _u
}

// Where appends a list predicates to the JourneyUpdate builder.
func (_u *JourneyUpdateOne) Where(ps ...predicate.Journey) *JourneyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JourneyUpdateOne) Select(field string, fields ...string) *JourneyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Journey entity.
func (_u *JourneyUpdateOne) Save(ctx context.Context) (*Journey, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyUpdateOne) SaveX(ctx context.Context) *Journey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JourneyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JourneyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := journey.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *JourneyUpdateOne) sqlSave(ctx context.Context) (_node *Journey, err error) {
	_spec := sqlgraph.NewUpdateSpec(journey.Table, journey.Columns, sqlgraph.NewFieldSpec(journey.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Journey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, journey.FieldID)
		for _, f := range fields {
			if !journey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != journey.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TrainNumber(); ok {
		_spec.SetField(journey.FieldTrainNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrainName(); ok {
		_spec.SetField(journey.FieldTrainName, field.TypeString, value)
	}
	if _u.mutation.TrainNameCleared() {
		_spec.ClearField(journey.FieldTrainName, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(journey.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeenTime(); ok {
		_spec.SetField(journey.FieldFirstSeenTime, field.TypeTime, value)
	}
	if _u.mutation.FirstSeenTimeCleared() {
		_spec.ClearField(journey.FieldFirstSeenTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeenTime(); ok {
		_spec.SetField(journey.FieldLastSeenTime, field.TypeTime, value)
	}
	if _u.mutation.LastSeenTimeCleared() {
		_spec.ClearField(journey.FieldLastSeenTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(journey.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContinuationJourneyID(); ok {
		_spec.SetField(journey.FieldContinuationJourneyID, field.TypeString, value)
	}
	if _u.mutation.ContinuationJourneyIDCleared() {
		_spec.ClearField(journey.FieldContinuationJourneyID, field.TypeString)
	}
	if value, ok := _u.mutation.StateChecksum(); ok {
		_spec.SetField(journey.FieldStateChecksum, field.TypeString, value)
	}
	if _u.mutation.StateChecksumCleared() {
		_spec.ClearField(journey.FieldStateChecksum, field.TypeString)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(journey.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(journey.FieldUpdateTime, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   journey.EventsTable,
			Columns: []string{journey.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   journey.EventsTable,
			Columns: []string{journey.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   journey.EventsTable,
			Columns: []string{journey.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SequenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   journey.SequenceTable,
			Columns: []string{journey.SequenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vehiclesequence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SequenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   journey.SequenceTable,
			Columns: []string{journey.SequenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vehiclesequence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Journey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
