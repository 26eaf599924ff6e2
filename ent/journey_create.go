// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/simtrack/sit-collector/ent/journey"
	"github.com/simtrack/sit-collector/ent/journeyevent"
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
)

// JourneyCreate is the builder for creating a Journey entity.
type JourneyCreate struct {
	config
	mutation *JourneyMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *JourneyCreate) SetRunID(v string) *JourneyCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetServerID sets the "server_id" field.
func (_c *JourneyCreate) SetServerID(v string) *JourneyCreate {
	_c.mutation.SetServerID(v)
	return _c
}

// SetTrainNumber sets the "train_number" field.
func (_c *JourneyCreate) SetTrainNumber(v string) *JourneyCreate {
	_c.mutation.SetTrainNumber(v)
	return _c
}

// SetTrainName sets the "train_name" field.
func (_c *JourneyCreate) SetTrainName(v string) *JourneyCreate {
	_c.mutation.SetTrainName(v)
	return _c
}

// SetNillableTrainName sets the "train_name" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableTrainName(v *string) *JourneyCreate {
	if v != nil {
		_c.SetTrainName(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *JourneyCreate) SetCategory(v string) *JourneyCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetFirstSeenTime sets the "first_seen_time" field.
func (_c *JourneyCreate) SetFirstSeenTime(v time.Time) *JourneyCreate {
	_c.mutation.SetFirstSeenTime(v)
	return _c
}

// SetNillableFirstSeenTime sets the "first_seen_time" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableFirstSeenTime(v *time.Time) *JourneyCreate {
	if v != nil {
		_c.SetFirstSeenTime(*v)
	}
	return _c
}

// SetLastSeenTime sets the "last_seen_time" field.
func (_c *JourneyCreate) SetLastSeenTime(v time.Time) *JourneyCreate {
	_c.mutation.SetLastSeenTime(v)
	return _c
}

// SetNillableLastSeenTime sets the "last_seen_time" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableLastSeenTime(v *time.Time) *JourneyCreate {
	if v != nil {
		_c.SetLastSeenTime(*v)
	}
	return _c
}

// SetCancelled sets the "cancelled" field.
func (_c *JourneyCreate) SetCancelled(v bool) *JourneyCreate {
	_c.mutation.SetCancelled(v)
	return _c
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableCancelled(v *bool) *JourneyCreate {
	if v != nil {
		_c.SetCancelled(*v)
	}
	return _c
}

// SetContinuationJourneyID sets the "continuation_journey_id" field.
func (_c *JourneyCreate) SetContinuationJourneyID(v string) *JourneyCreate {
	_c.mutation.SetContinuationJourneyID(v)
	return _c
}

// SetNillableContinuationJourneyID sets the "continuation_journey_id" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableContinuationJourneyID(v *string) *JourneyCreate {
	if v != nil {
		_c.SetContinuationJourneyID(*v)
	}
	return _c
}

// SetStateChecksum sets the "state_checksum" field.
func (_c *JourneyCreate) SetStateChecksum(v string) *JourneyCreate {
	_c.mutation.SetStateChecksum(v)
	return _c
}

// SetNillableStateChecksum sets the "state_checksum" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableStateChecksum(v *string) *JourneyCreate {
	if v != nil {
		_c.SetStateChecksum(*v)
	}
	return _c
}

// SetDeleted sets the "deleted" field.
func (_c *JourneyCreate) SetDeleted(v bool) *JourneyCreate {
	_c.mutation.SetDeleted(v)
	return _c
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableDeleted(v *bool) *JourneyCreate {
	if v != nil {
		_c.SetDeleted(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *JourneyCreate) SetUpdateTime(v time.Time) *JourneyCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableUpdateTime(v *time.Time) *JourneyCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JourneyCreate) SetID(v string) *JourneyCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the JourneyEvent entity by IDs.
func (_c *JourneyCreate) AddEventIDs(ids ...string) *JourneyCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the JourneyEvent entity.
func (_c *JourneyCreate) AddEvents(v ...*JourneyEvent) *JourneyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// SetSequenceID sets the "sequence" edge to the VehicleSequence entity by ID.
func (_c *JourneyCreate) SetSequenceID(id string) *JourneyCreate {
	_c.mutation.SetSequenceID(id)
	return _c
}

// SetNillableSequenceID sets the "sequence" edge to the VehicleSequence entity by ID if the given value is not nil.
func (_c *JourneyCreate) SetNillableSequenceID(id *string) *JourneyCreate {
	if id != nil {
		_c = _c.SetSequenceID(*id)
	}
	return _c
}

// SetSequence sets the "sequence" edge to the VehicleSequence entity.
func (_c *JourneyCreate) SetSequence(v *VehicleSequence) *JourneyCreate {
	return _c.SetSequenceID(v.ID)
}

// Mutation returns the JourneyMutation object of the builder.
func (_c *JourneyCreate) Mutation() *JourneyMutation {
	return _c.mutation
}

// Save creates the Journey in the database.
func (_c *JourneyCreate) Save(ctx context.Context) (*Journey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JourneyCreate) SaveX(ctx context.Context) *Journey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JourneyCreate) defaults() {
	if _, ok := _c.mutation.Cancelled(); !ok {
		v := journey.DefaultCancelled
		_c.mutation.SetCancelled(v)
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		v := journey.DefaultDeleted
		_c.mutation.SetDeleted(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := journey.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JourneyCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Journey.run_id"`)}
	}
	if _, ok := _c.mutation.ServerID(); !ok {
		return &ValidationError{Name: "server_id", err: errors.New(`ent: missing required field "Journey.server_id"`)}
	}
	if _, ok := _c.mutation.TrainNumber(); !ok {
		return &ValidationError{Name: "train_number", err: errors.New(`ent: missing required field "Journey.train_number"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Journey.category"`)}
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		return &ValidationError{Name: "cancelled", err: errors.New(`ent: missing required field "Journey.cancelled"`)}
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "Journey.deleted"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "Journey.update_time"`)}
	}
	return nil
}

func (_c *JourneyCreate) sqlSave(ctx context.Context) (*Journey, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Journey.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JourneyCreate) createSpec() (*Journey, *sqlgraph.CreateSpec) {
	var (
		_node = &Journey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(journey.Table, sqlgraph.NewFieldSpec(journey.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(journey.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.ServerID(); ok {
		_spec.SetField(journey.FieldServerID, field.TypeString, value)
		_node.ServerID = value
	}
	if value, ok := _c.mutation.TrainNumber(); ok {
		_spec.SetField(journey.FieldTrainNumber, field.TypeString, value)
		_node.TrainNumber = value
	}
	if value, ok := _c.mutation.TrainName(); ok {
		_spec.SetField(journey.FieldTrainName, field.TypeString, value)
		_node.TrainName = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(journey.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.FirstSeenTime(); ok {
		_spec.SetField(journey.FieldFirstSeenTime, field.TypeTime, value)
		_node.FirstSeenTime = &value
	}
	if value, ok := _c.mutation.LastSeenTime(); ok {
		_spec.SetField(journey.FieldLastSeenTime, field.TypeTime, value)
		_node.LastSeenTime = &value
	}
	if value, ok := _c.mutation.Cancelled(); ok {
		_spec.SetField(journey.FieldCancelled, field.TypeBool, value)
		_node.Cancelled = value
	}
	if value, ok := _c.mutation.ContinuationJourneyID(); ok {
		_spec.SetField(journey.FieldContinuationJourneyID, field.TypeString, value)
		_node.ContinuationJourneyID = &value
	}
	if value, ok := _c.mutation.StateChecksum(); ok {
		_spec.SetField(journey.FieldStateChecksum, field.TypeString, value)
		_node.StateChecksum = value
	}
	if value, ok := _c.mutation.Deleted(); ok {
		_spec.SetField(journey.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(journey.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SequenceIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JourneyCreateBulk is the builder for creating many Journey entities in bulk.
type JourneyCreateBulk struct {
	config
	err      error
	builders []*JourneyCreate
}

// Save creates the Journey entities in the database.
func (_c *JourneyCreateBulk) Save(ctx context.Context) ([]*Journey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Journey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JourneyMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JourneyCreateBulk) SaveX(ctx context.Context) []*Journey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
