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
)

// JourneyEventCreate is the builder for creating a JourneyEvent entity.
type JourneyEventCreate struct {
	config
	mutation *JourneyEventMutation
	hooks    []Hook
}

// SetJourneyID sets the "journey_id" field.
func (_c *JourneyEventCreate) SetJourneyID(v string) *JourneyEventCreate {
	_c.mutation.SetJourneyID(v)
	return _c
}

// SetEventIndex sets the "event_index" field.
func (_c *JourneyEventCreate) SetEventIndex(v int) *JourneyEventCreate {
	_c.mutation.SetEventIndex(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *JourneyEventCreate) SetEventType(v journeyevent.EventType) *JourneyEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPointID sets the "point_id" field.
func (_c *JourneyEventCreate) SetPointID(v string) *JourneyEventCreate {
	_c.mutation.SetPointID(v)
	return _c
}

// SetPointName sets the "point_name" field.
func (_c *JourneyEventCreate) SetPointName(v string) *JourneyEventCreate {
	_c.mutation.SetPointName(v)
	return _c
}

// SetNillablePointName sets the "point_name" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillablePointName(v *string) *JourneyEventCreate {
	if v != nil {
		_c.SetPointName(*v)
	}
	return _c
}

// SetInPlayableBorder sets the "in_playable_border" field.
func (_c *JourneyEventCreate) SetInPlayableBorder(v bool) *JourneyEventCreate {
	_c.mutation.SetInPlayableBorder(v)
	return _c
}

// SetNillableInPlayableBorder sets the "in_playable_border" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableInPlayableBorder(v *bool) *JourneyEventCreate {
	if v != nil {
		_c.SetInPlayableBorder(*v)
	}
	return _c
}

// SetScheduledTime sets the "scheduled_time" field.
func (_c *JourneyEventCreate) SetScheduledTime(v time.Time) *JourneyEventCreate {
	_c.mutation.SetScheduledTime(v)
	return _c
}

// SetRealtimeTime sets the "realtime_time" field.
func (_c *JourneyEventCreate) SetRealtimeTime(v time.Time) *JourneyEventCreate {
	_c.mutation.SetRealtimeTime(v)
	return _c
}

// SetNillableRealtimeTime sets the "realtime_time" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableRealtimeTime(v *time.Time) *JourneyEventCreate {
	if v != nil {
		_c.SetRealtimeTime(*v)
	}
	return _c
}

// SetRealtimeTimeType sets the "realtime_time_type" field.
func (_c *JourneyEventCreate) SetRealtimeTimeType(v journeyevent.RealtimeTimeType) *JourneyEventCreate {
	_c.mutation.SetRealtimeTimeType(v)
	return _c
}

// SetNillableRealtimeTimeType sets the "realtime_time_type" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableRealtimeTimeType(v *journeyevent.RealtimeTimeType) *JourneyEventCreate {
	if v != nil {
		_c.SetRealtimeTimeType(*v)
	}
	return _c
}

// SetTransport sets the "transport" field.
func (_c *JourneyEventCreate) SetTransport(v map[string]interface{}) *JourneyEventCreate {
	_c.mutation.SetTransport(v)
	return _c
}

// SetStopType sets the "stop_type" field.
func (_c *JourneyEventCreate) SetStopType(v journeyevent.StopType) *JourneyEventCreate {
	_c.mutation.SetStopType(v)
	return _c
}

// SetNillableStopType sets the "stop_type" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableStopType(v *journeyevent.StopType) *JourneyEventCreate {
	if v != nil {
		_c.SetStopType(*v)
	}
	return _c
}

// SetScheduledPlatform sets the "scheduled_platform" field.
func (_c *JourneyEventCreate) SetScheduledPlatform(v int) *JourneyEventCreate {
	_c.mutation.SetScheduledPlatform(v)
	return _c
}

// SetNillableScheduledPlatform sets the "scheduled_platform" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableScheduledPlatform(v *int) *JourneyEventCreate {
	if v != nil {
		_c.SetScheduledPlatform(*v)
	}
	return _c
}

// SetScheduledTrack sets the "scheduled_track" field.
func (_c *JourneyEventCreate) SetScheduledTrack(v int) *JourneyEventCreate {
	_c.mutation.SetScheduledTrack(v)
	return _c
}

// SetNillableScheduledTrack sets the "scheduled_track" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableScheduledTrack(v *int) *JourneyEventCreate {
	if v != nil {
		_c.SetScheduledTrack(*v)
	}
	return _c
}

// SetRealtimePlatform sets the "realtime_platform" field.
func (_c *JourneyEventCreate) SetRealtimePlatform(v int) *JourneyEventCreate {
	_c.mutation.SetRealtimePlatform(v)
	return _c
}

// SetNillableRealtimePlatform sets the "realtime_platform" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableRealtimePlatform(v *int) *JourneyEventCreate {
	if v != nil {
		_c.SetRealtimePlatform(*v)
	}
	return _c
}

// SetRealtimeTrack sets the "realtime_track" field.
func (_c *JourneyEventCreate) SetRealtimeTrack(v int) *JourneyEventCreate {
	_c.mutation.SetRealtimeTrack(v)
	return _c
}

// SetNillableRealtimeTrack sets the "realtime_track" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableRealtimeTrack(v *int) *JourneyEventCreate {
	if v != nil {
		_c.SetRealtimeTrack(*v)
	}
	return _c
}

// SetCancelled sets the "cancelled" field.
func (_c *JourneyEventCreate) SetCancelled(v bool) *JourneyEventCreate {
	_c.mutation.SetCancelled(v)
	return _c
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableCancelled(v *bool) *JourneyEventCreate {
	if v != nil {
		_c.SetCancelled(*v)
	}
	return _c
}

// SetAdditional sets the "additional" field.
func (_c *JourneyEventCreate) SetAdditional(v bool) *JourneyEventCreate {
	_c.mutation.SetAdditional(v)
	return _c
}

// SetNillableAdditional sets the "additional" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableAdditional(v *bool) *JourneyEventCreate {
	if v != nil {
		_c.SetAdditional(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JourneyEventCreate) SetID(v string) *JourneyEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJourney sets the "journey" edge to the Journey entity.
func (_c *JourneyEventCreate) SetJourney(v *Journey) *JourneyEventCreate {
	return _c.SetJourneyID(v.ID)
}

// Mutation returns the JourneyEventMutation object of the builder.
func (_c *JourneyEventCreate) Mutation() *JourneyEventMutation {
	return _c.mutation
}

// Save creates the JourneyEvent in the database.
func (_c *JourneyEventCreate) Save(ctx context.Context) (*JourneyEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JourneyEventCreate) SaveX(ctx context.Context) *JourneyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JourneyEventCreate) defaults() {
	if _, ok := _c.mutation.InPlayableBorder(); !ok {
		v := journeyevent.DefaultInPlayableBorder
		_c.mutation.SetInPlayableBorder(v)
	}
	if _, ok := _c.mutation.RealtimeTimeType(); !ok {
		v := journeyevent.DefaultRealtimeTimeType
		_c.mutation.SetRealtimeTimeType(v)
	}
	if _, ok := _c.mutation.StopType(); !ok {
		v := journeyevent.DefaultStopType
		_c.mutation.SetStopType(v)
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		v := journeyevent.DefaultCancelled
		_c.mutation.SetCancelled(v)
	}
	if _, ok := _c.mutation.Additional(); !ok {
		v := journeyevent.DefaultAdditional
		_c.mutation.SetAdditional(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JourneyEventCreate) check() error {
	if _, ok := _c.mutation.JourneyID(); !ok {
		return &ValidationError{Name: "journey_id", err: errors.New(`ent: missing required field "JourneyEvent.journey_id"`)}
	}
	if _, ok := _c.mutation.EventIndex(); !ok {
		return &ValidationError{Name: "event_index", err: errors.New(`ent: missing required field "JourneyEvent.event_index"`)}
	}
	if v, ok := _c.mutation.EventIndex(); ok {
		if err := journeyevent.EventIndexValidator(v); err != nil {
			return &ValidationError{Name: "event_index", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.event_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "JourneyEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := journeyevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PointID(); !ok {
		return &ValidationError{Name: "point_id", err: errors.New(`ent: missing required field "JourneyEvent.point_id"`)}
	}
	if _, ok := _c.mutation.InPlayableBorder(); !ok {
		return &ValidationError{Name: "in_playable_border", err: errors.New(`ent: missing required field "JourneyEvent.in_playable_border"`)}
	}
	if _, ok := _c.mutation.ScheduledTime(); !ok {
		return &ValidationError{Name: "scheduled_time", err: errors.New(`ent: missing required field "JourneyEvent.scheduled_time"`)}
	}
	if _, ok := _c.mutation.RealtimeTimeType(); !ok {
		return &ValidationError{Name: "realtime_time_type", err: errors.New(`ent: missing required field "JourneyEvent.realtime_time_type"`)}
	}
	if v, ok := _c.mutation.RealtimeTimeType(); ok {
		if err := journeyevent.RealtimeTimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "realtime_time_type", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.realtime_time_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StopType(); !ok {
		return &ValidationError{Name: "stop_type", err: errors.New(`ent: missing required field "JourneyEvent.stop_type"`)}
	}
	if v, ok := _c.mutation.StopType(); ok {
		if err := journeyevent.StopTypeValidator(v); err != nil {
			return &ValidationError{Name: "stop_type", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.stop_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		return &ValidationError{Name: "cancelled", err: errors.New(`ent: missing required field "JourneyEvent.cancelled"`)}
	}
	if _, ok := _c.mutation.Additional(); !ok {
		return &ValidationError{Name: "additional", err: errors.New(`ent: missing required field "JourneyEvent.additional"`)}
	}
	if len(_c.mutation.JourneyIDs()) == 0 {
		return &ValidationError{Name: "journey", err: errors.New(`ent: missing required edge "JourneyEvent.journey"`)}
	}
	return nil
}

func (_c *JourneyEventCreate) sqlSave(ctx context.Context) (*JourneyEvent, error) {
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
			return nil, fmt.Errorf("unexpected JourneyEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JourneyEventCreate) createSpec() (*JourneyEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &JourneyEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(journeyevent.Table, sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventIndex(); ok {
		_spec.SetField(journeyevent.FieldEventIndex, field.TypeInt, value)
		_node.EventIndex = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(journeyevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.PointID(); ok {
		_spec.SetField(journeyevent.FieldPointID, field.TypeString, value)
		_node.PointID = value
	}
	if value, ok := _c.mutation.PointName(); ok {
		_spec.SetField(journeyevent.FieldPointName, field.TypeString, value)
		_node.PointName = value
	}
	if value, ok := _c.mutation.InPlayableBorder(); ok {
		_spec.SetField(journeyevent.FieldInPlayableBorder, field.TypeBool, value)
		_node.InPlayableBorder = value
	}
	if value, ok := _c.mutation.ScheduledTime(); ok {
		_spec.SetField(journeyevent.FieldScheduledTime, field.TypeTime, value)
		_node.ScheduledTime = value
	}
	if value, ok := _c.mutation.RealtimeTime(); ok {
		_spec.SetField(journeyevent.FieldRealtimeTime, field.TypeTime, value)
		_node.RealtimeTime = &value
	}
	if value, ok := _c.mutation.RealtimeTimeType(); ok {
		_spec.SetField(journeyevent.FieldRealtimeTimeType, field.TypeEnum, value)
		_node.RealtimeTimeType = value
	}
	if value, ok := _c.mutation.Transport(); ok {
		_spec.SetField(journeyevent.FieldTransport, field.TypeJSON, value)
		_node.Transport = value
	}
	if value, ok := _c.mutation.StopType(); ok {
		_spec.SetField(journeyevent.FieldStopType, field.TypeEnum, value)
		_node.StopType = value
	}
	if value, ok := _c.mutation.ScheduledPlatform(); ok {
		_spec.SetField(journeyevent.FieldScheduledPlatform, field.TypeInt, value)
		_node.ScheduledPlatform = &value
	}
	if value, ok := _c.mutation.ScheduledTrack(); ok {
		_spec.SetField(journeyevent.FieldScheduledTrack, field.TypeInt, value)
		_node.ScheduledTrack = &value
	}
	if value, ok := _c.mutation.RealtimePlatform(); ok {
		_spec.SetField(journeyevent.FieldRealtimePlatform, field.TypeInt, value)
		_node.RealtimePlatform = &value
	}
	if value, ok := _c.mutation.RealtimeTrack(); ok {
		_spec.SetField(journeyevent.FieldRealtimeTrack, field.TypeInt, value)
		_node.RealtimeTrack = &value
	}
	if value, ok := _c.mutation.Cancelled(); ok {
		_spec.SetField(journeyevent.FieldCancelled, field.TypeBool, value)
		_node.Cancelled = value
	}
	if value, ok := _c.mutation.Additional(); ok {
		_spec.SetField(journeyevent.FieldAdditional, field.TypeBool, value)
		_node.Additional = value
	}
	if nodes := _c.mutation.JourneyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   journeyevent.JourneyTable,
			Columns: []string{journeyevent.JourneyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JourneyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JourneyEventCreateBulk is the builder for creating many JourneyEvent entities in bulk.
type JourneyEventCreateBulk struct {
	config
	err      error
	builders []*JourneyEventCreate
}

// Save creates the JourneyEvent entities in the database.
func (_c *JourneyEventCreateBulk) Save(ctx context.Context) ([]*JourneyEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JourneyEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JourneyEventMutation)
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
func (_c *JourneyEventCreateBulk) SaveX(ctx context.Context) []*JourneyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
