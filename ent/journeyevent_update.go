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
	"github.com/simtrack/sit-collector/ent/journeyevent"
	"github.com/simtrack/sit-collector/ent/predicate"
)

// JourneyEventUpdate is the builder for updating JourneyEvent entities.
type JourneyEventUpdate struct {
	config
	hooks    []Hook
	mutation *JourneyEventMutation
}

// Where appends a list predicates to the JourneyEventUpdate builder.
func (_u *JourneyEventUpdate) Where(ps ...predicate.JourneyEvent) *JourneyEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventIndex sets the "event_index" field.
func (_u *JourneyEventUpdate) SetEventIndex(v int) *JourneyEventUpdate {
	_u.mutation.ResetEventIndex()
	_u.mutation.SetEventIndex(v)
	return _u
}

// SetNillableEventIndex sets the "event_index" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableEventIndex(v *int) *JourneyEventUpdate {
	if v != nil {
		_u.SetEventIndex(*v)
	}
	return _u
}

// AddEventIndex adds value to the "event_index" field.
func (_u *JourneyEventUpdate) AddEventIndex(v int) *JourneyEventUpdate {
	_u.mutation.AddEventIndex(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *JourneyEventUpdate) SetEventType(v journeyevent.EventType) *JourneyEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableEventType(v *journeyevent.EventType) *JourneyEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPointID sets the "point_id" field.
func (_u *JourneyEventUpdate) SetPointID(v string) *JourneyEventUpdate {
	_u.mutation.SetPointID(v)
	return _u
}

// SetNillablePointID sets the "point_id" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillablePointID(v *string) *JourneyEventUpdate {
	if v != nil {
		_u.SetPointID(*v)
	}
	return _u
}

// SetPointName sets the "point_name" field.
func (_u *JourneyEventUpdate) SetPointName(v string) *JourneyEventUpdate {
	_u.mutation.SetPointName(v)
	return _u
}

// SetNillablePointName sets the "point_name" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillablePointName(v *string) *JourneyEventUpdate {
	if v != nil {
		_u.SetPointName(*v)
	}
	return _u
}

// ClearPointName clears the value of the "point_name" field.
func (_u *JourneyEventUpdate) ClearPointName() *JourneyEventUpdate {
	_u.mutation.ClearPointName()
	return _u
}

// SetInPlayableBorder sets the "in_playable_border" field.
func (_u *JourneyEventUpdate) SetInPlayableBorder(v bool) *JourneyEventUpdate {
	_u.mutation.SetInPlayableBorder(v)
	return _u
}

// SetNillableInPlayableBorder sets the "in_playable_border" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableInPlayableBorder(v *bool) *JourneyEventUpdate {
	if v != nil {
		_u.SetInPlayableBorder(*v)
	}
	return _u
}

// SetScheduledTime sets the "scheduled_time" field.
func (_u *JourneyEventUpdate) SetScheduledTime(v time.Time) *JourneyEventUpdate {
	_u.mutation.SetScheduledTime(v)
	return _u
}

// SetNillableScheduledTime sets the "scheduled_time" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableScheduledTime(v *time.Time) *JourneyEventUpdate {
	if v != nil {
		_u.SetScheduledTime(*v)
	}
	return _u
}

// SetRealtimeTime sets the "realtime_time" field.
func (_u *JourneyEventUpdate) SetRealtimeTime(v time.Time) *JourneyEventUpdate {
	_u.mutation.SetRealtimeTime(v)
	return _u
}

// SetNillableRealtimeTime sets the "realtime_time" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableRealtimeTime(v *time.Time) *JourneyEventUpdate {
	if v != nil {
		_u.SetRealtimeTime(*v)
	}
	return _u
}

// ClearRealtimeTime clears the value of the "realtime_time" field.
func (_u *JourneyEventUpdate) ClearRealtimeTime() *JourneyEventUpdate {
	_u.mutation.ClearRealtimeTime()
	return _u
}

// SetRealtimeTimeType sets the "realtime_time_type" field.
func (_u *JourneyEventUpdate) SetRealtimeTimeType(v journeyevent.RealtimeTimeType) *JourneyEventUpdate {
	_u.mutation.SetRealtimeTimeType(v)
	return _u
}

// SetNillableRealtimeTimeType sets the "realtime_time_type" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableRealtimeTimeType(v *journeyevent.RealtimeTimeType) *JourneyEventUpdate {
	if v != nil {
		_u.SetRealtimeTimeType(*v)
	}
	return _u
}

// SetTransport sets the "transport" field.
func (_u *JourneyEventUpdate) SetTransport(v map[string]interface{}) *JourneyEventUpdate {
	_u.mutation.SetTransport(v)
	return _u
}

// ClearTransport clears the value of the "transport" field.
func (_u *JourneyEventUpdate) ClearTransport() *JourneyEventUpdate {
	_u.mutation.ClearTransport()
	return _u
}

// SetStopType sets the "stop_type" field.
func (_u *JourneyEventUpdate) SetStopType(v journeyevent.StopType) *JourneyEventUpdate {
	_u.mutation.SetStopType(v)
	return _u
}

// SetNillableStopType sets the "stop_type" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableStopType(v *journeyevent.StopType) *JourneyEventUpdate {
	if v != nil {
		_u.SetStopType(*v)
	}
	return _u
}

// SetScheduledPlatform sets the "scheduled_platform" field.
func (_u *JourneyEventUpdate) SetScheduledPlatform(v int) *JourneyEventUpdate {
	_u.mutation.ResetScheduledPlatform()
	_u.mutation.SetScheduledPlatform(v)
	return _u
}

// SetNillableScheduledPlatform sets the "scheduled_platform" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableScheduledPlatform(v *int) *JourneyEventUpdate {
	if v != nil {
		_u.SetScheduledPlatform(*v)
	}
	return _u
}

// AddScheduledPlatform adds value to the "scheduled_platform" field.
func (_u *JourneyEventUpdate) AddScheduledPlatform(v int) *JourneyEventUpdate {
	_u.mutation.AddScheduledPlatform(v)
	return _u
}

// ClearScheduledPlatform clears the value of the "scheduled_platform" field.
func (_u *JourneyEventUpdate) ClearScheduledPlatform() *JourneyEventUpdate {
	_u.mutation.ClearScheduledPlatform()
	return _u
}

// SetScheduledTrack sets the "scheduled_track" field.
func (_u *JourneyEventUpdate) SetScheduledTrack(v int) *JourneyEventUpdate {
	_u.mutation.ResetScheduledTrack()
	_u.mutation.SetScheduledTrack(v)
	return _u
}

// SetNillableScheduledTrack sets the "scheduled_track" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableScheduledTrack(v *int) *JourneyEventUpdate {
	if v != nil {
		_u.SetScheduledTrack(*v)
	}
	return _u
}

// AddScheduledTrack adds value to the "scheduled_track" field.
func (_u *JourneyEventUpdate) AddScheduledTrack(v int) *JourneyEventUpdate {
	_u.mutation.AddScheduledTrack(v)
	return _u
}

// ClearScheduledTrack clears the value of the "scheduled_track" field.
func (_u *JourneyEventUpdate) ClearScheduledTrack() *JourneyEventUpdate {
	_u.mutation.ClearScheduledTrack()
	return _u
}

// SetRealtimePlatform sets the "realtime_platform" field.
func (_u *JourneyEventUpdate) SetRealtimePlatform(v int) *JourneyEventUpdate {
	_u.mutation.ResetRealtimePlatform()
	_u.mutation.SetRealtimePlatform(v)
	return _u
}

// SetNillableRealtimePlatform sets the "realtime_platform" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableRealtimePlatform(v *int) *JourneyEventUpdate {
	if v != nil {
		_u.SetRealtimePlatform(*v)
	}
	return _u
}

// AddRealtimePlatform adds value to the "realtime_platform" field.
func (_u *JourneyEventUpdate) AddRealtimePlatform(v int) *JourneyEventUpdate {
	_u.mutation.AddRealtimePlatform(v)
	return _u
}

// ClearRealtimePlatform clears the value of the "realtime_platform" field.
func (_u *JourneyEventUpdate) ClearRealtimePlatform() *JourneyEventUpdate {
	_u.mutation.ClearRealtimePlatform()
	return _u
}

// SetRealtimeTrack sets the "realtime_track" field.
func (_u *JourneyEventUpdate) SetRealtimeTrack(v int) *JourneyEventUpdate {
	_u.mutation.ResetRealtimeTrack()
	_u.mutation.SetRealtimeTrack(v)
	return _u
}

// SetNillableRealtimeTrack sets the "realtime_track" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableRealtimeTrack(v *int) *JourneyEventUpdate {
	if v != nil {
		_u.SetRealtimeTrack(*v)
	}
	return _u
}

// AddRealtimeTrack adds value to the "realtime_track" field.
func (_u *JourneyEventUpdate) AddRealtimeTrack(v int) *JourneyEventUpdate {
	_u.mutation.AddRealtimeTrack(v)
	return _u
}

// ClearRealtimeTrack clears the value of the "realtime_track" field.
func (_u *JourneyEventUpdate) ClearRealtimeTrack() *JourneyEventUpdate {
	_u.mutation.ClearRealtimeTrack()
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *JourneyEventUpdate) SetCancelled(v bool) *JourneyEventUpdate {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableCancelled(v *bool) *JourneyEventUpdate {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetAdditional sets the "additional" field.
func (_u *JourneyEventUpdate) SetAdditional(v bool) *JourneyEventUpdate {
	_u.mutation.SetAdditional(v)
	return _u
}

// SetNillableAdditional sets the "additional" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableAdditional(v *bool) *JourneyEventUpdate {
	if v != nil {
		_u.SetAdditional(*v)
	}
	return _u
}

// Mutation returns the JourneyEventMutation object of the builder.
func (_u *JourneyEventUpdate) Mutation() *JourneyEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JourneyEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JourneyEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyEventUpdate) check() error {
	if v, ok := _u.mutation.EventIndex(); ok {
		if err := journeyevent.EventIndexValidator(v); err != nil {
			return &ValidationError{Name: "event_index", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.event_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := journeyevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RealtimeTimeType(); ok {
		if err := journeyevent.RealtimeTimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "realtime_time_type", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.realtime_time_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StopType(); ok {
		if err := journeyevent.StopTypeValidator(v); err != nil {
			return &ValidationError{Name: "stop_type", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.stop_type": %w`, err)}
		}
	}
	if _u.mutation.JourneyCleared() && len(_u.mutation.JourneyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JourneyEvent.journey"`)
	}
	return nil
}

func (_u *JourneyEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journeyevent.Table, journeyevent.Columns, sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventIndex(); ok {
		_spec.SetField(journeyevent.FieldEventIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventIndex(); ok {
		_spec.AddField(journeyevent.FieldEventIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(journeyevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PointID(); ok {
		_spec.SetField(journeyevent.FieldPointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointName(); ok {
		_spec.SetField(journeyevent.FieldPointName, field.TypeString, value)
	}
	if _u.mutation.PointNameCleared() {
		_spec.ClearField(journeyevent.FieldPointName, field.TypeString)
	}
	if value, ok := _u.mutation.InPlayableBorder(); ok {
		_spec.SetField(journeyevent.FieldInPlayableBorder, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ScheduledTime(); ok {
		_spec.SetField(journeyevent.FieldScheduledTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RealtimeTime(); ok {
		_spec.SetField(journeyevent.FieldRealtimeTime, field.TypeTime, value)
	}
	if _u.mutation.RealtimeTimeCleared() {
		_spec.ClearField(journeyevent.FieldRealtimeTime, field.TypeTime)
	}
	if value, ok := _u.mutation.RealtimeTimeType(); ok {
		_spec.SetField(journeyevent.FieldRealtimeTimeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Transport(); ok {
		_spec.SetField(journeyevent.FieldTransport, field.TypeJSON, value)
	}
	if _u.mutation.TransportCleared() {
		_spec.ClearField(journeyevent.FieldTransport, field.TypeJSON)
	}
	if value, ok := _u.mutation.StopType(); ok {
		_spec.SetField(journeyevent.FieldStopType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledPlatform(); ok {
		_spec.SetField(journeyevent.FieldScheduledPlatform, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScheduledPlatform(); ok {
		_spec.AddField(journeyevent.FieldScheduledPlatform, field.TypeInt, value)
	}
	if _u.mutation.ScheduledPlatformCleared() {
		_spec.ClearField(journeyevent.FieldScheduledPlatform, field.TypeInt)
	}
	if value, ok := _u.mutation.ScheduledTrack(); ok {
		_spec.SetField(journeyevent.FieldScheduledTrack, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScheduledTrack(); ok {
		_spec.AddField(journeyevent.FieldScheduledTrack, field.TypeInt, value)
	}
	if _u.mutation.ScheduledTrackCleared() {
		_spec.ClearField(journeyevent.FieldScheduledTrack, field.TypeInt)
	}
	if value, ok := _u.mutation.RealtimePlatform(); ok {
		_spec.SetField(journeyevent.FieldRealtimePlatform, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRealtimePlatform(); ok {
		_spec.AddField(journeyevent.FieldRealtimePlatform, field.TypeInt, value)
	}
	if _u.mutation.RealtimePlatformCleared() {
		_spec.ClearField(journeyevent.FieldRealtimePlatform, field.TypeInt)
	}
	if value, ok := _u.mutation.RealtimeTrack(); ok {
		_spec.SetField(journeyevent.FieldRealtimeTrack, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRealtimeTrack(); ok {
		_spec.AddField(journeyevent.FieldRealtimeTrack, field.TypeInt, value)
	}
	if _u.mutation.RealtimeTrackCleared() {
		_spec.ClearField(journeyevent.FieldRealtimeTrack, field.TypeInt)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(journeyevent.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Additional(); ok {
		_spec.SetField(journeyevent.FieldAdditional, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journeyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JourneyEventUpdateOne is the builder for updating a single JourneyEvent entity.
type JourneyEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JourneyEventMutation
}

// SetEventIndex sets the "event_index" field.
func (_u *JourneyEventUpdateOne) SetEventIndex(v int) *JourneyEventUpdateOne {
	_u.mutation.ResetEventIndex()
	_u.mutation.SetEventIndex(v)
	return _u
}

// SetNillableEventIndex sets the "event_index" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableEventIndex(v *int) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetEventIndex(*v)
	}
	return _u
}

// AddEventIndex adds value to the "event_index" field.
func (_u *JourneyEventUpdateOne) AddEventIndex(v int) *JourneyEventUpdateOne {
	_u.mutation.AddEventIndex(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *JourneyEventUpdateOne) SetEventType(v journeyevent.EventType) *JourneyEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableEventType(v *journeyevent.EventType) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPointID sets the "point_id" field.
func (_u *JourneyEventUpdateOne) SetPointID(v string) *JourneyEventUpdateOne {
	_u.mutation.SetPointID(v)
	return _u
}

// SetNillablePointID sets the "point_id" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillablePointID(v *string) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetPointID(*v)
	}
	return _u
}

// SetPointName sets the "point_name" field.
func (_u *JourneyEventUpdateOne) SetPointName(v string) *JourneyEventUpdateOne {
	_u.mutation.SetPointName(v)
	return _u
}

// SetNillablePointName sets the "point_name" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillablePointName(v *string) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetPointName(*v)
	}
	return _u
}

// ClearPointName clears the value of the "point_name" field.
func (_u *JourneyEventUpdateOne) ClearPointName() *JourneyEventUpdateOne {
	_u.mutation.ClearPointName()
	return _u
}

// SetInPlayableBorder sets the "in_playable_border" field.
func (_u *JourneyEventUpdateOne) SetInPlayableBorder(v bool) *JourneyEventUpdateOne {
	_u.mutation.SetInPlayableBorder(v)
	return _u
}

// SetNillableInPlayableBorder sets the "in_playable_border" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableInPlayableBorder(v *bool) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetInPlayableBorder(*v)
	}
	return _u
}

// SetScheduledTime sets the "scheduled_time" field.
func (_u *JourneyEventUpdateOne) SetScheduledTime(v time.Time) *JourneyEventUpdateOne {
	_u.mutation.SetScheduledTime(v)
	return _u
}

// SetNillableScheduledTime sets the "scheduled_time" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableScheduledTime(v *time.Time) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetScheduledTime(*v)
	}
	return _u
}

// SetRealtimeTime sets the "realtime_time" field.
func (_u *JourneyEventUpdateOne) SetRealtimeTime(v time.Time) *JourneyEventUpdateOne {
	_u.mutation.SetRealtimeTime(v)
	return _u
}

// SetNillableRealtimeTime sets the "realtime_time" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableRealtimeTime(v *time.Time) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetRealtimeTime(*v)
	}
	return _u
}

// ClearRealtimeTime clears the value of the "realtime_time" field.
func (_u *JourneyEventUpdateOne) ClearRealtimeTime() *JourneyEventUpdateOne {
	_u.mutation.ClearRealtimeTime()
	return _u
}

// SetRealtimeTimeType sets the "realtime_time_type" field.
func (_u *JourneyEventUpdateOne) SetRealtimeTimeType(v journeyevent.RealtimeTimeType) *JourneyEventUpdateOne {
	_u.mutation.SetRealtimeTimeType(v)
	return _u
}

// SetNillableRealtimeTimeType sets the "realtime_time_type" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableRealtimeTimeType(v *journeyevent.RealtimeTimeType) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetRealtimeTimeType(*v)
	}
	return _u
}

// SetTransport sets the "transport" field.
func (_u *JourneyEventUpdateOne) SetTransport(v map[string]interface{}) *JourneyEventUpdateOne {
	_u.mutation.SetTransport(v)
	return _u
}

// ClearTransport clears the value of the "transport" field.
func (_u *JourneyEventUpdateOne) ClearTransport() *JourneyEventUpdateOne {
	_u.mutation.ClearTransport()
	return _u
}

// SetStopType sets the "stop_type" field.
func (_u *JourneyEventUpdateOne) SetStopType(v journeyevent.StopType) *JourneyEventUpdateOne {
	_u.mutation.SetStopType(v)
	return _u
}

// SetNillableStopType sets the "stop_type" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableStopType(v *journeyevent.StopType) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetStopType(*v)
	}
	return _u
}

// SetScheduledPlatform sets the "scheduled_platform" field.
func (_u *JourneyEventUpdateOne) SetScheduledPlatform(v int) *JourneyEventUpdateOne {
	_u.mutation.ResetScheduledPlatform()
	_u.mutation.SetScheduledPlatform(v)
	return _u
}

// SetNillableScheduledPlatform sets the "scheduled_platform" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableScheduledPlatform(v *int) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetScheduledPlatform(*v)
	}
	return _u
}

// AddScheduledPlatform adds value to the "scheduled_platform" field.
func (_u *JourneyEventUpdateOne) AddScheduledPlatform(v int) *JourneyEventUpdateOne {
	_u.mutation.AddScheduledPlatform(v)
	return _u
}

// ClearScheduledPlatform clears the value of the "scheduled_platform" field.
func (_u *JourneyEventUpdateOne) ClearScheduledPlatform() *JourneyEventUpdateOne {
	_u.mutation.ClearScheduledPlatform()
	return _u
}

// SetScheduledTrack sets the "scheduled_track" field.
func (_u *JourneyEventUpdateOne) SetScheduledTrack(v int) *JourneyEventUpdateOne {
	_u.mutation.ResetScheduledTrack()
	_u.mutation.SetScheduledTrack(v)
	return _u
}

// SetNillableScheduledTrack sets the "scheduled_track" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableScheduledTrack(v *int) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetScheduledTrack(*v)
	}
	return _u
}

// AddScheduledTrack adds value to the "scheduled_track" field.
func (_u *JourneyEventUpdateOne) AddScheduledTrack(v int) *JourneyEventUpdateOne {
	_u.mutation.AddScheduledTrack(v)
	return _u
}

// ClearScheduledTrack clears the value of the "scheduled_track" field.
func (_u *JourneyEventUpdateOne) ClearScheduledTrack() *JourneyEventUpdateOne {
	_u.mutation.ClearScheduledTrack()
	return _u
}

// SetRealtimePlatform sets the "realtime_platform" field.
func (_u *JourneyEventUpdateOne) SetRealtimePlatform(v int) *JourneyEventUpdateOne {
	_u.mutation.ResetRealtimePlatform()
	_u.mutation.SetRealtimePlatform(v)
	return _u
}

// SetNillableRealtimePlatform sets the "realtime_platform" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableRealtimePlatform(v *int) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetRealtimePlatform(*v)
	}
	return _u
}

// AddRealtimePlatform adds value to the "realtime_platform" field.
func (_u *JourneyEventUpdateOne) AddRealtimePlatform(v int) *JourneyEventUpdateOne {
	_u.mutation.AddRealtimePlatform(v)
	return _u
}

// ClearRealtimePlatform clears the value of the "realtime_platform" field.
func (_u *JourneyEventUpdateOne) ClearRealtimePlatform() *JourneyEventUpdateOne {
	_u.mutation.ClearRealtimePlatform()
	return _u
}

// SetRealtimeTrack sets the "realtime_track" field.
func (_u *JourneyEventUpdateOne) SetRealtimeTrack(v int) *JourneyEventUpdateOne {
	_u.mutation.ResetRealtimeTrack()
	_u.mutation.SetRealtimeTrack(v)
	return _u
}

// SetNillableRealtimeTrack sets the "realtime_track" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableRealtimeTrack(v *int) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetRealtimeTrack(*v)
	}
	return _u
}

// AddRealtimeTrack adds value to the "realtime_track" field.
func (_u *JourneyEventUpdateOne) AddRealtimeTrack(v int) *JourneyEventUpdateOne {
	_u.mutation.AddRealtimeTrack(v)
	return _u
}

// ClearRealtimeTrack clears the value of the "realtime_track" field.
func (_u *JourneyEventUpdateOne) ClearRealtimeTrack() *JourneyEventUpdateOne {
	_u.mutation.ClearRealtimeTrack()
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *JourneyEventUpdateOne) SetCancelled(v bool) *JourneyEventUpdateOne {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableCancelled(v *bool) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetAdditional sets the "additional" field.
func (_u *JourneyEventUpdateOne) SetAdditional(v bool) *JourneyEventUpdateOne {
	_u.mutation.SetAdditional(v)
	return _u
}

// SetNillableAdditional sets the "additional" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableAdditional(v *bool) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetAdditional(*v)
	}
	return _u
}

// Mutation returns the JourneyEventMutation object of the builder.
func (_u *JourneyEventUpdateOne) Mutation() *JourneyEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the JourneyEventUpdate builder.
func (_u *JourneyEventUpdateOne) Where(ps ...predicate.JourneyEvent) *JourneyEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JourneyEventUpdateOne) Select(field string, fields ...string) *JourneyEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JourneyEvent entity.
func (_u *JourneyEventUpdateOne) Save(ctx context.Context) (*JourneyEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyEventUpdateOne) SaveX(ctx context.Context) *JourneyEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JourneyEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventIndex(); ok {
		if err := journeyevent.EventIndexValidator(v); err != nil {
			return &ValidationError{Name: "event_index", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.event_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := journeyevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RealtimeTimeType(); ok {
		if err := journeyevent.RealtimeTimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "realtime_time_type", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.realtime_time_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StopType(); ok {
		if err := journeyevent.StopTypeValidator(v); err != nil {
			return &ValidationError{Name: "stop_type", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.stop_type": %w`, err)}
		}
	}
	if _u.mutation.JourneyCleared() && len(_u.mutation.JourneyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JourneyEvent.journey"`)
	}
	return nil
}

func (_u *JourneyEventUpdateOne) sqlSave(ctx context.Context) (_node *JourneyEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journeyevent.Table, journeyevent.Columns, sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JourneyEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, journeyevent.FieldID)
		for _, f := range fields {
			if !journeyevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != journeyevent.FieldID {
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
	if value, ok := _u.mutation.EventIndex(); ok {
		_spec.SetField(journeyevent.FieldEventIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventIndex(); ok {
		_spec.AddField(journeyevent.FieldEventIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(journeyevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PointID(); ok {
		_spec.SetField(journeyevent.FieldPointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointName(); ok {
		_spec.SetField(journeyevent.FieldPointName, field.TypeString, value)
	}
	if _u.mutation.PointNameCleared() {
		_spec.ClearField(journeyevent.FieldPointName, field.TypeString)
	}
	if value, ok := _u.mutation.InPlayableBorder(); ok {
		_spec.SetField(journeyevent.FieldInPlayableBorder, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ScheduledTime(); ok {
		_spec.SetField(journeyevent.FieldScheduledTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RealtimeTime(); ok {
		_spec.SetField(journeyevent.FieldRealtimeTime, field.TypeTime, value)
	}
	if _u.mutation.RealtimeTimeCleared() {
		_spec.ClearField(journeyevent.FieldRealtimeTime, field.TypeTime)
	}
	if value, ok := _u.mutation.RealtimeTimeType(); ok {
		_spec.SetField(journeyevent.FieldRealtimeTimeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Transport(); ok {
		_spec.SetField(journeyevent.FieldTransport, field.TypeJSON, value)
	}
	if _u.mutation.TransportCleared() {
		_spec.ClearField(journeyevent.FieldTransport, field.TypeJSON)
	}
	if value, ok := _u.mutation.StopType(); ok {
		_spec.SetField(journeyevent.FieldStopType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledPlatform(); ok {
		_spec.SetField(journeyevent.FieldScheduledPlatform, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScheduledPlatform(); ok {
		_spec.AddField(journeyevent.FieldScheduledPlatform, field.TypeInt, value)
	}
	if _u.mutation.ScheduledPlatformCleared() {
		_spec.ClearField(journeyevent.FieldScheduledPlatform, field.TypeInt)
	}
	if value, ok := _u.mutation.ScheduledTrack(); ok {
		_spec.SetField(journeyevent.FieldScheduledTrack, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScheduledTrack(); ok {
		_spec.AddField(journeyevent.FieldScheduledTrack, field.TypeInt, value)
	}
	if _u.mutation.ScheduledTrackCleared() {
		_spec.ClearField(journeyevent.FieldScheduledTrack, field.TypeInt)
	}
	if value, ok := _u.mutation.RealtimePlatform(); ok {
		_spec.SetField(journeyevent.FieldRealtimePlatform, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRealtimePlatform(); ok {
		_spec.AddField(journeyevent.FieldRealtimePlatform, field.TypeInt, value)
	}
	if _u.mutation.RealtimePlatformCleared() {
		_spec.ClearField(journeyevent.FieldRealtimePlatform, field.TypeInt)
	}
	if value, ok := _u.mutation.RealtimeTrack(); ok {
		_spec.SetField(journeyevent.FieldRealtimeTrack, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRealtimeTrack(); ok {
		_spec.AddField(journeyevent.FieldRealtimeTrack, field.TypeInt, value)
	}
	if _u.mutation.RealtimeTrackCleared() {
		_spec.ClearField(journeyevent.FieldRealtimeTrack, field.TypeInt)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(journeyevent.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Additional(); ok {
		_spec.SetField(journeyevent.FieldAdditional, field.TypeBool, value)
	}
	_node = &JourneyEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journeyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
