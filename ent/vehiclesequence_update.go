// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/simtrack/sit-collector/ent/journey"
	"github.com/simtrack/sit-collector/ent/predicate"
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
)

// VehicleSequenceUpdate is the builder for updating VehicleSequence entities.
type VehicleSequenceUpdate struct {
	config
	hooks    []Hook
	mutation *VehicleSequenceMutation
}

// Where appends a list predicates to the VehicleSequenceUpdate builder.
func (_u *VehicleSequenceUpdate) Where(ps ...predicate.VehicleSequence) *VehicleSequenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJourneyID sets the "journey_id" field.
func (_u *VehicleSequenceUpdate) SetJourneyID(v string) *VehicleSequenceUpdate {
	_u.mutation.SetJourneyID(v)
	return _u
}

// SetNillableJourneyID sets the "journey_id" field if the given value is not nil.
func (_u *VehicleSequenceUpdate) SetNillableJourneyID(v *string) *VehicleSequenceUpdate {
	if v != nil {
		_u.SetJourneyID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VehicleSequenceUpdate) SetStatus(v vehiclesequence.Status) *VehicleSequenceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VehicleSequenceUpdate) SetNillableStatus(v *vehiclesequence.Status) *VehicleSequenceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVehicles sets the "vehicles" field.
func (_u *VehicleSequenceUpdate) SetVehicles(v []map[string]interface{}) *VehicleSequenceUpdate {
	_u.mutation.SetVehicles(v)
	return _u
}

// AppendVehicles appends value to the "vehicles" field.
func (_u *VehicleSequenceUpdate) AppendVehicles(v []map[string]interface{}) *VehicleSequenceUpdate {
	_u.mutation.AppendVehicles(v)
	return _u
}

// SetResolveKey sets the "resolve_key" field.
func (_u *VehicleSequenceUpdate) SetResolveKey(v string) *VehicleSequenceUpdate {
	_u.mutation.SetResolveKey(v)
	return _u
}

// SetNillableResolveKey sets the "resolve_key" field if the given value is not nil.
func (_u *VehicleSequenceUpdate) SetNillableResolveKey(v *string) *VehicleSequenceUpdate {
	if v != nil {
		_u.SetResolveKey(*v)
	}
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *VehicleSequenceUpdate) SetUpdateTime(v time.Time) *VehicleSequenceUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetJourney sets the "journey" edge to the Journey entity.
func (_u *VehicleSequenceUpdate) SetJourney(v *Journey) *VehicleSequenceUpdate {
	return _u.SetJourneyID(v.ID)
}

// Mutation returns the VehicleSequenceMutation object of the builder.
func (_u *VehicleSequenceUpdate) Mutation() *VehicleSequenceMutation {
	return _u.mutation
}

// ClearJourney clears the "journey" edge to the Journey entity.
func (_u *VehicleSequenceUpdate) ClearJourney() *VehicleSequenceUpdate {
	_u.mutation.ClearJourney()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VehicleSequenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleSequenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VehicleSequenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleSequenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VehicleSequenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := vehiclesequence.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VehicleSequenceUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := vehiclesequence.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VehicleSequence.status": %w`, err)}
		}
	}
	if _u.mutation.JourneyCleared() && len(_u.mutation.JourneyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VehicleSequence.journey"`)
	}
	return nil
}

func (_u *VehicleSequenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vehiclesequence.Table, vehiclesequence.Columns, sqlgraph.NewFieldSpec(vehiclesequence.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(vehiclesequence.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Vehicles(); ok {
		_spec.SetField(vehiclesequence.FieldVehicles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVehicles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vehiclesequence.FieldVehicles, value)
		})
	}
	if value, ok := _u.mutation.ResolveKey(); ok {
		_spec.SetField(vehiclesequence.FieldResolveKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(vehiclesequence.FieldUpdateTime, field.TypeTime, value)
	}
	if _u.mutation.JourneyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vehiclesequence.JourneyTable,
			Columns: []string{vehiclesequence.JourneyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journey.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JourneyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vehiclesequence.JourneyTable,
			Columns: []string{vehiclesequence.JourneyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehiclesequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VehicleSequenceUpdateOne is the builder for updating a single VehicleSequence entity.
type VehicleSequenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VehicleSequenceMutation
}

// SetJourneyID sets the "journey_id" field.
func (_u *VehicleSequenceUpdateOne) SetJourneyID(v string) *VehicleSequenceUpdateOne {
	_u.mutation.SetJourneyID(v)
	return _u
}

// SetNillableJourneyID sets the "journey_id" field if the given value is not nil.
func (_u *VehicleSequenceUpdateOne) SetNillableJourneyID(v *string) *VehicleSequenceUpdateOne {
	if v != nil {
		_u.SetJourneyID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VehicleSequenceUpdateOne) SetStatus(v vehiclesequence.Status) *VehicleSequenceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VehicleSequenceUpdateOne) SetNillableStatus(v *vehiclesequence.Status) *VehicleSequenceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVehicles sets the "vehicles" field.
func (_u *VehicleSequenceUpdateOne) SetVehicles(v []map[string]interface{}) *VehicleSequenceUpdateOne {
	_u.mutation.SetVehicles(v)
	return _u
}

// AppendVehicles appends value to the "vehicles" field.
func (_u *VehicleSequenceUpdateOne) AppendVehicles(v []map[string]interface{}) *VehicleSequenceUpdateOne {
	_u.mutation.AppendVehicles(v)
	return _u
}

// SetResolveKey sets the "resolve_key" field.
func (_u *VehicleSequenceUpdateOne) SetResolveKey(v string) *VehicleSequenceUpdateOne {
	_u.mutation.SetResolveKey(v)
	return _u
}

// SetNillableResolveKey sets the "resolve_key" field if the given value is not nil.
func (_u *VehicleSequenceUpdateOne) SetNillableResolveKey(v *string) *VehicleSequenceUpdateOne {
	if v != nil {
		_u.SetResolveKey(*v)
	}
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *VehicleSequenceUpdateOne) SetUpdateTime(v time.Time) *VehicleSequenceUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetJourney sets the "journey" edge to the Journey entity.
func (_u *VehicleSequenceUpdateOne) SetJourney(v *Journey) *VehicleSequenceUpdateOne {
	return _u.SetJourneyID(v.ID)
}

// Mutation returns the VehicleSequenceMutation object of the builder.
func (_u *VehicleSequenceUpdateOne) Mutation() *VehicleSequenceMutation {
	return _u.mutation
}

// ClearJourney clears the "journey" edge to the Journey entity.
func (_u *VehicleSequenceUpdateOne) ClearJourney() *VehicleSequenceUpdateOne {
	_u.mutation.ClearJourney()
	return _u
}

// Where appends a list predicates to the VehicleSequenceUpdate builder.
func (_u *VehicleSequenceUpdateOne) Where(ps ...predicate.VehicleSequence) *VehicleSequenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VehicleSequenceUpdateOne) Select(field string, fields ...string) *VehicleSequenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VehicleSequence entity.
func (_u *VehicleSequenceUpdateOne) Save(ctx context.Context) (*VehicleSequence, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleSequenceUpdateOne) SaveX(ctx context.Context) *VehicleSequence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VehicleSequenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleSequenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VehicleSequenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := vehiclesequence.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VehicleSequenceUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := vehiclesequence.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VehicleSequence.status": %w`, err)}
		}
	}
	if _u.mutation.JourneyCleared() && len(_u.mutation.JourneyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VehicleSequence.journey"`)
	}
	return nil
}

func (_u *VehicleSequenceUpdateOne) sqlSave(ctx context.Context) (_node *VehicleSequence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vehiclesequence.Table, vehiclesequence.Columns, sqlgraph.NewFieldSpec(vehiclesequence.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VehicleSequence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vehiclesequence.FieldID)
		for _, f := range fields {
			if !vehiclesequence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vehiclesequence.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(vehiclesequence.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Vehicles(); ok {
		_spec.SetField(vehiclesequence.FieldVehicles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVehicles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vehiclesequence.FieldVehicles, value)
		})
	}
	if value, ok := _u.mutation.ResolveKey(); ok {
		_spec.SetField(vehiclesequence.FieldResolveKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(vehiclesequence.FieldUpdateTime, field.TypeTime, value)
	}
	if _u.mutation.JourneyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vehiclesequence.JourneyTable,
			Columns: []string{vehiclesequence.JourneyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journey.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JourneyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   vehiclesequence.JourneyTable,
			Columns: []string{vehiclesequence.JourneyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(journey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VehicleSequence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehiclesequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
