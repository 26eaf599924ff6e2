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
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
)

// VehicleSequenceCreate is the builder for creating a VehicleSequence entity.
type VehicleSequenceCreate struct {
	config
	mutation *VehicleSequenceMutation
	hooks    []Hook
}

// SetJourneyID sets the "journey_id" field.
func (_c *VehicleSequenceCreate) SetJourneyID(v string) *VehicleSequenceCreate {
	_c.mutation.SetJourneyID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *VehicleSequenceCreate) SetStatus(v vehiclesequence.Status) *VehicleSequenceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetVehicles sets the "vehicles" field.
func (_c *VehicleSequenceCreate) SetVehicles(v []map[string]interface{}) *VehicleSequenceCreate {
	_c.mutation.SetVehicles(v)
	return _c
}

// SetResolveKey sets the "resolve_key" field.
func (_c *VehicleSequenceCreate) SetResolveKey(v string) *VehicleSequenceCreate {
	_c.mutation.SetResolveKey(v)
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *VehicleSequenceCreate) SetUpdateTime(v time.Time) *VehicleSequenceCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *VehicleSequenceCreate) SetNillableUpdateTime(v *time.Time) *VehicleSequenceCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VehicleSequenceCreate) SetID(v string) *VehicleSequenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJourney sets the "journey" edge to the Journey entity.
func (_c *VehicleSequenceCreate) SetJourney(v *Journey) *VehicleSequenceCreate {
	return _c.SetJourneyID(v.ID)
}

// Mutation returns the VehicleSequenceMutation object of the builder.
func (_c *VehicleSequenceCreate) Mutation() *VehicleSequenceMutation {
	return _c.mutation
}

// Save creates the VehicleSequence in the database.
func (_c *VehicleSequenceCreate) Save(ctx context.Context) (*VehicleSequence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VehicleSequenceCreate) SaveX(ctx context.Context) *VehicleSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VehicleSequenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VehicleSequenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VehicleSequenceCreate) defaults() {
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := vehiclesequence.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VehicleSequenceCreate) check() error {
	if _, ok := _c.mutation.JourneyID(); !ok {
		return &ValidationError{Name: "journey_id", err: errors.New(`ent: missing required field "VehicleSequence.journey_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VehicleSequence.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := vehiclesequence.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VehicleSequence.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Vehicles(); !ok {
		return &ValidationError{Name: "vehicles", err: errors.New(`ent: missing required field "VehicleSequence.vehicles"`)}
	}
	if _, ok := _c.mutation.ResolveKey(); !ok {
		return &ValidationError{Name: "resolve_key", err: errors.New(`ent: missing required field "VehicleSequence.resolve_key"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "VehicleSequence.update_time"`)}
	}
	if len(_c.mutation.JourneyIDs()) == 0 {
		return &ValidationError{Name: "journey", err: errors.New(`ent: missing required edge "VehicleSequence.journey"`)}
	}
	return nil
}

func (_c *VehicleSequenceCreate) sqlSave(ctx context.Context) (*VehicleSequence, error) {
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
			return nil, fmt.Errorf("unexpected VehicleSequence.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VehicleSequenceCreate) createSpec() (*VehicleSequence, *sqlgraph.CreateSpec) {
	var (
		_node = &VehicleSequence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vehiclesequence.Table, sqlgraph.NewFieldSpec(vehiclesequence.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(vehiclesequence.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Vehicles(); ok {
		_spec.SetField(vehiclesequence.FieldVehicles, field.TypeJSON, value)
		_node.Vehicles = value
	}
	if value, ok := _c.mutation.ResolveKey(); ok {
		_spec.SetField(vehiclesequence.FieldResolveKey, field.TypeString, value)
		_node.ResolveKey = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(vehiclesequence.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if nodes := _c.mutation.JourneyIDs(); len(nodes) > 0 {
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
		_node.JourneyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VehicleSequenceCreateBulk is the builder for creating many VehicleSequence entities in bulk.
type VehicleSequenceCreateBulk struct {
	config
	err      error
	builders []*VehicleSequenceCreate
}

// Save creates the VehicleSequence entities in the database.
func (_c *VehicleSequenceCreateBulk) Save(ctx context.Context) ([]*VehicleSequence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VehicleSequence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VehicleSequenceMutation)
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
func (_c *VehicleSequenceCreateBulk) SaveX(ctx context.Context) []*VehicleSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VehicleSequenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VehicleSequenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
