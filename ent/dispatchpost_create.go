// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/simtrack/sit-collector/ent/dispatchpost"
)

// DispatchPostCreate is the builder for creating a DispatchPost entity.
type DispatchPostCreate struct {
	config
	mutation *DispatchPostMutation
	hooks    []Hook
}

// SetForeignID sets the "foreign_id" field.
func (_c *DispatchPostCreate) SetForeignID(v string) *DispatchPostCreate {
	_c.mutation.SetForeignID(v)
	return _c
}

// SetServerID sets the "server_id" field.
func (_c *DispatchPostCreate) SetServerID(v string) *DispatchPostCreate {
	_c.mutation.SetServerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DispatchPostCreate) SetName(v string) *DispatchPostCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPointID sets the "point_id" field.
func (_c *DispatchPostCreate) SetPointID(v string) *DispatchPostCreate {
	_c.mutation.SetPointID(v)
	return _c
}

// SetNillablePointID sets the "point_id" field if the given value is not nil.
func (_c *DispatchPostCreate) SetNillablePointID(v *string) *DispatchPostCreate {
	if v != nil {
		_c.SetPointID(*v)
	}
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *DispatchPostCreate) SetLatitude(v float64) *DispatchPostCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *DispatchPostCreate) SetLongitude(v float64) *DispatchPostCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *DispatchPostCreate) SetDifficulty(v int) *DispatchPostCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetMainImageURL sets the "main_image_url" field.
func (_c *DispatchPostCreate) SetMainImageURL(v string) *DispatchPostCreate {
	_c.mutation.SetMainImageURL(v)
	return _c
}

// SetNillableMainImageURL sets the "main_image_url" field if the given value is not nil.
func (_c *DispatchPostCreate) SetNillableMainImageURL(v *string) *DispatchPostCreate {
	if v != nil {
		_c.SetMainImageURL(*v)
	}
	return _c
}

// SetDetailImageURL sets the "detail_image_url" field.
func (_c *DispatchPostCreate) SetDetailImageURL(v string) *DispatchPostCreate {
	_c.mutation.SetDetailImageURL(v)
	return _c
}

// SetNillableDetailImageURL sets the "detail_image_url" field if the given value is not nil.
func (_c *DispatchPostCreate) SetNillableDetailImageURL(v *string) *DispatchPostCreate {
	if v != nil {
		_c.SetDetailImageURL(*v)
	}
	return _c
}

// SetDeleted sets the "deleted" field.
func (_c *DispatchPostCreate) SetDeleted(v bool) *DispatchPostCreate {
	_c.mutation.SetDeleted(v)
	return _c
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_c *DispatchPostCreate) SetNillableDeleted(v *bool) *DispatchPostCreate {
	if v != nil {
		_c.SetDeleted(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *DispatchPostCreate) SetUpdateTime(v time.Time) *DispatchPostCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *DispatchPostCreate) SetNillableUpdateTime(v *time.Time) *DispatchPostCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DispatchPostCreate) SetID(v string) *DispatchPostCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DispatchPostMutation object of the builder.
func (_c *DispatchPostCreate) Mutation() *DispatchPostMutation {
	return _c.mutation
}

// Save creates the DispatchPost in the database.
func (_c *DispatchPostCreate) Save(ctx context.Context) (*DispatchPost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DispatchPostCreate) SaveX(ctx context.Context) *DispatchPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DispatchPostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DispatchPostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DispatchPostCreate) defaults() {
	if _, ok := _c.mutation.Deleted(); !ok {
		v := dispatchpost.DefaultDeleted
		_c.mutation.SetDeleted(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := dispatchpost.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DispatchPostCreate) check() error {
	if _, ok := _c.mutation.ForeignID(); !ok {
		return &ValidationError{Name: "foreign_id", err: errors.New(`ent: missing required field "DispatchPost.foreign_id"`)}
	}
	if _, ok := _c.mutation.ServerID(); !ok {
		return &ValidationError{Name: "server_id", err: errors.New(`ent: missing required field "DispatchPost.server_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DispatchPost.name"`)}
	}
	if _, ok := _c.mutation.Latitude(); !ok {
		return &ValidationError{Name: "latitude", err: errors.New(`ent: missing required field "DispatchPost.latitude"`)}
	}
	if _, ok := _c.mutation.Longitude(); !ok {
		return &ValidationError{Name: "longitude", err: errors.New(`ent: missing required field "DispatchPost.longitude"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "DispatchPost.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := dispatchpost.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "DispatchPost.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "DispatchPost.deleted"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "DispatchPost.update_time"`)}
	}
	return nil
}

func (_c *DispatchPostCreate) sqlSave(ctx context.Context) (*DispatchPost, error) {
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
			return nil, fmt.Errorf("unexpected DispatchPost.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DispatchPostCreate) createSpec() (*DispatchPost, *sqlgraph.CreateSpec) {
	var (
		_node = &DispatchPost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dispatchpost.Table, sqlgraph.NewFieldSpec(dispatchpost.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ForeignID(); ok {
		_spec.SetField(dispatchpost.FieldForeignID, field.TypeString, value)
		_node.ForeignID = value
	}
	if value, ok := _c.mutation.ServerID(); ok {
		_spec.SetField(dispatchpost.FieldServerID, field.TypeString, value)
		_node.ServerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(dispatchpost.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.PointID(); ok {
		_spec.SetField(dispatchpost.FieldPointID, field.TypeString, value)
		_node.PointID = &value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(dispatchpost.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(dispatchpost.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(dispatchpost.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.MainImageURL(); ok {
		_spec.SetField(dispatchpost.FieldMainImageURL, field.TypeString, value)
		_node.MainImageURL = value
	}
	if value, ok := _c.mutation.DetailImageURL(); ok {
		_spec.SetField(dispatchpost.FieldDetailImageURL, field.TypeString, value)
		_node.DetailImageURL = value
	}
	if value, ok := _c.mutation.Deleted(); ok {
		_spec.SetField(dispatchpost.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(dispatchpost.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	return _node, _spec
}

// DispatchPostCreateBulk is the builder for creating many DispatchPost entities in bulk.
type DispatchPostCreateBulk struct {
	config
	err      error
	builders []*DispatchPostCreate
}

// Save creates the DispatchPost entities in the database.
func (_c *DispatchPostCreateBulk) Save(ctx context.Context) ([]*DispatchPost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DispatchPost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DispatchPostMutation)
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
func (_c *DispatchPostCreateBulk) SaveX(ctx context.Context) []*DispatchPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DispatchPostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DispatchPostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
