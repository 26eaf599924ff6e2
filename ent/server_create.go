// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/simtrack/sit-collector/ent/server"
)

// ServerCreate is the builder for creating a Server entity.
type ServerCreate struct {
	config
	mutation *ServerMutation
	hooks    []Hook
}

// SetForeignID sets the "foreign_id" field.
func (_c *ServerCreate) SetForeignID(v string) *ServerCreate {
	_c.mutation.SetForeignID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *ServerCreate) SetCode(v string) *ServerCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetRegion sets the "region" field.
func (_c *ServerCreate) SetRegion(v server.Region) *ServerCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetScenery sets the "scenery" field.
func (_c *ServerCreate) SetScenery(v string) *ServerCreate {
	_c.mutation.SetScenery(v)
	return _c
}

// SetNillableScenery sets the "scenery" field if the given value is not nil.
func (_c *ServerCreate) SetNillableScenery(v *string) *ServerCreate {
	if v != nil {
		_c.SetScenery(*v)
	}
	return _c
}

// SetUtcOffsetHours sets the "utc_offset_hours" field.
func (_c *ServerCreate) SetUtcOffsetHours(v int) *ServerCreate {
	_c.mutation.SetUtcOffsetHours(v)
	return _c
}

// SetNillableUtcOffsetHours sets the "utc_offset_hours" field if the given value is not nil.
func (_c *ServerCreate) SetNillableUtcOffsetHours(v *int) *ServerCreate {
	if v != nil {
		_c.SetUtcOffsetHours(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *ServerCreate) SetLanguage(v string) *ServerCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *ServerCreate) SetNillableLanguage(v *string) *ServerCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *ServerCreate) SetTags(v []string) *ServerCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetDeleted sets the "deleted" field.
func (_c *ServerCreate) SetDeleted(v bool) *ServerCreate {
	_c.mutation.SetDeleted(v)
	return _c
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_c *ServerCreate) SetNillableDeleted(v *bool) *ServerCreate {
	if v != nil {
		_c.SetDeleted(*v)
	}
	return _c
}

// SetRegisteredSince sets the "registered_since" field.
func (_c *ServerCreate) SetRegisteredSince(v time.Time) *ServerCreate {
	_c.mutation.SetRegisteredSince(v)
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *ServerCreate) SetUpdateTime(v time.Time) *ServerCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *ServerCreate) SetNillableUpdateTime(v *time.Time) *ServerCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServerCreate) SetID(v string) *ServerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ServerMutation object of the builder.
func (_c *ServerCreate) Mutation() *ServerMutation {
	return _c.mutation
}

// Save creates the Server in the database.
func (_c *ServerCreate) Save(ctx context.Context) (*Server, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServerCreate) SaveX(ctx context.Context) *Server {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServerCreate) defaults() {
	if _, ok := _c.mutation.UtcOffsetHours(); !ok {
		v := server.DefaultUtcOffsetHours
		_c.mutation.SetUtcOffsetHours(v)
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		v := server.DefaultDeleted
		_c.mutation.SetDeleted(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := server.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServerCreate) check() error {
	if _, ok := _c.mutation.ForeignID(); !ok {
		return &ValidationError{Name: "foreign_id", err: errors.New(`ent: missing required field "Server.foreign_id"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Server.code"`)}
	}
	if _, ok := _c.mutation.Region(); !ok {
		return &ValidationError{Name: "region", err: errors.New(`ent: missing required field "Server.region"`)}
	}
	if v, ok := _c.mutation.Region(); ok {
		if err := server.RegionValidator(v); err != nil {
			return &ValidationError{Name: "region", err: fmt.Errorf(`ent: validator failed for field "Server.region": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UtcOffsetHours(); !ok {
		return &ValidationError{Name: "utc_offset_hours", err: errors.New(`ent: missing required field "Server.utc_offset_hours"`)}
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "Server.deleted"`)}
	}
	if _, ok := _c.mutation.RegisteredSince(); !ok {
		return &ValidationError{Name: "registered_since", err: errors.New(`ent: missing required field "Server.registered_since"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "Server.update_time"`)}
	}
	return nil
}

func (_c *ServerCreate) sqlSave(ctx context.Context) (*Server, error) {
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
			return nil, fmt.Errorf("unexpected Server.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ServerCreate) createSpec() (*Server, *sqlgraph.CreateSpec) {
	var (
		_node = &Server{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(server.Table, sqlgraph.NewFieldSpec(server.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ForeignID(); ok {
		_spec.SetField(server.FieldForeignID, field.TypeString, value)
		_node.ForeignID = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(server.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(server.FieldRegion, field.TypeEnum, value)
		_node.Region = value
	}
	if value, ok := _c.mutation.Scenery(); ok {
		_spec.SetField(server.FieldScenery, field.TypeString, value)
		_node.Scenery = value
	}
	if value, ok := _c.mutation.UtcOffsetHours(); ok {
		_spec.SetField(server.FieldUtcOffsetHours, field.TypeInt, value)
		_node.UtcOffsetHours = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(server.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(server.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Deleted(); ok {
		_spec.SetField(server.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	if value, ok := _c.mutation.RegisteredSince(); ok {
		_spec.SetField(server.FieldRegisteredSince, field.TypeTime, value)
		_node.RegisteredSince = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(server.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	return _node, _spec
}

// ServerCreateBulk is the builder for creating many Server entities in bulk.
type ServerCreateBulk struct {
	config
	err      error
	builders []*ServerCreate
}

// Save creates the Server entities in the database.
func (_c *ServerCreateBulk) Save(ctx context.Context) ([]*Server, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Server, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServerMutation)
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
func (_c *ServerCreateBulk) SaveX(ctx context.Context) []*Server {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
