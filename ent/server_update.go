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
	"github.com/simtrack/sit-collector/ent/predicate"
	"github.com/simtrack/sit-collector/ent/server"
)

// ServerUpdate is the builder for updating Server entities.
type ServerUpdate struct {
	config
	hooks    []Hook
	mutation *ServerMutation
}

// Where appends a list predicates to the ServerUpdate builder.
func (_u *ServerUpdate) Where(ps ...predicate.Server) *ServerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *ServerUpdate) SetCode(v string) *ServerUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableCode(v *string) *ServerUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *ServerUpdate) SetRegion(v server.Region) *ServerUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableRegion(v *server.Region) *ServerUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetScenery sets the "scenery" field.
func (_u *ServerUpdate) SetScenery(v string) *ServerUpdate {
	_u.mutation.SetScenery(v)
	return _u
}

// SetNillableScenery sets the "scenery" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableScenery(v *string) *ServerUpdate {
	if v != nil {
		_u.SetScenery(*v)
	}
	return _u
}

// ClearScenery clears the value of the "scenery" field.
func (_u *ServerUpdate) ClearScenery() *ServerUpdate {
	_u.mutation.ClearScenery()
	return _u
}

// SetUtcOffsetHours sets the "utc_offset_hours" field.
func (_u *ServerUpdate) SetUtcOffsetHours(v int) *ServerUpdate {
	_u.mutation.ResetUtcOffsetHours()
	_u.mutation.SetUtcOffsetHours(v)
	return _u
}

// SetNillableUtcOffsetHours sets the "utc_offset_hours" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableUtcOffsetHours(v *int) *ServerUpdate {
	if v != nil {
		_u.SetUtcOffsetHours(*v)
	}
	return _u
}

// AddUtcOffsetHours adds value to the "utc_offset_hours" field.
func (_u *ServerUpdate) AddUtcOffsetHours(v int) *ServerUpdate {
	_u.mutation.AddUtcOffsetHours(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ServerUpdate) SetLanguage(v string) *ServerUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableLanguage(v *string) *ServerUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *ServerUpdate) ClearLanguage() *ServerUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ServerUpdate) SetTags(v []string) *ServerUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ServerUpdate) AppendTags(v []string) *ServerUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ServerUpdate) ClearTags() *ServerUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *ServerUpdate) SetDeleted(v bool) *ServerUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableDeleted(v *bool) *ServerUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetRegisteredSince sets the "registered_since" field.
func (_u *ServerUpdate) SetRegisteredSince(v time.Time) *ServerUpdate {
	_u.mutation.SetRegisteredSince(v)
	return _u
}

// SetNillableRegisteredSince sets the "registered_since" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableRegisteredSince(v *time.Time) *ServerUpdate {
	if v != nil {
		_u.SetRegisteredSince(*v)
	}
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *ServerUpdate) SetUpdateTime(v time.Time) *ServerUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// Mutation returns the ServerMutation object of the builder.
func (_u *ServerUpdate) Mutation() *ServerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServerUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := server.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServerUpdate) check() error {
	if v, ok := _u.mutation.Region(); ok {
		if err := server.RegionValidator(v); err != nil {
			return &ValidationError{Name: "region", err: fmt.Errorf(`ent: validator failed for field "Server.region": %w`, err)}
		}
	}
	return nil
}

func (_u *ServerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(server.Table, server.Columns, sqlgraph.NewFieldSpec(server.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(server.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(server.FieldRegion, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Scenery(); ok {
		_spec.SetField(server.FieldScenery, field.TypeString, value)
	}
	if _u.mutation.SceneryCleared() {
		_spec.ClearField(server.FieldScenery, field.TypeString)
	}
	if value, ok := _u.mutation.UtcOffsetHours(); ok {
		_spec.SetField(server.FieldUtcOffsetHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUtcOffsetHours(); ok {
		_spec.AddField(server.FieldUtcOffsetHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(server.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(server.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(server.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, server.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(server.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(server.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RegisteredSince(); ok {
		_spec.SetField(server.FieldRegisteredSince, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(server.FieldUpdateTime, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{server.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServerUpdateOne is the builder for updating a single Server entity.
type ServerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServerMutation
}

// SetCode sets the "code" field.
func (_u *ServerUpdateOne) SetCode(v string) *ServerUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableCode(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *ServerUpdateOne) SetRegion(v server.Region) *ServerUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableRegion(v *server.Region) *ServerUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetScenery sets the "scenery" field.
func (_u *ServerUpdateOne) SetScenery(v string) *ServerUpdateOne {
	_u.mutation.SetScenery(v)
	return _u
}

// SetNillableScenery sets the "scenery" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableScenery(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetScenery(*v)
	}
	return _u
}

// ClearScenery clears the value of the "scenery" field.
func (_u *ServerUpdateOne) ClearScenery() *ServerUpdateOne {
	_u.mutation.ClearScenery()
	return _u
}

// SetUtcOffsetHours sets the "utc_offset_hours" field.
func (_u *ServerUpdateOne) SetUtcOffsetHours(v int) *ServerUpdateOne {
	_u.mutation.ResetUtcOffsetHours()
	_u.mutation.SetUtcOffsetHours(v)
	return _u
}

// SetNillableUtcOffsetHours sets the "utc_offset_hours" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableUtcOffsetHours(v *int) *ServerUpdateOne {
	if v != nil {
		_u.SetUtcOffsetHours(*v)
	}
	return _u
}

// AddUtcOffsetHours adds value to the "utc_offset_hours" field.
func (_u *ServerUpdateOne) AddUtcOffsetHours(v int) *ServerUpdateOne {
	_u.mutation.AddUtcOffsetHours(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ServerUpdateOne) SetLanguage(v string) *ServerUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableLanguage(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *ServerUpdateOne) ClearLanguage() *ServerUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ServerUpdateOne) SetTags(v []string) *ServerUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ServerUpdateOne) AppendTags(v []string) *ServerUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ServerUpdateOne) ClearTags() *ServerUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *ServerUpdateOne) SetDeleted(v bool) *ServerUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableDeleted(v *bool) *ServerUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetRegisteredSince sets the "registered_since" field.
func (_u *ServerUpdateOne) SetRegisteredSince(v time.Time) *ServerUpdateOne {
	_u.mutation.SetRegisteredSince(v)
	return _u
}

// SetNillableRegisteredSince sets the "registered_since" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableRegisteredSince(v *time.Time) *ServerUpdateOne {
	if v != nil {
		_u.SetRegisteredSince(*v)
	}
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *ServerUpdateOne) SetUpdateTime(v time.Time) *ServerUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// Mutation returns the ServerMutation object of the builder.
func (_u *ServerUpdateOne) Mutation() *ServerMutation {
	return _u.mutation
}

// Where appends a list predicates to the ServerUpdate builder.
func (_u *ServerUpdateOne) Where(ps ...predicate.Server) *ServerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServerUpdateOne) Select(field string, fields ...string) *ServerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Server entity.
func (_u *ServerUpdateOne) Save(ctx context.Context) (*Server, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerUpdateOne) SaveX(ctx context.Context) *Server {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := server.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServerUpdateOne) check() error {
	if v, ok := _u.mutation.Region(); ok {
		if err := server.RegionValidator(v); err != nil {
			return &ValidationError{Name: "region", err: fmt.Errorf(`ent: validator failed for field "Server.region": %w`, err)}
		}
	}
	return nil
}

func (_u *ServerUpdateOne) sqlSave(ctx context.Context) (_node *Server, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(server.Table, server.Columns, sqlgraph.NewFieldSpec(server.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Server.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, server.FieldID)
		for _, f := range fields {
			if !server.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != server.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(server.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(server.FieldRegion, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Scenery(); ok {
		_spec.SetField(server.FieldScenery, field.TypeString, value)
	}
	if _u.mutation.SceneryCleared() {
		_spec.ClearField(server.FieldScenery, field.TypeString)
	}
	if value, ok := _u.mutation.UtcOffsetHours(); ok {
		_spec.SetField(server.FieldUtcOffsetHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUtcOffsetHours(); ok {
		_spec.AddField(server.FieldUtcOffsetHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(server.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(server.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(server.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, server.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(server.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(server.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RegisteredSince(); ok {
		_spec.SetField(server.FieldRegisteredSince, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(server.FieldUpdateTime, field.TypeTime, value)
	}
	_node = &Server{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{server.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
