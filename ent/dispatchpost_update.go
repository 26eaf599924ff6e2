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
	"github.com/simtrack/sit-collector/ent/dispatchpost"
	"github.com/simtrack/sit-collector/ent/predicate"
)

// DispatchPostUpdate is the builder for updating DispatchPost entities.
type DispatchPostUpdate struct {
	config
	hooks    []Hook
	mutation *DispatchPostMutation
}

// Where appends a list predicates to the DispatchPostUpdate builder.
func (_u *DispatchPostUpdate) Where(ps ...predicate.DispatchPost) *DispatchPostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DispatchPostUpdate) SetName(v string) *DispatchPostUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DispatchPostUpdate) SetNillableName(v *string) *DispatchPostUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPointID sets the "point_id" field.
func (_u *DispatchPostUpdate) SetPointID(v string) *DispatchPostUpdate {
	_u.mutation.SetPointID(v)
	return _u
}

// SetNillablePointID sets the "point_id" field if the given value is not nil.
func (_u *DispatchPostUpdate) SetNillablePointID(v *string) *DispatchPostUpdate {
	if v != nil {
		_u.SetPointID(*v)
	}
	return _u
}

// ClearPointID clears the value of the "point_id" field.
func (_u *DispatchPostUpdate) ClearPointID() *DispatchPostUpdate {
	_u.mutation.ClearPointID()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *DispatchPostUpdate) SetLatitude(v float64) *DispatchPostUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *DispatchPostUpdate) SetNillableLatitude(v *float64) *DispatchPostUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *DispatchPostUpdate) AddLatitude(v float64) *DispatchPostUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *DispatchPostUpdate) SetLongitude(v float64) *DispatchPostUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *DispatchPostUpdate) SetNillableLongitude(v *float64) *DispatchPostUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *DispatchPostUpdate) AddLongitude(v float64) *DispatchPostUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DispatchPostUpdate) SetDifficulty(v int) *DispatchPostUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DispatchPostUpdate) SetNillableDifficulty(v *int) *DispatchPostUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *DispatchPostUpdate) AddDifficulty(v int) *DispatchPostUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetMainImageURL sets the "main_image_url" field.
func (_u *DispatchPostUpdate) SetMainImageURL(v string) *DispatchPostUpdate {
	_u.mutation.SetMainImageURL(v)
	return _u
}

// SetNillableMainImageURL sets the "main_image_url" field if the given value is not nil.
func (_u *DispatchPostUpdate) SetNillableMainImageURL(v *string) *DispatchPostUpdate {
	if v != nil {
		_u.SetMainImageURL(*v)
	}
	return _u
}

// ClearMainImageURL clears the value of the "main_image_url" field.
func (_u *DispatchPostUpdate) ClearMainImageURL() *DispatchPostUpdate {
	_u.mutation.ClearMainImageURL()
	return _u
}

// SetDetailImageURL sets the "detail_image_url" field.
func (_u *DispatchPostUpdate) SetDetailImageURL(v string) *DispatchPostUpdate {
	_u.mutation.SetDetailImageURL(v)
	return _u
}

// SetNillableDetailImageURL sets the "detail_image_url" field if the given value is not nil.
func (_u *DispatchPostUpdate) SetNillableDetailImageURL(v *string) *DispatchPostUpdate {
	if v != nil {
		_u.SetDetailImageURL(*v)
	}
	return _u
}

// ClearDetailImageURL clears the value of the "detail_image_url" field.
func (_u *DispatchPostUpdate) ClearDetailImageURL() *DispatchPostUpdate {
	_u.mutation.ClearDetailImageURL()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *DispatchPostUpdate) SetDeleted(v bool) *DispatchPostUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *DispatchPostUpdate) SetNillableDeleted(v *bool) *DispatchPostUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *DispatchPostUpdate) SetUpdateTime(v time.Time) *DispatchPostUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// Mutation returns the DispatchPostMutation object of the builder.
func (_u *DispatchPostUpdate) Mutation() *DispatchPostMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DispatchPostUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DispatchPostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DispatchPostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DispatchPostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DispatchPostUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := dispatchpost.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DispatchPostUpdate) check() error {
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := dispatchpost.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "DispatchPost.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *DispatchPostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dispatchpost.Table, dispatchpost.Columns, sqlgraph.NewFieldSpec(dispatchpost.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dispatchpost.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointID(); ok {
		_spec.SetField(dispatchpost.FieldPointID, field.TypeString, value)
	}
	if _u.mutation.PointIDCleared() {
		_spec.ClearField(dispatchpost.FieldPointID, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(dispatchpost.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(dispatchpost.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(dispatchpost.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(dispatchpost.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(dispatchpost.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(dispatchpost.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MainImageURL(); ok {
		_spec.SetField(dispatchpost.FieldMainImageURL, field.TypeString, value)
	}
	if _u.mutation.MainImageURLCleared() {
		_spec.ClearField(dispatchpost.FieldMainImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.DetailImageURL(); ok {
		_spec.SetField(dispatchpost.FieldDetailImageURL, field.TypeString, value)
	}
	if _u.mutation.DetailImageURLCleared() {
		_spec.ClearField(dispatchpost.FieldDetailImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(dispatchpost.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(dispatchpost.FieldUpdateTime, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dispatchpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DispatchPostUpdateOne is the builder for updating a single DispatchPost entity.
type DispatchPostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DispatchPostMutation
}

// SetName sets the "name" field.
func (_u *DispatchPostUpdateOne) SetName(v string) *DispatchPostUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DispatchPostUpdateOne) SetNillableName(v *string) *DispatchPostUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPointID sets the "point_id" field.
func (_u *DispatchPostUpdateOne) SetPointID(v string) *DispatchPostUpdateOne {
	_u.mutation.SetPointID(v)
	return _u
}

// SetNillablePointID sets the "point_id" field if the given value is not nil.
func (_u *DispatchPostUpdateOne) SetNillablePointID(v *string) *DispatchPostUpdateOne {
	if v != nil {
		_u.SetPointID(*v)
	}
	return _u
}

// ClearPointID clears the value of the "point_id" field.
func (_u *DispatchPostUpdateOne) ClearPointID() *DispatchPostUpdateOne {
	_u.mutation.ClearPointID()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *DispatchPostUpdateOne) SetLatitude(v float64) *DispatchPostUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *DispatchPostUpdateOne) SetNillableLatitude(v *float64) *DispatchPostUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *DispatchPostUpdateOne) AddLatitude(v float64) *DispatchPostUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *DispatchPostUpdateOne) SetLongitude(v float64) *DispatchPostUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *DispatchPostUpdateOne) SetNillableLongitude(v *float64) *DispatchPostUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *DispatchPostUpdateOne) AddLongitude(v float64) *DispatchPostUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DispatchPostUpdateOne) SetDifficulty(v int) *DispatchPostUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DispatchPostUpdateOne) SetNillableDifficulty(v *int) *DispatchPostUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *DispatchPostUpdateOne) AddDifficulty(v int) *DispatchPostUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetMainImageURL sets the "main_image_url" field.
func (_u *DispatchPostUpdateOne) SetMainImageURL(v string) *DispatchPostUpdateOne {
	_u.mutation.SetMainImageURL(v)
	return _u
}

// SetNillableMainImageURL sets the "main_image_url" field if the given value is not nil.
func (_u *DispatchPostUpdateOne) SetNillableMainImageURL(v *string) *DispatchPostUpdateOne {
	if v != nil {
		_u.SetMainImageURL(*v)
	}
	return _u
}

// ClearMainImageURL clears the value of the "main_image_url" field.
func (_u *DispatchPostUpdateOne) ClearMainImageURL() *DispatchPostUpdateOne {
	_u.mutation.ClearMainImageURL()
	return _u
}

// SetDetailImageURL sets the "detail_image_url" field.
func (_u *DispatchPostUpdateOne) SetDetailImageURL(v string) *DispatchPostUpdateOne {
	_u.mutation.SetDetailImageURL(v)
	return _u
}

// SetNillableDetailImageURL sets the "detail_image_url" field if the given value is not nil.
func (_u *DispatchPostUpdateOne) SetNillableDetailImageURL(v *string) *DispatchPostUpdateOne {
	if v != nil {
		_u.SetDetailImageURL(*v)
	}
	return _u
}

// ClearDetailImageURL clears the value of the "detail_image_url" field.
func (_u *DispatchPostUpdateOne) ClearDetailImageURL() *DispatchPostUpdateOne {
	_u.mutation.ClearDetailImageURL()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *DispatchPostUpdateOne) SetDeleted(v bool) *DispatchPostUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *DispatchPostUpdateOne) SetNillableDeleted(v *bool) *DispatchPostUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *DispatchPostUpdateOne) SetUpdateTime(v time.Time) *DispatchPostUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// Mutation returns the DispatchPostMutation object of the builder.
func (_u *DispatchPostUpdateOne) Mutation() *DispatchPostMutation {
	return _u.mutation
}

// Where appends a list predicates to the DispatchPostUpdate builder.
func (_u *DispatchPostUpdateOne) Where(ps ...predicate.DispatchPost) *DispatchPostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DispatchPostUpdateOne) Select(field string, fields ...string) *DispatchPostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DispatchPost entity.
func (_u *DispatchPostUpdateOne) Save(ctx context.Context) (*DispatchPost, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DispatchPostUpdateOne) SaveX(ctx context.Context) *DispatchPost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DispatchPostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DispatchPostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DispatchPostUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := dispatchpost.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DispatchPostUpdateOne) check() error {
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := dispatchpost.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "DispatchPost.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *DispatchPostUpdateOne) sqlSave(ctx context.Context) (_node *DispatchPost, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dispatchpost.Table, dispatchpost.Columns, sqlgraph.NewFieldSpec(dispatchpost.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DispatchPost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dispatchpost.FieldID)
		for _, f := range fields {
			if !dispatchpost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dispatchpost.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dispatchpost.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointID(); ok {
		_spec.SetField(dispatchpost.FieldPointID, field.TypeString, value)
	}
	if _u.mutation.PointIDCleared() {
		_spec.ClearField(dispatchpost.FieldPointID, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(dispatchpost.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(dispatchpost.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(dispatchpost.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(dispatchpost.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(dispatchpost.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(dispatchpost.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MainImageURL(); ok {
		_spec.SetField(dispatchpost.FieldMainImageURL, field.TypeString, value)
	}
	if _u.mutation.MainImageURLCleared() {
		_spec.ClearField(dispatchpost.FieldMainImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.DetailImageURL(); ok {
		_spec.SetField(dispatchpost.FieldDetailImageURL, field.TypeString, value)
	}
	if _u.mutation.DetailImageURLCleared() {
		_spec.ClearField(dispatchpost.FieldDetailImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(dispatchpost.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(dispatchpost.FieldUpdateTime, field.TypeTime, value)
	}
	_node = &DispatchPost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dispatchpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
