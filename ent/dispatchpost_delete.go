// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/simtrack/sit-collector/ent/dispatchpost"
	"github.com/simtrack/sit-collector/ent/predicate"
)

// DispatchPostDelete is the builder for deleting a DispatchPost entity.
type DispatchPostDelete struct {
	config
	hooks    []Hook
	mutation *DispatchPostMutation
}

// Where appends a list predicates to the DispatchPostDelete builder.
func (_d *DispatchPostDelete) Where(ps ...predicate.DispatchPost) *DispatchPostDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DispatchPostDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DispatchPostDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DispatchPostDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dispatchpost.Table, sqlgraph.NewFieldSpec(dispatchpost.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DispatchPostDeleteOne is the builder for deleting a single DispatchPost entity.
type DispatchPostDeleteOne struct {
	_d *DispatchPostDelete
}

// Where appends a list predicates to the DispatchPostDelete builder.
func (_d *DispatchPostDeleteOne) Where(ps ...predicate.DispatchPost) *DispatchPostDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DispatchPostDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dispatchpost.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DispatchPostDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
