// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vendrahq/vendra/ent/businessaddon"
	"github.com/vendrahq/vendra/ent/predicate"
)

// BusinessAddonDelete is the builder for deleting a BusinessAddon entity.
type BusinessAddonDelete struct {
	config
	hooks    []Hook
	mutation *BusinessAddonMutation
}

// Where appends a list predicates to the BusinessAddonDelete builder.
func (_d *BusinessAddonDelete) Where(ps ...predicate.BusinessAddon) *BusinessAddonDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BusinessAddonDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BusinessAddonDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BusinessAddonDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(businessaddon.Table, sqlgraph.NewFieldSpec(businessaddon.FieldID, field.TypeString))
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

// BusinessAddonDeleteOne is the builder for deleting a single BusinessAddon entity.
type BusinessAddonDeleteOne struct {
	_d *BusinessAddonDelete
}

// Where appends a list predicates to the BusinessAddonDelete builder.
func (_d *BusinessAddonDeleteOne) Where(ps ...predicate.BusinessAddon) *BusinessAddonDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BusinessAddonDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{businessaddon.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BusinessAddonDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
