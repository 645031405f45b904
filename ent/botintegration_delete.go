// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/ent/predicate"
)

// BotIntegrationDelete is the builder for deleting a BotIntegration entity.
type BotIntegrationDelete struct {
	config
	hooks    []Hook
	mutation *BotIntegrationMutation
}

// Where appends a list predicates to the BotIntegrationDelete builder.
func (_d *BotIntegrationDelete) Where(ps ...predicate.BotIntegration) *BotIntegrationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BotIntegrationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BotIntegrationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BotIntegrationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(botintegration.Table, sqlgraph.NewFieldSpec(botintegration.FieldID, field.TypeString))
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

// BotIntegrationDeleteOne is the builder for deleting a single BotIntegration entity.
type BotIntegrationDeleteOne struct {
	_d *BotIntegrationDelete
}

// Where appends a list predicates to the BotIntegrationDelete builder.
func (_d *BotIntegrationDeleteOne) Where(ps ...predicate.BotIntegration) *BotIntegrationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BotIntegrationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{botintegration.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BotIntegrationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
