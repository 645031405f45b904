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
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/businessaddon"
	"github.com/vendrahq/vendra/ent/predicate"
)

// BusinessAddonUpdate is the builder for updating BusinessAddon entities.
type BusinessAddonUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessAddonMutation
}

// Where appends a list predicates to the BusinessAddonUpdate builder.
func (_u *BusinessAddonUpdate) Where(ps ...predicate.BusinessAddon) *BusinessAddonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAddonKey sets the "addon_key" field.
func (_u *BusinessAddonUpdate) SetAddonKey(v businessaddon.AddonKey) *BusinessAddonUpdate {
	_u.mutation.SetAddonKey(v)
	return _u
}

// SetNillableAddonKey sets the "addon_key" field if the given value is not nil.
func (_u *BusinessAddonUpdate) SetNillableAddonKey(v *businessaddon.AddonKey) *BusinessAddonUpdate {
	if v != nil {
		_u.SetAddonKey(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BusinessAddonUpdate) SetStatus(v businessaddon.Status) *BusinessAddonUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BusinessAddonUpdate) SetNillableStatus(v *businessaddon.Status) *BusinessAddonUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriceOverride sets the "price_override" field.
func (_u *BusinessAddonUpdate) SetPriceOverride(v decimal.Decimal) *BusinessAddonUpdate {
	_u.mutation.SetPriceOverride(v)
	return _u
}

// SetNillablePriceOverride sets the "price_override" field if the given value is not nil.
func (_u *BusinessAddonUpdate) SetNillablePriceOverride(v *decimal.Decimal) *BusinessAddonUpdate {
	if v != nil {
		_u.SetPriceOverride(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessAddonUpdate) SetUpdatedAt(v time.Time) *BusinessAddonUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BusinessAddonMutation object of the builder.
func (_u *BusinessAddonUpdate) Mutation() *BusinessAddonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessAddonUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessAddonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessAddonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessAddonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessAddonUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businessaddon.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessAddonUpdate) check() error {
	if v, ok := _u.mutation.AddonKey(); ok {
		if err := businessaddon.AddonKeyValidator(v); err != nil {
			return &ValidationError{Name: "addon_key", err: fmt.Errorf(`ent: validator failed for field "BusinessAddon.addon_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := businessaddon.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BusinessAddon.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessAddonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businessaddon.Table, businessaddon.Columns, sqlgraph.NewFieldSpec(businessaddon.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AddonKey(); ok {
		_spec.SetField(businessaddon.FieldAddonKey, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(businessaddon.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriceOverride(); ok {
		_spec.SetField(businessaddon.FieldPriceOverride, field.TypeOther, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businessaddon.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businessaddon.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessAddonUpdateOne is the builder for updating a single BusinessAddon entity.
type BusinessAddonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessAddonMutation
}

// SetAddonKey sets the "addon_key" field.
func (_u *BusinessAddonUpdateOne) SetAddonKey(v businessaddon.AddonKey) *BusinessAddonUpdateOne {
	_u.mutation.SetAddonKey(v)
	return _u
}

// SetNillableAddonKey sets the "addon_key" field if the given value is not nil.
func (_u *BusinessAddonUpdateOne) SetNillableAddonKey(v *businessaddon.AddonKey) *BusinessAddonUpdateOne {
	if v != nil {
		_u.SetAddonKey(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BusinessAddonUpdateOne) SetStatus(v businessaddon.Status) *BusinessAddonUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BusinessAddonUpdateOne) SetNillableStatus(v *businessaddon.Status) *BusinessAddonUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriceOverride sets the "price_override" field.
func (_u *BusinessAddonUpdateOne) SetPriceOverride(v decimal.Decimal) *BusinessAddonUpdateOne {
	_u.mutation.SetPriceOverride(v)
	return _u
}

// SetNillablePriceOverride sets the "price_override" field if the given value is not nil.
func (_u *BusinessAddonUpdateOne) SetNillablePriceOverride(v *decimal.Decimal) *BusinessAddonUpdateOne {
	if v != nil {
		_u.SetPriceOverride(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessAddonUpdateOne) SetUpdatedAt(v time.Time) *BusinessAddonUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BusinessAddonMutation object of the builder.
func (_u *BusinessAddonUpdateOne) Mutation() *BusinessAddonMutation {
	return _u.mutation
}

// Where appends a list predicates to the BusinessAddonUpdate builder.
func (_u *BusinessAddonUpdateOne) Where(ps ...predicate.BusinessAddon) *BusinessAddonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessAddonUpdateOne) Select(field string, fields ...string) *BusinessAddonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusinessAddon entity.
func (_u *BusinessAddonUpdateOne) Save(ctx context.Context) (*BusinessAddon, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessAddonUpdateOne) SaveX(ctx context.Context) *BusinessAddon {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessAddonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessAddonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessAddonUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businessaddon.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessAddonUpdateOne) check() error {
	if v, ok := _u.mutation.AddonKey(); ok {
		if err := businessaddon.AddonKeyValidator(v); err != nil {
			return &ValidationError{Name: "addon_key", err: fmt.Errorf(`ent: validator failed for field "BusinessAddon.addon_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := businessaddon.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BusinessAddon.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessAddonUpdateOne) sqlSave(ctx context.Context) (_node *BusinessAddon, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businessaddon.Table, businessaddon.Columns, sqlgraph.NewFieldSpec(businessaddon.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BusinessAddon.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, businessaddon.FieldID)
		for _, f := range fields {
			if !businessaddon.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != businessaddon.FieldID {
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
	if value, ok := _u.mutation.AddonKey(); ok {
		_spec.SetField(businessaddon.FieldAddonKey, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(businessaddon.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriceOverride(); ok {
		_spec.SetField(businessaddon.FieldPriceOverride, field.TypeOther, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businessaddon.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BusinessAddon{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businessaddon.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
