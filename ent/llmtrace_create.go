// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vendrahq/vendra/ent/llmtrace"
)

// LLMTraceCreate is the builder for creating a LLMTrace entity.
type LLMTraceCreate struct {
	config
	mutation *LLMTraceMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *LLMTraceCreate) SetSessionID(v string) *LLMTraceCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetBusinessID sets the "business_id" field.
func (_c *LLMTraceCreate) SetBusinessID(v string) *LLMTraceCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetTurnID sets the "turn_id" field.
func (_c *LLMTraceCreate) SetTurnID(v string) *LLMTraceCreate {
	_c.mutation.SetTurnID(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMTraceCreate) SetModel(v string) *LLMTraceCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *LLMTraceCreate) SetNillableModel(v *string) *LLMTraceCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetRequestMessages sets the "request_messages" field.
func (_c *LLMTraceCreate) SetRequestMessages(v []map[string]interface{}) *LLMTraceCreate {
	_c.mutation.SetRequestMessages(v)
	return _c
}

// SetFinalText sets the "final_text" field.
func (_c *LLMTraceCreate) SetFinalText(v string) *LLMTraceCreate {
	_c.mutation.SetFinalText(v)
	return _c
}

// SetNillableFinalText sets the "final_text" field if the given value is not nil.
func (_c *LLMTraceCreate) SetNillableFinalText(v *string) *LLMTraceCreate {
	if v != nil {
		_c.SetFinalText(*v)
	}
	return _c
}

// SetToolCalls sets the "tool_calls" field.
func (_c *LLMTraceCreate) SetToolCalls(v []map[string]interface{}) *LLMTraceCreate {
	_c.mutation.SetToolCalls(v)
	return _c
}

// SetIterations sets the "iterations" field.
func (_c *LLMTraceCreate) SetIterations(v int) *LLMTraceCreate {
	_c.mutation.SetIterations(v)
	return _c
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_c *LLMTraceCreate) SetNillableIterations(v *int) *LLMTraceCreate {
	if v != nil {
		_c.SetIterations(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *LLMTraceCreate) SetInputTokens(v int) *LLMTraceCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *LLMTraceCreate) SetNillableInputTokens(v *int) *LLMTraceCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *LLMTraceCreate) SetOutputTokens(v int) *LLMTraceCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *LLMTraceCreate) SetNillableOutputTokens(v *int) *LLMTraceCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *LLMTraceCreate) SetDurationMs(v int64) *LLMTraceCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *LLMTraceCreate) SetNillableDurationMs(v *int64) *LLMTraceCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *LLMTraceCreate) SetError(v string) *LLMTraceCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *LLMTraceCreate) SetNillableError(v *string) *LLMTraceCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMTraceCreate) SetCreatedAt(v time.Time) *LLMTraceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMTraceCreate) SetNillableCreatedAt(v *time.Time) *LLMTraceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMTraceCreate) SetID(v string) *LLMTraceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LLMTraceMutation object of the builder.
func (_c *LLMTraceCreate) Mutation() *LLMTraceMutation {
	return _c.mutation
}

// Save creates the LLMTrace in the database.
func (_c *LLMTraceCreate) Save(ctx context.Context) (*LLMTrace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMTraceCreate) SaveX(ctx context.Context) *LLMTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMTraceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMTraceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMTraceCreate) defaults() {
	if _, ok := _c.mutation.Iterations(); !ok {
		v := llmtrace.DefaultIterations
		_c.mutation.SetIterations(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := llmtrace.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := llmtrace.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := llmtrace.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmtrace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMTraceCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LLMTrace.session_id"`)}
	}
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "LLMTrace.business_id"`)}
	}
	if _, ok := _c.mutation.TurnID(); !ok {
		return &ValidationError{Name: "turn_id", err: errors.New(`ent: missing required field "LLMTrace.turn_id"`)}
	}
	if _, ok := _c.mutation.Iterations(); !ok {
		return &ValidationError{Name: "iterations", err: errors.New(`ent: missing required field "LLMTrace.iterations"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "LLMTrace.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "LLMTrace.output_tokens"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "LLMTrace.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMTrace.created_at"`)}
	}
	return nil
}

func (_c *LLMTraceCreate) sqlSave(ctx context.Context) (*LLMTrace, error) {
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
			return nil, fmt.Errorf("unexpected LLMTrace.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMTraceCreate) createSpec() (*LLMTrace, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMTrace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmtrace.Table, sqlgraph.NewFieldSpec(llmtrace.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(llmtrace.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(llmtrace.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.TurnID(); ok {
		_spec.SetField(llmtrace.FieldTurnID, field.TypeString, value)
		_node.TurnID = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmtrace.FieldModel, field.TypeString, value)
		_node.Model = &value
	}
	if value, ok := _c.mutation.RequestMessages(); ok {
		_spec.SetField(llmtrace.FieldRequestMessages, field.TypeJSON, value)
		_node.RequestMessages = value
	}
	if value, ok := _c.mutation.FinalText(); ok {
		_spec.SetField(llmtrace.FieldFinalText, field.TypeString, value)
		_node.FinalText = &value
	}
	if value, ok := _c.mutation.ToolCalls(); ok {
		_spec.SetField(llmtrace.FieldToolCalls, field.TypeJSON, value)
		_node.ToolCalls = value
	}
	if value, ok := _c.mutation.Iterations(); ok {
		_spec.SetField(llmtrace.FieldIterations, field.TypeInt, value)
		_node.Iterations = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(llmtrace.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(llmtrace.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(llmtrace.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(llmtrace.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmtrace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LLMTraceCreateBulk is the builder for creating many LLMTrace entities in bulk.
type LLMTraceCreateBulk struct {
	config
	err      error
	builders []*LLMTraceCreate
}

// Save creates the LLMTrace entities in the database.
func (_c *LLMTraceCreateBulk) Save(ctx context.Context) ([]*LLMTrace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMTrace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMTraceMutation)
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
func (_c *LLMTraceCreateBulk) SaveX(ctx context.Context) []*LLMTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMTraceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMTraceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
