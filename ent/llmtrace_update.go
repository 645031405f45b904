// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/vendrahq/vendra/ent/llmtrace"
	"github.com/vendrahq/vendra/ent/predicate"
)

// LLMTraceUpdate is the builder for updating LLMTrace entities.
type LLMTraceUpdate struct {
	config
	hooks    []Hook
	mutation *LLMTraceMutation
}

// Where appends a list predicates to the LLMTraceUpdate builder.
func (_u *LLMTraceUpdate) Where(ps ...predicate.LLMTrace) *LLMTraceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMTraceUpdate) SetModel(v string) *LLMTraceUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMTraceUpdate) SetNillableModel(v *string) *LLMTraceUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *LLMTraceUpdate) ClearModel() *LLMTraceUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetRequestMessages sets the "request_messages" field.
func (_u *LLMTraceUpdate) SetRequestMessages(v []map[string]interface{}) *LLMTraceUpdate {
	_u.mutation.SetRequestMessages(v)
	return _u
}

// AppendRequestMessages appends value to the "request_messages" field.
func (_u *LLMTraceUpdate) AppendRequestMessages(v []map[string]interface{}) *LLMTraceUpdate {
	_u.mutation.AppendRequestMessages(v)
	return _u
}

// ClearRequestMessages clears the value of the "request_messages" field.
func (_u *LLMTraceUpdate) ClearRequestMessages() *LLMTraceUpdate {
	_u.mutation.ClearRequestMessages()
	return _u
}

// SetFinalText sets the "final_text" field.
func (_u *LLMTraceUpdate) SetFinalText(v string) *LLMTraceUpdate {
	_u.mutation.SetFinalText(v)
	return _u
}

// SetNillableFinalText sets the "final_text" field if the given value is not nil.
func (_u *LLMTraceUpdate) SetNillableFinalText(v *string) *LLMTraceUpdate {
	if v != nil {
		_u.SetFinalText(*v)
	}
	return _u
}

// ClearFinalText clears the value of the "final_text" field.
func (_u *LLMTraceUpdate) ClearFinalText() *LLMTraceUpdate {
	_u.mutation.ClearFinalText()
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *LLMTraceUpdate) SetToolCalls(v []map[string]interface{}) *LLMTraceUpdate {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *LLMTraceUpdate) AppendToolCalls(v []map[string]interface{}) *LLMTraceUpdate {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *LLMTraceUpdate) ClearToolCalls() *LLMTraceUpdate {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetIterations sets the "iterations" field.
func (_u *LLMTraceUpdate) SetIterations(v int) *LLMTraceUpdate {
	_u.mutation.ResetIterations()
	_u.mutation.SetIterations(v)
	return _u
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_u *LLMTraceUpdate) SetNillableIterations(v *int) *LLMTraceUpdate {
	if v != nil {
		_u.SetIterations(*v)
	}
	return _u
}

// AddIterations adds value to the "iterations" field.
func (_u *LLMTraceUpdate) AddIterations(v int) *LLMTraceUpdate {
	_u.mutation.AddIterations(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *LLMTraceUpdate) SetInputTokens(v int) *LLMTraceUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *LLMTraceUpdate) SetNillableInputTokens(v *int) *LLMTraceUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *LLMTraceUpdate) AddInputTokens(v int) *LLMTraceUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *LLMTraceUpdate) SetOutputTokens(v int) *LLMTraceUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *LLMTraceUpdate) SetNillableOutputTokens(v *int) *LLMTraceUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *LLMTraceUpdate) AddOutputTokens(v int) *LLMTraceUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LLMTraceUpdate) SetDurationMs(v int64) *LLMTraceUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LLMTraceUpdate) SetNillableDurationMs(v *int64) *LLMTraceUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LLMTraceUpdate) AddDurationMs(v int64) *LLMTraceUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetError sets the "error" field.
func (_u *LLMTraceUpdate) SetError(v string) *LLMTraceUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *LLMTraceUpdate) SetNillableError(v *string) *LLMTraceUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *LLMTraceUpdate) ClearError() *LLMTraceUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the LLMTraceMutation object of the builder.
func (_u *LLMTraceUpdate) Mutation() *LLMTraceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMTraceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMTraceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMTraceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMTraceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMTraceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmtrace.Table, llmtrace.Columns, sqlgraph.NewFieldSpec(llmtrace.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmtrace.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(llmtrace.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.RequestMessages(); ok {
		_spec.SetField(llmtrace.FieldRequestMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, llmtrace.FieldRequestMessages, value)
		})
	}
	if _u.mutation.RequestMessagesCleared() {
		_spec.ClearField(llmtrace.FieldRequestMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalText(); ok {
		_spec.SetField(llmtrace.FieldFinalText, field.TypeString, value)
	}
	if _u.mutation.FinalTextCleared() {
		_spec.ClearField(llmtrace.FieldFinalText, field.TypeString)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(llmtrace.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, llmtrace.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(llmtrace.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.Iterations(); ok {
		_spec.SetField(llmtrace.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterations(); ok {
		_spec.AddField(llmtrace.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(llmtrace.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(llmtrace.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(llmtrace.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(llmtrace.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(llmtrace.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(llmtrace.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(llmtrace.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(llmtrace.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmtrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMTraceUpdateOne is the builder for updating a single LLMTrace entity.
type LLMTraceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMTraceMutation
}

// SetModel sets the "model" field.
func (_u *LLMTraceUpdateOne) SetModel(v string) *LLMTraceUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMTraceUpdateOne) SetNillableModel(v *string) *LLMTraceUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *LLMTraceUpdateOne) ClearModel() *LLMTraceUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetRequestMessages sets the "request_messages" field.
func (_u *LLMTraceUpdateOne) SetRequestMessages(v []map[string]interface{}) *LLMTraceUpdateOne {
	_u.mutation.SetRequestMessages(v)
	return _u
}

// AppendRequestMessages appends value to the "request_messages" field.
func (_u *LLMTraceUpdateOne) AppendRequestMessages(v []map[string]interface{}) *LLMTraceUpdateOne {
	_u.mutation.AppendRequestMessages(v)
	return _u
}

// ClearRequestMessages clears the value of the "request_messages" field.
func (_u *LLMTraceUpdateOne) ClearRequestMessages() *LLMTraceUpdateOne {
	_u.mutation.ClearRequestMessages()
	return _u
}

// SetFinalText sets the "final_text" field.
func (_u *LLMTraceUpdateOne) SetFinalText(v string) *LLMTraceUpdateOne {
	_u.mutation.SetFinalText(v)
	return _u
}

// SetNillableFinalText sets the "final_text" field if the given value is not nil.
func (_u *LLMTraceUpdateOne) SetNillableFinalText(v *string) *LLMTraceUpdateOne {
	if v != nil {
		_u.SetFinalText(*v)
	}
	return _u
}

// ClearFinalText clears the value of the "final_text" field.
func (_u *LLMTraceUpdateOne) ClearFinalText() *LLMTraceUpdateOne {
	_u.mutation.ClearFinalText()
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *LLMTraceUpdateOne) SetToolCalls(v []map[string]interface{}) *LLMTraceUpdateOne {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *LLMTraceUpdateOne) AppendToolCalls(v []map[string]interface{}) *LLMTraceUpdateOne {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *LLMTraceUpdateOne) ClearToolCalls() *LLMTraceUpdateOne {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetIterations sets the "iterations" field.
func (_u *LLMTraceUpdateOne) SetIterations(v int) *LLMTraceUpdateOne {
	_u.mutation.ResetIterations()
	_u.mutation.SetIterations(v)
	return _u
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_u *LLMTraceUpdateOne) SetNillableIterations(v *int) *LLMTraceUpdateOne {
	if v != nil {
		_u.SetIterations(*v)
	}
	return _u
}

// AddIterations adds value to the "iterations" field.
func (_u *LLMTraceUpdateOne) AddIterations(v int) *LLMTraceUpdateOne {
	_u.mutation.AddIterations(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *LLMTraceUpdateOne) SetInputTokens(v int) *LLMTraceUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *LLMTraceUpdateOne) SetNillableInputTokens(v *int) *LLMTraceUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *LLMTraceUpdateOne) AddInputTokens(v int) *LLMTraceUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *LLMTraceUpdateOne) SetOutputTokens(v int) *LLMTraceUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *LLMTraceUpdateOne) SetNillableOutputTokens(v *int) *LLMTraceUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *LLMTraceUpdateOne) AddOutputTokens(v int) *LLMTraceUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LLMTraceUpdateOne) SetDurationMs(v int64) *LLMTraceUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LLMTraceUpdateOne) SetNillableDurationMs(v *int64) *LLMTraceUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LLMTraceUpdateOne) AddDurationMs(v int64) *LLMTraceUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetError sets the "error" field.
func (_u *LLMTraceUpdateOne) SetError(v string) *LLMTraceUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *LLMTraceUpdateOne) SetNillableError(v *string) *LLMTraceUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *LLMTraceUpdateOne) ClearError() *LLMTraceUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the LLMTraceMutation object of the builder.
func (_u *LLMTraceUpdateOne) Mutation() *LLMTraceMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMTraceUpdate builder.
func (_u *LLMTraceUpdateOne) Where(ps ...predicate.LLMTrace) *LLMTraceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMTraceUpdateOne) Select(field string, fields ...string) *LLMTraceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMTrace entity.
func (_u *LLMTraceUpdateOne) Save(ctx context.Context) (*LLMTrace, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMTraceUpdateOne) SaveX(ctx context.Context) *LLMTrace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMTraceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMTraceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMTraceUpdateOne) sqlSave(ctx context.Context) (_node *LLMTrace, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmtrace.Table, llmtrace.Columns, sqlgraph.NewFieldSpec(llmtrace.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMTrace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmtrace.FieldID)
		for _, f := range fields {
			if !llmtrace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmtrace.FieldID {
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
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmtrace.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(llmtrace.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.RequestMessages(); ok {
		_spec.SetField(llmtrace.FieldRequestMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, llmtrace.FieldRequestMessages, value)
		})
	}
	if _u.mutation.RequestMessagesCleared() {
		_spec.ClearField(llmtrace.FieldRequestMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalText(); ok {
		_spec.SetField(llmtrace.FieldFinalText, field.TypeString, value)
	}
	if _u.mutation.FinalTextCleared() {
		_spec.ClearField(llmtrace.FieldFinalText, field.TypeString)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(llmtrace.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, llmtrace.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(llmtrace.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.Iterations(); ok {
		_spec.SetField(llmtrace.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterations(); ok {
		_spec.AddField(llmtrace.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(llmtrace.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(llmtrace.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(llmtrace.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(llmtrace.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(llmtrace.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(llmtrace.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(llmtrace.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(llmtrace.FieldError, field.TypeString)
	}
	_node = &LLMTrace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmtrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
