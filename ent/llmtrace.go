// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vendrahq/vendra/ent/llmtrace"
)

// LLMTrace is the model entity for the LLMTrace schema.
type LLMTrace struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// BusinessID holds the value of the "business_id" field.
	BusinessID string `json:"business_id,omitempty"`
	// TurnID holds the value of the "turn_id" field.
	TurnID string `json:"turn_id,omitempty"`
	// Model holds the value of the "model" field.
	Model *string `json:"model,omitempty"`
	// RequestMessages holds the value of the "request_messages" field.
	RequestMessages []map[string]interface{} `json:"request_messages,omitempty"`
	// FinalText holds the value of the "final_text" field.
	FinalText *string `json:"final_text,omitempty"`
	// Executed tool calls with their result codes
	ToolCalls []map[string]interface{} `json:"tool_calls,omitempty"`
	// Iterations holds the value of the "iterations" field.
	Iterations int `json:"iterations,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMTrace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmtrace.FieldRequestMessages, llmtrace.FieldToolCalls:
			values[i] = new([]byte)
		case llmtrace.FieldIterations, llmtrace.FieldInputTokens, llmtrace.FieldOutputTokens, llmtrace.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case llmtrace.FieldID, llmtrace.FieldSessionID, llmtrace.FieldBusinessID, llmtrace.FieldTurnID, llmtrace.FieldModel, llmtrace.FieldFinalText, llmtrace.FieldError:
			values[i] = new(sql.NullString)
		case llmtrace.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMTrace fields.
func (_m *LLMTrace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmtrace.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case llmtrace.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case llmtrace.FieldBusinessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = value.String
			}
		case llmtrace.FieldTurnID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field turn_id", values[i])
			} else if value.Valid {
				_m.TurnID = value.String
			}
		case llmtrace.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = new(string)
				*_m.Model = value.String
			}
		case llmtrace.FieldRequestMessages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request_messages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestMessages); err != nil {
					return fmt.Errorf("unmarshal field request_messages: %w", err)
				}
			}
		case llmtrace.FieldFinalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_text", values[i])
			} else if value.Valid {
				_m.FinalText = new(string)
				*_m.FinalText = value.String
			}
		case llmtrace.FieldToolCalls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_calls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolCalls); err != nil {
					return fmt.Errorf("unmarshal field tool_calls: %w", err)
				}
			}
		case llmtrace.FieldIterations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iterations", values[i])
			} else if value.Valid {
				_m.Iterations = int(value.Int64)
			}
		case llmtrace.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case llmtrace.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case llmtrace.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case llmtrace.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case llmtrace.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMTrace.
// This includes values selected through modifiers, order, etc.
func (_m *LLMTrace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LLMTrace.
// Note that you need to call LLMTrace.Unwrap() before calling this method if this LLMTrace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMTrace) Update() *LLMTraceUpdateOne {
	return NewLLMTraceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMTrace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMTrace) Unwrap() *LLMTrace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMTrace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMTrace) String() string {
	var builder strings.Builder
	builder.WriteString("LLMTrace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("business_id=")
	builder.WriteString(_m.BusinessID)
	builder.WriteString(", ")
	builder.WriteString("turn_id=")
	builder.WriteString(_m.TurnID)
	builder.WriteString(", ")
	if v := _m.Model; v != nil {
		builder.WriteString("model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("request_messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestMessages))
	builder.WriteString(", ")
	if v := _m.FinalText; v != nil {
		builder.WriteString("final_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tool_calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolCalls))
	builder.WriteString(", ")
	builder.WriteString("iterations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iterations))
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LLMTraces is a parsable slice of LLMTrace.
type LLMTraces []*LLMTrace
