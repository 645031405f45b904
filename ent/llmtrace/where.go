// Code generated by ent, DO NOT EDIT.

package llmtrace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vendrahq/vendra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldSessionID, v))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldBusinessID, v))
}

// TurnID applies equality check predicate on the "turn_id" field. It's identical to TurnIDEQ.
func TurnID(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldTurnID, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldModel, v))
}

// FinalText applies equality check predicate on the "final_text" field. It's identical to FinalTextEQ.
func FinalText(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldFinalText, v))
}

// Iterations applies equality check predicate on the "iterations" field. It's identical to IterationsEQ.
func Iterations(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldIterations, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldOutputTokens, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldDurationMs, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContainsFold(FieldSessionID, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLTE(FieldBusinessID, v))
}

// BusinessIDContains applies the Contains predicate on the "business_id" field.
func BusinessIDContains(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContains(FieldBusinessID, v))
}

// BusinessIDHasPrefix applies the HasPrefix predicate on the "business_id" field.
func BusinessIDHasPrefix(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldHasPrefix(FieldBusinessID, v))
}

// BusinessIDHasSuffix applies the HasSuffix predicate on the "business_id" field.
func BusinessIDHasSuffix(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldHasSuffix(FieldBusinessID, v))
}

// BusinessIDEqualFold applies the EqualFold predicate on the "business_id" field.
func BusinessIDEqualFold(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEqualFold(FieldBusinessID, v))
}

// BusinessIDContainsFold applies the ContainsFold predicate on the "business_id" field.
func BusinessIDContainsFold(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContainsFold(FieldBusinessID, v))
}

// TurnIDEQ applies the EQ predicate on the "turn_id" field.
func TurnIDEQ(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldTurnID, v))
}

// TurnIDNEQ applies the NEQ predicate on the "turn_id" field.
func TurnIDNEQ(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNEQ(FieldTurnID, v))
}

// TurnIDIn applies the In predicate on the "turn_id" field.
func TurnIDIn(vs ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIn(FieldTurnID, vs...))
}

// TurnIDNotIn applies the NotIn predicate on the "turn_id" field.
func TurnIDNotIn(vs ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotIn(FieldTurnID, vs...))
}

// TurnIDGT applies the GT predicate on the "turn_id" field.
func TurnIDGT(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGT(FieldTurnID, v))
}

// TurnIDGTE applies the GTE predicate on the "turn_id" field.
func TurnIDGTE(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGTE(FieldTurnID, v))
}

// TurnIDLT applies the LT predicate on the "turn_id" field.
func TurnIDLT(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLT(FieldTurnID, v))
}

// TurnIDLTE applies the LTE predicate on the "turn_id" field.
func TurnIDLTE(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLTE(FieldTurnID, v))
}

// TurnIDContains applies the Contains predicate on the "turn_id" field.
func TurnIDContains(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContains(FieldTurnID, v))
}

// TurnIDHasPrefix applies the HasPrefix predicate on the "turn_id" field.
func TurnIDHasPrefix(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldHasPrefix(FieldTurnID, v))
}

// TurnIDHasSuffix applies the HasSuffix predicate on the "turn_id" field.
func TurnIDHasSuffix(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldHasSuffix(FieldTurnID, v))
}

// TurnIDEqualFold applies the EqualFold predicate on the "turn_id" field.
func TurnIDEqualFold(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEqualFold(FieldTurnID, v))
}

// TurnIDContainsFold applies the ContainsFold predicate on the "turn_id" field.
func TurnIDContainsFold(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContainsFold(FieldTurnID, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContainsFold(FieldModel, v))
}

// RequestMessagesIsNil applies the IsNil predicate on the "request_messages" field.
func RequestMessagesIsNil() predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIsNull(FieldRequestMessages))
}

// RequestMessagesNotNil applies the NotNil predicate on the "request_messages" field.
func RequestMessagesNotNil() predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotNull(FieldRequestMessages))
}

// FinalTextEQ applies the EQ predicate on the "final_text" field.
func FinalTextEQ(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldFinalText, v))
}

// FinalTextNEQ applies the NEQ predicate on the "final_text" field.
func FinalTextNEQ(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNEQ(FieldFinalText, v))
}

// FinalTextIn applies the In predicate on the "final_text" field.
func FinalTextIn(vs ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIn(FieldFinalText, vs...))
}

// FinalTextNotIn applies the NotIn predicate on the "final_text" field.
func FinalTextNotIn(vs ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotIn(FieldFinalText, vs...))
}

// FinalTextGT applies the GT predicate on the "final_text" field.
func FinalTextGT(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGT(FieldFinalText, v))
}

// FinalTextGTE applies the GTE predicate on the "final_text" field.
func FinalTextGTE(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGTE(FieldFinalText, v))
}

// FinalTextLT applies the LT predicate on the "final_text" field.
func FinalTextLT(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLT(FieldFinalText, v))
}

// FinalTextLTE applies the LTE predicate on the "final_text" field.
func FinalTextLTE(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLTE(FieldFinalText, v))
}

// FinalTextContains applies the Contains predicate on the "final_text" field.
func FinalTextContains(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContains(FieldFinalText, v))
}

// FinalTextHasPrefix applies the HasPrefix predicate on the "final_text" field.
func FinalTextHasPrefix(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldHasPrefix(FieldFinalText, v))
}

// FinalTextHasSuffix applies the HasSuffix predicate on the "final_text" field.
func FinalTextHasSuffix(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldHasSuffix(FieldFinalText, v))
}

// FinalTextIsNil applies the IsNil predicate on the "final_text" field.
func FinalTextIsNil() predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIsNull(FieldFinalText))
}

// FinalTextNotNil applies the NotNil predicate on the "final_text" field.
func FinalTextNotNil() predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotNull(FieldFinalText))
}

// FinalTextEqualFold applies the EqualFold predicate on the "final_text" field.
func FinalTextEqualFold(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEqualFold(FieldFinalText, v))
}

// FinalTextContainsFold applies the ContainsFold predicate on the "final_text" field.
func FinalTextContainsFold(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContainsFold(FieldFinalText, v))
}

// ToolCallsIsNil applies the IsNil predicate on the "tool_calls" field.
func ToolCallsIsNil() predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIsNull(FieldToolCalls))
}

// ToolCallsNotNil applies the NotNil predicate on the "tool_calls" field.
func ToolCallsNotNil() predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotNull(FieldToolCalls))
}

// IterationsEQ applies the EQ predicate on the "iterations" field.
func IterationsEQ(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldIterations, v))
}

// IterationsNEQ applies the NEQ predicate on the "iterations" field.
func IterationsNEQ(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNEQ(FieldIterations, v))
}

// IterationsIn applies the In predicate on the "iterations" field.
func IterationsIn(vs ...int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIn(FieldIterations, vs...))
}

// IterationsNotIn applies the NotIn predicate on the "iterations" field.
func IterationsNotIn(vs ...int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotIn(FieldIterations, vs...))
}

// IterationsGT applies the GT predicate on the "iterations" field.
func IterationsGT(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGT(FieldIterations, v))
}

// IterationsGTE applies the GTE predicate on the "iterations" field.
func IterationsGTE(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGTE(FieldIterations, v))
}

// IterationsLT applies the LT predicate on the "iterations" field.
func IterationsLT(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLT(FieldIterations, v))
}

// IterationsLTE applies the LTE predicate on the "iterations" field.
func IterationsLTE(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLTE(FieldIterations, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLTE(FieldOutputTokens, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLTE(FieldDurationMs, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldContainsFold(FieldError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMTrace {
	return predicate.LLMTrace(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMTrace) predicate.LLMTrace {
	return predicate.LLMTrace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMTrace) predicate.LLMTrace {
	return predicate.LLMTrace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMTrace) predicate.LLMTrace {
	return predicate.LLMTrace(sql.NotPredicates(p))
}
