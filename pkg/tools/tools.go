// Package tools defines the typed functions the conversational agent may
// invoke: each tool pairs a JSON-schema argument contract with an executor
// over the service layer, and the registry gates exposure per tenant,
// validates arguments, and enforces validate-before-mutate ordering.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/schedule"
	"github.com/vendrahq/vendra/pkg/services"
)

// Code identifies a tool failure from the closed vocabulary the agent is
// prompted with. Codes are stable; messages are free-form guidance.
type Code string

const (
	CodeEmptyCart              Code = "EMPTY_CART"
	CodeMissingDeliveryType    Code = "MISSING_DELIVERY_TYPE"
	CodeMissingDeliveryAddress Code = "MISSING_DELIVERY_ADDRESS"
	CodeBusinessClosed         Code = "BUSINESS_CLOSED"
	CodeLastOrderTimePassed    Code = "LAST_ORDER_TIME_PASSED"
	CodeInvalidDateFormat      Code = "INVALID_DATE_FORMAT"
	CodePastDateTime           Code = "PAST_DATE_TIME"
	CodeNoTablesAvailable      Code = "NO_TABLES_AVAILABLE"
	CodeMissingCustomerName    Code = "MISSING_CUSTOMER_NAME"
	CodeSlotTaken              Code = "SLOT_TAKEN"
	CodeInsufficientStock      Code = "INSUFFICIENT_STOCK"
	CodeInvalidTransition      Code = "INVALID_TRANSITION"
	CodeCancelDeadlinePassed   Code = "CANCEL_DEADLINE_PASSED"
	CodePreconditionMissing    Code = "PRECONDITION_MISSING"
	CodeNotFound               Code = "NOT_FOUND"
	CodeNotAllowed             Code = "NOT_ALLOWED"
	CodeAddonInactive          Code = "ADDON_INACTIVE"
	CodeInvalidToolArgs        Code = "INVALID_TOOL_ARGS"
	CodeUnknownTool            Code = "UNKNOWN_TOOL"
	CodeTimeout                Code = "TIMEOUT"
	CodeInternal               Code = "INTERNAL"
)

// ToolError is the machine-readable half of a failed tool result.
type ToolError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Result is the envelope every tool returns to the model. Success carries
// an optional payload; failure carries a coded error. Validators succeed
// even when their verdict is negative: the verdict lives in the payload.
type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   *ToolError  `json:"error,omitempty"`
	Payload interface{} `json:"payload,omitempty"`

	// verdictValid is set by validator tools whose check passed. Only a
	// passing verdict marks the turn ledger; a failed check must not
	// unlock the mutating tool it guards.
	verdictValid bool

	// cause is the underlying service error of a failed result. The
	// registry inspects it to rerun tools whose transaction lost a
	// deadlock or serialization race.
	cause error
}

func ok(message string, payload interface{}) *Result {
	return &Result{Success: true, Message: message, Payload: payload}
}

func fail(code Code, format string, args ...interface{}) *Result {
	return &Result{
		Success: false,
		Error:   &ToolError{Code: code, Message: fmt.Sprintf(format, args...)},
	}
}

// failErr maps a service-layer error onto the closed code set.
func failErr(err error) *Result {
	res := fail(errorCode(err), "%s", err.Error())
	res.cause = err
	return res
}

// errorCode translates errors from the service, validation, and schedule
// layers into tool codes. Anything unrecognized is INTERNAL.
func errorCode(err error) Code {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	case errors.Is(err, services.ErrEmptyCart):
		return CodeEmptyCart
	case errors.Is(err, services.ErrInsufficientStock):
		return CodeInsufficientStock
	case errors.Is(err, services.ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, services.ErrCancelDeadlinePassed):
		return CodeCancelDeadlinePassed
	case errors.Is(err, services.ErrSlotTaken):
		return CodeSlotTaken
	case errors.Is(err, services.ErrNoTablesAvailable):
		return CodeNoTablesAvailable
	case errors.Is(err, services.ErrNotFound):
		return CodeNotFound
	case errors.Is(err, services.ErrForbidden), errors.Is(err, services.ErrSessionLocked):
		return CodeNotAllowed
	case errors.Is(err, services.ErrAddonInactive):
		return CodeAddonInactive
	case services.IsValidationError(err):
		return CodeInvalidToolArgs
	}
	if c := schedule.CodeOf(err); c != "" {
		return Code(c)
	}
	return CodeInternal
}

// Context carries the resolved tenant and conversation identity for one
// turn. The engine builds it once per inbound message; executors treat it
// as the authorization boundary and never accept identity from arguments.
type Context struct {
	BusinessID    string
	OwnerUserID   string
	BusinessType  user.BusinessType
	CustomerPhone string
	CustomerName  string
	SessionID     string
	Platform      chatsession.Platform
	Language      string
}

func (c *Context) cartScope() models.CartScope {
	return models.CartScope{
		BusinessID:    c.BusinessID,
		OwnerUserID:   c.OwnerUserID,
		CustomerPhone: c.CustomerPhone,
	}
}

// TurnState remembers which validators ran during the current agent turn.
// Mutating tools consult it so a confirm or cancel cannot land without its
// read-only check having run earlier in the same turn.
type TurnState struct {
	ran map[string]bool
}

// NewTurnState returns an empty per-turn validator ledger.
func NewTurnState() *TurnState {
	return &TurnState{ran: make(map[string]bool)}
}

func (s *TurnState) mark(key string) {
	if key != "" {
		s.ran[key] = true
	}
}

func (s *TurnState) has(key string) bool {
	return s != nil && s.ran[key]
}

// Tool is one callable function exposed to the model: a JSON-schema
// contract plus the executor that fulfils it.
type Tool struct {
	Name        string
	Description string
	// Parameters is the raw JSON schema advertised to the model and
	// compiled for argument validation at registration.
	Parameters json.RawMessage

	// Requires names the turn-state key a mutating tool depends on.
	// Empty return means no precondition for these arguments.
	Requires func(args map[string]interface{}) string
	// Records names the turn-state key a validator marks after running.
	Records func(args map[string]interface{}) string

	// Eligible gates catalog exposure per tenant. Nil means always on.
	Eligible func(ctx context.Context, tc *Context) (bool, error)

	Run func(ctx context.Context, tc *Context, args map[string]interface{}) *Result

	schema *jsonschema.Schema
}

// Declaration is the slice of a tool the model sees in its function list.
type Declaration struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}
