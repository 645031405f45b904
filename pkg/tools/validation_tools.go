package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vendrahq/vendra/pkg/validation"
)

// Turn-state keys tying mutating tools to their validators. Cancellation
// keys carry the target id so validating one order does not unlock another.
const (
	keyCartValidated        = "validate_cart_for_confirmation"
	keyReservationValidated = "validate_reservation_request"
	keyCancellation         = "validate_cancellation_eligibility"
)

func cancellationKey(id string) string {
	return keyCancellation + ":" + id
}

func (r *Registry) validationTools() []*Tool {
	return []*Tool{
		{
			Name:        "validate_cart_for_confirmation",
			Description: "Check whether the cart can be confirmed: lines present, delivery type set, business open, stock sufficient. Read-only.",
			Parameters:  emptyObjectSchema,
			Records:     func(map[string]interface{}) string { return keyCartValidated },
			Run:         r.runValidateCart,
		},
		{
			Name:        "validate_reservation_request",
			Description: "Check whether a table reservation is feasible: date and time well-formed and in the future, business open, a fitting table free. Read-only.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"date": {"type": "string", "description": "YYYY-MM-DD"},
					"time": {"type": "string", "description": "HH:MM, 24h"},
					"guests": {"type": "integer", "minimum": 1},
					"customer_name": {"type": "string"},
					"position_pref": {"type": "string"}
				},
				"required": ["date", "time", "guests"],
				"additionalProperties": false
			}`),
			Eligible: r.reservationEligible,
			Records:  func(map[string]interface{}) string { return keyReservationValidated },
			Run:      r.runValidateReservation,
		},
		{
			Name:        "validate_cancellation_eligibility",
			Description: "Check whether the customer may still cancel an order or reservation: ownership, status, and the cancellation window. Read-only.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"order_id": {"type": "string", "minLength": 1},
					"reservation_id": {"type": "string", "minLength": 1}
				},
				"anyOf": [
					{"required": ["order_id"]},
					{"required": ["reservation_id"]}
				],
				"additionalProperties": false
			}`),
			Records: func(args map[string]interface{}) string {
				if id := argString(args, "order_id"); id != "" {
					return cancellationKey(id)
				}
				return cancellationKey(argString(args, "reservation_id"))
			},
			Run: r.runValidateCancellation,
		},
		{
			Name:        "parse_date_time",
			Description: "Resolve a natural-language time like 'tomorrow at 7pm' or 'friday 12:30' into a concrete date and time in the business timezone. Bare dates resolve to opening time.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"text": {"type": "string", "minLength": 1}
				},
				"required": ["text"],
				"additionalProperties": false
			}`),
			Run: r.runParseDateTime,
		},
	}
}

func (r *Registry) runValidateCart(ctx context.Context, tc *Context, _ map[string]interface{}) *Result {
	vr, err := r.validator.CartForConfirmation(ctx, tc.cartScope())
	if err != nil {
		return failErr(err)
	}
	return verdict(vr)
}

func (r *Registry) runValidateReservation(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	name := argString(args, "customer_name")
	if name == "" {
		name = tc.CustomerName
	}
	vr, err := r.validator.ReservationRequest(ctx, validation.ReservationCheck{
		BusinessID:   tc.BusinessID,
		OwnerUserID:  tc.OwnerUserID,
		Date:         argString(args, "date"),
		Time:         argString(args, "time"),
		Guests:       argIntPtr(args, "guests"),
		PositionPref: argString(args, "position_pref"),
		CustomerName: name,
	})
	if err != nil {
		return failErr(err)
	}
	return verdict(vr)
}

func (r *Registry) runValidateCancellation(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	vr, err := r.validator.CancellationEligibility(ctx, validation.CancellationCheck{
		OrderID:       argString(args, "order_id"),
		ReservationID: argString(args, "reservation_id"),
		CustomerPhone: tc.CustomerPhone,
	})
	if err != nil {
		return failErr(err)
	}
	return verdict(vr)
}

func (r *Registry) runParseDateTime(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	at, err := r.scheduler.ResolveText(ctx, tc.BusinessID, tc.OwnerUserID, argString(args, "text"))
	if err != nil {
		return failErr(err)
	}
	return ok(at.Format("Monday 2 January 15:04"), map[string]interface{}{
		"date":    at.Format("2006-01-02"),
		"time":    at.Format("15:04"),
		"iso8601": at.Format(time.RFC3339),
	})
}

// verdict folds a validation result into the tool envelope. The call
// succeeds either way; only a passing check counts toward the turn ledger.
func verdict(vr *validation.Result) *Result {
	return &Result{
		Success:      true,
		Message:      verdictMessage(vr),
		Payload:      vr,
		verdictValid: vr.Valid,
	}
}

// verdictMessage summarizes a validation result for the model; the full
// issue list rides in the payload.
func verdictMessage(vr *validation.Result) string {
	if vr.Valid {
		if len(vr.Warnings) > 0 {
			return fmt.Sprintf("valid, %d warnings", len(vr.Warnings))
		}
		return "valid"
	}
	return fmt.Sprintf("not valid, %d problems", len(vr.Errors))
}
