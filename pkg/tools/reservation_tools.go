package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/businessaddon"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
)

// reservationEligible gates the table toolset: food and beverage tenants
// with the table_reservations addon active.
func (r *Registry) reservationEligible(ctx context.Context, tc *Context) (bool, error) {
	if tc.BusinessType != user.BusinessTypeFoodAndBeverage {
		return false, nil
	}
	return r.users.IsAddonActive(ctx, tc.BusinessID, businessaddon.AddonKeyTableReservations)
}

func (r *Registry) reservationTools() []*Tool {
	return []*Tool{
		{
			Name:        "check_table_availability",
			Description: "List the tables free for a date and time, optionally filtered by party size and position preference.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$", "description": "YYYY-MM-DD"},
					"time": {"type": "string", "pattern": "^\\d{2}:\\d{2}$", "description": "HH:MM, 24h"},
					"guests": {"type": "integer", "minimum": 1},
					"position_pref": {"type": "string", "description": "e.g. terrace, window"}
				},
				"required": ["date", "time"],
				"additionalProperties": false
			}`),
			Eligible: r.reservationEligible,
			Run:      r.runCheckTableAvailability,
		},
		{
			Name:        "create_table_reservation",
			Description: "Book a table. Run validate_reservation_request first and resolve its errors. Omit table_number to auto-select the lowest-numbered fitting table.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
					"time": {"type": "string", "pattern": "^\\d{2}:\\d{2}$"},
					"guests": {"type": "integer", "minimum": 1},
					"customer_name": {"type": "string"},
					"table_number": {"type": "integer", "minimum": 1},
					"position_pref": {"type": "string"},
					"notes": {"type": "string"}
				},
				"required": ["date", "time", "guests"],
				"additionalProperties": false
			}`),
			Requires: func(map[string]interface{}) string { return keyReservationValidated },
			Eligible: r.reservationEligible,
			Run:      r.runCreateTableReservation,
		},
		{
			Name:        "cancel_reservation",
			Description: "Cancel one of the customer's reservations. Run validate_cancellation_eligibility for this reservation first.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"reservation_id": {"type": "string", "minLength": 1}
				},
				"required": ["reservation_id"],
				"additionalProperties": false
			}`),
			Requires: func(args map[string]interface{}) string {
				return cancellationKey(argString(args, "reservation_id"))
			},
			Eligible: r.reservationEligible,
			Run:      r.runCancelReservation,
		},
	}
}

func (r *Registry) runCheckTableAvailability(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	tables, err := r.reservations.AvailableForSlot(ctx, models.SlotQuery{
		OwnerUserID:  tc.OwnerUserID,
		Date:         argString(args, "date"),
		Time:         argString(args, "time"),
		Guests:       argIntPtr(args, "guests"),
		PositionPref: argString(args, "position_pref"),
	})
	if err != nil {
		return failErr(err)
	}

	free := make([]map[string]interface{}, 0, len(tables))
	for _, t := range tables {
		free = append(free, tableSummary(t))
	}
	if len(free) == 0 {
		return ok("no tables are free for that slot", map[string]interface{}{"tables": free})
	}
	return ok(fmt.Sprintf("%d tables free", len(free)), map[string]interface{}{"tables": free})
}

func (r *Registry) runCreateTableReservation(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	name := argString(args, "customer_name")
	if name == "" {
		name = tc.CustomerName
	}

	res, err := r.reservations.Create(ctx, models.CreateReservationRequest{
		BusinessID:      tc.BusinessID,
		OwnerUserID:     tc.OwnerUserID,
		CustomerPhone:   tc.CustomerPhone,
		CustomerName:    name,
		ReservationDate: argString(args, "date"),
		ReservationTime: argString(args, "time"),
		NumberOfGuests:  argIntPtr(args, "guests"),
		TableNumber:     argInt(args, "table_number"),
		PositionPref:    argString(args, "position_pref"),
		Notes:           argString(args, "notes"),
	})
	if err != nil {
		return failErr(err)
	}

	payload := r.reservationSummary(ctx, res)
	return ok(fmt.Sprintf("reservation %s confirmed for %s %s", res.ID, res.ReservationDate, res.ReservationTime), payload)
}

func (r *Registry) runCancelReservation(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	res, err := r.reservations.CancelByCustomer(ctx, argString(args, "reservation_id"), tc.CustomerPhone)
	if err != nil {
		return failErr(err)
	}
	return ok(fmt.Sprintf("reservation %s cancelled", res.ID), r.reservationSummary(ctx, res))
}

func tableSummary(t *ent.Table) map[string]interface{} {
	s := map[string]interface{}{
		"table_number": t.TableNumber,
		"min_seats":    t.MinSeats,
		"max_seats":    t.MaxSeats,
	}
	if t.PositionLabel != nil && *t.PositionLabel != "" {
		s["position"] = *t.PositionLabel
	}
	return s
}

func (r *Registry) reservationSummary(ctx context.Context, res *ent.Reservation) map[string]interface{} {
	s := map[string]interface{}{
		"reservation_id": res.ID,
		"date":           res.ReservationDate,
		"time":           res.ReservationTime,
		"status":         res.Status,
		"customer_name":  res.CustomerName,
	}
	if res.NumberOfGuests != nil {
		s["guests"] = *res.NumberOfGuests
	}
	// Table number is a courtesy for the reply; the id stays canonical.
	if res.TableID != nil {
		if t, err := r.client.Table.Get(ctx, *res.TableID); err == nil {
			s["table_number"] = t.TableNumber
		}
	}
	if res.Notes != nil && *res.Notes != "" {
		s["notes"] = *res.Notes
	}
	return s
}
