// Package validation provides the read-only pre-flight checks consulted
// before mutating commerce operations. Validators gather every problem they
// can see instead of stopping at the first, so the caller can present a
// complete picture; they never mutate state.
package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
)

// Machine-readable issue codes.
const (
	CodeEmptyCart              = "EMPTY_CART"
	CodeMissingDeliveryType    = "MISSING_DELIVERY_TYPE"
	CodeMissingDeliveryAddress = "MISSING_DELIVERY_ADDRESS"
	CodeBusinessClosed         = "BUSINESS_CLOSED"
	CodeLastOrderTimePassed    = "LAST_ORDER_TIME_PASSED"
	CodeInvalidDateFormat      = "INVALID_DATE_FORMAT"
	CodePastDateTime           = "PAST_DATE_TIME"
	CodeNoTablesAvailable      = "NO_TABLES_AVAILABLE"
	CodeMissingCustomerName    = "MISSING_CUSTOMER_NAME"
	CodeSlotTaken              = "SLOT_TAKEN"
	CodeInsufficientStock      = "INSUFFICIENT_STOCK"
	CodeInvalidTransition      = "INVALID_TRANSITION"
	CodeCancelDeadlinePassed   = "CANCEL_DEADLINE_PASSED"
	CodeNotFound               = "NOT_FOUND"
)

// Issue is one problem found by a validator.
type Issue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the outcome of one validation pass. Errors block the operation;
// warnings do not but should be surfaced to the customer.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings,omitempty"`
}

func (r *Result) fail(code, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, Issue{Code: code, Message: message})
}

func (r *Result) warn(code, message string) {
	r.Warnings = append(r.Warnings, Issue{Code: code, Message: message})
}

// HasCode reports whether any error carries the code.
func (r *Result) HasCode(code string) bool {
	for _, issue := range r.Errors {
		if issue.Code == code {
			return true
		}
	}
	return false
}

// ReservationCheck are the inputs of ReservationRequest. CustomerName is
// optional; leaving it empty yields a warning rather than an error so
// availability can be checked before the customer gives a name.
type ReservationCheck struct {
	BusinessID   string `json:"business_id"`
	OwnerUserID  string `json:"owner_user_id"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // HH:MM
	Guests       *int   `json:"guests,omitempty"`
	PositionPref string `json:"position_pref,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
}

// CancellationCheck identifies the order or reservation a customer wants to
// cancel. Exactly one of OrderID and ReservationID should be set; OrderID
// wins when both are.
type CancellationCheck struct {
	OrderID       string `json:"order_id,omitempty"`
	ReservationID string `json:"reservation_id,omitempty"`
	CustomerPhone string `json:"customer_phone"`
}

// Validator runs the pre-flight checks. The error return of each method
// reports infrastructure failures only; every validation outcome, including
// a failing one, arrives in the Result.
type Validator struct {
	client       *ent.Client
	carts        *services.CartService
	catalog      *services.CatalogService
	orders       *services.OrderService
	reservations *services.ReservationService

	// Now is the clock used for open-now, past-time, and deadline checks.
	Now func() time.Time
}

// New creates a Validator over the operational store.
func New(client *ent.Client) *Validator {
	return &Validator{
		client:       client,
		carts:        services.NewCartService(client),
		catalog:      services.NewCatalogService(client),
		orders:       services.NewOrderService(client),
		reservations: services.NewReservationService(client),
		Now:          time.Now,
	}
}

// CartForConfirmation checks whether the scope's cart could be confirmed
// right now: non-empty, fulfilment chosen, address present for delivery, and
// the business open (now, or at the scheduled time). Stock shortfalls are
// warnings since stock is only reserved at confirmation.
func (v *Validator) CartForConfirmation(ctx context.Context, scope models.CartScope) (*Result, error) {
	snap, err := v.carts.Snapshot(ctx, scope)
	if err != nil {
		return nil, err
	}

	res := &Result{Valid: true}
	if snap.IsEmpty() {
		res.fail(CodeEmptyCart, "the cart has no items")
	}
	if snap.DeliveryType == nil {
		res.fail(CodeMissingDeliveryType, "choose delivery or takeaway before confirming")
	} else if *snap.DeliveryType == order.DeliveryTypeDelivery && strings.TrimSpace(snap.Address) == "" {
		res.fail(CodeMissingDeliveryAddress, "a delivery address is needed for delivery orders")
	}

	loc, err := v.businessLocation(ctx, scope.BusinessID)
	if err != nil {
		return nil, err
	}
	now := v.Now().In(loc)

	if snap.ScheduledFor != nil {
		at := snap.ScheduledFor.In(loc)
		if at.Before(now) {
			res.fail(CodePastDateTime, "the scheduled time has already passed")
		} else {
			open, err := v.catalog.IsOpenAt(ctx, scope.BusinessID, scope.OwnerUserID, at)
			if err != nil {
				return nil, err
			}
			if !open {
				res.fail(CodeBusinessClosed, fmt.Sprintf("closed at the scheduled time (%s)", at.Format("Monday 15:04")))
			}
		}
	} else {
		open, err := v.catalog.IsOpenAt(ctx, scope.BusinessID, scope.OwnerUserID, now)
		if err != nil {
			return nil, err
		}
		if !open {
			res.fail(CodeBusinessClosed, "the business is closed right now; the order can be scheduled instead")
		} else {
			cutoff, err := v.catalog.LastOrderTimeFor(ctx, scope.BusinessID, scope.OwnerUserID, int(now.Weekday()))
			if err != nil {
				return nil, err
			}
			if cutoff != "" && clockMinutes(now) >= parseClockOr(cutoff, 24*60) {
				res.fail(CodeLastOrderTimePassed, fmt.Sprintf("last orders are taken until %s", cutoff))
			}
		}
	}

	if err := v.checkStock(ctx, snap, res); err != nil {
		return nil, err
	}
	return res, nil
}

// checkStock warns about lines exceeding current stock and about items that
// have left the catalog since they were added.
func (v *Validator) checkStock(ctx context.Context, snap *models.CartSnapshot, res *Result) error {
	if len(snap.Lines) == 0 {
		return nil
	}

	itemIDs := make([]string, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		itemIDs = append(itemIDs, line.ItemID)
	}
	items, err := v.client.Item.Query().
		Where(item.IDIn(itemIDs...), item.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query items: %w", err)
	}

	byID := make(map[string]*ent.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	for _, line := range snap.Lines {
		it, ok := byID[line.ItemID]
		if !ok {
			res.warn(CodeNotFound, fmt.Sprintf("%q is no longer on the menu", line.Name))
			continue
		}
		if it.StockQuantity != nil && *it.StockQuantity < line.Quantity {
			res.warn(CodeInsufficientStock, fmt.Sprintf("only %d of %q left in stock", *it.StockQuantity, line.Name))
		}
	}
	return nil
}

// ReservationRequest checks whether a slot could be booked: well-formed and
// future date/time, business open for that weekday, and at least one fitting
// table still free.
func (v *Validator) ReservationRequest(ctx context.Context, req ReservationCheck) (*Result, error) {
	res := &Result{Valid: true}

	_, dateErr := time.Parse("2006-01-02", req.Date)
	if dateErr != nil {
		res.fail(CodeInvalidDateFormat, "the date must be YYYY-MM-DD")
	}
	_, timeErr := time.Parse("15:04", req.Time)
	if timeErr != nil {
		res.fail(CodeInvalidDateFormat, "the time must be HH:MM")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		res.warn(CodeMissingCustomerName, "a customer name is needed to book")
	}
	if dateErr != nil || timeErr != nil {
		return res, nil
	}

	loc, err := v.businessLocation(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}
	at, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, loc)
	if err != nil {
		res.fail(CodeInvalidDateFormat, "the date and time could not be read together")
		return res, nil
	}
	if at.Before(v.Now().In(loc)) {
		res.fail(CodePastDateTime, "that time has already passed")
	}

	open, err := v.catalog.IsOpenAt(ctx, req.BusinessID, req.OwnerUserID, at)
	if err != nil {
		return nil, err
	}
	if !open {
		res.fail(CodeBusinessClosed, fmt.Sprintf("closed on %s at %s", at.Format("Monday"), req.Time))
	}

	slot := models.SlotQuery{
		OwnerUserID:  req.OwnerUserID,
		Date:         req.Date,
		Time:         req.Time,
		Guests:       req.Guests,
		PositionPref: req.PositionPref,
	}
	candidates, err := v.reservations.CandidateTables(ctx, slot)
	if err != nil {
		if services.IsValidationError(err) {
			res.fail(CodeInvalidDateFormat, err.Error())
			return res, nil
		}
		return nil, err
	}
	if len(candidates) == 0 {
		msg := "no table fits this party"
		if req.Guests != nil {
			msg = fmt.Sprintf("no table seats %d guests", *req.Guests)
		}
		res.fail(CodeNoTablesAvailable, msg)
		return res, nil
	}

	free, err := v.reservations.AvailableForSlot(ctx, slot)
	if err != nil {
		return nil, err
	}
	if len(free) == 0 {
		res.fail(CodeSlotTaken, fmt.Sprintf("every table is booked at %s; another time may be free", req.Time))
	}
	return res, nil
}

// CancellationEligibility checks whether the customer may still cancel the
// order or reservation: ownership, a future scheduled time, and an open
// cancellation window.
func (v *Validator) CancellationEligibility(ctx context.Context, req CancellationCheck) (*Result, error) {
	res := &Result{Valid: true}
	if req.CustomerPhone == "" {
		res.fail(CodeNotFound, "the customer could not be identified")
		return res, nil
	}

	switch {
	case req.OrderID != "":
		return v.orderCancellation(ctx, req, res)
	case req.ReservationID != "":
		return v.reservationCancellation(ctx, req, res)
	default:
		res.fail(CodeNotFound, "provide an order or reservation to cancel")
		return res, nil
	}
}

func (v *Validator) orderCancellation(ctx context.Context, req CancellationCheck, res *Result) (*Result, error) {
	o, err := v.orders.GetOrderForCustomer(ctx, req.OrderID, req.CustomerPhone)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			res.fail(CodeNotFound, "no such order for this customer")
			return res, nil
		}
		return nil, err
	}

	switch o.Status {
	case order.StatusAccepted, order.StatusOngoing, order.StatusReady:
	default:
		res.fail(CodeInvalidTransition, fmt.Sprintf("the order is already %s", o.Status))
		return res, nil
	}

	if o.ScheduledFor == nil {
		res.fail(CodeCancelDeadlinePassed, "only scheduled orders can be cancelled this way; please contact the business")
		return res, nil
	}

	deadline, err := v.orders.CancellationDeadline(ctx, o)
	if err != nil {
		if errors.Is(err, services.ErrCancelDeadlinePassed) {
			res.fail(CodeCancelDeadlinePassed, "this order can no longer be cancelled")
			return res, nil
		}
		return nil, err
	}
	if v.Now().After(deadline) {
		res.fail(CodeCancelDeadlinePassed, fmt.Sprintf("cancellations closed at %s", deadline.Format("Monday 15:04")))
	}
	return res, nil
}

func (v *Validator) reservationCancellation(ctx context.Context, req CancellationCheck, res *Result) (*Result, error) {
	r, err := v.reservations.GetForCustomer(ctx, req.ReservationID, req.CustomerPhone)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			res.fail(CodeNotFound, "no such reservation for this customer")
			return res, nil
		}
		return nil, err
	}

	if r.Status != reservation.StatusConfirmed {
		res.fail(CodeInvalidTransition, fmt.Sprintf("the reservation is already %s", r.Status))
		return res, nil
	}

	deadline, err := v.reservations.CancellationDeadline(ctx, r)
	if err != nil {
		return nil, err
	}
	if v.Now().After(deadline) {
		res.fail(CodeCancelDeadlinePassed, fmt.Sprintf("cancellations closed at %s", deadline.Format("Monday 15:04")))
	}
	return res, nil
}

// businessLocation loads the tenant's IANA timezone.
func (v *Validator) businessLocation(ctx context.Context, businessID string) (*time.Location, error) {
	business, err := v.client.User.Query().
		Where(user.IDEQ(businessID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query business: %w", err)
	}
	loc, err := time.LoadLocation(business.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", business.Timezone, err)
	}
	return loc, nil
}

func clockMinutes(at time.Time) int {
	return at.Hour()*60 + at.Minute()
}

// parseClockOr converts "HH:MM" to minutes since midnight, returning
// fallback on malformed input.
func parseClockOr(clock string, fallback int) int {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return fallback
	}
	return t.Hour()*60 + t.Minute()
}
