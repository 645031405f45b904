package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/pkg/models"
)

func (r *Registry) orderTools() []*Tool {
	return []*Tool{
		{
			Name:        "confirm_order",
			Description: "Turn the cart into a placed order. Run validate_cart_for_confirmation first and resolve its errors.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"payment_method": {"type": "string", "enum": ["cash", "card", "online"]}
				},
				"additionalProperties": false
			}`),
			Requires: func(map[string]interface{}) string { return keyCartValidated },
			Run:      r.runConfirmOrder,
		},
		{
			Name:        "cancel_order",
			Description: "Cancel a scheduled order on the customer's behalf. Run validate_cancellation_eligibility for this order first.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"order_id": {"type": "string", "minLength": 1}
				},
				"required": ["order_id"],
				"additionalProperties": false
			}`),
			Requires: func(args map[string]interface{}) string {
				return cancellationKey(argString(args, "order_id"))
			},
			Run: r.runCancelOrder,
		},
		{
			Name:        "get_order_status",
			Description: "Look up the status of one of the customer's orders.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"order_id": {"type": "string", "minLength": 1}
				},
				"required": ["order_id"],
				"additionalProperties": false
			}`),
			Run: r.runGetOrderStatus,
		},
	}
}

func (r *Registry) runConfirmOrder(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	snap, err := r.carts.Snapshot(ctx, tc.cartScope())
	if err != nil {
		return failErr(err)
	}
	if snap.OrderID == "" || snap.IsEmpty() {
		return fail(CodeEmptyCart, "the cart is empty")
	}

	req := models.ConfirmOrderRequest{
		LanguageUsed: tc.Language,
		OrderSource:  orderSource(tc.Platform),
		ChangedBy:    tc.CustomerPhone,
	}
	if pm := argString(args, "payment_method"); pm != "" {
		req.PaymentMethod = order.PaymentMethod(pm)
	}

	placed, err := r.orders.Confirm(ctx, snap.OrderID, req)
	if err != nil {
		return failErr(err)
	}
	return ok(fmt.Sprintf("order %s placed, status %s", placed.ID, placed.Status), orderSummary(placed))
}

func (r *Registry) runCancelOrder(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	cancelled, err := r.orders.CancelByCustomer(ctx, argString(args, "order_id"), tc.CustomerPhone)
	if err != nil {
		return failErr(err)
	}
	return ok(fmt.Sprintf("order %s cancelled", cancelled.ID), orderSummary(cancelled))
}

func (r *Registry) runGetOrderStatus(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	o, err := r.orders.GetOrderForCustomer(ctx, argString(args, "order_id"), tc.CustomerPhone)
	if err != nil {
		return failErr(err)
	}
	return ok(fmt.Sprintf("order %s is %s", o.ID, o.Status), orderSummary(o))
}

// orderSource maps the chat platform onto the order provenance enum. The
// two vocabularies share their channel names.
func orderSource(p chatsession.Platform) order.OrderSource {
	return order.OrderSource(p)
}

func orderSummary(o *ent.Order) map[string]interface{} {
	s := map[string]interface{}{
		"order_id":     o.ID,
		"status":       o.Status,
		"request_type": o.RequestType,
		"subtotal":     o.Subtotal,
		"total":        o.Total,
	}
	if o.DeliveryType != nil {
		s["delivery_type"] = *o.DeliveryType
		s["delivery_price"] = o.DeliveryPrice
	}
	if o.ScheduledFor != nil {
		s["scheduled_for"] = o.ScheduledFor.Format(time.RFC3339)
	}
	if o.Notes != nil && *o.Notes != "" {
		s["notes"] = *o.Notes
	}
	if o.LocationAddress != nil && *o.LocationAddress != "" {
		s["address"] = *o.LocationAddress
	}
	return s
}
