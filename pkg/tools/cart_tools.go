package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/pkg/models"
)

func (r *Registry) cartTools() []*Tool {
	return []*Tool{
		{
			Name:        "view_cart",
			Description: "Show the current cart: lines, delivery type, scheduled time, and totals.",
			Parameters:  emptyObjectSchema,
			Run:         r.runViewCart,
		},
		{
			Name:        "add_to_cart",
			Description: "Add an item to the cart. Lines with the same item and notes merge by summing quantities.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"item_id": {"type": "string", "minLength": 1},
					"quantity": {"type": "integer", "minimum": 1, "default": 1},
					"notes": {"type": "string", "description": "Line-level preparation notes, e.g. no onions"}
				},
				"required": ["item_id"],
				"additionalProperties": false
			}`),
			Run: r.runAddToCart,
		},
		{
			Name:        "update_cart_item",
			Description: "Change the quantity or notes of one cart line. Quantity zero removes the line.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"line_id": {"type": "string", "minLength": 1},
					"quantity": {"type": "integer", "minimum": 0},
					"notes": {"type": "string"}
				},
				"required": ["line_id"],
				"additionalProperties": false
			}`),
			Run: r.runUpdateCartItem,
		},
		{
			Name:        "remove_from_cart",
			Description: "Remove one line from the cart.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"line_id": {"type": "string", "minLength": 1}
				},
				"required": ["line_id"],
				"additionalProperties": false
			}`),
			Run: r.runRemoveFromCart,
		},
		{
			Name:        "set_delivery_type",
			Description: "Set how the order will be fulfilled. Delivery orders need an address before confirmation.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"delivery_type": {"type": "string", "enum": ["takeaway", "delivery", "on_site"]},
					"address": {"type": "string", "description": "Required for delivery"}
				},
				"required": ["delivery_type"],
				"additionalProperties": false
			}`),
			Run: r.runSetDeliveryType,
		},
		{
			Name:        "set_order_notes",
			Description: "Replace the order-level notes, e.g. ring the doorbell twice.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"notes": {"type": "string"}
				},
				"required": ["notes"],
				"additionalProperties": false
			}`),
			Run: r.runSetOrderNotes,
		},
		{
			Name:        "set_scheduled_time",
			Description: "Schedule the order for a future time expressed in natural language, or clear the schedule to fulfil as soon as possible.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"when": {"type": "string", "description": "e.g. tomorrow at 7pm, friday 12:30, 2026-09-20 19:00"},
					"clear": {"type": "boolean", "description": "True to remove a previously set time"}
				},
				"additionalProperties": false
			}`),
			Run: r.runSetScheduledTime,
		},
		{
			Name:        "clear_cart",
			Description: "Empty the cart completely.",
			Parameters:  emptyObjectSchema,
			Run:         r.runClearCart,
		},
	}
}

var emptyObjectSchema = json.RawMessage(`{
	"type": "object",
	"properties": {},
	"additionalProperties": false
}`)

func (r *Registry) runViewCart(ctx context.Context, tc *Context, _ map[string]interface{}) *Result {
	snap, err := r.carts.Snapshot(ctx, tc.cartScope())
	if err != nil {
		return failErr(err)
	}
	if snap.IsEmpty() {
		return ok("the cart is empty", snap)
	}
	return ok(cartMessage(snap), snap)
}

func (r *Registry) runAddToCart(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	quantity := argInt(args, "quantity")
	if quantity == 0 {
		quantity = 1
	}
	snap, err := r.carts.AddLine(ctx, tc.cartScope(), models.AddLineRequest{
		ItemID:   argString(args, "item_id"),
		Quantity: quantity,
		Notes:    argString(args, "notes"),
	})
	if err != nil {
		return failErr(err)
	}
	return ok(cartMessage(snap), snap)
}

func (r *Registry) runUpdateCartItem(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	snap, err := r.carts.UpdateLine(ctx, tc.cartScope(), models.UpdateLineRequest{
		LineID:   argString(args, "line_id"),
		Quantity: argIntPtr(args, "quantity"),
		Notes:    argStringPtr(args, "notes"),
	})
	if err != nil {
		return failErr(err)
	}
	return ok(cartMessage(snap), snap)
}

func (r *Registry) runRemoveFromCart(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	snap, err := r.carts.RemoveLine(ctx, tc.cartScope(), argString(args, "line_id"))
	if err != nil {
		return failErr(err)
	}
	return ok(cartMessage(snap), snap)
}

func (r *Registry) runSetDeliveryType(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	// The customer may state fulfillment before picking items; make sure
	// a cart row exists to carry the choice.
	if _, err := r.carts.GetOrCreate(ctx, tc.cartScope()); err != nil {
		return failErr(err)
	}
	snap, err := r.carts.SetDeliveryType(ctx, tc.cartScope(),
		order.DeliveryType(argString(args, "delivery_type")),
		argString(args, "address"))
	if err != nil {
		return failErr(err)
	}
	return ok(cartMessage(snap), snap)
}

func (r *Registry) runSetOrderNotes(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	if _, err := r.carts.GetOrCreate(ctx, tc.cartScope()); err != nil {
		return failErr(err)
	}
	snap, err := r.carts.SetNotes(ctx, tc.cartScope(), argString(args, "notes"))
	if err != nil {
		return failErr(err)
	}
	return ok(cartMessage(snap), snap)
}

func (r *Registry) runSetScheduledTime(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	if argBool(args, "clear") {
		snap, err := r.carts.SetScheduled(ctx, tc.cartScope(), nil)
		if err != nil {
			return failErr(err)
		}
		return ok("scheduled time cleared; the order will be fulfilled as soon as possible", snap)
	}

	when := argString(args, "when")
	if when == "" {
		return fail(CodeInvalidToolArgs, "provide when, or clear: true")
	}

	at, err := r.scheduler.ResolveText(ctx, tc.BusinessID, tc.OwnerUserID, when)
	if err != nil {
		return failErr(err)
	}

	snap, err := r.carts.Snapshot(ctx, tc.cartScope())
	if err != nil {
		return failErr(err)
	}
	itemIDs := make([]string, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		itemIDs = append(itemIDs, line.ItemID)
	}
	if err := r.scheduler.ValidateSchedulable(ctx, tc.BusinessID, tc.OwnerUserID, at, itemIDs); err != nil {
		return failErr(err)
	}

	snap, err = r.carts.SetScheduled(ctx, tc.cartScope(), &at)
	if err != nil {
		return failErr(err)
	}
	return ok(fmt.Sprintf("scheduled for %s", at.Format(time.RFC3339)), snap)
}

func (r *Registry) runClearCart(ctx context.Context, tc *Context, _ map[string]interface{}) *Result {
	if err := r.carts.Clear(ctx, tc.cartScope()); err != nil {
		return failErr(err)
	}
	return ok("the cart is empty", nil)
}

func cartMessage(snap *models.CartSnapshot) string {
	return fmt.Sprintf("%d lines, total %s", len(snap.Lines), snap.Total.StringFixed(2))
}
