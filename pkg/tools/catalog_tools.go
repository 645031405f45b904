package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/pkg/models"
)

func (r *Registry) catalogTools() []*Tool {
	return []*Tool{
		{
			Name:        "search_menu_items",
			Description: "Search the business catalog by name or description. Returns matching items with prices and availability.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"query": {"type": "string", "minLength": 1, "description": "Free-text search, e.g. a dish or product name"},
					"limit": {"type": "integer", "minimum": 1, "maximum": 25}
				},
				"required": ["query"],
				"additionalProperties": false
			}`),
			Run: r.runSearchMenuItems,
		},
		{
			Name:        "get_item_details",
			Description: "Fetch one catalog item by id: price, description, stock, scheduling and cancellation rules.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"item_id": {"type": "string", "minLength": 1}
				},
				"required": ["item_id"],
				"additionalProperties": false
			}`),
			Run: r.runGetItemDetails,
		},
		{
			Name:        "list_menus",
			Description: "List the active menus of the business.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {},
				"additionalProperties": false
			}`),
			Run: r.runListMenus,
		},
	}
}

func (r *Registry) runSearchMenuItems(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	items, err := r.catalog.SearchItems(ctx, models.SearchItemsRequest{
		BusinessID:  tc.BusinessID,
		OwnerUserID: tc.OwnerUserID,
		Query:       argString(args, "query"),
		Limit:       argInt(args, "limit"),
	})
	if err != nil {
		return failErr(err)
	}

	summaries := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		summaries = append(summaries, itemSummary(it))
	}
	return ok(fmt.Sprintf("%d items match %q", len(summaries), argString(args, "query")),
		map[string]interface{}{"items": summaries})
}

func (r *Registry) runGetItemDetails(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	it, err := r.catalog.GetItem(ctx, argString(args, "item_id"))
	if err != nil {
		return failErr(err)
	}
	if it.BusinessID != tc.BusinessID {
		return fail(CodeNotFound, "item not found")
	}
	return ok(it.Name, itemDetails(it))
}

func (r *Registry) runListMenus(ctx context.Context, tc *Context, _ map[string]interface{}) *Result {
	menus, err := r.catalog.ListMenus(ctx, tc.BusinessID, false)
	if err != nil {
		return failErr(err)
	}

	out := make([]map[string]interface{}, 0, len(menus))
	for _, m := range menus {
		entry := map[string]interface{}{
			"menu_id": m.ID,
			"name":    m.Name,
		}
		if m.Description != nil && *m.Description != "" {
			entry["description"] = *m.Description
		}
		out = append(out, entry)
	}
	return ok(fmt.Sprintf("%d active menus", len(out)), map[string]interface{}{"menus": out})
}

// itemSummary is the compact shape returned by searches.
func itemSummary(it *ent.Item) map[string]interface{} {
	s := map[string]interface{}{
		"item_id":      it.ID,
		"name":         it.Name,
		"price":        it.Price,
		"availability": it.Availability,
	}
	if it.Description != nil && *it.Description != "" {
		s["description"] = *it.Description
	}
	if it.StockQuantity != nil {
		s["stock_quantity"] = *it.StockQuantity
	}
	return s
}

// itemDetails extends the summary with fulfillment rules the agent needs
// when scheduling or cancelling.
func itemDetails(it *ent.Item) map[string]interface{} {
	d := itemSummary(it)
	d["item_type"] = it.ItemType
	d["is_schedulable"] = it.IsSchedulable
	if it.MinScheduleHours > 0 {
		d["min_schedule_hours"] = it.MinScheduleHours
	}
	if it.CancelableBeforeHours != nil {
		d["cancelable_before_hours"] = *it.CancelableBeforeHours
	}
	if it.PreparationTimeMinutes != nil {
		d["preparation_time_minutes"] = *it.PreparationTimeMinutes
	}
	if it.DurationMinutes != nil {
		d["duration_minutes"] = *it.DurationMinutes
	}
	if len(it.DaysAvailable) > 0 {
		d["days_available"] = it.DaysAvailable
	}
	if it.AvailableFrom != nil && it.AvailableTo != nil {
		d["available_from"] = *it.AvailableFrom
		d["available_to"] = *it.AvailableTo
	}
	return d
}
