package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/order"
)

// CartScope identifies whose cart an operation targets: the tenant, the
// fulfilling principal (branch or the business itself), and the customer.
type CartScope struct {
	BusinessID    string `json:"business_id"`
	OwnerUserID   string `json:"owner_user_id"`
	CustomerPhone string `json:"customer_phone"`
}

// AddLineRequest adds an item to a cart. Lines with the same (item, notes)
// pair merge by summing quantities.
type AddLineRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// UpdateLineRequest changes a cart line. A nil field is left untouched;
// quantity zero removes the line.
type UpdateLineRequest struct {
	LineID   string  `json:"line_id"`
	Quantity *int    `json:"quantity,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// CartLine is one priced line of a cart snapshot.
type CartLine struct {
	LineID    string          `json:"line_id"`
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	Notes     string          `json:"notes,omitempty"`
}

// CartSnapshot is the customer-facing view of the cart order row with its
// lines re-priced from the current catalog.
type CartSnapshot struct {
	OrderID       string              `json:"order_id"`
	BusinessID    string              `json:"business_id"`
	OwnerUserID   string              `json:"owner_user_id"`
	CustomerPhone string              `json:"customer_phone"`
	DeliveryType  *order.DeliveryType `json:"delivery_type,omitempty"`
	ScheduledFor  *time.Time          `json:"scheduled_for,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	Address       string              `json:"address,omitempty"`
	Lines         []CartLine          `json:"lines"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	DeliveryPrice decimal.Decimal     `json:"delivery_price"`
	Total         decimal.Decimal     `json:"total"`
}

// IsEmpty reports whether the cart has no lines.
func (s *CartSnapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}
