package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/order"
)

// ConfirmOrderRequest carries the confirmation-time parameters applied to a
// cart as it becomes an order.
type ConfirmOrderRequest struct {
	PaymentMethod order.PaymentMethod `json:"payment_method,omitempty"`
	LanguageUsed  string              `json:"language_used,omitempty"`
	OrderSource   order.OrderSource   `json:"order_source,omitempty"`
	ChangedBy     string              `json:"changed_by"`
}

// UpdateOrderStatusRequest moves an order through its state machine.
type UpdateOrderStatusRequest struct {
	Status    order.Status `json:"status"`
	ChangedBy string       `json:"changed_by"`

	// SystemActor marks transitions driven by background jobs rather than
	// staff; those do not count as the business's first response.
	SystemActor bool `json:"-"`
}

// OrderFilters contains filtering options for listing orders.
type OrderFilters struct {
	BusinessID    string            `json:"business_id,omitempty"`
	UserID        string            `json:"user_id,omitempty"`
	CustomerPhone string            `json:"customer_phone,omitempty"`
	Status        order.Status      `json:"status,omitempty"`
	RequestType   order.RequestType `json:"request_type,omitempty"`
	CreatedAfter  *time.Time        `json:"created_after,omitempty"`
	CreatedBefore *time.Time        `json:"created_before,omitempty"`
	Limit         int               `json:"limit,omitempty"`
	Offset        int               `json:"offset,omitempty"`
}

// OrderListResponse contains a paginated order list.
type OrderListResponse struct {
	Orders     []*ent.Order `json:"orders"`
	TotalCount int          `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

// OrderView is an order with its lines and status history loaded.
type OrderView struct {
	Order   *ent.Order                `json:"order"`
	Items   []*ent.OrderItem          `json:"items"`
	History []*ent.OrderStatusHistory `json:"history"`
}

// CalendarEntry is one row of the dashboard calendar: a scheduled order or
// a reservation falling inside the requested window.
type CalendarEntry struct {
	Kind          string           `json:"kind"` // "order" or "reservation"
	ID            string           `json:"id"`
	At            time.Time        `json:"at"`
	Status        string           `json:"status"`
	CustomerName  string           `json:"customer_name,omitempty"`
	CustomerPhone string           `json:"customer_phone,omitempty"`
	Guests        *int             `json:"guests,omitempty"`
	TableNumber   *int             `json:"table_number,omitempty"`
	Total         *decimal.Decimal `json:"total,omitempty"`
}
