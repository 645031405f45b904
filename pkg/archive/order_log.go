package archive

import (
	"time"

	"github.com/vendrahq/vendra/ent"
)

// OrderLog is one archived order as stored in the cold store. Documents are
// immutable once written and keyed by order_id. Money fields are decimal
// strings so no precision is lost in transit.
type OrderLog struct {
	OrderID         string         `bson:"order_id" json:"order_id"`
	BusinessID      string         `bson:"business_id" json:"business_id"`
	UserID          string         `bson:"user_id" json:"user_id"`
	CustomerPhone   string         `bson:"customer_phone_number" json:"customer_phone_number"`
	Status          string         `bson:"status" json:"status"`
	RequestType     string         `bson:"request_type" json:"request_type"`
	DeliveryType    string         `bson:"delivery_type,omitempty" json:"delivery_type,omitempty"`
	LocationAddress string         `bson:"location_address,omitempty" json:"location_address,omitempty"`
	ScheduledFor    *time.Time     `bson:"scheduled_for,omitempty" json:"scheduled_for,omitempty"`
	Items           []OrderLogItem `bson:"items" json:"items"`
	StatusTimeline  []StatusChange `bson:"status_timeline" json:"status_timeline"`
	Subtotal        string         `bson:"subtotal" json:"subtotal"`
	DeliveryPrice   string         `bson:"delivery_price" json:"delivery_price"`
	Total           string         `bson:"total" json:"total"`
	PaymentMethod   string         `bson:"payment_method" json:"payment_method"`
	PaymentStatus   string         `bson:"payment_status" json:"payment_status"`
	Notes           string         `bson:"notes,omitempty" json:"notes,omitempty"`
	LanguageUsed    string         `bson:"language_used,omitempty" json:"language_used,omitempty"`
	OrderSource     string         `bson:"order_source" json:"order_source"`
	FirstResponseAt *time.Time     `bson:"first_response_at,omitempty" json:"first_response_at,omitempty"`
	CompletedAt     *time.Time     `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CancelledAt     *time.Time     `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
	CreatedAt       time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `bson:"updated_at" json:"updated_at"`
	ArchivedAt      time.Time      `bson:"archived_at" json:"archived_at"`
}

// OrderLogItem is one line of an archived order, priced as it was sold.
type OrderLogItem struct {
	ItemID      string `bson:"item_id" json:"item_id"`
	Name        string `bson:"name" json:"name"`
	Quantity    int    `bson:"quantity" json:"quantity"`
	PriceAtTime string `bson:"price_at_time" json:"price_at_time"`
	CostAtTime  string `bson:"cost_at_time,omitempty" json:"cost_at_time,omitempty"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// StatusChange is one entry of an archived order's status timeline.
type StatusChange struct {
	Status    string    `bson:"status" json:"status"`
	ChangedBy string    `bson:"changed_by" json:"changed_by"`
	ChangedAt time.Time `bson:"changed_at" json:"changed_at"`
}

// NewOrderLog builds the cold-store document for an order. history must be
// ordered oldest first so the timeline ends at the terminal status.
func NewOrderLog(o *ent.Order, items []*ent.OrderItem, history []*ent.OrderStatusHistory, archivedAt time.Time) *OrderLog {
	log := &OrderLog{
		OrderID:         o.ID,
		BusinessID:      o.BusinessID,
		UserID:          o.UserID,
		CustomerPhone:   o.CustomerPhoneNumber,
		Status:          string(o.Status),
		RequestType:     string(o.RequestType),
		LocationAddress: deref(o.LocationAddress),
		ScheduledFor:    o.ScheduledFor,
		Subtotal:        o.Subtotal.String(),
		DeliveryPrice:   o.DeliveryPrice.String(),
		Total:           o.Total.String(),
		PaymentMethod:   string(o.PaymentMethod),
		PaymentStatus:   string(o.PaymentStatus),
		Notes:           deref(o.Notes),
		LanguageUsed:    deref(o.LanguageUsed),
		OrderSource:     string(o.OrderSource),
		FirstResponseAt: o.FirstResponseAt,
		CompletedAt:     o.CompletedAt,
		CancelledAt:     o.CancelledAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		ArchivedAt:      archivedAt,
	}
	if o.DeliveryType != nil {
		log.DeliveryType = string(*o.DeliveryType)
	}

	log.Items = make([]OrderLogItem, len(items))
	for i, it := range items {
		line := OrderLogItem{
			ItemID:      it.ItemID,
			Name:        it.NameAtTime,
			Quantity:    it.Quantity,
			PriceAtTime: it.PriceAtTime.String(),
			Notes:       deref(it.Notes),
		}
		if it.CostAtTime != nil {
			line.CostAtTime = it.CostAtTime.String()
		}
		log.Items[i] = line
	}

	log.StatusTimeline = make([]StatusChange, len(history))
	for i, h := range history {
		log.StatusTimeline[i] = StatusChange{
			Status:    string(h.Status),
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
		}
	}
	return log
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
