// Code generated by ent, DO NOT EDIT.

package order

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shopspring/decimal"
)

const (
	// Label holds the string label denoting the order type in the database.
	Label = "order"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "order_id"
	// FieldBusinessID holds the string denoting the business_id field in the database.
	FieldBusinessID = "business_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCustomerPhoneNumber holds the string denoting the customer_phone_number field in the database.
	FieldCustomerPhoneNumber = "customer_phone_number"
	// FieldDeliveryType holds the string denoting the delivery_type field in the database.
	FieldDeliveryType = "delivery_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRequestType holds the string denoting the request_type field in the database.
	FieldRequestType = "request_type"
	// FieldScheduledFor holds the string denoting the scheduled_for field in the database.
	FieldScheduledFor = "scheduled_for"
	// FieldSubtotal holds the string denoting the subtotal field in the database.
	FieldSubtotal = "subtotal"
	// FieldDeliveryPrice holds the string denoting the delivery_price field in the database.
	FieldDeliveryPrice = "delivery_price"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldPaymentMethod holds the string denoting the payment_method field in the database.
	FieldPaymentMethod = "payment_method"
	// FieldPaymentStatus holds the string denoting the payment_status field in the database.
	FieldPaymentStatus = "payment_status"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldLocationAddress holds the string denoting the location_address field in the database.
	FieldLocationAddress = "location_address"
	// FieldLanguageUsed holds the string denoting the language_used field in the database.
	FieldLanguageUsed = "language_used"
	// FieldOrderSource holds the string denoting the order_source field in the database.
	FieldOrderSource = "order_source"
	// FieldFirstResponseAt holds the string denoting the first_response_at field in the database.
	FieldFirstResponseAt = "first_response_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// EdgeStatusHistory holds the string denoting the status_history edge name in mutations.
	EdgeStatusHistory = "status_history"
	// OrderItemFieldID holds the string denoting the ID field of the OrderItem.
	OrderItemFieldID = "order_item_id"
	// OrderStatusHistoryFieldID holds the string denoting the ID field of the OrderStatusHistory.
	OrderStatusHistoryFieldID = "history_id"
	// Table holds the table name of the order in the database.
	Table = "orders"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "order_items"
	// ItemsInverseTable is the table name for the OrderItem entity.
	// It exists in this package in order to avoid circular dependency with the "orderitem" package.
	ItemsInverseTable = "order_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "order_id"
	// StatusHistoryTable is the table that holds the status_history relation/edge.
	StatusHistoryTable = "order_status_history"
	// StatusHistoryInverseTable is the table name for the OrderStatusHistory entity.
	// It exists in this package in order to avoid circular dependency with the "orderstatushistory" package.
	StatusHistoryInverseTable = "order_status_history"
	// StatusHistoryColumn is the table column denoting the status_history relation/edge.
	StatusHistoryColumn = "order_id"
)

// Columns holds all SQL columns for order fields.
var Columns = []string{
	FieldID,
	FieldBusinessID,
	FieldUserID,
	FieldCustomerPhoneNumber,
	FieldDeliveryType,
	FieldStatus,
	FieldRequestType,
	FieldScheduledFor,
	FieldSubtotal,
	FieldDeliveryPrice,
	FieldTotal,
	FieldPaymentMethod,
	FieldPaymentStatus,
	FieldNotes,
	FieldLocationAddress,
	FieldLanguageUsed,
	FieldOrderSource,
	FieldFirstResponseAt,
	FieldCompletedAt,
	FieldCancelledAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSubtotal holds the default value on creation for the "subtotal" field.
	DefaultSubtotal decimal.Decimal
	// DefaultDeliveryPrice holds the default value on creation for the "delivery_price" field.
	DefaultDeliveryPrice decimal.Decimal
	// DefaultTotal holds the default value on creation for the "total" field.
	DefaultTotal decimal.Decimal
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// DeliveryType defines the type for the "delivery_type" enum field.
type DeliveryType string

// DeliveryType values.
const (
	DeliveryTypeTakeaway DeliveryType = "takeaway"
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypeOnSite   DeliveryType = "on_site"
)

func (dt DeliveryType) String() string {
	return string(dt)
}

// DeliveryTypeValidator is a validator for the "delivery_type" field enum values. It is called by the builders before save.
func DeliveryTypeValidator(dt DeliveryType) error {
	switch dt {
	case DeliveryTypeTakeaway, DeliveryTypeDelivery, DeliveryTypeOnSite:
		return nil
	default:
		return fmt.Errorf("order: invalid enum value for delivery_type field: %q", dt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusCart is the default value of the Status enum.
const DefaultStatus = StatusCart

// Status values.
const (
	StatusCart      Status = "cart"
	StatusAccepted  Status = "accepted"
	StatusOngoing   Status = "ongoing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCart, StatusAccepted, StatusOngoing, StatusReady, StatusCompleted, StatusCancelled, StatusRejected:
		return nil
	default:
		return fmt.Errorf("order: invalid enum value for status field: %q", s)
	}
}

// RequestType defines the type for the "request_type" enum field.
type RequestType string

// RequestTypeOrder is the default value of the RequestType enum.
const DefaultRequestType = RequestTypeOrder

// RequestType values.
const (
	RequestTypeOrder            RequestType = "order"
	RequestTypeScheduledRequest RequestType = "scheduled_request"
)

func (rt RequestType) String() string {
	return string(rt)
}

// RequestTypeValidator is a validator for the "request_type" field enum values. It is called by the builders before save.
func RequestTypeValidator(rt RequestType) error {
	switch rt {
	case RequestTypeOrder, RequestTypeScheduledRequest:
		return nil
	default:
		return fmt.Errorf("order: invalid enum value for request_type field: %q", rt)
	}
}

// PaymentMethod defines the type for the "payment_method" enum field.
type PaymentMethod string

// PaymentMethodCash is the default value of the PaymentMethod enum.
const DefaultPaymentMethod = PaymentMethodCash

// PaymentMethod values.
const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodOnline PaymentMethod = "online"
)

func (pm PaymentMethod) String() string {
	return string(pm)
}

// PaymentMethodValidator is a validator for the "payment_method" field enum values. It is called by the builders before save.
func PaymentMethodValidator(pm PaymentMethod) error {
	switch pm {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOnline:
		return nil
	default:
		return fmt.Errorf("order: invalid enum value for payment_method field: %q", pm)
	}
}

// PaymentStatus defines the type for the "payment_status" enum field.
type PaymentStatus string

// PaymentStatusUnpaid is the default value of the PaymentStatus enum.
const DefaultPaymentStatus = PaymentStatusUnpaid

// PaymentStatus values.
const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (ps PaymentStatus) String() string {
	return string(ps)
}

// PaymentStatusValidator is a validator for the "payment_status" field enum values. It is called by the builders before save.
func PaymentStatusValidator(ps PaymentStatus) error {
	switch ps {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusRefunded:
		return nil
	default:
		return fmt.Errorf("order: invalid enum value for payment_status field: %q", ps)
	}
}

// OrderSource defines the type for the "order_source" enum field.
type OrderSource string

// OrderSourceWhatsapp is the default value of the OrderSource enum.
const DefaultOrderSource = OrderSourceWhatsapp

// OrderSource values.
const (
	OrderSourceWhatsapp  OrderSource = "whatsapp"
	OrderSourceTelegram  OrderSource = "telegram"
	OrderSourceInstagram OrderSource = "instagram"
	OrderSourceFacebook  OrderSource = "facebook"
	OrderSourceDashboard OrderSource = "dashboard"
)

func (os OrderSource) String() string {
	return string(os)
}

// OrderSourceValidator is a validator for the "order_source" field enum values. It is called by the builders before save.
func OrderSourceValidator(os OrderSource) error {
	switch os {
	case OrderSourceWhatsapp, OrderSourceTelegram, OrderSourceInstagram, OrderSourceFacebook, OrderSourceDashboard:
		return nil
	default:
		return fmt.Errorf("order: invalid enum value for order_source field: %q", os)
	}
}

// OrderOption defines the ordering options for the Order queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBusinessID orders the results by the business_id field.
func ByBusinessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCustomerPhoneNumber orders the results by the customer_phone_number field.
func ByCustomerPhoneNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerPhoneNumber, opts...).ToFunc()
}

// ByDeliveryType orders the results by the delivery_type field.
func ByDeliveryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRequestType orders the results by the request_type field.
func ByRequestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestType, opts...).ToFunc()
}

// ByScheduledFor orders the results by the scheduled_for field.
func ByScheduledFor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledFor, opts...).ToFunc()
}

// BySubtotal orders the results by the subtotal field.
func BySubtotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtotal, opts...).ToFunc()
}

// ByDeliveryPrice orders the results by the delivery_price field.
func ByDeliveryPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryPrice, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByPaymentMethod orders the results by the payment_method field.
func ByPaymentMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMethod, opts...).ToFunc()
}

// ByPaymentStatus orders the results by the payment_status field.
func ByPaymentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentStatus, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByLocationAddress orders the results by the location_address field.
func ByLocationAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationAddress, opts...).ToFunc()
}

// ByLanguageUsed orders the results by the language_used field.
func ByLanguageUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguageUsed, opts...).ToFunc()
}

// ByOrderSource orders the results by the order_source field.
func ByOrderSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderSource, opts...).ToFunc()
}

// ByFirstResponseAt orders the results by the first_response_at field.
func ByFirstResponseAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstResponseAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStatusHistoryCount orders the results by status_history count.
func ByStatusHistoryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStatusHistoryStep(), opts...)
	}
}

// ByStatusHistory orders the results by status_history terms.
func ByStatusHistory(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatusHistoryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, OrderItemFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
func newStatusHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatusHistoryInverseTable, OrderStatusHistoryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StatusHistoryTable, StatusHistoryColumn),
	)
}
