// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldBusinessID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUserID, v))
}

// CustomerPhoneNumber applies equality check predicate on the "customer_phone_number" field. It's identical to CustomerPhoneNumberEQ.
func CustomerPhoneNumber(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerPhoneNumber, v))
}

// ScheduledFor applies equality check predicate on the "scheduled_for" field. It's identical to ScheduledForEQ.
func ScheduledFor(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldScheduledFor, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldSubtotal, v))
}

// DeliveryPrice applies equality check predicate on the "delivery_price" field. It's identical to DeliveryPriceEQ.
func DeliveryPrice(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDeliveryPrice, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTotal, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldNotes, v))
}

// LocationAddress applies equality check predicate on the "location_address" field. It's identical to LocationAddressEQ.
func LocationAddress(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldLocationAddress, v))
}

// LanguageUsed applies equality check predicate on the "language_used" field. It's identical to LanguageUsedEQ.
func LanguageUsed(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldLanguageUsed, v))
}

// FirstResponseAt applies equality check predicate on the "first_response_at" field. It's identical to FirstResponseAtEQ.
func FirstResponseAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldFirstResponseAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCompletedAt, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCancelledAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldBusinessID, v))
}

// BusinessIDContains applies the Contains predicate on the "business_id" field.
func BusinessIDContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldBusinessID, v))
}

// BusinessIDHasPrefix applies the HasPrefix predicate on the "business_id" field.
func BusinessIDHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldBusinessID, v))
}

// BusinessIDHasSuffix applies the HasSuffix predicate on the "business_id" field.
func BusinessIDHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldBusinessID, v))
}

// BusinessIDEqualFold applies the EqualFold predicate on the "business_id" field.
func BusinessIDEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldBusinessID, v))
}

// BusinessIDContainsFold applies the ContainsFold predicate on the "business_id" field.
func BusinessIDContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldBusinessID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldUserID, v))
}

// CustomerPhoneNumberEQ applies the EQ predicate on the "customer_phone_number" field.
func CustomerPhoneNumberEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberNEQ applies the NEQ predicate on the "customer_phone_number" field.
func CustomerPhoneNumberNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberIn applies the In predicate on the "customer_phone_number" field.
func CustomerPhoneNumberIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCustomerPhoneNumber, vs...))
}

// CustomerPhoneNumberNotIn applies the NotIn predicate on the "customer_phone_number" field.
func CustomerPhoneNumberNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCustomerPhoneNumber, vs...))
}

// CustomerPhoneNumberGT applies the GT predicate on the "customer_phone_number" field.
func CustomerPhoneNumberGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberGTE applies the GTE predicate on the "customer_phone_number" field.
func CustomerPhoneNumberGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberLT applies the LT predicate on the "customer_phone_number" field.
func CustomerPhoneNumberLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberLTE applies the LTE predicate on the "customer_phone_number" field.
func CustomerPhoneNumberLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberContains applies the Contains predicate on the "customer_phone_number" field.
func CustomerPhoneNumberContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberHasPrefix applies the HasPrefix predicate on the "customer_phone_number" field.
func CustomerPhoneNumberHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberHasSuffix applies the HasSuffix predicate on the "customer_phone_number" field.
func CustomerPhoneNumberHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberEqualFold applies the EqualFold predicate on the "customer_phone_number" field.
func CustomerPhoneNumberEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberContainsFold applies the ContainsFold predicate on the "customer_phone_number" field.
func CustomerPhoneNumberContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCustomerPhoneNumber, v))
}

// DeliveryTypeEQ applies the EQ predicate on the "delivery_type" field.
func DeliveryTypeEQ(v DeliveryType) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDeliveryType, v))
}

// DeliveryTypeNEQ applies the NEQ predicate on the "delivery_type" field.
func DeliveryTypeNEQ(v DeliveryType) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldDeliveryType, v))
}

// DeliveryTypeIn applies the In predicate on the "delivery_type" field.
func DeliveryTypeIn(vs ...DeliveryType) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldDeliveryType, vs...))
}

// DeliveryTypeNotIn applies the NotIn predicate on the "delivery_type" field.
func DeliveryTypeNotIn(vs ...DeliveryType) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldDeliveryType, vs...))
}

// DeliveryTypeIsNil applies the IsNil predicate on the "delivery_type" field.
func DeliveryTypeIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldDeliveryType))
}

// DeliveryTypeNotNil applies the NotNil predicate on the "delivery_type" field.
func DeliveryTypeNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldDeliveryType))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldStatus, vs...))
}

// RequestTypeEQ applies the EQ predicate on the "request_type" field.
func RequestTypeEQ(v RequestType) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldRequestType, v))
}

// RequestTypeNEQ applies the NEQ predicate on the "request_type" field.
func RequestTypeNEQ(v RequestType) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldRequestType, v))
}

// RequestTypeIn applies the In predicate on the "request_type" field.
func RequestTypeIn(vs ...RequestType) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldRequestType, vs...))
}

// RequestTypeNotIn applies the NotIn predicate on the "request_type" field.
func RequestTypeNotIn(vs ...RequestType) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldRequestType, vs...))
}

// ScheduledForEQ applies the EQ predicate on the "scheduled_for" field.
func ScheduledForEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldScheduledFor, v))
}

// ScheduledForNEQ applies the NEQ predicate on the "scheduled_for" field.
func ScheduledForNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldScheduledFor, v))
}

// ScheduledForIn applies the In predicate on the "scheduled_for" field.
func ScheduledForIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldScheduledFor, vs...))
}

// ScheduledForNotIn applies the NotIn predicate on the "scheduled_for" field.
func ScheduledForNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldScheduledFor, vs...))
}

// ScheduledForGT applies the GT predicate on the "scheduled_for" field.
func ScheduledForGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldScheduledFor, v))
}

// ScheduledForGTE applies the GTE predicate on the "scheduled_for" field.
func ScheduledForGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldScheduledFor, v))
}

// ScheduledForLT applies the LT predicate on the "scheduled_for" field.
func ScheduledForLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldScheduledFor, v))
}

// ScheduledForLTE applies the LTE predicate on the "scheduled_for" field.
func ScheduledForLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldScheduledFor, v))
}

// ScheduledForIsNil applies the IsNil predicate on the "scheduled_for" field.
func ScheduledForIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldScheduledFor))
}

// ScheduledForNotNil applies the NotNil predicate on the "scheduled_for" field.
func ScheduledForNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldScheduledFor))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldSubtotal, v))
}

// DeliveryPriceEQ applies the EQ predicate on the "delivery_price" field.
func DeliveryPriceEQ(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDeliveryPrice, v))
}

// DeliveryPriceNEQ applies the NEQ predicate on the "delivery_price" field.
func DeliveryPriceNEQ(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldDeliveryPrice, v))
}

// DeliveryPriceIn applies the In predicate on the "delivery_price" field.
func DeliveryPriceIn(vs ...decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldDeliveryPrice, vs...))
}

// DeliveryPriceNotIn applies the NotIn predicate on the "delivery_price" field.
func DeliveryPriceNotIn(vs ...decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldDeliveryPrice, vs...))
}

// DeliveryPriceGT applies the GT predicate on the "delivery_price" field.
func DeliveryPriceGT(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldDeliveryPrice, v))
}

// DeliveryPriceGTE applies the GTE predicate on the "delivery_price" field.
func DeliveryPriceGTE(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldDeliveryPrice, v))
}

// DeliveryPriceLT applies the LT predicate on the "delivery_price" field.
func DeliveryPriceLT(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldDeliveryPrice, v))
}

// DeliveryPriceLTE applies the LTE predicate on the "delivery_price" field.
func DeliveryPriceLTE(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldDeliveryPrice, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldTotal, v))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v PaymentMethod) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v PaymentMethod) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...PaymentMethod) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...PaymentMethod) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentStatusEQ applies the EQ predicate on the "payment_status" field.
func PaymentStatusEQ(v PaymentStatus) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPaymentStatus, v))
}

// PaymentStatusNEQ applies the NEQ predicate on the "payment_status" field.
func PaymentStatusNEQ(v PaymentStatus) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPaymentStatus, v))
}

// PaymentStatusIn applies the In predicate on the "payment_status" field.
func PaymentStatusIn(vs ...PaymentStatus) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPaymentStatus, vs...))
}

// PaymentStatusNotIn applies the NotIn predicate on the "payment_status" field.
func PaymentStatusNotIn(vs ...PaymentStatus) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPaymentStatus, vs...))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldNotes, v))
}

// LocationAddressEQ applies the EQ predicate on the "location_address" field.
func LocationAddressEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldLocationAddress, v))
}

// LocationAddressNEQ applies the NEQ predicate on the "location_address" field.
func LocationAddressNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldLocationAddress, v))
}

// LocationAddressIn applies the In predicate on the "location_address" field.
func LocationAddressIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldLocationAddress, vs...))
}

// LocationAddressNotIn applies the NotIn predicate on the "location_address" field.
func LocationAddressNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldLocationAddress, vs...))
}

// LocationAddressGT applies the GT predicate on the "location_address" field.
func LocationAddressGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldLocationAddress, v))
}

// LocationAddressGTE applies the GTE predicate on the "location_address" field.
func LocationAddressGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldLocationAddress, v))
}

// LocationAddressLT applies the LT predicate on the "location_address" field.
func LocationAddressLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldLocationAddress, v))
}

// LocationAddressLTE applies the LTE predicate on the "location_address" field.
func LocationAddressLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldLocationAddress, v))
}

// LocationAddressContains applies the Contains predicate on the "location_address" field.
func LocationAddressContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldLocationAddress, v))
}

// LocationAddressHasPrefix applies the HasPrefix predicate on the "location_address" field.
func LocationAddressHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldLocationAddress, v))
}

// LocationAddressHasSuffix applies the HasSuffix predicate on the "location_address" field.
func LocationAddressHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldLocationAddress, v))
}

// LocationAddressIsNil applies the IsNil predicate on the "location_address" field.
func LocationAddressIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldLocationAddress))
}

// LocationAddressNotNil applies the NotNil predicate on the "location_address" field.
func LocationAddressNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldLocationAddress))
}

// LocationAddressEqualFold applies the EqualFold predicate on the "location_address" field.
func LocationAddressEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldLocationAddress, v))
}

// LocationAddressContainsFold applies the ContainsFold predicate on the "location_address" field.
func LocationAddressContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldLocationAddress, v))
}

// LanguageUsedEQ applies the EQ predicate on the "language_used" field.
func LanguageUsedEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldLanguageUsed, v))
}

// LanguageUsedNEQ applies the NEQ predicate on the "language_used" field.
func LanguageUsedNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldLanguageUsed, v))
}

// LanguageUsedIn applies the In predicate on the "language_used" field.
func LanguageUsedIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldLanguageUsed, vs...))
}

// LanguageUsedNotIn applies the NotIn predicate on the "language_used" field.
func LanguageUsedNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldLanguageUsed, vs...))
}

// LanguageUsedGT applies the GT predicate on the "language_used" field.
func LanguageUsedGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldLanguageUsed, v))
}

// LanguageUsedGTE applies the GTE predicate on the "language_used" field.
func LanguageUsedGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldLanguageUsed, v))
}

// LanguageUsedLT applies the LT predicate on the "language_used" field.
func LanguageUsedLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldLanguageUsed, v))
}

// LanguageUsedLTE applies the LTE predicate on the "language_used" field.
func LanguageUsedLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldLanguageUsed, v))
}

// LanguageUsedContains applies the Contains predicate on the "language_used" field.
func LanguageUsedContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldLanguageUsed, v))
}

// LanguageUsedHasPrefix applies the HasPrefix predicate on the "language_used" field.
func LanguageUsedHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldLanguageUsed, v))
}

// LanguageUsedHasSuffix applies the HasSuffix predicate on the "language_used" field.
func LanguageUsedHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldLanguageUsed, v))
}

// LanguageUsedIsNil applies the IsNil predicate on the "language_used" field.
func LanguageUsedIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldLanguageUsed))
}

// LanguageUsedNotNil applies the NotNil predicate on the "language_used" field.
func LanguageUsedNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldLanguageUsed))
}

// LanguageUsedEqualFold applies the EqualFold predicate on the "language_used" field.
func LanguageUsedEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldLanguageUsed, v))
}

// LanguageUsedContainsFold applies the ContainsFold predicate on the "language_used" field.
func LanguageUsedContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldLanguageUsed, v))
}

// OrderSourceEQ applies the EQ predicate on the "order_source" field.
func OrderSourceEQ(v OrderSource) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderSource, v))
}

// OrderSourceNEQ applies the NEQ predicate on the "order_source" field.
func OrderSourceNEQ(v OrderSource) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldOrderSource, v))
}

// OrderSourceIn applies the In predicate on the "order_source" field.
func OrderSourceIn(vs ...OrderSource) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldOrderSource, vs...))
}

// OrderSourceNotIn applies the NotIn predicate on the "order_source" field.
func OrderSourceNotIn(vs ...OrderSource) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldOrderSource, vs...))
}

// FirstResponseAtEQ applies the EQ predicate on the "first_response_at" field.
func FirstResponseAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldFirstResponseAt, v))
}

// FirstResponseAtNEQ applies the NEQ predicate on the "first_response_at" field.
func FirstResponseAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldFirstResponseAt, v))
}

// FirstResponseAtIn applies the In predicate on the "first_response_at" field.
func FirstResponseAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldFirstResponseAt, vs...))
}

// FirstResponseAtNotIn applies the NotIn predicate on the "first_response_at" field.
func FirstResponseAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldFirstResponseAt, vs...))
}

// FirstResponseAtGT applies the GT predicate on the "first_response_at" field.
func FirstResponseAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldFirstResponseAt, v))
}

// FirstResponseAtGTE applies the GTE predicate on the "first_response_at" field.
func FirstResponseAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldFirstResponseAt, v))
}

// FirstResponseAtLT applies the LT predicate on the "first_response_at" field.
func FirstResponseAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldFirstResponseAt, v))
}

// FirstResponseAtLTE applies the LTE predicate on the "first_response_at" field.
func FirstResponseAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldFirstResponseAt, v))
}

// FirstResponseAtIsNil applies the IsNil predicate on the "first_response_at" field.
func FirstResponseAtIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldFirstResponseAt))
}

// FirstResponseAtNotNil applies the NotNil predicate on the "first_response_at" field.
func FirstResponseAtNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldFirstResponseAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldCompletedAt))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldCancelledAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.OrderItem) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStatusHistory applies the HasEdge predicate on the "status_history" edge.
func HasStatusHistory() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StatusHistoryTable, StatusHistoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatusHistoryWith applies the HasEdge predicate on the "status_history" edge with a given conditions (other predicates).
func HasStatusHistoryWith(preds ...predicate.OrderStatusHistory) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newStatusHistoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Order) predicate.Order {
	return predicate.Order(sql.NotPredicates(p))
}
