// Code generated by ent, DO NOT EDIT.

package supportticket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vendrahq/vendra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContainsFold(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldBusinessID, v))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldCustomerID, v))
}

// RelatedOrderID applies equality check predicate on the "related_order_id" field. It's identical to RelatedOrderIDEQ.
func RelatedOrderID(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldRelatedOrderID, v))
}

// RelatedReservationID applies equality check predicate on the "related_reservation_id" field. It's identical to RelatedReservationIDEQ.
func RelatedReservationID(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldRelatedReservationID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldSessionID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldSubject, v))
}

// AssignedEmployeeID applies equality check predicate on the "assigned_employee_id" field. It's identical to AssignedEmployeeIDEQ.
func AssignedEmployeeID(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldAssignedEmployeeID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLTE(FieldBusinessID, v))
}

// BusinessIDContains applies the Contains predicate on the "business_id" field.
func BusinessIDContains(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContains(FieldBusinessID, v))
}

// BusinessIDHasPrefix applies the HasPrefix predicate on the "business_id" field.
func BusinessIDHasPrefix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasPrefix(FieldBusinessID, v))
}

// BusinessIDHasSuffix applies the HasSuffix predicate on the "business_id" field.
func BusinessIDHasSuffix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasSuffix(FieldBusinessID, v))
}

// BusinessIDEqualFold applies the EqualFold predicate on the "business_id" field.
func BusinessIDEqualFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEqualFold(FieldBusinessID, v))
}

// BusinessIDContainsFold applies the ContainsFold predicate on the "business_id" field.
func BusinessIDContainsFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContainsFold(FieldBusinessID, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotIn(FieldCustomerID, vs...))
}

// CustomerIDGT applies the GT predicate on the "customer_id" field.
func CustomerIDGT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGT(FieldCustomerID, v))
}

// CustomerIDGTE applies the GTE predicate on the "customer_id" field.
func CustomerIDGTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGTE(FieldCustomerID, v))
}

// CustomerIDLT applies the LT predicate on the "customer_id" field.
func CustomerIDLT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLT(FieldCustomerID, v))
}

// CustomerIDLTE applies the LTE predicate on the "customer_id" field.
func CustomerIDLTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLTE(FieldCustomerID, v))
}

// CustomerIDContains applies the Contains predicate on the "customer_id" field.
func CustomerIDContains(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContains(FieldCustomerID, v))
}

// CustomerIDHasPrefix applies the HasPrefix predicate on the "customer_id" field.
func CustomerIDHasPrefix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasPrefix(FieldCustomerID, v))
}

// CustomerIDHasSuffix applies the HasSuffix predicate on the "customer_id" field.
func CustomerIDHasSuffix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasSuffix(FieldCustomerID, v))
}

// CustomerIDEqualFold applies the EqualFold predicate on the "customer_id" field.
func CustomerIDEqualFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEqualFold(FieldCustomerID, v))
}

// CustomerIDContainsFold applies the ContainsFold predicate on the "customer_id" field.
func CustomerIDContainsFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContainsFold(FieldCustomerID, v))
}

// RelatedOrderIDEQ applies the EQ predicate on the "related_order_id" field.
func RelatedOrderIDEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldRelatedOrderID, v))
}

// RelatedOrderIDNEQ applies the NEQ predicate on the "related_order_id" field.
func RelatedOrderIDNEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNEQ(FieldRelatedOrderID, v))
}

// RelatedOrderIDIn applies the In predicate on the "related_order_id" field.
func RelatedOrderIDIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIn(FieldRelatedOrderID, vs...))
}

// RelatedOrderIDNotIn applies the NotIn predicate on the "related_order_id" field.
func RelatedOrderIDNotIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotIn(FieldRelatedOrderID, vs...))
}

// RelatedOrderIDGT applies the GT predicate on the "related_order_id" field.
func RelatedOrderIDGT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGT(FieldRelatedOrderID, v))
}

// RelatedOrderIDGTE applies the GTE predicate on the "related_order_id" field.
func RelatedOrderIDGTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGTE(FieldRelatedOrderID, v))
}

// RelatedOrderIDLT applies the LT predicate on the "related_order_id" field.
func RelatedOrderIDLT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLT(FieldRelatedOrderID, v))
}

// RelatedOrderIDLTE applies the LTE predicate on the "related_order_id" field.
func RelatedOrderIDLTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLTE(FieldRelatedOrderID, v))
}

// RelatedOrderIDContains applies the Contains predicate on the "related_order_id" field.
func RelatedOrderIDContains(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContains(FieldRelatedOrderID, v))
}

// RelatedOrderIDHasPrefix applies the HasPrefix predicate on the "related_order_id" field.
func RelatedOrderIDHasPrefix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasPrefix(FieldRelatedOrderID, v))
}

// RelatedOrderIDHasSuffix applies the HasSuffix predicate on the "related_order_id" field.
func RelatedOrderIDHasSuffix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasSuffix(FieldRelatedOrderID, v))
}

// RelatedOrderIDIsNil applies the IsNil predicate on the "related_order_id" field.
func RelatedOrderIDIsNil() predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIsNull(FieldRelatedOrderID))
}

// RelatedOrderIDNotNil applies the NotNil predicate on the "related_order_id" field.
func RelatedOrderIDNotNil() predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotNull(FieldRelatedOrderID))
}

// RelatedOrderIDEqualFold applies the EqualFold predicate on the "related_order_id" field.
func RelatedOrderIDEqualFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEqualFold(FieldRelatedOrderID, v))
}

// RelatedOrderIDContainsFold applies the ContainsFold predicate on the "related_order_id" field.
func RelatedOrderIDContainsFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContainsFold(FieldRelatedOrderID, v))
}

// RelatedReservationIDEQ applies the EQ predicate on the "related_reservation_id" field.
func RelatedReservationIDEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldRelatedReservationID, v))
}

// RelatedReservationIDNEQ applies the NEQ predicate on the "related_reservation_id" field.
func RelatedReservationIDNEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNEQ(FieldRelatedReservationID, v))
}

// RelatedReservationIDIn applies the In predicate on the "related_reservation_id" field.
func RelatedReservationIDIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIn(FieldRelatedReservationID, vs...))
}

// RelatedReservationIDNotIn applies the NotIn predicate on the "related_reservation_id" field.
func RelatedReservationIDNotIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotIn(FieldRelatedReservationID, vs...))
}

// RelatedReservationIDGT applies the GT predicate on the "related_reservation_id" field.
func RelatedReservationIDGT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGT(FieldRelatedReservationID, v))
}

// RelatedReservationIDGTE applies the GTE predicate on the "related_reservation_id" field.
func RelatedReservationIDGTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGTE(FieldRelatedReservationID, v))
}

// RelatedReservationIDLT applies the LT predicate on the "related_reservation_id" field.
func RelatedReservationIDLT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLT(FieldRelatedReservationID, v))
}

// RelatedReservationIDLTE applies the LTE predicate on the "related_reservation_id" field.
func RelatedReservationIDLTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLTE(FieldRelatedReservationID, v))
}

// RelatedReservationIDContains applies the Contains predicate on the "related_reservation_id" field.
func RelatedReservationIDContains(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContains(FieldRelatedReservationID, v))
}

// RelatedReservationIDHasPrefix applies the HasPrefix predicate on the "related_reservation_id" field.
func RelatedReservationIDHasPrefix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasPrefix(FieldRelatedReservationID, v))
}

// RelatedReservationIDHasSuffix applies the HasSuffix predicate on the "related_reservation_id" field.
func RelatedReservationIDHasSuffix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasSuffix(FieldRelatedReservationID, v))
}

// RelatedReservationIDIsNil applies the IsNil predicate on the "related_reservation_id" field.
func RelatedReservationIDIsNil() predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIsNull(FieldRelatedReservationID))
}

// RelatedReservationIDNotNil applies the NotNil predicate on the "related_reservation_id" field.
func RelatedReservationIDNotNil() predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotNull(FieldRelatedReservationID))
}

// RelatedReservationIDEqualFold applies the EqualFold predicate on the "related_reservation_id" field.
func RelatedReservationIDEqualFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEqualFold(FieldRelatedReservationID, v))
}

// RelatedReservationIDContainsFold applies the ContainsFold predicate on the "related_reservation_id" field.
func RelatedReservationIDContainsFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContainsFold(FieldRelatedReservationID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContainsFold(FieldSessionID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContainsFold(FieldSubject, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotIn(FieldPriority, vs...))
}

// AssignedEmployeeIDEQ applies the EQ predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldAssignedEmployeeID, v))
}

// AssignedEmployeeIDNEQ applies the NEQ predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDNEQ(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNEQ(FieldAssignedEmployeeID, v))
}

// AssignedEmployeeIDIn applies the In predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIn(FieldAssignedEmployeeID, vs...))
}

// AssignedEmployeeIDNotIn applies the NotIn predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDNotIn(vs ...string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotIn(FieldAssignedEmployeeID, vs...))
}

// AssignedEmployeeIDGT applies the GT predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDGT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGT(FieldAssignedEmployeeID, v))
}

// AssignedEmployeeIDGTE applies the GTE predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDGTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGTE(FieldAssignedEmployeeID, v))
}

// AssignedEmployeeIDLT applies the LT predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDLT(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLT(FieldAssignedEmployeeID, v))
}

// AssignedEmployeeIDLTE applies the LTE predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDLTE(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLTE(FieldAssignedEmployeeID, v))
}

// AssignedEmployeeIDContains applies the Contains predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDContains(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContains(FieldAssignedEmployeeID, v))
}

// AssignedEmployeeIDHasPrefix applies the HasPrefix predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDHasPrefix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasPrefix(FieldAssignedEmployeeID, v))
}

// AssignedEmployeeIDHasSuffix applies the HasSuffix predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDHasSuffix(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldHasSuffix(FieldAssignedEmployeeID, v))
}

// AssignedEmployeeIDIsNil applies the IsNil predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDIsNil() predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIsNull(FieldAssignedEmployeeID))
}

// AssignedEmployeeIDNotNil applies the NotNil predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDNotNil() predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotNull(FieldAssignedEmployeeID))
}

// AssignedEmployeeIDEqualFold applies the EqualFold predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDEqualFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEqualFold(FieldAssignedEmployeeID, v))
}

// AssignedEmployeeIDContainsFold applies the ContainsFold predicate on the "assigned_employee_id" field.
func AssignedEmployeeIDContainsFold(v string) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldContainsFold(FieldAssignedEmployeeID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SupportTicket {
	return predicate.SupportTicket(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.SupportTicket {
	return predicate.SupportTicket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.TicketMessage) predicate.SupportTicket {
	return predicate.SupportTicket(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SupportTicket) predicate.SupportTicket {
	return predicate.SupportTicket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SupportTicket) predicate.SupportTicket {
	return predicate.SupportTicket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SupportTicket) predicate.SupportTicket {
	return predicate.SupportTicket(sql.NotPredicates(p))
}
