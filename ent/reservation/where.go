// Code generated by ent, DO NOT EDIT.

package reservation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vendrahq/vendra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldID, id))
}

// BusinessUserID applies equality check predicate on the "business_user_id" field. It's identical to BusinessUserIDEQ.
func BusinessUserID(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldBusinessUserID, v))
}

// OwnerUserID applies equality check predicate on the "owner_user_id" field. It's identical to OwnerUserIDEQ.
func OwnerUserID(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldOwnerUserID, v))
}

// TableID applies equality check predicate on the "table_id" field. It's identical to TableIDEQ.
func TableID(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldTableID, v))
}

// CustomerPhoneNumber applies equality check predicate on the "customer_phone_number" field. It's identical to CustomerPhoneNumberEQ.
func CustomerPhoneNumber(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCustomerPhoneNumber, v))
}

// CustomerName applies equality check predicate on the "customer_name" field. It's identical to CustomerNameEQ.
func CustomerName(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCustomerName, v))
}

// ReservationDate applies equality check predicate on the "reservation_date" field. It's identical to ReservationDateEQ.
func ReservationDate(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldReservationDate, v))
}

// ReservationTime applies equality check predicate on the "reservation_time" field. It's identical to ReservationTimeEQ.
func ReservationTime(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldReservationTime, v))
}

// NumberOfGuests applies equality check predicate on the "number_of_guests" field. It's identical to NumberOfGuestsEQ.
func NumberOfGuests(v int) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldNumberOfGuests, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessUserIDEQ applies the EQ predicate on the "business_user_id" field.
func BusinessUserIDEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldBusinessUserID, v))
}

// BusinessUserIDNEQ applies the NEQ predicate on the "business_user_id" field.
func BusinessUserIDNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldBusinessUserID, v))
}

// BusinessUserIDIn applies the In predicate on the "business_user_id" field.
func BusinessUserIDIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldBusinessUserID, vs...))
}

// BusinessUserIDNotIn applies the NotIn predicate on the "business_user_id" field.
func BusinessUserIDNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldBusinessUserID, vs...))
}

// BusinessUserIDGT applies the GT predicate on the "business_user_id" field.
func BusinessUserIDGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldBusinessUserID, v))
}

// BusinessUserIDGTE applies the GTE predicate on the "business_user_id" field.
func BusinessUserIDGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldBusinessUserID, v))
}

// BusinessUserIDLT applies the LT predicate on the "business_user_id" field.
func BusinessUserIDLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldBusinessUserID, v))
}

// BusinessUserIDLTE applies the LTE predicate on the "business_user_id" field.
func BusinessUserIDLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldBusinessUserID, v))
}

// BusinessUserIDContains applies the Contains predicate on the "business_user_id" field.
func BusinessUserIDContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldBusinessUserID, v))
}

// BusinessUserIDHasPrefix applies the HasPrefix predicate on the "business_user_id" field.
func BusinessUserIDHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldBusinessUserID, v))
}

// BusinessUserIDHasSuffix applies the HasSuffix predicate on the "business_user_id" field.
func BusinessUserIDHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldBusinessUserID, v))
}

// BusinessUserIDEqualFold applies the EqualFold predicate on the "business_user_id" field.
func BusinessUserIDEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldBusinessUserID, v))
}

// BusinessUserIDContainsFold applies the ContainsFold predicate on the "business_user_id" field.
func BusinessUserIDContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldBusinessUserID, v))
}

// OwnerUserIDEQ applies the EQ predicate on the "owner_user_id" field.
func OwnerUserIDEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldOwnerUserID, v))
}

// OwnerUserIDNEQ applies the NEQ predicate on the "owner_user_id" field.
func OwnerUserIDNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldOwnerUserID, v))
}

// OwnerUserIDIn applies the In predicate on the "owner_user_id" field.
func OwnerUserIDIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDNotIn applies the NotIn predicate on the "owner_user_id" field.
func OwnerUserIDNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDGT applies the GT predicate on the "owner_user_id" field.
func OwnerUserIDGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldOwnerUserID, v))
}

// OwnerUserIDGTE applies the GTE predicate on the "owner_user_id" field.
func OwnerUserIDGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldOwnerUserID, v))
}

// OwnerUserIDLT applies the LT predicate on the "owner_user_id" field.
func OwnerUserIDLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldOwnerUserID, v))
}

// OwnerUserIDLTE applies the LTE predicate on the "owner_user_id" field.
func OwnerUserIDLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldOwnerUserID, v))
}

// OwnerUserIDContains applies the Contains predicate on the "owner_user_id" field.
func OwnerUserIDContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldOwnerUserID, v))
}

// OwnerUserIDHasPrefix applies the HasPrefix predicate on the "owner_user_id" field.
func OwnerUserIDHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldOwnerUserID, v))
}

// OwnerUserIDHasSuffix applies the HasSuffix predicate on the "owner_user_id" field.
func OwnerUserIDHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldOwnerUserID, v))
}

// OwnerUserIDEqualFold applies the EqualFold predicate on the "owner_user_id" field.
func OwnerUserIDEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldOwnerUserID, v))
}

// OwnerUserIDContainsFold applies the ContainsFold predicate on the "owner_user_id" field.
func OwnerUserIDContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldOwnerUserID, v))
}

// TableIDEQ applies the EQ predicate on the "table_id" field.
func TableIDEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldTableID, v))
}

// TableIDNEQ applies the NEQ predicate on the "table_id" field.
func TableIDNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldTableID, v))
}

// TableIDIn applies the In predicate on the "table_id" field.
func TableIDIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldTableID, vs...))
}

// TableIDNotIn applies the NotIn predicate on the "table_id" field.
func TableIDNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldTableID, vs...))
}

// TableIDGT applies the GT predicate on the "table_id" field.
func TableIDGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldTableID, v))
}

// TableIDGTE applies the GTE predicate on the "table_id" field.
func TableIDGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldTableID, v))
}

// TableIDLT applies the LT predicate on the "table_id" field.
func TableIDLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldTableID, v))
}

// TableIDLTE applies the LTE predicate on the "table_id" field.
func TableIDLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldTableID, v))
}

// TableIDContains applies the Contains predicate on the "table_id" field.
func TableIDContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldTableID, v))
}

// TableIDHasPrefix applies the HasPrefix predicate on the "table_id" field.
func TableIDHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldTableID, v))
}

// TableIDHasSuffix applies the HasSuffix predicate on the "table_id" field.
func TableIDHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldTableID, v))
}

// TableIDIsNil applies the IsNil predicate on the "table_id" field.
func TableIDIsNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldIsNull(FieldTableID))
}

// TableIDNotNil applies the NotNil predicate on the "table_id" field.
func TableIDNotNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldNotNull(FieldTableID))
}

// TableIDEqualFold applies the EqualFold predicate on the "table_id" field.
func TableIDEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldTableID, v))
}

// TableIDContainsFold applies the ContainsFold predicate on the "table_id" field.
func TableIDContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldTableID, v))
}

// CustomerPhoneNumberEQ applies the EQ predicate on the "customer_phone_number" field.
func CustomerPhoneNumberEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberNEQ applies the NEQ predicate on the "customer_phone_number" field.
func CustomerPhoneNumberNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberIn applies the In predicate on the "customer_phone_number" field.
func CustomerPhoneNumberIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldCustomerPhoneNumber, vs...))
}

// CustomerPhoneNumberNotIn applies the NotIn predicate on the "customer_phone_number" field.
func CustomerPhoneNumberNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldCustomerPhoneNumber, vs...))
}

// CustomerPhoneNumberGT applies the GT predicate on the "customer_phone_number" field.
func CustomerPhoneNumberGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberGTE applies the GTE predicate on the "customer_phone_number" field.
func CustomerPhoneNumberGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberLT applies the LT predicate on the "customer_phone_number" field.
func CustomerPhoneNumberLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberLTE applies the LTE predicate on the "customer_phone_number" field.
func CustomerPhoneNumberLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberContains applies the Contains predicate on the "customer_phone_number" field.
func CustomerPhoneNumberContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberHasPrefix applies the HasPrefix predicate on the "customer_phone_number" field.
func CustomerPhoneNumberHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberHasSuffix applies the HasSuffix predicate on the "customer_phone_number" field.
func CustomerPhoneNumberHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberEqualFold applies the EqualFold predicate on the "customer_phone_number" field.
func CustomerPhoneNumberEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldCustomerPhoneNumber, v))
}

// CustomerPhoneNumberContainsFold applies the ContainsFold predicate on the "customer_phone_number" field.
func CustomerPhoneNumberContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldCustomerPhoneNumber, v))
}

// CustomerNameEQ applies the EQ predicate on the "customer_name" field.
func CustomerNameEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerNameNEQ applies the NEQ predicate on the "customer_name" field.
func CustomerNameNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldCustomerName, v))
}

// CustomerNameIn applies the In predicate on the "customer_name" field.
func CustomerNameIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldCustomerName, vs...))
}

// CustomerNameNotIn applies the NotIn predicate on the "customer_name" field.
func CustomerNameNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldCustomerName, vs...))
}

// CustomerNameGT applies the GT predicate on the "customer_name" field.
func CustomerNameGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldCustomerName, v))
}

// CustomerNameGTE applies the GTE predicate on the "customer_name" field.
func CustomerNameGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldCustomerName, v))
}

// CustomerNameLT applies the LT predicate on the "customer_name" field.
func CustomerNameLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldCustomerName, v))
}

// CustomerNameLTE applies the LTE predicate on the "customer_name" field.
func CustomerNameLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldCustomerName, v))
}

// CustomerNameContains applies the Contains predicate on the "customer_name" field.
func CustomerNameContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldCustomerName, v))
}

// CustomerNameHasPrefix applies the HasPrefix predicate on the "customer_name" field.
func CustomerNameHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldCustomerName, v))
}

// CustomerNameHasSuffix applies the HasSuffix predicate on the "customer_name" field.
func CustomerNameHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldCustomerName, v))
}

// CustomerNameEqualFold applies the EqualFold predicate on the "customer_name" field.
func CustomerNameEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldCustomerName, v))
}

// CustomerNameContainsFold applies the ContainsFold predicate on the "customer_name" field.
func CustomerNameContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldCustomerName, v))
}

// ReservationDateEQ applies the EQ predicate on the "reservation_date" field.
func ReservationDateEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldReservationDate, v))
}

// ReservationDateNEQ applies the NEQ predicate on the "reservation_date" field.
func ReservationDateNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldReservationDate, v))
}

// ReservationDateIn applies the In predicate on the "reservation_date" field.
func ReservationDateIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldReservationDate, vs...))
}

// ReservationDateNotIn applies the NotIn predicate on the "reservation_date" field.
func ReservationDateNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldReservationDate, vs...))
}

// ReservationDateGT applies the GT predicate on the "reservation_date" field.
func ReservationDateGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldReservationDate, v))
}

// ReservationDateGTE applies the GTE predicate on the "reservation_date" field.
func ReservationDateGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldReservationDate, v))
}

// ReservationDateLT applies the LT predicate on the "reservation_date" field.
func ReservationDateLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldReservationDate, v))
}

// ReservationDateLTE applies the LTE predicate on the "reservation_date" field.
func ReservationDateLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldReservationDate, v))
}

// ReservationDateContains applies the Contains predicate on the "reservation_date" field.
func ReservationDateContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldReservationDate, v))
}

// ReservationDateHasPrefix applies the HasPrefix predicate on the "reservation_date" field.
func ReservationDateHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldReservationDate, v))
}

// ReservationDateHasSuffix applies the HasSuffix predicate on the "reservation_date" field.
func ReservationDateHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldReservationDate, v))
}

// ReservationDateEqualFold applies the EqualFold predicate on the "reservation_date" field.
func ReservationDateEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldReservationDate, v))
}

// ReservationDateContainsFold applies the ContainsFold predicate on the "reservation_date" field.
func ReservationDateContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldReservationDate, v))
}

// ReservationTimeEQ applies the EQ predicate on the "reservation_time" field.
func ReservationTimeEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldReservationTime, v))
}

// ReservationTimeNEQ applies the NEQ predicate on the "reservation_time" field.
func ReservationTimeNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldReservationTime, v))
}

// ReservationTimeIn applies the In predicate on the "reservation_time" field.
func ReservationTimeIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldReservationTime, vs...))
}

// ReservationTimeNotIn applies the NotIn predicate on the "reservation_time" field.
func ReservationTimeNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldReservationTime, vs...))
}

// ReservationTimeGT applies the GT predicate on the "reservation_time" field.
func ReservationTimeGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldReservationTime, v))
}

// ReservationTimeGTE applies the GTE predicate on the "reservation_time" field.
func ReservationTimeGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldReservationTime, v))
}

// ReservationTimeLT applies the LT predicate on the "reservation_time" field.
func ReservationTimeLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldReservationTime, v))
}

// ReservationTimeLTE applies the LTE predicate on the "reservation_time" field.
func ReservationTimeLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldReservationTime, v))
}

// ReservationTimeContains applies the Contains predicate on the "reservation_time" field.
func ReservationTimeContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldReservationTime, v))
}

// ReservationTimeHasPrefix applies the HasPrefix predicate on the "reservation_time" field.
func ReservationTimeHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldReservationTime, v))
}

// ReservationTimeHasSuffix applies the HasSuffix predicate on the "reservation_time" field.
func ReservationTimeHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldReservationTime, v))
}

// ReservationTimeEqualFold applies the EqualFold predicate on the "reservation_time" field.
func ReservationTimeEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldReservationTime, v))
}

// ReservationTimeContainsFold applies the ContainsFold predicate on the "reservation_time" field.
func ReservationTimeContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldReservationTime, v))
}

// NumberOfGuestsEQ applies the EQ predicate on the "number_of_guests" field.
func NumberOfGuestsEQ(v int) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldNumberOfGuests, v))
}

// NumberOfGuestsNEQ applies the NEQ predicate on the "number_of_guests" field.
func NumberOfGuestsNEQ(v int) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldNumberOfGuests, v))
}

// NumberOfGuestsIn applies the In predicate on the "number_of_guests" field.
func NumberOfGuestsIn(vs ...int) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldNumberOfGuests, vs...))
}

// NumberOfGuestsNotIn applies the NotIn predicate on the "number_of_guests" field.
func NumberOfGuestsNotIn(vs ...int) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldNumberOfGuests, vs...))
}

// NumberOfGuestsGT applies the GT predicate on the "number_of_guests" field.
func NumberOfGuestsGT(v int) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldNumberOfGuests, v))
}

// NumberOfGuestsGTE applies the GTE predicate on the "number_of_guests" field.
func NumberOfGuestsGTE(v int) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldNumberOfGuests, v))
}

// NumberOfGuestsLT applies the LT predicate on the "number_of_guests" field.
func NumberOfGuestsLT(v int) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldNumberOfGuests, v))
}

// NumberOfGuestsLTE applies the LTE predicate on the "number_of_guests" field.
func NumberOfGuestsLTE(v int) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldNumberOfGuests, v))
}

// NumberOfGuestsIsNil applies the IsNil predicate on the "number_of_guests" field.
func NumberOfGuestsIsNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldIsNull(FieldNumberOfGuests))
}

// NumberOfGuestsNotNil applies the NotNil predicate on the "number_of_guests" field.
func NumberOfGuestsNotNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldNotNull(FieldNumberOfGuests))
}

// ReservationTypeEQ applies the EQ predicate on the "reservation_type" field.
func ReservationTypeEQ(v ReservationType) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldReservationType, v))
}

// ReservationTypeNEQ applies the NEQ predicate on the "reservation_type" field.
func ReservationTypeNEQ(v ReservationType) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldReservationType, v))
}

// ReservationTypeIn applies the In predicate on the "reservation_type" field.
func ReservationTypeIn(vs ...ReservationType) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldReservationType, vs...))
}

// ReservationTypeNotIn applies the NotIn predicate on the "reservation_type" field.
func ReservationTypeNotIn(vs ...ReservationType) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldReservationType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldStatus, vs...))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Reservation {
	return predicate.Reservation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.ReservationItem) predicate.Reservation {
	return predicate.Reservation(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Reservation) predicate.Reservation {
	return predicate.Reservation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Reservation) predicate.Reservation {
	return predicate.Reservation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Reservation) predicate.Reservation {
	return predicate.Reservation(sql.NotPredicates(p))
}
