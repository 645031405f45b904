// Code generated by ent, DO NOT EDIT.

package openinghour

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vendrahq/vendra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldOwnerID, v))
}

// DayOfWeek applies equality check predicate on the "day_of_week" field. It's identical to DayOfWeekEQ.
func DayOfWeek(v int) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldDayOfWeek, v))
}

// OpenTime applies equality check predicate on the "open_time" field. It's identical to OpenTimeEQ.
func OpenTime(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldOpenTime, v))
}

// CloseTime applies equality check predicate on the "close_time" field. It's identical to CloseTimeEQ.
func CloseTime(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldCloseTime, v))
}

// IsClosed applies equality check predicate on the "is_closed" field. It's identical to IsClosedEQ.
func IsClosed(v bool) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldIsClosed, v))
}

// LastOrderTime applies equality check predicate on the "last_order_time" field. It's identical to LastOrderTimeEQ.
func LastOrderTime(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldLastOrderTime, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerTypeEQ applies the EQ predicate on the "owner_type" field.
func OwnerTypeEQ(v OwnerType) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldOwnerType, v))
}

// OwnerTypeNEQ applies the NEQ predicate on the "owner_type" field.
func OwnerTypeNEQ(v OwnerType) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNEQ(FieldOwnerType, v))
}

// OwnerTypeIn applies the In predicate on the "owner_type" field.
func OwnerTypeIn(vs ...OwnerType) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldIn(FieldOwnerType, vs...))
}

// OwnerTypeNotIn applies the NotIn predicate on the "owner_type" field.
func OwnerTypeNotIn(vs ...OwnerType) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNotIn(FieldOwnerType, vs...))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldContainsFold(FieldOwnerID, v))
}

// DayOfWeekEQ applies the EQ predicate on the "day_of_week" field.
func DayOfWeekEQ(v int) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldDayOfWeek, v))
}

// DayOfWeekNEQ applies the NEQ predicate on the "day_of_week" field.
func DayOfWeekNEQ(v int) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNEQ(FieldDayOfWeek, v))
}

// DayOfWeekIn applies the In predicate on the "day_of_week" field.
func DayOfWeekIn(vs ...int) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldIn(FieldDayOfWeek, vs...))
}

// DayOfWeekNotIn applies the NotIn predicate on the "day_of_week" field.
func DayOfWeekNotIn(vs ...int) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNotIn(FieldDayOfWeek, vs...))
}

// DayOfWeekGT applies the GT predicate on the "day_of_week" field.
func DayOfWeekGT(v int) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGT(FieldDayOfWeek, v))
}

// DayOfWeekGTE applies the GTE predicate on the "day_of_week" field.
func DayOfWeekGTE(v int) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGTE(FieldDayOfWeek, v))
}

// DayOfWeekLT applies the LT predicate on the "day_of_week" field.
func DayOfWeekLT(v int) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLT(FieldDayOfWeek, v))
}

// DayOfWeekLTE applies the LTE predicate on the "day_of_week" field.
func DayOfWeekLTE(v int) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLTE(FieldDayOfWeek, v))
}

// OpenTimeEQ applies the EQ predicate on the "open_time" field.
func OpenTimeEQ(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldOpenTime, v))
}

// OpenTimeNEQ applies the NEQ predicate on the "open_time" field.
func OpenTimeNEQ(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNEQ(FieldOpenTime, v))
}

// OpenTimeIn applies the In predicate on the "open_time" field.
func OpenTimeIn(vs ...string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldIn(FieldOpenTime, vs...))
}

// OpenTimeNotIn applies the NotIn predicate on the "open_time" field.
func OpenTimeNotIn(vs ...string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNotIn(FieldOpenTime, vs...))
}

// OpenTimeGT applies the GT predicate on the "open_time" field.
func OpenTimeGT(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGT(FieldOpenTime, v))
}

// OpenTimeGTE applies the GTE predicate on the "open_time" field.
func OpenTimeGTE(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGTE(FieldOpenTime, v))
}

// OpenTimeLT applies the LT predicate on the "open_time" field.
func OpenTimeLT(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLT(FieldOpenTime, v))
}

// OpenTimeLTE applies the LTE predicate on the "open_time" field.
func OpenTimeLTE(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLTE(FieldOpenTime, v))
}

// OpenTimeContains applies the Contains predicate on the "open_time" field.
func OpenTimeContains(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldContains(FieldOpenTime, v))
}

// OpenTimeHasPrefix applies the HasPrefix predicate on the "open_time" field.
func OpenTimeHasPrefix(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldHasPrefix(FieldOpenTime, v))
}

// OpenTimeHasSuffix applies the HasSuffix predicate on the "open_time" field.
func OpenTimeHasSuffix(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldHasSuffix(FieldOpenTime, v))
}

// OpenTimeIsNil applies the IsNil predicate on the "open_time" field.
func OpenTimeIsNil() predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldIsNull(FieldOpenTime))
}

// OpenTimeNotNil applies the NotNil predicate on the "open_time" field.
func OpenTimeNotNil() predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNotNull(FieldOpenTime))
}

// OpenTimeEqualFold applies the EqualFold predicate on the "open_time" field.
func OpenTimeEqualFold(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEqualFold(FieldOpenTime, v))
}

// OpenTimeContainsFold applies the ContainsFold predicate on the "open_time" field.
func OpenTimeContainsFold(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldContainsFold(FieldOpenTime, v))
}

// CloseTimeEQ applies the EQ predicate on the "close_time" field.
func CloseTimeEQ(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldCloseTime, v))
}

// CloseTimeNEQ applies the NEQ predicate on the "close_time" field.
func CloseTimeNEQ(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNEQ(FieldCloseTime, v))
}

// CloseTimeIn applies the In predicate on the "close_time" field.
func CloseTimeIn(vs ...string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldIn(FieldCloseTime, vs...))
}

// CloseTimeNotIn applies the NotIn predicate on the "close_time" field.
func CloseTimeNotIn(vs ...string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNotIn(FieldCloseTime, vs...))
}

// CloseTimeGT applies the GT predicate on the "close_time" field.
func CloseTimeGT(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGT(FieldCloseTime, v))
}

// CloseTimeGTE applies the GTE predicate on the "close_time" field.
func CloseTimeGTE(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGTE(FieldCloseTime, v))
}

// CloseTimeLT applies the LT predicate on the "close_time" field.
func CloseTimeLT(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLT(FieldCloseTime, v))
}

// CloseTimeLTE applies the LTE predicate on the "close_time" field.
func CloseTimeLTE(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLTE(FieldCloseTime, v))
}

// CloseTimeContains applies the Contains predicate on the "close_time" field.
func CloseTimeContains(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldContains(FieldCloseTime, v))
}

// CloseTimeHasPrefix applies the HasPrefix predicate on the "close_time" field.
func CloseTimeHasPrefix(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldHasPrefix(FieldCloseTime, v))
}

// CloseTimeHasSuffix applies the HasSuffix predicate on the "close_time" field.
func CloseTimeHasSuffix(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldHasSuffix(FieldCloseTime, v))
}

// CloseTimeIsNil applies the IsNil predicate on the "close_time" field.
func CloseTimeIsNil() predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldIsNull(FieldCloseTime))
}

// CloseTimeNotNil applies the NotNil predicate on the "close_time" field.
func CloseTimeNotNil() predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNotNull(FieldCloseTime))
}

// CloseTimeEqualFold applies the EqualFold predicate on the "close_time" field.
func CloseTimeEqualFold(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEqualFold(FieldCloseTime, v))
}

// CloseTimeContainsFold applies the ContainsFold predicate on the "close_time" field.
func CloseTimeContainsFold(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldContainsFold(FieldCloseTime, v))
}

// IsClosedEQ applies the EQ predicate on the "is_closed" field.
func IsClosedEQ(v bool) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldIsClosed, v))
}

// IsClosedNEQ applies the NEQ predicate on the "is_closed" field.
func IsClosedNEQ(v bool) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNEQ(FieldIsClosed, v))
}

// LastOrderTimeEQ applies the EQ predicate on the "last_order_time" field.
func LastOrderTimeEQ(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldLastOrderTime, v))
}

// LastOrderTimeNEQ applies the NEQ predicate on the "last_order_time" field.
func LastOrderTimeNEQ(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNEQ(FieldLastOrderTime, v))
}

// LastOrderTimeIn applies the In predicate on the "last_order_time" field.
func LastOrderTimeIn(vs ...string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldIn(FieldLastOrderTime, vs...))
}

// LastOrderTimeNotIn applies the NotIn predicate on the "last_order_time" field.
func LastOrderTimeNotIn(vs ...string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNotIn(FieldLastOrderTime, vs...))
}

// LastOrderTimeGT applies the GT predicate on the "last_order_time" field.
func LastOrderTimeGT(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGT(FieldLastOrderTime, v))
}

// LastOrderTimeGTE applies the GTE predicate on the "last_order_time" field.
func LastOrderTimeGTE(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGTE(FieldLastOrderTime, v))
}

// LastOrderTimeLT applies the LT predicate on the "last_order_time" field.
func LastOrderTimeLT(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLT(FieldLastOrderTime, v))
}

// LastOrderTimeLTE applies the LTE predicate on the "last_order_time" field.
func LastOrderTimeLTE(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLTE(FieldLastOrderTime, v))
}

// LastOrderTimeContains applies the Contains predicate on the "last_order_time" field.
func LastOrderTimeContains(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldContains(FieldLastOrderTime, v))
}

// LastOrderTimeHasPrefix applies the HasPrefix predicate on the "last_order_time" field.
func LastOrderTimeHasPrefix(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldHasPrefix(FieldLastOrderTime, v))
}

// LastOrderTimeHasSuffix applies the HasSuffix predicate on the "last_order_time" field.
func LastOrderTimeHasSuffix(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldHasSuffix(FieldLastOrderTime, v))
}

// LastOrderTimeIsNil applies the IsNil predicate on the "last_order_time" field.
func LastOrderTimeIsNil() predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldIsNull(FieldLastOrderTime))
}

// LastOrderTimeNotNil applies the NotNil predicate on the "last_order_time" field.
func LastOrderTimeNotNil() predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNotNull(FieldLastOrderTime))
}

// LastOrderTimeEqualFold applies the EqualFold predicate on the "last_order_time" field.
func LastOrderTimeEqualFold(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEqualFold(FieldLastOrderTime, v))
}

// LastOrderTimeContainsFold applies the ContainsFold predicate on the "last_order_time" field.
func LastOrderTimeContainsFold(v string) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldContainsFold(FieldLastOrderTime, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.OpeningHour {
	return predicate.OpeningHour(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OpeningHour) predicate.OpeningHour {
	return predicate.OpeningHour(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OpeningHour) predicate.OpeningHour {
	return predicate.OpeningHour(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OpeningHour) predicate.OpeningHour {
	return predicate.OpeningHour(sql.NotPredicates(p))
}
