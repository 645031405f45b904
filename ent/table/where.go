// Code generated by ent, DO NOT EDIT.

package table

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vendrahq/vendra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Table {
	return predicate.Table(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Table {
	return predicate.Table(sql.FieldContainsFold(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v string) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldBusinessID, v))
}

// OwnerUserID applies equality check predicate on the "owner_user_id" field. It's identical to OwnerUserIDEQ.
func OwnerUserID(v string) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldOwnerUserID, v))
}

// TableNumber applies equality check predicate on the "table_number" field. It's identical to TableNumberEQ.
func TableNumber(v int) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldTableNumber, v))
}

// MinSeats applies equality check predicate on the "min_seats" field. It's identical to MinSeatsEQ.
func MinSeats(v int) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldMinSeats, v))
}

// MaxSeats applies equality check predicate on the "max_seats" field. It's identical to MaxSeatsEQ.
func MaxSeats(v int) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldMaxSeats, v))
}

// PositionLabel applies equality check predicate on the "position_label" field. It's identical to PositionLabelEQ.
func PositionLabel(v string) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldPositionLabel, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v string) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v string) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...string) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...string) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v string) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v string) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v string) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v string) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldBusinessID, v))
}

// BusinessIDContains applies the Contains predicate on the "business_id" field.
func BusinessIDContains(v string) predicate.Table {
	return predicate.Table(sql.FieldContains(FieldBusinessID, v))
}

// BusinessIDHasPrefix applies the HasPrefix predicate on the "business_id" field.
func BusinessIDHasPrefix(v string) predicate.Table {
	return predicate.Table(sql.FieldHasPrefix(FieldBusinessID, v))
}

// BusinessIDHasSuffix applies the HasSuffix predicate on the "business_id" field.
func BusinessIDHasSuffix(v string) predicate.Table {
	return predicate.Table(sql.FieldHasSuffix(FieldBusinessID, v))
}

// BusinessIDEqualFold applies the EqualFold predicate on the "business_id" field.
func BusinessIDEqualFold(v string) predicate.Table {
	return predicate.Table(sql.FieldEqualFold(FieldBusinessID, v))
}

// BusinessIDContainsFold applies the ContainsFold predicate on the "business_id" field.
func BusinessIDContainsFold(v string) predicate.Table {
	return predicate.Table(sql.FieldContainsFold(FieldBusinessID, v))
}

// OwnerUserIDEQ applies the EQ predicate on the "owner_user_id" field.
func OwnerUserIDEQ(v string) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldOwnerUserID, v))
}

// OwnerUserIDNEQ applies the NEQ predicate on the "owner_user_id" field.
func OwnerUserIDNEQ(v string) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldOwnerUserID, v))
}

// OwnerUserIDIn applies the In predicate on the "owner_user_id" field.
func OwnerUserIDIn(vs ...string) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDNotIn applies the NotIn predicate on the "owner_user_id" field.
func OwnerUserIDNotIn(vs ...string) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDGT applies the GT predicate on the "owner_user_id" field.
func OwnerUserIDGT(v string) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldOwnerUserID, v))
}

// OwnerUserIDGTE applies the GTE predicate on the "owner_user_id" field.
func OwnerUserIDGTE(v string) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldOwnerUserID, v))
}

// OwnerUserIDLT applies the LT predicate on the "owner_user_id" field.
func OwnerUserIDLT(v string) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldOwnerUserID, v))
}

// OwnerUserIDLTE applies the LTE predicate on the "owner_user_id" field.
func OwnerUserIDLTE(v string) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldOwnerUserID, v))
}

// OwnerUserIDContains applies the Contains predicate on the "owner_user_id" field.
func OwnerUserIDContains(v string) predicate.Table {
	return predicate.Table(sql.FieldContains(FieldOwnerUserID, v))
}

// OwnerUserIDHasPrefix applies the HasPrefix predicate on the "owner_user_id" field.
func OwnerUserIDHasPrefix(v string) predicate.Table {
	return predicate.Table(sql.FieldHasPrefix(FieldOwnerUserID, v))
}

// OwnerUserIDHasSuffix applies the HasSuffix predicate on the "owner_user_id" field.
func OwnerUserIDHasSuffix(v string) predicate.Table {
	return predicate.Table(sql.FieldHasSuffix(FieldOwnerUserID, v))
}

// OwnerUserIDEqualFold applies the EqualFold predicate on the "owner_user_id" field.
func OwnerUserIDEqualFold(v string) predicate.Table {
	return predicate.Table(sql.FieldEqualFold(FieldOwnerUserID, v))
}

// OwnerUserIDContainsFold applies the ContainsFold predicate on the "owner_user_id" field.
func OwnerUserIDContainsFold(v string) predicate.Table {
	return predicate.Table(sql.FieldContainsFold(FieldOwnerUserID, v))
}

// TableNumberEQ applies the EQ predicate on the "table_number" field.
func TableNumberEQ(v int) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldTableNumber, v))
}

// TableNumberNEQ applies the NEQ predicate on the "table_number" field.
func TableNumberNEQ(v int) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldTableNumber, v))
}

// TableNumberIn applies the In predicate on the "table_number" field.
func TableNumberIn(vs ...int) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldTableNumber, vs...))
}

// TableNumberNotIn applies the NotIn predicate on the "table_number" field.
func TableNumberNotIn(vs ...int) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldTableNumber, vs...))
}

// TableNumberGT applies the GT predicate on the "table_number" field.
func TableNumberGT(v int) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldTableNumber, v))
}

// TableNumberGTE applies the GTE predicate on the "table_number" field.
func TableNumberGTE(v int) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldTableNumber, v))
}

// TableNumberLT applies the LT predicate on the "table_number" field.
func TableNumberLT(v int) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldTableNumber, v))
}

// TableNumberLTE applies the LTE predicate on the "table_number" field.
func TableNumberLTE(v int) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldTableNumber, v))
}

// MinSeatsEQ applies the EQ predicate on the "min_seats" field.
func MinSeatsEQ(v int) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldMinSeats, v))
}

// MinSeatsNEQ applies the NEQ predicate on the "min_seats" field.
func MinSeatsNEQ(v int) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldMinSeats, v))
}

// MinSeatsIn applies the In predicate on the "min_seats" field.
func MinSeatsIn(vs ...int) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldMinSeats, vs...))
}

// MinSeatsNotIn applies the NotIn predicate on the "min_seats" field.
func MinSeatsNotIn(vs ...int) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldMinSeats, vs...))
}

// MinSeatsGT applies the GT predicate on the "min_seats" field.
func MinSeatsGT(v int) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldMinSeats, v))
}

// MinSeatsGTE applies the GTE predicate on the "min_seats" field.
func MinSeatsGTE(v int) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldMinSeats, v))
}

// MinSeatsLT applies the LT predicate on the "min_seats" field.
func MinSeatsLT(v int) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldMinSeats, v))
}

// MinSeatsLTE applies the LTE predicate on the "min_seats" field.
func MinSeatsLTE(v int) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldMinSeats, v))
}

// MaxSeatsEQ applies the EQ predicate on the "max_seats" field.
func MaxSeatsEQ(v int) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldMaxSeats, v))
}

// MaxSeatsNEQ applies the NEQ predicate on the "max_seats" field.
func MaxSeatsNEQ(v int) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldMaxSeats, v))
}

// MaxSeatsIn applies the In predicate on the "max_seats" field.
func MaxSeatsIn(vs ...int) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldMaxSeats, vs...))
}

// MaxSeatsNotIn applies the NotIn predicate on the "max_seats" field.
func MaxSeatsNotIn(vs ...int) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldMaxSeats, vs...))
}

// MaxSeatsGT applies the GT predicate on the "max_seats" field.
func MaxSeatsGT(v int) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldMaxSeats, v))
}

// MaxSeatsGTE applies the GTE predicate on the "max_seats" field.
func MaxSeatsGTE(v int) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldMaxSeats, v))
}

// MaxSeatsLT applies the LT predicate on the "max_seats" field.
func MaxSeatsLT(v int) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldMaxSeats, v))
}

// MaxSeatsLTE applies the LTE predicate on the "max_seats" field.
func MaxSeatsLTE(v int) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldMaxSeats, v))
}

// PositionLabelEQ applies the EQ predicate on the "position_label" field.
func PositionLabelEQ(v string) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldPositionLabel, v))
}

// PositionLabelNEQ applies the NEQ predicate on the "position_label" field.
func PositionLabelNEQ(v string) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldPositionLabel, v))
}

// PositionLabelIn applies the In predicate on the "position_label" field.
func PositionLabelIn(vs ...string) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldPositionLabel, vs...))
}

// PositionLabelNotIn applies the NotIn predicate on the "position_label" field.
func PositionLabelNotIn(vs ...string) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldPositionLabel, vs...))
}

// PositionLabelGT applies the GT predicate on the "position_label" field.
func PositionLabelGT(v string) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldPositionLabel, v))
}

// PositionLabelGTE applies the GTE predicate on the "position_label" field.
func PositionLabelGTE(v string) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldPositionLabel, v))
}

// PositionLabelLT applies the LT predicate on the "position_label" field.
func PositionLabelLT(v string) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldPositionLabel, v))
}

// PositionLabelLTE applies the LTE predicate on the "position_label" field.
func PositionLabelLTE(v string) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldPositionLabel, v))
}

// PositionLabelContains applies the Contains predicate on the "position_label" field.
func PositionLabelContains(v string) predicate.Table {
	return predicate.Table(sql.FieldContains(FieldPositionLabel, v))
}

// PositionLabelHasPrefix applies the HasPrefix predicate on the "position_label" field.
func PositionLabelHasPrefix(v string) predicate.Table {
	return predicate.Table(sql.FieldHasPrefix(FieldPositionLabel, v))
}

// PositionLabelHasSuffix applies the HasSuffix predicate on the "position_label" field.
func PositionLabelHasSuffix(v string) predicate.Table {
	return predicate.Table(sql.FieldHasSuffix(FieldPositionLabel, v))
}

// PositionLabelIsNil applies the IsNil predicate on the "position_label" field.
func PositionLabelIsNil() predicate.Table {
	return predicate.Table(sql.FieldIsNull(FieldPositionLabel))
}

// PositionLabelNotNil applies the NotNil predicate on the "position_label" field.
func PositionLabelNotNil() predicate.Table {
	return predicate.Table(sql.FieldNotNull(FieldPositionLabel))
}

// PositionLabelEqualFold applies the EqualFold predicate on the "position_label" field.
func PositionLabelEqualFold(v string) predicate.Table {
	return predicate.Table(sql.FieldEqualFold(FieldPositionLabel, v))
}

// PositionLabelContainsFold applies the ContainsFold predicate on the "position_label" field.
func PositionLabelContainsFold(v string) predicate.Table {
	return predicate.Table(sql.FieldContainsFold(FieldPositionLabel, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Table) predicate.Table {
	return predicate.Table(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Table) predicate.Table {
	return predicate.Table(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Table) predicate.Table {
	return predicate.Table(sql.NotPredicates(p))
}
