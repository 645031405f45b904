// Code generated by ent, DO NOT EDIT.

package businessaddon

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldContainsFold(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEQ(FieldBusinessID, v))
}

// PriceOverride applies equality check predicate on the "price_override" field. It's identical to PriceOverrideEQ.
func PriceOverride(v decimal.Decimal) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEQ(FieldPriceOverride, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldLTE(FieldBusinessID, v))
}

// BusinessIDContains applies the Contains predicate on the "business_id" field.
func BusinessIDContains(v string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldContains(FieldBusinessID, v))
}

// BusinessIDHasPrefix applies the HasPrefix predicate on the "business_id" field.
func BusinessIDHasPrefix(v string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldHasPrefix(FieldBusinessID, v))
}

// BusinessIDHasSuffix applies the HasSuffix predicate on the "business_id" field.
func BusinessIDHasSuffix(v string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldHasSuffix(FieldBusinessID, v))
}

// BusinessIDEqualFold applies the EqualFold predicate on the "business_id" field.
func BusinessIDEqualFold(v string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEqualFold(FieldBusinessID, v))
}

// BusinessIDContainsFold applies the ContainsFold predicate on the "business_id" field.
func BusinessIDContainsFold(v string) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldContainsFold(FieldBusinessID, v))
}

// AddonKeyEQ applies the EQ predicate on the "addon_key" field.
func AddonKeyEQ(v AddonKey) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEQ(FieldAddonKey, v))
}

// AddonKeyNEQ applies the NEQ predicate on the "addon_key" field.
func AddonKeyNEQ(v AddonKey) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNEQ(FieldAddonKey, v))
}

// AddonKeyIn applies the In predicate on the "addon_key" field.
func AddonKeyIn(vs ...AddonKey) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldIn(FieldAddonKey, vs...))
}

// AddonKeyNotIn applies the NotIn predicate on the "addon_key" field.
func AddonKeyNotIn(vs ...AddonKey) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNotIn(FieldAddonKey, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNotIn(FieldStatus, vs...))
}

// PriceOverrideEQ applies the EQ predicate on the "price_override" field.
func PriceOverrideEQ(v decimal.Decimal) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEQ(FieldPriceOverride, v))
}

// PriceOverrideNEQ applies the NEQ predicate on the "price_override" field.
func PriceOverrideNEQ(v decimal.Decimal) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNEQ(FieldPriceOverride, v))
}

// PriceOverrideIn applies the In predicate on the "price_override" field.
func PriceOverrideIn(vs ...decimal.Decimal) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldIn(FieldPriceOverride, vs...))
}

// PriceOverrideNotIn applies the NotIn predicate on the "price_override" field.
func PriceOverrideNotIn(vs ...decimal.Decimal) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNotIn(FieldPriceOverride, vs...))
}

// PriceOverrideGT applies the GT predicate on the "price_override" field.
func PriceOverrideGT(v decimal.Decimal) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldGT(FieldPriceOverride, v))
}

// PriceOverrideGTE applies the GTE predicate on the "price_override" field.
func PriceOverrideGTE(v decimal.Decimal) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldGTE(FieldPriceOverride, v))
}

// PriceOverrideLT applies the LT predicate on the "price_override" field.
func PriceOverrideLT(v decimal.Decimal) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldLT(FieldPriceOverride, v))
}

// PriceOverrideLTE applies the LTE predicate on the "price_override" field.
func PriceOverrideLTE(v decimal.Decimal) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldLTE(FieldPriceOverride, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BusinessAddon) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BusinessAddon) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BusinessAddon) predicate.BusinessAddon {
	return predicate.BusinessAddon(sql.NotPredicates(p))
}
