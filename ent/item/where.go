// Code generated by ent, DO NOT EDIT.

package item

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldBusinessID, v))
}

// OwnerUserID applies equality check predicate on the "owner_user_id" field. It's identical to OwnerUserIDEQ.
func OwnerUserID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldOwnerUserID, v))
}

// MenuID applies equality check predicate on the "menu_id" field. It's identical to MenuIDEQ.
func MenuID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMenuID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCategoryID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDescription, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldPrice, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCost, v))
}

// PreparationTimeMinutes applies equality check predicate on the "preparation_time_minutes" field. It's identical to PreparationTimeMinutesEQ.
func PreparationTimeMinutes(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldPreparationTimeMinutes, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDurationMinutes, v))
}

// IsSchedulable applies equality check predicate on the "is_schedulable" field. It's identical to IsSchedulableEQ.
func IsSchedulable(v bool) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldIsSchedulable, v))
}

// MinScheduleHours applies equality check predicate on the "min_schedule_hours" field. It's identical to MinScheduleHoursEQ.
func MinScheduleHours(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMinScheduleHours, v))
}

// CancelableBeforeHours applies equality check predicate on the "cancelable_before_hours" field. It's identical to CancelableBeforeHoursEQ.
func CancelableBeforeHours(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCancelableBeforeHours, v))
}

// StockQuantity applies equality check predicate on the "stock_quantity" field. It's identical to StockQuantityEQ.
func StockQuantity(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldStockQuantity, v))
}

// AvailableFrom applies equality check predicate on the "available_from" field. It's identical to AvailableFromEQ.
func AvailableFrom(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAvailableFrom, v))
}

// AvailableTo applies equality check predicate on the "available_to" field. It's identical to AvailableToEQ.
func AvailableTo(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAvailableTo, v))
}

// TimesOrdered applies equality check predicate on the "times_ordered" field. It's identical to TimesOrderedEQ.
func TimesOrdered(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldTimesOrdered, v))
}

// TimesDelivered applies equality check predicate on the "times_delivered" field. It's identical to TimesDeliveredEQ.
func TimesDelivered(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldTimesDelivered, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldBusinessID, v))
}

// BusinessIDContains applies the Contains predicate on the "business_id" field.
func BusinessIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldBusinessID, v))
}

// BusinessIDHasPrefix applies the HasPrefix predicate on the "business_id" field.
func BusinessIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldBusinessID, v))
}

// BusinessIDHasSuffix applies the HasSuffix predicate on the "business_id" field.
func BusinessIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldBusinessID, v))
}

// BusinessIDEqualFold applies the EqualFold predicate on the "business_id" field.
func BusinessIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldBusinessID, v))
}

// BusinessIDContainsFold applies the ContainsFold predicate on the "business_id" field.
func BusinessIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldBusinessID, v))
}

// OwnerUserIDEQ applies the EQ predicate on the "owner_user_id" field.
func OwnerUserIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldOwnerUserID, v))
}

// OwnerUserIDNEQ applies the NEQ predicate on the "owner_user_id" field.
func OwnerUserIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldOwnerUserID, v))
}

// OwnerUserIDIn applies the In predicate on the "owner_user_id" field.
func OwnerUserIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDNotIn applies the NotIn predicate on the "owner_user_id" field.
func OwnerUserIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDGT applies the GT predicate on the "owner_user_id" field.
func OwnerUserIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldOwnerUserID, v))
}

// OwnerUserIDGTE applies the GTE predicate on the "owner_user_id" field.
func OwnerUserIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldOwnerUserID, v))
}

// OwnerUserIDLT applies the LT predicate on the "owner_user_id" field.
func OwnerUserIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldOwnerUserID, v))
}

// OwnerUserIDLTE applies the LTE predicate on the "owner_user_id" field.
func OwnerUserIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldOwnerUserID, v))
}

// OwnerUserIDContains applies the Contains predicate on the "owner_user_id" field.
func OwnerUserIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldOwnerUserID, v))
}

// OwnerUserIDHasPrefix applies the HasPrefix predicate on the "owner_user_id" field.
func OwnerUserIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldOwnerUserID, v))
}

// OwnerUserIDHasSuffix applies the HasSuffix predicate on the "owner_user_id" field.
func OwnerUserIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldOwnerUserID, v))
}

// OwnerUserIDIsNil applies the IsNil predicate on the "owner_user_id" field.
func OwnerUserIDIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldOwnerUserID))
}

// OwnerUserIDNotNil applies the NotNil predicate on the "owner_user_id" field.
func OwnerUserIDNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldOwnerUserID))
}

// OwnerUserIDEqualFold applies the EqualFold predicate on the "owner_user_id" field.
func OwnerUserIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldOwnerUserID, v))
}

// OwnerUserIDContainsFold applies the ContainsFold predicate on the "owner_user_id" field.
func OwnerUserIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldOwnerUserID, v))
}

// MenuIDEQ applies the EQ predicate on the "menu_id" field.
func MenuIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMenuID, v))
}

// MenuIDNEQ applies the NEQ predicate on the "menu_id" field.
func MenuIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldMenuID, v))
}

// MenuIDIn applies the In predicate on the "menu_id" field.
func MenuIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldMenuID, vs...))
}

// MenuIDNotIn applies the NotIn predicate on the "menu_id" field.
func MenuIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldMenuID, vs...))
}

// MenuIDGT applies the GT predicate on the "menu_id" field.
func MenuIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldMenuID, v))
}

// MenuIDGTE applies the GTE predicate on the "menu_id" field.
func MenuIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldMenuID, v))
}

// MenuIDLT applies the LT predicate on the "menu_id" field.
func MenuIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldMenuID, v))
}

// MenuIDLTE applies the LTE predicate on the "menu_id" field.
func MenuIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldMenuID, v))
}

// MenuIDContains applies the Contains predicate on the "menu_id" field.
func MenuIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldMenuID, v))
}

// MenuIDHasPrefix applies the HasPrefix predicate on the "menu_id" field.
func MenuIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldMenuID, v))
}

// MenuIDHasSuffix applies the HasSuffix predicate on the "menu_id" field.
func MenuIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldMenuID, v))
}

// MenuIDIsNil applies the IsNil predicate on the "menu_id" field.
func MenuIDIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldMenuID))
}

// MenuIDNotNil applies the NotNil predicate on the "menu_id" field.
func MenuIDNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldMenuID))
}

// MenuIDEqualFold applies the EqualFold predicate on the "menu_id" field.
func MenuIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldMenuID, v))
}

// MenuIDContainsFold applies the ContainsFold predicate on the "menu_id" field.
func MenuIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldMenuID, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDIsNil applies the IsNil predicate on the "category_id" field.
func CategoryIDIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldCategoryID))
}

// CategoryIDNotNil applies the NotNil predicate on the "category_id" field.
func CategoryIDNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldCategoryID))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldCategoryID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldDescription, v))
}

// ItemTypeEQ applies the EQ predicate on the "item_type" field.
func ItemTypeEQ(v ItemType) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemType, v))
}

// ItemTypeNEQ applies the NEQ predicate on the "item_type" field.
func ItemTypeNEQ(v ItemType) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldItemType, v))
}

// ItemTypeIn applies the In predicate on the "item_type" field.
func ItemTypeIn(vs ...ItemType) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldItemType, vs...))
}

// ItemTypeNotIn applies the NotIn predicate on the "item_type" field.
func ItemTypeNotIn(vs ...ItemType) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldItemType, vs...))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldPrice, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v decimal.Decimal) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCost, v))
}

// CostIsNil applies the IsNil predicate on the "cost" field.
func CostIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldCost))
}

// CostNotNil applies the NotNil predicate on the "cost" field.
func CostNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldCost))
}

// PreparationTimeMinutesEQ applies the EQ predicate on the "preparation_time_minutes" field.
func PreparationTimeMinutesEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldPreparationTimeMinutes, v))
}

// PreparationTimeMinutesNEQ applies the NEQ predicate on the "preparation_time_minutes" field.
func PreparationTimeMinutesNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldPreparationTimeMinutes, v))
}

// PreparationTimeMinutesIn applies the In predicate on the "preparation_time_minutes" field.
func PreparationTimeMinutesIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldPreparationTimeMinutes, vs...))
}

// PreparationTimeMinutesNotIn applies the NotIn predicate on the "preparation_time_minutes" field.
func PreparationTimeMinutesNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldPreparationTimeMinutes, vs...))
}

// PreparationTimeMinutesGT applies the GT predicate on the "preparation_time_minutes" field.
func PreparationTimeMinutesGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldPreparationTimeMinutes, v))
}

// PreparationTimeMinutesGTE applies the GTE predicate on the "preparation_time_minutes" field.
func PreparationTimeMinutesGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldPreparationTimeMinutes, v))
}

// PreparationTimeMinutesLT applies the LT predicate on the "preparation_time_minutes" field.
func PreparationTimeMinutesLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldPreparationTimeMinutes, v))
}

// PreparationTimeMinutesLTE applies the LTE predicate on the "preparation_time_minutes" field.
func PreparationTimeMinutesLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldPreparationTimeMinutes, v))
}

// PreparationTimeMinutesIsNil applies the IsNil predicate on the "preparation_time_minutes" field.
func PreparationTimeMinutesIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldPreparationTimeMinutes))
}

// PreparationTimeMinutesNotNil applies the NotNil predicate on the "preparation_time_minutes" field.
func PreparationTimeMinutesNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldPreparationTimeMinutes))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDurationMinutes, v))
}

// DurationMinutesIsNil applies the IsNil predicate on the "duration_minutes" field.
func DurationMinutesIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldDurationMinutes))
}

// DurationMinutesNotNil applies the NotNil predicate on the "duration_minutes" field.
func DurationMinutesNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldDurationMinutes))
}

// IsSchedulableEQ applies the EQ predicate on the "is_schedulable" field.
func IsSchedulableEQ(v bool) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldIsSchedulable, v))
}

// IsSchedulableNEQ applies the NEQ predicate on the "is_schedulable" field.
func IsSchedulableNEQ(v bool) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldIsSchedulable, v))
}

// MinScheduleHoursEQ applies the EQ predicate on the "min_schedule_hours" field.
func MinScheduleHoursEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMinScheduleHours, v))
}

// MinScheduleHoursNEQ applies the NEQ predicate on the "min_schedule_hours" field.
func MinScheduleHoursNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldMinScheduleHours, v))
}

// MinScheduleHoursIn applies the In predicate on the "min_schedule_hours" field.
func MinScheduleHoursIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldMinScheduleHours, vs...))
}

// MinScheduleHoursNotIn applies the NotIn predicate on the "min_schedule_hours" field.
func MinScheduleHoursNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldMinScheduleHours, vs...))
}

// MinScheduleHoursGT applies the GT predicate on the "min_schedule_hours" field.
func MinScheduleHoursGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldMinScheduleHours, v))
}

// MinScheduleHoursGTE applies the GTE predicate on the "min_schedule_hours" field.
func MinScheduleHoursGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldMinScheduleHours, v))
}

// MinScheduleHoursLT applies the LT predicate on the "min_schedule_hours" field.
func MinScheduleHoursLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldMinScheduleHours, v))
}

// MinScheduleHoursLTE applies the LTE predicate on the "min_schedule_hours" field.
func MinScheduleHoursLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldMinScheduleHours, v))
}

// CancelableBeforeHoursEQ applies the EQ predicate on the "cancelable_before_hours" field.
func CancelableBeforeHoursEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCancelableBeforeHours, v))
}

// CancelableBeforeHoursNEQ applies the NEQ predicate on the "cancelable_before_hours" field.
func CancelableBeforeHoursNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCancelableBeforeHours, v))
}

// CancelableBeforeHoursIn applies the In predicate on the "cancelable_before_hours" field.
func CancelableBeforeHoursIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCancelableBeforeHours, vs...))
}

// CancelableBeforeHoursNotIn applies the NotIn predicate on the "cancelable_before_hours" field.
func CancelableBeforeHoursNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCancelableBeforeHours, vs...))
}

// CancelableBeforeHoursGT applies the GT predicate on the "cancelable_before_hours" field.
func CancelableBeforeHoursGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCancelableBeforeHours, v))
}

// CancelableBeforeHoursGTE applies the GTE predicate on the "cancelable_before_hours" field.
func CancelableBeforeHoursGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCancelableBeforeHours, v))
}

// CancelableBeforeHoursLT applies the LT predicate on the "cancelable_before_hours" field.
func CancelableBeforeHoursLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCancelableBeforeHours, v))
}

// CancelableBeforeHoursLTE applies the LTE predicate on the "cancelable_before_hours" field.
func CancelableBeforeHoursLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCancelableBeforeHours, v))
}

// CancelableBeforeHoursIsNil applies the IsNil predicate on the "cancelable_before_hours" field.
func CancelableBeforeHoursIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldCancelableBeforeHours))
}

// CancelableBeforeHoursNotNil applies the NotNil predicate on the "cancelable_before_hours" field.
func CancelableBeforeHoursNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldCancelableBeforeHours))
}

// StockQuantityEQ applies the EQ predicate on the "stock_quantity" field.
func StockQuantityEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldStockQuantity, v))
}

// StockQuantityNEQ applies the NEQ predicate on the "stock_quantity" field.
func StockQuantityNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldStockQuantity, v))
}

// StockQuantityIn applies the In predicate on the "stock_quantity" field.
func StockQuantityIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldStockQuantity, vs...))
}

// StockQuantityNotIn applies the NotIn predicate on the "stock_quantity" field.
func StockQuantityNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldStockQuantity, vs...))
}

// StockQuantityGT applies the GT predicate on the "stock_quantity" field.
func StockQuantityGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldStockQuantity, v))
}

// StockQuantityGTE applies the GTE predicate on the "stock_quantity" field.
func StockQuantityGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldStockQuantity, v))
}

// StockQuantityLT applies the LT predicate on the "stock_quantity" field.
func StockQuantityLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldStockQuantity, v))
}

// StockQuantityLTE applies the LTE predicate on the "stock_quantity" field.
func StockQuantityLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldStockQuantity, v))
}

// StockQuantityIsNil applies the IsNil predicate on the "stock_quantity" field.
func StockQuantityIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldStockQuantity))
}

// StockQuantityNotNil applies the NotNil predicate on the "stock_quantity" field.
func StockQuantityNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldStockQuantity))
}

// AvailabilityEQ applies the EQ predicate on the "availability" field.
func AvailabilityEQ(v Availability) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAvailability, v))
}

// AvailabilityNEQ applies the NEQ predicate on the "availability" field.
func AvailabilityNEQ(v Availability) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldAvailability, v))
}

// AvailabilityIn applies the In predicate on the "availability" field.
func AvailabilityIn(vs ...Availability) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldAvailability, vs...))
}

// AvailabilityNotIn applies the NotIn predicate on the "availability" field.
func AvailabilityNotIn(vs ...Availability) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldAvailability, vs...))
}

// DaysAvailableIsNil applies the IsNil predicate on the "days_available" field.
func DaysAvailableIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldDaysAvailable))
}

// DaysAvailableNotNil applies the NotNil predicate on the "days_available" field.
func DaysAvailableNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldDaysAvailable))
}

// AvailableFromEQ applies the EQ predicate on the "available_from" field.
func AvailableFromEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAvailableFrom, v))
}

// AvailableFromNEQ applies the NEQ predicate on the "available_from" field.
func AvailableFromNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldAvailableFrom, v))
}

// AvailableFromIn applies the In predicate on the "available_from" field.
func AvailableFromIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldAvailableFrom, vs...))
}

// AvailableFromNotIn applies the NotIn predicate on the "available_from" field.
func AvailableFromNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldAvailableFrom, vs...))
}

// AvailableFromGT applies the GT predicate on the "available_from" field.
func AvailableFromGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldAvailableFrom, v))
}

// AvailableFromGTE applies the GTE predicate on the "available_from" field.
func AvailableFromGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldAvailableFrom, v))
}

// AvailableFromLT applies the LT predicate on the "available_from" field.
func AvailableFromLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldAvailableFrom, v))
}

// AvailableFromLTE applies the LTE predicate on the "available_from" field.
func AvailableFromLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldAvailableFrom, v))
}

// AvailableFromContains applies the Contains predicate on the "available_from" field.
func AvailableFromContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldAvailableFrom, v))
}

// AvailableFromHasPrefix applies the HasPrefix predicate on the "available_from" field.
func AvailableFromHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldAvailableFrom, v))
}

// AvailableFromHasSuffix applies the HasSuffix predicate on the "available_from" field.
func AvailableFromHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldAvailableFrom, v))
}

// AvailableFromIsNil applies the IsNil predicate on the "available_from" field.
func AvailableFromIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldAvailableFrom))
}

// AvailableFromNotNil applies the NotNil predicate on the "available_from" field.
func AvailableFromNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldAvailableFrom))
}

// AvailableFromEqualFold applies the EqualFold predicate on the "available_from" field.
func AvailableFromEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldAvailableFrom, v))
}

// AvailableFromContainsFold applies the ContainsFold predicate on the "available_from" field.
func AvailableFromContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldAvailableFrom, v))
}

// AvailableToEQ applies the EQ predicate on the "available_to" field.
func AvailableToEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAvailableTo, v))
}

// AvailableToNEQ applies the NEQ predicate on the "available_to" field.
func AvailableToNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldAvailableTo, v))
}

// AvailableToIn applies the In predicate on the "available_to" field.
func AvailableToIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldAvailableTo, vs...))
}

// AvailableToNotIn applies the NotIn predicate on the "available_to" field.
func AvailableToNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldAvailableTo, vs...))
}

// AvailableToGT applies the GT predicate on the "available_to" field.
func AvailableToGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldAvailableTo, v))
}

// AvailableToGTE applies the GTE predicate on the "available_to" field.
func AvailableToGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldAvailableTo, v))
}

// AvailableToLT applies the LT predicate on the "available_to" field.
func AvailableToLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldAvailableTo, v))
}

// AvailableToLTE applies the LTE predicate on the "available_to" field.
func AvailableToLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldAvailableTo, v))
}

// AvailableToContains applies the Contains predicate on the "available_to" field.
func AvailableToContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldAvailableTo, v))
}

// AvailableToHasPrefix applies the HasPrefix predicate on the "available_to" field.
func AvailableToHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldAvailableTo, v))
}

// AvailableToHasSuffix applies the HasSuffix predicate on the "available_to" field.
func AvailableToHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldAvailableTo, v))
}

// AvailableToIsNil applies the IsNil predicate on the "available_to" field.
func AvailableToIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldAvailableTo))
}

// AvailableToNotNil applies the NotNil predicate on the "available_to" field.
func AvailableToNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldAvailableTo))
}

// AvailableToEqualFold applies the EqualFold predicate on the "available_to" field.
func AvailableToEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldAvailableTo, v))
}

// AvailableToContainsFold applies the ContainsFold predicate on the "available_to" field.
func AvailableToContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldAvailableTo, v))
}

// TimesOrderedEQ applies the EQ predicate on the "times_ordered" field.
func TimesOrderedEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldTimesOrdered, v))
}

// TimesOrderedNEQ applies the NEQ predicate on the "times_ordered" field.
func TimesOrderedNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldTimesOrdered, v))
}

// TimesOrderedIn applies the In predicate on the "times_ordered" field.
func TimesOrderedIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldTimesOrdered, vs...))
}

// TimesOrderedNotIn applies the NotIn predicate on the "times_ordered" field.
func TimesOrderedNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldTimesOrdered, vs...))
}

// TimesOrderedGT applies the GT predicate on the "times_ordered" field.
func TimesOrderedGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldTimesOrdered, v))
}

// TimesOrderedGTE applies the GTE predicate on the "times_ordered" field.
func TimesOrderedGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldTimesOrdered, v))
}

// TimesOrderedLT applies the LT predicate on the "times_ordered" field.
func TimesOrderedLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldTimesOrdered, v))
}

// TimesOrderedLTE applies the LTE predicate on the "times_ordered" field.
func TimesOrderedLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldTimesOrdered, v))
}

// TimesDeliveredEQ applies the EQ predicate on the "times_delivered" field.
func TimesDeliveredEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldTimesDelivered, v))
}

// TimesDeliveredNEQ applies the NEQ predicate on the "times_delivered" field.
func TimesDeliveredNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldTimesDelivered, v))
}

// TimesDeliveredIn applies the In predicate on the "times_delivered" field.
func TimesDeliveredIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldTimesDelivered, vs...))
}

// TimesDeliveredNotIn applies the NotIn predicate on the "times_delivered" field.
func TimesDeliveredNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldTimesDelivered, vs...))
}

// TimesDeliveredGT applies the GT predicate on the "times_delivered" field.
func TimesDeliveredGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldTimesDelivered, v))
}

// TimesDeliveredGTE applies the GTE predicate on the "times_delivered" field.
func TimesDeliveredGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldTimesDelivered, v))
}

// TimesDeliveredLT applies the LT predicate on the "times_delivered" field.
func TimesDeliveredLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldTimesDelivered, v))
}

// TimesDeliveredLTE applies the LTE predicate on the "times_delivered" field.
func TimesDeliveredLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldTimesDelivered, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Item) predicate.Item {
	return predicate.Item(sql.NotPredicates(p))
}
