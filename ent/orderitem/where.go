// Code generated by ent, DO NOT EDIT.

package orderitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldID, id))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldOrderID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldItemID, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldQuantity, v))
}

// PriceAtTime applies equality check predicate on the "price_at_time" field. It's identical to PriceAtTimeEQ.
func PriceAtTime(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldPriceAtTime, v))
}

// CostAtTime applies equality check predicate on the "cost_at_time" field. It's identical to CostAtTimeEQ.
func CostAtTime(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldCostAtTime, v))
}

// NameAtTime applies equality check predicate on the "name_at_time" field. It's identical to NameAtTimeEQ.
func NameAtTime(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldNameAtTime, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldCreatedAt, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDContains applies the Contains predicate on the "order_id" field.
func OrderIDContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldOrderID, v))
}

// OrderIDHasPrefix applies the HasPrefix predicate on the "order_id" field.
func OrderIDHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldOrderID, v))
}

// OrderIDHasSuffix applies the HasSuffix predicate on the "order_id" field.
func OrderIDHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldOrderID, v))
}

// OrderIDEqualFold applies the EqualFold predicate on the "order_id" field.
func OrderIDEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldOrderID, v))
}

// OrderIDContainsFold applies the ContainsFold predicate on the "order_id" field.
func OrderIDContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldOrderID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldItemID, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldQuantity, v))
}

// PriceAtTimeEQ applies the EQ predicate on the "price_at_time" field.
func PriceAtTimeEQ(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldPriceAtTime, v))
}

// PriceAtTimeNEQ applies the NEQ predicate on the "price_at_time" field.
func PriceAtTimeNEQ(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldPriceAtTime, v))
}

// PriceAtTimeIn applies the In predicate on the "price_at_time" field.
func PriceAtTimeIn(vs ...decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldPriceAtTime, vs...))
}

// PriceAtTimeNotIn applies the NotIn predicate on the "price_at_time" field.
func PriceAtTimeNotIn(vs ...decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldPriceAtTime, vs...))
}

// PriceAtTimeGT applies the GT predicate on the "price_at_time" field.
func PriceAtTimeGT(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldPriceAtTime, v))
}

// PriceAtTimeGTE applies the GTE predicate on the "price_at_time" field.
func PriceAtTimeGTE(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldPriceAtTime, v))
}

// PriceAtTimeLT applies the LT predicate on the "price_at_time" field.
func PriceAtTimeLT(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldPriceAtTime, v))
}

// PriceAtTimeLTE applies the LTE predicate on the "price_at_time" field.
func PriceAtTimeLTE(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldPriceAtTime, v))
}

// CostAtTimeEQ applies the EQ predicate on the "cost_at_time" field.
func CostAtTimeEQ(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldCostAtTime, v))
}

// CostAtTimeNEQ applies the NEQ predicate on the "cost_at_time" field.
func CostAtTimeNEQ(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldCostAtTime, v))
}

// CostAtTimeIn applies the In predicate on the "cost_at_time" field.
func CostAtTimeIn(vs ...decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldCostAtTime, vs...))
}

// CostAtTimeNotIn applies the NotIn predicate on the "cost_at_time" field.
func CostAtTimeNotIn(vs ...decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldCostAtTime, vs...))
}

// CostAtTimeGT applies the GT predicate on the "cost_at_time" field.
func CostAtTimeGT(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldCostAtTime, v))
}

// CostAtTimeGTE applies the GTE predicate on the "cost_at_time" field.
func CostAtTimeGTE(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldCostAtTime, v))
}

// CostAtTimeLT applies the LT predicate on the "cost_at_time" field.
func CostAtTimeLT(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldCostAtTime, v))
}

// CostAtTimeLTE applies the LTE predicate on the "cost_at_time" field.
func CostAtTimeLTE(v decimal.Decimal) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldCostAtTime, v))
}

// CostAtTimeIsNil applies the IsNil predicate on the "cost_at_time" field.
func CostAtTimeIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldCostAtTime))
}

// CostAtTimeNotNil applies the NotNil predicate on the "cost_at_time" field.
func CostAtTimeNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldCostAtTime))
}

// NameAtTimeEQ applies the EQ predicate on the "name_at_time" field.
func NameAtTimeEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldNameAtTime, v))
}

// NameAtTimeNEQ applies the NEQ predicate on the "name_at_time" field.
func NameAtTimeNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldNameAtTime, v))
}

// NameAtTimeIn applies the In predicate on the "name_at_time" field.
func NameAtTimeIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldNameAtTime, vs...))
}

// NameAtTimeNotIn applies the NotIn predicate on the "name_at_time" field.
func NameAtTimeNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldNameAtTime, vs...))
}

// NameAtTimeGT applies the GT predicate on the "name_at_time" field.
func NameAtTimeGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldNameAtTime, v))
}

// NameAtTimeGTE applies the GTE predicate on the "name_at_time" field.
func NameAtTimeGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldNameAtTime, v))
}

// NameAtTimeLT applies the LT predicate on the "name_at_time" field.
func NameAtTimeLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldNameAtTime, v))
}

// NameAtTimeLTE applies the LTE predicate on the "name_at_time" field.
func NameAtTimeLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldNameAtTime, v))
}

// NameAtTimeContains applies the Contains predicate on the "name_at_time" field.
func NameAtTimeContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldNameAtTime, v))
}

// NameAtTimeHasPrefix applies the HasPrefix predicate on the "name_at_time" field.
func NameAtTimeHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldNameAtTime, v))
}

// NameAtTimeHasSuffix applies the HasSuffix predicate on the "name_at_time" field.
func NameAtTimeHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldNameAtTime, v))
}

// NameAtTimeEqualFold applies the EqualFold predicate on the "name_at_time" field.
func NameAtTimeEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldNameAtTime, v))
}

// NameAtTimeContainsFold applies the ContainsFold predicate on the "name_at_time" field.
func NameAtTimeContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldNameAtTime, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasOrder applies the HasEdge predicate on the "order" edge.
func HasOrder() predicate.OrderItem {
	return predicate.OrderItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrderTable, OrderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrderWith applies the HasEdge predicate on the "order" edge with a given conditions (other predicates).
func HasOrderWith(preds ...predicate.Order) predicate.OrderItem {
	return predicate.OrderItem(func(s *sql.Selector) {
		step := newOrderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrderItem) predicate.OrderItem {
	return predicate.OrderItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrderItem) predicate.OrderItem {
	return predicate.OrderItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrderItem) predicate.OrderItem {
	return predicate.OrderItem(sql.NotPredicates(p))
}
