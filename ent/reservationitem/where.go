// Code generated by ent, DO NOT EDIT.

package reservationitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldContainsFold(FieldID, id))
}

// ReservationID applies equality check predicate on the "reservation_id" field. It's identical to ReservationIDEQ.
func ReservationID(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldReservationID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldItemID, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldQuantity, v))
}

// PriceAtTime applies equality check predicate on the "price_at_time" field. It's identical to PriceAtTimeEQ.
func PriceAtTime(v decimal.Decimal) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldPriceAtTime, v))
}

// NameAtTime applies equality check predicate on the "name_at_time" field. It's identical to NameAtTimeEQ.
func NameAtTime(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldNameAtTime, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldCreatedAt, v))
}

// ReservationIDEQ applies the EQ predicate on the "reservation_id" field.
func ReservationIDEQ(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldReservationID, v))
}

// ReservationIDNEQ applies the NEQ predicate on the "reservation_id" field.
func ReservationIDNEQ(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNEQ(FieldReservationID, v))
}

// ReservationIDIn applies the In predicate on the "reservation_id" field.
func ReservationIDIn(vs ...string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldIn(FieldReservationID, vs...))
}

// ReservationIDNotIn applies the NotIn predicate on the "reservation_id" field.
func ReservationIDNotIn(vs ...string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNotIn(FieldReservationID, vs...))
}

// ReservationIDGT applies the GT predicate on the "reservation_id" field.
func ReservationIDGT(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGT(FieldReservationID, v))
}

// ReservationIDGTE applies the GTE predicate on the "reservation_id" field.
func ReservationIDGTE(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGTE(FieldReservationID, v))
}

// ReservationIDLT applies the LT predicate on the "reservation_id" field.
func ReservationIDLT(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLT(FieldReservationID, v))
}

// ReservationIDLTE applies the LTE predicate on the "reservation_id" field.
func ReservationIDLTE(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLTE(FieldReservationID, v))
}

// ReservationIDContains applies the Contains predicate on the "reservation_id" field.
func ReservationIDContains(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldContains(FieldReservationID, v))
}

// ReservationIDHasPrefix applies the HasPrefix predicate on the "reservation_id" field.
func ReservationIDHasPrefix(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldHasPrefix(FieldReservationID, v))
}

// ReservationIDHasSuffix applies the HasSuffix predicate on the "reservation_id" field.
func ReservationIDHasSuffix(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldHasSuffix(FieldReservationID, v))
}

// ReservationIDEqualFold applies the EqualFold predicate on the "reservation_id" field.
func ReservationIDEqualFold(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEqualFold(FieldReservationID, v))
}

// ReservationIDContainsFold applies the ContainsFold predicate on the "reservation_id" field.
func ReservationIDContainsFold(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldContainsFold(FieldReservationID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldContainsFold(FieldItemID, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLTE(FieldQuantity, v))
}

// PriceAtTimeEQ applies the EQ predicate on the "price_at_time" field.
func PriceAtTimeEQ(v decimal.Decimal) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldPriceAtTime, v))
}

// PriceAtTimeNEQ applies the NEQ predicate on the "price_at_time" field.
func PriceAtTimeNEQ(v decimal.Decimal) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNEQ(FieldPriceAtTime, v))
}

// PriceAtTimeIn applies the In predicate on the "price_at_time" field.
func PriceAtTimeIn(vs ...decimal.Decimal) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldIn(FieldPriceAtTime, vs...))
}

// PriceAtTimeNotIn applies the NotIn predicate on the "price_at_time" field.
func PriceAtTimeNotIn(vs ...decimal.Decimal) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNotIn(FieldPriceAtTime, vs...))
}

// PriceAtTimeGT applies the GT predicate on the "price_at_time" field.
func PriceAtTimeGT(v decimal.Decimal) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGT(FieldPriceAtTime, v))
}

// PriceAtTimeGTE applies the GTE predicate on the "price_at_time" field.
func PriceAtTimeGTE(v decimal.Decimal) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGTE(FieldPriceAtTime, v))
}

// PriceAtTimeLT applies the LT predicate on the "price_at_time" field.
func PriceAtTimeLT(v decimal.Decimal) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLT(FieldPriceAtTime, v))
}

// PriceAtTimeLTE applies the LTE predicate on the "price_at_time" field.
func PriceAtTimeLTE(v decimal.Decimal) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLTE(FieldPriceAtTime, v))
}

// NameAtTimeEQ applies the EQ predicate on the "name_at_time" field.
func NameAtTimeEQ(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldNameAtTime, v))
}

// NameAtTimeNEQ applies the NEQ predicate on the "name_at_time" field.
func NameAtTimeNEQ(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNEQ(FieldNameAtTime, v))
}

// NameAtTimeIn applies the In predicate on the "name_at_time" field.
func NameAtTimeIn(vs ...string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldIn(FieldNameAtTime, vs...))
}

// NameAtTimeNotIn applies the NotIn predicate on the "name_at_time" field.
func NameAtTimeNotIn(vs ...string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNotIn(FieldNameAtTime, vs...))
}

// NameAtTimeGT applies the GT predicate on the "name_at_time" field.
func NameAtTimeGT(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGT(FieldNameAtTime, v))
}

// NameAtTimeGTE applies the GTE predicate on the "name_at_time" field.
func NameAtTimeGTE(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGTE(FieldNameAtTime, v))
}

// NameAtTimeLT applies the LT predicate on the "name_at_time" field.
func NameAtTimeLT(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLT(FieldNameAtTime, v))
}

// NameAtTimeLTE applies the LTE predicate on the "name_at_time" field.
func NameAtTimeLTE(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLTE(FieldNameAtTime, v))
}

// NameAtTimeContains applies the Contains predicate on the "name_at_time" field.
func NameAtTimeContains(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldContains(FieldNameAtTime, v))
}

// NameAtTimeHasPrefix applies the HasPrefix predicate on the "name_at_time" field.
func NameAtTimeHasPrefix(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldHasPrefix(FieldNameAtTime, v))
}

// NameAtTimeHasSuffix applies the HasSuffix predicate on the "name_at_time" field.
func NameAtTimeHasSuffix(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldHasSuffix(FieldNameAtTime, v))
}

// NameAtTimeEqualFold applies the EqualFold predicate on the "name_at_time" field.
func NameAtTimeEqualFold(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEqualFold(FieldNameAtTime, v))
}

// NameAtTimeContainsFold applies the ContainsFold predicate on the "name_at_time" field.
func NameAtTimeContainsFold(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldContainsFold(FieldNameAtTime, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReservationItem {
	return predicate.ReservationItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasReservation applies the HasEdge predicate on the "reservation" edge.
func HasReservation() predicate.ReservationItem {
	return predicate.ReservationItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReservationTable, ReservationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReservationWith applies the HasEdge predicate on the "reservation" edge with a given conditions (other predicates).
func HasReservationWith(preds ...predicate.Reservation) predicate.ReservationItem {
	return predicate.ReservationItem(func(s *sql.Selector) {
		step := newReservationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReservationItem) predicate.ReservationItem {
	return predicate.ReservationItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReservationItem) predicate.ReservationItem {
	return predicate.ReservationItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReservationItem) predicate.ReservationItem {
	return predicate.ReservationItem(sql.NotPredicates(p))
}
