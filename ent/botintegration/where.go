// Code generated by ent, DO NOT EDIT.

package botintegration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vendrahq/vendra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldContainsFold(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldBusinessID, v))
}

// ProviderAccountID applies equality check predicate on the "provider_account_id" field. It's identical to ProviderAccountIDEQ.
func ProviderAccountID(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldProviderAccountID, v))
}

// AccessToken applies equality check predicate on the "access_token" field. It's identical to AccessTokenEQ.
func AccessToken(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldAccessToken, v))
}

// VerifyToken applies equality check predicate on the "verify_token" field. It's identical to VerifyTokenEQ.
func VerifyToken(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldVerifyToken, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLTE(FieldBusinessID, v))
}

// BusinessIDContains applies the Contains predicate on the "business_id" field.
func BusinessIDContains(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldContains(FieldBusinessID, v))
}

// BusinessIDHasPrefix applies the HasPrefix predicate on the "business_id" field.
func BusinessIDHasPrefix(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldHasPrefix(FieldBusinessID, v))
}

// BusinessIDHasSuffix applies the HasSuffix predicate on the "business_id" field.
func BusinessIDHasSuffix(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldHasSuffix(FieldBusinessID, v))
}

// BusinessIDEqualFold applies the EqualFold predicate on the "business_id" field.
func BusinessIDEqualFold(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEqualFold(FieldBusinessID, v))
}

// BusinessIDContainsFold applies the ContainsFold predicate on the "business_id" field.
func BusinessIDContainsFold(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldContainsFold(FieldBusinessID, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v Platform) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v Platform) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...Platform) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...Platform) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNotIn(FieldPlatform, vs...))
}

// ProviderAccountIDEQ applies the EQ predicate on the "provider_account_id" field.
func ProviderAccountIDEQ(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldProviderAccountID, v))
}

// ProviderAccountIDNEQ applies the NEQ predicate on the "provider_account_id" field.
func ProviderAccountIDNEQ(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNEQ(FieldProviderAccountID, v))
}

// ProviderAccountIDIn applies the In predicate on the "provider_account_id" field.
func ProviderAccountIDIn(vs ...string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldIn(FieldProviderAccountID, vs...))
}

// ProviderAccountIDNotIn applies the NotIn predicate on the "provider_account_id" field.
func ProviderAccountIDNotIn(vs ...string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNotIn(FieldProviderAccountID, vs...))
}

// ProviderAccountIDGT applies the GT predicate on the "provider_account_id" field.
func ProviderAccountIDGT(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGT(FieldProviderAccountID, v))
}

// ProviderAccountIDGTE applies the GTE predicate on the "provider_account_id" field.
func ProviderAccountIDGTE(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGTE(FieldProviderAccountID, v))
}

// ProviderAccountIDLT applies the LT predicate on the "provider_account_id" field.
func ProviderAccountIDLT(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLT(FieldProviderAccountID, v))
}

// ProviderAccountIDLTE applies the LTE predicate on the "provider_account_id" field.
func ProviderAccountIDLTE(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLTE(FieldProviderAccountID, v))
}

// ProviderAccountIDContains applies the Contains predicate on the "provider_account_id" field.
func ProviderAccountIDContains(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldContains(FieldProviderAccountID, v))
}

// ProviderAccountIDHasPrefix applies the HasPrefix predicate on the "provider_account_id" field.
func ProviderAccountIDHasPrefix(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldHasPrefix(FieldProviderAccountID, v))
}

// ProviderAccountIDHasSuffix applies the HasSuffix predicate on the "provider_account_id" field.
func ProviderAccountIDHasSuffix(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldHasSuffix(FieldProviderAccountID, v))
}

// ProviderAccountIDEqualFold applies the EqualFold predicate on the "provider_account_id" field.
func ProviderAccountIDEqualFold(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEqualFold(FieldProviderAccountID, v))
}

// ProviderAccountIDContainsFold applies the ContainsFold predicate on the "provider_account_id" field.
func ProviderAccountIDContainsFold(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldContainsFold(FieldProviderAccountID, v))
}

// AccessTokenEQ applies the EQ predicate on the "access_token" field.
func AccessTokenEQ(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldAccessToken, v))
}

// AccessTokenNEQ applies the NEQ predicate on the "access_token" field.
func AccessTokenNEQ(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNEQ(FieldAccessToken, v))
}

// AccessTokenIn applies the In predicate on the "access_token" field.
func AccessTokenIn(vs ...string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldIn(FieldAccessToken, vs...))
}

// AccessTokenNotIn applies the NotIn predicate on the "access_token" field.
func AccessTokenNotIn(vs ...string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNotIn(FieldAccessToken, vs...))
}

// AccessTokenGT applies the GT predicate on the "access_token" field.
func AccessTokenGT(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGT(FieldAccessToken, v))
}

// AccessTokenGTE applies the GTE predicate on the "access_token" field.
func AccessTokenGTE(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGTE(FieldAccessToken, v))
}

// AccessTokenLT applies the LT predicate on the "access_token" field.
func AccessTokenLT(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLT(FieldAccessToken, v))
}

// AccessTokenLTE applies the LTE predicate on the "access_token" field.
func AccessTokenLTE(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLTE(FieldAccessToken, v))
}

// AccessTokenContains applies the Contains predicate on the "access_token" field.
func AccessTokenContains(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldContains(FieldAccessToken, v))
}

// AccessTokenHasPrefix applies the HasPrefix predicate on the "access_token" field.
func AccessTokenHasPrefix(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldHasPrefix(FieldAccessToken, v))
}

// AccessTokenHasSuffix applies the HasSuffix predicate on the "access_token" field.
func AccessTokenHasSuffix(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldHasSuffix(FieldAccessToken, v))
}

// AccessTokenEqualFold applies the EqualFold predicate on the "access_token" field.
func AccessTokenEqualFold(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEqualFold(FieldAccessToken, v))
}

// AccessTokenContainsFold applies the ContainsFold predicate on the "access_token" field.
func AccessTokenContainsFold(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldContainsFold(FieldAccessToken, v))
}

// VerifyTokenEQ applies the EQ predicate on the "verify_token" field.
func VerifyTokenEQ(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldVerifyToken, v))
}

// VerifyTokenNEQ applies the NEQ predicate on the "verify_token" field.
func VerifyTokenNEQ(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNEQ(FieldVerifyToken, v))
}

// VerifyTokenIn applies the In predicate on the "verify_token" field.
func VerifyTokenIn(vs ...string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldIn(FieldVerifyToken, vs...))
}

// VerifyTokenNotIn applies the NotIn predicate on the "verify_token" field.
func VerifyTokenNotIn(vs ...string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNotIn(FieldVerifyToken, vs...))
}

// VerifyTokenGT applies the GT predicate on the "verify_token" field.
func VerifyTokenGT(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGT(FieldVerifyToken, v))
}

// VerifyTokenGTE applies the GTE predicate on the "verify_token" field.
func VerifyTokenGTE(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGTE(FieldVerifyToken, v))
}

// VerifyTokenLT applies the LT predicate on the "verify_token" field.
func VerifyTokenLT(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLT(FieldVerifyToken, v))
}

// VerifyTokenLTE applies the LTE predicate on the "verify_token" field.
func VerifyTokenLTE(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLTE(FieldVerifyToken, v))
}

// VerifyTokenContains applies the Contains predicate on the "verify_token" field.
func VerifyTokenContains(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldContains(FieldVerifyToken, v))
}

// VerifyTokenHasPrefix applies the HasPrefix predicate on the "verify_token" field.
func VerifyTokenHasPrefix(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldHasPrefix(FieldVerifyToken, v))
}

// VerifyTokenHasSuffix applies the HasSuffix predicate on the "verify_token" field.
func VerifyTokenHasSuffix(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldHasSuffix(FieldVerifyToken, v))
}

// VerifyTokenIsNil applies the IsNil predicate on the "verify_token" field.
func VerifyTokenIsNil() predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldIsNull(FieldVerifyToken))
}

// VerifyTokenNotNil applies the NotNil predicate on the "verify_token" field.
func VerifyTokenNotNil() predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNotNull(FieldVerifyToken))
}

// VerifyTokenEqualFold applies the EqualFold predicate on the "verify_token" field.
func VerifyTokenEqualFold(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEqualFold(FieldVerifyToken, v))
}

// VerifyTokenContainsFold applies the ContainsFold predicate on the "verify_token" field.
func VerifyTokenContainsFold(v string) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldContainsFold(FieldVerifyToken, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BotIntegration {
	return predicate.BotIntegration(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BotIntegration) predicate.BotIntegration {
	return predicate.BotIntegration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BotIntegration) predicate.BotIntegration {
	return predicate.BotIntegration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BotIntegration) predicate.BotIntegration {
	return predicate.BotIntegration(sql.NotPredicates(p))
}
