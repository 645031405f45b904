// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldParentUserID holds the string denoting the parent_user_id field in the database.
	FieldParentUserID = "parent_user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhoneNumber holds the string denoting the phone_number field in the database.
	FieldPhoneNumber = "phone_number"
	// FieldBusinessType holds the string denoting the business_type field in the database.
	FieldBusinessType = "business_type"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldDefaultCancelableBeforeHours holds the string denoting the default_cancelable_before_hours field in the database.
	FieldDefaultCancelableBeforeHours = "default_cancelable_before_hours"
	// FieldPlaybookURL holds the string denoting the playbook_url field in the database.
	FieldPlaybookURL = "playbook_url"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the user in the database.
	Table = "users"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldRole,
	FieldParentUserID,
	FieldName,
	FieldEmail,
	FieldPhoneNumber,
	FieldBusinessType,
	FieldTimezone,
	FieldLanguage,
	FieldDefaultCancelableBeforeHours,
	FieldPlaybookURL,
	FieldIsActive,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultDefaultCancelableBeforeHours holds the default value on creation for the "default_cancelable_before_hours" field.
	DefaultDefaultCancelableBeforeHours int
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Role defines the type for the "role" enum field.
type Role string

// Role values.
const (
	RoleAdmin         Role = "admin"
	RoleBusinessOwner Role = "business_owner"
	RoleBranch        Role = "branch"
	RoleEmployee      Role = "employee"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleAdmin, RoleBusinessOwner, RoleBranch, RoleEmployee:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for role field: %q", r)
	}
}

// BusinessType defines the type for the "business_type" enum field.
type BusinessType string

// BusinessTypeOther is the default value of the BusinessType enum.
const DefaultBusinessType = BusinessTypeOther

// BusinessType values.
const (
	BusinessTypeFoodAndBeverage BusinessType = "food_and_beverage"
	BusinessTypeSalon           BusinessType = "salon"
	BusinessTypeRental          BusinessType = "rental"
	BusinessTypeRetail          BusinessType = "retail"
	BusinessTypeOther           BusinessType = "other"
)

func (bt BusinessType) String() string {
	return string(bt)
}

// BusinessTypeValidator is a validator for the "business_type" field enum values. It is called by the builders before save.
func BusinessTypeValidator(bt BusinessType) error {
	switch bt {
	case BusinessTypeFoodAndBeverage, BusinessTypeSalon, BusinessTypeRental, BusinessTypeRetail, BusinessTypeOther:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for business_type field: %q", bt)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByParentUserID orders the results by the parent_user_id field.
func ByParentUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentUserID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhoneNumber orders the results by the phone_number field.
func ByPhoneNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneNumber, opts...).ToFunc()
}

// ByBusinessType orders the results by the business_type field.
func ByBusinessType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessType, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByDefaultCancelableBeforeHours orders the results by the default_cancelable_before_hours field.
func ByDefaultCancelableBeforeHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultCancelableBeforeHours, opts...).ToFunc()
}

// ByPlaybookURL orders the results by the playbook_url field.
func ByPlaybookURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaybookURL, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
