// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/ent/businessaddon"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/inboundjob"
	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/llmtrace"
	"github.com/vendrahq/vendra/ent/menu"
	"github.com/vendrahq/vendra/ent/openinghour"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/orderitem"
	"github.com/vendrahq/vendra/ent/orderstatushistory"
	"github.com/vendrahq/vendra/ent/predicate"
	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/ent/reservationitem"
	"github.com/vendrahq/vendra/ent/servicecategory"
	"github.com/vendrahq/vendra/ent/subscription"
	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/table"
	"github.com/vendrahq/vendra/ent/ticketmessage"
	"github.com/vendrahq/vendra/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBotIntegration     = "BotIntegration"
	TypeBusinessAddon      = "BusinessAddon"
	TypeChatMessage        = "ChatMessage"
	TypeChatSession        = "ChatSession"
	TypeInboundJob         = "InboundJob"
	TypeItem               = "Item"
	TypeLLMTrace           = "LLMTrace"
	TypeMenu               = "Menu"
	TypeOpeningHour        = "OpeningHour"
	TypeOrder              = "Order"
	TypeOrderItem          = "OrderItem"
	TypeOrderStatusHistory = "OrderStatusHistory"
	TypeReservation        = "Reservation"
	TypeReservationItem    = "ReservationItem"
	TypeServiceCategory    = "ServiceCategory"
	TypeSubscription       = "Subscription"
	TypeSupportTicket      = "SupportTicket"
	TypeTable              = "Table"
	TypeTicketMessage      = "TicketMessage"
	TypeUser               = "User"
)

// BotIntegrationMutation represents an operation that mutates the BotIntegration nodes in the graph.
type BotIntegrationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	business_id         *string
	platform            *botintegration.Platform
	provider_account_id *string
	access_token        *string
	verify_token        *string
	is_active           *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*BotIntegration, error)
	predicates          []predicate.BotIntegration
}

var _ ent.Mutation = (*BotIntegrationMutation)(nil)

// botintegrationOption allows management of the mutation configuration using functional options.
type botintegrationOption func(*BotIntegrationMutation)

// newBotIntegrationMutation creates new mutation for the BotIntegration entity.
func newBotIntegrationMutation(c config, op Op, opts ...botintegrationOption) *BotIntegrationMutation {
	m := &BotIntegrationMutation{
		config:        c,
		op:            op,
		typ:           TypeBotIntegration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBotIntegrationID sets the ID field of the mutation.
func withBotIntegrationID(id string) botintegrationOption {
	return func(m *BotIntegrationMutation) {
		var (
			err   error
			once  sync.Once
			value *BotIntegration
		)
		m.oldValue = func(ctx context.Context) (*BotIntegration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BotIntegration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBotIntegration sets the old BotIntegration of the mutation.
func withBotIntegration(node *BotIntegration) botintegrationOption {
	return func(m *BotIntegrationMutation) {
		m.oldValue = func(context.Context) (*BotIntegration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BotIntegrationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BotIntegrationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BotIntegration entities.
func (m *BotIntegrationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BotIntegrationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BotIntegrationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BotIntegration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *BotIntegrationMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *BotIntegrationMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the BotIntegration entity.
// If the BotIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotIntegrationMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *BotIntegrationMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetPlatform sets the "platform" field.
func (m *BotIntegrationMutation) SetPlatform(b botintegration.Platform) {
	m.platform = &b
}

// Platform returns the value of the "platform" field in the mutation.
func (m *BotIntegrationMutation) Platform() (r botintegration.Platform, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the BotIntegration entity.
// If the BotIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotIntegrationMutation) OldPlatform(ctx context.Context) (v botintegration.Platform, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *BotIntegrationMutation) ResetPlatform() {
	m.platform = nil
}

// SetProviderAccountID sets the "provider_account_id" field.
func (m *BotIntegrationMutation) SetProviderAccountID(s string) {
	m.provider_account_id = &s
}

// ProviderAccountID returns the value of the "provider_account_id" field in the mutation.
func (m *BotIntegrationMutation) ProviderAccountID() (r string, exists bool) {
	v := m.provider_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderAccountID returns the old "provider_account_id" field's value of the BotIntegration entity.
// If the BotIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotIntegrationMutation) OldProviderAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderAccountID: %w", err)
	}
	return oldValue.ProviderAccountID, nil
}

// ResetProviderAccountID resets all changes to the "provider_account_id" field.
func (m *BotIntegrationMutation) ResetProviderAccountID() {
	m.provider_account_id = nil
}

// SetAccessToken sets the "access_token" field.
func (m *BotIntegrationMutation) SetAccessToken(s string) {
	m.access_token = &s
}

// AccessToken returns the value of the "access_token" field in the mutation.
func (m *BotIntegrationMutation) AccessToken() (r string, exists bool) {
	v := m.access_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessToken returns the old "access_token" field's value of the BotIntegration entity.
// If the BotIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotIntegrationMutation) OldAccessToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessToken: %w", err)
	}
	return oldValue.AccessToken, nil
}

// ResetAccessToken resets all changes to the "access_token" field.
func (m *BotIntegrationMutation) ResetAccessToken() {
	m.access_token = nil
}

// SetVerifyToken sets the "verify_token" field.
func (m *BotIntegrationMutation) SetVerifyToken(s string) {
	m.verify_token = &s
}

// VerifyToken returns the value of the "verify_token" field in the mutation.
func (m *BotIntegrationMutation) VerifyToken() (r string, exists bool) {
	v := m.verify_token
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifyToken returns the old "verify_token" field's value of the BotIntegration entity.
// If the BotIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotIntegrationMutation) OldVerifyToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifyToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifyToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifyToken: %w", err)
	}
	return oldValue.VerifyToken, nil
}

// ClearVerifyToken clears the value of the "verify_token" field.
func (m *BotIntegrationMutation) ClearVerifyToken() {
	m.verify_token = nil
	m.clearedFields[botintegration.FieldVerifyToken] = struct{}{}
}

// VerifyTokenCleared returns if the "verify_token" field was cleared in this mutation.
func (m *BotIntegrationMutation) VerifyTokenCleared() bool {
	_, ok := m.clearedFields[botintegration.FieldVerifyToken]
	return ok
}

// ResetVerifyToken resets all changes to the "verify_token" field.
func (m *BotIntegrationMutation) ResetVerifyToken() {
	m.verify_token = nil
	delete(m.clearedFields, botintegration.FieldVerifyToken)
}

// SetIsActive sets the "is_active" field.
func (m *BotIntegrationMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *BotIntegrationMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the BotIntegration entity.
// If the BotIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotIntegrationMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *BotIntegrationMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BotIntegrationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BotIntegrationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BotIntegration entity.
// If the BotIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotIntegrationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BotIntegrationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BotIntegrationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BotIntegrationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BotIntegration entity.
// If the BotIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotIntegrationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BotIntegrationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BotIntegrationMutation builder.
func (m *BotIntegrationMutation) Where(ps ...predicate.BotIntegration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BotIntegrationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BotIntegrationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BotIntegration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BotIntegrationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BotIntegrationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BotIntegration).
func (m *BotIntegrationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BotIntegrationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.business_id != nil {
		fields = append(fields, botintegration.FieldBusinessID)
	}
	if m.platform != nil {
		fields = append(fields, botintegration.FieldPlatform)
	}
	if m.provider_account_id != nil {
		fields = append(fields, botintegration.FieldProviderAccountID)
	}
	if m.access_token != nil {
		fields = append(fields, botintegration.FieldAccessToken)
	}
	if m.verify_token != nil {
		fields = append(fields, botintegration.FieldVerifyToken)
	}
	if m.is_active != nil {
		fields = append(fields, botintegration.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, botintegration.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, botintegration.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BotIntegrationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case botintegration.FieldBusinessID:
		return m.BusinessID()
	case botintegration.FieldPlatform:
		return m.Platform()
	case botintegration.FieldProviderAccountID:
		return m.ProviderAccountID()
	case botintegration.FieldAccessToken:
		return m.AccessToken()
	case botintegration.FieldVerifyToken:
		return m.VerifyToken()
	case botintegration.FieldIsActive:
		return m.IsActive()
	case botintegration.FieldCreatedAt:
		return m.CreatedAt()
	case botintegration.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BotIntegrationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case botintegration.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case botintegration.FieldPlatform:
		return m.OldPlatform(ctx)
	case botintegration.FieldProviderAccountID:
		return m.OldProviderAccountID(ctx)
	case botintegration.FieldAccessToken:
		return m.OldAccessToken(ctx)
	case botintegration.FieldVerifyToken:
		return m.OldVerifyToken(ctx)
	case botintegration.FieldIsActive:
		return m.OldIsActive(ctx)
	case botintegration.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case botintegration.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BotIntegration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotIntegrationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case botintegration.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case botintegration.FieldPlatform:
		v, ok := value.(botintegration.Platform)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case botintegration.FieldProviderAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderAccountID(v)
		return nil
	case botintegration.FieldAccessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessToken(v)
		return nil
	case botintegration.FieldVerifyToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifyToken(v)
		return nil
	case botintegration.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case botintegration.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case botintegration.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BotIntegration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BotIntegrationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BotIntegrationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotIntegrationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BotIntegration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BotIntegrationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(botintegration.FieldVerifyToken) {
		fields = append(fields, botintegration.FieldVerifyToken)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BotIntegrationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BotIntegrationMutation) ClearField(name string) error {
	switch name {
	case botintegration.FieldVerifyToken:
		m.ClearVerifyToken()
		return nil
	}
	return fmt.Errorf("unknown BotIntegration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BotIntegrationMutation) ResetField(name string) error {
	switch name {
	case botintegration.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case botintegration.FieldPlatform:
		m.ResetPlatform()
		return nil
	case botintegration.FieldProviderAccountID:
		m.ResetProviderAccountID()
		return nil
	case botintegration.FieldAccessToken:
		m.ResetAccessToken()
		return nil
	case botintegration.FieldVerifyToken:
		m.ResetVerifyToken()
		return nil
	case botintegration.FieldIsActive:
		m.ResetIsActive()
		return nil
	case botintegration.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case botintegration.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BotIntegration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BotIntegrationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BotIntegrationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BotIntegrationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BotIntegrationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BotIntegrationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BotIntegrationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BotIntegrationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BotIntegration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BotIntegrationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BotIntegration edge %s", name)
}

// BusinessAddonMutation represents an operation that mutates the BusinessAddon nodes in the graph.
type BusinessAddonMutation struct {
	config
	op             Op
	typ            string
	id             *string
	business_id    *string
	addon_key      *businessaddon.AddonKey
	status         *businessaddon.Status
	price_override *decimal.Decimal
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*BusinessAddon, error)
	predicates     []predicate.BusinessAddon
}

var _ ent.Mutation = (*BusinessAddonMutation)(nil)

// businessaddonOption allows management of the mutation configuration using functional options.
type businessaddonOption func(*BusinessAddonMutation)

// newBusinessAddonMutation creates new mutation for the BusinessAddon entity.
func newBusinessAddonMutation(c config, op Op, opts ...businessaddonOption) *BusinessAddonMutation {
	m := &BusinessAddonMutation{
		config:        c,
		op:            op,
		typ:           TypeBusinessAddon,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusinessAddonID sets the ID field of the mutation.
func withBusinessAddonID(id string) businessaddonOption {
	return func(m *BusinessAddonMutation) {
		var (
			err   error
			once  sync.Once
			value *BusinessAddon
		)
		m.oldValue = func(ctx context.Context) (*BusinessAddon, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BusinessAddon.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusinessAddon sets the old BusinessAddon of the mutation.
func withBusinessAddon(node *BusinessAddon) businessaddonOption {
	return func(m *BusinessAddonMutation) {
		m.oldValue = func(context.Context) (*BusinessAddon, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusinessAddonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusinessAddonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BusinessAddon entities.
func (m *BusinessAddonMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusinessAddonMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusinessAddonMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BusinessAddon.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *BusinessAddonMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *BusinessAddonMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the BusinessAddon entity.
// If the BusinessAddon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessAddonMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *BusinessAddonMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetAddonKey sets the "addon_key" field.
func (m *BusinessAddonMutation) SetAddonKey(bk businessaddon.AddonKey) {
	m.addon_key = &bk
}

// AddonKey returns the value of the "addon_key" field in the mutation.
func (m *BusinessAddonMutation) AddonKey() (r businessaddon.AddonKey, exists bool) {
	v := m.addon_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAddonKey returns the old "addon_key" field's value of the BusinessAddon entity.
// If the BusinessAddon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessAddonMutation) OldAddonKey(ctx context.Context) (v businessaddon.AddonKey, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddonKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddonKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddonKey: %w", err)
	}
	return oldValue.AddonKey, nil
}

// ResetAddonKey resets all changes to the "addon_key" field.
func (m *BusinessAddonMutation) ResetAddonKey() {
	m.addon_key = nil
}

// SetStatus sets the "status" field.
func (m *BusinessAddonMutation) SetStatus(b businessaddon.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BusinessAddonMutation) Status() (r businessaddon.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BusinessAddon entity.
// If the BusinessAddon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessAddonMutation) OldStatus(ctx context.Context) (v businessaddon.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BusinessAddonMutation) ResetStatus() {
	m.status = nil
}

// SetPriceOverride sets the "price_override" field.
func (m *BusinessAddonMutation) SetPriceOverride(d decimal.Decimal) {
	m.price_override = &d
}

// PriceOverride returns the value of the "price_override" field in the mutation.
func (m *BusinessAddonMutation) PriceOverride() (r decimal.Decimal, exists bool) {
	v := m.price_override
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceOverride returns the old "price_override" field's value of the BusinessAddon entity.
// If the BusinessAddon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessAddonMutation) OldPriceOverride(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceOverride is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceOverride requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceOverride: %w", err)
	}
	return oldValue.PriceOverride, nil
}

// ResetPriceOverride resets all changes to the "price_override" field.
func (m *BusinessAddonMutation) ResetPriceOverride() {
	m.price_override = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BusinessAddonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BusinessAddonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BusinessAddon entity.
// If the BusinessAddon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessAddonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BusinessAddonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BusinessAddonMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BusinessAddonMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BusinessAddon entity.
// If the BusinessAddon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessAddonMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BusinessAddonMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BusinessAddonMutation builder.
func (m *BusinessAddonMutation) Where(ps ...predicate.BusinessAddon) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusinessAddonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusinessAddonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BusinessAddon, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusinessAddonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusinessAddonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BusinessAddon).
func (m *BusinessAddonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusinessAddonMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.business_id != nil {
		fields = append(fields, businessaddon.FieldBusinessID)
	}
	if m.addon_key != nil {
		fields = append(fields, businessaddon.FieldAddonKey)
	}
	if m.status != nil {
		fields = append(fields, businessaddon.FieldStatus)
	}
	if m.price_override != nil {
		fields = append(fields, businessaddon.FieldPriceOverride)
	}
	if m.created_at != nil {
		fields = append(fields, businessaddon.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, businessaddon.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusinessAddonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case businessaddon.FieldBusinessID:
		return m.BusinessID()
	case businessaddon.FieldAddonKey:
		return m.AddonKey()
	case businessaddon.FieldStatus:
		return m.Status()
	case businessaddon.FieldPriceOverride:
		return m.PriceOverride()
	case businessaddon.FieldCreatedAt:
		return m.CreatedAt()
	case businessaddon.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusinessAddonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case businessaddon.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case businessaddon.FieldAddonKey:
		return m.OldAddonKey(ctx)
	case businessaddon.FieldStatus:
		return m.OldStatus(ctx)
	case businessaddon.FieldPriceOverride:
		return m.OldPriceOverride(ctx)
	case businessaddon.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case businessaddon.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BusinessAddon field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessAddonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case businessaddon.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case businessaddon.FieldAddonKey:
		v, ok := value.(businessaddon.AddonKey)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddonKey(v)
		return nil
	case businessaddon.FieldStatus:
		v, ok := value.(businessaddon.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case businessaddon.FieldPriceOverride:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceOverride(v)
		return nil
	case businessaddon.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case businessaddon.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BusinessAddon field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusinessAddonMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusinessAddonMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessAddonMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BusinessAddon numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusinessAddonMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusinessAddonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusinessAddonMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BusinessAddon nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusinessAddonMutation) ResetField(name string) error {
	switch name {
	case businessaddon.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case businessaddon.FieldAddonKey:
		m.ResetAddonKey()
		return nil
	case businessaddon.FieldStatus:
		m.ResetStatus()
		return nil
	case businessaddon.FieldPriceOverride:
		m.ResetPriceOverride()
		return nil
	case businessaddon.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case businessaddon.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BusinessAddon field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusinessAddonMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusinessAddonMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusinessAddonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusinessAddonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusinessAddonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusinessAddonMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusinessAddonMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BusinessAddon unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusinessAddonMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BusinessAddon edge %s", name)
}

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	sender_type         *chatmessage.SenderType
	content             *string
	media_url           *string
	provider_message_id *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	session             *string
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*ChatMessage, error)
	predicates          []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ChatMessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChatMessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChatMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetSenderType sets the "sender_type" field.
func (m *ChatMessageMutation) SetSenderType(ct chatmessage.SenderType) {
	m.sender_type = &ct
}

// SenderType returns the value of the "sender_type" field in the mutation.
func (m *ChatMessageMutation) SenderType() (r chatmessage.SenderType, exists bool) {
	v := m.sender_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderType returns the old "sender_type" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSenderType(ctx context.Context) (v chatmessage.SenderType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderType: %w", err)
	}
	return oldValue.SenderType, nil
}

// ResetSenderType resets all changes to the "sender_type" field.
func (m *ChatMessageMutation) ResetSenderType() {
	m.sender_type = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetMediaURL sets the "media_url" field.
func (m *ChatMessageMutation) SetMediaURL(s string) {
	m.media_url = &s
}

// MediaURL returns the value of the "media_url" field in the mutation.
func (m *ChatMessageMutation) MediaURL() (r string, exists bool) {
	v := m.media_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaURL returns the old "media_url" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldMediaURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaURL: %w", err)
	}
	return oldValue.MediaURL, nil
}

// ClearMediaURL clears the value of the "media_url" field.
func (m *ChatMessageMutation) ClearMediaURL() {
	m.media_url = nil
	m.clearedFields[chatmessage.FieldMediaURL] = struct{}{}
}

// MediaURLCleared returns if the "media_url" field was cleared in this mutation.
func (m *ChatMessageMutation) MediaURLCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldMediaURL]
	return ok
}

// ResetMediaURL resets all changes to the "media_url" field.
func (m *ChatMessageMutation) ResetMediaURL() {
	m.media_url = nil
	delete(m.clearedFields, chatmessage.FieldMediaURL)
}

// SetProviderMessageID sets the "provider_message_id" field.
func (m *ChatMessageMutation) SetProviderMessageID(s string) {
	m.provider_message_id = &s
}

// ProviderMessageID returns the value of the "provider_message_id" field in the mutation.
func (m *ChatMessageMutation) ProviderMessageID() (r string, exists bool) {
	v := m.provider_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderMessageID returns the old "provider_message_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldProviderMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderMessageID: %w", err)
	}
	return oldValue.ProviderMessageID, nil
}

// ClearProviderMessageID clears the value of the "provider_message_id" field.
func (m *ChatMessageMutation) ClearProviderMessageID() {
	m.provider_message_id = nil
	m.clearedFields[chatmessage.FieldProviderMessageID] = struct{}{}
}

// ProviderMessageIDCleared returns if the "provider_message_id" field was cleared in this mutation.
func (m *ChatMessageMutation) ProviderMessageIDCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldProviderMessageID]
	return ok
}

// ResetProviderMessageID resets all changes to the "provider_message_id" field.
func (m *ChatMessageMutation) ResetProviderMessageID() {
	m.provider_message_id = nil
	delete(m.clearedFields, chatmessage.FieldProviderMessageID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (m *ChatMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[chatmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ChatSession entity was cleared.
func (m *ChatMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ChatMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session != nil {
		fields = append(fields, chatmessage.FieldSessionID)
	}
	if m.sender_type != nil {
		fields = append(fields, chatmessage.FieldSenderType)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.media_url != nil {
		fields = append(fields, chatmessage.FieldMediaURL)
	}
	if m.provider_message_id != nil {
		fields = append(fields, chatmessage.FieldProviderMessageID)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldSessionID:
		return m.SessionID()
	case chatmessage.FieldSenderType:
		return m.SenderType()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldMediaURL:
		return m.MediaURL()
	case chatmessage.FieldProviderMessageID:
		return m.ProviderMessageID()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case chatmessage.FieldSenderType:
		return m.OldSenderType(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldMediaURL:
		return m.OldMediaURL(ctx)
	case chatmessage.FieldProviderMessageID:
		return m.OldProviderMessageID(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chatmessage.FieldSenderType:
		v, ok := value.(chatmessage.SenderType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderType(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldMediaURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaURL(v)
		return nil
	case chatmessage.FieldProviderMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderMessageID(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldMediaURL) {
		fields = append(fields, chatmessage.FieldMediaURL)
	}
	if m.FieldCleared(chatmessage.FieldProviderMessageID) {
		fields = append(fields, chatmessage.FieldProviderMessageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldMediaURL:
		m.ClearMediaURL()
		return nil
	case chatmessage.FieldProviderMessageID:
		m.ClearProviderMessageID()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chatmessage.FieldSenderType:
		m.ResetSenderType()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldMediaURL:
		m.ResetMediaURL()
		return nil
	case chatmessage.FieldProviderMessageID:
		m.ResetProviderMessageID()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, chatmessage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, chatmessage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// ChatSessionMutation represents an operation that mutates the ChatSession nodes in the graph.
type ChatSessionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	business_id          *string
	customer_id          *string
	platform             *chatsession.Platform
	state                *chatsession.State
	assigned_employee_id *string
	language_hint        *string
	last_activity_at     *time.Time
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	messages             map[string]struct{}
	removedmessages      map[string]struct{}
	clearedmessages      bool
	done                 bool
	oldValue             func(context.Context) (*ChatSession, error)
	predicates           []predicate.ChatSession
}

var _ ent.Mutation = (*ChatSessionMutation)(nil)

// chatsessionOption allows management of the mutation configuration using functional options.
type chatsessionOption func(*ChatSessionMutation)

// newChatSessionMutation creates new mutation for the ChatSession entity.
func newChatSessionMutation(c config, op Op, opts ...chatsessionOption) *ChatSessionMutation {
	m := &ChatSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeChatSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatSessionID sets the ID field of the mutation.
func withChatSessionID(id string) chatsessionOption {
	return func(m *ChatSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatSession
		)
		m.oldValue = func(ctx context.Context) (*ChatSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatSession sets the old ChatSession of the mutation.
func withChatSession(node *ChatSession) chatsessionOption {
	return func(m *ChatSessionMutation) {
		m.oldValue = func(context.Context) (*ChatSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatSession entities.
func (m *ChatSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *ChatSessionMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *ChatSessionMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *ChatSessionMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *ChatSessionMutation) SetCustomerID(s string) {
	m.customer_id = &s
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *ChatSessionMutation) CustomerID() (r string, exists bool) {
	v := m.customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *ChatSessionMutation) ResetCustomerID() {
	m.customer_id = nil
}

// SetPlatform sets the "platform" field.
func (m *ChatSessionMutation) SetPlatform(c chatsession.Platform) {
	m.platform = &c
}

// Platform returns the value of the "platform" field in the mutation.
func (m *ChatSessionMutation) Platform() (r chatsession.Platform, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldPlatform(ctx context.Context) (v chatsession.Platform, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *ChatSessionMutation) ResetPlatform() {
	m.platform = nil
}

// SetState sets the "state" field.
func (m *ChatSessionMutation) SetState(c chatsession.State) {
	m.state = &c
}

// State returns the value of the "state" field in the mutation.
func (m *ChatSessionMutation) State() (r chatsession.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldState(ctx context.Context) (v chatsession.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ChatSessionMutation) ResetState() {
	m.state = nil
}

// SetAssignedEmployeeID sets the "assigned_employee_id" field.
func (m *ChatSessionMutation) SetAssignedEmployeeID(s string) {
	m.assigned_employee_id = &s
}

// AssignedEmployeeID returns the value of the "assigned_employee_id" field in the mutation.
func (m *ChatSessionMutation) AssignedEmployeeID() (r string, exists bool) {
	v := m.assigned_employee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedEmployeeID returns the old "assigned_employee_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldAssignedEmployeeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedEmployeeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedEmployeeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedEmployeeID: %w", err)
	}
	return oldValue.AssignedEmployeeID, nil
}

// ClearAssignedEmployeeID clears the value of the "assigned_employee_id" field.
func (m *ChatSessionMutation) ClearAssignedEmployeeID() {
	m.assigned_employee_id = nil
	m.clearedFields[chatsession.FieldAssignedEmployeeID] = struct{}{}
}

// AssignedEmployeeIDCleared returns if the "assigned_employee_id" field was cleared in this mutation.
func (m *ChatSessionMutation) AssignedEmployeeIDCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldAssignedEmployeeID]
	return ok
}

// ResetAssignedEmployeeID resets all changes to the "assigned_employee_id" field.
func (m *ChatSessionMutation) ResetAssignedEmployeeID() {
	m.assigned_employee_id = nil
	delete(m.clearedFields, chatsession.FieldAssignedEmployeeID)
}

// SetLanguageHint sets the "language_hint" field.
func (m *ChatSessionMutation) SetLanguageHint(s string) {
	m.language_hint = &s
}

// LanguageHint returns the value of the "language_hint" field in the mutation.
func (m *ChatSessionMutation) LanguageHint() (r string, exists bool) {
	v := m.language_hint
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageHint returns the old "language_hint" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldLanguageHint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageHint: %w", err)
	}
	return oldValue.LanguageHint, nil
}

// ClearLanguageHint clears the value of the "language_hint" field.
func (m *ChatSessionMutation) ClearLanguageHint() {
	m.language_hint = nil
	m.clearedFields[chatsession.FieldLanguageHint] = struct{}{}
}

// LanguageHintCleared returns if the "language_hint" field was cleared in this mutation.
func (m *ChatSessionMutation) LanguageHintCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldLanguageHint]
	return ok
}

// ResetLanguageHint resets all changes to the "language_hint" field.
func (m *ChatSessionMutation) ResetLanguageHint() {
	m.language_hint = nil
	delete(m.clearedFields, chatsession.FieldLanguageHint)
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *ChatSessionMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *ChatSessionMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *ChatSessionMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by ids.
func (m *ChatSessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ChatMessage entity.
func (m *ChatSessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ChatMessage entity was cleared.
func (m *ChatSessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ChatMessage entity by IDs.
func (m *ChatSessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ChatMessage entity.
func (m *ChatSessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ChatSessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ChatSessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ChatSessionMutation builder.
func (m *ChatSessionMutation) Where(ps ...predicate.ChatSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatSession).
func (m *ChatSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.business_id != nil {
		fields = append(fields, chatsession.FieldBusinessID)
	}
	if m.customer_id != nil {
		fields = append(fields, chatsession.FieldCustomerID)
	}
	if m.platform != nil {
		fields = append(fields, chatsession.FieldPlatform)
	}
	if m.state != nil {
		fields = append(fields, chatsession.FieldState)
	}
	if m.assigned_employee_id != nil {
		fields = append(fields, chatsession.FieldAssignedEmployeeID)
	}
	if m.language_hint != nil {
		fields = append(fields, chatsession.FieldLanguageHint)
	}
	if m.last_activity_at != nil {
		fields = append(fields, chatsession.FieldLastActivityAt)
	}
	if m.created_at != nil {
		fields = append(fields, chatsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldBusinessID:
		return m.BusinessID()
	case chatsession.FieldCustomerID:
		return m.CustomerID()
	case chatsession.FieldPlatform:
		return m.Platform()
	case chatsession.FieldState:
		return m.State()
	case chatsession.FieldAssignedEmployeeID:
		return m.AssignedEmployeeID()
	case chatsession.FieldLanguageHint:
		return m.LanguageHint()
	case chatsession.FieldLastActivityAt:
		return m.LastActivityAt()
	case chatsession.FieldCreatedAt:
		return m.CreatedAt()
	case chatsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatsession.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case chatsession.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case chatsession.FieldPlatform:
		return m.OldPlatform(ctx)
	case chatsession.FieldState:
		return m.OldState(ctx)
	case chatsession.FieldAssignedEmployeeID:
		return m.OldAssignedEmployeeID(ctx)
	case chatsession.FieldLanguageHint:
		return m.OldLanguageHint(ctx)
	case chatsession.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case chatsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case chatsession.FieldCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case chatsession.FieldPlatform:
		v, ok := value.(chatsession.Platform)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case chatsession.FieldState:
		v, ok := value.(chatsession.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case chatsession.FieldAssignedEmployeeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedEmployeeID(v)
		return nil
	case chatsession.FieldLanguageHint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageHint(v)
		return nil
	case chatsession.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case chatsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatsession.FieldAssignedEmployeeID) {
		fields = append(fields, chatsession.FieldAssignedEmployeeID)
	}
	if m.FieldCleared(chatsession.FieldLanguageHint) {
		fields = append(fields, chatsession.FieldLanguageHint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatSessionMutation) ClearField(name string) error {
	switch name {
	case chatsession.FieldAssignedEmployeeID:
		m.ClearAssignedEmployeeID()
		return nil
	case chatsession.FieldLanguageHint:
		m.ClearLanguageHint()
		return nil
	}
	return fmt.Errorf("unknown ChatSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatSessionMutation) ResetField(name string) error {
	switch name {
	case chatsession.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case chatsession.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case chatsession.FieldPlatform:
		m.ResetPlatform()
		return nil
	case chatsession.FieldState:
		m.ResetState()
		return nil
	case chatsession.FieldAssignedEmployeeID:
		m.ResetAssignedEmployeeID()
		return nil
	case chatsession.FieldLanguageHint:
		m.ResetLanguageHint()
		return nil
	case chatsession.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case chatsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.messages != nil {
		edges = append(edges, chatsession.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmessages != nil {
		edges = append(edges, chatsession.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessages {
		edges = append(edges, chatsession.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case chatsession.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatSessionMutation) ResetEdge(name string) error {
	switch name {
	case chatsession.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown ChatSession edge %s", name)
}

// InboundJobMutation represents an operation that mutates the InboundJob nodes in the graph.
type InboundJobMutation struct {
	config
	op                Op
	typ               string
	id                *string
	business_id       *string
	session_id        *string
	message_id        *string
	status            *inboundjob.Status
	attempts          *int
	addattempts       *int
	claimed_by        *string
	claimed_at        *time.Time
	last_heartbeat_at *time.Time
	error             *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*InboundJob, error)
	predicates        []predicate.InboundJob
}

var _ ent.Mutation = (*InboundJobMutation)(nil)

// inboundjobOption allows management of the mutation configuration using functional options.
type inboundjobOption func(*InboundJobMutation)

// newInboundJobMutation creates new mutation for the InboundJob entity.
func newInboundJobMutation(c config, op Op, opts ...inboundjobOption) *InboundJobMutation {
	m := &InboundJobMutation{
		config:        c,
		op:            op,
		typ:           TypeInboundJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInboundJobID sets the ID field of the mutation.
func withInboundJobID(id string) inboundjobOption {
	return func(m *InboundJobMutation) {
		var (
			err   error
			once  sync.Once
			value *InboundJob
		)
		m.oldValue = func(ctx context.Context) (*InboundJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InboundJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInboundJob sets the old InboundJob of the mutation.
func withInboundJob(node *InboundJob) inboundjobOption {
	return func(m *InboundJobMutation) {
		m.oldValue = func(context.Context) (*InboundJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InboundJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InboundJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InboundJob entities.
func (m *InboundJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InboundJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InboundJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InboundJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *InboundJobMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *InboundJobMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the InboundJob entity.
// If the InboundJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundJobMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *InboundJobMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *InboundJobMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InboundJobMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the InboundJob entity.
// If the InboundJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundJobMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InboundJobMutation) ResetSessionID() {
	m.session_id = nil
}

// SetMessageID sets the "message_id" field.
func (m *InboundJobMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *InboundJobMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the InboundJob entity.
// If the InboundJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundJobMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *InboundJobMutation) ResetMessageID() {
	m.message_id = nil
}

// SetStatus sets the "status" field.
func (m *InboundJobMutation) SetStatus(i inboundjob.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InboundJobMutation) Status() (r inboundjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InboundJob entity.
// If the InboundJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundJobMutation) OldStatus(ctx context.Context) (v inboundjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InboundJobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *InboundJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *InboundJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the InboundJob entity.
// If the InboundJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *InboundJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *InboundJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *InboundJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *InboundJobMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *InboundJobMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the InboundJob entity.
// If the InboundJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundJobMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *InboundJobMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[inboundjob.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *InboundJobMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[inboundjob.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *InboundJobMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, inboundjob.FieldClaimedBy)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *InboundJobMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *InboundJobMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the InboundJob entity.
// If the InboundJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundJobMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *InboundJobMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[inboundjob.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *InboundJobMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[inboundjob.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *InboundJobMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, inboundjob.FieldClaimedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *InboundJobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *InboundJobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the InboundJob entity.
// If the InboundJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundJobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *InboundJobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[inboundjob.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *InboundJobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[inboundjob.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *InboundJobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, inboundjob.FieldLastHeartbeatAt)
}

// SetError sets the "error" field.
func (m *InboundJobMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *InboundJobMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the InboundJob entity.
// If the InboundJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundJobMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *InboundJobMutation) ClearError() {
	m.error = nil
	m.clearedFields[inboundjob.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *InboundJobMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[inboundjob.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *InboundJobMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, inboundjob.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *InboundJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InboundJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InboundJob entity.
// If the InboundJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InboundJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the InboundJobMutation builder.
func (m *InboundJobMutation) Where(ps ...predicate.InboundJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InboundJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InboundJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InboundJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InboundJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InboundJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InboundJob).
func (m *InboundJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InboundJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.business_id != nil {
		fields = append(fields, inboundjob.FieldBusinessID)
	}
	if m.session_id != nil {
		fields = append(fields, inboundjob.FieldSessionID)
	}
	if m.message_id != nil {
		fields = append(fields, inboundjob.FieldMessageID)
	}
	if m.status != nil {
		fields = append(fields, inboundjob.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, inboundjob.FieldAttempts)
	}
	if m.claimed_by != nil {
		fields = append(fields, inboundjob.FieldClaimedBy)
	}
	if m.claimed_at != nil {
		fields = append(fields, inboundjob.FieldClaimedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, inboundjob.FieldLastHeartbeatAt)
	}
	if m.error != nil {
		fields = append(fields, inboundjob.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, inboundjob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InboundJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inboundjob.FieldBusinessID:
		return m.BusinessID()
	case inboundjob.FieldSessionID:
		return m.SessionID()
	case inboundjob.FieldMessageID:
		return m.MessageID()
	case inboundjob.FieldStatus:
		return m.Status()
	case inboundjob.FieldAttempts:
		return m.Attempts()
	case inboundjob.FieldClaimedBy:
		return m.ClaimedBy()
	case inboundjob.FieldClaimedAt:
		return m.ClaimedAt()
	case inboundjob.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case inboundjob.FieldError:
		return m.Error()
	case inboundjob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InboundJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inboundjob.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case inboundjob.FieldSessionID:
		return m.OldSessionID(ctx)
	case inboundjob.FieldMessageID:
		return m.OldMessageID(ctx)
	case inboundjob.FieldStatus:
		return m.OldStatus(ctx)
	case inboundjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case inboundjob.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case inboundjob.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case inboundjob.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case inboundjob.FieldError:
		return m.OldError(ctx)
	case inboundjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InboundJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboundJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inboundjob.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case inboundjob.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case inboundjob.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case inboundjob.FieldStatus:
		v, ok := value.(inboundjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case inboundjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case inboundjob.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case inboundjob.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case inboundjob.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case inboundjob.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case inboundjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InboundJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InboundJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, inboundjob.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InboundJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case inboundjob.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboundJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case inboundjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown InboundJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InboundJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inboundjob.FieldClaimedBy) {
		fields = append(fields, inboundjob.FieldClaimedBy)
	}
	if m.FieldCleared(inboundjob.FieldClaimedAt) {
		fields = append(fields, inboundjob.FieldClaimedAt)
	}
	if m.FieldCleared(inboundjob.FieldLastHeartbeatAt) {
		fields = append(fields, inboundjob.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(inboundjob.FieldError) {
		fields = append(fields, inboundjob.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InboundJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InboundJobMutation) ClearField(name string) error {
	switch name {
	case inboundjob.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case inboundjob.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case inboundjob.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case inboundjob.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown InboundJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InboundJobMutation) ResetField(name string) error {
	switch name {
	case inboundjob.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case inboundjob.FieldSessionID:
		m.ResetSessionID()
		return nil
	case inboundjob.FieldMessageID:
		m.ResetMessageID()
		return nil
	case inboundjob.FieldStatus:
		m.ResetStatus()
		return nil
	case inboundjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case inboundjob.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case inboundjob.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case inboundjob.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case inboundjob.FieldError:
		m.ResetError()
		return nil
	case inboundjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InboundJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InboundJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InboundJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InboundJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InboundJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InboundJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InboundJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InboundJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InboundJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InboundJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InboundJob edge %s", name)
}

// ItemMutation represents an operation that mutates the Item nodes in the graph.
type ItemMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	business_id                 *string
	owner_user_id               *string
	menu_id                     *string
	category_id                 *string
	name                        *string
	description                 *string
	item_type                   *item.ItemType
	price                       *decimal.Decimal
	cost                        *decimal.Decimal
	preparation_time_minutes    *int
	addpreparation_time_minutes *int
	duration_minutes            *int
	addduration_minutes         *int
	is_schedulable              *bool
	min_schedule_hours          *int
	addmin_schedule_hours       *int
	cancelable_before_hours     *int
	addcancelable_before_hours  *int
	stock_quantity              *int
	addstock_quantity           *int
	availability                *item.Availability
	days_available              *[]int
	appenddays_available        []int
	available_from              *string
	available_to                *string
	times_ordered               *int
	addtimes_ordered            *int
	times_delivered             *int
	addtimes_delivered          *int
	deleted_at                  *time.Time
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*Item, error)
	predicates                  []predicate.Item
}

var _ ent.Mutation = (*ItemMutation)(nil)

// itemOption allows management of the mutation configuration using functional options.
type itemOption func(*ItemMutation)

// newItemMutation creates new mutation for the Item entity.
func newItemMutation(c config, op Op, opts ...itemOption) *ItemMutation {
	m := &ItemMutation{
		config:        c,
		op:            op,
		typ:           TypeItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemID sets the ID field of the mutation.
func withItemID(id string) itemOption {
	return func(m *ItemMutation) {
		var (
			err   error
			once  sync.Once
			value *Item
		)
		m.oldValue = func(ctx context.Context) (*Item, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Item.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItem sets the old Item of the mutation.
func withItem(node *Item) itemOption {
	return func(m *ItemMutation) {
		m.oldValue = func(context.Context) (*Item, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Item entities.
func (m *ItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Item.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *ItemMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *ItemMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *ItemMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *ItemMutation) SetOwnerUserID(s string) {
	m.owner_user_id = &s
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *ItemMutation) OwnerUserID() (r string, exists bool) {
	v := m.owner_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldOwnerUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (m *ItemMutation) ClearOwnerUserID() {
	m.owner_user_id = nil
	m.clearedFields[item.FieldOwnerUserID] = struct{}{}
}

// OwnerUserIDCleared returns if the "owner_user_id" field was cleared in this mutation.
func (m *ItemMutation) OwnerUserIDCleared() bool {
	_, ok := m.clearedFields[item.FieldOwnerUserID]
	return ok
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *ItemMutation) ResetOwnerUserID() {
	m.owner_user_id = nil
	delete(m.clearedFields, item.FieldOwnerUserID)
}

// SetMenuID sets the "menu_id" field.
func (m *ItemMutation) SetMenuID(s string) {
	m.menu_id = &s
}

// MenuID returns the value of the "menu_id" field in the mutation.
func (m *ItemMutation) MenuID() (r string, exists bool) {
	v := m.menu_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMenuID returns the old "menu_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldMenuID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMenuID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMenuID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMenuID: %w", err)
	}
	return oldValue.MenuID, nil
}

// ClearMenuID clears the value of the "menu_id" field.
func (m *ItemMutation) ClearMenuID() {
	m.menu_id = nil
	m.clearedFields[item.FieldMenuID] = struct{}{}
}

// MenuIDCleared returns if the "menu_id" field was cleared in this mutation.
func (m *ItemMutation) MenuIDCleared() bool {
	_, ok := m.clearedFields[item.FieldMenuID]
	return ok
}

// ResetMenuID resets all changes to the "menu_id" field.
func (m *ItemMutation) ResetMenuID() {
	m.menu_id = nil
	delete(m.clearedFields, item.FieldMenuID)
}

// SetCategoryID sets the "category_id" field.
func (m *ItemMutation) SetCategoryID(s string) {
	m.category_id = &s
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *ItemMutation) CategoryID() (r string, exists bool) {
	v := m.category_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCategoryID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ClearCategoryID clears the value of the "category_id" field.
func (m *ItemMutation) ClearCategoryID() {
	m.category_id = nil
	m.clearedFields[item.FieldCategoryID] = struct{}{}
}

// CategoryIDCleared returns if the "category_id" field was cleared in this mutation.
func (m *ItemMutation) CategoryIDCleared() bool {
	_, ok := m.clearedFields[item.FieldCategoryID]
	return ok
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *ItemMutation) ResetCategoryID() {
	m.category_id = nil
	delete(m.clearedFields, item.FieldCategoryID)
}

// SetName sets the "name" field.
func (m *ItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ItemMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ItemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[item.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ItemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[item.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ItemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, item.FieldDescription)
}

// SetItemType sets the "item_type" field.
func (m *ItemMutation) SetItemType(it item.ItemType) {
	m.item_type = &it
}

// ItemType returns the value of the "item_type" field in the mutation.
func (m *ItemMutation) ItemType() (r item.ItemType, exists bool) {
	v := m.item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldItemType returns the old "item_type" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldItemType(ctx context.Context) (v item.ItemType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemType: %w", err)
	}
	return oldValue.ItemType, nil
}

// ResetItemType resets all changes to the "item_type" field.
func (m *ItemMutation) ResetItemType() {
	m.item_type = nil
}

// SetPrice sets the "price" field.
func (m *ItemMutation) SetPrice(d decimal.Decimal) {
	m.price = &d
}

// Price returns the value of the "price" field in the mutation.
func (m *ItemMutation) Price() (r decimal.Decimal, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldPrice(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// ResetPrice resets all changes to the "price" field.
func (m *ItemMutation) ResetPrice() {
	m.price = nil
}

// SetCost sets the "cost" field.
func (m *ItemMutation) SetCost(d decimal.Decimal) {
	m.cost = &d
}

// Cost returns the value of the "cost" field in the mutation.
func (m *ItemMutation) Cost() (r decimal.Decimal, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCost(ctx context.Context) (v *decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// ClearCost clears the value of the "cost" field.
func (m *ItemMutation) ClearCost() {
	m.cost = nil
	m.clearedFields[item.FieldCost] = struct{}{}
}

// CostCleared returns if the "cost" field was cleared in this mutation.
func (m *ItemMutation) CostCleared() bool {
	_, ok := m.clearedFields[item.FieldCost]
	return ok
}

// ResetCost resets all changes to the "cost" field.
func (m *ItemMutation) ResetCost() {
	m.cost = nil
	delete(m.clearedFields, item.FieldCost)
}

// SetPreparationTimeMinutes sets the "preparation_time_minutes" field.
func (m *ItemMutation) SetPreparationTimeMinutes(i int) {
	m.preparation_time_minutes = &i
	m.addpreparation_time_minutes = nil
}

// PreparationTimeMinutes returns the value of the "preparation_time_minutes" field in the mutation.
func (m *ItemMutation) PreparationTimeMinutes() (r int, exists bool) {
	v := m.preparation_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldPreparationTimeMinutes returns the old "preparation_time_minutes" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldPreparationTimeMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreparationTimeMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreparationTimeMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreparationTimeMinutes: %w", err)
	}
	return oldValue.PreparationTimeMinutes, nil
}

// AddPreparationTimeMinutes adds i to the "preparation_time_minutes" field.
func (m *ItemMutation) AddPreparationTimeMinutes(i int) {
	if m.addpreparation_time_minutes != nil {
		*m.addpreparation_time_minutes += i
	} else {
		m.addpreparation_time_minutes = &i
	}
}

// AddedPreparationTimeMinutes returns the value that was added to the "preparation_time_minutes" field in this mutation.
func (m *ItemMutation) AddedPreparationTimeMinutes() (r int, exists bool) {
	v := m.addpreparation_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearPreparationTimeMinutes clears the value of the "preparation_time_minutes" field.
func (m *ItemMutation) ClearPreparationTimeMinutes() {
	m.preparation_time_minutes = nil
	m.addpreparation_time_minutes = nil
	m.clearedFields[item.FieldPreparationTimeMinutes] = struct{}{}
}

// PreparationTimeMinutesCleared returns if the "preparation_time_minutes" field was cleared in this mutation.
func (m *ItemMutation) PreparationTimeMinutesCleared() bool {
	_, ok := m.clearedFields[item.FieldPreparationTimeMinutes]
	return ok
}

// ResetPreparationTimeMinutes resets all changes to the "preparation_time_minutes" field.
func (m *ItemMutation) ResetPreparationTimeMinutes() {
	m.preparation_time_minutes = nil
	m.addpreparation_time_minutes = nil
	delete(m.clearedFields, item.FieldPreparationTimeMinutes)
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *ItemMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *ItemMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDurationMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *ItemMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *ItemMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (m *ItemMutation) ClearDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
	m.clearedFields[item.FieldDurationMinutes] = struct{}{}
}

// DurationMinutesCleared returns if the "duration_minutes" field was cleared in this mutation.
func (m *ItemMutation) DurationMinutesCleared() bool {
	_, ok := m.clearedFields[item.FieldDurationMinutes]
	return ok
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *ItemMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
	delete(m.clearedFields, item.FieldDurationMinutes)
}

// SetIsSchedulable sets the "is_schedulable" field.
func (m *ItemMutation) SetIsSchedulable(b bool) {
	m.is_schedulable = &b
}

// IsSchedulable returns the value of the "is_schedulable" field in the mutation.
func (m *ItemMutation) IsSchedulable() (r bool, exists bool) {
	v := m.is_schedulable
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSchedulable returns the old "is_schedulable" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldIsSchedulable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSchedulable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSchedulable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSchedulable: %w", err)
	}
	return oldValue.IsSchedulable, nil
}

// ResetIsSchedulable resets all changes to the "is_schedulable" field.
func (m *ItemMutation) ResetIsSchedulable() {
	m.is_schedulable = nil
}

// SetMinScheduleHours sets the "min_schedule_hours" field.
func (m *ItemMutation) SetMinScheduleHours(i int) {
	m.min_schedule_hours = &i
	m.addmin_schedule_hours = nil
}

// MinScheduleHours returns the value of the "min_schedule_hours" field in the mutation.
func (m *ItemMutation) MinScheduleHours() (r int, exists bool) {
	v := m.min_schedule_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldMinScheduleHours returns the old "min_schedule_hours" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldMinScheduleHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinScheduleHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinScheduleHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinScheduleHours: %w", err)
	}
	return oldValue.MinScheduleHours, nil
}

// AddMinScheduleHours adds i to the "min_schedule_hours" field.
func (m *ItemMutation) AddMinScheduleHours(i int) {
	if m.addmin_schedule_hours != nil {
		*m.addmin_schedule_hours += i
	} else {
		m.addmin_schedule_hours = &i
	}
}

// AddedMinScheduleHours returns the value that was added to the "min_schedule_hours" field in this mutation.
func (m *ItemMutation) AddedMinScheduleHours() (r int, exists bool) {
	v := m.addmin_schedule_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinScheduleHours resets all changes to the "min_schedule_hours" field.
func (m *ItemMutation) ResetMinScheduleHours() {
	m.min_schedule_hours = nil
	m.addmin_schedule_hours = nil
}

// SetCancelableBeforeHours sets the "cancelable_before_hours" field.
func (m *ItemMutation) SetCancelableBeforeHours(i int) {
	m.cancelable_before_hours = &i
	m.addcancelable_before_hours = nil
}

// CancelableBeforeHours returns the value of the "cancelable_before_hours" field in the mutation.
func (m *ItemMutation) CancelableBeforeHours() (r int, exists bool) {
	v := m.cancelable_before_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelableBeforeHours returns the old "cancelable_before_hours" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCancelableBeforeHours(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelableBeforeHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelableBeforeHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelableBeforeHours: %w", err)
	}
	return oldValue.CancelableBeforeHours, nil
}

// AddCancelableBeforeHours adds i to the "cancelable_before_hours" field.
func (m *ItemMutation) AddCancelableBeforeHours(i int) {
	if m.addcancelable_before_hours != nil {
		*m.addcancelable_before_hours += i
	} else {
		m.addcancelable_before_hours = &i
	}
}

// AddedCancelableBeforeHours returns the value that was added to the "cancelable_before_hours" field in this mutation.
func (m *ItemMutation) AddedCancelableBeforeHours() (r int, exists bool) {
	v := m.addcancelable_before_hours
	if v == nil {
		return
	}
	return *v, true
}

// ClearCancelableBeforeHours clears the value of the "cancelable_before_hours" field.
func (m *ItemMutation) ClearCancelableBeforeHours() {
	m.cancelable_before_hours = nil
	m.addcancelable_before_hours = nil
	m.clearedFields[item.FieldCancelableBeforeHours] = struct{}{}
}

// CancelableBeforeHoursCleared returns if the "cancelable_before_hours" field was cleared in this mutation.
func (m *ItemMutation) CancelableBeforeHoursCleared() bool {
	_, ok := m.clearedFields[item.FieldCancelableBeforeHours]
	return ok
}

// ResetCancelableBeforeHours resets all changes to the "cancelable_before_hours" field.
func (m *ItemMutation) ResetCancelableBeforeHours() {
	m.cancelable_before_hours = nil
	m.addcancelable_before_hours = nil
	delete(m.clearedFields, item.FieldCancelableBeforeHours)
}

// SetStockQuantity sets the "stock_quantity" field.
func (m *ItemMutation) SetStockQuantity(i int) {
	m.stock_quantity = &i
	m.addstock_quantity = nil
}

// StockQuantity returns the value of the "stock_quantity" field in the mutation.
func (m *ItemMutation) StockQuantity() (r int, exists bool) {
	v := m.stock_quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldStockQuantity returns the old "stock_quantity" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldStockQuantity(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStockQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStockQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStockQuantity: %w", err)
	}
	return oldValue.StockQuantity, nil
}

// AddStockQuantity adds i to the "stock_quantity" field.
func (m *ItemMutation) AddStockQuantity(i int) {
	if m.addstock_quantity != nil {
		*m.addstock_quantity += i
	} else {
		m.addstock_quantity = &i
	}
}

// AddedStockQuantity returns the value that was added to the "stock_quantity" field in this mutation.
func (m *ItemMutation) AddedStockQuantity() (r int, exists bool) {
	v := m.addstock_quantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearStockQuantity clears the value of the "stock_quantity" field.
func (m *ItemMutation) ClearStockQuantity() {
	m.stock_quantity = nil
	m.addstock_quantity = nil
	m.clearedFields[item.FieldStockQuantity] = struct{}{}
}

// StockQuantityCleared returns if the "stock_quantity" field was cleared in this mutation.
func (m *ItemMutation) StockQuantityCleared() bool {
	_, ok := m.clearedFields[item.FieldStockQuantity]
	return ok
}

// ResetStockQuantity resets all changes to the "stock_quantity" field.
func (m *ItemMutation) ResetStockQuantity() {
	m.stock_quantity = nil
	m.addstock_quantity = nil
	delete(m.clearedFields, item.FieldStockQuantity)
}

// SetAvailability sets the "availability" field.
func (m *ItemMutation) SetAvailability(i item.Availability) {
	m.availability = &i
}

// Availability returns the value of the "availability" field in the mutation.
func (m *ItemMutation) Availability() (r item.Availability, exists bool) {
	v := m.availability
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailability returns the old "availability" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldAvailability(ctx context.Context) (v item.Availability, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailability: %w", err)
	}
	return oldValue.Availability, nil
}

// ResetAvailability resets all changes to the "availability" field.
func (m *ItemMutation) ResetAvailability() {
	m.availability = nil
}

// SetDaysAvailable sets the "days_available" field.
func (m *ItemMutation) SetDaysAvailable(i []int) {
	m.days_available = &i
	m.appenddays_available = nil
}

// DaysAvailable returns the value of the "days_available" field in the mutation.
func (m *ItemMutation) DaysAvailable() (r []int, exists bool) {
	v := m.days_available
	if v == nil {
		return
	}
	return *v, true
}

// OldDaysAvailable returns the old "days_available" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDaysAvailable(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDaysAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDaysAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDaysAvailable: %w", err)
	}
	return oldValue.DaysAvailable, nil
}

// AppendDaysAvailable adds i to the "days_available" field.
func (m *ItemMutation) AppendDaysAvailable(i []int) {
	m.appenddays_available = append(m.appenddays_available, i...)
}

// AppendedDaysAvailable returns the list of values that were appended to the "days_available" field in this mutation.
func (m *ItemMutation) AppendedDaysAvailable() ([]int, bool) {
	if len(m.appenddays_available) == 0 {
		return nil, false
	}
	return m.appenddays_available, true
}

// ClearDaysAvailable clears the value of the "days_available" field.
func (m *ItemMutation) ClearDaysAvailable() {
	m.days_available = nil
	m.appenddays_available = nil
	m.clearedFields[item.FieldDaysAvailable] = struct{}{}
}

// DaysAvailableCleared returns if the "days_available" field was cleared in this mutation.
func (m *ItemMutation) DaysAvailableCleared() bool {
	_, ok := m.clearedFields[item.FieldDaysAvailable]
	return ok
}

// ResetDaysAvailable resets all changes to the "days_available" field.
func (m *ItemMutation) ResetDaysAvailable() {
	m.days_available = nil
	m.appenddays_available = nil
	delete(m.clearedFields, item.FieldDaysAvailable)
}

// SetAvailableFrom sets the "available_from" field.
func (m *ItemMutation) SetAvailableFrom(s string) {
	m.available_from = &s
}

// AvailableFrom returns the value of the "available_from" field in the mutation.
func (m *ItemMutation) AvailableFrom() (r string, exists bool) {
	v := m.available_from
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableFrom returns the old "available_from" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldAvailableFrom(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableFrom: %w", err)
	}
	return oldValue.AvailableFrom, nil
}

// ClearAvailableFrom clears the value of the "available_from" field.
func (m *ItemMutation) ClearAvailableFrom() {
	m.available_from = nil
	m.clearedFields[item.FieldAvailableFrom] = struct{}{}
}

// AvailableFromCleared returns if the "available_from" field was cleared in this mutation.
func (m *ItemMutation) AvailableFromCleared() bool {
	_, ok := m.clearedFields[item.FieldAvailableFrom]
	return ok
}

// ResetAvailableFrom resets all changes to the "available_from" field.
func (m *ItemMutation) ResetAvailableFrom() {
	m.available_from = nil
	delete(m.clearedFields, item.FieldAvailableFrom)
}

// SetAvailableTo sets the "available_to" field.
func (m *ItemMutation) SetAvailableTo(s string) {
	m.available_to = &s
}

// AvailableTo returns the value of the "available_to" field in the mutation.
func (m *ItemMutation) AvailableTo() (r string, exists bool) {
	v := m.available_to
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableTo returns the old "available_to" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldAvailableTo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableTo: %w", err)
	}
	return oldValue.AvailableTo, nil
}

// ClearAvailableTo clears the value of the "available_to" field.
func (m *ItemMutation) ClearAvailableTo() {
	m.available_to = nil
	m.clearedFields[item.FieldAvailableTo] = struct{}{}
}

// AvailableToCleared returns if the "available_to" field was cleared in this mutation.
func (m *ItemMutation) AvailableToCleared() bool {
	_, ok := m.clearedFields[item.FieldAvailableTo]
	return ok
}

// ResetAvailableTo resets all changes to the "available_to" field.
func (m *ItemMutation) ResetAvailableTo() {
	m.available_to = nil
	delete(m.clearedFields, item.FieldAvailableTo)
}

// SetTimesOrdered sets the "times_ordered" field.
func (m *ItemMutation) SetTimesOrdered(i int) {
	m.times_ordered = &i
	m.addtimes_ordered = nil
}

// TimesOrdered returns the value of the "times_ordered" field in the mutation.
func (m *ItemMutation) TimesOrdered() (r int, exists bool) {
	v := m.times_ordered
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesOrdered returns the old "times_ordered" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldTimesOrdered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesOrdered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesOrdered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesOrdered: %w", err)
	}
	return oldValue.TimesOrdered, nil
}

// AddTimesOrdered adds i to the "times_ordered" field.
func (m *ItemMutation) AddTimesOrdered(i int) {
	if m.addtimes_ordered != nil {
		*m.addtimes_ordered += i
	} else {
		m.addtimes_ordered = &i
	}
}

// AddedTimesOrdered returns the value that was added to the "times_ordered" field in this mutation.
func (m *ItemMutation) AddedTimesOrdered() (r int, exists bool) {
	v := m.addtimes_ordered
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesOrdered resets all changes to the "times_ordered" field.
func (m *ItemMutation) ResetTimesOrdered() {
	m.times_ordered = nil
	m.addtimes_ordered = nil
}

// SetTimesDelivered sets the "times_delivered" field.
func (m *ItemMutation) SetTimesDelivered(i int) {
	m.times_delivered = &i
	m.addtimes_delivered = nil
}

// TimesDelivered returns the value of the "times_delivered" field in the mutation.
func (m *ItemMutation) TimesDelivered() (r int, exists bool) {
	v := m.times_delivered
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesDelivered returns the old "times_delivered" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldTimesDelivered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesDelivered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesDelivered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesDelivered: %w", err)
	}
	return oldValue.TimesDelivered, nil
}

// AddTimesDelivered adds i to the "times_delivered" field.
func (m *ItemMutation) AddTimesDelivered(i int) {
	if m.addtimes_delivered != nil {
		*m.addtimes_delivered += i
	} else {
		m.addtimes_delivered = &i
	}
}

// AddedTimesDelivered returns the value that was added to the "times_delivered" field in this mutation.
func (m *ItemMutation) AddedTimesDelivered() (r int, exists bool) {
	v := m.addtimes_delivered
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesDelivered resets all changes to the "times_delivered" field.
func (m *ItemMutation) ResetTimesDelivered() {
	m.times_delivered = nil
	m.addtimes_delivered = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ItemMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ItemMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ItemMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[item.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ItemMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[item.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ItemMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, item.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ItemMutation builder.
func (m *ItemMutation) Where(ps ...predicate.Item) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Item, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Item).
func (m *ItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.business_id != nil {
		fields = append(fields, item.FieldBusinessID)
	}
	if m.owner_user_id != nil {
		fields = append(fields, item.FieldOwnerUserID)
	}
	if m.menu_id != nil {
		fields = append(fields, item.FieldMenuID)
	}
	if m.category_id != nil {
		fields = append(fields, item.FieldCategoryID)
	}
	if m.name != nil {
		fields = append(fields, item.FieldName)
	}
	if m.description != nil {
		fields = append(fields, item.FieldDescription)
	}
	if m.item_type != nil {
		fields = append(fields, item.FieldItemType)
	}
	if m.price != nil {
		fields = append(fields, item.FieldPrice)
	}
	if m.cost != nil {
		fields = append(fields, item.FieldCost)
	}
	if m.preparation_time_minutes != nil {
		fields = append(fields, item.FieldPreparationTimeMinutes)
	}
	if m.duration_minutes != nil {
		fields = append(fields, item.FieldDurationMinutes)
	}
	if m.is_schedulable != nil {
		fields = append(fields, item.FieldIsSchedulable)
	}
	if m.min_schedule_hours != nil {
		fields = append(fields, item.FieldMinScheduleHours)
	}
	if m.cancelable_before_hours != nil {
		fields = append(fields, item.FieldCancelableBeforeHours)
	}
	if m.stock_quantity != nil {
		fields = append(fields, item.FieldStockQuantity)
	}
	if m.availability != nil {
		fields = append(fields, item.FieldAvailability)
	}
	if m.days_available != nil {
		fields = append(fields, item.FieldDaysAvailable)
	}
	if m.available_from != nil {
		fields = append(fields, item.FieldAvailableFrom)
	}
	if m.available_to != nil {
		fields = append(fields, item.FieldAvailableTo)
	}
	if m.times_ordered != nil {
		fields = append(fields, item.FieldTimesOrdered)
	}
	if m.times_delivered != nil {
		fields = append(fields, item.FieldTimesDelivered)
	}
	if m.deleted_at != nil {
		fields = append(fields, item.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, item.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, item.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case item.FieldBusinessID:
		return m.BusinessID()
	case item.FieldOwnerUserID:
		return m.OwnerUserID()
	case item.FieldMenuID:
		return m.MenuID()
	case item.FieldCategoryID:
		return m.CategoryID()
	case item.FieldName:
		return m.Name()
	case item.FieldDescription:
		return m.Description()
	case item.FieldItemType:
		return m.ItemType()
	case item.FieldPrice:
		return m.Price()
	case item.FieldCost:
		return m.Cost()
	case item.FieldPreparationTimeMinutes:
		return m.PreparationTimeMinutes()
	case item.FieldDurationMinutes:
		return m.DurationMinutes()
	case item.FieldIsSchedulable:
		return m.IsSchedulable()
	case item.FieldMinScheduleHours:
		return m.MinScheduleHours()
	case item.FieldCancelableBeforeHours:
		return m.CancelableBeforeHours()
	case item.FieldStockQuantity:
		return m.StockQuantity()
	case item.FieldAvailability:
		return m.Availability()
	case item.FieldDaysAvailable:
		return m.DaysAvailable()
	case item.FieldAvailableFrom:
		return m.AvailableFrom()
	case item.FieldAvailableTo:
		return m.AvailableTo()
	case item.FieldTimesOrdered:
		return m.TimesOrdered()
	case item.FieldTimesDelivered:
		return m.TimesDelivered()
	case item.FieldDeletedAt:
		return m.DeletedAt()
	case item.FieldCreatedAt:
		return m.CreatedAt()
	case item.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case item.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case item.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case item.FieldMenuID:
		return m.OldMenuID(ctx)
	case item.FieldCategoryID:
		return m.OldCategoryID(ctx)
	case item.FieldName:
		return m.OldName(ctx)
	case item.FieldDescription:
		return m.OldDescription(ctx)
	case item.FieldItemType:
		return m.OldItemType(ctx)
	case item.FieldPrice:
		return m.OldPrice(ctx)
	case item.FieldCost:
		return m.OldCost(ctx)
	case item.FieldPreparationTimeMinutes:
		return m.OldPreparationTimeMinutes(ctx)
	case item.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case item.FieldIsSchedulable:
		return m.OldIsSchedulable(ctx)
	case item.FieldMinScheduleHours:
		return m.OldMinScheduleHours(ctx)
	case item.FieldCancelableBeforeHours:
		return m.OldCancelableBeforeHours(ctx)
	case item.FieldStockQuantity:
		return m.OldStockQuantity(ctx)
	case item.FieldAvailability:
		return m.OldAvailability(ctx)
	case item.FieldDaysAvailable:
		return m.OldDaysAvailable(ctx)
	case item.FieldAvailableFrom:
		return m.OldAvailableFrom(ctx)
	case item.FieldAvailableTo:
		return m.OldAvailableTo(ctx)
	case item.FieldTimesOrdered:
		return m.OldTimesOrdered(ctx)
	case item.FieldTimesDelivered:
		return m.OldTimesDelivered(ctx)
	case item.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case item.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case item.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Item field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case item.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case item.FieldOwnerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case item.FieldMenuID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMenuID(v)
		return nil
	case item.FieldCategoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	case item.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case item.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case item.FieldItemType:
		v, ok := value.(item.ItemType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemType(v)
		return nil
	case item.FieldPrice:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case item.FieldCost:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case item.FieldPreparationTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreparationTimeMinutes(v)
		return nil
	case item.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case item.FieldIsSchedulable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSchedulable(v)
		return nil
	case item.FieldMinScheduleHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinScheduleHours(v)
		return nil
	case item.FieldCancelableBeforeHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelableBeforeHours(v)
		return nil
	case item.FieldStockQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStockQuantity(v)
		return nil
	case item.FieldAvailability:
		v, ok := value.(item.Availability)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailability(v)
		return nil
	case item.FieldDaysAvailable:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDaysAvailable(v)
		return nil
	case item.FieldAvailableFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableFrom(v)
		return nil
	case item.FieldAvailableTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableTo(v)
		return nil
	case item.FieldTimesOrdered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesOrdered(v)
		return nil
	case item.FieldTimesDelivered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesDelivered(v)
		return nil
	case item.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case item.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case item.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemMutation) AddedFields() []string {
	var fields []string
	if m.addpreparation_time_minutes != nil {
		fields = append(fields, item.FieldPreparationTimeMinutes)
	}
	if m.addduration_minutes != nil {
		fields = append(fields, item.FieldDurationMinutes)
	}
	if m.addmin_schedule_hours != nil {
		fields = append(fields, item.FieldMinScheduleHours)
	}
	if m.addcancelable_before_hours != nil {
		fields = append(fields, item.FieldCancelableBeforeHours)
	}
	if m.addstock_quantity != nil {
		fields = append(fields, item.FieldStockQuantity)
	}
	if m.addtimes_ordered != nil {
		fields = append(fields, item.FieldTimesOrdered)
	}
	if m.addtimes_delivered != nil {
		fields = append(fields, item.FieldTimesDelivered)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case item.FieldPreparationTimeMinutes:
		return m.AddedPreparationTimeMinutes()
	case item.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case item.FieldMinScheduleHours:
		return m.AddedMinScheduleHours()
	case item.FieldCancelableBeforeHours:
		return m.AddedCancelableBeforeHours()
	case item.FieldStockQuantity:
		return m.AddedStockQuantity()
	case item.FieldTimesOrdered:
		return m.AddedTimesOrdered()
	case item.FieldTimesDelivered:
		return m.AddedTimesDelivered()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case item.FieldPreparationTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPreparationTimeMinutes(v)
		return nil
	case item.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case item.FieldMinScheduleHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinScheduleHours(v)
		return nil
	case item.FieldCancelableBeforeHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCancelableBeforeHours(v)
		return nil
	case item.FieldStockQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStockQuantity(v)
		return nil
	case item.FieldTimesOrdered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesOrdered(v)
		return nil
	case item.FieldTimesDelivered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesDelivered(v)
		return nil
	}
	return fmt.Errorf("unknown Item numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(item.FieldOwnerUserID) {
		fields = append(fields, item.FieldOwnerUserID)
	}
	if m.FieldCleared(item.FieldMenuID) {
		fields = append(fields, item.FieldMenuID)
	}
	if m.FieldCleared(item.FieldCategoryID) {
		fields = append(fields, item.FieldCategoryID)
	}
	if m.FieldCleared(item.FieldDescription) {
		fields = append(fields, item.FieldDescription)
	}
	if m.FieldCleared(item.FieldCost) {
		fields = append(fields, item.FieldCost)
	}
	if m.FieldCleared(item.FieldPreparationTimeMinutes) {
		fields = append(fields, item.FieldPreparationTimeMinutes)
	}
	if m.FieldCleared(item.FieldDurationMinutes) {
		fields = append(fields, item.FieldDurationMinutes)
	}
	if m.FieldCleared(item.FieldCancelableBeforeHours) {
		fields = append(fields, item.FieldCancelableBeforeHours)
	}
	if m.FieldCleared(item.FieldStockQuantity) {
		fields = append(fields, item.FieldStockQuantity)
	}
	if m.FieldCleared(item.FieldDaysAvailable) {
		fields = append(fields, item.FieldDaysAvailable)
	}
	if m.FieldCleared(item.FieldAvailableFrom) {
		fields = append(fields, item.FieldAvailableFrom)
	}
	if m.FieldCleared(item.FieldAvailableTo) {
		fields = append(fields, item.FieldAvailableTo)
	}
	if m.FieldCleared(item.FieldDeletedAt) {
		fields = append(fields, item.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemMutation) ClearField(name string) error {
	switch name {
	case item.FieldOwnerUserID:
		m.ClearOwnerUserID()
		return nil
	case item.FieldMenuID:
		m.ClearMenuID()
		return nil
	case item.FieldCategoryID:
		m.ClearCategoryID()
		return nil
	case item.FieldDescription:
		m.ClearDescription()
		return nil
	case item.FieldCost:
		m.ClearCost()
		return nil
	case item.FieldPreparationTimeMinutes:
		m.ClearPreparationTimeMinutes()
		return nil
	case item.FieldDurationMinutes:
		m.ClearDurationMinutes()
		return nil
	case item.FieldCancelableBeforeHours:
		m.ClearCancelableBeforeHours()
		return nil
	case item.FieldStockQuantity:
		m.ClearStockQuantity()
		return nil
	case item.FieldDaysAvailable:
		m.ClearDaysAvailable()
		return nil
	case item.FieldAvailableFrom:
		m.ClearAvailableFrom()
		return nil
	case item.FieldAvailableTo:
		m.ClearAvailableTo()
		return nil
	case item.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Item nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemMutation) ResetField(name string) error {
	switch name {
	case item.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case item.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case item.FieldMenuID:
		m.ResetMenuID()
		return nil
	case item.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	case item.FieldName:
		m.ResetName()
		return nil
	case item.FieldDescription:
		m.ResetDescription()
		return nil
	case item.FieldItemType:
		m.ResetItemType()
		return nil
	case item.FieldPrice:
		m.ResetPrice()
		return nil
	case item.FieldCost:
		m.ResetCost()
		return nil
	case item.FieldPreparationTimeMinutes:
		m.ResetPreparationTimeMinutes()
		return nil
	case item.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case item.FieldIsSchedulable:
		m.ResetIsSchedulable()
		return nil
	case item.FieldMinScheduleHours:
		m.ResetMinScheduleHours()
		return nil
	case item.FieldCancelableBeforeHours:
		m.ResetCancelableBeforeHours()
		return nil
	case item.FieldStockQuantity:
		m.ResetStockQuantity()
		return nil
	case item.FieldAvailability:
		m.ResetAvailability()
		return nil
	case item.FieldDaysAvailable:
		m.ResetDaysAvailable()
		return nil
	case item.FieldAvailableFrom:
		m.ResetAvailableFrom()
		return nil
	case item.FieldAvailableTo:
		m.ResetAvailableTo()
		return nil
	case item.FieldTimesOrdered:
		m.ResetTimesOrdered()
		return nil
	case item.FieldTimesDelivered:
		m.ResetTimesDelivered()
		return nil
	case item.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case item.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case item.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Item unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Item edge %s", name)
}

// LLMTraceMutation represents an operation that mutates the LLMTrace nodes in the graph.
type LLMTraceMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	session_id             *string
	business_id            *string
	turn_id                *string
	model                  *string
	request_messages       *[]map[string]interface{}
	appendrequest_messages []map[string]interface{}
	final_text             *string
	tool_calls             *[]map[string]interface{}
	appendtool_calls       []map[string]interface{}
	iterations             *int
	additerations          *int
	input_tokens           *int
	addinput_tokens        *int
	output_tokens          *int
	addoutput_tokens       *int
	duration_ms            *int64
	addduration_ms         *int64
	error                  *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*LLMTrace, error)
	predicates             []predicate.LLMTrace
}

var _ ent.Mutation = (*LLMTraceMutation)(nil)

// llmtraceOption allows management of the mutation configuration using functional options.
type llmtraceOption func(*LLMTraceMutation)

// newLLMTraceMutation creates new mutation for the LLMTrace entity.
func newLLMTraceMutation(c config, op Op, opts ...llmtraceOption) *LLMTraceMutation {
	m := &LLMTraceMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMTrace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMTraceID sets the ID field of the mutation.
func withLLMTraceID(id string) llmtraceOption {
	return func(m *LLMTraceMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMTrace
		)
		m.oldValue = func(ctx context.Context) (*LLMTrace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMTrace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMTrace sets the old LLMTrace of the mutation.
func withLLMTrace(node *LLMTrace) llmtraceOption {
	return func(m *LLMTraceMutation) {
		m.oldValue = func(context.Context) (*LLMTrace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMTraceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMTraceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMTrace entities.
func (m *LLMTraceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMTraceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMTraceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMTrace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *LLMTraceMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LLMTraceMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LLMTraceMutation) ResetSessionID() {
	m.session_id = nil
}

// SetBusinessID sets the "business_id" field.
func (m *LLMTraceMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *LLMTraceMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *LLMTraceMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetTurnID sets the "turn_id" field.
func (m *LLMTraceMutation) SetTurnID(s string) {
	m.turn_id = &s
}

// TurnID returns the value of the "turn_id" field in the mutation.
func (m *LLMTraceMutation) TurnID() (r string, exists bool) {
	v := m.turn_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnID returns the old "turn_id" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldTurnID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnID: %w", err)
	}
	return oldValue.TurnID, nil
}

// ResetTurnID resets all changes to the "turn_id" field.
func (m *LLMTraceMutation) ResetTurnID() {
	m.turn_id = nil
}

// SetModel sets the "model" field.
func (m *LLMTraceMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMTraceMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *LLMTraceMutation) ClearModel() {
	m.model = nil
	m.clearedFields[llmtrace.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *LLMTraceMutation) ModelCleared() bool {
	_, ok := m.clearedFields[llmtrace.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *LLMTraceMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, llmtrace.FieldModel)
}

// SetRequestMessages sets the "request_messages" field.
func (m *LLMTraceMutation) SetRequestMessages(value []map[string]interface{}) {
	m.request_messages = &value
	m.appendrequest_messages = nil
}

// RequestMessages returns the value of the "request_messages" field in the mutation.
func (m *LLMTraceMutation) RequestMessages() (r []map[string]interface{}, exists bool) {
	v := m.request_messages
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestMessages returns the old "request_messages" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldRequestMessages(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestMessages: %w", err)
	}
	return oldValue.RequestMessages, nil
}

// AppendRequestMessages adds value to the "request_messages" field.
func (m *LLMTraceMutation) AppendRequestMessages(value []map[string]interface{}) {
	m.appendrequest_messages = append(m.appendrequest_messages, value...)
}

// AppendedRequestMessages returns the list of values that were appended to the "request_messages" field in this mutation.
func (m *LLMTraceMutation) AppendedRequestMessages() ([]map[string]interface{}, bool) {
	if len(m.appendrequest_messages) == 0 {
		return nil, false
	}
	return m.appendrequest_messages, true
}

// ClearRequestMessages clears the value of the "request_messages" field.
func (m *LLMTraceMutation) ClearRequestMessages() {
	m.request_messages = nil
	m.appendrequest_messages = nil
	m.clearedFields[llmtrace.FieldRequestMessages] = struct{}{}
}

// RequestMessagesCleared returns if the "request_messages" field was cleared in this mutation.
func (m *LLMTraceMutation) RequestMessagesCleared() bool {
	_, ok := m.clearedFields[llmtrace.FieldRequestMessages]
	return ok
}

// ResetRequestMessages resets all changes to the "request_messages" field.
func (m *LLMTraceMutation) ResetRequestMessages() {
	m.request_messages = nil
	m.appendrequest_messages = nil
	delete(m.clearedFields, llmtrace.FieldRequestMessages)
}

// SetFinalText sets the "final_text" field.
func (m *LLMTraceMutation) SetFinalText(s string) {
	m.final_text = &s
}

// FinalText returns the value of the "final_text" field in the mutation.
func (m *LLMTraceMutation) FinalText() (r string, exists bool) {
	v := m.final_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalText returns the old "final_text" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldFinalText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalText: %w", err)
	}
	return oldValue.FinalText, nil
}

// ClearFinalText clears the value of the "final_text" field.
func (m *LLMTraceMutation) ClearFinalText() {
	m.final_text = nil
	m.clearedFields[llmtrace.FieldFinalText] = struct{}{}
}

// FinalTextCleared returns if the "final_text" field was cleared in this mutation.
func (m *LLMTraceMutation) FinalTextCleared() bool {
	_, ok := m.clearedFields[llmtrace.FieldFinalText]
	return ok
}

// ResetFinalText resets all changes to the "final_text" field.
func (m *LLMTraceMutation) ResetFinalText() {
	m.final_text = nil
	delete(m.clearedFields, llmtrace.FieldFinalText)
}

// SetToolCalls sets the "tool_calls" field.
func (m *LLMTraceMutation) SetToolCalls(value []map[string]interface{}) {
	m.tool_calls = &value
	m.appendtool_calls = nil
}

// ToolCalls returns the value of the "tool_calls" field in the mutation.
func (m *LLMTraceMutation) ToolCalls() (r []map[string]interface{}, exists bool) {
	v := m.tool_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCalls returns the old "tool_calls" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldToolCalls(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCalls: %w", err)
	}
	return oldValue.ToolCalls, nil
}

// AppendToolCalls adds value to the "tool_calls" field.
func (m *LLMTraceMutation) AppendToolCalls(value []map[string]interface{}) {
	m.appendtool_calls = append(m.appendtool_calls, value...)
}

// AppendedToolCalls returns the list of values that were appended to the "tool_calls" field in this mutation.
func (m *LLMTraceMutation) AppendedToolCalls() ([]map[string]interface{}, bool) {
	if len(m.appendtool_calls) == 0 {
		return nil, false
	}
	return m.appendtool_calls, true
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (m *LLMTraceMutation) ClearToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	m.clearedFields[llmtrace.FieldToolCalls] = struct{}{}
}

// ToolCallsCleared returns if the "tool_calls" field was cleared in this mutation.
func (m *LLMTraceMutation) ToolCallsCleared() bool {
	_, ok := m.clearedFields[llmtrace.FieldToolCalls]
	return ok
}

// ResetToolCalls resets all changes to the "tool_calls" field.
func (m *LLMTraceMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	delete(m.clearedFields, llmtrace.FieldToolCalls)
}

// SetIterations sets the "iterations" field.
func (m *LLMTraceMutation) SetIterations(i int) {
	m.iterations = &i
	m.additerations = nil
}

// Iterations returns the value of the "iterations" field in the mutation.
func (m *LLMTraceMutation) Iterations() (r int, exists bool) {
	v := m.iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldIterations returns the old "iterations" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterations: %w", err)
	}
	return oldValue.Iterations, nil
}

// AddIterations adds i to the "iterations" field.
func (m *LLMTraceMutation) AddIterations(i int) {
	if m.additerations != nil {
		*m.additerations += i
	} else {
		m.additerations = &i
	}
}

// AddedIterations returns the value that was added to the "iterations" field in this mutation.
func (m *LLMTraceMutation) AddedIterations() (r int, exists bool) {
	v := m.additerations
	if v == nil {
		return
	}
	return *v, true
}

// ResetIterations resets all changes to the "iterations" field.
func (m *LLMTraceMutation) ResetIterations() {
	m.iterations = nil
	m.additerations = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMTraceMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMTraceMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMTraceMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMTraceMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMTraceMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMTraceMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMTraceMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMTraceMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMTraceMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMTraceMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *LLMTraceMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *LLMTraceMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *LLMTraceMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *LLMTraceMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *LLMTraceMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetError sets the "error" field.
func (m *LLMTraceMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *LLMTraceMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *LLMTraceMutation) ClearError() {
	m.error = nil
	m.clearedFields[llmtrace.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *LLMTraceMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[llmtrace.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *LLMTraceMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, llmtrace.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMTraceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMTraceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMTrace entity.
// If the LLMTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMTraceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMTraceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMTraceMutation builder.
func (m *LLMTraceMutation) Where(ps ...predicate.LLMTrace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMTraceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMTraceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMTrace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMTraceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMTraceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMTrace).
func (m *LLMTraceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMTraceMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.session_id != nil {
		fields = append(fields, llmtrace.FieldSessionID)
	}
	if m.business_id != nil {
		fields = append(fields, llmtrace.FieldBusinessID)
	}
	if m.turn_id != nil {
		fields = append(fields, llmtrace.FieldTurnID)
	}
	if m.model != nil {
		fields = append(fields, llmtrace.FieldModel)
	}
	if m.request_messages != nil {
		fields = append(fields, llmtrace.FieldRequestMessages)
	}
	if m.final_text != nil {
		fields = append(fields, llmtrace.FieldFinalText)
	}
	if m.tool_calls != nil {
		fields = append(fields, llmtrace.FieldToolCalls)
	}
	if m.iterations != nil {
		fields = append(fields, llmtrace.FieldIterations)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmtrace.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmtrace.FieldOutputTokens)
	}
	if m.duration_ms != nil {
		fields = append(fields, llmtrace.FieldDurationMs)
	}
	if m.error != nil {
		fields = append(fields, llmtrace.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, llmtrace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMTraceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmtrace.FieldSessionID:
		return m.SessionID()
	case llmtrace.FieldBusinessID:
		return m.BusinessID()
	case llmtrace.FieldTurnID:
		return m.TurnID()
	case llmtrace.FieldModel:
		return m.Model()
	case llmtrace.FieldRequestMessages:
		return m.RequestMessages()
	case llmtrace.FieldFinalText:
		return m.FinalText()
	case llmtrace.FieldToolCalls:
		return m.ToolCalls()
	case llmtrace.FieldIterations:
		return m.Iterations()
	case llmtrace.FieldInputTokens:
		return m.InputTokens()
	case llmtrace.FieldOutputTokens:
		return m.OutputTokens()
	case llmtrace.FieldDurationMs:
		return m.DurationMs()
	case llmtrace.FieldError:
		return m.Error()
	case llmtrace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMTraceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmtrace.FieldSessionID:
		return m.OldSessionID(ctx)
	case llmtrace.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case llmtrace.FieldTurnID:
		return m.OldTurnID(ctx)
	case llmtrace.FieldModel:
		return m.OldModel(ctx)
	case llmtrace.FieldRequestMessages:
		return m.OldRequestMessages(ctx)
	case llmtrace.FieldFinalText:
		return m.OldFinalText(ctx)
	case llmtrace.FieldToolCalls:
		return m.OldToolCalls(ctx)
	case llmtrace.FieldIterations:
		return m.OldIterations(ctx)
	case llmtrace.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmtrace.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmtrace.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case llmtrace.FieldError:
		return m.OldError(ctx)
	case llmtrace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMTrace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMTraceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmtrace.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case llmtrace.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case llmtrace.FieldTurnID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnID(v)
		return nil
	case llmtrace.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmtrace.FieldRequestMessages:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestMessages(v)
		return nil
	case llmtrace.FieldFinalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalText(v)
		return nil
	case llmtrace.FieldToolCalls:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCalls(v)
		return nil
	case llmtrace.FieldIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterations(v)
		return nil
	case llmtrace.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmtrace.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmtrace.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case llmtrace.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case llmtrace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMTrace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMTraceMutation) AddedFields() []string {
	var fields []string
	if m.additerations != nil {
		fields = append(fields, llmtrace.FieldIterations)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmtrace.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmtrace.FieldOutputTokens)
	}
	if m.addduration_ms != nil {
		fields = append(fields, llmtrace.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMTraceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmtrace.FieldIterations:
		return m.AddedIterations()
	case llmtrace.FieldInputTokens:
		return m.AddedInputTokens()
	case llmtrace.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmtrace.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMTraceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmtrace.FieldIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIterations(v)
		return nil
	case llmtrace.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmtrace.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmtrace.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMTrace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMTraceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmtrace.FieldModel) {
		fields = append(fields, llmtrace.FieldModel)
	}
	if m.FieldCleared(llmtrace.FieldRequestMessages) {
		fields = append(fields, llmtrace.FieldRequestMessages)
	}
	if m.FieldCleared(llmtrace.FieldFinalText) {
		fields = append(fields, llmtrace.FieldFinalText)
	}
	if m.FieldCleared(llmtrace.FieldToolCalls) {
		fields = append(fields, llmtrace.FieldToolCalls)
	}
	if m.FieldCleared(llmtrace.FieldError) {
		fields = append(fields, llmtrace.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMTraceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMTraceMutation) ClearField(name string) error {
	switch name {
	case llmtrace.FieldModel:
		m.ClearModel()
		return nil
	case llmtrace.FieldRequestMessages:
		m.ClearRequestMessages()
		return nil
	case llmtrace.FieldFinalText:
		m.ClearFinalText()
		return nil
	case llmtrace.FieldToolCalls:
		m.ClearToolCalls()
		return nil
	case llmtrace.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown LLMTrace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMTraceMutation) ResetField(name string) error {
	switch name {
	case llmtrace.FieldSessionID:
		m.ResetSessionID()
		return nil
	case llmtrace.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case llmtrace.FieldTurnID:
		m.ResetTurnID()
		return nil
	case llmtrace.FieldModel:
		m.ResetModel()
		return nil
	case llmtrace.FieldRequestMessages:
		m.ResetRequestMessages()
		return nil
	case llmtrace.FieldFinalText:
		m.ResetFinalText()
		return nil
	case llmtrace.FieldToolCalls:
		m.ResetToolCalls()
		return nil
	case llmtrace.FieldIterations:
		m.ResetIterations()
		return nil
	case llmtrace.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmtrace.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmtrace.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case llmtrace.FieldError:
		m.ResetError()
		return nil
	case llmtrace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMTrace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMTraceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMTraceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMTraceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMTraceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMTraceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMTraceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMTraceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMTrace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMTraceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMTrace edge %s", name)
}

// MenuMutation represents an operation that mutates the Menu nodes in the graph.
type MenuMutation struct {
	config
	op            Op
	typ           string
	id            *string
	business_id   *string
	owner_user_id *string
	name          *string
	description   *string
	is_active     *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Menu, error)
	predicates    []predicate.Menu
}

var _ ent.Mutation = (*MenuMutation)(nil)

// menuOption allows management of the mutation configuration using functional options.
type menuOption func(*MenuMutation)

// newMenuMutation creates new mutation for the Menu entity.
func newMenuMutation(c config, op Op, opts ...menuOption) *MenuMutation {
	m := &MenuMutation{
		config:        c,
		op:            op,
		typ:           TypeMenu,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMenuID sets the ID field of the mutation.
func withMenuID(id string) menuOption {
	return func(m *MenuMutation) {
		var (
			err   error
			once  sync.Once
			value *Menu
		)
		m.oldValue = func(ctx context.Context) (*Menu, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Menu.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMenu sets the old Menu of the mutation.
func withMenu(node *Menu) menuOption {
	return func(m *MenuMutation) {
		m.oldValue = func(context.Context) (*Menu, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MenuMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MenuMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Menu entities.
func (m *MenuMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MenuMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MenuMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Menu.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *MenuMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *MenuMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the Menu entity.
// If the Menu object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *MenuMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *MenuMutation) SetOwnerUserID(s string) {
	m.owner_user_id = &s
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *MenuMutation) OwnerUserID() (r string, exists bool) {
	v := m.owner_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the Menu entity.
// If the Menu object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuMutation) OldOwnerUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (m *MenuMutation) ClearOwnerUserID() {
	m.owner_user_id = nil
	m.clearedFields[menu.FieldOwnerUserID] = struct{}{}
}

// OwnerUserIDCleared returns if the "owner_user_id" field was cleared in this mutation.
func (m *MenuMutation) OwnerUserIDCleared() bool {
	_, ok := m.clearedFields[menu.FieldOwnerUserID]
	return ok
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *MenuMutation) ResetOwnerUserID() {
	m.owner_user_id = nil
	delete(m.clearedFields, menu.FieldOwnerUserID)
}

// SetName sets the "name" field.
func (m *MenuMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MenuMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Menu entity.
// If the Menu object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MenuMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *MenuMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MenuMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Menu entity.
// If the Menu object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MenuMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[menu.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MenuMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[menu.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MenuMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, menu.FieldDescription)
}

// SetIsActive sets the "is_active" field.
func (m *MenuMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *MenuMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Menu entity.
// If the Menu object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *MenuMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MenuMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MenuMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Menu entity.
// If the Menu object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MenuMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MenuMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MenuMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Menu entity.
// If the Menu object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MenuMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MenuMutation builder.
func (m *MenuMutation) Where(ps ...predicate.Menu) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MenuMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MenuMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Menu, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MenuMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MenuMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Menu).
func (m *MenuMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MenuMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.business_id != nil {
		fields = append(fields, menu.FieldBusinessID)
	}
	if m.owner_user_id != nil {
		fields = append(fields, menu.FieldOwnerUserID)
	}
	if m.name != nil {
		fields = append(fields, menu.FieldName)
	}
	if m.description != nil {
		fields = append(fields, menu.FieldDescription)
	}
	if m.is_active != nil {
		fields = append(fields, menu.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, menu.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, menu.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MenuMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case menu.FieldBusinessID:
		return m.BusinessID()
	case menu.FieldOwnerUserID:
		return m.OwnerUserID()
	case menu.FieldName:
		return m.Name()
	case menu.FieldDescription:
		return m.Description()
	case menu.FieldIsActive:
		return m.IsActive()
	case menu.FieldCreatedAt:
		return m.CreatedAt()
	case menu.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MenuMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case menu.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case menu.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case menu.FieldName:
		return m.OldName(ctx)
	case menu.FieldDescription:
		return m.OldDescription(ctx)
	case menu.FieldIsActive:
		return m.OldIsActive(ctx)
	case menu.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case menu.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Menu field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MenuMutation) SetField(name string, value ent.Value) error {
	switch name {
	case menu.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case menu.FieldOwnerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case menu.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case menu.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case menu.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case menu.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case menu.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Menu field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MenuMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MenuMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MenuMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Menu numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MenuMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(menu.FieldOwnerUserID) {
		fields = append(fields, menu.FieldOwnerUserID)
	}
	if m.FieldCleared(menu.FieldDescription) {
		fields = append(fields, menu.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MenuMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MenuMutation) ClearField(name string) error {
	switch name {
	case menu.FieldOwnerUserID:
		m.ClearOwnerUserID()
		return nil
	case menu.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Menu nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MenuMutation) ResetField(name string) error {
	switch name {
	case menu.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case menu.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case menu.FieldName:
		m.ResetName()
		return nil
	case menu.FieldDescription:
		m.ResetDescription()
		return nil
	case menu.FieldIsActive:
		m.ResetIsActive()
		return nil
	case menu.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case menu.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Menu field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MenuMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MenuMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MenuMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MenuMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MenuMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MenuMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MenuMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Menu unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MenuMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Menu edge %s", name)
}

// OpeningHourMutation represents an operation that mutates the OpeningHour nodes in the graph.
type OpeningHourMutation struct {
	config
	op              Op
	typ             string
	id              *string
	owner_type      *openinghour.OwnerType
	owner_id        *string
	day_of_week     *int
	addday_of_week  *int
	open_time       *string
	close_time      *string
	is_closed       *bool
	last_order_time *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*OpeningHour, error)
	predicates      []predicate.OpeningHour
}

var _ ent.Mutation = (*OpeningHourMutation)(nil)

// openinghourOption allows management of the mutation configuration using functional options.
type openinghourOption func(*OpeningHourMutation)

// newOpeningHourMutation creates new mutation for the OpeningHour entity.
func newOpeningHourMutation(c config, op Op, opts ...openinghourOption) *OpeningHourMutation {
	m := &OpeningHourMutation{
		config:        c,
		op:            op,
		typ:           TypeOpeningHour,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOpeningHourID sets the ID field of the mutation.
func withOpeningHourID(id string) openinghourOption {
	return func(m *OpeningHourMutation) {
		var (
			err   error
			once  sync.Once
			value *OpeningHour
		)
		m.oldValue = func(ctx context.Context) (*OpeningHour, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OpeningHour.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOpeningHour sets the old OpeningHour of the mutation.
func withOpeningHour(node *OpeningHour) openinghourOption {
	return func(m *OpeningHourMutation) {
		m.oldValue = func(context.Context) (*OpeningHour, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OpeningHourMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OpeningHourMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OpeningHour entities.
func (m *OpeningHourMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OpeningHourMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OpeningHourMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OpeningHour.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerType sets the "owner_type" field.
func (m *OpeningHourMutation) SetOwnerType(ot openinghour.OwnerType) {
	m.owner_type = &ot
}

// OwnerType returns the value of the "owner_type" field in the mutation.
func (m *OpeningHourMutation) OwnerType() (r openinghour.OwnerType, exists bool) {
	v := m.owner_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerType returns the old "owner_type" field's value of the OpeningHour entity.
// If the OpeningHour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OpeningHourMutation) OldOwnerType(ctx context.Context) (v openinghour.OwnerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerType: %w", err)
	}
	return oldValue.OwnerType, nil
}

// ResetOwnerType resets all changes to the "owner_type" field.
func (m *OpeningHourMutation) ResetOwnerType() {
	m.owner_type = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *OpeningHourMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *OpeningHourMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the OpeningHour entity.
// If the OpeningHour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OpeningHourMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *OpeningHourMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetDayOfWeek sets the "day_of_week" field.
func (m *OpeningHourMutation) SetDayOfWeek(i int) {
	m.day_of_week = &i
	m.addday_of_week = nil
}

// DayOfWeek returns the value of the "day_of_week" field in the mutation.
func (m *OpeningHourMutation) DayOfWeek() (r int, exists bool) {
	v := m.day_of_week
	if v == nil {
		return
	}
	return *v, true
}

// OldDayOfWeek returns the old "day_of_week" field's value of the OpeningHour entity.
// If the OpeningHour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OpeningHourMutation) OldDayOfWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayOfWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayOfWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayOfWeek: %w", err)
	}
	return oldValue.DayOfWeek, nil
}

// AddDayOfWeek adds i to the "day_of_week" field.
func (m *OpeningHourMutation) AddDayOfWeek(i int) {
	if m.addday_of_week != nil {
		*m.addday_of_week += i
	} else {
		m.addday_of_week = &i
	}
}

// AddedDayOfWeek returns the value that was added to the "day_of_week" field in this mutation.
func (m *OpeningHourMutation) AddedDayOfWeek() (r int, exists bool) {
	v := m.addday_of_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayOfWeek resets all changes to the "day_of_week" field.
func (m *OpeningHourMutation) ResetDayOfWeek() {
	m.day_of_week = nil
	m.addday_of_week = nil
}

// SetOpenTime sets the "open_time" field.
func (m *OpeningHourMutation) SetOpenTime(s string) {
	m.open_time = &s
}

// OpenTime returns the value of the "open_time" field in the mutation.
func (m *OpeningHourMutation) OpenTime() (r string, exists bool) {
	v := m.open_time
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenTime returns the old "open_time" field's value of the OpeningHour entity.
// If the OpeningHour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OpeningHourMutation) OldOpenTime(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenTime: %w", err)
	}
	return oldValue.OpenTime, nil
}

// ClearOpenTime clears the value of the "open_time" field.
func (m *OpeningHourMutation) ClearOpenTime() {
	m.open_time = nil
	m.clearedFields[openinghour.FieldOpenTime] = struct{}{}
}

// OpenTimeCleared returns if the "open_time" field was cleared in this mutation.
func (m *OpeningHourMutation) OpenTimeCleared() bool {
	_, ok := m.clearedFields[openinghour.FieldOpenTime]
	return ok
}

// ResetOpenTime resets all changes to the "open_time" field.
func (m *OpeningHourMutation) ResetOpenTime() {
	m.open_time = nil
	delete(m.clearedFields, openinghour.FieldOpenTime)
}

// SetCloseTime sets the "close_time" field.
func (m *OpeningHourMutation) SetCloseTime(s string) {
	m.close_time = &s
}

// CloseTime returns the value of the "close_time" field in the mutation.
func (m *OpeningHourMutation) CloseTime() (r string, exists bool) {
	v := m.close_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCloseTime returns the old "close_time" field's value of the OpeningHour entity.
// If the OpeningHour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OpeningHourMutation) OldCloseTime(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCloseTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCloseTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCloseTime: %w", err)
	}
	return oldValue.CloseTime, nil
}

// ClearCloseTime clears the value of the "close_time" field.
func (m *OpeningHourMutation) ClearCloseTime() {
	m.close_time = nil
	m.clearedFields[openinghour.FieldCloseTime] = struct{}{}
}

// CloseTimeCleared returns if the "close_time" field was cleared in this mutation.
func (m *OpeningHourMutation) CloseTimeCleared() bool {
	_, ok := m.clearedFields[openinghour.FieldCloseTime]
	return ok
}

// ResetCloseTime resets all changes to the "close_time" field.
func (m *OpeningHourMutation) ResetCloseTime() {
	m.close_time = nil
	delete(m.clearedFields, openinghour.FieldCloseTime)
}

// SetIsClosed sets the "is_closed" field.
func (m *OpeningHourMutation) SetIsClosed(b bool) {
	m.is_closed = &b
}

// IsClosed returns the value of the "is_closed" field in the mutation.
func (m *OpeningHourMutation) IsClosed() (r bool, exists bool) {
	v := m.is_closed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsClosed returns the old "is_closed" field's value of the OpeningHour entity.
// If the OpeningHour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OpeningHourMutation) OldIsClosed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsClosed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsClosed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsClosed: %w", err)
	}
	return oldValue.IsClosed, nil
}

// ResetIsClosed resets all changes to the "is_closed" field.
func (m *OpeningHourMutation) ResetIsClosed() {
	m.is_closed = nil
}

// SetLastOrderTime sets the "last_order_time" field.
func (m *OpeningHourMutation) SetLastOrderTime(s string) {
	m.last_order_time = &s
}

// LastOrderTime returns the value of the "last_order_time" field in the mutation.
func (m *OpeningHourMutation) LastOrderTime() (r string, exists bool) {
	v := m.last_order_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOrderTime returns the old "last_order_time" field's value of the OpeningHour entity.
// If the OpeningHour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OpeningHourMutation) OldLastOrderTime(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOrderTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOrderTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOrderTime: %w", err)
	}
	return oldValue.LastOrderTime, nil
}

// ClearLastOrderTime clears the value of the "last_order_time" field.
func (m *OpeningHourMutation) ClearLastOrderTime() {
	m.last_order_time = nil
	m.clearedFields[openinghour.FieldLastOrderTime] = struct{}{}
}

// LastOrderTimeCleared returns if the "last_order_time" field was cleared in this mutation.
func (m *OpeningHourMutation) LastOrderTimeCleared() bool {
	_, ok := m.clearedFields[openinghour.FieldLastOrderTime]
	return ok
}

// ResetLastOrderTime resets all changes to the "last_order_time" field.
func (m *OpeningHourMutation) ResetLastOrderTime() {
	m.last_order_time = nil
	delete(m.clearedFields, openinghour.FieldLastOrderTime)
}

// SetCreatedAt sets the "created_at" field.
func (m *OpeningHourMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OpeningHourMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OpeningHour entity.
// If the OpeningHour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OpeningHourMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OpeningHourMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OpeningHourMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OpeningHourMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the OpeningHour entity.
// If the OpeningHour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OpeningHourMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OpeningHourMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the OpeningHourMutation builder.
func (m *OpeningHourMutation) Where(ps ...predicate.OpeningHour) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OpeningHourMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OpeningHourMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OpeningHour, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OpeningHourMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OpeningHourMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OpeningHour).
func (m *OpeningHourMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OpeningHourMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.owner_type != nil {
		fields = append(fields, openinghour.FieldOwnerType)
	}
	if m.owner_id != nil {
		fields = append(fields, openinghour.FieldOwnerID)
	}
	if m.day_of_week != nil {
		fields = append(fields, openinghour.FieldDayOfWeek)
	}
	if m.open_time != nil {
		fields = append(fields, openinghour.FieldOpenTime)
	}
	if m.close_time != nil {
		fields = append(fields, openinghour.FieldCloseTime)
	}
	if m.is_closed != nil {
		fields = append(fields, openinghour.FieldIsClosed)
	}
	if m.last_order_time != nil {
		fields = append(fields, openinghour.FieldLastOrderTime)
	}
	if m.created_at != nil {
		fields = append(fields, openinghour.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, openinghour.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OpeningHourMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case openinghour.FieldOwnerType:
		return m.OwnerType()
	case openinghour.FieldOwnerID:
		return m.OwnerID()
	case openinghour.FieldDayOfWeek:
		return m.DayOfWeek()
	case openinghour.FieldOpenTime:
		return m.OpenTime()
	case openinghour.FieldCloseTime:
		return m.CloseTime()
	case openinghour.FieldIsClosed:
		return m.IsClosed()
	case openinghour.FieldLastOrderTime:
		return m.LastOrderTime()
	case openinghour.FieldCreatedAt:
		return m.CreatedAt()
	case openinghour.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OpeningHourMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case openinghour.FieldOwnerType:
		return m.OldOwnerType(ctx)
	case openinghour.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case openinghour.FieldDayOfWeek:
		return m.OldDayOfWeek(ctx)
	case openinghour.FieldOpenTime:
		return m.OldOpenTime(ctx)
	case openinghour.FieldCloseTime:
		return m.OldCloseTime(ctx)
	case openinghour.FieldIsClosed:
		return m.OldIsClosed(ctx)
	case openinghour.FieldLastOrderTime:
		return m.OldLastOrderTime(ctx)
	case openinghour.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case openinghour.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OpeningHour field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OpeningHourMutation) SetField(name string, value ent.Value) error {
	switch name {
	case openinghour.FieldOwnerType:
		v, ok := value.(openinghour.OwnerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerType(v)
		return nil
	case openinghour.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case openinghour.FieldDayOfWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayOfWeek(v)
		return nil
	case openinghour.FieldOpenTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenTime(v)
		return nil
	case openinghour.FieldCloseTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCloseTime(v)
		return nil
	case openinghour.FieldIsClosed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsClosed(v)
		return nil
	case openinghour.FieldLastOrderTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOrderTime(v)
		return nil
	case openinghour.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case openinghour.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OpeningHour field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OpeningHourMutation) AddedFields() []string {
	var fields []string
	if m.addday_of_week != nil {
		fields = append(fields, openinghour.FieldDayOfWeek)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OpeningHourMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case openinghour.FieldDayOfWeek:
		return m.AddedDayOfWeek()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OpeningHourMutation) AddField(name string, value ent.Value) error {
	switch name {
	case openinghour.FieldDayOfWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayOfWeek(v)
		return nil
	}
	return fmt.Errorf("unknown OpeningHour numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OpeningHourMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(openinghour.FieldOpenTime) {
		fields = append(fields, openinghour.FieldOpenTime)
	}
	if m.FieldCleared(openinghour.FieldCloseTime) {
		fields = append(fields, openinghour.FieldCloseTime)
	}
	if m.FieldCleared(openinghour.FieldLastOrderTime) {
		fields = append(fields, openinghour.FieldLastOrderTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OpeningHourMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OpeningHourMutation) ClearField(name string) error {
	switch name {
	case openinghour.FieldOpenTime:
		m.ClearOpenTime()
		return nil
	case openinghour.FieldCloseTime:
		m.ClearCloseTime()
		return nil
	case openinghour.FieldLastOrderTime:
		m.ClearLastOrderTime()
		return nil
	}
	return fmt.Errorf("unknown OpeningHour nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OpeningHourMutation) ResetField(name string) error {
	switch name {
	case openinghour.FieldOwnerType:
		m.ResetOwnerType()
		return nil
	case openinghour.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case openinghour.FieldDayOfWeek:
		m.ResetDayOfWeek()
		return nil
	case openinghour.FieldOpenTime:
		m.ResetOpenTime()
		return nil
	case openinghour.FieldCloseTime:
		m.ResetCloseTime()
		return nil
	case openinghour.FieldIsClosed:
		m.ResetIsClosed()
		return nil
	case openinghour.FieldLastOrderTime:
		m.ResetLastOrderTime()
		return nil
	case openinghour.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case openinghour.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown OpeningHour field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OpeningHourMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OpeningHourMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OpeningHourMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OpeningHourMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OpeningHourMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OpeningHourMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OpeningHourMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OpeningHour unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OpeningHourMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OpeningHour edge %s", name)
}

// OrderMutation represents an operation that mutates the Order nodes in the graph.
type OrderMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	business_id           *string
	user_id               *string
	customer_phone_number *string
	delivery_type         *order.DeliveryType
	status                *order.Status
	request_type          *order.RequestType
	scheduled_for         *time.Time
	subtotal              *decimal.Decimal
	delivery_price        *decimal.Decimal
	total                 *decimal.Decimal
	payment_method        *order.PaymentMethod
	payment_status        *order.PaymentStatus
	notes                 *string
	location_address      *string
	language_used         *string
	order_source          *order.OrderSource
	first_response_at     *time.Time
	completed_at          *time.Time
	cancelled_at          *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	items                 map[string]struct{}
	removeditems          map[string]struct{}
	cleareditems          bool
	status_history        map[string]struct{}
	removedstatus_history map[string]struct{}
	clearedstatus_history bool
	done                  bool
	oldValue              func(context.Context) (*Order, error)
	predicates            []predicate.Order
}

var _ ent.Mutation = (*OrderMutation)(nil)

// orderOption allows management of the mutation configuration using functional options.
type orderOption func(*OrderMutation)

// newOrderMutation creates new mutation for the Order entity.
func newOrderMutation(c config, op Op, opts ...orderOption) *OrderMutation {
	m := &OrderMutation{
		config:        c,
		op:            op,
		typ:           TypeOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderID sets the ID field of the mutation.
func withOrderID(id string) orderOption {
	return func(m *OrderMutation) {
		var (
			err   error
			once  sync.Once
			value *Order
		)
		m.oldValue = func(ctx context.Context) (*Order, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Order.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrder sets the old Order of the mutation.
func withOrder(node *Order) orderOption {
	return func(m *OrderMutation) {
		m.oldValue = func(context.Context) (*Order, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Order entities.
func (m *OrderMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Order.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *OrderMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *OrderMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *OrderMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetUserID sets the "user_id" field.
func (m *OrderMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *OrderMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *OrderMutation) ResetUserID() {
	m.user_id = nil
}

// SetCustomerPhoneNumber sets the "customer_phone_number" field.
func (m *OrderMutation) SetCustomerPhoneNumber(s string) {
	m.customer_phone_number = &s
}

// CustomerPhoneNumber returns the value of the "customer_phone_number" field in the mutation.
func (m *OrderMutation) CustomerPhoneNumber() (r string, exists bool) {
	v := m.customer_phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerPhoneNumber returns the old "customer_phone_number" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCustomerPhoneNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerPhoneNumber: %w", err)
	}
	return oldValue.CustomerPhoneNumber, nil
}

// ResetCustomerPhoneNumber resets all changes to the "customer_phone_number" field.
func (m *OrderMutation) ResetCustomerPhoneNumber() {
	m.customer_phone_number = nil
}

// SetDeliveryType sets the "delivery_type" field.
func (m *OrderMutation) SetDeliveryType(ot order.DeliveryType) {
	m.delivery_type = &ot
}

// DeliveryType returns the value of the "delivery_type" field in the mutation.
func (m *OrderMutation) DeliveryType() (r order.DeliveryType, exists bool) {
	v := m.delivery_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryType returns the old "delivery_type" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldDeliveryType(ctx context.Context) (v *order.DeliveryType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryType: %w", err)
	}
	return oldValue.DeliveryType, nil
}

// ClearDeliveryType clears the value of the "delivery_type" field.
func (m *OrderMutation) ClearDeliveryType() {
	m.delivery_type = nil
	m.clearedFields[order.FieldDeliveryType] = struct{}{}
}

// DeliveryTypeCleared returns if the "delivery_type" field was cleared in this mutation.
func (m *OrderMutation) DeliveryTypeCleared() bool {
	_, ok := m.clearedFields[order.FieldDeliveryType]
	return ok
}

// ResetDeliveryType resets all changes to the "delivery_type" field.
func (m *OrderMutation) ResetDeliveryType() {
	m.delivery_type = nil
	delete(m.clearedFields, order.FieldDeliveryType)
}

// SetStatus sets the "status" field.
func (m *OrderMutation) SetStatus(o order.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OrderMutation) Status() (r order.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldStatus(ctx context.Context) (v order.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OrderMutation) ResetStatus() {
	m.status = nil
}

// SetRequestType sets the "request_type" field.
func (m *OrderMutation) SetRequestType(ot order.RequestType) {
	m.request_type = &ot
}

// RequestType returns the value of the "request_type" field in the mutation.
func (m *OrderMutation) RequestType() (r order.RequestType, exists bool) {
	v := m.request_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestType returns the old "request_type" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldRequestType(ctx context.Context) (v order.RequestType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestType: %w", err)
	}
	return oldValue.RequestType, nil
}

// ResetRequestType resets all changes to the "request_type" field.
func (m *OrderMutation) ResetRequestType() {
	m.request_type = nil
}

// SetScheduledFor sets the "scheduled_for" field.
func (m *OrderMutation) SetScheduledFor(t time.Time) {
	m.scheduled_for = &t
}

// ScheduledFor returns the value of the "scheduled_for" field in the mutation.
func (m *OrderMutation) ScheduledFor() (r time.Time, exists bool) {
	v := m.scheduled_for
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledFor returns the old "scheduled_for" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldScheduledFor(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledFor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledFor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledFor: %w", err)
	}
	return oldValue.ScheduledFor, nil
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (m *OrderMutation) ClearScheduledFor() {
	m.scheduled_for = nil
	m.clearedFields[order.FieldScheduledFor] = struct{}{}
}

// ScheduledForCleared returns if the "scheduled_for" field was cleared in this mutation.
func (m *OrderMutation) ScheduledForCleared() bool {
	_, ok := m.clearedFields[order.FieldScheduledFor]
	return ok
}

// ResetScheduledFor resets all changes to the "scheduled_for" field.
func (m *OrderMutation) ResetScheduledFor() {
	m.scheduled_for = nil
	delete(m.clearedFields, order.FieldScheduledFor)
}

// SetSubtotal sets the "subtotal" field.
func (m *OrderMutation) SetSubtotal(d decimal.Decimal) {
	m.subtotal = &d
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *OrderMutation) Subtotal() (r decimal.Decimal, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldSubtotal(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *OrderMutation) ResetSubtotal() {
	m.subtotal = nil
}

// SetDeliveryPrice sets the "delivery_price" field.
func (m *OrderMutation) SetDeliveryPrice(d decimal.Decimal) {
	m.delivery_price = &d
}

// DeliveryPrice returns the value of the "delivery_price" field in the mutation.
func (m *OrderMutation) DeliveryPrice() (r decimal.Decimal, exists bool) {
	v := m.delivery_price
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryPrice returns the old "delivery_price" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldDeliveryPrice(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryPrice: %w", err)
	}
	return oldValue.DeliveryPrice, nil
}

// ResetDeliveryPrice resets all changes to the "delivery_price" field.
func (m *OrderMutation) ResetDeliveryPrice() {
	m.delivery_price = nil
}

// SetTotal sets the "total" field.
func (m *OrderMutation) SetTotal(d decimal.Decimal) {
	m.total = &d
}

// Total returns the value of the "total" field in the mutation.
func (m *OrderMutation) Total() (r decimal.Decimal, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldTotal(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// ResetTotal resets all changes to the "total" field.
func (m *OrderMutation) ResetTotal() {
	m.total = nil
}

// SetPaymentMethod sets the "payment_method" field.
func (m *OrderMutation) SetPaymentMethod(om order.PaymentMethod) {
	m.payment_method = &om
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *OrderMutation) PaymentMethod() (r order.PaymentMethod, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldPaymentMethod(ctx context.Context) (v order.PaymentMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *OrderMutation) ResetPaymentMethod() {
	m.payment_method = nil
}

// SetPaymentStatus sets the "payment_status" field.
func (m *OrderMutation) SetPaymentStatus(os order.PaymentStatus) {
	m.payment_status = &os
}

// PaymentStatus returns the value of the "payment_status" field in the mutation.
func (m *OrderMutation) PaymentStatus() (r order.PaymentStatus, exists bool) {
	v := m.payment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentStatus returns the old "payment_status" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldPaymentStatus(ctx context.Context) (v order.PaymentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentStatus: %w", err)
	}
	return oldValue.PaymentStatus, nil
}

// ResetPaymentStatus resets all changes to the "payment_status" field.
func (m *OrderMutation) ResetPaymentStatus() {
	m.payment_status = nil
}

// SetNotes sets the "notes" field.
func (m *OrderMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *OrderMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *OrderMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[order.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *OrderMutation) NotesCleared() bool {
	_, ok := m.clearedFields[order.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *OrderMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, order.FieldNotes)
}

// SetLocationAddress sets the "location_address" field.
func (m *OrderMutation) SetLocationAddress(s string) {
	m.location_address = &s
}

// LocationAddress returns the value of the "location_address" field in the mutation.
func (m *OrderMutation) LocationAddress() (r string, exists bool) {
	v := m.location_address
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationAddress returns the old "location_address" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldLocationAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationAddress: %w", err)
	}
	return oldValue.LocationAddress, nil
}

// ClearLocationAddress clears the value of the "location_address" field.
func (m *OrderMutation) ClearLocationAddress() {
	m.location_address = nil
	m.clearedFields[order.FieldLocationAddress] = struct{}{}
}

// LocationAddressCleared returns if the "location_address" field was cleared in this mutation.
func (m *OrderMutation) LocationAddressCleared() bool {
	_, ok := m.clearedFields[order.FieldLocationAddress]
	return ok
}

// ResetLocationAddress resets all changes to the "location_address" field.
func (m *OrderMutation) ResetLocationAddress() {
	m.location_address = nil
	delete(m.clearedFields, order.FieldLocationAddress)
}

// SetLanguageUsed sets the "language_used" field.
func (m *OrderMutation) SetLanguageUsed(s string) {
	m.language_used = &s
}

// LanguageUsed returns the value of the "language_used" field in the mutation.
func (m *OrderMutation) LanguageUsed() (r string, exists bool) {
	v := m.language_used
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageUsed returns the old "language_used" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldLanguageUsed(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageUsed: %w", err)
	}
	return oldValue.LanguageUsed, nil
}

// ClearLanguageUsed clears the value of the "language_used" field.
func (m *OrderMutation) ClearLanguageUsed() {
	m.language_used = nil
	m.clearedFields[order.FieldLanguageUsed] = struct{}{}
}

// LanguageUsedCleared returns if the "language_used" field was cleared in this mutation.
func (m *OrderMutation) LanguageUsedCleared() bool {
	_, ok := m.clearedFields[order.FieldLanguageUsed]
	return ok
}

// ResetLanguageUsed resets all changes to the "language_used" field.
func (m *OrderMutation) ResetLanguageUsed() {
	m.language_used = nil
	delete(m.clearedFields, order.FieldLanguageUsed)
}

// SetOrderSource sets the "order_source" field.
func (m *OrderMutation) SetOrderSource(os order.OrderSource) {
	m.order_source = &os
}

// OrderSource returns the value of the "order_source" field in the mutation.
func (m *OrderMutation) OrderSource() (r order.OrderSource, exists bool) {
	v := m.order_source
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderSource returns the old "order_source" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldOrderSource(ctx context.Context) (v order.OrderSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderSource: %w", err)
	}
	return oldValue.OrderSource, nil
}

// ResetOrderSource resets all changes to the "order_source" field.
func (m *OrderMutation) ResetOrderSource() {
	m.order_source = nil
}

// SetFirstResponseAt sets the "first_response_at" field.
func (m *OrderMutation) SetFirstResponseAt(t time.Time) {
	m.first_response_at = &t
}

// FirstResponseAt returns the value of the "first_response_at" field in the mutation.
func (m *OrderMutation) FirstResponseAt() (r time.Time, exists bool) {
	v := m.first_response_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstResponseAt returns the old "first_response_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldFirstResponseAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstResponseAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstResponseAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstResponseAt: %w", err)
	}
	return oldValue.FirstResponseAt, nil
}

// ClearFirstResponseAt clears the value of the "first_response_at" field.
func (m *OrderMutation) ClearFirstResponseAt() {
	m.first_response_at = nil
	m.clearedFields[order.FieldFirstResponseAt] = struct{}{}
}

// FirstResponseAtCleared returns if the "first_response_at" field was cleared in this mutation.
func (m *OrderMutation) FirstResponseAtCleared() bool {
	_, ok := m.clearedFields[order.FieldFirstResponseAt]
	return ok
}

// ResetFirstResponseAt resets all changes to the "first_response_at" field.
func (m *OrderMutation) ResetFirstResponseAt() {
	m.first_response_at = nil
	delete(m.clearedFields, order.FieldFirstResponseAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *OrderMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *OrderMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *OrderMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[order.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *OrderMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[order.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *OrderMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, order.FieldCompletedAt)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *OrderMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *OrderMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *OrderMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[order.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *OrderMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[order.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *OrderMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, order.FieldCancelledAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddItemIDs adds the "items" edge to the OrderItem entity by ids.
func (m *OrderMutation) AddItemIDs(ids ...string) {
	if m.items == nil {
		m.items = make(map[string]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the OrderItem entity.
func (m *OrderMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the OrderItem entity was cleared.
func (m *OrderMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the OrderItem entity by IDs.
func (m *OrderMutation) RemoveItemIDs(ids ...string) {
	if m.removeditems == nil {
		m.removeditems = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the OrderItem entity.
func (m *OrderMutation) RemovedItemsIDs() (ids []string) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *OrderMutation) ItemsIDs() (ids []string) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *OrderMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// AddStatusHistoryIDs adds the "status_history" edge to the OrderStatusHistory entity by ids.
func (m *OrderMutation) AddStatusHistoryIDs(ids ...string) {
	if m.status_history == nil {
		m.status_history = make(map[string]struct{})
	}
	for i := range ids {
		m.status_history[ids[i]] = struct{}{}
	}
}

// ClearStatusHistory clears the "status_history" edge to the OrderStatusHistory entity.
func (m *OrderMutation) ClearStatusHistory() {
	m.clearedstatus_history = true
}

// StatusHistoryCleared reports if the "status_history" edge to the OrderStatusHistory entity was cleared.
func (m *OrderMutation) StatusHistoryCleared() bool {
	return m.clearedstatus_history
}

// RemoveStatusHistoryIDs removes the "status_history" edge to the OrderStatusHistory entity by IDs.
func (m *OrderMutation) RemoveStatusHistoryIDs(ids ...string) {
	if m.removedstatus_history == nil {
		m.removedstatus_history = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.status_history, ids[i])
		m.removedstatus_history[ids[i]] = struct{}{}
	}
}

// RemovedStatusHistory returns the removed IDs of the "status_history" edge to the OrderStatusHistory entity.
func (m *OrderMutation) RemovedStatusHistoryIDs() (ids []string) {
	for id := range m.removedstatus_history {
		ids = append(ids, id)
	}
	return
}

// StatusHistoryIDs returns the "status_history" edge IDs in the mutation.
func (m *OrderMutation) StatusHistoryIDs() (ids []string) {
	for id := range m.status_history {
		ids = append(ids, id)
	}
	return
}

// ResetStatusHistory resets all changes to the "status_history" edge.
func (m *OrderMutation) ResetStatusHistory() {
	m.status_history = nil
	m.clearedstatus_history = false
	m.removedstatus_history = nil
}

// Where appends a list predicates to the OrderMutation builder.
func (m *OrderMutation) Where(ps ...predicate.Order) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Order, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Order).
func (m *OrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.business_id != nil {
		fields = append(fields, order.FieldBusinessID)
	}
	if m.user_id != nil {
		fields = append(fields, order.FieldUserID)
	}
	if m.customer_phone_number != nil {
		fields = append(fields, order.FieldCustomerPhoneNumber)
	}
	if m.delivery_type != nil {
		fields = append(fields, order.FieldDeliveryType)
	}
	if m.status != nil {
		fields = append(fields, order.FieldStatus)
	}
	if m.request_type != nil {
		fields = append(fields, order.FieldRequestType)
	}
	if m.scheduled_for != nil {
		fields = append(fields, order.FieldScheduledFor)
	}
	if m.subtotal != nil {
		fields = append(fields, order.FieldSubtotal)
	}
	if m.delivery_price != nil {
		fields = append(fields, order.FieldDeliveryPrice)
	}
	if m.total != nil {
		fields = append(fields, order.FieldTotal)
	}
	if m.payment_method != nil {
		fields = append(fields, order.FieldPaymentMethod)
	}
	if m.payment_status != nil {
		fields = append(fields, order.FieldPaymentStatus)
	}
	if m.notes != nil {
		fields = append(fields, order.FieldNotes)
	}
	if m.location_address != nil {
		fields = append(fields, order.FieldLocationAddress)
	}
	if m.language_used != nil {
		fields = append(fields, order.FieldLanguageUsed)
	}
	if m.order_source != nil {
		fields = append(fields, order.FieldOrderSource)
	}
	if m.first_response_at != nil {
		fields = append(fields, order.FieldFirstResponseAt)
	}
	if m.completed_at != nil {
		fields = append(fields, order.FieldCompletedAt)
	}
	if m.cancelled_at != nil {
		fields = append(fields, order.FieldCancelledAt)
	}
	if m.created_at != nil {
		fields = append(fields, order.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, order.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case order.FieldBusinessID:
		return m.BusinessID()
	case order.FieldUserID:
		return m.UserID()
	case order.FieldCustomerPhoneNumber:
		return m.CustomerPhoneNumber()
	case order.FieldDeliveryType:
		return m.DeliveryType()
	case order.FieldStatus:
		return m.Status()
	case order.FieldRequestType:
		return m.RequestType()
	case order.FieldScheduledFor:
		return m.ScheduledFor()
	case order.FieldSubtotal:
		return m.Subtotal()
	case order.FieldDeliveryPrice:
		return m.DeliveryPrice()
	case order.FieldTotal:
		return m.Total()
	case order.FieldPaymentMethod:
		return m.PaymentMethod()
	case order.FieldPaymentStatus:
		return m.PaymentStatus()
	case order.FieldNotes:
		return m.Notes()
	case order.FieldLocationAddress:
		return m.LocationAddress()
	case order.FieldLanguageUsed:
		return m.LanguageUsed()
	case order.FieldOrderSource:
		return m.OrderSource()
	case order.FieldFirstResponseAt:
		return m.FirstResponseAt()
	case order.FieldCompletedAt:
		return m.CompletedAt()
	case order.FieldCancelledAt:
		return m.CancelledAt()
	case order.FieldCreatedAt:
		return m.CreatedAt()
	case order.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case order.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case order.FieldUserID:
		return m.OldUserID(ctx)
	case order.FieldCustomerPhoneNumber:
		return m.OldCustomerPhoneNumber(ctx)
	case order.FieldDeliveryType:
		return m.OldDeliveryType(ctx)
	case order.FieldStatus:
		return m.OldStatus(ctx)
	case order.FieldRequestType:
		return m.OldRequestType(ctx)
	case order.FieldScheduledFor:
		return m.OldScheduledFor(ctx)
	case order.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case order.FieldDeliveryPrice:
		return m.OldDeliveryPrice(ctx)
	case order.FieldTotal:
		return m.OldTotal(ctx)
	case order.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case order.FieldPaymentStatus:
		return m.OldPaymentStatus(ctx)
	case order.FieldNotes:
		return m.OldNotes(ctx)
	case order.FieldLocationAddress:
		return m.OldLocationAddress(ctx)
	case order.FieldLanguageUsed:
		return m.OldLanguageUsed(ctx)
	case order.FieldOrderSource:
		return m.OldOrderSource(ctx)
	case order.FieldFirstResponseAt:
		return m.OldFirstResponseAt(ctx)
	case order.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case order.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case order.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case order.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Order field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case order.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case order.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case order.FieldCustomerPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerPhoneNumber(v)
		return nil
	case order.FieldDeliveryType:
		v, ok := value.(order.DeliveryType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryType(v)
		return nil
	case order.FieldStatus:
		v, ok := value.(order.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case order.FieldRequestType:
		v, ok := value.(order.RequestType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestType(v)
		return nil
	case order.FieldScheduledFor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledFor(v)
		return nil
	case order.FieldSubtotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case order.FieldDeliveryPrice:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryPrice(v)
		return nil
	case order.FieldTotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case order.FieldPaymentMethod:
		v, ok := value.(order.PaymentMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case order.FieldPaymentStatus:
		v, ok := value.(order.PaymentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentStatus(v)
		return nil
	case order.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case order.FieldLocationAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationAddress(v)
		return nil
	case order.FieldLanguageUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageUsed(v)
		return nil
	case order.FieldOrderSource:
		v, ok := value.(order.OrderSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderSource(v)
		return nil
	case order.FieldFirstResponseAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstResponseAt(v)
		return nil
	case order.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case order.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case order.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case order.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Order numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(order.FieldDeliveryType) {
		fields = append(fields, order.FieldDeliveryType)
	}
	if m.FieldCleared(order.FieldScheduledFor) {
		fields = append(fields, order.FieldScheduledFor)
	}
	if m.FieldCleared(order.FieldNotes) {
		fields = append(fields, order.FieldNotes)
	}
	if m.FieldCleared(order.FieldLocationAddress) {
		fields = append(fields, order.FieldLocationAddress)
	}
	if m.FieldCleared(order.FieldLanguageUsed) {
		fields = append(fields, order.FieldLanguageUsed)
	}
	if m.FieldCleared(order.FieldFirstResponseAt) {
		fields = append(fields, order.FieldFirstResponseAt)
	}
	if m.FieldCleared(order.FieldCompletedAt) {
		fields = append(fields, order.FieldCompletedAt)
	}
	if m.FieldCleared(order.FieldCancelledAt) {
		fields = append(fields, order.FieldCancelledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderMutation) ClearField(name string) error {
	switch name {
	case order.FieldDeliveryType:
		m.ClearDeliveryType()
		return nil
	case order.FieldScheduledFor:
		m.ClearScheduledFor()
		return nil
	case order.FieldNotes:
		m.ClearNotes()
		return nil
	case order.FieldLocationAddress:
		m.ClearLocationAddress()
		return nil
	case order.FieldLanguageUsed:
		m.ClearLanguageUsed()
		return nil
	case order.FieldFirstResponseAt:
		m.ClearFirstResponseAt()
		return nil
	case order.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case order.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	}
	return fmt.Errorf("unknown Order nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderMutation) ResetField(name string) error {
	switch name {
	case order.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case order.FieldUserID:
		m.ResetUserID()
		return nil
	case order.FieldCustomerPhoneNumber:
		m.ResetCustomerPhoneNumber()
		return nil
	case order.FieldDeliveryType:
		m.ResetDeliveryType()
		return nil
	case order.FieldStatus:
		m.ResetStatus()
		return nil
	case order.FieldRequestType:
		m.ResetRequestType()
		return nil
	case order.FieldScheduledFor:
		m.ResetScheduledFor()
		return nil
	case order.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case order.FieldDeliveryPrice:
		m.ResetDeliveryPrice()
		return nil
	case order.FieldTotal:
		m.ResetTotal()
		return nil
	case order.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case order.FieldPaymentStatus:
		m.ResetPaymentStatus()
		return nil
	case order.FieldNotes:
		m.ResetNotes()
		return nil
	case order.FieldLocationAddress:
		m.ResetLocationAddress()
		return nil
	case order.FieldLanguageUsed:
		m.ResetLanguageUsed()
		return nil
	case order.FieldOrderSource:
		m.ResetOrderSource()
		return nil
	case order.FieldFirstResponseAt:
		m.ResetFirstResponseAt()
		return nil
	case order.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case order.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case order.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case order.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.items != nil {
		edges = append(edges, order.EdgeItems)
	}
	if m.status_history != nil {
		edges = append(edges, order.EdgeStatusHistory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case order.EdgeStatusHistory:
		ids := make([]ent.Value, 0, len(m.status_history))
		for id := range m.status_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeditems != nil {
		edges = append(edges, order.EdgeItems)
	}
	if m.removedstatus_history != nil {
		edges = append(edges, order.EdgeStatusHistory)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case order.EdgeStatusHistory:
		ids := make([]ent.Value, 0, len(m.removedstatus_history))
		for id := range m.removedstatus_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareditems {
		edges = append(edges, order.EdgeItems)
	}
	if m.clearedstatus_history {
		edges = append(edges, order.EdgeStatusHistory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderMutation) EdgeCleared(name string) bool {
	switch name {
	case order.EdgeItems:
		return m.cleareditems
	case order.EdgeStatusHistory:
		return m.clearedstatus_history
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Order unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderMutation) ResetEdge(name string) error {
	switch name {
	case order.EdgeItems:
		m.ResetItems()
		return nil
	case order.EdgeStatusHistory:
		m.ResetStatusHistory()
		return nil
	}
	return fmt.Errorf("unknown Order edge %s", name)
}

// OrderItemMutation represents an operation that mutates the OrderItem nodes in the graph.
type OrderItemMutation struct {
	config
	op            Op
	typ           string
	id            *string
	item_id       *string
	quantity      *int
	addquantity   *int
	price_at_time *decimal.Decimal
	cost_at_time  *decimal.Decimal
	name_at_time  *string
	notes         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	_order        *string
	cleared_order bool
	done          bool
	oldValue      func(context.Context) (*OrderItem, error)
	predicates    []predicate.OrderItem
}

var _ ent.Mutation = (*OrderItemMutation)(nil)

// orderitemOption allows management of the mutation configuration using functional options.
type orderitemOption func(*OrderItemMutation)

// newOrderItemMutation creates new mutation for the OrderItem entity.
func newOrderItemMutation(c config, op Op, opts ...orderitemOption) *OrderItemMutation {
	m := &OrderItemMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderItemID sets the ID field of the mutation.
func withOrderItemID(id string) orderitemOption {
	return func(m *OrderItemMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderItem
		)
		m.oldValue = func(ctx context.Context) (*OrderItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderItem sets the old OrderItem of the mutation.
func withOrderItem(node *OrderItem) orderitemOption {
	return func(m *OrderItemMutation) {
		m.oldValue = func(context.Context) (*OrderItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrderItem entities.
func (m *OrderItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *OrderItemMutation) SetOrderID(s string) {
	m._order = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *OrderItemMutation) OrderID() (r string, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *OrderItemMutation) ResetOrderID() {
	m._order = nil
}

// SetItemID sets the "item_id" field.
func (m *OrderItemMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *OrderItemMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *OrderItemMutation) ResetItemID() {
	m.item_id = nil
}

// SetQuantity sets the "quantity" field.
func (m *OrderItemMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *OrderItemMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *OrderItemMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *OrderItemMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *OrderItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetPriceAtTime sets the "price_at_time" field.
func (m *OrderItemMutation) SetPriceAtTime(d decimal.Decimal) {
	m.price_at_time = &d
}

// PriceAtTime returns the value of the "price_at_time" field in the mutation.
func (m *OrderItemMutation) PriceAtTime() (r decimal.Decimal, exists bool) {
	v := m.price_at_time
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceAtTime returns the old "price_at_time" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldPriceAtTime(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceAtTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceAtTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceAtTime: %w", err)
	}
	return oldValue.PriceAtTime, nil
}

// ResetPriceAtTime resets all changes to the "price_at_time" field.
func (m *OrderItemMutation) ResetPriceAtTime() {
	m.price_at_time = nil
}

// SetCostAtTime sets the "cost_at_time" field.
func (m *OrderItemMutation) SetCostAtTime(d decimal.Decimal) {
	m.cost_at_time = &d
}

// CostAtTime returns the value of the "cost_at_time" field in the mutation.
func (m *OrderItemMutation) CostAtTime() (r decimal.Decimal, exists bool) {
	v := m.cost_at_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCostAtTime returns the old "cost_at_time" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldCostAtTime(ctx context.Context) (v *decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostAtTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostAtTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostAtTime: %w", err)
	}
	return oldValue.CostAtTime, nil
}

// ClearCostAtTime clears the value of the "cost_at_time" field.
func (m *OrderItemMutation) ClearCostAtTime() {
	m.cost_at_time = nil
	m.clearedFields[orderitem.FieldCostAtTime] = struct{}{}
}

// CostAtTimeCleared returns if the "cost_at_time" field was cleared in this mutation.
func (m *OrderItemMutation) CostAtTimeCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldCostAtTime]
	return ok
}

// ResetCostAtTime resets all changes to the "cost_at_time" field.
func (m *OrderItemMutation) ResetCostAtTime() {
	m.cost_at_time = nil
	delete(m.clearedFields, orderitem.FieldCostAtTime)
}

// SetNameAtTime sets the "name_at_time" field.
func (m *OrderItemMutation) SetNameAtTime(s string) {
	m.name_at_time = &s
}

// NameAtTime returns the value of the "name_at_time" field in the mutation.
func (m *OrderItemMutation) NameAtTime() (r string, exists bool) {
	v := m.name_at_time
	if v == nil {
		return
	}
	return *v, true
}

// OldNameAtTime returns the old "name_at_time" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldNameAtTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameAtTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameAtTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameAtTime: %w", err)
	}
	return oldValue.NameAtTime, nil
}

// ResetNameAtTime resets all changes to the "name_at_time" field.
func (m *OrderItemMutation) ResetNameAtTime() {
	m.name_at_time = nil
}

// SetNotes sets the "notes" field.
func (m *OrderItemMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *OrderItemMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *OrderItemMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[orderitem.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *OrderItemMutation) NotesCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *OrderItemMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, orderitem.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *OrderItemMutation) ClearOrder() {
	m.cleared_order = true
	m.clearedFields[orderitem.FieldOrderID] = struct{}{}
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *OrderItemMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *OrderItemMutation) OrderIDs() (ids []string) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *OrderItemMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// Where appends a list predicates to the OrderItemMutation builder.
func (m *OrderItemMutation) Where(ps ...predicate.OrderItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderItem).
func (m *OrderItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderItemMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m._order != nil {
		fields = append(fields, orderitem.FieldOrderID)
	}
	if m.item_id != nil {
		fields = append(fields, orderitem.FieldItemID)
	}
	if m.quantity != nil {
		fields = append(fields, orderitem.FieldQuantity)
	}
	if m.price_at_time != nil {
		fields = append(fields, orderitem.FieldPriceAtTime)
	}
	if m.cost_at_time != nil {
		fields = append(fields, orderitem.FieldCostAtTime)
	}
	if m.name_at_time != nil {
		fields = append(fields, orderitem.FieldNameAtTime)
	}
	if m.notes != nil {
		fields = append(fields, orderitem.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, orderitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldOrderID:
		return m.OrderID()
	case orderitem.FieldItemID:
		return m.ItemID()
	case orderitem.FieldQuantity:
		return m.Quantity()
	case orderitem.FieldPriceAtTime:
		return m.PriceAtTime()
	case orderitem.FieldCostAtTime:
		return m.CostAtTime()
	case orderitem.FieldNameAtTime:
		return m.NameAtTime()
	case orderitem.FieldNotes:
		return m.Notes()
	case orderitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderitem.FieldOrderID:
		return m.OldOrderID(ctx)
	case orderitem.FieldItemID:
		return m.OldItemID(ctx)
	case orderitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case orderitem.FieldPriceAtTime:
		return m.OldPriceAtTime(ctx)
	case orderitem.FieldCostAtTime:
		return m.OldCostAtTime(ctx)
	case orderitem.FieldNameAtTime:
		return m.OldNameAtTime(ctx)
	case orderitem.FieldNotes:
		return m.OldNotes(ctx)
	case orderitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrderItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case orderitem.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case orderitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case orderitem.FieldPriceAtTime:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceAtTime(v)
		return nil
	case orderitem.FieldCostAtTime:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostAtTime(v)
		return nil
	case orderitem.FieldNameAtTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameAtTime(v)
		return nil
	case orderitem.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case orderitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, orderitem.FieldQuantity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldQuantity:
		return m.AddedQuantity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orderitem.FieldCostAtTime) {
		fields = append(fields, orderitem.FieldCostAtTime)
	}
	if m.FieldCleared(orderitem.FieldNotes) {
		fields = append(fields, orderitem.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderItemMutation) ClearField(name string) error {
	switch name {
	case orderitem.FieldCostAtTime:
		m.ClearCostAtTime()
		return nil
	case orderitem.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown OrderItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderItemMutation) ResetField(name string) error {
	switch name {
	case orderitem.FieldOrderID:
		m.ResetOrderID()
		return nil
	case orderitem.FieldItemID:
		m.ResetItemID()
		return nil
	case orderitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case orderitem.FieldPriceAtTime:
		m.ResetPriceAtTime()
		return nil
	case orderitem.FieldCostAtTime:
		m.ResetCostAtTime()
		return nil
	case orderitem.FieldNameAtTime:
		m.ResetNameAtTime()
		return nil
	case orderitem.FieldNotes:
		m.ResetNotes()
		return nil
	case orderitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._order != nil {
		edges = append(edges, orderitem.EdgeOrder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderitem.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_order {
		edges = append(edges, orderitem.EdgeOrder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderItemMutation) EdgeCleared(name string) bool {
	switch name {
	case orderitem.EdgeOrder:
		return m.cleared_order
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderItemMutation) ClearEdge(name string) error {
	switch name {
	case orderitem.EdgeOrder:
		m.ClearOrder()
		return nil
	}
	return fmt.Errorf("unknown OrderItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderItemMutation) ResetEdge(name string) error {
	switch name {
	case orderitem.EdgeOrder:
		m.ResetOrder()
		return nil
	}
	return fmt.Errorf("unknown OrderItem edge %s", name)
}

// OrderStatusHistoryMutation represents an operation that mutates the OrderStatusHistory nodes in the graph.
type OrderStatusHistoryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	status        *orderstatushistory.Status
	changed_by    *string
	changed_at    *time.Time
	clearedFields map[string]struct{}
	_order        *string
	cleared_order bool
	done          bool
	oldValue      func(context.Context) (*OrderStatusHistory, error)
	predicates    []predicate.OrderStatusHistory
}

var _ ent.Mutation = (*OrderStatusHistoryMutation)(nil)

// orderstatushistoryOption allows management of the mutation configuration using functional options.
type orderstatushistoryOption func(*OrderStatusHistoryMutation)

// newOrderStatusHistoryMutation creates new mutation for the OrderStatusHistory entity.
func newOrderStatusHistoryMutation(c config, op Op, opts ...orderstatushistoryOption) *OrderStatusHistoryMutation {
	m := &OrderStatusHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderStatusHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderStatusHistoryID sets the ID field of the mutation.
func withOrderStatusHistoryID(id string) orderstatushistoryOption {
	return func(m *OrderStatusHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderStatusHistory
		)
		m.oldValue = func(ctx context.Context) (*OrderStatusHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderStatusHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderStatusHistory sets the old OrderStatusHistory of the mutation.
func withOrderStatusHistory(node *OrderStatusHistory) orderstatushistoryOption {
	return func(m *OrderStatusHistoryMutation) {
		m.oldValue = func(context.Context) (*OrderStatusHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderStatusHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderStatusHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrderStatusHistory entities.
func (m *OrderStatusHistoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderStatusHistoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderStatusHistoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderStatusHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *OrderStatusHistoryMutation) SetOrderID(s string) {
	m._order = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *OrderStatusHistoryMutation) OrderID() (r string, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the OrderStatusHistory entity.
// If the OrderStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderStatusHistoryMutation) OldOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *OrderStatusHistoryMutation) ResetOrderID() {
	m._order = nil
}

// SetStatus sets the "status" field.
func (m *OrderStatusHistoryMutation) SetStatus(o orderstatushistory.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OrderStatusHistoryMutation) Status() (r orderstatushistory.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OrderStatusHistory entity.
// If the OrderStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderStatusHistoryMutation) OldStatus(ctx context.Context) (v orderstatushistory.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OrderStatusHistoryMutation) ResetStatus() {
	m.status = nil
}

// SetChangedBy sets the "changed_by" field.
func (m *OrderStatusHistoryMutation) SetChangedBy(s string) {
	m.changed_by = &s
}

// ChangedBy returns the value of the "changed_by" field in the mutation.
func (m *OrderStatusHistoryMutation) ChangedBy() (r string, exists bool) {
	v := m.changed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedBy returns the old "changed_by" field's value of the OrderStatusHistory entity.
// If the OrderStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderStatusHistoryMutation) OldChangedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedBy: %w", err)
	}
	return oldValue.ChangedBy, nil
}

// ResetChangedBy resets all changes to the "changed_by" field.
func (m *OrderStatusHistoryMutation) ResetChangedBy() {
	m.changed_by = nil
}

// SetChangedAt sets the "changed_at" field.
func (m *OrderStatusHistoryMutation) SetChangedAt(t time.Time) {
	m.changed_at = &t
}

// ChangedAt returns the value of the "changed_at" field in the mutation.
func (m *OrderStatusHistoryMutation) ChangedAt() (r time.Time, exists bool) {
	v := m.changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedAt returns the old "changed_at" field's value of the OrderStatusHistory entity.
// If the OrderStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderStatusHistoryMutation) OldChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedAt: %w", err)
	}
	return oldValue.ChangedAt, nil
}

// ResetChangedAt resets all changes to the "changed_at" field.
func (m *OrderStatusHistoryMutation) ResetChangedAt() {
	m.changed_at = nil
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *OrderStatusHistoryMutation) ClearOrder() {
	m.cleared_order = true
	m.clearedFields[orderstatushistory.FieldOrderID] = struct{}{}
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *OrderStatusHistoryMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *OrderStatusHistoryMutation) OrderIDs() (ids []string) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *OrderStatusHistoryMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// Where appends a list predicates to the OrderStatusHistoryMutation builder.
func (m *OrderStatusHistoryMutation) Where(ps ...predicate.OrderStatusHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderStatusHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderStatusHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderStatusHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderStatusHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderStatusHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderStatusHistory).
func (m *OrderStatusHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderStatusHistoryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m._order != nil {
		fields = append(fields, orderstatushistory.FieldOrderID)
	}
	if m.status != nil {
		fields = append(fields, orderstatushistory.FieldStatus)
	}
	if m.changed_by != nil {
		fields = append(fields, orderstatushistory.FieldChangedBy)
	}
	if m.changed_at != nil {
		fields = append(fields, orderstatushistory.FieldChangedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderStatusHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderstatushistory.FieldOrderID:
		return m.OrderID()
	case orderstatushistory.FieldStatus:
		return m.Status()
	case orderstatushistory.FieldChangedBy:
		return m.ChangedBy()
	case orderstatushistory.FieldChangedAt:
		return m.ChangedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderStatusHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderstatushistory.FieldOrderID:
		return m.OldOrderID(ctx)
	case orderstatushistory.FieldStatus:
		return m.OldStatus(ctx)
	case orderstatushistory.FieldChangedBy:
		return m.OldChangedBy(ctx)
	case orderstatushistory.FieldChangedAt:
		return m.OldChangedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrderStatusHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderStatusHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderstatushistory.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case orderstatushistory.FieldStatus:
		v, ok := value.(orderstatushistory.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case orderstatushistory.FieldChangedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedBy(v)
		return nil
	case orderstatushistory.FieldChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrderStatusHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderStatusHistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderStatusHistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderStatusHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OrderStatusHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderStatusHistoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderStatusHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderStatusHistoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OrderStatusHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderStatusHistoryMutation) ResetField(name string) error {
	switch name {
	case orderstatushistory.FieldOrderID:
		m.ResetOrderID()
		return nil
	case orderstatushistory.FieldStatus:
		m.ResetStatus()
		return nil
	case orderstatushistory.FieldChangedBy:
		m.ResetChangedBy()
		return nil
	case orderstatushistory.FieldChangedAt:
		m.ResetChangedAt()
		return nil
	}
	return fmt.Errorf("unknown OrderStatusHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderStatusHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._order != nil {
		edges = append(edges, orderstatushistory.EdgeOrder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderStatusHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderstatushistory.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderStatusHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderStatusHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderStatusHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_order {
		edges = append(edges, orderstatushistory.EdgeOrder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderStatusHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case orderstatushistory.EdgeOrder:
		return m.cleared_order
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderStatusHistoryMutation) ClearEdge(name string) error {
	switch name {
	case orderstatushistory.EdgeOrder:
		m.ClearOrder()
		return nil
	}
	return fmt.Errorf("unknown OrderStatusHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderStatusHistoryMutation) ResetEdge(name string) error {
	switch name {
	case orderstatushistory.EdgeOrder:
		m.ResetOrder()
		return nil
	}
	return fmt.Errorf("unknown OrderStatusHistory edge %s", name)
}

// ReservationMutation represents an operation that mutates the Reservation nodes in the graph.
type ReservationMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	business_user_id      *string
	owner_user_id         *string
	table_id              *string
	customer_phone_number *string
	customer_name         *string
	reservation_date      *string
	reservation_time      *string
	number_of_guests      *int
	addnumber_of_guests   *int
	reservation_type      *reservation.ReservationType
	status                *reservation.Status
	notes                 *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	items                 map[string]struct{}
	removeditems          map[string]struct{}
	cleareditems          bool
	done                  bool
	oldValue              func(context.Context) (*Reservation, error)
	predicates            []predicate.Reservation
}

var _ ent.Mutation = (*ReservationMutation)(nil)

// reservationOption allows management of the mutation configuration using functional options.
type reservationOption func(*ReservationMutation)

// newReservationMutation creates new mutation for the Reservation entity.
func newReservationMutation(c config, op Op, opts ...reservationOption) *ReservationMutation {
	m := &ReservationMutation{
		config:        c,
		op:            op,
		typ:           TypeReservation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReservationID sets the ID field of the mutation.
func withReservationID(id string) reservationOption {
	return func(m *ReservationMutation) {
		var (
			err   error
			once  sync.Once
			value *Reservation
		)
		m.oldValue = func(ctx context.Context) (*Reservation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Reservation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReservation sets the old Reservation of the mutation.
func withReservation(node *Reservation) reservationOption {
	return func(m *ReservationMutation) {
		m.oldValue = func(context.Context) (*Reservation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReservationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReservationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Reservation entities.
func (m *ReservationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReservationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReservationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Reservation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessUserID sets the "business_user_id" field.
func (m *ReservationMutation) SetBusinessUserID(s string) {
	m.business_user_id = &s
}

// BusinessUserID returns the value of the "business_user_id" field in the mutation.
func (m *ReservationMutation) BusinessUserID() (r string, exists bool) {
	v := m.business_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessUserID returns the old "business_user_id" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldBusinessUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessUserID: %w", err)
	}
	return oldValue.BusinessUserID, nil
}

// ResetBusinessUserID resets all changes to the "business_user_id" field.
func (m *ReservationMutation) ResetBusinessUserID() {
	m.business_user_id = nil
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *ReservationMutation) SetOwnerUserID(s string) {
	m.owner_user_id = &s
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *ReservationMutation) OwnerUserID() (r string, exists bool) {
	v := m.owner_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldOwnerUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *ReservationMutation) ResetOwnerUserID() {
	m.owner_user_id = nil
}

// SetTableID sets the "table_id" field.
func (m *ReservationMutation) SetTableID(s string) {
	m.table_id = &s
}

// TableID returns the value of the "table_id" field in the mutation.
func (m *ReservationMutation) TableID() (r string, exists bool) {
	v := m.table_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTableID returns the old "table_id" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldTableID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableID: %w", err)
	}
	return oldValue.TableID, nil
}

// ClearTableID clears the value of the "table_id" field.
func (m *ReservationMutation) ClearTableID() {
	m.table_id = nil
	m.clearedFields[reservation.FieldTableID] = struct{}{}
}

// TableIDCleared returns if the "table_id" field was cleared in this mutation.
func (m *ReservationMutation) TableIDCleared() bool {
	_, ok := m.clearedFields[reservation.FieldTableID]
	return ok
}

// ResetTableID resets all changes to the "table_id" field.
func (m *ReservationMutation) ResetTableID() {
	m.table_id = nil
	delete(m.clearedFields, reservation.FieldTableID)
}

// SetCustomerPhoneNumber sets the "customer_phone_number" field.
func (m *ReservationMutation) SetCustomerPhoneNumber(s string) {
	m.customer_phone_number = &s
}

// CustomerPhoneNumber returns the value of the "customer_phone_number" field in the mutation.
func (m *ReservationMutation) CustomerPhoneNumber() (r string, exists bool) {
	v := m.customer_phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerPhoneNumber returns the old "customer_phone_number" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldCustomerPhoneNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerPhoneNumber: %w", err)
	}
	return oldValue.CustomerPhoneNumber, nil
}

// ResetCustomerPhoneNumber resets all changes to the "customer_phone_number" field.
func (m *ReservationMutation) ResetCustomerPhoneNumber() {
	m.customer_phone_number = nil
}

// SetCustomerName sets the "customer_name" field.
func (m *ReservationMutation) SetCustomerName(s string) {
	m.customer_name = &s
}

// CustomerName returns the value of the "customer_name" field in the mutation.
func (m *ReservationMutation) CustomerName() (r string, exists bool) {
	v := m.customer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerName returns the old "customer_name" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldCustomerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerName: %w", err)
	}
	return oldValue.CustomerName, nil
}

// ResetCustomerName resets all changes to the "customer_name" field.
func (m *ReservationMutation) ResetCustomerName() {
	m.customer_name = nil
}

// SetReservationDate sets the "reservation_date" field.
func (m *ReservationMutation) SetReservationDate(s string) {
	m.reservation_date = &s
}

// ReservationDate returns the value of the "reservation_date" field in the mutation.
func (m *ReservationMutation) ReservationDate() (r string, exists bool) {
	v := m.reservation_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReservationDate returns the old "reservation_date" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldReservationDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservationDate: %w", err)
	}
	return oldValue.ReservationDate, nil
}

// ResetReservationDate resets all changes to the "reservation_date" field.
func (m *ReservationMutation) ResetReservationDate() {
	m.reservation_date = nil
}

// SetReservationTime sets the "reservation_time" field.
func (m *ReservationMutation) SetReservationTime(s string) {
	m.reservation_time = &s
}

// ReservationTime returns the value of the "reservation_time" field in the mutation.
func (m *ReservationMutation) ReservationTime() (r string, exists bool) {
	v := m.reservation_time
	if v == nil {
		return
	}
	return *v, true
}

// OldReservationTime returns the old "reservation_time" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldReservationTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservationTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservationTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservationTime: %w", err)
	}
	return oldValue.ReservationTime, nil
}

// ResetReservationTime resets all changes to the "reservation_time" field.
func (m *ReservationMutation) ResetReservationTime() {
	m.reservation_time = nil
}

// SetNumberOfGuests sets the "number_of_guests" field.
func (m *ReservationMutation) SetNumberOfGuests(i int) {
	m.number_of_guests = &i
	m.addnumber_of_guests = nil
}

// NumberOfGuests returns the value of the "number_of_guests" field in the mutation.
func (m *ReservationMutation) NumberOfGuests() (r int, exists bool) {
	v := m.number_of_guests
	if v == nil {
		return
	}
	return *v, true
}

// OldNumberOfGuests returns the old "number_of_guests" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldNumberOfGuests(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumberOfGuests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumberOfGuests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumberOfGuests: %w", err)
	}
	return oldValue.NumberOfGuests, nil
}

// AddNumberOfGuests adds i to the "number_of_guests" field.
func (m *ReservationMutation) AddNumberOfGuests(i int) {
	if m.addnumber_of_guests != nil {
		*m.addnumber_of_guests += i
	} else {
		m.addnumber_of_guests = &i
	}
}

// AddedNumberOfGuests returns the value that was added to the "number_of_guests" field in this mutation.
func (m *ReservationMutation) AddedNumberOfGuests() (r int, exists bool) {
	v := m.addnumber_of_guests
	if v == nil {
		return
	}
	return *v, true
}

// ClearNumberOfGuests clears the value of the "number_of_guests" field.
func (m *ReservationMutation) ClearNumberOfGuests() {
	m.number_of_guests = nil
	m.addnumber_of_guests = nil
	m.clearedFields[reservation.FieldNumberOfGuests] = struct{}{}
}

// NumberOfGuestsCleared returns if the "number_of_guests" field was cleared in this mutation.
func (m *ReservationMutation) NumberOfGuestsCleared() bool {
	_, ok := m.clearedFields[reservation.FieldNumberOfGuests]
	return ok
}

// ResetNumberOfGuests resets all changes to the "number_of_guests" field.
func (m *ReservationMutation) ResetNumberOfGuests() {
	m.number_of_guests = nil
	m.addnumber_of_guests = nil
	delete(m.clearedFields, reservation.FieldNumberOfGuests)
}

// SetReservationType sets the "reservation_type" field.
func (m *ReservationMutation) SetReservationType(rt reservation.ReservationType) {
	m.reservation_type = &rt
}

// ReservationType returns the value of the "reservation_type" field in the mutation.
func (m *ReservationMutation) ReservationType() (r reservation.ReservationType, exists bool) {
	v := m.reservation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldReservationType returns the old "reservation_type" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldReservationType(ctx context.Context) (v reservation.ReservationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservationType: %w", err)
	}
	return oldValue.ReservationType, nil
}

// ResetReservationType resets all changes to the "reservation_type" field.
func (m *ReservationMutation) ResetReservationType() {
	m.reservation_type = nil
}

// SetStatus sets the "status" field.
func (m *ReservationMutation) SetStatus(r reservation.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ReservationMutation) Status() (r reservation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldStatus(ctx context.Context) (v reservation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReservationMutation) ResetStatus() {
	m.status = nil
}

// SetNotes sets the "notes" field.
func (m *ReservationMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ReservationMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ReservationMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[reservation.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ReservationMutation) NotesCleared() bool {
	_, ok := m.clearedFields[reservation.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ReservationMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, reservation.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReservationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReservationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReservationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReservationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReservationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReservationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddItemIDs adds the "items" edge to the ReservationItem entity by ids.
func (m *ReservationMutation) AddItemIDs(ids ...string) {
	if m.items == nil {
		m.items = make(map[string]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the ReservationItem entity.
func (m *ReservationMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the ReservationItem entity was cleared.
func (m *ReservationMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the ReservationItem entity by IDs.
func (m *ReservationMutation) RemoveItemIDs(ids ...string) {
	if m.removeditems == nil {
		m.removeditems = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the ReservationItem entity.
func (m *ReservationMutation) RemovedItemsIDs() (ids []string) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *ReservationMutation) ItemsIDs() (ids []string) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *ReservationMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the ReservationMutation builder.
func (m *ReservationMutation) Where(ps ...predicate.Reservation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReservationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReservationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Reservation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReservationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReservationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Reservation).
func (m *ReservationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReservationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.business_user_id != nil {
		fields = append(fields, reservation.FieldBusinessUserID)
	}
	if m.owner_user_id != nil {
		fields = append(fields, reservation.FieldOwnerUserID)
	}
	if m.table_id != nil {
		fields = append(fields, reservation.FieldTableID)
	}
	if m.customer_phone_number != nil {
		fields = append(fields, reservation.FieldCustomerPhoneNumber)
	}
	if m.customer_name != nil {
		fields = append(fields, reservation.FieldCustomerName)
	}
	if m.reservation_date != nil {
		fields = append(fields, reservation.FieldReservationDate)
	}
	if m.reservation_time != nil {
		fields = append(fields, reservation.FieldReservationTime)
	}
	if m.number_of_guests != nil {
		fields = append(fields, reservation.FieldNumberOfGuests)
	}
	if m.reservation_type != nil {
		fields = append(fields, reservation.FieldReservationType)
	}
	if m.status != nil {
		fields = append(fields, reservation.FieldStatus)
	}
	if m.notes != nil {
		fields = append(fields, reservation.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, reservation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reservation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReservationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reservation.FieldBusinessUserID:
		return m.BusinessUserID()
	case reservation.FieldOwnerUserID:
		return m.OwnerUserID()
	case reservation.FieldTableID:
		return m.TableID()
	case reservation.FieldCustomerPhoneNumber:
		return m.CustomerPhoneNumber()
	case reservation.FieldCustomerName:
		return m.CustomerName()
	case reservation.FieldReservationDate:
		return m.ReservationDate()
	case reservation.FieldReservationTime:
		return m.ReservationTime()
	case reservation.FieldNumberOfGuests:
		return m.NumberOfGuests()
	case reservation.FieldReservationType:
		return m.ReservationType()
	case reservation.FieldStatus:
		return m.Status()
	case reservation.FieldNotes:
		return m.Notes()
	case reservation.FieldCreatedAt:
		return m.CreatedAt()
	case reservation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReservationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reservation.FieldBusinessUserID:
		return m.OldBusinessUserID(ctx)
	case reservation.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case reservation.FieldTableID:
		return m.OldTableID(ctx)
	case reservation.FieldCustomerPhoneNumber:
		return m.OldCustomerPhoneNumber(ctx)
	case reservation.FieldCustomerName:
		return m.OldCustomerName(ctx)
	case reservation.FieldReservationDate:
		return m.OldReservationDate(ctx)
	case reservation.FieldReservationTime:
		return m.OldReservationTime(ctx)
	case reservation.FieldNumberOfGuests:
		return m.OldNumberOfGuests(ctx)
	case reservation.FieldReservationType:
		return m.OldReservationType(ctx)
	case reservation.FieldStatus:
		return m.OldStatus(ctx)
	case reservation.FieldNotes:
		return m.OldNotes(ctx)
	case reservation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reservation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Reservation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReservationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reservation.FieldBusinessUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessUserID(v)
		return nil
	case reservation.FieldOwnerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case reservation.FieldTableID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableID(v)
		return nil
	case reservation.FieldCustomerPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerPhoneNumber(v)
		return nil
	case reservation.FieldCustomerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerName(v)
		return nil
	case reservation.FieldReservationDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservationDate(v)
		return nil
	case reservation.FieldReservationTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservationTime(v)
		return nil
	case reservation.FieldNumberOfGuests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumberOfGuests(v)
		return nil
	case reservation.FieldReservationType:
		v, ok := value.(reservation.ReservationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservationType(v)
		return nil
	case reservation.FieldStatus:
		v, ok := value.(reservation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reservation.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case reservation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reservation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Reservation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReservationMutation) AddedFields() []string {
	var fields []string
	if m.addnumber_of_guests != nil {
		fields = append(fields, reservation.FieldNumberOfGuests)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReservationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reservation.FieldNumberOfGuests:
		return m.AddedNumberOfGuests()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReservationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reservation.FieldNumberOfGuests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumberOfGuests(v)
		return nil
	}
	return fmt.Errorf("unknown Reservation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReservationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reservation.FieldTableID) {
		fields = append(fields, reservation.FieldTableID)
	}
	if m.FieldCleared(reservation.FieldNumberOfGuests) {
		fields = append(fields, reservation.FieldNumberOfGuests)
	}
	if m.FieldCleared(reservation.FieldNotes) {
		fields = append(fields, reservation.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReservationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReservationMutation) ClearField(name string) error {
	switch name {
	case reservation.FieldTableID:
		m.ClearTableID()
		return nil
	case reservation.FieldNumberOfGuests:
		m.ClearNumberOfGuests()
		return nil
	case reservation.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Reservation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReservationMutation) ResetField(name string) error {
	switch name {
	case reservation.FieldBusinessUserID:
		m.ResetBusinessUserID()
		return nil
	case reservation.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case reservation.FieldTableID:
		m.ResetTableID()
		return nil
	case reservation.FieldCustomerPhoneNumber:
		m.ResetCustomerPhoneNumber()
		return nil
	case reservation.FieldCustomerName:
		m.ResetCustomerName()
		return nil
	case reservation.FieldReservationDate:
		m.ResetReservationDate()
		return nil
	case reservation.FieldReservationTime:
		m.ResetReservationTime()
		return nil
	case reservation.FieldNumberOfGuests:
		m.ResetNumberOfGuests()
		return nil
	case reservation.FieldReservationType:
		m.ResetReservationType()
		return nil
	case reservation.FieldStatus:
		m.ResetStatus()
		return nil
	case reservation.FieldNotes:
		m.ResetNotes()
		return nil
	case reservation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reservation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Reservation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReservationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, reservation.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReservationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reservation.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReservationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, reservation.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReservationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case reservation.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReservationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, reservation.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReservationMutation) EdgeCleared(name string) bool {
	switch name {
	case reservation.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReservationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Reservation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReservationMutation) ResetEdge(name string) error {
	switch name {
	case reservation.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Reservation edge %s", name)
}

// ReservationItemMutation represents an operation that mutates the ReservationItem nodes in the graph.
type ReservationItemMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	item_id            *string
	quantity           *int
	addquantity        *int
	price_at_time      *decimal.Decimal
	name_at_time       *string
	notes              *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	reservation        *string
	clearedreservation bool
	done               bool
	oldValue           func(context.Context) (*ReservationItem, error)
	predicates         []predicate.ReservationItem
}

var _ ent.Mutation = (*ReservationItemMutation)(nil)

// reservationitemOption allows management of the mutation configuration using functional options.
type reservationitemOption func(*ReservationItemMutation)

// newReservationItemMutation creates new mutation for the ReservationItem entity.
func newReservationItemMutation(c config, op Op, opts ...reservationitemOption) *ReservationItemMutation {
	m := &ReservationItemMutation{
		config:        c,
		op:            op,
		typ:           TypeReservationItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReservationItemID sets the ID field of the mutation.
func withReservationItemID(id string) reservationitemOption {
	return func(m *ReservationItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ReservationItem
		)
		m.oldValue = func(ctx context.Context) (*ReservationItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReservationItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReservationItem sets the old ReservationItem of the mutation.
func withReservationItem(node *ReservationItem) reservationitemOption {
	return func(m *ReservationItemMutation) {
		m.oldValue = func(context.Context) (*ReservationItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReservationItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReservationItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReservationItem entities.
func (m *ReservationItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReservationItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReservationItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReservationItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReservationID sets the "reservation_id" field.
func (m *ReservationItemMutation) SetReservationID(s string) {
	m.reservation = &s
}

// ReservationID returns the value of the "reservation_id" field in the mutation.
func (m *ReservationItemMutation) ReservationID() (r string, exists bool) {
	v := m.reservation
	if v == nil {
		return
	}
	return *v, true
}

// OldReservationID returns the old "reservation_id" field's value of the ReservationItem entity.
// If the ReservationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationItemMutation) OldReservationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservationID: %w", err)
	}
	return oldValue.ReservationID, nil
}

// ResetReservationID resets all changes to the "reservation_id" field.
func (m *ReservationItemMutation) ResetReservationID() {
	m.reservation = nil
}

// SetItemID sets the "item_id" field.
func (m *ReservationItemMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ReservationItemMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the ReservationItem entity.
// If the ReservationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationItemMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ReservationItemMutation) ResetItemID() {
	m.item_id = nil
}

// SetQuantity sets the "quantity" field.
func (m *ReservationItemMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *ReservationItemMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the ReservationItem entity.
// If the ReservationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationItemMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *ReservationItemMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *ReservationItemMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *ReservationItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetPriceAtTime sets the "price_at_time" field.
func (m *ReservationItemMutation) SetPriceAtTime(d decimal.Decimal) {
	m.price_at_time = &d
}

// PriceAtTime returns the value of the "price_at_time" field in the mutation.
func (m *ReservationItemMutation) PriceAtTime() (r decimal.Decimal, exists bool) {
	v := m.price_at_time
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceAtTime returns the old "price_at_time" field's value of the ReservationItem entity.
// If the ReservationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationItemMutation) OldPriceAtTime(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceAtTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceAtTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceAtTime: %w", err)
	}
	return oldValue.PriceAtTime, nil
}

// ResetPriceAtTime resets all changes to the "price_at_time" field.
func (m *ReservationItemMutation) ResetPriceAtTime() {
	m.price_at_time = nil
}

// SetNameAtTime sets the "name_at_time" field.
func (m *ReservationItemMutation) SetNameAtTime(s string) {
	m.name_at_time = &s
}

// NameAtTime returns the value of the "name_at_time" field in the mutation.
func (m *ReservationItemMutation) NameAtTime() (r string, exists bool) {
	v := m.name_at_time
	if v == nil {
		return
	}
	return *v, true
}

// OldNameAtTime returns the old "name_at_time" field's value of the ReservationItem entity.
// If the ReservationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationItemMutation) OldNameAtTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameAtTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameAtTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameAtTime: %w", err)
	}
	return oldValue.NameAtTime, nil
}

// ResetNameAtTime resets all changes to the "name_at_time" field.
func (m *ReservationItemMutation) ResetNameAtTime() {
	m.name_at_time = nil
}

// SetNotes sets the "notes" field.
func (m *ReservationItemMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ReservationItemMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the ReservationItem entity.
// If the ReservationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationItemMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ReservationItemMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[reservationitem.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ReservationItemMutation) NotesCleared() bool {
	_, ok := m.clearedFields[reservationitem.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ReservationItemMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, reservationitem.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReservationItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReservationItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReservationItem entity.
// If the ReservationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReservationItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearReservation clears the "reservation" edge to the Reservation entity.
func (m *ReservationItemMutation) ClearReservation() {
	m.clearedreservation = true
	m.clearedFields[reservationitem.FieldReservationID] = struct{}{}
}

// ReservationCleared reports if the "reservation" edge to the Reservation entity was cleared.
func (m *ReservationItemMutation) ReservationCleared() bool {
	return m.clearedreservation
}

// ReservationIDs returns the "reservation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReservationID instead. It exists only for internal usage by the builders.
func (m *ReservationItemMutation) ReservationIDs() (ids []string) {
	if id := m.reservation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReservation resets all changes to the "reservation" edge.
func (m *ReservationItemMutation) ResetReservation() {
	m.reservation = nil
	m.clearedreservation = false
}

// Where appends a list predicates to the ReservationItemMutation builder.
func (m *ReservationItemMutation) Where(ps ...predicate.ReservationItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReservationItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReservationItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReservationItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReservationItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReservationItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReservationItem).
func (m *ReservationItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReservationItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.reservation != nil {
		fields = append(fields, reservationitem.FieldReservationID)
	}
	if m.item_id != nil {
		fields = append(fields, reservationitem.FieldItemID)
	}
	if m.quantity != nil {
		fields = append(fields, reservationitem.FieldQuantity)
	}
	if m.price_at_time != nil {
		fields = append(fields, reservationitem.FieldPriceAtTime)
	}
	if m.name_at_time != nil {
		fields = append(fields, reservationitem.FieldNameAtTime)
	}
	if m.notes != nil {
		fields = append(fields, reservationitem.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, reservationitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReservationItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reservationitem.FieldReservationID:
		return m.ReservationID()
	case reservationitem.FieldItemID:
		return m.ItemID()
	case reservationitem.FieldQuantity:
		return m.Quantity()
	case reservationitem.FieldPriceAtTime:
		return m.PriceAtTime()
	case reservationitem.FieldNameAtTime:
		return m.NameAtTime()
	case reservationitem.FieldNotes:
		return m.Notes()
	case reservationitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReservationItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reservationitem.FieldReservationID:
		return m.OldReservationID(ctx)
	case reservationitem.FieldItemID:
		return m.OldItemID(ctx)
	case reservationitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case reservationitem.FieldPriceAtTime:
		return m.OldPriceAtTime(ctx)
	case reservationitem.FieldNameAtTime:
		return m.OldNameAtTime(ctx)
	case reservationitem.FieldNotes:
		return m.OldNotes(ctx)
	case reservationitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReservationItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReservationItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reservationitem.FieldReservationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservationID(v)
		return nil
	case reservationitem.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case reservationitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case reservationitem.FieldPriceAtTime:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceAtTime(v)
		return nil
	case reservationitem.FieldNameAtTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameAtTime(v)
		return nil
	case reservationitem.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case reservationitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReservationItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReservationItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, reservationitem.FieldQuantity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReservationItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reservationitem.FieldQuantity:
		return m.AddedQuantity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReservationItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reservationitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	}
	return fmt.Errorf("unknown ReservationItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReservationItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reservationitem.FieldNotes) {
		fields = append(fields, reservationitem.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReservationItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReservationItemMutation) ClearField(name string) error {
	switch name {
	case reservationitem.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown ReservationItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReservationItemMutation) ResetField(name string) error {
	switch name {
	case reservationitem.FieldReservationID:
		m.ResetReservationID()
		return nil
	case reservationitem.FieldItemID:
		m.ResetItemID()
		return nil
	case reservationitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case reservationitem.FieldPriceAtTime:
		m.ResetPriceAtTime()
		return nil
	case reservationitem.FieldNameAtTime:
		m.ResetNameAtTime()
		return nil
	case reservationitem.FieldNotes:
		m.ResetNotes()
		return nil
	case reservationitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReservationItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReservationItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.reservation != nil {
		edges = append(edges, reservationitem.EdgeReservation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReservationItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reservationitem.EdgeReservation:
		if id := m.reservation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReservationItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReservationItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReservationItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreservation {
		edges = append(edges, reservationitem.EdgeReservation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReservationItemMutation) EdgeCleared(name string) bool {
	switch name {
	case reservationitem.EdgeReservation:
		return m.clearedreservation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReservationItemMutation) ClearEdge(name string) error {
	switch name {
	case reservationitem.EdgeReservation:
		m.ClearReservation()
		return nil
	}
	return fmt.Errorf("unknown ReservationItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReservationItemMutation) ResetEdge(name string) error {
	switch name {
	case reservationitem.EdgeReservation:
		m.ResetReservation()
		return nil
	}
	return fmt.Errorf("unknown ReservationItem edge %s", name)
}

// ServiceCategoryMutation represents an operation that mutates the ServiceCategory nodes in the graph.
type ServiceCategoryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	business_id   *string
	name          *string
	description   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ServiceCategory, error)
	predicates    []predicate.ServiceCategory
}

var _ ent.Mutation = (*ServiceCategoryMutation)(nil)

// servicecategoryOption allows management of the mutation configuration using functional options.
type servicecategoryOption func(*ServiceCategoryMutation)

// newServiceCategoryMutation creates new mutation for the ServiceCategory entity.
func newServiceCategoryMutation(c config, op Op, opts ...servicecategoryOption) *ServiceCategoryMutation {
	m := &ServiceCategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeServiceCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServiceCategoryID sets the ID field of the mutation.
func withServiceCategoryID(id string) servicecategoryOption {
	return func(m *ServiceCategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ServiceCategory
		)
		m.oldValue = func(ctx context.Context) (*ServiceCategory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServiceCategory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServiceCategory sets the old ServiceCategory of the mutation.
func withServiceCategory(node *ServiceCategory) servicecategoryOption {
	return func(m *ServiceCategoryMutation) {
		m.oldValue = func(context.Context) (*ServiceCategory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServiceCategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServiceCategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ServiceCategory entities.
func (m *ServiceCategoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServiceCategoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServiceCategoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServiceCategory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *ServiceCategoryMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *ServiceCategoryMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the ServiceCategory entity.
// If the ServiceCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceCategoryMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *ServiceCategoryMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetName sets the "name" field.
func (m *ServiceCategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ServiceCategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ServiceCategory entity.
// If the ServiceCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceCategoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ServiceCategoryMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ServiceCategoryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ServiceCategoryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ServiceCategory entity.
// If the ServiceCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceCategoryMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ServiceCategoryMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[servicecategory.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ServiceCategoryMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[servicecategory.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ServiceCategoryMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, servicecategory.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *ServiceCategoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServiceCategoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ServiceCategory entity.
// If the ServiceCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceCategoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServiceCategoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ServiceCategoryMutation builder.
func (m *ServiceCategoryMutation) Where(ps ...predicate.ServiceCategory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServiceCategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServiceCategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServiceCategory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServiceCategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServiceCategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServiceCategory).
func (m *ServiceCategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServiceCategoryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.business_id != nil {
		fields = append(fields, servicecategory.FieldBusinessID)
	}
	if m.name != nil {
		fields = append(fields, servicecategory.FieldName)
	}
	if m.description != nil {
		fields = append(fields, servicecategory.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, servicecategory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServiceCategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case servicecategory.FieldBusinessID:
		return m.BusinessID()
	case servicecategory.FieldName:
		return m.Name()
	case servicecategory.FieldDescription:
		return m.Description()
	case servicecategory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServiceCategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case servicecategory.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case servicecategory.FieldName:
		return m.OldName(ctx)
	case servicecategory.FieldDescription:
		return m.OldDescription(ctx)
	case servicecategory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ServiceCategory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceCategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case servicecategory.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case servicecategory.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case servicecategory.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case servicecategory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceCategory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServiceCategoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServiceCategoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceCategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ServiceCategory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServiceCategoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(servicecategory.FieldDescription) {
		fields = append(fields, servicecategory.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServiceCategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServiceCategoryMutation) ClearField(name string) error {
	switch name {
	case servicecategory.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown ServiceCategory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServiceCategoryMutation) ResetField(name string) error {
	switch name {
	case servicecategory.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case servicecategory.FieldName:
		m.ResetName()
		return nil
	case servicecategory.FieldDescription:
		m.ResetDescription()
		return nil
	case servicecategory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ServiceCategory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServiceCategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServiceCategoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServiceCategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServiceCategoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServiceCategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServiceCategoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServiceCategoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ServiceCategory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServiceCategoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ServiceCategory edge %s", name)
}

// SubscriptionMutation represents an operation that mutates the Subscription nodes in the graph.
type SubscriptionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	business_id        *string
	plan               *subscription.Plan
	status             *subscription.Status
	current_period_end *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Subscription, error)
	predicates         []predicate.Subscription
}

var _ ent.Mutation = (*SubscriptionMutation)(nil)

// subscriptionOption allows management of the mutation configuration using functional options.
type subscriptionOption func(*SubscriptionMutation)

// newSubscriptionMutation creates new mutation for the Subscription entity.
func newSubscriptionMutation(c config, op Op, opts ...subscriptionOption) *SubscriptionMutation {
	m := &SubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubscriptionID sets the ID field of the mutation.
func withSubscriptionID(id string) subscriptionOption {
	return func(m *SubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *Subscription
		)
		m.oldValue = func(ctx context.Context) (*Subscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubscription sets the old Subscription of the mutation.
func withSubscription(node *Subscription) subscriptionOption {
	return func(m *SubscriptionMutation) {
		m.oldValue = func(context.Context) (*Subscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Subscription entities.
func (m *SubscriptionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubscriptionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubscriptionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *SubscriptionMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *SubscriptionMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *SubscriptionMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetPlan sets the "plan" field.
func (m *SubscriptionMutation) SetPlan(s subscription.Plan) {
	m.plan = &s
}

// Plan returns the value of the "plan" field in the mutation.
func (m *SubscriptionMutation) Plan() (r subscription.Plan, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldPlan(ctx context.Context) (v subscription.Plan, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ResetPlan resets all changes to the "plan" field.
func (m *SubscriptionMutation) ResetPlan() {
	m.plan = nil
}

// SetStatus sets the "status" field.
func (m *SubscriptionMutation) SetStatus(s subscription.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubscriptionMutation) Status() (r subscription.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldStatus(ctx context.Context) (v subscription.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubscriptionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentPeriodEnd sets the "current_period_end" field.
func (m *SubscriptionMutation) SetCurrentPeriodEnd(t time.Time) {
	m.current_period_end = &t
}

// CurrentPeriodEnd returns the value of the "current_period_end" field in the mutation.
func (m *SubscriptionMutation) CurrentPeriodEnd() (r time.Time, exists bool) {
	v := m.current_period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPeriodEnd returns the old "current_period_end" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCurrentPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPeriodEnd: %w", err)
	}
	return oldValue.CurrentPeriodEnd, nil
}

// ClearCurrentPeriodEnd clears the value of the "current_period_end" field.
func (m *SubscriptionMutation) ClearCurrentPeriodEnd() {
	m.current_period_end = nil
	m.clearedFields[subscription.FieldCurrentPeriodEnd] = struct{}{}
}

// CurrentPeriodEndCleared returns if the "current_period_end" field was cleared in this mutation.
func (m *SubscriptionMutation) CurrentPeriodEndCleared() bool {
	_, ok := m.clearedFields[subscription.FieldCurrentPeriodEnd]
	return ok
}

// ResetCurrentPeriodEnd resets all changes to the "current_period_end" field.
func (m *SubscriptionMutation) ResetCurrentPeriodEnd() {
	m.current_period_end = nil
	delete(m.clearedFields, subscription.FieldCurrentPeriodEnd)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubscriptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubscriptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubscriptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SubscriptionMutation builder.
func (m *SubscriptionMutation) Where(ps ...predicate.Subscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subscription).
func (m *SubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.business_id != nil {
		fields = append(fields, subscription.FieldBusinessID)
	}
	if m.plan != nil {
		fields = append(fields, subscription.FieldPlan)
	}
	if m.status != nil {
		fields = append(fields, subscription.FieldStatus)
	}
	if m.current_period_end != nil {
		fields = append(fields, subscription.FieldCurrentPeriodEnd)
	}
	if m.created_at != nil {
		fields = append(fields, subscription.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subscription.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subscription.FieldBusinessID:
		return m.BusinessID()
	case subscription.FieldPlan:
		return m.Plan()
	case subscription.FieldStatus:
		return m.Status()
	case subscription.FieldCurrentPeriodEnd:
		return m.CurrentPeriodEnd()
	case subscription.FieldCreatedAt:
		return m.CreatedAt()
	case subscription.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subscription.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case subscription.FieldPlan:
		return m.OldPlan(ctx)
	case subscription.FieldStatus:
		return m.OldStatus(ctx)
	case subscription.FieldCurrentPeriodEnd:
		return m.OldCurrentPeriodEnd(ctx)
	case subscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subscription.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subscription.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case subscription.FieldPlan:
		v, ok := value.(subscription.Plan)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case subscription.FieldStatus:
		v, ok := value.(subscription.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subscription.FieldCurrentPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPeriodEnd(v)
		return nil
	case subscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subscription.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubscriptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Subscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subscription.FieldCurrentPeriodEnd) {
		fields = append(fields, subscription.FieldCurrentPeriodEnd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubscriptionMutation) ClearField(name string) error {
	switch name {
	case subscription.FieldCurrentPeriodEnd:
		m.ClearCurrentPeriodEnd()
		return nil
	}
	return fmt.Errorf("unknown Subscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubscriptionMutation) ResetField(name string) error {
	switch name {
	case subscription.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case subscription.FieldPlan:
		m.ResetPlan()
		return nil
	case subscription.FieldStatus:
		m.ResetStatus()
		return nil
	case subscription.FieldCurrentPeriodEnd:
		m.ResetCurrentPeriodEnd()
		return nil
	case subscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subscription.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Subscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubscriptionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubscriptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubscriptionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubscriptionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Subscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubscriptionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Subscription edge %s", name)
}

// SupportTicketMutation represents an operation that mutates the SupportTicket nodes in the graph.
type SupportTicketMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	business_id            *string
	customer_id            *string
	related_order_id       *string
	related_reservation_id *string
	session_id             *string
	subject                *string
	status                 *supportticket.Status
	priority               *supportticket.Priority
	assigned_employee_id   *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	messages               map[string]struct{}
	removedmessages        map[string]struct{}
	clearedmessages        bool
	done                   bool
	oldValue               func(context.Context) (*SupportTicket, error)
	predicates             []predicate.SupportTicket
}

var _ ent.Mutation = (*SupportTicketMutation)(nil)

// supportticketOption allows management of the mutation configuration using functional options.
type supportticketOption func(*SupportTicketMutation)

// newSupportTicketMutation creates new mutation for the SupportTicket entity.
func newSupportTicketMutation(c config, op Op, opts ...supportticketOption) *SupportTicketMutation {
	m := &SupportTicketMutation{
		config:        c,
		op:            op,
		typ:           TypeSupportTicket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupportTicketID sets the ID field of the mutation.
func withSupportTicketID(id string) supportticketOption {
	return func(m *SupportTicketMutation) {
		var (
			err   error
			once  sync.Once
			value *SupportTicket
		)
		m.oldValue = func(ctx context.Context) (*SupportTicket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SupportTicket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupportTicket sets the old SupportTicket of the mutation.
func withSupportTicket(node *SupportTicket) supportticketOption {
	return func(m *SupportTicketMutation) {
		m.oldValue = func(context.Context) (*SupportTicket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupportTicketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupportTicketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SupportTicket entities.
func (m *SupportTicketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupportTicketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupportTicketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SupportTicket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *SupportTicketMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *SupportTicketMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the SupportTicket entity.
// If the SupportTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportTicketMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *SupportTicketMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *SupportTicketMutation) SetCustomerID(s string) {
	m.customer_id = &s
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *SupportTicketMutation) CustomerID() (r string, exists bool) {
	v := m.customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the SupportTicket entity.
// If the SupportTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportTicketMutation) OldCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *SupportTicketMutation) ResetCustomerID() {
	m.customer_id = nil
}

// SetRelatedOrderID sets the "related_order_id" field.
func (m *SupportTicketMutation) SetRelatedOrderID(s string) {
	m.related_order_id = &s
}

// RelatedOrderID returns the value of the "related_order_id" field in the mutation.
func (m *SupportTicketMutation) RelatedOrderID() (r string, exists bool) {
	v := m.related_order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedOrderID returns the old "related_order_id" field's value of the SupportTicket entity.
// If the SupportTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportTicketMutation) OldRelatedOrderID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedOrderID: %w", err)
	}
	return oldValue.RelatedOrderID, nil
}

// ClearRelatedOrderID clears the value of the "related_order_id" field.
func (m *SupportTicketMutation) ClearRelatedOrderID() {
	m.related_order_id = nil
	m.clearedFields[supportticket.FieldRelatedOrderID] = struct{}{}
}

// RelatedOrderIDCleared returns if the "related_order_id" field was cleared in this mutation.
func (m *SupportTicketMutation) RelatedOrderIDCleared() bool {
	_, ok := m.clearedFields[supportticket.FieldRelatedOrderID]
	return ok
}

// ResetRelatedOrderID resets all changes to the "related_order_id" field.
func (m *SupportTicketMutation) ResetRelatedOrderID() {
	m.related_order_id = nil
	delete(m.clearedFields, supportticket.FieldRelatedOrderID)
}

// SetRelatedReservationID sets the "related_reservation_id" field.
func (m *SupportTicketMutation) SetRelatedReservationID(s string) {
	m.related_reservation_id = &s
}

// RelatedReservationID returns the value of the "related_reservation_id" field in the mutation.
func (m *SupportTicketMutation) RelatedReservationID() (r string, exists bool) {
	v := m.related_reservation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedReservationID returns the old "related_reservation_id" field's value of the SupportTicket entity.
// If the SupportTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportTicketMutation) OldRelatedReservationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedReservationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedReservationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedReservationID: %w", err)
	}
	return oldValue.RelatedReservationID, nil
}

// ClearRelatedReservationID clears the value of the "related_reservation_id" field.
func (m *SupportTicketMutation) ClearRelatedReservationID() {
	m.related_reservation_id = nil
	m.clearedFields[supportticket.FieldRelatedReservationID] = struct{}{}
}

// RelatedReservationIDCleared returns if the "related_reservation_id" field was cleared in this mutation.
func (m *SupportTicketMutation) RelatedReservationIDCleared() bool {
	_, ok := m.clearedFields[supportticket.FieldRelatedReservationID]
	return ok
}

// ResetRelatedReservationID resets all changes to the "related_reservation_id" field.
func (m *SupportTicketMutation) ResetRelatedReservationID() {
	m.related_reservation_id = nil
	delete(m.clearedFields, supportticket.FieldRelatedReservationID)
}

// SetSessionID sets the "session_id" field.
func (m *SupportTicketMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SupportTicketMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SupportTicket entity.
// If the SupportTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportTicketMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *SupportTicketMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[supportticket.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *SupportTicketMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[supportticket.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SupportTicketMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, supportticket.FieldSessionID)
}

// SetSubject sets the "subject" field.
func (m *SupportTicketMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *SupportTicketMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the SupportTicket entity.
// If the SupportTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportTicketMutation) OldSubject(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *SupportTicketMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[supportticket.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *SupportTicketMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[supportticket.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *SupportTicketMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, supportticket.FieldSubject)
}

// SetStatus sets the "status" field.
func (m *SupportTicketMutation) SetStatus(s supportticket.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SupportTicketMutation) Status() (r supportticket.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SupportTicket entity.
// If the SupportTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportTicketMutation) OldStatus(ctx context.Context) (v supportticket.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SupportTicketMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *SupportTicketMutation) SetPriority(s supportticket.Priority) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *SupportTicketMutation) Priority() (r supportticket.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the SupportTicket entity.
// If the SupportTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportTicketMutation) OldPriority(ctx context.Context) (v supportticket.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *SupportTicketMutation) ResetPriority() {
	m.priority = nil
}

// SetAssignedEmployeeID sets the "assigned_employee_id" field.
func (m *SupportTicketMutation) SetAssignedEmployeeID(s string) {
	m.assigned_employee_id = &s
}

// AssignedEmployeeID returns the value of the "assigned_employee_id" field in the mutation.
func (m *SupportTicketMutation) AssignedEmployeeID() (r string, exists bool) {
	v := m.assigned_employee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedEmployeeID returns the old "assigned_employee_id" field's value of the SupportTicket entity.
// If the SupportTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportTicketMutation) OldAssignedEmployeeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedEmployeeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedEmployeeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedEmployeeID: %w", err)
	}
	return oldValue.AssignedEmployeeID, nil
}

// ClearAssignedEmployeeID clears the value of the "assigned_employee_id" field.
func (m *SupportTicketMutation) ClearAssignedEmployeeID() {
	m.assigned_employee_id = nil
	m.clearedFields[supportticket.FieldAssignedEmployeeID] = struct{}{}
}

// AssignedEmployeeIDCleared returns if the "assigned_employee_id" field was cleared in this mutation.
func (m *SupportTicketMutation) AssignedEmployeeIDCleared() bool {
	_, ok := m.clearedFields[supportticket.FieldAssignedEmployeeID]
	return ok
}

// ResetAssignedEmployeeID resets all changes to the "assigned_employee_id" field.
func (m *SupportTicketMutation) ResetAssignedEmployeeID() {
	m.assigned_employee_id = nil
	delete(m.clearedFields, supportticket.FieldAssignedEmployeeID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SupportTicketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SupportTicketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SupportTicket entity.
// If the SupportTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportTicketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SupportTicketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SupportTicketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SupportTicketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SupportTicket entity.
// If the SupportTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupportTicketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SupportTicketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMessageIDs adds the "messages" edge to the TicketMessage entity by ids.
func (m *SupportTicketMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the TicketMessage entity.
func (m *SupportTicketMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the TicketMessage entity was cleared.
func (m *SupportTicketMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the TicketMessage entity by IDs.
func (m *SupportTicketMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the TicketMessage entity.
func (m *SupportTicketMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *SupportTicketMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *SupportTicketMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the SupportTicketMutation builder.
func (m *SupportTicketMutation) Where(ps ...predicate.SupportTicket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupportTicketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupportTicketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SupportTicket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupportTicketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupportTicketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SupportTicket).
func (m *SupportTicketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupportTicketMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.business_id != nil {
		fields = append(fields, supportticket.FieldBusinessID)
	}
	if m.customer_id != nil {
		fields = append(fields, supportticket.FieldCustomerID)
	}
	if m.related_order_id != nil {
		fields = append(fields, supportticket.FieldRelatedOrderID)
	}
	if m.related_reservation_id != nil {
		fields = append(fields, supportticket.FieldRelatedReservationID)
	}
	if m.session_id != nil {
		fields = append(fields, supportticket.FieldSessionID)
	}
	if m.subject != nil {
		fields = append(fields, supportticket.FieldSubject)
	}
	if m.status != nil {
		fields = append(fields, supportticket.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, supportticket.FieldPriority)
	}
	if m.assigned_employee_id != nil {
		fields = append(fields, supportticket.FieldAssignedEmployeeID)
	}
	if m.created_at != nil {
		fields = append(fields, supportticket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, supportticket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupportTicketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supportticket.FieldBusinessID:
		return m.BusinessID()
	case supportticket.FieldCustomerID:
		return m.CustomerID()
	case supportticket.FieldRelatedOrderID:
		return m.RelatedOrderID()
	case supportticket.FieldRelatedReservationID:
		return m.RelatedReservationID()
	case supportticket.FieldSessionID:
		return m.SessionID()
	case supportticket.FieldSubject:
		return m.Subject()
	case supportticket.FieldStatus:
		return m.Status()
	case supportticket.FieldPriority:
		return m.Priority()
	case supportticket.FieldAssignedEmployeeID:
		return m.AssignedEmployeeID()
	case supportticket.FieldCreatedAt:
		return m.CreatedAt()
	case supportticket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupportTicketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supportticket.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case supportticket.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case supportticket.FieldRelatedOrderID:
		return m.OldRelatedOrderID(ctx)
	case supportticket.FieldRelatedReservationID:
		return m.OldRelatedReservationID(ctx)
	case supportticket.FieldSessionID:
		return m.OldSessionID(ctx)
	case supportticket.FieldSubject:
		return m.OldSubject(ctx)
	case supportticket.FieldStatus:
		return m.OldStatus(ctx)
	case supportticket.FieldPriority:
		return m.OldPriority(ctx)
	case supportticket.FieldAssignedEmployeeID:
		return m.OldAssignedEmployeeID(ctx)
	case supportticket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case supportticket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SupportTicket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupportTicketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supportticket.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case supportticket.FieldCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case supportticket.FieldRelatedOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedOrderID(v)
		return nil
	case supportticket.FieldRelatedReservationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedReservationID(v)
		return nil
	case supportticket.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case supportticket.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case supportticket.FieldStatus:
		v, ok := value.(supportticket.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case supportticket.FieldPriority:
		v, ok := value.(supportticket.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case supportticket.FieldAssignedEmployeeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedEmployeeID(v)
		return nil
	case supportticket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case supportticket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SupportTicket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupportTicketMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupportTicketMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupportTicketMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SupportTicket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupportTicketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(supportticket.FieldRelatedOrderID) {
		fields = append(fields, supportticket.FieldRelatedOrderID)
	}
	if m.FieldCleared(supportticket.FieldRelatedReservationID) {
		fields = append(fields, supportticket.FieldRelatedReservationID)
	}
	if m.FieldCleared(supportticket.FieldSessionID) {
		fields = append(fields, supportticket.FieldSessionID)
	}
	if m.FieldCleared(supportticket.FieldSubject) {
		fields = append(fields, supportticket.FieldSubject)
	}
	if m.FieldCleared(supportticket.FieldAssignedEmployeeID) {
		fields = append(fields, supportticket.FieldAssignedEmployeeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupportTicketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupportTicketMutation) ClearField(name string) error {
	switch name {
	case supportticket.FieldRelatedOrderID:
		m.ClearRelatedOrderID()
		return nil
	case supportticket.FieldRelatedReservationID:
		m.ClearRelatedReservationID()
		return nil
	case supportticket.FieldSessionID:
		m.ClearSessionID()
		return nil
	case supportticket.FieldSubject:
		m.ClearSubject()
		return nil
	case supportticket.FieldAssignedEmployeeID:
		m.ClearAssignedEmployeeID()
		return nil
	}
	return fmt.Errorf("unknown SupportTicket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupportTicketMutation) ResetField(name string) error {
	switch name {
	case supportticket.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case supportticket.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case supportticket.FieldRelatedOrderID:
		m.ResetRelatedOrderID()
		return nil
	case supportticket.FieldRelatedReservationID:
		m.ResetRelatedReservationID()
		return nil
	case supportticket.FieldSessionID:
		m.ResetSessionID()
		return nil
	case supportticket.FieldSubject:
		m.ResetSubject()
		return nil
	case supportticket.FieldStatus:
		m.ResetStatus()
		return nil
	case supportticket.FieldPriority:
		m.ResetPriority()
		return nil
	case supportticket.FieldAssignedEmployeeID:
		m.ResetAssignedEmployeeID()
		return nil
	case supportticket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case supportticket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SupportTicket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupportTicketMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.messages != nil {
		edges = append(edges, supportticket.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupportTicketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case supportticket.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupportTicketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmessages != nil {
		edges = append(edges, supportticket.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupportTicketMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case supportticket.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupportTicketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessages {
		edges = append(edges, supportticket.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupportTicketMutation) EdgeCleared(name string) bool {
	switch name {
	case supportticket.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupportTicketMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SupportTicket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupportTicketMutation) ResetEdge(name string) error {
	switch name {
	case supportticket.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown SupportTicket edge %s", name)
}

// TableMutation represents an operation that mutates the Table nodes in the graph.
type TableMutation struct {
	config
	op              Op
	typ             string
	id              *string
	business_id     *string
	owner_user_id   *string
	table_number    *int
	addtable_number *int
	min_seats       *int
	addmin_seats    *int
	max_seats       *int
	addmax_seats    *int
	position_label  *string
	is_active       *bool
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Table, error)
	predicates      []predicate.Table
}

var _ ent.Mutation = (*TableMutation)(nil)

// tableOption allows management of the mutation configuration using functional options.
type tableOption func(*TableMutation)

// newTableMutation creates new mutation for the Table entity.
func newTableMutation(c config, op Op, opts ...tableOption) *TableMutation {
	m := &TableMutation{
		config:        c,
		op:            op,
		typ:           TypeTable,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTableID sets the ID field of the mutation.
func withTableID(id string) tableOption {
	return func(m *TableMutation) {
		var (
			err   error
			once  sync.Once
			value *Table
		)
		m.oldValue = func(ctx context.Context) (*Table, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Table.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTable sets the old Table of the mutation.
func withTable(node *Table) tableOption {
	return func(m *TableMutation) {
		m.oldValue = func(context.Context) (*Table, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TableMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TableMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Table entities.
func (m *TableMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TableMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TableMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Table.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *TableMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *TableMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *TableMutation) ResetBusinessID() {
	m.business_id = nil
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *TableMutation) SetOwnerUserID(s string) {
	m.owner_user_id = &s
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *TableMutation) OwnerUserID() (r string, exists bool) {
	v := m.owner_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldOwnerUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *TableMutation) ResetOwnerUserID() {
	m.owner_user_id = nil
}

// SetTableNumber sets the "table_number" field.
func (m *TableMutation) SetTableNumber(i int) {
	m.table_number = &i
	m.addtable_number = nil
}

// TableNumber returns the value of the "table_number" field in the mutation.
func (m *TableMutation) TableNumber() (r int, exists bool) {
	v := m.table_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTableNumber returns the old "table_number" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldTableNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableNumber: %w", err)
	}
	return oldValue.TableNumber, nil
}

// AddTableNumber adds i to the "table_number" field.
func (m *TableMutation) AddTableNumber(i int) {
	if m.addtable_number != nil {
		*m.addtable_number += i
	} else {
		m.addtable_number = &i
	}
}

// AddedTableNumber returns the value that was added to the "table_number" field in this mutation.
func (m *TableMutation) AddedTableNumber() (r int, exists bool) {
	v := m.addtable_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetTableNumber resets all changes to the "table_number" field.
func (m *TableMutation) ResetTableNumber() {
	m.table_number = nil
	m.addtable_number = nil
}

// SetMinSeats sets the "min_seats" field.
func (m *TableMutation) SetMinSeats(i int) {
	m.min_seats = &i
	m.addmin_seats = nil
}

// MinSeats returns the value of the "min_seats" field in the mutation.
func (m *TableMutation) MinSeats() (r int, exists bool) {
	v := m.min_seats
	if v == nil {
		return
	}
	return *v, true
}

// OldMinSeats returns the old "min_seats" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldMinSeats(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinSeats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinSeats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinSeats: %w", err)
	}
	return oldValue.MinSeats, nil
}

// AddMinSeats adds i to the "min_seats" field.
func (m *TableMutation) AddMinSeats(i int) {
	if m.addmin_seats != nil {
		*m.addmin_seats += i
	} else {
		m.addmin_seats = &i
	}
}

// AddedMinSeats returns the value that was added to the "min_seats" field in this mutation.
func (m *TableMutation) AddedMinSeats() (r int, exists bool) {
	v := m.addmin_seats
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinSeats resets all changes to the "min_seats" field.
func (m *TableMutation) ResetMinSeats() {
	m.min_seats = nil
	m.addmin_seats = nil
}

// SetMaxSeats sets the "max_seats" field.
func (m *TableMutation) SetMaxSeats(i int) {
	m.max_seats = &i
	m.addmax_seats = nil
}

// MaxSeats returns the value of the "max_seats" field in the mutation.
func (m *TableMutation) MaxSeats() (r int, exists bool) {
	v := m.max_seats
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxSeats returns the old "max_seats" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldMaxSeats(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxSeats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxSeats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxSeats: %w", err)
	}
	return oldValue.MaxSeats, nil
}

// AddMaxSeats adds i to the "max_seats" field.
func (m *TableMutation) AddMaxSeats(i int) {
	if m.addmax_seats != nil {
		*m.addmax_seats += i
	} else {
		m.addmax_seats = &i
	}
}

// AddedMaxSeats returns the value that was added to the "max_seats" field in this mutation.
func (m *TableMutation) AddedMaxSeats() (r int, exists bool) {
	v := m.addmax_seats
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxSeats resets all changes to the "max_seats" field.
func (m *TableMutation) ResetMaxSeats() {
	m.max_seats = nil
	m.addmax_seats = nil
}

// SetPositionLabel sets the "position_label" field.
func (m *TableMutation) SetPositionLabel(s string) {
	m.position_label = &s
}

// PositionLabel returns the value of the "position_label" field in the mutation.
func (m *TableMutation) PositionLabel() (r string, exists bool) {
	v := m.position_label
	if v == nil {
		return
	}
	return *v, true
}

// OldPositionLabel returns the old "position_label" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldPositionLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPositionLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPositionLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPositionLabel: %w", err)
	}
	return oldValue.PositionLabel, nil
}

// ClearPositionLabel clears the value of the "position_label" field.
func (m *TableMutation) ClearPositionLabel() {
	m.position_label = nil
	m.clearedFields[table.FieldPositionLabel] = struct{}{}
}

// PositionLabelCleared returns if the "position_label" field was cleared in this mutation.
func (m *TableMutation) PositionLabelCleared() bool {
	_, ok := m.clearedFields[table.FieldPositionLabel]
	return ok
}

// ResetPositionLabel resets all changes to the "position_label" field.
func (m *TableMutation) ResetPositionLabel() {
	m.position_label = nil
	delete(m.clearedFields, table.FieldPositionLabel)
}

// SetIsActive sets the "is_active" field.
func (m *TableMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *TableMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *TableMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TableMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TableMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TableMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TableMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TableMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TableMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TableMutation builder.
func (m *TableMutation) Where(ps ...predicate.Table) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TableMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TableMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Table, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TableMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TableMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Table).
func (m *TableMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TableMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.business_id != nil {
		fields = append(fields, table.FieldBusinessID)
	}
	if m.owner_user_id != nil {
		fields = append(fields, table.FieldOwnerUserID)
	}
	if m.table_number != nil {
		fields = append(fields, table.FieldTableNumber)
	}
	if m.min_seats != nil {
		fields = append(fields, table.FieldMinSeats)
	}
	if m.max_seats != nil {
		fields = append(fields, table.FieldMaxSeats)
	}
	if m.position_label != nil {
		fields = append(fields, table.FieldPositionLabel)
	}
	if m.is_active != nil {
		fields = append(fields, table.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, table.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, table.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TableMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case table.FieldBusinessID:
		return m.BusinessID()
	case table.FieldOwnerUserID:
		return m.OwnerUserID()
	case table.FieldTableNumber:
		return m.TableNumber()
	case table.FieldMinSeats:
		return m.MinSeats()
	case table.FieldMaxSeats:
		return m.MaxSeats()
	case table.FieldPositionLabel:
		return m.PositionLabel()
	case table.FieldIsActive:
		return m.IsActive()
	case table.FieldCreatedAt:
		return m.CreatedAt()
	case table.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TableMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case table.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case table.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case table.FieldTableNumber:
		return m.OldTableNumber(ctx)
	case table.FieldMinSeats:
		return m.OldMinSeats(ctx)
	case table.FieldMaxSeats:
		return m.OldMaxSeats(ctx)
	case table.FieldPositionLabel:
		return m.OldPositionLabel(ctx)
	case table.FieldIsActive:
		return m.OldIsActive(ctx)
	case table.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case table.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Table field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TableMutation) SetField(name string, value ent.Value) error {
	switch name {
	case table.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case table.FieldOwnerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case table.FieldTableNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableNumber(v)
		return nil
	case table.FieldMinSeats:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinSeats(v)
		return nil
	case table.FieldMaxSeats:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxSeats(v)
		return nil
	case table.FieldPositionLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPositionLabel(v)
		return nil
	case table.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case table.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case table.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Table field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TableMutation) AddedFields() []string {
	var fields []string
	if m.addtable_number != nil {
		fields = append(fields, table.FieldTableNumber)
	}
	if m.addmin_seats != nil {
		fields = append(fields, table.FieldMinSeats)
	}
	if m.addmax_seats != nil {
		fields = append(fields, table.FieldMaxSeats)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TableMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case table.FieldTableNumber:
		return m.AddedTableNumber()
	case table.FieldMinSeats:
		return m.AddedMinSeats()
	case table.FieldMaxSeats:
		return m.AddedMaxSeats()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TableMutation) AddField(name string, value ent.Value) error {
	switch name {
	case table.FieldTableNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTableNumber(v)
		return nil
	case table.FieldMinSeats:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinSeats(v)
		return nil
	case table.FieldMaxSeats:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxSeats(v)
		return nil
	}
	return fmt.Errorf("unknown Table numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TableMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(table.FieldPositionLabel) {
		fields = append(fields, table.FieldPositionLabel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TableMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TableMutation) ClearField(name string) error {
	switch name {
	case table.FieldPositionLabel:
		m.ClearPositionLabel()
		return nil
	}
	return fmt.Errorf("unknown Table nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TableMutation) ResetField(name string) error {
	switch name {
	case table.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case table.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case table.FieldTableNumber:
		m.ResetTableNumber()
		return nil
	case table.FieldMinSeats:
		m.ResetMinSeats()
		return nil
	case table.FieldMaxSeats:
		m.ResetMaxSeats()
		return nil
	case table.FieldPositionLabel:
		m.ResetPositionLabel()
		return nil
	case table.FieldIsActive:
		m.ResetIsActive()
		return nil
	case table.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case table.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Table field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TableMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TableMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TableMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TableMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TableMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TableMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TableMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Table unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TableMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Table edge %s", name)
}

// TicketMessageMutation represents an operation that mutates the TicketMessage nodes in the graph.
type TicketMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	sender_type   *ticketmessage.SenderType
	content       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	ticket        *string
	clearedticket bool
	done          bool
	oldValue      func(context.Context) (*TicketMessage, error)
	predicates    []predicate.TicketMessage
}

var _ ent.Mutation = (*TicketMessageMutation)(nil)

// ticketmessageOption allows management of the mutation configuration using functional options.
type ticketmessageOption func(*TicketMessageMutation)

// newTicketMessageMutation creates new mutation for the TicketMessage entity.
func newTicketMessageMutation(c config, op Op, opts ...ticketmessageOption) *TicketMessageMutation {
	m := &TicketMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeTicketMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketMessageID sets the ID field of the mutation.
func withTicketMessageID(id string) ticketmessageOption {
	return func(m *TicketMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *TicketMessage
		)
		m.oldValue = func(ctx context.Context) (*TicketMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TicketMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicketMessage sets the old TicketMessage of the mutation.
func withTicketMessage(node *TicketMessage) ticketmessageOption {
	return func(m *TicketMessageMutation) {
		m.oldValue = func(context.Context) (*TicketMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TicketMessage entities.
func (m *TicketMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TicketMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *TicketMessageMutation) SetTicketID(s string) {
	m.ticket = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *TicketMessageMutation) TicketID() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *TicketMessageMutation) ResetTicketID() {
	m.ticket = nil
}

// SetSenderType sets the "sender_type" field.
func (m *TicketMessageMutation) SetSenderType(tt ticketmessage.SenderType) {
	m.sender_type = &tt
}

// SenderType returns the value of the "sender_type" field in the mutation.
func (m *TicketMessageMutation) SenderType() (r ticketmessage.SenderType, exists bool) {
	v := m.sender_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderType returns the old "sender_type" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldSenderType(ctx context.Context) (v ticketmessage.SenderType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderType: %w", err)
	}
	return oldValue.SenderType, nil
}

// ResetSenderType resets all changes to the "sender_type" field.
func (m *TicketMessageMutation) ResetSenderType() {
	m.sender_type = nil
}

// SetContent sets the "content" field.
func (m *TicketMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *TicketMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *TicketMessageMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TicketMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTicket clears the "ticket" edge to the SupportTicket entity.
func (m *TicketMessageMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[ticketmessage.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the SupportTicket entity was cleared.
func (m *TicketMessageMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *TicketMessageMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *TicketMessageMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the TicketMessageMutation builder.
func (m *TicketMessageMutation) Where(ps ...predicate.TicketMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TicketMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TicketMessage).
func (m *TicketMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketMessageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.ticket != nil {
		fields = append(fields, ticketmessage.FieldTicketID)
	}
	if m.sender_type != nil {
		fields = append(fields, ticketmessage.FieldSenderType)
	}
	if m.content != nil {
		fields = append(fields, ticketmessage.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, ticketmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticketmessage.FieldTicketID:
		return m.TicketID()
	case ticketmessage.FieldSenderType:
		return m.SenderType()
	case ticketmessage.FieldContent:
		return m.Content()
	case ticketmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticketmessage.FieldTicketID:
		return m.OldTicketID(ctx)
	case ticketmessage.FieldSenderType:
		return m.OldSenderType(ctx)
	case ticketmessage.FieldContent:
		return m.OldContent(ctx)
	case ticketmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TicketMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticketmessage.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case ticketmessage.FieldSenderType:
		v, ok := value.(ticketmessage.SenderType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderType(v)
		return nil
	case ticketmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case ticketmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TicketMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TicketMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TicketMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketMessageMutation) ResetField(name string) error {
	switch name {
	case ticketmessage.FieldTicketID:
		m.ResetTicketID()
		return nil
	case ticketmessage.FieldSenderType:
		m.ResetSenderType()
		return nil
	case ticketmessage.FieldContent:
		m.ResetContent()
		return nil
	case ticketmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TicketMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, ticketmessage.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticketmessage.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, ticketmessage.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case ticketmessage.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketMessageMutation) ClearEdge(name string) error {
	switch name {
	case ticketmessage.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown TicketMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketMessageMutation) ResetEdge(name string) error {
	switch name {
	case ticketmessage.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown TicketMessage edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                                 Op
	typ                                string
	id                                 *string
	role                               *user.Role
	parent_user_id                     *string
	name                               *string
	email                              *string
	phone_number                       *string
	business_type                      *user.BusinessType
	timezone                           *string
	language                           *string
	default_cancelable_before_hours    *int
	adddefault_cancelable_before_hours *int
	playbook_url                       *string
	is_active                          *bool
	created_at                         *time.Time
	updated_at                         *time.Time
	clearedFields                      map[string]struct{}
	done                               bool
	oldValue                           func(context.Context) (*User, error)
	predicates                         []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetParentUserID sets the "parent_user_id" field.
func (m *UserMutation) SetParentUserID(s string) {
	m.parent_user_id = &s
}

// ParentUserID returns the value of the "parent_user_id" field in the mutation.
func (m *UserMutation) ParentUserID() (r string, exists bool) {
	v := m.parent_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentUserID returns the old "parent_user_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldParentUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentUserID: %w", err)
	}
	return oldValue.ParentUserID, nil
}

// ClearParentUserID clears the value of the "parent_user_id" field.
func (m *UserMutation) ClearParentUserID() {
	m.parent_user_id = nil
	m.clearedFields[user.FieldParentUserID] = struct{}{}
}

// ParentUserIDCleared returns if the "parent_user_id" field was cleared in this mutation.
func (m *UserMutation) ParentUserIDCleared() bool {
	_, ok := m.clearedFields[user.FieldParentUserID]
	return ok
}

// ResetParentUserID resets all changes to the "parent_user_id" field.
func (m *UserMutation) ResetParentUserID() {
	m.parent_user_id = nil
	delete(m.clearedFields, user.FieldParentUserID)
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetPhoneNumber sets the "phone_number" field.
func (m *UserMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *UserMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhoneNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *UserMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[user.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *UserMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[user.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *UserMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, user.FieldPhoneNumber)
}

// SetBusinessType sets the "business_type" field.
func (m *UserMutation) SetBusinessType(ut user.BusinessType) {
	m.business_type = &ut
}

// BusinessType returns the value of the "business_type" field in the mutation.
func (m *UserMutation) BusinessType() (r user.BusinessType, exists bool) {
	v := m.business_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessType returns the old "business_type" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldBusinessType(ctx context.Context) (v user.BusinessType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessType: %w", err)
	}
	return oldValue.BusinessType, nil
}

// ResetBusinessType resets all changes to the "business_type" field.
func (m *UserMutation) ResetBusinessType() {
	m.business_type = nil
}

// SetTimezone sets the "timezone" field.
func (m *UserMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *UserMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *UserMutation) ResetTimezone() {
	m.timezone = nil
}

// SetLanguage sets the "language" field.
func (m *UserMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *UserMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLanguage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *UserMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[user.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *UserMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[user.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *UserMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, user.FieldLanguage)
}

// SetDefaultCancelableBeforeHours sets the "default_cancelable_before_hours" field.
func (m *UserMutation) SetDefaultCancelableBeforeHours(i int) {
	m.default_cancelable_before_hours = &i
	m.adddefault_cancelable_before_hours = nil
}

// DefaultCancelableBeforeHours returns the value of the "default_cancelable_before_hours" field in the mutation.
func (m *UserMutation) DefaultCancelableBeforeHours() (r int, exists bool) {
	v := m.default_cancelable_before_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultCancelableBeforeHours returns the old "default_cancelable_before_hours" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDefaultCancelableBeforeHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultCancelableBeforeHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultCancelableBeforeHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultCancelableBeforeHours: %w", err)
	}
	return oldValue.DefaultCancelableBeforeHours, nil
}

// AddDefaultCancelableBeforeHours adds i to the "default_cancelable_before_hours" field.
func (m *UserMutation) AddDefaultCancelableBeforeHours(i int) {
	if m.adddefault_cancelable_before_hours != nil {
		*m.adddefault_cancelable_before_hours += i
	} else {
		m.adddefault_cancelable_before_hours = &i
	}
}

// AddedDefaultCancelableBeforeHours returns the value that was added to the "default_cancelable_before_hours" field in this mutation.
func (m *UserMutation) AddedDefaultCancelableBeforeHours() (r int, exists bool) {
	v := m.adddefault_cancelable_before_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetDefaultCancelableBeforeHours resets all changes to the "default_cancelable_before_hours" field.
func (m *UserMutation) ResetDefaultCancelableBeforeHours() {
	m.default_cancelable_before_hours = nil
	m.adddefault_cancelable_before_hours = nil
}

// SetPlaybookURL sets the "playbook_url" field.
func (m *UserMutation) SetPlaybookURL(s string) {
	m.playbook_url = &s
}

// PlaybookURL returns the value of the "playbook_url" field in the mutation.
func (m *UserMutation) PlaybookURL() (r string, exists bool) {
	v := m.playbook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaybookURL returns the old "playbook_url" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPlaybookURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaybookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaybookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaybookURL: %w", err)
	}
	return oldValue.PlaybookURL, nil
}

// ClearPlaybookURL clears the value of the "playbook_url" field.
func (m *UserMutation) ClearPlaybookURL() {
	m.playbook_url = nil
	m.clearedFields[user.FieldPlaybookURL] = struct{}{}
}

// PlaybookURLCleared returns if the "playbook_url" field was cleared in this mutation.
func (m *UserMutation) PlaybookURLCleared() bool {
	_, ok := m.clearedFields[user.FieldPlaybookURL]
	return ok
}

// ResetPlaybookURL resets all changes to the "playbook_url" field.
func (m *UserMutation) ResetPlaybookURL() {
	m.playbook_url = nil
	delete(m.clearedFields, user.FieldPlaybookURL)
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.parent_user_id != nil {
		fields = append(fields, user.FieldParentUserID)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.phone_number != nil {
		fields = append(fields, user.FieldPhoneNumber)
	}
	if m.business_type != nil {
		fields = append(fields, user.FieldBusinessType)
	}
	if m.timezone != nil {
		fields = append(fields, user.FieldTimezone)
	}
	if m.language != nil {
		fields = append(fields, user.FieldLanguage)
	}
	if m.default_cancelable_before_hours != nil {
		fields = append(fields, user.FieldDefaultCancelableBeforeHours)
	}
	if m.playbook_url != nil {
		fields = append(fields, user.FieldPlaybookURL)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldRole:
		return m.Role()
	case user.FieldParentUserID:
		return m.ParentUserID()
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPhoneNumber:
		return m.PhoneNumber()
	case user.FieldBusinessType:
		return m.BusinessType()
	case user.FieldTimezone:
		return m.Timezone()
	case user.FieldLanguage:
		return m.Language()
	case user.FieldDefaultCancelableBeforeHours:
		return m.DefaultCancelableBeforeHours()
	case user.FieldPlaybookURL:
		return m.PlaybookURL()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldParentUserID:
		return m.OldParentUserID(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case user.FieldBusinessType:
		return m.OldBusinessType(ctx)
	case user.FieldTimezone:
		return m.OldTimezone(ctx)
	case user.FieldLanguage:
		return m.OldLanguage(ctx)
	case user.FieldDefaultCancelableBeforeHours:
		return m.OldDefaultCancelableBeforeHours(ctx)
	case user.FieldPlaybookURL:
		return m.OldPlaybookURL(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldParentUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentUserID(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case user.FieldBusinessType:
		v, ok := value.(user.BusinessType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessType(v)
		return nil
	case user.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case user.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case user.FieldDefaultCancelableBeforeHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultCancelableBeforeHours(v)
		return nil
	case user.FieldPlaybookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaybookURL(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.adddefault_cancelable_before_hours != nil {
		fields = append(fields, user.FieldDefaultCancelableBeforeHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldDefaultCancelableBeforeHours:
		return m.AddedDefaultCancelableBeforeHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldDefaultCancelableBeforeHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefaultCancelableBeforeHours(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldParentUserID) {
		fields = append(fields, user.FieldParentUserID)
	}
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldPhoneNumber) {
		fields = append(fields, user.FieldPhoneNumber)
	}
	if m.FieldCleared(user.FieldLanguage) {
		fields = append(fields, user.FieldLanguage)
	}
	if m.FieldCleared(user.FieldPlaybookURL) {
		fields = append(fields, user.FieldPlaybookURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldParentUserID:
		m.ClearParentUserID()
		return nil
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	case user.FieldLanguage:
		m.ClearLanguage()
		return nil
	case user.FieldPlaybookURL:
		m.ClearPlaybookURL()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldParentUserID:
		m.ResetParentUserID()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case user.FieldBusinessType:
		m.ResetBusinessType()
		return nil
	case user.FieldTimezone:
		m.ResetTimezone()
		return nil
	case user.FieldLanguage:
		m.ResetLanguage()
		return nil
	case user.FieldDefaultCancelableBeforeHours:
		m.ResetDefaultCancelableBeforeHours()
		return nil
	case user.FieldPlaybookURL:
		m.ResetPlaybookURL()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
