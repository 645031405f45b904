// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/vendrahq/vendra/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/ent/reservationitem"
	"github.com/vendrahq/vendra/ent/servicecategory"
	"github.com/vendrahq/vendra/ent/subscription"
	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/table"
	"github.com/vendrahq/vendra/ent/ticketmessage"
	"github.com/vendrahq/vendra/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BotIntegration is the client for interacting with the BotIntegration builders.
	BotIntegration *BotIntegrationClient
	// BusinessAddon is the client for interacting with the BusinessAddon builders.
	BusinessAddon *BusinessAddonClient
	// ChatMessage is the client for interacting with the ChatMessage builders.
	ChatMessage *ChatMessageClient
	// ChatSession is the client for interacting with the ChatSession builders.
	ChatSession *ChatSessionClient
	// InboundJob is the client for interacting with the InboundJob builders.
	InboundJob *InboundJobClient
	// Item is the client for interacting with the Item builders.
	Item *ItemClient
	// LLMTrace is the client for interacting with the LLMTrace builders.
	LLMTrace *LLMTraceClient
	// Menu is the client for interacting with the Menu builders.
	Menu *MenuClient
	// OpeningHour is the client for interacting with the OpeningHour builders.
	OpeningHour *OpeningHourClient
	// Order is the client for interacting with the Order builders.
	Order *OrderClient
	// OrderItem is the client for interacting with the OrderItem builders.
	OrderItem *OrderItemClient
	// OrderStatusHistory is the client for interacting with the OrderStatusHistory builders.
	OrderStatusHistory *OrderStatusHistoryClient
	// Reservation is the client for interacting with the Reservation builders.
	Reservation *ReservationClient
	// ReservationItem is the client for interacting with the ReservationItem builders.
	ReservationItem *ReservationItemClient
	// ServiceCategory is the client for interacting with the ServiceCategory builders.
	ServiceCategory *ServiceCategoryClient
	// Subscription is the client for interacting with the Subscription builders.
	Subscription *SubscriptionClient
	// SupportTicket is the client for interacting with the SupportTicket builders.
	SupportTicket *SupportTicketClient
	// Table is the client for interacting with the Table builders.
	Table *TableClient
	// TicketMessage is the client for interacting with the TicketMessage builders.
	TicketMessage *TicketMessageClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BotIntegration = NewBotIntegrationClient(c.config)
	c.BusinessAddon = NewBusinessAddonClient(c.config)
	c.ChatMessage = NewChatMessageClient(c.config)
	c.ChatSession = NewChatSessionClient(c.config)
	c.InboundJob = NewInboundJobClient(c.config)
	c.Item = NewItemClient(c.config)
	c.LLMTrace = NewLLMTraceClient(c.config)
	c.Menu = NewMenuClient(c.config)
	c.OpeningHour = NewOpeningHourClient(c.config)
	c.Order = NewOrderClient(c.config)
	c.OrderItem = NewOrderItemClient(c.config)
	c.OrderStatusHistory = NewOrderStatusHistoryClient(c.config)
	c.Reservation = NewReservationClient(c.config)
	c.ReservationItem = NewReservationItemClient(c.config)
	c.ServiceCategory = NewServiceCategoryClient(c.config)
	c.Subscription = NewSubscriptionClient(c.config)
	c.SupportTicket = NewSupportTicketClient(c.config)
	c.Table = NewTableClient(c.config)
	c.TicketMessage = NewTicketMessageClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		BotIntegration:     NewBotIntegrationClient(cfg),
		BusinessAddon:      NewBusinessAddonClient(cfg),
		ChatMessage:        NewChatMessageClient(cfg),
		ChatSession:        NewChatSessionClient(cfg),
		InboundJob:         NewInboundJobClient(cfg),
		Item:               NewItemClient(cfg),
		LLMTrace:           NewLLMTraceClient(cfg),
		Menu:               NewMenuClient(cfg),
		OpeningHour:        NewOpeningHourClient(cfg),
		Order:              NewOrderClient(cfg),
		OrderItem:          NewOrderItemClient(cfg),
		OrderStatusHistory: NewOrderStatusHistoryClient(cfg),
		Reservation:        NewReservationClient(cfg),
		ReservationItem:    NewReservationItemClient(cfg),
		ServiceCategory:    NewServiceCategoryClient(cfg),
		Subscription:       NewSubscriptionClient(cfg),
		SupportTicket:      NewSupportTicketClient(cfg),
		Table:              NewTableClient(cfg),
		TicketMessage:      NewTicketMessageClient(cfg),
		User:               NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		BotIntegration:     NewBotIntegrationClient(cfg),
		BusinessAddon:      NewBusinessAddonClient(cfg),
		ChatMessage:        NewChatMessageClient(cfg),
		ChatSession:        NewChatSessionClient(cfg),
		InboundJob:         NewInboundJobClient(cfg),
		Item:               NewItemClient(cfg),
		LLMTrace:           NewLLMTraceClient(cfg),
		Menu:               NewMenuClient(cfg),
		OpeningHour:        NewOpeningHourClient(cfg),
		Order:              NewOrderClient(cfg),
		OrderItem:          NewOrderItemClient(cfg),
		OrderStatusHistory: NewOrderStatusHistoryClient(cfg),
		Reservation:        NewReservationClient(cfg),
		ReservationItem:    NewReservationItemClient(cfg),
		ServiceCategory:    NewServiceCategoryClient(cfg),
		Subscription:       NewSubscriptionClient(cfg),
		SupportTicket:      NewSupportTicketClient(cfg),
		Table:              NewTableClient(cfg),
		TicketMessage:      NewTicketMessageClient(cfg),
		User:               NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BotIntegration.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.BotIntegration, c.BusinessAddon, c.ChatMessage, c.ChatSession, c.InboundJob,
		c.Item, c.LLMTrace, c.Menu, c.OpeningHour, c.Order, c.OrderItem,
		c.OrderStatusHistory, c.Reservation, c.ReservationItem, c.ServiceCategory,
		c.Subscription, c.SupportTicket, c.Table, c.TicketMessage, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.BotIntegration, c.BusinessAddon, c.ChatMessage, c.ChatSession, c.InboundJob,
		c.Item, c.LLMTrace, c.Menu, c.OpeningHour, c.Order, c.OrderItem,
		c.OrderStatusHistory, c.Reservation, c.ReservationItem, c.ServiceCategory,
		c.Subscription, c.SupportTicket, c.Table, c.TicketMessage, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BotIntegrationMutation:
		return c.BotIntegration.mutate(ctx, m)
	case *BusinessAddonMutation:
		return c.BusinessAddon.mutate(ctx, m)
	case *ChatMessageMutation:
		return c.ChatMessage.mutate(ctx, m)
	case *ChatSessionMutation:
		return c.ChatSession.mutate(ctx, m)
	case *InboundJobMutation:
		return c.InboundJob.mutate(ctx, m)
	case *ItemMutation:
		return c.Item.mutate(ctx, m)
	case *LLMTraceMutation:
		return c.LLMTrace.mutate(ctx, m)
	case *MenuMutation:
		return c.Menu.mutate(ctx, m)
	case *OpeningHourMutation:
		return c.OpeningHour.mutate(ctx, m)
	case *OrderMutation:
		return c.Order.mutate(ctx, m)
	case *OrderItemMutation:
		return c.OrderItem.mutate(ctx, m)
	case *OrderStatusHistoryMutation:
		return c.OrderStatusHistory.mutate(ctx, m)
	case *ReservationMutation:
		return c.Reservation.mutate(ctx, m)
	case *ReservationItemMutation:
		return c.ReservationItem.mutate(ctx, m)
	case *ServiceCategoryMutation:
		return c.ServiceCategory.mutate(ctx, m)
	case *SubscriptionMutation:
		return c.Subscription.mutate(ctx, m)
	case *SupportTicketMutation:
		return c.SupportTicket.mutate(ctx, m)
	case *TableMutation:
		return c.Table.mutate(ctx, m)
	case *TicketMessageMutation:
		return c.TicketMessage.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BotIntegrationClient is a client for the BotIntegration schema.
type BotIntegrationClient struct {
	config
}

// NewBotIntegrationClient returns a client for the BotIntegration from the given config.
func NewBotIntegrationClient(c config) *BotIntegrationClient {
	return &BotIntegrationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `botintegration.Hooks(f(g(h())))`.
func (c *BotIntegrationClient) Use(hooks ...Hook) {
	c.hooks.BotIntegration = append(c.hooks.BotIntegration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `botintegration.Intercept(f(g(h())))`.
func (c *BotIntegrationClient) Intercept(interceptors ...Interceptor) {
	c.inters.BotIntegration = append(c.inters.BotIntegration, interceptors...)
}

// Create returns a builder for creating a BotIntegration entity.
func (c *BotIntegrationClient) Create() *BotIntegrationCreate {
	mutation := newBotIntegrationMutation(c.config, OpCreate)
	return &BotIntegrationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BotIntegration entities.
func (c *BotIntegrationClient) CreateBulk(builders ...*BotIntegrationCreate) *BotIntegrationCreateBulk {
	return &BotIntegrationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BotIntegrationClient) MapCreateBulk(slice any, setFunc func(*BotIntegrationCreate, int)) *BotIntegrationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BotIntegrationCreateBulk{err: fmt.Errorf("calling to BotIntegrationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BotIntegrationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BotIntegrationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BotIntegration.
func (c *BotIntegrationClient) Update() *BotIntegrationUpdate {
	mutation := newBotIntegrationMutation(c.config, OpUpdate)
	return &BotIntegrationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BotIntegrationClient) UpdateOne(_m *BotIntegration) *BotIntegrationUpdateOne {
	mutation := newBotIntegrationMutation(c.config, OpUpdateOne, withBotIntegration(_m))
	return &BotIntegrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BotIntegrationClient) UpdateOneID(id string) *BotIntegrationUpdateOne {
	mutation := newBotIntegrationMutation(c.config, OpUpdateOne, withBotIntegrationID(id))
	return &BotIntegrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BotIntegration.
func (c *BotIntegrationClient) Delete() *BotIntegrationDelete {
	mutation := newBotIntegrationMutation(c.config, OpDelete)
	return &BotIntegrationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BotIntegrationClient) DeleteOne(_m *BotIntegration) *BotIntegrationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BotIntegrationClient) DeleteOneID(id string) *BotIntegrationDeleteOne {
	builder := c.Delete().Where(botintegration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BotIntegrationDeleteOne{builder}
}

// Query returns a query builder for BotIntegration.
func (c *BotIntegrationClient) Query() *BotIntegrationQuery {
	return &BotIntegrationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBotIntegration},
		inters: c.Interceptors(),
	}
}

// Get returns a BotIntegration entity by its id.
func (c *BotIntegrationClient) Get(ctx context.Context, id string) (*BotIntegration, error) {
	return c.Query().Where(botintegration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BotIntegrationClient) GetX(ctx context.Context, id string) *BotIntegration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BotIntegrationClient) Hooks() []Hook {
	return c.hooks.BotIntegration
}

// Interceptors returns the client interceptors.
func (c *BotIntegrationClient) Interceptors() []Interceptor {
	return c.inters.BotIntegration
}

func (c *BotIntegrationClient) mutate(ctx context.Context, m *BotIntegrationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BotIntegrationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BotIntegrationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BotIntegrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BotIntegrationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BotIntegration mutation op: %q", m.Op())
	}
}

// BusinessAddonClient is a client for the BusinessAddon schema.
type BusinessAddonClient struct {
	config
}

// NewBusinessAddonClient returns a client for the BusinessAddon from the given config.
func NewBusinessAddonClient(c config) *BusinessAddonClient {
	return &BusinessAddonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `businessaddon.Hooks(f(g(h())))`.
func (c *BusinessAddonClient) Use(hooks ...Hook) {
	c.hooks.BusinessAddon = append(c.hooks.BusinessAddon, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `businessaddon.Intercept(f(g(h())))`.
func (c *BusinessAddonClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusinessAddon = append(c.inters.BusinessAddon, interceptors...)
}

// Create returns a builder for creating a BusinessAddon entity.
func (c *BusinessAddonClient) Create() *BusinessAddonCreate {
	mutation := newBusinessAddonMutation(c.config, OpCreate)
	return &BusinessAddonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusinessAddon entities.
func (c *BusinessAddonClient) CreateBulk(builders ...*BusinessAddonCreate) *BusinessAddonCreateBulk {
	return &BusinessAddonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessAddonClient) MapCreateBulk(slice any, setFunc func(*BusinessAddonCreate, int)) *BusinessAddonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessAddonCreateBulk{err: fmt.Errorf("calling to BusinessAddonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessAddonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessAddonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusinessAddon.
func (c *BusinessAddonClient) Update() *BusinessAddonUpdate {
	mutation := newBusinessAddonMutation(c.config, OpUpdate)
	return &BusinessAddonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessAddonClient) UpdateOne(_m *BusinessAddon) *BusinessAddonUpdateOne {
	mutation := newBusinessAddonMutation(c.config, OpUpdateOne, withBusinessAddon(_m))
	return &BusinessAddonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessAddonClient) UpdateOneID(id string) *BusinessAddonUpdateOne {
	mutation := newBusinessAddonMutation(c.config, OpUpdateOne, withBusinessAddonID(id))
	return &BusinessAddonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusinessAddon.
func (c *BusinessAddonClient) Delete() *BusinessAddonDelete {
	mutation := newBusinessAddonMutation(c.config, OpDelete)
	return &BusinessAddonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessAddonClient) DeleteOne(_m *BusinessAddon) *BusinessAddonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessAddonClient) DeleteOneID(id string) *BusinessAddonDeleteOne {
	builder := c.Delete().Where(businessaddon.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessAddonDeleteOne{builder}
}

// Query returns a query builder for BusinessAddon.
func (c *BusinessAddonClient) Query() *BusinessAddonQuery {
	return &BusinessAddonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusinessAddon},
		inters: c.Interceptors(),
	}
}

// Get returns a BusinessAddon entity by its id.
func (c *BusinessAddonClient) Get(ctx context.Context, id string) (*BusinessAddon, error) {
	return c.Query().Where(businessaddon.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessAddonClient) GetX(ctx context.Context, id string) *BusinessAddon {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BusinessAddonClient) Hooks() []Hook {
	return c.hooks.BusinessAddon
}

// Interceptors returns the client interceptors.
func (c *BusinessAddonClient) Interceptors() []Interceptor {
	return c.inters.BusinessAddon
}

func (c *BusinessAddonClient) mutate(ctx context.Context, m *BusinessAddonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessAddonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessAddonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessAddonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessAddonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BusinessAddon mutation op: %q", m.Op())
	}
}

// ChatMessageClient is a client for the ChatMessage schema.
type ChatMessageClient struct {
	config
}

// NewChatMessageClient returns a client for the ChatMessage from the given config.
func NewChatMessageClient(c config) *ChatMessageClient {
	return &ChatMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatmessage.Hooks(f(g(h())))`.
func (c *ChatMessageClient) Use(hooks ...Hook) {
	c.hooks.ChatMessage = append(c.hooks.ChatMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatmessage.Intercept(f(g(h())))`.
func (c *ChatMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatMessage = append(c.inters.ChatMessage, interceptors...)
}

// Create returns a builder for creating a ChatMessage entity.
func (c *ChatMessageClient) Create() *ChatMessageCreate {
	mutation := newChatMessageMutation(c.config, OpCreate)
	return &ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatMessage entities.
func (c *ChatMessageClient) CreateBulk(builders ...*ChatMessageCreate) *ChatMessageCreateBulk {
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatMessageClient) MapCreateBulk(slice any, setFunc func(*ChatMessageCreate, int)) *ChatMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatMessageCreateBulk{err: fmt.Errorf("calling to ChatMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatMessage.
func (c *ChatMessageClient) Update() *ChatMessageUpdate {
	mutation := newChatMessageMutation(c.config, OpUpdate)
	return &ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatMessageClient) UpdateOne(_m *ChatMessage) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessage(_m))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatMessageClient) UpdateOneID(id string) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessageID(id))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatMessage.
func (c *ChatMessageClient) Delete() *ChatMessageDelete {
	mutation := newChatMessageMutation(c.config, OpDelete)
	return &ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatMessageClient) DeleteOne(_m *ChatMessage) *ChatMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatMessageClient) DeleteOneID(id string) *ChatMessageDeleteOne {
	builder := c.Delete().Where(chatmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatMessageDeleteOne{builder}
}

// Query returns a query builder for ChatMessage.
func (c *ChatMessageClient) Query() *ChatMessageQuery {
	return &ChatMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatMessage entity by its id.
func (c *ChatMessageClient) Get(ctx context.Context, id string) (*ChatMessage, error) {
	return c.Query().Where(chatmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatMessageClient) GetX(ctx context.Context, id string) *ChatMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ChatMessage.
func (c *ChatMessageClient) QuerySession(_m *ChatMessage) *ChatSessionQuery {
	query := (&ChatSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatmessage.Table, chatmessage.FieldID, id),
			sqlgraph.To(chatsession.Table, chatsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatmessage.SessionTable, chatmessage.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatMessageClient) Hooks() []Hook {
	return c.hooks.ChatMessage
}

// Interceptors returns the client interceptors.
func (c *ChatMessageClient) Interceptors() []Interceptor {
	return c.inters.ChatMessage
}

func (c *ChatMessageClient) mutate(ctx context.Context, m *ChatMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatMessage mutation op: %q", m.Op())
	}
}

// ChatSessionClient is a client for the ChatSession schema.
type ChatSessionClient struct {
	config
}

// NewChatSessionClient returns a client for the ChatSession from the given config.
func NewChatSessionClient(c config) *ChatSessionClient {
	return &ChatSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatsession.Hooks(f(g(h())))`.
func (c *ChatSessionClient) Use(hooks ...Hook) {
	c.hooks.ChatSession = append(c.hooks.ChatSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatsession.Intercept(f(g(h())))`.
func (c *ChatSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatSession = append(c.inters.ChatSession, interceptors...)
}

// Create returns a builder for creating a ChatSession entity.
func (c *ChatSessionClient) Create() *ChatSessionCreate {
	mutation := newChatSessionMutation(c.config, OpCreate)
	return &ChatSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatSession entities.
func (c *ChatSessionClient) CreateBulk(builders ...*ChatSessionCreate) *ChatSessionCreateBulk {
	return &ChatSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatSessionClient) MapCreateBulk(slice any, setFunc func(*ChatSessionCreate, int)) *ChatSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatSessionCreateBulk{err: fmt.Errorf("calling to ChatSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatSession.
func (c *ChatSessionClient) Update() *ChatSessionUpdate {
	mutation := newChatSessionMutation(c.config, OpUpdate)
	return &ChatSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatSessionClient) UpdateOne(_m *ChatSession) *ChatSessionUpdateOne {
	mutation := newChatSessionMutation(c.config, OpUpdateOne, withChatSession(_m))
	return &ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatSessionClient) UpdateOneID(id string) *ChatSessionUpdateOne {
	mutation := newChatSessionMutation(c.config, OpUpdateOne, withChatSessionID(id))
	return &ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatSession.
func (c *ChatSessionClient) Delete() *ChatSessionDelete {
	mutation := newChatSessionMutation(c.config, OpDelete)
	return &ChatSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatSessionClient) DeleteOne(_m *ChatSession) *ChatSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatSessionClient) DeleteOneID(id string) *ChatSessionDeleteOne {
	builder := c.Delete().Where(chatsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatSessionDeleteOne{builder}
}

// Query returns a query builder for ChatSession.
func (c *ChatSessionClient) Query() *ChatSessionQuery {
	return &ChatSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatSession entity by its id.
func (c *ChatSessionClient) Get(ctx context.Context, id string) (*ChatSession, error) {
	return c.Query().Where(chatsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatSessionClient) GetX(ctx context.Context, id string) *ChatSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a ChatSession.
func (c *ChatSessionClient) QueryMessages(_m *ChatSession) *ChatMessageQuery {
	query := (&ChatMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatsession.Table, chatsession.FieldID, id),
			sqlgraph.To(chatmessage.Table, chatmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatsession.MessagesTable, chatsession.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatSessionClient) Hooks() []Hook {
	return c.hooks.ChatSession
}

// Interceptors returns the client interceptors.
func (c *ChatSessionClient) Interceptors() []Interceptor {
	return c.inters.ChatSession
}

func (c *ChatSessionClient) mutate(ctx context.Context, m *ChatSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatSession mutation op: %q", m.Op())
	}
}

// InboundJobClient is a client for the InboundJob schema.
type InboundJobClient struct {
	config
}

// NewInboundJobClient returns a client for the InboundJob from the given config.
func NewInboundJobClient(c config) *InboundJobClient {
	return &InboundJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inboundjob.Hooks(f(g(h())))`.
func (c *InboundJobClient) Use(hooks ...Hook) {
	c.hooks.InboundJob = append(c.hooks.InboundJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inboundjob.Intercept(f(g(h())))`.
func (c *InboundJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.InboundJob = append(c.inters.InboundJob, interceptors...)
}

// Create returns a builder for creating a InboundJob entity.
func (c *InboundJobClient) Create() *InboundJobCreate {
	mutation := newInboundJobMutation(c.config, OpCreate)
	return &InboundJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InboundJob entities.
func (c *InboundJobClient) CreateBulk(builders ...*InboundJobCreate) *InboundJobCreateBulk {
	return &InboundJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InboundJobClient) MapCreateBulk(slice any, setFunc func(*InboundJobCreate, int)) *InboundJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InboundJobCreateBulk{err: fmt.Errorf("calling to InboundJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InboundJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InboundJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InboundJob.
func (c *InboundJobClient) Update() *InboundJobUpdate {
	mutation := newInboundJobMutation(c.config, OpUpdate)
	return &InboundJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InboundJobClient) UpdateOne(_m *InboundJob) *InboundJobUpdateOne {
	mutation := newInboundJobMutation(c.config, OpUpdateOne, withInboundJob(_m))
	return &InboundJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InboundJobClient) UpdateOneID(id string) *InboundJobUpdateOne {
	mutation := newInboundJobMutation(c.config, OpUpdateOne, withInboundJobID(id))
	return &InboundJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InboundJob.
func (c *InboundJobClient) Delete() *InboundJobDelete {
	mutation := newInboundJobMutation(c.config, OpDelete)
	return &InboundJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InboundJobClient) DeleteOne(_m *InboundJob) *InboundJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InboundJobClient) DeleteOneID(id string) *InboundJobDeleteOne {
	builder := c.Delete().Where(inboundjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InboundJobDeleteOne{builder}
}

// Query returns a query builder for InboundJob.
func (c *InboundJobClient) Query() *InboundJobQuery {
	return &InboundJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInboundJob},
		inters: c.Interceptors(),
	}
}

// Get returns a InboundJob entity by its id.
func (c *InboundJobClient) Get(ctx context.Context, id string) (*InboundJob, error) {
	return c.Query().Where(inboundjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InboundJobClient) GetX(ctx context.Context, id string) *InboundJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InboundJobClient) Hooks() []Hook {
	return c.hooks.InboundJob
}

// Interceptors returns the client interceptors.
func (c *InboundJobClient) Interceptors() []Interceptor {
	return c.inters.InboundJob
}

func (c *InboundJobClient) mutate(ctx context.Context, m *InboundJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InboundJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InboundJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InboundJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InboundJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InboundJob mutation op: %q", m.Op())
	}
}

// ItemClient is a client for the Item schema.
type ItemClient struct {
	config
}

// NewItemClient returns a client for the Item from the given config.
func NewItemClient(c config) *ItemClient {
	return &ItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `item.Hooks(f(g(h())))`.
func (c *ItemClient) Use(hooks ...Hook) {
	c.hooks.Item = append(c.hooks.Item, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `item.Intercept(f(g(h())))`.
func (c *ItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.Item = append(c.inters.Item, interceptors...)
}

// Create returns a builder for creating a Item entity.
func (c *ItemClient) Create() *ItemCreate {
	mutation := newItemMutation(c.config, OpCreate)
	return &ItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Item entities.
func (c *ItemClient) CreateBulk(builders ...*ItemCreate) *ItemCreateBulk {
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemClient) MapCreateBulk(slice any, setFunc func(*ItemCreate, int)) *ItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemCreateBulk{err: fmt.Errorf("calling to ItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Item.
func (c *ItemClient) Update() *ItemUpdate {
	mutation := newItemMutation(c.config, OpUpdate)
	return &ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemClient) UpdateOne(_m *Item) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItem(_m))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemClient) UpdateOneID(id string) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItemID(id))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Item.
func (c *ItemClient) Delete() *ItemDelete {
	mutation := newItemMutation(c.config, OpDelete)
	return &ItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemClient) DeleteOne(_m *Item) *ItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemClient) DeleteOneID(id string) *ItemDeleteOne {
	builder := c.Delete().Where(item.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemDeleteOne{builder}
}

// Query returns a query builder for Item.
func (c *ItemClient) Query() *ItemQuery {
	return &ItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItem},
		inters: c.Interceptors(),
	}
}

// Get returns a Item entity by its id.
func (c *ItemClient) Get(ctx context.Context, id string) (*Item, error) {
	return c.Query().Where(item.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemClient) GetX(ctx context.Context, id string) *Item {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ItemClient) Hooks() []Hook {
	return c.hooks.Item
}

// Interceptors returns the client interceptors.
func (c *ItemClient) Interceptors() []Interceptor {
	return c.inters.Item
}

func (c *ItemClient) mutate(ctx context.Context, m *ItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Item mutation op: %q", m.Op())
	}
}

// LLMTraceClient is a client for the LLMTrace schema.
type LLMTraceClient struct {
	config
}

// NewLLMTraceClient returns a client for the LLMTrace from the given config.
func NewLLMTraceClient(c config) *LLMTraceClient {
	return &LLMTraceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmtrace.Hooks(f(g(h())))`.
func (c *LLMTraceClient) Use(hooks ...Hook) {
	c.hooks.LLMTrace = append(c.hooks.LLMTrace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmtrace.Intercept(f(g(h())))`.
func (c *LLMTraceClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMTrace = append(c.inters.LLMTrace, interceptors...)
}

// Create returns a builder for creating a LLMTrace entity.
func (c *LLMTraceClient) Create() *LLMTraceCreate {
	mutation := newLLMTraceMutation(c.config, OpCreate)
	return &LLMTraceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMTrace entities.
func (c *LLMTraceClient) CreateBulk(builders ...*LLMTraceCreate) *LLMTraceCreateBulk {
	return &LLMTraceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMTraceClient) MapCreateBulk(slice any, setFunc func(*LLMTraceCreate, int)) *LLMTraceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMTraceCreateBulk{err: fmt.Errorf("calling to LLMTraceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMTraceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMTraceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMTrace.
func (c *LLMTraceClient) Update() *LLMTraceUpdate {
	mutation := newLLMTraceMutation(c.config, OpUpdate)
	return &LLMTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMTraceClient) UpdateOne(_m *LLMTrace) *LLMTraceUpdateOne {
	mutation := newLLMTraceMutation(c.config, OpUpdateOne, withLLMTrace(_m))
	return &LLMTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMTraceClient) UpdateOneID(id string) *LLMTraceUpdateOne {
	mutation := newLLMTraceMutation(c.config, OpUpdateOne, withLLMTraceID(id))
	return &LLMTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMTrace.
func (c *LLMTraceClient) Delete() *LLMTraceDelete {
	mutation := newLLMTraceMutation(c.config, OpDelete)
	return &LLMTraceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMTraceClient) DeleteOne(_m *LLMTrace) *LLMTraceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMTraceClient) DeleteOneID(id string) *LLMTraceDeleteOne {
	builder := c.Delete().Where(llmtrace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMTraceDeleteOne{builder}
}

// Query returns a query builder for LLMTrace.
func (c *LLMTraceClient) Query() *LLMTraceQuery {
	return &LLMTraceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMTrace},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMTrace entity by its id.
func (c *LLMTraceClient) Get(ctx context.Context, id string) (*LLMTrace, error) {
	return c.Query().Where(llmtrace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMTraceClient) GetX(ctx context.Context, id string) *LLMTrace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMTraceClient) Hooks() []Hook {
	return c.hooks.LLMTrace
}

// Interceptors returns the client interceptors.
func (c *LLMTraceClient) Interceptors() []Interceptor {
	return c.inters.LLMTrace
}

func (c *LLMTraceClient) mutate(ctx context.Context, m *LLMTraceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMTraceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMTraceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMTrace mutation op: %q", m.Op())
	}
}

// MenuClient is a client for the Menu schema.
type MenuClient struct {
	config
}

// NewMenuClient returns a client for the Menu from the given config.
func NewMenuClient(c config) *MenuClient {
	return &MenuClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `menu.Hooks(f(g(h())))`.
func (c *MenuClient) Use(hooks ...Hook) {
	c.hooks.Menu = append(c.hooks.Menu, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `menu.Intercept(f(g(h())))`.
func (c *MenuClient) Intercept(interceptors ...Interceptor) {
	c.inters.Menu = append(c.inters.Menu, interceptors...)
}

// Create returns a builder for creating a Menu entity.
func (c *MenuClient) Create() *MenuCreate {
	mutation := newMenuMutation(c.config, OpCreate)
	return &MenuCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Menu entities.
func (c *MenuClient) CreateBulk(builders ...*MenuCreate) *MenuCreateBulk {
	return &MenuCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MenuClient) MapCreateBulk(slice any, setFunc func(*MenuCreate, int)) *MenuCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MenuCreateBulk{err: fmt.Errorf("calling to MenuClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MenuCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MenuCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Menu.
func (c *MenuClient) Update() *MenuUpdate {
	mutation := newMenuMutation(c.config, OpUpdate)
	return &MenuUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MenuClient) UpdateOne(_m *Menu) *MenuUpdateOne {
	mutation := newMenuMutation(c.config, OpUpdateOne, withMenu(_m))
	return &MenuUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MenuClient) UpdateOneID(id string) *MenuUpdateOne {
	mutation := newMenuMutation(c.config, OpUpdateOne, withMenuID(id))
	return &MenuUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Menu.
func (c *MenuClient) Delete() *MenuDelete {
	mutation := newMenuMutation(c.config, OpDelete)
	return &MenuDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MenuClient) DeleteOne(_m *Menu) *MenuDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MenuClient) DeleteOneID(id string) *MenuDeleteOne {
	builder := c.Delete().Where(menu.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MenuDeleteOne{builder}
}

// Query returns a query builder for Menu.
func (c *MenuClient) Query() *MenuQuery {
	return &MenuQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMenu},
		inters: c.Interceptors(),
	}
}

// Get returns a Menu entity by its id.
func (c *MenuClient) Get(ctx context.Context, id string) (*Menu, error) {
	return c.Query().Where(menu.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MenuClient) GetX(ctx context.Context, id string) *Menu {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MenuClient) Hooks() []Hook {
	return c.hooks.Menu
}

// Interceptors returns the client interceptors.
func (c *MenuClient) Interceptors() []Interceptor {
	return c.inters.Menu
}

func (c *MenuClient) mutate(ctx context.Context, m *MenuMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MenuCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MenuUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MenuUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MenuDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Menu mutation op: %q", m.Op())
	}
}

// OpeningHourClient is a client for the OpeningHour schema.
type OpeningHourClient struct {
	config
}

// NewOpeningHourClient returns a client for the OpeningHour from the given config.
func NewOpeningHourClient(c config) *OpeningHourClient {
	return &OpeningHourClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `openinghour.Hooks(f(g(h())))`.
func (c *OpeningHourClient) Use(hooks ...Hook) {
	c.hooks.OpeningHour = append(c.hooks.OpeningHour, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `openinghour.Intercept(f(g(h())))`.
func (c *OpeningHourClient) Intercept(interceptors ...Interceptor) {
	c.inters.OpeningHour = append(c.inters.OpeningHour, interceptors...)
}

// Create returns a builder for creating a OpeningHour entity.
func (c *OpeningHourClient) Create() *OpeningHourCreate {
	mutation := newOpeningHourMutation(c.config, OpCreate)
	return &OpeningHourCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OpeningHour entities.
func (c *OpeningHourClient) CreateBulk(builders ...*OpeningHourCreate) *OpeningHourCreateBulk {
	return &OpeningHourCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OpeningHourClient) MapCreateBulk(slice any, setFunc func(*OpeningHourCreate, int)) *OpeningHourCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OpeningHourCreateBulk{err: fmt.Errorf("calling to OpeningHourClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OpeningHourCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OpeningHourCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OpeningHour.
func (c *OpeningHourClient) Update() *OpeningHourUpdate {
	mutation := newOpeningHourMutation(c.config, OpUpdate)
	return &OpeningHourUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OpeningHourClient) UpdateOne(_m *OpeningHour) *OpeningHourUpdateOne {
	mutation := newOpeningHourMutation(c.config, OpUpdateOne, withOpeningHour(_m))
	return &OpeningHourUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OpeningHourClient) UpdateOneID(id string) *OpeningHourUpdateOne {
	mutation := newOpeningHourMutation(c.config, OpUpdateOne, withOpeningHourID(id))
	return &OpeningHourUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OpeningHour.
func (c *OpeningHourClient) Delete() *OpeningHourDelete {
	mutation := newOpeningHourMutation(c.config, OpDelete)
	return &OpeningHourDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OpeningHourClient) DeleteOne(_m *OpeningHour) *OpeningHourDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OpeningHourClient) DeleteOneID(id string) *OpeningHourDeleteOne {
	builder := c.Delete().Where(openinghour.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OpeningHourDeleteOne{builder}
}

// Query returns a query builder for OpeningHour.
func (c *OpeningHourClient) Query() *OpeningHourQuery {
	return &OpeningHourQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOpeningHour},
		inters: c.Interceptors(),
	}
}

// Get returns a OpeningHour entity by its id.
func (c *OpeningHourClient) Get(ctx context.Context, id string) (*OpeningHour, error) {
	return c.Query().Where(openinghour.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OpeningHourClient) GetX(ctx context.Context, id string) *OpeningHour {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OpeningHourClient) Hooks() []Hook {
	return c.hooks.OpeningHour
}

// Interceptors returns the client interceptors.
func (c *OpeningHourClient) Interceptors() []Interceptor {
	return c.inters.OpeningHour
}

func (c *OpeningHourClient) mutate(ctx context.Context, m *OpeningHourMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OpeningHourCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OpeningHourUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OpeningHourUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OpeningHourDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OpeningHour mutation op: %q", m.Op())
	}
}

// OrderClient is a client for the Order schema.
type OrderClient struct {
	config
}

// NewOrderClient returns a client for the Order from the given config.
func NewOrderClient(c config) *OrderClient {
	return &OrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `order.Hooks(f(g(h())))`.
func (c *OrderClient) Use(hooks ...Hook) {
	c.hooks.Order = append(c.hooks.Order, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `order.Intercept(f(g(h())))`.
func (c *OrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Order = append(c.inters.Order, interceptors...)
}

// Create returns a builder for creating a Order entity.
func (c *OrderClient) Create() *OrderCreate {
	mutation := newOrderMutation(c.config, OpCreate)
	return &OrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Order entities.
func (c *OrderClient) CreateBulk(builders ...*OrderCreate) *OrderCreateBulk {
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderClient) MapCreateBulk(slice any, setFunc func(*OrderCreate, int)) *OrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderCreateBulk{err: fmt.Errorf("calling to OrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Order.
func (c *OrderClient) Update() *OrderUpdate {
	mutation := newOrderMutation(c.config, OpUpdate)
	return &OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderClient) UpdateOne(_m *Order) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrder(_m))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderClient) UpdateOneID(id string) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrderID(id))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Order.
func (c *OrderClient) Delete() *OrderDelete {
	mutation := newOrderMutation(c.config, OpDelete)
	return &OrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderClient) DeleteOne(_m *Order) *OrderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderClient) DeleteOneID(id string) *OrderDeleteOne {
	builder := c.Delete().Where(order.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderDeleteOne{builder}
}

// Query returns a query builder for Order.
func (c *OrderClient) Query() *OrderQuery {
	return &OrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a Order entity by its id.
func (c *OrderClient) Get(ctx context.Context, id string) (*Order, error) {
	return c.Query().Where(order.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderClient) GetX(ctx context.Context, id string) *Order {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a Order.
func (c *OrderClient) QueryItems(_m *Order) *OrderItemQuery {
	query := (&OrderItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(order.Table, order.FieldID, id),
			sqlgraph.To(orderitem.Table, orderitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, order.ItemsTable, order.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStatusHistory queries the status_history edge of a Order.
func (c *OrderClient) QueryStatusHistory(_m *Order) *OrderStatusHistoryQuery {
	query := (&OrderStatusHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(order.Table, order.FieldID, id),
			sqlgraph.To(orderstatushistory.Table, orderstatushistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, order.StatusHistoryTable, order.StatusHistoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderClient) Hooks() []Hook {
	return c.hooks.Order
}

// Interceptors returns the client interceptors.
func (c *OrderClient) Interceptors() []Interceptor {
	return c.inters.Order
}

func (c *OrderClient) mutate(ctx context.Context, m *OrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Order mutation op: %q", m.Op())
	}
}

// OrderItemClient is a client for the OrderItem schema.
type OrderItemClient struct {
	config
}

// NewOrderItemClient returns a client for the OrderItem from the given config.
func NewOrderItemClient(c config) *OrderItemClient {
	return &OrderItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderitem.Hooks(f(g(h())))`.
func (c *OrderItemClient) Use(hooks ...Hook) {
	c.hooks.OrderItem = append(c.hooks.OrderItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderitem.Intercept(f(g(h())))`.
func (c *OrderItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderItem = append(c.inters.OrderItem, interceptors...)
}

// Create returns a builder for creating a OrderItem entity.
func (c *OrderItemClient) Create() *OrderItemCreate {
	mutation := newOrderItemMutation(c.config, OpCreate)
	return &OrderItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderItem entities.
func (c *OrderItemClient) CreateBulk(builders ...*OrderItemCreate) *OrderItemCreateBulk {
	return &OrderItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderItemClient) MapCreateBulk(slice any, setFunc func(*OrderItemCreate, int)) *OrderItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderItemCreateBulk{err: fmt.Errorf("calling to OrderItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderItem.
func (c *OrderItemClient) Update() *OrderItemUpdate {
	mutation := newOrderItemMutation(c.config, OpUpdate)
	return &OrderItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderItemClient) UpdateOne(_m *OrderItem) *OrderItemUpdateOne {
	mutation := newOrderItemMutation(c.config, OpUpdateOne, withOrderItem(_m))
	return &OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderItemClient) UpdateOneID(id string) *OrderItemUpdateOne {
	mutation := newOrderItemMutation(c.config, OpUpdateOne, withOrderItemID(id))
	return &OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderItem.
func (c *OrderItemClient) Delete() *OrderItemDelete {
	mutation := newOrderItemMutation(c.config, OpDelete)
	return &OrderItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderItemClient) DeleteOne(_m *OrderItem) *OrderItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderItemClient) DeleteOneID(id string) *OrderItemDeleteOne {
	builder := c.Delete().Where(orderitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderItemDeleteOne{builder}
}

// Query returns a query builder for OrderItem.
func (c *OrderItemClient) Query() *OrderItemQuery {
	return &OrderItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderItem},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderItem entity by its id.
func (c *OrderItemClient) Get(ctx context.Context, id string) (*OrderItem, error) {
	return c.Query().Where(orderitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderItemClient) GetX(ctx context.Context, id string) *OrderItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrder queries the order edge of a OrderItem.
func (c *OrderItemClient) QueryOrder(_m *OrderItem) *OrderQuery {
	query := (&OrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderitem.Table, orderitem.FieldID, id),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orderitem.OrderTable, orderitem.OrderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderItemClient) Hooks() []Hook {
	return c.hooks.OrderItem
}

// Interceptors returns the client interceptors.
func (c *OrderItemClient) Interceptors() []Interceptor {
	return c.inters.OrderItem
}

func (c *OrderItemClient) mutate(ctx context.Context, m *OrderItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderItem mutation op: %q", m.Op())
	}
}

// OrderStatusHistoryClient is a client for the OrderStatusHistory schema.
type OrderStatusHistoryClient struct {
	config
}

// NewOrderStatusHistoryClient returns a client for the OrderStatusHistory from the given config.
func NewOrderStatusHistoryClient(c config) *OrderStatusHistoryClient {
	return &OrderStatusHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderstatushistory.Hooks(f(g(h())))`.
func (c *OrderStatusHistoryClient) Use(hooks ...Hook) {
	c.hooks.OrderStatusHistory = append(c.hooks.OrderStatusHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderstatushistory.Intercept(f(g(h())))`.
func (c *OrderStatusHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderStatusHistory = append(c.inters.OrderStatusHistory, interceptors...)
}

// Create returns a builder for creating a OrderStatusHistory entity.
func (c *OrderStatusHistoryClient) Create() *OrderStatusHistoryCreate {
	mutation := newOrderStatusHistoryMutation(c.config, OpCreate)
	return &OrderStatusHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderStatusHistory entities.
func (c *OrderStatusHistoryClient) CreateBulk(builders ...*OrderStatusHistoryCreate) *OrderStatusHistoryCreateBulk {
	return &OrderStatusHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderStatusHistoryClient) MapCreateBulk(slice any, setFunc func(*OrderStatusHistoryCreate, int)) *OrderStatusHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderStatusHistoryCreateBulk{err: fmt.Errorf("calling to OrderStatusHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderStatusHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderStatusHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderStatusHistory.
func (c *OrderStatusHistoryClient) Update() *OrderStatusHistoryUpdate {
	mutation := newOrderStatusHistoryMutation(c.config, OpUpdate)
	return &OrderStatusHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderStatusHistoryClient) UpdateOne(_m *OrderStatusHistory) *OrderStatusHistoryUpdateOne {
	mutation := newOrderStatusHistoryMutation(c.config, OpUpdateOne, withOrderStatusHistory(_m))
	return &OrderStatusHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderStatusHistoryClient) UpdateOneID(id string) *OrderStatusHistoryUpdateOne {
	mutation := newOrderStatusHistoryMutation(c.config, OpUpdateOne, withOrderStatusHistoryID(id))
	return &OrderStatusHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderStatusHistory.
func (c *OrderStatusHistoryClient) Delete() *OrderStatusHistoryDelete {
	mutation := newOrderStatusHistoryMutation(c.config, OpDelete)
	return &OrderStatusHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderStatusHistoryClient) DeleteOne(_m *OrderStatusHistory) *OrderStatusHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderStatusHistoryClient) DeleteOneID(id string) *OrderStatusHistoryDeleteOne {
	builder := c.Delete().Where(orderstatushistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderStatusHistoryDeleteOne{builder}
}

// Query returns a query builder for OrderStatusHistory.
func (c *OrderStatusHistoryClient) Query() *OrderStatusHistoryQuery {
	return &OrderStatusHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderStatusHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderStatusHistory entity by its id.
func (c *OrderStatusHistoryClient) Get(ctx context.Context, id string) (*OrderStatusHistory, error) {
	return c.Query().Where(orderstatushistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderStatusHistoryClient) GetX(ctx context.Context, id string) *OrderStatusHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrder queries the order edge of a OrderStatusHistory.
func (c *OrderStatusHistoryClient) QueryOrder(_m *OrderStatusHistory) *OrderQuery {
	query := (&OrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderstatushistory.Table, orderstatushistory.FieldID, id),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orderstatushistory.OrderTable, orderstatushistory.OrderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderStatusHistoryClient) Hooks() []Hook {
	return c.hooks.OrderStatusHistory
}

// Interceptors returns the client interceptors.
func (c *OrderStatusHistoryClient) Interceptors() []Interceptor {
	return c.inters.OrderStatusHistory
}

func (c *OrderStatusHistoryClient) mutate(ctx context.Context, m *OrderStatusHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderStatusHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderStatusHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderStatusHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderStatusHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderStatusHistory mutation op: %q", m.Op())
	}
}

// ReservationClient is a client for the Reservation schema.
type ReservationClient struct {
	config
}

// NewReservationClient returns a client for the Reservation from the given config.
func NewReservationClient(c config) *ReservationClient {
	return &ReservationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reservation.Hooks(f(g(h())))`.
func (c *ReservationClient) Use(hooks ...Hook) {
	c.hooks.Reservation = append(c.hooks.Reservation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reservation.Intercept(f(g(h())))`.
func (c *ReservationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Reservation = append(c.inters.Reservation, interceptors...)
}

// Create returns a builder for creating a Reservation entity.
func (c *ReservationClient) Create() *ReservationCreate {
	mutation := newReservationMutation(c.config, OpCreate)
	return &ReservationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Reservation entities.
func (c *ReservationClient) CreateBulk(builders ...*ReservationCreate) *ReservationCreateBulk {
	return &ReservationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReservationClient) MapCreateBulk(slice any, setFunc func(*ReservationCreate, int)) *ReservationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReservationCreateBulk{err: fmt.Errorf("calling to ReservationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReservationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReservationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Reservation.
func (c *ReservationClient) Update() *ReservationUpdate {
	mutation := newReservationMutation(c.config, OpUpdate)
	return &ReservationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReservationClient) UpdateOne(_m *Reservation) *ReservationUpdateOne {
	mutation := newReservationMutation(c.config, OpUpdateOne, withReservation(_m))
	return &ReservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReservationClient) UpdateOneID(id string) *ReservationUpdateOne {
	mutation := newReservationMutation(c.config, OpUpdateOne, withReservationID(id))
	return &ReservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Reservation.
func (c *ReservationClient) Delete() *ReservationDelete {
	mutation := newReservationMutation(c.config, OpDelete)
	return &ReservationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReservationClient) DeleteOne(_m *Reservation) *ReservationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReservationClient) DeleteOneID(id string) *ReservationDeleteOne {
	builder := c.Delete().Where(reservation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReservationDeleteOne{builder}
}

// Query returns a query builder for Reservation.
func (c *ReservationClient) Query() *ReservationQuery {
	return &ReservationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReservation},
		inters: c.Interceptors(),
	}
}

// Get returns a Reservation entity by its id.
func (c *ReservationClient) Get(ctx context.Context, id string) (*Reservation, error) {
	return c.Query().Where(reservation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReservationClient) GetX(ctx context.Context, id string) *Reservation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a Reservation.
func (c *ReservationClient) QueryItems(_m *Reservation) *ReservationItemQuery {
	query := (&ReservationItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reservation.Table, reservation.FieldID, id),
			sqlgraph.To(reservationitem.Table, reservationitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reservation.ItemsTable, reservation.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReservationClient) Hooks() []Hook {
	return c.hooks.Reservation
}

// Interceptors returns the client interceptors.
func (c *ReservationClient) Interceptors() []Interceptor {
	return c.inters.Reservation
}

func (c *ReservationClient) mutate(ctx context.Context, m *ReservationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReservationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReservationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReservationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Reservation mutation op: %q", m.Op())
	}
}

// ReservationItemClient is a client for the ReservationItem schema.
type ReservationItemClient struct {
	config
}

// NewReservationItemClient returns a client for the ReservationItem from the given config.
func NewReservationItemClient(c config) *ReservationItemClient {
	return &ReservationItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reservationitem.Hooks(f(g(h())))`.
func (c *ReservationItemClient) Use(hooks ...Hook) {
	c.hooks.ReservationItem = append(c.hooks.ReservationItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reservationitem.Intercept(f(g(h())))`.
func (c *ReservationItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReservationItem = append(c.inters.ReservationItem, interceptors...)
}

// Create returns a builder for creating a ReservationItem entity.
func (c *ReservationItemClient) Create() *ReservationItemCreate {
	mutation := newReservationItemMutation(c.config, OpCreate)
	return &ReservationItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReservationItem entities.
func (c *ReservationItemClient) CreateBulk(builders ...*ReservationItemCreate) *ReservationItemCreateBulk {
	return &ReservationItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReservationItemClient) MapCreateBulk(slice any, setFunc func(*ReservationItemCreate, int)) *ReservationItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReservationItemCreateBulk{err: fmt.Errorf("calling to ReservationItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReservationItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReservationItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReservationItem.
func (c *ReservationItemClient) Update() *ReservationItemUpdate {
	mutation := newReservationItemMutation(c.config, OpUpdate)
	return &ReservationItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReservationItemClient) UpdateOne(_m *ReservationItem) *ReservationItemUpdateOne {
	mutation := newReservationItemMutation(c.config, OpUpdateOne, withReservationItem(_m))
	return &ReservationItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReservationItemClient) UpdateOneID(id string) *ReservationItemUpdateOne {
	mutation := newReservationItemMutation(c.config, OpUpdateOne, withReservationItemID(id))
	return &ReservationItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReservationItem.
func (c *ReservationItemClient) Delete() *ReservationItemDelete {
	mutation := newReservationItemMutation(c.config, OpDelete)
	return &ReservationItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReservationItemClient) DeleteOne(_m *ReservationItem) *ReservationItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReservationItemClient) DeleteOneID(id string) *ReservationItemDeleteOne {
	builder := c.Delete().Where(reservationitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReservationItemDeleteOne{builder}
}

// Query returns a query builder for ReservationItem.
func (c *ReservationItemClient) Query() *ReservationItemQuery {
	return &ReservationItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReservationItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ReservationItem entity by its id.
func (c *ReservationItemClient) Get(ctx context.Context, id string) (*ReservationItem, error) {
	return c.Query().Where(reservationitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReservationItemClient) GetX(ctx context.Context, id string) *ReservationItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReservation queries the reservation edge of a ReservationItem.
func (c *ReservationItemClient) QueryReservation(_m *ReservationItem) *ReservationQuery {
	query := (&ReservationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reservationitem.Table, reservationitem.FieldID, id),
			sqlgraph.To(reservation.Table, reservation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reservationitem.ReservationTable, reservationitem.ReservationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReservationItemClient) Hooks() []Hook {
	return c.hooks.ReservationItem
}

// Interceptors returns the client interceptors.
func (c *ReservationItemClient) Interceptors() []Interceptor {
	return c.inters.ReservationItem
}

func (c *ReservationItemClient) mutate(ctx context.Context, m *ReservationItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReservationItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReservationItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReservationItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReservationItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReservationItem mutation op: %q", m.Op())
	}
}

// ServiceCategoryClient is a client for the ServiceCategory schema.
type ServiceCategoryClient struct {
	config
}

// NewServiceCategoryClient returns a client for the ServiceCategory from the given config.
func NewServiceCategoryClient(c config) *ServiceCategoryClient {
	return &ServiceCategoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `servicecategory.Hooks(f(g(h())))`.
func (c *ServiceCategoryClient) Use(hooks ...Hook) {
	c.hooks.ServiceCategory = append(c.hooks.ServiceCategory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `servicecategory.Intercept(f(g(h())))`.
func (c *ServiceCategoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServiceCategory = append(c.inters.ServiceCategory, interceptors...)
}

// Create returns a builder for creating a ServiceCategory entity.
func (c *ServiceCategoryClient) Create() *ServiceCategoryCreate {
	mutation := newServiceCategoryMutation(c.config, OpCreate)
	return &ServiceCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServiceCategory entities.
func (c *ServiceCategoryClient) CreateBulk(builders ...*ServiceCategoryCreate) *ServiceCategoryCreateBulk {
	return &ServiceCategoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceCategoryClient) MapCreateBulk(slice any, setFunc func(*ServiceCategoryCreate, int)) *ServiceCategoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceCategoryCreateBulk{err: fmt.Errorf("calling to ServiceCategoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceCategoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceCategoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServiceCategory.
func (c *ServiceCategoryClient) Update() *ServiceCategoryUpdate {
	mutation := newServiceCategoryMutation(c.config, OpUpdate)
	return &ServiceCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceCategoryClient) UpdateOne(_m *ServiceCategory) *ServiceCategoryUpdateOne {
	mutation := newServiceCategoryMutation(c.config, OpUpdateOne, withServiceCategory(_m))
	return &ServiceCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceCategoryClient) UpdateOneID(id string) *ServiceCategoryUpdateOne {
	mutation := newServiceCategoryMutation(c.config, OpUpdateOne, withServiceCategoryID(id))
	return &ServiceCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServiceCategory.
func (c *ServiceCategoryClient) Delete() *ServiceCategoryDelete {
	mutation := newServiceCategoryMutation(c.config, OpDelete)
	return &ServiceCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceCategoryClient) DeleteOne(_m *ServiceCategory) *ServiceCategoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceCategoryClient) DeleteOneID(id string) *ServiceCategoryDeleteOne {
	builder := c.Delete().Where(servicecategory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceCategoryDeleteOne{builder}
}

// Query returns a query builder for ServiceCategory.
func (c *ServiceCategoryClient) Query() *ServiceCategoryQuery {
	return &ServiceCategoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServiceCategory},
		inters: c.Interceptors(),
	}
}

// Get returns a ServiceCategory entity by its id.
func (c *ServiceCategoryClient) Get(ctx context.Context, id string) (*ServiceCategory, error) {
	return c.Query().Where(servicecategory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceCategoryClient) GetX(ctx context.Context, id string) *ServiceCategory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ServiceCategoryClient) Hooks() []Hook {
	return c.hooks.ServiceCategory
}

// Interceptors returns the client interceptors.
func (c *ServiceCategoryClient) Interceptors() []Interceptor {
	return c.inters.ServiceCategory
}

func (c *ServiceCategoryClient) mutate(ctx context.Context, m *ServiceCategoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ServiceCategory mutation op: %q", m.Op())
	}
}

// SubscriptionClient is a client for the Subscription schema.
type SubscriptionClient struct {
	config
}

// NewSubscriptionClient returns a client for the Subscription from the given config.
func NewSubscriptionClient(c config) *SubscriptionClient {
	return &SubscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subscription.Hooks(f(g(h())))`.
func (c *SubscriptionClient) Use(hooks ...Hook) {
	c.hooks.Subscription = append(c.hooks.Subscription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subscription.Intercept(f(g(h())))`.
func (c *SubscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subscription = append(c.inters.Subscription, interceptors...)
}

// Create returns a builder for creating a Subscription entity.
func (c *SubscriptionClient) Create() *SubscriptionCreate {
	mutation := newSubscriptionMutation(c.config, OpCreate)
	return &SubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subscription entities.
func (c *SubscriptionClient) CreateBulk(builders ...*SubscriptionCreate) *SubscriptionCreateBulk {
	return &SubscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubscriptionClient) MapCreateBulk(slice any, setFunc func(*SubscriptionCreate, int)) *SubscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubscriptionCreateBulk{err: fmt.Errorf("calling to SubscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subscription.
func (c *SubscriptionClient) Update() *SubscriptionUpdate {
	mutation := newSubscriptionMutation(c.config, OpUpdate)
	return &SubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubscriptionClient) UpdateOne(_m *Subscription) *SubscriptionUpdateOne {
	mutation := newSubscriptionMutation(c.config, OpUpdateOne, withSubscription(_m))
	return &SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubscriptionClient) UpdateOneID(id string) *SubscriptionUpdateOne {
	mutation := newSubscriptionMutation(c.config, OpUpdateOne, withSubscriptionID(id))
	return &SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subscription.
func (c *SubscriptionClient) Delete() *SubscriptionDelete {
	mutation := newSubscriptionMutation(c.config, OpDelete)
	return &SubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubscriptionClient) DeleteOne(_m *Subscription) *SubscriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubscriptionClient) DeleteOneID(id string) *SubscriptionDeleteOne {
	builder := c.Delete().Where(subscription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubscriptionDeleteOne{builder}
}

// Query returns a query builder for Subscription.
func (c *SubscriptionClient) Query() *SubscriptionQuery {
	return &SubscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubscription},
		inters: c.Interceptors(),
	}
}

// Get returns a Subscription entity by its id.
func (c *SubscriptionClient) Get(ctx context.Context, id string) (*Subscription, error) {
	return c.Query().Where(subscription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubscriptionClient) GetX(ctx context.Context, id string) *Subscription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubscriptionClient) Hooks() []Hook {
	return c.hooks.Subscription
}

// Interceptors returns the client interceptors.
func (c *SubscriptionClient) Interceptors() []Interceptor {
	return c.inters.Subscription
}

func (c *SubscriptionClient) mutate(ctx context.Context, m *SubscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subscription mutation op: %q", m.Op())
	}
}

// SupportTicketClient is a client for the SupportTicket schema.
type SupportTicketClient struct {
	config
}

// NewSupportTicketClient returns a client for the SupportTicket from the given config.
func NewSupportTicketClient(c config) *SupportTicketClient {
	return &SupportTicketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `supportticket.Hooks(f(g(h())))`.
func (c *SupportTicketClient) Use(hooks ...Hook) {
	c.hooks.SupportTicket = append(c.hooks.SupportTicket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `supportticket.Intercept(f(g(h())))`.
func (c *SupportTicketClient) Intercept(interceptors ...Interceptor) {
	c.inters.SupportTicket = append(c.inters.SupportTicket, interceptors...)
}

// Create returns a builder for creating a SupportTicket entity.
func (c *SupportTicketClient) Create() *SupportTicketCreate {
	mutation := newSupportTicketMutation(c.config, OpCreate)
	return &SupportTicketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SupportTicket entities.
func (c *SupportTicketClient) CreateBulk(builders ...*SupportTicketCreate) *SupportTicketCreateBulk {
	return &SupportTicketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupportTicketClient) MapCreateBulk(slice any, setFunc func(*SupportTicketCreate, int)) *SupportTicketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupportTicketCreateBulk{err: fmt.Errorf("calling to SupportTicketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupportTicketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupportTicketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SupportTicket.
func (c *SupportTicketClient) Update() *SupportTicketUpdate {
	mutation := newSupportTicketMutation(c.config, OpUpdate)
	return &SupportTicketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupportTicketClient) UpdateOne(_m *SupportTicket) *SupportTicketUpdateOne {
	mutation := newSupportTicketMutation(c.config, OpUpdateOne, withSupportTicket(_m))
	return &SupportTicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupportTicketClient) UpdateOneID(id string) *SupportTicketUpdateOne {
	mutation := newSupportTicketMutation(c.config, OpUpdateOne, withSupportTicketID(id))
	return &SupportTicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SupportTicket.
func (c *SupportTicketClient) Delete() *SupportTicketDelete {
	mutation := newSupportTicketMutation(c.config, OpDelete)
	return &SupportTicketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupportTicketClient) DeleteOne(_m *SupportTicket) *SupportTicketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupportTicketClient) DeleteOneID(id string) *SupportTicketDeleteOne {
	builder := c.Delete().Where(supportticket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupportTicketDeleteOne{builder}
}

// Query returns a query builder for SupportTicket.
func (c *SupportTicketClient) Query() *SupportTicketQuery {
	return &SupportTicketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupportTicket},
		inters: c.Interceptors(),
	}
}

// Get returns a SupportTicket entity by its id.
func (c *SupportTicketClient) Get(ctx context.Context, id string) (*SupportTicket, error) {
	return c.Query().Where(supportticket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupportTicketClient) GetX(ctx context.Context, id string) *SupportTicket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a SupportTicket.
func (c *SupportTicketClient) QueryMessages(_m *SupportTicket) *TicketMessageQuery {
	query := (&TicketMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(supportticket.Table, supportticket.FieldID, id),
			sqlgraph.To(ticketmessage.Table, ticketmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, supportticket.MessagesTable, supportticket.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SupportTicketClient) Hooks() []Hook {
	return c.hooks.SupportTicket
}

// Interceptors returns the client interceptors.
func (c *SupportTicketClient) Interceptors() []Interceptor {
	return c.inters.SupportTicket
}

func (c *SupportTicketClient) mutate(ctx context.Context, m *SupportTicketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupportTicketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupportTicketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupportTicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupportTicketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SupportTicket mutation op: %q", m.Op())
	}
}

// TableClient is a client for the Table schema.
type TableClient struct {
	config
}

// NewTableClient returns a client for the Table from the given config.
func NewTableClient(c config) *TableClient {
	return &TableClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `table.Hooks(f(g(h())))`.
func (c *TableClient) Use(hooks ...Hook) {
	c.hooks.Table = append(c.hooks.Table, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `table.Intercept(f(g(h())))`.
func (c *TableClient) Intercept(interceptors ...Interceptor) {
	c.inters.Table = append(c.inters.Table, interceptors...)
}

// Create returns a builder for creating a Table entity.
func (c *TableClient) Create() *TableCreate {
	mutation := newTableMutation(c.config, OpCreate)
	return &TableCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Table entities.
func (c *TableClient) CreateBulk(builders ...*TableCreate) *TableCreateBulk {
	return &TableCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TableClient) MapCreateBulk(slice any, setFunc func(*TableCreate, int)) *TableCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TableCreateBulk{err: fmt.Errorf("calling to TableClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TableCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TableCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Table.
func (c *TableClient) Update() *TableUpdate {
	mutation := newTableMutation(c.config, OpUpdate)
	return &TableUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TableClient) UpdateOne(_m *Table) *TableUpdateOne {
	mutation := newTableMutation(c.config, OpUpdateOne, withTable(_m))
	return &TableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TableClient) UpdateOneID(id string) *TableUpdateOne {
	mutation := newTableMutation(c.config, OpUpdateOne, withTableID(id))
	return &TableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Table.
func (c *TableClient) Delete() *TableDelete {
	mutation := newTableMutation(c.config, OpDelete)
	return &TableDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TableClient) DeleteOne(_m *Table) *TableDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TableClient) DeleteOneID(id string) *TableDeleteOne {
	builder := c.Delete().Where(table.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TableDeleteOne{builder}
}

// Query returns a query builder for Table.
func (c *TableClient) Query() *TableQuery {
	return &TableQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTable},
		inters: c.Interceptors(),
	}
}

// Get returns a Table entity by its id.
func (c *TableClient) Get(ctx context.Context, id string) (*Table, error) {
	return c.Query().Where(table.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TableClient) GetX(ctx context.Context, id string) *Table {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TableClient) Hooks() []Hook {
	return c.hooks.Table
}

// Interceptors returns the client interceptors.
func (c *TableClient) Interceptors() []Interceptor {
	return c.inters.Table
}

func (c *TableClient) mutate(ctx context.Context, m *TableMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TableCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TableUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TableDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Table mutation op: %q", m.Op())
	}
}

// TicketMessageClient is a client for the TicketMessage schema.
type TicketMessageClient struct {
	config
}

// NewTicketMessageClient returns a client for the TicketMessage from the given config.
func NewTicketMessageClient(c config) *TicketMessageClient {
	return &TicketMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticketmessage.Hooks(f(g(h())))`.
func (c *TicketMessageClient) Use(hooks ...Hook) {
	c.hooks.TicketMessage = append(c.hooks.TicketMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticketmessage.Intercept(f(g(h())))`.
func (c *TicketMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.TicketMessage = append(c.inters.TicketMessage, interceptors...)
}

// Create returns a builder for creating a TicketMessage entity.
func (c *TicketMessageClient) Create() *TicketMessageCreate {
	mutation := newTicketMessageMutation(c.config, OpCreate)
	return &TicketMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TicketMessage entities.
func (c *TicketMessageClient) CreateBulk(builders ...*TicketMessageCreate) *TicketMessageCreateBulk {
	return &TicketMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketMessageClient) MapCreateBulk(slice any, setFunc func(*TicketMessageCreate, int)) *TicketMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketMessageCreateBulk{err: fmt.Errorf("calling to TicketMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TicketMessage.
func (c *TicketMessageClient) Update() *TicketMessageUpdate {
	mutation := newTicketMessageMutation(c.config, OpUpdate)
	return &TicketMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketMessageClient) UpdateOne(_m *TicketMessage) *TicketMessageUpdateOne {
	mutation := newTicketMessageMutation(c.config, OpUpdateOne, withTicketMessage(_m))
	return &TicketMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketMessageClient) UpdateOneID(id string) *TicketMessageUpdateOne {
	mutation := newTicketMessageMutation(c.config, OpUpdateOne, withTicketMessageID(id))
	return &TicketMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TicketMessage.
func (c *TicketMessageClient) Delete() *TicketMessageDelete {
	mutation := newTicketMessageMutation(c.config, OpDelete)
	return &TicketMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketMessageClient) DeleteOne(_m *TicketMessage) *TicketMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketMessageClient) DeleteOneID(id string) *TicketMessageDeleteOne {
	builder := c.Delete().Where(ticketmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketMessageDeleteOne{builder}
}

// Query returns a query builder for TicketMessage.
func (c *TicketMessageClient) Query() *TicketMessageQuery {
	return &TicketMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicketMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a TicketMessage entity by its id.
func (c *TicketMessageClient) Get(ctx context.Context, id string) (*TicketMessage, error) {
	return c.Query().Where(ticketmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketMessageClient) GetX(ctx context.Context, id string) *TicketMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a TicketMessage.
func (c *TicketMessageClient) QueryTicket(_m *TicketMessage) *SupportTicketQuery {
	query := (&SupportTicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticketmessage.Table, ticketmessage.FieldID, id),
			sqlgraph.To(supportticket.Table, supportticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ticketmessage.TicketTable, ticketmessage.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TicketMessageClient) Hooks() []Hook {
	return c.hooks.TicketMessage
}

// Interceptors returns the client interceptors.
func (c *TicketMessageClient) Interceptors() []Interceptor {
	return c.inters.TicketMessage
}

func (c *TicketMessageClient) mutate(ctx context.Context, m *TicketMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TicketMessage mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BotIntegration, BusinessAddon, ChatMessage, ChatSession, InboundJob, Item,
		LLMTrace, Menu, OpeningHour, Order, OrderItem, OrderStatusHistory, Reservation,
		ReservationItem, ServiceCategory, Subscription, SupportTicket, Table,
		TicketMessage, User []ent.Hook
	}
	inters struct {
		BotIntegration, BusinessAddon, ChatMessage, ChatSession, InboundJob, Item,
		LLMTrace, Menu, OpeningHour, Order, OrderItem, OrderStatusHistory, Reservation,
		ReservationItem, ServiceCategory, Subscription, SupportTicket, Table,
		TicketMessage, User []ent.Interceptor
	}
)
