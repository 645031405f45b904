// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BotIntegration is the predicate function for botintegration builders.
type BotIntegration func(*sql.Selector)

// BusinessAddon is the predicate function for businessaddon builders.
type BusinessAddon func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// InboundJob is the predicate function for inboundjob builders.
type InboundJob func(*sql.Selector)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// LLMTrace is the predicate function for llmtrace builders.
type LLMTrace func(*sql.Selector)

// Menu is the predicate function for menu builders.
type Menu func(*sql.Selector)

// OpeningHour is the predicate function for openinghour builders.
type OpeningHour func(*sql.Selector)

// Order is the predicate function for order builders.
type Order func(*sql.Selector)

// OrderItem is the predicate function for orderitem builders.
type OrderItem func(*sql.Selector)

// OrderStatusHistory is the predicate function for orderstatushistory builders.
type OrderStatusHistory func(*sql.Selector)

// Reservation is the predicate function for reservation builders.
type Reservation func(*sql.Selector)

// ReservationItem is the predicate function for reservationitem builders.
type ReservationItem func(*sql.Selector)

// ServiceCategory is the predicate function for servicecategory builders.
type ServiceCategory func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// SupportTicket is the predicate function for supportticket builders.
type SupportTicket func(*sql.Selector)

// Table is the predicate function for table builders.
type Table func(*sql.Selector)

// TicketMessage is the predicate function for ticketmessage builders.
type TicketMessage func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
