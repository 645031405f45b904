package models

import (
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/ticketmessage"
)

// OpenTicketRequest opens a support ticket, optionally seeded with a first
// thread message.
type OpenTicketRequest struct {
	BusinessID           string                   `json:"business_id"`
	CustomerID           string                   `json:"customer_id"`
	SessionID            string                   `json:"session_id,omitempty"`
	RelatedOrderID       string                   `json:"related_order_id,omitempty"`
	RelatedReservationID string                   `json:"related_reservation_id,omitempty"`
	Subject              string                   `json:"subject,omitempty"`
	Priority             supportticket.Priority   `json:"priority,omitempty"`
	InitialMessage       string                   `json:"initial_message,omitempty"`
	InitialSender        ticketmessage.SenderType `json:"initial_sender,omitempty"`
}

// AddTicketMessageRequest appends one message to a ticket thread.
type AddTicketMessageRequest struct {
	TicketID   string                   `json:"ticket_id"`
	SenderType ticketmessage.SenderType `json:"sender_type"`
	Content    string                   `json:"content"`
}

// TicketFilters contains filtering options for listing tickets.
type TicketFilters struct {
	BusinessID         string                 `json:"business_id,omitempty"`
	CustomerID         string                 `json:"customer_id,omitempty"`
	SessionID          string                 `json:"session_id,omitempty"`
	Status             supportticket.Status   `json:"status,omitempty"`
	Priority           supportticket.Priority `json:"priority,omitempty"`
	AssignedEmployeeID string                 `json:"assigned_employee_id,omitempty"`
	Limit              int                    `json:"limit,omitempty"`
	Offset             int                    `json:"offset,omitempty"`
}

// TicketListResponse contains a paginated ticket list.
type TicketListResponse struct {
	Tickets    []*ent.SupportTicket `json:"tickets"`
	TotalCount int                  `json:"total_count"`
	Limit      int                  `json:"limit"`
	Offset     int                  `json:"offset"`
}
