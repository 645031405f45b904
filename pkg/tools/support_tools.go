package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/ticketmessage"
	"github.com/vendrahq/vendra/pkg/models"
)

func (r *Registry) supportTools() []*Tool {
	return []*Tool{
		{
			Name:        "open_support_ticket",
			Description: "Open a support ticket for an issue the bot cannot resolve, optionally linked to an order or reservation.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"message": {"type": "string", "minLength": 1, "description": "The customer's complaint or question, verbatim"},
					"subject": {"type": "string"},
					"priority": {"type": "string", "enum": ["low", "medium", "high", "urgent"]},
					"related_order_id": {"type": "string"},
					"related_reservation_id": {"type": "string"}
				},
				"required": ["message"],
				"additionalProperties": false
			}`),
			Run: r.runOpenSupportTicket,
		},
		{
			Name:        "request_human_assistance",
			Description: "Hand the conversation to a human employee. The bot stops replying until staff release the session.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"reason": {"type": "string", "description": "Why the customer needs a human"}
				},
				"additionalProperties": false
			}`),
			Run: r.runRequestHumanAssistance,
		},
	}
}

func (r *Registry) runOpenSupportTicket(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	req := models.OpenTicketRequest{
		BusinessID:           tc.BusinessID,
		CustomerID:           tc.CustomerPhone,
		SessionID:            tc.SessionID,
		Subject:              argString(args, "subject"),
		RelatedOrderID:       argString(args, "related_order_id"),
		RelatedReservationID: argString(args, "related_reservation_id"),
		InitialMessage:       argString(args, "message"),
		InitialSender:        ticketmessage.SenderTypeCustomer,
	}
	if p := argString(args, "priority"); p != "" {
		req.Priority = supportticket.Priority(p)
	}

	ticket, err := r.tickets.Open(ctx, req)
	if err != nil {
		return failErr(err)
	}
	return ok(fmt.Sprintf("ticket %s opened", ticket.ID), map[string]interface{}{
		"ticket_id": ticket.ID,
		"status":    ticket.Status,
		"priority":  ticket.Priority,
	})
}

func (r *Registry) runRequestHumanAssistance(ctx context.Context, tc *Context, args map[string]interface{}) *Result {
	reason := argString(args, "reason")
	if reason == "" {
		reason = "customer asked for a human"
	}

	session, ticket, err := r.sessions.Lock(ctx, tc.SessionID, reason, "")
	if err != nil {
		return failErr(err)
	}
	return ok("a human will take over this conversation shortly", map[string]interface{}{
		"ticket_id":     ticket.ID,
		"session_state": session.State,
	})
}
