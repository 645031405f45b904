package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Publisher broadcasts dashboard events and queue wake-ups via pg_notify.
// Events are not persisted; the rows they describe already are.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go. Payloads are marshaled to JSON and routed to the tenant's
// business channel.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a new Publisher. The db parameter should be the
// *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishOrderEvent broadcasts an order.created or order.status event to the
// tenant's dashboard channel.
func (p *Publisher) PublishOrderEvent(ctx context.Context, payload OrderEventPayload) error {
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	return p.notify(ctx, BusinessChannel(payload.BusinessID), payload)
}

// PublishSessionEvent broadcasts a session.state event.
func (p *Publisher) PublishSessionEvent(ctx context.Context, payload SessionEventPayload) error {
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	return p.notify(ctx, BusinessChannel(payload.BusinessID), payload)
}

// PublishReservationEvent broadcasts a reservation.created or
// reservation.status event.
func (p *Publisher) PublishReservationEvent(ctx context.Context, payload ReservationEventPayload) error {
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	return p.notify(ctx, BusinessChannel(payload.BusinessID), payload)
}

// PublishTicketEvent broadcasts a ticket.created or ticket.status event.
func (p *Publisher) PublishTicketEvent(ctx context.Context, payload TicketEventPayload) error {
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	return p.notify(ctx, BusinessChannel(payload.BusinessID), payload)
}

// NotifyInboundJob wakes queue workers after an inbound job insert. The
// payload is the job id, purely informational; workers claim work from the
// table, not from the notification.
func (p *Publisher) NotifyInboundJob(ctx context.Context, jobID string) error {
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", InboundJobsChannel, jobID); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// notify marshals and broadcasts one payload on a channel.
func (p *Publisher) notify(ctx context.Context, channel string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	notifyPayload, err := truncateIfNeeded(string(raw))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal envelope
// with only the routing fields; the client refetches the row over REST.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload keeps the type, the tenant scope, and whichever
// entity id the payload carries.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type          string `json:"type"`
		BusinessID    string `json:"business_id"`
		OrderID       string `json:"order_id"`
		SessionID     string `json:"session_id"`
		ReservationID string `json:"reservation_id"`
		TicketID      string `json:"ticket_id"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":        routing.Type,
		"business_id": routing.BusinessID,
		"truncated":   true,
	}
	for key, id := range map[string]string{
		"order_id":       routing.OrderID,
		"session_id":     routing.SessionID,
		"reservation_id": routing.ReservationID,
		"ticket_id":      routing.TicketID,
	} {
		if id != "" {
			truncated[key] = id
		}
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
