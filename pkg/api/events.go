package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/pkg/events"
)

// Dashboard event delivery is best-effort. The operational tables are the
// durable record; a failed NOTIFY is logged and the request still succeeds.

func (s *Server) publishOrderEvent(ctx context.Context, eventType string, o *ent.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(ctx, events.OrderEventPayload{
		Type:          eventType,
		BusinessID:    o.BusinessID,
		OrderID:       o.ID,
		Status:        string(o.Status),
		RequestType:   string(o.RequestType),
		CustomerPhone: o.CustomerPhoneNumber,
		Total:         o.Total.String(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish order event", "order_id", o.ID, "error", err)
	}
}

func (s *Server) publishSessionEvent(ctx context.Context, sess *ent.ChatSession) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishSessionEvent(ctx, events.SessionEventPayload{
		Type:       events.EventTypeSessionState,
		BusinessID: sess.BusinessID,
		SessionID:  sess.ID,
		State:      string(sess.State),
		Platform:   string(sess.Platform),
		CustomerID: sess.CustomerID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish session event", "session_id", sess.ID, "error", err)
	}
}

func (s *Server) publishReservationEvent(ctx context.Context, eventType string, res *ent.Reservation) {
	if s.publisher == nil {
		return
	}
	payload := events.ReservationEventPayload{
		Type:          eventType,
		BusinessID:    res.BusinessUserID,
		ReservationID: res.ID,
		Status:        string(res.Status),
		StartsAt:      res.ReservationDate + "T" + res.ReservationTime,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
	}
	if res.TableID != nil {
		payload.TableID = *res.TableID
	}
	if res.NumberOfGuests != nil {
		payload.PartySize = *res.NumberOfGuests
	}
	if err := s.publisher.PublishReservationEvent(ctx, payload); err != nil {
		slog.Warn("Failed to publish reservation event", "reservation_id", res.ID, "error", err)
	}
}

func (s *Server) publishTicketEvent(ctx context.Context, eventType string, t *ent.SupportTicket) {
	if s.publisher == nil {
		return
	}
	payload := events.TicketEventPayload{
		Type:       eventType,
		BusinessID: t.BusinessID,
		TicketID:   t.ID,
		Status:     string(t.Status),
		Priority:   string(t.Priority),
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	if t.Subject != nil {
		payload.Subject = *t.Subject
	}
	if err := s.publisher.PublishTicketEvent(ctx, payload); err != nil {
		slog.Warn("Failed to publish ticket event", "ticket_id", t.ID, "error", err)
	}
}
