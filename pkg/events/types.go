// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Two kinds of traffic share the LISTEN plumbing:
//
//   - Dashboard events: order, session, reservation, and ticket changes,
//     published to per-business channels and fanned out to the WebSocket
//     clients of that business. Events are transient; the operational
//     tables are the durable record, and a reconnecting dashboard reloads
//     them over REST before resuming the stream.
//
//   - Queue wake-ups: a bare NOTIFY on the inbound jobs channel after an
//     InboundJob insert, so idle workers claim work without waiting for
//     the poll interval.
package events

// Dashboard event types carried in the "type" field of every payload.
const (
	EventTypeOrderCreated = "order.created"
	EventTypeOrderStatus  = "order.status"

	EventTypeSessionState = "session.state"

	EventTypeReservationCreated = "reservation.created"
	EventTypeReservationStatus  = "reservation.status"

	EventTypeTicketCreated = "ticket.created"
	EventTypeTicketStatus  = "ticket.status"
)

// InboundJobsChannel is the NOTIFY channel that wakes queue workers.
const InboundJobsChannel = "inbound_jobs"

// BusinessChannel returns the dashboard channel for one tenant's events.
// Format: "business:{business_id}"
func BusinessChannel(businessID string) string {
	return "business:" + businessID
}

// ClientMessage is the JSON structure for client → server WebSocket
// messages.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "ping"
	Channel string `json:"channel,omitempty"` // channel name, e.g. "business:abc-123"
}
