package events

// OrderEventPayload is published on order.created and order.status.
type OrderEventPayload struct {
	Type          string `json:"type"`
	BusinessID    string `json:"business_id"`
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	RequestType   string `json:"request_type,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	Total         string `json:"total,omitempty"`
	Timestamp     string `json:"timestamp"` // RFC3339Nano
}

// SessionEventPayload is published on session.state transitions: opened,
// handed over to a human, released back to the assistant, closed.
type SessionEventPayload struct {
	Type       string `json:"type"`
	BusinessID string `json:"business_id"`
	SessionID  string `json:"session_id"`
	State      string `json:"state"`
	Platform   string `json:"platform,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}

// ReservationEventPayload is published on reservation.created and
// reservation.status.
type ReservationEventPayload struct {
	Type          string `json:"type"`
	BusinessID    string `json:"business_id"`
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`
	TableID       string `json:"table_id,omitempty"`
	StartsAt      string `json:"starts_at,omitempty"` // YYYY-MM-DDTHH:MM, business-local
	PartySize     int    `json:"party_size,omitempty"`
	Timestamp     string `json:"timestamp"` // RFC3339Nano
}

// TicketEventPayload is published on ticket.created and ticket.status.
type TicketEventPayload struct {
	Type       string `json:"type"`
	BusinessID string `json:"business_id"`
	TicketID   string `json:"ticket_id"`
	Status     string `json:"status,omitempty"`
	Priority   string `json:"priority,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}
