package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessChannel(t *testing.T) {
	tests := []struct {
		name       string
		businessID string
		want       string
	}{
		{
			name:       "formats business channel correctly",
			businessID: "abc-123",
			want:       "business:abc-123",
		},
		{
			name:       "handles UUID format",
			businessID: "550e8400-e29b-41d4-a716-446655440000",
			want:       "business:550e8400-e29b-41d4-a716-446655440000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BusinessChannel(tt.businessID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeOrderCreated,
		EventTypeOrderStatus,
		EventTypeSessionState,
		EventTypeReservationCreated,
		EventTypeReservationStatus,
		EventTypeTicketCreated,
		EventTypeTicketStatus,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestInboundJobsChannel(t *testing.T) {
	assert.Equal(t, "inbound_jobs", InboundJobsChannel)
}
