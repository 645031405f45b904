package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testdb "github.com/vendrahq/vendra/test/database"
	"github.com/vendrahq/vendra/test/util"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(OrderEventPayload{
			Type:       EventTypeOrderStatus,
			BusinessID: "biz-123",
			OrderID:    "ord-1",
			Status:     "completed",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeOrderStatus)
		assert.Contains(t, result, "biz-123")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longSubject := make([]byte, 8000)
		for i := range longSubject {
			longSubject[i] = 'a'
		}
		payload, _ := json.Marshal(TicketEventPayload{
			Type:       EventTypeTicketCreated,
			BusinessID: "biz-123",
			TicketID:   "tkt-456",
			Subject:    string(longSubject),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		longSubject := make([]byte, 8000)
		for i := range longSubject {
			longSubject[i] = 'x'
		}
		payload, _ := json.Marshal(TicketEventPayload{
			Type:       EventTypeTicketCreated,
			BusinessID: "biz-789",
			TicketID:   "tkt-456",
			Subject:    string(longSubject),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeTicketCreated)
		assert.Contains(t, result, "biz-789")
		assert.Contains(t, result, "tkt-456")
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestNewPublisher(t *testing.T) {
	publisher := NewPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

// listenOn opens a dedicated pgx connection in LISTEN mode on one channel.
func listenOn(t *testing.T, channel string) *pgx.Conn {
	t.Helper()
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, util.GetBaseConnectionString(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(context.Background()) })

	_, err = conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize())
	require.NoError(t, err)
	return conn
}

func waitForNotification(t *testing.T, conn *pgx.Conn) *pgconn.Notification {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	n, err := conn.WaitForNotification(ctx)
	require.NoError(t, err)
	return n
}

func TestPublisher_PublishOrderEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := NewPublisher(client.DB())
	businessID := uuid.New().String()
	conn := listenOn(t, BusinessChannel(businessID))

	err := publisher.PublishOrderEvent(context.Background(), OrderEventPayload{
		Type:       EventTypeOrderCreated,
		BusinessID: businessID,
		OrderID:    "ord-42",
		Status:     "accepted",
		Total:      "22.50",
	})
	require.NoError(t, err)

	n := waitForNotification(t, conn)
	assert.Equal(t, BusinessChannel(businessID), n.Channel)

	var got OrderEventPayload
	require.NoError(t, json.Unmarshal([]byte(n.Payload), &got))
	assert.Equal(t, EventTypeOrderCreated, got.Type)
	assert.Equal(t, "ord-42", got.OrderID)
	assert.Equal(t, "22.50", got.Total)
	assert.NotEmpty(t, got.Timestamp, "publisher should stamp the event")
}

func TestPublisher_EventsAreScopedToBusinessChannel(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := NewPublisher(client.DB())
	otherTenant := listenOn(t, BusinessChannel(uuid.New().String()))

	err := publisher.PublishSessionEvent(context.Background(), SessionEventPayload{
		Type:       EventTypeSessionState,
		BusinessID: uuid.New().String(),
		SessionID:  "sess-1",
		State:      "human_locked",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	_, err = otherTenant.WaitForNotification(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded, "event must not leak to another tenant's channel")
}

func TestPublisher_NotifyInboundJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := NewPublisher(client.DB())
	conn := listenOn(t, InboundJobsChannel)

	jobID := uuid.New().String()
	require.NoError(t, publisher.NotifyInboundJob(context.Background(), jobID))

	// The wake channel is global, so drain until our job shows up in case
	// another test is notifying at the same time.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		n, err := conn.WaitForNotification(ctx)
		require.NoError(t, err)
		require.Equal(t, InboundJobsChannel, n.Channel)
		if n.Payload == jobID {
			break
		}
	}
}
