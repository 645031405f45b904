package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/pkg/models"
	testdb "github.com/vendrahq/vendra/test/database"
)

func TestTraceService_Record(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTraceService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Trace Co")

	t.Run("records a full turn", func(t *testing.T) {
		trace, err := service.Record(ctx, models.RecordTraceRequest{
			SessionID:  "sess-1",
			BusinessID: business.ID,
			TurnID:     "turn-1",
			Model:      "gpt-4o",
			RequestMessages: []map[string]interface{}{
				{"role": "user", "content": "book a table for two"},
			},
			FinalText: "Done, table 4 at 20:00.",
			ToolCalls: []map[string]interface{}{
				{"name": "create_reservation", "duration_ms": 41},
			},
			Iterations:   2,
			InputTokens:  812,
			OutputTokens: 96,
			DurationMs:   1830,
		})
		require.NoError(t, err)
		assert.Equal(t, "turn-1", trace.TurnID)
		assert.Equal(t, 2, trace.Iterations)
		assert.Len(t, trace.ToolCalls, 1)
	})

	t.Run("records a failed turn", func(t *testing.T) {
		trace, err := service.Record(ctx, models.RecordTraceRequest{
			SessionID:  "sess-1",
			BusinessID: business.ID,
			TurnID:     "turn-2",
			Model:      "gpt-4o",
			Error:      "provider timeout",
			DurationMs: 8000,
		})
		require.NoError(t, err)
		assert.Equal(t, "provider timeout", *trace.Error)
	})

	t.Run("requires identifiers", func(t *testing.T) {
		_, err := service.Record(ctx, models.RecordTraceRequest{SessionID: "sess-1"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTraceService_ListForSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTraceService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Trace List Co")

	for _, turn := range []string{"t1", "t2", "t3"} {
		_, err := service.Record(ctx, models.RecordTraceRequest{
			SessionID:  "sess-9",
			BusinessID: business.ID,
			TurnID:     turn,
			Model:      "gpt-4o",
		})
		require.NoError(t, err)
	}

	traces, err := service.ListForSession(ctx, "sess-9", 2)
	require.NoError(t, err)
	require.Len(t, traces, 2)
	// Most recent first
	assert.Equal(t, "t3", traces[0].TurnID)

	all, err := service.ListForSession(ctx, "sess-9", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
