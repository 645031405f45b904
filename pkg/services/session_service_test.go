package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/ticketmessage"
	"github.com/vendrahq/vendra/pkg/models"
	testdb "github.com/vendrahq/vendra/test/database"
)

func TestSessionService_GetOrOpen(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Chat Co")
	scope := models.SessionScope{
		BusinessID: business.ID,
		CustomerID: "+15551001",
		Platform:   chatsession.PlatformWhatsapp,
	}

	t.Run("opens once and reuses", func(t *testing.T) {
		first, err := service.GetOrOpen(ctx, scope)
		require.NoError(t, err)
		assert.Equal(t, chatsession.StateBotActive, first.State)

		second, err := service.GetOrOpen(ctx, scope)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("platforms are separate threads", func(t *testing.T) {
		tg := scope
		tg.Platform = chatsession.PlatformTelegram
		other, err := service.GetOrOpen(ctx, tg)
		require.NoError(t, err)

		existing, err := service.GetOrOpen(ctx, scope)
		require.NoError(t, err)
		assert.NotEqual(t, existing.ID, other.ID)
	})

	t.Run("closing makes room for a fresh session", func(t *testing.T) {
		current, err := service.GetOrOpen(ctx, scope)
		require.NoError(t, err)

		_, err = service.Close(ctx, current.ID)
		require.NoError(t, err)

		fresh, err := service.GetOrOpen(ctx, scope)
		require.NoError(t, err)
		assert.NotEqual(t, current.ID, fresh.ID)
	})

	t.Run("scope must be complete", func(t *testing.T) {
		_, err := service.GetOrOpen(ctx, models.SessionScope{BusinessID: business.ID})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_AppendMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Thread Co")
	scope := models.SessionScope{
		BusinessID: business.ID,
		CustomerID: "+15552001",
		Platform:   chatsession.PlatformWhatsapp,
	}
	session, err := service.GetOrOpen(ctx, scope)
	require.NoError(t, err)

	t.Run("appends and touches activity", func(t *testing.T) {
		before := session.LastActivityAt

		msg, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:         session.ID,
			SenderType:        chatmessage.SenderTypeCustomer,
			Content:           "una margherita per favore",
			ProviderMessageID: "wamid.001",
		})
		require.NoError(t, err)
		assert.Equal(t, chatmessage.SenderTypeCustomer, msg.SenderType)

		refreshed, err := service.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.False(t, refreshed.LastActivityAt.Before(before))
	})

	t.Run("media without text is enough", func(t *testing.T) {
		msg, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:  session.ID,
			SenderType: chatmessage.SenderTypeCustomer,
			MediaURL:   "https://cdn.example.com/receipt.jpg",
		})
		require.NoError(t, err)
		require.NotNil(t, msg.MediaURL)
	})

	t.Run("neither text nor media", func(t *testing.T) {
		_, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:  session.ID,
			SenderType: chatmessage.SenderTypeCustomer,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("message order and recency", func(t *testing.T) {
		for _, text := range []string{"uno", "due", "tre"} {
			_, err := service.AppendMessage(ctx, models.AppendMessageRequest{
				SessionID:  session.ID,
				SenderType: chatmessage.SenderTypeBot,
				Content:    text,
			})
			require.NoError(t, err)
		}

		recent, err := service.RecentMessages(ctx, session.ID, 3)
		require.NoError(t, err)
		require.Len(t, recent, 3)
		// Chronological despite the reverse-scan fetch
		assert.Equal(t, "uno", recent[0].Content)
		assert.Equal(t, "tre", recent[2].Content)
	})
}

func TestSessionService_Handover(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Handover Co")

	open := func(customer string) *ent.ChatSession {
		s, err := service.GetOrOpen(ctx, models.SessionScope{
			BusinessID: business.ID,
			CustomerID: customer,
			Platform:   chatsession.PlatformWhatsapp,
		})
		require.NoError(t, err)
		return s
	}

	t.Run("locks and opens a ticket", func(t *testing.T) {
		session := open("+15553001")

		locked, ticket, err := service.Lock(ctx, session.ID, "customer asked for a human", "")
		require.NoError(t, err)
		assert.Equal(t, chatsession.StateHumanLocked, locked.State)
		require.NotNil(t, ticket)
		assert.Equal(t, supportticket.StatusOpen, ticket.Status)
		assert.Equal(t, supportticket.PriorityHigh, ticket.Priority)
		require.NotNil(t, ticket.SessionID)
		assert.Equal(t, session.ID, *ticket.SessionID)

		// Both threads carry the system note
		msgs, err := service.Messages(ctx, session.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, chatmessage.SenderTypeSystem, msgs[0].SenderType)

		notes, err := client.Client.TicketMessage.Query().
			Where(ticketmessage.TicketIDEQ(ticket.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, ticketmessage.SenderTypeSystem, notes[0].SenderType)
	})

	t.Run("second lock fails", func(t *testing.T) {
		session := open("+15553002")
		_, _, err := service.Lock(ctx, session.ID, "", "")
		require.NoError(t, err)

		_, _, err = service.Lock(ctx, session.ID, "", "")
		assert.ErrorIs(t, err, ErrSessionLocked)
	})

	t.Run("takeover assigns the agent", func(t *testing.T) {
		session := open("+15553003")
		_, _, err := service.Lock(ctx, session.ID, "", "")
		require.NoError(t, err)

		taken, err := service.Takeover(ctx, session.ID, "emp-42")
		require.NoError(t, err)
		require.NotNil(t, taken.AssignedEmployeeID)
		assert.Equal(t, "emp-42", *taken.AssignedEmployeeID)
	})

	t.Run("release returns the bot", func(t *testing.T) {
		session := open("+15553004")
		_, _, err := service.Lock(ctx, session.ID, "", "emp-7")
		require.NoError(t, err)

		released, err := service.Release(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, chatsession.StateBotActive, released.State)
		assert.Nil(t, released.AssignedEmployeeID)

		// The return note lands in the thread
		msgs, err := service.Messages(ctx, session.ID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, msgs, 2)
	})

	t.Run("cannot release an unlocked session", func(t *testing.T) {
		session := open("+15553005")
		_, err := service.Release(ctx, session.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("cannot lock a closed session", func(t *testing.T) {
		session := open("+15553006")
		_, err := service.Close(ctx, session.ID)
		require.NoError(t, err)

		_, _, err = service.Lock(ctx, session.ID, "", "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestSessionService_Close(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Chiusura Co")
	session, err := service.GetOrOpen(ctx, models.SessionScope{
		BusinessID: business.ID,
		CustomerID: "+15554001",
		Platform:   chatsession.PlatformInstagram,
	})
	require.NoError(t, err)

	closed, err := service.Close(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StateClosed, closed.State)

	// Closing again is a no-op
	again, err := service.Close(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StateClosed, again.State)
}

func TestSessionService_CloseIdle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Reaper Co")

	stale, err := service.GetOrOpen(ctx, models.SessionScope{
		BusinessID: business.ID,
		CustomerID: "+15555001",
		Platform:   chatsession.PlatformWhatsapp,
	})
	require.NoError(t, err)
	fresh, err := service.GetOrOpen(ctx, models.SessionScope{
		BusinessID: business.ID,
		CustomerID: "+15555002",
		Platform:   chatsession.PlatformWhatsapp,
	})
	require.NoError(t, err)

	// Age the first session past the cutoff
	err = client.Client.ChatSession.UpdateOneID(stale.ID).
		SetLastActivityAt(time.Now().Add(-25 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	n, err := service.CloseIdle(ctx, time.Now().Add(-24*time.Hour), 50)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	reaped, err := service.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StateClosed, reaped.State)

	alive, err := service.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StateBotActive, alive.State)
}

func TestSessionService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Elenco Co")
	for _, customer := range []string{"+15556001", "+15556002"} {
		_, err := service.GetOrOpen(ctx, models.SessionScope{
			BusinessID: business.ID,
			CustomerID: customer,
			Platform:   chatsession.PlatformWhatsapp,
		})
		require.NoError(t, err)
	}

	resp, err := service.List(ctx, models.SessionFilters{
		BusinessID: business.ID,
		State:      chatsession.StateBotActive,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)

	resp, err = service.List(ctx, models.SessionFilters{
		BusinessID: business.ID,
		CustomerID: "+15556001",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
}
