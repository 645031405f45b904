package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/ticketmessage"
	"github.com/vendrahq/vendra/pkg/models"
	testdb "github.com/vendrahq/vendra/test/database"
)

func TestTicketService_Open(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Desk Co")

	t.Run("opens with an initial message", func(t *testing.T) {
		ticket, err := service.Open(ctx, models.OpenTicketRequest{
			BusinessID:     business.ID,
			CustomerID:     "+15551001",
			Subject:        "Wrong order delivered",
			InitialMessage: "I received a quattro formaggi instead of a diavola",
		})
		require.NoError(t, err)
		assert.Equal(t, supportticket.StatusOpen, ticket.Status)
		assert.Equal(t, supportticket.PriorityMedium, ticket.Priority)

		thread, err := service.Messages(ctx, ticket.ID)
		require.NoError(t, err)
		require.Len(t, thread, 1)
		assert.Equal(t, ticketmessage.SenderTypeCustomer, thread[0].SenderType)
	})

	t.Run("opens bare", func(t *testing.T) {
		ticket, err := service.Open(ctx, models.OpenTicketRequest{
			BusinessID: business.ID,
			CustomerID: "+15551002",
			Priority:   supportticket.PriorityUrgent,
		})
		require.NoError(t, err)
		assert.Equal(t, supportticket.PriorityUrgent, ticket.Priority)

		thread, err := service.Messages(ctx, ticket.ID)
		require.NoError(t, err)
		assert.Empty(t, thread)
	})

	t.Run("requires the customer", func(t *testing.T) {
		_, err := service.Open(ctx, models.OpenTicketRequest{BusinessID: business.ID})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTicketService_Thread(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Thread Desk")
	ticket, err := service.Open(ctx, models.OpenTicketRequest{
		BusinessID:     business.ID,
		CustomerID:     "+15552001",
		InitialMessage: "My reservation disappeared",
	})
	require.NoError(t, err)

	t.Run("conversation grows in order", func(t *testing.T) {
		_, err := service.AddMessage(ctx, models.AddTicketMessageRequest{
			TicketID:   ticket.ID,
			SenderType: ticketmessage.SenderTypeEmployee,
			Content:    "Checking with the restaurant now",
		})
		require.NoError(t, err)

		thread, err := service.Messages(ctx, ticket.ID)
		require.NoError(t, err)
		require.Len(t, thread, 2)
		assert.Equal(t, ticketmessage.SenderTypeCustomer, thread[0].SenderType)
		assert.Equal(t, ticketmessage.SenderTypeEmployee, thread[1].SenderType)
	})

	t.Run("closed tickets take no messages", func(t *testing.T) {
		_, err := service.UpdateStatus(ctx, ticket.ID, supportticket.StatusClosed)
		require.NoError(t, err)

		_, err = service.AddMessage(ctx, models.AddTicketMessageRequest{
			TicketID:   ticket.ID,
			SenderType: ticketmessage.SenderTypeCustomer,
			Content:    "hello?",
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestTicketService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Lifecycle Desk")

	open := func(customer string) string {
		ticket, err := service.Open(ctx, models.OpenTicketRequest{
			BusinessID: business.ID,
			CustomerID: customer,
		})
		require.NoError(t, err)
		return ticket.ID
	}

	t.Run("assignment moves to in progress", func(t *testing.T) {
		id := open("+15553001")
		ticket, err := service.Assign(ctx, id, "emp-9")
		require.NoError(t, err)
		assert.Equal(t, supportticket.StatusInProgress, ticket.Status)
		require.NotNil(t, ticket.AssignedEmployeeID)
		assert.Equal(t, "emp-9", *ticket.AssignedEmployeeID)
	})

	t.Run("waiting on the customer then closed", func(t *testing.T) {
		id := open("+15553002")
		ticket, err := service.UpdateStatus(ctx, id, supportticket.StatusWaitingCustomer)
		require.NoError(t, err)
		assert.Equal(t, supportticket.StatusWaitingCustomer, ticket.Status)

		ticket, err = service.UpdateStatus(ctx, id, supportticket.StatusClosed)
		require.NoError(t, err)
		assert.Equal(t, supportticket.StatusClosed, ticket.Status)
	})

	t.Run("closed is terminal", func(t *testing.T) {
		id := open("+15553003")
		_, err := service.UpdateStatus(ctx, id, supportticket.StatusClosed)
		require.NoError(t, err)

		_, err = service.UpdateStatus(ctx, id, supportticket.StatusOpen)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		_, err = service.Assign(ctx, id, "emp-9")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		_, err := service.UpdateStatus(ctx, "nonexistent", supportticket.StatusClosed)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTicketService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Coda Desk")

	first, err := service.Open(ctx, models.OpenTicketRequest{
		BusinessID: business.ID,
		CustomerID: "+15554001",
		Priority:   supportticket.PriorityHigh,
	})
	require.NoError(t, err)
	_, err = service.Open(ctx, models.OpenTicketRequest{
		BusinessID: business.ID,
		CustomerID: "+15554002",
	})
	require.NoError(t, err)

	_, err = service.Assign(ctx, first.ID, "emp-1")
	require.NoError(t, err)

	t.Run("by status", func(t *testing.T) {
		resp, err := service.List(ctx, models.TicketFilters{
			BusinessID: business.ID,
			Status:     supportticket.StatusInProgress,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("by assignee", func(t *testing.T) {
		resp, err := service.List(ctx, models.TicketFilters{
			BusinessID:         business.ID,
			AssignedEmployeeID: "emp-1",
		})
		require.NoError(t, err)
		require.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, first.ID, resp.Tickets[0].ID)
	})

	t.Run("by priority", func(t *testing.T) {
		resp, err := service.List(ctx, models.TicketFilters{
			BusinessID: business.ID,
			Priority:   supportticket.PriorityHigh,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
	})
}
