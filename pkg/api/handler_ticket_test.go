package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ticketJSON struct {
	ID                 string  `json:"id"`
	BusinessID         string  `json:"business_id"`
	Status             string  `json:"status"`
	Priority           string  `json:"priority"`
	Subject            *string `json:"subject,omitempty"`
	AssignedEmployeeID *string `json:"assigned_employee_id,omitempty"`
}

func TestTicketLifecycle(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Uhrwerk Repairs")
	other := seedAPIBusiness(t, env.client, "Tick Tock")
	token := mintToken(t, biz.ID, roleBusiness)

	var ticket ticketJSON
	t.Run("open with an initial note", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/tickets", token, gin.H{
			"business_id":     other.ID, // ignored for non-admins
			"customer_id":     "+4915700011001",
			"subject":         "Watch still losing time",
			"priority":        "urgent",
			"initial_message": "Customer came back twice already.",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		decodeData(t, rec, &ticket)
		assert.Equal(t, biz.ID, ticket.BusinessID)
		assert.Equal(t, "open", ticket.Status)
		assert.Equal(t, "urgent", ticket.Priority)

		rec = env.do(t, http.MethodGet, "/api/v1/tickets/"+ticket.ID+"/messages", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var msgs []struct {
			SenderType string `json:"sender_type"`
			Content    string `json:"content"`
		}
		decodeData(t, rec, &msgs)
		require.Len(t, msgs, 1)
		assert.Equal(t, "employee", msgs[0].SenderType)
	})

	t.Run("assign defaults to the caller", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/v1/tickets/"+ticket.ID+"/assign", token, gin.H{})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got ticketJSON
		decodeData(t, rec, &got)
		require.NotNil(t, got.AssignedEmployeeID)
		assert.Equal(t, biz.ID, *got.AssignedEmployeeID)
		assert.Equal(t, "in_progress", got.Status)
	})

	t.Run("thread grows", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/tickets/"+ticket.ID+"/messages", token,
			gin.H{"content": "Replaced the movement, testing overnight."})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = env.do(t, http.MethodGet, "/api/v1/tickets/"+ticket.ID+"/messages", token, nil)
		var msgs []struct {
			Content string `json:"content"`
		}
		decodeData(t, rec, &msgs)
		assert.Len(t, msgs, 2)
	})

	t.Run("closed tickets are frozen", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/v1/tickets/"+ticket.ID+"/status", token,
			gin.H{"status": "closed"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = env.do(t, http.MethodPatch, "/api/v1/tickets/"+ticket.ID+"/status", token,
			gin.H{"status": "open"})
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
		assert.Equal(t, codeInvalidTransition, errorCode(t, rec))
	})

	t.Run("tenancy wall", func(t *testing.T) {
		otherToken := mintToken(t, other.ID, roleBusiness)
		rec := env.do(t, http.MethodGet, "/api/v1/tickets/"+ticket.ID, otherToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	})
}

func TestTicketListFilters(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Atelier Nord")
	token := mintToken(t, biz.ID, roleBusiness)

	for _, c := range []struct {
		customer string
		priority string
	}{
		{"+4915700012001", "low"},
		{"+4915700012002", "urgent"},
	} {
		rec := env.do(t, http.MethodPost, "/api/v1/tickets", token, gin.H{
			"customer_id": c.customer,
			"priority":    c.priority,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	t.Run("by priority", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/tickets?priority=urgent", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var list struct {
			Tickets    []ticketJSON `json:"tickets"`
			TotalCount int          `json:"total_count"`
		}
		decodeData(t, rec, &list)
		require.Equal(t, 1, list.TotalCount)
		assert.Equal(t, "urgent", list.Tickets[0].Priority)
	})

	t.Run("by customer", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/tickets?customer_id=%2B4915700012001", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var list struct {
			TotalCount int `json:"total_count"`
		}
		decodeData(t, rec, &list)
		assert.Equal(t, 1, list.TotalCount)
	})
}
