package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/pkg/database"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
)

type sessionJSON struct {
	ID                 string  `json:"id"`
	BusinessID         string  `json:"business_id"`
	State              string  `json:"state"`
	AssignedEmployeeID *string `json:"assigned_employee_id,omitempty"`
}

type messageJSON struct {
	SenderType        string  `json:"sender_type"`
	Content           string  `json:"content"`
	ProviderMessageID *string `json:"provider_message_id,omitempty"`
}

func seedAPISession(t *testing.T, client *database.Client, businessID, customerID string) *ent.ChatSession {
	t.Helper()
	sess, err := services.NewSessionService(client.Client).GetOrOpen(context.Background(), models.SessionScope{
		BusinessID: businessID,
		CustomerID: customerID,
		Platform:   chatsession.PlatformWhatsapp,
	})
	require.NoError(t, err)
	return sess
}

func TestSessionReplyEndpoint(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Blossom Flowers")
	seedAPIIntegration(t, env.client, biz.ID, botintegration.PlatformWhatsapp, "15550006001")
	token := mintToken(t, biz.ID, roleBusiness)

	sess := seedAPISession(t, env.client, biz.ID, "+4915700006001")

	t.Run("delivers and records", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/messages", token,
			gin.H{"content": "Your bouquet is ready for pickup."})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		require.Len(t, env.whatsapp.sent, 1)
		assert.Equal(t, "+4915700006001", env.whatsapp.sent[0].To)
		assert.Equal(t, "Your bouquet is ready for pickup.", env.whatsapp.sent[0].Text)

		var msg messageJSON
		decodeData(t, rec, &msg)
		assert.Equal(t, "employee", msg.SenderType)
		require.NotNil(t, msg.ProviderMessageID)
		assert.NotEmpty(t, *msg.ProviderMessageID)
	})

	t.Run("message lands in the thread", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/sessions/"+sess.ID+"/messages", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var msgs []messageJSON
		decodeData(t, rec, &msgs)
		require.Len(t, msgs, 1)
		assert.Equal(t, "employee", msgs[0].SenderType)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/messages", token, gin.H{"content": ""})
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		assert.Equal(t, codeInvalidRequest, errorCode(t, rec))
		assert.Len(t, env.whatsapp.sent, 1, "nothing new should have been sent")
	})

	t.Run("foreign tenant cannot reply", func(t *testing.T) {
		other := seedAPIBusiness(t, env.client, "Petal Pushers")
		rec := env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/messages",
			mintToken(t, other.ID, roleBusiness), gin.H{"content": "hi"})
		require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
		assert.Len(t, env.whatsapp.sent, 1)
	})
}

func TestSessionTakeoverAndRelease(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	biz := seedAPIBusiness(t, env.client, "Vinyl Vault")
	token := mintToken(t, biz.ID, roleBusiness)

	sess := seedAPISession(t, env.client, biz.ID, "+4915700007001")
	sessions := services.NewSessionService(env.client.Client)

	t.Run("takeover needs a locked session", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/takeover", token, nil)
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
		assert.Equal(t, codeInvalidTransition, errorCode(t, rec))
	})

	_, _, err := sessions.Lock(ctx, sess.ID, "customer asked for a human", "")
	require.NoError(t, err)

	t.Run("takeover assigns the caller", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/takeover", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got sessionJSON
		decodeData(t, rec, &got)
		assert.Equal(t, "human_locked", got.State)
		require.NotNil(t, got.AssignedEmployeeID)
		assert.Equal(t, biz.ID, *got.AssignedEmployeeID)
	})

	t.Run("release hands back to the assistant", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/release", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got sessionJSON
		decodeData(t, rec, &got)
		assert.Equal(t, "bot_active", got.State)
		assert.Nil(t, got.AssignedEmployeeID)

		msgs, err := sessions.Messages(ctx, sess.ID, 50, 0)
		require.NoError(t, err)
		var system int
		for _, m := range msgs {
			if m.SenderType == "system" {
				system++
			}
		}
		assert.Equal(t, 2, system, "handover and release both leave a note")
	})

	t.Run("release of an active session conflicts", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/release", token, nil)
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	})
}

func TestSessionListScoping(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Corner Books")
	other := seedAPIBusiness(t, env.client, "Page Turners")

	seedAPISession(t, env.client, biz.ID, "+4915700008001")
	seedAPISession(t, env.client, biz.ID, "+4915700008002")
	seedAPISession(t, env.client, other.ID, "+4915700008003")

	t.Run("tenant sees only its sessions", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/sessions", mintToken(t, biz.ID, roleBusiness), nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var list struct {
			Sessions   []sessionJSON `json:"sessions"`
			TotalCount int           `json:"total_count"`
		}
		decodeData(t, rec, &list)
		assert.Equal(t, 2, list.TotalCount)
		for _, s := range list.Sessions {
			assert.Equal(t, biz.ID, s.BusinessID)
		}
	})

	t.Run("customer filter", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/sessions?customer_id=%2B4915700008001",
			mintToken(t, biz.ID, roleBusiness), nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var list struct {
			TotalCount int `json:"total_count"`
		}
		decodeData(t, rec, &list)
		assert.Equal(t, 1, list.TotalCount)
	})
}
