package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/inboundjob"
)

func TestMetaVerify(t *testing.T) {
	env := newTestEnv(t)

	t.Run("deployment token echoes challenge", func(t *testing.T) {
		rec := env.do(t, http.MethodGet,
			"/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token="+testVerifyToken+"&hub.challenge=424242", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "424242", rec.Body.String())
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodGet,
			"/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=1", "", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, codeNotAllowed, errorCode(t, rec))
	})

	t.Run("missing mode is rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodGet,
			"/webhooks/whatsapp?hub.verify_token="+testVerifyToken+"&hub.challenge=1", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("tenant integration token matches on messenger", func(t *testing.T) {
		biz := seedAPIBusiness(t, env.client, "Verify Tenant")
		seedAPIIntegration(t, env.client, biz.ID, botintegration.PlatformInstagram, "ig-verify-1")

		rec := env.do(t, http.MethodGet,
			"/webhooks/messenger?hub.mode=subscribe&hub.verify_token="+testVerifyToken+"&hub.challenge=777", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "777", rec.Body.String())
	})
}

func whatsAppTextPayload(accountID, from, messageID, body string) string {
	return fmt.Sprintf(`{
		"object": "whatsapp_business_account",
		"entry": [{
			"changes": [{
				"value": {
					"metadata": {"phone_number_id": %q},
					"contacts": [{"wa_id": %q, "profile": {"name": "Lena"}}],
					"messages": [{
						"from": %q,
						"id": %q,
						"timestamp": "1724594400",
						"type": "text",
						"text": {"body": %q}
					}]
				}
			}]
		}]
	}`, accountID, from, from, messageID, body)
}

func postJSON(t *testing.T, env *testEnv, path, payload string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	env.server.router.ServeHTTP(rec, req)
	return rec
}

func TestWhatsAppWebhook(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	biz := seedAPIBusiness(t, env.client, "Bean There")
	seedAPIIntegration(t, env.client, biz.ID, botintegration.PlatformWhatsapp, "15550001111")

	t.Run("text message opens session and enqueues job", func(t *testing.T) {
		rec := postJSON(t, env, "/webhooks/whatsapp",
			whatsAppTextPayload("15550001111", "491701234567", "wamid.001", "hi, menu please"), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var result struct {
			Received int `json:"received"`
		}
		decodeData(t, rec, &result)
		assert.Equal(t, 1, result.Received)

		msgs, err := env.client.ChatMessage.Query().
			Where(chatmessage.SenderTypeEQ(chatmessage.SenderTypeCustomer)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "hi, menu please", msgs[0].Content)

		jobs, err := env.client.InboundJob.Query().
			Where(inboundjob.StatusEQ(inboundjob.StatusPending)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, biz.ID, jobs[0].BusinessID)
	})

	t.Run("redelivery is suppressed", func(t *testing.T) {
		rec := postJSON(t, env, "/webhooks/whatsapp",
			whatsAppTextPayload("15550001111", "491701234567", "wamid.001", "hi, menu please"), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var result struct {
			Received int `json:"received"`
		}
		decodeData(t, rec, &result)
		assert.Equal(t, 0, result.Received)

		count, err := env.client.ChatMessage.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("unknown account still answers 200", func(t *testing.T) {
		rec := postJSON(t, env, "/webhooks/whatsapp",
			whatsAppTextPayload("19990000000", "491701234567", "wamid.002", "hello?"), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var result struct {
			Received int `json:"received"`
		}
		decodeData(t, rec, &result)
		assert.Equal(t, 0, result.Received)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		rec := postJSON(t, env, "/webhooks/whatsapp", `{"entry": "nope"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTelegramWebhook(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	biz := seedAPIBusiness(t, env.client, "Chai Point")
	seedAPIIntegration(t, env.client, biz.ID, botintegration.PlatformTelegram, "7130001")

	update := `{
		"update_id": 9001,
		"message": {
			"message_id": 42,
			"from": {"id": 5551, "first_name": "Omar", "last_name": "K"},
			"chat": {"id": 5551},
			"date": 1724594400,
			"text": "table for two tonight"
		}
	}`

	t.Run("secret token mismatch is rejected", func(t *testing.T) {
		rec := postJSON(t, env, "/webhooks/telegram/7130001", update,
			map[string]string{"X-Telegram-Bot-Api-Secret-Token": "wrong"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("message is ingested", func(t *testing.T) {
		rec := postJSON(t, env, "/webhooks/telegram/7130001", update,
			map[string]string{"X-Telegram-Bot-Api-Secret-Token": testVerifyToken})
		require.Equal(t, http.StatusOK, rec.Code)

		var result struct {
			Received int `json:"received"`
		}
		decodeData(t, rec, &result)
		assert.Equal(t, 1, result.Received)

		msgs, err := env.client.ChatMessage.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "table for two tonight", msgs[0].Content)
		require.NotNil(t, msgs[0].ProviderMessageID)
		assert.Equal(t, "5551:42", *msgs[0].ProviderMessageID)
	})

	t.Run("unknown bot answers 200 without work", func(t *testing.T) {
		rec := postJSON(t, env, "/webhooks/telegram/0000000", update, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var result struct {
			Received int `json:"received"`
		}
		decodeData(t, rec, &result)
		assert.Equal(t, 0, result.Received)
	})
}

func TestMessengerWebhook(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	biz := seedAPIBusiness(t, env.client, "Glow Salon")
	seedAPIIntegration(t, env.client, biz.ID, botintegration.PlatformFacebook, "page-77")

	t.Run("echo deliveries are skipped", func(t *testing.T) {
		payload := `{
			"object": "page",
			"entry": [{
				"id": "page-77",
				"messaging": [{
					"sender": {"id": "psid-1"},
					"timestamp": 1724594400000,
					"message": {"mid": "m-echo", "text": "our reply", "is_echo": true}
				}]
			}]
		}`
		rec := postJSON(t, env, "/webhooks/messenger", payload, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		count, err := env.client.ChatMessage.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("page message is ingested", func(t *testing.T) {
		payload := `{
			"object": "page",
			"entry": [{
				"id": "page-77",
				"messaging": [{
					"sender": {"id": "psid-1"},
					"timestamp": 1724594400000,
					"message": {"mid": "m-1", "text": "do you have appointments tomorrow?"}
				}]
			}]
		}`
		rec := postJSON(t, env, "/webhooks/messenger", payload, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var result struct {
			Received int `json:"received"`
		}
		decodeData(t, rec, &result)
		assert.Equal(t, 1, result.Received)
	})

	t.Run("unknown object is a 400", func(t *testing.T) {
		rec := postJSON(t, env, "/webhooks/messenger", `{"object": "unknown", "entry": []}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
