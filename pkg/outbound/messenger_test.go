package outbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent/botintegration"
)

func TestMessengerSender_SendMessage(t *testing.T) {
	creds := Credentials{AccessToken: "page-token", AccountID: "page-42"}

	t.Run("successful send", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody struct {
			Recipient struct {
				ID string `json:"id"`
			} `json:"recipient"`
			Message struct {
				Text string `json:"text"`
			} `json:"message"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"recipient_id":"psid-1","message_id":"m_AbC"}`))
		}))
		defer server.Close()

		sender := NewMessengerSenderWithBaseURL(botintegration.PlatformFacebook, server.URL)

		id, err := sender.SendMessage(context.Background(), creds, "psid-1", "We open at noon")
		require.NoError(t, err)
		assert.Equal(t, "m_AbC", id)
		assert.Equal(t, "/page-42/messages", gotPath)
		assert.Equal(t, "Bearer page-token", gotAuth)
		assert.Equal(t, "psid-1", gotBody.Recipient.ID)
		assert.Equal(t, "We open at noon", gotBody.Message.Text)
	})

	t.Run("instagram shares the same API", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"recipient_id":"igsid-1","message_id":"m_IG"}`))
		}))
		defer server.Close()

		sender := NewMessengerSenderWithBaseURL(botintegration.PlatformInstagram, server.URL)
		assert.Equal(t, botintegration.PlatformInstagram, sender.Platform())

		id, err := sender.SendMessage(context.Background(), creds, "igsid-1", "hi")
		require.NoError(t, err)
		assert.Equal(t, "m_IG", id)
	})

	t.Run("non-2xx becomes APIError tagged with platform", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"temporary failure"}}`))
		}))
		defer server.Close()

		sender := NewMessengerSenderWithBaseURL(botintegration.PlatformInstagram, server.URL)

		_, err := sender.SendMessage(context.Background(), creds, "igsid-1", "hi")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "instagram", apiErr.Platform)
		assert.True(t, apiErr.Retryable())
	})
}

func TestMessengerSender_SendImage(t *testing.T) {
	creds := Credentials{AccessToken: "page-token", AccountID: "page-42"}

	t.Run("URL image as attachment", func(t *testing.T) {
		var gotBody struct {
			Message struct {
				Attachment struct {
					Type    string `json:"type"`
					Payload struct {
						URL        string `json:"url"`
						IsReusable bool   `json:"is_reusable"`
					} `json:"payload"`
				} `json:"attachment"`
			} `json:"message"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"recipient_id":"psid-1","message_id":"m_IMG"}`))
		}))
		defer server.Close()

		sender := NewMessengerSenderWithBaseURL(botintegration.PlatformFacebook, server.URL)

		id, err := sender.SendImage(context.Background(), creds, "psid-1",
			ImagePayload("https://cdn.example.com/menu.jpg", ""))
		require.NoError(t, err)
		assert.Equal(t, "m_IMG", id)
		assert.Equal(t, "image", gotBody.Message.Attachment.Type)
		assert.Equal(t, "https://cdn.example.com/menu.jpg", gotBody.Message.Attachment.Payload.URL)
	})

	t.Run("buffer image is unsupported", func(t *testing.T) {
		sender := NewMessengerSenderWithBaseURL(botintegration.PlatformFacebook, "http://unused.invalid")

		_, err := sender.SendImage(context.Background(), creds, "psid-1",
			Payload{Kind: PayloadImage, ImageData: []byte{0x01}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedPayload)
	})
}
