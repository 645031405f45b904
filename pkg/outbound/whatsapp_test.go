package outbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppSender_SendMessage(t *testing.T) {
	creds := Credentials{AccessToken: "wa-token", AccountID: "phone-number-id-1"}

	t.Run("successful send", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody struct {
			MessagingProduct string `json:"messaging_product"`
			To               string `json:"to"`
			Type             string `json:"type"`
			Text             struct {
				Body       string `json:"body"`
				PreviewURL bool   `json:"preview_url"`
			} `json:"text"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.ABC123"}]}`))
		}))
		defer server.Close()

		sender := NewWhatsAppSenderWithBaseURL(server.URL)

		id, err := sender.SendMessage(context.Background(), creds, "+15550001111", "Your order is confirmed")
		require.NoError(t, err)
		assert.Equal(t, "wamid.ABC123", id)
		assert.Equal(t, "/phone-number-id-1/messages", gotPath)
		assert.Equal(t, "Bearer wa-token", gotAuth)
		assert.Equal(t, "whatsapp", gotBody.MessagingProduct)
		assert.Equal(t, "+15550001111", gotBody.To)
		assert.Equal(t, "text", gotBody.Type)
		assert.Equal(t, "Your order is confirmed", gotBody.Text.Body)
		assert.False(t, gotBody.Text.PreviewURL)
	})

	t.Run("non-2xx becomes APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"rate limit hit"}}`))
		}))
		defer server.Close()

		sender := NewWhatsAppSenderWithBaseURL(server.URL)

		_, err := sender.SendMessage(context.Background(), creds, "+15550001111", "hi")
		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
		assert.Equal(t, "whatsapp", apiErr.Platform)
		assert.True(t, apiErr.Retryable())
		assert.Contains(t, apiErr.Body, "rate limit hit")
	})

	t.Run("permanent error is not retryable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid recipient"}}`))
		}))
		defer server.Close()

		sender := NewWhatsAppSenderWithBaseURL(server.URL)

		_, err := sender.SendMessage(context.Background(), creds, "not-a-number", "hi")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.False(t, apiErr.Retryable())
	})

	t.Run("response without message id is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"messages":[]}`))
		}))
		defer server.Close()

		sender := NewWhatsAppSenderWithBaseURL(server.URL)

		_, err := sender.SendMessage(context.Background(), creds, "+15550001111", "hi")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no message id")
	})
}

func TestWhatsAppSender_SendImage(t *testing.T) {
	creds := Credentials{AccessToken: "wa-token", AccountID: "phone-number-id-1"}

	t.Run("URL image with caption", func(t *testing.T) {
		var gotBody struct {
			Type  string `json:"type"`
			Image struct {
				Link    string `json:"link"`
				Caption string `json:"caption"`
			} `json:"image"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.IMG1"}]}`))
		}))
		defer server.Close()

		sender := NewWhatsAppSenderWithBaseURL(server.URL)

		id, err := sender.SendImage(context.Background(), creds, "+15550001111",
			ImagePayload("https://cdn.example.com/menu.jpg", "Today's menu"))
		require.NoError(t, err)
		assert.Equal(t, "wamid.IMG1", id)
		assert.Equal(t, "image", gotBody.Type)
		assert.Equal(t, "https://cdn.example.com/menu.jpg", gotBody.Image.Link)
		assert.Equal(t, "Today's menu", gotBody.Image.Caption)
	})

	t.Run("buffer image is unsupported", func(t *testing.T) {
		sender := NewWhatsAppSenderWithBaseURL("http://unused.invalid")

		_, err := sender.SendImage(context.Background(), creds, "+15550001111",
			Payload{Kind: PayloadImage, ImageData: []byte{0xFF, 0xD8}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedPayload)
	})
}

func TestWhatsAppSender_SendTemplate(t *testing.T) {
	creds := Credentials{AccessToken: "wa-token", AccountID: "phone-number-id-1"}

	t.Run("template with body parameters", func(t *testing.T) {
		var gotBody struct {
			Type     string `json:"type"`
			Template struct {
				Name     string `json:"name"`
				Language struct {
					Code string `json:"code"`
				} `json:"language"`
				Components []struct {
					Type       string `json:"type"`
					Parameters []struct {
						Type string `json:"type"`
						Text string `json:"text"`
					} `json:"parameters"`
				} `json:"components"`
			} `json:"template"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.TPL1"}]}`))
		}))
		defer server.Close()

		sender := NewWhatsAppSenderWithBaseURL(server.URL)

		id, err := sender.SendTemplate(context.Background(), creds, "+15550001111", Payload{
			Kind:             PayloadTemplate,
			TemplateName:     "order_ready",
			TemplateLanguage: "es",
			TemplateParams:   []string{"Maria", "ORD-42"},
		})
		require.NoError(t, err)
		assert.Equal(t, "wamid.TPL1", id)
		assert.Equal(t, "template", gotBody.Type)
		assert.Equal(t, "order_ready", gotBody.Template.Name)
		assert.Equal(t, "es", gotBody.Template.Language.Code)
		require.Len(t, gotBody.Template.Components, 1)
		require.Len(t, gotBody.Template.Components[0].Parameters, 2)
		assert.Equal(t, "Maria", gotBody.Template.Components[0].Parameters[0].Text)
		assert.Equal(t, "ORD-42", gotBody.Template.Components[0].Parameters[1].Text)
	})

	t.Run("language defaults to en", func(t *testing.T) {
		var gotBody struct {
			Template struct {
				Language struct {
					Code string `json:"code"`
				} `json:"language"`
			} `json:"template"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.TPL2"}]}`))
		}))
		defer server.Close()

		sender := NewWhatsAppSenderWithBaseURL(server.URL)

		_, err := sender.SendTemplate(context.Background(), creds, "+15550001111",
			Payload{Kind: PayloadTemplate, TemplateName: "greeting"})
		require.NoError(t, err)
		assert.Equal(t, "en", gotBody.Template.Language.Code)
	})

	t.Run("missing template name is unsupported", func(t *testing.T) {
		sender := NewWhatsAppSenderWithBaseURL("http://unused.invalid")

		_, err := sender.SendTemplate(context.Background(), creds, "+15550001111", Payload{Kind: PayloadTemplate})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedPayload)
	})
}
