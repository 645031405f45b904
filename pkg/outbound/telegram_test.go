package outbound

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramSender_SendMessage(t *testing.T) {
	creds := Credentials{AccessToken: "123456:bot-token", AccountID: "bot-1"}

	t.Run("successful send", func(t *testing.T) {
		var gotPath string
		var gotBody struct {
			ChatID string `json:"chat_id"`
			Text   string `json:"text"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":4242}}`))
		}))
		defer server.Close()

		sender := NewTelegramSenderWithBaseURL(server.URL)

		id, err := sender.SendMessage(context.Background(), creds, "987654321", "Table booked for 19:00")
		require.NoError(t, err)
		assert.Equal(t, "4242", id)
		assert.Equal(t, "/bot123456:bot-token/sendMessage", gotPath)
		assert.Equal(t, "987654321", gotBody.ChatID)
		assert.Equal(t, "Table booked for 19:00", gotBody.Text)
	})

	t.Run("ok false becomes APIError with provider code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			// Telegram reports errors at HTTP 200 too; the body carries the code.
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 5"}`))
		}))
		defer server.Close()

		sender := NewTelegramSenderWithBaseURL(server.URL)

		_, err := sender.SendMessage(context.Background(), creds, "987654321", "hi")
		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 429, apiErr.Status)
		assert.Equal(t, "telegram", apiErr.Platform)
		assert.True(t, apiErr.Retryable())
		assert.Contains(t, apiErr.Body, "Too Many Requests")
	})

	t.Run("chat not found is permanent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
		}))
		defer server.Close()

		sender := NewTelegramSenderWithBaseURL(server.URL)

		_, err := sender.SendMessage(context.Background(), creds, "0", "hi")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.False(t, apiErr.Retryable())
	})
}

func TestTelegramSender_SendImage(t *testing.T) {
	creds := Credentials{AccessToken: "123456:bot-token", AccountID: "bot-1"}

	t.Run("URL image goes through sendPhoto as JSON", func(t *testing.T) {
		var gotPath string
		var gotBody struct {
			ChatID  string `json:"chat_id"`
			Photo   string `json:"photo"`
			Caption string `json:"caption"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7}}`))
		}))
		defer server.Close()

		sender := NewTelegramSenderWithBaseURL(server.URL)

		id, err := sender.SendImage(context.Background(), creds, "987654321",
			ImagePayload("https://cdn.example.com/dish.jpg", "Chef's special"))
		require.NoError(t, err)
		assert.Equal(t, "7", id)
		assert.Equal(t, "/bot123456:bot-token/sendPhoto", gotPath)
		assert.Equal(t, "https://cdn.example.com/dish.jpg", gotBody.Photo)
		assert.Equal(t, "Chef's special", gotBody.Caption)
	})

	t.Run("buffer image uploads as multipart", func(t *testing.T) {
		imageData := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
		var gotContentType, gotChatID, gotCaption string
		var gotFile []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, r.ParseMultipartForm(1<<20))
			gotChatID = r.FormValue("chat_id")
			gotCaption = r.FormValue("caption")
			file, _, err := r.FormFile("photo")
			require.NoError(t, err)
			defer file.Close()
			gotFile, err = io.ReadAll(file)
			require.NoError(t, err)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":8}}`))
		}))
		defer server.Close()

		sender := NewTelegramSenderWithBaseURL(server.URL)

		id, err := sender.SendImage(context.Background(), creds, "987654321",
			Payload{Kind: PayloadImage, ImageData: imageData, Text: "From the kitchen"})
		require.NoError(t, err)
		assert.Equal(t, "8", id)
		assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data"))
		assert.Equal(t, "987654321", gotChatID)
		assert.Equal(t, "From the kitchen", gotCaption)
		assert.Equal(t, imageData, gotFile)
	})

	t.Run("empty image payload is unsupported", func(t *testing.T) {
		sender := NewTelegramSenderWithBaseURL("http://unused.invalid")

		_, err := sender.SendImage(context.Background(), creds, "987654321", Payload{Kind: PayloadImage})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedPayload)
	})
}
