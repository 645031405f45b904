package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vendrahq/vendra/ent/botintegration"
)

// MessengerSender talks to the Meta Send API, which serves both Facebook
// pages and Instagram professional accounts. The page id is the Credentials
// AccountID; recipients are page-scoped ids.
type MessengerSender struct {
	httpClient *http.Client
	baseURL    string
	platform   botintegration.Platform
}

var _ Sender = (*MessengerSender)(nil)

// NewMessengerSender creates a sender for facebook or instagram against the
// production Graph API.
func NewMessengerSender(platform botintegration.Platform) *MessengerSender {
	return NewMessengerSenderWithBaseURL(platform, graphBaseURL)
}

// NewMessengerSenderWithBaseURL targets a custom API URL. Useful for testing
// with a mock server.
func NewMessengerSenderWithBaseURL(platform botintegration.Platform, baseURL string) *MessengerSender {
	return &MessengerSender{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		platform:   platform,
	}
}

// Platform implements Sender.
func (s *MessengerSender) Platform() botintegration.Platform {
	return s.platform
}

// SendMessage implements Sender.
func (s *MessengerSender) SendMessage(ctx context.Context, creds Credentials, to, text string) (string, error) {
	body := map[string]interface{}{
		"recipient": map[string]interface{}{"id": to},
		"message":   map[string]interface{}{"text": text},
	}
	return s.post(ctx, creds, body)
}

// SendImage implements Sender. The Send API fetches the URL itself; captions
// are delivered as a follow-up text message by the caller if needed, since
// image attachments carry no caption field.
func (s *MessengerSender) SendImage(ctx context.Context, creds Credentials, to string, p Payload) (string, error) {
	if p.ImageURL == "" {
		return "", fmt.Errorf("%s: %w: image buffers need a hosted URL", s.platform, ErrUnsupportedPayload)
	}
	body := map[string]interface{}{
		"recipient": map[string]interface{}{"id": to},
		"message": map[string]interface{}{
			"attachment": map[string]interface{}{
				"type":    "image",
				"payload": map[string]interface{}{"url": p.ImageURL, "is_reusable": false},
			},
		},
	}
	return s.post(ctx, creds, body)
}

type messengerResponse struct {
	MessageID   string `json:"message_id"`
	RecipientID string `json:"recipient_id"`
}

func (s *MessengerSender) post(ctx context.Context, creds Credentials, body map[string]interface{}) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", s.baseURL, creds.AccountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send %s message: %w", s.platform, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &APIError{Platform: string(s.platform), Status: resp.StatusCode, Body: string(raw)}
	}

	var parsed messengerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode %s response: %w", s.platform, err)
	}
	if parsed.MessageID == "" {
		return "", fmt.Errorf("%s response carried no message id", s.platform)
	}
	return parsed.MessageID, nil
}
