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

const graphBaseURL = "https://graph.facebook.com/v19.0"

// WhatsAppSender talks to the WhatsApp Cloud API. The tenant's
// phone_number_id is the Credentials AccountID.
type WhatsAppSender struct {
	httpClient *http.Client
	baseURL    string
}

var (
	_ Sender         = (*WhatsAppSender)(nil)
	_ TemplateSender = (*WhatsAppSender)(nil)
)

// NewWhatsAppSender creates a sender against the production Graph API.
func NewWhatsAppSender() *WhatsAppSender {
	return NewWhatsAppSenderWithBaseURL(graphBaseURL)
}

// NewWhatsAppSenderWithBaseURL targets a custom API URL. Useful for testing
// with a mock server.
func NewWhatsAppSenderWithBaseURL(baseURL string) *WhatsAppSender {
	return &WhatsAppSender{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

// Platform implements Sender.
func (s *WhatsAppSender) Platform() botintegration.Platform {
	return botintegration.PlatformWhatsapp
}

// SendMessage implements Sender.
func (s *WhatsAppSender) SendMessage(ctx context.Context, creds Credentials, to, text string) (string, error) {
	body := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]interface{}{"body": text, "preview_url": false},
	}
	return s.post(ctx, creds, body)
}

// SendImage implements Sender. Only URL images are supported; the Cloud API
// fetches the link itself.
func (s *WhatsAppSender) SendImage(ctx context.Context, creds Credentials, to string, p Payload) (string, error) {
	if p.ImageURL == "" {
		return "", fmt.Errorf("whatsapp: %w: image buffers need a hosted URL", ErrUnsupportedPayload)
	}
	image := map[string]interface{}{"link": p.ImageURL}
	if p.Text != "" {
		image["caption"] = p.Text
	}
	body := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "image",
		"image":             image,
	}
	return s.post(ctx, creds, body)
}

// SendTemplate implements TemplateSender.
func (s *WhatsAppSender) SendTemplate(ctx context.Context, creds Credentials, to string, p Payload) (string, error) {
	if p.TemplateName == "" {
		return "", fmt.Errorf("whatsapp: %w: template name is required", ErrUnsupportedPayload)
	}
	language := p.TemplateLanguage
	if language == "" {
		language = "en"
	}
	template := map[string]interface{}{
		"name":     p.TemplateName,
		"language": map[string]interface{}{"code": language},
	}
	if len(p.TemplateParams) > 0 {
		params := make([]map[string]interface{}, len(p.TemplateParams))
		for i, v := range p.TemplateParams {
			params[i] = map[string]interface{}{"type": "text", "text": v}
		}
		template["components"] = []map[string]interface{}{
			{"type": "body", "parameters": params},
		}
	}
	body := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "template",
		"template":          template,
	}
	return s.post(ctx, creds, body)
}

type whatsappResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

func (s *WhatsAppSender) post(ctx context.Context, creds Credentials, body map[string]interface{}) (string, error) {
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
		return "", fmt.Errorf("send whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &APIError{Platform: "whatsapp", Status: resp.StatusCode, Body: string(raw)}
	}

	var parsed whatsappResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode whatsapp response: %w", err)
	}
	if len(parsed.Messages) == 0 {
		return "", fmt.Errorf("whatsapp response carried no message id")
	}
	return parsed.Messages[0].ID, nil
}
