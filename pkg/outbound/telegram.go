package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/vendrahq/vendra/ent/botintegration"
)

const telegramBaseURL = "https://api.telegram.org"

// TelegramSender talks to the Telegram Bot API. The bot token is the
// Credentials AccessToken and becomes part of the request URL.
type TelegramSender struct {
	httpClient *http.Client
	baseURL    string
}

var _ Sender = (*TelegramSender)(nil)

// NewTelegramSender creates a sender against the production Bot API.
func NewTelegramSender() *TelegramSender {
	return NewTelegramSenderWithBaseURL(telegramBaseURL)
}

// NewTelegramSenderWithBaseURL targets a custom API URL. Useful for testing
// with a mock server.
func NewTelegramSenderWithBaseURL(baseURL string) *TelegramSender {
	return &TelegramSender{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

// Platform implements Sender.
func (s *TelegramSender) Platform() botintegration.Platform {
	return botintegration.PlatformTelegram
}

// SendMessage implements Sender.
func (s *TelegramSender) SendMessage(ctx context.Context, creds Credentials, to, text string) (string, error) {
	body := map[string]interface{}{"chat_id": to, "text": text}
	return s.call(ctx, creds, "sendMessage", body)
}

// SendImage implements Sender. URL images go through sendPhoto as JSON;
// buffers are uploaded as multipart form data.
func (s *TelegramSender) SendImage(ctx context.Context, creds Credentials, to string, p Payload) (string, error) {
	if p.ImageURL != "" {
		body := map[string]interface{}{"chat_id": to, "photo": p.ImageURL}
		if p.Text != "" {
			body["caption"] = p.Text
		}
		return s.call(ctx, creds, "sendPhoto", body)
	}
	if len(p.ImageData) > 0 {
		return s.uploadPhoto(ctx, creds, to, p)
	}
	return "", fmt.Errorf("telegram: %w: image payload carries neither URL nor buffer", ErrUnsupportedPayload)
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	ErrorCode   int    `json:"error_code"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

func (s *TelegramSender) call(ctx context.Context, creds Credentials, method string, body map[string]interface{}) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", s.baseURL, creds.AccessToken, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return s.do(req)
}

func (s *TelegramSender) uploadPhoto(ctx context.Context, creds Credentials, to string, p Payload) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("chat_id", to); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if p.Text != "" {
		if err := form.WriteField("caption", p.Text); err != nil {
			return "", fmt.Errorf("build upload form: %w", err)
		}
	}
	part, err := form.CreateFormFile("photo", "photo.jpg")
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := part.Write(p.ImageData); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendPhoto", s.baseURL, creds.AccessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	return s.do(req)
}

func (s *TelegramSender) do(req *http.Request) (string, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("read telegram response: %w", err)
	}

	var parsed telegramResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode telegram response: %w", err)
	}
	if !parsed.OK {
		status := parsed.ErrorCode
		if status == 0 {
			status = resp.StatusCode
		}
		return "", &APIError{Platform: "telegram", Status: status, Body: parsed.Description}
	}
	return strconv.FormatInt(parsed.Result.MessageID, 10), nil
}
