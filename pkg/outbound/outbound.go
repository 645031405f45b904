// Package outbound delivers assistant replies over the messaging channels.
// Everything above this package emits through the Dispatcher; only senders
// talk to provider APIs.
package outbound

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/vendrahq/vendra/ent/botintegration"
)

// ErrUnsupportedPayload is returned when a channel cannot carry the payload
// variant, for example a template on a channel without provider templates.
var ErrUnsupportedPayload = errors.New("payload not supported on this channel")

// PayloadKind selects the outbound message variant.
type PayloadKind string

const (
	PayloadText     PayloadKind = "text"
	PayloadImage    PayloadKind = "image"
	PayloadTemplate PayloadKind = "template"
)

// Payload is one channel-agnostic outbound message.
type Payload struct {
	Kind PayloadKind

	// Text is the message body, or the caption when Kind is image.
	Text string

	// ImageURL is a public URL the provider fetches. ImageData is a raw
	// buffer for channels that accept direct upload; URL wins when both
	// are set.
	ImageURL  string
	ImageData []byte

	// Template fields, for channels with provider-side templates.
	TemplateName     string
	TemplateLanguage string
	TemplateParams   []string
}

// TextPayload builds a plain text payload.
func TextPayload(text string) Payload {
	return Payload{Kind: PayloadText, Text: text}
}

// ImagePayload builds an image-by-URL payload with an optional caption.
func ImagePayload(url, caption string) Payload {
	return Payload{Kind: PayloadImage, ImageURL: url, Text: caption}
}

// Credentials is one tenant's provider-side identity on a channel.
type Credentials struct {
	// AccessToken authenticates against the provider API. For Telegram it
	// is the bot token that becomes part of the URL.
	AccessToken string

	// AccountID is the phone_number_id (WhatsApp), page id (Messenger and
	// Instagram), or bot id (Telegram).
	AccountID string
}

// Sender delivers messages on one platform. Implementations are stateless;
// credentials arrive per call so one sender serves every tenant.
type Sender interface {
	Platform() botintegration.Platform

	// SendMessage sends text and returns the provider message id.
	SendMessage(ctx context.Context, creds Credentials, to, text string) (string, error)

	// SendImage sends an image payload and returns the provider message id.
	SendImage(ctx context.Context, creds Credentials, to string, p Payload) (string, error)
}

// TemplateSender is implemented by platforms with provider-side message
// templates.
type TemplateSender interface {
	SendTemplate(ctx context.Context, creds Credentials, to string, p Payload) (string, error)
}

// APIError is a non-2xx provider response.
type APIError struct {
	Platform string
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API returned HTTP %d: %s", e.Platform, e.Status, e.Body)
}

// Retryable reports whether another attempt could succeed.
func (e *APIError) Retryable() bool {
	return e.Status >= http.StatusInternalServerError || e.Status == http.StatusTooManyRequests
}
