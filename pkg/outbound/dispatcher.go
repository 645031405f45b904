package outbound

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/pkg/config"
	"github.com/vendrahq/vendra/pkg/services"
)

// retryDelay is the pause between send attempts.
const retryDelay = 500 * time.Millisecond

// SendResult is one successful delivery.
type SendResult struct {
	ProviderMessageID string
	Attempts          int
}

// Dispatcher is the channel-agnostic send facade. It resolves the tenant's
// integration credentials, picks the platform sender, and retries transient
// failures up to the configured attempt cap.
type Dispatcher struct {
	integrations *services.IntegrationService
	senders      map[botintegration.Platform]Sender
	maxAttempts  int
}

// NewDispatcher wires a dispatcher with the production senders registered.
func NewDispatcher(client *ent.Client, cfg *config.EngineConfig) *Dispatcher {
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	d := &Dispatcher{
		integrations: services.NewIntegrationService(client),
		senders:      make(map[botintegration.Platform]Sender),
		maxAttempts:  cfg.MaxSendAttempts,
	}
	if d.maxAttempts <= 0 {
		d.maxAttempts = 1
	}
	d.RegisterSender(NewWhatsAppSender())
	d.RegisterSender(NewTelegramSender())
	d.RegisterSender(NewMessengerSender(botintegration.PlatformFacebook))
	d.RegisterSender(NewMessengerSender(botintegration.PlatformInstagram))
	return d
}

// RegisterSender replaces the sender for its platform. Useful for tests.
func (d *Dispatcher) RegisterSender(s Sender) {
	d.senders[s.Platform()] = s
}

// SendText delivers a plain text reply.
func (d *Dispatcher) SendText(ctx context.Context, businessID string, platform botintegration.Platform, to, text string) (*SendResult, error) {
	return d.Send(ctx, businessID, platform, to, TextPayload(text))
}

// Send delivers one payload using the tenant's credentials for the platform.
func (d *Dispatcher) Send(ctx context.Context, businessID string, platform botintegration.Platform, to string, p Payload) (*SendResult, error) {
	sender, ok := d.senders[platform]
	if !ok {
		return nil, fmt.Errorf("no sender registered for platform %s", platform)
	}

	integration, err := d.integrations.GetForBusiness(ctx, businessID, platform)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, fmt.Errorf("no active %s integration for business %s", platform, businessID)
		}
		return nil, fmt.Errorf("failed to load %s integration: %w", platform, err)
	}
	creds := Credentials{
		AccessToken: integration.AccessToken,
		AccountID:   integration.ProviderAccountID,
	}

	var lastErr error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		id, err := dispatch(ctx, sender, creds, to, p)
		if err == nil {
			return &SendResult{ProviderMessageID: id, Attempts: attempt}, nil
		}
		lastErr = err
		if !retryable(err) {
			break
		}
		if attempt < d.maxAttempts {
			slog.Warn("outbound send failed, retrying",
				"platform", platform, "business_id", businessID, "attempt", attempt, "error", err)
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("failed to send %s message: %w", platform, lastErr)
}

func dispatch(ctx context.Context, sender Sender, creds Credentials, to string, p Payload) (string, error) {
	switch p.Kind {
	case PayloadText:
		return sender.SendMessage(ctx, creds, to, p.Text)
	case PayloadImage:
		return sender.SendImage(ctx, creds, to, p)
	case PayloadTemplate:
		ts, ok := sender.(TemplateSender)
		if !ok {
			return "", fmt.Errorf("%s: %w", sender.Platform(), ErrUnsupportedPayload)
		}
		return ts.SendTemplate(ctx, creds, to, p)
	default:
		return "", fmt.Errorf("unknown payload kind %q: %w", p.Kind, ErrUnsupportedPayload)
	}
}

// retryable classifies failures: provider 5xx/429 and transport errors are
// worth another attempt, everything else is permanent.
func retryable(err error) bool {
	if errors.Is(err, ErrUnsupportedPayload) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return true
}
