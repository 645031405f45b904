package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/pkg/dedup"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
)

// metaPlatforms maps a webhook channel to the platforms whose integrations
// may carry its verify token. The messenger endpoint serves both Facebook
// pages and Instagram accounts.
func metaPlatforms(channel string) []botintegration.Platform {
	if channel == "messenger" {
		return []botintegration.Platform{
			botintegration.PlatformFacebook,
			botintegration.PlatformInstagram,
		}
	}
	return []botintegration.Platform{botintegration.PlatformWhatsapp}
}

// metaVerifyHandler answers the Meta subscription handshake: echo
// hub.challenge when the verify token matches the deployment default or an
// active tenant integration.
func (s *Server) metaVerifyHandler(channel string) gin.HandlerFunc {
	platforms := metaPlatforms(channel)
	return func(c *gin.Context) {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")
		if mode != "subscribe" || token == "" {
			respondError(c, http.StatusBadRequest, codeInvalidRequest, "unsupported verification request")
			return
		}

		if s.cfg.Channels.VerifyToken(channel) == token {
			c.String(http.StatusOK, challenge)
			return
		}
		for _, p := range platforms {
			ok, err := s.integrations.MatchVerifyToken(c.Request.Context(), p, token)
			if err != nil {
				mapServiceError(c, err)
				return
			}
			if ok {
				c.String(http.StatusOK, challenge)
				return
			}
		}
		respondError(c, http.StatusForbidden, codeNotAllowed, "verify token mismatch")
	}
}

// whatsAppPayload is the WhatsApp Cloud API webhook shape, reduced to the
// fields the intake needs. Status-only deliveries carry no messages.
type whatsAppPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		Changes []struct {
			Value struct {
				Metadata struct {
					PhoneNumberID string `json:"phone_number_id"`
				} `json:"metadata"`
				Contacts []struct {
					WaID    string `json:"wa_id"`
					Profile struct {
						Name string `json:"name"`
					} `json:"profile"`
				} `json:"contacts"`
				Messages []struct {
					From      string `json:"from"`
					ID        string `json:"id"`
					Timestamp string `json:"timestamp"`
					Type      string `json:"type"`
					Text      *struct {
						Body string `json:"body"`
					} `json:"text"`
					Image *struct {
						Link    string `json:"link"`
						Caption string `json:"caption"`
					} `json:"image"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// whatsappWebhookHandler handles POST /webhooks/whatsapp.
func (s *Server) whatsappWebhookHandler(c *gin.Context) {
	var payload whatsAppPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "malformed payload")
		return
	}

	received := 0
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			value := change.Value
			names := make(map[string]string, len(value.Contacts))
			for _, contact := range value.Contacts {
				names[contact.WaID] = contact.Profile.Name
			}
			for _, m := range value.Messages {
				msg := models.InboundMessage{
					Platform:          chatsession.PlatformWhatsapp,
					ProviderAccountID: value.Metadata.PhoneNumberID,
					CustomerID:        m.From,
					CustomerName:      names[m.From],
					ProviderMessageID: m.ID,
					Timestamp:         unixSecondsString(m.Timestamp),
				}
				switch {
				case m.Text != nil:
					msg.Text = m.Text.Body
				case m.Image != nil:
					msg.Text = m.Image.Caption
					msg.MediaURL = m.Image.Link
				default:
					continue // reactions, stickers, system events
				}
				if msg.Text == "" && msg.MediaURL == "" {
					continue
				}
				if s.intake(c.Request.Context(), msg) {
					received++
				}
			}
		}
	}
	respondData(c, http.StatusOK, gin.H{"received": received})
}

// messengerPayload covers Facebook page and Instagram webhook deliveries.
type messengerPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		ID        string `json:"id"`
		Messaging []struct {
			Sender struct {
				ID string `json:"id"`
			} `json:"sender"`
			Timestamp int64 `json:"timestamp"`
			Message   *struct {
				MID         string `json:"mid"`
				Text        string `json:"text"`
				IsEcho      bool   `json:"is_echo"`
				Attachments []struct {
					Type    string `json:"type"`
					Payload struct {
						URL string `json:"url"`
					} `json:"payload"`
				} `json:"attachments"`
			} `json:"message"`
		} `json:"messaging"`
	} `json:"entry"`
}

// messengerWebhookHandler handles POST /webhooks/messenger for both Facebook
// pages (object "page") and Instagram (object "instagram").
func (s *Server) messengerWebhookHandler(c *gin.Context) {
	var payload messengerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "malformed payload")
		return
	}

	var platform chatsession.Platform
	switch payload.Object {
	case "page":
		platform = chatsession.PlatformFacebook
	case "instagram":
		platform = chatsession.PlatformInstagram
	default:
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "unsupported webhook object")
		return
	}

	received := 0
	for _, entry := range payload.Entry {
		for _, event := range entry.Messaging {
			m := event.Message
			if m == nil || m.IsEcho {
				continue
			}
			msg := models.InboundMessage{
				Platform:          platform,
				ProviderAccountID: entry.ID,
				CustomerID:        event.Sender.ID,
				Text:              m.Text,
				ProviderMessageID: m.MID,
				Timestamp:         time.UnixMilli(event.Timestamp),
			}
			for _, att := range m.Attachments {
				if att.Type == "image" && att.Payload.URL != "" {
					msg.MediaURL = att.Payload.URL
					break
				}
			}
			if msg.Text == "" && msg.MediaURL == "" {
				continue
			}
			if s.intake(c.Request.Context(), msg) {
				received++
			}
		}
	}
	respondData(c, http.StatusOK, gin.H{"received": received})
}

// telegramUpdate is the Bot API update shape, reduced to message deliveries.
type telegramUpdate struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		MessageID int64 `json:"message_id"`
		From      struct {
			ID        int64  `json:"id"`
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
		} `json:"from"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		Date    int64  `json:"date"`
		Text    string `json:"text"`
		Caption string `json:"caption"`
	} `json:"message"`
}

// telegramWebhookHandler handles POST /webhooks/telegram/:account. The bot
// id is carried in the path because Telegram sends no account identifier in
// the body; the secret token header is checked against the integration.
func (s *Server) telegramWebhookHandler(c *gin.Context) {
	account := c.Param("account")

	integration, err := s.integrations.ResolveInbound(c.Request.Context(), botintegration.PlatformTelegram, account)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// 200 so Telegram stops retrying a decommissioned bot.
			respondData(c, http.StatusOK, gin.H{"received": 0})
			return
		}
		mapServiceError(c, err)
		return
	}

	expected := ""
	if integration.VerifyToken != nil {
		expected = *integration.VerifyToken
	}
	if expected == "" {
		expected = s.cfg.Channels.VerifyToken("telegram")
	}
	if expected != "" && c.GetHeader("X-Telegram-Bot-Api-Secret-Token") != expected {
		respondError(c, http.StatusForbidden, codeNotAllowed, "secret token mismatch")
		return
	}

	var update telegramUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "malformed payload")
		return
	}
	if update.Message == nil {
		respondData(c, http.StatusOK, gin.H{"received": 0})
		return
	}

	m := update.Message
	text := m.Text
	if text == "" {
		text = m.Caption
	}
	if text == "" {
		respondData(c, http.StatusOK, gin.H{"received": 0})
		return
	}

	name := m.From.FirstName
	if m.From.LastName != "" {
		name += " " + m.From.LastName
	}
	msg := models.InboundMessage{
		Platform:          chatsession.PlatformTelegram,
		ProviderAccountID: account,
		CustomerID:        strconv.FormatInt(m.Chat.ID, 10),
		CustomerName:      name,
		Text:              text,
		ProviderMessageID: strconv.FormatInt(m.Chat.ID, 10) + ":" + strconv.FormatInt(m.MessageID, 10),
		Timestamp:         time.Unix(m.Date, 0),
	}

	received := 0
	if s.intake(c.Request.Context(), msg) {
		received++
	}
	respondData(c, http.StatusOK, gin.H{"received": received})
}

// intake runs the shared inbound pipeline: dedup, tenant resolution, session
// open, atomic message+job persist, worker wake. Returns false when the
// delivery was suppressed or could not be attributed; the webhook still
// answers 2xx so the provider does not retry.
func (s *Server) intake(ctx context.Context, msg models.InboundMessage) bool {
	log := slog.With("platform", msg.Platform, "provider_message_id", msg.ProviderMessageID)

	if msg.ProviderMessageID != "" && s.deduper != nil {
		seen, err := s.deduper.Seen(ctx, dedup.InboundKey(string(msg.Platform), msg.ProviderMessageID))
		if err != nil {
			// Fail open: a broken dedup store must not drop messages.
			log.Warn("Dedup check failed, processing anyway", "error", err)
		} else if seen {
			log.Debug("Duplicate delivery suppressed")
			return false
		}
	}

	integration, err := s.integrations.ResolveInbound(ctx, botintegration.Platform(msg.Platform), msg.ProviderAccountID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Warn("Inbound message for unknown integration",
				"provider_account_id", msg.ProviderAccountID)
			return false
		}
		log.Error("Failed to resolve integration", "error", err)
		return false
	}

	session, err := s.sessions.GetOrOpen(ctx, models.SessionScope{
		BusinessID: integration.BusinessID,
		CustomerID: msg.CustomerID,
		Platform:   msg.Platform,
	})
	if err != nil {
		log.Error("Failed to open session", "error", err)
		return false
	}

	_, job, err := s.sessions.AppendInbound(ctx, models.AppendMessageRequest{
		SessionID:         session.ID,
		Content:           msg.Text,
		MediaURL:          msg.MediaURL,
		ProviderMessageID: msg.ProviderMessageID,
	})
	if err != nil {
		log.Error("Failed to persist inbound message", "error", err)
		return false
	}

	// Best effort: workers poll regardless.
	if s.publisher != nil {
		if err := s.publisher.NotifyInboundJob(ctx, job.ID); err != nil {
			log.Warn("Failed to notify workers", "job_id", job.ID, "error", err)
		}
	}
	return true
}

// unixSecondsString parses the epoch-seconds strings Meta puts in
// timestamps, falling back to now.
func unixSecondsString(v string) time.Time {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(n, 0)
	}
	return time.Now()
}
