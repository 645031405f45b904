package outbound

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/pkg/config"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
	testdb "github.com/vendrahq/vendra/test/database"
)

type stubCall struct {
	creds Credentials
	to    string
	text  string
}

// stubSender records calls and pops errors off errs until it runs dry, then
// succeeds with id.
type stubSender struct {
	platform botintegration.Platform
	id       string
	errs     []error
	calls    []stubCall
}

func (s *stubSender) Platform() botintegration.Platform { return s.platform }

func (s *stubSender) SendMessage(_ context.Context, creds Credentials, to, text string) (string, error) {
	s.calls = append(s.calls, stubCall{creds: creds, to: to, text: text})
	return s.next()
}

func (s *stubSender) SendImage(_ context.Context, creds Credentials, to string, p Payload) (string, error) {
	s.calls = append(s.calls, stubCall{creds: creds, to: to, text: p.ImageURL})
	return s.next()
}

func (s *stubSender) next() (string, error) {
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		return "", err
	}
	return s.id, nil
}

func seedIntegration(t *testing.T, client *ent.Client, businessID string, platform botintegration.Platform) *ent.BotIntegration {
	t.Helper()
	integration, err := services.NewIntegrationService(client).Upsert(context.Background(), models.UpsertIntegrationRequest{
		BusinessID:        businessID,
		Platform:          platform,
		ProviderAccountID: "account-" + businessID[:8],
		AccessToken:       "token-" + businessID[:8],
	})
	require.NoError(t, err)
	return integration
}

func newTestDispatcher(client *ent.Client, stub *stubSender) *Dispatcher {
	d := NewDispatcher(client, &config.EngineConfig{MaxSendAttempts: 2})
	d.RegisterSender(stub)
	return d
}

func TestDispatcher_SendText(t *testing.T) {
	client := testdb.NewTestClient(t)
	businessID := uuid.New().String()
	integration := seedIntegration(t, client.Client, businessID, botintegration.PlatformWhatsapp)

	stub := &stubSender{platform: botintegration.PlatformWhatsapp, id: "wamid.OK"}
	d := newTestDispatcher(client.Client, stub)

	result, err := d.SendText(context.Background(), businessID, botintegration.PlatformWhatsapp, "+15550001111", "Your order is on its way")
	require.NoError(t, err)
	assert.Equal(t, "wamid.OK", result.ProviderMessageID)
	assert.Equal(t, 1, result.Attempts)

	require.Len(t, stub.calls, 1)
	assert.Equal(t, integration.ProviderAccountID, stub.calls[0].creds.AccountID)
	assert.Equal(t, "+15550001111", stub.calls[0].to)
	assert.Equal(t, "Your order is on its way", stub.calls[0].text)
}

func TestDispatcher_CredentialsComeFromIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	businessID := uuid.New().String()
	otherID := uuid.New().String()
	seedIntegration(t, client.Client, businessID, botintegration.PlatformTelegram)
	seedIntegration(t, client.Client, otherID, botintegration.PlatformTelegram)

	stub := &stubSender{platform: botintegration.PlatformTelegram, id: "1"}
	d := newTestDispatcher(client.Client, stub)

	_, err := d.SendText(context.Background(), otherID, botintegration.PlatformTelegram, "987", "hi")
	require.NoError(t, err)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, "token-"+otherID[:8], stub.calls[0].creds.AccessToken)
	assert.Equal(t, "account-"+otherID[:8], stub.calls[0].creds.AccountID)
}

func TestDispatcher_RetriesTransientFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	businessID := uuid.New().String()
	seedIntegration(t, client.Client, businessID, botintegration.PlatformWhatsapp)

	stub := &stubSender{
		platform: botintegration.PlatformWhatsapp,
		id:       "wamid.RETRY",
		errs:     []error{&APIError{Platform: "whatsapp", Status: http.StatusServiceUnavailable}},
	}
	d := newTestDispatcher(client.Client, stub)

	result, err := d.SendText(context.Background(), businessID, botintegration.PlatformWhatsapp, "+15550001111", "hi")
	require.NoError(t, err)
	assert.Equal(t, "wamid.RETRY", result.ProviderMessageID)
	assert.Equal(t, 2, result.Attempts)
	assert.Len(t, stub.calls, 2)
}

func TestDispatcher_DoesNotRetryPermanentFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	businessID := uuid.New().String()
	seedIntegration(t, client.Client, businessID, botintegration.PlatformWhatsapp)

	stub := &stubSender{
		platform: botintegration.PlatformWhatsapp,
		errs: []error{
			&APIError{Platform: "whatsapp", Status: http.StatusBadRequest, Body: "invalid recipient"},
			&APIError{Platform: "whatsapp", Status: http.StatusBadRequest, Body: "invalid recipient"},
		},
	}
	d := newTestDispatcher(client.Client, stub)

	_, err := d.SendText(context.Background(), businessID, botintegration.PlatformWhatsapp, "bad", "hi")
	require.Error(t, err)
	assert.Len(t, stub.calls, 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestDispatcher_ExhaustsAttempts(t *testing.T) {
	client := testdb.NewTestClient(t)
	businessID := uuid.New().String()
	seedIntegration(t, client.Client, businessID, botintegration.PlatformWhatsapp)

	stub := &stubSender{
		platform: botintegration.PlatformWhatsapp,
		errs: []error{
			&APIError{Platform: "whatsapp", Status: http.StatusInternalServerError},
			&APIError{Platform: "whatsapp", Status: http.StatusInternalServerError},
			&APIError{Platform: "whatsapp", Status: http.StatusInternalServerError},
		},
	}
	d := newTestDispatcher(client.Client, stub)

	_, err := d.SendText(context.Background(), businessID, botintegration.PlatformWhatsapp, "+15550001111", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send whatsapp message")
	assert.Len(t, stub.calls, 2)
}

func TestDispatcher_NoIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)

	stub := &stubSender{platform: botintegration.PlatformWhatsapp}
	d := newTestDispatcher(client.Client, stub)

	_, err := d.SendText(context.Background(), uuid.New().String(), botintegration.PlatformWhatsapp, "+15550001111", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active whatsapp integration")
	assert.Empty(t, stub.calls)
}

func TestDispatcher_InactiveIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	businessID := uuid.New().String()
	integration := seedIntegration(t, client.Client, businessID, botintegration.PlatformTelegram)

	svc := services.NewIntegrationService(client.Client)
	require.NoError(t, svc.SetActive(context.Background(), integration.ID, false))

	stub := &stubSender{platform: botintegration.PlatformTelegram}
	d := newTestDispatcher(client.Client, stub)

	_, err := d.SendText(context.Background(), businessID, botintegration.PlatformTelegram, "987", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active telegram integration")
	assert.Empty(t, stub.calls)
}

func TestDispatcher_TemplateNeedsTemplateSender(t *testing.T) {
	client := testdb.NewTestClient(t)
	businessID := uuid.New().String()
	seedIntegration(t, client.Client, businessID, botintegration.PlatformTelegram)

	stub := &stubSender{platform: botintegration.PlatformTelegram}
	d := newTestDispatcher(client.Client, stub)

	_, err := d.Send(context.Background(), businessID, botintegration.PlatformTelegram, "987", Payload{
		Kind:         PayloadTemplate,
		TemplateName: "order_ready",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedPayload)
	// Permanent: not retried, and the sender itself was never invoked.
	assert.Empty(t, stub.calls)
}
