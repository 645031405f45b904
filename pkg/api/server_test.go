package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/config"
	"github.com/vendrahq/vendra/pkg/database"
	"github.com/vendrahq/vendra/pkg/dedup"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/outbound"
	"github.com/vendrahq/vendra/pkg/services"
	testdb "github.com/vendrahq/vendra/test/database"
)

const (
	testJWTSecret   = "api-test-secret"
	testVerifyToken = "verify-me"
)

// stubSender records deliveries instead of calling a provider.
type stubSender struct {
	platform botintegration.Platform
	sent     []stubDelivery
}

type stubDelivery struct {
	To   string
	Text string
}

func (s *stubSender) Platform() botintegration.Platform { return s.platform }

func (s *stubSender) SendMessage(_ context.Context, _ outbound.Credentials, to, text string) (string, error) {
	s.sent = append(s.sent, stubDelivery{To: to, Text: text})
	return fmt.Sprintf("stub-%d", len(s.sent)), nil
}

func (s *stubSender) SendImage(_ context.Context, _ outbound.Credentials, to string, p outbound.Payload) (string, error) {
	s.sent = append(s.sent, stubDelivery{To: to, Text: p.Text})
	return fmt.Sprintf("stub-%d", len(s.sent)), nil
}

type testEnv struct {
	server   *Server
	client   *database.Client
	whatsapp *stubSender
}

// newTestEnv builds a server against a throwaway database with stubbed
// outbound senders and an in-memory deduper.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("AUTH_JWT_SECRET", testJWTSecret)

	client := testdb.NewTestClient(t)
	cfg := &config.Config{
		Auth:         &config.AuthConfig{JWTSecretEnv: "AUTH_JWT_SECRET", TokenTTL: 24 * time.Hour},
		Channels:     &config.ChannelConfig{VerifyTokens: map[string]string{"whatsapp": testVerifyToken}},
		DashboardURL: "http://localhost:5173",
	}

	dispatcher := outbound.NewDispatcher(client.Client, nil)
	wa := &stubSender{platform: botintegration.PlatformWhatsapp}
	dispatcher.RegisterSender(wa)
	dispatcher.RegisterSender(&stubSender{platform: botintegration.PlatformTelegram})

	server, err := NewServer(cfg, client, dedup.NewMemoryDeduper(time.Minute), dispatcher, nil, nil, nil)
	require.NoError(t, err)

	return &testEnv{server: server, client: client, whatsapp: wa}
}

// mintToken signs an HS256 token the way the dashboard issuer does.
func mintToken(t *testing.T, sub, role string) string {
	t.Helper()
	return mintTokenWithExpiry(t, sub, role, time.Now().Add(time.Hour))
}

func mintTokenWithExpiry(t *testing.T, sub, role string, expiresAt time.Time) string {
	t.Helper()
	claims := authClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

// do runs one request through the full router.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.server.router.ServeHTTP(rec, req)
	return rec
}

// decodeData unmarshals the "data" member of a success envelope into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data, "expected a data envelope, got: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// errorCode extracts the machine code from an error envelope.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Error.Code, "expected an error envelope, got: %s", rec.Body.String())
	return envelope.Error.Code
}

// seedAPIBusiness creates a business owner tenant.
func seedAPIBusiness(t *testing.T, client *database.Client, name string) *ent.User {
	t.Helper()
	u, err := services.NewUserService(client.Client).CreateUser(context.Background(), models.CreateUserRequest{
		Role:     user.RoleBusinessOwner,
		Name:     name,
		Timezone: "UTC",
	})
	require.NoError(t, err)
	return u
}

// seedAPIIntegration registers an active channel integration for a tenant.
func seedAPIIntegration(t *testing.T, client *database.Client, businessID string, platform botintegration.Platform, accountID string) *ent.BotIntegration {
	t.Helper()
	integration, err := services.NewIntegrationService(client.Client).Upsert(context.Background(), models.UpsertIntegrationRequest{
		BusinessID:        businessID,
		Platform:          platform,
		ProviderAccountID: accountID,
		AccessToken:       "test-access-token",
		VerifyToken:       testVerifyToken,
	})
	require.NoError(t, err)
	return integration
}
