// Package e2e boots the full inbound pipeline — HTTP webhooks, queue
// workers, engine, outbound delivery, and the event stream — against a real
// Postgres and a scripted LLM, and drives it the way providers and the
// dashboard do.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/pkg/api"
	"github.com/vendrahq/vendra/pkg/config"
	"github.com/vendrahq/vendra/pkg/database"
	"github.com/vendrahq/vendra/pkg/dedup"
	"github.com/vendrahq/vendra/pkg/engine"
	"github.com/vendrahq/vendra/pkg/events"
	"github.com/vendrahq/vendra/pkg/outbound"
	"github.com/vendrahq/vendra/pkg/queue"
	"github.com/vendrahq/vendra/pkg/tools"
	testdb "github.com/vendrahq/vendra/test/database"
	"github.com/vendrahq/vendra/test/util"
)

const (
	testJWTSecret   = "e2e-test-secret"
	testVerifyToken = "e2e-verify-token"
)

// TestApp boots a complete vendra instance for e2e testing.
type TestApp struct {
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Test wiring
	LLM      *ScriptedLLMClient
	WhatsApp *RecordingSender
	Telegram *RecordingSender

	// Real infrastructure
	Publisher      *events.Publisher
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener
	WorkerPool     *queue.WorkerPool
	Engine         *engine.Engine
	Server         *api.Server

	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/ws"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	llm         *ScriptedLLMClient
	workerCount int
	turnTimeout time.Duration
	dbClient    *database.Client
	podID       string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithLLM sets a pre-scripted LLM client.
func WithLLM(llm *ScriptedLLMClient) TestAppOption {
	return func(c *testAppConfig) { c.llm = llm }
}

// WithWorkerCount sets the number of worker pool goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithTurnTimeout bounds engine turns. Used by tests that script a blocking
// LLM and need the turn to die quickly.
func WithTurnTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.turnTimeout = d }
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used for multi-replica tests where two TestApp
// instances share one database.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithPodID overrides the auto-generated pod ID so multi-replica tests get
// distinct identities for claiming and orphan detection.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// NewTestApp creates and starts a full vendra test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	t.Setenv("AUTH_JWT_SECRET", testJWTSecret)

	tc := &testAppConfig{
		workerCount: 1,
		turnTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.llm == nil {
		tc.llm = NewScriptedLLMClient()
	}

	cfg := testConfig(tc)

	// 1. Database — per-test schema unless a shared client was injected.
	dbClient := tc.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Engine over the scripted LLM. No playbooks, no masking: the tests
	// assert raw tool and reply flow.
	registry, err := tools.NewRegistry(entClient)
	require.NoError(t, err)
	llmProvider, err := cfg.GetLLMProvider("scripted")
	require.NoError(t, err)
	eng := engine.New(entClient, registry, tc.llm, llmProvider, cfg.Engine, nil, nil)

	// 3. Outbound dispatcher with recording senders.
	dispatcher := outbound.NewDispatcher(entClient, cfg.Engine)
	wa := NewRecordingSender(botintegration.PlatformWhatsapp)
	tg := NewRecordingSender(botintegration.PlatformTelegram)
	dispatcher.RegisterSender(wa)
	dispatcher.RegisterSender(tg)

	// 4. Event streaming: publisher, WebSocket fan-out, one LISTEN connection
	// muxed between the worker pool and the dashboard — same wiring as the
	// production binary.
	publisher := events.NewPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(5 * time.Second)

	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-%s", t.Name())
	}
	workerPool := queue.NewWorkerPool(podID, entClient, cfg.Queue, eng, dispatcher)

	ctx := context.Background()
	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t),
		events.HandlerFunc(func(channel string, payload []byte) {
			if channel == events.InboundJobsChannel {
				workerPool.HandleNotification(channel, payload)
				return
			}
			connManager.HandleNotification(channel, payload)
		}))
	require.NoError(t, notifyListener.Start(ctx))
	require.NoError(t, notifyListener.Subscribe(ctx, events.InboundJobsChannel))
	connManager.SetListener(notifyListener)

	// 5. Worker pool.
	require.NoError(t, workerPool.Start(ctx))

	// 6. HTTP server on an OS-assigned port.
	server, err := api.NewServer(cfg, dbClient, dedup.NewMemoryDeduper(time.Minute), dispatcher, workerPool, connManager, publisher)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	addr := ln.Addr().String()
	app := &TestApp{
		Config:         cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		LLM:            tc.llm,
		WhatsApp:       wa,
		Telegram:       tg,
		Publisher:      publisher,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		WorkerPool:     workerPool,
		Engine:         eng,
		Server:         server,
		BaseURL:        fmt.Sprintf("http://%s", addr),
		WSURL:          fmt.Sprintf("ws://%s/ws", addr),
		t:              t,
	}

	// Teardown in reverse-creation order. DB cleanup belongs to NewTestClient.
	t.Cleanup(func() {
		workerPool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		notifyListener.Stop(context.Background())
	})

	return app
}

// testConfig builds a config tuned for fast tests: short polls, few workers,
// a single scripted LLM provider.
func testConfig(tc *testAppConfig) *config.Config {
	queueCfg := config.DefaultQueueConfig()
	queueCfg.WorkerCount = tc.workerCount
	queueCfg.MaxConcurrentTurns = tc.workerCount * 2
	queueCfg.PollInterval = 100 * time.Millisecond
	queueCfg.PollIntervalJitter = 50 * time.Millisecond
	queueCfg.HeartbeatInterval = 1 * time.Second
	queueCfg.GracefulShutdownTimeout = 10 * time.Second
	queueCfg.OrphanDetectionInterval = 1 * time.Minute
	queueCfg.OrphanThreshold = 1 * time.Minute

	engineCfg := config.DefaultEngineConfig()
	engineCfg.TurnTimeout = tc.turnTimeout
	engineCfg.LLMTimeout = tc.turnTimeout

	return &config.Config{
		Defaults: &config.Defaults{LLMProvider: "scripted"},
		Engine:   engineCfg,
		Queue:    queueCfg,
		Auth:     &config.AuthConfig{JWTSecretEnv: "AUTH_JWT_SECRET", TokenTTL: time.Hour},
		Channels: &config.ChannelConfig{VerifyTokens: map[string]string{
			"whatsapp":  testVerifyToken,
			"messenger": testVerifyToken,
			"telegram":  testVerifyToken,
		}},
		DashboardURL: "http://localhost:5173",
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"scripted": {Type: config.LLMProviderTypeOpenAI, Model: "scripted-test"},
		}),
	}
}

// MintToken signs an HS256 dashboard token for the given principal.
func (app *TestApp) MintToken(sub, role string) string {
	app.t.Helper()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  jwt.NewNumericDate(time.Now().Add(time.Hour)),
		"iat":  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(app.t, err)
	return signed
}

// Do runs one HTTP request against the running server and returns the
// response with its body fully read.
func (app *TestApp) Do(method, path, token string, body any) (*http.Response, []byte) {
	app.t.Helper()
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(app.t, err)
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, app.BaseURL+path, rd)
	require.NoError(app.t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(app.t, err)
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(app.t, err)
	return resp, data
}

// DecodeData unmarshals the "data" member of a success envelope into out.
func (app *TestApp) DecodeData(body []byte, out any) {
	app.t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(app.t, json.Unmarshal(body, &envelope))
	require.NotNil(app.t, envelope.Data, "expected a data envelope, got: %s", body)
	require.NoError(app.t, json.Unmarshal(envelope.Data, out))
}

