package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/businessaddon"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/openinghour"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/agent"
	"github.com/vendrahq/vendra/pkg/config"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
	"github.com/vendrahq/vendra/pkg/tools"
	testdb "github.com/vendrahq/vendra/test/database"
)

// scriptedLLM plays back a fixed sequence of responses, one script step per
// Generate call, and records every input it was handed.
type scriptedLLM struct {
	mu    sync.Mutex
	steps [][]agent.Chunk
	calls []*agent.GenerateInput
}

func (s *scriptedLLM) Generate(_ context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, input)
	if len(s.steps) == 0 {
		return nil, fmt.Errorf("llm script exhausted after %d calls", len(s.calls)-1)
	}
	step := s.steps[0]
	s.steps = s.steps[1:]

	ch := make(chan agent.Chunk, len(step))
	for _, chunk := range step {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *scriptedLLM) call(i int) *agent.GenerateInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[i]
}

func textStep(text string) []agent.Chunk {
	return []agent.Chunk{
		&agent.TextChunk{Content: text},
		&agent.UsageChunk{InputTokens: 100, OutputTokens: 20, TotalTokens: 120},
	}
}

func toolStep(calls ...agent.ToolCallChunk) []agent.Chunk {
	step := make([]agent.Chunk, 0, len(calls)+1)
	for i := range calls {
		step = append(step, &calls[i])
	}
	step = append(step, &agent.UsageChunk{InputTokens: 100, OutputTokens: 20, TotalTokens: 120})
	return step
}

func errorStep(message string) []agent.Chunk {
	return []agent.Chunk{&agent.ErrorChunk{Message: message, Code: "UNAVAILABLE", Retryable: true}}
}

// seedEngineBusiness creates a tenant open around the clock, with the
// assistant's master switch set as requested.
func seedEngineBusiness(t *testing.T, client *ent.Client, botActive bool) *ent.User {
	t.Helper()
	ctx := context.Background()
	users := services.NewUserService(client)

	business, err := users.CreateUser(ctx, models.CreateUserRequest{
		Role:         user.RoleBusinessOwner,
		Name:         "Trattoria Lucia",
		BusinessType: user.BusinessTypeFoodAndBeverage,
		Timezone:     "UTC",
	})
	require.NoError(t, err)

	if botActive {
		_, err = users.SetAddon(ctx, models.SetAddonRequest{
			BusinessID: business.ID,
			AddonKey:   businessaddon.AddonKeyBaseBot,
			Status:     businessaddon.StatusActive,
		})
		require.NoError(t, err)
	}

	catalog := services.NewCatalogService(client)
	for day := 0; day < 7; day++ {
		_, err = catalog.UpsertOpeningHour(ctx, models.UpsertOpeningHourRequest{
			OwnerType: openinghour.OwnerTypeBusiness,
			OwnerID:   business.ID,
			DayOfWeek: day,
			OpenTime:  "00:00",
			CloseTime: "23:59",
		})
		require.NoError(t, err)
	}
	return business
}

// openThread opens a session for the stock test customer and appends the
// inbound text, mirroring what the webhook layer does before a turn runs.
func openThread(t *testing.T, client *ent.Client, business *ent.User, inbound string) *ent.ChatSession {
	t.Helper()
	ctx := context.Background()
	sessions := services.NewSessionService(client)

	sess, err := sessions.GetOrOpen(ctx, models.SessionScope{
		BusinessID: business.ID,
		CustomerID: "+15550001111",
		Platform:   chatsession.PlatformWhatsapp,
	})
	require.NoError(t, err)

	_, err = sessions.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:  sess.ID,
		SenderType: chatmessage.SenderTypeCustomer,
		Content:    inbound,
	})
	require.NoError(t, err)
	return sess
}

func newTestEngine(t *testing.T, client *ent.Client, llm agent.LLMClient, cfg *config.EngineConfig) *Engine {
	t.Helper()
	reg, err := tools.NewRegistry(client)
	require.NoError(t, err)
	llmConfig := &config.LLMProviderConfig{Type: config.LLMProviderTypeOpenAI, Model: "gpt-4o"}
	return New(client, reg, llm, llmConfig, cfg, nil, nil)
}

func latestTrace(t *testing.T, client *ent.Client, sessionID string) *ent.LLMTrace {
	t.Helper()
	traces, err := services.NewTraceService(client).ListForSession(context.Background(), sessionID, 1)
	require.NoError(t, err)
	require.Len(t, traces, 1)
	return traces[0]
}

func TestRunTurn_DirectReply(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedEngineBusiness(t, client.Client, true)
	sess := openThread(t, client.Client, business, "do you deliver?")

	llm := &scriptedLLM{steps: [][]agent.Chunk{
		textStep("Yes, we deliver within the city. Want to see the menu?"),
	}}
	eng := newTestEngine(t, client.Client, llm, nil)

	result, err := eng.RunTurn(context.Background(), &TurnRequest{
		Business:     business,
		Session:      sess,
		Text:         "do you deliver?",
		CustomerName: "Dana",
	})
	require.NoError(t, err)

	assert.False(t, result.Skipped)
	assert.Equal(t, "Yes, we deliver within the city. Want to see the menu?", result.Reply)
	assert.Equal(t, 1, result.Iterations)
	assert.Equal(t, 100, result.InputTokens)
	assert.Equal(t, 20, result.OutputTokens)
	assert.NotEmpty(t, result.TurnID)

	require.Equal(t, 1, llm.callCount())
	input := llm.call(0)
	assert.Equal(t, sess.ID, input.SessionID)
	assert.Equal(t, result.TurnID, input.TurnID)
	assert.Equal(t, "gpt-4o", input.Config.Model)
	// No reservations addon, so the reservation tools stay hidden.
	assert.Len(t, input.Tools, 19)

	require.NotEmpty(t, input.Messages)
	assert.Equal(t, "system", input.Messages[0].Role)
	assert.Contains(t, input.Messages[0].Content, "Trattoria Lucia")
	last := input.Messages[len(input.Messages)-1]
	assert.Equal(t, "user", last.Role)
	assert.Equal(t, "do you deliver?", last.Content)

	trace := latestTrace(t, client.Client, sess.ID)
	assert.Equal(t, result.TurnID, trace.TurnID)
	assert.Equal(t, business.ID, trace.BusinessID)
	require.NotNil(t, trace.FinalText)
	assert.Equal(t, result.Reply, *trace.FinalText)
	assert.Equal(t, 1, trace.Iterations)
	assert.Nil(t, trace.Error)
	require.NotNil(t, trace.Model)
	assert.Equal(t, "gpt-4o", *trace.Model)
	assert.NotEmpty(t, trace.RequestMessages)
}

func TestRunTurn_Guards(t *testing.T) {
	client := testdb.NewTestClient(t)

	t.Run("human locked session is skipped", func(t *testing.T) {
		business := seedEngineBusiness(t, client.Client, true)
		sess := openThread(t, client.Client, business, "hello?")
		locked, _, err := services.NewSessionService(client.Client).Lock(context.Background(), sess.ID, "needs a human", "")
		require.NoError(t, err)

		llm := &scriptedLLM{}
		eng := newTestEngine(t, client.Client, llm, nil)

		result, err := eng.RunTurn(context.Background(), &TurnRequest{Business: business, Session: locked, Text: "hello?"})
		require.NoError(t, err)
		assert.True(t, result.Skipped)
		assert.Contains(t, result.SkipReason, "human")
		assert.Zero(t, llm.callCount())
	})

	t.Run("closed session is skipped", func(t *testing.T) {
		business := seedEngineBusiness(t, client.Client, true)
		sess := openThread(t, client.Client, business, "hello?")
		closed, err := services.NewSessionService(client.Client).Close(context.Background(), sess.ID)
		require.NoError(t, err)

		llm := &scriptedLLM{}
		eng := newTestEngine(t, client.Client, llm, nil)

		result, err := eng.RunTurn(context.Background(), &TurnRequest{Business: business, Session: closed, Text: "hello?"})
		require.NoError(t, err)
		assert.True(t, result.Skipped)
		assert.Contains(t, result.SkipReason, "closed")
		assert.Zero(t, llm.callCount())
	})

	t.Run("master switch off is skipped", func(t *testing.T) {
		business := seedEngineBusiness(t, client.Client, false)
		sess := openThread(t, client.Client, business, "hello?")

		llm := &scriptedLLM{}
		eng := newTestEngine(t, client.Client, llm, nil)

		result, err := eng.RunTurn(context.Background(), &TurnRequest{Business: business, Session: sess, Text: "hello?"})
		require.NoError(t, err)
		assert.True(t, result.Skipped)
		assert.Contains(t, result.SkipReason, "disabled")
		assert.Zero(t, llm.callCount())
	})
}

func TestRunTurn_ToolRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedEngineBusiness(t, client.Client, true)
	catalog := services.NewCatalogService(client.Client)
	item, err := catalog.CreateItem(context.Background(), models.CreateItemRequest{
		BusinessID: business.ID,
		Name:       "Margherita",
		Price:      decimal.NewFromFloat(8.00),
	})
	require.NoError(t, err)

	sess := openThread(t, client.Client, business, "two margherita please")

	llm := &scriptedLLM{steps: [][]agent.Chunk{
		toolStep(agent.ToolCallChunk{
			CallID:    "call-1",
			Name:      "add_to_cart",
			Arguments: fmt.Sprintf(`{"item_id": %q, "quantity": 2}`, item.ID),
		}),
		textStep("Two Margherita added. That's 16.00 so far, anything else?"),
	}}
	eng := newTestEngine(t, client.Client, llm, nil)

	result, err := eng.RunTurn(context.Background(), &TurnRequest{
		Business:     business,
		Session:      sess,
		Text:         "two margherita please",
		CustomerName: "Dana",
	})
	require.NoError(t, err)

	assert.Equal(t, "Two Margherita added. That's 16.00 so far, anything else?", result.Reply)
	assert.Equal(t, 2, result.Iterations)
	assert.Equal(t, 200, result.InputTokens)

	// Second call sees the assistant's tool call and the tool's envelope.
	require.Equal(t, 2, llm.callCount())
	second := llm.call(1)
	require.GreaterOrEqual(t, len(second.Messages), 2)
	toolMsg := second.Messages[len(second.Messages)-1]
	assert.Equal(t, "tool", toolMsg.Role)
	assert.Equal(t, "call-1", toolMsg.ToolCallID)
	assert.Equal(t, "add_to_cart", toolMsg.ToolName)
	assert.Contains(t, toolMsg.Content, `"success":true`)
	assistantMsg := second.Messages[len(second.Messages)-2]
	assert.Equal(t, "assistant", assistantMsg.Role)
	require.Len(t, assistantMsg.ToolCalls, 1)
	assert.Equal(t, "add_to_cart", assistantMsg.ToolCalls[0].Name)

	// The tool really ran: the cart holds the line.
	snap, err := services.NewCartService(client.Client).Snapshot(context.Background(), models.CartScope{
		BusinessID:    business.ID,
		OwnerUserID:   business.ID,
		CustomerPhone: "+15550001111",
	})
	require.NoError(t, err)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].Quantity)

	trace := latestTrace(t, client.Client, sess.ID)
	require.Len(t, trace.ToolCalls, 1)
	assert.Equal(t, "add_to_cart", trace.ToolCalls[0]["name"])
	assert.Equal(t, true, trace.ToolCalls[0]["success"])
}

func TestRunTurn_ToolFailureSurfacesToModel(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedEngineBusiness(t, client.Client, true)
	sess := openThread(t, client.Client, business, "confirm my order")

	llm := &scriptedLLM{steps: [][]agent.Chunk{
		// Confirming without a prior validation trips the precondition gate.
		toolStep(agent.ToolCallChunk{
			CallID:    "call-1",
			Name:      "confirm_order",
			Arguments: `{"payment_method": "cash"}`,
		}),
		textStep("I need to check your cart first, one moment."),
	}}
	eng := newTestEngine(t, client.Client, llm, nil)

	result, err := eng.RunTurn(context.Background(), &TurnRequest{Business: business, Session: sess, Text: "confirm my order"})
	require.NoError(t, err)
	assert.Equal(t, "I need to check your cart first, one moment.", result.Reply)

	second := llm.call(1)
	toolMsg := second.Messages[len(second.Messages)-1]
	assert.Equal(t, "tool", toolMsg.Role)
	assert.Contains(t, toolMsg.Content, `"success":false`)
	assert.Contains(t, toolMsg.Content, string(tools.CodePreconditionMissing))

	trace := latestTrace(t, client.Client, sess.ID)
	require.Len(t, trace.ToolCalls, 1)
	assert.Equal(t, false, trace.ToolCalls[0]["success"])
	assert.Equal(t, string(tools.CodePreconditionMissing), trace.ToolCalls[0]["code"])
}

func TestRunTurn_MalformedToolArguments(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedEngineBusiness(t, client.Client, true)
	sess := openThread(t, client.Client, business, "show the menu")

	llm := &scriptedLLM{steps: [][]agent.Chunk{
		toolStep(agent.ToolCallChunk{CallID: "call-1", Name: "search_menu_items", Arguments: `{"query": `}),
		textStep("Here is our menu."),
	}}
	eng := newTestEngine(t, client.Client, llm, nil)

	result, err := eng.RunTurn(context.Background(), &TurnRequest{Business: business, Session: sess, Text: "show the menu"})
	require.NoError(t, err)
	assert.Equal(t, "Here is our menu.", result.Reply)

	second := llm.call(1)
	toolMsg := second.Messages[len(second.Messages)-1]
	assert.Contains(t, toolMsg.Content, string(tools.CodeInvalidToolArgs))
	assert.Contains(t, toolMsg.Content, "not valid JSON")
}

func TestRunTurn_IterationCapForcesReply(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedEngineBusiness(t, client.Client, true)
	sess := openThread(t, client.Client, business, "what's in my cart?")

	cfg := config.DefaultEngineConfig()
	cfg.MaxIterations = 2
	llm := &scriptedLLM{steps: [][]agent.Chunk{
		toolStep(agent.ToolCallChunk{CallID: "call-1", Name: "view_cart", Arguments: `{}`}),
		toolStep(agent.ToolCallChunk{CallID: "call-2", Name: "view_cart", Arguments: `{}`}),
		textStep("Your cart is empty. Want me to suggest something?"),
	}}
	eng := newTestEngine(t, client.Client, llm, cfg)

	result, err := eng.RunTurn(context.Background(), &TurnRequest{Business: business, Session: sess, Text: "what's in my cart?"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Iterations)
	assert.Equal(t, "Your cart is empty. Want me to suggest something?", result.Reply)

	// The wrap-up call carries no tools and tells the model to answer in text.
	require.Equal(t, 3, llm.callCount())
	final := llm.call(2)
	assert.Nil(t, final.Tools)
	lastMsg := final.Messages[len(final.Messages)-1]
	assert.Equal(t, "user", lastMsg.Role)
	assert.Contains(t, lastMsg.Content, "no tool calls left")
}

func TestRunTurn_TransportErrorBecomesApology(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedEngineBusiness(t, client.Client, true)
	sess := openThread(t, client.Client, business, "hi")

	// Empty script: the first Generate call fails outright.
	llm := &scriptedLLM{}
	eng := newTestEngine(t, client.Client, llm, nil)

	result, err := eng.RunTurn(context.Background(), &TurnRequest{Business: business, Session: sess, Text: "hi"})
	require.NoError(t, err)

	assert.Equal(t, fallbackApology, result.Reply)
	assert.False(t, result.Skipped)

	trace := latestTrace(t, client.Client, sess.ID)
	require.NotNil(t, trace.Error)
	assert.Contains(t, *trace.Error, "llm generate failed")
}

func TestRunTurn_ProviderErrorBecomesApology(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedEngineBusiness(t, client.Client, true)
	sess := openThread(t, client.Client, business, "hi")

	llm := &scriptedLLM{steps: [][]agent.Chunk{errorStep("rate limited")}}
	eng := newTestEngine(t, client.Client, llm, nil)

	result, err := eng.RunTurn(context.Background(), &TurnRequest{Business: business, Session: sess, Text: "hi"})
	require.NoError(t, err)

	assert.Equal(t, fallbackApology, result.Reply)
	assert.Equal(t, 1, result.Iterations)

	trace := latestTrace(t, client.Client, sess.ID)
	require.NotNil(t, trace.Error)
	assert.Contains(t, *trace.Error, "rate limited")
}

// phoneMasker stands in for the masking pipeline so the test can see whether
// trace content went through it.
type phoneMasker struct{}

func (phoneMasker) Mask(s string) string {
	return strings.ReplaceAll(s, "+15550001111", "[phone]")
}

func TestRunTurn_TracesAreMasked(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedEngineBusiness(t, client.Client, true)
	sess := openThread(t, client.Client, business, "call me back at +15550001111")

	llm := &scriptedLLM{steps: [][]agent.Chunk{
		textStep("Noted, we'll call +15550001111 shortly."),
	}}
	reg, err := tools.NewRegistry(client.Client)
	require.NoError(t, err)
	eng := New(client.Client, reg, llm,
		&config.LLMProviderConfig{Type: config.LLMProviderTypeOpenAI, Model: "gpt-4o"},
		nil, nil, phoneMasker{})

	result, err := eng.RunTurn(context.Background(), &TurnRequest{
		Business: business,
		Session:  sess,
		Text:     "call me back at +15550001111",
	})
	require.NoError(t, err)

	// The customer-facing reply is untouched; only the stored trace is masked.
	assert.Contains(t, result.Reply, "+15550001111")

	trace := latestTrace(t, client.Client, sess.ID)
	require.NotNil(t, trace.FinalText)
	assert.Contains(t, *trace.FinalText, "[phone]")
	assert.NotContains(t, *trace.FinalText, "+15550001111")
	for _, msg := range trace.RequestMessages {
		if content, ok := msg["content"].(string); ok {
			assert.NotContains(t, content, "+15550001111")
		}
	}
}

func TestRunTurn_TurnTimeout(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedEngineBusiness(t, client.Client, true)
	sess := openThread(t, client.Client, business, "hi")

	cfg := config.DefaultEngineConfig()
	cfg.LLMTimeout = 20 * time.Millisecond
	// A stream that never closes forces the per-call deadline to fire.
	llm := &scriptedLLM{steps: [][]agent.Chunk{{}}}
	stuck := &stuckLLM{inner: llm}
	eng := newTestEngine(t, client.Client, stuck, cfg)

	result, err := eng.RunTurn(context.Background(), &TurnRequest{Business: business, Session: sess, Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, fallbackApology, result.Reply)
}

// stuckLLM returns a stream that never yields, to exercise deadlines.
type stuckLLM struct {
	inner *scriptedLLM
}

func (s *stuckLLM) Generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	s.inner.mu.Lock()
	s.inner.calls = append(s.inner.calls, input)
	s.inner.mu.Unlock()
	return make(chan agent.Chunk), nil
}

func (s *stuckLLM) Close() error { return nil }
