// Package engine runs one conversational turn end to end: guard checks,
// context assembly, the bounded model and tool loop, and trace recording.
// The engine computes the reply; persisting and delivering it belongs to
// the caller.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/businessaddon"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/openinghour"
	"github.com/vendrahq/vendra/pkg/agent"
	"github.com/vendrahq/vendra/pkg/config"
	"github.com/vendrahq/vendra/pkg/engine/prompt"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
	"github.com/vendrahq/vendra/pkg/tools"
)

// historyLimit is how many thread messages the model sees per turn.
const historyLimit = 20

// fallbackApology is the reply of last resort when the model cannot
// produce one.
const fallbackApology = "Sorry, something went wrong on our side. Please try again in a moment."

// Masker scrubs PII from text before it is persisted in traces.
type Masker interface {
	Mask(s string) string
}

// PlaybookSource fetches a tenant's conversation playbook by URL.
type PlaybookSource interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// TurnRequest is one inbound customer message with its resolved tenant and
// session. The message itself is expected to be the tail of the session
// thread already.
type TurnRequest struct {
	Business     *ent.User
	Session      *ent.ChatSession
	Text         string
	CustomerName string
}

// TurnResult is the outcome of one processed turn.
type TurnResult struct {
	TurnID       string
	Reply        string
	Skipped      bool
	SkipReason   string
	Iterations   int
	InputTokens  int
	OutputTokens int
	Duration     time.Duration
}

// Engine drives the model and tool loop for inbound customer messages.
// Build once at startup; safe for concurrent turns.
type Engine struct {
	client   *ent.Client
	users    *services.UserService
	catalog  *services.CatalogService
	carts    *services.CartService
	sessions *services.SessionService
	traces   *services.TraceService

	registry  *tools.Registry
	llm       agent.LLMClient
	builder   *prompt.Builder
	llmConfig *config.LLMProviderConfig
	cfg       *config.EngineConfig

	playbooks PlaybookSource // nil = playbooks disabled
	masker    Masker         // nil = traces stored unmasked
}

// New wires an engine over a database client and a model transport.
// playbooks and masker may be nil.
func New(
	client *ent.Client,
	registry *tools.Registry,
	llm agent.LLMClient,
	llmConfig *config.LLMProviderConfig,
	cfg *config.EngineConfig,
	playbooks PlaybookSource,
	masker Masker,
) *Engine {
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	registry.ExecTimeout = cfg.DBTimeout
	registry.MaxRetries = cfg.MaxDeadlockRetries
	return &Engine{
		client:    client,
		users:     services.NewUserService(client),
		catalog:   services.NewCatalogService(client),
		carts:     services.NewCartService(client),
		sessions:  services.NewSessionService(client),
		traces:    services.NewTraceService(client),
		registry:  registry,
		llm:       llm,
		builder:   prompt.NewBuilder(),
		llmConfig: llmConfig,
		cfg:       cfg,
		playbooks: playbooks,
		masker:    masker,
	}
}

// RunTurn processes one inbound message to completion and returns the reply
// the caller should deliver. A skipped result means the assistant must stay
// silent for this message; the thread already holds the customer's text.
func (e *Engine) RunTurn(ctx context.Context, req *TurnRequest) (*TurnResult, error) {
	if req == nil || req.Business == nil || req.Session == nil {
		return nil, fmt.Errorf("turn request is missing business or session")
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.TurnTimeout)
	defer cancel()

	switch req.Session.State {
	case chatsession.StateHumanLocked:
		return &TurnResult{Skipped: true, SkipReason: "session is handed over to a human"}, nil
	case chatsession.StateClosed:
		return &TurnResult{Skipped: true, SkipReason: "session is closed"}, nil
	}

	active, err := e.users.IsAddonActive(ctx, req.Business.ID, businessaddon.AddonKeyBaseBot)
	if err != nil {
		return nil, fmt.Errorf("failed to check master switch: %w", err)
	}
	if !active {
		return &TurnResult{Skipped: true, SkipReason: "assistant is disabled for this business"}, nil
	}

	toolCtx := e.toolContext(req)
	catalog, err := e.registry.Catalog(ctx, toolCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool catalog: %w", err)
	}
	defs := make([]agent.ToolDefinition, len(catalog))
	for i, d := range catalog {
		defs[i] = agent.ToolDefinition{
			Name:             d.Name,
			Description:      d.Description,
			ParametersSchema: string(d.Parameters),
		}
	}

	messages := e.builder.BuildTurnMessages(e.turnContext(ctx, req))

	turnID := uuid.New().String()
	start := time.Now()
	result := e.runLoop(ctx, turnID, toolCtx, messages, defs)
	result.TurnID = turnID
	result.Duration = time.Since(start)

	e.recordTrace(req, turnID, result)
	return result.TurnResult, nil
}

func (e *Engine) toolContext(req *TurnRequest) *tools.Context {
	language := ""
	if req.Session.LanguageHint != nil {
		language = *req.Session.LanguageHint
	}
	if language == "" && req.Business.Language != nil {
		language = *req.Business.Language
	}
	return &tools.Context{
		BusinessID:    req.Business.ID,
		OwnerUserID:   req.Business.ID,
		BusinessType:  req.Business.BusinessType,
		CustomerPhone: req.Session.CustomerID,
		CustomerName:  req.CustomerName,
		SessionID:     req.Session.ID,
		Platform:      req.Session.Platform,
		Language:      language,
	}
}

// turnContext gathers the prompt inputs. Each lookup fails open: a missing
// section degrades the prompt, it does not kill the turn.
func (e *Engine) turnContext(ctx context.Context, req *TurnRequest) *prompt.TurnContext {
	tc := &prompt.TurnContext{
		Business:     req.Business,
		Session:      req.Session,
		InboundText:  req.Text,
		CustomerName: req.CustomerName,
	}

	loc, err := time.LoadLocation(req.Business.Timezone)
	if err != nil {
		slog.Warn("unknown business timezone, using UTC",
			"business_id", req.Business.ID, "timezone", req.Business.Timezone)
		loc = time.UTC
	}
	tc.Now = time.Now().In(loc)

	hours, err := e.catalog.ListOpeningHours(ctx, openinghour.OwnerTypeBusiness, req.Business.ID)
	if err != nil {
		slog.Warn("failed to load opening hours for prompt", "business_id", req.Business.ID, "error", err)
	} else {
		tc.Hours = hours
	}

	snap, err := e.carts.Snapshot(ctx, models.CartScope{
		BusinessID:    req.Business.ID,
		OwnerUserID:   req.Business.ID,
		CustomerPhone: req.Session.CustomerID,
	})
	if err != nil {
		slog.Warn("failed to load cart for prompt", "session_id", req.Session.ID, "error", err)
	} else {
		tc.Cart = snap
	}

	history, err := e.sessions.RecentMessages(ctx, req.Session.ID, historyLimit)
	if err != nil {
		slog.Warn("failed to load thread history for prompt", "session_id", req.Session.ID, "error", err)
	} else {
		tc.History = history
	}

	if e.playbooks != nil && req.Business.PlaybookURL != nil && *req.Business.PlaybookURL != "" {
		playbook, err := e.playbooks.Fetch(ctx, *req.Business.PlaybookURL)
		if err != nil {
			slog.Warn("failed to fetch playbook", "business_id", req.Business.ID, "error", err)
		} else {
			tc.Playbook = playbook
		}
	}
	return tc
}

// loopResult is the TurnResult plus the trace-only bookkeeping.
type loopResult struct {
	*TurnResult
	messages []agent.ConversationMessage
	toolLog  []map[string]interface{}
	errText  string
}

// runLoop is the bounded model and tool loop. It always produces a reply:
// the model's own text, a forced wrap-up at the iteration cap, or the
// fallback apology when the transport fails.
func (e *Engine) runLoop(
	ctx context.Context,
	turnID string,
	toolCtx *tools.Context,
	messages []agent.ConversationMessage,
	defs []agent.ToolDefinition,
) *loopResult {
	res := &loopResult{TurnResult: &TurnResult{}}
	turn := tools.NewTurnState()

	for i := 0; i < e.cfg.MaxIterations; i++ {
		res.Iterations = i + 1

		resp, err := e.generate(ctx, &agent.GenerateInput{
			SessionID: toolCtx.SessionID,
			TurnID:    turnID,
			Messages:  messages,
			Config:    e.llmConfig,
			Tools:     defs,
		})
		if err != nil {
			res.errText = err.Error()
			res.Reply = fallbackApology
			res.messages = messages
			return res
		}
		res.InputTokens += resp.inputTokens
		res.OutputTokens += resp.outputTokens
		if resp.err != nil {
			res.errText = fmt.Sprintf("llm error: %s", resp.err.Message)
			res.Reply = fallbackApology
			res.messages = messages
			return res
		}

		if len(resp.toolCalls) == 0 {
			if resp.text == "" {
				res.errText = "model produced neither text nor tool calls"
				res.Reply = fallbackApology
				res.messages = messages
				return res
			}
			res.Reply = resp.text
			res.messages = messages
			return res
		}

		messages = append(messages, agent.ConversationMessage{
			Role:      "assistant",
			Content:   resp.text,
			ToolCalls: resp.toolCalls,
		})
		for _, call := range resp.toolCalls {
			result := e.runTool(ctx, toolCtx, turn, call)

			entry := map[string]interface{}{
				"name":      call.Name,
				"arguments": call.Arguments,
				"success":   result.Success,
			}
			if result.Error != nil {
				entry["code"] = string(result.Error.Code)
			}
			res.toolLog = append(res.toolLog, entry)

			messages = append(messages, agent.ConversationMessage{
				Role:       "tool",
				Content:    marshalResult(result),
				ToolCallID: call.ID,
				ToolName:   call.Name,
			})
		}
	}

	// Iteration cap: one last call without tools for a plain text wrap-up.
	messages = append(messages, agent.ConversationMessage{
		Role:    "user",
		Content: e.builder.ForcedReplyPrompt(),
	})
	resp, err := e.generate(ctx, &agent.GenerateInput{
		SessionID: toolCtx.SessionID,
		TurnID:    turnID,
		Messages:  messages,
		Config:    e.llmConfig,
		Tools:     nil,
	})
	if err != nil || resp.err != nil || resp.text == "" {
		if err != nil {
			res.errText = fmt.Sprintf("forced reply failed: %s", err.Error())
		} else if resp.err != nil {
			res.errText = fmt.Sprintf("forced reply failed: %s", resp.err.Message)
		} else {
			res.errText = "forced reply produced no text"
		}
		res.Reply = fallbackApology
		res.messages = messages
		return res
	}
	res.InputTokens += resp.inputTokens
	res.OutputTokens += resp.outputTokens
	res.Reply = resp.text
	res.messages = messages
	return res
}

// modelResponse is one Generate stream folded into a single value.
type modelResponse struct {
	text         string
	toolCalls    []agent.ToolCall
	inputTokens  int
	outputTokens int
	err          *agent.ErrorChunk
}

func (e *Engine) generate(ctx context.Context, input *agent.GenerateInput) (*modelResponse, error) {
	llmCtx, cancel := context.WithTimeout(ctx, e.cfg.LLMTimeout)
	defer cancel()

	stream, err := e.llm.Generate(llmCtx, input)
	if err != nil {
		return nil, fmt.Errorf("llm generate failed: %w", err)
	}

	resp := &modelResponse{}
	var text strings.Builder
	for {
		select {
		case chunk, ok := <-stream:
			if !ok {
				resp.text = strings.TrimSpace(text.String())
				return resp, nil
			}
			switch c := chunk.(type) {
			case *agent.TextChunk:
				text.WriteString(c.Content)
			case *agent.ToolCallChunk:
				resp.toolCalls = append(resp.toolCalls, agent.ToolCall{
					ID:        c.CallID,
					Name:      c.Name,
					Arguments: c.Arguments,
				})
			case *agent.UsageChunk:
				resp.inputTokens += c.InputTokens
				resp.outputTokens += c.OutputTokens
			case *agent.ErrorChunk:
				resp.err = c
			}
		case <-llmCtx.Done():
			return nil, llmCtx.Err()
		}
	}
}

// runTool parses the model's argument JSON and dispatches through the
// registry. Malformed JSON never reaches an executor.
func (e *Engine) runTool(ctx context.Context, toolCtx *tools.Context, turn *tools.TurnState, call agent.ToolCall) *tools.Result {
	var args map[string]interface{}
	if strings.TrimSpace(call.Arguments) != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return &tools.Result{
				Success: false,
				Error: &tools.ToolError{
					Code:    tools.CodeInvalidToolArgs,
					Message: fmt.Sprintf("arguments for %s are not valid JSON", call.Name),
				},
			}
		}
	}
	return e.registry.Execute(ctx, toolCtx, turn, call.Name, args)
}

func marshalResult(r *tools.Result) string {
	data, err := json.Marshal(r)
	if err != nil {
		// Payloads are service structs; this should not happen.
		return fmt.Sprintf(`{"success":false,"error":{"code":"INTERNAL","message":%q}}`, err.Error())
	}
	return string(data)
}

// recordTrace persists the turn's audit record. Best effort with its own
// deadline: the turn context may already be exhausted.
func (e *Engine) recordTrace(req *TurnRequest, turnID string, res *loopResult) {
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.DBTimeout)
	defer cancel()

	reqMessages := make([]map[string]interface{}, len(res.messages))
	for i, m := range res.messages {
		entry := map[string]interface{}{
			"role":    m.Role,
			"content": e.mask(m.Content),
		}
		if m.ToolCallID != "" {
			entry["tool_call_id"] = m.ToolCallID
		}
		if len(m.ToolCalls) > 0 {
			calls := make([]map[string]interface{}, len(m.ToolCalls))
			for j, c := range m.ToolCalls {
				calls[j] = map[string]interface{}{
					"id":        c.ID,
					"name":      c.Name,
					"arguments": e.mask(c.Arguments),
				}
			}
			entry["tool_calls"] = calls
		}
		reqMessages[i] = entry
	}

	toolLog := make([]map[string]interface{}, len(res.toolLog))
	for i, entry := range res.toolLog {
		masked := make(map[string]interface{}, len(entry))
		for k, v := range entry {
			if s, isString := v.(string); isString && k == "arguments" {
				masked[k] = e.mask(s)
				continue
			}
			masked[k] = v
		}
		toolLog[i] = masked
	}

	model := ""
	if e.llmConfig != nil {
		model = e.llmConfig.Model
	}
	_, err := e.traces.Record(ctx, models.RecordTraceRequest{
		SessionID:       req.Session.ID,
		BusinessID:      req.Business.ID,
		TurnID:          turnID,
		Model:           model,
		RequestMessages: reqMessages,
		FinalText:       e.mask(res.Reply),
		ToolCalls:       toolLog,
		Iterations:      res.Iterations,
		InputTokens:     res.InputTokens,
		OutputTokens:    res.OutputTokens,
		DurationMs:      res.Duration.Milliseconds(),
		Error:           res.errText,
	})
	if err != nil {
		slog.Warn("failed to record turn trace", "session_id", req.Session.ID, "turn_id", turnID, "error", err)
	}
}

func (e *Engine) mask(s string) string {
	if e.masker == nil {
		return s
	}
	return e.masker.Mask(s)
}
