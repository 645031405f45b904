package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/pkg/config"
	llmv1 "github.com/vendrahq/vendra/proto"
)

func TestToProtoMessages(t *testing.T) {
	messages := []ConversationMessage{
		{Role: "system", Content: "You are a restaurant assistant"},
		{Role: "user", Content: "two margheritas please"},
		{Role: "assistant", Content: "Adding them now", ToolCalls: []ToolCall{
			{ID: "tc1", Name: "add_to_cart", Arguments: `{"item_id":"itm-1","quantity":2}`},
		}},
		{Role: "tool", Content: `{"success":true}`, ToolCallID: "tc1", ToolName: "add_to_cart"},
	}

	result := toProtoMessages(messages)
	require.Len(t, result, 4)

	assert.Equal(t, "system", result[0].Role)
	assert.Equal(t, "You are a restaurant assistant", result[0].Content)

	assert.Equal(t, "user", result[1].Role)

	// Assistant with tool calls
	assert.Equal(t, "assistant", result[2].Role)
	assert.Equal(t, "Adding them now", result[2].Content)
	require.Len(t, result[2].ToolCalls, 1)
	assert.Equal(t, "tc1", result[2].ToolCalls[0].Id)
	assert.Equal(t, "add_to_cart", result[2].ToolCalls[0].Name)

	// Tool result
	assert.Equal(t, "tool", result[3].Role)
	assert.Equal(t, "tc1", result[3].ToolCallId)
	assert.Equal(t, "add_to_cart", result[3].ToolName)
}

func TestToProtoLLMConfig(t *testing.T) {
	cfg := &config.LLMProviderConfig{
		Type:            config.LLMProviderTypeOpenAI,
		Model:           "gpt-4o",
		APIKeyEnv:       "OPENAI_API_KEY",
		BaseURL:         "https://llm.internal:8443",
		Temperature:     0.3,
		MaxOutputTokens: 1024,
	}

	proto := toProtoLLMConfig(cfg)
	assert.Equal(t, "openai", proto.Provider)
	assert.Equal(t, "gpt-4o", proto.Model)
	assert.Equal(t, "OPENAI_API_KEY", proto.ApiKeyEnv)
	assert.Equal(t, "https://llm.internal:8443", proto.BaseUrl)
	assert.InDelta(t, 0.3, proto.Temperature, 1e-9)
	assert.Equal(t, int32(1024), proto.MaxOutputTokens)
}

func TestToProtoRequest(t *testing.T) {
	t.Run("session and turn ids pass through", func(t *testing.T) {
		input := &GenerateInput{
			SessionID: "sess-1",
			TurnID:    "turn-7",
			Config: &config.LLMProviderConfig{
				Type:  config.LLMProviderTypeAnthropic,
				Model: "claude-sonnet-4-5",
			},
		}
		req := toProtoRequest(input)
		assert.Equal(t, "sess-1", req.SessionId)
		assert.Equal(t, "turn-7", req.TurnId)
		require.NotNil(t, req.LlmConfig)
		assert.Equal(t, "anthropic", req.LlmConfig.Provider)
	})

	t.Run("nil config leaves llm_config unset", func(t *testing.T) {
		req := toProtoRequest(&GenerateInput{SessionID: "sess-1"})
		assert.Nil(t, req.LlmConfig)
	})
}

func TestFromProtoResponse(t *testing.T) {
	t.Run("text chunk", func(t *testing.T) {
		resp := &llmv1.GenerateResponse{
			Content: &llmv1.GenerateResponse_Text{
				Text: &llmv1.TextChunk{Content: "hello"},
			},
		}
		chunk := fromProtoResponse(resp)
		tc, ok := chunk.(*TextChunk)
		require.True(t, ok)
		assert.Equal(t, "hello", tc.Content)
	})

	t.Run("thinking chunk", func(t *testing.T) {
		resp := &llmv1.GenerateResponse{
			Content: &llmv1.GenerateResponse_Thinking{
				Thinking: &llmv1.ThinkingChunk{Content: "hmm"},
			},
		}
		chunk := fromProtoResponse(resp)
		tc, ok := chunk.(*ThinkingChunk)
		require.True(t, ok)
		assert.Equal(t, "hmm", tc.Content)
	})

	t.Run("tool call chunk", func(t *testing.T) {
		resp := &llmv1.GenerateResponse{
			Content: &llmv1.GenerateResponse_ToolCall{
				ToolCall: &llmv1.ToolCallChunk{
					CallId:    "call1",
					Name:      "view_cart",
					Arguments: `{}`,
				},
			},
		}
		chunk := fromProtoResponse(resp)
		tc, ok := chunk.(*ToolCallChunk)
		require.True(t, ok)
		assert.Equal(t, "call1", tc.CallID)
		assert.Equal(t, "view_cart", tc.Name)
	})

	t.Run("usage chunk", func(t *testing.T) {
		resp := &llmv1.GenerateResponse{
			Content: &llmv1.GenerateResponse_Usage{
				Usage: &llmv1.UsageChunk{
					InputTokens:  100,
					OutputTokens: 200,
					TotalTokens:  300,
				},
			},
		}
		chunk := fromProtoResponse(resp)
		uc, ok := chunk.(*UsageChunk)
		require.True(t, ok)
		assert.Equal(t, 100, uc.InputTokens)
		assert.Equal(t, 200, uc.OutputTokens)
		assert.Equal(t, 300, uc.TotalTokens)
	})

	t.Run("error chunk", func(t *testing.T) {
		resp := &llmv1.GenerateResponse{
			Content: &llmv1.GenerateResponse_Error{
				Error: &llmv1.ErrorChunk{
					Message:   "rate limited",
					Code:      "429",
					Retryable: true,
				},
			},
		}
		chunk := fromProtoResponse(resp)
		ec, ok := chunk.(*ErrorChunk)
		require.True(t, ok)
		assert.Equal(t, "rate limited", ec.Message)
		assert.True(t, ec.Retryable)
	})

	t.Run("nil content returns nil", func(t *testing.T) {
		resp := &llmv1.GenerateResponse{}
		chunk := fromProtoResponse(resp)
		assert.Nil(t, chunk)
	})
}

func TestToProtoTools(t *testing.T) {
	t.Run("nil tools returns nil", func(t *testing.T) {
		assert.Nil(t, toProtoTools(nil))
	})

	t.Run("empty tools returns nil", func(t *testing.T) {
		assert.Nil(t, toProtoTools([]ToolDefinition{}))
	})

	t.Run("converts tools", func(t *testing.T) {
		tools := []ToolDefinition{
			{Name: "search_menu_items", Description: "Search the menu", ParametersSchema: `{"type":"object"}`},
		}
		result := toProtoTools(tools)
		require.Len(t, result, 1)
		assert.Equal(t, "search_menu_items", result[0].Name)
	})
}
