package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/vendrahq/vendra/pkg/agent"
)

// LLMScriptEntry defines a single scripted LLM response.
type LLMScriptEntry struct {
	// Response content (exactly one of these should be set)
	Chunks []agent.Chunk // pre-built chunks to stream
	Text   string        // shorthand: auto-wrapped as TextChunk + UsageChunk
	Err    error         // return error from Generate()

	// Test control
	BlockUntilCancelled bool            // block Generate() until ctx is cancelled
	WaitCh              <-chan struct{} // block Generate() until closed, then respond
	OnBlock             chan<- struct{} // notified when Generate() enters its blocking path
}

// ScriptedLLMClient implements agent.LLMClient by playing back entries in
// order, one per Generate call. Conversations are single-agent, so there is
// no routing: the Nth call gets the Nth entry.
type ScriptedLLMClient struct {
	mu       sync.Mutex
	entries  []LLMScriptEntry
	index    int
	captured []*agent.GenerateInput
}

func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{}
}

// Add appends one scripted response.
func (c *ScriptedLLMClient) Add(entry LLMScriptEntry) *ScriptedLLMClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
	return c
}

// AddText appends a plain text reply.
func (c *ScriptedLLMClient) AddText(text string) *ScriptedLLMClient {
	return c.Add(LLMScriptEntry{Text: text})
}

// AddToolCalls appends a response that invokes the given tools. Arguments
// are marshaled for the caller so tests read as name/args pairs.
func (c *ScriptedLLMClient) AddToolCalls(calls ...ScriptedToolCall) *ScriptedLLMClient {
	chunks := make([]agent.Chunk, 0, len(calls)+1)
	for i, call := range calls {
		args := call.Args
		if args == nil {
			args = map[string]interface{}{}
		}
		raw, err := json.Marshal(args)
		if err != nil {
			panic(fmt.Sprintf("unmarshalable scripted tool args: %v", err))
		}
		chunks = append(chunks, &agent.ToolCallChunk{
			CallID:    fmt.Sprintf("call-%d", i+1),
			Name:      call.Name,
			Arguments: string(raw),
		})
	}
	chunks = append(chunks, &agent.UsageChunk{InputTokens: 100, OutputTokens: 25, TotalTokens: 125})
	return c.Add(LLMScriptEntry{Chunks: chunks})
}

// ScriptedToolCall is one tool invocation in an AddToolCalls step.
type ScriptedToolCall struct {
	Name string
	Args map[string]interface{}
}

// Generate implements agent.LLMClient.
func (c *ScriptedLLMClient) Generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	c.mu.Lock()
	c.captured = append(c.captured, input)
	if c.index >= len(c.entries) {
		idx, total := c.index, len(c.entries)
		c.mu.Unlock()
		return nil, fmt.Errorf("scripted LLM exhausted: call %d of %d scripted", idx+1, total)
	}
	entry := c.entries[c.index]
	c.index++
	c.mu.Unlock()

	if entry.BlockUntilCancelled {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		ch := make(chan agent.Chunk)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch, nil
	}

	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
		case <-ctx.Done():
			ch := make(chan agent.Chunk)
			close(ch)
			return ch, nil
		}
	}

	if entry.Err != nil {
		return nil, entry.Err
	}

	chunks := entry.Chunks
	if len(chunks) == 0 && entry.Text != "" {
		chunks = []agent.Chunk{
			&agent.TextChunk{Content: entry.Text},
			&agent.UsageChunk{InputTokens: 100, OutputTokens: 20, TotalTokens: 120},
		}
	}

	ch := make(chan agent.Chunk, len(chunks))
	for _, chunk := range chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

// Close implements agent.LLMClient.
func (c *ScriptedLLMClient) Close() error { return nil }

// CallCount returns how many Generate calls were made.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.captured)
}

// Call returns the input of the i-th Generate call.
func (c *ScriptedLLMClient) Call(i int) *agent.GenerateInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.captured) {
		return nil
	}
	return c.captured[i]
}
