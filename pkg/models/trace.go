package models

// RecordTraceRequest captures one conversational turn for audit: what was
// sent to the model, what came back, and which tools ran. Content must be
// PII-masked by the caller before recording.
type RecordTraceRequest struct {
	SessionID       string                   `json:"session_id"`
	BusinessID      string                   `json:"business_id"`
	TurnID          string                   `json:"turn_id"`
	Model           string                   `json:"model,omitempty"`
	RequestMessages []map[string]interface{} `json:"request_messages,omitempty"`
	FinalText       string                   `json:"final_text,omitempty"`
	ToolCalls       []map[string]interface{} `json:"tool_calls,omitempty"`
	Iterations      int                      `json:"iterations"`
	InputTokens     int                      `json:"input_tokens"`
	OutputTokens    int                      `json:"output_tokens"`
	DurationMs      int64                    `json:"duration_ms"`
	Error           string                   `json:"error,omitempty"`
}
