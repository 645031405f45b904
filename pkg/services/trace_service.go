package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/llmtrace"
	"github.com/vendrahq/vendra/pkg/models"
)

// TraceService persists per-turn model traces for debugging and audit
type TraceService struct {
	client *ent.Client
}

// NewTraceService creates a new TraceService
func NewTraceService(client *ent.Client) *TraceService {
	return &TraceService{client: client}
}

// Record persists one turn's trace
func (s *TraceService) Record(ctx context.Context, req models.RecordTraceRequest) (*ent.LLMTrace, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.BusinessID == "" {
		return nil, NewValidationError("business_id", "required")
	}
	if req.TurnID == "" {
		return nil, NewValidationError("turn_id", "required")
	}

	builder := s.client.LLMTrace.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetBusinessID(req.BusinessID).
		SetTurnID(req.TurnID).
		SetIterations(req.Iterations).
		SetInputTokens(req.InputTokens).
		SetOutputTokens(req.OutputTokens).
		SetDurationMs(req.DurationMs)
	if req.Model != "" {
		builder.SetModel(req.Model)
	}
	if len(req.RequestMessages) > 0 {
		builder.SetRequestMessages(req.RequestMessages)
	}
	if req.FinalText != "" {
		builder.SetFinalText(req.FinalText)
	}
	if len(req.ToolCalls) > 0 {
		builder.SetToolCalls(req.ToolCalls)
	}
	if req.Error != "" {
		builder.SetError(req.Error)
	}

	trace, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record trace: %w", err)
	}
	return trace, nil
}

// ListForSession lists a session's traces, most recent first
func (s *TraceService) ListForSession(ctx context.Context, sessionID string, limit int) ([]*ent.LLMTrace, error) {
	if limit <= 0 {
		limit = 20
	}
	traces, err := s.client.LLMTrace.Query().
		Where(llmtrace.SessionIDEQ(sessionID)).
		Order(ent.Desc(llmtrace.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}
	return traces, nil
}
