package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/inboundjob"
	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/ticketmessage"
	"github.com/vendrahq/vendra/pkg/models"
)

// SessionService manages conversation sessions and their message log. At
// most one open session exists per (business, customer, platform); the
// partial unique index in pkg/database backs that up under concurrency.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// GetOrOpen returns the open session for the scope, creating one in
// bot_active when none exists. Closed sessions are never resumed.
func (s *SessionService) GetOrOpen(ctx context.Context, scope models.SessionScope) (*ent.ChatSession, error) {
	if err := validateSessionScope(scope); err != nil {
		return nil, err
	}

	session, err := s.findOpen(ctx, scope)
	if err == nil {
		return session, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	session, err = s.client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetBusinessID(scope.BusinessID).
		SetCustomerID(scope.CustomerID).
		SetPlatform(scope.Platform).
		SetState(chatsession.StateBotActive).
		Save(ctx)
	if err != nil {
		// Lost the race to a concurrent opener; theirs is the open session
		if ent.IsConstraintError(err) {
			session, err = s.findOpen(ctx, scope)
			if err != nil {
				return nil, fmt.Errorf("failed to query session: %w", err)
			}
			return session, nil
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

func (s *SessionService) findOpen(ctx context.Context, scope models.SessionScope) (*ent.ChatSession, error) {
	return s.client.ChatSession.Query().
		Where(
			chatsession.BusinessIDEQ(scope.BusinessID),
			chatsession.CustomerIDEQ(scope.CustomerID),
			chatsession.PlatformEQ(scope.Platform),
			chatsession.StateNEQ(chatsession.StateClosed),
		).
		Only(ctx)
}

// Get retrieves a session by ID
func (s *SessionService) Get(ctx context.Context, sessionID string) (*ent.ChatSession, error) {
	session, err := s.client.ChatSession.Query().
		Where(chatsession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// Touch bumps the session's last activity timestamp
func (s *SessionService) Touch(ctx context.Context, sessionID string) error {
	n, err := s.client.ChatSession.Update().
		Where(chatsession.IDEQ(sessionID)).
		SetLastActivityAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendMessage appends one message to the session thread and bumps the
// session's last activity in the same transaction.
func (s *SessionService) AppendMessage(ctx context.Context, req models.AppendMessageRequest) (*ent.ChatMessage, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Content == "" && req.MediaURL == "" {
		return nil, NewValidationError("content", "required")
	}
	if err := chatmessage.SenderTypeValidator(req.SenderType); err != nil {
		return nil, NewValidationError("sender_type", "unknown sender type")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.ChatSession.Query().
		Where(chatsession.IDEQ(req.SessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	builder := tx.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(session.ID).
		SetSenderType(req.SenderType).
		SetContent(req.Content)
	if req.MediaURL != "" {
		builder.SetMediaURL(req.MediaURL)
	}
	if req.ProviderMessageID != "" {
		builder.SetProviderMessageID(req.ProviderMessageID)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	if err := session.Update().SetLastActivityAt(time.Now()).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to touch session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return msg, nil
}

// AppendInbound records one inbound customer message and its queue job in a
// single transaction, so a message is never persisted without the job that
// will process it. The caller fires the NOTIFY after commit.
func (s *SessionService) AppendInbound(ctx context.Context, req models.AppendMessageRequest) (*ent.ChatMessage, *ent.InboundJob, error) {
	if req.SessionID == "" {
		return nil, nil, NewValidationError("session_id", "required")
	}
	if req.Content == "" && req.MediaURL == "" {
		return nil, nil, NewValidationError("content", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.ChatSession.Query().
		Where(chatsession.IDEQ(req.SessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to query session: %w", err)
	}

	builder := tx.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(session.ID).
		SetSenderType(chatmessage.SenderTypeCustomer).
		SetContent(req.Content)
	if req.MediaURL != "" {
		builder.SetMediaURL(req.MediaURL)
	}
	if req.ProviderMessageID != "" {
		builder.SetProviderMessageID(req.ProviderMessageID)
	}
	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create message: %w", err)
	}

	job, err := tx.InboundJob.Create().
		SetID(uuid.New().String()).
		SetBusinessID(session.BusinessID).
		SetSessionID(session.ID).
		SetMessageID(msg.ID).
		SetStatus(inboundjob.StatusPending).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	if err := session.Update().SetLastActivityAt(time.Now()).Exec(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to touch session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return msg, job, nil
}

// Lock hands the conversation over to a human: the session flips to
// human_locked and a high-priority support ticket is opened in the same
// transaction. Both threads get a system note so either side can see when
// the handover happened.
func (s *SessionService) Lock(ctx context.Context, sessionID, reason, employeeID string) (*ent.ChatSession, *ent.SupportTicket, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.ChatSession.Query().
		Where(chatsession.IDEQ(sessionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to lock session: %w", err)
	}

	switch session.State {
	case chatsession.StateHumanLocked:
		return nil, nil, ErrSessionLocked
	case chatsession.StateClosed:
		return nil, nil, ErrInvalidTransition
	}

	update := session.Update().SetState(chatsession.StateHumanLocked)
	if employeeID != "" {
		update.SetAssignedEmployeeID(employeeID)
	}
	locked, err := update.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update session: %w", err)
	}

	subject := "Conversation handover"
	if reason != "" {
		subject = reason
	}
	ticketBuilder := tx.SupportTicket.Create().
		SetID(uuid.New().String()).
		SetBusinessID(session.BusinessID).
		SetCustomerID(session.CustomerID).
		SetSessionID(session.ID).
		SetSubject(subject).
		SetStatus(supportticket.StatusOpen).
		SetPriority(supportticket.PriorityHigh)
	if employeeID != "" {
		ticketBuilder.SetAssignedEmployeeID(employeeID)
	}
	ticket, err := ticketBuilder.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	note := "Conversation handed over to a human agent."
	if reason != "" {
		note = fmt.Sprintf("Conversation handed over to a human agent: %s", reason)
	}
	if err := tx.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(session.ID).
		SetSenderType(chatmessage.SenderTypeSystem).
		SetContent(note).
		Exec(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to create message: %w", err)
	}
	if err := tx.TicketMessage.Create().
		SetID(uuid.New().String()).
		SetTicketID(ticket.ID).
		SetSenderType(ticketmessage.SenderTypeSystem).
		SetContent(note).
		Exec(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to create ticket message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return locked, ticket, nil
}

// Takeover assigns an employee to an already locked session
func (s *SessionService) Takeover(ctx context.Context, sessionID, employeeID string) (*ent.ChatSession, error) {
	if employeeID == "" {
		return nil, NewValidationError("employee_id", "required")
	}

	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != chatsession.StateHumanLocked {
		return nil, ErrInvalidTransition
	}

	updated, err := session.Update().
		SetAssignedEmployeeID(employeeID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return updated, nil
}

// Release returns a human-locked session to the bot and clears the
// assignment. A system note marks the switch-back.
func (s *SessionService) Release(ctx context.Context, sessionID string) (*ent.ChatSession, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.ChatSession.Query().
		Where(chatsession.IDEQ(sessionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}
	if session.State != chatsession.StateHumanLocked {
		return nil, ErrInvalidTransition
	}

	updated, err := session.Update().
		SetState(chatsession.StateBotActive).
		ClearAssignedEmployeeID().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if err := tx.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(session.ID).
		SetSenderType(chatmessage.SenderTypeSystem).
		SetContent("Conversation returned to the assistant.").
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

// Close closes a session. Closing an already closed session is a no-op.
func (s *SessionService) Close(ctx context.Context, sessionID string) (*ent.ChatSession, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == chatsession.StateClosed {
		return session, nil
	}

	updated, err := session.Update().
		SetState(chatsession.StateClosed).
		ClearAssignedEmployeeID().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to close session: %w", err)
	}
	return updated, nil
}

// CloseIdle closes open sessions whose last activity predates the cutoff,
// up to limit rows per call. It returns the number of sessions closed.
func (s *SessionService) CloseIdle(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	if limit <= 0 {
		limit = 100
	}

	ids, err := s.client.ChatSession.Query().
		Where(
			chatsession.StateNEQ(chatsession.StateClosed),
			chatsession.LastActivityAtLT(cutoff),
		).
		Order(ent.Asc(chatsession.FieldLastActivityAt)).
		Limit(limit).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query idle sessions: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := s.client.ChatSession.Update().
		Where(chatsession.IDIn(ids...)).
		SetState(chatsession.StateClosed).
		ClearAssignedEmployeeID().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to close idle sessions: %w", err)
	}
	return n, nil
}

// List lists sessions with filtering and pagination
func (s *SessionService) List(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.ChatSession.Query()

	if filters.BusinessID != "" {
		query = query.Where(chatsession.BusinessIDEQ(filters.BusinessID))
	}
	if filters.CustomerID != "" {
		query = query.Where(chatsession.CustomerIDEQ(filters.CustomerID))
	}
	if filters.State != "" {
		query = query.Where(chatsession.StateEQ(filters.State))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(chatsession.FieldLastActivityAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Messages lists a session's messages in chronological order
func (s *SessionService) Messages(ctx context.Context, sessionID string, limit, offset int) ([]*ent.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.SessionIDEQ(sessionID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// RecentMessages returns the last n messages of a session in chronological
// order, for prompt context assembly.
func (s *SessionService) RecentMessages(ctx context.Context, sessionID string, n int) ([]*ent.ChatMessage, error) {
	if n <= 0 {
		n = 20
	}
	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.SessionIDEQ(sessionID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	// Reverse into chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func validateSessionScope(scope models.SessionScope) error {
	if scope.BusinessID == "" {
		return NewValidationError("business_id", "required")
	}
	if scope.CustomerID == "" {
		return NewValidationError("customer_id", "required")
	}
	if err := chatsession.PlatformValidator(scope.Platform); err != nil {
		return NewValidationError("platform", "unknown platform")
	}
	return nil
}
