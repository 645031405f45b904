package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/ticketmessage"
	"github.com/vendrahq/vendra/pkg/models"
)

// TicketService manages support tickets and their message threads
type TicketService struct {
	client *ent.Client
}

// NewTicketService creates a new TicketService
func NewTicketService(client *ent.Client) *TicketService {
	return &TicketService{client: client}
}

// Open creates a support ticket, seeding the thread with an initial message
// when one is supplied.
func (s *TicketService) Open(ctx context.Context, req models.OpenTicketRequest) (*ent.SupportTicket, error) {
	if req.BusinessID == "" {
		return nil, NewValidationError("business_id", "required")
	}
	if req.CustomerID == "" {
		return nil, NewValidationError("customer_id", "required")
	}
	if req.Priority != "" {
		if err := supportticket.PriorityValidator(req.Priority); err != nil {
			return nil, NewValidationError("priority", "unknown priority")
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.SupportTicket.Create().
		SetID(uuid.New().String()).
		SetBusinessID(req.BusinessID).
		SetCustomerID(req.CustomerID).
		SetStatus(supportticket.StatusOpen)
	if req.SessionID != "" {
		builder.SetSessionID(req.SessionID)
	}
	if req.RelatedOrderID != "" {
		builder.SetRelatedOrderID(req.RelatedOrderID)
	}
	if req.RelatedReservationID != "" {
		builder.SetRelatedReservationID(req.RelatedReservationID)
	}
	if req.Subject != "" {
		builder.SetSubject(req.Subject)
	}
	if req.Priority != "" {
		builder.SetPriority(req.Priority)
	}

	ticket, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	if req.InitialMessage != "" {
		sender := req.InitialSender
		if sender == "" {
			sender = ticketmessage.SenderTypeCustomer
		}
		if err := ticketmessage.SenderTypeValidator(sender); err != nil {
			return nil, NewValidationError("initial_sender", "unknown sender type")
		}
		if err := tx.TicketMessage.Create().
			SetID(uuid.New().String()).
			SetTicketID(ticket.ID).
			SetSenderType(sender).
			SetContent(req.InitialMessage).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to create ticket message: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return ticket, nil
}

// Get retrieves a ticket by ID
func (s *TicketService) Get(ctx context.Context, ticketID string) (*ent.SupportTicket, error) {
	ticket, err := s.client.SupportTicket.Query().
		Where(supportticket.IDEQ(ticketID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return ticket, nil
}

// AddMessage appends a message to an open ticket's thread
func (s *TicketService) AddMessage(ctx context.Context, req models.AddTicketMessageRequest) (*ent.TicketMessage, error) {
	if req.TicketID == "" {
		return nil, NewValidationError("ticket_id", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	if err := ticketmessage.SenderTypeValidator(req.SenderType); err != nil {
		return nil, NewValidationError("sender_type", "unknown sender type")
	}

	ticket, err := s.Get(ctx, req.TicketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == supportticket.StatusClosed {
		return nil, ErrInvalidTransition
	}

	msg, err := s.client.TicketMessage.Create().
		SetID(uuid.New().String()).
		SetTicketID(ticket.ID).
		SetSenderType(req.SenderType).
		SetContent(req.Content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket message: %w", err)
	}
	return msg, nil
}

// UpdateStatus changes a ticket's status; closed tickets are terminal
func (s *TicketService) UpdateStatus(ctx context.Context, ticketID string, status supportticket.Status) (*ent.SupportTicket, error) {
	if err := supportticket.StatusValidator(status); err != nil {
		return nil, NewValidationError("status", "unknown status")
	}

	ticket, err := s.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == supportticket.StatusClosed {
		return nil, ErrInvalidTransition
	}

	updated, err := ticket.Update().SetStatus(status).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	return updated, nil
}

// Assign assigns an employee to a ticket
func (s *TicketService) Assign(ctx context.Context, ticketID, employeeID string) (*ent.SupportTicket, error) {
	if employeeID == "" {
		return nil, NewValidationError("employee_id", "required")
	}

	ticket, err := s.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == supportticket.StatusClosed {
		return nil, ErrInvalidTransition
	}

	updated, err := ticket.Update().
		SetAssignedEmployeeID(employeeID).
		SetStatus(supportticket.StatusInProgress).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	return updated, nil
}

// List lists tickets with filtering and pagination
func (s *TicketService) List(ctx context.Context, filters models.TicketFilters) (*models.TicketListResponse, error) {
	query := s.client.SupportTicket.Query()

	if filters.BusinessID != "" {
		query = query.Where(supportticket.BusinessIDEQ(filters.BusinessID))
	}
	if filters.CustomerID != "" {
		query = query.Where(supportticket.CustomerIDEQ(filters.CustomerID))
	}
	if filters.SessionID != "" {
		query = query.Where(supportticket.SessionIDEQ(filters.SessionID))
	}
	if filters.Status != "" {
		query = query.Where(supportticket.StatusEQ(filters.Status))
	}
	if filters.Priority != "" {
		query = query.Where(supportticket.PriorityEQ(filters.Priority))
	}
	if filters.AssignedEmployeeID != "" {
		query = query.Where(supportticket.AssignedEmployeeIDEQ(filters.AssignedEmployeeID))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	tickets, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(supportticket.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &models.TicketListResponse{
		Tickets:    tickets,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Messages lists a ticket's thread in chronological order
func (s *TicketService) Messages(ctx context.Context, ticketID string) ([]*ent.TicketMessage, error) {
	messages, err := s.client.TicketMessage.Query().
		Where(ticketmessage.TicketIDEQ(ticketID)).
		Order(ent.Asc(ticketmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket messages: %w", err)
	}
	return messages, nil
}
