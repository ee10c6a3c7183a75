package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/authz"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// TicketService gates every ticket read and write by principal identity.
// Holders of the ticket-admin role see and modify all tickets; everyone else
// only their own. A ticket outside the caller's visible set is reported as
// not found, never as forbidden.
type TicketService struct {
	tickets    repository.TicketRepository
	checker    *authz.Checker
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Checker    *authz.Checker
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes ticket creation payload. Any owner supplied by
// the caller is ignored; the owner is always the creating principal.
type TicketCreateInput struct {
	TicketNo    string
	Subject     string
	Status      string
	SupportBy   string
	Rate        int
	Category    string
	Type        string
	Priority    string
	Description string
}

// TicketPatch carries a partial update. Nil fields are left unchanged.
// Owner and id are not patchable.
type TicketPatch struct {
	TicketNo    *string
	Subject     *string
	Status      *string
	SupportBy   *string
	Date        *time.Time
	Rate        *int
	Category    *string
	Type        *string
	Priority    *string
	Description *string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		checker:    deps.Checker,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket creates a ticket owned by the calling user.
func (s *TicketService) CreateTicket(ctx context.Context, userID string, input TicketCreateInput) (*domain.Ticket, error) {
	fields := map[string][]string{}
	if strings.TrimSpace(input.TicketNo) == "" {
		fields["ticketNo"] = append(fields["ticketNo"], "this field is required")
	}
	if strings.TrimSpace(input.Subject) == "" {
		fields["subject"] = append(fields["subject"], "this field is required")
	}
	if strings.TrimSpace(input.Status) == "" {
		fields["status"] = append(fields["status"], "this field is required")
	}
	if strings.TrimSpace(input.SupportBy) == "" {
		fields["supportBy"] = append(fields["supportBy"], "this field is required")
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError("required fields missing", apperrors.FieldErrors(fields))
	}

	ticket := &domain.Ticket{
		OwnerID:     userID,
		TicketNo:    strings.TrimSpace(input.TicketNo),
		Subject:     strings.TrimSpace(input.Subject),
		Status:      input.Status,
		SupportBy:   input.SupportBy,
		Rate:        input.Rate,
		Category:    input.Category,
		Type:        input.Type,
		Priority:    input.Priority,
		Description: input.Description,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:   events.EventTicketCreated,
		UserID: userID,
		Payload: events.TicketCreatedPayload{
			TicketID: ticket.ID,
			TicketNo: ticket.TicketNo,
			Subject:  ticket.Subject,
		},
	})
	return ticket, nil
}

// ListVisible returns all tickets for ticket-admins and owned tickets for
// everyone else.
func (s *TicketService) ListVisible(ctx context.Context, userID string) ([]domain.Ticket, error) {
	admin, err := s.checker.HasRole(ctx, userID, domain.RoleTicketAdmin)
	if err != nil {
		return nil, err
	}
	if admin {
		return s.tickets.ListAll(ctx)
	}
	return s.tickets.ListByOwner(ctx, userID)
}

// GetTicket fetches a single ticket within the caller's visible set.
func (s *TicketService) GetTicket(ctx context.Context, userID, ticketID string) (*domain.Ticket, error) {
	return s.visibleTicket(ctx, userID, ticketID)
}

// UpdateTicket applies a partial update to a visible ticket. Owner and id
// never change. Concurrent writers are not serialized; the last write wins.
func (s *TicketService) UpdateTicket(ctx context.Context, userID, ticketID string, patch TicketPatch) (*domain.Ticket, error) {
	ticket, err := s.visibleTicket(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}

	changed := applyTicketPatch(ticket, patch)
	if len(changed) == 0 {
		return ticket, nil
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", nil)
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:   events.EventTicketUpdated,
		UserID: userID,
		Payload: events.TicketUpdatedPayload{
			TicketID: ticket.ID,
			TicketNo: ticket.TicketNo,
			Changed:  changed,
		},
	})
	return ticket, nil
}

func (s *TicketService) visibleTicket(ctx context.Context, userID, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", nil)
		}
		return nil, err
	}
	if ticket.OwnerID == userID {
		return ticket, nil
	}
	admin, err := s.checker.HasRole(ctx, userID, domain.RoleTicketAdmin)
	if err != nil {
		return nil, err
	}
	if !admin {
		// not-found rather than forbidden, so existence does not leak
		return nil, apperrors.NewNotFound("ticket", nil)
	}
	return ticket, nil
}

func applyTicketPatch(ticket *domain.Ticket, patch TicketPatch) []string {
	var changed []string
	if patch.TicketNo != nil {
		ticket.TicketNo = *patch.TicketNo
		changed = append(changed, "ticketNo")
	}
	if patch.Subject != nil {
		ticket.Subject = *patch.Subject
		changed = append(changed, "subject")
	}
	if patch.Status != nil {
		ticket.Status = *patch.Status
		changed = append(changed, "status")
	}
	if patch.SupportBy != nil {
		ticket.SupportBy = *patch.SupportBy
		changed = append(changed, "supportBy")
	}
	if patch.Date != nil {
		ticket.Date = *patch.Date
		changed = append(changed, "date")
	}
	if patch.Rate != nil {
		ticket.Rate = *patch.Rate
		changed = append(changed, "rate")
	}
	if patch.Category != nil {
		ticket.Category = *patch.Category
		changed = append(changed, "category")
	}
	if patch.Type != nil {
		ticket.Type = *patch.Type
		changed = append(changed, "type")
	}
	if patch.Priority != nil {
		ticket.Priority = *patch.Priority
		changed = append(changed, "priority")
	}
	if patch.Description != nil {
		ticket.Description = *patch.Description
		changed = append(changed, "description")
	}
	return changed
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
