package service

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// AuditService appends to and reads the user action journal.
type AuditService struct {
	entries    repository.LogHistoryRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(entries repository.LogHistoryRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{entries: entries, dispatcher: dispatcher, logger: logger}
}

// Record appends an entry. The store assigns the timestamp.
func (s *AuditService) Record(ctx context.Context, userID, action, details string) (*domain.LogEntry, error) {
	fields := map[string][]string{}
	if strings.TrimSpace(userID) == "" {
		fields["user"] = append(fields["user"], "this field is required")
	}
	if strings.TrimSpace(action) == "" {
		fields["action"] = append(fields["action"], "this field is required")
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError("required fields missing", apperrors.FieldErrors(fields))
	}

	entry := &domain.LogEntry{
		UserID:  userID,
		Action:  action,
		Details: details,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns all entries newest first. Any authenticated principal may
// read the journal; no ownership filter applies here.
func (s *AuditService) List(ctx context.Context) ([]domain.LogEntry, error) {
	return s.entries.List(ctx)
}

// RegisterHandlers subscribes the recorder to domain events so the journal
// fills as a side effect of actions elsewhere in the system.
func (s *AuditService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventUserRegistered, s.handleEvent)
	s.dispatcher.Subscribe(events.EventUserLoggedIn, s.handleEvent)
	s.dispatcher.Subscribe(events.EventTicketCreated, s.handleEvent)
	s.dispatcher.Subscribe(events.EventTicketUpdated, s.handleEvent)
	s.dispatcher.Subscribe(events.EventProfileUpdated, s.handleEvent)
}

func (s *AuditService) handleEvent(ctx context.Context, event events.Event) error {
	details := ""
	if event.Payload != nil {
		if raw, err := json.Marshal(event.Payload); err == nil {
			details = string(raw)
		}
	}
	if _, err := s.Record(ctx, event.UserID, string(event.Type), details); err != nil {
		if s.logger != nil {
			s.logger.Warn("audit record failed",
				zap.String("event_type", string(event.Type)),
				zap.Error(err))
		}
		return err
	}
	return nil
}
