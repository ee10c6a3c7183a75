package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

var errNotImplemented = errors.New("not implemented")

type mockTicketRepo struct {
	createFunc      func(ctx context.Context, ticket *domain.Ticket) error
	updateFunc      func(ctx context.Context, ticket *domain.Ticket) error
	getByIDFunc     func(ctx context.Context, id string) (*domain.Ticket, error)
	listAllFunc     func(ctx context.Context) ([]domain.Ticket, error)
	listByOwnerFunc func(ctx context.Context, ownerID string) ([]domain.Ticket, error)
}

func (m *mockTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, ticket)
	}
	return errNotImplemented
}

func (m *mockTicketRepo) Update(ctx context.Context, ticket *domain.Ticket) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, ticket)
	}
	return errNotImplemented
}

func (m *mockTicketRepo) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockTicketRepo) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockTicketRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Ticket, error) {
	if m.listByOwnerFunc != nil {
		return m.listByOwnerFunc(ctx, ownerID)
	}
	return nil, errNotImplemented
}

type mockRoleRepo struct {
	grantFunc   func(ctx context.Context, userID string, role domain.Role) error
	hasRoleFunc func(ctx context.Context, userID string, role domain.Role) (bool, error)
}

func (m *mockRoleRepo) Grant(ctx context.Context, userID string, role domain.Role) error {
	if m.grantFunc != nil {
		return m.grantFunc(ctx, userID, role)
	}
	return errNotImplemented
}

func (m *mockRoleRepo) HasRole(ctx context.Context, userID string, role domain.Role) (bool, error) {
	if m.hasRoleFunc != nil {
		return m.hasRoleFunc(ctx, userID, role)
	}
	return false, errNotImplemented
}

type mockUserRepo struct {
	createFunc        func(ctx context.Context, user *domain.User) error
	updateFunc        func(ctx context.Context, user *domain.User) error
	getByIDFunc       func(ctx context.Context, id string) (*domain.User, error)
	getByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	listPublicFunc    func(ctx context.Context) ([]domain.PublicUser, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errNotImplemented
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return errNotImplemented
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepo) ListPublic(ctx context.Context) ([]domain.PublicUser, error) {
	if m.listPublicFunc != nil {
		return m.listPublicFunc(ctx)
	}
	return nil, errNotImplemented
}

type mockProfileRepo struct {
	getByUserIDFunc func(ctx context.Context, userID string) (*domain.Profile, error)
	updateFunc      func(ctx context.Context, profile *domain.Profile) error
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.getByUserIDFunc != nil {
		return m.getByUserIDFunc(ctx, userID)
	}
	return nil, errNotImplemented
}

func (m *mockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, profile)
	}
	return errNotImplemented
}

type mockLogRepo struct {
	createFunc func(ctx context.Context, entry *domain.LogEntry) error
	listFunc   func(ctx context.Context) ([]domain.LogEntry, error)
}

func (m *mockLogRepo) Create(ctx context.Context, entry *domain.LogEntry) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, entry)
	}
	return errNotImplemented
}

func (m *mockLogRepo) List(ctx context.Context) ([]domain.LogEntry, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errNotImplemented
}

type mockResetRepo struct {
	createFunc     func(ctx context.Context, token *repository.PasswordResetToken) error
	getByTokenFunc func(ctx context.Context, token string) (*repository.PasswordResetToken, error)
	markUsedFunc   func(ctx context.Context, id string) error
}

func (m *mockResetRepo) Create(ctx context.Context, token *repository.PasswordResetToken) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, token)
	}
	return errNotImplemented
}

func (m *mockResetRepo) GetByToken(ctx context.Context, token string) (*repository.PasswordResetToken, error) {
	if m.getByTokenFunc != nil {
		return m.getByTokenFunc(ctx, token)
	}
	return nil, errNotImplemented
}

func (m *mockResetRepo) MarkUsed(ctx context.Context, id string) error {
	if m.markUsedFunc != nil {
		return m.markUsedFunc(ctx, id)
	}
	return errNotImplemented
}

func stringPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
