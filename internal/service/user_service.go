package service

import (
	"context"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

// UserService exposes read-only user projections.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// ListPublic returns the public view of every account. Department and access
// level come from the bound profile and are empty when the profile is
// missing.
func (s *UserService) ListPublic(ctx context.Context) ([]domain.PublicUser, error) {
	return s.users.ListPublic(ctx)
}
