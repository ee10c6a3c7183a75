package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret",
			AccessTokenTTLMinutes:   15,
			PasswordResetTTLMinutes: 30,
			BcryptCost:              bcrypt.MinCost,
		},
		Authz: config.AuthzConfig{
			AdminSeedUsernames: []string{"teamop", "teamtech"},
		},
	}
}

func newAuthService(users *mockUserRepo, roles *mockRoleRepo, resets *mockResetRepo) *AuthService {
	return NewAuthService(testConfig(), AuthDependencies{
		UserRepo:          users,
		RoleRepo:          roles,
		PasswordResetRepo: resets,
	})
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	var stored *domain.User
	users := &mockUserRepo{
		getByUsernameFunc: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, pgx.ErrNoRows
		},
		createFunc: func(_ context.Context, user *domain.User) error {
			user.ID = "u-1"
			stored = user
			return nil
		},
	}
	svc := newAuthService(users, &mockRoleRepo{}, &mockResetRepo{})

	user, token, exp, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	require.NotNil(t, stored)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

func TestRegisterDuplicateUsernameConflict(t *testing.T) {
	users := &mockUserRepo{
		getByUsernameFunc: func(_ context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: "u-1", Username: username}, nil
		},
	}
	svc := newAuthService(users, &mockRoleRepo{}, &mockResetRepo{})

	_, _, _, err := svc.Register(context.Background(), "alice", "", "secret")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Contains(t, domainErr.Details, "username")
}

func TestRegisterRacingInsertConflict(t *testing.T) {
	// the pre-check misses but the unique constraint still catches the race
	users := &mockUserRepo{
		getByUsernameFunc: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, pgx.ErrNoRows
		},
		createFunc: func(_ context.Context, _ *domain.User) error {
			return repository.ErrUsernameTaken
		},
	}
	svc := newAuthService(users, &mockRoleRepo{}, &mockResetRepo{})

	_, _, _, err := svc.Register(context.Background(), "alice", "", "secret")
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newAuthService(&mockUserRepo{}, &mockRoleRepo{}, &mockResetRepo{})

	_, _, _, err := svc.Register(context.Background(), "  ", "", "")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "username")
	assert.Contains(t, domainErr.Details, "password")
}

func TestRegisterSeedsAdminRole(t *testing.T) {
	granted := map[string]domain.Role{}
	users := &mockUserRepo{
		getByUsernameFunc: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, pgx.ErrNoRows
		},
		createFunc: func(_ context.Context, user *domain.User) error {
			user.ID = "u-" + user.Username
			return nil
		},
	}
	roles := &mockRoleRepo{
		grantFunc: func(_ context.Context, userID string, role domain.Role) error {
			granted[userID] = role
			return nil
		},
	}
	svc := newAuthService(users, roles, &mockResetRepo{})

	_, _, _, err := svc.Register(context.Background(), "teamop", "", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTicketAdmin, granted["u-teamop"])

	_, _, _, err = svc.Register(context.Background(), "bob", "", "secret")
	require.NoError(t, err)
	assert.NotContains(t, granted, "u-bob")
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepo{
		getByUsernameFunc: func(_ context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: "u-1", Username: username, PasswordHash: string(hash)}, nil
		},
	}
	svc := newAuthService(users, &mockRoleRepo{}, &mockResetRepo{})

	_, _, _, err = svc.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestLoginUnknownUser(t *testing.T) {
	users := &mockUserRepo{
		getByUsernameFunc: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := newAuthService(users, &mockRoleRepo{}, &mockResetRepo{})

	_, _, _, err := svc.Login(context.Background(), "ghost", "secret")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestRefreshRoundTrip(t *testing.T) {
	users := &mockUserRepo{
		getByUsernameFunc: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, pgx.ErrNoRows
		},
		createFunc: func(_ context.Context, user *domain.User) error {
			user.ID = "u-1"
			return nil
		},
	}
	svc := newAuthService(users, &mockRoleRepo{}, &mockResetRepo{})

	_, token, _, err := svc.Register(context.Background(), "alice", "", "secret")
	require.NoError(t, err)

	refreshed, exp, err := svc.Refresh(context.Background(), token)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed)
	assert.True(t, exp.After(time.Now()))

	_, _, err = svc.Refresh(context.Background(), "garbage")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestConfirmPasswordResetSingleUse(t *testing.T) {
	used := time.Now()
	resets := &mockResetRepo{
		getByTokenFunc: func(_ context.Context, _ string) (*repository.PasswordResetToken, error) {
			return &repository.PasswordResetToken{
				ID:        "r-1",
				UserID:    "u-1",
				ExpiresAt: time.Now().Add(time.Hour),
				UsedAt:    &used,
			}, nil
		},
	}
	svc := newAuthService(&mockUserRepo{}, &mockRoleRepo{}, resets)

	err := svc.ConfirmPasswordReset(context.Background(), "tok", "newpass")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}
