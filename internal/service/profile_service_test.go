package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

func TestGetOwnMissingProfile(t *testing.T) {
	profiles := &mockProfileRepo{
		getByUserIDFunc: func(_ context.Context, _ string) (*domain.Profile, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewProfileService(profiles, nil)

	_, err := svc.GetOwn(context.Background(), "u-1")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestUpdateOwnPartialPatch(t *testing.T) {
	var updated *domain.Profile
	profiles := &mockProfileRepo{
		getByUserIDFunc: func(_ context.Context, userID string) (*domain.Profile, error) {
			return &domain.Profile{ID: "p-1", UserID: userID, Contact: "555", RealName: "Alice"}, nil
		},
		updateFunc: func(_ context.Context, profile *domain.Profile) error {
			updated = profile
			return nil
		},
	}
	svc := NewProfileService(profiles, nil)

	profile, err := svc.UpdateOwn(context.Background(), "u-1", ProfilePatch{
		Department: stringPtr("Sales"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sales", profile.Department)
	// untouched fields survive a partial patch
	assert.Equal(t, "555", profile.Contact)
	assert.Equal(t, "Alice", profile.RealName)
	assert.Equal(t, "u-1", updated.UserID)
}

func TestUpdateOwnFieldValidation(t *testing.T) {
	svc := NewProfileService(&mockProfileRepo{}, nil)

	long := strings.Repeat("x", 101)
	_, err := svc.UpdateOwn(context.Background(), "u-1", ProfilePatch{
		Contact:    stringPtr(long),
		Department: stringPtr("ok"),
		RealName:   stringPtr(long),
	})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "contact")
	assert.Contains(t, domainErr.Details, "realName")
	assert.NotContains(t, domainErr.Details, "department")
}

func TestUpdateOwnStoreFailureIsGeneric(t *testing.T) {
	profiles := &mockProfileRepo{
		getByUserIDFunc: func(_ context.Context, userID string) (*domain.Profile, error) {
			return &domain.Profile{ID: "p-1", UserID: userID}, nil
		},
		updateFunc: func(_ context.Context, _ *domain.Profile) error {
			return errors.New("column vanished")
		},
	}
	svc := NewProfileService(profiles, nil)

	_, err := svc.UpdateOwn(context.Background(), "u-1", ProfilePatch{
		Contact: stringPtr("555"),
	})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	// internals are wrapped, not surfaced
	assert.Equal(t, "internal server error", domainErr.Message)
}

func TestUpdateOwnEmptyPatchSkipsStore(t *testing.T) {
	profiles := &mockProfileRepo{
		getByUserIDFunc: func(_ context.Context, userID string) (*domain.Profile, error) {
			return &domain.Profile{ID: "p-1", UserID: userID}, nil
		},
		updateFunc: func(_ context.Context, _ *domain.Profile) error {
			t.Fatal("empty patch must not hit the store")
			return nil
		},
	}
	svc := NewProfileService(profiles, nil)

	_, err := svc.UpdateOwn(context.Background(), "u-1", ProfilePatch{})
	require.NoError(t, err)
}
