package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

const profileFieldMaxLen = 100

// ProfileService manages the one profile bound to each user. Only the
// owning user may read or mutate it through this service.
type ProfileService struct {
	profiles   repository.ProfileRepository
	dispatcher events.Dispatcher
}

// ProfilePatch carries a partial profile update. Nil fields are left
// unchanged; user and id are immutable.
type ProfilePatch struct {
	Contact            *string
	Department         *string
	RealName           *string
	AccessLevel        *string
	ProjectAccessLevel *string
}

// NewProfileService constructs the service.
func NewProfileService(profiles repository.ProfileRepository, dispatcher events.Dispatcher) *ProfileService {
	return &ProfileService{profiles: profiles, dispatcher: dispatcher}
}

// GetOwn returns the caller's profile. The 1:1 invariant makes absence
// unexpected, but the lookup does not assume existence.
func (s *ProfileService) GetOwn(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", nil)
		}
		return nil, err
	}
	return profile, nil
}

// UpdateOwn applies a partial update to the caller's profile. Validation
// failures come back keyed per field. Any other failure past this point is
// caught here and reported generically: a partial update touches several
// fields and any one of them can fail.
func (s *ProfileService) UpdateOwn(ctx context.Context, userID string, patch ProfilePatch) (*domain.Profile, error) {
	if err := validateProfilePatch(patch); err != nil {
		return nil, err
	}

	profile, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed := applyProfilePatch(profile, patch)
	if len(changed) == 0 {
		return profile, nil
	}
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventProfileUpdated,
			UserID:    userID,
			Timestamp: time.Now(),
			Payload: events.ProfileUpdatedPayload{
				ProfileID: profile.ID,
				Changed:   changed,
			},
		})
	}
	return profile, nil
}

func validateProfilePatch(patch ProfilePatch) error {
	fields := map[string][]string{}
	check := func(name string, val *string) {
		if val != nil && len(*val) > profileFieldMaxLen {
			fields[name] = append(fields[name], fmt.Sprintf("ensure this field has no more than %d characters", profileFieldMaxLen))
		}
	}
	check("contact", patch.Contact)
	check("department", patch.Department)
	check("realName", patch.RealName)
	check("accessLevel", patch.AccessLevel)
	check("projectAccessLevel", patch.ProjectAccessLevel)
	if len(fields) > 0 {
		return apperrors.NewValidationError("invalid profile fields", apperrors.FieldErrors(fields))
	}
	return nil
}

func applyProfilePatch(profile *domain.Profile, patch ProfilePatch) []string {
	var changed []string
	if patch.Contact != nil {
		profile.Contact = *patch.Contact
		changed = append(changed, "contact")
	}
	if patch.Department != nil {
		profile.Department = *patch.Department
		changed = append(changed, "department")
	}
	if patch.RealName != nil {
		profile.RealName = *patch.RealName
		changed = append(changed, "realName")
	}
	if patch.AccessLevel != nil {
		profile.AccessLevel = *patch.AccessLevel
		changed = append(changed, "accessLevel")
	}
	if patch.ProjectAccessLevel != nil {
		profile.ProjectAccessLevel = *patch.ProjectAccessLevel
		changed = append(changed, "projectAccessLevel")
	}
	return changed
}
