package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// ProfileRepository handles persistence for user profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository instantiates the repository.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	const query = `
        SELECT id, user_id, contact, department, real_name, access_level, project_access_level, created_at, updated_at
        FROM profiles WHERE user_id=$1`
	var profile domain.Profile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Contact,
		&profile.Department,
		&profile.RealName,
		&profile.AccessLevel,
		&profile.ProjectAccessLevel,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	// user_id is never part of the SET list; ownership is immutable.
	const query = `
        UPDATE profiles SET contact=$1, department=$2, real_name=$3, access_level=$4,
            project_access_level=$5, updated_at=NOW()
        WHERE id=$6
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query,
		profile.Contact,
		profile.Department,
		profile.RealName,
		profile.AccessLevel,
		profile.ProjectAccessLevel,
		profile.ID,
	).Scan(&profile.UpdatedAt)
}
