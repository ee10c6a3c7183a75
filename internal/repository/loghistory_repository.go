package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// LogHistoryRepository stores append-only audit entries.
type LogHistoryRepository interface {
	Create(ctx context.Context, entry *domain.LogEntry) error
	List(ctx context.Context) ([]domain.LogEntry, error)
}

type logHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewLogHistoryRepository builds repository.
func NewLogHistoryRepository(pool *pgxpool.Pool) LogHistoryRepository {
	return &logHistoryRepository{pool: pool}
}

func (r *logHistoryRepository) Create(ctx context.Context, entry *domain.LogEntry) error {
	const query = `
        INSERT INTO user_log_history (user_id, action, details)
        VALUES ($1,$2,$3)
        RETURNING id, log_timestamp`
	return r.pool.QueryRow(ctx, query,
		entry.UserID,
		entry.Action,
		entry.Details,
	).Scan(&entry.ID, &entry.Timestamp)
}

func (r *logHistoryRepository) List(ctx context.Context) ([]domain.LogEntry, error) {
	const query = `
        SELECT id, user_id, action, log_timestamp, details
        FROM user_log_history ORDER BY log_timestamp DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LogEntry
	for rows.Next() {
		var entry domain.LogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.Timestamp,
			&entry.Details,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
