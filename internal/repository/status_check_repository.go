package repository

import (
	"context"
	"time"

	"portfolio-api/internal/database"

	"github.com/google/uuid"
)

// StatusCheck is the legacy client ping kept for frontend compatibility.
type StatusCheck struct {
	ID         uuid.UUID
	ClientName string
	Timestamp  time.Time
}

type StatusCheckRepository interface {
	Create(ctx context.Context, s StatusCheck) error
	List(ctx context.Context, limit int) ([]StatusCheck, error)
}

type PostgresStatusCheckRepository struct {
	db database.DB
}

func NewPostgresStatusCheckRepository(db database.DB) *PostgresStatusCheckRepository {
	return &PostgresStatusCheckRepository{db: db}
}

func (r *PostgresStatusCheckRepository) Create(ctx context.Context, s StatusCheck) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO status_checks (id, client_name, ts) VALUES ($1, $2, $3)`,
		s.ID, s.ClientName, s.Timestamp,
	)
	return err
}

func (r *PostgresStatusCheckRepository) List(ctx context.Context, limit int) ([]StatusCheck, error) {
	if limit <= 0 {
		limit = 1000
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT id, client_name, ts FROM status_checks ORDER BY ts ASC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StatusCheck, 0)
	for rows.Next() {
		var s StatusCheck
		if err := rows.Scan(&s.ID, &s.ClientName, &s.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
