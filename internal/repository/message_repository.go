package repository

import (
	"context"
	"fmt"
	"time"

	"portfolio-api/internal/database"

	"github.com/google/uuid"
)

type ContactMessage struct {
	ID                     uuid.UUID
	Name                   string
	Email                  string
	Subject                string
	Message                string
	AvailabilityPreference *string
	SubmittedAt            time.Time
	Status                 string
	IPAddress              *string
	UpdatedAt              *time.Time
}

type MessageRepository interface {
	Create(ctx context.Context, m ContactMessage) error
	List(ctx context.Context, status string) ([]ContactMessage, error)
	ListPage(ctx context.Context, status string, limit, skip int) ([]ContactMessage, error)
	Count(ctx context.Context, status string) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

const messageColumns = `id, name, email, subject, message, availability_preference, submitted_at, status, ip_address, updated_at`

func (r *PostgresMessageRepository) Create(ctx context.Context, m ContactMessage) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, availability_preference, submitted_at, status, ip_address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.AvailabilityPreference, m.SubmittedAt, m.Status, m.IPAddress,
	)
	return err
}

func (r *PostgresMessageRepository) List(ctx context.Context, status string) ([]ContactMessage, error) {
	q := `SELECT ` + messageColumns + ` FROM contact_messages`
	var args []any
	if status != "" {
		args = append(args, status)
		q += ` WHERE status = $1`
	}
	q += ` ORDER BY submitted_at DESC`
	return r.queryMessages(ctx, q, args...)
}

func (r *PostgresMessageRepository) ListPage(ctx context.Context, status string, limit, skip int) ([]ContactMessage, error) {
	q := `SELECT ` + messageColumns + ` FROM contact_messages`
	var args []any
	if status != "" {
		args = append(args, status)
		q += ` WHERE status = $1`
	}
	q += ` ORDER BY submitted_at DESC`
	args = append(args, limit)
	q += fmt.Sprintf(` LIMIT $%d`, len(args))
	args = append(args, skip)
	q += fmt.Sprintf(` OFFSET $%d`, len(args))
	return r.queryMessages(ctx, q, args...)
}

func (r *PostgresMessageRepository) Count(ctx context.Context, status string) (int, error) {
	q := `SELECT COUNT(*) FROM contact_messages`
	var args []any
	if status != "" {
		args = append(args, status)
		q += ` WHERE status = $1`
	}
	var n int
	if err := r.db.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresMessageRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	affected, err := r.db.Exec(
		ctx,
		`UPDATE contact_messages SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresMessageRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresMessageRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM contact_messages GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMessageRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE submitted_at >= $1`,
		since,
	).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresMessageRepository) queryMessages(ctx context.Context, q string, args ...any) ([]ContactMessage, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ContactMessage, 0)
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
			&m.AvailabilityPreference, &m.SubmittedAt, &m.Status, &m.IPAddress, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
