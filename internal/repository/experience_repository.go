package repository

import (
	"context"

	"portfolio-api/internal/database"
)

type Experience struct {
	ID           int
	Company      string
	Role         string
	Period       string
	Location     string
	Achievements []string
	Tags         []string
}

type ExperienceRepository interface {
	List(ctx context.Context) ([]Experience, error)
	ReplaceAll(ctx context.Context, entries []Experience) error
}

type PostgresExperienceRepository struct {
	db database.DB
}

func NewPostgresExperienceRepository(db database.DB) *PostgresExperienceRepository {
	return &PostgresExperienceRepository{db: db}
}

func (r *PostgresExperienceRepository) List(ctx context.Context) ([]Experience, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, company, role, period, location, achievements, tags FROM experience ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Experience, 0)
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.ID, &e.Company, &e.Role, &e.Period, &e.Location, &e.Achievements, &e.Tags); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresExperienceRepository) ReplaceAll(ctx context.Context, entries []Experience) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM experience`); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO experience (id, company, role, period, location, achievements, tags)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.ID, e.Company, e.Role, e.Period, e.Location, e.Achievements, e.Tags,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
