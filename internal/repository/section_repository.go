package repository

import (
	"context"
	"errors"
	"time"

	"portfolio-api/internal/database"

	"github.com/jackc/pgx/v5"
)

type Section struct {
	Section     string
	Data        map[string]any
	LastUpdated time.Time
	Version     int
}

type SectionRepository interface {
	Get(ctx context.Context, name string) (Section, bool, error)
	Upsert(ctx context.Context, name string, data map[string]any) error
}

type PostgresSectionRepository struct {
	db database.DB
}

func NewPostgresSectionRepository(db database.DB) *PostgresSectionRepository {
	return &PostgresSectionRepository{db: db}
}

func (r *PostgresSectionRepository) Get(ctx context.Context, name string) (Section, bool, error) {
	var s Section
	err := r.db.QueryRow(
		ctx,
		`SELECT section, data, last_updated, version FROM portfolio_sections WHERE section = $1`,
		name,
	).Scan(&s.Section, &s.Data, &s.LastUpdated, &s.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Section{}, false, nil
		}
		return Section{}, false, err
	}
	return s, true, nil
}

// Upsert bumps the version inside the statement so concurrent writers
// cannot lose increments.
func (r *PostgresSectionRepository) Upsert(ctx context.Context, name string, data map[string]any) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO portfolio_sections (section, data, last_updated, version)
		 VALUES ($1, $2, now(), 1)
		 ON CONFLICT (section) DO UPDATE
		 SET data = EXCLUDED.data, last_updated = now(), version = portfolio_sections.version + 1`,
		name, data,
	)
	return err
}
