package migration

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
)

type Migration struct {
	Name string
	Up   func(ctx context.Context, db database.DB) error
}

// Run applies the schema bootstrap. Every statement is idempotent, so the
// runner is safe to execute on every startup.
func Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	migrations := []Migration{
		{Name: "create_portfolio_sections", Up: createPortfolioSections},
		{Name: "create_projects", Up: createProjects},
		{Name: "create_experience", Up: createExperience},
		{Name: "create_contact_messages", Up: createContactMessages},
		{Name: "create_status_checks", Up: createStatusChecks},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, db); err != nil {
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
	}
	return nil
}

func createPortfolioSections(ctx context.Context, db database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS portfolio_sections (
			section      TEXT PRIMARY KEY,
			data         JSONB NOT NULL,
			last_updated TIMESTAMPTZ NOT NULL DEFAULT now(),
			version      INTEGER NOT NULL DEFAULT 1
		)`)
	return err
}

func createProjects(ctx context.Context, db database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS projects (
			id            INTEGER PRIMARY KEY,
			title         TEXT NOT NULL,
			category      TEXT NOT NULL,
			problem       TEXT NOT NULL,
			role          TEXT NOT NULL,
			approach      TEXT[] NOT NULL DEFAULT '{}',
			outcomes      TEXT[] NOT NULL DEFAULT '{}',
			artifacts     TEXT[] NOT NULL DEFAULT '{}',
			tags          TEXT[] NOT NULL DEFAULT '{}',
			image         TEXT NOT NULL DEFAULT '',
			metrics       JSONB NOT NULL DEFAULT '{}'::jsonb,
			featured      BOOLEAN NOT NULL DEFAULT FALSE,
			display_order INTEGER NOT NULL DEFAULT 0,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_projects_display_order ON projects (display_order)`)
	return err
}

func createExperience(ctx context.Context, db database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS experience (
			id           INTEGER PRIMARY KEY,
			company      TEXT NOT NULL,
			role         TEXT NOT NULL,
			period       TEXT NOT NULL,
			location     TEXT NOT NULL,
			achievements TEXT[] NOT NULL DEFAULT '{}',
			tags         TEXT[] NOT NULL DEFAULT '{}'
		)`)
	return err
}

func createContactMessages(ctx context.Context, db database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS contact_messages (
			id                      UUID PRIMARY KEY,
			name                    TEXT NOT NULL,
			email                   TEXT NOT NULL,
			subject                 TEXT NOT NULL,
			message                 TEXT NOT NULL,
			availability_preference TEXT,
			submitted_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
			status                  TEXT NOT NULL DEFAULT 'new',
			ip_address              TEXT,
			updated_at              TIMESTAMPTZ
		)`)
	if err != nil {
		return err
	}
	if _, err := db.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_contact_messages_status ON contact_messages (status)`); err != nil {
		return err
	}
	_, err = db.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_contact_messages_submitted_at ON contact_messages (submitted_at DESC)`)
	return err
}

func createStatusChecks(ctx context.Context, db database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS status_checks (
			id          UUID PRIMARY KEY,
			client_name TEXT NOT NULL,
			ts          TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}
