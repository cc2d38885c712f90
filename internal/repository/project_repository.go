package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-api/internal/database"
)

type Project struct {
	ID           int
	Title        string
	Category     string
	Problem      string
	Role         string
	Approach     []string
	Outcomes     []string
	Artifacts    []string
	Tags         []string
	Image        string
	Metrics      map[string]string
	Featured     bool
	DisplayOrder int
	CreatedAt    time.Time
}

type ProjectFilter struct {
	Category string
	Tag      string
	Limit    int
}

type ProjectRepository interface {
	List(ctx context.Context, filter ProjectFilter) ([]Project, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p Project) error
	ReplaceAll(ctx context.Context, projects []Project) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, title, category, problem, role, approach, outcomes, artifacts, tags, image, metrics, featured, display_order, created_at`

func (r *PostgresProjectRepository) List(ctx context.Context, filter ProjectFilter) ([]Project, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		conds = append(conds, fmt.Sprintf("$%d = ANY(tags)", len(args)))
	}

	q := `SELECT ` + projectColumns + ` FROM projects`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY display_order ASC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Category, &p.Problem, &p.Role,
			&p.Approach, &p.Outcomes, &p.Artifacts, &p.Tags,
			&p.Image, &p.Metrics, &p.Featured, &p.DisplayOrder, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p Project) error {
	return insertProject(ctx, r.db, p)
}

func (r *PostgresProjectRepository) ReplaceAll(ctx context.Context, projects []Project) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM projects`); err != nil {
		return err
	}
	for _, p := range projects {
		if err := insertProject(ctx, tx, p); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

type execer interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
}

func insertProject(ctx context.Context, db execer, p Project) error {
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	metrics := p.Metrics
	if metrics == nil {
		metrics = map[string]string{}
	}
	_, err := db.Exec(
		ctx,
		`INSERT INTO projects (`+projectColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.Title, p.Category, p.Problem, p.Role,
		p.Approach, p.Outcomes, p.Artifacts, p.Tags,
		p.Image, metrics, p.Featured, p.DisplayOrder, createdAt,
	)
	return err
}
