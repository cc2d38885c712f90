package usecase

import (
	"context"
	"log"

	"portfolio-api/internal/infrastructure/cache"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/seed"
)

type SeedUsecase interface {
	Seed(ctx context.Context) error
}

// Seeder replaces all portfolio content with the embedded fixture.
// Collections are replaced one at a time; a crash mid-seed leaves partial
// state, which is acceptable for a fixture load.
type Seeder struct {
	sections   repository.SectionRepository
	projects   repository.ProjectRepository
	experience repository.ExperienceRepository
	cache      *cache.Redis
	logger     *log.Logger
}

func NewSeedUsecase(
	sections repository.SectionRepository,
	projects repository.ProjectRepository,
	experience repository.ExperienceRepository,
	c *cache.Redis,
	logger *log.Logger,
) *Seeder {
	if logger == nil {
		logger = log.Default()
	}
	return &Seeder{
		sections:   sections,
		projects:   projects,
		experience: experience,
		cache:      c,
		logger:     logger,
	}
}

func (u *Seeder) Seed(ctx context.Context) error {
	f, err := seed.Load()
	if err != nil {
		u.logger.Printf("seed: load fixture: %v", err)
		return ErrInternal
	}

	sections := []struct {
		name string
		data map[string]any
	}{
		{SectionHero, f.Hero},
		{SectionAbout, f.About},
		{SectionSkills, f.Skills},
		{SectionCertifications, map[string]any{
			"certifications": f.Certifications,
			"education":      f.Education,
		}},
		{SectionContact, f.Contact},
	}
	for _, s := range sections {
		if err := u.sections.Upsert(ctx, s.name, s.data); err != nil {
			u.logger.Printf("seed: upsert section %s: %v", s.name, err)
			return ErrInternal
		}
	}

	projects := make([]repository.Project, 0, len(f.Projects))
	for _, p := range f.Projects {
		projects = append(projects, repository.Project{
			ID:           p.ID,
			Title:        p.Title,
			Category:     p.Category,
			Problem:      p.Problem,
			Role:         p.Role,
			Approach:     p.Approach,
			Outcomes:     p.Outcomes,
			Artifacts:    p.Artifacts,
			Tags:         p.Tags,
			Image:        p.Image,
			Metrics:      p.Metrics,
			Featured:     p.Featured,
			DisplayOrder: p.DisplayOrder,
		})
	}
	if err := u.projects.ReplaceAll(ctx, projects); err != nil {
		u.logger.Printf("seed: replace projects: %v", err)
		return ErrInternal
	}

	entries := make([]repository.Experience, 0, len(f.Experience))
	for _, e := range f.Experience {
		entries = append(entries, repository.Experience{
			ID:           e.ID,
			Company:      e.Company,
			Role:         e.Role,
			Period:       e.Period,
			Location:     e.Location,
			Achievements: e.Achievements,
			Tags:         e.Tags,
		})
	}
	if err := u.experience.ReplaceAll(ctx, entries); err != nil {
		u.logger.Printf("seed: replace experience: %v", err)
		return ErrInternal
	}

	if err := u.cache.InvalidatePortfolio(ctx); err != nil {
		u.logger.Printf("seed: invalidate cache: %v", err)
	}

	u.logger.Printf("seed: database seeded successfully")
	return nil
}
