package usecase

import (
	"context"
	"log"

	"portfolio-api/internal/infrastructure/cache"
	"portfolio-api/internal/repository"
)

const (
	SectionHero           = "hero"
	SectionAbout          = "about"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionContact        = "contact"
)

type ProjectList struct {
	Projects []repository.Project
	Total    int
	Filtered int
}

type CertificationData struct {
	Certifications any
	Education      any
}

type PortfolioUsecase interface {
	GetSection(ctx context.Context, name string) (map[string]any, error)
	GetCertifications(ctx context.Context) (CertificationData, error)
	ListProjects(ctx context.Context, category, tag string, limit int) (ProjectList, error)
	GetExperience(ctx context.Context) ([]repository.Experience, error)
}

type Portfolio struct {
	sections   repository.SectionRepository
	projects   repository.ProjectRepository
	experience repository.ExperienceRepository
	cache      *cache.Redis
	logger     *log.Logger
}

func NewPortfolioUsecase(
	sections repository.SectionRepository,
	projects repository.ProjectRepository,
	experience repository.ExperienceRepository,
	c *cache.Redis,
	logger *log.Logger,
) *Portfolio {
	if logger == nil {
		logger = log.Default()
	}
	return &Portfolio{
		sections:   sections,
		projects:   projects,
		experience: experience,
		cache:      c,
		logger:     logger,
	}
}

// GetSection reads one named content blob. Storage failures are logged and
// reported as not-found so the public surface never leaks storage detail.
func (u *Portfolio) GetSection(ctx context.Context, name string) (map[string]any, error) {
	key := "portfolio:section:" + name

	var cached map[string]any
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	s, ok, err := u.sections.Get(ctx, name)
	if err != nil {
		u.logger.Printf("portfolio: get section %s: %v", name, err)
		return nil, ErrNotFound
	}
	if !ok {
		return nil, ErrNotFound
	}

	_ = u.cache.SetJSON(ctx, key, s.Data)
	return s.Data, nil
}

func (u *Portfolio) GetCertifications(ctx context.Context) (CertificationData, error) {
	data, err := u.GetSection(ctx, SectionCertifications)
	if err != nil {
		return CertificationData{}, err
	}
	return CertificationData{
		Certifications: data["certifications"],
		Education:      data["education"],
	}, nil
}

// ListProjects returns the filtered list plus the unfiltered total so the
// response can report {projects, total, filtered}.
func (u *Portfolio) ListProjects(ctx context.Context, category, tag string, limit int) (ProjectList, error) {
	filtered, err := u.projects.List(ctx, repository.ProjectFilter{
		Category: category,
		Tag:      tag,
		Limit:    limit,
	})
	if err != nil {
		u.logger.Printf("portfolio: list projects: %v", err)
		filtered = []repository.Project{}
	}

	total, err := u.projects.Count(ctx)
	if err != nil {
		u.logger.Printf("portfolio: count projects: %v", err)
		total = 0
	}

	return ProjectList{
		Projects: filtered,
		Total:    total,
		Filtered: len(filtered),
	}, nil
}

func (u *Portfolio) GetExperience(ctx context.Context) ([]repository.Experience, error) {
	entries, err := u.experience.List(ctx)
	if err != nil {
		u.logger.Printf("portfolio: list experience: %v", err)
		return []repository.Experience{}, nil
	}
	return entries, nil
}
