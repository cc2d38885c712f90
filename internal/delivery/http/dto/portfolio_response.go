package dto

import (
	"time"

	"portfolio-api/internal/repository"
)

type Project struct {
	ID           int               `json:"id"`
	Title        string            `json:"title"`
	Category     string            `json:"category"`
	Problem      string            `json:"problem"`
	Role         string            `json:"role"`
	Approach     []string          `json:"approach"`
	Outcomes     []string          `json:"outcomes"`
	Artifacts    []string          `json:"artifacts"`
	Tags         []string          `json:"tags"`
	Image        string            `json:"image"`
	Metrics      map[string]string `json:"metrics"`
	Featured     bool              `json:"featured"`
	DisplayOrder int               `json:"display_order"`
	CreatedAt    time.Time         `json:"created_at"`
}

type ProjectsResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
	Filtered int       `json:"filtered"`
}

type Experience struct {
	ID           int      `json:"id"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Period       string   `json:"period"`
	Location     string   `json:"location"`
	Achievements []string `json:"achievements"`
	Tags         []string `json:"tags"`
}

type SkillsResponse struct {
	Skills map[string]any `json:"skills"`
}

type CertificationsResponse struct {
	Certifications any `json:"certifications"`
	Education      any `json:"education"`
}

func FromProject(p repository.Project) Project {
	return Project{
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
		CreatedAt:    p.CreatedAt,
	}
}

func FromProjects(projects []repository.Project) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

func FromExperience(entries []repository.Experience) []Experience {
	out := make([]Experience, 0, len(entries))
	for _, e := range entries {
		out = append(out, Experience{
			ID:           e.ID,
			Company:      e.Company,
			Role:         e.Role,
			Period:       e.Period,
			Location:     e.Location,
			Achievements: e.Achievements,
			Tags:         e.Tags,
		})
	}
	return out
}
