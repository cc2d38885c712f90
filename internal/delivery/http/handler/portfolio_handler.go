package handler

import (
	"errors"
	"strconv"

	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PortfolioHandler struct {
	uc usecase.PortfolioUsecase
}

func NewPortfolioHandler(uc usecase.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

func (h *PortfolioHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/hero", h.GetHero)
	r.Get("/about", h.GetAbout)
	r.Get("/projects", h.GetProjects)
	r.Get("/experience", h.GetExperience)
	r.Get("/skills", h.GetSkills)
	r.Get("/certifications", h.GetCertifications)
	r.Get("/contact", h.GetContact)
}

func (h *PortfolioHandler) GetHero(c fiber.Ctx) error {
	return h.section(c, usecase.SectionHero, "Hero data not found")
}

func (h *PortfolioHandler) GetAbout(c fiber.Ctx) error {
	return h.section(c, usecase.SectionAbout, "About data not found")
}

func (h *PortfolioHandler) GetContact(c fiber.Ctx) error {
	return h.section(c, usecase.SectionContact, "Contact data not found")
}

func (h *PortfolioHandler) section(c fiber.Ctx, name, notFoundDetail string) error {
	data, err := h.uc.GetSection(c.Context(), name)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, notFoundDetail, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return c.JSON(data)
}

func (h *PortfolioHandler) GetProjects(c fiber.Ctx) error {
	category := c.Query("category")
	tag := c.Query("tag")
	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit parameter", err)
	}

	list, err := h.uc.ListProjects(c.Context(), category, tag, limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}

	return c.JSON(dto.ProjectsResponse{
		Projects: dto.FromProjects(list.Projects),
		Total:    list.Total,
		Filtered: list.Filtered,
	})
}

func (h *PortfolioHandler) GetExperience(c fiber.Ctx) error {
	entries, err := h.uc.GetExperience(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return c.JSON(dto.FromExperience(entries))
}

func (h *PortfolioHandler) GetSkills(c fiber.Ctx) error {
	data, err := h.uc.GetSection(c.Context(), usecase.SectionSkills)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Skills data not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return c.JSON(dto.SkillsResponse{Skills: data})
}

func (h *PortfolioHandler) GetCertifications(c fiber.Ctx) error {
	certs, err := h.uc.GetCertifications(c.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Certifications data not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return c.JSON(dto.CertificationsResponse{
		Certifications: certs.Certifications,
		Education:      certs.Education,
	})
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}
