package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SeedHandler struct {
	uc usecase.SeedUsecase
}

type seedRequest struct {
	Confirm bool `json:"confirm"`
}

func NewSeedHandler(uc usecase.SeedUsecase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

// Seed wipes and reloads all portfolio content, so it demands an explicit
// confirmation on top of admin auth.
func (h *SeedHandler) Seed(c fiber.Ctx) error {
	confirmed := c.Query("confirm") == "true"
	if !confirmed {
		var req seedRequest
		if err := c.Bind().Body(&req); err == nil {
			confirmed = req.Confirm
		}
	}
	if !confirmed {
		return middleware.NewAppError(fiber.StatusBadRequest, "Seeding is destructive; pass confirm=true to proceed", nil)
	}

	if err := h.uc.Seed(c.Context()); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}

	return c.JSON(dto.APIResponse{Success: true, Message: "Database seeded successfully"})
}
