package handler

import (
	"errors"

	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// StatusHandler serves the legacy status-check endpoints kept for
// frontend compatibility.
type StatusHandler struct {
	uc usecase.StatusCheckUsecase
}

type createStatusCheckRequest struct {
	ClientName string `json:"client_name"`
}

func NewStatusHandler(uc usecase.StatusCheckUsecase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

func (h *StatusHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/status", h.CreateStatusCheck)
	r.Get("/status", h.GetStatusChecks)
}

func (h *StatusHandler) CreateStatusCheck(c fiber.Ctx) error {
	var req createStatusCheckRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	s, err := h.uc.Create(c.Context(), req.ClientName)
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			return middleware.NewAppError(fiber.StatusBadRequest, ve.Detail, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}

	return c.JSON(dto.FromStatusCheck(s))
}

func (h *StatusHandler) GetStatusChecks(c fiber.Ctx) error {
	checks, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return c.JSON(dto.FromStatusChecks(checks))
}
