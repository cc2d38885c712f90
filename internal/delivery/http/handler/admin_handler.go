package handler

import (
	"errors"
	"fmt"
	"time"

	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AdminHandler struct {
	uc usecase.AdminUsecase
}

func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/messages", h.GetMessages)
	r.Get("/messages/export", h.ExportMessages)
	r.Put("/messages/:id/status", h.UpdateMessageStatus)
	r.Delete("/messages/:id", h.DeleteMessage)
	r.Get("/dashboard/stats", h.GetDashboardStats)
}

func (h *AdminHandler) GetMessages(c fiber.Ctx) error {
	status := c.Query("status")
	limit, err := parseQueryInt(c, "limit", 50)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit parameter", err)
	}
	skip, err := parseQueryInt(c, "skip", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skip parameter", err)
	}

	page, err := h.uc.ListMessages(c.Context(), status, limit, skip)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}

	return c.JSON(dto.AdminMessagesResponse{
		Messages: dto.FromContactMessages(page.Messages),
		Total:    page.Total,
		Showing:  page.Showing,
		Skip:     page.Skip,
		Limit:    page.Limit,
		HasMore:  page.HasMore,
	})
}

func (h *AdminHandler) UpdateMessageStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Message not found", err)
	}
	newStatus := c.Query("new_status")

	if err := h.uc.UpdateStatus(c.Context(), id, newStatus); err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			return middleware.NewAppError(fiber.StatusBadRequest, ve.Detail, err)
		}
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Message not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}

	return c.JSON(dto.StatusUpdateResponse{
		Success:   true,
		Message:   fmt.Sprintf("Message status updated to '%s'", newStatus),
		MessageID: id.String(),
		NewStatus: newStatus,
	})
}

func (h *AdminHandler) DeleteMessage(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Message not found", err)
	}

	if err := h.uc.DeleteMessage(c.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Message not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}

	return c.JSON(dto.DeleteMessageResponse{
		Success:   true,
		Message:   "Message deleted successfully",
		MessageID: id.String(),
	})
}

func (h *AdminHandler) GetDashboardStats(c fiber.Ctx) error {
	stats, err := h.uc.DashboardStats(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}

	return c.JSON(dto.DashboardStatsResponse{
		TotalMessages:   stats.TotalMessages,
		Recent7Days:     stats.Recent7Days,
		StatusBreakdown: stats.StatusBreakdown,
		LastUpdated:     stats.LastUpdated.Format(time.RFC3339),
	})
}

func (h *AdminHandler) ExportMessages(c fiber.Ctx) error {
	res, err := h.uc.Export(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}

	return c.JSON(dto.ExportResponse{
		ExportDate:    res.ExportDate.Format(time.RFC3339),
		TotalMessages: res.Total,
		Messages:      dto.FromContactMessages(res.Messages),
	})
}
