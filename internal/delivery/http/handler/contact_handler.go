package handler

import (
	"errors"

	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContactHandler struct {
	uc        usecase.ContactUsecase
	portfolio usecase.PortfolioUsecase
}

type submitMessageRequest struct {
	Name                   string  `json:"name"`
	Email                  string  `json:"email"`
	Subject                string  `json:"subject"`
	Message                string  `json:"message"`
	AvailabilityPreference *string `json:"availability_preference"`
}

func NewContactHandler(uc usecase.ContactUsecase, portfolio usecase.PortfolioUsecase) *ContactHandler {
	return &ContactHandler{uc: uc, portfolio: portfolio}
}

func (h *ContactHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/message", h.SubmitMessage)
	r.Get("/messages", h.GetMessages)
	r.Get("/info", h.GetInfo)
}

func (h *ContactHandler) SubmitMessage(c fiber.Ctx) error {
	var req submitMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	res, err := h.uc.Submit(c.Context(), usecase.SubmitInput{
		Name:                   req.Name,
		Email:                  req.Email,
		Subject:                req.Subject,
		Message:                req.Message,
		AvailabilityPreference: req.AvailabilityPreference,
		ClientIP:               c.IP(),
	})
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			return middleware.NewAppError(fiber.StatusBadRequest, ve.Detail, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}

	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "Your message has been sent successfully! I'll get back to you within 24 hours.",
		Data: fiber.Map{
			"message_id":         res.MessageID,
			"email_notification": res.NotificationSent,
		},
	})
}

func (h *ContactHandler) GetMessages(c fiber.Ctx) error {
	msgs, err := h.uc.ListMessages(c.Context(), c.Query("status"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}

	out := dto.FromContactMessages(msgs)
	return c.JSON(dto.MessagesResponse{Messages: out, Total: len(out)})
}

func (h *ContactHandler) GetInfo(c fiber.Ctx) error {
	data, err := h.portfolio.GetSection(c.Context(), usecase.SectionContact)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Contact data not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
	return c.JSON(data)
}
