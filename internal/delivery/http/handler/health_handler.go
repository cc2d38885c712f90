package handler

import "github.com/gofiber/fiber/v3"

type HealthHandler struct {
	appName string
}

func NewHealthHandler(appName string) *HealthHandler {
	return &HealthHandler{appName: appName}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Root serves the legacy /api/ greeting the frontend probes on load.
func (h *HealthHandler) Root(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": h.appName + " v1.0.0"})
}
