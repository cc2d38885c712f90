package routes

import (
	"portfolio-api/internal/delivery/http/handler"
	"portfolio-api/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health    *handler.HealthHandler
	auth      *handler.AuthHandler
	portfolio *handler.PortfolioHandler
	contact   *handler.ContactHandler
	admin     *handler.AdminHandler
	seed      *handler.SeedHandler
	status    *handler.StatusHandler

	authMw *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	portfolio *handler.PortfolioHandler,
	contact *handler.ContactHandler,
	admin *handler.AdminHandler,
	seed *handler.SeedHandler,
	status *handler.StatusHandler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:    health,
		auth:      auth,
		portfolio: portfolio,
		contact:   contact,
		admin:     admin,
		seed:      seed,
		status:    status,
		authMw:    authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/", r.health.Root)
	r.status.RegisterRoutes(api)

	r.auth.RegisterRoutes(api.Group("/auth"))
	r.portfolio.RegisterRoutes(api.Group("/portfolio"))
	r.contact.RegisterRoutes(api.Group("/contact"))

	protected := r.authMw.Middleware()
	r.admin.RegisterRoutes(api.Group("/admin", protected))
	api.Post("/seed", r.seed.Seed, protected)
}
