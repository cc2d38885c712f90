package app

import (
	"fmt"
	"log"
	"strings"

	"portfolio-api/internal/config"
	"portfolio-api/internal/delivery/http/handler"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/delivery/http/routes"
	"portfolio-api/internal/notifier"
	"portfolio-api/internal/pkg/jwt"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
}

// Bootstrap builds the whole application graph: storage, cache, usecases,
// handlers and the HTTP server. The returned cleanup releases the pool and
// the cache client and must be called on shutdown.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap container: %w", err)
	}

	sections := repository.NewPostgresSectionRepository(c.DB)
	projects := repository.NewPostgresProjectRepository(c.DB)
	experience := repository.NewPostgresExperienceRepository(c.DB)
	messages := repository.NewPostgresMessageRepository(c.DB)
	statusChecks := repository.NewPostgresStatusCheckRepository(c.DB)

	jwtSvc := jwt.NewHMACService(cfg.Auth.AccessSecret, cfg.Auth.AccessExpiresIn)
	mailer := notifier.NewLogNotifier(cfg.Mail, logger)

	portfolioUC := usecase.NewPortfolioUsecase(sections, projects, experience, c.Cache, logger)
	contactUC := usecase.NewContactUsecase(messages, mailer, logger)
	adminUC := usecase.NewAdminUsecase(messages, logger)
	authUC := usecase.NewAuthUsecase(cfg.Auth, jwtSvc, logger)
	seedUC := usecase.NewSeedUsecase(sections, projects, experience, c.Cache, logger)
	statusUC := usecase.NewStatusCheckUsecase(statusChecks, logger)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(cfg.App.AppName),
		handler.NewAuthHandler(authUC),
		handler.NewPortfolioHandler(portfolioUC),
		handler.NewContactHandler(contactUC, portfolioUC),
		handler.NewAdminHandler(adminUC),
		handler.NewSeedHandler(seedUC),
		handler.NewStatusHandler(statusUC),
		middleware.NewAuthMiddleware(jwtSvc),
	)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, cfg, logger)
	registry.Register(f)

	return &App{Fiber: f}, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(cors.New(corsConfig(cfg.App.CORSOrigins)))
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func corsConfig(origins string) cors.Config {
	trimmed := make([]string, 0)
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			trimmed = append(trimmed, o)
		}
	}
	if len(trimmed) == 0 {
		trimmed = []string{"*"}
	}

	cfg := cors.Config{
		AllowOrigins: trimmed,
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders: []string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, fiber.HeaderAuthorization},
	}
	// Credentials cannot be combined with a wildcard origin.
	if len(trimmed) != 1 || trimmed[0] != "*" {
		cfg.AllowCredentials = true
	}
	return cfg
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
