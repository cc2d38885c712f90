package middleware

import (
	"errors"
	"log"

	"portfolio-api/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Detail     string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Detail + ": " + e.Cause.Error()
	}
	return e.Detail
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, detail string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Detail: detail, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware converts handler errors into the {detail} error body. Server
// errors are logged with their cause and surfaced as a generic 500.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.DetailInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, detail := m.normalizeError(c, err)
		return response.Error(c, status, detail)
	}
}

func (m *ErrorMiddleware) normalizeError(c fiber.Ctx, err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			m.logger.Printf("internal error | method=%s path=%s err=%v", c.Method(), c.OriginalURL(), err)
			return fiber.StatusInternalServerError, response.DetailInternalServerError
		}
		detail := appErr.Detail
		if detail == "" {
			detail = response.DefaultDetailForStatus(status)
		}
		return status, detail
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			m.logger.Printf("internal error | method=%s path=%s err=%v", c.Method(), c.OriginalURL(), err)
			return fiber.StatusInternalServerError, response.DetailInternalServerError
		}
		detail := fiberErr.Message
		if detail == "" {
			detail = response.DefaultDetailForStatus(status)
		}
		return status, detail
	}

	m.logger.Printf("internal error | method=%s path=%s err=%v", c.Method(), c.OriginalURL(), err)
	return fiber.StatusInternalServerError, response.DetailInternalServerError
}
