package response

import "github.com/gofiber/fiber/v3"

// ErrorBody is the wire shape for every error response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

const (
	DetailBadRequest          = "Bad request"
	DetailUnauthorized        = "Unauthorized"
	DetailForbidden           = "Forbidden"
	DetailNotFound            = "Not found"
	DetailInternalServerError = "Internal server error"
)

func Error(c fiber.Ctx, status int, detail string) error {
	st := normalizeStatus(status)
	if detail == "" {
		detail = DefaultDetailForStatus(st)
	}
	return c.Status(st).JSON(ErrorBody{Detail: detail})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultDetailForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return DetailBadRequest
	case fiber.StatusUnauthorized:
		return DetailUnauthorized
	case fiber.StatusForbidden:
		return DetailForbidden
	case fiber.StatusNotFound:
		return DetailNotFound
	default:
		if status >= 500 {
			return DetailInternalServerError
		}
		return DetailBadRequest
	}
}
