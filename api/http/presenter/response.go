package presenter

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the uniform error envelope: a machine-readable kind, a
// human message, never internal details.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Kind: kindOf(status), Message: message})
}

func kindOf(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal_error"
	}
}
