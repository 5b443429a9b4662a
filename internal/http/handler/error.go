package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gradescan/internal/http/middleware"
	"gradescan/internal/service"
)

// envelope is the body of every JSON response.
type envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func writeData(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: middleware.RequestIDFromCtx(c),
	})
}

// writeError writes a {success:false, message} body with the given status.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{
		Success:   false,
		Message:   message,
		RequestID: middleware.RequestIDFromCtx(c),
	})
}

// statusFor maps a pipeline failure kind to an HTTP status.
func statusFor(k service.Kind) int {
	if k == service.KindClientInput {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler returns a Fiber global error handler so routing errors, oversize bodies
// and recovered panics share the handlers' envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return writeError(c, fe.Code, fe.Message)
		}
		return writeError(c, statusFor(service.KindOf(err)), service.MessageOf(err))
	}
}
