package server

import (
	"errors"

	"loadharbour/internal/core/logger"
	"loadharbour/internal/core/storage"
	"loadharbour/internal/core/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Error codes carried in failure bodies alongside the transport status.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeConflict          = "CONFLICT"
	CodeNotFound          = "NOT_FOUND"
	CodeReferenceConflict = "REFERENCE_CONFLICT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInternal          = "INTERNAL_ERROR"
)

// ErrorBody is the uniform failure response shape.
type ErrorBody struct {
	// Message is the single-line, user-facing error description.
	Message string `json:"message"`
	// Code is the machine-readable error class.
	Code string `json:"code"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
	// Details carries field-level validation messages when present.
	Details map[string]string `json:"details,omitempty"`
}

// List is the collection response envelope.
type List[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// RayID extracts the request id set by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

// Fail writes a failure body with the given status, code, and message.
func Fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(ErrorBody{
		Message: message,
		Code:    code,
		RayID:   RayID(c),
	})
}

// RespondError maps service and storage errors onto the error taxonomy:
// field validation to 400, uniqueness conflicts to 409, missing ids to
// 404, everything else to a logged 500.
func RespondError(c *fiber.Ctx, err error) error {
	var verrs validate.Errors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{
			Message: "validation failed",
			Code:    CodeValidation,
			RayID:   RayID(c),
			Details: verrs,
		})
	}

	var conflict *storage.ConflictError
	if errors.As(err, &conflict) {
		return Fail(c, fiber.StatusConflict, CodeConflict, conflict.Error())
	}

	if errors.Is(err, storage.ErrNotFound) {
		return Fail(c, fiber.StatusNotFound, CodeNotFound, err.Error())
	}

	logger.Get().Error("Request failed",
		zap.String("ray_id", RayID(c)),
		zap.Error(err),
	)
	return Fail(c, fiber.StatusInternalServerError, CodeInternal, "Internal server error")
}
