// file: internals/helpers/app_errors.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError is a service-level failure with a stable code, rendered through
// the standard error envelope by JsonAppError.
type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

func ErrNotFound(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, "NOT_FOUND", message)
}

func ErrBadRequest(code, message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, code, message)
}

func ErrForbidden(message string) *AppError {
	return NewAppError(fiber.StatusForbidden, "FORBIDDEN", message)
}

func ErrConflict(message string) *AppError {
	return NewAppError(fiber.StatusConflict, "CONFLICT", message)
}

// JsonAppError renders an AppError; anything else becomes a 500 (after a
// pass through the Postgres constraint translator).
func JsonAppError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(ErrorResponse{
			Success:   false,
			Message:   appErr.Message,
			ErrorCode: appErr.Code,
		})
	}
	if translated := TranslatePGError(err); errors.As(translated, &appErr) {
		return c.Status(appErr.Status).JSON(ErrorResponse{
			Success:   false,
			Message:   appErr.Message,
			ErrorCode: appErr.Code,
		})
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
