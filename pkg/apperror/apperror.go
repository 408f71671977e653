package apperror

import (
	"fmt"

	"ai-math-tutor/config"
	"ai-math-tutor/pkg/apperror/status"
	"ai-math-tutor/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

// ErrorResponse is the standardized HTTP error payload
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	ErrorCode string `json:"error_code"`
}

// WriteError logs a structured warning and returns a standardized JSON error
func WriteError(module config.Module, c fiber.Ctx, httpStatus int, code string, message, details string) error {
	logger.WithFields(map[string]interface{}{
		"module":        module,
		"status_code":   httpStatus,
		"error_code":    code,
		"error_message": message,
		"details":       details,
		"http_method":   c.Method(),
		"path":          c.Path(),
		"url":           c.OriginalURL(),
		"ip":            c.IP(),
	}).Warnf("http error")

	return c.Status(httpStatus).JSON(ErrorResponse{
		Error:     message,
		Details:   details,
		ErrorCode: code,
	})
}

// BadRequest writes a 400 with a short validation message
func BadRequest(module config.Module, c fiber.Ctx, code status.ErrorCode, message string) error {
	errorCode := fmt.Sprintf("MT-%d", code)
	return WriteError(module, c, fiber.StatusBadRequest, errorCode, message, "")
}

// InternalError writes a 500 wrapping the underlying upstream failure
func InternalError(module config.Module, c fiber.Ctx, code status.ErrorCode, message string, err error) error {
	errorCode := fmt.Sprintf("MT-%d", code)
	details := ""
	if err != nil {
		details = err.Error()
	}
	return WriteError(module, c, fiber.StatusInternalServerError, errorCode, message, details)
}
