package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"studentapi/internal/http/middleware"
	"studentapi/internal/importer"
	"studentapi/internal/repository"
	"studentapi/internal/service"
	"studentapi/internal/validation"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorDetails(c, status, code, message, nil)
}

// writeErrorDetails is writeError with a machine-readable details list attached.
func writeErrorDetails(c *fiber.Ctx, status int, code, message string, details any) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError translates a service error into its HTTP response.
// Anything unrecognized is logged and surfaced as a generic 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	var (
		verr    *validation.Error
		decode  *importer.DecodeError
		parse   *importer.ParseError
		noValid *importer.NoValidRowsError
	)

	switch {
	case errors.As(err, &verr):
		return writeErrorDetails(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verr.Errors)
	case errors.Is(err, service.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "student not found")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, importer.ErrEmptyInput):
		return writeError(c, fiber.StatusBadRequest, "EMPTY_INPUT", "No data found in file")
	case errors.As(err, &decode):
		return writeError(c, fiber.StatusBadRequest, "DECODE_ERROR", "file could not be decoded")
	case errors.As(err, &parse):
		return writeErrorDetails(c, fiber.StatusBadRequest, "CSV_PARSE_ERROR", "CSV parsing error", parse.Issues)
	case errors.As(err, &noValid):
		return writeErrorDetails(c, fiber.StatusBadRequest, "NO_VALID_ROWS", "No valid students found in file", noValid.Rejections)
	default:
		zerolog.Ctx(c.UserContext()).Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("unhandled error")
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
