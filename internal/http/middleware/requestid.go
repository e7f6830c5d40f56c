package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the Fiber locals key holding the request id.
	RequestIDLocalKey = "request_id"
)

// RequestID reuses the caller's X-Request-ID or mints a UUID, echoes it on the response,
// stores it in locals and tags the active span (started by otelfiber) with request_id.
// It must run after the tracing middleware and before Logger.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Header values alias the request buffer; the id outlives it in logs and spans.
		id := utils.CopyString(c.Get(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)
		trace.SpanFromContext(c.UserContext()).SetAttributes(attribute.String(RequestIDLocalKey, id))

		return c.Next()
	}
}
