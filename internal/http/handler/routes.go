package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studentapi/internal/service"
)

// Pinger is the store dependency checked by the health endpoint.
// *sql.DB and the in-memory store both satisfy it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// /metrics is only mounted when a gatherer is supplied.
func RegisterRoutes(app *fiber.App, db Pinger, svc service.StudentService, gatherer prometheus.Gatherer) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	if gatherer != nil {
		app.Get("/metrics", Metrics(gatherer))
	}

	students := app.Group("/students")
	students.Get("/", ListStudents(svc))
	students.Post("/", CreateStudent(svc))
	students.Post("/import-csv", ImportStudents(svc))
	students.Get("/:id", GetStudent(svc))
	students.Put("/:id", UpdateStudent(svc))
	students.Delete("/:id", DeleteStudent(svc))
}

// HealthCheck reports whether the record store is reachable.
func HealthCheck(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Metrics exposes the gatherer in the Prometheus text format.
func Metrics(gatherer prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
