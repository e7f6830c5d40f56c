package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"studentapi/docs"
	"studentapi/internal/config"
	"studentapi/internal/database"
	"studentapi/internal/database/migration"
	handlers "studentapi/internal/http/handler"
	"studentapi/internal/http/middleware"
	"studentapi/internal/logger"
	"studentapi/internal/metrics"
	apptracing "studentapi/internal/otel"
	"studentapi/internal/repository"
	"studentapi/internal/repository/memory"
	"studentapi/internal/repository/postgres"
	"studentapi/internal/service"
	"studentapi/internal/storage"
	"studentapi/internal/validation"
)

// @title Student API
// @version 1.0
// @description Student records with CSV/XLSX bulk import.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(os.Stderr, time.UTC, "info")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(os.Stdout, cfg.Location(), cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := apptracing.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	repo, pinger, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	// Import archive in an S3-compatible object store (MinIO-supported)
	objStore := storage.NewNoop()
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize object storage")
		}
	} else {
		log.Info().Msg("object storage not configured, import archive disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	importMetrics, err := metrics.NewImportMetrics(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register import metrics")
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register http metrics")
	}

	studentSvc := service.NewStudentService(repo, objStore, validation.New(),
		service.WithImportObserver(importMetrics))

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.ImportMaxBytes,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, pinger, studentSvc, reg)

	// Swagger UI with dynamic host and scheme
	docs.SwaggerInfo.Host = cfg.AppHost
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("store", cfg.StoreDriver).Msg("server starting")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("failed to start server")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown failed")
	}
}

// openStore selects the record store from STORE_DRIVER. The postgres store is migrated before use.
func openStore(ctx context.Context, cfg *config.AppConfig, log zerolog.Logger) (repository.StudentRepository, handlers.Pinger, func()) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Warn().Msg("using in-memory store, records are lost on restart")
		store := memory.NewStore()
		return store, store, func() {}
	}

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	return postgres.NewStudentPostgres(db), db, func() { closeDB(db, log) }
}

func closeDB(db *sql.DB, log zerolog.Logger) {
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
}
