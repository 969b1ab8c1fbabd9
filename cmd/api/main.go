package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"careers/internal/config"
	"careers/internal/database"
	"careers/internal/database/migration"
	"careers/internal/events"
	handlers "careers/internal/http/handler"
	"careers/internal/http/middleware"
	"careers/internal/locale"
	"careers/internal/logger"
	"careers/internal/metrics"
	tracing "careers/internal/otel"
	"careers/internal/repository"
	"careers/internal/repository/postgres"
	"careers/internal/repository/redis"
	"careers/internal/service"
	"careers/internal/storage"
	"careers/internal/upload"
)

// @title Careers Community API
// @version 1.0
// @description Multilingual job-application site: signup, CV submission and language switching.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if err := cfg.ApplyFlags(os.Args[1:]); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server_failed", zap.Error(err))
	}
}

// backends are the optional stores behind the repositories, kept so they can
// be pinged by /health and closed on shutdown.
type backends struct {
	db  *sql.DB
	rdb *goredis.Client
}

func (b *backends) close() {
	if b.db != nil {
		b.db.Close()
	}
	if b.rdb != nil {
		b.rdb.Close()
	}
}

func run(cfg *config.AppConfig, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, zl)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			zl.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	store, err := newStorage(cfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	intake, err := metrics.NewIntake(reg)
	if err != nil {
		return err
	}
	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	var be backends
	defer be.close()
	apps, signups, checks, err := newRepositories(ctx, cfg, zl, &be)
	if err != nil {
		return err
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.RabbitMQ.URL != "" {
		rmq, err := events.NewRabbitMQ(cfg.RabbitMQ)
		if err != nil {
			return err
		}
		publisher = rmq
	}
	defer publisher.Close()

	table := locale.NewTable()
	acceptor := upload.NewAcceptor(store, upload.WithMaxBytes(cfg.Upload.MaxBytes))

	pages, err := handlers.NewPages(table, cfg.RenderMode)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		// Room for the other form fields; the acceptor enforces the exact CV limit.
		BodyLimit:    int(acceptor.MaxBytes()) + 1<<20,
		ErrorHandler: handlers.ErrorHandler(zl),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(zl))
	app.Use(promMw.Handler())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(middleware.Locale(locale.NewResolver(table)))

	handlers.RegisterRoutes(app, handlers.Deps{
		Applications: service.NewApplicationService(service.ApplicationDeps{
			Acceptor: acceptor,
			Repo:     apps,
			Events:   publisher,
			Metrics:  intake,
			Log:      zl,
		}),
		Signups: service.NewSignupService(service.SignupDeps{
			Repo:     signups,
			Metrics:  intake,
			Log:      zl,
			Validate: cfg.SignupValidation,
		}),
		Languages: service.NewLanguageService(table, intake),
		Pages:     pages,
		Uploads:   store,
		Checks:    checks,
		Gatherer:  reg,
		Log:       zl,
	})

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server_starting",
			zap.String("addr", ":"+cfg.Port),
			zap.String("render_mode", cfg.RenderMode),
			zap.String("storage_backend", cfg.Upload.Backend),
			zap.String("repository_backend", cfg.RepositoryBackend),
		)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("server_stopping")
	return app.ShutdownWithTimeout(10 * time.Second)
}

func newStorage(cfg *config.AppConfig) (storage.Storage, error) {
	switch cfg.Upload.Backend {
	case config.StorageMinIO:
		return storage.NewMinIO(cfg.MinIO)
	default:
		return storage.NewDisk(afero.NewOsFs(), cfg.Upload.Dir)
	}
}

func newRepositories(ctx context.Context, cfg *config.AppConfig, zl *zap.Logger, be *backends) (
	repository.ApplicationRepository, repository.SignupRepository, []handlers.Dependency, error,
) {
	switch cfg.RepositoryBackend {
	case config.RepositoryPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		be.db = db
		if err := migration.EnsureMigrated(ctx, db, zl, cfg.Database.Host); err != nil {
			return nil, nil, nil, err
		}
		return postgres.NewApplicationPostgres(db), postgres.NewSignupPostgres(db),
			[]handlers.Dependency{{Name: "database", Ping: db.PingContext}}, nil

	case config.RepositoryRedis:
		rdb, err := database.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		be.rdb = rdb
		st := redis.NewStore(rdb, cfg.Redis.KeyPrefix)
		return st.Applications(), st.Signups(),
			[]handlers.Dependency{{Name: "redis", Ping: st.Ping}}, nil

	case config.RepositoryNone:
		zl.Warn("repository_disabled", zap.String("detail", "submissions and signups are logged but not stored"))
		return repository.DiscardApplications{}, repository.DiscardSignups{}, nil, nil
	}
	return nil, nil, nil, errors.New("unknown repository backend " + cfg.RepositoryBackend)
}
