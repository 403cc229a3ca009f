// Copyright (c) 2026 Apollo. All rights reserved.

// Command api is the entry point for the Apollo HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (primary and search pools).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/apollo/internal/api"
	"github.com/taibuivan/apollo/internal/collection"
	"github.com/taibuivan/apollo/internal/list"
	"github.com/taibuivan/apollo/internal/objekt"
	"github.com/taibuivan/apollo/internal/platform/config"
	"github.com/taibuivan/apollo/internal/platform/constants"
	"github.com/taibuivan/apollo/internal/platform/migration"
	pgstore "github.com/taibuivan/apollo/internal/platform/postgres"
	redisstore "github.com/taibuivan/apollo/internal/platform/redis"
	"github.com/taibuivan/apollo/internal/platform/sec"
	"github.com/taibuivan/apollo/internal/transfer"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, "primary", cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// The search index shares the primary pool unless it has its own DSN.
	searchPool := pool
	if cfg.SearchURL() != cfg.DatabaseURL {
		searchPool, err = pgstore.NewPool(startupCtx, "search", cfg.SearchURL(), log)
		must(log, err, "connect to search index")
		defer func() {
			log.Info("closing search pool")
			searchPool.Close()
		}()
	}

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	if cfg.SkipMigrations {
		log.Info("migrations_skipped")
	} else {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	// ── 6. Session Verification ───────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(healthChecks(pool, searchPool, rdb), log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	listService := list.NewService(list.NewPostgresRepository(pool), log)

	objektService := objekt.NewService(
		objekt.NewRelationalSource(pool),
		objekt.NewSearchSource(searchPool),
		listService,
		log,
	)

	filterCache := redisstore.NewCache(rdb, constants.RedisPrefixFilterData, constants.FilterDataTTL)
	collectionService := collection.NewService(collection.NewPostgresRepository(pool), filterCache, log)

	transferService := transfer.NewService(transfer.NewPostgresRepository(pool))

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Objekt:     objekt.NewHandler(objektService),
		List:       list.NewHandler(listService),
		Collection: collection.NewHandler(collectionService),
		Transfer:   transfer.NewHandler(transferService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokenService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// healthChecks lists the dependencies checked by /ready. The search pool is
// only listed when it is a separate pool.
func healthChecks(pool, searchPool *pgxpool.Pool, rdb *goredis.Client) []api.HealthCheck {
	checks := []api.HealthCheck{
		{Name: "postgres", Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }},
	}
	if searchPool != pool {
		checks = append(checks, api.HealthCheck{
			Name:  "search",
			Check: func(ctx context.Context) error { return pgstore.Ping(ctx, searchPool) },
		})
	}
	return append(checks, api.HealthCheck{
		Name:  "redis",
		Check: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	})
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
