// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Grandline catalog HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis when REDIS_URL is set, otherwise keep rate limits in-process.
//  5. Run database migrations (idempotent).
//  6. Wire the catalog families and the operator auth.
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

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/grandline/internal/api"
	"github.com/taibuivan/grandline/internal/core/character"
	"github.com/taibuivan/grandline/internal/core/devilfruit"
	"github.com/taibuivan/grandline/internal/core/organization"
	"github.com/taibuivan/grandline/internal/core/ship"
	"github.com/taibuivan/grandline/internal/core/taxonomy"
	"github.com/taibuivan/grandline/internal/platform/config"
	"github.com/taibuivan/grandline/internal/platform/constants"
	"github.com/taibuivan/grandline/internal/platform/integrity"
	"github.com/taibuivan/grandline/internal/platform/metrics"
	"github.com/taibuivan/grandline/internal/platform/migration"
	pgstore "github.com/taibuivan/grandline/internal/platform/postgres"
	"github.com/taibuivan/grandline/internal/platform/ratelimit"
	redisstore "github.com/taibuivan/grandline/internal/platform/redis"
	"github.com/taibuivan/grandline/internal/platform/sec"
	"github.com/taibuivan/grandline/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("shared_rate_limits", cfg.RedisURL != ""),
		slog.Int("trusted_proxies", len(cfg.TrustedProxies())),
	)

	// Misconfigured dependencies fail within the startup deadline instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// Background work (in-process limiter sweeps) lives until shutdown.
	runCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Rate limit store ───────────────────────────────────────────────
	generalPolicy := ratelimit.Policy{Name: "general", Window: cfg.RateLimitWindow, Max: cfg.RateLimitGeneralMax}
	sensitivePolicy := ratelimit.Policy{Name: "sensitive", Window: cfg.RateLimitWindow, Max: cfg.RateLimitSensitiveMax}

	var limiters api.Limiters
	var checkCache func(ctx context.Context) error

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		limiters.General = ratelimit.NewRedisLimiter(rdb, generalPolicy)
		limiters.Sensitive = ratelimit.NewRedisLimiter(rdb, sensitivePolicy)
		checkCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	} else {
		general := ratelimit.NewMemoryLimiter(generalPolicy)
		sensitive := ratelimit.NewMemoryLimiter(sensitivePolicy)
		go general.Run(runCtx, constants.RateLimitCleanupInterval)
		go sensitive.Run(runCtx, constants.RateLimitCleanupInterval)

		limiters.General, limiters.Sensitive = general, sensitive
		log.Warn("rate_limits_in_process", slog.String("reason", "REDIS_URL not set"))
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	tokens, err := sec.LoadTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, cfg.JWTIssuer)
	must(log, err, "initialize jwt service")
	if cfg.JWTPrivKeyPath == "" {
		log.Warn("token_signing_disabled", slog.String("reason", "JWT_PRIVATE_KEY_PATH not set"))
	}

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckCache:    checkCache,
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	guard := integrity.NewGuard(integrity.NewPostgresStore(pool))

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   metrics.Handler(),
		Auth: auth.NewHandler(auth.NewService(
			auth.NewPostgresUserRepository(pool), tokens, cfg.AccessTokenTTL, log,
		)),
		Characters:    character.NewHandler(character.NewService(character.NewPostgresRepository(pool), guard, log)),
		DevilFruits:   devilfruit.NewHandler(devilfruit.NewService(devilfruit.NewPostgresRepository(pool), guard, log)),
		Organizations: organization.NewHandler(organization.NewService(organization.NewPostgresRepository(pool), guard, log)),
		Ships:         ship.NewHandler(ship.NewService(ship.NewPostgresRepository(pool), guard, log)),
	}
	for _, kind := range taxonomy.Kinds {
		service := taxonomy.NewService(kind, taxonomy.NewPostgresRepository(pool, kind), guard, log)
		handlers.Taxonomy = append(handlers.Taxonomy, taxonomy.NewHandler(service))
	}

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(cfg, log, tokens, limiters, handlers)

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
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	stopBackground()
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger returns the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

func closeRedis(log *slog.Logger, client *goredis.Client) {
	log.Info("closing redis client")
	if err := client.Close(); err != nil {
		log.Error("redis_close_error", slog.Any("error", err))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
