// Copyright (c) 2026 Hientensai. All rights reserved.
// Author: hien@hientensai.com

// Command api is the entry point for the blog HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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

	"github.com/hientensai/blogapi/internal/api"
	"github.com/hientensai/blogapi/internal/content/author"
	"github.com/hientensai/blogapi/internal/content/page"
	"github.com/hientensai/blogapi/internal/content/post"
	"github.com/hientensai/blogapi/internal/content/syndication"
	"github.com/hientensai/blogapi/internal/content/taxonomy"
	"github.com/hientensai/blogapi/internal/platform/config"
	"github.com/hientensai/blogapi/internal/platform/constants"
	"github.com/hientensai/blogapi/internal/platform/migration"
	pgstore "github.com/hientensai/blogapi/internal/platform/postgres"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

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

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
	}, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	taxonomyRepository := taxonomy.NewPostgresRepository(pool)
	taxonomyService := taxonomy.NewService(taxonomyRepository, log)
	taxonomyHandler := taxonomy.NewHandler(taxonomyService)

	postRepository := post.NewPostgresRepository(pool)
	postService := post.NewService(postRepository, log)
	postHandler := post.NewHandler(postService, cfg.Locale)

	pageRepository := page.NewPostgresRepository(pool)
	pageService := page.NewService(pageRepository, log)
	pageHandler := page.NewHandler(pageService, cfg.Locale)

	authorRepository := author.NewPostgresRepository(pool)
	authorService := author.NewService(authorRepository, log)
	authorHandler := author.NewHandler(authorService, postService)

	syndicationService := syndication.NewService(syndication.Site{
		URL:         cfg.SiteURL,
		Title:       cfg.SiteTitle,
		Description: cfg.SiteDescription,
		Locale:      cfg.Locale,
	}, postService, pageService, taxonomyService, log)
	syndicationHandler := syndication.NewHandler(syndicationService)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Post:        postHandler,
		Page:        pageHandler,
		Author:      authorHandler,
		Taxonomy:    taxonomyHandler,
		Syndication: syndicationHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
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

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
