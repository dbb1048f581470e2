// Copyright (c) 2026 Hientensai. All rights reserved.
// Author: hien@hientensai.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hientensai/blogapi/internal/content/author"
	"github.com/hientensai/blogapi/internal/content/page"
	"github.com/hientensai/blogapi/internal/content/post"
	"github.com/hientensai/blogapi/internal/content/syndication"
	"github.com/hientensai/blogapi/internal/content/taxonomy"
	"github.com/hientensai/blogapi/internal/platform/config"
	"github.com/hientensai/blogapi/internal/platform/constants"
	"github.com/hientensai/blogapi/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Post handles the post listings, detail, archive, and search routes.
	Post *post.Handler

	// Page handles the static page routes.
	Page *page.Handler

	// Author handles author profiles and per-author listings.
	Author *author.Handler

	// Taxonomy handles category and tag listings.
	Taxonomy *taxonomy.Handler

	// Syndication handles the feed, sitemap, and robots.txt surfaces.
	Syndication *syndication.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Syndication Surfaces
	// Served at the root, outside the versioned API prefix, because feed
	// readers and crawlers expect fixed well-known paths.
	r.Get("/feed", h.Syndication.Feed)
	r.Get("/sitemap.xml", h.Syndication.Sitemap)
	r.Get("/robots.txt", h.Syndication.Robots)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/posts", h.Post.Routes())
		api.Mount("/pages", h.Page.Routes())
		api.Mount("/authors", h.Author.Routes())

		api.Route("/categories", func(categories chi.Router) {
			categories.Get("/", h.Taxonomy.ListCategories)
			categories.Get("/{slug}/posts", h.Post.ByCategory)
		})
		api.Route("/tags", func(tags chi.Router) {
			tags.Get("/", h.Taxonomy.ListTags)
			tags.Get("/{slug}/posts", h.Post.ByTag)
		})
		api.Route("/archive", func(archive chi.Router) {
			archive.Get("/", h.Post.ArchiveIndex)
			archive.Get("/{year}", h.Post.ArchiveYear)
			archive.Get("/{year}/{month}", h.Post.ArchiveMonth)
		})

		api.Get("/search", h.Post.Search)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
