// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/gau7ab/folio-go/internal/cache"
	"github.com/gau7ab/folio-go/internal/config"
	"github.com/gau7ab/folio-go/internal/geoip"
	"github.com/gau7ab/folio-go/internal/handler"
	"github.com/gau7ab/folio-go/internal/imaging"
	"github.com/gau7ab/folio-go/internal/logging"
	"github.com/gau7ab/folio-go/internal/middleware"
	"github.com/gau7ab/folio-go/internal/scheduler"
	"github.com/gau7ab/folio-go/internal/service"
	"github.com/gau7ab/folio-go/internal/session"
	"github.com/gau7ab/folio-go/internal/store"
	"github.com/gau7ab/folio-go/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("folio %s\n", version.String())
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(textHandler))

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to mirror WARN and ERROR records into the event log
	logger := slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.AdminEmail); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	if cfg.DoSeed {
		if err := store.SeedDemo(ctx, db); err != nil {
			return fmt.Errorf("seeding demo content: %w", err)
		}
	}

	queries := store.New(db)

	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	backend := cache.NewCache(cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	})
	cacheManager := cache.NewManager(backend, queries, time.Duration(cfg.CacheTTL)*time.Second)
	defer func() {
		if err := cacheManager.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()

	geo := geoip.NewLookup()
	if cfg.GeoIPEnabled() {
		if err := geo.Init(cfg.GeoIPDBPath); err != nil {
			slog.Warn("geoip disabled", "error", err, "path", cfg.GeoIPDBPath)
		} else {
			slog.Info("geoip database loaded", "path", cfg.GeoIPDBPath)
		}
	}
	defer func() { _ = geo.Close() }()

	sched := scheduler.New(db, cacheManager, geo, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Router and middleware stack
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.RequestPath)
	r.Use(sessionManager.LoadAndSave)

	// CSRF covers the whole router; the contact form and uploads are
	// reached by non-browser clients and opt out.
	r.Use(middleware.SkipCSRF("/api/contact", "/uploads/"))
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())))

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	slog.Info("login protection initialized",
		"max_failed_attempts", middleware.DefaultLoginProtectionConfig().MaxFailedAttempts,
	)

	// Handlers
	authHandler := handler.NewAuthHandler(db, sessionManager, loginProtection, cfg.AdminEmail)
	contactHandler := handler.NewContactHandler(service.NewInboxService(queries, geo))
	portfolioHandler := handler.NewPortfolioHandler(service.NewSnapshotService(queries), cacheManager)
	resources := handler.NewContentResources(queries, cacheManager)
	messagesHandler := handler.NewMessagesHandler(db)
	photosHandler := handler.NewTrekPhotosHandler(db, imaging.NewProcessor(cfg.UploadsDir), cacheManager)
	settingsHandler := handler.NewSettingsHandler(db, cacheManager)
	eventsHandler := handler.NewEventsHandler(db)
	cacheHandler := handler.NewCacheHandler(cacheManager)
	healthHandler := handler.NewHealthHandler(db, sessionManager, cfg.AdminEmail, cfg.UploadsDir)

	// Public routes
	r.Get("/api/health", healthHandler.Health)
	r.Get("/api/health/live", healthHandler.Liveness)
	r.Get("/api/health/ready", healthHandler.Readiness)
	r.Get("/api/portfolio", portfolioHandler.Get)
	r.With(middleware.IPRateLimit(1, 5)).Post("/api/contact", contactHandler.Submit)

	// Auth routes
	r.Get("/login", authHandler.LoginPage)
	r.With(loginProtection.Middleware()).Post("/api/login", authHandler.Login)
	r.Post("/api/logout", authHandler.Logout)

	// Admin API, every route behind the session guard
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.APIAuth(sessionManager, db, cfg.AdminEmail))
		resources.Mount(r)
		messagesHandler.Mount(r)
		photosHandler.Mount(r)
		r.Get("/settings", settingsHandler.Get)
		r.Put("/settings", settingsHandler.Update)
		r.Get("/events", eventsHandler.List)
		r.Get("/cache/stats", cacheHandler.Stats)
		r.Post("/cache/clear", cacheHandler.Clear)
	})

	// Admin entry: unauthenticated requests are redirected to the login
	// page served by the fronting client.
	r.With(middleware.Auth(sessionManager)).Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	// Processed uploads (display images and thumbs)
	r.Get("/uploads/*", serveUpload(cfg.UploadsDir))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", version.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// serveUpload serves files below the uploads directory, rejecting path
// traversal and directory requests.
func serveUpload(uploadsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rel := chi.URLParam(r, "*")
		if rel == "" || strings.Contains(rel, "..") {
			http.NotFound(w, r)
			return
		}
		abs := filepath.Join(uploadsDir, filepath.FromSlash(rel))
		info, err := os.Stat(abs)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, abs)
	}
}
