// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the periodic maintenance jobs.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gau7ab/folio-go/internal/cache"
	"github.com/gau7ab/folio-go/internal/geoip"
	"github.com/gau7ab/folio-go/internal/store"
)

// EventRetention is how long event log entries are kept.
const EventRetention = 90 * 24 * time.Hour

// Scheduler handles periodic maintenance: event log pruning, GeoIP
// database reloads and cache statistics reporting.
type Scheduler struct {
	db           *sql.DB
	cacheManager *cache.Manager
	geo          *geoip.Lookup
	cron         *cron.Cron
	logger       *slog.Logger
}

// New creates a new scheduler instance.
func New(db *sql.DB, cm *cache.Manager, geo *geoip.Lookup, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:           db,
		cacheManager: cm,
		geo:          geo,
		cron:         cron.New(),
		logger:       logger,
	}
}

// Start registers the maintenance jobs and begins running them.
func (s *Scheduler) Start() error {
	// Prune old events nightly.
	if _, err := s.cron.AddFunc("30 3 * * *", func() {
		if err := s.PruneEvents(context.Background()); err != nil {
			s.logger.Error("failed to prune events", "error", err)
		}
	}); err != nil {
		return err
	}

	// Pick up a refreshed GeoIP database without a restart.
	if _, err := s.cron.AddFunc("0 * * * *", func() {
		if !s.geo.IsEnabled() {
			return
		}
		if err := s.geo.Reload(); err != nil {
			s.logger.Warn("geoip reload failed", "error", err)
		}
	}); err != nil {
		return err
	}

	// Hourly cache statistics, visible in the event log at debug level.
	if _, err := s.cron.AddFunc("0 * * * *", func() {
		stats := s.cacheManager.Stats()
		s.logger.Debug("cache statistics",
			"hits", stats.Hits, "misses", stats.Misses,
			"items", stats.Items, "hit_rate", stats.HitRate)
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// PruneEvents removes event log entries older than the retention window.
func (s *Scheduler) PruneEvents(ctx context.Context) error {
	queries := store.New(s.db)

	cutoff := time.Now().Add(-EventRetention)
	pruned, err := queries.PruneEventsBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if pruned > 0 {
		s.logger.Info("pruned old events", "count", pruned, "cutoff", cutoff.Format(time.RFC3339))
	}
	return nil
}
