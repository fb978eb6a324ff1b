// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// SeedDemo fills the database with sample portfolio content so a fresh
// install has something to show. Called after Seed() when seeding is
// enabled, and skipped if any content already exists.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	existing, err := queries.ListAboutSections(ctx)
	if err != nil {
		return fmt.Errorf("checking existing content: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("content already present, skipping demo seed")
		return nil
	}

	slog.Info("seeding demo portfolio content")

	if err := seedDemoAbout(ctx, queries); err != nil {
		return fmt.Errorf("seeding about sections: %w", err)
	}
	if err := seedDemoSkills(ctx, queries); err != nil {
		return fmt.Errorf("seeding skills: %w", err)
	}
	if err := seedDemoExperience(ctx, queries); err != nil {
		return fmt.Errorf("seeding experience: %w", err)
	}
	if err := seedDemoProjects(ctx, queries); err != nil {
		return fmt.Errorf("seeding projects: %w", err)
	}

	return nil
}

func seedDemoAbout(ctx context.Context, q *Queries) error {
	sections := []CreateAboutSectionParams{
		{Section: "intro", Title: "Hello", Body: "Software engineer with a focus on backend systems and a weakness for long mountain trails.", Position: 1},
		{Section: "bio", Title: "Background", Body: "I build web services, data pipelines and the occasional CLI tool. Most of my work lives on small servers I run myself.", Position: 2},
	}
	for _, s := range sections {
		if _, err := q.CreateAboutSection(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func seedDemoSkills(ctx context.Context, q *Queries) error {
	skills := []CreateSkillParams{
		{Name: "Go", Category: "Languages", Level: 90, Position: 1},
		{Name: "SQL", Category: "Languages", Level: 80, Position: 2},
		{Name: "SQLite", Category: "Databases", Level: 85, Position: 1},
		{Name: "Redis", Category: "Databases", Level: 70, Position: 2},
		{Name: "Linux", Category: "Infrastructure", Level: 85, Position: 1},
	}
	for _, s := range skills {
		if _, err := q.CreateSkill(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func seedDemoExperience(ctx context.Context, q *Queries) error {
	entries := []CreateExperienceParams{
		{
			Company:   "Example Systems",
			Role:      "Backend Engineer",
			Location:  "Remote",
			StartDate: "2022-03",
			Summary:   "Built and operated internal services.",
			Position:  1,
		},
	}
	for _, e := range entries {
		if _, err := q.CreateExperience(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func seedDemoProjects(ctx context.Context, q *Queries) error {
	projects := []CreateProjectParams{
		{
			Title:    "Folio",
			Slug:     "folio",
			Summary:  "The engine behind this site.",
			Body:     "A small portfolio server with a JSON admin API.",
			Tech:     `["Go","SQLite"]`,
			Featured: true,
			Position: 1,
		},
	}
	for _, p := range projects {
		if _, err := q.CreateProject(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
