package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/gau7ab/folio-go/internal/auth"
)

// DefaultAdminPassword is assigned to a freshly seeded admin account and
// must be changed after first login.
const (
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "Administrator"
)

// defaultConfig is written on first start; existing keys are left alone.
var defaultConfig = map[string]string{
	"site_title":   "Portfolio",
	"site_tagline": "",
	"site_url":     "",
}

// Seed creates the admin account and the default site settings if they do
// not exist yet. The email is the configured admin identity, so the seeded
// user matches what the session guard accepts.
func Seed(ctx context.Context, db *sql.DB, adminEmail string) error {
	queries := New(db)

	for key, value := range defaultConfig {
		if _, err := queries.GetConfig(ctx, key); err == sql.ErrNoRows {
			if err := queries.SetConfig(ctx, key, value); err != nil {
				return fmt.Errorf("seeding config %s: %w", key, err)
			}
		}
	}

	_, err := queries.GetUserByEmail(ctx, adminEmail)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Name:         DefaultAdminName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created admin user",
		"id", user.ID,
		"email", user.Email,
		"password", DefaultAdminPassword,
	)

	return nil
}
