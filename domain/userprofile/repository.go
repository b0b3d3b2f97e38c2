package userprofile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/vander-supa3/academia-nutricional/pkg/logger"
)

// Repository handles profile database operations
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new profile repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("userprofile.repo")),
	}
}

// Get returns the profile for a user, or nil if none exists yet.
func (r *Repository) Get(ctx context.Context, userID string) (*Profile, error) {
	profile := new(Profile)
	err := r.db.NewSelect().
		Model(profile).
		Where("id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// Upsert creates or updates a profile.
func (r *Repository) Upsert(ctx context.Context, profile *Profile) error {
	profile.UpdatedAt = time.Now().UTC()

	_, err := r.db.NewInsert().
		Model(profile).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("goal = EXCLUDED.goal").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
