package threads

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

// Repository handles thread binding database operations
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new thread repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("threads.repo")),
	}
}

// Get returns the user's thread binding, or nil if none exists.
func (r *Repository) Get(ctx context.Context, userID string) (*Thread, error) {
	thread := new(Thread)
	err := r.db.NewSelect().
		Model(thread).
		Where("user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get thread binding: %w", err)
	}
	return thread, nil
}

// Upsert writes the binding. Last writer wins.
func (r *Repository) Upsert(ctx context.Context, userID, threadID string) error {
	thread := &Thread{
		UserID:    userID,
		ThreadID:  threadID,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := r.db.NewInsert().
		Model(thread).
		On("CONFLICT (user_id) DO UPDATE").
		Set("thread_id = EXCLUDED.thread_id").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert thread binding: %w", err)
	}
	return nil
}
