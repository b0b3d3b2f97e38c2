package tracking

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

// Repository handles daily log and note database operations
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new tracking repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("tracking.repo")),
	}
}

// GetLog returns one day's log, or nil if the user has not logged anything
// that day.
func (r *Repository) GetLog(ctx context.Context, userID, date string) (*DailyLog, error) {
	entry := new(DailyLog)
	err := r.db.NewSelect().
		Model(entry).
		Where("user_id = ?", userID).
		Where("date = ?", date).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily log: %w", err)
	}
	return entry, nil
}

// PutLog writes the full merged log row.
func (r *Repository) PutLog(ctx context.Context, entry *DailyLog) error {
	entry.UpdatedAt = time.Now().UTC()

	_, err := r.db.NewInsert().
		Model(entry).
		On("CONFLICT (user_id, date) DO UPDATE").
		Set("water_ml = EXCLUDED.water_ml").
		Set("workout_done = EXCLUDED.workout_done").
		Set("meals_logged = EXCLUDED.meals_logged").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("put daily log: %w", err)
	}
	return nil
}

// ListLogsSince returns a user's logs from a date onward, newest first.
// ISO date strings compare lexicographically in calendar order.
func (r *Repository) ListLogsSince(ctx context.Context, userID, since string) ([]DailyLog, error) {
	logs := []DailyLog{}

	err := r.db.NewSelect().
		Model(&logs).
		Where("user_id = ?", userID).
		Where("date >= ?", since).
		Order("date DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	return logs, nil
}

// UpsertNote creates or replaces a day's note.
func (r *Repository) UpsertNote(ctx context.Context, note *UserNote) error {
	note.UpdatedAt = time.Now().UTC()

	_, err := r.db.NewInsert().
		Model(note).
		On("CONFLICT (user_id, date) DO UPDATE").
		Set("content = EXCLUDED.content").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert note: %w", err)
	}
	return nil
}

// GetNote returns a day's note content, or "" when there is none.
func (r *Repository) GetNote(ctx context.Context, userID, date string) (string, error) {
	note := new(UserNote)
	err := r.db.NewSelect().
		Model(note).
		Where("user_id = ?", userID).
		Where("date = ?", date).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get note: %w", err)
	}
	return note.Content, nil
}
