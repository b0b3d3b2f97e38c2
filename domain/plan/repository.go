package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/vander-supa3/academia-nutricional/internal/database"
	"github.com/vander-supa3/academia-nutricional/pkg/logger"
)

// Repository handles plan database operations
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new plan repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("plan.repo")),
	}
}

// WithTx runs fn against a transactional copy of the repository.
func (r *Repository) WithTx(ctx context.Context, fn func(*Repository) error) error {
	tx, err := database.BeginSafeTx(ctx, r.db)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Repository{db: tx, log: r.log}); err != nil {
		return err
	}
	return tx.Commit()
}

// CountDays returns how many plan days the user has.
func (r *Repository) CountDays(ctx context.Context, userID string) (int, error) {
	count, err := r.db.NewSelect().
		Model((*DailyPlan)(nil)).
		Where("user_id = ?", userID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count plan days: %w", err)
	}
	return count, nil
}

// ExistingDayIndexes returns the day indexes the user already has plans for.
func (r *Repository) ExistingDayIndexes(ctx context.Context, userID string) (map[int]bool, error) {
	var indexes []int
	err := r.db.NewSelect().
		Model((*DailyPlan)(nil)).
		Column("day_index").
		Where("user_id = ?", userID).
		Scan(ctx, &indexes)
	if err != nil {
		return nil, fmt.Errorf("list plan day indexes: %w", err)
	}

	existing := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		existing[idx] = true
	}
	return existing, nil
}

// GetByDayIndex returns the user's plan for one day index, or nil.
func (r *Repository) GetByDayIndex(ctx context.Context, userID string, dayIndex int) (*DailyPlan, error) {
	p := new(DailyPlan)
	err := r.db.NewSelect().
		Model(p).
		Where("user_id = ?", userID).
		Where("day_index = ?", dayIndex).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

// ListMeals returns a plan's meals in slot order.
func (r *Repository) ListMeals(ctx context.Context, planID string) ([]PlanMeal, error) {
	meals := []PlanMeal{}

	err := r.db.NewSelect().
		Model(&meals).
		Where("plan_id = ?", planID).
		Order("order_index ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plan meals: %w", err)
	}
	return meals, nil
}

// InsertPlan inserts one plan day.
func (r *Repository) InsertPlan(ctx context.Context, p *DailyPlan) error {
	if _, err := r.db.NewInsert().Model(p).Exec(ctx); err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// InsertMeals inserts a plan day's meals.
func (r *Repository) InsertMeals(ctx context.Context, meals []PlanMeal) error {
	if len(meals) == 0 {
		return nil
	}
	if _, err := r.db.NewInsert().Model(&meals).Exec(ctx); err != nil {
		return fmt.Errorf("insert plan meals: %w", err)
	}
	return nil
}

// DeleteAllForUser removes every plan day (and its meals) for a user.
func (r *Repository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.db.NewDelete().
		Model((*PlanMeal)(nil)).
		Where("plan_id IN (SELECT id FROM daily_plans WHERE user_id = ?)", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete plan meals: %w", err)
	}

	_, err = r.db.NewDelete().
		Model((*DailyPlan)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete plans: %w", err)
	}
	return nil
}
