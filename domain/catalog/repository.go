package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/vander-supa3/academia-nutricional/pkg/apperror"
	"github.com/vander-supa3/academia-nutricional/pkg/logger"
)

// Repository handles catalog database operations
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new catalog repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("catalog.repo")),
	}
}

// SearchRecipes returns recipes matching an optional case-insensitive title
// substring and an optional exact meal type, ordered by title.
func (r *Repository) SearchRecipes(ctx context.Context, query, mealType string) ([]Recipe, error) {
	recipes := []Recipe{}

	q := r.db.NewSelect().
		Model(&recipes).
		Order("title ASC")

	if mealType != "" {
		q = q.Where("meal_type = ?", mealType)
	}
	if query != "" {
		q = q.Where("lower(title) LIKE lower(?)", "%"+query+"%")
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}
	return recipes, nil
}

// SearchWorkouts returns workouts matching an optional title substring,
// exact focus and a maximum duration, newest first.
func (r *Repository) SearchWorkouts(ctx context.Context, query, focus string, minutesMax int) ([]Workout, error) {
	workouts := []Workout{}

	q := r.db.NewSelect().
		Model(&workouts).
		Order("created_at DESC")

	if focus != "" {
		q = q.Where("focus = ?", focus)
	}
	if minutesMax > 0 {
		q = q.Where("minutes <= ?", minutesMax)
	}
	if query != "" {
		q = q.Where("lower(title) LIKE lower(?)", "%"+query+"%")
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("search workouts: %w", err)
	}
	return workouts, nil
}

// GetWorkout returns one workout by id.
func (r *Repository) GetWorkout(ctx context.Context, id string) (*Workout, error) {
	workout := new(Workout)
	err := r.db.NewSelect().
		Model(workout).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("workout", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return workout, nil
}

// ListExercises returns a workout's exercises in sequence order.
func (r *Repository) ListExercises(ctx context.Context, workoutID string) ([]WorkoutExercise, error) {
	exercises := []WorkoutExercise{}

	err := r.db.NewSelect().
		Model(&exercises).
		Where("workout_id = ?", workoutID).
		Order("order_index ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// CheapRecipesByMealType returns the budget-tagged recipe pool for one meal
// slot, ordered by title so plan generation is deterministic.
func (r *Repository) CheapRecipesByMealType(ctx context.Context, mealType string) ([]Recipe, error) {
	recipes := []Recipe{}

	err := r.db.NewSelect().
		Model(&recipes).
		Where("meal_type = ?", mealType).
		Where("cheap = ?", true).
		Order("title ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("cheap recipes: %w", err)
	}
	return recipes, nil
}

// ListWorkouts returns the full workout pool ordered by title, used for
// round-robin plan generation.
func (r *Repository) ListWorkouts(ctx context.Context) ([]Workout, error) {
	workouts := []Workout{}

	err := r.db.NewSelect().
		Model(&workouts).
		Order("title ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}
