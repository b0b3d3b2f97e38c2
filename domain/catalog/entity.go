// Package catalog holds the global recipe and workout library. Catalog
// reads are not user-scoped.
package catalog

import (
	"time"

	"github.com/uptrace/bun"
)

// Meal type labels as they appear in the catalog.
const (
	MealBreakfast = "Café da manhã"
	MealLunch     = "Almoço"
	MealDinner    = "Jantar"
	MealSnack     = "Lanche"
)

// Recipe represents a catalog recipe.
type Recipe struct {
	bun.BaseModel `bun:"table:recipes"`

	ID           string    `bun:"id,pk" json:"id"`
	Title        string    `bun:"title,notnull" json:"title"`
	MealType     string    `bun:"meal_type,notnull" json:"mealType"`
	Kcal         int       `bun:"kcal" json:"kcal"`
	Ingredients  string    `bun:"ingredients" json:"ingredients"`
	Instructions string    `bun:"instructions" json:"instructions"`
	Cheap        bool      `bun:"cheap" json:"cheap"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
}

// Workout represents a catalog workout.
type Workout struct {
	bun.BaseModel `bun:"table:workouts"`

	ID          string    `bun:"id,pk" json:"id"`
	Title       string    `bun:"title,notnull" json:"title"`
	Focus       string    `bun:"focus,notnull" json:"focus"`
	Minutes     int       `bun:"minutes,notnull" json:"minutes"`
	Level       string    `bun:"level" json:"level"`
	Equipment   string    `bun:"equipment" json:"equipment"`
	Description string    `bun:"description" json:"description"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
}

// WorkoutExercise is one exercise within a workout, ordered by OrderIndex.
type WorkoutExercise struct {
	bun.BaseModel `bun:"table:workout_exercises"`

	ID         string `bun:"id,pk" json:"id"`
	WorkoutID  string `bun:"workout_id,notnull" json:"workoutId"`
	Name       string `bun:"name,notnull" json:"name"`
	Seconds    int    `bun:"seconds,notnull" json:"seconds"`
	OrderIndex int    `bun:"order_index,notnull" json:"orderIndex"`
}
