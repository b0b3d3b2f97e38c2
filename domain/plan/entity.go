// Package plan holds per-user weekly plans: one daily_plans row per
// day-of-week index (1..7, Sunday is 7) with its plan_meals.
package plan

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/vander-supa3/academia-nutricional/domain/tracking"
	"github.com/vander-supa3/academia-nutricional/domain/userprofile"
)

// DailyPlan is one day of a user's weekly plan.
type DailyPlan struct {
	bun.BaseModel `bun:"table:daily_plans"`

	ID             string    `bun:"id,pk" json:"id"`
	UserID         string    `bun:"user_id,notnull" json:"user_id"`
	DayIndex       int       `bun:"day_index,notnull" json:"day_index"`
	Title          string    `bun:"title,notnull" json:"title"`
	WorkoutTitle   string    `bun:"workout_title" json:"workout_title"`
	WorkoutMinutes int       `bun:"workout_minutes" json:"workout_minutes"`
	WaterGoalMl    int       `bun:"water_goal_ml" json:"water_goal_ml"`
	KcalMin        int       `bun:"kcal_min" json:"kcal_min"`
	KcalMax        int       `bun:"kcal_max" json:"kcal_max"`
	CreatedAt      time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// PlanMeal is one meal slot of a daily plan, ordered by OrderIndex.
type PlanMeal struct {
	bun.BaseModel `bun:"table:plan_meals"`

	ID          string `bun:"id,pk" json:"id"`
	PlanID      string `bun:"plan_id,notnull" json:"plan_id"`
	MealType    string `bun:"meal_type,notnull" json:"meal_type"`
	RecipeTitle string `bun:"recipe_title,notnull" json:"recipe_title"`
	Kcal        int    `bun:"kcal" json:"kcal"`
	OrderIndex  int    `bun:"order_index,notnull" json:"order_index"`
}

// KcalRange is the day's calorie band.
type KcalRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// TodayView composes everything the assistant needs about one day.
type TodayView struct {
	Date     string               `json:"date"`
	DayIndex int                  `json:"dayIndex"`
	Kcal     KcalRange            `json:"kcal"`
	Profile  *userprofile.Profile `json:"profile"`
	Plan     *DailyPlan           `json:"plan"`
	Meals    []PlanMeal           `json:"meals"`
	Log      *tracking.DailyLog   `json:"log"`
}
