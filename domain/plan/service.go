package plan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vander-supa3/academia-nutricional/domain/catalog"
	"github.com/vander-supa3/academia-nutricional/domain/tracking"
	"github.com/vander-supa3/academia-nutricional/domain/userprofile"
	"github.com/vander-supa3/academia-nutricional/pkg/logger"
)

const (
	daysPerWeek        = 7
	defaultWaterGoalMl = 2500
)

// Meal slots a generated plan day fills, in order.
var mealSlots = []string{catalog.MealBreakfast, catalog.MealLunch, catalog.MealDinner}

// Service generates weekly plans and composes the day view.
type Service struct {
	repo     *Repository
	catalog  *catalog.Repository
	profiles *userprofile.Repository
	tracking *tracking.Repository
	log      *slog.Logger
}

// NewService creates a new plan service
func NewService(
	repo *Repository,
	catalogRepo *catalog.Repository,
	profileRepo *userprofile.Repository,
	trackingRepo *tracking.Repository,
	log *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		catalog:  catalogRepo,
		profiles: profileRepo,
		tracking: trackingRepo,
		log:      log.With(logger.Scope("plan")),
	}
}

// DayIndex maps a date to the plan's day-of-week index. Monday is 1 and
// Sunday is 7, never 0.
func DayIndex(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}

// kcalBand returns the day's calorie band for a goal.
func kcalBand(goal string) KcalRange {
	switch goal {
	case userprofile.GoalLoseWeight:
		return KcalRange{Min: 1500, Max: 1800}
	case userprofile.GoalHypertrophy:
		return KcalRange{Min: 2200, Max: 2600}
	default:
		return KcalRange{Min: 1800, Max: 2200}
	}
}

// GenerateWeek fills the user's weekly plan. Without force it is
// idempotent: a user who already has 7 plan days gets a no-op message and
// nothing is written. With force, all existing plans are deleted first and
// the full week is regenerated. Days are filled by round-robin selection
// from the budget-tagged recipe pool of each meal slot (empty pools skip
// the slot) and from the workout pool.
func (s *Service) GenerateWeek(ctx context.Context, userID string, force bool) (string, error) {
	count, err := s.repo.CountDays(ctx, userID)
	if err != nil {
		return "", err
	}
	if count >= daysPerWeek && !force {
		return "Você já tem um plano de 7 dias. Use force para regenerar.", nil
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	goal := userprofile.GoalMaintain
	if profile != nil && profile.Goal != "" {
		goal = profile.Goal
	}
	band := kcalBand(goal)

	pools := make(map[string][]catalog.Recipe, len(mealSlots))
	for _, slot := range mealSlots {
		pool, err := s.catalog.CheapRecipesByMealType(ctx, slot)
		if err != nil {
			return "", err
		}
		pools[slot] = pool
	}

	workouts, err := s.catalog.ListWorkouts(ctx)
	if err != nil {
		return "", err
	}

	err = s.repo.WithTx(ctx, func(tx *Repository) error {
		if force {
			if err := tx.DeleteAllForUser(ctx, userID); err != nil {
				return err
			}
		}

		existing, err := tx.ExistingDayIndexes(ctx, userID)
		if err != nil {
			return err
		}

		for day := 1; day <= daysPerWeek; day++ {
			if existing[day] {
				continue
			}

			p := &DailyPlan{
				ID:          uuid.New().String(),
				UserID:      userID,
				DayIndex:    day,
				Title:       "Plano de hoje",
				WaterGoalMl: defaultWaterGoalMl,
				KcalMin:     band.Min,
				KcalMax:     band.Max,
			}
			if len(workouts) > 0 {
				w := workouts[(day-1)%len(workouts)]
				p.WorkoutTitle = w.Title
				p.WorkoutMinutes = w.Minutes
			}
			if err := tx.InsertPlan(ctx, p); err != nil {
				return err
			}

			meals := make([]PlanMeal, 0, len(mealSlots))
			order := 0
			for _, slot := range mealSlots {
				pool := pools[slot]
				if len(pool) == 0 {
					continue
				}
				recipe := pool[(day-1)%len(pool)]
				order++
				meals = append(meals, PlanMeal{
					ID:          uuid.New().String(),
					PlanID:      p.ID,
					MealType:    slot,
					RecipeTitle: recipe.Title,
					Kcal:        recipe.Kcal,
					OrderIndex:  order,
				})
			}
			if err := tx.InsertMeals(ctx, meals); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.log.Info("week plan generated",
		slog.String("user_id", userID),
		slog.Bool("force", force),
	)
	return "Plano semanal gerado.", nil
}

// Today composes the full day view for a date: calorie band, profile, the
// day's plan and meals, and the activity log. If the user has no plans at
// all, the week is generated first.
func (s *Service) Today(ctx context.Context, userID string, date time.Time) (*TodayView, error) {
	dateStr := date.Format(tracking.DateLayout)
	dayIndex := DayIndex(date)

	count, err := s.repo.CountDays(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if _, err := s.GenerateWeek(ctx, userID, false); err != nil {
			return nil, fmt.Errorf("generate week: %w", err)
		}
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	goal := userprofile.GoalMaintain
	if profile != nil && profile.Goal != "" {
		goal = profile.Goal
	}

	view := &TodayView{
		Date:     dateStr,
		DayIndex: dayIndex,
		Kcal:     kcalBand(goal),
		Profile:  profile,
		Meals:    []PlanMeal{},
	}

	view.Plan, err = s.repo.GetByDayIndex(ctx, userID, dayIndex)
	if err != nil {
		return nil, err
	}
	if view.Plan != nil {
		view.Meals, err = s.repo.ListMeals(ctx, view.Plan.ID)
		if err != nil {
			return nil, err
		}
	}

	view.Log, err = s.tracking.GetLog(ctx, userID, dateStr)
	if err != nil {
		return nil, err
	}

	return view, nil
}
