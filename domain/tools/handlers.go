package tools

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/vander-supa3/academia-nutricional/domain/catalog"
	"github.com/vander-supa3/academia-nutricional/domain/plan"
	"github.com/vander-supa3/academia-nutricional/domain/tracking"
	"github.com/vander-supa3/academia-nutricional/pkg/logger"
)

// NewRegistry wires every tool to its domain service.
func NewRegistry(
	catalogRepo *catalog.Repository,
	planSvc *plan.Service,
	trackingSvc *tracking.Service,
	log *slog.Logger,
) *Registry {
	r := &Registry{
		handlers: map[string]HandlerFunc{},
		log:      log.With(logger.Scope("tools")),
	}

	r.handlers["search_recipes"] = func(ctx context.Context, _ string, args map[string]any) Result {
		recipes, err := catalogRepo.SearchRecipes(ctx, argString(args, "query"), argString(args, "mealType"))
		if err != nil {
			return fail(err.Error())
		}
		return ok(Result{"recipes": recipes})
	}

	r.handlers["search_workouts"] = func(ctx context.Context, _ string, args map[string]any) Result {
		workouts, err := catalogRepo.SearchWorkouts(ctx,
			argString(args, "query"),
			argString(args, "focus"),
			argInt(args, "minutesMax"),
		)
		if err != nil {
			return fail(err.Error())
		}
		return ok(Result{"workouts": workouts})
	}

	r.handlers["get_workout"] = func(ctx context.Context, _ string, args map[string]any) Result {
		id := argString(args, "workoutId")
		if id == "" {
			return fail("workoutId is required")
		}
		workout, err := catalogRepo.GetWorkout(ctx, id)
		if err != nil {
			return fail(err.Error())
		}
		exercises, err := catalogRepo.ListExercises(ctx, id)
		if err != nil {
			return fail(err.Error())
		}
		return ok(Result{"workout": workout, "exercises": exercises})
	}

	r.handlers["get_progress_summary"] = func(ctx context.Context, userID string, _ map[string]any) Result {
		summary, err := trackingSvc.ProgressSummary(ctx, userID, time.Now().UTC())
		if err != nil {
			return fail(err.Error())
		}
		return ok(Result{
			"workoutsDone": summary.WorkoutsDone,
			"avgWater":     summary.AvgWater,
			"last14Days":   summary.Last14Days,
		})
	}

	r.handlers["get_today"] = func(ctx context.Context, userID string, args map[string]any) Result {
		date, err := argDate(args)
		if err != nil {
			return fail(err.Error())
		}
		view, err := planSvc.Today(ctx, userID, date)
		if err != nil {
			return fail(err.Error())
		}
		return ok(Result{
			"date":     view.Date,
			"dayIndex": view.DayIndex,
			"kcal":     view.Kcal,
			"profile":  view.Profile,
			"plan":     view.Plan,
			"meals":    view.Meals,
			"log":      view.Log,
		})
	}

	r.handlers["generate_week_plan"] = func(ctx context.Context, userID string, args map[string]any) Result {
		message, err := planSvc.GenerateWeek(ctx, userID, argBool(args, "force"))
		if err != nil {
			return fail(err.Error())
		}
		return ok(Result{"message": message})
	}

	r.handlers["log_water"] = func(ctx context.Context, userID string, args map[string]any) Result {
		date, err := argDate(args)
		if err != nil {
			return fail(err.Error())
		}
		waterMl := argInt(args, "waterMl")
		if waterMl < 0 {
			return fail("waterMl must not be negative")
		}
		entry, err := trackingSvc.LogWater(ctx, userID, date.Format(tracking.DateLayout), waterMl)
		if err != nil {
			return fail(err.Error())
		}
		return ok(Result{"daily_log": entry})
	}

	r.handlers["complete_workout"] = func(ctx context.Context, userID string, args map[string]any) Result {
		date, err := argDate(args)
		if err != nil {
			return fail(err.Error())
		}
		entry, err := trackingSvc.CompleteWorkout(ctx, userID, date.Format(tracking.DateLayout))
		if err != nil {
			return fail(err.Error())
		}
		return ok(Result{"daily_log": entry})
	}

	r.handlers["save_note"] = func(ctx context.Context, userID string, args map[string]any) Result {
		content := strings.TrimSpace(argString(args, "content"))
		if content == "" {
			return fail("content is required")
		}
		date, err := argDate(args)
		if err != nil {
			return fail(err.Error())
		}
		if err := trackingSvc.SaveNote(ctx, userID, date.Format(tracking.DateLayout), content); err != nil {
			return fail(err.Error())
		}
		return ok(nil)
	}

	return r
}

// argDate reads the optional "date" argument (yyyy-mm-dd), defaulting to
// today in UTC.
func argDate(args map[string]any) (time.Time, error) {
	raw := argString(args, "date")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	date, err := time.Parse(tracking.DateLayout, raw)
	if err != nil {
		return time.Time{}, err
	}
	return date, nil
}
