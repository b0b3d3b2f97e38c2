package tracking

import (
	"context"
	"log/slog"
	"time"

	"github.com/vander-supa3/academia-nutricional/pkg/logger"
)

// Service applies log patches and computes progress summaries.
type Service struct {
	repo *Repository
	log  *slog.Logger
}

// NewService creates a new tracking service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("tracking")),
	}
}

// PatchLog performs the merge-safe upsert: read the existing day's log
// (defaulting every field if absent), apply only the supplied patch, and
// write back the full merged row. Logging water never resets workout_done
// and vice versa.
func (s *Service) PatchLog(ctx context.Context, userID, date string, patch LogPatch) (*DailyLog, error) {
	entry, err := s.repo.GetLog(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry = &DailyLog{
			UserID: userID,
			Date:   date,
		}
	}

	if patch.WaterMl != nil {
		entry.WaterMl = *patch.WaterMl
	}
	if patch.WorkoutDone != nil {
		entry.WorkoutDone = *patch.WorkoutDone
	}
	if patch.MealsLogged != nil {
		entry.MealsLogged = *patch.MealsLogged
	}

	if err := s.repo.PutLog(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// LogWater sets the day's water total.
func (s *Service) LogWater(ctx context.Context, userID, date string, waterMl int) (*DailyLog, error) {
	return s.PatchLog(ctx, userID, date, LogPatch{WaterMl: &waterMl})
}

// CompleteWorkout marks the day's workout as done.
func (s *Service) CompleteWorkout(ctx context.Context, userID, date string) (*DailyLog, error) {
	done := true
	return s.PatchLog(ctx, userID, date, LogPatch{WorkoutDone: &done})
}

// ProgressSummary aggregates the last 14 calendar days up to today:
// count of workout-done days and rounded average water across logged days.
func (s *Service) ProgressSummary(ctx context.Context, userID string, today time.Time) (*Summary, error) {
	since := today.AddDate(0, 0, -14).Format(DateLayout)

	logs, err := s.repo.ListLogsSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Last14Days: logs}
	totalWater := 0
	for _, l := range logs {
		if l.WorkoutDone {
			summary.WorkoutsDone++
		}
		totalWater += l.WaterMl
	}
	if len(logs) > 0 {
		summary.AvgWater = int(float64(totalWater)/float64(len(logs)) + 0.5)
	}

	return summary, nil
}

// SaveNote upserts the day's free-text note.
func (s *Service) SaveNote(ctx context.Context, userID, date, content string) error {
	return s.repo.UpsertNote(ctx, &UserNote{
		UserID:  userID,
		Date:    date,
		Content: content,
	})
}
