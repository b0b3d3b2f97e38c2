// Package tracking holds per-user activity logs and daily notes.
package tracking

import (
	"time"

	"github.com/uptrace/bun"
)

// DateLayout is the ISO day format used in log and note keys.
const DateLayout = "2006-01-02"

// DailyLog is one user's activity log for one day. The (user_id, date) pair
// is the primary key.
type DailyLog struct {
	bun.BaseModel `bun:"table:daily_logs"`

	UserID      string    `bun:"user_id,pk" json:"user_id"`
	Date        string    `bun:"date,pk" json:"date"`
	WaterMl     int       `bun:"water_ml" json:"water_ml"`
	WorkoutDone bool      `bun:"workout_done" json:"workout_done"`
	MealsLogged bool      `bun:"meals_logged" json:"meals_logged"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// UserNote is a free-text note for one user and day.
type UserNote struct {
	bun.BaseModel `bun:"table:user_notes"`

	UserID    string    `bun:"user_id,pk" json:"user_id"`
	Date      string    `bun:"date,pk" json:"date"`
	Content   string    `bun:"content" json:"content"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// LogPatch is a partial update to a daily log. Nil fields are left as they
// are; the merge never clobbers sibling fields.
type LogPatch struct {
	WaterMl     *int
	WorkoutDone *bool
	MealsLogged *bool
}

// Summary aggregates the last 14 calendar days of a user's logs.
type Summary struct {
	WorkoutsDone int        `json:"workoutsDone"`
	AvgWater     int        `json:"avgWater"`
	Last14Days   []DailyLog `json:"last14Days"`
}
