// Package testutil provides shared test helpers: an in-memory database and
// an SSE frame parser.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// schema mirrors migrations/00001_init.sql in SQLite form. Repository
// queries stay portable (no ILIKE, no NOW()) so they run against both.
var schema = []string{
	`CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		goal TEXT NOT NULL DEFAULT 'manter',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE ai_threads (
		user_id TEXT PRIMARY KEY,
		thread_id TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE recipes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		meal_type TEXT NOT NULL,
		kcal INTEGER,
		ingredients TEXT NOT NULL DEFAULT '',
		instructions TEXT NOT NULL DEFAULT '',
		cheap BOOLEAN NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE workouts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		focus TEXT NOT NULL,
		minutes INTEGER NOT NULL,
		level TEXT NOT NULL DEFAULT '',
		equipment TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE workout_exercises (
		id TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL,
		name TEXT NOT NULL,
		seconds INTEGER NOT NULL DEFAULT 45,
		order_index INTEGER NOT NULL
	)`,
	`CREATE TABLE daily_plans (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		day_index INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT 'Plano de hoje',
		workout_title TEXT NOT NULL DEFAULT '',
		workout_minutes INTEGER NOT NULL DEFAULT 20,
		water_goal_ml INTEGER NOT NULL DEFAULT 2500,
		kcal_min INTEGER NOT NULL DEFAULT 1800,
		kcal_max INTEGER NOT NULL DEFAULT 2200,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (user_id, day_index)
	)`,
	`CREATE TABLE plan_meals (
		id TEXT PRIMARY KEY,
		plan_id TEXT NOT NULL,
		meal_type TEXT NOT NULL,
		recipe_title TEXT NOT NULL,
		kcal INTEGER NOT NULL DEFAULT 0,
		order_index INTEGER NOT NULL
	)`,
	`CREATE TABLE daily_logs (
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		water_ml INTEGER NOT NULL DEFAULT 0,
		workout_done BOOLEAN NOT NULL DEFAULT 0,
		meals_logged BOOLEAN NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, date)
	)`,
	`CREATE TABLE user_notes (
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, date)
	)`,
}

// NewDB creates an in-memory SQLite database with the application schema.
// The database is closed when the test finishes.
func NewDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A second connection would see a different :memory: database.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return db
}
