// Package main provides the entry point for the vivafit API server.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/vander-supa3/academia-nutricional/domain/assistantrun"
	"github.com/vander-supa3/academia-nutricional/domain/catalog"
	"github.com/vander-supa3/academia-nutricional/domain/health"
	"github.com/vander-supa3/academia-nutricional/domain/plan"
	"github.com/vander-supa3/academia-nutricional/domain/threads"
	"github.com/vander-supa3/academia-nutricional/domain/tools"
	"github.com/vander-supa3/academia-nutricional/domain/tracking"
	"github.com/vander-supa3/academia-nutricional/domain/userprofile"
	"github.com/vander-supa3/academia-nutricional/internal/config"
	"github.com/vander-supa3/academia-nutricional/internal/database"
	"github.com/vander-supa3/academia-nutricional/internal/migrate"
	"github.com/vander-supa3/academia-nutricional/internal/server"
	"github.com/vander-supa3/academia-nutricional/pkg/assistant"
	"github.com/vander-supa3/academia-nutricional/pkg/auth"
	"github.com/vander-supa3/academia-nutricional/pkg/logger"
)

func main() {
	// Load .env files if present (for local development). Load() does not
	// overwrite existing vars, Overload() does.
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		database.Module,
		migrate.Module,
		server.Module,

		// Auth and assistant provider
		auth.Module,
		assistant.Module,

		// Domain modules
		health.Module,
		userprofile.Module,
		catalog.Module,
		tracking.Module,
		plan.Module,
		threads.Module,
		tools.Module,
		assistantrun.Module,

		// Apply pending schema migrations before the server accepts traffic
		fx.Invoke(func(lc fx.Lifecycle, m *migrate.Migrator) {
			lc.Append(fx.Hook{OnStart: m.Up})
		}),
	).Run()
}
