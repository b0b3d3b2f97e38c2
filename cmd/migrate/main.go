// Command migrate applies, rolls back or inspects database migrations.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.uber.org/zap"

	"github.com/vander-supa3/academia-nutricional/internal/config"
	"github.com/vander-supa3/academia-nutricional/internal/migrate"
	"github.com/vander-supa3/academia-nutricional/pkg/logger"
)

func main() {
	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	log := logger.NewLogger()
	cfg, err := config.NewConfig(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	zapLog, err := logger.NewZapLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLog.Sync()

	connConfig, err := pgx.ParseConfig(cfg.Database.DSN())
	if err != nil {
		zapLog.Fatal("invalid database DSN", zap.Error(err))
	}
	sqldb := stdlib.OpenDB(*connConfig)
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, zapLog)
	ctx := context.Background()

	switch command {
	case "up":
		err = migrator.Up(ctx)
	case "down":
		err = migrator.Down(ctx)
	case "status":
		err = migrator.Status(ctx)
	case "version":
		var version int64
		version, err = migrator.Version(ctx)
		if err == nil {
			fmt.Printf("database version: %d\n", version)
		}
	default:
		fmt.Fprintf(os.Stderr, "usage: migrate [up|down|status|version]\n")
		os.Exit(1)
	}

	if err != nil {
		zapLog.Fatal("migration command failed", zap.String("command", command), zap.Error(err))
	}
}
