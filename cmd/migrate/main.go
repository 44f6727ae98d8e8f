// Command migrate runs database migrations for the marketing site.
//
// Usage:
//
//	migrate -cmd up      # apply all pending migrations
//	migrate -cmd down    # roll back the most recent migration
//	migrate -cmd status  # print migration status
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/config"
	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/migrate"
	applogger "github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up, down, or status")
	flag.Parse()

	_ = godotenv.Load()

	log := applogger.NewLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Error("failed to load configuration", applogger.Error(err))
		os.Exit(1)
	}

	sqldb, err := sql.Open("pgx", cfg.Database.DSN())
	if err != nil {
		log.Error("failed to open database", applogger.Error(err))
		os.Exit(1)
	}
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, log)
	ctx := context.Background()

	switch *cmd {
	case "up":
		err = migrator.Up(ctx)
	case "down":
		err = migrator.Down(ctx)
	case "status":
		err = migrator.Status(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q: expected up, down, or status\n", *cmd)
		os.Exit(2)
	}

	if err != nil {
		log.Error("migration failed", applogger.Error(err))
		os.Exit(1)
	}
}
