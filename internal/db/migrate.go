package db

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/gokatarajesh/trivia-api/db/migrations"
)

// Migrate runs a goose command ("up", "down" or "status") against the embedded migrations.
func Migrate(sqlDB *sql.DB, command string) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetTableName("goose_db_version")
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	switch command {
	case "up":
		return goose.Up(sqlDB, ".")
	case "down":
		return goose.Down(sqlDB, ".")
	case "status":
		return goose.Status(sqlDB, ".")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
}
