// Package client embeds the goose migrations of the device-local SQLite
// store (mutation queue, merge store, sync metadata).
package client

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for local db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("local migration error: %w", err)
	}

	return nil
}
