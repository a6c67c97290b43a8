// Package migrations embeds the goose SQL migrations and applies them on startup.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

func Up(ctx context.Context, db *sql.DB) error {
	const op = "migrations.Up"

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: set dialect: %w", op, err)
	}

	if err := goose.UpContext(ctx, db, "sql"); err != nil {
		return fmt.Errorf("%s: up: %w", op, err)
	}

	return nil
}

func Down(ctx context.Context, db *sql.DB) error {
	const op = "migrations.Down"

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: set dialect: %w", op, err)
	}

	if err := goose.DownContext(ctx, db, "sql"); err != nil {
		return fmt.Errorf("%s: down: %w", op, err)
	}

	return nil
}
