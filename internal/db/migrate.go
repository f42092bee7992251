package db

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/joestump/devguide/internal/db/migrations"
)

//go:embed migrations
var Migrations embed.FS

// Migrate applies every pending migration. serve runs it before listening.
func Migrate(db *sqlx.DB, driver string) error {
	return withGoose(driver, func() error {
		if err := goose.Up(db.DB, "."); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		return nil
	})
}

// Status prints applied and pending versions through goose's logger.
func Status(db *sqlx.DB, driver string) error {
	return withGoose(driver, func() error {
		return goose.Status(db.DB, ".")
	})
}

// withGoose points goose (and the Go migrations) at driver's dialect and the
// embedded migrations directory for the duration of fn.
func withGoose(driver string, fn func() error) error {
	if !slices.Contains(Drivers, driver) {
		return fmt.Errorf("no migration dialect for driver %q", driver)
	}
	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	migrations.SetDialect(driver)

	sub, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("sub migrations fs: %w", err)
	}
	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)
	return fn()
}
