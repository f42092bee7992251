// Package db opens the devguide database and applies its schema.
package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Drivers lists the accepted values for db.driver.
var Drivers = []string{"sqlite3", "mysql", "postgres"}

// sqlDrivers maps a configured driver to the database/sql driver name.
// modernc.org/sqlite registers itself as "sqlite".
var sqlDrivers = map[string]string{
	"sqlite3":  "sqlite",
	"mysql":    "mysql",
	"postgres": "postgres",
}

// sqlitePragmas run on every new SQLite database. Snapshot writes and scs
// session commits can overlap, so readers must not block on the writer.
var sqlitePragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
}

const pingTimeout = 5 * time.Second

// New opens and pings the database for driver. dsn is passed through to the
// underlying driver unchanged.
func New(driver, dsn string) (*sqlx.DB, error) {
	name, ok := sqlDrivers[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported DB driver %q: must be one of %v", driver, Drivers)
	}
	conn, err := sqlx.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == "sqlite3" {
		for _, pragma := range sqlitePragmas {
			if _, err := conn.ExecContext(ctx, pragma); err != nil {
				_ = conn.Close()
				return nil, fmt.Errorf("%s: %w", pragma, err)
			}
		}
	}
	return conn, nil
}
