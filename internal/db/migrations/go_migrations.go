// Package migrations holds the Go migrations for the devguide schema. Both
// tables need per-dialect DDL, so there are no SQL migration files.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect must be called before goose.Up. Valid values: "sqlite3",
// "postgres", "mysql".
func SetDialect(d string) {
	dialect = d
}

// ddl holds one statement per dialect. The "sqlite3" entry is also the
// fallback for an unset dialect; an empty entry skips the statement.
type ddl map[string]string

func (d ddl) forDialect() string {
	if s, ok := d[dialect]; ok {
		return s
	}
	return d["sqlite3"]
}

// createTable runs each statement in the form for the current dialect.
func createTable(ctx context.Context, tx *sql.Tx, table string, stmts ...ddl) error {
	for _, d := range stmts {
		stmt := d.forDialect()
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create %s: %w", table, err)
		}
	}
	return nil
}

func dropTable(ctx context.Context, tx *sql.Tx, table string) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table)
	return err
}
