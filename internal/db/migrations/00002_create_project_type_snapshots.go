package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

// projectTypeSnapshots keeps one row per project type holding the JSON
// encoded feature, tech stack and user story lists. MySQL cannot put a
// UNIQUE index on an unbounded TEXT column, hence the VARCHAR key there.
var projectTypeSnapshots = ddl{
	"sqlite3": `CREATE TABLE IF NOT EXISTS project_type_snapshots (
    id          TEXT PRIMARY KEY,
    storage_key TEXT NOT NULL UNIQUE,
    data        TEXT NOT NULL,
    updated_at  DATETIME NOT NULL
)`,
	"postgres": `CREATE TABLE IF NOT EXISTS project_type_snapshots (
    id          UUID PRIMARY KEY,
    storage_key TEXT NOT NULL UNIQUE,
    data        TEXT NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL
)`,
	"mysql": `CREATE TABLE IF NOT EXISTS project_type_snapshots (
    id          CHAR(36) PRIMARY KEY,
    storage_key VARCHAR(64) NOT NULL UNIQUE,
    data        MEDIUMTEXT NOT NULL,
    updated_at  TIMESTAMP(6) NOT NULL
)`,
}

func init() {
	goose.AddMigrationContext(
		func(ctx context.Context, tx *sql.Tx) error {
			return createTable(ctx, tx, "project_type_snapshots", projectTypeSnapshots)
		},
		func(ctx context.Context, tx *sql.Tx) error {
			return dropTable(ctx, tx, "project_type_snapshots")
		},
	)
}
