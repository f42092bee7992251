package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

// sessions is the table the scs store adapters read and write. Column types
// follow what each adapter scans into.
var sessions = ddl{
	"sqlite3": `CREATE TABLE IF NOT EXISTS sessions (
    token  TEXT PRIMARY KEY,
    data   BLOB NOT NULL,
    expiry REAL NOT NULL
)`,
	"postgres": `CREATE TABLE IF NOT EXISTS sessions (
    token  TEXT PRIMARY KEY,
    data   BYTEA NOT NULL,
    expiry TIMESTAMPTZ NOT NULL
)`,
	"mysql": `CREATE TABLE IF NOT EXISTS sessions (
    token  CHAR(43) PRIMARY KEY,
    data   BLOB NOT NULL,
    expiry TIMESTAMP(6) NOT NULL,
    INDEX sessions_expiry_idx (expiry)
)`,
}

// MySQL has no CREATE INDEX IF NOT EXISTS; its index is declared inline.
var sessionsExpiryIndex = ddl{
	"sqlite3":  `CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions (expiry)`,
	"postgres": `CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions (expiry)`,
	"mysql":    "",
}

func init() {
	goose.AddMigrationContext(
		func(ctx context.Context, tx *sql.Tx) error {
			return createTable(ctx, tx, "sessions", sessions, sessionsExpiryIndex)
		},
		func(ctx context.Context, tx *sql.Tx) error {
			return dropTable(ctx, tx, "sessions")
		},
	)
}
