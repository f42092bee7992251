package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/joestump/devguide/internal/project"
)

// ErrCorruptSnapshot is returned when a stored snapshot cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt project snapshot")

// SnapshotRow is a row in the project_type_snapshots table.
type SnapshotRow struct {
	ID         string    `db:"id"`
	StorageKey string    `db:"storage_key"`
	Data       string    `db:"data"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// SnapshotStore keeps one JSON snapshot of the project collections per
// project type.
type SnapshotStore struct {
	db *sqlx.DB
}

func NewSnapshotStore(db *sqlx.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Load returns the snapshot stored for t, or nil when there is none.
func (s *SnapshotStore) Load(ctx context.Context, t project.Type) (*project.Snapshot, error) {
	var data string
	err := s.db.GetContext(ctx, &data, s.db.Rebind(`SELECT data FROM project_type_snapshots WHERE storage_key = ?`), project.SnapshotKey(t))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", t, err)
	}

	return decodeSnapshot(project.SnapshotKey(t), data)
}

// Decode parses the row's JSON payload.
func (r *SnapshotRow) Decode() (*project.Snapshot, error) {
	return decodeSnapshot(r.StorageKey, r.Data)
}

func decodeSnapshot(key, data string) (*project.Snapshot, error) {
	var snap project.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCorruptSnapshot, key, err)
	}
	return &snap, nil
}

// Save upserts the snapshot for t.
func (s *SnapshotStore) Save(ctx context.Context, t project.Type, snap project.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.put(ctx, project.SnapshotKey(t), string(data))
}

// put writes raw data under key, updating the existing row if there is one.
func (s *SnapshotStore) put(ctx context.Context, key, data string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC()
	var id string
	err = tx.GetContext(ctx, &id, tx.Rebind(`SELECT id FROM project_type_snapshots WHERE storage_key = ?`), key)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO project_type_snapshots (id, storage_key, data, updated_at) VALUES (?, ?, ?, ?)
		`), uuid.New().String(), key, data, now)
	case err == nil:
		_, err = tx.ExecContext(ctx, tx.Rebind(`
			UPDATE project_type_snapshots SET data = ?, updated_at = ? WHERE id = ?
		`), data, now, id)
	}
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", key, err)
	}
	return tx.Commit()
}

// Delete removes the snapshot for t. Deleting a missing snapshot is not an error.
func (s *SnapshotStore) Delete(ctx context.Context, t project.Type) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM project_type_snapshots WHERE storage_key = ?`), project.SnapshotKey(t))
	return err
}

// List returns every stored row ordered by key.
func (s *SnapshotStore) List(ctx context.Context) ([]*SnapshotRow, error) {
	var rows []*SnapshotRow
	err := s.db.SelectContext(ctx, &rows, `SELECT id, storage_key, data, updated_at FROM project_type_snapshots ORDER BY storage_key`)
	return rows, err
}
