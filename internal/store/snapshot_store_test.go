package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/store"
	"github.com/joestump/devguide/internal/testutil"
)

func TestSnapshotStore_LoadMissing(t *testing.T) {
	ss := store.NewSnapshotStore(testutil.NewTestDB(t))

	snap, err := ss.Load(context.Background(), project.Static)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshotStore_SaveAndLoad(t *testing.T) {
	ss := store.NewSnapshotStore(testutil.NewTestDB(t))
	ctx := context.Background()

	want := project.Snapshot{
		Features:    []string{"Responsive Design", "SEO Optimization"},
		TechStack:   []string{"React"},
		UserStories: []string{"As a visitor, I want to read docs"},
	}
	require.NoError(t, ss.Save(ctx, project.Static, want))

	got, err := ss.Load(ctx, project.Static)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	other, err := ss.Load(ctx, project.Mobile)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestSnapshotStore_SaveOverwrites(t *testing.T) {
	ss := store.NewSnapshotStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, ss.Save(ctx, project.Backend, project.Snapshot{Features: []string{"A"}}))
	require.NoError(t, ss.Save(ctx, project.Backend, project.Snapshot{Features: []string{"B"}}))

	rows, err := ss.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "project_type_backend", rows[0].StorageKey)
	assert.NotEmpty(t, rows[0].ID)
	assert.False(t, rows[0].UpdatedAt.IsZero())

	decoded, err := rows[0].Decode()
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, decoded.Features)

	got, err := ss.Load(ctx, project.Backend)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, got.Features)
}

func TestSnapshotStore_Corrupt(t *testing.T) {
	db := testutil.NewTestDB(t)
	ss := store.NewSnapshotStore(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO project_type_snapshots (id, storage_key, data, updated_at) VALUES ('x', 'project_type_mobile', '{not json', CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	snap, err := ss.Load(ctx, project.Mobile)
	assert.ErrorIs(t, err, store.ErrCorruptSnapshot)
	assert.Nil(t, snap)

	rows, err := ss.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	_, err = rows[0].Decode()
	assert.ErrorIs(t, err, store.ErrCorruptSnapshot)
}

func TestSnapshotStore_Delete(t *testing.T) {
	ss := store.NewSnapshotStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, ss.Save(ctx, project.Fullstack, project.Snapshot{}))
	require.NoError(t, ss.Delete(ctx, project.Fullstack))
	require.NoError(t, ss.Delete(ctx, project.Fullstack), "deleting a missing snapshot")

	got, err := ss.Load(ctx, project.Fullstack)
	require.NoError(t, err)
	assert.Nil(t, got)
}
