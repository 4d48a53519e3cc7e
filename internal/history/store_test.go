package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(id string, at time.Time, valid bool) Run {
	run := Run{
		ID:             id,
		CreatedAt:      at,
		SchemaPath:     "schema.json",
		InstancePath:   "instance.json",
		SchemaDigest:   "abc123",
		InstanceDigest: "def456",
		Valid:          valid,
	}
	if !valid {
		run.Message = "minimum"
		run.InstanceLocation = "a"
		run.SchemaLocation = "properties/a/minimum"
	}
	return run
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}

func TestWriteAndListRuns(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	run := sampleRun(NewRunID(), now, false)
	require.NoError(t, store.WriteRun(ctx, run))

	runs, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.SchemaPath, got.SchemaPath)
	assert.Equal(t, run.InstancePath, got.InstancePath)
	assert.Equal(t, run.SchemaDigest, got.SchemaDigest)
	assert.Equal(t, run.InstanceDigest, got.InstanceDigest)
	assert.False(t, got.Valid)
	assert.Equal(t, "minimum", got.Message)
	assert.Equal(t, "a", got.InstanceLocation)
	assert.Equal(t, "properties/a/minimum", got.SchemaLocation)
	assert.WithinDuration(t, now, got.CreatedAt, time.Second)
}

func TestListRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC()

	old := sampleRun(NewRunID(), base.Add(-time.Hour), true)
	mid := sampleRun(NewRunID(), base.Add(-time.Minute), false)
	recent := sampleRun(NewRunID(), base, true)

	require.NoError(t, store.WriteRun(ctx, old))
	require.NoError(t, store.WriteRun(ctx, recent))
	require.NoError(t, store.WriteRun(ctx, mid))

	runs, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, recent.ID, runs[0].ID)
	assert.Equal(t, mid.ID, runs[1].ID)
	assert.Equal(t, old.ID, runs[2].ID)
}

func TestListRunsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		run := sampleRun(NewRunID(), base.Add(time.Duration(i)*time.Second), true)
		require.NoError(t, store.WriteRun(ctx, run))
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestListRunsEmptyStore(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestWriteRunDuplicateIDIgnored(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	run := sampleRun(NewRunID(), time.Now().UTC(), true)
	require.NoError(t, store.WriteRun(ctx, run))

	dup := run
	dup.SchemaPath = "other.json"
	require.NoError(t, store.WriteRun(ctx, dup))

	runs, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "schema.json", runs[0].SchemaPath, "first write wins")
}

func TestNewRunIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewRunID()
		assert.Len(t, id, 36)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
