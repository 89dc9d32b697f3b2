// internal/storage/sqlite_test.go

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteActivityStore {
	t.Helper()
	s, err := NewSQLiteActivityStore(context.Background(), filepath.Join(t.TempDir(), "fitness.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteActivityStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	recs := []ActivityRecord{
		{Date: "2026-10-01", Steps: 8000, Calories: 300, Workout: "run"},
		{Date: "2026-10-02", Steps: 4000, Calories: 150, Workout: "walk"},
	}
	require.NoError(t, s.Save(ctx, "alice", recs))

	got, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, recs, got)
}

func TestSQLiteActivityStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	require.NoError(t, s.Save(ctx, "alice", []ActivityRecord{
		{Date: "2026-10-01", Steps: 1, Calories: 1, Workout: "a"},
		{Date: "2026-10-02", Steps: 2, Calories: 2, Workout: "b"},
	}))
	require.NoError(t, s.Save(ctx, "alice", []ActivityRecord{
		{Date: "2026-10-03", Steps: 3, Calories: 3, Workout: "c"},
	}))

	got, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "c", got[0].Workout)
}

func TestSQLiteActivityStoreUsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	require.NoError(t, s.Save(ctx, "alice", []ActivityRecord{{Date: "2026-10-01", Steps: 10, Calories: 1, Workout: "run"}}))
	require.NoError(t, s.Save(ctx, "bob", []ActivityRecord{{Date: "2026-10-01", Steps: 20, Calories: 2, Workout: "swim"}}))

	got, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 10, got[0].Steps)

	empty, err := s.Load(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestSQLiteActivityStoreRejectsEmptyUser(t *testing.T) {
	s := newTestSQLiteStore(t)
	require.ErrorIs(t, s.Save(context.Background(), "", nil), ErrInvalidUser)
}
