package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "data", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndLatest(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	base := time.Date(2021, 12, 1, 6, 0, 0, 0, time.UTC)

	first, err := s.Record(ctx, store.Run{Day: 1, Part1: "7", Part2: "5", InputSum: "aaa", Duration: time.Millisecond, SolvedAt: base})
	require.NoError(t, err)
	assert.Positive(t, first.ID)

	_, err = s.Record(ctx, store.Run{Day: 1, Part1: "8", Part2: "5", InputSum: "aaa", SolvedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = s.Record(ctx, store.Run{Day: 1, Part1: "1", Part2: "1", InputSum: "bbb", SolvedAt: base.Add(2 * time.Hour)})
	require.NoError(t, err)

	latest, err := s.Latest(ctx, 1, "aaa")
	require.NoError(t, err)
	assert.Equal(t, "8", latest.Part1)
	assert.True(t, latest.SolvedAt.Equal(base.Add(time.Hour)))

	_, err = s.Latest(ctx, 2, "aaa")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	base := time.Now().Add(-time.Hour)
	for i := range 5 {
		_, err := s.Record(ctx, store.Run{Day: 9, Part1: "15", Part2: "1134", InputSum: "x", Duration: time.Duration(i), SolvedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	runs, err := s.History(ctx, 9, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, time.Duration(4), runs[0].Duration, "newest first")

	all, err := s.History(ctx, 9, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	none, err := s.History(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	_, err = s.Record(context.Background(), store.Run{Day: 3, Part1: "198", Part2: "230", InputSum: "s"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = store.Open(path)
	require.NoError(t, err)
	defer s.Close()
	r, err := s.Latest(context.Background(), 3, "s")
	require.NoError(t, err)
	assert.Equal(t, "230", r.Part2)
	assert.Equal(t, path, s.Path())
}
