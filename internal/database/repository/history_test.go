package repository

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/database"
)

func newRepo(t *testing.T) *HistoryRepo {
	t.Helper()
	db, err := database.Prepare(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewHistoryRepo(db)
}

func entry(expr string, v float64, display string) HistoryEntry {
	return HistoryEntry{ID: uuid.NewString(), Expression: expr, Result: v, Display: display, CreatedAt: database.Now()}
}

func TestHistoryInsertAndRecent(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := newRepo(t)

	first := entry("5 + 2", 7, "7")
	second := entry("7 - 3", 4, "4")
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	got, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, second.ID, got[0].ID)
	require.Equal(t, "7 - 3", got[0].Expression)
	require.Equal(t, 4.0, got[0].Result)
	require.Equal(t, first.ID, got[1].ID)
	require.True(t, first.CreatedAt.Equal(got[1].CreatedAt))

	got, err = repo.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestHistoryKeepsNonFiniteResults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Insert(ctx, entry("5 / 0", math.Inf(1), "inf")))
	require.NoError(t, repo.Insert(ctx, entry("0 / 0", math.NaN(), "NaN")))

	got, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, math.IsNaN(got[0].Result))
	require.True(t, math.IsInf(got[1].Result, 1))
}

func TestHistoryTrimAndClear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Insert(ctx, entry("1 + 1", float64(i), "2")))
	}
	removed, err := repo.Trim(ctx, 3)
	require.NoError(t, err)
	require.EqualValues(t, 2, removed)

	got, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, 4.0, got[0].Result)
	require.Equal(t, 2.0, got[2].Result)

	require.NoError(t, repo.Clear(ctx))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "twice.db")
	require.NoError(t, database.RunMigrations(path))
	require.NoError(t, database.RunMigrations(path))
}
