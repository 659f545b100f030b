package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/database/repository"
	"github.com/jask/jaskcalc/internal/logger"
)

func newTape(t *testing.T, limit int) *TapeService {
	t.Helper()
	db, err := database.Prepare(filepath.Join(t.TempDir(), "tape.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &TapeService{History: repository.NewHistoryRepo(db), Limit: limit, Log: logger.Memory()}
}

func evaluate(t *testing.T, expr string) (calc.Result, string) {
	t.Helper()
	acc := calc.New()
	var res calc.Result
	for _, tok := range calc.Tokenize(expr) {
		out, err := calc.DispatchToken(acc, tok)
		require.NoError(t, err)
		if out.Evaluated {
			res = out.Result
		}
	}
	return res, acc.Display()
}

func TestTapeRecordAndRecent(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	tape := newTape(t, 0)

	res, display := evaluate(t, "12*3=")
	e, err := tape.Record(ctx, res, display)
	require.NoError(t, err)
	require.NotEmpty(t, e.ID)
	require.Equal(t, "12 * 3", e.Expression)
	require.Equal(t, 36.0, e.Result)
	require.Equal(t, "36", e.Display)

	got, err := tape.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, e.ID, got[0].ID)
}

func TestTapeLimitTrimsOldest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tape := newTape(t, 2)

	for _, expr := range []string{"1+1=", "2+2=", "3+3="} {
		res, display := evaluate(t, expr)
		_, err := tape.Record(ctx, res, display)
		require.NoError(t, err)
	}
	got, err := tape.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "3 + 3", got[0].Expression)
	require.Equal(t, "2 + 2", got[1].Expression)
	n, err := tape.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.NoError(t, tape.Clear(ctx))
	got, err = tape.Recent(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, got)
	n, err = tape.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestNilTapeIsInert(t *testing.T) {
	t.Parallel()
	var tape *TapeService
	got, err := tape.Recent(context.Background(), 3)
	require.NoError(t, err)
	require.Nil(t, got)
	require.NoError(t, tape.Clear(context.Background()))
	n, err := tape.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
	_, err = tape.Record(context.Background(), calc.Result{}, "0")
	require.Error(t, err)
}
