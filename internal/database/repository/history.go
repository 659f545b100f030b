package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/database"
)

// HistoryRepo handles the calculation tape.
type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo { return &HistoryRepo{db: db} }

// Insert stores e. Result is kept as display text so NaN and the
// infinities survive the round trip.
func (r *HistoryRepo) Insert(ctx context.Context, e HistoryEntry) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO history(id, expression, result, display, created_at)
	VALUES (?, ?, ?, ?, ?);
	`, e.ID, e.Expression, calc.FormatNumber(e.Result), e.Display, e.CreatedAt)
	return err
}

// Recent lists up to limit entries, newest first. limit <= 0 lists all.
func (r *HistoryRepo) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, expression, result, display, created_at
	FROM history
	ORDER BY seq DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var result string
		if err := rows.Scan(&e.ID, &e.Expression, &result, &e.Display, &e.CreatedAt); err != nil {
			return nil, err
		}
		v, err := calc.ParseNumber(result)
		if err != nil {
			return nil, fmt.Errorf("history %s: %w", e.ID, err)
		}
		e.Result = v
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of stored entries.
func (r *HistoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n)
	return n, err
}

// Trim keeps only the newest keep entries and returns how many were removed.
func (r *HistoryRepo) Trim(ctx context.Context, keep int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	DELETE FROM history
	WHERE seq NOT IN (SELECT seq FROM history ORDER BY seq DESC LIMIT ?)`, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Clear removes every entry.
func (r *HistoryRepo) Clear(ctx context.Context) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		// restart seq so a fresh tape does not carry old numbering
		if _, err := tx.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'history'`); err != nil {
			return fmt.Errorf("reset history sequence: %w", err)
		}
		return nil
	})
}
