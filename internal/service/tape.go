package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/database/repository"
)

// TapeService records completed evaluations so they can be browsed and
// recalled later.
type TapeService struct {
	History *repository.HistoryRepo
	// Limit caps the number of stored entries; <= 0 keeps everything.
	Limit int
	Log   arbor.ILogger
}

// Record stores res together with the display shown after it.
func (s *TapeService) Record(ctx context.Context, res calc.Result, display string) (repository.HistoryEntry, error) {
	if s == nil || s.History == nil {
		return repository.HistoryEntry{}, fmt.Errorf("tape: history not configured")
	}
	e := repository.HistoryEntry{
		ID:         uuid.NewString(),
		Expression: res.Expression,
		Result:     res.Value,
		Display:    display,
		CreatedAt:  database.Now(),
	}
	if err := s.History.Insert(ctx, e); err != nil {
		return repository.HistoryEntry{}, fmt.Errorf("tape record: %w", err)
	}
	if s.Limit > 0 {
		removed, err := s.History.Trim(ctx, s.Limit)
		if err != nil {
			return e, fmt.Errorf("tape trim: %w", err)
		}
		if removed > 0 && s.Log != nil {
			s.Log.Debug().Str("removed", fmt.Sprint(removed)).Msg("tape trimmed")
		}
	}
	if s.Log != nil {
		s.Log.Debug().Str("id", e.ID).Str("expression", e.Expression).Str("result", display).Msg("evaluation recorded")
	}
	return e, nil
}

// Recent returns up to n entries, newest first.
func (s *TapeService) Recent(ctx context.Context, n int) ([]repository.HistoryEntry, error) {
	if s == nil || s.History == nil {
		return nil, nil
	}
	entries, err := s.History.Recent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("tape list: %w", err)
	}
	return entries, nil
}

// Count reports how many entries are stored.
func (s *TapeService) Count(ctx context.Context) (int, error) {
	if s == nil || s.History == nil {
		return 0, nil
	}
	n, err := s.History.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("tape count: %w", err)
	}
	return n, nil
}

// Clear wipes the tape.
func (s *TapeService) Clear(ctx context.Context) error {
	if s == nil || s.History == nil {
		return nil
	}
	if err := s.History.Clear(ctx); err != nil {
		return err
	}
	if s.Log != nil {
		s.Log.Info().Msg("tape cleared")
	}
	return nil
}
