package repository

import "time"

// HistoryEntry is one completed evaluation on the tape.
type HistoryEntry struct {
	ID         string
	Expression string
	Result     float64
	Display    string
	CreatedAt  time.Time
}
