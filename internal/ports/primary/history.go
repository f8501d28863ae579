package primary

import (
	"context"
	"time"
)

// HistoryService defines the primary port for the history query engine.
// Load caches a snapshot; every filter change re-filters in memory.
type HistoryService interface {
	// Load resets all filters to their defaults (all shifts, empty
	// search, unbounded dates) and fetches the full ledger, newest
	// record first.
	Load(ctx context.Context) error

	// SetShift sets the shift filter. Accepts the four shift labels
	// and the all-shifts sentinel.
	SetShift(label string) error

	// SetSearch sets the free-text location filter.
	SetSearch(text string)

	// SetFromDate sets the lower date bound (inclusive).
	SetFromDate(date time.Time)

	// SetToDate sets the upper date bound (inclusive).
	SetToDate(date time.Time)

	// ClearDateRange unsets both date bounds.
	ClearDateRange()

	// Groups returns the filtered records grouped by date, newest date
	// first; a single "No Results" group when nothing matches.
	Groups() []HistoryGroup

	// RangeStatus returns the human-readable date-range description.
	RangeStatus() string
}

// HistoryGroup is one date bucket of history lines at the port boundary.
type HistoryGroup struct {
	Date  string
	Lines []string
}
