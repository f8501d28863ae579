package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/patrol/internal/core/history"
	"github.com/example/patrol/internal/core/patrol"
	"github.com/example/patrol/internal/ports/primary"
	"github.com/example/patrol/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface. It is a
// filter/group pipeline over an immutable snapshot refreshed only by Load.
type HistoryServiceImpl struct {
	patrolRepo secondary.PatrolRepository

	records []history.Record
	shift   string
	search  string
	from    *time.Time
	to      *time.Time
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(patrolRepo secondary.PatrolRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		patrolRepo: patrolRepo,
		shift:      patrol.ShiftAll,
	}
}

// Load resets all filters to defaults and caches the full ledger,
// newest record first (the store orders by id descending).
func (s *HistoryServiceImpl) Load(ctx context.Context) error {
	s.shift = patrol.ShiftAll
	s.search = ""
	s.from = nil
	s.to = nil

	fetched, err := s.patrolRepo.GetHistory(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	s.records = make([]history.Record, 0, len(fetched))
	for _, r := range fetched {
		s.records = append(s.records, history.Record{
			ID:       r.ID,
			Date:     r.Date,
			Shift:    r.Shift,
			Location: r.Location,
			Start:    r.Start,
			End:      r.End,
		})
	}
	return nil
}

// SetShift sets the shift filter.
func (s *HistoryServiceImpl) SetShift(label string) error {
	if label != patrol.ShiftAll && !patrol.ValidShift(label) {
		return fmt.Errorf("invalid shift filter %q", label)
	}
	s.shift = label
	return nil
}

// SetSearch sets the free-text location filter.
func (s *HistoryServiceImpl) SetSearch(text string) {
	s.search = text
}

// SetFromDate sets the lower date bound (inclusive).
func (s *HistoryServiceImpl) SetFromDate(date time.Time) {
	d := truncateToDay(date)
	s.from = &d
}

// SetToDate sets the upper date bound (inclusive).
func (s *HistoryServiceImpl) SetToDate(date time.Time) {
	d := truncateToDay(date)
	s.to = &d
}

// ClearDateRange unsets both bounds.
func (s *HistoryServiceImpl) ClearDateRange() {
	s.from = nil
	s.to = nil
}

// Groups re-runs the filter pipeline on the cached snapshot.
func (s *HistoryServiceImpl) Groups() []primary.HistoryGroup {
	grouped := history.Apply(s.records, history.Filter{
		Shift:  s.shift,
		Search: s.search,
		From:   s.from,
		To:     s.to,
	})

	groups := make([]primary.HistoryGroup, len(grouped))
	for i, g := range grouped {
		groups[i] = primary.HistoryGroup{Date: g.Date, Lines: g.Lines}
	}
	return groups
}

// RangeStatus returns the human-readable date-range description.
func (s *HistoryServiceImpl) RangeStatus() string {
	return history.RangeStatus(s.from, s.to)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Ensure HistoryServiceImpl implements the interface
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
