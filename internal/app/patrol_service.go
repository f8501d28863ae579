// Package app implements the primary ports: the patrol state engine and
// the history query engine.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/patrol/internal/core/patrol"
	"github.com/example/patrol/internal/ports/primary"
	"github.com/example/patrol/internal/ports/secondary"
)

// PatrolServiceImpl implements the PatrolService interface. It owns the
// in-memory location map exclusively; the surrounding CLI accepts one
// action at a time, so there is no locking.
type PatrolServiceImpl struct {
	patrolRepo secondary.PatrolRepository
	sender     secondary.ReportSender
	confirmer  secondary.Confirmer
	selections secondary.SelectionStore

	times       map[string]patrol.TimeEntry
	subscribers []func()
}

// NewPatrolService creates a new PatrolService with injected dependencies.
// Every catalog location starts at ("",""); call Restore to overlay
// persisted state.
func NewPatrolService(patrolRepo secondary.PatrolRepository, sender secondary.ReportSender, confirmer secondary.Confirmer, selections secondary.SelectionStore) *PatrolServiceImpl {
	times := make(map[string]patrol.TimeEntry, patrol.CatalogSize())
	for _, loc := range patrol.Catalog() {
		times[loc] = patrol.TimeEntry{}
	}

	return &PatrolServiceImpl{
		patrolRepo: patrolRepo,
		sender:     sender,
		confirmer:  confirmer,
		selections: selections,
		times:      times,
	}
}

// Restore overlays persisted current-state rows onto the catalog
// defaults. An empty store (fresh install) leaves every location at
// NotStarted. Rows for locations no longer in the catalog are read but
// have no display target, so they are skipped, not deleted.
func (s *PatrolServiceImpl) Restore(ctx context.Context) error {
	saved, err := s.patrolRepo.GetCurrentState(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore patrol state: %w", err)
	}

	for _, row := range saved {
		if _, ok := s.times[row.Location]; !ok {
			continue
		}
		s.times[row.Location] = patrol.TimeEntry{Start: row.Start, End: row.End}
	}

	s.notify()
	return nil
}

// StartOrEnd toggles the patrol at a location based on its in-flight
// flag. Memory is updated only after the write-through succeeds, so a
// persistence failure leaves the engine consistent with the store.
func (s *PatrolServiceImpl) StartOrEnd(ctx context.Context, location string, now time.Time) (*primary.Transition, error) {
	if location == "" {
		return nil, fmt.Errorf("no location selected")
	}
	entry, ok := s.times[location]
	if !ok {
		return nil, fmt.Errorf("unknown location: %s", location)
	}

	ts := patrol.Timestamp(now)

	if !entry.Started() {
		return s.startPatrol(ctx, location, entry, ts)
	}
	return s.endPatrol(ctx, location, entry, ts, now)
}

func (s *PatrolServiceImpl) startPatrol(ctx context.Context, location string, entry patrol.TimeEntry, ts string) (*primary.Transition, error) {
	// A new cycle after a completed one overwrites start and keeps the
	// old end visible until the cycle completes.
	updated := patrol.TimeEntry{Start: ts, End: entry.End}

	err := s.patrolRepo.SaveCurrentState(ctx, &secondary.CurrentStateRecord{
		Location: location,
		Start:    updated.Start,
		End:      updated.End,
	})
	if err != nil {
		return nil, err
	}

	s.times[location] = updated
	s.notify()

	return &primary.Transition{
		Location: location,
		Action:   primary.TransitionStarted,
		Start:    ts,
		End:      updated.End,
	}, nil
}

func (s *PatrolServiceImpl) endPatrol(ctx context.Context, location string, entry patrol.TimeEntry, ts string, now time.Time) (*primary.Transition, error) {
	sel, err := s.ActiveSelection()
	if err != nil {
		return nil, err
	}

	updated := patrol.TimeEntry{Start: entry.Start, End: ts}

	err = s.patrolRepo.SaveCurrentState(ctx, &secondary.CurrentStateRecord{
		Location: location,
		Start:    updated.Start,
		End:      updated.End,
	})
	if err != nil {
		return nil, err
	}
	s.times[location] = updated

	// Second write of the end transition. Not atomic with the upsert
	// above: a crash in between leaves a completed current-state row
	// without a ledger record.
	_, err = s.patrolRepo.SaveRecord(ctx, &secondary.PatrolRecord{
		Date:     patrol.Datestamp(now),
		Shift:    sel.Shift,
		Location: location,
		Start:    updated.Start,
		End:      updated.End,
	})
	if err != nil {
		s.notify()
		return nil, err
	}

	// Auto-advance the active location, wrapping after the last entry.
	next, err := patrol.Next(location)
	if err != nil {
		return nil, err
	}
	if err := s.selections.SaveSelection(&secondary.Selection{Location: next, Shift: sel.Shift}); err != nil {
		return nil, err
	}

	s.notify()

	return &primary.Transition{
		Location: location,
		Action:   primary.TransitionEnded,
		Start:    updated.Start,
		End:      updated.End,
		Next:     next,
	}, nil
}

// ResetLocation clears one location's times. Idempotent; history untouched.
func (s *PatrolServiceImpl) ResetLocation(ctx context.Context, location string) error {
	if _, ok := s.times[location]; !ok {
		return fmt.Errorf("unknown location: %s", location)
	}

	err := s.patrolRepo.SaveCurrentState(ctx, &secondary.CurrentStateRecord{Location: location})
	if err != nil {
		return err
	}

	s.times[location] = patrol.TimeEntry{}
	s.notify()
	return nil
}

// ResetAll clears every location after user confirmation. Returns false
// when the user declines.
func (s *PatrolServiceImpl) ResetAll(ctx context.Context) (bool, error) {
	if !s.confirmer.Confirm("Reset ALL patrols?") {
		return false, nil
	}

	if err := s.clearAll(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// SubmitAll builds one report row per touched location and dispatches
// the report. Success clears all current state (as ResetAll, without
// confirmation); failure leaves memory and store untouched.
func (s *PatrolServiceImpl) SubmitAll(ctx context.Context, shift string) (*primary.SubmitResult, error) {
	var rows []secondary.ReportRow
	for _, loc := range patrol.Catalog() {
		entry := s.times[loc]
		if !entry.Touched() {
			continue
		}
		rows = append(rows, secondary.ReportRow{Location: loc, Start: entry.Start, End: entry.End})
	}

	if len(rows) == 0 {
		return &primary.SubmitResult{Outcome: primary.SubmitNoData}, nil
	}

	if err := s.sender.Send(ctx, shift, rows); err != nil {
		return nil, fmt.Errorf("error sending report: %w", err)
	}

	if err := s.clearAll(ctx); err != nil {
		return nil, err
	}

	return &primary.SubmitResult{Outcome: primary.SubmitSent, Rows: len(rows)}, nil
}

func (s *PatrolServiceImpl) clearAll(ctx context.Context) error {
	if err := s.patrolRepo.ClearCurrentState(ctx); err != nil {
		return err
	}
	for _, loc := range patrol.Catalog() {
		s.times[loc] = patrol.TimeEntry{}
	}
	s.notify()
	return nil
}

// StatusSummary yields one line per catalog location in catalog order.
// Pure projection: no side effects.
func (s *PatrolServiceImpl) StatusSummary() []primary.LocationStatus {
	summary := make([]primary.LocationStatus, 0, patrol.CatalogSize())
	for _, loc := range patrol.Catalog() {
		entry := s.times[loc]
		summary = append(summary, primary.LocationStatus{
			Location: loc,
			Start:    entry.Start,
			End:      entry.End,
			Status:   string(entry.Status()),
		})
	}
	return summary
}

// ActiveSelection returns the persisted selection with defaults filled
// in: the catalog head for the location, the auto-detected shift for
// the shift. A stored location that left the catalog falls back to the
// head as well.
func (s *PatrolServiceImpl) ActiveSelection() (*primary.Selection, error) {
	sel, err := s.selections.LoadSelection()
	if err != nil {
		return nil, err
	}

	location := sel.Location
	if !patrol.InCatalog(location) {
		location = patrol.Catalog()[0]
	}

	shift := sel.Shift
	if !patrol.ValidShift(shift) {
		shift = patrol.DetectShift(time.Now())
	}

	return &primary.Selection{Location: location, Shift: shift}, nil
}

// SetActiveLocation persists a new active location.
func (s *PatrolServiceImpl) SetActiveLocation(location string) error {
	if !patrol.InCatalog(location) {
		return fmt.Errorf("unknown location: %s", location)
	}
	sel, err := s.selections.LoadSelection()
	if err != nil {
		return err
	}
	sel.Location = location
	return s.selections.SaveSelection(sel)
}

// SetActiveShift persists a new active shift.
func (s *PatrolServiceImpl) SetActiveShift(shift string) error {
	parsed, err := patrol.ParseShift(shift)
	if err != nil {
		return err
	}
	sel, err := s.selections.LoadSelection()
	if err != nil {
		return err
	}
	sel.Shift = parsed
	return s.selections.SaveSelection(sel)
}

// Subscribe registers a callback invoked after every mutating operation.
func (s *PatrolServiceImpl) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *PatrolServiceImpl) notify() {
	for _, fn := range s.subscribers {
		fn()
	}
}

// Ensure PatrolServiceImpl implements the interface
var _ primary.PatrolService = (*PatrolServiceImpl)(nil)
