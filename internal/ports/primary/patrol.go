// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces the CLI talks to and the types
// crossing that boundary.
package primary

import (
	"context"
	"time"
)

// PatrolService defines the primary port for the patrol state engine.
// It owns the in-memory location → (start, end) map, applies
// start/end/reset transitions, writes each transition through
// persistence, and derives per-location status.
type PatrolService interface {
	// Restore overlays persisted current-state rows onto the
	// catalog-derived default map. Must be called once before any
	// other operation; tolerates an empty store and rows for
	// locations no longer in the catalog.
	Restore(ctx context.Context) error

	// StartOrEnd toggles the patrol at a location. If no patrol is in
	// flight it records a start; otherwise it records an end, appends
	// a history record with the active shift, and auto-advances the
	// active location in catalog order.
	StartOrEnd(ctx context.Context, location string, now time.Time) (*Transition, error)

	// ResetLocation clears one location's times. History is untouched.
	ResetLocation(ctx context.Context, location string) error

	// ResetAll clears every location after user confirmation. Returns
	// false if the user declined. History is untouched.
	ResetAll(ctx context.Context) (bool, error)

	// SubmitAll dispatches one report row per touched location. With
	// zero touched locations it reports a no-data outcome and does
	// nothing else. On successful dispatch all current state is
	// cleared; on failure state is left untouched.
	SubmitAll(ctx context.Context, shift string) (*SubmitResult, error)

	// StatusSummary yields one line per catalog location in catalog
	// order. Pure projection, no side effects.
	StatusSummary() []LocationStatus

	// ActiveSelection returns the persisted active location and shift,
	// substituting the catalog head and the auto-detected shift when unset.
	ActiveSelection() (*Selection, error)

	// SetActiveLocation persists a new active location.
	SetActiveLocation(location string) error

	// SetActiveShift persists a new active shift.
	SetActiveShift(shift string) error

	// Subscribe registers a callback invoked after every mutating
	// operation. Replaces UI property-change interception.
	Subscribe(fn func())
}

// Transition describes the outcome of one StartOrEnd call.
type Transition struct {
	Location string
	Action   string // TransitionStarted or TransitionEnded
	Start    string // HHmm, set when recorded
	End      string // HHmm, set on an end transition
	Next     string // next active location, set on an end transition
}

// Transition actions.
const (
	TransitionStarted = "started"
	TransitionEnded   = "ended"
)

// SubmitResult describes the outcome of a SubmitAll call.
type SubmitResult struct {
	Outcome string // SubmitSent or SubmitNoData
	Rows    int
}

// Submit outcomes.
const (
	SubmitSent   = "sent"
	SubmitNoData = "no_data"
)

// LocationStatus is one status line of the per-location summary.
type LocationStatus struct {
	Location string
	Start    string
	End      string
	Status   string // not_started, in_progress, completed
}

// Selection is the active location and shift at the port boundary.
type Selection struct {
	Location string
	Shift    string
}
