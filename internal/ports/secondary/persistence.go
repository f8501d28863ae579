// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives external systems.
package secondary

import "context"

// PatrolRepository defines the secondary port for patrol persistence.
// It covers both the crash-recovery current-state table and the
// append-only history ledger.
type PatrolRepository interface {
	// GetCurrentState retrieves all in-flight rows, one per location.
	GetCurrentState(ctx context.Context) ([]*CurrentStateRecord, error)

	// SaveCurrentState upserts the row for a location (location is the
	// unique key; a write for a present location overwrites it).
	SaveCurrentState(ctx context.Context, state *CurrentStateRecord) error

	// ClearCurrentState deletes all current-state rows. The history
	// ledger is untouched.
	ClearCurrentState(ctx context.Context) error

	// SaveRecord appends one immutable history record and returns its
	// store-assigned, monotonically increasing id.
	SaveRecord(ctx context.Context, record *PatrolRecord) (int64, error)

	// GetHistory retrieves the full ledger ordered by id descending
	// (most recently created first).
	GetHistory(ctx context.Context) ([]*PatrolRecord, error)
}

// CurrentStateRecord is the transient, overwritable shadow of in-flight
// work for one location. Start/End are HHmm strings, "" = unset.
type CurrentStateRecord struct {
	Location string
	Start    string
	End      string
}

// PatrolRecord is one permanent ledger entry, created exactly once per
// completed patrol and never updated or deleted.
type PatrolRecord struct {
	ID       int64
	Date     string // yyyy-MM-dd, calendar date the patrol ended
	Shift    string
	Location string
	Start    string // HHmm
	End      string // HHmm
}
