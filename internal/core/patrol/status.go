package patrol

import "time"

// Status is the derived state of a location, computed from timestamp
// emptiness and never stored.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// TimeEntry holds the in-flight start/end pair for one location.
// Times are 24-hour HHmm strings; empty means unset. The textual format
// is the persisted wire format and must be preserved exactly.
type TimeEntry struct {
	Start string
	End   string
}

// Status derives the location state from the entry.
func (e TimeEntry) Status() Status {
	switch {
	case e.Start != "" && e.End != "":
		return StatusCompleted
	case e.Start != "":
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// Started reports whether a patrol is in flight: start recorded, end not yet.
// This drives the start/end toggle.
func (e TimeEntry) Started() bool {
	return e.Start != "" && e.End == ""
}

// Touched reports whether either timestamp is set. Untouched locations
// are skipped when building a report.
func (e TimeEntry) Touched() bool {
	return e.Start != "" || e.End != ""
}

// Timestamp formats a time as the HHmm wire format (e.g. "0930", "1745").
func Timestamp(t time.Time) string {
	return t.Format("1504")
}

// Datestamp formats a time as the yyyy-MM-dd wire format.
func Datestamp(t time.Time) string {
	return t.Format("2006-01-02")
}
