// Package history contains the pure filter/group pipeline over patrol
// history snapshots. It has no persistent state of its own: the caller
// loads a snapshot once and re-filters it in memory on every change.
package history

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// dateLayout is the yyyy-MM-dd wire format stored on records.
const dateLayout = "2006-01-02"

// NoResultsLabel titles the synthetic group produced when no record
// survives filtering. It is a display placeholder, not a stored record.
const NoResultsLabel = "No Results"

const noResultsLine = "No patrols match the selected filters."

// Record is one immutable ledger entry as seen by the pipeline.
type Record struct {
	ID       int64
	Date     string
	Shift    string
	Location string
	Start    string
	End      string
}

// Filter holds the active filter set. The caller sets Shift to the
// all-shifts sentinel to match every shift.
type Filter struct {
	Shift  string // exact match unless equal to the all-shifts sentinel
	Search string // case-insensitive substring on location, trimmed
	From   *time.Time
	To     *time.Time
}

// Group is one date bucket of filtered records, newest date first.
type Group struct {
	Date  string
	Lines []string
}

// allShifts is the sentinel shift label matching every record.
const allShifts = "All Shifts"

// Apply filters the snapshot and groups survivors by date. Records
// inside a group keep their snapshot order (id descending from the
// load); groups are ordered by date string descending, which equals
// chronological descending for the yyyy-MM-dd format. An empty result
// yields a single "No Results" group with one informational line.
func Apply(records []Record, f Filter) []Group {
	from, to := normalizeBounds(dateOnly(f.From), dateOnly(f.To))
	search := strings.TrimSpace(f.Search)

	var filtered []Record
	for _, r := range records {
		if !matches(r, f.Shift, search, from, to) {
			continue
		}
		filtered = append(filtered, r)
	}

	if len(filtered) == 0 {
		return []Group{{Date: NoResultsLabel, Lines: []string{noResultsLine}}}
	}

	byDate := make(map[string]int)
	var groups []Group
	for _, r := range filtered {
		i, ok := byDate[r.Date]
		if !ok {
			i = len(groups)
			byDate[r.Date] = i
			groups = append(groups, Group{Date: r.Date})
		}
		groups[i].Lines = append(groups[i].Lines, formatLine(r))
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})

	return groups
}

func matches(r Record, shift, search string, from, to *time.Time) bool {
	if shift != allShifts && r.Shift != shift {
		return false
	}

	if search != "" {
		if !strings.Contains(strings.ToLower(r.Location), strings.ToLower(search)) {
			return false
		}
	}

	// The date parse is unconditional: a record with an unparseable
	// stored date never survives, bounds or not.
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return false
	}

	if from != nil && date.Before(*from) {
		return false
	}
	if to != nil && date.After(*to) {
		return false
	}

	return true
}

// normalizeBounds swaps an inverted from/to pair instead of rejecting it.
func normalizeBounds(from, to *time.Time) (*time.Time, *time.Time) {
	if from != nil && to != nil && from.After(*to) {
		return to, from
	}
	return from, to
}

// dateOnly drops the time-of-day and zone from a bound so it compares
// against record dates (parsed as UTC midnight) by calendar date alone.
func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func formatLine(r Record) string {
	return fmt.Sprintf("%s – %s hrs to %s hrs", r.Location, r.Start, r.End)
}

// RangeStatus renders a human-readable description of the date bounds.
// Inverted bounds are swapped for display, matching the filter behavior.
func RangeStatus(from, to *time.Time) string {
	switch {
	case from == nil && to == nil:
		return "All dates"
	case from != nil && to == nil:
		return fmt.Sprintf("From %s", from.Format(dateLayout))
	case from == nil:
		return fmt.Sprintf("Up to %s", to.Format(dateLayout))
	default:
		f, t := normalizeBounds(from, to)
		return fmt.Sprintf("%s to %s", f.Format(dateLayout), t.Format(dateLayout))
	}
}

// ParseDate parses a yyyy-MM-dd date bound as entered on the command line.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want yyyy-MM-dd)", value)
	}
	return d, nil
}
