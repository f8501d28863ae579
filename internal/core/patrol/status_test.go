package patrol

import (
	"testing"
	"time"
)

func TestTimeEntryStatus(t *testing.T) {
	tests := []struct {
		name  string
		entry TimeEntry
		want  Status
	}{
		{"both empty", TimeEntry{}, StatusNotStarted},
		{"start only", TimeEntry{Start: "0900"}, StatusInProgress},
		{"both set", TimeEntry{Start: "0900", End: "0930"}, StatusCompleted},
		// A fresh cycle after a completed one: new start, stale end.
		{"end without matching cycle", TimeEntry{Start: "1000", End: "0930"}, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeEntryStarted(t *testing.T) {
	if (TimeEntry{}).Started() {
		t.Error("empty entry must not be started")
	}
	if !(TimeEntry{Start: "0900"}).Started() {
		t.Error("start-only entry must be started")
	}
	if (TimeEntry{Start: "0900", End: "0930"}).Started() {
		t.Error("completed entry must not be started")
	}
}

func TestTimestampFormats(t *testing.T) {
	at := time.Date(2026, 8, 27, 9, 5, 42, 0, time.Local)

	if got := Timestamp(at); got != "0905" {
		t.Errorf("Timestamp = %q, want 0905", got)
	}
	if got := Datestamp(at); got != "2026-08-27" {
		t.Errorf("Datestamp = %q, want 2026-08-27", got)
	}

	evening := time.Date(2026, 8, 27, 17, 45, 0, 0, time.Local)
	if got := Timestamp(evening); got != "1745" {
		t.Errorf("Timestamp = %q, want 1745", got)
	}
}
