package patrol

import (
	"fmt"
	"time"
)

// Shift labels are a closed set: Thursday/Friday crossed with Morning/Night.
const (
	ShiftThursdayMorning = "Thursday Morning"
	ShiftThursdayNight   = "Thursday Night"
	ShiftFridayMorning   = "Friday Morning"
	ShiftFridayNight     = "Friday Night"
)

// ShiftAll is the history-filter sentinel matching every shift.
// It is not a valid shift for recording.
const ShiftAll = "All Shifts"

var shifts = []string{
	ShiftThursdayMorning,
	ShiftThursdayNight,
	ShiftFridayMorning,
	ShiftFridayNight,
}

// Shifts returns the ordered list of shift labels.
// Callers must not mutate the returned slice.
func Shifts() []string {
	return shifts
}

// ValidShift reports whether the label is one of the four shift labels.
func ValidShift(label string) bool {
	for _, s := range shifts {
		if s == label {
			return true
		}
	}
	return false
}

// ParseShift validates a shift label, returning an error listing the
// accepted values on mismatch.
func ParseShift(label string) (string, error) {
	if ValidShift(label) {
		return label, nil
	}
	return "", fmt.Errorf("invalid shift %q (valid: %s, %s, %s, %s)",
		label, ShiftThursdayMorning, ShiftThursdayNight, ShiftFridayMorning, ShiftFridayNight)
}

// DetectShift suggests a shift from the current weekday and hour.
// Thursday and Friday split at noon; any other day falls back to
// Thursday Morning. The suggestion is an initial default only, the
// active shift can be overridden until a patrol is ended.
func DetectShift(now time.Time) string {
	hour := now.Hour()
	switch now.Weekday() {
	case time.Thursday:
		if hour < 12 {
			return ShiftThursdayMorning
		}
		return ShiftThursdayNight
	case time.Friday:
		if hour < 12 {
			return ShiftFridayMorning
		}
		return ShiftFridayNight
	default:
		return ShiftThursdayMorning
	}
}
