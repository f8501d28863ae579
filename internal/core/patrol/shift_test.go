package patrol

import (
	"testing"
	"time"
)

func TestDetectShift(t *testing.T) {
	// 2026-08-27 is a Thursday, 2026-08-28 a Friday, 2026-08-31 a Monday.
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"thursday before noon", time.Date(2026, 8, 27, 9, 0, 0, 0, time.Local), ShiftThursdayMorning},
		{"thursday at noon", time.Date(2026, 8, 27, 12, 0, 0, 0, time.Local), ShiftThursdayNight},
		{"thursday evening", time.Date(2026, 8, 27, 22, 15, 0, 0, time.Local), ShiftThursdayNight},
		{"friday before noon", time.Date(2026, 8, 28, 11, 59, 0, 0, time.Local), ShiftFridayMorning},
		{"friday afternoon", time.Date(2026, 8, 28, 13, 0, 0, 0, time.Local), ShiftFridayNight},
		{"other weekday defaults", time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local), ShiftThursdayMorning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectShift(tt.now); got != tt.want {
				t.Errorf("DetectShift = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseShift(t *testing.T) {
	t.Run("accepts the four labels", func(t *testing.T) {
		for _, s := range Shifts() {
			if _, err := ParseShift(s); err != nil {
				t.Errorf("ParseShift(%q) failed: %v", s, err)
			}
		}
	})

	t.Run("rejects the all-shifts sentinel", func(t *testing.T) {
		if _, err := ParseShift(ShiftAll); err == nil {
			t.Error("expected error for the all-shifts sentinel")
		}
	})

	t.Run("rejects free-form labels", func(t *testing.T) {
		if _, err := ParseShift("Saturday Night"); err == nil {
			t.Error("expected error for an unknown label")
		}
	})
}
