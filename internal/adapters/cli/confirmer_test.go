package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestStdinConfirmer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"y accepts", "y\n", true},
		{"yes accepts", "YES\n", true},
		{"n declines", "n\n", false},
		{"empty declines", "\n", false},
		{"closed input declines", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewConfirmerWithStreams(strings.NewReader(tt.input), &out)

			if got := c.Confirm("Reset ALL patrols?"); got != tt.want {
				t.Errorf("Confirm = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "Reset ALL patrols?") {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}
}
