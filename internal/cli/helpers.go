package cli

import (
	"strconv"

	"github.com/example/patrol/internal/core/patrol"
)

// resolveLocation accepts either a full catalog name or a 1-based index
// as shown by `patrol locations`.
func resolveLocation(arg string) (string, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return patrol.LocationAt(n)
	}
	if _, err := patrol.IndexOf(arg); err != nil {
		return "", err
	}
	return arg, nil
}

// orDash substitutes an em dash for an unset timestamp.
func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}
