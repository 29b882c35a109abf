package normalizer

import (
	"strings"
	"time"
)

const (
	navDateLayout = "01/02/2006"
	navDateSuffix = "T00:00:00Z"
)

// NavDate converts a month/day/year date into an ISO-8601 midnight UTC timestamp.
// Unparseable input yields "".
func NavDate(text string) string {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return ""
	}

	for i, p := range parts {
		if len(p) == 1 {
			parts[i] = "0" + p
		}
	}

	t, err := time.Parse(navDateLayout, strings.Join(parts, "/"))
	if err != nil {
		return ""
	}

	return t.Format(time.DateOnly) + navDateSuffix
}
