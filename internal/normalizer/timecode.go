package normalizer

import (
	"regexp"
	"strconv"
	"strings"
)

// timecodePattern is the HH:MM:SS shape accepted by ParseDuration.
// Components are capped at four digits so the total fits a 32-bit int.
var timecodePattern = regexp.MustCompile(`^\d{1,4}:\d{1,4}:\d{1,4}$`)

// ValidTimecode reports whether tc has the HH:MM:SS shape.
func ValidTimecode(tc string) bool {
	return timecodePattern.MatchString(tc)
}

// CleanTimecode trims whitespace and an approximate marker on either side of tc.
func CleanTimecode(tc, marker string) string {
	tc = strings.TrimSpace(tc)

	if marker != "" {
		tc = strings.TrimPrefix(tc, marker)
		tc = strings.TrimSuffix(tc, marker)
		tc = strings.TrimSpace(tc)
	}

	return tc
}

// ParseDuration converts an HH:MM:SS timecode into total seconds.
//
// tc must satisfy ValidTimecode; callers check the shape first.
func ParseDuration(tc string) int {
	parts := strings.Split(tc, ":")

	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	seconds, _ := strconv.Atoi(parts[2])

	return hours*3600 + minutes*60 + seconds
}
