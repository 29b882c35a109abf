// Package normalizer turns interview rows into descriptive metadata documents.
package normalizer

import (
	"strings"
	"unicode"
)

// CollectValues drops empty entries and keeps the remaining order. It never returns nil.
func CollectValues(raw []string) []string {
	values := make([]string, 0, len(raw))

	for _, v := range raw {
		if v != "" {
			values = append(values, v)
		}
	}

	return values
}

// FirstLine returns text up to the first newline.
func FirstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}

	return text
}

// StripAnnotationSuffix cuts text at marker and trims the remainder.
func StripAnnotationSuffix(text, marker string) string {
	if marker != "" {
		if i := strings.Index(text, marker); i >= 0 {
			return strings.TrimRightFunc(text[:i], unicode.IsSpace)
		}
	}

	return strings.TrimSpace(text)
}
