// Package validator checks built interview documents against their structural invariants.
package validator

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"ohmeta/internal/config"
	"ohmeta/internal/models"
)

// ValidationError represents a validation error with context.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	// Document is the 0-based index of the document in the run.
	Document int
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
	Stats    ValidationStats
	IsValid  bool
}

// ValidationStats contains validation statistics.
type ValidationStats struct {
	TotalDocuments   int
	ValidDocuments   int
	InvalidDocuments int
	TotalRanges      int
	UndatedDocuments int
}

// DocumentValidator validates interview documents.
type DocumentValidator struct {
	cfg           config.NormalizerConfig
	navDate       *regexp.Regexp
	fragment      *regexp.Regexp
	locationKeys  map[string]bool
	annotatedKeys map[string]bool
}

// NewDocumentValidator creates a validator for documents built with cfg.
func NewDocumentValidator(cfg config.NormalizerConfig) *DocumentValidator {
	v := &DocumentValidator{
		cfg:           cfg,
		navDate:       regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T00:00:00Z$`),
		fragment:      regexp.MustCompile(`^` + regexp.QuoteMeta(cfg.CanvasID) + `#t=(\d+),(\d+)$`),
		locationKeys:  make(map[string]bool),
		annotatedKeys: make(map[string]bool),
	}

	for _, f := range cfg.ResolvedFields() {
		if f.FirstLine {
			v.locationKeys[f.Key] = true
		}

		if f.StripAnnotation {
			v.annotatedKeys[f.Key] = true
		}
	}

	return v
}

// ValidateDocuments validates every document and the identifiers shared between them.
func (v *DocumentValidator) ValidateDocuments(docs []*models.Document) *ValidationResult {
	result := &ValidationResult{
		IsValid:  true,
		Errors:   []ValidationError{},
		Warnings: []string{},
	}

	seen := make(map[string]int)

	for i, doc := range docs {
		result.Stats.TotalDocuments++

		errs := v.validateDocument(i, doc)
		errs = append(errs, v.checkIDs(i, doc, seen)...)

		if doc.NavDate == "" {
			result.Stats.UndatedDocuments++
			result.Warnings = append(result.Warnings, fmt.Sprintf("document %d has no navigation date", i))
		}

		result.Stats.TotalRanges += len(doc.Questions.Items)

		if len(errs) > 0 {
			result.IsValid = false
			result.Stats.InvalidDocuments++
			result.Errors = append(result.Errors, errs...)
		} else {
			result.Stats.ValidDocuments++
		}
	}

	return result
}

// ValidateDocument validates a single document.
func (v *DocumentValidator) ValidateDocument(doc *models.Document) error {
	errs := v.validateDocument(0, doc)
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%s: %s", errs[0].Field, errs[0].Message)
}

func (v *DocumentValidator) validateDocument(idx int, doc *models.Document) []ValidationError {
	var errs []ValidationError

	fail := func(field, value, msg string) {
		errs = append(errs, ValidationError{Document: idx, Field: field, Value: truncate(value, 50), Message: msg})
	}

	locale := v.cfg.Locale

	for key, entry := range doc.Entries() {
		labels, ok := entry.Label[locale]
		if !ok || len(labels) != 1 {
			fail(key, "", "label must hold exactly one string")
		}

		values, ok := entry.Value[locale]
		if !ok || values == nil {
			fail(key, "", "value list is missing")
			continue
		}

		for _, val := range values {
			switch {
			case val == "":
				fail(key, val, "value list contains an empty string")
			case v.locationKeys[key] && strings.Contains(val, "\n"):
				fail(key, val, "location value spans several lines")
			case v.annotatedKeys[key] && v.cfg.AnnotationMarker != "" && strings.Contains(val, v.cfg.AnnotationMarker):
				fail(key, val, "value still carries a vocabulary URI")
			}
		}
	}

	if doc.NavDate != "" && !v.navDate.MatchString(doc.NavDate) {
		fail("navDate", doc.NavDate, "navigation date is not a day-precision UTC timestamp")
	}

	q := doc.Questions
	if q.IsEmpty() {
		if q.Type != "" || q.ID != "" || len(q.Label) != 0 {
			fail("questions", q.ID, "empty question index must be an empty object")
		}

		return errs
	}

	if q.Type != "Range" || q.ID == "" {
		fail("questions", q.ID, "question index must be an identified Range")
	} else if msg := v.checkPrefix(q.ID); msg != "" {
		fail("questions", q.ID, msg)
	}

	for i, r := range q.Items {
		field := fmt.Sprintf("questions.items[%d]", i)

		if r.Type != "Range" || r.ID == "" {
			fail(field, r.ID, "range must be an identified Range")
		} else if msg := v.checkPrefix(r.ID); msg != "" {
			fail(field, r.ID, msg)
		}

		if len(r.Label[locale]) != 1 {
			fail(field, "", "range label must hold exactly one string")
		}

		if len(r.Items) != 1 || r.Items[0].Type != "Canvas" {
			fail(field, "", "range must target exactly one Canvas")
			continue
		}

		m := v.fragment.FindStringSubmatch(r.Items[0].ID)
		if m == nil {
			fail(field, r.Items[0].ID, "canvas fragment does not match the configured canvas")
			continue
		}

		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])

		if end < start {
			fail(field, r.Items[0].ID, "range ends before it starts")
		}
	}

	return errs
}

// checkPrefix reports how id breaks the "<prefix><generated id>" shape, or "" when it fits.
func (v *DocumentValidator) checkPrefix(id string) string {
	prefix := v.cfg.RangeIDPrefix
	if prefix == "" {
		return ""
	}

	rest, ok := strings.CutPrefix(id, prefix)

	switch {
	case !ok:
		return "range id does not start with the configured prefix"
	case rest == "":
		return "range id has nothing after the configured prefix"
	case strings.HasPrefix(rest, prefix):
		return "range id repeats the configured prefix"
	}

	return ""
}

// checkIDs records range identifiers in seen and reports any reuse.
func (v *DocumentValidator) checkIDs(idx int, doc *models.Document, seen map[string]int) []ValidationError {
	if doc.Questions.IsEmpty() {
		return nil
	}

	var errs []ValidationError

	ids := []string{doc.Questions.ID}
	for _, r := range doc.Questions.Items {
		ids = append(ids, r.ID)
	}

	for _, id := range ids {
		if id == "" {
			continue
		}

		if first, dup := seen[id]; dup {
			errs = append(errs, ValidationError{
				Document: idx,
				Field:    "questions",
				Value:    id,
				Message:  fmt.Sprintf("range id already used by document %d", first),
			})

			continue
		}

		seen[id] = idx
	}

	return errs
}

// truncate truncates string to max length.
func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}

	return s
}

// String returns string representation of validation result.
func (r *ValidationResult) String() string {
	status := "VALID"
	if !r.IsValid {
		status = "INVALID"
	}

	return fmt.Sprintf(
		"%s | Documents: %d | Valid: %d | Invalid: %d | Ranges: %d | Warnings: %d",
		status,
		r.Stats.TotalDocuments,
		r.Stats.ValidDocuments,
		r.Stats.InvalidDocuments,
		r.Stats.TotalRanges,
		len(r.Warnings),
	)
}

// PrintErrors writes validation errors in readable format.
func (r *ValidationResult) PrintErrors(w io.Writer) {
	if len(r.Errors) == 0 {
		return
	}

	fmt.Fprintln(w, "Validation Errors:")

	for _, err := range r.Errors {
		fmt.Fprintf(w, "  Document %d [%s]: %s\n", err.Document, err.Field, err.Message)

		if err.Value != "" {
			fmt.Fprintf(w, "    Found: %q\n", err.Value)
		}
	}
}

// PrintWarnings writes validation warnings.
func (r *ValidationResult) PrintWarnings(w io.Writer) {
	if len(r.Warnings) == 0 {
		return
	}

	fmt.Fprintln(w, "Validation Warnings:")

	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "  %s\n", warn)
	}
}
