package normalizer

import (
	"ohmeta/internal/config"
	"ohmeta/internal/models"
)

// Validator checks rows and headers against the configured schema.
type Validator struct {
	cfg config.NormalizerConfig
}

// NewValidator creates a new validator instance.
func NewValidator(cfg config.NormalizerConfig) *Validator {
	return &Validator{cfg: cfg}
}

// requiredColumns are the single-valued columns every row must carry.
func (v *Validator) requiredColumns() []string {
	return []string{
		v.cfg.Columns.Title,
		v.cfg.Columns.License,
		v.cfg.Columns.Abstract,
	}
}

// ValidateHeaders checks a source header once, before any row is processed.
func (v *Validator) ValidateHeaders(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	for _, c := range v.requiredColumns() {
		if !present[c] {
			return &SchemaError{Column: c, Err: ErrMissingColumn}
		}
	}

	q := v.cfg.Questions
	hasQuestions := false

	for n := 1; n <= q.MaxSlots; n++ {
		if !present[q.LabelFor(n)] {
			continue
		}

		hasQuestions = true

		if !present[q.TimecodeFor(n)] {
			return &SchemaError{Column: q.TimecodeFor(n), Err: ErrMissingColumn}
		}
	}

	for _, c := range columns {
		if n, _, ok := q.SlotOf(c); ok && (n < 1 || n > q.MaxSlots) {
			return &SchemaError{Column: c, Err: ErrUndeclaredQuestionSlot}
		}
	}

	if hasQuestions && !present[v.cfg.Columns.StopTC] {
		return &SchemaError{Column: v.cfg.Columns.StopTC, Err: ErrMissingColumn}
	}

	return nil
}

// Validate checks that row carries every structural column.
func (v *Validator) Validate(row models.Row) error {
	for _, c := range v.requiredColumns() {
		if !row.Has(c) {
			return &MissingColumnError{Row: row.Line, Column: c}
		}
	}

	return nil
}
