package normalizer

import (
	"strings"

	"ohmeta/internal/config"
	"ohmeta/internal/models"
)

// FieldBuilder builds one descriptive entry from its declared columns.
type FieldBuilder struct {
	decl   config.FieldConfig
	locale string
	marker string
}

// NewFieldBuilder creates a builder for decl. marker is the annotation prefix to strip.
func NewFieldBuilder(decl config.FieldConfig, locale, marker string) *FieldBuilder {
	return &FieldBuilder{
		decl:   decl,
		locale: locale,
		marker: marker,
	}
}

// Key returns the document field the builder fills.
func (b *FieldBuilder) Key() string {
	return b.decl.Key
}

// Build gathers the declared columns in order. Absent columns count as blank.
func (b *FieldBuilder) Build(row models.Row) models.DescriptiveEntry {
	raw := make([]string, 0, len(b.decl.Columns))

	for _, col := range b.decl.Columns {
		v := row.Get(col)

		if b.decl.FirstLine {
			v = FirstLine(v)
		}

		v = strings.TrimSpace(v)

		if b.decl.StripAnnotation {
			v = StripAnnotationSuffix(v, b.marker)
		}

		raw = append(raw, v)
	}

	return models.DescriptiveEntry{
		Label: models.NewLanguageMap(b.locale, b.decl.Label),
		Value: models.NewLanguageMap(b.locale, CollectValues(raw)...),
	}
}
