package normalizer

import (
	"fmt"
	"strings"

	"ohmeta/internal/config"
	"ohmeta/internal/models"
)

// Transformer assembles an interview document from a row.
type Transformer struct {
	questions *QuestionBuilder
	fields    []*FieldBuilder
	cfg       config.NormalizerConfig
}

// NewTransformer creates a transformer. ids supplies range identifiers.
func NewTransformer(cfg config.NormalizerConfig, ids IDGenerator) *Transformer {
	decls := cfg.ResolvedFields()
	fields := make([]*FieldBuilder, 0, len(decls))

	for _, d := range decls {
		fields = append(fields, NewFieldBuilder(d, cfg.Locale, cfg.AnnotationMarker))
	}

	return &Transformer{
		questions: NewQuestionBuilder(cfg, ids),
		fields:    fields,
		cfg:       cfg,
	}
}

// Transform builds the document for row. No partial document is returned on error.
func (t *Transformer) Transform(row models.Row) (*models.Document, error) {
	locale := t.cfg.Locale
	cols := t.cfg.Columns

	doc := &models.Document{
		Label:   models.NewLanguageMap(locale, strings.TrimSpace(row.Get(cols.Title))),
		Rights:  strings.TrimSpace(row.Get(cols.License)),
		Summary: models.NewLanguageMap(locale, strings.TrimSpace(row.Get(cols.Abstract))),
		NavDate: NavDate(row.Get(cols.Date)),
	}

	for _, f := range t.fields {
		if !doc.SetEntry(f.Key(), f.Build(row)) {
			return nil, fmt.Errorf("unknown field key %q", f.Key())
		}
	}

	questions, err := t.questions.Build(row)
	if err != nil {
		return nil, err
	}

	doc.Questions = questions

	return doc, nil
}
