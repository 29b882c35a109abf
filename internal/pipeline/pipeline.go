// Package pipeline converts every row of a table into interview documents.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ohmeta/internal/config"
	"ohmeta/internal/logger"
	"ohmeta/internal/models"
	"ohmeta/internal/normalizer"
	"ohmeta/internal/validator"
)

// ErrStrictValidation is returned when built documents break their invariants.
var ErrStrictValidation = errors.New("strict validation failed")

// RowError records the failure of one source row.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Result holds the documents of a run in input order and the rows that failed.
type Result struct {
	Documents  []*models.Document
	Failures   []*RowError
	Validation *validator.ValidationResult
}

// Pipeline runs a processor over rows.
type Pipeline struct {
	cfg       *config.Config
	processor *normalizer.Processor
	validator *validator.DocumentValidator
	log       *logger.Logger
}

// New creates a pipeline. A nil ids uses random UUIDs and a nil log discards output.
func New(cfg *config.Config, ids normalizer.IDGenerator, log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Discard()
	}

	return &Pipeline{
		cfg:       cfg,
		processor: normalizer.NewProcessor(cfg.Normalizer, ids),
		validator: validator.NewDocumentValidator(cfg.Normalizer),
		log:       log.With("component", "pipeline"),
	}
}

// CheckHeaders validates the table header against the question schema.
func (p *Pipeline) CheckHeaders(columns []string) error {
	return p.processor.CheckHeaders(columns)
}

// Run converts rows with up to features.workers goroutines.
// Without continue_on_errors the first failing row aborts the run.
func (p *Pipeline) Run(ctx context.Context, rows []models.Row) (*Result, error) {
	docs := make([]*models.Document, len(rows))
	errs := make([]error, len(rows))

	workers := max(p.cfg.Features.Workers, 1)
	stopOnError := !p.cfg.Features.ContinueOnErrors

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for idx, row := range rows {
		idx, row := idx, row

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			doc, err := p.processor.Process(row)
			if err != nil {
				p.log.Warn("row failed", "row", row.Line, "err", err)

				errs[idx] = err
				if stopOnError {
					return &RowError{Row: row.Line, Err: err}
				}

				return nil
			}

			p.log.Debug("row converted", "row", row.Line, "ranges", len(doc.Questions.Items))
			docs[idx] = doc

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Documents: make([]*models.Document, 0, len(rows))}

	for idx, row := range rows {
		if errs[idx] != nil {
			result.Failures = append(result.Failures, &RowError{Row: row.Line, Err: errs[idx]})
			continue
		}

		result.Documents = append(result.Documents, docs[idx])
	}

	if p.cfg.Features.StrictValidation {
		result.Validation = p.validator.ValidateDocuments(result.Documents)
		if !result.Validation.IsValid {
			return result, fmt.Errorf("%w: %s", ErrStrictValidation, result.Validation.String())
		}
	}

	p.log.Info("conversion finished",
		"rows", len(rows),
		"documents", len(result.Documents),
		"failures", len(result.Failures),
	)

	return result, nil
}
