package normalizer

import (
	"fmt"

	"ohmeta/internal/config"
	"ohmeta/internal/models"
)

// Processor validates rows and transforms them into documents.
// It holds no per-row state and may be shared between goroutines.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance. A nil ids uses random UUIDs.
func NewProcessor(cfg config.NormalizerConfig, ids IDGenerator) *Processor {
	if ids == nil {
		ids = UUIDGenerator{}
	}

	return &Processor{
		validator:   NewValidator(cfg),
		transformer: NewTransformer(cfg, ids),
	}
}

// CheckHeaders validates a source header against the schema.
func (p *Processor) CheckHeaders(columns []string) error {
	if err := p.validator.ValidateHeaders(columns); err != nil {
		return fmt.Errorf("header validation failed: %w", err)
	}

	return nil
}

// Process transforms one row into its interview document.
func (p *Processor) Process(row models.Row) (*models.Document, error) {
	// 1. Validate the row structure
	if err := p.validator.Validate(row); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// 2. Build the document
	doc, err := p.transformer.Transform(row)
	if err != nil {
		return nil, fmt.Errorf("transformation failed: %w", err)
	}

	return doc, nil
}
