package normalizer

import (
	"fmt"
	"strings"

	"ohmeta/internal/config"
	"ohmeta/internal/models"
)

const (
	rangeType  = "Range"
	canvasType = "Canvas"
)

// QuestionBuilder derives the question timeline of an interview.
type QuestionBuilder struct {
	ids         IDGenerator
	schema      config.QuestionSchema
	stopColumn  string
	canvasID    string
	rangePrefix string
	locale      string
	marker      string
}

// NewQuestionBuilder creates a builder from the normalizer configuration.
func NewQuestionBuilder(cfg config.NormalizerConfig, ids IDGenerator) *QuestionBuilder {
	return &QuestionBuilder{
		ids:         ids,
		schema:      cfg.Questions,
		stopColumn:  cfg.Columns.StopTC,
		canvasID:    cfg.CanvasID,
		rangePrefix: cfg.RangeIDPrefix,
		locale:      cfg.Locale,
		marker:      cfg.ApproximateMarker,
	}
}

// Segments returns one segment per labelled question slot, in slot order.
// A question ends where the next slot starts, or at the interview stop timecode
// when the next slot has no timecode.
func (b *QuestionBuilder) Segments(row models.Row) ([]models.Segment, error) {
	var segments []models.Segment

	for n := 1; n <= b.schema.MaxSlots; n++ {
		label := strings.TrimSpace(row.Get(b.schema.LabelFor(n)))
		if label == "" {
			continue
		}

		start, err := b.seconds(row, b.schema.TimecodeFor(n))
		if err != nil {
			return nil, err
		}

		endColumn := b.schema.TimecodeFor(n + 1)
		if CleanTimecode(row.Get(endColumn), b.marker) == "" {
			endColumn = b.stopColumn
		}

		end, err := b.seconds(row, endColumn)
		if err != nil {
			return nil, err
		}

		if end < start {
			return nil, &TimecodeError{
				Row:    row.Line,
				Column: endColumn,
				Value:  row.Get(endColumn),
				Err:    ErrReversedSegment,
			}
		}

		segments = append(segments, models.Segment{Label: label, Start: start, End: end})
	}

	return segments, nil
}

// Build returns the question index of row. Rows without questions yield the empty index.
func (b *QuestionBuilder) Build(row models.Row) (models.QuestionIndex, error) {
	segments, err := b.Segments(row)
	if err != nil {
		return models.QuestionIndex{}, err
	}

	if len(segments) == 0 {
		return models.QuestionIndex{}, nil
	}

	index := models.QuestionIndex{
		Type:  rangeType,
		ID:    b.rangePrefix + b.ids.NewID(),
		Label: models.NewLanguageMap(b.locale, b.schema.GroupLabel),
		Items: make([]models.Range, 0, len(segments)),
	}

	for _, s := range segments {
		index.Items = append(index.Items, b.rangeFor(s))
	}

	return index, nil
}

func (b *QuestionBuilder) rangeFor(s models.Segment) models.Range {
	return models.Range{
		Type:  rangeType,
		ID:    b.rangePrefix + b.ids.NewID(),
		Label: models.NewLanguageMap(b.locale, s.Label),
		Items: []models.CanvasRef{
			{Type: canvasType, ID: fmt.Sprintf("%s#t=%d,%d", b.canvasID, s.Start, s.End)},
		},
	}
}

// seconds reads column as a timecode. Blank and malformed values are errors.
func (b *QuestionBuilder) seconds(row models.Row, column string) (int, error) {
	raw := row.Get(column)
	tc := CleanTimecode(raw, b.marker)

	if tc == "" {
		return 0, &TimecodeError{Row: row.Line, Column: column, Value: raw, Err: ErrMissingTimecode}
	}

	if !ValidTimecode(tc) {
		return 0, &TimecodeError{Row: row.Line, Column: column, Value: raw, Err: ErrInvalidTimecode}
	}

	return ParseDuration(tc), nil
}
