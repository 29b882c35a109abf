// Package reader loads interview rows from metadata exports.
package reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"ohmeta/internal/models"
)

// Reader errors.
var (
	ErrEmptyInput        = errors.New("input has no header row")
	ErrTooManyFields     = errors.New("record has more fields than the header")
	ErrUnterminatedQuote = errors.New("unterminated quoted field")
	ErrNoSheet           = errors.New("workbook has no sheet")
)

// ParseError reports a malformed record.
type ParseError struct {
	Err  error
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Options configures how a source is read.
type Options struct {
	// Sheet selects a workbook sheet; empty means the first one.
	Sheet     string
	Delimiter rune
	Quote     rune
}

// DefaultOptions returns pipe-delimited, percent-quoted options.
func DefaultOptions() Options {
	return Options{
		Delimiter: '|',
		Quote:     '%',
	}
}

// Table is a header plus the rows read beneath it.
type Table struct {
	Columns []string
	Rows    []models.Row
}

// Open reads path, choosing the format from its extension.
func Open(path string, opts Options) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadWorkbook(path, opts.Sheet)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return ReadDelimited(f, opts)
}

// newTable turns raw records into rows. The first record is the header.
func newTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = cleanCell(h)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	table := &Table{
		Columns: header,
		Rows:    make([]models.Row, 0, len(records)-1),
	}

	for i, rec := range records[1:] {
		line := i + 1
		if len(rec) > len(header) {
			return nil, &ParseError{Line: line, Err: ErrTooManyFields}
		}

		cells := make([]string, len(rec))
		for j, c := range rec {
			cells[j] = cleanCell(c)
		}

		table.Rows = append(table.Rows, models.NewRow(line, header, cells))
	}

	return table, nil
}

// cleanCell folds CRLF to LF and applies NFC normalization.
func cleanCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return norm.NFC.String(s)
}
