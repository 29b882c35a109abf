package reader

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadDelimited parses a delimited export. A field opened with the quote rune may
// contain delimiters and newlines; a doubled quote inside it is a literal quote.
// Blank lines are skipped.
func ReadDelimited(r io.Reader, opts Options) (*Table, error) {
	records, err := readRecords(bufio.NewReader(r), opts)
	if err != nil {
		return nil, err
	}

	return newTable(records)
}

type recordScanner struct {
	records [][]string
	record  []string
	field   strings.Builder
	quoted  bool
}

func (s *recordScanner) endField() {
	s.record = append(s.record, s.field.String())
	s.field.Reset()
	s.quoted = false
}

func (s *recordScanner) endRecord() {
	blank := len(s.record) == 0 && s.field.Len() == 0 && !s.quoted

	s.endField()

	if !blank {
		s.records = append(s.records, s.record)
	}

	s.record = nil
}

func readRecords(br *bufio.Reader, opts Options) ([][]string, error) {
	var (
		s       recordScanner
		inQuote bool
	)

	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}

		switch {
		case inQuote:
			if c != opts.Quote {
				s.field.WriteRune(c)
				continue
			}

			next, _, err := br.ReadRune()
			if err == nil && next == opts.Quote {
				s.field.WriteRune(opts.Quote)
				continue
			}

			if err == nil {
				_ = br.UnreadRune()
			}

			inQuote = false
		case c == opts.Quote && s.field.Len() == 0 && !s.quoted:
			inQuote = true
			s.quoted = true
		case c == opts.Delimiter:
			s.endField()
		case c == '\r':
			next, _, err := br.ReadRune()
			if err == nil && next != '\n' {
				_ = br.UnreadRune()
			}

			s.endRecord()
		case c == '\n':
			s.endRecord()
		default:
			s.field.WriteRune(c)
		}
	}

	if inQuote {
		return nil, &ParseError{Line: len(s.records), Err: ErrUnterminatedQuote}
	}

	if len(s.record) > 0 || s.field.Len() > 0 || s.quoted {
		s.endRecord()
	}

	return s.records, nil
}
