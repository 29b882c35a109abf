package normalizer

import (
	"errors"
	"strings"
	"testing"
)

func TestNewProcessor(t *testing.T) {
	p := NewProcessor(testConfig(), nil)
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_Process(t *testing.T) {
	p := NewProcessor(testConfig(), NewSequenceIDs())

	doc, err := p.Process(fullRow())
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if doc.Narrators.Value["en"][0] != "Jane Doe" {
		t.Errorf("Narrators = %v, want [Jane Doe]", doc.Narrators.Value["en"])
	}
}

func TestProcessor_Process_ValidationError(t *testing.T) {
	p := NewProcessor(testConfig(), nil)

	doc, err := p.Process(newTestRow(2, "Title", "Only a title"))
	if err == nil {
		t.Fatal("Process expected error for missing columns")
	}

	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("Process error = %v, want validation failure", err)
	}

	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("Process error = %v, want ErrMissingColumn in chain", err)
	}

	if doc != nil {
		t.Error("Process expected nil result for invalid input")
	}
}

func TestProcessor_Process_TransformationError(t *testing.T) {
	p := NewProcessor(testConfig(), nil)

	row := baseRow(
		"Interview_Question_1", "Intro",
		"Interview_Question_1_TC", "00:00:10",
	)

	_, err := p.Process(row)
	if !errors.Is(err, ErrMissingTimecode) {
		t.Fatalf("Process error = %v, want ErrMissingTimecode", err)
	}

	if !strings.Contains(err.Error(), "transformation failed") {
		t.Errorf("Process error = %v, want transformation failure", err)
	}
}

func TestProcessor_CheckHeaders(t *testing.T) {
	p := NewProcessor(testConfig(), nil)

	if err := p.CheckHeaders([]string{"Title", "License", "Abstract"}); err != nil {
		t.Errorf("CheckHeaders returned unexpected error: %v", err)
	}

	if err := p.CheckHeaders([]string{"Title"}); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("CheckHeaders error = %v, want ErrMissingColumn", err)
	}
}
