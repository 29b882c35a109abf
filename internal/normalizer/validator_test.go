package normalizer

import (
	"errors"
	"testing"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator(testConfig())
	if v == nil {
		t.Fatal("NewValidator returned nil")
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(testConfig())

	if err := v.Validate(baseRow()); err != nil {
		t.Errorf("Validate returned unexpected error for valid row: %v", err)
	}

	row := newTestRow(4, "Title", "T", "Abstract", "A")

	err := v.Validate(row)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Validate error = %v, want ErrMissingColumn", err)
	}

	var mcErr *MissingColumnError
	if !errors.As(err, &mcErr) {
		t.Fatalf("Validate error %T is not *MissingColumnError", err)
	}

	if mcErr.Column != "License" || mcErr.Row != 4 {
		t.Errorf("MissingColumnError = %+v, want License on row 4", mcErr)
	}
}

func TestValidator_ValidateHeaders(t *testing.T) {
	required := []string{"Title", "License", "Abstract"}

	tests := []struct {
		name       string
		extra      []string
		omit       string
		wantErr    error
		wantColumn string
	}{
		{
			name: "No questions",
		},
		{
			name:  "Questions with stop",
			extra: []string{"Interview_Question_1", "Interview_Question_1_TC", "Interview_Question_3", "Interview_Question_3_TC", "Interview Stop TC"},
		},
		{
			name:       "Missing abstract",
			omit:       "Abstract",
			wantErr:    ErrMissingColumn,
			wantColumn: "Abstract",
		},
		{
			name:       "Question without timecode column",
			extra:      []string{"Interview_Question_2", "Interview Stop TC"},
			wantErr:    ErrMissingColumn,
			wantColumn: "Interview_Question_2_TC",
		},
		{
			name:       "Question without stop column",
			extra:      []string{"Interview_Question_1", "Interview_Question_1_TC"},
			wantErr:    ErrMissingColumn,
			wantColumn: "Interview Stop TC",
		},
		{
			name:       "Slot beyond schema",
			extra:      []string{"Interview_Question_6", "Interview_Question_6_TC", "Interview Stop TC"},
			wantErr:    ErrUndeclaredQuestionSlot,
			wantColumn: "Interview_Question_6",
		},
		{
			name:       "Slot far beyond schema after a gap",
			extra:      []string{"Interview_Question_1", "Interview_Question_1_TC", "Interview_Question_42", "Interview_Question_42_TC", "Interview Stop TC"},
			wantErr:    ErrUndeclaredQuestionSlot,
			wantColumn: "Interview_Question_42",
		},
		{
			name:       "Timecode column beyond schema",
			extra:      []string{"Interview_Question_9_TC"},
			wantErr:    ErrUndeclaredQuestionSlot,
			wantColumn: "Interview_Question_9_TC",
		},
		{
			name:       "Slot zero",
			extra:      []string{"Interview_Question_0", "Interview_Question_0_TC", "Interview Stop TC"},
			wantErr:    ErrUndeclaredQuestionSlot,
			wantColumn: "Interview_Question_0",
		},
		{
			name:  "Gap inside schema",
			extra: []string{"Interview_Question_1", "Interview_Question_1_TC", "Interview_Question_5", "Interview_Question_5_TC", "Interview Stop TC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var columns []string
			for _, c := range required {
				if c != tt.omit {
					columns = append(columns, c)
				}
			}

			columns = append(columns, tt.extra...)

			err := NewValidator(testConfig()).ValidateHeaders(columns)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateHeaders returned unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateHeaders error = %v, want %v", err, tt.wantErr)
			}

			var sErr *SchemaError
			if !errors.As(err, &sErr) || sErr.Column != tt.wantColumn {
				t.Errorf("SchemaError = %v, want column %q", err, tt.wantColumn)
			}
		})
	}
}
