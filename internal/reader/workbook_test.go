package reader

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, cells map[string]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("Failed to add sheet: %v", err)
		}
	}

	for cell, value := range cells {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			t.Fatalf("Failed to set %s: %v", cell, err)
		}
	}

	path := filepath.Join(t.TempDir(), "metadata.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", map[string]string{
		"A1": "Title",
		"B1": "Narrator_1",
		"C1": "Abstract",
		"A2": "First interview",
		"C2": "About the mill",
		"A4": "Second interview",
		"B4": "Jane Doe",
	})

	table, err := ReadWorkbook(path, "")
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	if len(table.Columns) != 3 {
		t.Fatalf("Columns = %q, want 3", table.Columns)
	}

	// Row 3 is blank and skipped.
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}

	first := table.Rows[0]
	if first.Get("Title") != "First interview" || first.Get("Narrator_1") != "" {
		t.Errorf("first row = %+v", first.Values)
	}

	second := table.Rows[1]
	if !second.Has("Abstract") || second.Get("Abstract") != "" {
		t.Errorf("second row Abstract = %q, want present and empty", second.Get("Abstract"))
	}

	if second.Get("Narrator_1") != "Jane Doe" {
		t.Errorf("second row Narrator_1 = %q", second.Get("Narrator_1"))
	}
}

func TestReadWorkbook_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Interviews", map[string]string{
		"A1": "Title",
		"A2": "Named sheet row",
	})

	table, err := ReadWorkbook(path, "Interviews")
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	if len(table.Rows) != 1 || table.Rows[0].Get("Title") != "Named sheet row" {
		t.Errorf("rows = %+v", table.Rows)
	}
}

func TestOpen_Dispatch(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", map[string]string{"A1": "Title", "A2": "x"})

	table, err := Open(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if len(table.Rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.Rows))
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions()); err == nil {
		t.Error("Open expected error for missing file")
	}
}
