// Package models defines data structures for interview rows and the documents built from them.
package models

// Row represents one interview record read from the metadata source.
type Row struct {
	// Values maps column name to raw cell text.
	Values map[string]string
	// Columns keeps the source header order.
	Columns []string
	// Line is the 1-based record number in the source (header excluded).
	Line int
}

// NewRow builds a row from a header and its cells. Missing trailing cells become empty strings.
func NewRow(line int, columns, cells []string) Row {
	values := make(map[string]string, len(columns))

	for i, col := range columns {
		if i < len(cells) {
			values[col] = cells[i]
		} else {
			values[col] = ""
		}
	}

	return Row{
		Values:  values,
		Columns: columns,
		Line:    line,
	}
}

// Lookup returns the cell text for column and whether the column exists.
func (r Row) Lookup(column string) (string, bool) {
	v, ok := r.Values[column]
	return v, ok
}

// Get returns the cell text for column, or "" when the column is absent.
func (r Row) Get(column string) string {
	return r.Values[column]
}

// Has reports whether the row carries the column.
func (r Row) Has(column string) bool {
	_, ok := r.Values[column]
	return ok
}
