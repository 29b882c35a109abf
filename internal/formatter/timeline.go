// Package formatter renders interview documents as markdown for review.
package formatter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"ohmeta/internal/models"
)

// fragmentRegex extracts the start and end offsets of a canvas reference.
var fragmentRegex = regexp.MustCompile(`#t=(\d+),(\d+)$`)

var timelineHeader = []string{"#", "QUESTION", "START", "END", "DURATION"}

// TimelineTable renders the question ranges of doc as a markdown table.
// A document without questions yields a single italic line.
func TimelineTable(doc *models.Document, locale string) string {
	var sb strings.Builder

	if title := first(doc.Label[locale]); title != "" {
		fmt.Fprintf(&sb, "## %s\n\n", title)
	}

	if doc.Questions.IsEmpty() {
		sb.WriteString("_No question timeline._\n")
		return sb.String()
	}

	table := [][]string{timelineHeader, nil}

	for i, r := range doc.Questions.Items {
		start, end := "?", "?"
		duration := "?"

		if len(r.Items) > 0 {
			if m := fragmentRegex.FindStringSubmatch(r.Items[0].ID); m != nil {
				s, _ := strconv.Atoi(m[1])
				e, _ := strconv.Atoi(m[2])
				start, end, duration = Clock(s), Clock(e), Clock(e-s)
			}
		}

		table = append(table, []string{
			strconv.Itoa(i + 1),
			escapeCell(first(r.Label[locale])),
			start,
			end,
			duration,
		})
	}

	for _, line := range FormatTable(table, 1) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// Clock formats seconds as HH:MM:SS.
func Clock(seconds int) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	return fmt.Sprintf("%s%02d:%02d:%02d", sign, seconds/3600, seconds%3600/60, seconds%60)
}

// FormatTable pads cells to the display width of their column.
// The row at separatorRowIdx is rendered as dashes; pass -1 for none.
func FormatTable(table [][]string, separatorRowIdx int) []string {
	colCount := 0
	for _, row := range table {
		colCount = max(colCount, len(row))
	}

	// Calculate max widths (using display width)
	colWidths := make([]int, colCount)

	for rIdx, row := range table {
		if rIdx == separatorRowIdx {
			continue
		}

		for i, cell := range row {
			colWidths[i] = max(colWidths[i], runewidth.StringWidth(cell))
		}
	}

	// Ensure min width for separator (usually 3 dashes "---")
	for i := range colWidths {
		colWidths[i] = max(colWidths[i], 3)
	}

	result := make([]string, 0, len(table))

	for i, row := range table {
		var sb strings.Builder

		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")

			if i == separatorRowIdx {
				sb.WriteString(strings.Repeat("-", colWidths[j]))
			} else {
				content := ""
				if j < len(row) {
					content = row[j]
				}

				sb.WriteString(runewidth.FillRight(content, colWidths[j]))
			}

			sb.WriteString(" |")
		}

		result = append(result, sb.String())
	}

	return result
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

// escapeCell keeps a label on one table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
