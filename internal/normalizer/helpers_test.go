package normalizer

import (
	"ohmeta/internal/config"
	"ohmeta/internal/models"
)

// newTestRow builds a row from column/value pairs, keeping their order.
func newTestRow(line int, pairs ...string) models.Row {
	var columns, cells []string

	for i := 0; i+1 < len(pairs); i += 2 {
		columns = append(columns, pairs[i])
		cells = append(cells, pairs[i+1])
	}

	return models.NewRow(line, columns, cells)
}

func testConfig() config.NormalizerConfig {
	cfg := config.DefaultConfig().Normalizer
	cfg.CanvasID = "https://example.org/canvas/1"
	cfg.RangeIDPrefix = "range-"
	cfg.Questions.MaxSlots = 5

	return cfg
}

// baseRow carries every required column.
func baseRow(pairs ...string) models.Row {
	all := append([]string{
		"Title", "Interview with Jane Doe",
		"License", "https://creativecommons.org/licenses/by/4.0/",
		"Abstract", "Jane talks about the mill.",
	}, pairs...)

	return newTestRow(1, all...)
}
