package export

import (
	"strings"

	"github.com/coregx/gxpdf/internal/models/table"
)

// flattenHeader joins every header row's text per column into a single
// synthesized header label, the way original_source/src/table_extractor.py's
// pandas MultiIndex construction flattens multi-row headers for
// tableToDataframe. Cells already carry the last non-empty text in
// their row as a span sentinel (tablecore's applySpanSentinels), so a
// column with a merged header cell repeats that text in every row of
// the band rather than leaving it blank.
func flattenHeader(tbl *table.Table) []string {
	labels := make([]string, tbl.ColCount)
	if tbl.RowCount == 0 {
		return labels
	}

	for c := 0; c < tbl.ColCount; c++ {
		var parts []string
		seen := map[string]bool{}
		for r := 0; r < tbl.RowCount; r++ {
			cell := tbl.Rows[r][c]
			if cell.Bounds.Bottom > tbl.HeaderBottom {
				break
			}
			text := strings.TrimSpace(cell.Text)
			if text == "" || seen[text] {
				continue
			}
			seen[text] = true
			parts = append(parts, text)
		}
		labels[c] = strings.Join(parts, " ")
	}
	return labels
}
