package tablecore

import (
	"sort"
	"strings"
)

// Cell is one resolved cell of a Table: its final (possibly shrunk and
// merged) bbox, its text, and the bbox of the grid rectangle it was
// originally carved from, before shrinking or merging.
type Cell struct {
	Bbox     BBox
	Text     string
	GridBbox BBox
}

// Table is the final output of CellResolver for one region: the region's
// bbox/header/footer, a flat Cells list ordered by increasing Top then
// X0, and the row-major Layout grid (§5's ordering guarantees).
type Table struct {
	Bbox    BBox
	Header  float64
	Footer  float64
	Cells   []Cell
	Layout  [][]Cell
}

// ResolveCells implements §4.3 in full: grid construction, text
// assignment with shrink, header-row merge, and first/second-column
// continuation merge. Returns ok=false (DegenerateRegion, per §7) when
// the region collapses to fewer than 3 resulting rows or no column
// separators.
func ResolveCells(region TableRegion, layout Layout, page PageView, params LayoutParams) (Table, bool) {
	vLines := explicitVerticalLines(region, layout, params)
	hLines := explicitHorizontalLines(region, layout, params)

	if len(vLines) < 3 || len(hLines) < 2 {
		return Table{}, false
	}

	grid := buildGrid(vLines, hLines)
	if len(grid) < 3 {
		return Table{}, false
	}

	clip, ok := page.Crop(region.Bbox)
	if !ok {
		return Table{}, false
	}

	resolved := make([][]Cell, len(grid))
	for r, row := range grid {
		resolved[r] = make([]Cell, len(row))
		for c, bbox := range row {
			shrunk := shrinkCell(clip, bbox, params)
			text := cellText(clip, shrunk)
			resolved[r][c] = Cell{Bbox: shrunk, Text: text, GridBbox: bbox}
		}
	}

	resolved = mergeHeaderRows(resolved, region, layout)
	resolved = mergeFirstColumnContinuations(resolved, region, params)
	resolved = mergeSecondColumnContinuations(resolved, region, params)

	if len(resolved) < 3 {
		return Table{}, false
	}

	applySpanSentinels(resolved)

	cells := flattenOrdered(resolved)

	return Table{
		Bbox:   region.Bbox,
		Header: layout.Header,
		Footer: layout.Footer,
		Cells:  cells,
		Layout: resolved,
	}, true
}

// explicitVerticalLines implements §4.3.1: region edges union column
// separators, deduplicated within params.SeparatorMergeMargin so
// near-duplicate separators emitted for the same boundary by different
// y-segments (extractColumnsBySegment) collapse to one grid line,
// keeping the family strictly ordered and pairwise disjoint (§8).
func explicitVerticalLines(region TableRegion, layout Layout, params LayoutParams) []float64 {
	positions := []float64{region.Bbox.X0, region.Bbox.X1}
	for _, s := range layout.Columns {
		positions = append(positions, s.Pos)
	}
	return dedupePositions(positions, params.SeparatorMergeMargin)
}

// explicitHorizontalLines implements §4.3.1: region top union footer
// union row separators (excluding those below the footer), deduplicated
// the same way as explicitVerticalLines.
func explicitHorizontalLines(region TableRegion, layout Layout, params LayoutParams) []float64 {
	positions := []float64{region.Bbox.Top, layout.Footer}
	for _, s := range layout.Rows {
		if s.Pos <= layout.Footer+1e-6 {
			positions = append(positions, s.Pos)
		}
	}
	return dedupePositions(positions, params.SeparatorMergeMargin)
}

// dedupePositions sorts positions and collapses any that land within
// tol of the previously kept position into it, so the resulting line
// family has no two entries closer together than tol.
func dedupePositions(positions []float64, tol float64) []float64 {
	sort.Float64s(positions)
	out := make([]float64, 0, len(positions))
	for _, p := range positions {
		if len(out) > 0 && p-out[len(out)-1] <= tol {
			continue
		}
		out = append(out, p)
	}
	return out
}

// buildGrid intersects the vertical and horizontal line families to
// form the rectangular candidate-cell grid, row-major order.
func buildGrid(vLines, hLines []float64) [][]BBox {
	if len(vLines) < 2 || len(hLines) < 2 {
		return nil
	}
	grid := make([][]BBox, len(hLines)-1)
	for r := 0; r < len(hLines)-1; r++ {
		grid[r] = make([]BBox, len(vLines)-1)
		for c := 0; c < len(vLines)-1; c++ {
			grid[r][c] = NewBBox(vLines[c], hLines[r], vLines[c+1], hLines[r+1])
		}
	}
	return grid
}

// shrinkCell implements §4.3.2's shrink operation: reduce bbox to the
// tightest rectangle enclosing non-whitespace, non-dot characters, with
// small inner padding, falling back to the original bbox edge when no
// content constrains that side.
func shrinkCell(clip PageView, bbox BBox, params LayoutParams) BBox {
	var minX, minTop, maxX, maxBottom float64
	found := false

	for _, c := range clip.Chars {
		if c.Text == " " || c.Text == "." {
			continue
		}
		if !bbox.Contains(c.Bbox, 0.5) {
			continue
		}
		if !found {
			minX, minTop, maxX, maxBottom = c.Bbox.X0, c.Bbox.Top, c.Bbox.X1, c.Bbox.Bottom
			found = true
			continue
		}
		minX = min(minX, c.Bbox.X0)
		minTop = min(minTop, c.Bbox.Top)
		maxX = max(maxX, c.Bbox.X1)
		maxBottom = max(maxBottom, c.Bbox.Bottom)
	}

	if !found {
		return bbox
	}

	return NewBBox(minX-params.ShrinkPaddingX, minTop-params.ShrinkPaddingY, maxX+params.ShrinkPaddingX, maxBottom+params.ShrinkPaddingY)
}

var dotRunCollapse = strings.NewReplacer(" . ", " ", "..", "")

// cellText implements §4.3.2's text-assignment: extract the page
// substring inside bbox, newlines collapsed to spaces, dot-leader
// residue collapsed.
func cellText(clip PageView, bbox BBox) string {
	chars := make([]Char, 0)
	for _, c := range clip.Chars {
		if bbox.Contains(c.Bbox, 0.5) {
			chars = append(chars, c)
		}
	}
	if len(chars) == 0 {
		return ""
	}
	chars = SortedByTop(chars)
	// Stable group by line (same Top within a small tolerance), then
	// order left to right, mirroring the teacher's own line-grouping
	// convention for cell text assembly.
	sort.SliceStable(chars, func(i, j int) bool {
		if sameTop(RuleLine{Top: chars[i].Bbox.Top}, RuleLine{Top: chars[j].Bbox.Top}) {
			return chars[i].Bbox.X0 < chars[j].Bbox.X0
		}
		return chars[i].Bbox.Top < chars[j].Bbox.Top
	})

	var sb strings.Builder
	for i, c := range chars {
		if i > 0 {
			prev := chars[i-1]
			if !sameTop(RuleLine{Top: prev.Bbox.Top}, RuleLine{Top: c.Bbox.Top}) {
				sb.WriteByte(' ')
			} else if c.Bbox.X0-prev.Bbox.X1 > 2.0 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(c.Text)
	}

	text := sb.String()
	text = strings.ReplaceAll(text, "\n", " ")
	text = dotRunCollapse.Replace(text)
	return strings.TrimSpace(text)
}

func nonEmptyCount(row []Cell) int {
	n := 0
	for _, c := range row {
		if strings.TrimSpace(c.Text) != "" {
			n++
		}
	}
	return n
}

// mergeHeaderRows implements §4.3.3.
func mergeHeaderRows(grid [][]Cell, region TableRegion, layout Layout) [][]Cell {
	for len(grid) >= 2 {
		top := grid[0]
		next := grid[1]
		if top[0].Bbox.Bottom > layout.Header {
			break
		}
		if nonEmptyCount(top) != nonEmptyCount(next) {
			break
		}
		if rulingBetween(region, top[0].Bbox.Bottom, next[0].Bbox.Top) {
			break
		}

		merged := make([]Cell, len(top))
		for c := range top {
			text := strings.TrimSpace(top[c].Text + " " + next[c].Text)
			merged[c] = Cell{
				Bbox:     NewBBox(next[c].Bbox.X0, top[c].Bbox.Top, next[c].Bbox.X1, next[c].Bbox.Bottom),
				Text:     text,
				GridBbox: top[c].GridBbox.Union(next[c].GridBbox),
			}
		}

		grid = append([][]Cell{merged}, grid[2:]...)
	}
	return grid
}

func rulingBetween(region TableRegion, top, bottom float64) bool {
	for _, l := range region.Lines {
		if l.Top > top && l.Top < bottom {
			return true
		}
	}
	return false
}

// mergeFirstColumnContinuations implements §4.3.4.
func mergeFirstColumnContinuations(grid [][]Cell, region TableRegion, params LayoutParams) [][]Cell {
	out := make([][]Cell, 0, len(grid))
	for i := 0; i < len(grid); i++ {
		row := grid[i]
		if i == 0 || len(out) == 0 {
			out = append(out, row)
			continue
		}
		if !onlyColumnPopulated(row, 0) {
			out = append(out, row)
			continue
		}
		prev := out[len(out)-1]
		if continuationExceptionApplies(prev, row, region, params) {
			out = append(out, row)
			continue
		}

		merged := make([]Cell, len(prev))
		for c := range prev {
			text := prev[c].Text
			if c == 0 {
				text = strings.TrimSpace(prev[c].Text + " " + row[c].Text)
			}
			merged[c] = Cell{
				Bbox:     NewBBox(prev[c].Bbox.X0, prev[c].Bbox.Top, prev[c].Bbox.X1, row[c].Bbox.Bottom),
				Text:     text,
				GridBbox: prev[c].GridBbox.Union(row[c].GridBbox),
			}
		}
		out[len(out)-1] = merged
	}
	return out
}

// mergeSecondColumnContinuations implements §4.3.5: symmetric rule, a
// row with content only in column >0 merges into the previous row.
func mergeSecondColumnContinuations(grid [][]Cell, region TableRegion, params LayoutParams) [][]Cell {
	out := make([][]Cell, 0, len(grid))
	for i := 0; i < len(grid); i++ {
		row := grid[i]
		if i == 0 || len(out) == 0 || len(row) < 2 {
			out = append(out, row)
			continue
		}
		if !onlyColumnsAfterFirstPopulated(row) {
			out = append(out, row)
			continue
		}
		prev := out[len(out)-1]
		if continuationExceptionApplies(prev, row, region, params) {
			out = append(out, row)
			continue
		}

		merged := make([]Cell, len(prev))
		for c := range prev {
			text := prev[c].Text
			if c > 0 && strings.TrimSpace(row[c].Text) != "" {
				text = strings.TrimSpace(prev[c].Text + " " + row[c].Text)
			}
			merged[c] = Cell{
				Bbox:     NewBBox(prev[c].Bbox.X0, prev[c].Bbox.Top, prev[c].Bbox.X1, row[c].Bbox.Bottom),
				Text:     text,
				GridBbox: prev[c].GridBbox.Union(row[c].GridBbox),
			}
		}
		out[len(out)-1] = merged
	}
	return out
}

func onlyColumnPopulated(row []Cell, col int) bool {
	for c, cell := range row {
		nonEmpty := strings.TrimSpace(cell.Text) != ""
		if c == col && !nonEmpty {
			return false
		}
		if c != col && nonEmpty {
			return false
		}
	}
	return true
}

func onlyColumnsAfterFirstPopulated(row []Cell) bool {
	if strings.TrimSpace(row[0].Text) != "" {
		return false
	}
	any := false
	for _, cell := range row[1:] {
		if strings.TrimSpace(cell.Text) != "" {
			any = true
		}
	}
	return any
}

// continuationExceptionApplies implements the shared guard list of
// §4.3.4/§4.3.5.
func continuationExceptionApplies(prev, row []Cell, region TableRegion, params LayoutParams) bool {
	prevText := rowJoinedText(prev)
	if strings.HasSuffix(strings.TrimSpace(prevText), ":") {
		return true
	}

	rowText := rowJoinedText(row)
	if isCentredInCell(row, params) {
		return true
	}
	if dottedLeaderCrosses(row, region) {
		return true
	}
	if isDigitsAndPunctuationOnly(rowText) {
		return true
	}

	gap := row[0].Bbox.Top - prev[0].Bbox.Bottom
	if gap > params.MaxCharSpace*params.ContinuationGapMultiplier {
		return true
	}
	if rulingBetween(region, prev[0].Bbox.Bottom, row[0].Bbox.Top) {
		return true
	}
	return false
}

func rowJoinedText(row []Cell) string {
	var sb strings.Builder
	for _, c := range row {
		sb.WriteString(c.Text)
	}
	return sb.String()
}

func isCentredInCell(row []Cell, params LayoutParams) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell.Text) == "" {
			continue
		}
		leading := cell.Bbox.X0 - cell.GridBbox.X0
		trailing := cell.GridBbox.X1 - cell.Bbox.X1
		width := cell.GridBbox.Width()
		if width <= 0 {
			continue
		}
		if absF(leading/width-trailing/width) < params.ContinuationCenterTolerance {
			return true
		}
	}
	return false
}

func dottedLeaderCrosses(row []Cell, region TableRegion) bool {
	for _, l := range region.Lines {
		if !l.DotLine {
			continue
		}
		for _, cell := range row {
			if l.Top >= cell.Bbox.Top && l.Top <= cell.Bbox.Bottom {
				return true
			}
		}
	}
	return false
}

func isDigitsAndPunctuationOnly(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	hasLetter := false
	for _, r := range trimmed {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			hasLetter = true
			break
		}
	}
	return !hasLetter
}

// applySpanSentinels implements §4.3.6: empty cells carry the last
// non-empty text in their row, used by export for header flattening.
func applySpanSentinels(grid [][]Cell) {
	for r := range grid {
		var last string
		for c := range grid[r] {
			if strings.TrimSpace(grid[r][c].Text) != "" {
				last = grid[r][c].Text
			} else if last != "" {
				grid[r][c].Text = last
			}
		}
	}
}

// flattenOrdered returns the flat cell list ordered by increasing Top
// then X0, per §5.
func flattenOrdered(grid [][]Cell) []Cell {
	var out []Cell
	for _, row := range grid {
		out = append(out, row...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Bbox.Top != out[j].Bbox.Top {
			return out[i].Bbox.Top < out[j].Bbox.Top
		}
		return out[i].Bbox.X0 < out[j].Bbox.X0
	})
	return out
}
