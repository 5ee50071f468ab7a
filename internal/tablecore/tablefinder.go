package tablecore

import (
	"sort"
)

// TableRegion is a rectangular area of a page determined to contain a
// single table plus optional footnote. Header and Footer start out equal
// to Bbox.Top/Bbox.Bottom when TableFinder emits the region; LayoutExtractor
// reports its refined values in Layout.Header/Layout.Footer and leaves the
// region unchanged.
type TableRegion struct {
	Bbox   BBox
	Lines  []RuleLine
	Header float64
	Footer float64
}

// FindTables locates zero or more TableRegions on page. It never returns
// an error: a page with no ruling evidence simply yields an empty slice,
// matching §7's EmptyPage handling at the caller boundary.
func FindTables(page PageView, params LayoutParams) []TableRegion {
	if len(page.Chars) == 0 {
		return nil
	}

	allLines := prepareLines(page, params)
	if len(allLines) == 0 {
		return nil
	}

	lineThreshold := modePositiveGap(sortedBottoms(page.Chars))

	regions := make([]TableRegion, 0, len(allLines))
	for _, line := range allLines {
		region := growRegion(page, line, lineThreshold, params)
		if region.Bbox.Empty() {
			continue
		}
		regions = append(regions, region)
	}

	regions = mergeRegions(regions, params)

	for i := range regions {
		regions[i].Lines = filterLinesInBbox(regions[i].Lines, regions[i].Bbox, params.MergeSlack)
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return firstLineTop(regions[i]) < firstLineTop(regions[j])
	})

	return regions
}

func firstLineTop(r TableRegion) float64 {
	if len(r.Lines) == 0 {
		return r.Bbox.Top
	}
	top := r.Lines[0].Top
	for _, l := range r.Lines[1:] {
		if l.Top < top {
			top = l.Top
		}
	}
	return top
}

// prepareLines implements §4.1.1: collapse rects/curves, concatenate
// collinear segments, build segmented lines, synthesize dot leaders, and
// apply the two-column page-layout filter of §4.1.2.
func prepareLines(page PageView, params LayoutParams) []RuleLine {
	candidates := make([]RuleLine, 0, len(page.Lines))
	for _, l := range page.Lines {
		if l.X0 == l.X1 {
			continue
		}
		if l.X0 < page.Bbox.X0 || l.X1 > page.Bbox.X1 || l.Top < page.Bbox.Top || l.Bottom > page.Bbox.Bottom {
			continue
		}
		candidates = append(candidates, l)
	}
	candidates = append(candidates, collapseRectsAndCurves(page, params)...)

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Top < candidates[j].Top })

	concatenated := concatCollinear(candidates)

	// Discard lines that coincide with the page's own top/left margin —
	// these are usually page-border artifacts, not table rulings.
	filtered := concatenated[:0:0]
	for _, l := range concatenated {
		if l.Top <= page.Bbox.Top+0.5 || l.X0 <= page.Bbox.X0+0.5 {
			continue
		}
		filtered = append(filtered, l)
	}

	segmented := buildSegmentedLines(filtered)
	dotLines := findDotLeaders(page.Chars, params)

	all := append(segmented, dotLines...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Top < all[j].Top })

	if isTwoColumnPage(page, params) {
		textSpan := page.Bbox.Width()
		out := all[:0:0]
		for _, l := range all {
			if l.Width() > textSpan/2 {
				continue
			}
			out = append(out, l)
		}
		all = out
	}

	return all
}

// collapseRectsAndCurves turns any filled rect/curve whose height is
// below params.CollapseHeight into a horizontal RuleLine (§4.1.1 step 1).
func collapseRectsAndCurves(page PageView, params LayoutParams) []RuleLine {
	var out []RuleLine
	for _, r := range page.Rects {
		if r.Filled && r.Bbox.Height() < params.CollapseHeight {
			mid := (r.Bbox.Top + r.Bbox.Bottom) / 2
			out = append(out, RuleLine{X0: r.Bbox.X0, X1: r.Bbox.X1, Top: mid, Bottom: mid})
		}
	}
	for _, c := range page.Curves {
		if c.Filled && c.Bbox.Height() < params.CollapseHeight {
			mid := (c.Bbox.Top + c.Bbox.Bottom) / 2
			out = append(out, RuleLine{X0: c.Bbox.X0, X1: c.Bbox.X1, Top: mid, Bottom: mid})
		}
	}
	return out
}

// concatCollinear merges collinear segments sharing the same Top where
// the second segment's X0 is within the first's extent and extends it
// rightward (§4.1.1 step 2).
func concatCollinear(lines []RuleLine) []RuleLine {
	if len(lines) == 0 {
		return nil
	}
	out := make([]RuleLine, 0, len(lines))
	i := 0
	for i < len(lines) {
		cur := lines[i]
		j := i + 1
		for j < len(lines) && sameTop(lines[j], cur) && lines[j].X0 <= cur.X1 && lines[j].X1 > cur.X1 {
			cur.X1 = lines[j].X1
			j++
		}
		out = append(out, cur)
		i = j
	}
	return out
}

func sameTop(a, b RuleLine) bool {
	const eps = 0.5
	d := a.Top - b.Top
	return d < eps && d > -eps
}

// buildSegmentedLines is §4.1.1 step 3: a second pass merging lines
// sharing the same Top into a single record spanning endpoint to
// endpoint, retaining the merged fragments as Segments.
func buildSegmentedLines(lines []RuleLine) []RuleLine {
	if len(lines) == 0 {
		return nil
	}
	groups := map[float64][]RuleLine{}
	var order []float64
	for _, l := range lines {
		key := roundTo(l.Top, 0.5)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], l)
	}
	sort.Float64s(order)

	out := make([]RuleLine, 0, len(order))
	for _, key := range order {
		group := groups[key]
		merged := group[0]
		for _, g := range group[1:] {
			merged.X0 = min(merged.X0, g.X0)
			merged.X1 = max(merged.X1, g.X1)
		}
		merged.Segments = group
		out = append(out, merged)
	}
	return out
}

func roundTo(v, step float64) float64 {
	return float64(int(v/step+0.5)) * step
}

// findDotLeaders implements §4.1.1 step 4.
func findDotLeaders(chars []Char, params LayoutParams) []RuleLine {
	dots := make([]Char, 0)
	for _, c := range chars {
		if c.Text == "." {
			dots = append(dots, c)
		}
	}
	if len(dots) == 0 {
		return nil
	}
	sort.SliceStable(dots, func(i, j int) bool {
		if sameTop(RuleLine{Top: dots[i].Bbox.Top}, RuleLine{Top: dots[j].Bbox.Top}) {
			return dots[i].Bbox.X0 < dots[j].Bbox.X0
		}
		return dots[i].Bbox.Top < dots[j].Bbox.Top
	})

	var out []RuleLine
	i := 0
	for i < len(dots) {
		j := i + 1
		runStart := dots[i]
		last := dots[i]
		for j < len(dots) && sameTop(RuleLine{Top: dots[j].Bbox.Top}, RuleLine{Top: last.Bbox.Top}) &&
			dots[j].Bbox.X0-last.Bbox.X1 <= params.DotLeaderGap {
			last = dots[j]
			j++
		}
		runLen := j - i
		if runLen > params.DotLeaderMinRun {
			mid := (runStart.Bbox.Top + runStart.Bbox.Bottom) / 2
			out = append(out, RuleLine{X0: runStart.Bbox.X0, X1: last.Bbox.X1, Top: mid, Bottom: mid, DotLine: true})
		}
		i = j
	}
	return out
}

// isTwoColumnPage implements §4.1.2.
func isTwoColumnPage(page PageView, params LayoutParams) bool {
	nonSpace := nonSpaceChars(page.Chars)
	if len(nonSpace) == 0 {
		return false
	}
	minX, maxX := nonSpace[0].Bbox.X0, nonSpace[0].Bbox.X1
	for _, c := range nonSpace[1:] {
		minX = min(minX, c.Bbox.X0)
		maxX = max(maxX, c.Bbox.X1)
	}
	mid := (minX + maxX) / 2
	half := params.TwoColumnStripWidth / 2

	var total float64
	for _, c := range nonSpace {
		if c.Bbox.X1 >= mid-half && c.Bbox.X0 <= mid+half {
			total += c.Bbox.Height()
		}
	}
	pageHeight := page.Bbox.Height()
	if pageHeight <= 0 {
		return false
	}
	return total/pageHeight < params.TwoColumnHeightFraction
}

func nonSpaceChars(chars []Char) []Char {
	out := make([]Char, 0, len(chars))
	for _, c := range chars {
		if c.Text != " " && c.Text != "" {
			out = append(out, c)
		}
	}
	return out
}

func sortedBottoms(chars []Char) []float64 {
	out := make([]float64, 0, len(chars))
	for _, c := range chars {
		out = append(out, c.Bbox.Bottom)
	}
	sort.Float64s(out)
	return out
}

// modePositiveGap implements §4.1.3: the mode of positive gaps between
// consecutive sorted bottoms. Returns a small positive default if there
// is no repeated positive gap (e.g. a single-line page) so downstream
// arithmetic never divides by, or compares against, zero.
func modePositiveGap(sortedVals []float64) float64 {
	counts := map[float64]int{}
	best, bestCount := 1.0, 0
	for i := 1; i < len(sortedVals); i++ {
		gap := roundTo(sortedVals[i]-sortedVals[i-1], 0.1)
		if gap <= 0 {
			continue
		}
		counts[gap]++
		if counts[gap] > bestCount {
			best, bestCount = gap, counts[gap]
		}
	}
	if bestCount == 0 {
		return 1.0
	}
	return best
}

// growRegion implements §4.1.4: build a bbox from one ruling line,
// extend top/bottom/left/right to a fixpoint, bounded by the page's
// character count so the loop always terminates per §7.
func growRegion(page PageView, line RuleLine, lineThreshold float64, params LayoutParams) TableRegion {
	bbox := NewBBox(line.X0, line.Top, line.X1, line.Bottom)
	maxIter := len(page.Chars) + 1

	for iter := 0; iter < maxIter; iter++ {
		before := bbox

		bottom := findTableBottom(page.Chars, bbox, lineThreshold, params.BottomThreshold)
		top := findTableTop(page.Chars, bbox, lineThreshold, params.TopThreshold)
		bbox = NewBBox(bbox.X0, top, bbox.X1, bottom)

		if isOneColumnPopulated(page, bbox, params) {
			bbox = NewBBox(page.Bbox.X0, bbox.Top, page.Bbox.X1, bbox.Bottom)
		} else {
			left := findTableLeft(page.Chars, bbox, params.LeftThreshold)
			right := findTableRight(page.Chars, bbox, params.RightThreshold)
			bbox = NewBBox(left, bbox.Top, right, bbox.Bottom)
		}

		if bbox == before {
			break
		}
	}

	return TableRegion{Bbox: bbox, Lines: []RuleLine{line}, Header: bbox.Top, Footer: bbox.Bottom}
}

// findTableBottom walks characters below the line (top >= bbox.Bottom-lineThreshold),
// sorted by bottom, accepting each whose gap to the previous is within
// threshold; stops at the first gap exceeding it. Spaces are skipped.
func findTableBottom(chars []Char, bbox BBox, lineThreshold, threshold float64) float64 {
	below := make([]Char, 0)
	for _, c := range chars {
		if c.Text == " " {
			continue
		}
		if c.Bbox.Top >= bbox.Bottom-lineThreshold && overlapsX(c.Bbox, bbox) {
			below = append(below, c)
		}
	}
	sort.SliceStable(below, func(i, j int) bool { return below[i].Bbox.Bottom < below[j].Bbox.Bottom })

	last := bbox.Bottom
	for _, c := range below {
		if c.Bbox.Top-last > threshold {
			break
		}
		last = c.Bbox.Bottom
	}
	return max(last, bbox.Bottom)
}

// findTableTop is the symmetric upward scan.
func findTableTop(chars []Char, bbox BBox, lineThreshold, threshold float64) float64 {
	above := make([]Char, 0)
	for _, c := range chars {
		if c.Text == " " {
			continue
		}
		if c.Bbox.Bottom <= bbox.Top+lineThreshold && overlapsX(c.Bbox, bbox) {
			above = append(above, c)
		}
	}
	sort.SliceStable(above, func(i, j int) bool { return above[i].Bbox.Bottom > above[j].Bbox.Bottom })

	last := bbox.Top
	for _, c := range above {
		if last-c.Bbox.Bottom > threshold {
			break
		}
		last = c.Bbox.Top
	}
	return min(last, bbox.Top)
}

func findTableLeft(chars []Char, bbox BBox, threshold float64) float64 {
	band := make([]Char, 0)
	for _, c := range chars {
		if c.Text == " " {
			continue
		}
		if c.Bbox.Top >= bbox.Top-1 && c.Bbox.Bottom <= bbox.Bottom+1 {
			band = append(band, c)
		}
	}
	sort.SliceStable(band, func(i, j int) bool { return band[i].Bbox.X0 > band[j].Bbox.X0 })

	last := bbox.X0
	for _, c := range band {
		if c.Bbox.X1 > last {
			continue
		}
		if last-c.Bbox.X1 > threshold {
			break
		}
		last = c.Bbox.X0
	}
	return min(last, bbox.X0)
}

func findTableRight(chars []Char, bbox BBox, threshold float64) float64 {
	band := make([]Char, 0)
	for _, c := range chars {
		if c.Text == " " {
			continue
		}
		if c.Bbox.Top >= bbox.Top-1 && c.Bbox.Bottom <= bbox.Bottom+1 {
			band = append(band, c)
		}
	}
	sort.SliceStable(band, func(i, j int) bool { return band[i].Bbox.X1 < band[j].Bbox.X1 })

	last := bbox.X1
	for _, c := range band {
		if c.Bbox.X0 < last {
			continue
		}
		if c.Bbox.X0-last > threshold {
			break
		}
		last = c.Bbox.X1
	}
	return max(last, bbox.X1)
}

func overlapsX(a, b BBox) bool {
	return a.X1 >= b.X0-1 && a.X0 <= b.X1+1
}

// isOneColumnPopulated implements the richer one-column re-test of
// §4.1.4, using the percentage-based thresholds spec.md describes (not
// the simpler boolean strip test original_source used).
func isOneColumnPopulated(page PageView, bbox BBox, params LayoutParams) bool {
	nonSpace := nonSpaceChars(page.Chars)
	if len(nonSpace) == 0 {
		return false
	}
	minX, maxX := nonSpace[0].Bbox.X0, nonSpace[0].Bbox.X1
	for _, c := range nonSpace[1:] {
		minX = min(minX, c.Bbox.X0)
		maxX = max(maxX, c.Bbox.X1)
	}
	mid := (minX + maxX) / 2

	count := 0
	var heightSum float64
	for _, c := range nonSpace {
		if c.Bbox.Top < bbox.Top || c.Bbox.Bottom > bbox.Bottom {
			continue
		}
		if c.Bbox.X1 >= mid && c.Bbox.X0 <= mid {
			count++
		}
		if c.Bbox.X0 >= mid && c.Bbox.X0 <= mid+params.OneColumnStripMargin {
			heightSum += c.Bbox.Height()
		}
	}
	pageHeight := page.Bbox.Height()
	if pageHeight <= 0 {
		return false
	}
	return count >= params.OneColumnMinCount || heightSum/pageHeight > params.OneColumnHeightFraction
}

// mergeRegions implements §4.1.5: greedily fold overlapping regions into
// the first unmerged region in the set until no peers overlap, then
// advance to the next unmerged region. Bounded by len(regions)^2 work,
// itself bounded by the page's ruling-line count.
func mergeRegions(regions []TableRegion, params LayoutParams) []TableRegion {
	remaining := append([]TableRegion(nil), regions...)
	var out []TableRegion

	for len(remaining) > 0 {
		cur := remaining[0]
		rest := remaining[1:]

		changed := true
		for changed {
			changed = false
			var next []TableRegion
			for _, cand := range rest {
				merged, ok := tryMerge(cur, cand, params)
				if ok {
					cur = merged
					changed = true
					continue
				}
				next = append(next, cand)
			}
			rest = next
		}

		out = append(out, cur)
		remaining = rest
	}

	return out
}

// tryMerge classifies candidate B against current region T per §4.1.5's
// axis tests and returns the merged region, or ok=false if B is disjoint
// on some axis (should be retried in a later round against a different
// accumulator).
func tryMerge(t, b TableRegion, params LayoutParams) (TableRegion, bool) {
	disjoint := b.Bbox.X1 < t.Bbox.X0 || b.Bbox.X0 > t.Bbox.X1 ||
		b.Bbox.Bottom < t.Bbox.Top || b.Bbox.Top > t.Bbox.Bottom
	if disjoint {
		return t, false
	}

	bEnclosesT := b.Bbox.X0 <= t.Bbox.X0 && b.Bbox.X1 >= t.Bbox.X1 &&
		b.Bbox.Top <= t.Bbox.Top && b.Bbox.Bottom >= t.Bbox.Bottom
	if bEnclosesT {
		merged := t
		merged.Bbox = b.Bbox
		merged.Lines = append(append([]RuleLine{}, b.Lines...), t.Lines...)
		return merged, true
	}

	bInsideT := b.Bbox.X0 >= t.Bbox.X0 && b.Bbox.X1 <= t.Bbox.X1 &&
		b.Bbox.Top >= t.Bbox.Top && b.Bbox.Bottom <= t.Bbox.Bottom
	if bInsideT {
		merged := t
		merged.Lines = append(merged.Lines, b.Lines...)
		return merged, true
	}

	// Overlap on one or two sides: extend T on exactly the sides where B
	// protrudes and the opposite side of B stays inside T, so the
	// protrusion reads as an attached extension rather than a disjoint
	// neighbour sharing an edge by coincidence.
	newBbox := t.Bbox
	extended := false
	if b.Bbox.X0 < t.Bbox.X0 && b.Bbox.X1 >= t.Bbox.X0 && b.Bbox.X1 <= t.Bbox.X1 {
		newBbox.X0 = b.Bbox.X0
		extended = true
	}
	if b.Bbox.X1 > t.Bbox.X1 && b.Bbox.X0 >= t.Bbox.X0 && b.Bbox.X0 <= t.Bbox.X1 {
		newBbox.X1 = b.Bbox.X1
		extended = true
	}
	if b.Bbox.Top < t.Bbox.Top && b.Bbox.Bottom >= t.Bbox.Top && b.Bbox.Bottom <= t.Bbox.Bottom {
		newBbox.Top = b.Bbox.Top
		extended = true
	}
	if b.Bbox.Bottom > t.Bbox.Bottom && b.Bbox.Top >= t.Bbox.Top && b.Bbox.Top <= t.Bbox.Bottom {
		newBbox.Bottom = b.Bbox.Bottom
		extended = true
	}
	if !extended {
		return t, false
	}

	merged := t
	merged.Bbox = newBbox
	merged.Lines = append(merged.Lines, b.Lines...)
	return merged, true
}

func filterLinesInBbox(lines []RuleLine, bbox BBox, slack float64) []RuleLine {
	out := lines[:0:0]
	for _, l := range lines {
		if l.X0 >= bbox.X0-slack && l.X1 <= bbox.X1+slack && l.Top >= bbox.Top-slack && l.Bottom <= bbox.Bottom+slack {
			out = append(out, l)
		}
	}
	return out
}
