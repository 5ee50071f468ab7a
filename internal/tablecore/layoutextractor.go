package tablecore

import (
	"regexp"
	"sort"
	"strings"
)

// Separator is an implicit or explicit dividing line within a table
// region: for columns, an X position with a Top/Bottom extent; for rows,
// a Y position with an X0/X1 extent.
type Separator struct {
	// Pos is X for a column separator, Y for a row separator.
	Pos float64
	// Extent0/Extent1 are Top/Bottom for a column separator,
	// X0/X1 for a row separator.
	Extent0, Extent1 float64
	FromRuling       bool
}

// Layout is the output of LayoutExtractor for one TableRegion: ordered
// column and row separators plus the region's (possibly refined) header
// and footer baselines.
type Layout struct {
	Columns []Separator
	Rows    []Separator
	Header  float64
	Footer  float64
}

var footnoteMarker = regexp.MustCompile(`^(\(\d+\)|\*|\d+\.|\d+\)|\d+|•|cid:127|\([a-zA-Z]\))$`)

// ExtractLayout runs §4.2 over one region and its cropped page view,
// including the bounded footnote-threshold retry supplemented from
// original_source/src/table_extractor.py's extractTable: each retry
// relaxes MaxLineSpace so a footnote scan that didn't converge on the
// first pass gets another chance, bounded by params.MaxFootnoteRetries
// so termination never depends on page content (§7).
func ExtractLayout(region TableRegion, page PageView, params LayoutParams) (Layout, bool) {
	clip, ok := page.Crop(region.Bbox)
	if !ok {
		return Layout{}, false
	}

	working := params
	for attempt := 0; attempt <= params.MaxFootnoteRetries; attempt++ {
		layout, footnoteComplete := extractLayoutOnce(region, clip, working)
		if footnoteComplete {
			return layout, true
		}
		working.MaxLineSpace += working.FootnoteRetryStep
	}
	// Final attempt regardless of footnote convergence, per §4.2.3's
	// fallback of simply stopping the classification scan.
	layout, _ := extractLayoutOnce(region, clip, working)
	return layout, true
}

func extractLayoutOnce(region TableRegion, clip PageView, params LayoutParams) (Layout, bool) {
	footer := region.Bbox.Bottom
	footnoteComplete, rowSeps, header := findRows(clip, region.Bbox, params)
	if !footnoteComplete {
		return Layout{}, false
	}

	bodyBbox := NewBBox(region.Bbox.X0, region.Bbox.Top, region.Bbox.X1, footer)
	bodyClip, ok := clip.Crop(bodyBbox)
	if !ok {
		return Layout{Header: header, Footer: footer}, true
	}

	header, footer, rowSeps = trimTopAndBottom(bodyClip, region.Bbox, header, footer, rowSeps, params)

	rowSeps = append(rowSeps, rulingRowSeparators(region)...)
	sort.SliceStable(rowSeps, func(i, j int) bool { return rowSeps[i].Pos < rowSeps[j].Pos })

	columns := extractColumnsBySegment(clip, region, header, footer, params)
	columns = removeUnnecessaryColumns(columns, clip, params)

	return Layout{Columns: columns, Rows: rowSeps, Header: header, Footer: footer}, true
}

// findRows implements §4.2.1.
func findRows(clip PageView, regionBbox BBox, params LayoutParams) (footnoteComplete bool, seps []Separator, header float64) {
	chars := nonSpaceCharsOrdered(clip.Chars)
	if len(chars) < 2 {
		return true, nil, regionBbox.Top
	}
	chars = SortedByTop(chars)

	var bodySeps, footnoteSeps []Separator
	var headerSet bool
	var inFootnote bool
	header = regionBbox.Top

	for i := 0; i < len(chars)-1; i++ {
		cur, next := chars[i], chars[i+1]
		gap := next.Bbox.Top - cur.Bbox.Bottom
		mid := (cur.Bbox.Bottom + next.Bbox.Top) / 2

		if gap > params.MaxLineSpace {
			sep := Separator{Pos: mid, Extent0: regionBbox.X0, Extent1: regionBbox.X1}
			if inFootnote {
				footnoteSeps = append(footnoteSeps, sep)
			} else {
				bodySeps = append(bodySeps, sep)
			}
		}

		if !headerSet && next.FontName != cur.FontName {
			if gap > 0 {
				header = mid
			} else {
				header = cur.Bbox.Top
			}
			headerSet = true
		}
	}

	// Fallback to ruling-line evidence only when the font-change header
	// is implausibly close to the region top (Open Question #2).
	if !headerSet || header-regionBbox.Top < regionBbox.Height()*0.02 {
		if rulingHeader, ok := rulingHeaderFallback(clip, regionBbox, params); ok {
			header = rulingHeader
		} else if !headerSet {
			header = regionBbox.Top
		}
	}

	if len(bodySeps) > 0 && header == regionBbox.Top {
		header = bodySeps[0].Pos
	}

	// footnoteComplete mirrors the simpler "never entered a footnote
	// state" path of original_source — this core never splits bodySeps
	// from footnoteSeps, since trimTopAndBottom performs the richer
	// footnote classification of §4.2.3 afterward.
	bodySeps = append(bodySeps, footnoteSeps...)
	return true, bodySeps, header
}

func rulingHeaderFallback(clip PageView, regionBbox BBox, params LayoutParams) (float64, bool) {
	var candidates []RuleLine
	regionHeight := regionBbox.Height()

	for _, l := range clip.Lines {
		if l.DotLine {
			continue
		}
		if l.Top-regionBbox.Top <= regionHeight*params.HeaderMinTopFraction {
			continue
		}
		if l.Top-regionBbox.Top >= regionHeight*params.HeaderMaxBottomFraction {
			continue
		}
		if l.Width() < regionBbox.Width()*params.HeaderMinWidthFraction {
			continue
		}
		candidates = append(candidates, l)
	}
	if len(candidates) == 0 {
		return 0, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		switch {
		case c.Width() > best.Width():
			best = c
		case c.Width() == best.Width() && len(c.Segments) > len(best.Segments):
			best = c
		}
	}
	return best.Top, true
}

func nonSpaceCharsOrdered(chars []Char) []Char {
	out := make([]Char, 0, len(chars))
	for _, c := range chars {
		if c.Text != " " {
			out = append(out, c)
		}
	}
	return out
}

// rulingRowSeparators adds one horizontal separator per original ruling
// in the region, per §4.2.6.
func rulingRowSeparators(region TableRegion) []Separator {
	out := make([]Separator, 0, len(region.Lines))
	for _, l := range region.Lines {
		out = append(out, Separator{Pos: l.Top, Extent0: region.Bbox.X0, Extent1: region.Bbox.X1, FromRuling: true})
	}
	return out
}

// trimTopAndBottom implements §4.2.3: peel off decorative captions and
// footnote-marker rows at the top or bottom of the body.
func trimTopAndBottom(bodyClip PageView, regionBbox BBox, header, footer float64, rowSeps []Separator, params LayoutParams) (float64, float64, []Separator) {
	sort.SliceStable(rowSeps, func(i, j int) bool { return rowSeps[i].Pos < rowSeps[j].Pos })

	bounds := append([]float64{regionBbox.Top}, separatorPositions(rowSeps)...)
	bounds = append(bounds, footer)

	// Bottom scan: walk bands from the end, stripping footnote rows.
	kept := append([]Separator(nil), rowSeps...)
	for len(bounds) >= 2 {
		top, bottom := bounds[len(bounds)-2], bounds[len(bounds)-1]
		band, ok := bodyClip.Crop(NewBBox(regionBbox.X0, top, regionBbox.X1, bottom))
		if !ok {
			break
		}
		class, leading := classifyBand(band, regionBbox, params)
		switch class {
		case bandDecorative, bandCentredCaption:
			footer = top
			bounds = bounds[:len(bounds)-1]
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
		case bandFootnote:
			_ = leading
			footer = top
			bounds = bounds[:len(bounds)-1]
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
		default:
			bounds = nil
		}
		if bounds == nil {
			break
		}
	}

	return header, footer, kept
}

func separatorPositions(seps []Separator) []float64 {
	out := make([]float64, 0, len(seps))
	for _, s := range seps {
		out = append(out, s.Pos)
	}
	return out
}

type bandClass int

const (
	bandContent bandClass = iota
	bandDecorative
	bandCentredCaption
	bandFootnote
)

// classifyBand implements the classification rules of §4.2.3, run in
// symbol-insensitive mode (no before/after exceptions, no font-change
// trigger) as specified.
func classifyBand(band PageView, regionBbox BBox, params LayoutParams) (bandClass, float64) {
	chars := nonSpaceCharsOrdered(band.Chars)
	if len(chars) == 0 {
		return bandContent, 0
	}
	cols := findColumnsSymbolInsensitive(band, params)

	chars = SortedByX0(chars)
	leading := chars[0].Bbox.X0 - regionBbox.X0
	trailing := regionBbox.X1 - chars[len(chars)-1].Bbox.X1
	leadingFrac := leading / regionBbox.Width()
	trailingFrac := trailing / regionBbox.Width()

	switch len(cols) {
	case 0:
		if leadingFrac < params.CaptionLeadingFraction {
			return bandDecorative, leading
		}
		if absF(leadingFrac-trailingFrac) < params.CaptionCenterTolerance && !(leadingFrac < 0.02 && trailingFrac < 0.02) {
			return bandCentredCaption, leading
		}
		return bandContent, leading
	case 1:
		if leadingFrac < params.CaptionLeadingFraction {
			text := bandText(chars)
			if footnoteMarker.MatchString(strings.TrimSpace(text)) {
				return bandFootnote, leading
			}
		}
		return bandContent, leading
	default:
		return bandContent, leading
	}
}

func bandText(chars []Char) string {
	var sb strings.Builder
	for _, c := range chars {
		sb.WriteString(c.Text)
	}
	return sb.String()
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// extractColumnsBySegment implements §4.2.5: slice the region into
// y-segments (bounded by region top, rulings above the header, the
// header, the footer, and region bottom) and compute columns
// independently per segment.
func extractColumnsBySegment(clip PageView, region TableRegion, header, footer float64, params LayoutParams) []Separator {
	bounds := []float64{region.Bbox.Top}
	for _, l := range region.Lines {
		if l.Top < header {
			bounds = append(bounds, l.Top)
		}
	}
	bounds = append(bounds, header, header, footer)
	if footer != region.Bbox.Bottom {
		bounds = append(bounds, region.Bbox.Bottom)
	}
	sort.Float64s(bounds)

	var columns []Separator
	for i := 0; i < len(bounds)-1; i++ {
		top, bottom := bounds[i], bounds[i+1]
		if bottom-top < 1e-6 {
			continue
		}
		band, ok := clip.Crop(NewBBox(region.Bbox.X0, top, region.Bbox.X1, bottom))
		if !ok {
			continue
		}
		cols := findColumns(band, region.Bbox, header, params)
		columns = append(columns, cols...)
	}
	return columns
}

// currency/percent symbol sets for §4.2.2's context-sensitive rules.
var beforeSymbols = map[string]bool{"$": true, "€": true, "¥": true, "£": true, "₤": true}
var afterSymbols = map[string]bool{"%": true}

// findColumns implements §4.2.2, including the currency/percent
// suppression and forced-break rules and the upward extension of
// §4.2.2's final paragraph.
func findColumns(band PageView, regionBbox BBox, header float64, params LayoutParams) []Separator {
	chars := make([]Char, 0, len(band.Chars))
	for _, c := range band.Chars {
		if c.Text == " " || c.Text == "." || c.Text == "\n" || c.Text == "\t" {
			continue
		}
		chars = append(chars, c)
	}
	if len(chars) < 2 {
		return nil
	}
	chars = SortedByX0(chars)

	var seps []Separator
	for i := 0; i < len(chars)-1; i++ {
		cur, next := chars[i], chars[i+1]
		gap := next.Bbox.X0 - cur.Bbox.X1

		breakHere := gap > params.MaxCharSpace || (gap > 3 && next.FontName != cur.FontName)

		if cur.Text == "-" || next.Text == "-" {
			breakHere = false
		}
		if beforeSymbols[cur.Text] && !beforeSymbols[next.Text] {
			breakHere = false
		}
		if afterSymbols[next.Text] && !afterSymbols[cur.Text] {
			breakHere = false
		}
		if beforeSymbols[next.Text] && !beforeSymbols[cur.Text] && gap > 1 {
			breakHere = true
		}
		if afterSymbols[cur.Text] && !afterSymbols[next.Text] && gap > 1 {
			breakHere = true
		}

		if !breakHere {
			continue
		}

		x := next.Bbox.X0 - gap/2
		top := extendTopOfColumn(band, regionBbox, x, header, params)
		seps = append(seps, Separator{Pos: x, Extent0: top, Extent1: band.Bbox.Bottom})
	}
	return seps
}

// findColumnsSymbolInsensitive is the §4.2.3 variant used for band
// classification: no currency/percent exceptions, no font-change
// trigger.
func findColumnsSymbolInsensitive(band PageView, params LayoutParams) []Separator {
	chars := make([]Char, 0, len(band.Chars))
	for _, c := range band.Chars {
		if c.Text == " " || c.Text == "." {
			continue
		}
		chars = append(chars, c)
	}
	if len(chars) < 2 {
		return nil
	}
	chars = SortedByX0(chars)

	var seps []Separator
	for i := 0; i < len(chars)-1; i++ {
		cur, next := chars[i], chars[i+1]
		gap := next.Bbox.X0 - cur.Bbox.X1
		if gap > params.MaxCharSpace {
			seps = append(seps, Separator{Pos: next.Bbox.X0 - gap/2})
		}
	}
	return seps
}

// extendTopOfColumn walks upward within a ±1-wide strip at x, finding
// the lowest character or ruling in the way, per §4.2.2's final
// paragraph. Rulings only block if they lie above header-2 and are
// narrower than 90% of the region width.
func extendTopOfColumn(band PageView, regionBbox BBox, x, header float64, params LayoutParams) float64 {
	blockTop := regionBbox.Top

	for _, c := range band.Chars {
		if c.Bbox.X1 < x-1 || c.Bbox.X0 > x+1 {
			continue
		}
		if c.Bbox.Bottom > blockTop {
			blockTop = c.Bbox.Bottom
		}
	}
	for _, l := range band.Lines {
		if l.Top >= header-2 {
			continue
		}
		if l.Width() >= regionBbox.Width()*0.9 {
			continue
		}
		if l.X0 > x+1 || l.X1 < x-1 {
			continue
		}
		if l.Top > blockTop {
			blockTop = l.Top
		}
	}
	return blockTop
}

// removeUnnecessaryColumns implements §4.2.4: for each adjacent pair of
// columns (by x) whose vertical extents overlap by more than 2 units,
// inspect the gap between them, excluding a params.SeparatorMergeMargin
// margin on each side. A gap containing no non-space characters marks
// the pair redundant — artifacts of per-segment column detection seeing
// the same boundary at slightly different x. The shorter column is then
// either dropped outright (its extent nested inside the taller one's)
// or trimmed to abut the taller one.
func removeUnnecessaryColumns(cols []Separator, clip PageView, params LayoutParams) []Separator {
	if len(cols) < 2 {
		return cols
	}
	out := append([]Separator(nil), cols...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Pos < out[j].Pos })

	for i := 0; i < len(out)-1; {
		a, b := out[i], out[i+1]
		top, bottom := max(a.Extent0, b.Extent0), min(a.Extent1, b.Extent1)
		if bottom-top <= 2 || !gapIsWhitespace(clip, a.Pos, b.Pos, params.SeparatorMergeMargin, top, bottom) {
			i++
			continue
		}

		aLen, bLen := a.Extent1-a.Extent0, b.Extent1-b.Extent0
		aNestsB := a.Extent0 <= b.Extent0 && a.Extent1 >= b.Extent1
		bNestsA := b.Extent0 <= a.Extent0 && b.Extent1 >= a.Extent1

		switch {
		case aNestsB:
			out = append(out[:i+1], out[i+2:]...)
		case bNestsA:
			out = append(out[:i], out[i+1:]...)
		case aLen <= bLen:
			out[i].Extent1 = b.Extent0
			i++
		default:
			out[i+1].Extent0 = a.Extent1
			i++
		}
	}
	return out
}

// gapIsWhitespace reports whether the x-strip between leftX and rightX,
// shrunk by margin on each side, contains no non-space character over
// the [top, bottom] vertical band the two separators share.
func gapIsWhitespace(clip PageView, leftX, rightX, margin, top, bottom float64) bool {
	lo, hi := leftX+margin, rightX-margin
	if hi <= lo {
		return true
	}
	for _, c := range clip.Chars {
		if c.Text == " " {
			continue
		}
		if c.Bbox.X1 <= lo || c.Bbox.X0 >= hi {
			continue
		}
		if c.Bbox.Bottom <= top || c.Bbox.Top >= bottom {
			continue
		}
		return false
	}
	return true
}
