// Package tablecore implements rule-based table reconstruction over a
// decoded PDF page: locating table regions from ruling-line and character
// evidence, deriving row/column separators from layout heuristics, and
// resolving the final cell grid with header and continuation-row merging.
//
// Every type in this package is immutable once constructed and every
// function is pure over its inputs; the three pipeline stages (TableFinder,
// LayoutExtractor, CellResolver) never mutate a PageView or each other's
// output in place.
package tablecore

import "sort"

// BBox is an axis-aligned bounding box in a page-view's normalized
// coordinate system: origin top-left, x increasing right, y ("top")
// increasing downward. X0 <= X1 and Top <= Bottom always hold for a
// well-formed BBox; degenerate boxes (constructed from empty input) are
// represented explicitly rather than by sentinel zero values.
type BBox struct {
	X0, Top, X1, Bottom float64
}

// NewBBox builds a BBox from two corner points, normalizing so X0<=X1
// and Top<=Bottom regardless of argument order.
func NewBBox(x0, top, x1, bottom float64) BBox {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if bottom < top {
		top, bottom = bottom, top
	}
	return BBox{X0: x0, Top: top, X1: x1, Bottom: bottom}
}

func (b BBox) Width() float64  { return b.X1 - b.X0 }
func (b BBox) Height() float64 { return b.Bottom - b.Top }

// Empty reports whether the box encloses no area.
func (b BBox) Empty() bool { return b.X1 <= b.X0 || b.Bottom <= b.Top }

// Contains reports whether other lies fully within b, with slack applied
// symmetrically on every side (used for the region-merge "inside" tests
// and line-membership re-filtering in TableFinder).
func (b BBox) Contains(other BBox, slack float64) bool {
	return other.X0 >= b.X0-slack && other.X1 <= b.X1+slack &&
		other.Top >= b.Top-slack && other.Bottom <= b.Bottom+slack
}

// Union returns the smallest BBox enclosing both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0:     min(b.X0, other.X0),
		Top:    min(b.Top, other.Top),
		X1:     max(b.X1, other.X1),
		Bottom: max(b.Bottom, other.Bottom),
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Char is a single decoded glyph, positioned in the page's normalized
// coordinate system. Rotated characters (non-zero transform off-diagonals)
// are excluded from layout by every consumer of PageView.Chars — the
// decode boundary is expected to have already filtered them, but Rotated
// is retained on the type so a caller can audit what was dropped.
type Char struct {
	Bbox     BBox
	Text     string
	FontName string
	Size     float64
	Rotated  bool
}

// RuleLine is a horizontal ruling: an explicitly drawn line, a collapsed
// thin filled rectangle or curve, or a synthetic dot-leader run. Only
// horizontal lines participate in the core (X0 < X1, Top approximately
// equal to Bottom); Segments retains the original fragments merged into
// this line, used as a header-selection tiebreaker in LayoutExtractor.
type RuleLine struct {
	X0, X1, Top, Bottom float64
	Segments            []RuleLine
	DotLine             bool
}

func (l RuleLine) Width() float64 { return l.X1 - l.X0 }

// Rect is an axis-aligned filled or stroked rectangle from the page's
// vector graphics, a candidate for collapse into a RuleLine when thin.
type Rect struct {
	Bbox   BBox
	Filled bool
}

// Curve is a vector path from the page's graphics, a candidate for
// collapse into a RuleLine when its bounding box is thin.
type Curve struct {
	Bbox   BBox
	Filled bool
}

// PageView is an immutable, read-only view over one page's decoded
// geometry. Crop produces a restricted view over a sub-region; views are
// stackable (cropping a crop further restricts it) and never share
// backing slices with their parent beyond read access.
type PageView struct {
	Bbox  BBox
	Chars []Char
	Lines []RuleLine
	Rects []Rect
	Curves []Curve
}

// Crop returns a new PageView restricted to bbox, plus false if the
// resulting view has no area (an empty-band crop). A crop with area but no
// content is returned with true.
// This mirrors the CropResult sum-type from the design notes without
// introducing a generic result wrapper: the boolean return is the only
// consumer-visible outcome, so a plain (value, ok) pair is the idiomatic
// Go shape.
func (p PageView) Crop(bbox BBox) (PageView, bool) {
	clipped := NewBBox(
		max(p.Bbox.X0, bbox.X0),
		max(p.Bbox.Top, bbox.Top),
		min(p.Bbox.X1, bbox.X1),
		min(p.Bbox.Bottom, bbox.Bottom),
	)
	if clipped.Empty() {
		return PageView{Bbox: clipped}, false
	}

	out := PageView{Bbox: clipped}
	for _, c := range p.Chars {
		if clipped.Contains(c.Bbox, 0) {
			out.Chars = append(out.Chars, c)
		}
	}
	for _, l := range p.Lines {
		if l.Top >= clipped.Top-1e-6 && l.Bottom <= clipped.Bottom+1e-6 &&
			l.X0 >= clipped.X0-1e-6 && l.X1 <= clipped.X1+1e-6 {
			out.Lines = append(out.Lines, l)
		}
	}
	for _, r := range p.Rects {
		if clipped.Contains(r.Bbox, 0) {
			out.Rects = append(out.Rects, r)
		}
	}
	for _, c := range p.Curves {
		if clipped.Contains(c.Bbox, 0) {
			out.Curves = append(out.Curves, c)
		}
	}
	return out, true
}

// SortedByTop returns a copy of chars ordered by ascending Top, the
// ordering used throughout §4.2's row-separator derivation.
func SortedByTop(chars []Char) []Char {
	out := append([]Char(nil), chars...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Bbox.Top < out[j].Bbox.Top })
	return out
}

// SortedByX0 returns a copy of chars ordered by ascending X0, the
// ordering used throughout §4.2's column-separator derivation.
func SortedByX0(chars []Char) []Char {
	out := append([]Char(nil), chars...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Bbox.X0 < out[j].Bbox.X0 })
	return out
}

func isSpaceOrDot(text string) bool {
	return text == " " || text == "." || text == "\n" || text == "\t"
}
