package tablecore

// LayoutParams collects every numeric threshold used by the three core
// stages. All thresholds are injected here rather than hard-coded as
// package constants, so a deployment can retune them (via the CLI's
// config-file layer) without a rebuild, and so tests can exercise edge
// cases by perturbing a single field.
type LayoutParams struct {
	// MaxCharSpace is the column-gap threshold (§4.2.2): a gap between
	// consecutive characters' x-extents wider than this starts a new
	// column. Default 5.
	MaxCharSpace float64

	// MaxLineSpace is the row-gap threshold (§4.2.1). May be negative:
	// fine-printed financial tables can have near-touching or slightly
	// overlapping character bounding boxes, so the threshold is the gap
	// that must be exceeded to split rows, not merely reached. Default -0.3.
	MaxLineSpace float64

	// DotLeaderGap is the max x-gap between consecutive dot glyphs for
	// them to be coalesced into one dot-leader run (§4.1.1 step 4).
	DotLeaderGap float64
	// DotLeaderMinRun is the minimum run length (strictly greater than)
	// for a dot sequence to become a synthetic RuleLine.
	DotLeaderMinRun int

	// CollapseHeight is the max height for a filled rect or curve to be
	// treated as a ruling line (§4.1.1 step 1).
	CollapseHeight float64

	// TwoColumnStripWidth and TwoColumnHeightFraction implement the
	// page-layout classification of §4.1.2: a page is two-column when
	// the populated height within a strip of this width at the
	// character midpoint is below this fraction of page height.
	TwoColumnStripWidth    float64
	TwoColumnHeightFraction float64

	// OneColumnMinCount, OneColumnStripMargin and OneColumnHeightFraction
	// implement the richer one-column re-test of §4.1.4: a strip is
	// considered populated if it has at least OneColumnMinCount
	// characters/lines, or the summed char height within
	// mid..mid+OneColumnStripMargin exceeds OneColumnHeightFraction of
	// page height.
	OneColumnMinCount       int
	OneColumnStripMargin    float64
	OneColumnHeightFraction float64

	// BottomThreshold, TopThreshold, LeftThreshold, RightThreshold are
	// the region-growth gap thresholds of §4.1.4.
	BottomThreshold float64
	TopThreshold    float64
	LeftThreshold   float64
	RightThreshold  float64

	// MergeSlack is the ± slack applied when re-filtering a merged
	// region's lines against its final bbox (§4.1.5).
	MergeSlack float64

	// HeaderMinTopFraction, HeaderMaxBottomFraction and
	// HeaderMinWidthFraction gate the ruling-line header fallback of
	// §4.2.1 step 4.
	HeaderMinTopFraction    float64
	HeaderMaxBottomFraction float64
	HeaderMinWidthFraction  float64

	// CaptionLeadingFraction and CaptionCenterTolerance gate the
	// top/bottom trimming caption classification of §4.2.3.
	CaptionLeadingFraction float64
	CaptionCenterTolerance float64

	// ContinuationGapMultiplier is the factor applied to MaxCharSpace
	// to get the vertical-gap guard for first/second-column
	// continuation merging (§4.3.4/§4.3.5): "font differs or the
	// vertical gap exceeds 1.5 x max_charspace".
	ContinuationGapMultiplier float64

	// ContinuationCenterTolerance is the leading/trailing tolerance used
	// to detect a centred sub-title line that blocks continuation merge.
	ContinuationCenterTolerance float64

	// ShrinkPaddingX and ShrinkPaddingY are the small inner paddings
	// added back after shrinking a cell's bbox to its tightest
	// non-whitespace, non-dot content (§4.3.2).
	ShrinkPaddingX float64
	ShrinkPaddingY float64

	// SeparateUnits names the legacy unit-column splitting mode
	// (currency/percent symbols forming their own column via a
	// synthesized rectangle). No stage reads it and that mode is not
	// implemented, so setting it has no effect. Default false.
	SeparateUnits bool

	// MaxFootnoteRetries bounds the footnote-threshold relaxation loop
	// supplemented from original_source/src/table_extractor.py; each
	// retry widens MaxLineSpace by FootnoteRetryStep, capped at
	// MaxFootnoteRetries iterations so termination is guaranteed
	// independent of page content (§7).
	MaxFootnoteRetries int
	FootnoteRetryStep  float64

	// SeparatorMergeMargin is the 1-unit margin of §4.2.4: excluded from
	// each side of the gap between two adjacent column separators when
	// testing that gap for whitespace-only content, and reused as the
	// tolerance for collapsing near-duplicate separators (column or row)
	// into one grid line, so the explicit line families built in
	// ResolveCells stay strictly ordered and pairwise disjoint (§8) even
	// when independent y-segments emit separators for the same boundary
	// a fraction of a unit apart.
	SeparatorMergeMargin float64
}

// DefaultLayoutParams returns the thresholds named throughout §4, unless
// otherwise noted at the field.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		MaxCharSpace:                5,
		MaxLineSpace:                -0.3,
		DotLeaderGap:                7,
		DotLeaderMinRun:             3,
		CollapseHeight:              5,
		TwoColumnStripWidth:         3,
		TwoColumnHeightFraction:     0.05,
		OneColumnMinCount:           2,
		OneColumnStripMargin:        3,
		OneColumnHeightFraction:     0.30,
		BottomThreshold:             5,
		TopThreshold:                4,
		LeftThreshold:               5,
		RightThreshold:              2,
		MergeSlack:                  5,
		HeaderMinTopFraction:        0.01,
		HeaderMaxBottomFraction:     0.90,
		HeaderMinWidthFraction:      0.30,
		CaptionLeadingFraction:      0.075,
		CaptionCenterTolerance:      0.20,
		ContinuationGapMultiplier:   1.5,
		ContinuationCenterTolerance: 0.30,
		ShrinkPaddingX:              0.2,
		ShrinkPaddingY:              0.5,
		SeparateUnits:               false,
		MaxFootnoteRetries:          3,
		FootnoteRetryStep:           5,
		SeparatorMergeMargin:        1,
	}
}
