package gxpdf

import "github.com/coregx/gxpdf/internal/mldetect"

// ExtractionMethod names the table extraction method.
//
// Every method runs the same TableFinder / LayoutExtractor / CellResolver
// pipeline; the value is recorded as the Method label of each extracted
// Table and does not change how tables are detected.
type ExtractionMethod int

const (
	// MethodAuto is the default method; its label is "Auto".
	MethodAuto ExtractionMethod = iota

	// MethodLattice labels extracted tables "Lattice".
	MethodLattice

	// MethodStream labels extracted tables "Stream".
	MethodStream

	// MethodHybrid labels extracted tables "Hybrid".
	MethodHybrid
)

// String returns the name of the extraction method.
func (m ExtractionMethod) String() string {
	switch m {
	case MethodAuto:
		return "Auto"
	case MethodLattice:
		return "Lattice"
	case MethodStream:
		return "Stream"
	case MethodHybrid:
		return "Hybrid"
	default:
		return "Unknown"
	}
}

// ExtractionOptions configures table extraction behavior.
type ExtractionOptions struct {
	// Method is the method label recorded on each extracted Table.
	// Default: MethodAuto
	Method ExtractionMethod

	// Pages specifies which pages to process (0-based indices).
	// Empty slice means all pages.
	Pages []int

	// MinRowHeight is the minimum height for a row in points.
	// Rows shorter than this are merged with adjacent rows.
	// Default: 0 (auto-detect)
	MinRowHeight float64

	// MinColumnWidth is the minimum width for a column in points.
	// Default: 0 (auto-detect)
	MinColumnWidth float64

	// MergeMultilineRows is not read by the extraction pipeline; setting it
	// has no effect on the extracted tables.
	// Default: true
	MergeMultilineRows bool

	// MaxLineSpace overrides the core pipeline's row-gap threshold
	// directly, in the same signed units tablecore.LayoutParams uses
	// (negative allows slight overlap between baselines). Nil leaves
	// MinRowHeight (or the core default) in effect.
	MaxLineSpace *float64

	// MaxCharSpace overrides the core pipeline's column-gap threshold
	// directly. Nil leaves MinColumnWidth (or the core default) in effect.
	MaxCharSpace *float64

	// Overlay, when non-nil, is called once per page with the regions
	// tablecore.FindTables returned, before layout extraction. Leave nil
	// to skip debug rendering entirely.
	Overlay mldetect.OverlayRenderer

	// OverlayDir is the directory overlay output paths are built under.
	// Ignored if Overlay is nil.
	OverlayDir string
}

// DefaultExtractionOptions returns the default extraction options.
func DefaultExtractionOptions() *ExtractionOptions {
	return &ExtractionOptions{
		Method:             MethodAuto,
		Pages:              nil, // All pages
		MinRowHeight:       0,
		MinColumnWidth:     0,
		MergeMultilineRows: true,
	}
}

// WithMethod sets the extraction method.
func (o *ExtractionOptions) WithMethod(method ExtractionMethod) *ExtractionOptions {
	o.Method = method
	return o
}

// WithPages sets the pages to process.
func (o *ExtractionOptions) WithPages(pages ...int) *ExtractionOptions {
	o.Pages = pages
	return o
}

// WithMergeMultilineRows sets MergeMultilineRows, which the extraction
// pipeline does not read.
func (o *ExtractionOptions) WithMergeMultilineRows(merge bool) *ExtractionOptions {
	o.MergeMultilineRows = merge
	return o
}
