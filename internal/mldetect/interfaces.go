// Package mldetect defines the named-contract-only collaborators that
// let an optional ML-based front end replace §4.1/§4.2 of the core
// pipeline. Nothing in this package implements a model: the core never
// depends on one, and these interfaces exist solely so a dispatcher can
// wire an alternative detector/layout source in without touching
// tablecore.
package mldetect

import "github.com/coregx/gxpdf/internal/tablecore"

// RegionDetector is the optional ML detector of §4.4: given a rendered
// page image, it produces candidate table bboxes that enter the pipeline
// at the TableRegion boundary with empty Lines and no header/footer
// refinement beyond the bbox itself.
type RegionDetector interface {
	Detect(pageImage []byte) ([]tablecore.BBox, error)
}

// LayoutDetector is the optional ML layout source of §4.4: given a
// region, it produces column/row bboxes that feed §4.3 directly, with
// the merge rules of §4.3.3-§4.3.5 skipped entirely (ML layout boxes are
// assumed already merged).
type LayoutDetector interface {
	DetectLayout(region tablecore.TableRegion, pageImage []byte) (columns, rows []tablecore.BBox, err error)
}

// BoxesToRegion converts an ML detector's raw bbox into a TableRegion
// with no ruling-line evidence, matching §4.4's contract for how ML
// output enters the core.
func BoxesToRegion(bbox tablecore.BBox) tablecore.TableRegion {
	return tablecore.TableRegion{Bbox: bbox, Header: bbox.Top, Footer: bbox.Bottom}
}

// BoxesToLayout converts ML layout boxes directly into separators, used
// in place of tablecore.ExtractLayout when a LayoutDetector is active.
func BoxesToLayout(region tablecore.TableRegion, columns, rows []tablecore.BBox) tablecore.Layout {
	layout := tablecore.Layout{Header: region.Header, Footer: region.Footer}
	for _, c := range columns {
		layout.Columns = append(layout.Columns, tablecore.Separator{Pos: c.X0, Extent0: c.Top, Extent1: c.Bottom})
	}
	for _, r := range rows {
		layout.Rows = append(layout.Rows, tablecore.Separator{Pos: r.Top, Extent0: r.X0, Extent1: r.X1})
	}
	return layout
}
