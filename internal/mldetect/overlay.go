package mldetect

import "github.com/coregx/gxpdf/internal/tablecore"

// OverlayRenderer is the named, out-of-scope contract for debug image
// overlays (§1). The CLI's --img_path flag wires an implementation in
// only when requested; the core never calls this directly.
type OverlayRenderer interface {
	Render(page tablecore.PageView, regions []tablecore.TableRegion, outputPath string) error
}

// NopOverlayRenderer is what the CLI wires in when --img_path is set; it
// renders nothing and always returns nil.
type NopOverlayRenderer struct{}

func (NopOverlayRenderer) Render(tablecore.PageView, []tablecore.TableRegion, string) error {
	return nil
}
