package mldetect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coregx/gxpdf/internal/tablecore"
)

func TestNopOverlayRendererAlwaysSucceeds(t *testing.T) {
	var r OverlayRenderer = NopOverlayRenderer{}

	err := r.Render(tablecore.PageView{}, []tablecore.TableRegion{{}}, "/tmp/whatever.png")

	assert.NoError(t, err)
}
