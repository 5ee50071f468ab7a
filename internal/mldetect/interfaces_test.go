package mldetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/gxpdf/internal/tablecore"
)

func TestBoxesToRegion(t *testing.T) {
	bbox := tablecore.NewBBox(10, 20, 100, 200)

	region := BoxesToRegion(bbox)

	assert.Equal(t, bbox, region.Bbox)
	assert.Equal(t, bbox.Top, region.Header)
	assert.Equal(t, bbox.Bottom, region.Footer)
}

func TestBoxesToLayout(t *testing.T) {
	region := tablecore.TableRegion{
		Bbox:   tablecore.NewBBox(0, 0, 100, 100),
		Header: 10,
		Footer: 90,
	}
	columns := []tablecore.BBox{
		tablecore.NewBBox(0, 10, 20, 90),
		tablecore.NewBBox(20, 10, 100, 90),
	}
	rows := []tablecore.BBox{
		tablecore.NewBBox(0, 10, 100, 30),
	}

	layout := BoxesToLayout(region, columns, rows)

	assert.Equal(t, region.Header, layout.Header)
	assert.Equal(t, region.Footer, layout.Footer)
	require.Len(t, layout.Columns, 2)
	require.Len(t, layout.Rows, 1)

	assert.Equal(t, columns[0].X0, layout.Columns[0].Pos)
	assert.Equal(t, columns[0].Top, layout.Columns[0].Extent0)
	assert.Equal(t, columns[0].Bottom, layout.Columns[0].Extent1)

	assert.Equal(t, rows[0].Top, layout.Rows[0].Pos)
	assert.Equal(t, rows[0].X0, layout.Rows[0].Extent0)
	assert.Equal(t, rows[0].X1, layout.Rows[0].Extent1)
}

func TestBoxesToLayoutEmptyInputs(t *testing.T) {
	region := tablecore.TableRegion{Header: 1, Footer: 2}
	layout := BoxesToLayout(region, nil, nil)
	assert.Empty(t, layout.Columns)
	assert.Empty(t, layout.Rows)
}
