package table

import "github.com/coregx/gxpdf/internal/tablecore"

// FromCore adapts a tablecore.Table — the output of the region/layout/cell
// resolution pipeline — into the public-facing domain Table used by the
// export package and the gxpdf.Table wrapper. tablecore already merges
// header rows and continuation rows at the cell level, so every cell here
// carries RowSpan=ColSpan=1.
func FromCore(tbl tablecore.Table, pageNum int, method, regionID string) *Table {
	rowCount := len(tbl.Layout)
	colCount := 0
	if rowCount > 0 {
		colCount = len(tbl.Layout[0])
	}

	rows := make([][]*Cell, rowCount)
	for r, srcRow := range tbl.Layout {
		row := make([]*Cell, len(srcRow))
		for c, srcCell := range srcRow {
			row[c] = NewCellWithBounds(srcCell.Text, r, c, srcCell.Bbox)
		}
		rows[r] = row
	}

	return &Table{
		Rows:         rows,
		RowCount:     rowCount,
		ColCount:     colCount,
		PageNum:      pageNum,
		Bounds:       tbl.Bbox,
		Method:       method,
		HeaderBottom: tbl.Header,
		RegionID:     regionID,
	}
}
