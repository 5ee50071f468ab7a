package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExporter_Export(t *testing.T) {
	tbl := createTestTable(t)
	exporter := NewExcelExporter()

	var buf bytes.Buffer
	err := exporter.Export(tbl, &buf)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Table")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Age", "City"}, rows[0])
	assert.Equal(t, []string{"Alice", "30", "NYC"}, rows[1])
	assert.Equal(t, []string{"Bob", "25", "LA"}, rows[2])
}

func TestExcelExporter_WithFlattenedHeaderRow(t *testing.T) {
	tbl := createTestTable(t)
	opts := DefaultExportOptions()
	opts.IncludeMetadata = true
	exporter := NewExcelExporterWithOptions(opts)

	var buf bytes.Buffer
	err := exporter.Export(tbl, &buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Table")
	require.NoError(t, err)
	// Flattened header row, then the table's own 3 rows.
	require.Len(t, rows, 4)
	assert.Equal(t, flattenHeader(tbl), rows[0])
	assert.Equal(t, []string{"Name", "Age", "City"}, rows[1])
	assert.Equal(t, []string{"Alice", "30", "NYC"}, rows[2])
	assert.Equal(t, []string{"Bob", "25", "LA"}, rows[3])
}

func TestExcelExporter_WithSheetName(t *testing.T) {
	tbl := createTestTable(t)
	exporter := NewExcelExporter().WithSheetName("Invoice")

	var buf bytes.Buffer
	err := exporter.Export(tbl, &buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Invoice")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExcelExporter_NilTable(t *testing.T) {
	exporter := NewExcelExporter()

	var buf bytes.Buffer
	err := exporter.Export(nil, &buf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nil")
}

func TestExcelExporter_ExportToBytes(t *testing.T) {
	tbl := createTestTable(t)
	exporter := NewExcelExporter()

	data, err := exporter.ExportToBytes(tbl)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestExcelExporter_ExportToStringUnsupported(t *testing.T) {
	tbl := createTestTable(t)
	exporter := NewExcelExporter()

	_, err := exporter.ExportToString(tbl)
	assert.Error(t, err)
}

func TestExcelExporter_ContentTypeAndExtension(t *testing.T) {
	exporter := NewExcelExporter()
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", exporter.ContentType())
	assert.Equal(t, ".xlsx", exporter.FileExtension())
}
