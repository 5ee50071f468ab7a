package gxpdf

import (
	"strings"

	"github.com/coregx/gxpdf/internal/decode"
	"github.com/coregx/gxpdf/internal/extractor"
	"github.com/coregx/gxpdf/internal/tablecore"
)

// Page represents a single page in a PDF document.
type Page struct {
	doc   *Document
	index int
}

// Index returns the page index (0-based).
func (p *Page) Index() int {
	return p.index
}

// Number returns the page number (1-based, for display).
func (p *Page) Number() int {
	return p.index + 1
}

// ExtractText extracts all text from the page.
//
// Returns the text content as a single string.
//
// Example:
//
//	text := page.ExtractText()
//	fmt.Println(text)
func (p *Page) ExtractText() string {
	pageView, err := decode.NewDecoder(p.doc.reader).DecodePage(p.index)
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for _, ch := range tablecore.SortedByTop(pageView.Chars) {
		sb.WriteString(ch.Text)
	}
	return sb.String()
}

// ExtractTables extracts all tables from this page.
//
// Example:
//
//	tables := page.ExtractTables()
//	for _, t := range tables {
//	    fmt.Println(t.Rows())
//	}
func (p *Page) ExtractTables() []*Table {
	tables, _ := p.ExtractTablesWithOptions(nil)
	return tables
}

// ExtractTablesWithOptions extracts tables with custom options.
func (p *Page) ExtractTablesWithOptions(opts *ExtractionOptions) ([]*Table, error) {
	if opts == nil {
		opts = DefaultExtractionOptions()
	}

	pageView, err := decode.NewDecoder(p.doc.reader).DecodePage(p.index)
	if err != nil {
		return nil, err
	}

	params := tablecore.DefaultLayoutParams()
	applyExtractionOptions(&params, opts)

	return extractTablesFromPage(pageView, p.index, opts.Method, params, opts.Overlay, opts.OverlayDir)
}

// GetImages extracts all images from this page.
//
// Returns all images found on the page as a slice.
//
// Example:
//
//	images := page.GetImages()
//	for i, img := range images {
//	    fmt.Printf("Image %d: %dx%d\n", i, img.Width(), img.Height())
//	    img.SaveToFile(fmt.Sprintf("page%d_image%d.jpg", page.Number(), i))
//	}
func (p *Page) GetImages() []*Image {
	images, _ := p.GetImagesWithError()
	return images
}

// GetImagesWithError extracts all images from this page, returning any errors.
//
// Use this when you need error handling for image extraction.
func (p *Page) GetImagesWithError() ([]*Image, error) {
	imageExtractor := extractor.NewImageExtractor(p.doc.reader)
	internalImages, err := imageExtractor.ExtractFromPage(p.index)
	if err != nil {
		return nil, err
	}

	// Wrap internal images in public API
	images := make([]*Image, len(internalImages))
	for i, internal := range internalImages {
		images[i] = &Image{internal: internal}
	}

	return images, nil
}
