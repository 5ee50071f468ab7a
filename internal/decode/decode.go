// Package decode adapts this repository's own PDF content-stream
// primitives (internal/extractor's ContentParser, TextState, and
// GraphicsParser) into the tablecore.PageView contract. Per the core
// specification, PDF content-stream decoding is named only as an
// external collaborator with a contract (bbox, chars, lines, rects,
// curves, crop) — tablecore never imports this package, only the
// reverse.
package decode

import (
	"fmt"
	"math"
	"sort"

	"github.com/coregx/gxpdf/internal/extractor"
	"github.com/coregx/gxpdf/internal/fonts"
	"github.com/coregx/gxpdf/internal/parser"
	"github.com/coregx/gxpdf/internal/tablecore"
)

// Decoder turns one page of an opened PDF into a tablecore.PageView.
type Decoder struct {
	reader *parser.Reader
}

// NewDecoder wraps reader, the same *parser.Reader type already used by
// extractor.NewGraphicsParser and gxpdf.Document.
func NewDecoder(reader *parser.Reader) *Decoder {
	return &Decoder{reader: reader}
}

// DecodePage decodes page pageIndex (0-based) into a PageView. Rotated
// characters (non-zero text-matrix off-diagonals) are dropped here, at
// the decode boundary, per §3's Char invariant — the core never sees
// them.
func (d *Decoder) DecodePage(pageIndex int) (tablecore.PageView, error) {
	page, err := d.reader.GetPage(pageIndex)
	if err != nil {
		return tablecore.PageView{}, tablecore.NewCoreError(tablecore.KindDecodeError, fmt.Errorf("get page %d: %w", pageIndex, err))
	}

	pageBbox, pageHeight, err := mediaBox(page)
	if err != nil {
		return tablecore.PageView{}, tablecore.NewCoreError(tablecore.KindDecodeError, err)
	}

	content, err := pageContent(d.reader, page)
	if err != nil {
		return tablecore.PageView{}, tablecore.NewCoreError(tablecore.KindDecodeError, fmt.Errorf("page content: %w", err))
	}

	chars := decodeChars(content, pageHeight)

	graphicsElements, err := extractor.NewGraphicsParser(d.reader).ParseFromPage(pageIndex)
	if err != nil {
		return tablecore.PageView{}, tablecore.NewCoreError(tablecore.KindDecodeError, fmt.Errorf("graphics: %w", err))
	}
	lines, rects, curves := decodeGraphics(graphicsElements, pageHeight)

	return tablecore.PageView{
		Bbox:   pageBbox,
		Chars:  chars,
		Lines:  lines,
		Rects:  rects,
		Curves: curves,
	}, nil
}

// mediaBox reads the page's /MediaBox and returns the normalized
// top-left, y-down page bbox plus the raw PDF-space page height needed
// to flip every other coordinate.
func mediaBox(page *parser.Dictionary) (tablecore.BBox, float64, error) {
	arr := page.GetArray("MediaBox")
	if arr == nil || arr.Len() != 4 {
		return tablecore.BBox{}, 0, fmt.Errorf("missing or malformed MediaBox")
	}
	vals := make([]float64, 4)
	for i := 0; i < 4; i++ {
		n := getNumber(arr.Get(i))
		if n == nil {
			return tablecore.BBox{}, 0, fmt.Errorf("non-numeric MediaBox entry %d", i)
		}
		vals[i] = *n
	}
	llx, lly, urx, ury := vals[0], vals[1], vals[2], vals[3]
	height := ury - lly
	return tablecore.NewBBox(0, 0, urx-llx, height), height, nil
}

func getNumber(obj parser.PdfObject) *float64 {
	switch v := obj.(type) {
	case *parser.Integer:
		f := float64(v.Value())
		return &f
	case *parser.Real:
		f := v.Value()
		return &f
	default:
		return nil
	}
}

// pageContent retrieves and decodes the page's content stream(s),
// concatenating multiple streams with a separating space per the PDF
// spec's own recommendation for Contents arrays.
func pageContent(reader *parser.Reader, page *parser.Dictionary) ([]byte, error) {
	contentsObj := page.Get("Contents")
	if contentsObj == nil {
		return nil, nil
	}
	if ref, ok := contentsObj.(*parser.IndirectReference); ok {
		resolved, err := reader.GetObject(ref.Number)
		if err != nil {
			return nil, err
		}
		contentsObj = resolved
	}

	switch obj := contentsObj.(type) {
	case *parser.Stream:
		return obj.Decode()
	case *parser.Array:
		var all []byte
		for i := 0; i < obj.Len(); i++ {
			item := obj.Get(i)
			if ref, ok := item.(*parser.IndirectReference); ok {
				resolved, err := reader.GetObject(ref.Number)
				if err != nil {
					continue
				}
				item = resolved
			}
			if stream, ok := item.(*parser.Stream); ok {
				decoded, err := stream.Decode()
				if err != nil {
					continue
				}
				all = append(all, decoded...)
				all = append(all, ' ')
			}
		}
		return all, nil
	default:
		return nil, fmt.Errorf("unexpected Contents type %T", obj)
	}
}

// decodeChars walks the text-showing operators of a content stream,
// tracking the text matrix exactly as extractor.TextState does, and
// emits one tablecore.Char per glyph. A glyph is excluded when the text
// matrix's off-diagonal entries are non-zero (rotated or sheared text),
// per the Char invariant of §3.
func decodeChars(content []byte, pageHeight float64) []tablecore.Char {
	if len(content) == 0 {
		return nil
	}
	cp := extractor.NewContentParser(content)
	// ParseOperators returns whatever it parsed before a tokenization
	// error; a malformed tail of the stream shouldn't discard the chars
	// already recovered from its head.
	ops, _ := cp.ParseOperators()

	state := extractor.NewTextState()
	var chars []tablecore.Char

	for _, op := range ops {
		switch op.Name {
		case "BT":
			state.Reset()
		case "Tf":
			if len(op.Operands) >= 2 {
				name := operandName(op.Operands[0])
				size := operandNumber(op.Operands[1])
				if size != nil {
					state.SetFont(name, *size)
				}
			}
		case "Tc":
			if v := operandNumber(operand(op, 0)); v != nil {
				state.CharSpace = *v
			}
		case "Tw":
			if v := operandNumber(operand(op, 0)); v != nil {
				state.WordSpace = *v
			}
		case "Tz":
			if v := operandNumber(operand(op, 0)); v != nil {
				state.HorizScale = *v
			}
		case "TL":
			if v := operandNumber(operand(op, 0)); v != nil {
				state.Leading = *v
			}
		case "Ts":
			if v := operandNumber(operand(op, 0)); v != nil {
				state.Rise = *v
			}
		case "Td":
			if len(op.Operands) >= 2 {
				tx, ty := operandNumber(op.Operands[0]), operandNumber(op.Operands[1])
				if tx != nil && ty != nil {
					state.Translate(*tx, *ty)
				}
			}
		case "TD":
			if len(op.Operands) >= 2 {
				tx, ty := operandNumber(op.Operands[0]), operandNumber(op.Operands[1])
				if tx != nil && ty != nil {
					state.TranslateSetLeading(*tx, *ty)
				}
			}
		case "Tm":
			if len(op.Operands) >= 6 {
				vals := make([]float64, 6)
				ok := true
				for i := 0; i < 6; i++ {
					v := operandNumber(op.Operands[i])
					if v == nil {
						ok = false
						break
					}
					vals[i] = *v
				}
				if ok {
					state.SetTextMatrix(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5])
				}
			}
		case "T*":
			state.MoveToNextLine()
		case "Tj":
			if len(op.Operands) >= 1 {
				chars = append(chars, emitString(operandString(op.Operands[0]), state, pageHeight)...)
			}
		case "'":
			state.MoveToNextLine()
			if len(op.Operands) >= 1 {
				chars = append(chars, emitString(operandString(op.Operands[0]), state, pageHeight)...)
			}
		case "\"":
			if len(op.Operands) >= 3 {
				if aw := operandNumber(op.Operands[0]); aw != nil {
					state.WordSpace = *aw
				}
				if ac := operandNumber(op.Operands[1]); ac != nil {
					state.CharSpace = *ac
				}
				state.MoveToNextLine()
				chars = append(chars, emitString(operandString(op.Operands[2]), state, pageHeight)...)
			}
		case "TJ":
			if len(op.Operands) >= 1 {
				if arr, ok := op.Operands[0].(*parser.Array); ok {
					for i := 0; i < arr.Len(); i++ {
						item := arr.Get(i)
						if s := operandString(item); s != "" {
							chars = append(chars, emitString(s, state, pageHeight)...)
						} else if n := getNumber(item); n != nil {
							state.AdvanceX(-*n / 1000.0 * state.FontSize * (state.HorizScale / 100.0))
						}
					}
				}
			}
		}
	}

	return chars
}

func operand(op *extractor.Operator, i int) parser.PdfObject {
	if i < len(op.Operands) {
		return op.Operands[i]
	}
	return nil
}

func operandNumber(obj parser.PdfObject) *float64 {
	if obj == nil {
		return nil
	}
	return getNumber(obj)
}

func operandName(obj parser.PdfObject) string {
	if n, ok := obj.(*parser.Name); ok {
		return n.Value()
	}
	return ""
}

func operandString(obj parser.PdfObject) string {
	if s, ok := obj.(*parser.String); ok {
		return s.Value()
	}
	return ""
}

const rotationEpsilon = 1e-6

// emitString advances the text matrix across text, one rune at a time,
// using the repository's own Standard-14 font metrics when available for
// glyph width, and a fontSize-proportional fallback otherwise. This
// repository's /Encoding and /ToUnicode CMap resolution (FontDecoder)
// requires walking the page's Font resource dictionary, which is the
// content-stream-decoding collaborator's concern, named out of scope by
// the core spec; bytes are interpreted as Latin-1 here, sufficient for
// the geometry tests the core pipeline runs against.
func emitString(s string, state *extractor.TextState, pageHeight float64) []tablecore.Char {
	if s == "" {
		return nil
	}
	rotated := math.Abs(state.Tm.B) > rotationEpsilon || math.Abs(state.Tm.C) > rotationEpsilon

	var out []tablecore.Char
	for _, r := range s {
		width := fonts.MeasureString(state.FontName, string(r), state.FontSize)
		if width <= 0 {
			width = state.FontSize * 0.5
		}

		x0, y0 := state.Tm.Transform(0, state.Rise)
		x1, y1 := state.Tm.Transform(width, state.Rise+state.FontSize*0.8)

		if !rotated {
			bbox := tablecore.NewBBox(
				minF(x0, x1),
				pageHeight-maxF(y0, y1),
				maxF(x0, x1),
				pageHeight-minF(y0, y1),
			)
			out = append(out, tablecore.Char{
				Bbox:     bbox,
				Text:     string(r),
				FontName: state.FontName,
				Size:     state.FontSize,
				Rotated:  false,
			})
		}

		advance := width + state.CharSpace
		if r == ' ' {
			advance += state.WordSpace
		}
		state.AdvanceX(advance * (state.HorizScale / 100.0))
	}
	return out
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// decodeGraphics splits GraphicsElements into the Lines/Rects/Curves
// families tablecore expects, flipping every coordinate into the
// top-left, y-down page view.
func decodeGraphics(elements []*extractor.GraphicsElement, pageHeight float64) ([]tablecore.RuleLine, []tablecore.Rect, []tablecore.Curve) {
	var lines []tablecore.RuleLine
	var rects []tablecore.Rect
	var curves []tablecore.Curve

	for _, el := range elements {
		if len(el.Points) == 0 {
			continue
		}
		bbox := pointsBbox(el.Points, pageHeight)
		// GraphicsElement does not distinguish stroke from fill paint; every
		// rect/path the parser emits is treated as a ruling candidate and
		// left for tablecore's own height/area collapse rules to filter.
		filled := true

		switch el.Type {
		case extractor.GraphicsTypeLine:
			if len(el.Points) >= 2 {
				p0, p1 := el.Points[0], el.Points[len(el.Points)-1]
				y0 := pageHeight - p0.Y
				y1 := pageHeight - p1.Y
				if math.Abs(y0-y1) < 1.0 {
					lines = append(lines, tablecore.RuleLine{X0: minF(p0.X, p1.X), X1: maxF(p0.X, p1.X), Top: (y0 + y1) / 2, Bottom: (y0 + y1) / 2})
				}
			}
		case extractor.GraphicsTypeRectangle:
			rects = append(rects, tablecore.Rect{Bbox: bbox, Filled: filled})
		case extractor.GraphicsTypePath:
			curves = append(curves, tablecore.Curve{Bbox: bbox, Filled: filled})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Top < lines[j].Top })
	return lines, rects, curves
}

func pointsBbox(points []extractor.Point, pageHeight float64) tablecore.BBox {
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = minF(minX, p.X)
		maxX = maxF(maxX, p.X)
		minY = minF(minY, p.Y)
		maxY = maxF(maxY, p.Y)
	}
	return tablecore.NewBBox(minX, pageHeight-maxY, maxX, pageHeight-minY)
}
