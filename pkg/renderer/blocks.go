package renderer

import (
	"github.com/jung-kurt/gofpdf"
)

// Block is one unit of flow content. Blocks are produced by the section
// formatters and drawn in order by the assembler; a block draws itself and
// leaves the cursor below its own content.
type Block interface {
	draw(d *page)
}

// page wraps the PDF with the resolved page geometry for one render.
type page struct {
	pdf      *gofpdf.Fpdf
	left     float64
	bottom   float64 // bottom margin
	pageH    float64
	contentW float64
}

func newPage(pdf *gofpdf.Fpdf) *page {
	left, _, right, bottom := pdf.GetMargins()
	pageW, pageH := pdf.GetPageSize()
	return &page{
		pdf:      pdf,
		left:     left,
		bottom:   bottom,
		pageH:    pageH,
		contentW: pageW - left - right,
	}
}

// ensure starts a new page if fewer than h millimeters remain below the
// cursor. Used for content that must not be split, like a single table row.
func (d *page) ensure(h float64) {
	if d.pdf.GetY()+h > d.pageH-d.bottom {
		d.pdf.AddPage()
	}
}

// Spacer adds fixed vertical space.
type Spacer struct {
	H float64
}

func (s Spacer) draw(d *page) {
	d.pdf.Ln(s.H)
}

// Paragraph is a styled, wrapping text block spanning the content width.
type Paragraph struct {
	Text  string
	Style Style
}

func (p Paragraph) draw(d *page) {
	p.Style.apply(d.pdf)
	fill := p.Style.Fill != nil
	if fill {
		d.pdf.SetFillColor(p.Style.Fill.R, p.Style.Fill.G, p.Style.Fill.B)
	}
	d.pdf.SetX(d.left)
	d.pdf.MultiCell(d.contentW, p.Style.lineHeight(), p.Text, "", p.Style.Align, fill)
	if p.Style.Spacing > 0 {
		d.pdf.Ln(p.Style.Spacing)
	}
}

// Cell is one table cell: text rendered with a named style resolved at
// formatting time.
type Cell struct {
	Text  string
	Style Style
}

// Row is one table row.
type Row struct {
	Cells []Cell
}

// TableBlock is a fixed-column table with a grid, per-cell styles and
// row-level page breaks: a row never straddles a page boundary.
type TableBlock struct {
	ColWidths []float64 // mm; len must equal the cell count of every row
	Rows      []Row
	Grid      *RGB    // grid line color, nil disables the grid
	LineW     float64 // grid line width, defaults to 0.2
	Padding   float64 // cell padding, defaults to 1.5
	Spacing   float64 // space after the table, mm
}

func (t TableBlock) draw(d *page) {
	pad := t.Padding
	if pad == 0 {
		pad = 1.5
	}
	lineW := t.LineW
	if lineW == 0 {
		lineW = 0.2
	}

	for _, row := range t.Rows {
		h := t.rowHeight(d, row, pad)
		d.ensure(h)
		y := d.pdf.GetY()
		x := d.left
		for i, cell := range row.Cells {
			w := t.ColWidths[i]
			if cell.Style.Fill != nil {
				d.pdf.SetFillColor(cell.Style.Fill.R, cell.Style.Fill.G, cell.Style.Fill.B)
				d.pdf.Rect(x, y, w, h, "F")
			}
			if t.Grid != nil {
				d.pdf.SetDrawColor(t.Grid.R, t.Grid.G, t.Grid.B)
				d.pdf.SetLineWidth(lineW)
				d.pdf.Rect(x, y, w, h, "D")
			}
			if cell.Text != "" {
				cell.Style.apply(d.pdf)
				d.pdf.SetXY(x+pad, y+pad)
				d.pdf.MultiCell(w-2*pad, cell.Style.lineHeight(), cell.Text, "", cell.Style.Align, false)
			}
			x += w
		}
		d.pdf.SetXY(d.left, y+h)
	}
	if t.Spacing > 0 {
		d.pdf.Ln(t.Spacing)
	}
}

// rowHeight measures the tallest cell in the row, including padding.
func (t TableBlock) rowHeight(d *page, row Row, pad float64) float64 {
	max := 0.0
	for i, cell := range row.Cells {
		cell.Style.apply(d.pdf)
		lines := d.pdf.SplitLines([]byte(cell.Text), t.ColWidths[i]-2*pad)
		n := len(lines)
		if n == 0 {
			n = 1
		}
		h := float64(n)*cell.Style.lineHeight() + 2*pad
		if h > max {
			max = h
		}
	}
	return max
}

// ImageBlock places a registered image, scaled to W with its aspect ratio
// preserved.
type ImageBlock struct {
	Asset   *ImageAsset
	W       float64 // display width, mm
	Align   string  // "L", "C"
	Spacing float64
}

func (img ImageBlock) draw(d *page) {
	if img.Asset == nil {
		return
	}
	h := img.Asset.scaledHeight(img.W)
	d.ensure(h)
	x := d.left
	if img.Align == "C" {
		x = d.left + (d.contentW-img.W)/2
	}
	y := d.pdf.GetY()
	d.pdf.ImageOptions(img.Asset.Name, x, y, img.W, h, false,
		gofpdf.ImageOptions{ImageType: img.Asset.Format, ReadDpi: false}, 0, "")
	d.pdf.SetY(y + h)
	if img.Spacing > 0 {
		d.pdf.Ln(img.Spacing)
	}
}

// row builds a table row from its cells.
func row(cells ...Cell) Row {
	return Row{Cells: cells}
}

func gofpdfImageOptions(format string) gofpdf.ImageOptions {
	return gofpdf.ImageOptions{ImageType: format, ReadDpi: false}
}
