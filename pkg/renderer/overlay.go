package renderer

import (
	"log"

	"github.com/jung-kurt/gofpdf"
)

// Watermark geometry: the original layout tiles on a 120x100 point grid with
// a 45 degree rotation. Converted to mm here.
const (
	watermarkStepX = 42.3
	watermarkStepY = 35.3
	watermarkAngle = 45.0
	watermarkAlpha = 0.10
	secondaryAngle = 30.0
	secondaryAlpha = 0.05
)

// PageOverlay draws the tiled watermark and the fixed footer line on every
// page, including pages created by automatic overflow. Both passes are purely
// additive: they never move the flow cursor or trigger a page break, and any
// internal problem degrades to a logged no-op rather than aborting the
// render.
type PageOverlay struct {
	Watermark  string // tiled text; the document kind label when the company has no name
	Secondary  string // optional second layer, e.g. "CONFIDENTIAL"
	FooterLine string
	Fonts      FontPair
}

// install attaches the overlay to the document's per-page hooks. The header
// hook fires right after each page is created, so the watermark sits under
// the flow content; the footer hook fires at page finalization.
func (o *PageOverlay) install(pdf *gofpdf.Fpdf) {
	pdf.SetHeaderFunc(func() {
		o.drawWatermark(pdf)
	})
	pdf.SetFooterFunc(func() {
		o.drawFooter(pdf)
	})
}

// drawWatermark tiles the rotated translucent wordmark across the full page.
func (o *PageOverlay) drawWatermark(pdf *gofpdf.Fpdf) {
	if o.Watermark == "" || o.Fonts.Bold == "" {
		log.Printf("WARNING: watermark skipped: no text or font configured")
		return
	}
	pageW, pageH := pdf.GetPageSize()

	pdf.SetFont(o.Fonts.Bold, "B", 20)
	pdf.SetTextColor(51, 153, 204)
	pdf.SetAlpha(watermarkAlpha, "Normal")
	for x := 0.0; x < pageW; x += watermarkStepX {
		for y := 0.0; y < pageH; y += watermarkStepY {
			pdf.TransformBegin()
			pdf.TransformRotate(watermarkAngle, x, y)
			pdf.Text(x, y, o.Watermark)
			pdf.TransformEnd()
		}
	}

	if o.Secondary != "" {
		pdf.SetFont(o.Fonts.Bold, "B", 34)
		pdf.SetAlpha(secondaryAlpha, "Normal")
		cx, cy := pageW/2, pageH/2
		pdf.TransformBegin()
		pdf.TransformRotate(secondaryAngle, cx, cy)
		pdf.Text(cx-pdf.GetStringWidth(o.Secondary)/2, cy, o.Secondary)
		pdf.TransformEnd()
	}

	pdf.SetAlpha(1.0, "Normal")
}

// drawFooter writes the single fixed footer line near the bottom margin.
func (o *PageOverlay) drawFooter(pdf *gofpdf.Fpdf) {
	if o.FooterLine == "" || o.Fonts.Regular == "" {
		return
	}
	left, _, _, _ := pdf.GetMargins()
	_, pageH := pdf.GetPageSize()
	pdf.SetFont(o.Fonts.Regular, "", 6)
	pdf.SetTextColor(128, 128, 128)
	pdf.Text(left, pageH-4, o.FooterLine)
}
