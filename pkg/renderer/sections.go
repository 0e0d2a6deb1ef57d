package renderer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/opygoal/nextride-api/pkg/currency"
)

// DefaultNotes is printed in the notes block when the caller supplied none.
const DefaultNotes = "Thank you for your patronage. We look forward to serving you again."

// Fixed layout widths in mm. The content width on A4 with 15mm margins is
// 180mm; the label column of the detail tables is always 30mm regardless of
// content.
const (
	labelColW = 30
	logoW     = 30
	signW     = 45
	qrW       = 28
)

// headerBlocks renders the company block, beside the logo when one resolved.
// Empty company fields are omitted, never printed blank.
func headerBlocks(c CompanyInfo, logo *ImageAsset, ss *StyleSheet) []Block {
	var lines []Paragraph
	if c.Name != "" {
		lines = append(lines, Paragraph{Text: c.Name, Style: ss.Get(StyleCompanyName)})
	}
	if c.Address != "" {
		lines = append(lines, Paragraph{Text: c.Address, Style: ss.Get(StyleCompanySub)})
	}
	if c.Phones != "" {
		lines = append(lines, Paragraph{Text: "Phones: " + c.Phones, Style: ss.Get(StyleCompanySub)})
	}
	if c.Emails != "" {
		lines = append(lines, Paragraph{Text: "Emails: " + c.Emails, Style: ss.Get(StyleCompanySub)})
	}
	if len(lines) == 0 {
		return nil
	}

	if logo != nil {
		return []Block{twoColHeader{logo: logo, logoW: logoW, gutter: 5, lines: lines}, Spacer{H: 3}}
	}
	blocks := make([]Block, 0, len(lines)+1)
	for _, p := range lines {
		blocks = append(blocks, p)
	}
	return append(blocks, Spacer{H: 3})
}

// titleBlocks renders the centered document kind label, number and date.
func titleBlocks(kind DocumentKind, h Header, ss *StyleSheet) []Block {
	centered := ss.Get(StyleValue)
	centered.Align = "C"
	return []Block{
		Paragraph{Text: kind.Label(), Style: ss.Get(StyleTitle)},
		Paragraph{Text: fmt.Sprintf("%s No: %s", titleCase(kind), h.Number), Style: centered},
		Paragraph{Text: "Date: " + h.Date, Style: centered},
		Spacer{H: 3},
	}
}

func titleCase(kind DocumentKind) string {
	if kind == KindReceipt {
		return "Receipt"
	}
	return "Invoice"
}

// partyBlocks renders the bill-to / received-from label-value grid.
func partyBlocks(kind DocumentKind, p Party, ss *StyleSheet) []Block {
	label := ss.Get(StyleLabel)
	label.Fill = &ss.Palette.LightGray
	value := ss.Get(StyleValue)

	table := TableBlock{
		ColWidths: []float64{labelColW, 150},
		Grid:      &ss.Palette.MediumGray,
		Spacing:   3,
		Rows: []Row{
			row(Cell{"Name:", label}, Cell{p.Name, value}),
			row(Cell{"Address:", label}, Cell{p.Address, value}),
			row(Cell{"Contact:", label}, Cell{p.Contact, value}),
		},
	}
	return []Block{
		Paragraph{Text: kind.PartyLabel(), Style: ss.Get(StyleSectionHeader)},
		table,
	}
}

// tripBlocks renders the trip detail section: a label-value grid for single
// and round trips, or the per-leg table with a summed total row for
// multi-leg trips. total is the grand total computed by the assembler.
func tripBlocks(d *Document, total decimal.Decimal, cf currency.Formatter, ss *StyleSheet) []Block {
	blocks := []Block{Paragraph{Text: "TRIP DETAILS:", Style: ss.Get(StyleSectionHeader)}}

	if d.Trip.Type == TripMulti {
		return append(blocks, legBlocks(d.Legs, total, cf, ss)...)
	}

	label := ss.Get(StyleLabel)
	label.Fill = &ss.Palette.LightGray
	value := ss.Get(StyleValue)

	rows := []Row{
		row(Cell{"Trip Type:", label}, Cell{string(d.Trip.Type), value}),
		row(Cell{"Pickup Point:", label}, Cell{d.Trip.Pickup, value}),
		row(Cell{"Drop Off Point:", label}, Cell{d.Trip.Dropoff, value}),
		row(Cell{"Trip Date:", label}, Cell{d.Trip.Date, value}),
	}
	if d.Trip.Time != "" {
		rows = append(rows, row(Cell{"Trip Time:", label}, Cell{d.Trip.Time, value}))
	}
	if d.Trip.Type.HasReturn() {
		rows = append(rows, row(Cell{"Return Date:", label}, Cell{d.Trip.ReturnDate, value}))
		if d.Trip.ReturnTime != "" {
			rows = append(rows, row(Cell{"Return Time:", label}, Cell{d.Trip.ReturnTime, value}))
		}
	}

	return append(blocks, TableBlock{
		ColWidths: []float64{labelColW, 150},
		Grid:      &ss.Palette.MediumGray,
		Spacing:   3,
		Rows:      rows,
	})
}

// legBlocks builds the multi-leg table: one row per leg plus a total row.
func legBlocks(legs []Leg, total decimal.Decimal, cf currency.Formatter, ss *StyleSheet) []Block {
	label := ss.Get(StyleLabel)
	label.Fill = &ss.Palette.LightGray
	value := ss.Get(StyleValue)

	summary := TableBlock{
		ColWidths: []float64{labelColW, 150},
		Grid:      &ss.Palette.MediumGray,
		Spacing:   2,
		Rows: []Row{
			row(Cell{"Trip Type:", label},
				Cell{fmt.Sprintf("Multiple Round Trips - %d Scheduled Trips", len(legs)), value}),
		},
	}

	header := ss.Get(StyleTableHeader)
	cell := ss.Get(StyleCell)
	center := ss.Get(StyleCellCenter)
	right := ss.Get(StyleCellRight)

	rows := []Row{row(
		Cell{"Trip #", header},
		Cell{"Pickup Point", header},
		Cell{"Destination", header},
		Cell{"Drop Off Point", header},
		Cell{"Trip Date/Time", header},
		Cell{"Return Date/Time", header},
		Cell{"Amount", header},
	)}
	for i, leg := range legs {
		rows = append(rows, row(
			Cell{fmt.Sprintf("%d", i+1), center},
			Cell{orNA(leg.Pickup), cell},
			Cell{orNA(leg.Destination), cell},
			Cell{orNA(leg.Dropoff), cell},
			Cell{dateTimePair(leg.Date, leg.Time), cell},
			Cell{dateTimePair(leg.ReturnDate, leg.ReturnTime), cell},
			Cell{cf.Format(leg.Price), right},
		))
	}
	rows = append(rows, row(
		Cell{"", cell}, Cell{"", cell}, Cell{"", cell}, Cell{"", cell}, Cell{"", cell},
		Cell{"TOTAL:", ss.Get(StyleTotalLabel)},
		Cell{cf.Format(total), ss.Get(StyleTotalValue)},
	))

	return []Block{summary, TableBlock{
		ColWidths: []float64{12, 31, 31, 31, 26, 26, 23},
		Grid:      &ss.Palette.MediumGray,
		Spacing:   3,
		Rows:      rows,
	}}
}

// dateTimePair formats a date and time as two stacked lines, or "N/A" when
// the date is missing.
func dateTimePair(date, t string) string {
	if date == "" {
		return "N/A"
	}
	if t == "" {
		return date
	}
	return date + "\n" + t
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// pricingBlocks renders the services table. The total row always shows the
// grand total computed by the assembler; for multi-leg documents the single
// data row aggregates leg count and average unit price.
func pricingBlocks(d *Document, total decimal.Decimal, cf currency.Formatter, ss *StyleSheet) []Block {
	header := ss.Get(StyleTableHeader)
	cell := ss.Get(StyleCell)
	center := ss.Get(StyleCellCenter)
	right := ss.Get(StyleCellRight)

	desc := d.Service.Description
	if d.Service.Route != "" {
		desc += "\nRoute: " + d.Service.Route
	}
	for _, item := range d.Service.Scope {
		desc += "\n- " + item
	}

	var qty string
	var unit decimal.Decimal
	if d.Trip.Type == TripMulti {
		n := len(d.Legs)
		qty = fmt.Sprintf("%d", n)
		if n > 0 {
			unit = total.Div(decimal.NewFromInt(int64(n))).Round(2)
		}
	} else {
		q := d.Service.Quantity
		if q <= 0 {
			q = 1
		}
		qty = fmt.Sprintf("%d", q)
		unit = d.Service.UnitPrice
	}

	rows := []Row{
		row(Cell{"Description", header}, Cell{"Qty", header}, Cell{"Unit Price", header}, Cell{"Amount", header}),
		row(Cell{desc, cell}, Cell{qty, center}, Cell{cf.Format(unit), right}, Cell{cf.Format(total), right}),
		row(Cell{"", cell}, Cell{"", cell},
			Cell{"GRAND TOTAL:", ss.Get(StyleTotalLabel)},
			Cell{cf.Format(total), ss.Get(StyleTotalValue)}),
	}

	blocks := []Block{
		Paragraph{Text: "SERVICES & PAYMENT SUMMARY:", Style: ss.Get(StyleSectionHeader)},
		TableBlock{
			ColWidths: []float64{90, 18, 36, 36},
			Grid:      &ss.Palette.MediumGray,
			Spacing:   3,
			Rows:      rows,
		},
	}

	if d.Kind == KindReceipt && d.PaymentMethod != "" {
		centered := ss.Get(StyleValue)
		centered.Align = "C"
		blocks = append(blocks,
			Paragraph{Text: "Payment Method: " + d.PaymentMethod, Style: centered},
			Spacer{H: 1})
	}
	return blocks
}

// notesBlocks renders the shaded free-text notes cell, falling back to the
// standard courtesy message when the caller left notes empty.
func notesBlocks(notes string, ss *StyleSheet) []Block {
	if strings.TrimSpace(notes) == "" {
		notes = DefaultNotes
	}
	value := ss.Get(StyleValue)
	value.Fill = &ss.Palette.NotesFill
	return []Block{
		Paragraph{Text: "ADDITIONAL NOTES:", Style: ss.Get(StyleSectionHeader)},
		TableBlock{
			ColWidths: []float64{180},
			Grid:      &ss.Palette.NotesEdge,
			Spacing:   3,
			Rows:      []Row{row(Cell{notes, value})},
		},
	}
}

// signatureBlocks renders the signature image with its caption lines, or
// nothing at all when no signature asset resolved.
func signatureBlocks(sig *ImageAsset, companyName string, ss *StyleSheet) []Block {
	if sig == nil {
		return nil
	}
	blocks := []Block{
		ImageBlock{Asset: sig, W: signW, Align: "C", Spacing: 1},
		Paragraph{Text: "Authorized Signature", Style: ss.Get(StyleCaption)},
	}
	if companyName != "" {
		blocks = append(blocks, Paragraph{Text: companyName, Style: ss.Get(StyleCaption)})
	}
	return append(blocks, Spacer{H: 2})
}

// footerBlocks renders the bank details and closing courtesy group; blank
// company fields are omitted.
func footerBlocks(c CompanyInfo, ss *StyleSheet) []Block {
	centered := ss.Get(StyleValue)
	centered.Align = "C"
	tagline := ss.Get(StyleLabel)
	tagline.Align = "C"

	var blocks []Block
	if c.BankDetails != "" {
		blocks = append(blocks, Paragraph{Text: "Account Details: " + c.BankDetails, Style: centered})
	}
	blocks = append(blocks, Paragraph{Text: "Thank you for your business! We appreciate your patronage.", Style: centered})
	if c.Tagline != "" {
		blocks = append(blocks, Paragraph{Text: c.Tagline, Style: tagline})
	}
	if c.Description != "" {
		blocks = append(blocks, Paragraph{Text: c.Description, Style: ss.Get(StyleFooter)})
	}
	return blocks
}

// qrBlocks renders the verification code for the document number.
func qrBlocks(code *ImageAsset, number string, ss *StyleSheet) []Block {
	if code == nil {
		return nil
	}
	return []Block{
		Spacer{H: 2},
		ImageBlock{Asset: code, W: qrW, Align: "C", Spacing: 1},
		Paragraph{Text: "Scan to verify: " + number, Style: ss.Get(StyleCaption)},
	}
}

// twoColHeader lays the logo beside the company text lines.
type twoColHeader struct {
	logo   *ImageAsset
	logoW  float64
	gutter float64
	lines  []Paragraph
}

func (b twoColHeader) draw(d *page) {
	imgH := b.logo.scaledHeight(b.logoW)
	d.ensure(imgH)

	y := d.pdf.GetY()
	d.pdf.ImageOptions(b.logo.Name, d.left, y, b.logoW, imgH, false,
		gofpdfImageOptions(b.logo.Format), 0, "")

	tx := d.left + b.logoW + b.gutter
	tw := d.contentW - b.logoW - b.gutter
	cy := y
	for _, p := range b.lines {
		p.Style.apply(d.pdf)
		d.pdf.SetXY(tx, cy)
		d.pdf.MultiCell(tw, p.Style.lineHeight(), p.Text, "", p.Style.Align, false)
		cy = d.pdf.GetY() + p.Style.Spacing
	}

	bottom := y + imgH
	if cy > bottom {
		bottom = cy
	}
	d.pdf.SetY(bottom)
}
