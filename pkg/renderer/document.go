// Package renderer turns typed invoice and receipt data into paginated PDF
// documents: styled section blocks, a pricing table with computed totals, a
// tiled watermark and a repeating footer on every page.
package renderer

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/opygoal/nextride-api/pkg/currency"
)

// DocumentKind discriminates the two document types.
type DocumentKind string

const (
	KindInvoice DocumentKind = "invoice"
	KindReceipt DocumentKind = "receipt"
)

// Label returns the document title, e.g. "INVOICE".
func (k DocumentKind) Label() string {
	if k == KindReceipt {
		return "RECEIPT"
	}
	return "INVOICE"
}

// NumberPrefix returns the identifier prefix for the kind.
func (k DocumentKind) NumberPrefix() string {
	if k == KindReceipt {
		return "RCT"
	}
	return "INV"
}

// PartyLabel returns the section heading for the client block.
func (k DocumentKind) PartyLabel() string {
	if k == KindReceipt {
		return "RECEIVED FROM:"
	}
	return "BILL TO:"
}

// TripType enumerates the supported trip shapes.
type TripType string

const (
	TripSingle TripType = "Single Trip"
	TripRound  TripType = "Round Trip"
	TripMulti  TripType = "Multiple Round Trips"
)

// HasReturn reports whether the trip carries return date/time fields.
func (t TripType) HasReturn() bool {
	return t == TripRound
}

// CompanyInfo is the issuing company as printed on the document. Any field
// may be empty; the formatters omit the matching line instead of printing a
// blank.
type CompanyInfo struct {
	Name        string
	Address     string
	Phones      string
	Emails      string
	Tagline     string
	Description string
	Footer      string
	BankDetails string
}

// Party is the billed or paying party.
type Party struct {
	Name    string
	Address string
	Contact string
}

// Trip describes a single or round trip.
type Trip struct {
	Type       TripType
	Pickup     string
	Dropoff    string
	Date       string
	Time       string
	ReturnDate string
	ReturnTime string
}

// Leg is one journey of a multi-leg trip, separately priced.
type Leg struct {
	Pickup      string
	Destination string
	Dropoff     string
	Date        string
	Time        string
	ReturnDate  string
	ReturnTime  string
	Price       decimal.Decimal
}

// ServiceLine is the billed service.
type ServiceLine struct {
	Description string
	Route       string
	Scope       []string // scope-of-work bullet points
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Header identifies one document.
type Header struct {
	Number string
	Date   string
}

// Document is the complete per-render record set. It is built fresh for each
// render and never shared.
type Document struct {
	Kind          DocumentKind
	Header        Header
	Party         Party
	Trip          Trip
	Legs          []Leg // set only when Trip.Type is TripMulti
	Service       ServiceLine
	Notes         string
	PaymentMethod string // receipts only
	Logo          *ImageAsset
	Signature     *ImageAsset
	Company       CompanyInfo
}

// Options control presentation concerns that are fixed per deployment rather
// than per document.
type Options struct {
	Palette        Palette
	Fonts          FontPair
	Unicode        *UnicodeFont
	Currency       currency.Formatter
	SecondaryMark  string    // extra overlay layer text, empty disables
	DisableOverlay bool      // skip watermark and footer drawing entirely
	QRCode         bool      // append a verification QR of the document number
	CreationDate   time.Time // pinned into the PDF for reproducible output
}

// UnicodeFont names a TTF family registered per render so the naira glyph
// can be encoded. When set it replaces the font pair.
type UnicodeFont struct {
	Family      string
	RegularPath string
	BoldPath    string // falls back to RegularPath when empty
}

func defaultFormatter() currency.Formatter {
	return currency.NewFormatter(false)
}

// ImageAsset is a decoded, render-ready image.
type ImageAsset struct {
	Name     string // registration name inside the PDF
	Data     []byte
	Format   string // "PNG", "JPG", "GIF"
	WidthPx  int
	HeightPx int
}

// scaledHeight returns the display height for a given display width,
// preserving the intrinsic aspect ratio.
func (a *ImageAsset) scaledHeight(w float64) float64 {
	if a.WidthPx <= 0 || a.HeightPx <= 0 {
		return w / 2
	}
	return w * float64(a.HeightPx) / float64(a.WidthPx)
}

// ComputeTotal derives the grand total for a document. It is evaluated
// exactly once per render and threaded to every formatter that prints it.
//
// Round trips double the line amount: total = 2 x quantity x unit price.
// Multi-leg trips sum the leg prices.
func ComputeTotal(tripType TripType, line ServiceLine, legs []Leg) decimal.Decimal {
	if tripType == TripMulti {
		return lo.Reduce(legs, func(sum decimal.Decimal, leg Leg, _ int) decimal.Decimal {
			return sum.Add(leg.Price)
		}, decimal.Zero)
	}
	qty := line.Quantity
	if qty <= 0 {
		qty = 1
	}
	amount := line.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
	if tripType == TripRound {
		amount = amount.Mul(decimal.NewFromInt(2))
	}
	return amount
}

// ParseScope splits free-form scope-of-work text into bullet points: one per
// non-empty line, leading bullet glyphs and whitespace stripped.
func ParseScope(text string) []string {
	lines := strings.Split(text, "\n")
	return lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•·")
		line = strings.TrimSpace(line)
		return line, line != ""
	})
}
