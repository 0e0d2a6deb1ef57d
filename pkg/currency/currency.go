// Package currency formats naira amounts for rendered documents.
//
// The PDF core fonts cannot encode the naira sign, so the formatter carries
// an explicit marker chosen at startup: "₦" when a Unicode-capable font was
// registered, otherwise the ASCII letter "N". The ASCII fallback is the
// documented default, not a bug.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// NairaGlyph is the Unicode naira sign, usable only with a registered
	// UTF-8 font.
	NairaGlyph = "₦"
	// NairaASCII is the fallback marker for the built-in PDF fonts.
	NairaASCII = "N"
)

// Formatter renders monetary amounts with a currency marker, thousands
// separators and exactly two decimal places.
type Formatter struct {
	Symbol string
}

// NewFormatter returns a Formatter using the naira glyph when glyphAvailable
// reports that a font carrying it was registered, and the ASCII substitute
// otherwise.
func NewFormatter(glyphAvailable bool) Formatter {
	if glyphAvailable {
		return Formatter{Symbol: NairaGlyph}
	}
	return Formatter{Symbol: NairaASCII}
}

// Format renders the amount with the currency marker, e.g. "N250,000.00".
func (f Formatter) Format(d decimal.Decimal) string {
	return f.Symbol + FormatPlain(d)
}

// FormatPlain renders the amount without a marker, e.g. "250,000.00".
func FormatPlain(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
