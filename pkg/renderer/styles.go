package renderer

import "github.com/jung-kurt/gofpdf"

// RGB represents an RGB color value.
type RGB struct {
	R, G, B int
}

// Palette holds the brand colors a style sheet is built from.
type Palette struct {
	Primary    RGB // accent color for titles and totals
	Dark       RGB // section header background, dark text
	Text       RGB // body text
	LightGray  RGB // shaded label/data cells
	MediumGray RGB // grid lines
	NotesFill  RGB // notes block background
	NotesEdge  RGB // notes block border
	White      RGB
}

// DefaultPalette returns the standard brand palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:    RGB{52, 152, 219},
		Dark:       RGB{44, 62, 80},
		Text:       RGB{44, 62, 80},
		LightGray:  RGB{236, 240, 241},
		MediumGray: RGB{189, 195, 199},
		NotesFill:  RGB{255, 249, 230},
		NotesEdge:  RGB{255, 230, 179},
		White:      RGB{255, 255, 255},
	}
}

// FontPair names the two font families used throughout a document. Bold text
// is always requested with the bold style flag on the Bold family, so a pair
// can be swapped without touching any style identifier.
type FontPair struct {
	Regular string
	Bold    string
}

// ProportionalFonts is the default presentation.
func ProportionalFonts() FontPair {
	return FontPair{Regular: "Helvetica", Bold: "Helvetica"}
}

// MonospacedFonts gives the fixed-width presentation used for
// alignment-critical documents.
func MonospacedFonts() FontPair {
	return FontPair{Regular: "Courier", Bold: "Courier"}
}

// Style is one resolved visual style: font, size, color, optional background
// fill and alignment.
type Style struct {
	Family  string
	Bold    bool
	Size    float64 // points
	Color   RGB
	Fill    *RGB   // nil means no background
	Align   string // "L", "C", "R"
	Spacing float64 // vertical space after the block, mm
}

// apply sets the font and text color on the PDF for this style.
func (s Style) apply(pdf *gofpdf.Fpdf) {
	fontStyle := ""
	if s.Bold {
		fontStyle = "B"
	}
	pdf.SetFont(s.Family, fontStyle, s.Size)
	pdf.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
}

// lineHeight returns the flow height of one text line in mm.
func (s Style) lineHeight() float64 {
	return s.Size * 0.3528 * 1.3
}

// Style identifiers. These never change when the palette or font pair is
// swapped.
const (
	StyleCompanyName   = "company-name"
	StyleCompanySub    = "company-sub"
	StyleTitle         = "title"
	StyleSectionHeader = "section-header"
	StyleLabel         = "label"
	StyleValue         = "value"
	StyleTableHeader   = "table-header"
	StyleCell          = "cell"
	StyleCellCenter    = "cell-center"
	StyleCellRight     = "cell-right"
	StyleTotalLabel    = "total-label"
	StyleTotalValue    = "total-value"
	StyleCaption       = "caption"
	StyleFooter        = "footer"
)

// StyleSheet maps style identifiers to resolved styles for one render.
type StyleSheet struct {
	Palette Palette
	Fonts   FontPair

	styles map[string]Style
}

// NewStyleSheet builds the named styles from a palette and a font pair. It is
// pure; calling it repeatedly is safe and cheap.
func NewStyleSheet(p Palette, fonts FontPair) *StyleSheet {
	ss := &StyleSheet{Palette: p, Fonts: fonts}
	ss.styles = map[string]Style{
		StyleCompanyName:   {Family: fonts.Bold, Bold: true, Size: 16, Color: p.Primary, Align: "L", Spacing: 1},
		StyleCompanySub:    {Family: fonts.Regular, Size: 7, Color: p.Text, Align: "L", Spacing: 0.8},
		StyleTitle:         {Family: fonts.Bold, Bold: true, Size: 20, Color: p.Primary, Align: "C", Spacing: 2},
		StyleSectionHeader: {Family: fonts.Bold, Bold: true, Size: 10, Color: p.White, Fill: &p.Dark, Align: "L", Spacing: 1.5},
		StyleLabel:         {Family: fonts.Bold, Bold: true, Size: 8, Color: p.Text, Align: "L"},
		StyleValue:         {Family: fonts.Regular, Size: 8, Color: p.Text, Align: "L", Spacing: 0.8},
		StyleTableHeader:   {Family: fonts.Bold, Bold: true, Size: 8, Color: p.White, Fill: &p.Dark, Align: "C"},
		StyleCell:          {Family: fonts.Regular, Size: 8, Color: p.Text, Fill: &p.LightGray, Align: "L"},
		StyleCellCenter:    {Family: fonts.Regular, Size: 8, Color: p.Text, Fill: &p.LightGray, Align: "C"},
		StyleCellRight:     {Family: fonts.Regular, Size: 8, Color: p.Text, Fill: &p.LightGray, Align: "R"},
		StyleTotalLabel:    {Family: fonts.Bold, Bold: true, Size: 9, Color: p.Text, Fill: &p.LightGray, Align: "R"},
		StyleTotalValue:    {Family: fonts.Bold, Bold: true, Size: 9, Color: p.Primary, Fill: &p.LightGray, Align: "R"},
		StyleCaption:       {Family: fonts.Regular, Size: 8, Color: p.Text, Align: "C", Spacing: 0.8},
		StyleFooter:        {Family: fonts.Regular, Size: 7, Color: p.Text, Align: "C", Spacing: 0.8},
	}
	return ss
}

// Get returns the style registered under the given identifier. Unknown
// identifiers fall back to the value style so a render never dereferences a
// zero font.
func (ss *StyleSheet) Get(name string) Style {
	if s, ok := ss.styles[name]; ok {
		return s
	}
	return ss.styles[StyleValue]
}

// Names returns the registered style identifiers.
func (ss *StyleSheet) Names() []string {
	names := make([]string, 0, len(ss.styles))
	for name := range ss.styles {
		names = append(names, name)
	}
	return names
}
