package renderer

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// RenderError is the single error type escaping the assembler. It carries the
// document kind and identifier for server-side diagnostics.
type RenderError struct {
	Kind   DocumentKind
	Number string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s %s: %v", e.Kind, e.Number, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Assemble renders the document into an in-memory PDF buffer positioned at
// its start. The section order is fixed: header, title, party, trip detail,
// pricing, notes, signature, footer. The grand total is computed exactly once
// here and threaded to both the trip-detail and pricing formatters.
//
// Output is deterministic for identical input: the PDF creation date is
// pinned from the options, never sampled inside the renderer.
func Assemble(doc Document, opts Options) (buf *bytes.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Kind: doc.Kind, Number: doc.Header.Number, Err: fmt.Errorf("panic: %v", r)}
			log.Printf("ERROR: %v", err)
		}
	}()

	if opts.Palette == (Palette{}) {
		opts.Palette = DefaultPalette()
	}
	if opts.Unicode != nil {
		opts.Fonts = FontPair{Regular: opts.Unicode.Family, Bold: opts.Unicode.Family}
	}
	if opts.Fonts == (FontPair{}) {
		opts.Fonts = ProportionalFonts()
	}
	if opts.Currency.Symbol == "" {
		opts.Currency = defaultFormatter()
	}
	creation := opts.CreationDate
	if creation.IsZero() {
		creation = time.Unix(0, 0).UTC()
	}

	ss := NewStyleSheet(opts.Palette, opts.Fonts)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetCreationDate(creation)
	pdf.SetTitle(fmt.Sprintf("%s %s", doc.Kind.Label(), doc.Header.Number), true)

	if opts.Unicode != nil {
		pdf.AddUTF8Font(opts.Unicode.Family, "", opts.Unicode.RegularPath)
		bold := opts.Unicode.BoldPath
		if bold == "" {
			bold = opts.Unicode.RegularPath
		}
		pdf.AddUTF8Font(opts.Unicode.Family, "B", bold)
	}

	registerAsset(pdf, doc.Logo, "logo")
	registerAsset(pdf, doc.Signature, "signature")

	if !opts.DisableOverlay {
		watermark := doc.Company.Name
		if watermark == "" {
			watermark = doc.Kind.Label()
		}
		overlay := &PageOverlay{
			Watermark:  watermark,
			Secondary:  opts.SecondaryMark,
			FooterLine: doc.Company.Footer,
			Fonts:      opts.Fonts,
		}
		overlay.install(pdf)
	}

	total := ComputeTotal(doc.Trip.Type, doc.Service, doc.Legs)

	var blocks []Block
	blocks = append(blocks, headerBlocks(doc.Company, doc.Logo, ss)...)
	blocks = append(blocks, titleBlocks(doc.Kind, doc.Header, ss)...)
	blocks = append(blocks, partyBlocks(doc.Kind, doc.Party, ss)...)
	blocks = append(blocks, tripBlocks(&doc, total, opts.Currency, ss)...)
	blocks = append(blocks, pricingBlocks(&doc, total, opts.Currency, ss)...)
	blocks = append(blocks, notesBlocks(doc.Notes, ss)...)
	blocks = append(blocks, signatureBlocks(doc.Signature, doc.Company.Name, ss)...)
	blocks = append(blocks, footerBlocks(doc.Company, ss)...)
	if opts.QRCode {
		blocks = append(blocks, qrBlocks(verificationCode(doc.Header.Number), doc.Header.Number, ss)...)
	}

	pdf.AddPage()
	d := newPage(pdf)
	for _, b := range blocks {
		b.draw(d)
	}

	if pdf.Err() {
		rerr := &RenderError{Kind: doc.Kind, Number: doc.Header.Number, Err: pdf.Error()}
		log.Printf("ERROR: %v", rerr)
		return nil, rerr
	}

	buf = &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		rerr := &RenderError{Kind: doc.Kind, Number: doc.Header.Number, Err: err}
		log.Printf("ERROR: %v", rerr)
		return nil, rerr
	}
	return buf, nil
}

// WriteFile renders the document and publishes it atomically: the PDF is
// written to a temp file in the target directory and renamed into place only
// on success, so a failed render never leaves a partial file behind.
func WriteFile(path string, doc Document, opts Options) error {
	buf, err := Assemble(doc, opts)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".render-*.pdf")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Filename returns the attachment name for a rendered document, e.g.
// "Invoice_INV-20250901-1234.pdf".
func Filename(kind DocumentKind, number string) string {
	if kind == KindReceipt {
		return "Receipt_" + number + ".pdf"
	}
	return "Invoice_" + number + ".pdf"
}

// registerAsset makes a decoded image available to the drawing passes.
func registerAsset(pdf *gofpdf.Fpdf, a *ImageAsset, name string) {
	if a == nil {
		return
	}
	if a.Name == "" {
		a.Name = name
	}
	pdf.RegisterImageOptionsReader(a.Name,
		gofpdf.ImageOptions{ImageType: a.Format, ReadDpi: false},
		bytes.NewReader(a.Data))
}

// verificationCode encodes the document number as a QR image, or nil when
// encoding fails; a missing code never fails the render.
func verificationCode(number string) *ImageAsset {
	if number == "" {
		return nil
	}
	png, err := qrcode.Encode(number, qrcode.Medium, 256)
	if err != nil {
		log.Printf("WARNING: could not encode verification code for %s: %v", number, err)
		return nil
	}
	return &ImageAsset{Name: "qr", Data: png, Format: "PNG", WidthPx: 256, HeightPx: 256}
}
