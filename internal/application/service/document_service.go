package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/opygoal/nextride-api/internal/config"
	"github.com/opygoal/nextride-api/internal/infrastructure/assets"
	"github.com/opygoal/nextride-api/pkg/apperror"
	"github.com/opygoal/nextride-api/pkg/currency"
	"github.com/opygoal/nextride-api/pkg/renderer"
	"github.com/opygoal/nextride-api/pkg/utils"
)

// DocumentService validates booking form input, maps it to a render-ready
// document and produces the PDF.
type DocumentService struct {
	company *CompanyService
	assets  *assets.Store
	render  config.RenderConfig
	now     func() time.Time
}

// NewDocumentService creates a new document service
func NewDocumentService(company *CompanyService, store *assets.Store, render config.RenderConfig) *DocumentService {
	return &DocumentService{
		company: company,
		assets:  store,
		render:  render,
		now:     time.Now,
	}
}

// GenerateInput carries the raw form fields of one generation request. All
// values arrive as strings from the multipart form; parsing and validation
// happen here so handlers stay thin.
type GenerateInput struct {
	Kind renderer.DocumentKind

	CustomerName    string
	CustomerAddress string
	CustomerContact string

	TripType      string
	Pickup        string
	Dropoff       string
	TripDate      string
	TripTime      string
	ReturnDate    string
	ReturnTime    string
	MultipleTrips string // JSON array, TripType "Multiple Round Trips" only

	ServiceDescription string
	Route              string
	ScopeOfWork        string
	Quantity           string
	UnitPrice          string
	Notes              string
	PaymentMethod      string // receipts only

	LogoPath      string // uploaded file path, empty uses the default
	SignaturePath string
}

// GenerateOutput is one rendered document.
type GenerateOutput struct {
	Number   string
	Filename string
	PDF      *bytes.Buffer
}

// legInput mirrors one entry of the multiple_trips JSON array.
type legInput struct {
	Pickup      string          `json:"pickup"`
	Destination string          `json:"destination"`
	Dropoff     string          `json:"dropoff"`
	TripDate    string          `json:"tripDate"`
	TripTime    string          `json:"tripTime"`
	ReturnDate  string          `json:"returnDate"`
	ReturnTime  string          `json:"returnTime"`
	Price       decimal.Decimal `json:"price"`
}

// Generate validates the input, builds the document and renders it.
func (s *DocumentService) Generate(input *GenerateInput) (*GenerateOutput, error) {
	doc, err := s.buildDocument(input)
	if err != nil {
		return nil, err
	}

	buf, err := renderer.Assemble(*doc, s.renderOptions())
	if err != nil {
		return nil, apperror.ErrRenderFailed
	}

	return &GenerateOutput{
		Number:   doc.Header.Number,
		Filename: renderer.Filename(doc.Kind, doc.Header.Number),
		PDF:      buf,
	}, nil
}

// buildDocument validates and maps form input into a typed document.
func (s *DocumentService) buildDocument(input *GenerateInput) (*renderer.Document, error) {
	var fieldErrs []apperror.FieldError

	if strings.TrimSpace(input.CustomerName) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}
	if strings.TrimSpace(input.CustomerAddress) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "customer_address", Message: "Customer address is required"})
	}

	tripType, ok := parseTripType(input.TripType)
	if !ok {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "trip_type", Message: "Trip type must be Single Trip, Round Trip or Multiple Round Trips"})
	}

	if ok && tripType != renderer.TripMulti {
		if strings.TrimSpace(input.Pickup) == "" {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "pickup", Message: "Pickup point is required"})
		}
		if strings.TrimSpace(input.Dropoff) == "" {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "dropoff", Message: "Drop off point is required"})
		}
		if strings.TrimSpace(input.TripDate) == "" {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "trip_date", Message: "Trip date is required"})
		}
		if tripType == renderer.TripRound && strings.TrimSpace(input.ReturnDate) == "" {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "return_date", Message: "Return date is required for round trips"})
		}
	}

	qty := 1
	if strings.TrimSpace(input.Quantity) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(input.Quantity))
		if err != nil || n < 1 {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "quantity", Message: "Quantity must be a whole number of at least 1"})
		} else {
			qty = n
		}
	}

	var legs []renderer.Leg
	var unitPrice decimal.Decimal
	if tripType == renderer.TripMulti {
		parsed, err := parseLegs(input.MultipleTrips)
		if err != nil {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "multiple_trips", Message: err.Error()})
		} else {
			legs = parsed
			fieldErrs = append(fieldErrs, validateLegs(parsed)...)
		}
	} else {
		p, err := parsePrice(input.UnitPrice)
		if err != nil {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "unit_price", Message: err.Error()})
		} else {
			unitPrice = p
		}
	}

	if input.Kind == renderer.KindReceipt && strings.TrimSpace(input.PaymentMethod) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "payment_method", Message: "Payment method is required for receipts"})
	}

	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	now := s.now()
	profile := s.company.Get()

	doc := &renderer.Document{
		Kind: input.Kind,
		Header: renderer.Header{
			Number: utils.GenerateDocumentNo(input.Kind.NumberPrefix(), now),
			Date:   now.Format("January 2, 2006"),
		},
		Party: renderer.Party{
			Name:    strings.TrimSpace(input.CustomerName),
			Address: strings.TrimSpace(input.CustomerAddress),
			Contact: strings.TrimSpace(input.CustomerContact),
		},
		Trip: renderer.Trip{
			Type:       tripType,
			Pickup:     strings.TrimSpace(input.Pickup),
			Dropoff:    strings.TrimSpace(input.Dropoff),
			Date:       strings.TrimSpace(input.TripDate),
			Time:       strings.TrimSpace(input.TripTime),
			ReturnDate: strings.TrimSpace(input.ReturnDate),
			ReturnTime: strings.TrimSpace(input.ReturnTime),
		},
		Legs: legs,
		Service: renderer.ServiceLine{
			Description: serviceDescription(input.ServiceDescription, tripType),
			Route:       strings.TrimSpace(input.Route),
			Scope:       renderer.ParseScope(input.ScopeOfWork),
			Quantity:    qty,
			UnitPrice:   unitPrice,
		},
		Notes:         strings.TrimSpace(input.Notes),
		PaymentMethod: strings.TrimSpace(input.PaymentMethod),
		Logo:          s.assets.ResolveLogo(input.LogoPath),
		Signature:     s.assets.ResolveSignature(input.SignaturePath),
		Company:       profile.RenderInfo(),
	}
	return doc, nil
}

// renderOptions maps the deployment render settings onto renderer options.
func (s *DocumentService) renderOptions() renderer.Options {
	opts := renderer.Options{
		Palette:       renderer.DefaultPalette(),
		Currency:      currency.NewFormatter(s.render.NairaGlyph && s.render.UnicodeFontPath != ""),
		SecondaryMark: s.render.SecondaryMark,
		QRCode:        s.render.QRCode,
		CreationDate:  s.now().UTC(),
	}
	if s.render.FontMode == "monospaced" {
		opts.Fonts = renderer.MonospacedFonts()
	} else {
		opts.Fonts = renderer.ProportionalFonts()
	}
	if s.render.NairaGlyph && s.render.UnicodeFontPath != "" {
		opts.Unicode = &renderer.UnicodeFont{
			Family:      "DocSans",
			RegularPath: s.render.UnicodeFontPath,
			BoldPath:    s.render.UnicodeFontBold,
		}
	}
	return opts
}

func parseTripType(raw string) (renderer.TripType, bool) {
	switch strings.TrimSpace(raw) {
	case "", string(renderer.TripSingle):
		return renderer.TripSingle, true
	case string(renderer.TripRound):
		return renderer.TripRound, true
	case string(renderer.TripMulti):
		return renderer.TripMulti, true
	}
	return "", false
}

// parsePrice accepts plain decimals with optional thousands separators.
func parsePrice(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return decimal.Zero, apperror.NewBadRequestError("Unit price is required")
	}
	p, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, apperror.NewBadRequestError("Unit price must be a number")
	}
	if p.IsNegative() {
		return decimal.Zero, apperror.NewBadRequestError("Unit price cannot be negative")
	}
	return p, nil
}

// parseLegs decodes the multiple_trips JSON array.
func parseLegs(raw string) ([]renderer.Leg, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, apperror.NewBadRequestError("Multiple trips data is required for multiple round trips")
	}
	var in []legInput
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return nil, apperror.NewBadRequestError("Multiple trips data must be a JSON array")
	}
	if len(in) == 0 {
		return nil, apperror.NewBadRequestError("At least one trip is required")
	}
	return lo.Map(in, func(l legInput, _ int) renderer.Leg {
		return renderer.Leg{
			Pickup:      strings.TrimSpace(l.Pickup),
			Destination: strings.TrimSpace(l.Destination),
			Dropoff:     strings.TrimSpace(l.Dropoff),
			Date:        strings.TrimSpace(l.TripDate),
			Time:        strings.TrimSpace(l.TripTime),
			ReturnDate:  strings.TrimSpace(l.ReturnDate),
			ReturnTime:  strings.TrimSpace(l.ReturnTime),
			Price:       l.Price,
		}
	}), nil
}

// validateLegs checks the required fields of every decoded leg, naming the
// trip by its one-based position so the client can point at the bad row.
func validateLegs(legs []renderer.Leg) []apperror.FieldError {
	var errs []apperror.FieldError
	for i, leg := range legs {
		n := i + 1
		if leg.Pickup == "" {
			errs = append(errs, apperror.FieldError{Field: "multiple_trips", Message: fmt.Sprintf("Trip %d: pickup point is required", n)})
		}
		if leg.Destination == "" {
			errs = append(errs, apperror.FieldError{Field: "multiple_trips", Message: fmt.Sprintf("Trip %d: destination is required", n)})
		}
		if leg.Date == "" {
			errs = append(errs, apperror.FieldError{Field: "multiple_trips", Message: fmt.Sprintf("Trip %d: trip date is required", n)})
		}
		if !leg.Price.IsPositive() {
			errs = append(errs, apperror.FieldError{Field: "multiple_trips", Message: fmt.Sprintf("Trip %d: price must be greater than 0", n)})
		}
	}
	return errs
}

func serviceDescription(raw string, tripType renderer.TripType) string {
	desc := strings.TrimSpace(raw)
	if desc != "" {
		return desc
	}
	switch tripType {
	case renderer.TripRound:
		return "Round trip transportation service"
	case renderer.TripMulti:
		return "Multiple round trips transportation service"
	}
	return "Transportation service"
}
