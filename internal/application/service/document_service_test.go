package service

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opygoal/nextride-api/internal/config"
	"github.com/opygoal/nextride-api/internal/domain/entity"
	"github.com/opygoal/nextride-api/internal/infrastructure/assets"
	"github.com/opygoal/nextride-api/pkg/apperror"
	"github.com/opygoal/nextride-api/pkg/renderer"
)

func newTestDocumentService(t *testing.T) *DocumentService {
	t.Helper()
	store, err := assets.NewStore(t.TempDir(), "", "")
	require.NoError(t, err)
	s := NewDocumentService(NewCompanyService(), store, config.RenderConfig{FontMode: "proportional"})
	s.now = func() time.Time {
		return time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func validInput(kind renderer.DocumentKind) *GenerateInput {
	return &GenerateInput{
		Kind:            kind,
		CustomerName:    "Adaeze Okafor",
		CustomerAddress: "5 Bourdillon Road, Ikoyi, Lagos",
		TripType:        "Single Trip",
		Pickup:          "Murtala Muhammed Airport",
		Dropoff:         "Eko Hotel",
		TripDate:        "2025-09-05",
		UnitPrice:       "35,000",
	}
}

func TestGenerate_Invoice(t *testing.T) {
	s := newTestDocumentService(t)

	out, err := s.Generate(validInput(renderer.KindInvoice))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Number, "INV-20250901-"))
	assert.Equal(t, "Invoice_"+out.Number+".pdf", out.Filename)
	assert.Equal(t, "%PDF", string(out.PDF.Bytes()[:4]))
}

func TestGenerate_ReceiptRequiresPaymentMethod(t *testing.T) {
	s := newTestDocumentService(t)

	_, err := s.Generate(validInput(renderer.KindReceipt))
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "payment_method", appErr.Errors[0].Field)
}

func TestGenerate_Receipt(t *testing.T) {
	s := newTestDocumentService(t)
	in := validInput(renderer.KindReceipt)
	in.PaymentMethod = "Bank Transfer"

	out, err := s.Generate(in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Number, "RCT-20250901-"))
	assert.Equal(t, "Receipt_"+out.Number+".pdf", out.Filename)
}

func TestBuildDocument_ValidationAccumulatesErrors(t *testing.T) {
	s := newTestDocumentService(t)

	_, err := s.buildDocument(&GenerateInput{
		Kind:      renderer.KindInvoice,
		TripType:  "Teleport",
		Quantity:  "zero",
		UnitPrice: "not-a-number",
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)

	fields := make([]string, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"customer_name", "customer_address", "trip_type", "quantity", "unit_price"}, fields)
}

func TestBuildDocument_SingleTripRequiresRouteFields(t *testing.T) {
	s := newTestDocumentService(t)

	_, err := s.buildDocument(&GenerateInput{
		Kind:            renderer.KindInvoice,
		CustomerName:    "Adaeze Okafor",
		CustomerAddress: "5 Bourdillon Road",
		TripType:        "Single Trip",
		UnitPrice:       "35000",
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)

	fields := make([]string, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"pickup", "dropoff", "trip_date"}, fields)
}

func TestBuildDocument_RoundTripRequiresReturnDate(t *testing.T) {
	s := newTestDocumentService(t)
	in := validInput(renderer.KindInvoice)
	in.TripType = "Round Trip"
	in.UnitPrice = "50000"

	_, err := s.buildDocument(in)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "return_date", appErr.Errors[0].Field)

	in.ReturnDate = "2025-09-07"
	_, err = s.buildDocument(in)
	assert.NoError(t, err)
}

func TestBuildDocument_MultiTripValidatesEachLeg(t *testing.T) {
	s := newTestDocumentService(t)
	in := validInput(renderer.KindInvoice)
	in.TripType = "Multiple Round Trips"
	in.UnitPrice = ""
	in.MultipleTrips = `[
		{"pickup":"Lagos","destination":"Ibadan","tripDate":"2025-09-05","price":60000},
		{"price":0}
	]`

	_, err := s.buildDocument(in)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.Len(t, appErr.Errors, 4)
	for _, fe := range appErr.Errors {
		assert.Equal(t, "multiple_trips", fe.Field)
		assert.Contains(t, fe.Message, "Trip 2")
	}
}

func TestBuildDocument_RoundTripDoubling(t *testing.T) {
	s := newTestDocumentService(t)
	in := validInput(renderer.KindInvoice)
	in.TripType = "Round Trip"
	in.ReturnDate = "2025-09-07"
	in.UnitPrice = "50000"

	doc, err := s.buildDocument(in)
	require.NoError(t, err)

	total := renderer.ComputeTotal(doc.Trip.Type, doc.Service, doc.Legs)
	assert.True(t, decimal.NewFromInt(100000).Equal(total))
}

func TestBuildDocument_MultiTripParsesLegsJSON(t *testing.T) {
	s := newTestDocumentService(t)
	in := validInput(renderer.KindInvoice)
	in.TripType = "Multiple Round Trips"
	in.UnitPrice = ""
	in.MultipleTrips = `[
		{"pickup":"Lagos","destination":"Ibadan","dropoff":"Lagos","tripDate":"2025-09-05","tripTime":"08:00","price":60000},
		{"pickup":"Lagos","destination":"Abeokuta","dropoff":"Lagos","tripDate":"2025-09-12","price":"45000"}
	]`

	doc, err := s.buildDocument(in)
	require.NoError(t, err)
	require.Len(t, doc.Legs, 2)
	assert.Equal(t, "Ibadan", doc.Legs[0].Destination)
	assert.True(t, decimal.NewFromInt(45000).Equal(doc.Legs[1].Price))

	total := renderer.ComputeTotal(doc.Trip.Type, doc.Service, doc.Legs)
	assert.True(t, decimal.NewFromInt(105000).Equal(total))
}

func TestBuildDocument_MultiTripRejectsBadJSON(t *testing.T) {
	s := newTestDocumentService(t)
	in := validInput(renderer.KindInvoice)
	in.TripType = "Multiple Round Trips"
	in.MultipleTrips = "not json"

	_, err := s.buildDocument(in)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "multiple_trips", appErr.Errors[0].Field)
}

func TestBuildDocument_EmptyTripTypeDefaultsToSingle(t *testing.T) {
	s := newTestDocumentService(t)
	in := validInput(renderer.KindInvoice)
	in.TripType = ""

	doc, err := s.buildDocument(in)
	require.NoError(t, err)
	assert.Equal(t, renderer.TripSingle, doc.Trip.Type)
}

func TestBuildDocument_UsesCompanyProfile(t *testing.T) {
	s := newTestDocumentService(t)
	name := "Oakwood Charters"
	s.company.Update(entity.CompanyProfilePatch{Name: &name})

	doc, err := s.buildDocument(validInput(renderer.KindInvoice))
	require.NoError(t, err)
	assert.Equal(t, "Oakwood Charters", doc.Company.Name)
}

func TestBuildDocument_ScopeAndDefaults(t *testing.T) {
	s := newTestDocumentService(t)
	in := validInput(renderer.KindInvoice)
	in.ServiceDescription = ""
	in.ScopeOfWork = "- Airport pickup\n- Luggage assistance"

	doc, err := s.buildDocument(in)
	require.NoError(t, err)
	assert.Equal(t, "Transportation service", doc.Service.Description)
	assert.Equal(t, []string{"Airport pickup", "Luggage assistance"}, doc.Service.Scope)
	assert.Equal(t, 1, doc.Service.Quantity)
	assert.Equal(t, "September 1, 2025", doc.Header.Date)
}
