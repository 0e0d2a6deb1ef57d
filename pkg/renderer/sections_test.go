package renderer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opygoal/nextride-api/pkg/currency"
)

func testStyles() *StyleSheet {
	return NewStyleSheet(DefaultPalette(), ProportionalFonts())
}

func TestHeaderBlocks_OmitsBlankFields(t *testing.T) {
	ss := testStyles()

	full := headerBlocks(CompanyInfo{
		Name:    "NextRide Logistics",
		Address: "Victoria Island, Lagos",
		Phones:  "+234 801 234 5678",
		Emails:  "bookings@nextride.ng",
	}, nil, ss)
	// four paragraphs plus the trailing spacer
	assert.Len(t, full, 5)

	partial := headerBlocks(CompanyInfo{Name: "NextRide Logistics"}, nil, ss)
	assert.Len(t, partial, 2)

	assert.Nil(t, headerBlocks(CompanyInfo{}, nil, ss))
}

func TestHeaderBlocks_LogoCollapsesToTwoColumns(t *testing.T) {
	ss := testStyles()
	logo := &ImageAsset{Name: "logo", Format: "PNG", WidthPx: 240, HeightPx: 120}

	blocks := headerBlocks(CompanyInfo{Name: "NextRide Logistics"}, logo, ss)
	require.Len(t, blocks, 2)
	_, ok := blocks[0].(twoColHeader)
	assert.True(t, ok)
}

func TestTripBlocks_SingleTripRows(t *testing.T) {
	ss := testStyles()
	doc := &Document{Trip: Trip{
		Type:   TripSingle,
		Pickup: "Ikeja",
		Date:   "2025-09-01",
	}}

	blocks := tripBlocks(doc, decimal.Zero, currency.NewFormatter(false), ss)
	require.Len(t, blocks, 2)
	table, ok := blocks[1].(TableBlock)
	require.True(t, ok)
	// type, pickup, dropoff, date; no time or return rows
	assert.Len(t, table.Rows, 4)
}

func TestTripBlocks_RoundTripAddsReturnRows(t *testing.T) {
	ss := testStyles()
	doc := &Document{Trip: Trip{
		Type:       TripRound,
		Pickup:     "Ikeja",
		Dropoff:    "Abuja",
		Date:       "2025-09-01",
		Time:       "09:00",
		ReturnDate: "2025-09-03",
		ReturnTime: "17:00",
	}}

	blocks := tripBlocks(doc, decimal.Zero, currency.NewFormatter(false), ss)
	table := blocks[1].(TableBlock)
	assert.Len(t, table.Rows, 7)
}

func TestLegBlocks_TotalRowCarriesGrandTotal(t *testing.T) {
	ss := testStyles()
	cf := currency.NewFormatter(false)
	legs := []Leg{
		{Pickup: "Lagos", Destination: "Ibadan", Price: decimal.NewFromInt(30000)},
		{Pickup: "Ibadan", Destination: "Lagos", Price: decimal.NewFromInt(45000)},
	}
	total := ComputeTotal(TripMulti, ServiceLine{}, legs)

	blocks := legBlocks(legs, total, cf, ss)
	require.Len(t, blocks, 2)
	table := blocks[1].(TableBlock)
	// header, two legs, total
	require.Len(t, table.Rows, 4)
	last := table.Rows[len(table.Rows)-1]
	assert.Equal(t, "TOTAL:", last.Cells[5].Text)
	assert.Equal(t, "N75,000.00", last.Cells[6].Text)
}

func TestLegBlocks_MissingFieldsRenderNA(t *testing.T) {
	ss := testStyles()
	legs := []Leg{{Price: decimal.NewFromInt(1000)}}

	blocks := legBlocks(legs, decimal.NewFromInt(1000), currency.NewFormatter(false), ss)
	table := blocks[1].(TableBlock)
	legRow := table.Rows[1]
	assert.Equal(t, "N/A", legRow.Cells[1].Text)
	assert.Equal(t, "N/A", legRow.Cells[4].Text)
}

func TestPricingBlocks_DescriptionCarriesRouteAndScope(t *testing.T) {
	ss := testStyles()
	doc := &Document{
		Kind: KindInvoice,
		Trip: Trip{Type: TripSingle},
		Service: ServiceLine{
			Description: "Executive car hire",
			Route:       "Lagos - Abuja",
			Scope:       []string{"Airport pickup", "Onboard refreshments"},
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(50000),
		},
	}
	total := ComputeTotal(TripSingle, doc.Service, nil)

	blocks := pricingBlocks(doc, total, currency.NewFormatter(false), ss)
	table := blocks[1].(TableBlock)
	desc := table.Rows[1].Cells[0].Text
	assert.Contains(t, desc, "Executive car hire")
	assert.Contains(t, desc, "Route: Lagos - Abuja")
	assert.Contains(t, desc, "- Airport pickup")
	assert.Contains(t, desc, "- Onboard refreshments")
}

func TestPricingBlocks_MultiLegAggregates(t *testing.T) {
	ss := testStyles()
	legs := []Leg{
		{Price: decimal.NewFromInt(30000)},
		{Price: decimal.NewFromInt(45000)},
	}
	doc := &Document{
		Kind:    KindInvoice,
		Trip:    Trip{Type: TripMulti},
		Legs:    legs,
		Service: ServiceLine{Description: "Charter"},
	}
	total := ComputeTotal(TripMulti, doc.Service, legs)

	blocks := pricingBlocks(doc, total, currency.NewFormatter(false), ss)
	table := blocks[1].(TableBlock)
	dataRow := table.Rows[1]
	assert.Equal(t, "2", dataRow.Cells[1].Text)
	assert.Equal(t, "N37,500.00", dataRow.Cells[2].Text)
	assert.Equal(t, "N75,000.00", dataRow.Cells[3].Text)
}

func TestPricingBlocks_ReceiptShowsPaymentMethod(t *testing.T) {
	ss := testStyles()
	doc := &Document{
		Kind:          KindReceipt,
		Trip:          Trip{Type: TripSingle},
		Service:       ServiceLine{Quantity: 1, UnitPrice: decimal.NewFromInt(5000)},
		PaymentMethod: "Bank Transfer",
	}

	blocks := pricingBlocks(doc, decimal.NewFromInt(5000), currency.NewFormatter(false), ss)
	require.Len(t, blocks, 4)
	p, ok := blocks[2].(Paragraph)
	require.True(t, ok)
	assert.Equal(t, "Payment Method: Bank Transfer", p.Text)
}

func TestNotesBlocks_DefaultsWhenEmpty(t *testing.T) {
	ss := testStyles()

	blocks := notesBlocks("  ", ss)
	table := blocks[1].(TableBlock)
	assert.Equal(t, DefaultNotes, table.Rows[0].Cells[0].Text)

	custom := notesBlocks("Fuel surcharge included.", ss)
	customTable := custom[1].(TableBlock)
	assert.Equal(t, "Fuel surcharge included.", customTable.Rows[0].Cells[0].Text)
}

func TestSignatureBlocks_NilAssetOmitsSection(t *testing.T) {
	ss := testStyles()

	assert.Nil(t, signatureBlocks(nil, "NextRide Logistics", ss))

	sig := &ImageAsset{Name: "signature", Format: "PNG", WidthPx: 360, HeightPx: 120}
	blocks := signatureBlocks(sig, "NextRide Logistics", ss)
	assert.Len(t, blocks, 4)
}

func TestFooterBlocks_OmitsBlankFields(t *testing.T) {
	ss := testStyles()

	minimal := footerBlocks(CompanyInfo{}, ss)
	// only the courtesy line survives
	assert.Len(t, minimal, 1)

	full := footerBlocks(CompanyInfo{
		BankDetails: "Zenith 1012345678",
		Tagline:     "Safe. Reliable. On time.",
		Description: "Executive car hire",
	}, ss)
	assert.Len(t, full, 4)
}

func TestDateTimePair(t *testing.T) {
	assert.Equal(t, "N/A", dateTimePair("", "09:00"))
	assert.Equal(t, "2025-09-01", dateTimePair("2025-09-01", ""))
	assert.Equal(t, "2025-09-01\n09:00", dateTimePair("2025-09-01", "09:00"))
}
