package renderer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal_SingleTrip(t *testing.T) {
	line := ServiceLine{Quantity: 1, UnitPrice: decimal.NewFromInt(50000)}

	total := ComputeTotal(TripSingle, line, nil)
	assert.True(t, decimal.NewFromInt(50000).Equal(total))
}

func TestComputeTotal_RoundTripDoubles(t *testing.T) {
	line := ServiceLine{Quantity: 1, UnitPrice: decimal.NewFromInt(50000)}

	total := ComputeTotal(TripRound, line, nil)
	assert.True(t, decimal.NewFromInt(100000).Equal(total))
}

func TestComputeTotal_RoundTripWithQuantity(t *testing.T) {
	line := ServiceLine{Quantity: 3, UnitPrice: decimal.NewFromFloat(7500)}

	total := ComputeTotal(TripRound, line, nil)
	assert.True(t, decimal.NewFromInt(45000).Equal(total))
}

func TestComputeTotal_ZeroQuantityDefaultsToOne(t *testing.T) {
	line := ServiceLine{Quantity: 0, UnitPrice: decimal.NewFromInt(25000)}

	total := ComputeTotal(TripSingle, line, nil)
	assert.True(t, decimal.NewFromInt(25000).Equal(total))
}

func TestComputeTotal_MultiTripSumsLegs(t *testing.T) {
	legs := []Leg{
		{Price: decimal.NewFromInt(30000)},
		{Price: decimal.NewFromInt(45000)},
		{Price: decimal.NewFromFloat(12500.50)},
	}

	total := ComputeTotal(TripMulti, ServiceLine{UnitPrice: decimal.NewFromInt(999)}, legs)
	assert.True(t, decimal.NewFromFloat(87500.50).Equal(total))
}

func TestComputeTotal_MultiTripNoLegs(t *testing.T) {
	total := ComputeTotal(TripMulti, ServiceLine{}, nil)
	assert.True(t, total.IsZero())
}

func TestParseScope_StripsBulletsAndBlanks(t *testing.T) {
	text := "- Airport pickup\n* Luggage assistance\n\n  • Onboard refreshments  \nplain line"

	got := ParseScope(text)
	assert.Equal(t, []string{
		"Airport pickup",
		"Luggage assistance",
		"Onboard refreshments",
		"plain line",
	}, got)
}

func TestParseScope_Empty(t *testing.T) {
	assert.Empty(t, ParseScope(""))
	assert.Empty(t, ParseScope("  \n\n  "))
}

func TestDocumentKind_Labels(t *testing.T) {
	assert.Equal(t, "INVOICE", KindInvoice.Label())
	assert.Equal(t, "RECEIPT", KindReceipt.Label())
	assert.Equal(t, "INV", KindInvoice.NumberPrefix())
	assert.Equal(t, "RCT", KindReceipt.NumberPrefix())
	assert.Equal(t, "BILL TO:", KindInvoice.PartyLabel())
	assert.Equal(t, "RECEIVED FROM:", KindReceipt.PartyLabel())
}

func TestTripType_HasReturn(t *testing.T) {
	assert.False(t, TripSingle.HasReturn())
	assert.True(t, TripRound.HasReturn())
	assert.False(t, TripMulti.HasReturn())
}
