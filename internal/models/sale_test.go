package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmountCoercion(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"150.50", 150.5},
		{" 42 ", 42},
		{"", 0},
		{"abc", 0},
		{"12,50", 0}, // comma decimals are not parseable; coerced, not rejected
		{"-5", -5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAmount(tt.in), "ParseAmount(%q)", tt.in)
	}
}

func TestParseQuantityCoercion(t *testing.T) {
	assert.Equal(t, 4, ParseQuantity("4"))
	assert.Equal(t, 0, ParseQuantity(""))
	assert.Equal(t, 0, ParseQuantity("4.5"))
	assert.Equal(t, 0, ParseQuantity("-2"), "negative pax coerces to 0")
}

func TestEffectiveAmount(t *testing.T) {
	assert.Equal(t, 150.0, (&Sale{Amount: "100", TotalAmount: "150"}).EffectiveAmount())
	assert.Equal(t, 100.0, (&Sale{Amount: "100"}).EffectiveAmount())
	assert.Equal(t, 100.0, (&Sale{Amount: "100", TotalAmount: "  "}).EffectiveAmount())
	assert.Equal(t, 0.0, (&Sale{Amount: "100", TotalAmount: "bad"}).EffectiveAmount(),
		"a present but unparseable total still supersedes the seller amount")
}

func TestNewSalePatchCancelTouchesOnlyStatusAndObservation(t *testing.T) {
	patch := NewSalePatch(ReviewSaleRequest{
		Status:      StatusCancelled,
		Observation: "duplicate booking",
		Folio:       "A-999", // must be ignored on cancel
		TotalAmount: "500",
	})

	sale := &Sale{
		Status: StatusPending, Folio: "A-123", WristbandColor: "Green",
		TotalAmount: "150", Quantity: 4,
	}
	patch.Apply(sale)

	assert.Equal(t, StatusCancelled, sale.Status)
	assert.Equal(t, "duplicate booking", sale.Observation)
	// Previously reconciled fields persist.
	assert.Equal(t, "A-123", sale.Folio)
	assert.Equal(t, "Green", sale.WristbandColor)
	assert.Equal(t, "150", sale.TotalAmount)
	assert.Equal(t, 4, sale.Quantity)
}

func TestNewSalePatchReviewWritesFullFieldSet(t *testing.T) {
	patch := NewSalePatch(ReviewSaleRequest{
		Status:             StatusCompleted,
		EntryTime:          "14:30",
		AdminPaymentMethod: "Tarjeta",
		PackageType:        "VIP",
		Folio:              "A-123",
		WristbandColor:     "Green",
		PaymentProofURL:    "https://img.example/p.png",
		Quantity:           "4",
		TotalAmount:        "150.50",
	})

	sale := &Sale{Status: StatusPending, Observation: "stale note"}
	patch.Apply(sale)

	assert.Equal(t, StatusCompleted, sale.Status)
	assert.Equal(t, "14:30", sale.EntryTime)
	assert.Equal(t, "Tarjeta", sale.AdminPaymentMethod)
	assert.Equal(t, "VIP", sale.PackageType)
	assert.Equal(t, "A-123", sale.Folio)
	assert.Equal(t, "Green", sale.WristbandColor)
	assert.Equal(t, "https://img.example/p.png", sale.PaymentProofURL)
	assert.Equal(t, 4, sale.Quantity)
	assert.Equal(t, "150.50", sale.TotalAmount, "parseable totals are stored as entered")
	assert.Equal(t, "", sale.Observation, "review clears the observation")
}

func TestNewSalePatchCoercesBadNumerics(t *testing.T) {
	patch := NewSalePatch(ReviewSaleRequest{
		Status:      StatusCompleted,
		Quantity:    "four",
		TotalAmount: "n/a",
	})

	sale := &Sale{}
	patch.Apply(sale)

	assert.Equal(t, 0, sale.Quantity)
	assert.Equal(t, "0", sale.TotalAmount)
}

func TestIdentityPatchAltersNothing(t *testing.T) {
	sale := Sale{
		ID: "1", Status: StatusPending, Folio: "A-1", Quantity: 3,
		Amount: "100", TotalAmount: "120", Observation: "note",
	}
	before := sale

	patch := SalePatch{}
	assert.True(t, patch.IsIdentity())
	patch.Apply(&sale)

	assert.Equal(t, before, sale)
}
