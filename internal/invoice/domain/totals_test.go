package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unmarshalJSON(raw string, v any) error {
	return json.Unmarshal([]byte(raw), v)
}

func TestSubtotal_SumsPriceTimesQty(t *testing.T) {
	items := []LineItem{
		{Description: "Design work", Price: "100", Qty: "2"},
		{Description: "Hosting", Price: "50", Qty: "1"},
	}
	assert.Equal(t, 250.0, Subtotal(items))
}

func TestSubtotal_InvalidFieldsContributeZero(t *testing.T) {
	items := []LineItem{
		{Description: "ok", Price: "100", Qty: "1"},
		{Description: "missing qty", Price: "40"},
		{Description: "garbage price", Price: "abc", Qty: "3"},
		{Description: "blank", Price: "", Qty: ""},
		{Description: "whitespace", Price: "  ", Qty: "2"},
	}
	assert.Equal(t, 100.0, Subtotal(items))
}

func TestSubtotal_NegativeValuesAreFaithful(t *testing.T) {
	items := []LineItem{
		{Price: "100", Qty: "1"},
		{Price: "-30", Qty: "1"},
	}
	assert.Equal(t, 70.0, Subtotal(items))
}

func TestTaxTotal_FlatPercentages(t *testing.T) {
	taxes := []Tax{
		{Label: "GST", Percent: "10"},
		{Label: "Cess", Percent: "2.5"},
	}
	assert.InDelta(t, 125.0, TaxTotal(1000, taxes), 1e-9)
}

func TestTaxTotal_InvalidPercentContributesZero(t *testing.T) {
	taxes := []Tax{
		{Label: "GST", Percent: "10"},
		{Label: "pending", Percent: ""},
		{Label: "typo", Percent: "ten"},
	}
	assert.InDelta(t, 100.0, TaxTotal(1000, taxes), 1e-9)
}

func TestFeeTotal_InvalidEntriesContributeZero(t *testing.T) {
	fees := []Fee{
		{Label: "Shipping", Amount: "20"},
		{Label: "tbd", Amount: ""},
		{Label: "oops", Amount: "n/a"},
	}
	assert.Equal(t, 20.0, FeeTotal(fees))
}

// Grand total must always decompose into subtotal + taxes + fees, including
// over malformed input.
func TestGrandTotal_AdditiveDecomposition(t *testing.T) {
	items := []LineItem{
		{Price: "100", Qty: "2"},
		{Price: "junk", Qty: "junk"},
		{Price: "-10", Qty: "3"},
	}
	taxes := []Tax{{Percent: "10"}, {Percent: "bad"}}
	fees := []Fee{{Amount: "20"}, {Amount: ""}}

	subtotal := Subtotal(items)
	want := subtotal + TaxTotal(subtotal, taxes) + FeeTotal(fees)
	assert.Equal(t, want, GrandTotal(items, taxes, fees))
}

func TestGrandTotal_Scenario(t *testing.T) {
	items := []LineItem{
		{Price: "100", Qty: "2"},
		{Price: "50", Qty: "1"},
	}
	taxes := []Tax{{Percent: "10"}}
	fees := []Fee{{Amount: "20"}}

	subtotal := Subtotal(items)
	assert.Equal(t, 250.0, subtotal)
	assert.InDelta(t, 25.0, TaxTotal(subtotal, taxes), 1e-9)
	assert.Equal(t, 20.0, FeeTotal(fees))
	assert.InDelta(t, 295.0, GrandTotal(items, taxes, fees), 1e-9)
}

func TestTaxApplies_FiltersZeroPercent(t *testing.T) {
	assert.True(t, Tax{Percent: "10"}.Applies())
	assert.False(t, Tax{Percent: ""}.Applies())
	assert.False(t, Tax{Percent: "0"}.Applies())
	assert.False(t, Tax{Percent: "invalid"}.Applies())
}

func TestNumeric_JSONRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want float64
	}{
		{"number", `{"price": 12.5, "qty": 2}`, 25},
		{"string", `{"price": "12.5", "qty": "2"}`, 25},
		{"null", `{"price": null, "qty": 2}`, 0},
		{"blank", `{"price": "", "qty": "2"}`, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var li LineItem
			assert.NoError(t, unmarshalJSON(tc.in, &li))
			assert.Equal(t, tc.want, li.Total())
		})
	}
}
