package domain

// Derived totals. These are total functions over possibly-malformed input:
// every invalid field contributes exactly 0, nothing raises.

// Subtotal sums price x qty over all line items.
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, li := range items {
		sum += li.Total()
	}
	return sum
}

// TaxTotal sums subtotal x percent / 100 over all taxes.
func TaxTotal(subtotal float64, taxes []Tax) float64 {
	var sum float64
	for _, t := range taxes {
		sum += subtotal * t.Percent.Float() / 100
	}
	return sum
}

// FeeTotal sums flat fee amounts.
func FeeTotal(fees []Fee) float64 {
	var sum float64
	for _, f := range fees {
		sum += f.Amount.Float()
	}
	return sum
}

// GrandTotal is subtotal + taxes + fees.
func GrandTotal(items []LineItem, taxes []Tax, fees []Fee) float64 {
	subtotal := Subtotal(items)
	return subtotal + TaxTotal(subtotal, taxes) + FeeTotal(fees)
}
