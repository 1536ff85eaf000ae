// Package domain contains the product-catalog models.
package domain

// Product is one catalog entry. The id may be caller-supplied; a blank id is
// replaced with a generated one at creation.
type Product struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}
