// Package domain contains the invoice models, the editable draft, the
// derived-totals functions, and the status machine.
package domain

import (
	clientdomain "github.com/billfold/billfold/internal/client/domain"
	companydomain "github.com/billfold/billfold/internal/company/domain"
)

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	StatusDraft  InvoiceStatus = "draft"
	StatusUnpaid InvoiceStatus = "unpaid"
	StatusPaid   InvoiceStatus = "paid"
)

// BillingTo is the billed party embedded into an invoice. It is a copy of a
// client's fields, not a reference: later edits to the client never propagate.
type BillingTo struct {
	ID      string `json:"id,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
}

// LineItem is one product/service row on an invoice.
type LineItem struct {
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description"`
	Price       Numeric `json:"price"`
	Qty         Numeric `json:"qty"`
}

// Total is the line total. Invalid price or qty counts as 0.
func (li LineItem) Total() float64 {
	return li.Price.Float() * li.Qty.Float()
}

// IsBlank reports an untouched row: no description, price, or qty.
func (li LineItem) IsBlank() bool {
	return li.Description == "" && li.Price.IsZero() && li.Qty.IsZero()
}

// Tax is a flat percentage applied to the subtotal.
type Tax struct {
	Label   string  `json:"name"`
	Percent Numeric `json:"percent"`
}

// Applies reports whether the tax contributes to the itemized display.
// Zero-percent rows stay visible on the form but are filtered from the
// itemized list.
func (t Tax) Applies() bool {
	return !t.Percent.IsZero()
}

// Fee is a flat amount added after taxes.
type Fee struct {
	Label  string  `json:"name"`
	Amount Numeric `json:"amount"`
}

// Invoice is a persisted invoice. Amount caches the grand total as of the
// last save; it is recomputed on every save and never trusted as input.
// Company is a snapshot of the business profile at creation time.
type Invoice struct {
	ID           string                `json:"id"`
	BillingTo    BillingTo             `json:"billingTo"`
	Products     []LineItem            `json:"products"`
	Taxes        []Tax                 `json:"taxes"`
	Fees         []Fee                 `json:"fees"`
	InvoiceNo    string                `json:"invoiceNo"`
	CreationDate string                `json:"creationDate"` // YYYY-MM-DD
	DueDate      string                `json:"dueDate"`      // YYYY-MM-DD
	Currency     string                `json:"currency"`
	Status       InvoiceStatus         `json:"status"`
	Amount       float64               `json:"amount"`
	Company      companydomain.Company `json:"company"`
}

// BillingToFromClient copies a client's fields into a billed party.
func BillingToFromClient(c clientdomain.Client) BillingTo {
	return BillingTo{
		ID:      c.ID,
		Logo:    c.Logo,
		Name:    c.Name,
		Address: c.Address,
		Mobile:  c.Mobile,
		Email:   c.Email,
	}
}
