package domain

import (
	"time"

	companydomain "github.com/billfold/billfold/internal/company/domain"
	productdomain "github.com/billfold/billfold/internal/product/domain"
	"github.com/google/uuid"
)

// DefaultCurrency is the currency pre-filled on new drafts.
const DefaultCurrency = "INR"

const dateLayout = "2006-01-02"

// Draft is the editable, in-progress state of one invoice, independent of
// persisted storage. It is a plain value: mutating a draft never touches the
// persisted invoice until an explicit save.
type Draft struct {
	BillingTo    BillingTo  `json:"billingTo"`
	Products     []LineItem `json:"products"`
	Taxes        []Tax      `json:"taxes"`
	Fees         []Fee      `json:"fees"`
	InvoiceNo    string     `json:"invoiceNo"`
	CreationDate string     `json:"creationDate"`
	DueDate      string     `json:"dueDate"`
	Currency     string     `json:"currency"`
}

// NewDraft returns a fresh draft dated now, due in seven days, with one blank
// line item, tax, and fee row ready for input.
func NewDraft(now time.Time) Draft {
	return Draft{
		Products:     []LineItem{blankLineItem()},
		Taxes:        []Tax{{}},
		Fees:         []Fee{{}},
		CreationDate: now.Format(dateLayout),
		DueDate:      now.AddDate(0, 0, 7).Format(dateLayout),
		Currency:     DefaultCurrency,
	}
}

// DraftOf returns a deep, independent copy of the invoice's mutable sections.
func DraftOf(inv Invoice) Draft {
	d := Draft{
		BillingTo:    inv.BillingTo,
		Products:     append([]LineItem(nil), inv.Products...),
		Taxes:        append([]Tax(nil), inv.Taxes...),
		Fees:         append([]Fee(nil), inv.Fees...),
		InvoiceNo:    inv.InvoiceNo,
		CreationDate: inv.CreationDate,
		DueDate:      inv.DueDate,
		Currency:     inv.Currency,
	}
	d.EnsureLineItemRow()
	return d
}

// ApplyProduct fills the first blank line-item row with the catalog product,
// or appends a new row when no blank row exists. Qty is set to 1 either way.
// Merging into the first blank row keeps browsing the catalog from stacking
// empty rows.
func (d *Draft) ApplyProduct(p productdomain.Product) {
	for i := range d.Products {
		if d.Products[i].IsBlank() {
			d.Products[i].Description = p.Name
			d.Products[i].Price = NumericFromFloat(p.Amount)
			d.Products[i].Qty = NumericFromInt(1)
			return
		}
	}
	d.Products = append(d.Products, LineItem{
		ID:          uuid.NewString(),
		Description: p.Name,
		Price:       NumericFromFloat(p.Amount),
		Qty:         NumericFromInt(1),
	})
}

// AddLineItem appends a blank row.
func (d *Draft) AddLineItem() {
	d.Products = append(d.Products, blankLineItem())
}

// RemoveLineItem deletes the row matching id. Removing the last remaining
// row replaces it with a single blank row so the form always has a place to
// type.
func (d *Draft) RemoveLineItem(id string) {
	for i := range d.Products {
		if d.Products[i].ID == id {
			d.Products = append(d.Products[:i], d.Products[i+1:]...)
			break
		}
	}
	d.EnsureLineItemRow()
}

// EnsureLineItemRow guarantees at least one row exists.
func (d *Draft) EnsureLineItemRow() {
	if len(d.Products) == 0 {
		d.Products = []LineItem{blankLineItem()}
	}
}

// Subtotal is the draft's line-item subtotal.
func (d Draft) Subtotal() float64 {
	return Subtotal(d.Products)
}

// GrandTotal is the draft's full derived total.
func (d Draft) GrandTotal() float64 {
	return GrandTotal(d.Products, d.Taxes, d.Fees)
}

// Resolve reduces the draft to a persistable invoice with the given status
// and company snapshot. Amount is always recomputed from the draft's current
// sections, never carried over from a cached value.
func (d Draft) Resolve(company companydomain.Company, status InvoiceStatus) Invoice {
	return Invoice{
		BillingTo:    d.BillingTo,
		Products:     append([]LineItem(nil), d.Products...),
		Taxes:        append([]Tax(nil), d.Taxes...),
		Fees:         append([]Fee(nil), d.Fees...),
		InvoiceNo:    d.InvoiceNo,
		CreationDate: d.CreationDate,
		DueDate:      d.DueDate,
		Currency:     d.Currency,
		Status:       status,
		Amount:       d.GrandTotal(),
		Company:      company,
	}
}

func blankLineItem() LineItem {
	return LineItem{ID: uuid.NewString()}
}
