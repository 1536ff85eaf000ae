package domain

import (
	"testing"
	"time"

	companydomain "github.com/billfold/billfold/internal/company/domain"
	productdomain "github.com/billfold/billfold/internal/product/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft_Defaults(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	d := NewDraft(now)

	assert.Equal(t, "2026-03-14", d.CreationDate)
	assert.Equal(t, "2026-03-21", d.DueDate)
	assert.Equal(t, DefaultCurrency, d.Currency)
	require.Len(t, d.Products, 1)
	assert.True(t, d.Products[0].IsBlank())
	assert.NotEmpty(t, d.Products[0].ID)
	assert.Len(t, d.Taxes, 1)
	assert.Len(t, d.Fees, 1)
}

func TestDraftOf_IsDeepCopy(t *testing.T) {
	inv := Invoice{
		ID:        "inv-1",
		BillingTo: BillingTo{Name: "Acme"},
		Products:  []LineItem{{ID: "li-1", Description: "Design", Price: "100", Qty: "1"}},
		Taxes:     []Tax{{Label: "GST", Percent: "10"}},
		Fees:      []Fee{{Label: "Shipping", Amount: "20"}},
		InvoiceNo: "INV-001",
		Status:    StatusDraft,
	}

	d := DraftOf(inv)
	d.Products[0].Description = "changed"
	d.Taxes[0].Percent = "99"
	d.Fees[0].Amount = "999"
	d.BillingTo.Name = "Other"

	assert.Equal(t, "Design", inv.Products[0].Description)
	assert.Equal(t, Numeric("10"), inv.Taxes[0].Percent)
	assert.Equal(t, Numeric("20"), inv.Fees[0].Amount)
	assert.Equal(t, "Acme", inv.BillingTo.Name)
}

func TestDraftOf_EmptyLineItemsGetsOneBlankRow(t *testing.T) {
	d := DraftOf(Invoice{ID: "inv-1", Status: StatusDraft})
	require.Len(t, d.Products, 1)
	assert.True(t, d.Products[0].IsBlank())
}

func TestApplyProduct_FillsFirstBlankRow(t *testing.T) {
	d := NewDraft(time.Now())
	require.Len(t, d.Products, 1)

	d.ApplyProduct(productdomain.Product{ID: "p-1", Name: "Consulting", Amount: 150})

	require.Len(t, d.Products, 1)
	assert.Equal(t, "Consulting", d.Products[0].Description)
	assert.Equal(t, 150.0, d.Products[0].Price.Float())
	assert.Equal(t, 1.0, d.Products[0].Qty.Float())
}

func TestApplyProduct_AppendsWhenNoBlankRow(t *testing.T) {
	d := NewDraft(time.Now())
	d.Products = []LineItem{{ID: "li-1", Description: "Design", Price: "100", Qty: "2"}}

	d.ApplyProduct(productdomain.Product{ID: "p-1", Name: "Consulting", Amount: 150})

	require.Len(t, d.Products, 2)
	assert.Equal(t, "Design", d.Products[0].Description)
	assert.Equal(t, "Consulting", d.Products[1].Description)
	assert.Equal(t, 1.0, d.Products[1].Qty.Float())
	assert.NotEmpty(t, d.Products[1].ID)
}

func TestRemoveLineItem_LastRowLeavesOneBlankRow(t *testing.T) {
	d := NewDraft(time.Now())
	d.Products = []LineItem{{ID: "li-1", Description: "Design", Price: "100", Qty: "1"}}

	d.RemoveLineItem("li-1")

	require.Len(t, d.Products, 1)
	assert.True(t, d.Products[0].IsBlank())
	assert.NotEqual(t, "li-1", d.Products[0].ID)
}

func TestRemoveLineItem_KeepsRemainingRows(t *testing.T) {
	d := Draft{Products: []LineItem{
		{ID: "li-1", Description: "a"},
		{ID: "li-2", Description: "b"},
	}}

	d.RemoveLineItem("li-1")

	require.Len(t, d.Products, 1)
	assert.Equal(t, "li-2", d.Products[0].ID)
}

func TestRemoveLineItem_UnknownIDIsNoOp(t *testing.T) {
	d := Draft{Products: []LineItem{{ID: "li-1"}}}
	d.RemoveLineItem("nope")
	require.Len(t, d.Products, 1)
	assert.Equal(t, "li-1", d.Products[0].ID)
}

func TestResolve_RecomputesAmountAndSnapshotsCompany(t *testing.T) {
	company := companydomain.Company{Name: "My Studio", Email: "studio@example.com"}
	d := Draft{
		BillingTo: BillingTo{Name: "Acme"},
		Products:  []LineItem{{Price: "100", Qty: "2"}, {Price: "50", Qty: "1"}},
		Taxes:     []Tax{{Percent: "10"}},
		Fees:      []Fee{{Amount: "20"}},
		InvoiceNo: "INV-007",
		Currency:  "INR",
	}

	inv := d.Resolve(company, StatusUnpaid)

	assert.Equal(t, StatusUnpaid, inv.Status)
	assert.InDelta(t, 295.0, inv.Amount, 1e-9)
	assert.Equal(t, company, inv.Company)

	// The resolved invoice is independent of the draft.
	d.Products[0].Price = "9999"
	assert.Equal(t, Numeric("100"), inv.Products[0].Price)
}
