// Package pdf renders a fully-resolved invoice snapshot to an A4 document.
// The core hands over the snapshot; pagination and layout live here.
package pdf

import (
	"context"
	"io"

	invoicedomain "github.com/billfold/billfold/internal/invoice/domain"
	"go.uber.org/fx"
)

type Provider interface {
	GenerateInvoice(ctx context.Context, invoice invoicedomain.Invoice) (io.Reader, error)
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)

// Filename names the exported document after the invoice number.
func Filename(invoiceNo string) string {
	if invoiceNo == "" {
		return "Invoice.pdf"
	}
	return "Invoice_" + invoiceNo + ".pdf"
}
