package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	invoicedomain "github.com/billfold/billfold/internal/invoice/domain"
	"github.com/billfold/billfold/internal/invoice/format"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, invoice invoicedomain.Invoice) (io.Reader, error) {
	_ = ctx

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	// Company block with optional logo
	logoCol := logoColumn(invoice.Company.Logo)
	m.AddRow(30,
		logoCol,
		col.New(9).Add(
			text.New(invoice.Company.Name, props.Text{Size: 12, Style: fontstyle.Bold}),
			text.New(invoice.Company.Address, props.Text{Size: 9, Top: 7}),
			text.New(invoice.Company.Email, props.Text{Size: 9, Top: 12}),
			text.New(invoice.Company.Phone, props.Text{Size: 9, Top: 17}),
		),
	)

	m.AddRow(12,
		text.NewCol(12, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	// Invoice meta and billed party
	m.AddRow(30,
		col.New(6).Add(
			text.New("Invoice number: "+invoice.InvoiceNo, props.Text{Size: 9, Top: 0}),
			text.New("Date of issue: "+format.Date(invoice.CreationDate), props.Text{Size: 9, Top: 5}),
			text.New("Date due: "+format.Date(invoice.DueDate), props.Text{Size: 9, Top: 10}),
			text.New("Status: "+strings.ToUpper(string(invoice.Status)), props.Text{Size: 9, Top: 15}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(invoice.BillingTo.Name, props.Text{Size: 9, Top: 5}),
			text.New(invoice.BillingTo.Address, props.Text{Size: 9, Top: 10}),
			text.New(invoice.BillingTo.Email, props.Text{Size: 9, Top: 15}),
			text.New(invoice.BillingTo.Mobile, props.Text{Size: 9, Top: 20}),
		),
	)

	// Items table
	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for _, item := range invoice.Products {
		m.AddRow(8,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, format.Money(item.Price.Float(), invoice.Currency), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, fmt.Sprintf("%g", item.Qty.Float()), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, format.Money(item.Total(), invoice.Currency), props.Text{Size: 9, Align: align.Right}),
		)
	}

	subtotal := invoicedomain.Subtotal(invoice.Products)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, format.Money(subtotal, invoice.Currency), props.Text{Size: 9, Align: align.Right}),
	)

	// Itemized taxes: zero-percent rows stay on the edit form but are
	// filtered from the export.
	for _, tax := range invoice.Taxes {
		if !tax.Applies() {
			continue
		}
		label := tax.Label
		if label == "" {
			label = "Tax"
		}
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, label+" ("+format.Percent(tax.Percent.Float())+")", props.Text{Size: 9}),
			text.NewCol(2, format.Money(subtotal*tax.Percent.Float()/100, invoice.Currency), props.Text{Size: 9, Align: align.Right}),
		)
	}
	for _, fee := range invoice.Fees {
		if fee.Amount.IsZero() {
			continue
		}
		label := fee.Label
		if label == "" {
			label = "Fee"
		}
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, label, props.Text{Size: 9}),
			text.NewCol(2, format.Money(fee.Amount.Float(), invoice.Currency), props.Text{Size: 9, Align: align.Right}),
		)
	}

	grandTotal := invoicedomain.GrandTotal(invoice.Products, invoice.Taxes, invoice.Fees)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Grand total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, format.Money(grandTotal, invoice.Currency), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

// logoColumn decodes a data-URI logo into an image column. Undecodable logos
// degrade to an empty spacer column.
func logoColumn(dataURI string) core.Col {
	raw, ext, ok := decodeDataURI(dataURI)
	if !ok {
		return col.New(3)
	}
	return image.NewFromBytesCol(3, raw, ext, props.Rect{Percent: 80})
}

func decodeDataURI(uri string) ([]byte, extension.Type, bool) {
	if !strings.HasPrefix(uri, "data:image/") {
		return nil, "", false
	}
	rest := strings.TrimPrefix(uri, "data:image/")
	semi := strings.Index(rest, ";base64,")
	if semi < 0 {
		return nil, "", false
	}

	var ext extension.Type
	switch strings.ToLower(rest[:semi]) {
	case "png":
		ext = extension.Png
	case "jpg", "jpeg":
		ext = extension.Jpg
	default:
		return nil, "", false
	}

	raw, err := base64.StdEncoding.DecodeString(rest[semi+len(";base64,"):])
	if err != nil {
		return nil, "", false
	}
	return raw, ext, true
}
