package server

import (
	"io"
	"net/http"
	"strings"

	invoicedomain "github.com/billfold/billfold/internal/invoice/domain"
	"github.com/billfold/billfold/internal/providers/pdf"
	"github.com/gin-gonic/gin"
)

// saveInvoiceRequest carries the draft sections plus the status to save with.
type saveInvoiceRequest struct {
	BillingTo    invoicedomain.BillingTo     `json:"billingTo"`
	Products     []invoicedomain.LineItem    `json:"products"`
	Taxes        []invoicedomain.Tax         `json:"taxes"`
	Fees         []invoicedomain.Fee         `json:"fees"`
	InvoiceNo    string                      `json:"invoiceNo"`
	CreationDate string                      `json:"creationDate"`
	DueDate      string                      `json:"dueDate"`
	Currency     string                      `json:"currency"`
	Status       invoicedomain.InvoiceStatus `json:"status"`
}

func (r saveInvoiceRequest) draft() invoicedomain.Draft {
	return invoicedomain.Draft{
		BillingTo:    r.BillingTo,
		Products:     r.Products,
		Taxes:        r.Taxes,
		Fees:         r.Fees,
		InvoiceNo:    r.InvoiceNo,
		CreationDate: r.CreationDate,
		DueDate:      r.DueDate,
		Currency:     r.Currency,
	}
}

func (r saveInvoiceRequest) status() invoicedomain.InvoiceStatus {
	if r.Status == "" {
		return invoicedomain.StatusDraft
	}
	return r.Status
}

type transitionInvoiceRequest struct {
	Status invoicedomain.InvoiceStatus `json:"status"`
}

func (s *Server) ListInvoices(c *gin.Context) {
	invoices, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoices})
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	invoice, err := s.invoiceSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoice})
}

func (s *Server) NewInvoiceDraft(c *gin.Context) {
	draft, err := s.invoiceSvc.NewDraft(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": draft})
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var req saveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	invoice, err := s.invoiceSvc.Create(c.Request.Context(), req.draft(), req.status())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoice})
}

func (s *Server) EditInvoiceDraft(c *gin.Context) {
	draft, err := s.invoiceSvc.EditDraft(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": draft})
}

func (s *Server) SaveInvoice(c *gin.Context) {
	var req saveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	invoice, err := s.invoiceSvc.Save(c.Request.Context(), strings.TrimSpace(c.Param("id")), req.draft(), req.status())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoice})
}

func (s *Server) TransitionInvoice(c *gin.Context) {
	var req transitionInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	invoice, err := s.invoiceSvc.Transition(c.Request.Context(), strings.TrimSpace(c.Param("id")), req.Status)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoice})
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.invoiceSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
}

func (s *Server) ExportInvoicePDF(c *gin.Context) {
	ctx := c.Request.Context()
	invoice, err := s.invoiceSvc.GetByID(ctx, strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.pdf.GenerateInvoice(ctx, invoice)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	raw, err := io.ReadAll(doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdf.Filename(invoice.InvoiceNo)+`"`)
	c.Data(http.StatusOK, "application/pdf", raw)
}

func (s *Server) GetSummary(c *gin.Context) {
	summary, err := s.invoiceSvc.Summary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}
