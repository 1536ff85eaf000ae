package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	invoicedomain "github.com/billfold/billfold/internal/invoice/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fakeInvoiceService struct {
	invoice       invoicedomain.Invoice
	getErr        error
	saveErr       error
	transitionErr error

	lastSaveStatus invoicedomain.InvoiceStatus
	createCalls    int
}

func (f *fakeInvoiceService) List(ctx context.Context) ([]invoicedomain.Invoice, error) {
	_ = ctx
	return []invoicedomain.Invoice{f.invoice}, nil
}

func (f *fakeInvoiceService) GetByID(ctx context.Context, id string) (invoicedomain.Invoice, error) {
	_ = ctx
	_ = id
	if f.getErr != nil {
		return invoicedomain.Invoice{}, f.getErr
	}
	return f.invoice, nil
}

func (f *fakeInvoiceService) NewDraft(ctx context.Context) (invoicedomain.Draft, error) {
	_ = ctx
	return invoicedomain.Draft{}, nil
}

func (f *fakeInvoiceService) Create(ctx context.Context, draft invoicedomain.Draft, status invoicedomain.InvoiceStatus) (invoicedomain.Invoice, error) {
	f.createCalls++
	f.lastSaveStatus = status
	_ = ctx
	_ = draft
	return f.invoice, nil
}

func (f *fakeInvoiceService) EditDraft(ctx context.Context, id string) (invoicedomain.Draft, error) {
	_ = ctx
	_ = id
	return invoicedomain.DraftOf(f.invoice), nil
}

func (f *fakeInvoiceService) Save(ctx context.Context, id string, draft invoicedomain.Draft, status invoicedomain.InvoiceStatus) (invoicedomain.Invoice, error) {
	_ = ctx
	_ = id
	_ = draft
	if f.saveErr != nil {
		return invoicedomain.Invoice{}, f.saveErr
	}
	f.lastSaveStatus = status
	return f.invoice, nil
}

func (f *fakeInvoiceService) Transition(ctx context.Context, id string, status invoicedomain.InvoiceStatus) (invoicedomain.Invoice, error) {
	_ = ctx
	_ = id
	_ = status
	if f.transitionErr != nil {
		return invoicedomain.Invoice{}, f.transitionErr
	}
	return f.invoice, nil
}

func (f *fakeInvoiceService) Delete(ctx context.Context, id string) error {
	_ = ctx
	_ = id
	return nil
}

func (f *fakeInvoiceService) Summary(ctx context.Context) (invoicedomain.Summary, error) {
	_ = ctx
	return invoicedomain.Summary{Invoices: 1}, nil
}

type fakePDFProvider struct{}

func (fakePDFProvider) GenerateInvoice(ctx context.Context, inv invoicedomain.Invoice) (io.Reader, error) {
	_ = ctx
	_ = inv
	return strings.NewReader("%PDF-1.7 fake"), nil
}

func newTestRouter(svc *fakeInvoiceService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	srv := &Server{
		log:        zap.NewNop(),
		invoiceSvc: svc,
		pdf:        fakePDFProvider{},
	}

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	srv.engine = router
	srv.RegisterAPIRoutes()
	return router
}

func decodeError(t *testing.T, body *bytes.Buffer) errorPayload {
	t.Helper()
	var resp errorResponse
	if err := json.Unmarshal(body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp.Error
}

func TestGetInvoiceByIDNotFoundReturns404(t *testing.T) {
	router := newTestRouter(&fakeInvoiceService{getErr: invoicedomain.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/missing", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if got := decodeError(t, resp.Body); got.Type != "not_found" {
		t.Fatalf("expected error type not_found, got %q", got.Type)
	}
}

func TestSaveInvoiceNotEditableReturns409(t *testing.T) {
	router := newTestRouter(&fakeInvoiceService{saveErr: invoicedomain.ErrNotEditable})

	req := httptest.NewRequest(http.MethodPut, "/api/invoices/inv-1", bytes.NewBufferString(`{"status":"unpaid"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
	got := decodeError(t, resp.Body)
	if got.Message != "Only draft invoices can be edited." {
		t.Fatalf("unexpected message: %q", got.Message)
	}
}

func TestTransitionInvoiceInvalidReturns409(t *testing.T) {
	router := newTestRouter(&fakeInvoiceService{transitionErr: invoicedomain.ErrInvalidTransition})

	req := httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/status", bytes.NewBufferString(`{"status":"draft"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
	if got := decodeError(t, resp.Body); got.Type != "invalid_transition" {
		t.Fatalf("expected error type invalid_transition, got %q", got.Type)
	}
}

func TestCreateInvoiceDefaultsStatusToDraft(t *testing.T) {
	svc := &fakeInvoiceService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(`{"invoiceNo":"INV-1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.createCalls != 1 {
		t.Fatalf("expected one create call, got %d", svc.createCalls)
	}
	if svc.lastSaveStatus != invoicedomain.StatusDraft {
		t.Fatalf("expected default status draft, got %q", svc.lastSaveStatus)
	}
}

func TestCreateInvoiceMalformedBodyReturns400(t *testing.T) {
	svc := &fakeInvoiceService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if svc.createCalls != 0 {
		t.Fatal("expected create not to be called")
	}
}

func TestExportInvoicePDFSetsDownloadHeaders(t *testing.T) {
	svc := &fakeInvoiceService{invoice: invoicedomain.Invoice{ID: "inv-1", InvoiceNo: "INV-0042"}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/inv-1/pdf", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != `attachment; filename="Invoice_INV-0042.pdf"` {
		t.Fatalf("unexpected Content-Disposition: %q", cd)
	}
	if !strings.HasPrefix(resp.Body.String(), "%PDF") {
		t.Fatalf("expected PDF payload, got %q", resp.Body.String())
	}
}
