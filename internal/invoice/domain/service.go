package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("invoice_not_found")
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrNotEditable       = errors.New("invoice_not_editable")
	ErrInvalidTransition = errors.New("invalid_status_transition")
)

// Summary aggregates the loaded invoices for the dashboard cards.
type Summary struct {
	Invoices    int     `json:"invoices"`
	DraftCount  int     `json:"draftCount"`
	UnpaidCount int     `json:"unpaidCount"`
	PaidCount   int     `json:"paidCount"`
	TotalAmount float64 `json:"totalAmount"`
	TotalPaid   float64 `json:"totalPaid"`
	TotalUnpaid float64 `json:"totalUnpaid"`
}

type Service interface {
	List(ctx context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	// NewDraft returns a fresh draft with default dates and a suggested
	// invoice number.
	NewDraft(ctx context.Context) (Draft, error)
	// Create saves a new invoice from the draft with the given status,
	// embedding a snapshot of the current business profile.
	Create(ctx context.Context, draft Draft, status InvoiceStatus) (Invoice, error)
	// EditDraft opens the invoice for editing. Only draft invoices may be
	// edited; others return ErrNotEditable and nothing changes.
	EditDraft(ctx context.Context, id string) (Draft, error)
	// Save overwrites a draft invoice's sections and advances its status.
	// The stored amount is recomputed from the draft, never trusted.
	Save(ctx context.Context, id string, draft Draft, status InvoiceStatus) (Invoice, error)
	// Transition advances only the status (e.g. unpaid -> paid), recomputing
	// the amount from the stored sections.
	Transition(ctx context.Context, id string, status InvoiceStatus) (Invoice, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (Summary, error)
}
