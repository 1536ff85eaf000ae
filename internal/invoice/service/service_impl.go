package service

import (
	"context"
	"time"

	companydomain "github.com/billfold/billfold/internal/company/domain"
	"github.com/billfold/billfold/internal/invoice/domain"
	"github.com/billfold/billfold/internal/invoice/format"
	"github.com/billfold/billfold/pkg/collection"
	"github.com/billfold/billfold/pkg/kv"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const storageKey = "invoices"

type ServiceParam struct {
	fx.In

	Lc         fx.Lifecycle `optional:"true"`
	KV         *kv.Store
	Log        *zap.Logger
	CompanySvc companydomain.Service
}

type Service struct {
	log        *zap.Logger
	store      *collection.Store[domain.Invoice]
	companySvc companydomain.Service
	now        func() time.Time
}

func New(p ServiceParam) domain.Service {
	s := &Service{
		log: p.Log.Named("invoice.service"),
		store: collection.New(p.KV, p.Log, collection.Options[domain.Invoice]{
			Key:      storageKey,
			ID:       func(inv domain.Invoice) string { return inv.ID },
			AssignID: func(inv domain.Invoice, id string) domain.Invoice { inv.ID = id; return inv },
		}),
		companySvc: p.CompanySvc,
		now:        time.Now,
	}
	if p.Lc != nil {
		p.Lc.Append(fx.Hook{
			OnStart: s.Load,
			OnStop: func(ctx context.Context) error {
				_ = ctx
				s.Close()
				return nil
			},
		})
	}
	return s
}

func (s *Service) Load(ctx context.Context) error { return s.store.Load(ctx) }
func (s *Service) Close()                         { s.store.Close() }

func (s *Service) List(ctx context.Context) ([]domain.Invoice, error) {
	_ = ctx
	return s.store.List()
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Invoice, error) {
	_ = ctx
	inv, ok, err := s.store.Get(id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if !ok {
		return domain.Invoice{}, domain.ErrNotFound
	}
	return inv, nil
}

func (s *Service) NewDraft(ctx context.Context) (domain.Draft, error) {
	_ = ctx
	count, err := s.store.Len()
	if err != nil {
		return domain.Draft{}, err
	}

	now := s.now()
	draft := domain.NewDraft(now)
	if number, err := format.InvoiceNumber(format.DefaultInvoiceNumberTemplate, now, int64(count)+1); err == nil {
		draft.InvoiceNo = number
	}
	return draft, nil
}

func (s *Service) Create(ctx context.Context, draft domain.Draft, status domain.InvoiceStatus) (domain.Invoice, error) {
	if !status.Valid() {
		return domain.Invoice{}, domain.ErrInvalidStatus
	}

	// Snapshot the business profile at creation time. The copy is frozen:
	// later profile edits never change this invoice.
	company, err := s.companySvc.Get(ctx)
	if err != nil {
		return domain.Invoice{}, err
	}

	invoice, err := s.store.Add(draft.Resolve(company, status))
	if err != nil {
		return domain.Invoice{}, err
	}
	s.log.Info("invoice created",
		zap.String("id", invoice.ID),
		zap.String("status", string(invoice.Status)),
		zap.Float64("amount", invoice.Amount),
	)
	return invoice, nil
}

func (s *Service) EditDraft(ctx context.Context, id string) (domain.Draft, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Draft{}, err
	}
	if !existing.Status.Editable() {
		return domain.Draft{}, domain.ErrNotEditable
	}
	return domain.DraftOf(existing), nil
}

func (s *Service) Save(ctx context.Context, id string, draft domain.Draft, status domain.InvoiceStatus) (domain.Invoice, error) {
	if !status.Valid() {
		return domain.Invoice{}, domain.ErrInvalidStatus
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if !existing.Status.Editable() {
		return domain.Invoice{}, domain.ErrNotEditable
	}
	if !domain.CanTransition(existing.Status, status) {
		return domain.Invoice{}, domain.ErrInvalidTransition
	}

	// Keep the creation-time company snapshot; the edit form never
	// refreshes it from the live profile.
	updated := draft.Resolve(existing.Company, status)
	updated.ID = existing.ID

	saved, _, err := s.store.Update(id, func(inv *domain.Invoice) { *inv = updated })
	if err != nil {
		return domain.Invoice{}, err
	}
	s.log.Info("invoice saved",
		zap.String("id", saved.ID),
		zap.String("status", string(saved.Status)),
		zap.Float64("amount", saved.Amount),
	)
	return saved, nil
}

func (s *Service) Transition(ctx context.Context, id string, status domain.InvoiceStatus) (domain.Invoice, error) {
	if !status.Valid() {
		return domain.Invoice{}, domain.ErrInvalidStatus
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if !domain.CanTransition(existing.Status, status) {
		return domain.Invoice{}, domain.ErrInvalidTransition
	}

	// Recompute from the stored sections; the cached amount is not trusted.
	amount := domain.GrandTotal(existing.Products, existing.Taxes, existing.Fees)
	saved, _, err := s.store.Update(id, func(inv *domain.Invoice) {
		inv.Status = status
		inv.Amount = amount
	})
	if err != nil {
		return domain.Invoice{}, err
	}
	s.log.Info("invoice status changed",
		zap.String("id", id),
		zap.String("from", string(existing.Status)),
		zap.String("to", string(status)),
	)
	return saved, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_ = ctx
	return s.store.Delete(id)
}

func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	invoices, err := s.List(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	summary := domain.Summary{Invoices: len(invoices)}
	for _, inv := range invoices {
		summary.TotalAmount += inv.Amount
		switch inv.Status {
		case domain.StatusDraft:
			summary.DraftCount++
		case domain.StatusUnpaid:
			summary.UnpaidCount++
			summary.TotalUnpaid += inv.Amount
		case domain.StatusPaid:
			summary.PaidCount++
			summary.TotalPaid += inv.Amount
		}
	}
	return summary, nil
}
