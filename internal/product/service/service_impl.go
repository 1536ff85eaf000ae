package service

import (
	"context"

	"github.com/billfold/billfold/internal/product/domain"
	"github.com/billfold/billfold/pkg/collection"
	"github.com/billfold/billfold/pkg/kv"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const storageKey = "products"

type ServiceParam struct {
	fx.In

	Lc  fx.Lifecycle `optional:"true"`
	KV  *kv.Store
	Log *zap.Logger
}

type Service struct {
	log   *zap.Logger
	store *collection.Store[domain.Product]
}

func New(p ServiceParam) domain.Service {
	s := &Service{
		log: p.Log.Named("product.service"),
		store: collection.New(p.KV, p.Log, collection.Options[domain.Product]{
			Key:      storageKey,
			ID:       func(pr domain.Product) string { return pr.ID },
			AssignID: func(pr domain.Product, id string) domain.Product { pr.ID = id; return pr },
		}),
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

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	_ = ctx
	return s.store.List()
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	_ = ctx
	product, err := s.store.Add(domain.Product{
		ID:     req.ID,
		Name:   req.Name,
		Amount: req.Amount,
	})
	if err != nil {
		return domain.Product{}, err
	}
	s.log.Info("product created", zap.String("id", product.ID))
	return product, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateProductRequest) error {
	_ = ctx
	_, _, err := s.store.Update(id, func(pr *domain.Product) {
		if req.Name != nil {
			pr.Name = *req.Name
		}
		if req.Amount != nil {
			pr.Amount = *req.Amount
		}
	})
	return err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_ = ctx
	return s.store.Delete(id)
}
