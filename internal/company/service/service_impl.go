package service

import (
	"context"

	"github.com/billfold/billfold/internal/company/domain"
	"github.com/billfold/billfold/pkg/collection"
	"github.com/billfold/billfold/pkg/kv"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const storageKey = "company"

type ServiceParam struct {
	fx.In

	Lc  fx.Lifecycle `optional:"true"`
	KV  *kv.Store
	Log *zap.Logger
}

type Service struct {
	log   *zap.Logger
	value *collection.Value[domain.Company]
}

func New(p ServiceParam) domain.Service {
	s := &Service{
		log:   p.Log.Named("company.service"),
		value: collection.NewValue(p.KV, p.Log, storageKey, domain.Company{}),
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

// Load reads the profile from storage once.
func (s *Service) Load(ctx context.Context) error {
	return s.value.Load(ctx)
}

// Close flushes pending writes.
func (s *Service) Close() {
	s.value.Close()
}

func (s *Service) Get(ctx context.Context) (domain.Company, error) {
	_ = ctx
	return s.value.Get()
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCompanyRequest) (domain.Company, error) {
	_ = ctx
	current, err := s.value.Get()
	if err != nil {
		return domain.Company{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Logo != nil {
		current.Logo = *req.Logo
	}
	if req.Address != nil {
		current.Address = *req.Address
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.Phone != nil {
		current.Phone = *req.Phone
	}

	if err := s.value.Set(current); err != nil {
		return domain.Company{}, err
	}
	return current, nil
}

func (s *Service) Clear(ctx context.Context) error {
	_ = ctx
	s.log.Info("clearing business profile")
	return s.value.Set(domain.Company{})
}
