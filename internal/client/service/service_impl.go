package service

import (
	"context"

	"github.com/billfold/billfold/internal/client/domain"
	"github.com/billfold/billfold/pkg/collection"
	"github.com/billfold/billfold/pkg/kv"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const storageKey = "clients"

type ServiceParam struct {
	fx.In

	Lc  fx.Lifecycle `optional:"true"`
	KV  *kv.Store
	Log *zap.Logger
}

type Service struct {
	log   *zap.Logger
	store *collection.Store[domain.Client]
}

func New(p ServiceParam) domain.Service {
	s := &Service{
		log: p.Log.Named("client.service"),
		store: collection.New(p.KV, p.Log, collection.Options[domain.Client]{
			Key:      storageKey,
			ID:       func(c domain.Client) string { return c.ID },
			AssignID: func(c domain.Client, id string) domain.Client { c.ID = id; return c },
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

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	_ = ctx
	return s.store.List()
}

func (s *Service) Create(ctx context.Context, req domain.CreateClientRequest) (domain.Client, error) {
	_ = ctx
	client, err := s.store.Add(domain.Client{
		Logo:    req.Logo,
		Name:    req.Name,
		Address: req.Address,
		Mobile:  req.Mobile,
		Email:   req.Email,
	})
	if err != nil {
		return domain.Client{}, err
	}
	s.log.Info("client created", zap.String("id", client.ID))
	return client, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateClientRequest) error {
	_ = ctx
	_, _, err := s.store.Update(id, func(c *domain.Client) {
		if req.Logo != nil {
			c.Logo = *req.Logo
		}
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
		if req.Mobile != nil {
			c.Mobile = *req.Mobile
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
	})
	return err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_ = ctx
	return s.store.Delete(id)
}
