package domain

import "context"

type CreateProductRequest struct {
	ID     string // optional; generated when blank
	Name   string
	Amount float64
}

type UpdateProductRequest struct {
	Name   *string
	Amount *float64
}

type Service interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, req CreateProductRequest) (Product, error)
	Update(ctx context.Context, id string, req UpdateProductRequest) error
	Delete(ctx context.Context, id string) error
}
