package domain

import "context"

// UpdateCompanyRequest is a partial patch; nil fields stay untouched.
type UpdateCompanyRequest struct {
	Name    *string
	Logo    *string
	Address *string
	Email   *string
	Phone   *string
}

type Service interface {
	Get(ctx context.Context) (Company, error)
	Update(ctx context.Context, req UpdateCompanyRequest) (Company, error)
	Clear(ctx context.Context) error
}
