package domain

import "context"

type CreateClientRequest struct {
	Logo    string
	Name    string
	Address string
	Mobile  string
	Email   string
}

// UpdateClientRequest is a partial patch; nil fields stay untouched.
// The id itself is never patched.
type UpdateClientRequest struct {
	Logo    *string
	Name    *string
	Address *string
	Mobile  *string
	Email   *string
}

type Service interface {
	List(ctx context.Context) ([]Client, error)
	Create(ctx context.Context, req CreateClientRequest) (Client, error)
	// Update merges the patch onto the client matching id. An unknown id is
	// absorbed as a no-op; it indicates a caller bug, not a user error.
	Update(ctx context.Context, id string, req UpdateClientRequest) error
	// Delete removes the client matching id. Idempotent.
	Delete(ctx context.Context, id string) error
}
