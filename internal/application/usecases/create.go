package usecases

import (
	"context"

	"customer-manager/internal/domain/customer"
)

type CreateCustomer struct {
	repo customer.Repository
}

func NewCreateCustomer(repo customer.Repository) *CreateCustomer {
	return &CreateCustomer{repo: repo}
}

// Execute persists a new customer. The identifier is assigned remotely, so
// any value left on c is cleared.
func (uc *CreateCustomer) Execute(ctx context.Context, c customer.Customer) error {
	c.ID = 0
	return uc.repo.Create(ctx, c)
}
