package usecases

import (
	"context"

	"customer-manager/internal/domain/customer"
)

type UpdateCustomer struct {
	repo customer.Repository
}

func NewUpdateCustomer(repo customer.Repository) *UpdateCustomer {
	return &UpdateCustomer{repo: repo}
}

// Execute replaces the record stored under id with the full record c.
func (uc *UpdateCustomer) Execute(ctx context.Context, id customer.ID, c customer.Customer) error {
	return uc.repo.Update(ctx, id, c)
}
