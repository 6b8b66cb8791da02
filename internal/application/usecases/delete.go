package usecases

import (
	"context"

	"customer-manager/internal/domain/customer"
)

type DeleteCustomer struct {
	repo customer.Repository
}

func NewDeleteCustomer(repo customer.Repository) *DeleteCustomer {
	return &DeleteCustomer{repo: repo}
}

func (uc *DeleteCustomer) Execute(ctx context.Context, id customer.ID) error {
	return uc.repo.Delete(ctx, id)
}
