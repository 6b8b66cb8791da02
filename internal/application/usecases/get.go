package usecases

import (
	"context"

	"customer-manager/internal/domain/customer"
)

type GetCustomer struct {
	repo customer.Repository
}

func NewGetCustomer(repo customer.Repository) *GetCustomer {
	return &GetCustomer{repo: repo}
}

func (uc *GetCustomer) Execute(ctx context.Context, id customer.ID) (*customer.Customer, error) {
	return uc.repo.Get(ctx, id)
}
