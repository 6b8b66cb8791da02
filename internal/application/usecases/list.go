package usecases

import (
	"context"

	"customer-manager/internal/domain/customer"
)

type ListCustomers struct {
	repo customer.Repository
}

func NewListCustomers(repo customer.Repository) *ListCustomers {
	return &ListCustomers{repo: repo}
}

func (uc *ListCustomers) Execute(ctx context.Context) (customer.Customers, error) {
	return uc.repo.List(ctx)
}
