package ports

import (
	"context"

	"customer-manager/internal/domain/customer"
)

type (
	CustomerLister interface {
		Execute(ctx context.Context) (customer.Customers, error)
	}
	CustomerGetter interface {
		Execute(ctx context.Context, id customer.ID) (*customer.Customer, error)
	}
	CustomerCreator interface {
		Execute(ctx context.Context, c customer.Customer) error
	}
	CustomerUpdater interface {
		Execute(ctx context.Context, id customer.ID, c customer.Customer) error
	}
	CustomerDeleter interface {
		Execute(ctx context.Context, id customer.ID) error
	}
)
