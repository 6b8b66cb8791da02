package customer

import (
	"context"
	"errors"

	"customer-manager/internal/domain/customer"
	"customer-manager/internal/infrastructure/remote"
)

var ErrInvalidID = errors.New("customer id must be a positive integer")

// Repository is the remote data gateway for customers: one HTTP call per
// operation, errors returned as they come.
type Repository struct {
	client *remote.Client
}

func NewRepository(client *remote.Client) customer.Repository {
	return &Repository{client: client}
}

func (r *Repository) List(ctx context.Context) (customer.Customers, error) {
	var cs Customers
	if err := r.client.Get(ctx, PathUsers, &cs); err != nil {
		return nil, err
	}

	return fromRemoteModels(cs), nil
}

func (r *Repository) Get(ctx context.Context, id customer.ID) (*customer.Customer, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	c := new(Customer)
	if err := r.client.Get(ctx, pathUser(id), c); err != nil {
		return nil, err
	}

	return fromRemoteModel(c), nil
}

func (r *Repository) Create(ctx context.Context, c customer.Customer) error {
	m := toRemoteModel(c)
	m.ID = 0

	return r.client.Post(ctx, PathUsers, m)
}

func (r *Repository) Update(ctx context.Context, id customer.ID, c customer.Customer) error {
	if id <= 0 {
		return ErrInvalidID
	}

	m := toRemoteModel(c)
	m.ID = int(id)

	return r.client.Put(ctx, pathUser(id), m)
}

func (r *Repository) Delete(ctx context.Context, id customer.ID) error {
	if id <= 0 {
		return ErrInvalidID
	}

	return r.client.Delete(ctx, pathUser(id))
}
