package customer

import (
	"context"
)

type Repository interface {
	List(ctx context.Context) (Customers, error)
	Get(ctx context.Context, id ID) (*Customer, error)
	Create(ctx context.Context, c Customer) error
	Update(ctx context.Context, id ID, c Customer) error
	Delete(ctx context.Context, id ID) error
}
