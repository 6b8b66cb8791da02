package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-manager/internal/domain/customer"
)

type FakeRepository struct {
	ListFunc   func(ctx context.Context) (customer.Customers, error)
	GetFunc    func(ctx context.Context, id customer.ID) (*customer.Customer, error)
	CreateFunc func(ctx context.Context, c customer.Customer) error
	UpdateFunc func(ctx context.Context, id customer.ID, c customer.Customer) error
	DeleteFunc func(ctx context.Context, id customer.ID) error

	calls int
}

func (f *FakeRepository) List(ctx context.Context) (customer.Customers, error) {
	f.calls++
	if f.ListFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ListFunc(ctx)
}
func (f *FakeRepository) Get(ctx context.Context, id customer.ID) (*customer.Customer, error) {
	f.calls++
	if f.GetFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetFunc(ctx, id)
}
func (f *FakeRepository) Create(ctx context.Context, c customer.Customer) error {
	f.calls++
	if f.CreateFunc == nil {
		return errors.New("not used")
	}
	return f.CreateFunc(ctx, c)
}
func (f *FakeRepository) Update(ctx context.Context, id customer.ID, c customer.Customer) error {
	f.calls++
	if f.UpdateFunc == nil {
		return errors.New("not used")
	}
	return f.UpdateFunc(ctx, id, c)
}
func (f *FakeRepository) Delete(ctx context.Context, id customer.ID) error {
	f.calls++
	if f.DeleteFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFunc(ctx, id)
}

func TestListCustomers(t *testing.T) {
	want := customer.Customers{{ID: 1}, {ID: 2}}
	repo := &FakeRepository{
		ListFunc: func(ctx context.Context) (customer.Customers, error) { return want, nil },
	}

	got, err := NewListCustomers(repo).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, repo.calls)
}

func TestGetCustomer_PropagatesError(t *testing.T) {
	boom := errors.New("404")
	repo := &FakeRepository{
		GetFunc: func(ctx context.Context, id customer.ID) (*customer.Customer, error) {
			assert.Equal(t, customer.ID(3), id)
			return nil, boom
		},
	}

	c, err := NewGetCustomer(repo).Execute(context.Background(), 3)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, c)
	assert.Equal(t, 1, repo.calls)
}

func TestCreateCustomer_ClearsID(t *testing.T) {
	var sent customer.Customer
	repo := &FakeRepository{
		CreateFunc: func(ctx context.Context, c customer.Customer) error {
			sent = c
			return nil
		},
	}

	require.NoError(t, NewCreateCustomer(repo).Execute(context.Background(), customer.Customer{ID: 42, City: "Lima"}))
	assert.Zero(t, sent.ID)
	assert.Equal(t, "Lima", sent.City)
	assert.Equal(t, 1, repo.calls)
}

func TestUpdateCustomer(t *testing.T) {
	var gotID customer.ID
	repo := &FakeRepository{
		UpdateFunc: func(ctx context.Context, id customer.ID, c customer.Customer) error {
			gotID = id
			return nil
		},
	}

	require.NoError(t, NewUpdateCustomer(repo).Execute(context.Background(), 8, customer.Customer{ID: 8}))
	assert.Equal(t, customer.ID(8), gotID)
	assert.Equal(t, 1, repo.calls)
}

func TestDeleteCustomer(t *testing.T) {
	boom := errors.New("timeout")
	repo := &FakeRepository{
		DeleteFunc: func(ctx context.Context, id customer.ID) error { return boom },
	}

	assert.ErrorIs(t, NewDeleteCustomer(repo).Execute(context.Background(), 1), boom)
	assert.Equal(t, 1, repo.calls)
}
