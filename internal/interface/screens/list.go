package screens

import (
	"context"

	"go.uber.org/zap"

	"customer-manager/internal/domain/customer"
)

type ListScreen struct {
	deps      Deps
	nav       Navigator
	state     State
	customers customer.Customers
}

func NewListScreen(deps Deps, nav Navigator) *ListScreen {
	return &ListScreen{deps: deps, nav: nav, state: loading()}
}

func (s *ListScreen) State() State { return s.state }
func (s *ListScreen) Customers() customer.Customers { return s.customers }

// Load fetches all customers. On failure no stale list is kept.
func (s *ListScreen) Load(ctx context.Context) State {
	s.state = loading()

	cs, err := s.deps.UseCases.List.Execute(ctx)
	if err != nil {
		s.deps.logger().Error("fetch customers failed", zap.Error(err))
		s.customers = nil
		s.state = failed(MsgFetchCustomers)
		return s.state
	}

	s.customers = cs
	s.state = ready()
	return s.state
}

func (s *ListScreen) Refresh(ctx context.Context) { s.Load(ctx) }

func (s *ListScreen) Select(id customer.ID) {
	s.nav.Navigate(RouteDetail, Params{CustomerID: id, OnRefresh: s.Refresh})
}

func (s *ListScreen) Add() {
	s.nav.Navigate(RouteCreate, Params{OnRefresh: s.Refresh})
}
