package screens

import (
	"context"

	"customer-manager/internal/domain/customer"
)

type Route string

const (
	RouteList   Route = "UserList"
	RouteDetail Route = "UserDetail"
	RouteEdit   Route = "EditUser"
	RouteCreate Route = "CreateUser"

	// RouteBack is what Recorder logs for GoBack.
	RouteBack Route = "back"
)

// Params travel with a navigation. OnRefresh lets the destination ask the
// screen it came from to re-fetch after a mutation.
type Params struct {
	CustomerID customer.ID
	Customer   *customer.Customer
	OnRefresh  func(ctx context.Context)
}

type Navigator interface {
	Navigate(route Route, p Params)
	GoBack()
}

// Recorder is a Navigator that only remembers where it was sent.
type Recorder struct {
	Routes []Route
	Params []Params
}

func (r *Recorder) Navigate(route Route, p Params) {
	r.Routes = append(r.Routes, route)
	r.Params = append(r.Params, p)
}

func (r *Recorder) GoBack() {
	r.Routes = append(r.Routes, RouteBack)
	r.Params = append(r.Params, Params{})
}

// Last returns the most recent navigation, or "" when there was none.
func (r *Recorder) Last() (Route, Params) {
	if len(r.Routes) == 0 {
		return "", Params{}
	}
	i := len(r.Routes) - 1
	return r.Routes[i], r.Params[i]
}

func refresh(ctx context.Context, fn func(ctx context.Context)) {
	if fn != nil {
		fn(ctx)
	}
}
