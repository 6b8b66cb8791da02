package screens

import (
	"context"

	"go.uber.org/zap"

	"customer-manager/internal/application/form"
	"customer-manager/internal/domain/customer"
)

type DeleteOutcome int

const (
	// DeleteSkipped: nothing loaded or the birth date cannot be judged.
	DeleteSkipped DeleteOutcome = iota
	DeleteRejected
	DeleteFailed
	Deleted
)

func (o DeleteOutcome) String() string {
	switch o {
	case DeleteRejected:
		return "rejected"
	case DeleteFailed:
		return "failed"
	case Deleted:
		return "deleted"
	}
	return "skipped"
}

type DetailScreen struct {
	deps            Deps
	nav             Navigator
	id              customer.ID
	onRefresh       func(ctx context.Context)
	state           State
	customer        *customer.Customer
	err             error
	shouldNotDelete bool
}

func NewDetailScreen(deps Deps, nav Navigator, p Params) *DetailScreen {
	return &DetailScreen{
		deps:      deps,
		nav:       nav,
		id:        p.CustomerID,
		onRefresh: p.OnRefresh,
		state:     loading(),
	}
}

func (s *DetailScreen) State() State { return s.state }
func (s *DetailScreen) Customer() *customer.Customer { return s.customer }
func (s *DetailScreen) ShouldNotDelete() bool { return s.shouldNotDelete }

// Err is the error behind the last failed Load, nil otherwise. The state
// message stays generic whatever it is.
func (s *DetailScreen) Err() error { return s.err }

// Age of the loaded customer today, 0 when unknown.
func (s *DetailScreen) Age() int {
	if s.customer == nil || s.customer.BirthDate.IsZero() {
		return 0
	}
	return form.Age(s.customer.BirthDate, s.deps.rules().Now())
}

func (s *DetailScreen) Load(ctx context.Context) State {
	s.state = loading()

	c, err := s.deps.UseCases.Get.Execute(ctx, s.id)
	s.err = err
	if err != nil {
		s.deps.logger().Error("fetch customer failed", zap.Int("id", int(s.id)), zap.Error(err))
		s.customer = nil
		s.state = failed(MsgFetchCustomer)
		return s.state
	}
	if c == nil {
		s.customer = nil
		s.state = failed(MsgNotFound)
		return s.state
	}

	s.customer = c
	s.state = ready()
	return s.state
}

func (s *DetailScreen) Refresh(ctx context.Context) { s.Load(ctx) }

func (s *DetailScreen) Edit() {
	if s.customer == nil {
		return
	}
	c := *s.customer
	s.nav.Navigate(RouteEdit, Params{CustomerID: c.ID, Customer: &c, OnRefresh: s.Refresh})
}

// Delete sends the deletion only for customers aged 80 or more. Younger
// customers raise the ShouldNotDelete flag and nothing is sent.
func (s *DetailScreen) Delete(ctx context.Context) DeleteOutcome {
	if s.customer == nil {
		return DeleteSkipped
	}

	decision, err := form.CheckDeletion(*s.customer, s.deps.rules().Now())
	if err != nil {
		s.deps.logger().Error("delete check failed", zap.Int("id", int(s.id)), zap.Error(err))
		return DeleteSkipped
	}
	if !decision.Allowed {
		s.shouldNotDelete = true
		return DeleteRejected
	}
	s.shouldNotDelete = false

	s.state = loading()
	if err = s.deps.UseCases.Delete.Execute(ctx, s.customer.ID); err != nil {
		s.deps.logger().Error("delete customer failed", zap.Int("id", int(s.id)), zap.Error(err))
		s.state = failed(MsgFetchCustomer)
		return DeleteFailed
	}
	s.state = ready()

	refresh(ctx, s.onRefresh)
	s.nav.GoBack()

	return Deleted
}

// Leave asks the previous screen to refresh before going back.
func (s *DetailScreen) Leave(ctx context.Context) {
	refresh(ctx, s.onRefresh)
	s.nav.GoBack()
}
