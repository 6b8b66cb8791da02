package screens

import (
	"context"

	"go.uber.org/zap"

	"customer-manager/internal/application/form"
)

// FormScreen creates a customer when opened without one and edits it
// otherwise.
type FormScreen struct {
	deps      Deps
	nav       Navigator
	onRefresh func(ctx context.Context)
	form      *form.Form
	state     State
}

func NewFormScreen(deps Deps, nav Navigator, p Params) *FormScreen {
	return &FormScreen{
		deps:      deps,
		nav:       nav,
		onRefresh: p.OnRefresh,
		form:      form.New(p.Customer, deps.rules()),
		state:     ready(),
	}
}

func (s *FormScreen) State() State { return s.state }
func (s *FormScreen) Form() *form.Form { return s.form }
func (s *FormScreen) Mode() form.Mode { return s.form.Mode() }

func (s *FormScreen) Set(f form.Field, value string) (form.FieldState, error) {
	return s.form.Set(f, value)
}

// Submit validates every active field; only an Accepted draft reaches the
// create or update use case.
func (s *FormScreen) Submit(ctx context.Context) form.Result {
	res := s.form.Submit()

	acc, ok := res.(form.Accepted)
	if !ok {
		return res
	}

	s.state = loading()
	if err := s.persist(ctx, acc); err != nil {
		s.deps.logger().Error("save customer failed",
			zap.String("mode", acc.Mode.String()),
			zap.Int("id", int(acc.Customer.ID)),
			zap.Error(err),
		)
		s.state = failed(MsgFetchCustomer)
		return res
	}
	s.state = ready()

	refresh(ctx, s.onRefresh)
	s.nav.GoBack()

	return res
}

func (s *FormScreen) persist(ctx context.Context, acc form.Accepted) error {
	if acc.Mode == form.ModeEdit {
		return s.deps.UseCases.Update.Execute(ctx, acc.Customer.ID, acc.Customer)
	}
	return s.deps.UseCases.Create.Execute(ctx, acc.Customer)
}
