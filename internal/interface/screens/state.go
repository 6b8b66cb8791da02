package screens

import (
	"go.uber.org/zap"

	"customer-manager/internal/application/form"
	"customer-manager/internal/application/ports"
)

const (
	MsgFetchCustomers = "Error al obtener los clientes."
	MsgFetchCustomer  = "Error al obtener los datos del usuario."
	MsgNotFound       = "No se encontró información del usuario."
	MsgCannotDelete   = "No se puede eliminar este usuario"
)

type Phase int

const (
	Loading Phase = iota
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "loading"
}

// State is what a screen shows: a spinner, its content, or one error
// message in place of the content.
type State struct {
	Phase   Phase
	Message string
}

func loading() State { return State{Phase: Loading} }
func ready() State { return State{Phase: Ready} }
func failed(msg string) State { return State{Phase: Failed, Message: msg} }

type UseCases struct {
	List   ports.CustomerLister
	Get    ports.CustomerGetter
	Create ports.CustomerCreator
	Update ports.CustomerUpdater
	Delete ports.CustomerDeleter
}

// Deps is shared by every screen. Rules also provides the clock.
type Deps struct {
	UseCases UseCases
	Rules    *form.Rules
	Logger   *zap.Logger
}

func (d Deps) rules() *form.Rules {
	if d.Rules == nil {
		return form.NewRules(nil)
	}
	return d.Rules
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
