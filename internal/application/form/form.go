package form

import (
	"errors"
	"fmt"

	"customer-manager/internal/domain/customer"
)

var ErrFieldNotEditable = errors.New("field is not editable in this mode")

type Status int

const (
	Untouched Status = iota
	Validating
	Valid
	Invalid
)

func (s Status) String() string {
	switch s {
	case Validating:
		return "validating"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return "untouched"
}

type FieldState struct {
	Status  Status
	Message string
}

// Form tracks a draft and the validation state of each field. It is owned by
// a single screen and not safe for concurrent use.
type Form struct {
	draft  Draft
	rules  *Rules
	states [fieldCount]FieldState
}

// New starts a create form for a nil or unsaved customer and an edit form
// otherwise.
func New(initial *customer.Customer, rules *Rules) *Form {
	return NewWithDraft(DraftFor(initial), rules)
}

func NewWithDraft(d Draft, rules *Rules) *Form {
	if rules == nil {
		rules = NewRules(nil)
	}
	return &Form{draft: d, rules: rules}
}

func (f *Form) Mode() Mode { return f.draft.Mode() }
func (f *Form) Draft() Draft { return f.draft }
func (f *Form) Fields() []Field { return f.draft.Mode().Fields() }
func (f *Form) Value(fd Field) string { return f.draft.Value(fd) }

func (f *Form) State(fd Field) FieldState {
	if fd < 0 || fd >= fieldCount {
		return FieldState{}
	}
	return f.states[fd]
}

// Set stores a value and re-validates only that field.
func (f *Form) Set(fd Field, value string) (FieldState, error) {
	if !f.Mode().Active(fd) {
		return FieldState{}, fmt.Errorf("%s: %w", fd, ErrFieldNotEditable)
	}

	f.draft.set(fd, value)
	return f.validate(fd), nil
}

// Submit re-validates every active field. Errors are surfaced for all
// failing fields, not just the first.
func (f *Form) Submit() Result {
	var errs Errors
	for _, fd := range f.Fields() {
		errs.Set(fd, f.validate(fd).Message)
	}

	return conclude(f.draft, errs)
}

// Errors reports the current message of every active field.
func (f *Form) Errors() Errors {
	var errs Errors
	for _, fd := range f.Fields() {
		errs.Set(fd, f.states[fd].Message)
	}
	return errs
}

// validate passes the field through Validating on its way to Valid or
// Invalid. Rules are synchronous, so callers never observe Validating.
func (f *Form) validate(fd Field) FieldState {
	f.states[fd] = FieldState{Status: Validating}

	st := FieldState{Status: Valid}
	if msg := f.rules.Validate(fd, f.draft.Value(fd)); msg != "" {
		st = FieldState{Status: Invalid, Message: msg}
	}
	f.states[fd] = st

	return st
}
