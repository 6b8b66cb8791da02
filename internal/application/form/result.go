package form

import (
	"customer-manager/internal/domain/customer"
)

// Result is the outcome of a submission: Accepted or Rejected.
type Result interface {
	isResult()
}

type Accepted struct {
	Mode     Mode
	Customer customer.Customer
}

type Rejected struct {
	Errors Errors
}

func (Accepted) isResult() {}
func (Rejected) isResult() {}

// Submit validates every active field of d and returns all failures at once.
// It has no side effects. A nil rules uses the wall clock.
func Submit(d Draft, rules *Rules) Result {
	if rules == nil {
		rules = NewRules(nil)
	}

	var errs Errors
	for _, f := range d.Mode().Fields() {
		errs.Set(f, rules.Validate(f, d.Value(f)))
	}

	return conclude(d, errs)
}

func conclude(d Draft, errs Errors) Result {
	if errs.Len() > 0 {
		return Rejected{Errors: errs}
	}

	c, err := d.build()
	if err != nil {
		errs.Set(BirthDate, MsgBirthDateInvalid)
		return Rejected{Errors: errs}
	}

	return Accepted{Mode: d.Mode(), Customer: c}
}
