package customer

import (
	"time"

	"customer-manager/internal/application/form"
	domain "customer-manager/internal/domain/customer"
)

// ToResponse recomputes age as of today instead of trusting the remote.
func ToResponse(c domain.Customer, today time.Time) Response {
	var r = Response{
		ID:        int(c.ID),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		DNI:       c.DNI,
		Phone:     c.Phone,
		Email:     c.Email,
		City:      c.City,
		Gender:    c.Gender,
		BirthDate: c.BirthDate,
		Deleted:   c.Deleted,
	}
	if !c.BirthDate.IsZero() {
		r.Age = form.Age(c.BirthDate, today)
	}

	return r
}

func ToResponses(cs domain.Customers, today time.Time) Responses {
	rs := make(Responses, 0, len(cs))
	for _, c := range cs {
		rs = append(rs, ToResponse(*c, today))
	}

	return rs
}

func (r Request) Value(f form.Field) string {
	switch f {
	case form.FirstName:
		return r.FirstName
	case form.LastName:
		return r.LastName
	case form.Phone:
		return r.Phone
	case form.Email:
		return r.Email
	case form.City:
		return r.City
	case form.DNI:
		return r.DNI
	case form.Gender:
		return r.Gender
	case form.BirthDate:
		return r.BirthDate
	}
	return ""
}

func ParseMode(s string) form.Mode {
	if s == form.ModeEdit.String() {
		return form.ModeEdit
	}
	return form.ModeCreate
}
