package form

import (
	"customer-manager/internal/domain/customer"
)

// Draft is an in-progress, possibly invalid customer. It is either a
// *NewDraft or an *ExistingDraft.
type Draft interface {
	Mode() Mode
	Value(f Field) string
	set(f Field, v string)
	build() (customer.Customer, error)
}

// NewDraft is a customer that does not exist remotely yet. Every field is
// required.
type NewDraft struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	City      string
	DNI       string
	Gender    string
	BirthDate string // YYYY-MM-DD
}

func (d *NewDraft) Mode() Mode { return ModeCreate }

func (d *NewDraft) ref(f Field) *string {
	switch f {
	case FirstName:
		return &d.FirstName
	case LastName:
		return &d.LastName
	case Phone:
		return &d.Phone
	case Email:
		return &d.Email
	case City:
		return &d.City
	case DNI:
		return &d.DNI
	case Gender:
		return &d.Gender
	case BirthDate:
		return &d.BirthDate
	}
	return nil
}

func (d *NewDraft) Value(f Field) string {
	if p := d.ref(f); p != nil {
		return *p
	}
	return ""
}

func (d *NewDraft) set(f Field, v string) {
	if p := d.ref(f); p != nil {
		*p = v
	}
}

func (d *NewDraft) build() (customer.Customer, error) {
	bd, err := customer.ParseDate(d.BirthDate)
	if err != nil {
		return customer.Customer{}, err
	}

	return customer.Customer{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Phone:     d.Phone,
		Email:     d.Email,
		City:      d.City,
		DNI:       d.DNI,
		Gender:    d.Gender,
		BirthDate: bd,
	}, nil
}

// ExistingDraft edits a persisted customer. Only names, phone, email and city
// can change; the rest is carried over from Original as fetched.
type ExistingDraft struct {
	Original  customer.Customer
	FirstName string
	LastName  string
	Phone     string
	Email     string
	City      string
}

func NewExistingDraft(c customer.Customer) *ExistingDraft {
	return &ExistingDraft{
		Original:  c,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
		City:      c.City,
	}
}

func (d *ExistingDraft) Mode() Mode { return ModeEdit }

func (d *ExistingDraft) ID() customer.ID { return d.Original.ID }

func (d *ExistingDraft) ref(f Field) *string {
	switch f {
	case FirstName:
		return &d.FirstName
	case LastName:
		return &d.LastName
	case Phone:
		return &d.Phone
	case Email:
		return &d.Email
	case City:
		return &d.City
	}
	return nil
}

// Value also reports the fixed fields so callers can display them.
func (d *ExistingDraft) Value(f Field) string {
	switch f {
	case DNI:
		return d.Original.DNI
	case Gender:
		return d.Original.Gender
	case BirthDate:
		return d.Original.BirthDate.String()
	}
	if p := d.ref(f); p != nil {
		return *p
	}
	return ""
}

func (d *ExistingDraft) set(f Field, v string) {
	if p := d.ref(f); p != nil {
		*p = v
	}
}

func (d *ExistingDraft) build() (customer.Customer, error) {
	c := d.Original
	c.FirstName = d.FirstName
	c.LastName = d.LastName
	c.Phone = d.Phone
	c.Email = d.Email
	c.City = d.City

	return c, nil
}

// DraftFor starts a draft from a fetched customer, or an empty NewDraft
// when c is nil or not yet persisted.
func DraftFor(c *customer.Customer) Draft {
	if c != nil && c.Persisted() {
		return NewExistingDraft(*c)
	}
	return &NewDraft{}
}
