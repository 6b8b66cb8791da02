package form

import (
	"errors"
	"time"

	"customer-manager/internal/domain/customer"
)

const (
	MinCustomerAge = 18
	MinDeletionAge = 80
)

var ErrBirthDateUnknown = errors.New("customer birth date is unknown")

// Age counts whole years from birth to the calendar date of today, one less
// while this year's birthday is still ahead.
func Age(birth customer.Date, today time.Time) int {
	age := today.Year() - birth.Year
	if today.Month() < birth.Month || (today.Month() == birth.Month && today.Day() < birth.Day) {
		age--
	}
	return age
}

type DeletionDecision struct {
	Age     int
	Allowed bool
}

// CheckDeletion gates deletion on computed age. A customer without a birth
// date cannot be judged and gets ErrBirthDateUnknown.
func CheckDeletion(c customer.Customer, today time.Time) (DeletionDecision, error) {
	if c.BirthDate.IsZero() {
		return DeletionDecision{}, ErrBirthDateUnknown
	}

	age := Age(c.BirthDate, today)
	return DeletionDecision{
		Age:     age,
		Allowed: age >= MinDeletionAge,
	}, nil
}
