package validator

import (
	"strconv"

	"customer-manager/internal/application/form"
	"customer-manager/internal/domain/customer"
)

// ParseID accepts only positive decimal integers.
func ParseID(s string) (customer.ID, bool) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, false
	}
	return customer.ID(id), true
}

// ParseField resolves a field name and checks it is active in mode.
func ParseField(name string, mode form.Mode) (form.Field, string) {
	f, ok := form.ParseField(name)
	if !ok {
		return 0, "unknown field"
	}
	if !mode.Active(f) {
		return 0, "field is not editable in " + mode.String() + " mode"
	}
	return f, ""
}
