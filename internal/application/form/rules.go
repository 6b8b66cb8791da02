package form

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"customer-manager/internal/domain/customer"
)

const (
	MsgName             = "Debe contener solo letras y tener entre 2 y 50 caracteres."
	MsgPhone            = "Debe tener exactamente 9 dígitos."
	MsgEmail            = "Debe ser un correo electrónico válido."
	MsgCity             = "La ciudad no puede estar vacía."
	MsgDNI              = "Debe tener exactamente 8 dígitos."
	MsgGender           = "El género es obligatorio."
	MsgBirthDateMinor   = "Debes ser mayor de 18 años."
	MsgBirthDateInvalid = "Fecha de nacimiento inválida."
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]{2,50}$`)
	phoneRe = regexp.MustCompile(`^[0-9]{9}$`)
	dniRe   = regexp.MustCompile(`^[0-9]{8}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Rules validates single field values. An empty result means valid.
type Rules struct {
	now func() time.Time
}

// NewRules uses now as the clock for age checks; nil means time.Now.
func NewRules(now func() time.Time) *Rules {
	if now == nil {
		now = time.Now
	}
	return &Rules{now: now}
}

func (r *Rules) Now() time.Time { return r.now() }

func (r *Rules) Validate(f Field, value string) string {
	switch f {
	case FirstName, LastName:
		if !nameRe.MatchString(norm.NFC.String(value)) {
			return MsgName
		}
	case Phone:
		if !phoneRe.MatchString(value) {
			return MsgPhone
		}
	case Email:
		if !emailRe.MatchString(value) {
			return MsgEmail
		}
	case City:
		if strings.TrimSpace(value) == "" {
			return MsgCity
		}
	case DNI:
		if !dniRe.MatchString(value) {
			return MsgDNI
		}
	case Gender:
		if value == "" {
			return MsgGender
		}
	case BirthDate:
		d, err := customer.ParseDate(value)
		if err != nil {
			return MsgBirthDateInvalid
		}
		if Age(d, r.now()) < MinCustomerAge {
			return MsgBirthDateMinor
		}
	}

	return ""
}
