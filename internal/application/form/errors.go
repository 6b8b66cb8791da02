package form

import (
	"strings"
)

// Errors holds one message per field; empty means the field passed.
type Errors struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	City      string
	DNI       string
	Gender    string
	BirthDate string
}

func (e *Errors) ref(f Field) *string {
	switch f {
	case FirstName:
		return &e.FirstName
	case LastName:
		return &e.LastName
	case Phone:
		return &e.Phone
	case Email:
		return &e.Email
	case City:
		return &e.City
	case DNI:
		return &e.DNI
	case Gender:
		return &e.Gender
	case BirthDate:
		return &e.BirthDate
	}
	return nil
}

func (e *Errors) Set(f Field, msg string) {
	if p := e.ref(f); p != nil {
		*p = msg
	}
}

func (e Errors) Get(f Field) string {
	if p := e.ref(f); p != nil {
		return *p
	}
	return ""
}

// Fields lists the fields carrying a message, in form order.
func (e Errors) Fields() []Field {
	var fs []Field
	for f := Field(0); f < fieldCount; f++ {
		if e.Get(f) != "" {
			fs = append(fs, f)
		}
	}
	return fs
}

func (e Errors) Len() int { return len(e.Fields()) }

// Map keys messages by wire field name.
func (e Errors) Map() map[string]string {
	m := make(map[string]string)
	for _, f := range e.Fields() {
		m[f.String()] = e.Get(f)
	}
	return m
}

func (e Errors) Error() string {
	var b strings.Builder
	for i, f := range e.Fields() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f.String())
		b.WriteString(": ")
		b.WriteString(e.Get(f))
	}
	return b.String()
}
