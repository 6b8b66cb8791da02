package form

// Field enumerates every input of the customer form.
type Field int

const (
	FirstName Field = iota
	LastName
	Phone
	Email
	City
	DNI
	Gender
	BirthDate

	fieldCount
)

var fieldNames = [fieldCount]string{
	FirstName: "first_name",
	LastName:  "last_name",
	Phone:     "phone",
	Email:     "email",
	City:      "city",
	DNI:       "dni",
	Gender:    "gender",
	BirthDate: "birth_date",
}

var (
	createFields = []Field{FirstName, LastName, Phone, Email, City, DNI, Gender, BirthDate}
	editFields   = []Field{FirstName, LastName, Phone, Email, City}
)

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// ParseField maps a wire name such as "birth_date" to its Field.
func ParseField(name string) (Field, bool) {
	for f, n := range fieldNames {
		if n == name {
			return Field(f), true
		}
	}
	return 0, false
}

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Fields returns the active field set for the mode. DNI, gender and birth
// date are fixed once a customer exists.
func (m Mode) Fields() []Field {
	if m == ModeEdit {
		return append([]Field(nil), editFields...)
	}
	return append([]Field(nil), createFields...)
}

func (m Mode) Active(f Field) bool {
	for _, af := range m.Fields() {
		if af == f {
			return true
		}
	}
	return false
}
