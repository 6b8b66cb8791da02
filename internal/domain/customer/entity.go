package customer

type (
	ID       int
	Customer struct {
		ID        ID
		FirstName string
		LastName  string
		DNI       string
		Phone     string
		Email     string
		City      string
		Gender    string
		Age       int
		BirthDate Date
		Deleted   bool
	}
	Customers []*Customer
)

// Persisted reports whether the remote system has assigned an identifier.
func (c Customer) Persisted() bool { return c.ID > 0 }
