package customer

import (
	domain "customer-manager/internal/domain/customer"
)

type (
	// Customer is the record shape served by the remote /users resource.
	Customer struct {
		ID        int         `json:"ID,omitempty"`
		FirstName string      `json:"first_name"`
		LastName  string      `json:"last_name"`
		DNI       string      `json:"dni"`
		Phone     string      `json:"phone"`
		Email     string      `json:"email"`
		City      string      `json:"city"`
		Gender    string      `json:"gender"`
		Age       int         `json:"age,omitempty"`
		BirthDate domain.Date `json:"birth_date"`
		Deleted   bool        `json:"deleted"`
	}
	Customers []*Customer
)
