package customer

import (
	domain "customer-manager/internal/domain/customer"
)

type (
	Response struct {
		ID        int         `json:"id"`
		FirstName string      `json:"first_name"`
		LastName  string      `json:"last_name"`
		DNI       string      `json:"dni"`
		Phone     string      `json:"phone"`
		Email     string      `json:"email"`
		City      string      `json:"city"`
		Gender    string      `json:"gender"`
		Age       int         `json:"age"`
		BirthDate domain.Date `json:"birth_date"`
		Deleted   bool        `json:"deleted"`
	}
	Responses []Response

	// Nav tells the client what the screen did after the action: where it
	// navigated and whether the previous screen should re-fetch.
	Nav struct {
		Next    string `json:"next,omitempty"`
		Refresh bool   `json:"refresh"`
	}

	ListView struct {
		State string    `json:"state"`
		Data  Responses `json:"data"`
	}

	DetailView struct {
		State     string   `json:"state"`
		Customer  Response `json:"customer"`
		CanDelete bool     `json:"can_delete"`
	}

	SubmitView struct {
		Mode string `json:"mode"`
		Nav
	}

	DeleteRejectedView struct {
		Error           string `json:"error"`
		ShouldNotDelete bool   `json:"should_not_delete"`
		Age             int    `json:"age"`
	}

	ValidateView struct {
		Field string `json:"field"`
		Error string `json:"error"`
	}
)
