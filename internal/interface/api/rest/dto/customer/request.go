package customer

type (
	// Request is the form as typed by the user. In edit mode dni, gender and
	// birth_date are ignored.
	Request struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
		Email     string `json:"email"`
		City      string `json:"city"`
		DNI       string `json:"dni"`
		Gender    string `json:"gender"`
		BirthDate string `json:"birth_date"`
	}

	ValidateRequest struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
		Mode  string `json:"mode" binding:"omitempty,oneof=create edit"`
	}
)
