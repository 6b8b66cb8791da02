package customer

import (
	domain "customer-manager/internal/domain/customer"
)

func fromRemoteModel(model *Customer) *domain.Customer {
	var c = &domain.Customer{
		ID:        domain.ID(model.ID),
		FirstName: model.FirstName,
		LastName:  model.LastName,
		DNI:       model.DNI,
		Phone:     model.Phone,
		Email:     model.Email,
		City:      model.City,
		Gender:    model.Gender,
		Age:       model.Age,
		BirthDate: model.BirthDate,
		Deleted:   model.Deleted,
	}

	return c
}

func fromRemoteModels(models Customers) domain.Customers {
	cs := make(domain.Customers, 0, len(models))
	for _, c := range models {
		if c == nil {
			continue
		}
		cs = append(cs, fromRemoteModel(c))
	}

	return cs
}

// toRemoteModel leaves Age and Deleted out: both belong to the remote system.
func toRemoteModel(c domain.Customer) Customer {
	return Customer{
		ID:        int(c.ID),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		DNI:       c.DNI,
		Phone:     c.Phone,
		Email:     c.Email,
		City:      c.City,
		Gender:    c.Gender,
		BirthDate: c.BirthDate,
	}
}
