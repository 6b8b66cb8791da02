package customer

import (
	"strconv"

	domain "customer-manager/internal/domain/customer"
)

const PathUsers = "/users"

func pathUser(id domain.ID) string {
	return PathUsers + "/" + strconv.Itoa(int(id))
}
