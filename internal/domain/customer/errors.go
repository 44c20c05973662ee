package customer

import "errors"

// Customer domain errors
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrTaxNumberExists  = errors.New("tax number already registered")
)
