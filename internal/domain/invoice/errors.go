package invoice

import "errors"

// Invoice domain errors
var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceNumberExists  = errors.New("invoice number already exists")
	ErrCustomerNotResolved  = errors.New("invoice customer does not exist")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
)
