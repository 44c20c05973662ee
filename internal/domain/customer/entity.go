package customer

import "time"

// Customer represents a training-center customer (the invoiced party).
type Customer struct {
	ID        string
	Name      string
	Email     *string
	Phone     *string
	TaxNumber *string
	Address   *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
