package invoice

import "context"

// Repository defines the invoice repository interface
type Repository interface {
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]Invoice, int64, error)
	Update(ctx context.Context, inv Invoice) error
	Delete(ctx context.Context, id string) error
}
