package customer

import "context"

// Repository defines the customer repository interface
type Repository interface {
	Create(ctx context.Context, c Customer) (Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Update(ctx context.Context, c Customer) error
	Delete(ctx context.Context, id string) error
}
