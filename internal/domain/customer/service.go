package customer

import "context"

// Service defines the customer service interface
type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error)
	Get(ctx context.Context, id string) (CustomerResponse, error)
	List(ctx context.Context) ([]CustomerResponse, error)
	Update(ctx context.Context, req UpdateCustomerRequest) (CustomerResponse, error)
	Delete(ctx context.Context, id string) error
}
