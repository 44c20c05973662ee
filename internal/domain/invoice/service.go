package invoice

import "context"

// Service defines the invoice service interface
type Service interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	Get(ctx context.Context, id string) (InvoiceResponse, error)
	List(ctx context.Context, filter InvoiceFilter) (ListInvoiceResponse, error)
	Update(ctx context.Context, req UpdateInvoiceRequest) (InvoiceResponse, error)
	Delete(ctx context.Context, id string) error
}
