package payroll

import "context"

// Service defines the payroll service interface
type Service interface {
	Create(ctx context.Context, req CreatePayrollRecordRequest) (PayrollRecordResponse, error)
	Get(ctx context.Context, id string) (PayrollRecordResponse, error)
	List(ctx context.Context, filter PayrollFilter) (ListPayrollRecordResponse, error)
	Update(ctx context.Context, req UpdatePayrollRecordRequest) (PayrollRecordResponse, error)
	Delete(ctx context.Context, id string) error
}
