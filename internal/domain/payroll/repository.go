package payroll

import "context"

// Repository defines the payroll repository interface
type Repository interface {
	Create(ctx context.Context, rec PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByStaffPeriod(ctx context.Context, staffID string, month, year int) (PayrollRecord, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)
	Update(ctx context.Context, rec PayrollRecord) error
	Delete(ctx context.Context, id string) error
}
