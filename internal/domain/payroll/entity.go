package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft PayrollStatus = "draft"
	PayrollStatusPaid  PayrollStatus = "paid"
)

// PayrollRecord holds one staff member's salary inputs for a period together
// with the derived aggregates. TotalAllowances, TotalDeductions and NetSalary
// are always recomputed from the inputs before persistence and are never
// editable by a caller.
type PayrollRecord struct {
	ID          string
	StaffID     string
	PeriodMonth int
	PeriodYear  int

	BaseSalary    decimal.Decimal
	Bonus         decimal.Decimal
	OvertimeHours decimal.Decimal
	OvertimeRate  decimal.Decimal

	TransportAllowance   decimal.Decimal
	MealAllowance        decimal.Decimal
	PhoneAllowance       decimal.Decimal
	PerformanceAllowance decimal.Decimal
	HolidayAllowance     decimal.Decimal
	OtherAllowance       decimal.Decimal

	Deductions decimal.Decimal
	Insurance  decimal.Decimal
	Tax        decimal.Decimal

	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	Status    PayrollStatus
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	StaffName *string
}
