package payroll

import (
	"github.com/educenter/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SalaryInputs carries every contributing payroll input. Omitted fields
// default to zero.
type SalaryInputs struct {
	BaseSalary    decimal.Decimal `json:"base_salary"`
	Bonus         decimal.Decimal `json:"bonus"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`

	TransportAllowance   decimal.Decimal `json:"transport_allowance"`
	MealAllowance        decimal.Decimal `json:"meal_allowance"`
	PhoneAllowance       decimal.Decimal `json:"phone_allowance"`
	PerformanceAllowance decimal.Decimal `json:"performance_allowance"`
	HolidayAllowance     decimal.Decimal `json:"holiday_allowance"`
	OtherAllowance       decimal.Decimal `json:"other_allowance"`

	Deductions decimal.Decimal `json:"deductions"`
	Insurance  decimal.Decimal `json:"insurance"`
	Tax        decimal.Decimal `json:"tax"`
}

func (s *SalaryInputs) validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	nonNegative := map[string]decimal.Decimal{
		"base_salary":           s.BaseSalary,
		"bonus":                 s.Bonus,
		"overtime_rate":         s.OvertimeRate,
		"transport_allowance":   s.TransportAllowance,
		"meal_allowance":        s.MealAllowance,
		"phone_allowance":       s.PhoneAllowance,
		"performance_allowance": s.PerformanceAllowance,
		"holiday_allowance":     s.HolidayAllowance,
		"other_allowance":       s.OtherAllowance,
		"deductions":            s.Deductions,
		"insurance":             s.Insurance,
		"tax":                   s.Tax,
	}
	for field, val := range nonNegative {
		if val.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if s.OvertimeHours.IsNegative() || s.OvertimeHours.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be between 0 and 100"})
	}

	return errs
}

// ========== REQUEST DTOs ==========

type CreatePayrollRecordRequest struct {
	StaffID     string `json:"staff_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	SalaryInputs
}

func (r *CreatePayrollRecordRequest) Validate() error {
	errs := r.SalaryInputs.validate()

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2020 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2020 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayrollRecordRequest struct {
	ID string

	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	Bonus         *decimal.Decimal `json:"bonus,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	OvertimeRate  *decimal.Decimal `json:"overtime_rate,omitempty"`

	TransportAllowance   *decimal.Decimal `json:"transport_allowance,omitempty"`
	MealAllowance        *decimal.Decimal `json:"meal_allowance,omitempty"`
	PhoneAllowance       *decimal.Decimal `json:"phone_allowance,omitempty"`
	PerformanceAllowance *decimal.Decimal `json:"performance_allowance,omitempty"`
	HolidayAllowance     *decimal.Decimal `json:"holiday_allowance,omitempty"`
	OtherAllowance       *decimal.Decimal `json:"other_allowance,omitempty"`

	Deductions *decimal.Decimal `json:"deductions,omitempty"`
	Insurance  *decimal.Decimal `json:"insurance,omitempty"`
	Tax        *decimal.Decimal `json:"tax,omitempty"`

	Status *string `json:"status,omitempty"`
}

func (r *UpdatePayrollRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	nonNegative := map[string]*decimal.Decimal{
		"base_salary":           r.BaseSalary,
		"bonus":                 r.Bonus,
		"overtime_rate":         r.OvertimeRate,
		"transport_allowance":   r.TransportAllowance,
		"meal_allowance":        r.MealAllowance,
		"phone_allowance":       r.PhoneAllowance,
		"performance_allowance": r.PerformanceAllowance,
		"holiday_allowance":     r.HolidayAllowance,
		"other_allowance":       r.OtherAllowance,
		"deductions":            r.Deductions,
		"insurance":             r.Insurance,
		"tax":                   r.Tax,
	}
	for field, val := range nonNegative {
		if val != nil && val.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if r.OvertimeHours != nil && (r.OvertimeHours.IsNegative() || r.OvertimeHours.GreaterThan(decimal.NewFromInt(100))) {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be between 0 and 100"})
	}
	if r.Status != nil && *r.Status != string(PayrollStatusDraft) && *r.Status != string(PayrollStatusPaid) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'draft' or 'paid'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSE DTOs ==========

type PayrollRecordResponse struct {
	ID          string  `json:"id"`
	StaffID     string  `json:"staff_id"`
	StaffName   *string `json:"staff_name,omitempty"`
	PeriodMonth int     `json:"period_month"`
	PeriodYear  int     `json:"period_year"`

	BaseSalary    decimal.Decimal `json:"base_salary"`
	Bonus         decimal.Decimal `json:"bonus"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`

	TransportAllowance   decimal.Decimal `json:"transport_allowance"`
	MealAllowance        decimal.Decimal `json:"meal_allowance"`
	PhoneAllowance       decimal.Decimal `json:"phone_allowance"`
	PerformanceAllowance decimal.Decimal `json:"performance_allowance"`
	HolidayAllowance     decimal.Decimal `json:"holiday_allowance"`
	OtherAllowance       decimal.Decimal `json:"other_allowance"`

	Deductions decimal.Decimal `json:"deductions"`
	Insurance  decimal.Decimal `json:"insurance"`
	Tax        decimal.Decimal `json:"tax"`

	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`

	Status string  `json:"status"`
	PaidAt *string `json:"paid_at,omitempty"`
}

type PayrollFilter struct {
	StaffID     *string
	PeriodMonth *int
	PeriodYear  *int
	Status      *string
	Page        int
	Limit       int
}

type ListPayrollRecordResponse struct {
	Data       []PayrollRecordResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}
