package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRecompute(t *testing.T) {
	rec := PayrollRecord{
		BaseSalary:           dec("5000000"),
		Bonus:                dec("300000"),
		OvertimeHours:        dec("10"),
		OvertimeRate:         dec("50000"),
		TransportAllowance:   dec("200000"),
		MealAllowance:        dec("150000"),
		PhoneAllowance:       dec("100000"),
		PerformanceAllowance: dec("250000"),
		HolidayAllowance:     dec("0"),
		OtherAllowance:       dec("50000"),
		Deductions:           dec("100000"),
		Insurance:            dec("400000"),
		Tax:                  dec("350000"),
	}

	got := Recompute(rec)

	// 300k bonus + 500k overtime + 750k allowances
	assert.True(t, got.TotalAllowances.Equal(dec("1550000")), "total_allowances = %s", got.TotalAllowances)
	assert.True(t, got.TotalDeductions.Equal(dec("850000")), "total_deductions = %s", got.TotalDeductions)
	assert.True(t, got.NetSalary.Equal(dec("5700000")), "net_salary = %s", got.NetSalary)
}

func TestRecompute_ZeroInputs(t *testing.T) {
	got := Recompute(PayrollRecord{})

	assert.True(t, got.TotalAllowances.IsZero())
	assert.True(t, got.TotalDeductions.IsZero())
	assert.True(t, got.NetSalary.IsZero())
}

func TestRecompute_NetSalaryFlooredAtZero(t *testing.T) {
	rec := PayrollRecord{
		BaseSalary: dec("5000000"),
		Deductions: dec("4000000"),
		Insurance:  dec("1500000"),
		Tax:        dec("500000"),
	}

	got := Recompute(rec)

	assert.True(t, got.TotalDeductions.Equal(dec("6000000")))
	assert.True(t, got.NetSalary.IsZero(), "net_salary = %s, want 0", got.NetSalary)
	assert.False(t, got.NetSalary.IsNegative())
}

func TestRecompute_DoesNotMutateInput(t *testing.T) {
	rec := PayrollRecord{
		BaseSalary: dec("1000000"),
		Bonus:      dec("100000"),
	}

	_ = Recompute(rec)

	assert.True(t, rec.TotalAllowances.IsZero(), "input record mutated")
	assert.True(t, rec.NetSalary.IsZero(), "input record mutated")
}

func TestRecompute_ConsistentAfterFieldEdit(t *testing.T) {
	rec := Recompute(PayrollRecord{
		BaseSalary: dec("4000000"),
		Bonus:      dec("200000"),
	})
	assert.True(t, rec.NetSalary.Equal(dec("4200000")))

	// Editing any contributing input requires a fresh Recompute before the
	// record is valid for persistence.
	rec.Insurance = dec("300000")
	rec = Recompute(rec)
	assert.True(t, rec.NetSalary.Equal(dec("3900000")), "net_salary = %s", rec.NetSalary)
}
