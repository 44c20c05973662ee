package payroll

import "github.com/shopspring/decimal"

// Recompute returns a copy of rec with TotalAllowances, TotalDeductions and
// NetSalary derived from the salary inputs. Absent inputs are decimal zero, so
// the computation is total over non-negative records. NetSalary is floored at
// zero: deductions larger than earnings never produce a negative payout. That
// floor is a business rule of the payroll workflow, not a computation error.
func Recompute(rec PayrollRecord) PayrollRecord {
	overtimePay := rec.OvertimeHours.Mul(rec.OvertimeRate)

	rec.TotalAllowances = rec.Bonus.
		Add(overtimePay).
		Add(rec.TransportAllowance).
		Add(rec.MealAllowance).
		Add(rec.PhoneAllowance).
		Add(rec.PerformanceAllowance).
		Add(rec.HolidayAllowance).
		Add(rec.OtherAllowance)

	rec.TotalDeductions = rec.Deductions.
		Add(rec.Insurance).
		Add(rec.Tax)

	net := rec.BaseSalary.Add(rec.TotalAllowances).Sub(rec.TotalDeductions)
	if net.IsNegative() {
		net = decimal.Zero
	}
	rec.NetSalary = net

	return rec
}
