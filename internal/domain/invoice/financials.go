package invoice

import (
	"github.com/educenter/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DeriveTotalAfterTax computes total * (1 + taxRate/100).
func DeriveTotalAfterTax(total, taxRate decimal.Decimal) (decimal.Decimal, error) {
	var errs validator.ValidationErrors

	if total.Sign() <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total", Message: "must be greater than zero"})
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(hundred) {
		errs = append(errs, validator.ValidationError{Field: "tax_rate", Message: "must be between 0 and 100"})
	}
	if len(errs) > 0 {
		return decimal.Zero, errs
	}

	return total.Add(total.Mul(taxRate).Div(hundred)), nil
}

// DeriveRevenue computes total - total*taxRate/100 - total*cashBackRate/100.
// Tax and cash-back are both taken off the gross total, not compounded. The
// result is not clamped: a combined rate above 100 yields negative revenue,
// and callers that consider that invalid must check the combined rate first.
func DeriveRevenue(total, taxRate, cashBackRate decimal.Decimal) decimal.Decimal {
	tax := total.Mul(taxRate).Div(hundred)
	cashBack := total.Mul(cashBackRate).Div(hundred)
	return total.Sub(tax).Sub(cashBack)
}

// DeriveCashBackFromRefund re-derives the cash-back percentage implied by a
// refund amount, rounded to two decimals. Returns zero when total is not
// positive.
func DeriveCashBackFromRefund(total, refundAmount decimal.Decimal) decimal.Decimal {
	if total.Sign() <= 0 {
		return decimal.Zero
	}
	return refundAmount.Div(total).Mul(hundred).Round(2)
}

// Recalculate returns a copy of inv with all derived fields set. When a refund
// amount is recorded, the implied cash-back rate overwrites any directly
// entered rate (last writer wins). A validation failure leaves the input
// untouched so no partial derived state reaches the repository.
func Recalculate(inv Invoice) (Invoice, error) {
	totalAfterTax, err := DeriveTotalAfterTax(inv.Total, inv.TaxRate)
	if err != nil {
		return Invoice{}, err
	}

	if inv.RefundAmount.Sign() > 0 {
		inv.CashBackRate = DeriveCashBackFromRefund(inv.Total, inv.RefundAmount)
	}

	inv.TotalAfterTax = totalAfterTax
	inv.RevenueTotal = DeriveRevenue(inv.Total, inv.TaxRate, inv.CashBackRate)
	return inv, nil
}
