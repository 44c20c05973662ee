package invoice

import (
	"testing"

	"github.com/educenter/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDeriveTotalAfterTax(t *testing.T) {
	cases := []struct {
		name    string
		total   string
		taxRate string
		want    string
	}{
		{"ten percent", "10000000", "10", "11000000"},
		{"zero rate", "500000", "0", "500000"},
		{"full rate", "1000", "100", "2000"},
		{"fractional rate", "200000", "7.5", "215000"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DeriveTotalAfterTax(dec(c.total), dec(c.taxRate))
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(c.want)), "got %s, want %s", got, c.want)
		})
	}
}

func TestDeriveTotalAfterTax_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		total   string
		taxRate string
		field   string
	}{
		{"zero total", "0", "10", "total"},
		{"negative total", "-100", "10", "total"},
		{"negative rate", "100", "-1", "tax_rate"},
		{"rate above 100", "100", "101", "tax_rate"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DeriveTotalAfterTax(dec(c.total), dec(c.taxRate))
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}

func TestDeriveRevenue(t *testing.T) {
	// total=10,000,000, tax=10%, cashback=5% -> 8,500,000
	got := DeriveRevenue(dec("10000000"), dec("10"), dec("5"))
	assert.True(t, got.Equal(dec("8500000")), "got %s", got)
}

func TestDeriveRevenue_NegativeNotClamped(t *testing.T) {
	// Combined rate above 100 goes negative; callers validate if unwanted.
	got := DeriveRevenue(dec("1000"), dec("60"), dec("50"))
	assert.True(t, got.Equal(dec("-100")), "got %s", got)
}

func TestDeriveCashBackFromRefund(t *testing.T) {
	cases := []struct {
		name   string
		total  string
		refund string
		want   string
	}{
		{"five and a half percent", "10000000", "550000", "5.5"},
		{"exact third rounds", "3000000", "1000000", "33.33"},
		{"zero refund", "10000000", "0", "0"},
		{"full refund", "250000", "250000", "100"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DeriveCashBackFromRefund(dec(c.total), dec(c.refund))
			assert.True(t, got.Equal(dec(c.want)), "got %s, want %s", got, c.want)
		})
	}
}

func TestDeriveCashBackFromRefund_ZeroTotal(t *testing.T) {
	assert.True(t, DeriveCashBackFromRefund(decimal.Zero, dec("550000")).IsZero())
	assert.True(t, DeriveCashBackFromRefund(dec("-1"), dec("100")).IsZero())
}

func TestRecalculate(t *testing.T) {
	inv := Invoice{
		Total:        dec("10000000"),
		TaxRate:      dec("10"),
		CashBackRate: dec("5"),
	}

	got, err := Recalculate(inv)
	require.NoError(t, err)
	assert.True(t, got.TotalAfterTax.Equal(dec("11000000")), "total_after_tax = %s", got.TotalAfterTax)
	assert.True(t, got.RevenueTotal.Equal(dec("8500000")), "revenue_total = %s", got.RevenueTotal)
	assert.True(t, got.CashBackRate.Equal(dec("5")))
}

func TestRecalculate_RefundOverwritesCashBack(t *testing.T) {
	inv := Invoice{
		Total:        dec("10000000"),
		TaxRate:      dec("10"),
		CashBackRate: dec("2"), // directly entered, loses to the refund
		RefundAmount: dec("550000"),
	}

	got, err := Recalculate(inv)
	require.NoError(t, err)
	assert.True(t, got.CashBackRate.Equal(dec("5.5")), "cash_back_rate = %s", got.CashBackRate)
	assert.True(t, got.RevenueTotal.Equal(dec("8450000")), "revenue_total = %s", got.RevenueTotal)
}

func TestRecalculate_InvalidLeavesNoDerivedState(t *testing.T) {
	inv := Invoice{Total: decimal.Zero, TaxRate: dec("10")}

	got, err := Recalculate(inv)
	require.Error(t, err)
	assert.True(t, got.TotalAfterTax.IsZero())
	assert.True(t, got.RevenueTotal.IsZero())
}
