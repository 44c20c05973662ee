package invoice

import (
	"github.com/educenter/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== REQUEST DTOs ==========

type CreateInvoiceRequest struct {
	CustomerID    string           `json:"customer_id"`
	InvoiceNumber string           `json:"invoice_number"`
	Description   *string          `json:"description,omitempty"`
	Total         decimal.Decimal  `json:"total"`
	TaxRate       decimal.Decimal  `json:"tax_rate"`
	CashBackRate  *decimal.Decimal `json:"cash_back_rate,omitempty"`
	RefundAmount  *decimal.Decimal `json:"refund_amount,omitempty"`
}

func (r *CreateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerID) {
		errs = append(errs, validator.ValidationError{Field: "customer_id", Message: "is required"})
	}
	if !validator.IsValidInvoiceNumber(r.InvoiceNumber) {
		errs = append(errs, validator.ValidationError{Field: "invoice_number", Message: "must match INV-<year>-<sequence>"})
	}
	if r.Total.Sign() <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total", Message: "must be greater than zero"})
	}
	if r.TaxRate.IsNegative() || r.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "tax_rate", Message: "must be between 0 and 100"})
	}
	if r.CashBackRate != nil && (r.CashBackRate.IsNegative() || r.CashBackRate.GreaterThan(decimal.NewFromInt(100))) {
		errs = append(errs, validator.ValidationError{Field: "cash_back_rate", Message: "must be between 0 and 100"})
	}
	if r.RefundAmount != nil && r.RefundAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "refund_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateInvoiceRequest struct {
	ID           string
	Description  *string          `json:"description,omitempty"`
	Total        *decimal.Decimal `json:"total,omitempty"`
	TaxRate      *decimal.Decimal `json:"tax_rate,omitempty"`
	CashBackRate *decimal.Decimal `json:"cash_back_rate,omitempty"`
	RefundAmount *decimal.Decimal `json:"refund_amount,omitempty"`
	Status       *string          `json:"status,omitempty"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Total != nil && r.Total.Sign() <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total", Message: "must be greater than zero"})
	}
	if r.TaxRate != nil && (r.TaxRate.IsNegative() || r.TaxRate.GreaterThan(decimal.NewFromInt(100))) {
		errs = append(errs, validator.ValidationError{Field: "tax_rate", Message: "must be between 0 and 100"})
	}
	if r.CashBackRate != nil && (r.CashBackRate.IsNegative() || r.CashBackRate.GreaterThan(decimal.NewFromInt(100))) {
		errs = append(errs, validator.ValidationError{Field: "cash_back_rate", Message: "must be between 0 and 100"})
	}
	if r.RefundAmount != nil && r.RefundAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "refund_amount", Message: "must be non-negative"})
	}
	if r.Status != nil {
		switch InvoiceStatus(*r.Status) {
		case StatusDraft, StatusIssued, StatusPaid:
		default:
			errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'draft', 'issued' or 'paid'"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSE DTOs ==========

type InvoiceResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  *string         `json:"customer_name,omitempty"`
	InvoiceNumber string          `json:"invoice_number"`
	Description   *string         `json:"description,omitempty"`
	Total         decimal.Decimal `json:"total"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	CashBackRate  decimal.Decimal `json:"cash_back_rate"`
	RefundAmount  decimal.Decimal `json:"refund_amount"`
	TotalAfterTax decimal.Decimal `json:"total_after_tax"`
	RevenueTotal  decimal.Decimal `json:"revenue_total"`
	Status        string          `json:"status"`
	CreatedBy     string          `json:"created_by"`
}

type InvoiceFilter struct {
	CustomerID *string
	Status     *string
	Page       int
	Limit      int
}

type ListInvoiceResponse struct {
	Data       []InvoiceResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
