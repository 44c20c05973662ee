package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus enum
type InvoiceStatus string

const (
	StatusDraft  InvoiceStatus = "draft"
	StatusIssued InvoiceStatus = "issued"
	StatusPaid   InvoiceStatus = "paid"
)

// Invoice represents a customer invoice. TotalAfterTax, CashBackRate (when a
// refund is recorded) and RevenueTotal are derived fields; they are recomputed
// before every persist and never written independently.
type Invoice struct {
	ID            string
	CustomerID    string
	InvoiceNumber string
	Description   *string
	Total         decimal.Decimal
	TaxRate       decimal.Decimal
	CashBackRate  decimal.Decimal
	RefundAmount  decimal.Decimal
	TotalAfterTax decimal.Decimal
	RevenueTotal  decimal.Decimal
	Status        InvoiceStatus
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	CustomerName *string
}
