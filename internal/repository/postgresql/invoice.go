package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/educenter/backoffice-go/internal/domain/invoice"
	"github.com/educenter/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type invoiceRepositoryImpl struct {
	db *database.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *database.DB) invoice.Repository {
	return &invoiceRepositoryImpl{db: db}
}

const invoiceColumns = `
	i.id, i.customer_id, i.invoice_number, i.description,
	i.total, i.tax_rate, i.cash_back_rate, i.refund_amount,
	i.total_after_tax, i.revenue_total,
	i.status, i.created_by, i.created_at, i.updated_at,
	c.name AS customer_name
`

func (r *invoiceRepositoryImpl) Create(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}

	// Number uniqueness and the customer check must see the same snapshot
	// as the insert.
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var numberTaken, customerExists bool
		err := tx.QueryRow(ctx,
			`SELECT
				EXISTS(SELECT 1 FROM invoices WHERE invoice_number = $1),
				EXISTS(SELECT 1 FROM customers WHERE id = $2)`,
			inv.InvoiceNumber, inv.CustomerID,
		).Scan(&numberTaken, &customerExists)
		if err != nil {
			return fmt.Errorf("check invoice preconditions: %w", err)
		}
		if numberTaken {
			return invoice.ErrInvoiceNumberExists
		}
		if !customerExists {
			return invoice.ErrCustomerNotResolved
		}

		query := `
			INSERT INTO invoices (
				id, customer_id, invoice_number, description,
				total, tax_rate, cash_back_rate, refund_amount,
				total_after_tax, revenue_total, status, created_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING created_at, updated_at
		`

		err = tx.QueryRow(ctx, query,
			inv.ID,
			inv.CustomerID,
			inv.InvoiceNumber,
			inv.Description,
			inv.Total,
			inv.TaxRate,
			inv.CashBackRate,
			inv.RefundAmount,
			inv.TotalAfterTax,
			inv.RevenueTotal,
			string(inv.Status),
			inv.CreatedBy,
		).Scan(&inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		return invoice.Invoice{}, err
	}

	return inv, nil
}

func (r *invoiceRepositoryImpl) GetByID(ctx context.Context, id string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE i.id = $1
	`, invoiceColumns)

	inv, err := scanInvoice(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("get invoice: %w", err)
	}

	return inv, nil
}

func (r *invoiceRepositoryImpl) List(ctx context.Context, filter invoice.InvoiceFilter) ([]invoice.Invoice, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "1 = 1"
	args := []interface{}{}
	argIndex := 1

	if filter.CustomerID != nil {
		whereClause += fmt.Sprintf(" AND i.customer_id = $%d", argIndex)
		args = append(args, *filter.CustomerID)
		argIndex++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND i.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM invoices i WHERE %s`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE %s
		ORDER BY i.created_at DESC
		LIMIT $%d OFFSET $%d
	`, invoiceColumns, whereClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []invoice.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	return invoices, total, rows.Err()
}

func (r *invoiceRepositoryImpl) Update(ctx context.Context, inv invoice.Invoice) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices
		SET customer_id = $1, description = $2,
			total = $3, tax_rate = $4, cash_back_rate = $5, refund_amount = $6,
			total_after_tax = $7, revenue_total = $8,
			status = $9, updated_at = NOW()
		WHERE id = $10
	`

	result, err := q.Exec(ctx, query,
		inv.CustomerID,
		inv.Description,
		inv.Total,
		inv.TaxRate,
		inv.CashBackRate,
		inv.RefundAmount,
		inv.TotalAfterTax,
		inv.RevenueTotal,
		string(inv.Status),
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if result.RowsAffected() == 0 {
		return invoice.ErrInvoiceNotFound
	}

	return nil
}

func (r *invoiceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if result.RowsAffected() == 0 {
		return invoice.ErrInvoiceNotFound
	}

	return nil
}

func scanInvoice(row pgx.Row) (invoice.Invoice, error) {
	var inv invoice.Invoice
	var status string
	err := row.Scan(
		&inv.ID,
		&inv.CustomerID,
		&inv.InvoiceNumber,
		&inv.Description,
		&inv.Total,
		&inv.TaxRate,
		&inv.CashBackRate,
		&inv.RefundAmount,
		&inv.TotalAfterTax,
		&inv.RevenueTotal,
		&status,
		&inv.CreatedBy,
		&inv.CreatedAt,
		&inv.UpdatedAt,
		&inv.CustomerName,
	)
	if err != nil {
		return invoice.Invoice{}, err
	}
	inv.Status = invoice.InvoiceStatus(status)
	return inv, nil
}
