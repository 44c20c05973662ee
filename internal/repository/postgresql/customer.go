package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/educenter/backoffice-go/internal/domain/customer"
	"github.com/educenter/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type customerRepositoryImpl struct {
	db *database.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *database.DB) customer.Repository {
	return &customerRepositoryImpl{db: db}
}

func (r *customerRepositoryImpl) Create(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	if c.TaxNumber != nil {
		var taken bool
		err := q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM customers WHERE tax_number = $1)`, *c.TaxNumber,
		).Scan(&taken)
		if err != nil {
			return customer.Customer{}, fmt.Errorf("check tax number uniqueness: %w", err)
		}
		if taken {
			return customer.Customer{}, customer.ErrTaxNumberExists
		}
	}

	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	query := `
		INSERT INTO customers (id, name, email, phone, tax_number, address, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.TaxNumber,
		c.Address,
		c.Notes,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return customer.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	return c, nil
}

func (r *customerRepositoryImpl) GetByID(ctx context.Context, id string) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, phone, tax_number, address, notes, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var c customer.Customer
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.TaxNumber,
		&c.Address,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customer.Customer{}, customer.ErrCustomerNotFound
		}
		return customer.Customer{}, fmt.Errorf("get customer: %w", err)
	}

	return c, nil
}

func (r *customerRepositoryImpl) List(ctx context.Context) ([]customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, phone, tax_number, address, notes, created_at, updated_at
		FROM customers
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []customer.Customer
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Phone,
			&c.TaxNumber,
			&c.Address,
			&c.Notes,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (r *customerRepositoryImpl) Update(ctx context.Context, c customer.Customer) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE customers
		SET name = $1, email = $2, phone = $3, tax_number = $4, address = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
	`

	result, err := q.Exec(ctx, query,
		c.Name,
		c.Email,
		c.Phone,
		c.TaxNumber,
		c.Address,
		c.Notes,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if result.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

func (r *customerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if result.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}
