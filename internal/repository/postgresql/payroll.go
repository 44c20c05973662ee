package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/educenter/backoffice-go/internal/domain/payroll"
	"github.com/educenter/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

// NewPayrollRepository creates a new payroll repository
func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	p.id, p.staff_id, p.period_month, p.period_year,
	p.base_salary, p.bonus, p.overtime_hours, p.overtime_rate,
	p.transport_allowance, p.meal_allowance, p.phone_allowance,
	p.performance_allowance, p.holiday_allowance, p.other_allowance,
	p.deductions, p.insurance, p.tax,
	p.total_allowances, p.total_deductions, p.net_salary,
	p.status, p.paid_at, p.created_at, p.updated_at,
	u.full_name AS staff_name
`

func (r *payrollRepositoryImpl) Create(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payroll_records (
			id, staff_id, period_month, period_year,
			base_salary, bonus, overtime_hours, overtime_rate,
			transport_allowance, meal_allowance, phone_allowance,
			performance_allowance, holiday_allowance, other_allowance,
			deductions, insurance, tax,
			total_allowances, total_deductions, net_salary,
			status, paid_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.StaffID,
		rec.PeriodMonth,
		rec.PeriodYear,
		rec.BaseSalary,
		rec.Bonus,
		rec.OvertimeHours,
		rec.OvertimeRate,
		rec.TransportAllowance,
		rec.MealAllowance,
		rec.PhoneAllowance,
		rec.PerformanceAllowance,
		rec.HolidayAllowance,
		rec.OtherAllowance,
		rec.Deductions,
		rec.Insurance,
		rec.Tax,
		rec.TotalAllowances,
		rec.TotalDeductions,
		rec.NetSalary,
		string(rec.Status),
		rec.PaidAt,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("create payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records p
		JOIN users u ON u.id = p.staff_id
		WHERE p.id = $1
	`, payrollColumns)

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) GetByStaffPeriod(ctx context.Context, staffID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records p
		JOIN users u ON u.id = p.staff_id
		WHERE p.staff_id = $1 AND p.period_month = $2 AND p.period_year = $3
	`, payrollColumns)

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, staffID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("get payroll record by period: %w", err)
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "1 = 1"
	args := []interface{}{}
	argIndex := 1

	if filter.StaffID != nil {
		whereClause += fmt.Sprintf(" AND p.staff_id = $%d", argIndex)
		args = append(args, *filter.StaffID)
		argIndex++
	}
	if filter.PeriodMonth != nil {
		whereClause += fmt.Sprintf(" AND p.period_month = $%d", argIndex)
		args = append(args, *filter.PeriodMonth)
		argIndex++
	}
	if filter.PeriodYear != nil {
		whereClause += fmt.Sprintf(" AND p.period_year = $%d", argIndex)
		args = append(args, *filter.PeriodYear)
		argIndex++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND p.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM payroll_records p WHERE %s`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count payroll records: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records p
		JOIN users u ON u.id = p.staff_id
		WHERE %s
		ORDER BY p.period_year DESC, p.period_month DESC, u.full_name ASC
		LIMIT $%d OFFSET $%d
	`, payrollColumns, whereClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

func (r *payrollRepositoryImpl) Update(ctx context.Context, rec payroll.PayrollRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET base_salary = $1, bonus = $2, overtime_hours = $3, overtime_rate = $4,
			transport_allowance = $5, meal_allowance = $6, phone_allowance = $7,
			performance_allowance = $8, holiday_allowance = $9, other_allowance = $10,
			deductions = $11, insurance = $12, tax = $13,
			total_allowances = $14, total_deductions = $15, net_salary = $16,
			status = $17, paid_at = $18, updated_at = NOW()
		WHERE id = $19
	`

	result, err := q.Exec(ctx, query,
		rec.BaseSalary,
		rec.Bonus,
		rec.OvertimeHours,
		rec.OvertimeRate,
		rec.TransportAllowance,
		rec.MealAllowance,
		rec.PhoneAllowance,
		rec.PerformanceAllowance,
		rec.HolidayAllowance,
		rec.OtherAllowance,
		rec.Deductions,
		rec.Insurance,
		rec.Tax,
		rec.TotalAllowances,
		rec.TotalDeductions,
		rec.NetSalary,
		string(rec.Status),
		rec.PaidAt,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("update payroll record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payroll record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	var status string
	err := row.Scan(
		&rec.ID,
		&rec.StaffID,
		&rec.PeriodMonth,
		&rec.PeriodYear,
		&rec.BaseSalary,
		&rec.Bonus,
		&rec.OvertimeHours,
		&rec.OvertimeRate,
		&rec.TransportAllowance,
		&rec.MealAllowance,
		&rec.PhoneAllowance,
		&rec.PerformanceAllowance,
		&rec.HolidayAllowance,
		&rec.OtherAllowance,
		&rec.Deductions,
		&rec.Insurance,
		&rec.Tax,
		&rec.TotalAllowances,
		&rec.TotalDeductions,
		&rec.NetSalary,
		&status,
		&rec.PaidAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.StaffName,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	rec.Status = payroll.PayrollStatus(status)
	return rec, nil
}
