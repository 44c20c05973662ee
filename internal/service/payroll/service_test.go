package payroll

import (
	"context"
	"fmt"
	"testing"

	"github.com/educenter/backoffice-go/internal/domain/payroll"
	"github.com/educenter/backoffice-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	records map[string]payroll.PayrollRecord
	nextID  int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[string]payroll.PayrollRecord)}
}

func (f *fakePayrollRepo) Create(_ context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	f.nextID++
	rec.ID = fmt.Sprintf("pr-%d", f.nextID)
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.PayrollRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakePayrollRepo) GetByStaffPeriod(_ context.Context, staffID string, month, year int) (payroll.PayrollRecord, error) {
	for _, rec := range f.records {
		if rec.StaffID == staffID && rec.PeriodMonth == month && rec.PeriodYear == year {
			return rec, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
}

func (f *fakePayrollRepo) List(_ context.Context, _ payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	var result []payroll.PayrollRecord
	for _, rec := range f.records {
		result = append(result, rec)
	}
	return result, int64(len(result)), nil
}

func (f *fakePayrollRepo) Update(_ context.Context, rec payroll.PayrollRecord) error {
	if _, ok := f.records[rec.ID]; !ok {
		return payroll.ErrRecordNotFound
	}
	f.records[rec.ID] = rec
	return nil
}

func (f *fakePayrollRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return payroll.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) GetByUsername(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(_ context.Context, _ user.User) error { return nil }
func (f *fakeUserRepo) Delete(_ context.Context, _ string) error    { return nil }

func newService() (payroll.Service, *fakePayrollRepo) {
	repo := newFakePayrollRepo()
	users := &fakeUserRepo{users: map[string]user.User{
		"staff-1": {ID: "staff-1", Role: user.RoleStaff, Department: "education", Position: "teacher"},
	}}
	return NewPayrollService(repo, users), repo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPayrollService_Create_ComputesAggregates(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Create(context.Background(), payroll.CreatePayrollRecordRequest{
		StaffID:     "staff-1",
		PeriodMonth: 6,
		PeriodYear:  2025,
		SalaryInputs: payroll.SalaryInputs{
			BaseSalary:         dec("5000000"),
			Bonus:              dec("300000"),
			OvertimeHours:      dec("10"),
			OvertimeRate:       dec("50000"),
			TransportAllowance: dec("200000"),
			Insurance:          dec("400000"),
			Tax:                dec("350000"),
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.TotalAllowances.Equal(dec("1000000")), "total_allowances = %s", resp.TotalAllowances)
	assert.True(t, resp.TotalDeductions.Equal(dec("750000")), "total_deductions = %s", resp.TotalDeductions)
	assert.True(t, resp.NetSalary.Equal(dec("5250000")), "net_salary = %s", resp.NetSalary)
	assert.Equal(t, "draft", resp.Status)
}

func TestPayrollService_Create_UnknownStaff(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), payroll.CreatePayrollRecordRequest{
		StaffID:     "ghost",
		PeriodMonth: 6,
		PeriodYear:  2025,
	})

	assert.ErrorIs(t, err, payroll.ErrStaffNotResolved)
}

func TestPayrollService_Create_DuplicatePeriod(t *testing.T) {
	svc, _ := newService()

	req := payroll.CreatePayrollRecordRequest{
		StaffID:     "staff-1",
		PeriodMonth: 6,
		PeriodYear:  2025,
		SalaryInputs: payroll.SalaryInputs{
			BaseSalary: dec("5000000"),
		},
	}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, payroll.ErrRecordAlreadyExists)
}

func TestPayrollService_Update_RecomputesAndFloors(t *testing.T) {
	svc, repo := newService()

	created, err := svc.Create(context.Background(), payroll.CreatePayrollRecordRequest{
		StaffID:     "staff-1",
		PeriodMonth: 7,
		PeriodYear:  2025,
		SalaryInputs: payroll.SalaryInputs{
			BaseSalary: dec("5000000"),
		},
	})
	require.NoError(t, err)

	deductions := dec("6000000")
	updated, err := svc.Update(context.Background(), payroll.UpdatePayrollRecordRequest{
		ID:         created.ID,
		Deductions: &deductions,
	})
	require.NoError(t, err)

	assert.True(t, updated.NetSalary.IsZero(), "net_salary = %s, want 0", updated.NetSalary)

	stored := repo.records[created.ID]
	assert.True(t, stored.NetSalary.IsZero(), "persisted net salary must match the derived value")
	assert.True(t, stored.TotalDeductions.Equal(dec("6000000")))
}

func TestPayrollService_Update_InvalidInput(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create(context.Background(), payroll.CreatePayrollRecordRequest{
		StaffID:     "staff-1",
		PeriodMonth: 8,
		PeriodYear:  2025,
		SalaryInputs: payroll.SalaryInputs{
			BaseSalary: dec("5000000"),
		},
	})
	require.NoError(t, err)

	hours := dec("120")
	_, err = svc.Update(context.Background(), payroll.UpdatePayrollRecordRequest{
		ID:            created.ID,
		OvertimeHours: &hours,
	})
	require.Error(t, err)

	// Record stays untouched after a rejected update.
	current, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, current.OvertimeHours.IsZero())
}
