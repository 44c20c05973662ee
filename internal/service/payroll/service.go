package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/educenter/backoffice-go/internal/domain/payroll"
	"github.com/educenter/backoffice-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	payrollRepo payroll.Repository
	userRepo    user.Repository
}

func NewPayrollService(payrollRepo payroll.Repository, userRepo user.Repository) payroll.Service {
	return &PayrollServiceImpl{
		payrollRepo: payrollRepo,
		userRepo:    userRepo,
	}
}

func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreatePayrollRecordRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return payroll.PayrollRecordResponse{}, payroll.ErrStaffNotResolved
		}
		return payroll.PayrollRecordResponse{}, err
	}

	// One record per staff and period
	_, err := s.payrollRepo.GetByStaffPeriod(ctx, req.StaffID, req.PeriodMonth, req.PeriodYear)
	if err == nil {
		return payroll.PayrollRecordResponse{}, payroll.ErrRecordAlreadyExists
	}
	if !errors.Is(err, payroll.ErrRecordNotFound) {
		return payroll.PayrollRecordResponse{}, err
	}

	rec := payroll.PayrollRecord{
		StaffID:     req.StaffID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,

		BaseSalary:    req.BaseSalary,
		Bonus:         req.Bonus,
		OvertimeHours: req.OvertimeHours,
		OvertimeRate:  req.OvertimeRate,

		TransportAllowance:   req.TransportAllowance,
		MealAllowance:        req.MealAllowance,
		PhoneAllowance:       req.PhoneAllowance,
		PerformanceAllowance: req.PerformanceAllowance,
		HolidayAllowance:     req.HolidayAllowance,
		OtherAllowance:       req.OtherAllowance,

		Deductions: req.Deductions,
		Insurance:  req.Insurance,
		Tax:        req.Tax,

		Status: payroll.PayrollStatusDraft,
	}

	// Derived aggregates are set here and only here, before persistence.
	rec = payroll.Recompute(rec)

	created, err := s.payrollRepo.Create(ctx, rec)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToResponse(rec), nil
}

func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollRecordResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, totalCount, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	data := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, mapToResponse(rec))
	}

	return payroll.ListPayrollRecordResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) Update(ctx context.Context, req payroll.UpdatePayrollRecordRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	rec, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if req.BaseSalary != nil {
		rec.BaseSalary = *req.BaseSalary
	}
	if req.Bonus != nil {
		rec.Bonus = *req.Bonus
	}
	if req.OvertimeHours != nil {
		rec.OvertimeHours = *req.OvertimeHours
	}
	if req.OvertimeRate != nil {
		rec.OvertimeRate = *req.OvertimeRate
	}
	if req.TransportAllowance != nil {
		rec.TransportAllowance = *req.TransportAllowance
	}
	if req.MealAllowance != nil {
		rec.MealAllowance = *req.MealAllowance
	}
	if req.PhoneAllowance != nil {
		rec.PhoneAllowance = *req.PhoneAllowance
	}
	if req.PerformanceAllowance != nil {
		rec.PerformanceAllowance = *req.PerformanceAllowance
	}
	if req.HolidayAllowance != nil {
		rec.HolidayAllowance = *req.HolidayAllowance
	}
	if req.OtherAllowance != nil {
		rec.OtherAllowance = *req.OtherAllowance
	}
	if req.Deductions != nil {
		rec.Deductions = *req.Deductions
	}
	if req.Insurance != nil {
		rec.Insurance = *req.Insurance
	}
	if req.Tax != nil {
		rec.Tax = *req.Tax
	}
	if req.Status != nil {
		rec.Status = payroll.PayrollStatus(*req.Status)
		if rec.Status == payroll.PayrollStatusPaid && rec.PaidAt == nil {
			now := time.Now()
			rec.PaidAt = &now
		}
	}

	// Every field-level mutation re-derives the aggregates before persist.
	rec = payroll.Recompute(rec)

	if err := s.payrollRepo.Update(ctx, rec); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	return s.payrollRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func mapToResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	var paidAtStr *string
	if r.PaidAt != nil {
		str := r.PaidAt.Format(time.RFC3339)
		paidAtStr = &str
	}

	return payroll.PayrollRecordResponse{
		ID:          r.ID,
		StaffID:     r.StaffID,
		StaffName:   r.StaffName,
		PeriodMonth: r.PeriodMonth,
		PeriodYear:  r.PeriodYear,

		BaseSalary:    r.BaseSalary,
		Bonus:         r.Bonus,
		OvertimeHours: r.OvertimeHours,
		OvertimeRate:  r.OvertimeRate,

		TransportAllowance:   r.TransportAllowance,
		MealAllowance:        r.MealAllowance,
		PhoneAllowance:       r.PhoneAllowance,
		PerformanceAllowance: r.PerformanceAllowance,
		HolidayAllowance:     r.HolidayAllowance,
		OtherAllowance:       r.OtherAllowance,

		Deductions: r.Deductions,
		Insurance:  r.Insurance,
		Tax:        r.Tax,

		TotalAllowances: r.TotalAllowances,
		TotalDeductions: r.TotalDeductions,
		NetSalary:       r.NetSalary,

		Status: string(r.Status),
		PaidAt: paidAtStr,
	}
}
