package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ComputeOrFetch is cache-first: a previously persisted item for the exact
// (employee, period) key is returned untouched, never recomputed. Otherwise
// the period's attendance is rolled up into a new item with status
// "processed". Callers must pass a period with End >= Start.
func (s *PayrollServiceImpl) ComputeOrFetch(ctx context.Context, employeeID string, period payroll.PayPeriod) (payroll.PayrollItemResponse, error) {
	existing, err := s.payrollRepo.GetByEmployeePeriod(ctx, employeeID, period.Start, period.End)
	if err == nil {
		return mapToItemResponse(existing), nil
	}
	if !errors.Is(err, payroll.ErrPayrollItemNotFound) {
		return payroll.PayrollItemResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}

	var records []attendance.Attendance
	for _, date := range period.Dates() {
		dayRecords, err := s.attendanceRepo.GetRecordsForDate(ctx, employeeID, date)
		if err != nil {
			return payroll.PayrollItemResponse{}, fmt.Errorf("failed to load attendance for %s: %w", date.Format("2006-01-02"), err)
		}
		records = append(records, dayRecords...)
	}
	if len(records) == 0 {
		return payroll.PayrollItemResponse{}, payroll.ErrNoAttendanceData
	}

	totalRegular := decimal.Zero
	totalOvertime := decimal.Zero
	for _, rec := range records {
		if rec.TimeIn == nil || rec.TimeOut == nil {
			// An open clock-in contributes nothing until closed.
			continue
		}

		var hours decimal.Decimal
		if rec.HoursWorked != nil {
			hours = *rec.HoursWorked
		} else {
			hours, err = HoursBetween(*rec.TimeIn, *rec.TimeOut)
			if err != nil {
				return payroll.PayrollItemResponse{}, fmt.Errorf("attendance record %s: %w", rec.ID, err)
			}
		}

		regular, overtime := SplitRegularOvertime(hours)
		totalRegular = totalRegular.Add(regular)
		totalOvertime = totalOvertime.Add(overtime)
	}

	hourlyRate := emp.EffectiveHourlyRate()
	overtimeRate := hourlyRate.Mul(OvertimePremium)
	grossPay := totalRegular.Mul(hourlyRate).Add(totalOvertime.Mul(overtimeRate))

	// Two periods compose one month, so the bracket tables are indexed by
	// twice the semi-monthly gross and each result halved back.
	monthlySalary := grossPay.Mul(two)

	deductions := payroll.Deductions{
		SSS:        SSS(monthlySalary).Div(two).Round(2),
		PhilHealth: PhilHealth(monthlySalary).Div(two).Round(2),
		PagIbig:    PagIbig(monthlySalary).Div(two).Round(2),
		Tax:        WithholdingTax(monthlySalary).Div(two).Round(2),
		Others:     decimal.Zero,
	}
	netPay := grossPay.Sub(deductions.Total())

	item := payroll.PayrollItem{
		ID:            uuid.NewString(),
		EmployeeID:    employeeID,
		PeriodStart:   period.Start,
		PeriodEnd:     period.End,
		RegularHours:  totalRegular,
		OvertimeHours: totalOvertime,
		GrossPay:      grossPay,
		Deductions:    deductions,
		NetPay:        netPay,
		Status:        payroll.PayrollStatusProcessed,
	}

	created, err := s.payrollRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollItemExists) {
			// Lost the compute-if-absent race; the stored item wins.
			stored, getErr := s.payrollRepo.GetByEmployeePeriod(ctx, employeeID, period.Start, period.End)
			if getErr != nil {
				return payroll.PayrollItemResponse{}, getErr
			}
			return mapToItemResponse(stored), nil
		}
		return payroll.PayrollItemResponse{}, fmt.Errorf("failed to persist payroll item: %w", err)
	}

	created.EmployeeName = &emp.FullName
	return mapToItemResponse(created), nil
}

func (s *PayrollServiceImpl) GetItem(ctx context.Context, id string) (payroll.PayrollItemResponse, error) {
	item, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}
	return mapToItemResponse(item), nil
}

func (s *PayrollServiceImpl) ListItems(ctx context.Context, employeeID string) ([]payroll.PayrollItemResponse, error) {
	items, err := s.payrollRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, mapToItemResponse(item))
	}
	return result, nil
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PayrollItemResponse, error) {
	updated, err := s.payrollRepo.MarkPaid(ctx, id)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}
	return mapToItemResponse(updated), nil
}

func (s *PayrollServiceImpl) RecentPeriods(ctx context.Context, referenceDate time.Time, months int) []payroll.PayPeriodResponse {
	periods := RecentPeriods(referenceDate, months)

	result := make([]payroll.PayPeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, payroll.PayPeriodResponse{
			Start: p.Start.Format("2006-01-02"),
			End:   p.End.Format("2006-01-02"),
			Label: fmt.Sprintf("%s %d-%d, %d", p.Start.Format("Jan"), p.Start.Day(), p.End.Day(), p.Start.Year()),
		})
	}
	return result
}

// ========== HELPERS ==========

func mapToItemResponse(item payroll.PayrollItem) payroll.PayrollItemResponse {
	employeeName := ""
	if item.EmployeeName != nil {
		employeeName = *item.EmployeeName
	}

	return payroll.PayrollItemResponse{
		ID:            item.ID,
		EmployeeID:    item.EmployeeID,
		EmployeeName:  employeeName,
		PeriodStart:   item.PeriodStart.Format("2006-01-02"),
		PeriodEnd:     item.PeriodEnd.Format("2006-01-02"),
		RegularHours:  item.RegularHours,
		OvertimeHours: item.OvertimeHours,
		GrossPay:      item.GrossPay,
		Deductions: payroll.DeductionsResponse{
			SSS:        item.Deductions.SSS,
			PagIbig:    item.Deductions.PagIbig,
			PhilHealth: item.Deductions.PhilHealth,
			Tax:        item.Deductions.Tax,
			Others:     item.Deductions.Others,
			Total:      item.Deductions.Total(),
		},
		NetPay: item.NetPay,
		Status: string(item.Status),
	}
}
