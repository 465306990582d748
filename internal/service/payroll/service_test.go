package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== IN-MEMORY FAKES ==========

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		result = append(result, emp)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeAttendanceRepo) GetRecordsForDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) GetOpenRecord(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.IsOpen() {
			return rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Close(ctx context.Context, id string, timeOut string, hoursWorked decimal.Decimal) (attendance.Attendance, error) {
	for i, rec := range f.records {
		if rec.ID == id {
			f.records[i].TimeOut = &timeOut
			f.records[i].HoursWorked = &hoursWorked
			return f.records[i], nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(start) && !rec.Date.After(end) {
			result = append(result, rec)
		}
	}
	return result, nil
}

type fakePayrollRepo struct {
	items map[string]payroll.PayrollItem // keyed by id
}

func periodKey(employeeID string, start, end time.Time) string {
	return employeeID + "_" + start.Format("2006-01-02") + "_" + end.Format("2006-01-02")
}

func (f *fakePayrollRepo) Create(ctx context.Context, item payroll.PayrollItem) (payroll.PayrollItem, error) {
	for _, existing := range f.items {
		if periodKey(existing.EmployeeID, existing.PeriodStart, existing.PeriodEnd) ==
			periodKey(item.EmployeeID, item.PeriodStart, item.PeriodEnd) {
			return payroll.PayrollItem{}, payroll.ErrPayrollItemExists
		}
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.PayrollItem, error) {
	item, ok := f.items[id]
	if !ok {
		return payroll.PayrollItem{}, payroll.ErrPayrollItemNotFound
	}
	return item, nil
}

func (f *fakePayrollRepo) GetByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (payroll.PayrollItem, error) {
	for _, item := range f.items {
		if item.EmployeeID == employeeID && item.PeriodStart.Equal(periodStart) && item.PeriodEnd.Equal(periodEnd) {
			return item, nil
		}
	}
	return payroll.PayrollItem{}, payroll.ErrPayrollItemNotFound
}

func (f *fakePayrollRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollItem, error) {
	var result []payroll.PayrollItem
	for _, item := range f.items {
		if item.EmployeeID == employeeID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *fakePayrollRepo) MarkPaid(ctx context.Context, id string) (payroll.PayrollItem, error) {
	item, ok := f.items[id]
	if !ok {
		return payroll.PayrollItem{}, payroll.ErrPayrollItemNotFound
	}
	if item.Status == payroll.PayrollStatusPaid {
		return payroll.PayrollItem{}, payroll.ErrPayrollAlreadyPaid
	}
	item.Status = payroll.PayrollStatusPaid
	f.items[id] = item
	return item, nil
}

// ========== TEST SETUP ==========

func newEngineFixture() (payroll.PayrollService, *fakeEmployeeRepo, *fakeAttendanceRepo, *fakePayrollRepo) {
	employeeRepo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	attendanceRepo := &fakeAttendanceRepo{}
	payrollRepo := &fakePayrollRepo{items: make(map[string]payroll.PayrollItem)}
	svc := NewPayrollService(payrollRepo, attendanceRepo, employeeRepo)
	return svc, employeeRepo, attendanceRepo, payrollRepo
}

func addStaff(repo *fakeEmployeeRepo, hourlyRate *decimal.Decimal) employee.Employee {
	emp := employee.Employee{
		ID:         uuid.NewString(),
		FullName:   "Juan Dela Cruz",
		Email:      "juan@example.com",
		Role:       employee.RoleEmployee,
		Position:   employee.PositionStaff,
		HourlyRate: hourlyRate,
		IsActive:   true,
	}
	repo.employees[emp.ID] = emp
	return emp
}

func closedRecord(employeeID string, day time.Time, timeIn, timeOut string) attendance.Attendance {
	return attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       day,
		TimeIn:     &timeIn,
		TimeOut:    &timeOut,
		Status:     attendance.StatusPresent,
	}
}

var marchFirstHalf = payroll.PayPeriod{
	Start: date(2024, time.March, 1),
	End:   date(2024, time.March, 15),
}

// ========== TESTS ==========

func TestComputeOrFetch_SingleTenHourDay(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, attendanceRepo, _ := newEngineFixture()

	rate := decimal.NewFromInt(150)
	emp := addStaff(employeeRepo, &rate)
	attendanceRepo.records = append(attendanceRepo.records,
		closedRecord(emp.ID, date(2024, time.March, 4), "08:00:00", "18:00:00"))

	item, err := svc.ComputeOrFetch(ctx, emp.ID, marchFirstHalf)
	require.NoError(t, err)

	assertDecimal(t, "8", item.RegularHours)
	assertDecimal(t, "2", item.OvertimeHours)
	assertDecimal(t, "1575", item.GrossPay) // 8*150 + 2*187.50
	assertDecimal(t, "67.5", item.Deductions.SSS)
	assertDecimal(t, "150", item.Deductions.PhilHealth)
	assertDecimal(t, "31.5", item.Deductions.PagIbig)
	assertDecimal(t, "0", item.Deductions.Tax)
	assertDecimal(t, "1326", item.NetPay)
	assert.Equal(t, string(payroll.PayrollStatusProcessed), item.Status)
	assert.Equal(t, "2024-03-01", item.PeriodStart)
	assert.Equal(t, "2024-03-15", item.PeriodEnd)
}

func TestComputeOrFetch_PositionDefaultRate(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, attendanceRepo, _ := newEngineFixture()

	// No explicit rate: Staff defaults to 150/hour.
	emp := addStaff(employeeRepo, nil)
	attendanceRepo.records = append(attendanceRepo.records,
		closedRecord(emp.ID, date(2024, time.March, 4), "08:00:00", "16:00:00"))

	item, err := svc.ComputeOrFetch(ctx, emp.ID, marchFirstHalf)
	require.NoError(t, err)

	assertDecimal(t, "8", item.RegularHours)
	assertDecimal(t, "0", item.OvertimeHours)
	assertDecimal(t, "1200", item.GrossPay)
}

func TestComputeOrFetch_CacheFirstIdempotence(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, attendanceRepo, _ := newEngineFixture()

	rate := decimal.NewFromInt(150)
	emp := addStaff(employeeRepo, &rate)
	attendanceRepo.records = append(attendanceRepo.records,
		closedRecord(emp.ID, date(2024, time.March, 4), "08:00:00", "18:00:00"))

	first, err := svc.ComputeOrFetch(ctx, emp.ID, marchFirstHalf)
	require.NoError(t, err)

	// New attendance after the first computation must not change the cached
	// result: the stored item is returned unchanged.
	attendanceRepo.records = append(attendanceRepo.records,
		closedRecord(emp.ID, date(2024, time.March, 5), "08:00:00", "18:00:00"))

	second, err := svc.ComputeOrFetch(ctx, emp.ID, marchFirstHalf)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assertDecimal(t, "1575", second.GrossPay)
	assertDecimal(t, "8", second.RegularHours)
}

func TestComputeOrFetch_NoAttendanceData(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, _, payrollRepo := newEngineFixture()

	emp := addStaff(employeeRepo, nil)

	_, err := svc.ComputeOrFetch(ctx, emp.ID, marchFirstHalf)
	assert.ErrorIs(t, err, payroll.ErrNoAttendanceData)
	assert.Empty(t, payrollRepo.items, "no item may be persisted for an empty period")
}

func TestComputeOrFetch_EmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newEngineFixture()

	_, err := svc.ComputeOrFetch(ctx, "missing", marchFirstHalf)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestComputeOrFetch_OpenRecordContributesNothing(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, attendanceRepo, _ := newEngineFixture()

	rate := decimal.NewFromInt(150)
	emp := addStaff(employeeRepo, &rate)

	timeIn := "08:00:00"
	attendanceRepo.records = append(attendanceRepo.records,
		closedRecord(emp.ID, date(2024, time.March, 4), "08:00:00", "16:00:00"),
		attendance.Attendance{
			ID:         uuid.NewString(),
			EmployeeID: emp.ID,
			Date:       date(2024, time.March, 5),
			TimeIn:     &timeIn,
			Status:     attendance.StatusPresent,
		})

	item, err := svc.ComputeOrFetch(ctx, emp.ID, marchFirstHalf)
	require.NoError(t, err)

	// Only the closed record counts.
	assertDecimal(t, "8", item.RegularHours)
	assertDecimal(t, "0", item.OvertimeHours)
}

func TestComputeOrFetch_PrefersStoredHoursWorked(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, attendanceRepo, _ := newEngineFixture()

	rate := decimal.NewFromInt(150)
	emp := addStaff(employeeRepo, &rate)

	// The record claims 9.5 hours even though the clock times span 10.
	rec := closedRecord(emp.ID, date(2024, time.March, 4), "08:00:00", "18:00:00")
	stored := decimal.RequireFromString("9.5")
	rec.HoursWorked = &stored
	attendanceRepo.records = append(attendanceRepo.records, rec)

	item, err := svc.ComputeOrFetch(ctx, emp.ID, marchFirstHalf)
	require.NoError(t, err)

	assertDecimal(t, "8", item.RegularHours)
	assertDecimal(t, "1.5", item.OvertimeHours)
}

func TestComputeOrFetch_OvernightShift(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, attendanceRepo, _ := newEngineFixture()

	rate := decimal.NewFromInt(150)
	emp := addStaff(employeeRepo, &rate)
	attendanceRepo.records = append(attendanceRepo.records,
		closedRecord(emp.ID, date(2024, time.March, 4), "22:00:00", "06:00:00"))

	item, err := svc.ComputeOrFetch(ctx, emp.ID, marchFirstHalf)
	require.NoError(t, err)

	assertDecimal(t, "8", item.RegularHours)
	assertDecimal(t, "0", item.OvertimeHours)
	assertDecimal(t, "1200", item.GrossPay)
}

func TestMarkPaid_OnceOnly(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, attendanceRepo, payrollRepo := newEngineFixture()

	rate := decimal.NewFromInt(150)
	emp := addStaff(employeeRepo, &rate)
	attendanceRepo.records = append(attendanceRepo.records,
		closedRecord(emp.ID, date(2024, time.March, 4), "08:00:00", "18:00:00"))

	item, err := svc.ComputeOrFetch(ctx, emp.ID, marchFirstHalf)
	require.NoError(t, err)

	paid, err := svc.MarkPaid(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusPaid), paid.Status)

	// Second attempt is rejected and the stored item keeps its figures.
	_, err = svc.MarkPaid(ctx, item.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyPaid)

	stored := payrollRepo.items[item.ID]
	assert.Equal(t, payroll.PayrollStatusPaid, stored.Status)
	assertDecimal(t, "1575", stored.GrossPay)
	assertDecimal(t, "1326", stored.NetPay)
}

func TestMarkPaid_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newEngineFixture()

	_, err := svc.MarkPaid(ctx, "missing")
	assert.ErrorIs(t, err, payroll.ErrPayrollItemNotFound)
}

func TestRecentPeriods_Labels(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newEngineFixture()

	periods := svc.RecentPeriods(ctx, date(2024, time.March, 10), 2)
	require.Len(t, periods, 4)

	assert.Equal(t, "2024-03-01", periods[0].Start)
	assert.Equal(t, "Mar 1-15, 2024", periods[0].Label)
	assert.Equal(t, "Mar 16-31, 2024", periods[1].Label)
	assert.Equal(t, "Feb 16-29, 2024", periods[3].Label)
}
