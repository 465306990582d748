package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
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

func newClockFixture(t *testing.T, now time.Time) (*AttendanceServiceImpl, string, *fakeAttendanceRepo) {
	t.Helper()

	employeeRepo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	attendanceRepo := &fakeAttendanceRepo{}

	emp := employee.Employee{
		ID:       uuid.NewString(),
		FullName: "Maria Santos",
		Email:    "maria@example.com",
		Role:     employee.RoleEmployee,
		Position: employee.PositionStaff,
		IsActive: true,
	}
	employeeRepo.employees[emp.ID] = emp

	svc := NewAttendanceService(attendanceRepo, employeeRepo, time.UTC).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc, emp.ID, attendanceRepo
}

func TestClockIn(t *testing.T) {
	ctx := context.Background()
	svc, employeeID, _ := newClockFixture(t, time.Date(2024, time.March, 4, 8, 30, 0, 0, time.UTC))

	resp, err := svc.ClockIn(ctx, employeeID)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-04", resp.Date)
	require.NotNil(t, resp.TimeIn)
	assert.Equal(t, "08:30:00", *resp.TimeIn)
	assert.Nil(t, resp.TimeOut)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestClockIn_LateAfterNine(t *testing.T) {
	ctx := context.Background()
	svc, employeeID, _ := newClockFixture(t, time.Date(2024, time.March, 4, 9, 15, 0, 0, time.UTC))

	resp, err := svc.ClockIn(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestClockIn_AlreadyClockedIn(t *testing.T) {
	ctx := context.Background()
	svc, employeeID, _ := newClockFixture(t, time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(ctx, employeeID)
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, employeeID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockIn_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newClockFixture(t, time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestClockOut(t *testing.T) {
	ctx := context.Background()
	svc, employeeID, _ := newClockFixture(t, time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(ctx, employeeID)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, time.March, 4, 17, 30, 0, 0, time.UTC) }

	resp, err := svc.ClockOut(ctx, employeeID)
	require.NoError(t, err)

	require.NotNil(t, resp.TimeOut)
	assert.Equal(t, "17:30:00", *resp.TimeOut)
	require.NotNil(t, resp.HoursWorked)
	assert.Equal(t, "9.50", *resp.HoursWorked)
}

func TestClockOut_Overnight(t *testing.T) {
	ctx := context.Background()
	svc, employeeID, _ := newClockFixture(t, time.Date(2024, time.March, 4, 22, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(ctx, employeeID)
	require.NoError(t, err)

	// Clock out past midnight; the shift still spans eight hours.
	svc.now = func() time.Time { return time.Date(2024, time.March, 5, 6, 0, 0, 0, time.UTC) }

	resp, err := svc.ClockOut(ctx, employeeID)
	require.NoError(t, err)
	require.NotNil(t, resp.HoursWorked)
	assert.Equal(t, "8.00", *resp.HoursWorked)
}

func TestClockOut_NotClockedIn(t *testing.T) {
	ctx := context.Background()
	svc, employeeID, _ := newClockFixture(t, time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC))

	_, err := svc.ClockOut(ctx, employeeID)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestToday(t *testing.T) {
	ctx := context.Background()
	svc, employeeID, attendanceRepo := newClockFixture(t, time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(ctx, employeeID)
	require.NoError(t, err)

	// A record from another day stays out of today's listing.
	timeIn := "08:00:00"
	timeOut := "16:00:00"
	attendanceRepo.records = append(attendanceRepo.records, attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
		TimeIn:     &timeIn,
		TimeOut:    &timeOut,
		Status:     attendance.StatusPresent,
	})

	records, err := svc.Today(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-03-04", records[0].Date)
}

func TestListRange(t *testing.T) {
	ctx := context.Background()
	svc, employeeID, attendanceRepo := newClockFixture(t, time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC))

	timeIn := "08:00:00"
	timeOut := "16:00:00"
	for day := 1; day <= 20; day += 3 {
		attendanceRepo.records = append(attendanceRepo.records, attendance.Attendance{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			Date:       time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC),
			TimeIn:     &timeIn,
			TimeOut:    &timeOut,
			Status:     attendance.StatusPresent,
		})
	}

	records, err := svc.ListRange(ctx, employeeID,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, records, 5) // days 1, 4, 7, 10, 13
}
