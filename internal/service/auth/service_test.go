package auth

import (
	"context"
	"testing"

	"github.com/bayanihr/payroll-backend-go/internal/domain/auth"
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/jwt"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
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

func newLoginFixture(t *testing.T, password string, active bool) (auth.AuthService, employee.Employee) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	emp := employee.Employee{
		ID:           uuid.NewString(),
		FullName:     "Maria Santos",
		Email:        "maria@example.com",
		PasswordHash: string(hash),
		Role:         employee.RoleAdmin,
		Position:     employee.PositionManager,
		IsActive:     active,
	}

	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{emp.ID: emp}}
	svc := NewAuthService(repo, jwt.NewJWTService("test-secret", "8h"))
	return svc, emp
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, emp := newLoginFixture(t, "secret-password", true)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: emp.Email, Password: "secret-password"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Equal(t, emp.ID, resp.Employee.ID)
	assert.Equal(t, "admin", resp.Employee.Role)
	assert.Equal(t, "500", resp.Employee.EffectiveHourlyRate.String())
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, emp := newLoginFixture(t, "secret-password", true)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: emp.Email, Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoginFixture(t, "secret-password", true)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "secret-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveEmployee(t *testing.T) {
	ctx := context.Background()
	svc, emp := newLoginFixture(t, "secret-password", false)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: emp.Email, Password: "secret-password"})
	assert.ErrorIs(t, err, auth.ErrInactiveEmployee)
}

func TestLogin_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoginFixture(t, "secret-password", true)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "not-an-email", Password: ""})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}
