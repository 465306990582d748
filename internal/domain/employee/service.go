package employee

import "context"

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists all active employees (admin only)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee updates mutable profile fields
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
