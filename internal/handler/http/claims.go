package http

import (
	"net/http"

	"github.com/bayanihr/payroll-backend-go/internal/domain/auth"
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
)

// claimsFromRequest extracts the verified token claims of the caller.
// Services take the employee ID as an explicit argument, so handlers resolve
// it here at the edge and pass it down.
func claimsFromRequest(r *http.Request) (employeeID string, role employee.Role, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", auth.ErrInvalidToken
	}

	roleClaim, _ := claims["role"].(string)
	return employeeID, employee.Role(roleClaim), nil
}
