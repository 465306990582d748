package employee

import (
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateEmployeeRequest struct {
	FullName   *string `json:"full_name,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	HourlyRate *string `json:"hourly_rate,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be blank",
		})
	}

	if r.Position != nil {
		switch Position(*r.Position) {
		case PositionManager, PositionSupervisor, PositionStaff:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "position",
				Message: "position must be Manager, Supervisor or Staff",
			})
		}
	}

	if r.HourlyRate != nil {
		rate, err := decimal.NewFromString(*r.HourlyRate)
		if err != nil || rate.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "hourly_rate",
				Message: "hourly_rate must be a non-negative decimal number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                  string          `json:"id"`
	FullName            string          `json:"full_name"`
	Email               string          `json:"email"`
	Role                string          `json:"role"`
	Position            string          `json:"position"`
	Department          *string         `json:"department,omitempty"`
	EffectiveHourlyRate decimal.Decimal `json:"effective_hourly_rate"`
	IsActive            bool            `json:"is_active"`
}
