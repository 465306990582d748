package payroll

import (
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ComputePayrollRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *ComputePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidDate(r.PeriodStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start must be a date in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidDate(r.PeriodEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be a date in YYYY-MM-DD format",
		})
	}

	if len(errs) == 0 && r.PeriodEnd < r.PeriodStart {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must not be before period_start",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Period parses the validated request dates into a PayPeriod.
func (r *ComputePayrollRequest) Period() (PayPeriod, error) {
	start, err := time.Parse("2006-01-02", r.PeriodStart)
	if err != nil {
		return PayPeriod{}, err
	}
	end, err := time.Parse("2006-01-02", r.PeriodEnd)
	if err != nil {
		return PayPeriod{}, err
	}
	return PayPeriod{Start: start, End: end}, nil
}

type DeductionsResponse struct {
	SSS        decimal.Decimal `json:"sss"`
	PagIbig    decimal.Decimal `json:"pagibig"`
	PhilHealth decimal.Decimal `json:"philhealth"`
	Tax        decimal.Decimal `json:"tax"`
	Others     decimal.Decimal `json:"others"`
	Total      decimal.Decimal `json:"total"`
}

type PayrollItemResponse struct {
	ID            string             `json:"id"`
	EmployeeID    string             `json:"employee_id"`
	EmployeeName  string             `json:"employee_name,omitempty"`
	PeriodStart   string             `json:"period_start"`
	PeriodEnd     string             `json:"period_end"`
	RegularHours  decimal.Decimal    `json:"regular_hours"`
	OvertimeHours decimal.Decimal    `json:"overtime_hours"`
	GrossPay      decimal.Decimal    `json:"gross_pay"`
	Deductions    DeductionsResponse `json:"deductions"`
	NetPay        decimal.Decimal    `json:"net_pay"`
	Status        string             `json:"status"`
}

type PayPeriodResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}
