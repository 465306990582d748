package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusProcessed PayrollStatus = "processed"
	PayrollStatusPaid      PayrollStatus = "paid"
)

// Deductions holds the semi-monthly statutory withholdings of one item.
type Deductions struct {
	SSS        decimal.Decimal
	PagIbig    decimal.Decimal
	PhilHealth decimal.Decimal
	Tax        decimal.Decimal
	Others     decimal.Decimal
}

func (d Deductions) Total() decimal.Decimal {
	return d.SSS.Add(d.PagIbig).Add(d.PhilHealth).Add(d.Tax).Add(d.Others)
}

// PayrollItem is the computed result for one employee over one pay period.
// Earnings and deduction figures are immutable once created; only the status
// advances, and only forward (processed -> paid).
type PayrollItem struct {
	ID            string
	EmployeeID    string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	GrossPay      decimal.Decimal
	Deductions    Deductions
	NetPay        decimal.Decimal
	Status        PayrollStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
}

// PayPeriod is a semi-monthly window: the 1st-15th or the 16th-last day of
// some month. Derived from a reference date, never stored as an entity.
type PayPeriod struct {
	Start time.Time
	End   time.Time
}

// Dates enumerates every calendar day from Start to End inclusive.
func (p PayPeriod) Dates() []time.Time {
	var dates []time.Time
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
