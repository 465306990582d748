package payroll

import (
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
)

// CurrentPeriod resolves the canonical semi-monthly window containing the
// reference date: [1st, 15th] for the first half of the month, [16th, last
// day] for the second. The last day comes from normalizing day zero of the
// following month, so February and leap years need no special casing.
func CurrentPeriod(referenceDate time.Time) payroll.PayPeriod {
	year, month, day := referenceDate.Date()
	loc := referenceDate.Location()

	if day <= 15 {
		return payroll.PayPeriod{
			Start: time.Date(year, month, 1, 0, 0, 0, 0, loc),
			End:   time.Date(year, month, 15, 0, 0, 0, 0, loc),
		}
	}
	return payroll.PayPeriod{
		Start: time.Date(year, month, 16, 0, 0, 0, 0, loc),
		End:   time.Date(year, month+1, 0, 0, 0, 0, 0, loc),
	}
}

// RecentPeriods generates the two semi-monthly periods of each of the last
// `months` months, the reference month first, first half before second half
// within each month.
func RecentPeriods(referenceDate time.Time, months int) []payroll.PayPeriod {
	year, month, _ := referenceDate.Date()
	loc := referenceDate.Location()

	periods := make([]payroll.PayPeriod, 0, months*2)
	for i := 0; i < months; i++ {
		first := time.Date(year, month-time.Month(i), 1, 0, 0, 0, 0, loc)
		y, m := first.Year(), first.Month()

		periods = append(periods,
			payroll.PayPeriod{
				Start: time.Date(y, m, 1, 0, 0, 0, 0, loc),
				End:   time.Date(y, m, 15, 0, 0, 0, 0, loc),
			},
			payroll.PayPeriod{
				Start: time.Date(y, m, 16, 0, 0, 0, 0, loc),
				End:   time.Date(y, m+1, 0, 0, 0, 0, 0, loc),
			},
		)
	}
	return periods
}
