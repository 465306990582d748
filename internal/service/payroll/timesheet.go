package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const timeOfDayLayout = "15:04:05"

var (
	regularDailyHours = decimal.NewFromInt(8)

	// OvertimePremium is the fixed multiplier applied to the hourly rate for
	// hours beyond the daily regular limit (25% premium).
	OvertimePremium = decimal.RequireFromString("1.25")
)

// HoursBetween computes the elapsed hours between two wall-clock times on the
// same nominal day. A time_out earlier than time_in means the shift crossed
// midnight, so a full day is added before dividing. The result carries two
// decimal places.
func HoursBetween(timeIn, timeOut string) (decimal.Decimal, error) {
	in, err := time.Parse(timeOfDayLayout, timeIn)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid time_in %q: %w", timeIn, err)
	}
	out, err := time.Parse(timeOfDayLayout, timeOut)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid time_out %q: %w", timeOut, err)
	}

	diff := out.Sub(in)
	if diff < 0 {
		diff += 24 * time.Hour
	}

	seconds := decimal.NewFromInt(int64(diff / time.Second))
	return seconds.Div(decimal.NewFromInt(3600)).Round(2), nil
}

// SplitRegularOvertime caps a day's worked hours at the regular limit and
// returns the excess as overtime.
func SplitRegularOvertime(hoursWorked decimal.Decimal) (regular, overtime decimal.Decimal) {
	if hoursWorked.LessThanOrEqual(regularDailyHours) {
		return hoursWorked, decimal.Zero
	}
	return regularDailyHours, hoursWorked.Sub(regularDailyHours)
}
