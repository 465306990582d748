package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentPeriod(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"first half", date(2024, time.March, 10), date(2024, time.March, 1), date(2024, time.March, 15)},
		{"boundary day 15", date(2024, time.March, 15), date(2024, time.March, 1), date(2024, time.March, 15)},
		{"second half", date(2024, time.March, 20), date(2024, time.March, 16), date(2024, time.March, 31)},
		{"boundary day 16", date(2024, time.March, 16), date(2024, time.March, 16), date(2024, time.March, 31)},
		{"leap year february", date(2024, time.February, 20), date(2024, time.February, 16), date(2024, time.February, 29)},
		{"non-leap february", date(2023, time.February, 20), date(2023, time.February, 16), date(2023, time.February, 28)},
		{"thirty day month", date(2024, time.April, 28), date(2024, time.April, 16), date(2024, time.April, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := CurrentPeriod(tt.reference)
			assert.Equal(t, tt.wantStart, period.Start)
			assert.Equal(t, tt.wantEnd, period.End)
		})
	}
}

func TestPayPeriodDates(t *testing.T) {
	period := CurrentPeriod(date(2024, time.March, 20))
	dates := period.Dates()

	require.Len(t, dates, 16)
	assert.Equal(t, date(2024, time.March, 16), dates[0])
	assert.Equal(t, date(2024, time.March, 31), dates[15])

	// Pure function of start/end: a second enumeration is identical.
	assert.Equal(t, dates, period.Dates())
}

func TestRecentPeriods(t *testing.T) {
	periods := RecentPeriods(date(2024, time.March, 10), 3)
	require.Len(t, periods, 6)

	// Reference month first, first half before second half.
	assert.Equal(t, date(2024, time.March, 1), periods[0].Start)
	assert.Equal(t, date(2024, time.March, 15), periods[0].End)
	assert.Equal(t, date(2024, time.March, 16), periods[1].Start)
	assert.Equal(t, date(2024, time.March, 31), periods[1].End)

	assert.Equal(t, date(2024, time.February, 1), periods[2].Start)
	assert.Equal(t, date(2024, time.February, 29), periods[3].End)

	assert.Equal(t, date(2024, time.January, 16), periods[5].Start)
	assert.Equal(t, date(2024, time.January, 31), periods[5].End)
}

func TestRecentPeriods_CrossesYearBoundary(t *testing.T) {
	periods := RecentPeriods(date(2024, time.January, 5), 2)
	require.Len(t, periods, 4)

	assert.Equal(t, date(2024, time.January, 1), periods[0].Start)
	assert.Equal(t, date(2023, time.December, 1), periods[2].Start)
	assert.Equal(t, date(2023, time.December, 31), periods[3].End)
}
