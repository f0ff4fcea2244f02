package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFirstOfMonth(t *testing.T) {
	got := FirstOfMonth(time.Date(2026, time.March, 17, 13, 45, 0, 0, time.UTC))
	assert.Equal(t, date(2026, time.March, 1), got)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"same month", date(2026, time.January, 15), 0, date(2026, time.January, 1)},
		{"end of january does not skip february", date(2026, time.January, 31), 1, date(2026, time.February, 1)},
		{"crosses year", date(2026, time.November, 5), 3, date(2027, time.February, 1)},
		{"twenty years", date(2026, time.January, 1), 240, date(2046, time.January, 1)},
		{"backwards", date(2026, time.March, 10), -3, date(2025, time.December, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months))
		})
	}
}

func TestEndOfMonth(t *testing.T) {
	got := EndOfMonth(date(2028, time.February, 10))
	assert.Equal(t, 29, got.Day())
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 23, got.Hour())
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 0, MonthsBetween(date(2026, time.May, 1), date(2026, time.May, 31)))
	assert.Equal(t, 14, MonthsBetween(date(2026, time.May, 1), date(2027, time.July, 1)))
	assert.Equal(t, -2, MonthsBetween(date(2026, time.May, 1), date(2026, time.March, 1)))
}

func TestMonthDate(t *testing.T) {
	start := date(2026, time.April, 20)
	assert.Equal(t, date(2026, time.April, 1), MonthDate(start, 1))
	assert.Equal(t, date(2027, time.March, 1), MonthDate(start, 12))
	assert.True(t, MonthDate(time.Time{}, 5).IsZero())
}
