package calculation

import (
	"testing"
	"time"

	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScheduleStepsUpAtYearBoundaries(t *testing.T) {
	s := mustSchedule(t, plan("1000", "0.10", 3))

	require.Equal(t, 36, s.Len())
	assert.Equal(t, 3, s.HorizonYears)
	for i, e := range s.Entries {
		assert.Equal(t, i+1, e.MonthIndex)
		var want string
		switch {
		case e.MonthIndex <= 12:
			want = "1000"
		case e.MonthIndex <= 24:
			want = "1100"
		default:
			want = "1210"
		}
		assert.True(t, e.Amount.Equal(d(want)), "month %d: got %s want %s", e.MonthIndex, e.Amount, want)
		assert.True(t, e.DueDate.IsZero())
	}
}

func TestGenerateScheduleZeroStepUpIsFlat(t *testing.T) {
	s := mustSchedule(t, plan("2500", "0", 5))
	for _, e := range s.Entries {
		assert.True(t, e.Amount.Equal(d("2500")))
	}
}

func TestGenerateScheduleAllowsZeroAmount(t *testing.T) {
	s := mustSchedule(t, plan("0", "0.05", 1))
	assert.Equal(t, 12, s.Len())
	assert.True(t, s.Entries[11].Amount.IsZero())
}

func TestGenerateScheduleDueDates(t *testing.T) {
	p := plan("1000", "0", 2)
	p.StartDate = time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	s := mustSchedule(t, p)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), s.Entries[0].DueDate)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), s.Entries[12].DueDate)
	assert.Equal(t, time.Date(2027, time.December, 1, 0, 0, 0, 0, time.UTC), s.Entries[23].DueDate)
}

func TestGenerateScheduleRejectsInvalidPlans(t *testing.T) {
	tests := []struct {
		name string
		plan domain.ContributionPlan
	}{
		{"zero horizon", plan("1000", "0.1", 0)},
		{"negative horizon", plan("1000", "0.1", -2)},
		{"negative amount", plan("-1", "0.1", 10)},
		{"negative step-up", plan("1000", "-0.01", 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSchedule(tt.plan)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestScheduleYearly(t *testing.T) {
	s := mustSchedule(t, plan("1000", "0.10", 2))
	rows := s.Yearly()

	require.Len(t, rows, 2)
	assert.True(t, rows[0].MonthlyAmount.Equal(d("1000")))
	assert.True(t, rows[0].YearContribution.Equal(d("12000")))
	assert.True(t, rows[1].MonthlyAmount.Equal(d("1100")))
	assert.True(t, rows[1].YearContribution.Equal(d("13200")))
	assert.True(t, rows[1].CumulativeInvested.Equal(d("25200")))
}
