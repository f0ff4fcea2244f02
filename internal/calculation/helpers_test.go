package calculation

import (
	"fmt"
	"testing"

	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertClose checks |want-got| < tol.
func assertClose(t *testing.T, want, got decimal.Decimal, tol string, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, got.Sub(want).Abs().LessThan(d(tol)),
		"expected %s ± %s, got %s %s", want.String(), tol, got.String(), fmt.Sprint(msgAndArgs...))
}

func plan(monthly, stepUp string, years int) domain.ContributionPlan {
	return domain.ContributionPlan{
		StartingMonthlyAmount: d(monthly),
		AnnualStepUpRate:      d(stepUp),
		HorizonYears:          years,
	}
}

func mustSchedule(t *testing.T, p domain.ContributionPlan) domain.Schedule {
	t.Helper()
	s, err := GenerateSchedule(p)
	require.NoError(t, err)
	return s
}

// scheduleOf builds a schedule from raw monthly amounts.
func scheduleOf(amounts ...string) domain.Schedule {
	entries := make([]domain.ScheduleEntry, len(amounts))
	for i, a := range amounts {
		entries[i] = domain.ScheduleEntry{MonthIndex: i + 1, Amount: d(a)}
	}
	return domain.Schedule{HorizonYears: len(amounts) / domain.MonthsPerYear, Entries: entries}
}
