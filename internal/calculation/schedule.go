package calculation

import (
	"fmt"

	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/finconsult/sipcalc/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ValidateContributionPlan checks a plan against the schedule generator's domain.
func ValidateContributionPlan(plan domain.ContributionPlan) error {
	if plan.StartingMonthlyAmount.IsNegative() {
		return fmt.Errorf("%w: starting monthly amount cannot be negative, got %s", domain.ErrInvalidInput, plan.StartingMonthlyAmount)
	}
	if plan.HorizonYears < 1 {
		return fmt.Errorf("%w: horizon must be at least 1 year, got %d", domain.ErrInvalidInput, plan.HorizonYears)
	}
	if plan.AnnualStepUpRate.IsNegative() {
		return fmt.Errorf("%w: annual step-up rate cannot be negative, got %s", domain.ErrInvalidInput, plan.AnnualStepUpRate)
	}
	return nil
}

// GenerateSchedule expands a plan into its monthly contributions. The amount
// steps up once after every 12 months, including after the final year, where
// the multiplication has no visible effect.
func GenerateSchedule(plan domain.ContributionPlan) (domain.Schedule, error) {
	if err := ValidateContributionPlan(plan); err != nil {
		return domain.Schedule{}, err
	}

	stepUp := one.Add(plan.AnnualStepUpRate)
	entries := make([]domain.ScheduleEntry, 0, plan.TotalMonths())
	current := plan.StartingMonthlyAmount

	for year := 1; year <= plan.HorizonYears; year++ {
		for month := 1; month <= domain.MonthsPerYear; month++ {
			idx := (year-1)*domain.MonthsPerYear + month
			entries = append(entries, domain.ScheduleEntry{
				MonthIndex: idx,
				Amount:     current,
				DueDate:    dateutil.MonthDate(plan.StartDate, idx),
			})
		}
		current = current.Mul(stepUp)
	}

	return domain.Schedule{HorizonYears: plan.HorizonYears, Entries: entries}, nil
}

// validateSchedule rejects schedules that were not built by GenerateSchedule's rules.
func validateSchedule(schedule domain.Schedule) error {
	if schedule.Len() == 0 {
		return fmt.Errorf("%w: schedule has no entries", domain.ErrInvalidInput)
	}
	for i, e := range schedule.Entries {
		if e.MonthIndex != i+1 {
			return fmt.Errorf("%w: schedule month %d out of order at position %d", domain.ErrInvalidInput, e.MonthIndex, i)
		}
		if e.Amount.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: month %d has negative contribution %s", domain.ErrInvalidInput, e.MonthIndex, e.Amount)
		}
	}
	return nil
}
