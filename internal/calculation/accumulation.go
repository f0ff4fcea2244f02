package calculation

import (
	"fmt"

	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/shopspring/decimal"
)

var minusOne = decimal.NewFromInt(-1)

// ValidateAnnualRate rejects rates at or below -100%.
func ValidateAnnualRate(annualRate decimal.Decimal) error {
	if annualRate.LessThanOrEqual(minusOne) {
		return fmt.Errorf("%w: annual rate must be above -100%%, got %s", domain.ErrInvalidInput, annualRate)
	}
	return nil
}

// Accumulate compounds every contribution for its remaining months at
// annualRate/12 a month.
//
// The contribution made in month i of N compounds for N-i+1 months, so the
// first one grows for all N months and the last for one. That is one month
// more than an annuity-due; the convention is kept so results match the
// published calculator.
func Accumulate(schedule domain.Schedule, annualRate decimal.Decimal) (domain.AccumulationResult, error) {
	if err := ValidateAnnualRate(annualRate); err != nil {
		return domain.AccumulationResult{}, err
	}
	if err := validateSchedule(schedule); err != nil {
		return domain.AccumulationResult{}, err
	}

	n := schedule.Len()
	factors := growthFactors(domain.MonthlyRate(annualRate), n)

	invested := decimal.Zero
	maturity := decimal.Zero
	for _, e := range schedule.Entries {
		monthsRemaining := n - e.MonthIndex + 1
		invested = invested.Add(e.Amount)
		maturity = maturity.Add(e.Amount.Mul(factors[monthsRemaining-1]))
	}

	return domain.AccumulationResult{TotalInvested: invested, MaturityValue: maturity}, nil
}
