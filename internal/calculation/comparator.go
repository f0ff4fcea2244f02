package calculation

import (
	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareRates accumulates one schedule under two rates. The schedule does
// not depend on the rate, so it is generated once.
func CompareRates(plan domain.ContributionPlan, baseRate, alternateRate decimal.Decimal) (domain.RateComparison, error) {
	schedule, err := GenerateSchedule(plan)
	if err != nil {
		return domain.RateComparison{}, err
	}
	return compareSchedule(schedule, baseRate, alternateRate)
}

func compareSchedule(schedule domain.Schedule, baseRate, alternateRate decimal.Decimal) (domain.RateComparison, error) {
	base, err := Accumulate(schedule, baseRate)
	if err != nil {
		return domain.RateComparison{}, err
	}
	alt, err := Accumulate(schedule, alternateRate)
	if err != nil {
		return domain.RateComparison{}, err
	}

	return domain.RateComparison{
		BaseRate:        baseRate,
		AlternateRate:   alternateRate,
		BaseResult:      base,
		AlternateResult: alt,
		Delta:           alt.MaturityValue.Sub(base.MaturityValue),
	}, nil
}
