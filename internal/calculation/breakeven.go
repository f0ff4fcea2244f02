package calculation

import (
	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxSustainableWithdrawal searches for the largest monthly withdrawal, to the
// paisa, that lasts at least targetMonths. The plan's MonthlyWithdrawal is
// ignored; its rate, month cap and start date are used for every candidate.
func MaxSustainableWithdrawal(corpus decimal.Decimal, plan domain.WithdrawalPlan, targetMonths int) (decimal.Decimal, domain.SustainabilityResult, error) {
	if !corpus.IsPositive() {
		return decimal.Zero, domain.SustainabilityResult{}, invalidf("corpus must be positive, got %s", corpus)
	}
	if targetMonths < 1 || targetMonths > plan.MaxMonths {
		return decimal.Zero, domain.SustainabilityResult{}, invalidf("target months must be between 1 and %d, got %d", plan.MaxMonths, targetMonths)
	}

	minW := decimal.Zero // always sustainable by convention
	maxW := corpus       // anything above the corpus lasts zero months
	tolerance := decimal.NewFromFloat(0.001)
	maxIterations := 100

	candidate := plan
	for i := 0; i < maxIterations; i++ {
		testW := minW.Add(maxW).Div(decimal.NewFromInt(2))
		candidate.MonthlyWithdrawal = testW

		result, err := SimulateWithdrawals(corpus, candidate)
		if err != nil {
			return decimal.Zero, domain.SustainabilityResult{}, err
		}

		if result.MonthsLasted >= targetMonths {
			minW = testW
		} else {
			maxW = testW
		}

		if maxW.Sub(minW).LessThan(tolerance) {
			break
		}
	}

	// The threshold lies in [minW, maxW); try the next paisa up before
	// settling on the truncated lower bound.
	best := minW.Truncate(2)
	candidate.MonthlyWithdrawal = best.Add(decimal.NewFromFloat(0.01))
	result, err := SimulateWithdrawals(corpus, candidate)
	if err != nil {
		return decimal.Zero, domain.SustainabilityResult{}, err
	}
	if result.MonthsLasted >= targetMonths {
		return candidate.MonthlyWithdrawal, result, nil
	}

	if !best.IsPositive() {
		return decimal.Zero, domain.SustainabilityResult{}, nil
	}
	candidate.MonthlyWithdrawal = best
	result, err = SimulateWithdrawals(corpus, candidate)
	if err != nil {
		return decimal.Zero, domain.SustainabilityResult{}, err
	}
	return best, result, nil
}
