package calculation

import (
	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/finconsult/sipcalc/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ValidateWithdrawalPlan checks the simulator's input domain.
func ValidateWithdrawalPlan(plan domain.WithdrawalPlan) error {
	if !plan.MonthlyWithdrawal.IsPositive() {
		return invalidf("monthly withdrawal must be positive, got %s", plan.MonthlyWithdrawal)
	}
	if plan.AssumedMonthlyRate.LessThanOrEqual(minusOne) {
		return invalidf("assumed monthly rate must be above -100%%, got %s", plan.AssumedMonthlyRate)
	}
	if plan.MaxMonths <= 0 {
		return invalidf("max months must be positive, got %d", plan.MaxMonths)
	}
	return nil
}

// SimulateWithdrawals draws a fixed amount every month from a growing corpus.
//
// Each month the corpus must cover a whole withdrawal before it grows; a
// withdrawal is never partially paid. The run stops at the first month the
// corpus falls short or when MaxMonths is reached. Reaching the cap sets
// IsPerpetual, which only means the corpus outlasted the simulated horizon.
func SimulateWithdrawals(startingCorpus decimal.Decimal, plan domain.WithdrawalPlan) (domain.SustainabilityResult, error) {
	if err := ValidateWithdrawalPlan(plan); err != nil {
		return domain.SustainabilityResult{}, err
	}

	growth := one.Add(plan.AssumedMonthlyRate)
	withdrawal := plan.MonthlyWithdrawal
	corpus := startingCorpus
	withdrawn := decimal.Zero
	months := 0

	for corpus.GreaterThanOrEqual(withdrawal) && months < plan.MaxMonths {
		corpus = corpus.Mul(growth).Sub(withdrawal).Round(workingPlaces)
		withdrawn = withdrawn.Add(withdrawal)
		months++
	}

	result := domain.SustainabilityResult{
		MonthsLasted:   months,
		IsPerpetual:    months == plan.MaxMonths,
		MaxMonths:      plan.MaxMonths,
		EndingCorpus:   corpus,
		TotalWithdrawn: withdrawn,
	}
	if !result.IsPerpetual {
		// first month that could not be paid
		result.DepletionDate = dateutil.MonthDate(plan.StartDate, months+1)
	}
	return result, nil
}
