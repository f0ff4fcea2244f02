package output

import (
	"context"
	"testing"
	"time"

	"github.com/finconsult/sipcalc/internal/calculation"
	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

func testConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Investor: domain.Investor{Name: "Asha", Age: 30},
		Plan: domain.ContributionPlan{
			StartingMonthlyAmount: decimal.NewFromInt(1000),
			AnnualStepUpRate:      decimal.Zero,
			HorizonYears:          1,
			StartDate:             time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Assumptions: domain.Assumptions{AnnualReturnRate: decimal.RequireFromString("0.12")},
		Tax:         domain.DefaultTaxPolicy(),
		Withdrawal:  domain.WithdrawalSettings{MonthlyWithdrawal: decimal.NewFromInt(5000)},
		Scenarios: []domain.RateScenario{
			{Name: "Optimistic", AnnualReturnRate: decimal.RequireFromString("0.15")},
			{Name: "Conservative", AnnualReturnRate: decimal.RequireFromString("0.08")},
		},
	}
}

// buildTestReport runs the engine on a one-year plan: 1000 a month at 12%
// matures to 12809 with no tax, and a 5000 withdrawal lasts two months.
func buildTestReport(t *testing.T) *domain.PlanReport {
	t.Helper()
	calculation.SetNowFunc(func() time.Time { return fixedTime })
	calculation.SetRunIDFunc(func() string { return "run-fixture" })
	t.Cleanup(func() {
		calculation.SetNowFunc(time.Now)
		calculation.SetRunIDFunc(uuid.NewString)
	})

	report, err := calculation.NewPlanningEngine().RunPlan(context.Background(), testConfiguration())
	require.NoError(t, err)
	return report
}
