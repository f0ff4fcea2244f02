package calculation

import (
	"github.com/finconsult/sipcalc/internal/domain"
	money "github.com/finconsult/sipcalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AllocateByAge splits a monthly contribution with the "100 minus age in
// equity" rule. The rest goes to debt and gold.
func AllocateByAge(age int, monthly decimal.Decimal) (domain.Allocation, error) {
	if age < 0 || age > 100 {
		return domain.Allocation{}, invalidf("age must be between 0 and 100, got %d", age)
	}
	if monthly.IsNegative() {
		return domain.Allocation{}, invalidf("monthly amount cannot be negative, got %s", monthly)
	}

	equityPct := 100 - age
	share := func(pct int) decimal.Decimal {
		return money.NewMoneyFromDecimal(monthly).Mul(decimal.NewFromInt(int64(pct)).Div(hundred)).RoundWhole().Decimal
	}

	return domain.Allocation{
		Age:           age,
		EquityPercent: equityPct,
		DebtPercent:   age,
		EquityMonthly: share(equityPct),
		DebtMonthly:   share(age),
	}, nil
}

// Summarize rounds an accumulation and its tax to whole rupees. This is the
// only place projection values are rounded.
func Summarize(acc domain.AccumulationResult, tax domain.TaxResult) domain.ProjectionSummary {
	whole := func(m money.Money) decimal.Decimal {
		return m.RoundWhole().Decimal
	}
	maturity := money.NewMoneyFromDecimal(acc.MaturityValue)
	taxDue := money.NewMoneyFromDecimal(tax.TaxDue)
	return domain.ProjectionSummary{
		Invested: whole(money.NewMoneyFromDecimal(acc.TotalInvested)),
		Maturity: whole(maturity),
		Gains:    whole(money.NewMoneyFromDecimal(acc.Gain())),
		Tax:      whole(taxDue),
		Net:      whole(maturity.Sub(taxDue)),
	}
}

// StepUpUplift returns how much larger the post-tax outcome is than the
// principal of a flat SIP at the starting amount, in percent.
func StepUpUplift(plan domain.ContributionPlan, summary domain.ProjectionSummary) decimal.Decimal {
	flat := plan.FlatPrincipal()
	if flat.IsZero() {
		return decimal.Zero
	}
	return summary.Net.Div(flat).Sub(one).Mul(hundred)
}
