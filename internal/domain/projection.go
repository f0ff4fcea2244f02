package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccumulationResult holds the exact outcome of compounding a schedule.
type AccumulationResult struct {
	TotalInvested decimal.Decimal `json:"total_invested"`
	MaturityValue decimal.Decimal `json:"maturity_value"`
}

// Gain returns maturity minus principal; negative when the rate is negative.
func (r AccumulationResult) Gain() decimal.Decimal {
	return r.MaturityValue.Sub(r.TotalInvested)
}

// TaxResult is the capital-gains tax applied to an accumulation.
type TaxResult struct {
	Gain         decimal.Decimal `json:"gain"`
	TaxableGain  decimal.Decimal `json:"taxable_gain"`
	TaxDue       decimal.Decimal `json:"tax_due"`
	PostTaxValue decimal.Decimal `json:"post_tax_value"`
}

// SustainabilityResult reports how long a fixed withdrawal lasted.
//
// IsPerpetual means the simulation reached its month cap. That is a
// bounded-horizon approximation of "withdrawal below growth", not a proof the
// corpus lasts forever.
type SustainabilityResult struct {
	MonthsLasted   int             `json:"months_lasted"`
	IsPerpetual    bool            `json:"is_perpetual"`
	MaxMonths      int             `json:"max_months"`
	EndingCorpus   decimal.Decimal `json:"ending_corpus"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn"`
	DepletionDate  time.Time       `json:"depletion_date,omitempty"`
}

// YearsAndMonths splits MonthsLasted for display.
func (r SustainabilityResult) YearsAndMonths() (int, int) {
	return r.MonthsLasted / MonthsPerYear, r.MonthsLasted % MonthsPerYear
}

// RateComparison is the same schedule accumulated under two rates.
type RateComparison struct {
	BaseRate        decimal.Decimal    `json:"base_rate"`
	AlternateRate   decimal.Decimal    `json:"alternate_rate"`
	BaseResult      AccumulationResult `json:"base_result"`
	AlternateResult AccumulationResult `json:"alternate_result"`
	Delta           decimal.Decimal    `json:"delta"`
}

// Allocation splits the monthly contribution by an age-based rule.
type Allocation struct {
	Age           int             `json:"age"`
	EquityPercent int             `json:"equity_percent"`
	DebtPercent   int             `json:"debt_percent"`
	EquityMonthly decimal.Decimal `json:"equity_monthly"`
	DebtMonthly   decimal.Decimal `json:"debt_monthly"`
}

// ProjectionSummary is the whole-unit view of a projection handed to
// presentation code.
type ProjectionSummary struct {
	Invested decimal.Decimal `json:"invested"`
	Maturity decimal.Decimal `json:"maturity"`
	Gains    decimal.Decimal `json:"gains"`
	Tax      decimal.Decimal `json:"tax"`
	Net      decimal.Decimal `json:"net"`
}

// ScenarioOutcome is a named rate scenario compared to the base plan.
type ScenarioOutcome struct {
	Name       string         `json:"name"`
	Comparison RateComparison `json:"comparison"`
	Tax        TaxResult      `json:"tax"`
}

// PlanReport is the composite result of one planning run.
type PlanReport struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Plan             ContributionPlan `json:"plan"`
	AnnualReturnRate decimal.Decimal  `json:"annual_return_rate"`
	TaxPolicy        TaxPolicy        `json:"tax_policy"`

	Schedule     Schedule           `json:"schedule"`
	Accumulation AccumulationResult `json:"accumulation"`
	Tax          TaxResult          `json:"tax"`
	Summary      ProjectionSummary  `json:"summary"`

	// StepUpUplift is net wealth relative to a flat SIP's principal, in percent.
	StepUpUplift decimal.Decimal `json:"step_up_uplift"`

	Allocation     *Allocation           `json:"allocation,omitempty"`
	Withdrawal     *WithdrawalPlan       `json:"withdrawal,omitempty"`
	Sustainability *SustainabilityResult `json:"sustainability,omitempty"`
	Scenarios      []ScenarioOutcome     `json:"scenarios,omitempty"`
}
