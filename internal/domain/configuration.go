package domain

import "github.com/shopspring/decimal"

// Investor holds personal details that shape presentation, not the numbers.
type Investor struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Age  int    `yaml:"age" json:"age" toml:"age"`
}

// Assumptions are the return assumptions for the accumulation phase.
type Assumptions struct {
	AnnualReturnRate decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate" toml:"annual_return_rate"`
}

// WithdrawalSettings configures the optional withdrawal phase. A zero
// MonthlyWithdrawal disables the simulation. AnnualYield and MaxMonths are
// pointers so an omitted value can be told apart from an explicit zero.
type WithdrawalSettings struct {
	MonthlyWithdrawal decimal.Decimal  `yaml:"monthly_withdrawal" json:"monthly_withdrawal" toml:"monthly_withdrawal"`
	AnnualYield       *decimal.Decimal `yaml:"annual_yield,omitempty" json:"annual_yield,omitempty" toml:"annual_yield,omitempty"`
	MaxMonths         *int             `yaml:"max_months,omitempty" json:"max_months,omitempty" toml:"max_months,omitempty"`
}

// Enabled reports whether a withdrawal phase was requested.
func (w WithdrawalSettings) Enabled() bool {
	return w.MonthlyWithdrawal.IsPositive()
}

// Plan converts the settings to a WithdrawalPlan. Only an omitted yield or
// month cap takes the default; explicit values, zero included, are kept.
func (w WithdrawalSettings) Plan() WithdrawalPlan {
	yield := DefaultWithdrawalYield
	if w.AnnualYield != nil {
		yield = *w.AnnualYield
	}
	maxMonths := DefaultMaxMonths
	if w.MaxMonths != nil {
		maxMonths = *w.MaxMonths
	}
	return NewWithdrawalPlan(w.MonthlyWithdrawal, yield, maxMonths)
}

// Configuration is the plan file format (YAML or TOML).
type Configuration struct {
	Investor    Investor           `yaml:"investor" json:"investor" toml:"investor"`
	Plan        ContributionPlan   `yaml:"plan" json:"plan" toml:"plan"`
	Assumptions Assumptions        `yaml:"assumptions" json:"assumptions" toml:"assumptions"`
	Tax         TaxPolicy          `yaml:"tax" json:"tax" toml:"tax"`
	Withdrawal  WithdrawalSettings `yaml:"withdrawal" json:"withdrawal" toml:"withdrawal"`
	Scenarios   []RateScenario     `yaml:"scenarios,omitempty" json:"scenarios,omitempty" toml:"scenarios,omitempty"`
}
