package domain

import (
	"time"

	money "github.com/finconsult/sipcalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MonthsPerYear is the number of contribution periods in one plan year.
const MonthsPerYear = 12

// DefaultMaxMonths caps the withdrawal simulation at 100 years, which the
// simulator treats as "effectively perpetual".
const DefaultMaxMonths = 1200

// DefaultWithdrawalYield is the annual yield assumed for the withdrawal phase.
// It does not follow the accumulation rate.
var DefaultWithdrawalYield = decimal.NewFromFloat(0.08)

// ContributionPlan describes a monthly SIP that steps up once per year.
type ContributionPlan struct {
	StartingMonthlyAmount decimal.Decimal `yaml:"starting_monthly_amount" json:"starting_monthly_amount" toml:"starting_monthly_amount"`
	AnnualStepUpRate      decimal.Decimal `yaml:"annual_step_up_rate" json:"annual_step_up_rate" toml:"annual_step_up_rate"`
	HorizonYears          int             `yaml:"horizon_years" json:"horizon_years" toml:"horizon_years"`

	// StartDate is optional; when set, schedule entries carry due dates.
	StartDate time.Time `yaml:"start_date,omitempty" json:"start_date,omitempty" toml:"start_date,omitempty"`
}

// TotalMonths returns the schedule length implied by the horizon.
func (p ContributionPlan) TotalMonths() int {
	return p.HorizonYears * MonthsPerYear
}

// FlatPrincipal returns what the plan would invest without any step-up.
func (p ContributionPlan) FlatPrincipal() decimal.Decimal {
	return money.NewMoneyFromDecimal(p.StartingMonthlyAmount).Annual().Mul(decimal.NewFromInt(int64(p.HorizonYears))).Decimal
}

// ScheduleEntry is a single monthly contribution.
type ScheduleEntry struct {
	MonthIndex int             `json:"month_index"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"due_date,omitempty"`
}

// Year returns the 1-based plan year the entry falls in.
func (e ScheduleEntry) Year() int {
	return (e.MonthIndex-1)/MonthsPerYear + 1
}

// Schedule is the ordered list of monthly contributions for a plan.
type Schedule struct {
	HorizonYears int             `json:"horizon_years"`
	Entries      []ScheduleEntry `json:"entries"`
}

// Len returns the number of monthly entries.
func (s Schedule) Len() int {
	return len(s.Entries)
}

// YearlySummary is one row of a schedule grouped by plan year.
type YearlySummary struct {
	Year               int             `json:"year"`
	MonthlyAmount      decimal.Decimal `json:"monthly_amount"`
	YearContribution   decimal.Decimal `json:"year_contribution"`
	CumulativeInvested decimal.Decimal `json:"cumulative_invested"`
}

// Yearly groups the schedule by plan year. Amounts are constant within a year,
// so the first month's amount is reported as the monthly amount.
func (s Schedule) Yearly() []YearlySummary {
	var out []YearlySummary
	cumulative := decimal.Zero
	for _, e := range s.Entries {
		year := e.Year()
		if len(out) < year {
			out = append(out, YearlySummary{Year: year, MonthlyAmount: e.Amount, YearContribution: decimal.Zero})
		}
		row := &out[year-1]
		row.YearContribution = row.YearContribution.Add(e.Amount)
		cumulative = cumulative.Add(e.Amount)
		row.CumulativeInvested = cumulative
	}
	return out
}

// TaxPolicy is a flat capital-gains tax above an exemption threshold.
type TaxPolicy struct {
	ExemptionThreshold decimal.Decimal `yaml:"exemption_threshold" json:"exemption_threshold" toml:"exemption_threshold"`
	Rate               decimal.Decimal `yaml:"rate" json:"rate" toml:"rate"`
}

// DefaultTaxPolicy returns the long-term capital gains policy: 12.5% on gains
// above 1.25 lakh.
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{
		ExemptionThreshold: decimal.NewFromInt(125000),
		Rate:               decimal.NewFromFloat(0.125),
	}
}

// WithdrawalPlan is a fixed monthly payout drawn from a corpus.
type WithdrawalPlan struct {
	MonthlyWithdrawal  decimal.Decimal `json:"monthly_withdrawal"`
	AssumedMonthlyRate decimal.Decimal `json:"assumed_monthly_rate"`
	MaxMonths          int             `json:"max_months"`
	StartDate          time.Time       `json:"start_date,omitempty"`
}

// NewWithdrawalPlan builds a plan from an annual yield using the same simple
// annual/12 conversion as the accumulation phase.
func NewWithdrawalPlan(monthly, annualYield decimal.Decimal, maxMonths int) WithdrawalPlan {
	return WithdrawalPlan{
		MonthlyWithdrawal:  monthly,
		AssumedMonthlyRate: MonthlyRate(annualYield),
		MaxMonths:          maxMonths,
	}
}

// MonthlyRate converts an annual rate to the monthly rate used throughout the
// model: annual / 12, not a geometric conversion.
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(decimal.NewFromInt(MonthsPerYear))
}

// RateScenario is a named alternate return assumption.
type RateScenario struct {
	Name             string          `yaml:"name" json:"name" toml:"name"`
	AnnualReturnRate decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate" toml:"annual_return_rate"`
}
