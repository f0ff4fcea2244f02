package output

import (
	"github.com/finconsult/sipcalc/internal/calculation"
	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ScenarioRow is one line of the scenario comparison: the base plan or a
// named alternate rate, rounded to whole rupees.
type ScenarioRow struct {
	Name    string
	Rate    decimal.Decimal
	Summary domain.ProjectionSummary
	Delta   decimal.Decimal // maturity minus base maturity
	IsBase  bool
}

// ScenarioRows lists the base plan followed by each rate scenario in report order.
func ScenarioRows(report *domain.PlanReport) []ScenarioRow {
	rows := []ScenarioRow{{
		Name:    "Base",
		Rate:    report.AnnualReturnRate,
		Summary: report.Summary,
		Delta:   decimal.Zero,
		IsBase:  true,
	}}
	for _, sc := range report.Scenarios {
		rows = append(rows, ScenarioRow{
			Name:    sc.Name,
			Rate:    sc.Comparison.AlternateRate,
			Summary: calculation.Summarize(sc.Comparison.AlternateResult, sc.Tax),
			Delta:   sc.Comparison.Delta,
		})
	}
	return rows
}

// Highlight names the scenario with the largest post-tax outcome.
type Highlight struct {
	ScenarioName     string
	Net              decimal.Decimal
	NetChange        decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios determines the scenario with the highest post-tax value
// relative to the base plan. It returns the zero Highlight when the report
// has no scenarios.
func AnalyzeScenarios(report *domain.PlanReport) Highlight {
	rows := ScenarioRows(report)
	if len(rows) < 2 {
		return Highlight{}
	}
	best := rows[1]
	for _, r := range rows[2:] {
		if r.Summary.Net.GreaterThan(best.Summary.Net) {
			best = r
		}
	}
	baseline := report.Summary.Net
	delta := best.Summary.Net.Sub(baseline)
	pct := decimal.Zero
	if !baseline.IsZero() {
		pct = delta.Div(baseline).Mul(decimalHundred)
	}
	return Highlight{ScenarioName: best.Name, Net: best.Summary.Net, NetChange: delta, PercentageChange: pct}
}
