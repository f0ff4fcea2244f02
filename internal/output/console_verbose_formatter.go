package output

import (
	"bytes"
	"fmt"

	"github.com/finconsult/sipcalc/internal/domain"
)

// ConsoleVerboseFormatter renders the full styled console report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, RenderTitle("SIP STEP-UP PROJECTION"))
	fmt.Fprintln(&buf)

	plan := report.Plan
	buf.WriteString(RenderTable(Table{
		Title:   "Plan",
		Headers: []string{"Input", "Value"},
		Rows: [][]string{
			{"Starting monthly SIP", FormatCurrency(plan.StartingMonthlyAmount)},
			{"Annual step-up", FormatRate(plan.AnnualStepUpRate)},
			{"Horizon", FormatMonths(plan.TotalMonths())},
			{"Expected return", FormatRate(report.AnnualReturnRate)},
		},
	}))
	fmt.Fprintln(&buf)

	s := report.Summary
	buf.WriteString(RenderTable(Table{
		Title:   "Projection",
		Headers: []string{"Metric", "Amount", "Compact"},
		Rows: [][]string{
			{"Total invested", FormatCurrency(s.Invested), FormatCompact(s.Invested)},
			{"Maturity value", FormatCurrency(s.Maturity), FormatCompact(s.Maturity)},
			{"Gains", FormatCurrency(s.Gains), FormatCompact(s.Gains)},
			{"---"},
			{"LTCG tax", FormatCurrency(s.Tax), FormatCompact(s.Tax)},
			{"Post-tax value", FormatCurrency(s.Net), FormatCompact(s.Net)},
		},
	}))
	fmt.Fprintf(&buf, "  %s\n\n", gainStyle.Render(fmt.Sprintf("Step-up uplift over a flat SIP: %s", FormatPercentage(report.StepUpUplift))))

	if a := report.Allocation; a != nil {
		buf.WriteString(RenderTable(Table{
			Title:   fmt.Sprintf("Allocation at age %d", a.Age),
			Headers: []string{"Bucket", "Share", "Monthly"},
			Rows: [][]string{
				{"Equity", fmt.Sprintf("%d%%", a.EquityPercent), FormatCurrency(a.EquityMonthly)},
				{"Debt / gold", fmt.Sprintf("%d%%", a.DebtPercent), FormatCurrency(a.DebtMonthly)},
			},
		}))
		fmt.Fprintln(&buf)
	}

	if w, r := report.Withdrawal, report.Sustainability; w != nil && r != nil {
		rows := [][]string{
			{"Monthly withdrawal", FormatCurrency(w.MonthlyWithdrawal)},
			{"Assumed yield", FormatRate(w.AssumedMonthlyRate.Mul(decimalMonths))},
			{"Starting corpus", FormatCurrency(report.Tax.PostTaxValue)},
			{"Lasts", sustainabilityText(r)},
			{"Total withdrawn", FormatCurrency(r.TotalWithdrawn)},
			{"Ending corpus", FormatCurrency(r.EndingCorpus)},
		}
		if !r.DepletionDate.IsZero() {
			rows = append(rows, []string{"Runs out", r.DepletionDate.Format("Jan 2006")})
		}
		buf.WriteString(RenderTable(Table{Title: "Withdrawal phase (SWP)", Headers: []string{"Metric", "Value"}, Rows: rows}))
		if !r.IsPerpetual {
			fmt.Fprintf(&buf, "  %s\n", warnStyle.Render("The corpus does not sustain this withdrawal indefinitely."))
		}
		fmt.Fprintln(&buf)
	}

	if len(report.Scenarios) > 0 {
		var rows [][]string
		for _, sr := range ScenarioRows(report) {
			delta := FormatSignedCurrency(sr.Delta)
			if sr.IsBase {
				delta = "-"
			}
			rows = append(rows, []string{sr.Name, FormatRate(sr.Rate), FormatCompact(sr.Summary.Maturity), delta, FormatCompact(sr.Summary.Net)})
		}
		buf.WriteString(RenderTable(Table{
			Title:   "Rate scenarios",
			Headers: []string{"Scenario", "Return", "Maturity", "vs base", "Post-tax"},
			Rows:    rows,
		}))
		if h := AnalyzeScenarios(report); h.ScenarioName != "" {
			fmt.Fprintf(&buf, "  Highest post-tax value: %s (%s / %s)\n", h.ScenarioName, FormatSignedCurrency(h.NetChange), FormatPercentage(h.PercentageChange))
		}
		fmt.Fprintln(&buf)
	}

	var yearly [][]string
	for _, y := range report.Schedule.Yearly() {
		yearly = append(yearly, []string{intToString(y.Year), FormatCurrency(y.MonthlyAmount), FormatCurrency(y.YearContribution), FormatCurrency(y.CumulativeInvested)})
	}
	buf.WriteString(RenderTable(Table{
		Title:   "Contribution schedule",
		Headers: []string{"Year", "Monthly", "This year", "Invested to date"},
		Rows:    yearly,
	}))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, headerStyle.Render("  Key assumptions"))
	for _, a := range GenerateAssumptions(report) {
		fmt.Fprintf(&buf, "  %s\n", mutedStyle.Render("• "+a))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "  %s\n", dimStyle.Render(fmt.Sprintf("Run %s at %s", report.RunID, report.GeneratedAt.Format("2006-01-02 15:04:05"))))

	return buf.Bytes(), nil
}

func sustainabilityText(r *domain.SustainabilityResult) string {
	if r.IsPerpetual {
		return fmt.Sprintf("%s or more (perpetual)", FormatMonths(r.MaxMonths))
	}
	return FormatMonths(r.MonthsLasted)
}
