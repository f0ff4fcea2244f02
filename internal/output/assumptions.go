package output

import (
	"fmt"

	"github.com/finconsult/sipcalc/internal/domain"
)

// GenerateAssumptions lists the modelling assumptions behind a report.
func GenerateAssumptions(report *domain.PlanReport) []string {
	lines := []string{
		fmt.Sprintf("Expected return: %s a year, compounded monthly at annual/12", FormatRate(report.AnnualReturnRate)),
		fmt.Sprintf("Annual step-up: %s, applied after every 12 contributions", FormatRate(report.Plan.AnnualStepUpRate)),
		"Each contribution compounds through the month it is made (first month grows for the full horizon)",
		fmt.Sprintf("LTCG: %s on gains above %s", FormatRate(report.TaxPolicy.Rate), FormatCurrency(report.TaxPolicy.ExemptionThreshold)),
	}
	if report.Withdrawal != nil {
		annual := report.Withdrawal.AssumedMonthlyRate.Mul(decimalMonths)
		lines = append(lines, fmt.Sprintf("Withdrawal phase: %s a year on the post-tax corpus, simulated for at most %s",
			FormatRate(annual), FormatMonths(report.Withdrawal.MaxMonths)))
	}
	return lines
}
