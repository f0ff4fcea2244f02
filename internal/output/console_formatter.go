package output

import (
	"bytes"
	"fmt"

	"github.com/finconsult/sipcalc/internal/domain"
)

// ConsoleFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	s := report.Summary
	fmt.Fprintln(&buf, "SIP PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Invested: %s\n", FormatCurrency(s.Invested))
	fmt.Fprintf(&buf, "Maturity: %s\n", FormatCurrency(s.Maturity))
	fmt.Fprintf(&buf, "Gains: %s\n", FormatCurrency(s.Gains))
	fmt.Fprintf(&buf, "Tax: %s\n", FormatCurrency(s.Tax))
	fmt.Fprintf(&buf, "Net: %s\n", FormatCurrency(s.Net))
	if r := report.Sustainability; r != nil {
		fmt.Fprintf(&buf, "Withdrawal of %s lasts: %s\n", FormatCurrency(report.Withdrawal.MonthlyWithdrawal), sustainabilityText(r))
	}
	for _, sr := range ScenarioRows(report)[1:] {
		fmt.Fprintf(&buf, "%s @ %s: Maturity=%s Net=%s Delta=%s\n", sr.Name, FormatRate(sr.Rate),
			FormatCurrency(sr.Summary.Maturity), FormatCurrency(sr.Summary.Net), FormatSignedCurrency(sr.Delta))
	}
	return buf.Bytes(), nil
}
