package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/finconsult/sipcalc/internal/domain"
)

// CSVSummarizer implements the summary CSV output: the base plan first, then
// one row per rate scenario sorted by name.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "AnnualReturnRate", "TotalInvested", "MaturityValue", "Gains", "Tax", "PostTaxValue", "DeltaVsBase", "MonthsLasted", "IsPerpetual"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	rows := ScenarioRows(report)
	alternates := rows[1:]
	sort.SliceStable(alternates, func(i, j int) bool { return alternates[i].Name < alternates[j].Name })

	for _, sr := range rows {
		lasted, perpetual := "", ""
		if sr.IsBase && report.Sustainability != nil {
			lasted = intToString(report.Sustainability.MonthsLasted)
			perpetual = boolToString(report.Sustainability.IsPerpetual)
		}
		row := []string{
			sr.Name,
			sr.Rate.String(),
			sr.Summary.Invested.StringFixed(0),
			sr.Summary.Maturity.StringFixed(0),
			sr.Summary.Gains.StringFixed(0),
			sr.Summary.Tax.StringFixed(0),
			sr.Summary.Net.StringFixed(0),
			sr.Delta.StringFixed(2),
			lasted,
			perpetual,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
