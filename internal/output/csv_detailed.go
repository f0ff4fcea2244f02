package output

import (
	"bytes"
	"encoding/csv"

	"github.com/finconsult/sipcalc/internal/domain"
)

// CSVScheduleExporter writes one row per monthly contribution.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string { return "schedule-csv" }

func (c CSVScheduleExporter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Month", "Year", "DueDate", "Amount"}); err != nil {
		return nil, err
	}
	for _, e := range report.Schedule.Entries {
		due := ""
		if !e.DueDate.IsZero() {
			due = e.DueDate.Format("2006-01-02")
		}
		row := []string{intToString(e.MonthIndex), intToString(e.Year()), due, e.Amount.StringFixed(2)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVYearlyExporter writes one row per plan year.
type CSVYearlyExporter struct{}

func (c CSVYearlyExporter) Name() string { return "yearly-csv" }

func (c CSVYearlyExporter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Year", "MonthlyAmount", "YearContribution", "CumulativeInvested"}); err != nil {
		return nil, err
	}
	for _, y := range report.Schedule.Yearly() {
		row := []string{
			intToString(y.Year),
			y.MonthlyAmount.StringFixed(2),
			y.YearContribution.StringFixed(2),
			y.CumulativeInvested.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
