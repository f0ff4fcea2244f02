package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/finconsult/sipcalc/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"compact": FormatCompact,
	"rate":    FormatRate,
	"pct":     FormatPercentage,
	"signed":  FormatSignedCurrency,
	"months":  FormatMonths,
	"lasts":   sustainabilityText,
	"yield":   func(w *domain.WithdrawalPlan) string { return FormatRate(w.AssumedMonthlyRate.Mul(decimalMonths)) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.PlanReport
		Rows        []ScenarioRow
		Highlight   Highlight
		Yearly      []domain.YearlySummary
		Assumptions []string
	}{report, ScenarioRows(report), AnalyzeScenarios(report), report.Schedule.Yearly(), GenerateAssumptions(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
