// Package advisor answers free-text questions about a plan with canned
// responses filled from the report. It never computes anything the report
// does not already hold.
package advisor

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/finconsult/sipcalc/internal/domain"
	money "github.com/finconsult/sipcalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Intent is the topic a question was matched to.
type Intent string

const (
	IntentTax        Intent = "tax"
	IntentRetirement Intent = "retirement"
	IntentGeneral    Intent = "general"
)

// RetirementCorpusMultiple is the rule of thumb for the corpus needed at
// retirement, as a multiple of the total invested.
var RetirementCorpusMultiple = decimal.NewFromInt(3)

// keywords are checked in order; the first match wins.
var keywords = []struct {
	word   string
	intent Intent
}{
	{"tax", IntentTax},
	{"retirement", IntentRetirement},
}

var templates = map[Intent]*template.Template{
	IntentTax: parse("tax", "LTCG is taxed at {{rate .Policy.Rate}} on gains above {{curr .Policy.ExemptionThreshold}}. "+
		"Booking gains of up to {{curr .Policy.ExemptionThreshold}} every year keeps them inside the exemption. "+
		"On this plan the estimated tax at maturity is {{curr .Summary.Tax}}."),
	IntentRetirement: parse("retirement", "To retire comfortably you need roughly {{crore .CorpusNeeded}} Crore. "+
		"Your current plan reaches {{crore .Summary.Net}} Crore after tax. "+
		"{{if .OnTrack}}That covers the target.{{else}}Consider a higher annual step-up than {{rate .StepUp}}.{{end}}"),
	IntentGeneral: parse("general", "{{with .Allocation}}That's a valid concern. Given your age of {{.Age}}, "+
		"a mix of {{.EquityPercent}}% index funds and {{.DebtPercent}}% debt/gold fits the 100-minus-age rule: "+
		"{{curr .EquityMonthly}} and {{curr .DebtMonthly}} a month.{{else}}"+
		"That's a valid concern. Add your age to the plan for an age-based equity and debt mix.{{end}}"),
}

func parse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(template.FuncMap{
		"curr": func(d decimal.Decimal) string { return money.NewMoneyFromDecimal(d).Format() },
		"rate": func(d decimal.Decimal) string { return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%" },
		"crore": func(d decimal.Decimal) string {
			return "₹" + money.NewMoneyFromDecimal(d).Crores().StringFixed(2)
		},
	}).Parse(text))
}

// Response is the advisor's reply to one question.
type Response struct {
	Intent Intent
	Text   string
}

// Classify matches a question to an intent by case-insensitive substring.
func Classify(question string) Intent {
	q := strings.ToLower(question)
	for _, k := range keywords {
		if strings.Contains(q, k.word) {
			return k.intent
		}
	}
	return IntentGeneral
}

// Respond answers question using only fields of report.
func Respond(question string, report *domain.PlanReport) (Response, error) {
	intent := Classify(question)

	corpusNeeded := report.Summary.Invested.Mul(RetirementCorpusMultiple)
	data := struct {
		Policy       domain.TaxPolicy
		Summary      domain.ProjectionSummary
		Allocation   *domain.Allocation
		StepUp       decimal.Decimal
		CorpusNeeded decimal.Decimal
		OnTrack      bool
	}{
		Policy:       report.TaxPolicy,
		Summary:      report.Summary,
		Allocation:   report.Allocation,
		StepUp:       report.Plan.AnnualStepUpRate,
		CorpusNeeded: corpusNeeded,
		OnTrack:      report.Summary.Net.GreaterThanOrEqual(corpusNeeded),
	}

	var buf bytes.Buffer
	if err := templates[intent].Execute(&buf, data); err != nil {
		return Response{}, err
	}
	return Response{Intent: intent, Text: buf.String()}, nil
}
