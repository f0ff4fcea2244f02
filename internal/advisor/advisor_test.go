package advisor

import (
	"testing"

	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *domain.PlanReport {
	return &domain.PlanReport{
		Plan:      domain.ContributionPlan{AnnualStepUpRate: decimal.RequireFromString("0.10")},
		TaxPolicy: domain.DefaultTaxPolicy(),
		Summary: domain.ProjectionSummary{
			Invested: decimal.NewFromInt(6873000),
			Net:      decimal.NewFromInt(15000000),
			Tax:      decimal.NewFromInt(1100000),
		},
		Allocation: &domain.Allocation{
			Age: 30, EquityPercent: 70, DebtPercent: 30,
			EquityMonthly: decimal.NewFromInt(7000), DebtMonthly: decimal.NewFromInt(3000),
		},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		question string
		want     Intent
	}{
		{"How much TAX will I pay?", IntentTax},
		{"Is my retirement on track?", IntentRetirement},
		{"tax planning for retirement", IntentTax},
		{"What about early Retirement", IntentRetirement},
		{"Should I buy gold?", IntentGeneral},
		{"", IntentGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.question))
		})
	}
}

func TestRespondTax(t *testing.T) {
	resp, err := Respond("tax?", testReport())
	require.NoError(t, err)
	assert.Equal(t, IntentTax, resp.Intent)
	assert.Contains(t, resp.Text, "12.5%")
	assert.Contains(t, resp.Text, "₹1,25,000")
	assert.Contains(t, resp.Text, "₹11,00,000")
}

func TestRespondTaxFollowsPolicy(t *testing.T) {
	report := testReport()
	report.TaxPolicy = domain.TaxPolicy{ExemptionThreshold: decimal.NewFromInt(100000), Rate: decimal.RequireFromString("0.10")}

	resp, err := Respond("tax", report)
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "10.0%")
	assert.Contains(t, resp.Text, "₹1,00,000")
}

func TestRespondRetirement(t *testing.T) {
	resp, err := Respond("When can I retire? retirement", testReport())
	require.NoError(t, err)
	assert.Equal(t, IntentRetirement, resp.Intent)
	// 6873000 * 3 = 2.06 crore; net is 1.50 crore
	assert.Contains(t, resp.Text, "₹2.06 Crore")
	assert.Contains(t, resp.Text, "₹1.50 Crore")
	assert.Contains(t, resp.Text, "higher annual step-up than 10.0%")
}

func TestRespondRetirementOnTrack(t *testing.T) {
	report := testReport()
	report.Summary.Net = decimal.NewFromInt(30000000)

	resp, err := Respond("retirement", report)
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "That covers the target.")
}

func TestRespondGeneral(t *testing.T) {
	resp, err := Respond("what should I do?", testReport())
	require.NoError(t, err)
	assert.Equal(t, IntentGeneral, resp.Intent)
	assert.Contains(t, resp.Text, "age of 30")
	assert.Contains(t, resp.Text, "70% index funds and 30% debt/gold")
	assert.Contains(t, resp.Text, "₹7,000")
}

func TestRespondGeneralWithoutAge(t *testing.T) {
	report := testReport()
	report.Allocation = nil

	resp, err := Respond("hello", report)
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "Add your age")
}
