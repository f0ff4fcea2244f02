package calculation

import (
	"testing"

	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateByAge(t *testing.T) {
	tests := []struct {
		name       string
		age        int
		monthly    string
		wantEquity string
		wantDebt   string
	}{
		{"age 30", 30, "10000", "7000", "3000"},
		{"rounds each share", 33, "10001", "6701", "3300"},
		{"newborn", 0, "5000", "5000", "0"},
		{"centenarian", 100, "5000", "0", "5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := AllocateByAge(tt.age, d(tt.monthly))
			require.NoError(t, err)
			assert.Equal(t, 100-tt.age, a.EquityPercent)
			assert.Equal(t, tt.age, a.DebtPercent)
			assert.Equal(t, tt.wantEquity, a.EquityMonthly.String())
			assert.Equal(t, tt.wantDebt, a.DebtMonthly.String())
		})
	}
}

func TestAllocateByAgeRejectsInvalidInput(t *testing.T) {
	for _, age := range []int{-1, 101} {
		_, err := AllocateByAge(age, d("1000"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	_, err := AllocateByAge(30, d("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummarizeRoundsHalfUp(t *testing.T) {
	acc := domain.AccumulationResult{TotalInvested: d("1000.5"), MaturityValue: d("2000.49")}
	tax := domain.TaxResult{TaxDue: d("10.5")}

	s := Summarize(acc, tax)
	assert.Equal(t, "1001", s.Invested.String())
	assert.Equal(t, "2000", s.Maturity.String())
	assert.Equal(t, "1000", s.Gains.String()) // 999.99
	assert.Equal(t, "11", s.Tax.String())
	assert.Equal(t, "1990", s.Net.String()) // 1989.99
}

func TestStepUpUplift(t *testing.T) {
	p := plan("1000", "0", 1)
	s := domain.ProjectionSummary{Net: d("12809")}
	assertClose(t, d("6.741666"), StepUpUplift(p, s), "0.0001")

	zero := plan("0", "0", 1)
	assert.True(t, StepUpUplift(zero, s).Equal(decimal.Zero))
}
