package calculation

import (
	"github.com/finconsult/sipcalc/internal/domain"
	money "github.com/finconsult/sipcalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ApplyCapitalGainsTax taxes the gain above the policy's exemption at a flat
// rate. Nothing is rounded here; callers round the reported values.
func ApplyCapitalGainsTax(totalInvested, maturityValue decimal.Decimal, policy domain.TaxPolicy) domain.TaxResult {
	maturity := money.NewMoneyFromDecimal(maturityValue)
	gain := maturity.Sub(money.NewMoneyFromDecimal(totalInvested))
	taxable := money.Max(money.Zero(), gain.Sub(money.NewMoneyFromDecimal(policy.ExemptionThreshold)))
	taxDue := taxable.Mul(policy.Rate)

	return domain.TaxResult{
		Gain:         gain.Decimal,
		TaxableGain:  taxable.Decimal,
		TaxDue:       taxDue.Decimal,
		PostTaxValue: maturity.Sub(taxDue).Decimal,
	}
}

// ValidateTaxPolicy rejects policies that would make tax negative.
func ValidateTaxPolicy(policy domain.TaxPolicy) error {
	if policy.ExemptionThreshold.IsNegative() {
		return invalidf("tax exemption threshold cannot be negative, got %s", policy.ExemptionThreshold)
	}
	if policy.Rate.IsNegative() || policy.Rate.GreaterThan(one) {
		return invalidf("tax rate must be between 0 and 1, got %s", policy.Rate)
	}
	return nil
}
