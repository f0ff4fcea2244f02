package calculation

import "github.com/shopspring/decimal"

// workingPlaces bounds the scale of intermediate values in the compounding
// loops. Without it every multiplication by (1+r) adds ~17 digits and a
// 100-year simulation carries numbers tens of thousands of digits long.
// It is far below currency resolution, so whole-unit results are unaffected.
const workingPlaces = 18

var one = decimal.NewFromInt(1)

// growthFactors returns (1+r)^k for k = 1..n, index k-1.
func growthFactors(monthlyRate decimal.Decimal, n int) []decimal.Decimal {
	factors := make([]decimal.Decimal, n)
	base := one.Add(monthlyRate)
	f := one
	for k := 0; k < n; k++ {
		f = f.Mul(base).Round(workingPlaces)
		factors[k] = f
	}
	return factors
}
