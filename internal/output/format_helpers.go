package output

import (
	"fmt"
	"strconv"

	money "github.com/finconsult/sipcalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	decimalHundred = decimal.NewFromInt(100)
	decimalMonths  = decimal.NewFromInt(12)
)

// FormatCurrency renders whole rupees with Indian grouping.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage renders a value that is already in percent.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate renders a rate fraction as a percentage, e.g. 0.125 -> 12.50%.
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

// FormatCompact uses crore or lakh units for large amounts.
func FormatCompact(amount decimal.Decimal) string {
	m := money.NewMoneyFromDecimal(amount)
	abs := amount.Abs()
	switch {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(10000000)):
		return m.FormatCrores()
	case abs.GreaterThanOrEqual(decimal.NewFromInt(100000)):
		return m.FormatLakhs()
	default:
		return m.Format()
	}
}

// FormatSignedCurrency prefixes non-negative amounts with "+".
func FormatSignedCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + FormatCurrency(amount.Neg())
	}
	return "+" + FormatCurrency(amount)
}

// FormatMonths renders a month count as years and months.
func FormatMonths(months int) string {
	years, rem := months/12, months%12
	switch {
	case years == 0:
		return plural(rem, "month")
	case rem == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + " " + plural(rem, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
