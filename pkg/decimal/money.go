package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	half          = decimal.NewFromFloat(0.5)
	lakh          = decimal.NewFromInt(100000)
	crore         = decimal.NewFromInt(10000000)
	monthsPerYear = decimal.NewFromInt(12)
)

// Money represents a rupee amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// RoundWhole rounds to the nearest whole rupee with halves going up,
// so -2.5 becomes -2 and 2.5 becomes 3.
func (m Money) RoundWhole() Money {
	return Money{m.Decimal.Add(half).Floor()}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(monthsPerYear)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Lakhs returns the amount expressed in lakh (1,00,000).
func (m Money) Lakhs() decimal.Decimal {
	return m.Decimal.Div(lakh)
}

// Crores returns the amount expressed in crore (1,00,00,000).
func (m Money) Crores() decimal.Decimal {
	return m.Decimal.Div(crore)
}

// Max returns the larger of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b.Decimal) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Format renders whole rupees with Indian digit grouping, e.g. ₹12,80,933.
func (m Money) Format() string {
	return "₹" + GroupIndian(m.RoundWhole().Decimal.StringFixed(0))
}

// FormatLakhs renders the amount in lakh with one decimal, e.g. ₹24.0L.
func (m Money) FormatLakhs() string {
	return "₹" + m.Lakhs().StringFixed(1) + "L"
}

// FormatCrores renders the amount in crore with two decimals, e.g. ₹1.28 Cr.
func (m Money) FormatCrores() string {
	return "₹" + m.Crores().StringFixed(2) + " Cr"
}

// GroupIndian inserts separators into an integer string using the Indian
// convention: the last three digits, then groups of two.
func GroupIndian(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + strings.Join(groups, ",") + "," + tail
}
