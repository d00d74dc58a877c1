package billing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// percentOf returns amount × pct / 100
func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// nonNegative clamps d at zero
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Display rounds an amount to two decimal places for presentation.
// It must only be applied when a value is printed, never mid-calculation.
func Display(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatDisplay renders an amount with exactly two decimals, e.g. "1039.50"
func FormatDisplay(d decimal.Decimal) string {
	return d.StringFixed(2)
}
