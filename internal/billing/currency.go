package billing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Converter converts base-currency amounts into a display currency using a
// static rate table. The table is copied on construction so a Converter is
// safe to share between goroutines.
type Converter struct {
	base  string
	rates map[string]decimal.Decimal
}

// NewConverter creates a converter for the given base currency. rates maps a
// target ISO code to the multiplier applied to one unit of base currency.
// Codes that are not valid ISO 4217 and non-positive rates are ignored.
func NewConverter(base string, rates map[string]decimal.Decimal) *Converter {
	c := &Converter{
		base:  normalizeCode(base),
		rates: make(map[string]decimal.Decimal, len(rates)),
	}
	for code, rate := range rates {
		unit, err := currency.ParseISO(code)
		if err != nil || !rate.IsPositive() {
			continue
		}
		c.rates[unit.String()] = rate
	}
	return c
}

// Base returns the base currency code
func (c *Converter) Base() string {
	if c == nil {
		return ""
	}
	return c.base
}

// Supports reports whether target has a rate entry or is the base currency
func (c *Converter) Supports(target string) bool {
	if c == nil {
		return false
	}
	target = normalizeCode(target)
	if target == c.base {
		return true
	}
	_, ok := c.rates[target]
	return ok
}

// Resolve returns the currency code amounts will actually be expressed in:
// target when it has a rate, the base currency otherwise.
func (c *Converter) Resolve(target string) string {
	if c == nil {
		return normalizeCode(target)
	}
	if target == "" || !c.Supports(target) {
		return c.base
	}
	return normalizeCode(target)
}

// Convert multiplies amount by the target's rate. A missing rate (or the base
// currency itself) returns amount unchanged. No rounding is applied.
func (c *Converter) Convert(amount decimal.Decimal, target string) decimal.Decimal {
	if c == nil {
		return amount
	}
	target = normalizeCode(target)
	if target == "" || target == c.base {
		return amount
	}
	rate, ok := c.rates[target]
	if !ok {
		return amount
	}
	return amount.Mul(rate)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
