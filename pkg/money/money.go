// Package money handles display rounding for currency amounts. Internal
// pricing math stays exact; rounding to two decimals happens only here,
// at presentation time.
package money

import (
	"github.com/shopspring/decimal"
)

// Round rounds half away from zero to two decimals, matching how the
// storefront formats prices.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Display renders an amount as a dollar string, e.g. "$41.14".
func Display(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
