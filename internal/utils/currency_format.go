package utils

import "github.com/shopspring/decimal"

// FormatMoney renders an amount rounded to two decimals with a dollar sign.
// Example: 12.345 returns "$12.35"
func FormatMoney(amount decimal.Decimal) string {
	return "$" + FormatWithPrecision(amount, 2)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
