package output

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal amount as USD with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	cents := amount.Round(2).Shift(2).IntPart()
	return money.New(cents, money.USD).Display()
}

// FormatFraction formats a decimal fraction (e.g. 0.0797) as a percentage with 2 decimals.
func FormatFraction(fraction decimal.Decimal) string {
	return fraction.Shift(2).StringFixed(2) + "%"
}
