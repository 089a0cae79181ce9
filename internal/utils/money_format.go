package utils

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatAmount formats a monetary amount with two decimal places.
// Example: 12.3456 returns "12.35"; 40 returns "40.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatPercentage formats a percentage with one decimal place.
// Example: 40.0 returns "40.0"; 33.333 returns "33.3".
func FormatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}
