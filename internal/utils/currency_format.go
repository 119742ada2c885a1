package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimals shown for Shefra amounts.
const DisplayPrecision = 2

// FormatShefras formats a Shefra amount for display.
// Example: 166.8400001 returns "166.84", 100 returns "100.00".
func FormatShefras(amount float64) string {
	return FormatWithPrecision(amount, DisplayPrecision)
}

// FormatWithPrecision formats an amount with the given number of decimals, padding with zeros.
// NaN and infinities have no decimal form and are formatted as zero.
func FormatWithPrecision(amount float64, precision int) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return decimal.NewFromFloat(amount).StringFixed(int32(precision))
}
