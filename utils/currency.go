package utils

import (
	"fmt"
	"math"
)

// Round2 rounds a money amount to two decimal places. All prices in the
// shop are fixed two-decimal amounts.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatMoney renders an amount with the shop currency symbol,
// e.g. "$12.99".
func FormatMoney(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
