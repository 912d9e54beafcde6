package utils

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to 2 decimal places. Rescaled amounts are
// rounded per field, so repeated currency round-trips may drift; that lossy
// behavior is intentional and pinned by tests.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
