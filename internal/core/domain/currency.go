package domain

import "github.com/shopspring/decimal"

// CurrencyCode identifies one of the display currencies a church can be set to.
type CurrencyCode string

const (
	CurrencyUSD CurrencyCode = "USD"
	CurrencyNGN CurrencyCode = "NGN"
	CurrencyGBP CurrencyCode = "GBP"
)

// ExchangeRates is the fixed rate table, anchored at 1 USD. Rates are static
// constants by design; freshness of rates is out of scope for this system.
var ExchangeRates = map[CurrencyCode]decimal.Decimal{
	CurrencyUSD: decimal.NewFromInt(1),
	CurrencyNGN: decimal.NewFromInt(1500),
	CurrencyGBP: decimal.RequireFromString("0.78"),
}

var currencySymbols = map[CurrencyCode]string{
	CurrencyUSD: "$",
	CurrencyNGN: "₦",
	CurrencyGBP: "£",
}

// Rate returns the exchange rate for a currency code.
func Rate(code CurrencyCode) (decimal.Decimal, bool) {
	r, ok := ExchangeRates[code]
	return r, ok
}

// Symbol returns the display symbol for a currency code, or the code itself
// for unknown currencies.
func Symbol(code CurrencyCode) string {
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	return string(code)
}

// IsSupportedCurrency reports whether the code has an entry in the rate table.
func IsSupportedCurrency(code CurrencyCode) bool {
	_, ok := ExchangeRates[code]
	return ok
}
