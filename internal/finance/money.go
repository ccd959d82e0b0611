package finance

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "USD"

// Format renders amount in the given ISO currency, e.g. "$15.00".
// Unknown codes fall back to a plain two-decimal amount followed by the code.
func Format(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

// ValidCurrency reports whether code is a known ISO currency.
func ValidCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}
