// Package money renders decimal amounts for display using integer minor
// units and ISO-4217 currency metadata. Parsing and arithmetic stay on
// shopspring/decimal; this package only owns formatting.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// INR is the only currency the SMS pipeline emits; multi-currency support is
// deliberately out of scope.
const INR = "INR"

// Format renders a decimal amount with the currency's symbol and grouping,
// e.g. 2500 -> "₹2,500.00".
func Format(amount decimal.Decimal, currencyCode string) string {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(INR)
	}

	multiplier := decimal.New(1, int32(currency.Fraction))
	minor := amount.Mul(multiplier).Round(0).IntPart()
	return money.New(minor, currency.Code).Display()
}

// FormatINR is Format fixed to Indian rupees.
func FormatINR(amount decimal.Decimal) string {
	return Format(amount, INR)
}
