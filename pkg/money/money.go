// Package money renders integer minor currency units for display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// ToDecimal converts cents to an exact major-unit amount.
func ToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Format renders cents as en-US dollars, e.g. 123456 -> "$1,234.56".
func Format(cents int64) string {
	d := ToDecimal(cents)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "$" + printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}
