package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const pesoSign = "₱"

var phPrinter = message.NewPrinter(language.MustParse("en-PH"))

// FormatCurrency renders an amount as Philippine pesos, e.g. ₱1,234.50
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	f, _ := rounded.Float64()
	return sign + pesoSign + phPrinter.Sprint(number.Decimal(f, number.Scale(2)))
}

func FormatCurrencyFloat(amount float64) string {
	return FormatCurrency(decimal.NewFromFloat(amount))
}
