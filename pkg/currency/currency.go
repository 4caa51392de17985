// Package currency renders amounts in Haitian gourdes the way the fr-HT
// locale does: decimal comma, two fraction digits, trailing "G" symbol.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.French)

// FormatGourdes renders an amount in gourdes, e.g. "150,00 G".
func FormatGourdes(amount float64) string {
	return printer.Sprintf("%v G", number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
