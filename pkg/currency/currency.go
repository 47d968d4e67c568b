package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Rupiah amounts are whole integers; IDR has no fractional digits in practice.
var printer = message.NewPrinter(language.Indonesian)

// Format renders an amount as a rupiah string with Indonesian digit
// grouping, e.g. 30000 -> "Rp30.000".
func Format(amount int64) string {
	return printer.Sprintf("Rp%v", number.Decimal(amount))
}
