package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// fixed2 formats v with two decimals and thousands separators, e.g. 1,234.50.
func fixed2(v float64) string {
	return printer.Sprintf("%.2f", v)
}
