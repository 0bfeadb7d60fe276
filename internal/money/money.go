// Package money holds the numeric helpers shared by the lifecycle: amounts
// are always integer cents, hours are decimal.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// HoursToCents converts worked hours at an hourly rate (in cents) into a
// total amount in cents, rounding half away from zero.
func HoursToCents(hours float64, rateCents int64) int64 {
	return int64(math.Round(hours * float64(rateCents)))
}

// SumHours adds up a list of hour values.
func SumHours(hours []float64) float64 {
	var total float64
	for _, h := range hours {
		total += h
	}

	return total
}

// FormatEUR renders an amount in cents as a human-readable euro string,
// e.g. 375000 -> "€3,750.00".
func FormatEUR(cents int64) string {
	return printer.Sprintf("€%.2f", float64(cents)/100.0)
}
