// Package pricing holds the pure total and tax calculations used by the cart
// view, checkout and the summary endpoint.
package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// TaxRate is applied to the cart subtotal in Summarize.
const TaxRate = 0.10

type Line struct {
	Quantity  int
	UnitPrice float64
}

type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func ItemTotal(qty int, unitPrice float64) float64 {
	return float64(qty) * unitPrice
}

func CartTotal(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += ItemTotal(l.Quantity, l.UnitPrice)
	}
	return sum
}

func Summarize(lines []Line) Summary {
	sub := CartTotal(lines)
	tax := sub * TaxRate
	return Summary{Subtotal: sub, Tax: tax, Total: sub + tax}
}

var printer = message.NewPrinter(language.English)

// Formula renders "qty × price = total" with grouped thousands, e.g. "2 × 25,000,000 = 50,000,000".
func Formula(qty int, unitPrice float64) string {
	return printer.Sprintf("%d × %v = %v", qty, number.Decimal(unitPrice), number.Decimal(ItemTotal(qty, unitPrice)))
}
