// Package format renders amounts for display. Nothing here feeds back into
// the ledger.
package format

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency formats amounts as symbol, locale digit grouping and exactly two
// fraction digits, e.g. ₹1,25,000.00 for en-IN.
type Currency struct {
	symbol  string
	printer *message.Printer
}

// NewCurrency creates a formatter for the BCP 47 locale tag.
func NewCurrency(locale, symbol string) (*Currency, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid currency locale %q: %w", locale, err)
	}
	return &Currency{symbol: symbol, printer: message.NewPrinter(tag)}, nil
}

// Format renders amount. Negative amounts carry a leading minus sign.
func (c *Currency) Format(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	value := amount.Abs().Round(2).InexactFloat64()
	digits := c.printer.Sprint(number.Decimal(value, number.Scale(2)))
	return sign + c.symbol + digits
}
