package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts are JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// AmountScale is the number of decimal places an amount keeps.
const AmountScale = 4

// amountIntegerDigits matches the integer part of the numeric(20,4) column.
const amountIntegerDigits = 16

// MaxAmount bounds the magnitude of an amount. Every store backend can hold
// any value strictly below it at AmountScale places.
var MaxAmount = decimal.New(1, amountIntegerDigits)

// NormalizeAmount rounds d to AmountScale places and reports whether the
// result is within range. The magnitude is checked from the coefficient and
// exponent before rounding, so huge exponents are never expanded.
func NormalizeAmount(d decimal.Decimal) (decimal.Decimal, bool) {
	if d.IsZero() {
		return decimal.Zero, true
	}

	// |d| < 10^magnitude
	magnitude := d.NumDigits() + int(d.Exponent())
	switch {
	case magnitude > amountIntegerDigits:
		return d, false
	case magnitude < -AmountScale:
		return decimal.Zero, true
	}

	d = d.Round(AmountScale)
	return d, d.Abs().LessThan(MaxAmount)
}

// Transaction represents a single recorded income or expense.
type Transaction struct {
	Base
	Amount      decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0" json:"amount" swaggertype:"number"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    Category        `gorm:"not null;default:Other" json:"category"`
}
