package bid

import (
	"math"

	"github.com/shopspring/decimal"
)

// Cents is a currency amount in whole cents. Bid arithmetic never sums or
// compares float dollars; every dollar figure is converted to Cents once, at
// the point it first becomes money.
type Cents int64

// ToCents converts a dollar amount to the nearest cent, halves rounding away
// from zero.
func ToCents(dollars float64) Cents {
	return Cents(math.Round(dollars * 100))
}

// ApplyMarkup scales an integer cost by the bid markup and rounds the product
// back to a whole cent.
func ApplyMarkup(cost Cents) Cents {
	return Cents(math.Round(float64(cost) * Markup))
}

// Dollars returns the exact dollar value of c.
func (c Cents) Dollars() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String renders c as a plain two-place dollar figure, e.g. "6019.26".
func (c Cents) String() string {
	return c.Dollars().StringFixed(2)
}

func maxCents(a, b Cents) Cents {
	if a > b {
		return a
	}
	return b
}

// round2 rounds a quantity to two decimal places for display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
