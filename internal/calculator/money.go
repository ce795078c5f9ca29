package calculator

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrTotalOutOfRange is returned when a session total is not a finite number.
var ErrTotalOutOfRange = errors.New("total amount out of range")

// EntryTotal returns hours × hourly price. The product is taken in decimal so
// 1.1h at 3.00 is 3.3, not 3.3000000000000003. Totals that do not fit a
// finite float64 are rejected, since they can be neither stored nor summed.
func EntryTotal(hours, price float64) (float64, error) {
	if !finite(hours) || !finite(price) {
		return 0, ErrTotalOutOfRange
	}
	total := decimal.NewFromFloat(hours).Mul(decimal.NewFromFloat(price)).InexactFloat64()
	if !finite(total) {
		return 0, ErrTotalOutOfRange
	}
	return total, nil
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// accumulator sums hours and earnings without float drift.
type accumulator struct {
	hours    decimal.Decimal
	earnings decimal.Decimal
}

func (a *accumulator) add(hours, amount float64) {
	a.hours = a.hours.Add(decimal.NewFromFloat(hours))
	a.earnings = a.earnings.Add(decimal.NewFromFloat(amount))
}

func (a *accumulator) hoursFloat() float64 {
	return a.hours.InexactFloat64()
}

func (a *accumulator) earningsFloat() float64 {
	return a.earnings.InexactFloat64()
}
