package kernel

import (
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount in integer cents. Monetary fields of an order are
// computed once from Money values and stored, never recomputed on read.
type Money struct {
	cents int64
}

// NewMoney returns an amount of cents, rejecting negative values.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%d is negative", cents))
	}
	return Money{cents: cents}, nil
}

// MustMoney is NewMoney for constants and tests; it panics on negative input.
func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports a zero amount.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns m + other, failing when the sum does not fit in int64 cents.
func (m Money) Add(other Money) (Money, error) {
	if m.cents > math.MaxInt64-other.cents {
		return Money{}, errs.NewValueIsOutOfRangeError("money", fmt.Sprintf("%s + %s", m, other), 0, int64(math.MaxInt64))
	}
	return Money{cents: m.cents + other.cents}, nil
}

// Sub returns m - other, failing when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.cents - other.cents)
}

// MulRate multiplies by a rate and rounds half away from zero to whole cents.
func (m Money) MulRate(rate decimal.Decimal) (Money, error) {
	if rate.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("rate", fmt.Errorf("%s is negative", rate))
	}
	product := decimal.NewFromInt(m.cents).Mul(rate).Round(0)
	return NewMoney(product.IntPart())
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "12.50".
func (m Money) String() string {
	return decimal.New(m.cents, -2).StringFixed(2)
}
