// Package formatter converts order prices into the local currency.
// Each currency code maps to a Formatter; codes without a registered formatter
// are treated as already local and left untouched.
package formatter

import (
	"errors"

	"orderservice/internal/order"
)

// LocalCurrency is the currency every order is normalized into.
const LocalCurrency = "TWD"

// USDToTWDRate is the fixed USD to TWD exchange rate. It is not refreshed from
// any rate source.
const USDToTWDRate int64 = 31

// ErrInvalidPrice is returned when a price cannot be converted.
var ErrInvalidPrice = errors.New("invalid price")

// Formatter transforms the price and currency of an order.
// Implementations must not modify their input.
type Formatter interface {
	Format(o order.Order) (order.Order, error)
}

// Passthrough returns the order unchanged. It serves orders already in the
// local currency and, as the registry fallback, any unknown currency.
type Passthrough struct{}

func (Passthrough) Format(o order.Order) (order.Order, error) {
	return o, nil
}

var _ Formatter = Passthrough{}
