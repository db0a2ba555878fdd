package formatter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"orderservice/internal/order"
)

var _ Formatter = (*RateFormatter)(nil)

// RateFormatter multiplies the integer price by a fixed rate and relabels the
// order with the target currency.
type RateFormatter struct {
	rate   decimal.Decimal
	target string
}

// NewRateFormatter creates a RateFormatter converting at rate into target.
func NewRateFormatter(rate int64, target string) *RateFormatter {
	return &RateFormatter{
		rate:   decimal.NewFromInt(rate),
		target: target,
	}
}

// NewUSDFormatter converts USD prices into the local currency.
func NewUSDFormatter() Formatter {
	return NewRateFormatter(USDToTWDRate, LocalCurrency)
}

// Format returns a copy of o with the converted price. The price must be a
// base-10 integer with an optional sign, the form the price validator accepts;
// exponents and fractions are rejected. The result is its exact product with
// the rate.
func (f *RateFormatter) Format(o order.Order) (order.Order, error) {
	s := strings.TrimSpace(o.Price)
	if !isDecimalInteger(s) {
		return order.Order{}, fmt.Errorf("%w: %q", ErrInvalidPrice, o.Price)
	}
	price, err := decimal.NewFromString(s)
	if err != nil {
		return order.Order{}, fmt.Errorf("%w: %q", ErrInvalidPrice, o.Price)
	}

	out := o.Clone()
	out.Price = price.Mul(f.rate).String()
	out.Currency = f.target
	return out, nil
}

// isDecimalInteger reports whether s is an optional sign followed by one or
// more ASCII digits.
func isDecimalInteger(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
