// Package service implements the order processing logic.
package service

import (
	"fmt"

	"go.uber.org/zap"

	"orderservice/internal/formatter"
	"orderservice/internal/order"
)

// OrderServiceInterface defines the operations available for order processing.
type OrderServiceInterface interface {
	Process(o order.Order) (order.Order, error)
}

// Validator checks an order record before it is processed.
type Validator interface {
	Validate(rec order.Record) (order.Record, error)
}

// FormatterProvider resolves the formatter for a currency code.
type FormatterProvider interface {
	Get(code string) formatter.Formatter
}

// OrderService normalizes order prices into the local currency.
type OrderService struct {
	formatters FormatterProvider
	log        *zap.SugaredLogger
}

// NewOrderService creates a new OrderService
func NewOrderService(formatters FormatterProvider, logger *zap.SugaredLogger) *OrderService {
	return &OrderService{
		formatters: formatters,
		log:        logger,
	}
}

// Process applies the formatter registered for the order currency. Unknown
// currencies get the registry fallback, so lookups cannot fail; only errors
// raised by the formatter itself are returned.
func (s *OrderService) Process(o order.Order) (order.Order, error) {
	out, err := s.formatters.Get(o.Currency).Format(o)
	if err != nil {
		return order.Order{}, fmt.Errorf("format order %s: %w", o.ID, err)
	}

	s.log.Debugw("Order processed",
		"order_id", o.ID,
		"currency", o.Currency,
		"price", o.Price,
		"out_currency", out.Currency,
		"out_price", out.Price,
	)
	return out, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
