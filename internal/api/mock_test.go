package api

import (
	"orderservice/internal/order"
)

// mockOrderService implements service.OrderServiceInterface for testing.
type mockOrderService struct {
	processFunc func(o order.Order) (order.Order, error)
}

func (m *mockOrderService) Process(o order.Order) (order.Order, error) {
	return m.processFunc(o)
}

// mockValidator implements service.Validator for testing.
type mockValidator struct {
	validateFunc func(rec order.Record) (order.Record, error)
}

func (m *mockValidator) Validate(rec order.Record) (order.Record, error) {
	return m.validateFunc(rec)
}

type staticCodes []string

func (s staticCodes) Codes() []string { return s }
