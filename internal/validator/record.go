package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"orderservice/internal/order"
)

// ErrInvalidOrder is the sentinel behind every ValidationError.
var ErrInvalidOrder = errors.New("order validation failed")

// ValidationError carries the violations of every failed field, keyed by field
// name. It is only built when at least one field failed.
type ValidationError struct {
	Fields map[string][]string
}

// Error renders the mapping sorted by field name, e.g.
// "name: [Name is not capitalized], price: [Price is over 2000]".
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: [%s]", k, strings.Join(e.Fields[k], "; ")))
	}
	return strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidOrder }

// RecordValidator runs a field validator for every known field of a record.
type RecordValidator struct {
	validators map[string]FieldValidator
}

// NewRecordValidator creates a RecordValidator over the given field validators.
func NewRecordValidator(validators map[string]FieldValidator) *RecordValidator {
	return &RecordValidator{validators: validators}
}

// NewDefaultRecordValidator validates name, price and currency.
func NewDefaultRecordValidator() *RecordValidator {
	return NewRecordValidator(map[string]FieldValidator{
		"name":     NameValidator{},
		"price":    PriceValidator{},
		"currency": CurrencyValidator{},
	})
}

// Validate returns rec unchanged when every known field present in it is valid.
// Fields missing from rec are skipped so partial records can be checked; fields
// without a validator are neither checked nor modified.
func (v *RecordValidator) Validate(rec order.Record) (order.Record, error) {
	violations := make(map[string][]string)
	for field, fv := range v.validators {
		raw, ok := rec[field]
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			violations[field] = []string{fieldLabel(field) + " must be a string"}
			continue
		}
		if msgs := fv.Validate(value); len(msgs) > 0 {
			violations[field] = msgs
		}
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Fields: violations}
	}
	return rec, nil
}

func fieldLabel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
