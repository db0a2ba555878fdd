package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderservice/internal/order"
)

func TestRecordValidator_ValidRecordPassesUnchanged(t *testing.T) {
	v := NewDefaultRecordValidator()
	rec := order.Record{"name": "Steven Hu", "price": "2000", "currency": "USD"}

	got, err := v.Validate(rec)
	require.NoError(t, err)
	assert.Equal(t, order.Record{"name": "Steven Hu", "price": "2000", "currency": "USD"}, got)
}

func TestRecordValidator_InvalidRecordReportsEveryField(t *testing.T) {
	v := NewDefaultRecordValidator()

	_, err := v.Validate(order.Record{"name": "steven hü", "price": "2001", "currency": "JPY"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOrder))

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, map[string][]string{
		"name":     {MsgNameNonEnglish, MsgNameNotCapitalized},
		"price":    {MsgPriceOverLimit},
		"currency": {MsgCurrencyWrong},
	}, vErr.Fields)
}

func TestRecordValidator_SkipsAbsentAndUnknownFields(t *testing.T) {
	v := NewDefaultRecordValidator()

	t.Run("empty record", func(t *testing.T) {
		got, err := v.Validate(order.Record{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("partial record", func(t *testing.T) {
		_, err := v.Validate(order.Record{"price": "3000"})

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, map[string][]string{"price": {MsgPriceOverLimit}}, vErr.Fields)
	})

	t.Run("unknown fields untouched", func(t *testing.T) {
		rec := order.Record{"id": "bad id!", "address": map[string]any{"city": "台北"}, "name": "Steven Hu"}
		got, err := v.Validate(rec)
		require.NoError(t, err)
		assert.Equal(t, "bad id!", got["id"])
		assert.Equal(t, map[string]any{"city": "台北"}, got["address"])
	})
}

func TestRecordValidator_NonStringValue(t *testing.T) {
	v := NewDefaultRecordValidator()

	_, err := v.Validate(order.Record{"price": 100})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"Price must be a string"}, vErr.Fields["price"])
}

func TestRecordValidator_CustomValidators(t *testing.T) {
	v := NewRecordValidator(map[string]FieldValidator{"currency": CurrencyValidator{}})

	_, err := v.Validate(order.Record{"name": "steven", "currency": "USD"})
	assert.NoError(t, err)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string][]string{
		"price": {MsgPriceOverLimit},
		"name":  {MsgNameNonEnglish, MsgNameNotCapitalized},
	}}

	assert.Equal(t,
		"name: [Name contains non-English characters; Name is not capitalized], price: [Price is over 2000]",
		err.Error())
}
