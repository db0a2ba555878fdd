// Package validator implements the business rules applied to an order after it
// passed the structural check: per-field validators composed into a record
// validator that aggregates violations by field.
package validator

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Violation messages reported by the field validators.
const (
	MsgNameNonEnglish     = "Name contains non-English characters"
	MsgNameNotCapitalized = "Name is not capitalized"
	MsgPriceNotInteger    = "Price is not a valid integer"
	MsgPriceNegative      = "Price must not be negative"
	MsgPriceOverLimit     = "Price is over 2000"
	MsgCurrencyWrong      = "Currency format is wrong"
)

// MaxPrice is the highest accepted order price.
const MaxPrice = 2000

// FieldValidator checks a single field value. An empty result means the value is valid.
type FieldValidator interface {
	Validate(value string) []string
}

// NameValidator accepts names made of ASCII characters whose words all start
// with an upper-case letter. Accented names are rejected.
type NameValidator struct{}

// Validate runs the character and capitalization checks independently, so both
// violations may be reported for the same name.
func (NameValidator) Validate(name string) []string {
	var violations []string
	for _, r := range name {
		if r > unicode.MaxASCII {
			violations = append(violations, MsgNameNonEnglish)
			break
		}
	}
	// strings.Fields never yields empty words
	for _, word := range strings.Fields(name) {
		first := []rune(word)[0]
		if !unicode.IsUpper(first) {
			violations = append(violations, MsgNameNotCapitalized)
			break
		}
	}
	return violations
}

// PriceValidator accepts decimal integers between 0 and MaxPrice.
type PriceValidator struct{}

// Validate reports at most one violation.
func (PriceValidator) Validate(price string) []string {
	s := strings.TrimSpace(price)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// out of int64 range is still a well-formed integer
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(s, "-") {
				return []string{MsgPriceNegative}
			}
			return []string{MsgPriceOverLimit}
		}
		return []string{MsgPriceNotInteger}
	}
	switch {
	case n < 0:
		return []string{MsgPriceNegative}
	case n > MaxPrice:
		return []string{MsgPriceOverLimit}
	}
	return nil
}

// CurrencyValidator accepts the codes of SupportedCurrencies, case-sensitively.
type CurrencyValidator struct{}

// SupportedCurrencies lists the currency codes accepted on input.
var SupportedCurrencies = []string{"TWD", "USD"}

func (CurrencyValidator) Validate(currency string) []string {
	for _, code := range SupportedCurrencies {
		if currency == code {
			return nil
		}
	}
	return []string{MsgCurrencyWrong}
}

var (
	_ FieldValidator = NameValidator{}
	_ FieldValidator = PriceValidator{}
	_ FieldValidator = CurrencyValidator{}
)
