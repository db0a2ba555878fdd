package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// ErrMalformedOrder is the sentinel behind every ShapeError.
var ErrMalformedOrder = errors.New("malformed order")

// NonFieldErrors is the ShapeError key used for problems that do not belong to
// a single field, such as invalid JSON.
const NonFieldErrors = "non_field_errors"

const (
	msgRequired      = "This field is required."
	msgNotString     = "Not a valid string."
	msgNotObject     = "Invalid data. Expected a dictionary."
	msgInvalidSyntax = "JSON parse error"
)

// ShapeError reports structural problems with an order document: invalid JSON,
// missing or blank fields and values of the wrong JSON type.
// Fields maps a dotted field path (for example "address.city") to its messages.
type ShapeError struct {
	Fields map[string][]string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMalformedOrder, formatFields(e.Fields))
}

func (e *ShapeError) Unwrap() error { return ErrMalformedOrder }

func (e *ShapeError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// covers reports whether field, or an object enclosing it, already has a message.
func (e *ShapeError) covers(field string) bool {
	for reported := range e.Fields {
		if field == reported || strings.HasPrefix(field, reported+".") {
			return true
		}
	}
	return false
}

var validate = newValidate()

func newValidate() *validatorv10.Validate {
	v := validatorv10.New()
	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses raw as an order document and checks that every field is present,
// non-blank and a JSON string. Keys must match exactly; unknown fields, including
// differently cased spellings of known ones, are ignored.
// Any problem is returned as a *ShapeError.
func Decode(raw []byte) (Order, error) {
	shapeErr := &ShapeError{}

	top, err := decodeObject(raw)
	if err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			shapeErr.add(NonFieldErrors, fmt.Sprintf("%s - %v", msgInvalidSyntax, err))
		} else {
			shapeErr.add(NonFieldErrors, msgNotObject)
		}
		return Order{}, shapeErr
	}

	o := Order{
		ID:       decodeString(top, "id", "", shapeErr),
		Name:     decodeString(top, "name", "", shapeErr),
		Price:    decodeString(top, "price", "", shapeErr),
		Currency: decodeString(top, "currency", "", shapeErr),
	}
	if rawAddr, ok := top["address"]; ok {
		addr, err := decodeObject(rawAddr)
		switch {
		case err != nil:
			shapeErr.add("address", msgNotObject)
		case addr != nil:
			o.Address = &Address{
				City:     decodeString(addr, "city", "address.", shapeErr),
				District: decodeString(addr, "district", "address.", shapeErr),
				Street:   decodeString(addr, "street", "address.", shapeErr),
			}
		}
	}

	// missing, null and empty values all end up as zero values here
	if err := validate.Struct(o); err != nil {
		var fieldErrs validatorv10.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Order{}, fmt.Errorf("shape check: %w", err)
		}
		for _, fe := range fieldErrs {
			field := fieldPath(fe.Namespace())
			if shapeErr.covers(field) {
				continue
			}
			shapeErr.add(field, msgRequired)
		}
	}

	if len(shapeErr.Fields) > 0 {
		return Order{}, shapeErr
	}
	return o, nil
}

// decodeObject splits a JSON object into its members without the
// case-insensitive key matching of struct decoding. A JSON null yields a nil
// map and no error.
func decodeObject(raw []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// decodeString returns the string member key of obj. An absent key or a null
// value gives "", a value of any other JSON type is reported under prefix+key.
func decodeString(obj map[string]json.RawMessage, key, prefix string, e *ShapeError) string {
	raw, ok := obj[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		e.add(prefix+key, msgNotString)
		return ""
	}
	return s
}

// fieldPath drops the root struct name from a validator namespace:
// "Order.address.city" becomes "address.city".
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}

func formatFields(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: [%s]", k, strings.Join(fields[k], "; ")))
	}
	return strings.Join(parts, ", ")
}
