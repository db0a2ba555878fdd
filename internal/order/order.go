// Package order defines the order payload accepted by the service and the
// structural checks applied to it before any business validation.
package order

// Address is the delivery address of an order. Its fields are opaque strings.
type Address struct {
	City     string `json:"city" validate:"required"`
	District string `json:"district" validate:"required"`
	Street   string `json:"street" validate:"required"`
}

// Order is a purchase record submitted by a client.
// Price carries a non-negative integer encoded as a string.
type Order struct {
	ID       string   `json:"id" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Address  *Address `json:"address" validate:"required"`
	Price    string   `json:"price" validate:"required"`
	Currency string   `json:"currency" validate:"required"`
}

// Record is the generic field view of an order used by the record validator.
// Keys are JSON field names.
type Record map[string]any

// Record returns the order as a Record. The address is flattened into a nested
// map so that the record mirrors the JSON document.
func (o Order) Record() Record {
	rec := Record{
		"id":       o.ID,
		"name":     o.Name,
		"price":    o.Price,
		"currency": o.Currency,
	}
	if o.Address != nil {
		rec["address"] = map[string]any{
			"city":     o.Address.City,
			"district": o.Address.District,
			"street":   o.Address.Street,
		}
	}
	return rec
}

// Clone returns a copy of o that does not share the address pointer.
func (o Order) Clone() Order {
	if o.Address != nil {
		addr := *o.Address
		o.Address = &addr
	}
	return o
}
