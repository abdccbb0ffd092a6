package order

import (
	"context"
	"errors"
)

// IDField is the key under which the store keeps an order's identifier.
const IDField = "_id"

// Order is a bilti record as the client sent it. Any JSON object is a valid
// order; the known fields are described by Bilti.
type Order map[string]any

// ID returns the order identifier, or "" when none is set.
func (o Order) ID() string {
	id, _ := o[IDField].(string)
	return id
}

// Clone returns a deep copy of o.
func (o Order) Clone() Order {
	if o == nil {
		return nil
	}
	out := make(Order, len(o))
	for k, v := range o {
		out[k] = cloneValue(v)
	}
	return out
}

// Merge returns a copy of o with every top-level key of patch applied.
// The identifier is never taken from patch.
func (o Order) Merge(patch Order) Order {
	out := o.Clone()
	if out == nil {
		out = Order{}
	}
	for k, v := range patch {
		if k == IDField {
			continue
		}
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(Order(t).Clone())
	case Order:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}

// Repository defines behavior for storing orders.
type Repository interface {
	Create(ctx context.Context, o Order) (Order, error)
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, id string, patch Order) (Order, error)
	Delete(ctx context.Context, id string) error
}

// ErrNotFound indicates the requested order does not exist.
var ErrNotFound = errors.New("order not found")
