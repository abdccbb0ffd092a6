package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Bilti is the waybill shape the frontend works with.
type Bilti struct {
	ID           string       `json:"_id,omitempty"`
	BiltiNo      string       `json:"biltiNo"`
	BiltiMiti    string       `json:"biltiMiti"`
	Origin       string       `json:"origin"`
	Destination  string       `json:"destination"`
	Status       string       `json:"status"`
	PayMode      string       `json:"payMode"`
	BillTo       string       `json:"billTo"`
	Items        []Item       `json:"items"`
	Calculations Calculations `json:"calculations"`
}

// Item is a single consignment line.
type Item struct {
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Packages    float64 `json:"packages"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Calculations holds the charges of a bilti.
type Calculations struct {
	Freight       float64 `json:"freight"`
	VATPercentage float64 `json:"vatPercentage"`
	VATAmount     float64 `json:"vatAmount"`
	TotalAmount   float64 `json:"totalAmount"`
}

// ErrNotObject is returned by Decode when the payload is valid JSON but not an object.
var ErrNotObject = errors.New("order must be a JSON object")

// ErrTrailingData is returned by Decode when anything but whitespace follows the object.
var ErrTrailingData = errors.New("order has trailing data")

// Decode reads exactly one JSON object from r. Numbers keep their literal text.
// A JSON null decodes to an empty order.
func Decode(r io.Reader) (Order, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	switch v := raw.(type) {
	case nil:
		return Order{}, nil
	case map[string]any:
		return Order(v), nil
	default:
		return nil, ErrNotObject
	}
}

// Document converts b into the untyped form the store keeps.
func (b Bilti) Document() (Order, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encode bilti: %w", err)
	}
	return Decode(bytes.NewReader(data))
}
