package order

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestMergeKeepsID(t *testing.T) {
	o := Order{IDField: "1", "status": "Created", "origin": "Delhi"}
	got := o.Merge(Order{IDField: "42", "status": "Delivered"})

	if got.ID() != "1" {
		t.Fatalf("expected id 1, got %q", got.ID())
	}
	if got["status"] != "Delivered" {
		t.Fatalf("unexpected status: %v", got["status"])
	}
	if got["origin"] != "Delhi" {
		t.Fatalf("origin lost: %v", got["origin"])
	}
	if o["status"] != "Created" {
		t.Fatal("merge modified the receiver")
	}
}

func TestCloneIsDeep(t *testing.T) {
	o := Order{
		"items":        []any{map[string]any{"unit": "Box"}},
		"calculations": map[string]any{"freight": json.Number("5000")},
	}
	c := o.Clone()
	c["items"].([]any)[0].(map[string]any)["unit"] = "Piece"
	c["calculations"].(map[string]any)["freight"] = json.Number("1")

	if o["items"].([]any)[0].(map[string]any)["unit"] != "Box" {
		t.Fatal("clone shares items with original")
	}
	if o["calculations"].(map[string]any)["freight"] != json.Number("5000") {
		t.Fatal("clone shares calculations with original")
	}
}

func TestDecode(t *testing.T) {
	o, err := Decode(strings.NewReader(`{"biltiNo":"BL003","items":[{"packages":12345678901234567890}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if o["biltiNo"] != "BL003" {
		t.Fatalf("unexpected biltiNo: %v", o["biltiNo"])
	}
	out, _ := json.Marshal(o)
	if !strings.Contains(string(out), "12345678901234567890") {
		t.Fatalf("number not preserved: %s", out)
	}

	o, err = Decode(strings.NewReader(`null`))
	if err != nil || o == nil || len(o) != 0 {
		t.Fatalf("null: got %v, %v", o, err)
	}

	if _, err := Decode(strings.NewReader(`[1,2]`)); !errors.Is(err, ErrNotObject) {
		t.Fatalf("expected ErrNotObject, got %v", err)
	}
	if _, err := Decode(strings.NewReader(`{"biltiNo":`)); err == nil {
		t.Fatal("expected error for truncated body")
	}

	if _, err := Decode(strings.NewReader("{\"biltiNo\":\"BL003\"}\n\t ")); err != nil {
		t.Fatalf("trailing whitespace: %v", err)
	}
	for _, body := range []string{`{"biltiNo":"BL003"} garbage`, `{}{"x":1}`, `{"status":"Delivered"}]]]`, `null null`} {
		if _, err := Decode(strings.NewReader(body)); !errors.Is(err, ErrTrailingData) {
			t.Fatalf("%q: expected ErrTrailingData, got %v", body, err)
		}
	}
}

func TestSeed(t *testing.T) {
	seed := Seed()
	if len(seed) != 2 {
		t.Fatalf("expected 2 seed orders, got %d", len(seed))
	}
	if seed[0].ID() != "1" || seed[1].ID() != "2" {
		t.Fatalf("unexpected seed ids: %q %q", seed[0].ID(), seed[1].ID())
	}
	calc := seed[0]["calculations"].(map[string]any)
	if calc["totalAmount"] != json.Number("5650") {
		t.Fatalf("unexpected total: %v", calc["totalAmount"])
	}
	items := seed[1]["items"].([]any)
	if items[0].(map[string]any)["description"] != "Furniture" {
		t.Fatalf("unexpected item: %v", items[0])
	}
}
