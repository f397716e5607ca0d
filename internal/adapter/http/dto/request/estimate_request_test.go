package request

import (
	"encoding/json"
	"testing"
)

func TestEstimateLineRequest_UnitPricePointer(t *testing.T) {
	t.Run("omitted unit price stays nil", func(t *testing.T) {
		var r EstimateLineRequest
		if err := json.Unmarshal([]byte(`{"line_type":"work","ref_id":"w-1","quantity":3}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if r.UnitPrice != nil {
			t.Fatalf("expected nil unit price, got %v", *r.UnitPrice)
		}
	})

	t.Run("explicit zero survives", func(t *testing.T) {
		var r EstimateLineRequest
		if err := json.Unmarshal([]byte(`{"line_type":"work","ref_id":"w-1","unit_price":0}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if r.UnitPrice == nil || *r.UnitPrice != 0 {
			t.Fatalf("expected explicit zero, got %v", r.UnitPrice)
		}
	})
}

func TestCreateEstimateRequest_ToInput(t *testing.T) {
	price := 20.0
	r := CreateEstimateRequest{
		ProjectID:             "p-1",
		Title:                 "Kitchen",
		Currency:              "EUR",
		CoefficientComplexity: 1.2,
		DiscountPercent:       10,
		Lines: []EstimateLineRequest{
			{LineType: "work", RefID: "w-1", Quantity: 3, UnitPrice: &price},
			{LineType: "material", RefID: "m-1", Quantity: 2},
		},
	}

	in := r.ToInput()
	if in.ProjectID != "p-1" || in.Title != "Kitchen" || in.CoefficientComplexity != 1.2 || in.DiscountPercent != 10 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(in.Lines))
	}
	if in.Lines[0].UnitPrice == nil || *in.Lines[0].UnitPrice != 20 {
		t.Fatalf("expected override carried, got %v", in.Lines[0].UnitPrice)
	}
	if in.Lines[1].UnitPrice != nil {
		t.Fatalf("expected nil override, got %v", *in.Lines[1].UnitPrice)
	}
}
