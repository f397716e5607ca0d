package request

import (
	"encoding/json"
	"testing"
)

func TestWorkRequest_ToInput(t *testing.T) {
	t.Run("omitted is_active defaults to active", func(t *testing.T) {
		var r WorkRequest
		if err := json.Unmarshal([]byte(`{"name":"Tiling","unit":"m2","base_rate":40}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if in := r.ToInput(); !in.IsActive {
			t.Fatalf("expected active by default")
		}
	})

	t.Run("explicit false deactivates", func(t *testing.T) {
		var r WorkRequest
		if err := json.Unmarshal([]byte(`{"name":"Tiling","is_active":false}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if in := r.ToInput(); in.IsActive {
			t.Fatalf("expected inactive")
		}
	})
}

func TestMaterialRequest_ToInput(t *testing.T) {
	var r MaterialRequest
	if err := json.Unmarshal([]byte(`{"name":"Cement","unit":"bag","price_per_unit":7.5,"supplier":"ACME"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	in := r.ToInput()
	if in.Name != "Cement" || in.PricePerUnit != 7.5 || in.Supplier != "ACME" || !in.IsActive {
		t.Fatalf("unexpected input: %+v", in)
	}
}
