package entities

import "testing"

func TestLineTypeValid(t *testing.T) {
	cases := []struct {
		in   LineType
		want bool
	}{
		{LineTypeWork, true},
		{LineTypeMaterial, true},
		{LineType("equipment"), false},
		{LineType(""), false},
		{LineType("Work"), false},
	}

	for _, tc := range cases {
		if got := tc.in.Valid(); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
