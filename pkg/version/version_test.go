package version

import "testing"

func TestNumericOrdering(t *testing.T) {
	cases := []struct {
		lower, higher string
	}{
		{"1", "1.1"},
		{"1.1", "2"},
		{"1.0.9", "1.1"},
		{"0.9.9", "1"},
		{"1.1", "1.1.1"},
	}
	for _, tc := range cases {
		if Numeric(tc.lower) >= Numeric(tc.higher) {
			t.Errorf("expected %q < %q, got %d >= %d",
				tc.lower, tc.higher, Numeric(tc.lower), Numeric(tc.higher))
		}
	}
}

func TestNumericEquivalentForms(t *testing.T) {
	if Numeric("1") != Numeric("1.0.0") {
		t.Errorf("expected 1 == 1.0.0, got %d vs %d", Numeric("1"), Numeric("1.0.0"))
	}
}
