package catalog

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"350000", 350000, true},
		{"350 000 €", 350000, true},
		{"75m²", 75, true},
		{"1,500.50", 1500.50, true},
		{"", 0, false},
		{"nous consulter", 0, false},
		{"-50", 0, false},
		{"..", 0, false},
	}

	for _, c := range cases {
		got, ok := ParseAmount(c.in)
		if ok != c.ok {
			t.Fatalf("ParseAmount(%q) ok = %v, want %v", c.in, ok, c.ok)
		}
		if ok && got != c.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
