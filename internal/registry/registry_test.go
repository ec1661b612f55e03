package registry

import "testing"

func TestClassifyHex(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"A0CF8D", "U.S."},
		{"a0cf8d", "U.S."},
		{"AE1234", "U.S. Military"},
		{"AF01C2", "U.S. Military"},
		{"ADFDF8", "U.S. Air Force One"},
		{"ADFDF9", "U.S. Air Force One"},
		{"ADFDF7", "U.S."},
		{"C06A11", "Canada"},
		{"3C4444", "Germany"},
		{"3EA001", "Germany (Military)"},
		{"3F4100", "Germany (Military)"},
		{"3FC000", "Germany"},
		{"33FF42", "Italy (Military)"},
		{"300042", "Italy"},
		{"3B7777", "France (Military)"},
		{"390001", "France"},
		{"43C123", "U.K. Military"},
		{"400F01", "United Kingdom"},
		{"008012", "South Africa"},
		{"100001", "Russia"},
		{"780ABC", "China"},
		{"7C432F", "Australia"},
		{"899123", "Taiwan"},
		{"E48B00", "Brazil"},
		{"4CA123", "Ireland"},
		{"501D00", "Croatia"},
		// Unallocated blocks fall to the regional fallback list.
		{"2FFFFF", "Reserved (AFI Region)"},
		{"B00001", "Reserved (CAR Region)"},
		{"F00001", "ICAO Special Use"},
		// Blocks ICAO never placed at all classify as unknown.
		{"D12345", Unknown},
		{"F80000", Unknown},
		// Garbage input.
		{"", Unknown},
		{"ZZZZZZ", Unknown},
		{"1234567", Unknown},
	}

	for _, tc := range tests {
		if got := ClassifyHex(tc.hex); got != tc.want {
			t.Errorf("ClassifyHex(%q) = %q, want %q", tc.hex, got, tc.want)
		}
	}
}

// The classifier must return the same label every time and must return a
// label for every representable address.
func TestClassifyTotalAndDeterministic(t *testing.T) {
	for addr := uint32(0); addr <= 0xFFFFFF; addr += 0x1357 {
		first := Classify(addr)
		if first == "" {
			t.Fatalf("Classify(%06X) returned empty label", addr)
		}
		if again := Classify(addr); again != first {
			t.Fatalf("Classify(%06X) = %q then %q", addr, first, again)
		}
	}
}

// Override prefixes must be genuine refinements of their parent rule;
// anything else is a table-maintenance error the matcher cannot detect.
func TestOverridesNestedUnderParent(t *testing.T) {
	check := func(rules []Rule) {
		for _, r := range rules {
			for _, o := range r.Overrides {
				if len(o.Prefix) <= len(r.Prefix) || o.Prefix[:len(r.Prefix)] != r.Prefix {
					t.Errorf("override %q (%s) does not refine parent %q (%s)",
						o.Prefix, o.Label, r.Prefix, r.Label)
				}
				if len(o.Prefix) > 24 {
					t.Errorf("override prefix %q longer than 24 bits", o.Prefix)
				}
			}
			if len(r.Prefix) == 0 || len(r.Prefix) > 24 {
				t.Errorf("rule %q (%s) has bad prefix length", r.Prefix, r.Label)
			}
		}
	}
	check(primaryRules)
	check(fallbackRules)
}

func TestParseAddress(t *testing.T) {
	if v, err := ParseAddress("A0CF8D"); err != nil || v != 0xA0CF8D {
		t.Errorf("ParseAddress(A0CF8D) = %06X, %v", v, err)
	}
	if _, err := ParseAddress("1000000"); err == nil {
		t.Error("ParseAddress accepted a 25-bit value")
	}
	if _, err := ParseAddress(""); err == nil {
		t.Error("ParseAddress accepted an empty address")
	}
}
