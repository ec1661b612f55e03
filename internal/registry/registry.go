// Package registry classifies 24-bit aircraft addresses to the country or
// authority the address block is allocated to.
//
// The classifier is a decision list, not a longest-prefix trie: rules are
// evaluated in listed order over the binary expansion of the address and the
// first top-level match wins. A matching rule's override list is then walked
// the same way; the first override hit replaces the top-level label. The
// precedence therefore lives entirely in the table ordering, which keeps the
// (historically hand-maintained) allocation data auditable on its own.
package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// Unknown is the sentinel label returned when no rule matches the address.
const Unknown = "Unknown Registry"

// Rule maps a binary prefix of the 24-bit address space to a label. Overrides
// are evaluated only after the rule itself has matched.
type Rule struct {
	Prefix    string
	Label     string
	Overrides []Rule
}

// ParseAddress parses a hex aircraft address ("A0CF8D") into its 24-bit value.
func ParseAddress(hex string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(hex), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad aircraft address %q: %w", hex, err)
	}
	if v > 0xFFFFFF {
		return 0, fmt.Errorf("aircraft address %q exceeds 24 bits", hex)
	}
	return uint32(v), nil
}

// Classify returns the registry label for an address. It always returns a
// label; addresses outside every allocated block get the Unknown sentinel.
func Classify(addr uint32) string {
	bits := expand(addr)
	if label, ok := match(primaryRules, bits); ok {
		return label
	}
	if label, ok := match(fallbackRules, bits); ok {
		return label
	}
	return Unknown
}

// ClassifyHex is Classify for a hex-encoded address. Unparseable addresses
// classify as Unknown.
func ClassifyHex(hex string) string {
	addr, err := ParseAddress(hex)
	if err != nil {
		return Unknown
	}
	return Classify(addr)
}

// expand returns the MSB-first 24-character binary expansion of the address.
// Short addresses are zero-padded on the left.
func expand(addr uint32) string {
	return fmt.Sprintf("%024b", addr&0xFFFFFF)
}

func match(rules []Rule, bits string) (string, bool) {
	for _, r := range rules {
		if !strings.HasPrefix(bits, r.Prefix) {
			continue
		}
		for _, o := range r.Overrides {
			if strings.HasPrefix(bits, o.Prefix) {
				return o.Label, true
			}
		}
		return r.Label, true
	}
	return "", false
}
