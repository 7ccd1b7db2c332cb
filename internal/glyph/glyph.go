// Package glyph defines how many closed loops ("holes") each decimal
// digit has when printed in a given font style.
package glyph

import (
	"fmt"
	"sort"
)

// MaxHoles is the largest hole count accepted for a single digit.
const MaxHoles = 9

// Table maps each decimal digit 0-9 (by index) to its hole count.
type Table [10]int

// Default returns the hole table for a typical printed font:
// 0, 4, 6 and 9 have one hole, 8 has two, all other digits none.
func Default() Table {
	return Table{
		0: 1,
		4: 1,
		6: 1,
		8: 2,
		9: 1,
	}
}

// Holes returns the hole count of an ASCII digit. Non-digit bytes
// have no holes.
func (t Table) Holes(d byte) int {
	if d < '0' || d > '9' {
		return 0
	}
	return t[d-'0']
}

// Sum totals the holes of every digit in s.
func (t Table) Sum(s string) int {
	total := 0
	for i := 0; i < len(s); i++ {
		total += t.Holes(s[i])
	}
	return total
}

// With returns a copy of t with the given per-digit overrides applied.
// Keys must be single digits ("0" through "9") and values must be in
// [0, MaxHoles].
func (t Table) With(overrides map[string]int) (Table, error) {
	out := t

	// Sorted so the first reported error is deterministic.
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := overrides[k]
		if len(k) != 1 || k[0] < '0' || k[0] > '9' {
			return t, fmt.Errorf("invalid glyph %q: must be a single digit 0-9", k)
		}
		if v < 0 || v > MaxHoles {
			return t, fmt.Errorf("invalid hole count %d for glyph %q: must be in [0, %d]",
				v, k, MaxHoles)
		}
		out[k[0]-'0'] = v
	}
	return out, nil
}
