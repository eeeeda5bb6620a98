package tokens

import (
	"fmt"
	"sort"
	"strings"
)

// Parity is the key-set difference between two theme variants.
type Parity struct {
	A, B  string   // variant names
	OnlyA []string // keys present in A but not in B, sorted
	OnlyB []string // keys present in B but not in A, sorted
}

// Diff compares the token keys of two variants.
func Diff(a, b Theme) Parity {
	inA := keySet(a)
	inB := keySet(b)

	p := Parity{A: a.Name, B: b.Name}
	for k := range inA {
		if !inB[k] {
			p.OnlyA = append(p.OnlyA, k)
		}
	}
	for k := range inB {
		if !inA[k] {
			p.OnlyB = append(p.OnlyB, k)
		}
	}
	sort.Strings(p.OnlyA)
	sort.Strings(p.OnlyB)
	return p
}

// Empty reports whether both variants expose identical keys.
func (p Parity) Empty() bool {
	return len(p.OnlyA) == 0 && len(p.OnlyB) == 0
}

// Unexpected returns the differing keys that are not documented optional
// tokens, sorted.
func (p Parity) Unexpected() []string {
	optional := make(map[string]bool)
	for _, k := range OptionalKeys() {
		optional[k] = true
	}
	var out []string
	for _, k := range append(append([]string(nil), p.OnlyA...), p.OnlyB...) {
		if !optional[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// CheckParity fails when a and b diverge outside the optional tokens.
func CheckParity(a, b Theme) error {
	if unexpected := Diff(a, b).Unexpected(); len(unexpected) > 0 {
		return fmt.Errorf("%w: %s vs %s: %s", ErrParity, a.Name, b.Name, strings.Join(unexpected, ", "))
	}
	return nil
}

func keySet(t Theme) map[string]bool {
	set := make(map[string]bool)
	for _, k := range t.Keys() {
		set[k] = true
	}
	return set
}
