package tokens

import (
	"fmt"
	"sort"
)

// variants lists the built-in palettes by name. Each constructor returns a
// fresh value, so callers can modify what they get without affecting
// anyone else.
var variants = map[string]func() Theme{
	"default": Default,
	"taobao":  Taobao,
}

// DefaultVariant is used when no variant is configured.
const DefaultVariant = "default"

// Variant returns the built-in palette with the given name.
func Variant(name string) (Theme, error) {
	build, ok := variants[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownVariant, name, VariantNames())
	}
	return build(), nil
}

// VariantNames returns the built-in variant names in sorted order.
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
