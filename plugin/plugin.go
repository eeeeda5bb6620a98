// Package plugin holds the utility-class generators registered alongside
// the token table. Each generator receives an AddUtilities callback and
// calls it exactly once with its rules, mirroring Tailwind's plugin API.
package plugin

import (
	"strings"

	"github.com/agiangrant/zeroai-ui/tokens"
)

// Declaration is a single CSS property in Tailwind's camelCase form.
type Declaration struct {
	Property string
	Value    string
}

// Rule maps a class selector to its declarations.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Utilities is an ordered set of rules. Order is part of the output.
type Utilities []Rule

// AddUtilities registers a batch of utility rules.
type AddUtilities func(Utilities)

// Plugin is a utility generator.
type Plugin struct {
	Name     string
	Generate func(AddUtilities)
}

// Plugins returns the built-in generators in registration order.
func Plugins() []Plugin {
	return []Plugin{
		{Name: "safe-area", Generate: SafeArea},
		{Name: "touch-target", Generate: TouchTarget},
	}
}

// Collect runs each plugin and returns every rule it registered.
func Collect(plugins ...Plugin) Utilities {
	var all Utilities
	add := func(u Utilities) {
		all = append(all, u...)
	}
	for _, p := range plugins {
		p.Generate(add)
	}
	return all
}

// Selectors returns the selector of every rule in order.
func (u Utilities) Selectors() []string {
	out := make([]string, len(u))
	for i, r := range u {
		out[i] = r.Selector
	}
	return out
}

// Find returns the rule with the given selector.
func (u Utilities) Find(selector string) (Rule, bool) {
	for _, r := range u {
		if r.Selector == selector {
			return r, true
		}
	}
	return Rule{}, false
}

// Get returns the value of a property in the rule.
func (r Rule) Get(property string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// SafeArea registers padding utilities for device safe-area insets.
func SafeArea(add AddUtilities) {
	top := Declaration{"paddingTop", "env(safe-area-inset-top)"}
	bottom := Declaration{"paddingBottom", "env(safe-area-inset-bottom)"}
	left := Declaration{"paddingLeft", "env(safe-area-inset-left)"}
	right := Declaration{"paddingRight", "env(safe-area-inset-right)"}

	add(Utilities{
		{Selector: ".safe-area-top", Declarations: []Declaration{top}},
		{Selector: ".safe-area-bottom", Declarations: []Declaration{bottom}},
		{Selector: ".safe-area-left", Declarations: []Declaration{left}},
		{Selector: ".safe-area-right", Declarations: []Declaration{right}},
		{Selector: ".safe-area-all", Declarations: []Declaration{top, bottom, left, right}},
	})
}

// TouchTarget registers minimum-size utilities for touch targets. The
// sizes are the same constants the spacing table uses.
func TouchTarget(add AddUtilities) {
	size := func(v string) []Declaration {
		return []Declaration{{"minWidth", v}, {"minHeight", v}}
	}

	add(Utilities{
		{Selector: ".touch-target", Declarations: size(tokens.TouchMin)},
		{Selector: ".touch-target-comfortable", Declarations: size(tokens.TouchComfortable)},
		{Selector: ".touch-target-spacious", Declarations: size(tokens.TouchSpacious)},
	})
}

// CSS renders the rules as a stylesheet with kebab-case properties.
func (u Utilities) CSS() string {
	var b strings.Builder
	for i, r := range u {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.Selector)
		b.WriteString(" {\n")
		for _, d := range r.Declarations {
			b.WriteString("  ")
			b.WriteString(KebabCase(d.Property))
			b.WriteString(": ")
			b.WriteString(d.Value)
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

// KebabCase converts a camelCase CSS property name to its CSS spelling.
func KebabCase(property string) string {
	var b strings.Builder
	for _, r := range property {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
