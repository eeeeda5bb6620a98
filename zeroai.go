// Package zeroai is the entry point for Go programs that consume the
// ZeroAI-UI design tokens.
package zeroai

import (
	"strings"

	"github.com/agiangrant/zeroai-ui/plugin"
	"github.com/agiangrant/zeroai-ui/tokens"
)

// Theme is one variant of the token table.
// This is a re-export of tokens.Theme for consumer convenience.
type Theme = tokens.Theme

// Utilities is an ordered set of utility-class rules.
// This is a re-export of plugin.Utilities for consumer convenience.
type Utilities = plugin.Utilities

// DefaultTheme returns the ZeroAI purple/blue palette.
func DefaultTheme() Theme {
	return tokens.Default()
}

// LoadTheme returns a built-in variant by name, or loads a theme file when
// name ends in .toml.
func LoadTheme(name string) (Theme, error) {
	if strings.HasSuffix(name, ".toml") {
		return tokens.LoadFile(name)
	}
	return tokens.Variant(name)
}

// StyleSheet returns the CSS of every built-in utility class.
func StyleSheet() string {
	return plugin.Collect(plugin.Plugins()...).CSS()
}
