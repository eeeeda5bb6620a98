// Package preview renders a theme for the terminal and checks text
// contrast between its color tokens.
package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/agiangrant/zeroai-ui/tokens"
)

// WCAG 2.x contrast thresholds.
const (
	MinContrastAA      = 4.5
	MinContrastAALarge = 3.0
	MinContrastAAA     = 7.0
)

// Pair is one foreground/background combination and its contrast ratio.
type Pair struct {
	Foreground string // token path
	Background string // token path
	Ratio      float64
}

// Level returns the highest WCAG level the pair meets.
func (p Pair) Level() string {
	switch {
	case p.Ratio >= MinContrastAAA:
		return "AAA"
	case p.Ratio >= MinContrastAA:
		return "AA"
	case p.Ratio >= MinContrastAALarge:
		return "AA large"
	default:
		return "fail"
	}
}

// Passes reports whether the pair meets AA for body text.
func (p Pair) Passes() bool {
	return p.Ratio >= MinContrastAA
}

var (
	contrastForegrounds = []string{
		"colors.human.text-primary",
		"colors.human.text-secondary",
		"colors.human.text-tertiary",
		"colors.human.primary",
		"colors.ai.primary",
	}
	contrastBackgrounds = []string{
		"colors.human.surface",
		"colors.human.surface-elevated",
		"colors.human.surface-sunken",
	}
)

// Contrast computes the ratio of every text color against every surface.
func Contrast(t tokens.Theme) ([]Pair, error) {
	var pairs []Pair
	for _, fg := range contrastForegrounds {
		for _, bg := range contrastBackgrounds {
			ratio, err := tokenContrast(t, fg, bg)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{Foreground: fg, Background: bg, Ratio: ratio})
		}
	}
	return pairs, nil
}

func tokenContrast(t tokens.Theme, fgPath, bgPath string) (float64, error) {
	fg, ok := t.Lookup(fgPath)
	if !ok {
		return 0, fmt.Errorf("%w: %s", tokens.ErrMissingToken, fgPath)
	}
	bg, ok := t.Lookup(bgPath)
	if !ok {
		return 0, fmt.Errorf("%w: %s", tokens.ErrMissingToken, bgPath)
	}
	return ContrastRatio(fg.Value, bg.Value)
}

// ContrastRatio returns the WCAG contrast ratio of two hex colors,
// between 1 and 21.
func ContrastRatio(a, b string) (float64, error) {
	la, err := luminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := luminance(b)
	if err != nil {
		return 0, err
	}
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05), nil
}

func luminance(hex string) (float64, error) {
	c, err := colorful.Hex(expandHex(hex))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an opaque hex color", tokens.ErrInvalidValue, hex)
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// expandHex turns #rgb into #rrggbb and lower-cases the digits.
func expandHex(hex string) string {
	hex = strings.ToLower(strings.TrimSpace(hex))
	if len(hex) == 4 && hex[0] == '#' {
		return "#" + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2) + strings.Repeat(hex[3:4], 2)
	}
	return hex
}
