package tokens

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexColorRe   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	lengthRe     = regexp.MustCompile(`^(?:0|(?:\d+|\d*\.\d+)(?:px|rem|em|%|vh|vw))$`)
	offsetRe     = regexp.MustCompile(`^-?(?:0|(?:\d+|\d*\.\d+)(?:px|rem|em))$`)
	durationRe   = regexp.MustCompile(`^(?:\d+|\d*\.\d+)(?:ms|s)$`)
	unitlessRe   = regexp.MustCompile(`^(?:\d+|\d*\.\d+)$`)
	colorArgRe   = regexp.MustCompile(`^-?(?:\d+|\d*\.\d+)(?:%|deg)?$`)
	cssFuncRe    = regexp.MustCompile(`^([a-z][a-z-]*)\((.*)\)$`)
	pxValueRe    = regexp.MustCompile(`^(\d+|\d*\.\d+)px$`)
	quotedFontRe = regexp.MustCompile(`^(?:"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*')$`)
	bareFontsRe  = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*(?:\s+-?[A-Za-z_][A-Za-z0-9_-]*)*$`)
	easingNames  = map[string]bool{
		"linear":      true,
		"ease":        true,
		"ease-in":     true,
		"ease-out":    true,
		"ease-in-out": true,
	}
)

// CheckValue reports whether value is well-formed CSS for the given kind.
// The returned error wraps ErrInvalidValue.
func CheckValue(kind Kind, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: empty %s", ErrInvalidValue, kind)
	}

	var err error
	switch kind {
	case KindColor:
		err = checkColor(value)
	case KindLength:
		if !lengthRe.MatchString(value) {
			err = errors.New("expected 0 or a non-negative length")
		}
	case KindFontList:
		err = checkFontList(value)
	case KindFontWeight:
		n, convErr := strconv.Atoi(value)
		if convErr != nil || n < 100 || n > 900 || n%100 != 0 {
			err = errors.New("expected a multiple of 100 between 100 and 900")
		}
	case KindLineHeight:
		if !unitlessRe.MatchString(value) && !lengthRe.MatchString(value) {
			err = errors.New("expected a unitless number or a length")
		}
	case KindShadow:
		err = checkShadow(value)
	case KindDuration:
		if !durationRe.MatchString(value) {
			err = errors.New("expected a duration in ms or s")
		}
	case KindEasing:
		err = checkEasing(value)
	case KindImage:
		err = checkImage(value)
	default:
		err = fmt.Errorf("unknown kind %d", kind)
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidValue, kind, err)
	}
	return nil
}

// ParsePixels returns the numeric part of a px length. "0" is accepted.
func ParsePixels(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "0" {
		return 0, nil
	}
	m := pxValueRe.FindStringSubmatch(value)
	if m == nil {
		return 0, fmt.Errorf("%w: %q is not a px length", ErrInvalidValue, value)
	}
	return strconv.ParseFloat(m[1], 64)
}

func checkColor(v string) error {
	if hexColorRe.MatchString(v) || v == "transparent" || v == "currentColor" {
		return nil
	}
	name, args, ok := splitFunc(v)
	if !ok {
		return errors.New("expected a hex color or a color function")
	}
	switch name {
	case "rgb", "rgba", "hsl", "hsla":
	default:
		return fmt.Errorf("unsupported color function %s()", name)
	}
	parts := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("%s() takes 3 or 4 components, got %d", name, len(parts))
	}
	for _, p := range parts {
		if !colorArgRe.MatchString(p) {
			return fmt.Errorf("bad %s() component %q", name, p)
		}
	}
	return nil
}

func checkFontList(v string) error {
	var (
		names   []string
		start   int
		quote   rune
		escaped bool
	)
	for i, r := range v {
		switch {
		case escaped:
			escaped = false
		case quote != 0 && r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == ',':
			names = append(names, v[start:i])
			start = i + 1
		}
	}
	if quote != 0 {
		return errors.New("font list has an unterminated quote")
	}
	names = append(names, v[start:])

	for _, name := range names {
		name = strings.TrimSpace(name)
		switch {
		case name == "" || name == `""` || name == "''":
			return errors.New("font list contains an empty name")
		case name[0] == '"' || name[0] == '\'':
			if !quotedFontRe.MatchString(name) {
				return fmt.Errorf("malformed quoted font name %s", name)
			}
		case !bareFontsRe.MatchString(name):
			return fmt.Errorf("font name %q must be quoted", name)
		}
	}
	return nil
}

func checkShadow(v string) error {
	for _, layer := range splitTopLevel(v, func(r rune) bool { return r == ',' }) {
		var lengths, colors int
		for _, part := range splitTopLevel(layer, func(r rune) bool { return r == ' ' || r == '\t' }) {
			switch {
			case part == "inset":
			case offsetRe.MatchString(part):
				lengths++
			case checkColor(part) == nil:
				colors++
			default:
				return fmt.Errorf("unexpected shadow component %q", part)
			}
		}
		if lengths < 2 || lengths > 4 {
			return fmt.Errorf("shadow layer %q needs 2 to 4 lengths", strings.TrimSpace(layer))
		}
		if colors > 1 {
			return fmt.Errorf("shadow layer %q has more than one color", strings.TrimSpace(layer))
		}
	}
	return nil
}

func checkEasing(v string) error {
	if easingNames[v] {
		return nil
	}
	name, args, ok := splitFunc(v)
	if !ok || name != "cubic-bezier" {
		return errors.New("expected an easing keyword or cubic-bezier()")
	}
	parts := strings.Split(args, ",")
	if len(parts) != 4 {
		return fmt.Errorf("cubic-bezier() takes 4 numbers, got %d", len(parts))
	}
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("cubic-bezier() argument %q is not a number", strings.TrimSpace(p))
		}
		if i%2 == 0 && (n < 0 || n > 1) {
			return fmt.Errorf("cubic-bezier() x value %v outside [0, 1]", n)
		}
	}
	return nil
}

func checkImage(v string) error {
	name, args, ok := splitFunc(v)
	if !ok {
		return errors.New("expected a gradient or url()")
	}
	switch name {
	case "linear-gradient", "radial-gradient", "conic-gradient", "url":
	default:
		return fmt.Errorf("unsupported image function %s()", name)
	}
	if strings.TrimSpace(args) == "" {
		return fmt.Errorf("%s() has no arguments", name)
	}
	return nil
}

// splitFunc splits "name(args)" and checks that the parentheses balance.
func splitFunc(v string) (name, args string, ok bool) {
	m := cssFuncRe.FindStringSubmatch(v)
	if m == nil || !balanced(m[2]) {
		return "", "", false
	}
	return m[1], m[2], true
}

func balanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// splitTopLevel splits s at separator runes that are outside parentheses,
// dropping empty fields.
func splitTopLevel(s string, sep func(rune) bool) []string {
	var (
		out   []string
		depth int
		start int
	)
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case depth == 0 && sep(r):
			if f := strings.TrimSpace(s[start:i]); f != "" {
				out = append(out, f)
			}
			start = i + len(string(r))
		}
	}
	if f := strings.TrimSpace(s[start:]); f != "" {
		out = append(out, f)
	}
	return out
}
