package tokens

import (
	"reflect"
	"regexp"
	"strings"
)

// Kind names the value grammar a token must follow.
type Kind int

const (
	KindColor Kind = iota
	KindLength
	KindFontList
	KindFontWeight
	KindLineHeight
	KindShadow
	KindDuration
	KindEasing
	KindImage
)

var kindNames = [...]string{
	KindColor:      "color",
	KindLength:     "length",
	KindFontList:   "font-list",
	KindFontWeight: "font-weight",
	KindLineHeight: "line-height",
	KindShadow:     "shadow",
	KindDuration:   "duration",
	KindEasing:     "easing",
	KindImage:      "image",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// categoryKinds maps each top-level category to the grammar of its values.
var categoryKinds = map[string]Kind{
	"colors":                   KindColor,
	"spacing":                  KindLength,
	"fontFamily":               KindFontList,
	"fontSize":                 KindLength,
	"fontWeight":               KindFontWeight,
	"lineHeight":               KindLineHeight,
	"borderRadius":             KindLength,
	"boxShadow":                KindShadow,
	"screens":                  KindLength,
	"transitionDuration":       KindDuration,
	"transitionTimingFunction": KindEasing,
	"backgroundImage":          KindImage,
}

// Entry is the flattened view of a single token.
type Entry struct {
	Category string // dotted category path, e.g. "colors.ai"
	Name     string // token name within the category, e.g. "primary-light"
	Path     string // Category + "." + Name
	Value    string // CSS value; font lists are joined as a font-family value
	List     []string
	Kind     Kind
	Optional bool
}

// Entries returns every token that has a value, in declaration order.
func (t Theme) Entries() []Entry {
	var out []Entry
	walkTheme(t, func(e Entry) {
		if e.Value == "" {
			return
		}
		out = append(out, e)
	})
	return out
}

// Keys returns the dotted paths of Entries.
func (t Theme) Keys() []string {
	entries := t.Entries()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Path
	}
	return keys
}

// Lookup resolves a dotted token path such as "spacing.md".
func (t Theme) Lookup(path string) (Entry, bool) {
	for _, e := range t.Entries() {
		if e.Path == path {
			return e, true
		}
	}
	return Entry{}, false
}

// Categories returns the category paths that hold at least one token, in
// declaration order.
func (t Theme) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range t.Entries() {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// Schema returns every token the Theme type declares, values empty.
func Schema() []Entry {
	var out []Entry
	walkTheme(Theme{}, func(e Entry) {
		out = append(out, e)
	})
	return out
}

// OptionalKeys returns the paths of tokens a variant may leave out.
func OptionalKeys() []string {
	var keys []string
	for _, e := range Schema() {
		if e.Optional {
			keys = append(keys, e.Path)
		}
	}
	return keys
}

// walkTheme visits every declared token of t, including empty ones.
func walkTheme(t Theme, fn func(Entry)) {
	walk(reflect.ValueOf(t), "", 0, false, fn)
}

// walk visits every token field of v, including empty ones.
func walk(v reflect.Value, category string, kind Kind, optional bool, fn func(Entry)) {
	rt := v.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name, opts, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		opt := optional || opts == "omitempty"
		fv := v.Field(i)

		path := name
		if category != "" {
			path = category + "." + name
		}

		switch field.Type.Kind() {
		case reflect.Struct:
			k := kind
			if category == "" {
				k = categoryKinds[name]
			}
			walk(fv, path, k, opt, fn)
		case reflect.String:
			fn(Entry{Category: category, Name: name, Path: path, Value: fv.String(), Kind: kind, Optional: opt})
		case reflect.Slice:
			list, _ := fv.Interface().([]string)
			fn(Entry{
				Category: category,
				Name:     name,
				Path:     path,
				Value:    FormatFontList(list),
				List:     append([]string(nil), list...),
				Kind:     kind,
				Optional: opt,
			})
		}
	}
}

// genericFamilies are CSS keywords that must not be quoted.
var genericFamilies = map[string]bool{
	"serif":         true,
	"sans-serif":    true,
	"monospace":     true,
	"cursive":       true,
	"fantasy":       true,
	"system-ui":     true,
	"ui-sans-serif": true,
	"ui-serif":      true,
	"ui-monospace":  true,
}

// bareFontRe matches family names CSS accepts without quotes.
var bareFontRe = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// FormatFontList joins a fallback list into a CSS font-family value.
// Generic families and plain identifiers stay bare; every other name is
// quoted with embedded quotes and backslashes escaped.
func FormatFontList(list []string) string {
	parts := make([]string, len(list))
	for i, name := range list {
		if genericFamilies[name] || bareFontRe.MatchString(name) {
			parts[i] = name
			continue
		}
		name = strings.ReplaceAll(name, `\`, `\\`)
		name = strings.ReplaceAll(name, `"`, `\"`)
		parts[i] = `"` + name + `"`
	}
	return strings.Join(parts, ", ")
}
