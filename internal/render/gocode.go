package render

import (
	"fmt"
	"go/format"
	"io"
	"strings"
	"unicode"
)

type goRenderer struct{}

func (goRenderer) Name() string     { return "go" }
func (goRenderer) Filename() string { return "tokens_gen.go" }

// Render writes Go source with one string constant per token and the
// utility rules as a map, for Go programs that emit HTML or CSS themselves.
func (goRenderer) Render(w io.Writer, in Input) error {
	pkg := in.GoPackage
	if pkg == "" {
		pkg = "tokens"
	}

	var b strings.Builder
	b.WriteString("// Code generated by zeroai. DO NOT EDIT.\n\n")
	b.WriteString(fmt.Sprintf("package %s\n\n", pkg))

	b.WriteString(fmt.Sprintf("// ThemeName is the variant these constants were generated from.\nconst ThemeName = %q\n\n", in.Theme.Name))

	b.WriteString("const (\n")
	category := ""
	for _, e := range in.Theme.Entries() {
		if e.Category != category {
			if category != "" {
				b.WriteString("\n")
			}
			category = e.Category
			b.WriteString(fmt.Sprintf("\t// %s\n", category))
		}
		b.WriteString(fmt.Sprintf("\t%s = %q\n", GoIdent(e.Path), e.Value))
	}
	b.WriteString(")\n\n")

	b.WriteString("// Utilities maps each utility selector to its CSS declarations.\n")
	b.WriteString("var Utilities = map[string]map[string]string{\n")
	for _, r := range in.Utilities() {
		b.WriteString(fmt.Sprintf("\t%q: {\n", r.Selector))
		for _, d := range r.Declarations {
			b.WriteString(fmt.Sprintf("\t\t%q: %q,\n", d.Property, d.Value))
		}
		b.WriteString("\t},\n")
	}
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// goInitialisms are path words written in upper case.
var goInitialisms = map[string]string{"ai": "AI"}

// GoIdent converts a token path to an exported Go identifier:
// colors.ai.primary-light becomes AIPrimaryLight and spacing.2xl becomes
// Spacing2xl.
func GoIdent(path string) string {
	path = strings.TrimPrefix(path, "colors.")
	words := strings.FieldsFunc(path, func(r rune) bool { return r == '.' || r == '-' })

	var b strings.Builder
	for _, w := range words {
		if up, ok := goInitialisms[w]; ok {
			b.WriteString(up)
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
