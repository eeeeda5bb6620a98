package render

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/agiangrant/zeroai-ui/plugin"
)

var jsIdentRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

type tailwindRenderer struct{}

func (tailwindRenderer) Name() string     { return "tailwind" }
func (tailwindRenderer) Filename() string { return "tailwind.config.js" }

// Render writes a CommonJS Tailwind config with the tokens under
// theme.extend and one plugin function per utility generator.
func (tailwindRenderer) Render(w io.Writer, in Input) error {
	var b strings.Builder

	b.WriteString("/**\n")
	b.WriteString(fmt.Sprintf(" * ZeroAI-UI Tailwind CSS configuration (%s theme)\n", in.Theme.Name))
	b.WriteString(" * Code generated by zeroai. DO NOT EDIT.\n")
	b.WriteString(" */\n\n")
	b.WriteString("module.exports = {\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	for _, c := range tokenTree(in.Theme).children {
		writeJSNode(&b, c, 3)
	}
	b.WriteString("    },\n")
	b.WriteString("  },\n\n")

	b.WriteString("  plugins: [\n")
	for _, p := range in.Plugins {
		var rules []string
		p.Generate(func(u plugin.Utilities) {
			for _, r := range u {
				var rb strings.Builder
				rb.WriteString(fmt.Sprintf("        %s: {\n", jsKey(r.Selector)))
				for _, d := range r.Declarations {
					rb.WriteString(fmt.Sprintf("          %s: %s,\n", jsKey(d.Property), jsString(d.Value)))
				}
				rb.WriteString("        },\n")
				rules = append(rules, rb.String())
			}
		})
		b.WriteString(fmt.Sprintf("    // %s utilities\n", p.Name))
		b.WriteString("    function ({ addUtilities }) {\n")
		b.WriteString("      addUtilities({\n")
		for _, r := range rules {
			b.WriteString(r)
		}
		b.WriteString("      });\n")
		b.WriteString("    },\n")
	}
	b.WriteString("  ],\n")
	b.WriteString("};\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSNode(b *strings.Builder, n *node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch {
	case len(n.children) > 0:
		b.WriteString(fmt.Sprintf("%s%s: {\n", indent, jsKey(n.key)))
		for _, c := range n.children {
			writeJSNode(b, c, depth+1)
		}
		b.WriteString(indent + "},\n")
	case n.list != nil:
		items := make([]string, len(n.list))
		for i, s := range n.list {
			items[i] = jsString(s)
		}
		b.WriteString(fmt.Sprintf("%s%s: [%s],\n", indent, jsKey(n.key), strings.Join(items, ", ")))
	default:
		b.WriteString(fmt.Sprintf("%s%s: %s,\n", indent, jsKey(n.key), jsString(n.value)))
	}
}

func jsKey(k string) string {
	if jsIdentRe.MatchString(k) {
		return k
	}
	return jsString(k)
}

func jsString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
