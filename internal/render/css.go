package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/agiangrant/zeroai-ui/plugin"
	"github.com/agiangrant/zeroai-ui/tokens"
)

type cssRenderer struct{}

func (cssRenderer) Name() string     { return "css" }
func (cssRenderer) Filename() string { return "tokens.css" }

// Render writes the tokens as custom properties on :root followed by the
// utility classes.
func (cssRenderer) Render(w io.Writer, in Input) error {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("/* ZeroAI-UI design tokens (%s theme). Code generated by zeroai. DO NOT EDIT. */\n\n", in.Theme.Name))
	b.WriteString(":root {\n")
	for _, e := range in.Theme.Entries() {
		b.WriteString(fmt.Sprintf("  %s: %s;\n", CSSVar(e), e.Value))
	}
	b.WriteString("}\n\n")
	b.WriteString(in.Utilities().CSS())

	_, err := io.WriteString(w, b.String())
	return err
}

// CSSVar returns the custom property name of a token. Color tokens drop
// the "colors" prefix: colors.ai.primary becomes --ai-primary.
func CSSVar(e tokens.Entry) string {
	path := strings.TrimPrefix(e.Path, "colors.")
	return "--" + strings.ReplaceAll(plugin.KebabCase(path), ".", "-")
}
