package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/zeroai-ui/tokens"
)

// Swatches writes one line per color token: a block filled with the
// color, the token path, and its value. Colors the terminal cannot show
// (rgba) get an empty block.
func Swatches(w io.Writer, t tokens.Theme) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true)
	path := r.NewStyle().Width(34)
	muted := r.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(title.Render(fmt.Sprintf("%s theme", t.Name)))
	b.WriteString("\n")

	category := ""
	for _, e := range t.Entries() {
		if e.Kind != tokens.KindColor {
			continue
		}
		if e.Category != category {
			category = e.Category
			b.WriteString("\n")
			b.WriteString(muted.Render(category))
			b.WriteString("\n")
		}

		block := "      "
		if strings.HasPrefix(e.Value, "#") {
			block = r.NewStyle().Background(lipgloss.Color(expandHex(e.Value))).Render(block)
		}
		b.WriteString(fmt.Sprintf("  %s  %s%s\n", block, path.Render(e.Name), e.Value))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ContrastTable writes the contrast pairs with their WCAG level.
func ContrastTable(w io.Writer, pairs []Pair) error {
	r := lipgloss.NewRenderer(w)
	fail := r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	pass := r.NewStyle().Foreground(lipgloss.Color("#10B981"))
	col := r.NewStyle().Width(32)

	var b strings.Builder
	for _, p := range pairs {
		level := pass.Render(p.Level())
		if !p.Passes() {
			level = fail.Render(p.Level())
		}
		b.WriteString(fmt.Sprintf("%s%s%6.2f  %s\n", col.Render(p.Foreground), col.Render(p.Background), p.Ratio, level))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
