package tokens

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// requiredKeys lists every token name the schema requires, by category.
var requiredKeys = map[string][]string{
	"colors.human":             {"primary", "primary-light", "primary-dark", "surface", "surface-elevated", "surface-sunken", "border", "border-strong", "text-primary", "text-secondary", "text-tertiary"},
	"colors.ai":                {"primary", "primary-light", "primary-dark"},
	"colors.semantic":          {"success", "warning", "error", "info"},
	"spacing":                  {"xs", "sm", "md", "lg", "xl", "2xl", "3xl", "touch-min", "touch-comfortable", "touch-spacious"},
	"fontFamily":               {"base", "ai", "mono"},
	"fontSize":                 {"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"},
	"fontWeight":               {"normal", "medium", "semibold", "bold"},
	"lineHeight":               {"tight", "normal", "relaxed"},
	"borderRadius":             {"none", "sm", "md", "lg", "xl", "2xl", "full"},
	"boxShadow":                {"xs", "sm", "md", "lg", "xl", "2xl", "ai", "ai-strong"},
	"screens":                  {"xs", "sm", "md", "lg", "xl", "2xl"},
	"transitionDuration":       {"fast", "base", "slow"},
	"transitionTimingFunction": {"standard", "enter", "exit"},
}

func TestRequiredTokensResolve(t *testing.T) {
	for _, name := range VariantNames() {
		theme, err := Variant(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			for category, names := range requiredKeys {
				for _, token := range names {
					path := category + "." + token
					e, ok := theme.Lookup(path)
					if !ok {
						t.Errorf("%s: missing", path)
						continue
					}
					if err := CheckValue(e.Kind, e.Value); err != nil {
						t.Errorf("%s: %v", path, err)
					}
				}
			}
		})
	}
}

func TestLookupExamples(t *testing.T) {
	tests := []struct {
		variant string
		path    string
		want    string
	}{
		{"default", "spacing.md", "16px"},
		{"taobao", "spacing.md", "16px"},
		{"default", "colors.ai.primary", "#8B5CF6"},
		{"taobao", "colors.ai.primary", "#FF6600"},
		{"default", "transitionTimingFunction.standard", "cubic-bezier(0.4, 0, 0.2, 1)"},
		{"default", "fontFamily.mono", `"SF Mono", Monaco, Inconsolata, "Fira Code", monospace`},
	}

	for _, tt := range tests {
		t.Run(tt.variant+"/"+tt.path, func(t *testing.T) {
			theme, err := Variant(tt.variant)
			require.NoError(t, err)
			e, ok := theme.Lookup(tt.path)
			require.True(t, ok)
			require.Equal(t, tt.want, e.Value)
		})
	}
}

func TestLookupOmitsEmptyOptional(t *testing.T) {
	_, ok := Taobao().Lookup("colors.ai.glow")
	require.False(t, ok)

	e, ok := Default().Lookup("colors.ai.glow")
	require.True(t, ok)
	require.True(t, e.Optional)
	require.Equal(t, KindColor, e.Kind)
}

func TestEntriesDeclarationOrder(t *testing.T) {
	entries := Default().Entries()
	require.NotEmpty(t, entries)
	require.Equal(t, "colors.human.primary", entries[0].Path)
	require.Equal(t, "backgroundImage.collaboration-gradient", entries[len(entries)-1].Path)

	want := []string{
		"colors.human", "colors.ai", "colors.semantic", "spacing", "fontFamily",
		"fontSize", "fontWeight", "lineHeight", "borderRadius", "boxShadow",
		"screens", "transitionDuration", "transitionTimingFunction", "backgroundImage",
	}
	if diff := cmp.Diff(want, Default().Categories()); diff != "" {
		t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryListIsCopied(t *testing.T) {
	theme := Default()
	e, ok := theme.Lookup("fontFamily.base")
	require.True(t, ok)
	e.List[0] = "Comic Sans MS"
	require.Equal(t, "-apple-system", theme.FontFamily.Base[0])
}

func TestVariantReturnsFreshCopy(t *testing.T) {
	a, err := Variant("default")
	require.NoError(t, err)
	a.Colors.AI.Primary = "#000000"
	a.FontFamily.Base[0] = "Papyrus"

	b, err := Variant("default")
	require.NoError(t, err)
	require.Equal(t, "#8B5CF6", b.Colors.AI.Primary)
	require.Equal(t, "-apple-system", b.FontFamily.Base[0])
}

func TestUnknownVariant(t *testing.T) {
	_, err := Variant("neon")
	require.ErrorIs(t, err, ErrUnknownVariant)
}

func TestOptionalKeys(t *testing.T) {
	want := []string{
		"colors.ai.glow",
		"colors.ai.glow-strong",
		"colors.ai.surface",
		"backgroundImage.ai-gradient",
		"backgroundImage.ai-gradient-light",
		"backgroundImage.ai-gradient-dark",
		"backgroundImage.collaboration-gradient",
	}
	if diff := cmp.Diff(want, OptionalKeys()); diff != "" {
		t.Errorf("OptionalKeys() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatFontList(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"Nunito", "sans-serif"}, "Nunito, sans-serif"},
		{[]string{"Segoe UI", "Roboto"}, `"Segoe UI", Roboto`},
		{[]string{`Font "X"`, "sans-serif"}, `"Font \"X\"", sans-serif`},
		{[]string{"Acme, Inc", "serif"}, `"Acme, Inc", serif`},
		{[]string{`C:\Fonts`}, `"C:\\Fonts"`},
		{[]string{"3270"}, `"3270"`},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := FormatFontList(tt.in); got != tt.want {
			t.Errorf("FormatFontList(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFontListValidates(t *testing.T) {
	lists := [][]string{
		{`Font "X"`, "sans-serif"},
		{"Acme, Inc", "Roboto Slab", "serif"},
		{`Back\slash`, "monospace"},
	}
	for _, list := range lists {
		require.NoError(t, CheckValue(KindFontList, FormatFontList(list)), "%q", list)
	}

	theme := Default()
	theme.FontFamily.Base = []string{"", "sans-serif"}
	require.ErrorIs(t, Validate(theme), ErrInvalidValue)
}
