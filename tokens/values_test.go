package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckValue(t *testing.T) {
	tests := []struct {
		kind  Kind
		value string
		ok    bool
	}{
		{KindColor, "#8B5CF6", true},
		{KindColor, "#fff", true},
		{KindColor, "#11223344", true},
		{KindColor, "rgba(102, 126, 234, 0.5)", true},
		{KindColor, "rgb(0 0 0 / 50%)", true},
		{KindColor, "hsl(210, 40%, 50%)", true},
		{KindColor, "transparent", true},
		{KindColor, "#12345", false},
		{KindColor, "rgba(1, 2)", false},
		{KindColor, "rgba(1, 2, 3, 0.5", false},
		{KindColor, "purple", false},

		{KindLength, "0", true},
		{KindLength, "16px", true},
		{KindLength, "1.5rem", true},
		{KindLength, "9999px", true},
		{KindLength, "-4px", false},
		{KindLength, "16", false},
		{KindLength, "px", false},

		{KindFontWeight, "400", true},
		{KindFontWeight, "450", false},
		{KindFontWeight, "1000", false},
		{KindFontWeight, "bold", false},

		{KindLineHeight, "1.25", true},
		{KindLineHeight, "24px", true},
		{KindLineHeight, "tall", false},

		{KindDuration, "150ms", true},
		{KindDuration, "0.3s", true},
		{KindDuration, "150", false},

		{KindEasing, "cubic-bezier(0.4, 0, 0.2, 1)", true},
		{KindEasing, "ease-in-out", true},
		{KindEasing, "cubic-bezier(1.2, 0, 0.2, 1)", false},
		{KindEasing, "cubic-bezier(0.4, 0, 0.2)", false},
		{KindEasing, "bounce", false},

		{KindShadow, "0 1px 2px rgba(0, 0, 0, 0.05)", true},
		{KindShadow, "0 0 24px rgba(102, 126, 234, 0.8)", true},
		{KindShadow, "inset 0 -1px 0 #E5E7EB, 0 1px 2px rgba(0, 0, 0, 0.1)", true},
		{KindShadow, "0 rgba(0, 0, 0, 0.1)", false},
		{KindShadow, "0 1px 2px red", false},

		{KindImage, "linear-gradient(135deg, #667eea 0%, #764ba2 100%)", true},
		{KindImage, "linear-gradient()", false},
		{KindImage, "linear-gradient(135deg, #667eea 0%", false},

		{KindFontList, `"SF Mono", Monaco, monospace`, true},
		{KindFontList, "Nunito, , sans-serif", false},
		{KindFontList, `"Font \"X\"", 'Acme, Inc', serif`, true},
		{KindFontList, `"Font "X"", sans-serif`, false},
		{KindFontList, `"Segoe UI, sans-serif`, false},
		{KindFontList, `Segoe UI, sans-serif`, true},
		{KindFontList, `Font "X", sans-serif`, false},
		{KindFontList, `"", serif`, false},

		{KindColor, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.value, func(t *testing.T) {
			err := CheckValue(tt.kind, tt.value)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidValue)
			}
		})
	}
}

func TestParsePixels(t *testing.T) {
	v, err := ParsePixels("1024px")
	require.NoError(t, err)
	require.Equal(t, 1024.0, v)

	v, err = ParsePixels("0")
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = ParsePixels("64rem")
	require.ErrorIs(t, err, ErrInvalidValue)
}
