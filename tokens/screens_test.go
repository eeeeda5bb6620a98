package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScreensConfig(t *testing.T) {
	cfg, err := Default().Screens.Config()
	require.NoError(t, err)
	require.Equal(t, BreakpointConfig{XS: 0, SM: 640, MD: 768, LG: 1024, XL: 1280, XXL: 1536}, cfg)
	require.Equal(t, 1024.0, cfg.Width(BreakpointLG))
}

func TestActiveBreakpoint(t *testing.T) {
	cfg, err := Default().Screens.Config()
	require.NoError(t, err)

	tests := []struct {
		width float64
		want  Breakpoint
	}{
		{0, BreakpointXS},
		{375, BreakpointXS},
		{640, BreakpointSM},
		{767, BreakpointSM},
		{768, BreakpointMD},
		{1024, BreakpointLG},
		{1280, BreakpointXL},
		{1920, Breakpoint2XL},
	}
	for _, tt := range tests {
		if got := cfg.Active(tt.width); got != tt.want {
			t.Errorf("Active(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestParseBreakpoint(t *testing.T) {
	for i, name := range []string{"xs", "sm", "md", "lg", "xl", "2xl"} {
		b, err := ParseBreakpoint(name)
		require.NoError(t, err)
		require.Equal(t, Breakpoint(i), b)
		require.Equal(t, name, b.String())
	}

	_, err := ParseBreakpoint("3xl")
	require.ErrorIs(t, err, ErrUnknownToken)
}

func TestScreensConfigRejectsRem(t *testing.T) {
	s := Default().Screens
	s.MD = "48rem"
	_, err := s.Config()
	require.ErrorIs(t, err, ErrInvalidValue)

	var te *TokenError
	require.ErrorAs(t, err, &te)
	require.Equal(t, "screens.md", te.Path)
}
