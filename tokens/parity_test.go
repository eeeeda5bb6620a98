package tokens

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuiltinParity(t *testing.T) {
	p := Diff(Default(), Taobao())

	wantOnlyDefault := []string{
		"backgroundImage.ai-gradient",
		"backgroundImage.ai-gradient-dark",
		"backgroundImage.ai-gradient-light",
		"backgroundImage.collaboration-gradient",
		"colors.ai.glow",
		"colors.ai.glow-strong",
	}
	if diff := cmp.Diff(wantOnlyDefault, p.OnlyA); diff != "" {
		t.Errorf("OnlyA mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"colors.ai.surface"}, p.OnlyB); diff != "" {
		t.Errorf("OnlyB mismatch (-want +got):\n%s", diff)
	}

	require.Empty(t, p.Unexpected())
	require.NoError(t, CheckParity(Default(), Taobao()))
}

func TestParityDetectsRemovedRequiredToken(t *testing.T) {
	broken := Taobao()
	broken.Colors.Semantic.Info = ""

	p := Diff(Default(), broken)
	require.Equal(t, []string{"colors.semantic.info"}, p.Unexpected())
	require.ErrorIs(t, CheckParity(Default(), broken), ErrParity)
}

func TestParityOfIdenticalThemes(t *testing.T) {
	p := Diff(Default(), Default())
	require.True(t, p.Empty())
}
