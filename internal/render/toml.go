package render

import (
	"io"

	"github.com/agiangrant/zeroai-ui/tokens"
)

type tomlRenderer struct{}

func (tomlRenderer) Name() string     { return "toml" }
func (tomlRenderer) Filename() string { return "theme.toml" }

// Render writes a self-contained theme file that tokens.LoadFile accepts.
func (tomlRenderer) Render(w io.Writer, in Input) error {
	return tokens.Encode(w, in.Theme)
}
