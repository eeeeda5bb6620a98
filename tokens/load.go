package tokens

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ExtendsNone makes a theme file self-contained: it starts from an empty
// table instead of a built-in variant.
const ExtendsNone = "none"

// themeFile is the on-disk shape of a theme.toml file. Token tables sit at
// the top level next to the header keys.
type themeFile struct {
	Name    string `toml:"name"`
	Extends string `toml:"extends,omitempty"`
	Theme
}

type themeHeader struct {
	Name    string `toml:"name"`
	Extends string `toml:"extends"`
}

// LoadFile reads a theme file. See Load.
func LoadFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to open theme %s: %w", path, err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Load reads a TOML theme. The file names a built-in variant to extend
// (default "default") and overrides any of its tokens. Unknown keys are
// rejected and the merged theme must pass Validate.
func Load(r io.Reader) (Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme: %w", err)
	}

	var hdr themeHeader
	if err := toml.Unmarshal(data, &hdr); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme: %w", err)
	}

	var base Theme
	switch hdr.Extends {
	case ExtendsNone:
	case "":
		base = Default()
	default:
		if base, err = Variant(hdr.Extends); err != nil {
			return Theme{}, err
		}
	}

	file := themeFile{Theme: base}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, len(strict.Errors))
			for i, e := range strict.Errors {
				keys[i] = strings.Join(e.Key(), ".")
			}
			return Theme{}, fmt.Errorf("%w: %s", ErrUnknownToken, strings.Join(keys, ", "))
		}
		return Theme{}, fmt.Errorf("failed to parse theme: %w", err)
	}

	t := file.Theme
	t.Name = hdr.Name
	if t.Name == "" {
		t.Name = base.Name
	}
	if err := Validate(t); err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", t.Name, err)
	}
	return t, nil
}

// Encode writes t as a self-contained theme file that Load reads back to
// an equal Theme.
func Encode(w io.Writer, t Theme) error {
	file := themeFile{Name: t.Name, Extends: ExtendsNone, Theme: t}
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("failed to encode theme %q: %w", t.Name, err)
	}
	return nil
}
