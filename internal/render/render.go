// Package render writes the token table and utility rules in the formats
// their consumers load.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/zeroai-ui/plugin"
	"github.com/agiangrant/zeroai-ui/tokens"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Input is everything a renderer needs.
type Input struct {
	Theme   tokens.Theme
	Plugins []plugin.Plugin

	// GoPackage names the package of generated Go source.
	GoPackage string
}

// NewInput builds an Input with the built-in plugins.
func NewInput(theme tokens.Theme) Input {
	return Input{Theme: theme, Plugins: plugin.Plugins(), GoPackage: "tokens"}
}

// Utilities runs every plugin and returns their rules.
func (in Input) Utilities() plugin.Utilities {
	return plugin.Collect(in.Plugins...)
}

// Renderer writes one output format.
type Renderer interface {
	// Name is the format name used on the command line.
	Name() string
	// Filename is the default output file name.
	Filename() string
	Render(w io.Writer, in Input) error
}

var renderers = map[string]Renderer{
	"tailwind": tailwindRenderer{},
	"css":      cssRenderer{},
	"json":     jsonRenderer{},
	"toml":     tomlRenderer{},
	"go":       goRenderer{},
}

// Lookup returns the renderer for a format name.
func Lookup(format string) (Renderer, error) {
	r, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownFormat, format, Formats())
	}
	return r, nil
}

// Formats lists the supported format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteAll renders each format into dir concurrently and returns the paths
// written, in the order of formats. Files are replaced atomically.
func WriteAll(ctx context.Context, log zerolog.Logger, dir string, formats []string, in Input) ([]string, error) {
	selected := make([]Renderer, len(formats))
	for i, f := range formats {
		r, err := Lookup(f)
		if err != nil {
			return nil, err
		}
		selected[i] = r
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	paths := make([]string, len(selected))
	g, ctx := errgroup.WithContext(ctx)
	for i, r := range selected {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, r.Filename())
			if err := writeFile(path, r, in); err != nil {
				return err
			}
			paths[i] = path
			log.Debug().Str("format", r.Name()).Str("path", path).Msg("wrote file")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeFile(path string, r Renderer, in Input) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := r.Render(tmp, in); err != nil {
		tmp.Close()
		return fmt.Errorf("render %s: %w", r.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
