package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/zeroai-ui/internal/logging"
	"github.com/agiangrant/zeroai-ui/internal/render"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		formats   []string
		outDir    string
		goPackage string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the Tailwind config, CSS and other outputs for a theme",
		Example: `  zeroai generate
  zeroai generate --variant taobao --format css --format tailwind --out web/styles
  zeroai generate --theme brand.toml --format go --go-package theme`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, cfg, err := opts.theme()
			if err != nil {
				return err
			}
			if len(formats) == 0 {
				formats = cfg.Output.Formats
			}
			if outDir == "" {
				outDir = cfg.Output.Dir
			}
			if goPackage == "" {
				goPackage = cfg.Output.GoPackage
			}

			in := render.NewInput(theme)
			in.GoPackage = goPackage

			log := logging.Component("generate")
			log.Debug().Str("theme", theme.Name).Strs("formats", formats).Str("dir", outDir).Msg("generating")

			paths, err := render.WriteAll(cmd.Context(), log, outDir, formats, in)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, fmt.Sprintf("output formats %v (default from config)", render.Formats()))
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().StringVar(&goPackage, "go-package", "", "package name for Go output (default from config)")
	return cmd
}
