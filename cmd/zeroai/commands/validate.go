package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/zeroai-ui/internal/logging"
	"github.com/agiangrant/zeroai-ui/tokens"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that themes define every required token with valid CSS values",
		Long: `Validate checks the selected theme, or every built-in variant when none is
selected. A theme is selected by --variant, --theme or a theme file in the
project config. Built-in variants are also checked for schema parity: they
may only differ in optional tokens.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			log := logging.Component("validate")

			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if opts.selected(cfg) {
				theme, _, err := opts.theme()
				if err != nil {
					return err
				}
				if err := tokens.Validate(theme); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ %s\n", theme.Name)
				return nil
			}

			var (
				themes []tokens.Theme
				errs   []error
			)
			for _, name := range tokens.VariantNames() {
				theme, err := tokens.Variant(name)
				if err != nil {
					return err
				}
				if err := tokens.Validate(theme); err != nil {
					log.Error().Str("theme", name).Err(err).Msg("invalid theme")
					errs = append(errs, fmt.Errorf("%s: %w", name, err))
					continue
				}
				fmt.Fprintf(out, "✓ %s\n", name)
				themes = append(themes, theme)
			}

			for i := 1; i < len(themes); i++ {
				if err := tokens.CheckParity(themes[0], themes[i]); err != nil {
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(out, "✓ parity %s/%s\n", themes[0].Name, themes[i].Name)
			}
			return errors.Join(errs...)
		},
	}
}
