package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/zeroai-ui/internal/preview"
)

func newPreviewCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show the theme's colors as terminal swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, _, err := opts.theme()
			if err != nil {
				return err
			}
			return preview.Swatches(cmd.OutOrStdout(), theme)
		},
	}
}

func newContrastCmd(opts *options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "contrast",
		Short: "Report WCAG contrast ratios of text colors on surfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, _, err := opts.theme()
			if err != nil {
				return err
			}
			pairs, err := preview.Contrast(theme)
			if err != nil {
				return err
			}
			if err := preview.ContrastTable(cmd.OutOrStdout(), pairs); err != nil {
				return err
			}

			var failing int
			for _, p := range pairs {
				if !p.Passes() {
					failing++
				}
			}
			if strict && failing > 0 {
				return fmt.Errorf("%d of %d pairs below %.1f:1", failing, len(pairs), preview.MinContrastAA)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any pair is below WCAG AA")
	return cmd
}
