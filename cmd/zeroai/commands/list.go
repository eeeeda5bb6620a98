package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agiangrant/zeroai-ui/tokens"
)

func newListCmd(opts *options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every token of the selected theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, _, err := opts.theme()
			if err != nil {
				return err
			}

			var rows [][]string
			for _, e := range theme.Entries() {
				if category != "" && e.Category != category && !strings.HasPrefix(e.Category, category+".") {
					continue
				}
				rows = append(rows, []string{e.Path, e.Value})
			}
			if len(rows) == 0 {
				return fmt.Errorf("%w: no tokens in category %q", tokens.ErrUnknownToken, category)
			}
			return writeTable(cmd.OutOrStdout(), nil, rows)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list tokens in this category (e.g. colors or colors.ai)")
	return cmd
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "get <token-path>",
		Short:   "Print the value of a single token",
		Example: "  zeroai get spacing.md\n  zeroai get colors.ai.primary --variant taobao",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, _, err := opts.theme()
			if err != nil {
				return err
			}
			e, ok := theme.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", tokens.ErrUnknownToken, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Value)
			return nil
		},
	}
}
