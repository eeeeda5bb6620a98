package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agiangrant/zeroai-ui/tokens"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <theme-a> <theme-b>",
		Short: "Compare the token keys of two themes",
		Long: `Diff lists the tokens defined by only one of two themes. Each argument is a
built-in variant name or a path to a .toml theme file. The command fails
when the themes differ in anything but optional tokens.`,
		Example: "  zeroai diff default taobao\n  zeroai diff default ./brand.toml",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveTheme(args[0])
			if err != nil {
				return err
			}
			b, err := resolveTheme(args[1])
			if err != nil {
				return err
			}

			p := tokens.Diff(a, b)
			out := cmd.OutOrStdout()
			if p.Empty() {
				fmt.Fprintf(out, "%s and %s define the same tokens\n", a.Name, b.Name)
				return nil
			}

			optional := make(map[string]bool)
			for _, k := range tokens.OptionalKeys() {
				optional[k] = true
			}
			var rows [][]string
			for _, k := range p.OnlyA {
				rows = append(rows, []string{"- " + k, "only in " + a.Name, optionalLabel(optional[k])})
			}
			for _, k := range p.OnlyB {
				rows = append(rows, []string{"+ " + k, "only in " + b.Name, optionalLabel(optional[k])})
			}
			if err := writeTable(out, nil, rows); err != nil {
				return err
			}

			return tokens.CheckParity(a, b)
		},
	}
}

func optionalLabel(optional bool) string {
	if optional {
		return "optional"
	}
	return "REQUIRED"
}

// resolveTheme accepts a built-in variant name or a theme file path.
func resolveTheme(arg string) (tokens.Theme, error) {
	if strings.HasSuffix(arg, ".toml") {
		return tokens.LoadFile(arg)
	}
	return tokens.Variant(arg)
}
