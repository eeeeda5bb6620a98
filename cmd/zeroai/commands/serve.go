package commands

import (
	"github.com/spf13/cobra"

	"github.com/agiangrant/zeroai-ui/internal/logging"
	"github.com/agiangrant/zeroai-ui/internal/server"
	"github.com/agiangrant/zeroai-ui/tokens"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve theme.css, tokens.json and tailwind.config.js over HTTP",
		Long: `Serve renders theme assets on every request, selecting the theme with the
?variant= query parameter. Every built-in variant is available, plus the
configured theme file if any.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selected, cfg, err := opts.theme()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			themes := []tokens.Theme{selected}
			for _, name := range tokens.VariantNames() {
				if name == selected.Name {
					continue
				}
				t, err := tokens.Variant(name)
				if err != nil {
					return err
				}
				themes = append(themes, t)
			}

			log := logging.Component("server")
			handler := server.NewHandler(themes, selected.Name, log)
			return server.Serve(cmd.Context(), addr, handler, log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
