// Package commands implements the zeroai command line.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agiangrant/zeroai-ui/internal/config"
	"github.com/agiangrant/zeroai-ui/internal/logging"
	"github.com/agiangrant/zeroai-ui/tokens"
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	variant    string
	themeFile  string
	logLevel   string
}

// NewRootCmd builds the zeroai command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "zeroai",
		Short:         "ZeroAI-UI design tokens for Tailwind CSS",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return logging.Init(opts.logLevel, cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to the project config file (default: nearest "+config.DefaultFile+" above the working directory)")
	flags.StringVar(&opts.variant, "variant", "", "built-in theme variant ("+fmt.Sprint(tokens.VariantNames())+")")
	flags.StringVar(&opts.themeFile, "theme", "", "theme file extending a built-in variant")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCmd(opts),
		newValidateCmd(opts),
		newDiffCmd(),
		newListCmd(opts),
		newGetCmd(opts),
		newPreviewCmd(opts),
		newContrastCmd(opts),
		newServeCmd(opts),
		newInitCmd(opts),
		newVersionCmd(version),
	)
	return root
}

// configFile returns the --config path, or the config file at the project
// root found by walking up from the working directory.
func (o *options) configFile() string {
	if o.configPath != "" {
		return o.configPath
	}
	root, err := config.FindProjectRoot()
	if err != nil {
		return config.DefaultFile
	}
	return filepath.Join(root, config.DefaultFile)
}

// load reads the project config and applies the persistent flags on top.
func (o *options) load() (config.ProjectConfig, error) {
	cfg, err := config.Load(o.configFile())
	if err != nil {
		return cfg, err
	}
	if o.variant != "" {
		cfg.Theme.Variant = o.variant
		// An explicit variant wins over a configured theme file.
		cfg.Theme.File = ""
	}
	if o.themeFile != "" {
		cfg.Theme.File = o.themeFile
	}
	return cfg, nil
}

// theme resolves the theme selected by config and flags.
func (o *options) theme() (tokens.Theme, config.ProjectConfig, error) {
	cfg, err := o.load()
	if err != nil {
		return tokens.Theme{}, cfg, err
	}
	if cfg.Theme.File != "" {
		t, err := tokens.LoadFile(cfg.Theme.File)
		return t, cfg, err
	}
	name := cfg.Theme.Variant
	if name == "" {
		name = tokens.DefaultVariant
	}
	t, err := tokens.Variant(name)
	return t, cfg, err
}

// selected reports whether a single theme was picked, either by flag or
// by a theme file in the project config.
func (o *options) selected(cfg config.ProjectConfig) bool {
	return o.variant != "" || cfg.Theme.File != ""
}
