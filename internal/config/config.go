// Package config loads the zeroai.toml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the project configuration file name.
const DefaultFile = "zeroai.toml"

// ProjectConfig represents the zeroai.toml configuration file
type ProjectConfig struct {
	Theme  ThemeConfig  `toml:"theme"`
	Output OutputConfig `toml:"output"`
	Server ServerConfig `toml:"server"`
}

type ThemeConfig struct {
	// Built-in variant to use when no theme file is given
	Variant string `toml:"variant" env:"ZEROAI_VARIANT"`
	// Optional theme.toml that extends a built-in variant
	File string `toml:"file" env:"ZEROAI_THEME_FILE"`
}

type OutputConfig struct {
	// Directory generated files are written to
	Dir string `toml:"dir" env:"ZEROAI_OUTPUT_DIR"`
	// Formats to generate (tailwind, css, json, toml, go)
	Formats []string `toml:"formats" env:"ZEROAI_FORMATS" envSeparator:","`
	// Package name of generated Go source
	GoPackage string `toml:"go_package" env:"ZEROAI_GO_PACKAGE"`
}

type ServerConfig struct {
	Addr string `toml:"addr" env:"ZEROAI_SERVER_ADDR"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Theme: ThemeConfig{
			Variant: "default",
		},
		Output: OutputConfig{
			Dir:       "dist",
			Formats:   []string{"tailwind", "css", "json"},
			GoPackage: "tokens",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads the configuration at path, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (ProjectConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := env.Parse(&config); err != nil {
		return config, fmt.Errorf("failed to read environment: %w", err)
	}

	// Relative theme files resolve against the config file's directory.
	if config.Theme.File != "" && !filepath.IsAbs(config.Theme.File) {
		config.Theme.File = filepath.Join(filepath.Dir(path), config.Theme.File)
	}

	return config, nil
}

// Save writes the configuration to path
func Save(path string, config ProjectConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// FindProjectRoot finds the project root by looking for zeroai.toml or go.mod
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, DefaultFile)); err == nil {
			return dir, nil
		}
		// Check for go.mod as fallback
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a zeroai project (no %s or go.mod found)", DefaultFile)
		}
		dir = parent
	}
}
