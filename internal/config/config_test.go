package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	data := `[theme]
variant = "taobao"
file = "brand.toml"

[output]
dir = "public/css"
formats = ["css"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "taobao", cfg.Theme.Variant)
	require.Equal(t, filepath.Join(dir, "brand.toml"), cfg.Theme.File)
	require.Equal(t, "public/css", cfg.Output.Dir)
	require.Equal(t, []string{"css"}, cfg.Output.Formats)
	// Unset keys keep their defaults.
	require.Equal(t, "tokens", cfg.Output.GoPackage)
	require.Equal(t, ":8080", cfg.Server.Addr)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("[theme]\nvariant = \"default\"\n"), 0644))

	t.Setenv("ZEROAI_VARIANT", "taobao")
	t.Setenv("ZEROAI_FORMATS", "css,go")
	t.Setenv("ZEROAI_SERVER_ADDR", "127.0.0.1:9000")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "taobao", cfg.Theme.Variant)
	require.Equal(t, []string{"css", "go"}, cfg.Output.Formats)
	require.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("[theme\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	want := DefaultConfig()
	want.Theme.Variant = "taobao"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Save(filepath.Join(root, DefaultFile), DefaultConfig()))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	t.Chdir(nested)

	got, err := FindProjectRoot()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	got, err = filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
