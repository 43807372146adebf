package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, " > ", cfg.Separator)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.NavBar)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
separator: " / "
no_color: true
navbar:
  - label: Home
    file: main
    block: home
user:
  name: rae
  roles: [admin]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, " / ", cfg.Separator)
	assert.True(t, cfg.NoColor)
	require.Len(t, cfg.NavBar, 1)
	assert.Equal(t, "Home", cfg.NavBar[0].Label)
	assert.Equal(t, "rae", cfg.User["name"])
}

func TestLoadTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
separator = " / "
no_color = true

[[navbar]]
label = "Home"
file = "main"
block = "home"

[user]
name = "rae"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, " / ", cfg.Separator)
	assert.True(t, cfg.NoColor)
	require.Len(t, cfg.NavBar, 1)
	assert.Equal(t, "Home", cfg.NavBar[0].Label)
	assert.Equal(t, "rae", cfg.User["name"])
}

func TestLoadExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: ' :: '\n"), 0o644))
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, " :: ", cfg.Separator)
}

func TestLoadEnvPathMissingIsNotError(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadKeepsSeparatorDefaultWhenUnset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("no_color: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, " > ", cfg.Separator)
	assert.True(t, cfg.NoColor)
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
