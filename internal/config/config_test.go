package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/savepaths"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultOS, cfg.OS)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultManifest.Workers, cfg.Manifest.Workers)
	assert.False(t, cfg.Manifest.KeepUnusable)
	assert.Empty(t, cfg.Manifest.Tags)

	target, err := cfg.TargetOS()
	require.NoError(t, err)
	assert.Equal(t, savepaths.OSUnknown, target)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
os: Windows
output:
  color: false
  json: true
  cell_width: 40
manifest:
  workers: 8
  keep_unusable: true
  tags: [save]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	target, err := cfg.TargetOS()
	require.NoError(t, err)
	assert.Equal(t, savepaths.OSWindows, target)
	assert.False(t, cfg.Output.Color)
	assert.True(t, cfg.Output.JSON)
	assert.Equal(t, 40, cfg.Output.CellWidth)
	assert.Equal(t, 8, cfg.Manifest.Workers)
	assert.True(t, cfg.Manifest.KeepUnusable)
	assert.Equal(t, []string{"save"}, cfg.Manifest.Tags)
}

func TestLoad_InvalidOS(t *testing.T) {
	path := writeConfig(t, "os: amiga\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, savepaths.ErrInvalidOS)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "output: [\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SAVEPATHS_OS", "linux")
	t.Setenv("SAVEPATHS_MANIFEST_WORKERS", "2")

	cfg, err := Load(writeConfig(t, "os: windows\n"))
	require.NoError(t, err)

	assert.Equal(t, "linux", cfg.OS)
	assert.Equal(t, 2, cfg.Manifest.Workers)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config", "savepaths"), expandPath("~/.config/savepaths"))
	assert.Equal(t, "/etc/savepaths", expandPath("/etc/savepaths"))
	assert.Equal(t, "~user/x", expandPath("~user/x"))
}
