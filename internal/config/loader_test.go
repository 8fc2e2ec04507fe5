package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relkit/cli/internal/testutil"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.LedgerFile)
	assert.Equal(t, "table", cfg.Output)
}

func TestLoad_FileValues(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "noColor: true\nledgerFile: versions.yaml\noutput: yaml\n")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.NoColor)
	assert.Equal(t, "versions.yaml", cfg.LedgerFile)
	assert.Equal(t, "yaml", cfg.Output)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "ledgerFile: from-file.yaml\n")

	t.Setenv("RELKIT_LEDGER_FILE", "from-env.yaml")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.yaml", cfg.LedgerFile)
}

func TestGetConfigFile_EnvWins(t *testing.T) {
	t.Setenv("RELKIT_CONFIG", "/tmp/custom.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}

func TestExpandPath(t *testing.T) {
	expanded, err := ExpandPath("~/x.yaml")
	require.NoError(t, err)
	assert.NotContains(t, expanded, "~")

	same, err := ExpandPath("/abs/x.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/abs/x.yaml", same)
}
