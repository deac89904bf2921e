package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DonovanMods/loadorderctl/internal/config"
	"github.com/DonovanMods/loadorderctl/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGame(t *testing.T) {
	t.Helper()
	configDir = t.TempDir()
	pluginsDir := t.TempDir()
	gameID = "oblivion"

	t.Cleanup(func() {
		configDir = ""
		gameID = ""
	})

	require.NoError(t, os.WriteFile(filepath.Join(pluginsDir, "Oblivion.esm"), []byte("data"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(pluginsDir, "Blank.esp"), []byte("data"), 0644))

	profile := &config.GameProfile{
		GameID:            domain.TES4,
		MasterFile:        "Oblivion.esm",
		PluginsFolder:     pluginsDir,
		ActivePluginsFile: filepath.Join(configDir, "plugins.txt"),
	}
	require.NoError(t, config.Save(configDir, "oblivion", profile))
}

func TestList_Structure(t *testing.T) {
	assert.Equal(t, "list", listCmd.Use)
	assert.NotEmpty(t, listCmd.Short)
}

func TestList_NoGameErrors(t *testing.T) {
	gameID = ""
	_, _, err := openLoadOrder()
	assert.Error(t, err)
}

func TestList_ReportsDiscoveredPlugins(t *testing.T) {
	setupGame(t)

	lo, _, err := openLoadOrder()
	require.NoError(t, err)

	entries := lo.GetLoadOrder()
	require.Len(t, entries, 2)
	assert.Equal(t, "Oblivion.esm", entries[0].Name.String())
	assert.True(t, entries[0].IsMaster)
}
