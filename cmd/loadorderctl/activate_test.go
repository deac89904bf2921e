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

func setupSkyrimGame(t *testing.T) {
	t.Helper()
	configDir = t.TempDir()
	pluginsDir := t.TempDir()
	gameID = "skyrim-se"

	t.Cleanup(func() {
		configDir = ""
		gameID = ""
	})

	require.NoError(t, os.WriteFile(filepath.Join(pluginsDir, "Skyrim.esm"), []byte("data"), 0644))

	profile := &config.GameProfile{
		GameID:            domain.TES5,
		MasterFile:        "Skyrim.esm",
		PluginsFolder:     pluginsDir,
		ActivePluginsFile: filepath.Join(configDir, "plugins.txt"),
		LoadOrderFile:     filepath.Join(configDir, "loadorder.txt"),
	}
	require.NoError(t, config.Save(configDir, "skyrim-se", profile))
}

func TestActivateDeactivate_RoundTripThroughSave(t *testing.T) {
	setupGame(t)

	lo, _, err := openLoadOrder()
	require.NoError(t, err)

	require.NoError(t, lo.Activate("Blank.esp"))
	require.NoError(t, lo.Save())

	reloaded, _, err := openLoadOrder()
	require.NoError(t, err)
	assert.True(t, reloaded.IsActive("Blank.esp"))

	require.NoError(t, reloaded.Deactivate("Blank.esp"))
	require.NoError(t, reloaded.Save())

	final, _, err := openLoadOrder()
	require.NoError(t, err)
	assert.False(t, final.IsActive("Blank.esp"))
}

func TestDeactivate_ForbiddenForTextfileMasterSurfacesAsError(t *testing.T) {
	setupSkyrimGame(t)

	lo, _, err := openLoadOrder()
	require.NoError(t, err)

	err = lo.Deactivate("Skyrim.esm")
	assert.Error(t, err)
}
