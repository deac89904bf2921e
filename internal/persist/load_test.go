package persist_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DonovanMods/loadorderctl/internal/config"
	"github.com/DonovanMods/loadorderctl/internal/domain"
	"github.com/DonovanMods/loadorderctl/internal/persist"
	"github.com/DonovanMods/loadorderctl/internal/probe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePluginWithTime(t *testing.T, dir, name string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestLoad_Timestamp_SortsByMasterThenMtime(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	writePluginWithTime(t, dir, "Blank.esp", base.Add(3*time.Hour))
	writePluginWithTime(t, dir, "Oblivion.esm", base)
	writePluginWithTime(t, dir, "DLC.esm", base.Add(time.Hour))
	writePluginWithTime(t, dir, "Another.esp", base.Add(2*time.Hour))

	profile := &config.GameProfile{
		GameID:            domain.TES4,
		MasterFile:        "Oblivion.esm",
		PluginsFolder:     dir,
		ActivePluginsFile: filepath.Join(t.TempDir(), "plugins.txt"),
	}
	prober := probe.New(okValidator{}, profile)

	entries, err := persist.Load(profile, prober)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name.String())
	}
	assert.Equal(t, []string{"Oblivion.esm", "DLC.esm", "Another.esp", "Blank.esp"}, names)
}

func TestLoad_Textfile_DedupesAndEnforcesPartition(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Skyrim.esm", "Blank.esm", "Blank.esp"} {
		writePluginWithTime(t, dir, name, time.Now())
	}

	loFile := filepath.Join(t.TempDir(), "loadorder.txt")
	require.NoError(t, os.WriteFile(loFile, []byte("Blank.esp\nBLANK.ESP\nSkyrim.esm\nBlank.esm\n"), 0644))

	profile := &config.GameProfile{
		GameID:            domain.TES5,
		MasterFile:        "Skyrim.esm",
		PluginsFolder:     dir,
		ActivePluginsFile: filepath.Join(t.TempDir(), "plugins.txt"),
		LoadOrderFile:     loFile,
	}
	prober := probe.New(okValidator{}, profile)

	entries, err := persist.Load(profile, prober)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name.String())
	}
	// Masters sort ahead of non-masters and the master file is anchored
	// at index 0; the duplicate "BLANK.ESP" line is dropped.
	require.Len(t, names, 3)
	assert.Equal(t, "Skyrim.esm", names[0])
	assert.Equal(t, "Blank.esm", names[1])
	assert.Equal(t, "Blank.esp", names[2])
}

func TestLoad_Textfile_FallsBackToActivePluginsFileWhenOrderFileMissing(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Skyrim.esm", "Blank.esp"} {
		writePluginWithTime(t, dir, name, time.Now())
	}

	activeFile := filepath.Join(t.TempDir(), "plugins.txt")
	require.NoError(t, os.WriteFile(activeFile, []byte("Blank.esp\nSkyrim.esm\n"), 0644))

	profile := &config.GameProfile{
		GameID:            domain.TES5,
		MasterFile:        "Skyrim.esm",
		PluginsFolder:     dir,
		ActivePluginsFile: activeFile,
		LoadOrderFile:     filepath.Join(dir, "does-not-exist.txt"),
	}
	prober := probe.New(okValidator{}, profile)

	entries, err := persist.Load(profile, prober)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "Skyrim.esm", entries[0].Name.String())
}

func TestLoad_Textfile_AppendsFolderPluginsAbsentFromFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Skyrim.esm", "Blank.esp", "Extra.esp"} {
		writePluginWithTime(t, dir, name, time.Now())
	}

	loFile := filepath.Join(t.TempDir(), "loadorder.txt")
	require.NoError(t, os.WriteFile(loFile, []byte("Skyrim.esm\nBlank.esp\n"), 0644))

	profile := &config.GameProfile{
		GameID:            domain.TES5,
		MasterFile:        "Skyrim.esm",
		PluginsFolder:     dir,
		ActivePluginsFile: filepath.Join(t.TempDir(), "plugins.txt"),
		LoadOrderFile:     loFile,
	}
	prober := probe.New(okValidator{}, profile)

	entries, err := persist.Load(profile, prober)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "Skyrim.esm", entries[0].Name.String())
	assert.Equal(t, "Blank.esp", entries[1].Name.String())
	assert.Equal(t, "Extra.esp", entries[2].Name.String())
}
