package persist_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/DonovanMods/loadorderctl/internal/codec"
	"github.com/DonovanMods/loadorderctl/internal/config"
	"github.com/DonovanMods/loadorderctl/internal/domain"
	"github.com/DonovanMods/loadorderctl/internal/persist"
	"github.com/DonovanMods/loadorderctl/internal/probe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type okValidator struct{}

func (okValidator) Validate(path string) (probe.ValidationResult, error) {
	return probe.ValidationResult{OK: true}, nil
}

func writePlugin(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0644))
}

// TestLoad_ActivePluginsFile_DropsBadLinesAndAutoActivatesMasters
// exercises spec §8 scenario 6: a malformed active-plugins file whose
// blank/comment/duplicate/invalid lines are dropped, and whose master
// and update master are force-activated.
func TestLoad_ActivePluginsFile_DropsBadLinesAndAutoActivatesMasters(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Skyrim.esm", "Update.esm", "Blank.esm", "Blank.esp", "Blàñk.esm"} {
		writePlugin(t, dir, name)
	}

	blank, err := codec.FromUTF8("Blàñk.esm")
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.WriteString("\n")
	buf.WriteString("#Blank - Different.esm\n")
	buf.WriteString("Blank.esm\n")
	buf.WriteString("Blank.esp\n")
	buf.Write(blank)
	buf.WriteString("\n")
	buf.WriteString("Blank.esm\n") // duplicate
	buf.WriteString("NotAPlugin.esm\n")

	activeFile := filepath.Join(t.TempDir(), "plugins.txt")
	require.NoError(t, os.WriteFile(activeFile, buf.Bytes(), 0644))

	profile := &config.GameProfile{
		GameID:            domain.TES5,
		MasterFile:        "Skyrim.esm",
		PluginsFolder:     dir,
		ActivePluginsFile: activeFile,
		LoadOrderFile:     filepath.Join(t.TempDir(), "loadorder.txt"),
	}
	prober := probe.New(okValidator{}, profile)

	entries, err := persist.Load(profile, prober)
	require.NoError(t, err)

	var active []string
	for _, e := range entries {
		if e.Active {
			active = append(active, e.Name.String())
		}
	}

	assert.ElementsMatch(t, []string{"Skyrim.esm", "Update.esm", "Blank.esm", "Blank.esp", "Blàñk.esm"}, active)
}

func TestLoad_ActivePluginsFile_TruncatesAt255(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	for i := 0; i < 300; i++ {
		name := fmt.Sprintf("Plugin%03d.esp", i)
		writePlugin(t, dir, name)
		buf.WriteString(name)
		buf.WriteString("\n")
	}
	writePlugin(t, dir, "Oblivion.esm")

	activeFile := filepath.Join(t.TempDir(), "plugins.txt")
	require.NoError(t, os.WriteFile(activeFile, buf.Bytes(), 0644))

	profile := &config.GameProfile{
		GameID:            domain.TES4,
		MasterFile:        "Oblivion.esm",
		PluginsFolder:     dir,
		ActivePluginsFile: activeFile,
	}
	prober := probe.New(okValidator{}, profile)

	entries, err := persist.Load(profile, prober)
	require.NoError(t, err)

	active := 0
	for _, e := range entries {
		if e.Active {
			active++
		}
	}
	assert.Equal(t, 255, active)
}
