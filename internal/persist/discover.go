package persist

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/DonovanMods/loadorderctl/internal/config"
	"github.com/DonovanMods/loadorderctl/internal/domain"
	"github.com/DonovanMods/loadorderctl/internal/probe"
)

// discovered is one valid plugin found by enumerating the plugins
// folder, with the data needed to sort it by either persistence
// strategy's rules.
type discovered struct {
	name     string
	isMaster bool
	modTime  time.Time
}

// discoverValidPlugins enumerates the plugins folder and returns every
// file that passes the plugin probe.
func discoverValidPlugins(profile *config.GameProfile, prober *probe.Prober) ([]discovered, error) {
	entries, err := os.ReadDir(profile.PluginsFolder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading plugins folder: %v", domain.ErrIO, err)
	}

	var out []discovered
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !prober.IsValid(name) {
			continue
		}

		info, err := entry.Info()
		var modTime time.Time
		if err == nil {
			modTime = info.ModTime()
		}

		out = append(out, discovered{
			name:     name,
			isMaster: prober.IsMaster(name),
			modTime:  modTime,
		})
	}
	return out, nil
}

// sortTimestampOrder sorts discovered plugins the way a TIMESTAMP game
// infers load order: masters first, then by last-write time ascending,
// with name as a tiebreaker (spec §4.5).
func sortTimestampOrder(plugins []discovered) {
	sort.SliceStable(plugins, func(i, j int) bool {
		a, b := plugins[i], plugins[j]
		if a.isMaster != b.isMaster {
			return a.isMaster
		}
		if !a.modTime.Equal(b.modTime) {
			return a.modTime.Before(b.modTime)
		}
		return a.name < b.name
	})
}

// sortAppendedBlock sorts plugins discovered in the folder but absent
// from a TEXTFILE load-order file: masters first, then name ascending.
// Spec §9 leaves this block's internal order implementation-defined;
// tests only assert the prefix that came from the file itself.
func sortAppendedBlock(plugins []discovered) {
	sort.SliceStable(plugins, func(i, j int) bool {
		a, b := plugins[i], plugins[j]
		if a.isMaster != b.isMaster {
			return a.isMaster
		}
		return a.name < b.name
	})
}

func toEntry(d discovered) domain.Entry {
	return domain.Entry{Name: domain.NewPluginName(d.name), IsMaster: d.isMaster}
}
