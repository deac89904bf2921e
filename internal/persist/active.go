package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DonovanMods/loadorderctl/internal/config"
	"github.com/DonovanMods/loadorderctl/internal/domain"
	"github.com/DonovanMods/loadorderctl/internal/probe"
)

// loadActiveSet reads the active-plugins file and returns the active
// names in file order, original case preserved. Malformed, duplicate,
// invalid, or non-existent entries are dropped rather than failing
// the whole load (spec §7); acceptance stops once MaxActivePlugins
// names have been accepted — load truncates, it never fails on this.
// The master file (TEXTFILE) and, for TES5, an on-disk update master
// are unconditionally activated regardless of what the file said.
func loadActiveSet(profile *config.GameProfile, prober *probe.Prober) ([]string, error) {
	data, err := os.ReadFile(profile.ActivePluginsFile)
	missing := errors.Is(err, os.ErrNotExist)
	if err != nil && !missing {
		return nil, fmt.Errorf("%w: reading active plugins file: %v", domain.ErrIO, err)
	}

	var rawLines []string
	if !missing {
		rawLines = parseActiveLines(data, profile.GameID)
	}

	seen := make(map[string]bool)
	var active []string
	for _, name := range rawLines {
		if len(active) >= domain.MaxActivePlugins {
			break
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		if !prober.IsValid(name) {
			continue
		}
		seen[key] = true
		active = append(active, name)
	}

	if profile.Method() == domain.TEXTFILE {
		key := strings.ToLower(profile.MasterFile)
		if !seen[key] {
			seen[key] = true
			active = append(active, profile.MasterFile)
		}
	}

	if profile.GameID == domain.TES5 {
		if _, err := os.Stat(filepath.Join(profile.PluginsFolder, domain.UpdateMasterFileName)); err == nil {
			key := strings.ToLower(domain.UpdateMasterFileName)
			if !seen[key] {
				seen[key] = true
				active = append(active, domain.UpdateMasterFileName)
			}
		}
	}

	return active, nil
}
