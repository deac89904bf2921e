package persist

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/DonovanMods/loadorderctl/internal/config"
	"github.com/DonovanMods/loadorderctl/internal/domain"
	"github.com/DonovanMods/loadorderctl/internal/orderrules"
	"github.com/DonovanMods/loadorderctl/internal/probe"
)

// Load reads the persisted order and active set for profile, merges
// them, and returns the resulting entries (spec §4.5). It discards
// nothing of the caller's — the caller (loadorder.LoadOrder.Load)
// discards its own prior state before calling this.
func Load(profile *config.GameProfile, prober *probe.Prober) ([]domain.Entry, error) {
	var seq []domain.Entry
	var err error

	if profile.Method() == domain.TEXTFILE {
		seq, err = loadTextfileOrder(profile, prober)
	} else {
		seq, err = loadTimestampOrder(profile, prober)
	}
	if err != nil {
		return nil, err
	}

	active, err := loadActiveSet(profile, prober)
	if err != nil {
		return nil, err
	}

	return mergeActive(seq, active, profile, prober), nil
}

// loadTimestampOrder builds the sequence for a TIMESTAMP game purely
// from folder enumeration, sorted masters-first then by mtime.
func loadTimestampOrder(profile *config.GameProfile, prober *probe.Prober) ([]domain.Entry, error) {
	discovered, err := discoverValidPlugins(profile, prober)
	if err != nil {
		return nil, err
	}
	sortTimestampOrder(discovered)

	seq := make([]domain.Entry, 0, len(discovered))
	for _, d := range discovered {
		seq = append(seq, toEntry(d))
	}
	return seq, nil
}

// loadTextfileOrder builds the sequence for a TEXTFILE game: read the
// load-order file (falling back to the active-plugins file as the
// order source if it's missing), filter to valid entries, dedupe,
// append any valid plugins found in the folder but absent from the
// file, then enforce partitioning over the whole sequence and anchor
// the master file at index 0 (spec §4.5).
func loadTextfileOrder(profile *config.GameProfile, prober *probe.Prober) ([]domain.Entry, error) {
	var lines []string

	data, err := os.ReadFile(profile.LoadOrderFile)
	switch {
	case err == nil:
		for _, raw := range splitLines(data) {
			line := string(raw)
			if line != "" {
				lines = append(lines, line)
			}
		}
	case errors.Is(err, os.ErrNotExist):
		apData, apErr := os.ReadFile(profile.ActivePluginsFile)
		if apErr == nil {
			lines = parseActiveLines(apData, profile.GameID)
		} else if !errors.Is(apErr, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: reading active plugins file: %v", domain.ErrIO, apErr)
		}
	default:
		return nil, fmt.Errorf("%w: reading load order file: %v", domain.ErrIO, err)
	}

	seen := make(map[string]bool)
	var seq []domain.Entry
	for _, name := range lines {
		if !prober.IsValid(name) {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		seq = append(seq, domain.Entry{Name: domain.NewPluginName(name), IsMaster: prober.IsMaster(name)})
	}

	discovered, err := discoverValidPlugins(profile, prober)
	if err != nil {
		return nil, err
	}
	sortAppendedBlock(discovered)
	for _, d := range discovered {
		key := strings.ToLower(d.name)
		if seen[key] {
			continue
		}
		seen[key] = true
		seq = append(seq, toEntry(d))
	}

	// Stable-sort masters ahead of non-masters, preserving relative
	// order within each group (spec §4.5).
	sort.SliceStable(seq, func(i, j int) bool {
		return seq[i].IsMaster && !seq[j].IsMaster
	})

	seq = anchorMasterFirst(seq, profile, prober)

	return seq, nil
}

// anchorMasterFirst ensures the designated master file occupies index
// 0, prepending it if it's valid but absent from seq, or moving it to
// the front if it's present elsewhere.
func anchorMasterFirst(seq []domain.Entry, profile *config.GameProfile, prober *probe.Prober) []domain.Entry {
	for i, e := range seq {
		if e.Name.EqualString(profile.MasterFile) {
			if i == 0 {
				return seq
			}
			entry := seq[i]
			out := make([]domain.Entry, 0, len(seq))
			out = append(out, entry)
			out = append(out, seq[:i]...)
			out = append(out, seq[i+1:]...)
			return out
		}
	}

	if prober.IsValid(profile.MasterFile) {
		out := make([]domain.Entry, 0, len(seq)+1)
		out = append(out, domain.Entry{Name: domain.NewPluginName(profile.MasterFile), IsMaster: true})
		out = append(out, seq...)
		return out
	}

	return seq
}

// mergeActive sets the Active flag on every entry in seq whose name
// is in active, then inserts any active name not yet in seq at its
// canonical position (spec §4.5 step 3).
func mergeActive(seq []domain.Entry, active []string, profile *config.GameProfile, prober *probe.Prober) []domain.Entry {
	activeSet := make(map[string]bool, len(active))
	for _, a := range active {
		activeSet[strings.ToLower(a)] = true
	}

	out := append([]domain.Entry(nil), seq...)
	present := make(map[string]bool, len(out))
	for i := range out {
		present[out[i].Name.Key()] = true
		if activeSet[out[i].Name.Key()] {
			out[i].Active = true
		}
	}

	for _, name := range active {
		key := strings.ToLower(name)
		if present[key] {
			continue
		}
		present[key] = true
		isMaster := prober.IsMaster(name)
		pos := orderrules.InsertPosition(out, name, isMaster, profile)
		entry := domain.Entry{Name: domain.NewPluginName(name), IsMaster: isMaster, Active: true}
		out = append(out[:pos], append([]domain.Entry{entry}, out[pos:]...)...)
	}

	return out
}
