// Package loadorder implements the LoadOrder state engine (spec §4.4):
// an in-memory ordered sequence of plugins with an activation overlay,
// exposing atomic mutators that either leave the invariants holding or
// fail without touching the prior state.
package loadorder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/DonovanMods/loadorderctl/internal/config"
	"github.com/DonovanMods/loadorderctl/internal/domain"
	"github.com/DonovanMods/loadorderctl/internal/orderrules"
	"github.com/DonovanMods/loadorderctl/internal/persist"
	"github.com/DonovanMods/loadorderctl/internal/probe"
)

// LoadOrder owns the ordered sequence of plugin entries for one game
// profile. It is not safe for concurrent use (spec §5): callers must
// serialize their own access.
type LoadOrder struct {
	profile *config.GameProfile
	prober  *probe.Prober
	seq     []domain.Entry
}

// New creates an empty LoadOrder bound to a profile and prober.
func New(profile *config.GameProfile, prober *probe.Prober) *LoadOrder {
	return &LoadOrder{profile: profile, prober: prober}
}

func (lo *LoadOrder) indexOf(name string) int {
	for i, e := range lo.seq {
		if e.Name.EqualString(name) {
			return i
		}
	}
	return -1
}

func (lo *LoadOrder) activeCount() int {
	n := 0
	for _, e := range lo.seq {
		if e.Active {
			n++
		}
	}
	return n
}

func (lo *LoadOrder) updateMasterExists() bool {
	if lo.profile.GameID != domain.TES5 {
		return false
	}
	_, err := os.Stat(filepath.Join(lo.profile.PluginsFolder, domain.UpdateMasterFileName))
	return err == nil
}

func insertAt(seq []domain.Entry, pos int, e domain.Entry) []domain.Entry {
	out := make([]domain.Entry, 0, len(seq)+1)
	out = append(out, seq[:pos]...)
	out = append(out, e)
	out = append(out, seq[pos:]...)
	return out
}

// GetLoadOrder returns a snapshot of the current sequence.
func (lo *LoadOrder) GetLoadOrder() []domain.Entry {
	return append([]domain.Entry(nil), lo.seq...)
}

// GetPosition returns the case-insensitive index of name, or the
// current sequence length if it is not present (the "beyond end"
// sentinel, spec §4.4).
func (lo *LoadOrder) GetPosition(name string) int {
	if idx := lo.indexOf(name); idx >= 0 {
		return idx
	}
	return len(lo.seq)
}

// GetPluginAtPosition returns the name at index, failing if the index
// is out of range.
func (lo *LoadOrder) GetPluginAtPosition(index int) (string, error) {
	if index < 0 || index >= len(lo.seq) {
		return "", domain.ErrOutOfRange
	}
	return lo.seq[index].Name.String(), nil
}

// IsActive reports whether name is active, case-insensitively. An
// absent name is never active.
func (lo *LoadOrder) IsActive(name string) bool {
	idx := lo.indexOf(name)
	return idx >= 0 && lo.seq[idx].Active
}

// GetActivePlugins returns the unordered set of active plugin names.
func (lo *LoadOrder) GetActivePlugins() []string {
	var out []string
	for _, e := range lo.seq {
		if e.Active {
			out = append(out, e.Name.String())
		}
	}
	return out
}

// Clear discards all entries.
func (lo *LoadOrder) Clear() {
	lo.seq = nil
}

// SetLoadOrder replaces the sequence wholesale. It fails without
// mutating state if the candidate sequence does not satisfy
// validate_full. Active flags are preserved for any surviving name;
// new names default to inactive. On a successful set, the game's
// implicitly-active plugins are (re)activated as a side effect (spec
// §3 invariant 3 and invariant 4): the TEXTFILE master file always,
// and, for TES5, an on-disk Update.esm, inserted at its canonical
// position if the candidate didn't already include it.
func (lo *LoadOrder) SetLoadOrder(names []string) error {
	candidate := make([]domain.Entry, 0, len(names))
	for _, n := range names {
		active := false
		if idx := lo.indexOf(n); idx >= 0 {
			active = lo.seq[idx].Active
		}
		candidate = append(candidate, domain.Entry{
			Name:     domain.NewPluginName(n),
			Active:   active,
			IsMaster: lo.prober.IsMaster(n),
		})
	}

	if !orderrules.ValidateFull(candidate, lo.profile, lo.prober) {
		return domain.ErrInvalidArguments
	}

	if lo.profile.Method() == domain.TEXTFILE {
		candidate[0].Active = true
	}

	if lo.updateMasterExists() {
		idx := -1
		for i, e := range candidate {
			if e.Name.EqualString(domain.UpdateMasterFileName) {
				idx = i
				break
			}
		}
		if idx < 0 {
			pos := orderrules.InsertPosition(candidate, domain.UpdateMasterFileName, true, lo.profile)
			candidate = insertAt(candidate, pos, domain.Entry{Name: domain.NewPluginName(domain.UpdateMasterFileName), IsMaster: true, Active: true})
		} else {
			candidate[idx].Active = true
		}
	}

	lo.seq = candidate
	return nil
}

// SetPosition moves or inserts name so its post-call position is
// min(index, new_length-1), preserving its active state if it was
// already present. Fails if name is invalid or the move would violate
// the master-file anchor or master/non-master partitioning.
func (lo *LoadOrder) SetPosition(name string, index int) error {
	if !lo.prober.IsValid(name) {
		return domain.ErrInvalidPlugin
	}

	remaining := make([]domain.Entry, 0, len(lo.seq))
	active := false
	for _, e := range lo.seq {
		if e.Name.EqualString(name) {
			active = e.Active
			continue
		}
		remaining = append(remaining, e)
	}

	if index < 0 {
		index = 0
	}
	if index > len(remaining) {
		index = len(remaining)
	}

	entry := domain.Entry{Name: domain.NewPluginName(name), Active: active, IsMaster: lo.prober.IsMaster(name)}
	candidate := insertAt(remaining, index, entry)

	if !orderrules.ValidateFull(candidate, lo.profile, lo.prober) {
		return domain.ErrInvalidArguments
	}

	lo.seq = candidate
	return nil
}

// Activate inserts name at its canonical position if absent, then
// marks it active. Fails if name is invalid, or if doing so would
// exceed MaxActivePlugins.
func (lo *LoadOrder) Activate(name string) error {
	if !lo.prober.IsValid(name) {
		return domain.ErrInvalidPlugin
	}

	idx := lo.indexOf(name)
	wasActive := idx >= 0 && lo.seq[idx].Active
	if !wasActive && lo.activeCount() >= domain.MaxActivePlugins {
		return domain.ErrTooManyActivePlugins
	}

	candidate := append([]domain.Entry(nil), lo.seq...)
	if idx < 0 {
		isMaster := lo.prober.IsMaster(name)
		pos := orderrules.InsertPosition(candidate, name, isMaster, lo.profile)
		candidate = insertAt(candidate, pos, domain.Entry{Name: domain.NewPluginName(name), IsMaster: isMaster})
		idx = pos
	}
	candidate[idx].Active = true

	lo.seq = candidate
	return nil
}

// Deactivate clears name's active flag. It is a no-op if name is
// absent. It fails if name is the master file on a TEXTFILE game, or
// if the game is TES5 and name is the update master file.
func (lo *LoadOrder) Deactivate(name string) error {
	idx := lo.indexOf(name)
	if idx < 0 {
		return nil
	}

	if lo.profile.Method() == domain.TEXTFILE && strings.EqualFold(name, lo.profile.MasterFile) {
		return domain.ErrForbiddenDeactivation
	}
	if lo.profile.GameID == domain.TES5 && strings.EqualFold(name, domain.UpdateMasterFileName) {
		return domain.ErrForbiddenDeactivation
	}

	candidate := append([]domain.Entry(nil), lo.seq...)
	candidate[idx].Active = false
	lo.seq = candidate
	return nil
}

// SetActivePlugins replaces the active set. Fails if any name is
// invalid, the set exceeds MaxActivePlugins, a TEXTFILE game's master
// file is missing from the set, or a TES5 update master present on
// disk is missing from the set. Names added to the active set that
// are not yet in the sequence are inserted at their canonical
// position; previously active names dropped from the set become
// inactive but remain in the sequence.
func (lo *LoadOrder) SetActivePlugins(names []string) error {
	uniqOriginal := make(map[string]string)
	var order []string
	for _, n := range names {
		key := strings.ToLower(n)
		if _, ok := uniqOriginal[key]; !ok {
			uniqOriginal[key] = n
			order = append(order, key)
		}
	}

	if len(uniqOriginal) > domain.MaxActivePlugins {
		return domain.ErrTooManyActivePlugins
	}

	for _, n := range uniqOriginal {
		if !lo.prober.IsValid(n) {
			return domain.ErrInvalidPlugin
		}
	}

	if lo.profile.Method() == domain.TEXTFILE {
		if _, ok := uniqOriginal[strings.ToLower(lo.profile.MasterFile)]; !ok {
			return domain.ErrInvalidArguments
		}
	}
	if lo.updateMasterExists() {
		if _, ok := uniqOriginal[strings.ToLower(domain.UpdateMasterFileName)]; !ok {
			return domain.ErrInvalidArguments
		}
	}

	candidate := append([]domain.Entry(nil), lo.seq...)
	for i := range candidate {
		if _, ok := uniqOriginal[candidate[i].Name.Key()]; !ok {
			candidate[i].Active = false
		}
	}

	for _, key := range order {
		original := uniqOriginal[key]
		idx := -1
		for i, e := range candidate {
			if e.Name.EqualString(original) {
				idx = i
				break
			}
		}
		if idx < 0 {
			isMaster := lo.prober.IsMaster(original)
			pos := orderrules.InsertPosition(candidate, original, isMaster, lo.profile)
			candidate = insertAt(candidate, pos, domain.Entry{Name: domain.NewPluginName(original), IsMaster: isMaster, Active: true})
		} else {
			candidate[idx].Active = true
		}
	}

	lo.seq = candidate
	return nil
}

// Load discards prior state and repopulates it from disk per the
// game profile's persistence method (spec §4.5).
func (lo *LoadOrder) Load() error {
	lo.prober.Reset()
	entries, err := persist.Load(lo.profile, lo.prober)
	if err != nil {
		return err
	}
	lo.seq = entries
	return nil
}

// Save serializes the current state to disk without mutating it
// (spec §4.5).
func (lo *LoadOrder) Save() error {
	return persist.Save(lo.profile, lo.seq)
}

// IsSynchronised reports whether the persisted load-order and
// active-plugins files agree (spec §4.6). Always true for TIMESTAMP
// games.
func (lo *LoadOrder) IsSynchronised() (bool, error) {
	return persist.IsSynchronised(lo.profile)
}
