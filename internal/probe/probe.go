// Package probe classifies plugin filenames as valid, master, or
// non-master by delegating to an external validator and caching the
// answer for the lifetime of one load (spec §4.2).
package probe

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/DonovanMods/loadorderctl/internal/config"
)

// ValidationResult is the external validator's answer for one file.
type ValidationResult struct {
	OK       bool
	IsMaster bool
}

// Validator is the external plugin-file validator collaborator
// (spec §6): a pure function of file contents.
type Validator interface {
	Validate(path string) (ValidationResult, error)
}

type answer struct {
	valid    bool
	isMaster bool
}

// Prober classifies filenames, caching results per instance. Reset
// clears the cache; Load is expected to call it before re-populating
// state (spec §4.2: "invalidates its cache when load is invoked").
type Prober struct {
	validator Validator
	profile   *config.GameProfile
	cache     map[string]answer
}

// New creates a Prober bound to a validator and the profile whose
// master-extension convention and plugins folder it probes against.
func New(validator Validator, profile *config.GameProfile) *Prober {
	return &Prober{
		validator: validator,
		profile:   profile,
		cache:     make(map[string]answer),
	}
}

// Reset clears the per-instance cache.
func (p *Prober) Reset() {
	p.cache = make(map[string]answer)
}

func (p *Prober) lookup(name string) answer {
	key := strings.ToLower(name)
	if a, ok := p.cache[key]; ok {
		return a
	}

	a := p.classify(name)
	p.cache[key] = a
	return a
}

func (p *Prober) classify(name string) answer {
	path := filepath.Join(p.profile.PluginsFolder, name)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return answer{}
	}

	result, err := p.validator.Validate(path)
	if err != nil || !result.OK {
		return answer{}
	}

	return answer{
		valid:    true,
		isMaster: result.IsMaster || hasMasterExtension(name),
	}
}

// hasMasterExtension reports whether name carries the conventional
// master-file extension (".esm"), case-insensitively.
func hasMasterExtension(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".esm")
}

// IsValid reports whether name exists in the plugins folder and
// passes the external validator.
func (p *Prober) IsValid(name string) bool {
	return p.lookup(name).valid
}

// IsMaster reports whether name is valid and flagged (by header or
// extension convention) as a master.
func (p *Prober) IsMaster(name string) bool {
	a := p.lookup(name)
	return a.valid && a.isMaster
}
