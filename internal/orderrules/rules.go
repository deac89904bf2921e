// Package orderrules holds the stateless ordering predicates used to
// validate and position entries in a load order (spec §4.3). Every
// function here is pure: given a candidate sequence (and, where
// needed, the game's settings), it answers a yes/no question or
// computes an insertion index. None of it mutates or owns state.
package orderrules

import (
	"strings"

	"github.com/DonovanMods/loadorderctl/internal/config"
	"github.com/DonovanMods/loadorderctl/internal/domain"
)

// Validator is the subset of probe.Prober that ordering rules need.
type Validator interface {
	IsValid(name string) bool
}

// PartitionOK reports whether every master in seq precedes every
// non-master: for all i, if seq[i] is a master, no earlier index
// holds a non-master.
func PartitionOK(seq []domain.Entry) bool {
	sawNonMaster := false
	for _, e := range seq {
		if e.IsMaster {
			if sawNonMaster {
				return false
			}
		} else {
			sawNonMaster = true
		}
	}
	return true
}

// AnchorOK reports whether seq satisfies the game's master-anchoring
// requirement: for TEXTFILE, seq[0] must be the designated master
// file; otherwise the rule is unconstrained.
func AnchorOK(seq []domain.Entry, profile *config.GameProfile) bool {
	if profile.Method() != domain.TEXTFILE {
		return true
	}
	if len(seq) == 0 {
		return false
	}
	return strings.EqualFold(seq[0].Name.String(), profile.MasterFile)
}

// NoDuplicates reports whether seq contains no case-insensitive name
// collisions.
func NoDuplicates(seq []domain.Entry) bool {
	seen := make(map[string]struct{}, len(seq))
	for _, e := range seq {
		if _, ok := seen[e.Name.Key()]; ok {
			return false
		}
		seen[e.Name.Key()] = struct{}{}
	}
	return true
}

// AllValid reports whether every entry in seq passes the plugin probe.
func AllValid(seq []domain.Entry, validator Validator) bool {
	for _, e := range seq {
		if !validator.IsValid(e.Name.String()) {
			return false
		}
	}
	return true
}

// ValidateFull is the conjunction of all four ordering predicates.
func ValidateFull(seq []domain.Entry, profile *config.GameProfile, validator Validator) bool {
	return PartitionOK(seq) && AnchorOK(seq, profile) && NoDuplicates(seq) && AllValid(seq, validator)
}

// InsertPosition computes where a new entry for name should land in
// seq (spec §4.3):
//   - the master file on a TEXTFILE game goes to index 0;
//   - any other master goes immediately after the last existing master;
//   - anything else goes to the end.
func InsertPosition(seq []domain.Entry, name string, isMaster bool, profile *config.GameProfile) int {
	if profile.Method() == domain.TEXTFILE && strings.EqualFold(name, profile.MasterFile) {
		return 0
	}

	if isMaster {
		pos := 0
		for i, e := range seq {
			if e.IsMaster {
				pos = i + 1
			}
		}
		return pos
	}

	return len(seq)
}
