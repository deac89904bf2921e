package persist

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/DonovanMods/loadorderctl/internal/config"
	"github.com/DonovanMods/loadorderctl/internal/domain"
)

// IsSynchronised reports whether a TEXTFILE game's load-order file and
// active-plugins file agree with each other (spec §4.6). It is
// trivially true for TIMESTAMP games, and true if either file is
// absent.
func IsSynchronised(profile *config.GameProfile) (bool, error) {
	if profile.Method() != domain.TEXTFILE {
		return true, nil
	}

	loData, loErr := os.ReadFile(profile.LoadOrderFile)
	if loErr != nil && !errors.Is(loErr, os.ErrNotExist) {
		return false, fmt.Errorf("%w: reading load order file: %v", domain.ErrIO, loErr)
	}
	if errors.Is(loErr, os.ErrNotExist) {
		return true, nil
	}

	apData, apErr := os.ReadFile(profile.ActivePluginsFile)
	if apErr != nil && !errors.Is(apErr, os.ErrNotExist) {
		return false, fmt.Errorf("%w: reading active plugins file: %v", domain.ErrIO, apErr)
	}
	if errors.Is(apErr, os.ErrNotExist) {
		return true, nil
	}

	var loLines []string
	for _, raw := range splitLines(loData) {
		if len(raw) > 0 {
			loLines = append(loLines, string(raw))
		}
	}

	activeLines := dedupeCaseInsensitive(parseActiveLines(apData, profile.GameID))

	activeSet := make(map[string]bool, len(activeLines))
	for _, a := range activeLines {
		activeSet[strings.ToLower(a)] = true
	}

	var subsequence []string
	for _, l := range loLines {
		if activeSet[strings.ToLower(l)] {
			subsequence = append(subsequence, l)
		}
	}

	if len(subsequence) != len(activeLines) {
		return false, nil
	}
	for i := range subsequence {
		if !strings.EqualFold(subsequence[i], activeLines[i]) {
			return false, nil
		}
	}
	return true, nil
}

func dedupeCaseInsensitive(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		key := strings.ToLower(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}
