package persist

import (
	"bytes"
	"regexp"

	"github.com/DonovanMods/loadorderctl/internal/codec"
	"github.com/DonovanMods/loadorderctl/internal/domain"
)

// splitLines splits a file's raw bytes into lines on '\n', trimming a
// trailing '\r' from each — byte-safe regardless of the line's own
// encoding since newline bytes never appear inside a single-byte
// code-page character.
func splitLines(data []byte) [][]byte {
	var lines [][]byte
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		lines = append(lines, bytes.TrimRight(line, "\r"))
	}
	return lines
}

var gameFileLine = regexp.MustCompile(`^GameFile\d+=(.*)$`)

// parseActiveLines decodes and filters the raw lines of an
// active-plugins file: blank and comment lines are dropped, and for
// TES3 the "GameFile<N>=" prefix is stripped. Lines that fail to
// decode from the OS-local code page are dropped (treated as absent,
// per spec §7's tolerant-load policy). The result is ordered but not
// deduplicated or validity-checked; callers apply those separately.
func parseActiveLines(data []byte, gameID domain.GameID) []string {
	var out []string
	for _, raw := range splitLines(data) {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] == '#' {
			continue
		}

		decoded, err := codec.ToUTF8(trimmed)
		if err != nil {
			continue
		}

		if gameID == domain.TES3 {
			m := gameFileLine.FindStringSubmatch(decoded)
			if m == nil {
				continue
			}
			decoded = m[1]
		}

		out = append(out, decoded)
	}
	return out
}
