// Package codec bridges the OS-local code page plugin managers
// historically wrote active-plugins files in (the games are Windows
// titles at heart) and the UTF-8 the engine holds filenames in
// internally (spec §1, §4.1, §6).
package codec

import (
	"golang.org/x/text/encoding/charmap"
)

// local is the OS-local code page. Windows-1252 is what every shipped
// Bethesda-style active-plugins file in the wild is actually encoded
// in, regardless of host OS, so it's the one fixed convention rather
// than something read from settings.
var local = charmap.Windows1252

// ToUTF8 decodes a line read from an active-plugins file into the
// engine's canonical UTF-8 representation.
func ToUTF8(b []byte) (string, error) {
	return local.NewDecoder().String(string(b))
}

// FromUTF8 encodes a canonical UTF-8 filename back to the OS-local
// code page for writing to an active-plugins file.
func FromUTF8(s string) ([]byte, error) {
	out, err := local.NewEncoder().String(s)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
