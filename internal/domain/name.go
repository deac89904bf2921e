package domain

import "strings"

// PluginName identifies a plugin file. Identity is case-insensitive:
// two names compare, hash, and deduplicate by their folded key, but the
// original case supplied by the caller is preserved for display and
// for round-tripping through persisted files.
type PluginName struct {
	original string
	folded   string
}

// NewPluginName wraps a filename, preserving its case for display.
func NewPluginName(s string) PluginName {
	return PluginName{original: s, folded: strings.ToLower(s)}
}

// String returns the original-case name.
func (n PluginName) String() string {
	return n.original
}

// Key returns the folded comparison key.
func (n PluginName) Key() string {
	return n.folded
}

// Equal reports whether two names are the same identity.
func (n PluginName) Equal(other PluginName) bool {
	return n.folded == other.folded
}

// EqualString reports whether n matches a raw filename, case-insensitively.
func (n PluginName) EqualString(s string) bool {
	return n.folded == strings.ToLower(s)
}

// IsZero reports whether n was never assigned a name.
func (n PluginName) IsZero() bool {
	return n.original == "" && n.folded == ""
}
