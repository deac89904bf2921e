package main

import (
	"path/filepath"
	"strings"

	"github.com/DonovanMods/loadorderctl/internal/probe"
)

// extensionValidator is the default probe.Validator: header parsing
// for Bethesda plugin files is an external collaborator the engine
// never implements itself, so this CLI ships only the conventional
// extension check as a stand-in.
type extensionValidator struct{}

var pluginExtensions = map[string]bool{
	".esm": true,
	".esp": true,
	".esl": true,
}

func (extensionValidator) Validate(path string) (probe.ValidationResult, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !pluginExtensions[ext] {
		return probe.ValidationResult{}, nil
	}
	return probe.ValidationResult{OK: true, IsMaster: ext == ".esm"}, nil
}
