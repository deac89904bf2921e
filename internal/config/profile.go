// Package config loads the per-game settings a LoadOrder engine
// depends on as an external collaborator (spec §6): paths, method,
// game id, and the designated master filename.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DonovanMods/loadorderctl/internal/domain"

	"gopkg.in/yaml.v3"
)

// GameProfile is the read-only settings struct consumed by the engine.
type GameProfile struct {
	GameID            domain.GameID `yaml:"-"`
	GameIDStr         string        `yaml:"game_id"`
	MasterFile        string        `yaml:"master_file"`
	PluginsFolder     string        `yaml:"plugins_folder"`
	ActivePluginsFile string        `yaml:"active_plugins_file"`
	LoadOrderFile     string        `yaml:"load_order_file,omitempty"` // meaningful only when Method() == TEXTFILE
}

// Method returns the persistence strategy for this profile's game.
func (p GameProfile) Method() domain.Method {
	return domain.MethodForGame(p.GameID)
}

// profilesFile is the top-level games.yaml-equivalent structure.
type profilesFile struct {
	Games map[string]*GameProfile `yaml:"games"`
}

// Load reads all game profiles from <configDir>/games.yaml. A missing
// file yields an empty set rather than an error, matching the
// teacher's config.LoadGames default-on-missing-file behavior.
func Load(configDir string) (map[string]*GameProfile, error) {
	path := filepath.Join(configDir, "games.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]*GameProfile), nil
		}
		return nil, fmt.Errorf("reading games.yaml: %w", err)
	}

	var pf profilesFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing games.yaml: %w", err)
	}

	for id, profile := range pf.Games {
		if profile.GameIDStr != "" {
			profile.GameID = domain.ParseGameID(profile.GameIDStr)
		} else {
			profile.GameID = domain.ParseGameID(id)
		}
	}

	if pf.Games == nil {
		pf.Games = make(map[string]*GameProfile)
	}
	return pf.Games, nil
}

// Save writes a single profile into <configDir>/games.yaml, adding or
// replacing the entry keyed by id.
func Save(configDir, id string, profile *GameProfile) error {
	profiles, err := Load(configDir)
	if err != nil {
		return err
	}

	profile.GameIDStr = profile.GameID.String()
	profiles[id] = profile

	data, err := yaml.Marshal(&profilesFile{Games: profiles})
	if err != nil {
		return fmt.Errorf("marshaling games.yaml: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	path := filepath.Join(configDir, "games.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing games.yaml: %w", err)
	}

	return nil
}
