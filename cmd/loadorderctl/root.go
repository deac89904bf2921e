package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DonovanMods/loadorderctl/internal/config"
	"github.com/DonovanMods/loadorderctl/internal/loadorder"
	"github.com/DonovanMods/loadorderctl/internal/probe"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	configDir  string
	gameID     string
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "loadorderctl",
	Short: "Inspect and edit a Bethesda-style game's plugin load order",
	Long: `loadorderctl manages plugin load order and activation state for
TES3, TES4, TES5, FO3, and FNV profiles, using either the TEXTFILE or
TIMESTAMP persistence strategy depending on the game.

Configure game profiles with 'loadorderctl game add' before using the
other subcommands.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/loadorderctl)")
	rootCmd.PersistentFlags().StringVarP(&gameID, "game", "g", "", "game profile id to operate on")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
}

// Execute runs the root command. Exit codes: 0 = success, 1 = error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if jsonOutput {
			fmt.Printf(`{"error":%q}`+"\n", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func defaultConfigDir() (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}
	return filepath.Join(home, ".config", "loadorderctl"), nil
}

// requireGame ensures --game was supplied.
func requireGame() error {
	if gameID == "" {
		return fmt.Errorf("no game specified; use --game or -g")
	}
	return nil
}

// loadProfile resolves the configured GameProfile for --game.
func loadProfile() (*config.GameProfile, error) {
	dir, err := defaultConfigDir()
	if err != nil {
		return nil, err
	}

	profiles, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading profiles: %w", err)
	}

	profile, ok := profiles[gameID]
	if !ok {
		return nil, fmt.Errorf("no profile configured for game %q; run 'loadorderctl game add'", gameID)
	}
	return profile, nil
}

// openLoadOrder loads a profile's current state from disk into a
// ready-to-use LoadOrder.
func openLoadOrder() (*loadorder.LoadOrder, *config.GameProfile, error) {
	if err := requireGame(); err != nil {
		return nil, nil, err
	}

	profile, err := loadProfile()
	if err != nil {
		return nil, nil, err
	}

	prober := probe.New(extensionValidator{}, profile)
	lo := loadorder.New(profile, prober)
	if err := lo.Load(); err != nil {
		return nil, nil, fmt.Errorf("loading state: %w", err)
	}

	return lo, profile, nil
}
