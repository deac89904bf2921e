package main

import (
	"fmt"

	"github.com/DonovanMods/loadorderctl/internal/config"
	"github.com/DonovanMods/loadorderctl/internal/domain"

	"github.com/spf13/cobra"
)

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Manage game profiles",
}

var (
	gameAddGameID        string
	gameAddMasterFile    string
	gameAddPluginsFolder string
	gameAddActiveFile    string
	gameAddLoadOrderFile string
)

var gameAddCmd = &cobra.Command{
	Use:   "add <profile-id>",
	Short: "Add or replace a game profile",
	Long: `Add or replace a game profile in games.yaml. The persistence
method (TEXTFILE or TIMESTAMP) is derived from --game-id, not set
directly.

Examples:
  loadorderctl game add skyrim-se --game-id TES5 --master-file Skyrim.esm \
    --plugins-folder ~/Skyrim/Data --active-plugins-file ~/Skyrim/plugins.txt \
    --load-order-file ~/Skyrim/loadorder.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runGameAdd,
}

func init() {
	gameAddCmd.Flags().StringVar(&gameAddGameID, "game-id", "", "game id: TES3, TES4, TES5, FO3, or FNV")
	gameAddCmd.Flags().StringVar(&gameAddMasterFile, "master-file", "", "designated master file, e.g. Skyrim.esm")
	gameAddCmd.Flags().StringVar(&gameAddPluginsFolder, "plugins-folder", "", "folder containing plugin files")
	gameAddCmd.Flags().StringVar(&gameAddActiveFile, "active-plugins-file", "", "path to the active-plugins file")
	gameAddCmd.Flags().StringVar(&gameAddLoadOrderFile, "load-order-file", "", "path to the load-order file (TEXTFILE games only)")

	gameCmd.AddCommand(gameAddCmd)
	rootCmd.AddCommand(gameCmd)
}

func runGameAdd(cmd *cobra.Command, args []string) error {
	if gameAddMasterFile == "" || gameAddPluginsFolder == "" || gameAddActiveFile == "" {
		return fmt.Errorf("--master-file, --plugins-folder, and --active-plugins-file are required")
	}

	dir, err := defaultConfigDir()
	if err != nil {
		return err
	}

	profile := &config.GameProfile{
		GameID:            domain.ParseGameID(gameAddGameID),
		MasterFile:        gameAddMasterFile,
		PluginsFolder:     gameAddPluginsFolder,
		ActivePluginsFile: gameAddActiveFile,
		LoadOrderFile:     gameAddLoadOrderFile,
	}

	if err := config.Save(dir, args[0], profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	fmt.Printf("Added profile %q (%s, %s)\n", args[0], profile.GameID, profile.Method())
	return nil
}
