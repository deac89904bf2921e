package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setActiveCmd = &cobra.Command{
	Use:   "set-active <plugin>...",
	Short: "Replace the active set wholesale",
	Long: `Replace the set of active plugins. Any name not already in the
load order is inserted at its canonical position. Names dropped from
the set become inactive but stay in the sequence.

Examples:
  loadorderctl set-active --game skyrim-se Skyrim.esm Update.esm Dawnguard.esm`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSetActive,
}

func init() {
	rootCmd.AddCommand(setActiveCmd)
}

func runSetActive(cmd *cobra.Command, args []string) error {
	lo, profile, err := openLoadOrder()
	if err != nil {
		return err
	}

	if err := lo.SetActivePlugins(args); err != nil {
		return fmt.Errorf("setting active plugins: %w", err)
	}
	if err := lo.Save(); err != nil {
		return fmt.Errorf("saving %s state: %w", profile.GameID, err)
	}

	fmt.Printf("Active plugins: %d\n", len(lo.GetActivePlugins()))
	return nil
}
