package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <plugin>",
	Short: "Deactivate a plugin",
	Long: `Deactivate a plugin. It remains in the load order but is no longer
part of the active set. Fails for the designated master file of a
TEXTFILE game, or for TES5's Update.esm.

Examples:
  loadorderctl deactivate --game skyrim-se "Unofficial Skyrim Patch.esp"`,
	Args: cobra.ExactArgs(1),
	RunE: runDeactivate,
}

func init() {
	rootCmd.AddCommand(deactivateCmd)
}

func runDeactivate(cmd *cobra.Command, args []string) error {
	lo, profile, err := openLoadOrder()
	if err != nil {
		return err
	}

	if err := lo.Deactivate(args[0]); err != nil {
		return fmt.Errorf("deactivating %s: %w", args[0], err)
	}
	if err := lo.Save(); err != nil {
		return fmt.Errorf("saving %s state: %w", profile.GameID, err)
	}

	fmt.Printf("Deactivated %s\n", args[0])
	return nil
}
