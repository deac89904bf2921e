package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate <plugin>",
	Short: "Activate a plugin",
	Long: `Activate a plugin, inserting it into the load order at its
canonical position if it is not already present.

Examples:
  loadorderctl activate --game skyrim-se "Unofficial Skyrim Patch.esp"`,
	Args: cobra.ExactArgs(1),
	RunE: runActivate,
}

func init() {
	rootCmd.AddCommand(activateCmd)
}

func runActivate(cmd *cobra.Command, args []string) error {
	lo, profile, err := openLoadOrder()
	if err != nil {
		return err
	}

	if err := lo.Activate(args[0]); err != nil {
		return fmt.Errorf("activating %s: %w", args[0], err)
	}
	if err := lo.Save(); err != nil {
		return fmt.Errorf("saving %s state: %w", profile.GameID, err)
	}

	fmt.Printf("Activated %s\n", args[0])
	return nil
}
