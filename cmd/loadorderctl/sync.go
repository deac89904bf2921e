package main

import (
	"fmt"

	"github.com/DonovanMods/loadorderctl/internal/persist"

	"github.com/spf13/cobra"
)

var syncCheckCmd = &cobra.Command{
	Use:   "sync-check",
	Short: "Check whether the load-order and active-plugins files agree",
	Long: `Report whether the persisted load-order file and active-plugins
file are synchronised. Always true for TIMESTAMP games, since they
have no separate load-order file.

Examples:
  loadorderctl sync-check --game skyrim-se`,
	RunE: runSyncCheck,
}

func init() {
	rootCmd.AddCommand(syncCheckCmd)
}

func runSyncCheck(cmd *cobra.Command, args []string) error {
	if err := requireGame(); err != nil {
		return err
	}
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	ok, err := persist.IsSynchronised(profile)
	if err != nil {
		return fmt.Errorf("checking synchronisation: %w", err)
	}

	if jsonOutput {
		fmt.Printf(`{"synchronised":%t}`+"\n", ok)
		return nil
	}

	if ok {
		fmt.Println("synchronised")
	} else {
		fmt.Println("out of sync")
	}
	return nil
}
