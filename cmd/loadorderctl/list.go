package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current load order and activation state",
	Long: `List every plugin in the current load order, its position, and
whether it is active.

Examples:
  loadorderctl list --game skyrim-se`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	lo, _, err := openLoadOrder()
	if err != nil {
		return err
	}

	entries := lo.GetLoadOrder()
	if len(entries) == 0 {
		fmt.Println("No plugins found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tNAME\tMASTER\tACTIVE")
	fmt.Fprintln(w, "---\t----\t------\t------")
	for i, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, e.Name.String(), yesNo(e.IsMaster), yesNo(e.Active))
	}
	w.Flush()

	if verbose {
		fmt.Printf("\nTotal: %d plugin(s), %d active\n", len(entries), len(lo.GetActivePlugins()))
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
