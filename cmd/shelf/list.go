// List command for the shelf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List shelves and their entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}

		shelves := st.Shelves()
		if flagJSON {
			return printJSON(shelves)
		}

		if len(shelves) == 0 {
			fmt.Println("no shelves")
			return nil
		}
		for _, sh := range shelves {
			visibility := "visible"
			if !sh.Visible {
				visibility = "hidden"
			}
			fmt.Printf("%s  %s  [%s, %s, %d entries]\n",
				sh.ID, sh.Name, sh.Orientation, visibility, len(sh.Entries))
			for i, e := range sh.Entries {
				fmt.Printf("  %2d. %s\n", i+1, entrySummary(e))
			}
		}
		return nil
	},
}
