// Remove command for the shelf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <shelf> <entry>",
	Short: "Remove an entry from a shelf",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, sh := storeAndShelf("remove", args[0])

		entry, err := findEntry(sh, args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitUserError)
		}

		st.RemoveEntry(sh.ID, entry.ID)
		fmt.Printf("removed %s from %q\n", entry.Kind, sh.Name)
		return nil
	},
}
