// Move command for the shelf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <shelf> <entry> <target>",
	Short: "Move an entry to another entry's position",
	Long: `Move reorders a shelf: the entry is removed from its slot and
reinserted at the target entry's position. Entries are referenced by id or
by the 1-based position shown by list.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, sh := storeAndShelf("move", args[0])

		from, err := findEntry(sh, args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "move:", err)
			os.Exit(exitUserError)
		}
		to, err := findEntry(sh, args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, "move:", err)
			os.Exit(exitUserError)
		}

		st.MoveEntry(sh.ID, from.ID, to.ID)
		fmt.Printf("moved %q in %q\n", from.Name, sh.Name)
		return nil
	},
}
