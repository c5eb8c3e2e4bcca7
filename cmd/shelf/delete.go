// Delete command for the shelf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <shelf>",
	Short: "Delete a shelf and everything on it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}

		sh, err := findShelf(st, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitUserError)
		}

		st.DeleteShelf(sh.ID)
		fmt.Printf("deleted shelf %q\n", sh.Name)
		return nil
	},
}
