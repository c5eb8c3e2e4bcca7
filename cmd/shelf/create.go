// Create command for the shelf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelfhq/shelf/pkg/types"
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new shelf",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "" {
			fmt.Fprintln(os.Stderr, "create:", types.ErrEmptyName)
			os.Exit(exitUserError)
		}

		st, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitSysError)
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		if name == "" {
			name = fmt.Sprintf("Shelf %d", len(st.Shelves())+1)
		}

		sh := st.CreateShelf(name)
		if flagJSON {
			return printJSON(sh)
		}
		fmt.Printf("created shelf %q (%s)\n", sh.Name, sh.ID)
		return nil
	},
}
