// Orient command for the shelf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelfhq/shelf/pkg/types"
)

var orientCmd = &cobra.Command{
	Use:   "orient <shelf> <horizontal|vertical>",
	Short: "Set a shelf's orientation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orientation := args[1]
		if orientation != types.OrientationHorizontal && orientation != types.OrientationVertical {
			fmt.Fprintf(os.Stderr, "orient: invalid orientation %q (valid: %s, %s)\n",
				orientation, types.OrientationHorizontal, types.OrientationVertical)
			os.Exit(exitUserError)
		}

		st, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "orient:", err)
			os.Exit(exitSysError)
		}

		sh, err := findShelf(st, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "orient:", err)
			os.Exit(exitUserError)
		}

		sh.Orientation = orientation
		st.UpdateShelf(sh.ID, sh)
		fmt.Printf("shelf %q is now %s\n", sh.Name, orientation)
		return nil
	},
}
