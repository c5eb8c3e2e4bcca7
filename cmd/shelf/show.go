// Show and hide commands for the shelf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <shelf>",
	Short: "Mark a shelf visible",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setVisible(args[0], true)
	},
}

var hideCmd = &cobra.Command{
	Use:   "hide <shelf>",
	Short: "Mark a shelf hidden",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setVisible(args[0], false)
	},
}

func setVisible(ref string, visible bool) error {
	st, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "visibility:", err)
		os.Exit(exitSysError)
	}

	sh, err := findShelf(st, ref)
	if err != nil {
		fmt.Fprintln(os.Stderr, "visibility:", err)
		os.Exit(exitUserError)
	}

	sh.Visible = visible
	st.UpdateShelf(sh.ID, sh)

	state := "hidden"
	if visible {
		state = "visible"
	}
	fmt.Printf("shelf %q is now %s\n", sh.Name, state)
	return nil
}
