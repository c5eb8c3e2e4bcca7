// Sticky-note commands for the shelf CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelfhq/shelf/pkg/types"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Read or write sticky-note content",
}

var noteGetCmd = &cobra.Command{
	Use:   "get <shelf> <entry>",
	Short: "Print a sticky note's content",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sh := storeAndShelf("note get", args[0])

		entry := stickyNote(sh, args[1])
		fmt.Println(entry.Content)
		return nil
	},
}

var noteSetCmd = &cobra.Command{
	Use:   "set <shelf> <entry> <text>...",
	Short: "Replace a sticky note's content",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, sh := storeAndShelf("note set", args[0])

		entry := stickyNote(sh, args[1])
		text := capRunes(strings.Join(args[2:], " "), cfg.GetInt(cfgKeyNoteCharLimit))
		st.UpdateStickyNoteContent(sh.ID, entry.ID, text)
		fmt.Printf("updated note %q\n", entry.Name)
		return nil
	},
}

func init() {
	noteCmd.AddCommand(noteGetCmd)
	noteCmd.AddCommand(noteSetCmd)
}

// stickyNote resolves an entry reference and requires it to be a sticky
// note, exiting with a user error otherwise.
func stickyNote(sh types.Shelf, ref string) types.Entry {
	entry, err := findEntry(sh, ref)
	if err != nil {
		fmt.Fprintln(os.Stderr, "note:", err)
		os.Exit(exitUserError)
	}
	if entry.Kind != types.KindStickyNote {
		fmt.Fprintf(os.Stderr, "note: entry %q is a %s, not a sticky note\n", entry.Name, entry.Kind)
		os.Exit(exitUserError)
	}
	return entry
}

// capRunes truncates text at the note character limit without splitting a
// multi-byte character.
func capRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
