// Add commands for the shelf CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelfhq/shelf/internal/classify"
	"github.com/shelfhq/shelf/internal/store"
	"github.com/shelfhq/shelf/pkg/types"
)

var addName string

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an entry to a shelf",
}

var addLinkCmd = &cobra.Command{
	Use:   "link <shelf> <url>",
	Short: "Add a web link, fetching its favicon",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Route through the classifier so scheme-less input gets the
		// same normalization as a paste.
		res := classify.ClassifyClipboard(classify.Payload{Text: args[1]})
		if !res.Handled || res.Entries[0].Kind != types.KindLink {
			fmt.Fprintf(os.Stderr, "add link: %q does not look like a URL\n", args[1])
			os.Exit(exitUserError)
		}
		entry := res.Entries[0]
		if addName != "" {
			entry.Name = addName
		}

		st, sh := storeAndShelf("add link", args[0])
		fetchIcon(cmd.Context(), &entry)
		st.AddEntry(sh.ID, entry)
		fmt.Printf("added link %q to %q\n", entry.Name, sh.Name)
		return nil
	},
}

var addAppCmd = &cobra.Command{
	Use:   "app <shelf> <path>",
	Short: "Add an application shortcut",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, sh := storeAndShelf("add app", args[0])
		entry := types.NewApplication(args[1])
		if addName != "" {
			entry.Name = addName
		}
		st.AddEntry(sh.ID, entry)
		fmt.Printf("added app %q to %q\n", entry.Name, sh.Name)
		return nil
	},
}

var addFolderCmd = &cobra.Command{
	Use:   "folder <shelf> <path>",
	Short: "Add a folder shortcut",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, sh := storeAndShelf("add folder", args[0])
		entry := types.NewFolder(args[1])
		if addName != "" {
			entry.Name = addName
		}
		st.AddEntry(sh.ID, entry)
		fmt.Printf("added folder %q to %q\n", entry.Name, sh.Name)
		return nil
	},
}

var addSnippetCmd = &cobra.Command{
	Use:   "snippet <shelf> <text>...",
	Short: "Add a text snippet",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args[1:], " ")
		name := addName
		if name == "" {
			name = snippetName(text)
		}

		st, sh := storeAndShelf("add snippet", args[0])
		st.AddSnippet(sh.ID, name, text)
		fmt.Printf("added snippet %q to %q\n", name, sh.Name)
		return nil
	},
}

var addNoteCmd = &cobra.Command{
	Use:   "note <shelf> [name]",
	Short: "Add an empty sticky note",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 1 {
			name = args[1]
		}

		st, sh := storeAndShelf("add note", args[0])
		st.AddStickyNote(sh.ID, name)
		fmt.Printf("added sticky note to %q\n", sh.Name)
		return nil
	},
}

var addSpacerCmd = &cobra.Command{
	Use:   "spacer <shelf>",
	Short: "Add a layout spacer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, sh := storeAndShelf("add spacer", args[0])
		st.AddSpacer(sh.ID)
		fmt.Printf("added spacer to %q\n", sh.Name)
		return nil
	},
}

var addSeparatorCmd = &cobra.Command{
	Use:   "separator <shelf>",
	Short: "Add a layout separator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, sh := storeAndShelf("add separator", args[0])
		st.AddSeparator(sh.ID)
		fmt.Printf("added separator to %q\n", sh.Name)
		return nil
	},
}

func init() {
	addCmd.PersistentFlags().StringVar(&addName, "name", "", "display name override")

	addCmd.AddCommand(addLinkCmd)
	addCmd.AddCommand(addAppCmd)
	addCmd.AddCommand(addFolderCmd)
	addCmd.AddCommand(addSnippetCmd)
	addCmd.AddCommand(addNoteCmd)
	addCmd.AddCommand(addSpacerCmd)
	addCmd.AddCommand(addSeparatorCmd)
}

// storeAndShelf opens the store and resolves the shelf reference, exiting
// with the appropriate code on failure.
func storeAndShelf(op, ref string) (*store.Store, types.Shelf) {
	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", op, err)
		os.Exit(exitSysError)
	}
	sh, err := findShelf(st, ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", op, err)
		os.Exit(exitUserError)
	}
	return st, sh
}

// fetchIcon resolves a favicon for a link entry before it is stored.
// One-shot commands fetch inline instead of using the store's async
// backfill, so the process never exits with a fetch in flight. A miss just
// leaves the entry without an icon.
func fetchIcon(ctx context.Context, entry *types.Entry) {
	fetcher, err := openFavicons()
	if err != nil {
		logger.Warn("favicon cache unavailable", "error", err)
		return
	}
	defer fetcher.Close()

	if path, ok := fetcher.Fetch(ctx, entry.URL); ok {
		entry.IconPath = path
	}
}

// snippetName derives a display name from the snippet's first 30 trimmed
// characters.
func snippetName(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) > 30 {
		runes = runes[:30]
	}
	if len(runes) == 0 {
		return "Snippet"
	}
	return string(runes)
}
