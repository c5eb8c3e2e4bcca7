// Paste command for the shelf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/shelfhq/shelf/internal/classify"
	"github.com/shelfhq/shelf/pkg/types"
)

var pasteCmd = &cobra.Command{
	Use:   "paste <shelf>",
	Short: "Classify the clipboard and add the result to a shelf",
	Long: `Paste reads the system clipboard and adds what it finds: URLs become
link entries with a cached favicon, anything else becomes a text snippet.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := clipboard.ReadAll()
		if err != nil {
			fmt.Fprintln(os.Stderr, "paste: reading clipboard:", err)
			os.Exit(exitSysError)
		}

		res := classify.ClassifyClipboard(classify.Payload{Text: text})
		if !res.Handled {
			fmt.Fprintln(os.Stderr, "paste: clipboard is empty")
			os.Exit(exitUserError)
		}

		st, sh := storeAndShelf("paste", args[0])
		for _, entry := range res.Entries {
			if entry.Kind == types.KindLink {
				fetchIcon(cmd.Context(), &entry)
			}
			st.AddEntry(sh.ID, entry)
			fmt.Printf("added %s %q to %q\n", entry.Kind, entry.Name, sh.Name)
		}
		return nil
	},
}
