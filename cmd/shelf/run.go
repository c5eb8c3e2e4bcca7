// Run command for the shelf CLI: the interactive panel session.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shelfhq/shelf/internal/panel"
	"github.com/shelfhq/shelf/internal/paths"
	"github.com/shelfhq/shelf/internal/store"
	"github.com/shelfhq/shelf/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive panel session",
	Long: `Run renders every visible shelf as a floating panel in the terminal.
All mutations (keys, icon fetches, note autosaves, external document edits)
are serialized onto the session's update loop.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "run:", err)
			os.Exit(exitSysError)
		}

		fetcher, err := openFavicons()
		if err != nil {
			fmt.Fprintln(os.Stderr, "run:", err)
			os.Exit(exitSysError)
		}
		defer fetcher.Close()

		exec := tui.NewExecutor()
		st := store.New(paths.DocumentPath(dataDir),
			store.WithLogger(logger),
			store.WithExecutor(exec),
			store.WithIconFetcher(fetcher))
		st.Load()

		sys := tui.NewSystem()
		orch := panel.NewOrchestrator(st, sys, logger)
		notes := panel.NewNotes(st, sys, exec,
			panel.WithNotesLogger(logger),
			panel.WithNoteCharLimit(cfg.GetInt(cfgKeyNoteCharLimit)),
			panel.WithNoteSaveDelay(time.Duration(cfg.GetInt(cfgKeyNoteSaveDelayMS))*time.Millisecond))

		session := &tui.Session{
			Store:        st,
			Orchestrator: orch,
			Notes:        notes,
			System:       sys,
			Executor:     exec,
			Log:          logger,
			NoteLimit:    cfg.GetInt(cfgKeyNoteCharLimit),
			Watch:        cfg.GetBool(cfgKeyWatch),
		}
		return session.Run(cmd.Context())
	},
}
