// Root command for the shelf CLI.
package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shelfhq/shelf/internal/paths"
)

// Exit codes: user errors (bad reference, bad argument) versus system
// errors (I/O, config).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Set by PersistentPreRunE so all subcommands can use them.
var (
	cfg           *viper.Viper
	logger        *slog.Logger
	configDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Shelf pins apps, links, snippets and notes to floating panels",
	Long: `Shelf manages named collections of shortcuts (applications, folders,
links, text snippets, sticky notes) rendered as floating panels. All state
lives in one JSON document, so shelves can be edited from the command line,
from the interactive session, or by hand.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err = loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		logger = newLogger(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(hideCmd)
	rootCmd.AddCommand(orientCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(pasteCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(runCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > SHELF_DATA_DIR env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
