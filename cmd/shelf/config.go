// Config loading for the shelf CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir         = "data_dir"
	cfgKeyLogLevel        = "log_level"
	cfgKeyLogFormat       = "log_format"
	cfgKeyNoteCharLimit   = "note_char_limit"
	cfgKeyNoteSaveDelayMS = "note_save_delay_ms"
	cfgKeyRetryHours      = "favicon_retry_hours"
	cfgKeyWatch           = "watch"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Shelf configuration

# Data directory holding shelves.json and the favicon cache
# (optional; overridable by --data-dir flag)
# data_dir:

# Logging: debug, info, warn, error; text or json
log_level: warn
log_format: text

# Sticky notes
note_char_limit: 500
note_save_delay_ms: 500

# Favicon misses are not retried within this window
favicon_retry_hours: 24

# Reload the document when another process rewrites it (run command only)
watch: true
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyLogFormat, "text")
	v.SetDefault(cfgKeyNoteCharLimit, 500)
	v.SetDefault(cfgKeyNoteSaveDelayMS, 500)
	v.SetDefault(cfgKeyRetryHours, 24)
	v.SetDefault(cfgKeyWatch, true)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// newLogger builds the process logger from config. Logs go to stderr so
// they never mix with command output.
func newLogger(cfg *viper.Viper) *slog.Logger {
	var level slog.Level
	switch cfg.GetString(cfgKeyLogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.GetString(cfgKeyLogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
