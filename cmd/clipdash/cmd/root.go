package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/clipdash/pkg/core/config"
	"github.com/msto63/clipdash/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "clipdash",
	Short: "clipdash - Clipboard Dashboard",
	Long: `clipdash keeps a list of clipboard buffers and runs string and list
transforms on the system clipboard.

Without a subcommand the interactive dashboard starts.

Commands:
  tui      - Interactive dashboard
  str      - String transforms on the whole clipboard
  list     - Line transforms on the clipboard
  action   - Open the clipboard in external programs
  actions  - List every action`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $CLIPDASH_CONFIG, ./clipdash.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file, - for stderr (default: from config)")
}

// loadConfig loads --config, or searches the default locations
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// newLogger builds the file logger from the config and the flags
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	lc := logging.DefaultLoggerConfig("clipdash")
	lc.Level = cfg.Logging.Level
	lc.Format = cfg.Logging.Format
	lc.File = cfg.Logging.File
	if verbose {
		lc.Level = "debug"
	}
	if logFile != "" {
		lc.File = logFile
	}
	return logging.NewLogger(lc)
}

// setup loads the config and opens the logger. The caller closes the
// logger.
func setup() (*config.Config, *logging.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Configuration loaded", "path", cfg.Path)
	return cfg, logger, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
