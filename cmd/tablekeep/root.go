// Root command for the tablekeep CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
	flagVerbose   bool
)

// cfg holds the loaded configuration. Set by PersistentPreRunE so all
// subcommands can use it.
var cfg *viper.Viper

// logger writes anomaly warnings to stderr. Level depends on --verbose.
var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "tablekeep",
	Short: "Tablekeep inspects and edits table view-state tokens in URL fragments",
	Long: `Tablekeep works with the compact tokens that persist a table's view state
(search, sort, page, column layout, selection) in a URL fragment, so the
exact look of one or more tables can be shared as a link.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.WarnLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		var err error
		cfg, err = loadConfig(resolveConfigDir())
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: .tablekeep)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(conditionsCmd)
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if v := os.Getenv("TABLEKEEP_CONFIG_DIR"); v != "" {
		return v
	}
	return ".tablekeep"
}
