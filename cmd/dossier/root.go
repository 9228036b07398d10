// Root command for the dossier CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dossier/internal/paths"
	"github.com/mesh-intelligence/dossier/pkg/dossier"
)

// Exit codes: user errors (bad input, missing case) exit 1, system errors
// (disk, config) exit 2.
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

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "dossier",
	Short:   "Dossier is a local-first skip-tracing case tool",
	Version: dossier.Version,
	Long: `Dossier accepts an email address, phone number, or full name,
normalizes it, and generates search-engine and social-platform URLs for a
human to open in a browser. Every run is recorded in a JSON case file
under the results directory. No network requests are made.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "results directory (default: $(CWD)/results)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(investigateCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
}

// resolveDataDir returns the results directory path following the
// precedence: --data-dir flag > config.yaml data_dir > DOSSIER_DATA_DIR
// env > default $(CWD)/results.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > DOSSIER_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
