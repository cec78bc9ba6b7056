// Root command for the consign CLI.
package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fabline/consign/internal/logger"
	"github.com/fabline/consign/internal/paths"
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
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir     string
	configAdminUser   string
	configAdminHash   string
	configTokenSecret string
)

var rootCmd = &cobra.Command{
	Use:   "consign",
	Short: "Consign tracks factory consignments and their measurements",
	Long: `Consign is a tracker for factory consignments. Each consignment
carries a set of named measurements with free-text values; field names
come from a reusable admin-managed library or are typed ad hoc.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(flagVerbose)

		// A missing .env is not an error.
		_ = godotenv.Load()

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configAdminUser = cfg.GetString(cfgKeyAdminUser)
		configAdminHash = cfg.GetString(cfgKeyAdminHash)
		configTokenSecret = cfg.GetString(cfgKeyTokenSecret)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.consign)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.consign-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(fieldCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(measureCmd)
	rootCmd.AddCommand(dashboardCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > CONSIGN_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > CONSIGN_DATA_DIR env >
// default $(CWD)/.consign-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
