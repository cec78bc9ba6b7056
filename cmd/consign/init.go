// Init command: creates the config directory, admin credentials, and
// an empty database.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fabline/consign/internal/auth"
	"github.com/fabline/consign/internal/logger"
)

var (
	initAdminUser     string
	initAdminPassword string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize consign configuration and storage",
	Long: `Initialize the consign config directory with admin credentials and
create the database. The admin password comes from --admin-password or
the CONSIGN_ADMIN_PASSWORD environment variable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password := initAdminPassword
		if password == "" {
			password = os.Getenv("CONSIGN_ADMIN_PASSWORD")
		}
		if password == "" {
			return fmt.Errorf("init: --admin-password or CONSIGN_ADMIN_PASSWORD is required")
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		// Fresh random signing secret per installation.
		if err := writeConfigFile(configDir, initAdminUser, hash, uuid.NewString()); err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			logger.Error("init:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		logger.Info("consign initialized, config at", configDir)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initAdminUser, "admin-user", defaultAdminUser, "admin username")
	initCmd.Flags().StringVar(&initAdminPassword, "admin-password", "", "admin password (or CONSIGN_ADMIN_PASSWORD)")
}
