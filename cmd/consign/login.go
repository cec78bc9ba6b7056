// Login command: verifies the admin password and saves a session token.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fabline/consign/internal/auth"
	"github.com/fabline/consign/internal/logger"
)

// sessionTTL is how long a session token stays valid.
const sessionTTL = 24 * time.Hour

var (
	loginUser     string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate as admin and save a session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configAdminHash == "" {
			return fmt.Errorf("login: no admin configured, run \"consign init\" first")
		}

		user := loginUser
		if user == "" {
			user = configAdminUser
		}
		password := loginPassword
		if password == "" {
			password = os.Getenv("CONSIGN_ADMIN_PASSWORD")
		}
		if password == "" {
			return fmt.Errorf("login: --password or CONSIGN_ADMIN_PASSWORD is required")
		}

		if user != configAdminUser || auth.CheckPassword(password, configAdminHash) != nil {
			logger.Error("login: invalid username or password")
			os.Exit(exitUserError)
		}

		token, err := auth.MakeSessionToken(user, configTokenSecret, sessionTTL)
		if err != nil {
			return err
		}
		if err := saveSession(token); err != nil {
			return err
		}

		logger.Info("logged in as", user)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginUser, "user", "", "admin username (default: configured admin_user)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "admin password (or CONSIGN_ADMIN_PASSWORD)")
}
