// Rename command: change a consignment's name.
package main

import (
	"github.com/spf13/cobra"

	"github.com/fabline/consign/internal/logger"
)

var renameCmd = &cobra.Command{
	Use:   "rename ID NEW_NAME",
	Short: "Rename a consignment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		claim, err := requireSession()
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.RenameConsignment(claim, args[0], args[1]); err != nil {
			return err
		}
		logger.Info("renamed consignment to", args[1])
		return nil
	},
}
