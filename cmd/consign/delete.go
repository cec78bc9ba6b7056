// Delete command: remove a consignment and all its measurements.
package main

import (
	"github.com/spf13/cobra"

	"github.com/fabline/consign/internal/logger"
)

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a consignment and all its measurements",
	Args:  cobra.ExactArgs(1),
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

		if err := store.DeleteConsignment(claim, args[0]); err != nil {
			return err
		}
		logger.Info("deleted consignment", args[0])
		return nil
	},
}
