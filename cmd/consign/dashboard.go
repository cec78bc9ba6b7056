// Dashboard command: entity counts and the most recent consignments.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show system counts and recent consignments",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(stats)
		}
		fmt.Printf("Consignments:    %d\n", stats.Consignments)
		fmt.Printf("Field templates: %d\n", stats.FieldTemplates)
		fmt.Printf("Measurements:    %d\n", stats.Measurements)
		if len(stats.RecentConsignments) > 0 {
			fmt.Println("\nRecent consignments:")
			for _, con := range stats.RecentConsignments {
				fmt.Printf("  %s  %s  (created %s)\n",
					con.ConsignmentID, con.Name, con.CreatedAt.Format("2006-01-02 15:04"))
			}
		}
		return nil
	},
}
