// List command: the public alphabetical listing.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listSearch string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List consignments alphabetically",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		consignments, err := store.ListConsignments(listSearch)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(consignments)
		}
		if len(consignments) == 0 {
			fmt.Println("No consignments.")
			return nil
		}
		for _, con := range consignments {
			fmt.Printf("%s  %s  (created %s)\n",
				con.ConsignmentID, con.Name, con.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter by name substring (case-insensitive)")
}
