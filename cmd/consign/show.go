// Show command: the public detail view with measurements in insertion
// order.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabline/consign/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a consignment and its measurements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		con, err := store.GetConsignmentDetail(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(con)
		}
		printConsignmentDetail(con)
		return nil
	},
}

// printConsignmentDetail renders a consignment and its measurements for
// human output.
func printConsignmentDetail(con *types.Consignment) {
	fmt.Printf("%s  %s  (created %s)\n",
		con.ConsignmentID, con.Name, con.CreatedAt.Format("2006-01-02 15:04"))
	if len(con.Measurements) == 0 {
		fmt.Println("  no measurements")
		return
	}
	for _, m := range con.Measurements {
		source := "library"
		if m.Custom() {
			source = "custom"
		}
		fmt.Printf("  %s  %s = %q  [%s]\n", m.MeasurementID, m.FieldName, m.Value, source)
	}
}
