// Create command: create a consignment with an initial set of
// measurements in one transaction.
package main

import (
	"github.com/spf13/cobra"

	"github.com/fabline/consign/internal/logger"
	"github.com/fabline/consign/pkg/types"
)

var (
	createFields  []string
	createCustoms []string
)

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a consignment with initial measurements",
	Long: `Create a consignment. Each --field NAME=VALUE selects a template from
the field library by name; each --custom NAME=VALUE attaches a one-off
field. Template selections keep their flag order, followed by custom
selections in theirs. The whole create is one transaction: if any
selection fails to resolve, nothing is stored.`,
	Args: cobra.ExactArgs(1),
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

		var selections []types.Selection
		for _, arg := range createFields {
			name, value, err := parseAssignment(arg)
			if err != nil {
				return err
			}
			tpl, err := resolveTemplateByName(store, name)
			if err != nil {
				return err
			}
			selections = append(selections, types.TemplateSelection(tpl.TemplateID, value))
		}
		for _, arg := range createCustoms {
			name, value, err := parseAssignment(arg)
			if err != nil {
				return err
			}
			selections = append(selections, types.CustomSelection(name, value))
		}

		con, err := store.CreateConsignment(claim, args[0], selections)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(con)
		}
		logger.Info("created consignment", con.Name)
		printConsignmentDetail(con)
		return nil
	},
}

func init() {
	createCmd.Flags().StringArrayVar(&createFields, "field", nil, "template selection as NAME=VALUE (repeatable)")
	createCmd.Flags().StringArrayVar(&createCustoms, "custom", nil, "custom field as NAME=VALUE (repeatable)")
}
