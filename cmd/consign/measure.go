// Measurement commands: add, edit, and delete individual measurements
// on an existing consignment.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabline/consign/internal/logger"
	"github.com/fabline/consign/pkg/types"
)

var (
	measureAddField  string
	measureAddCustom string
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Manage measurements on a consignment",
}

var measureAddCmd = &cobra.Command{
	Use:   "add CONSIGNMENT_ID",
	Short: "Add a measurement to an existing consignment",
	Long: `Add one measurement. Use exactly one of --field NAME=VALUE (template
from the field library, by name) or --custom NAME=VALUE (one-off field).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if (measureAddField == "") == (measureAddCustom == "") {
			return fmt.Errorf("exactly one of --field or --custom is required")
		}

		claim, err := requireSession()
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var sel types.Selection
		if measureAddField != "" {
			name, value, err := parseAssignment(measureAddField)
			if err != nil {
				return err
			}
			tpl, err := resolveTemplateByName(store, name)
			if err != nil {
				return err
			}
			sel = types.TemplateSelection(tpl.TemplateID, value)
		} else {
			name, value, err := parseAssignment(measureAddCustom)
			if err != nil {
				return err
			}
			sel = types.CustomSelection(name, value)
		}

		m, err := store.AddMeasurement(claim, args[0], sel)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(m)
		}
		logger.Info("added measurement", m.FieldName)
		fmt.Println(m.MeasurementID)
		return nil
	},
}

var measureSetCmd = &cobra.Command{
	Use:   "set MEASUREMENT_ID VALUE",
	Short: "Replace a measurement's value",
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

		if err := store.EditMeasurement(claim, args[0], args[1]); err != nil {
			return err
		}
		logger.Info("updated measurement", args[0])
		return nil
	},
}

var measureDeleteCmd = &cobra.Command{
	Use:   "delete MEASUREMENT_ID",
	Short: "Delete a single measurement",
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

		if err := store.DeleteMeasurement(claim, args[0]); err != nil {
			return err
		}
		logger.Info("deleted measurement", args[0])
		return nil
	},
}

func init() {
	measureAddCmd.Flags().StringVar(&measureAddField, "field", "", "template selection as NAME=VALUE")
	measureAddCmd.Flags().StringVar(&measureAddCustom, "custom", "", "custom field as NAME=VALUE")

	measureCmd.AddCommand(measureAddCmd)
	measureCmd.AddCommand(measureSetCmd)
	measureCmd.AddCommand(measureDeleteCmd)
}
