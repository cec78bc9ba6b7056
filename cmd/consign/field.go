// Field template commands: manage the reusable field library.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabline/consign/internal/logger"
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Manage the reusable field template library",
}

var fieldListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all field templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		templates, err := store.ListTemplates()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(templates)
		}
		if len(templates) == 0 {
			fmt.Println("No field templates.")
			return nil
		}
		for _, tpl := range templates {
			fmt.Printf("%s  %s\n", tpl.TemplateID, tpl.Name)
		}
		return nil
	},
}

var fieldAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a field template to the library",
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

		tpl, err := store.CreateTemplate(claim, args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(tpl)
		}
		logger.Info("created field template", tpl.Name)
		fmt.Println(tpl.TemplateID)
		return nil
	},
}

var fieldRenameCmd = &cobra.Command{
	Use:   "rename ID NEW_NAME",
	Short: "Rename a field template",
	Long: `Rename a field template in the library. Measurements that captured
the old name keep it; only future selections see the new name.`,
	Args: cobra.ExactArgs(2),
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

		if err := store.RenameTemplate(claim, args[0], args[1]); err != nil {
			return err
		}
		logger.Info("renamed field template to", args[1])
		return nil
	},
}

var fieldDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a field template",
	Long: `Delete a field template from the library. Existing measurements that
reference it are detached but keep their captured field name and value.`,
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

		if err := store.DeleteTemplate(claim, args[0]); err != nil {
			return err
		}
		logger.Info("deleted field template", args[0])
		return nil
	},
}

func init() {
	fieldCmd.AddCommand(fieldListCmd)
	fieldCmd.AddCommand(fieldAddCmd)
	fieldCmd.AddCommand(fieldRenameCmd)
	fieldCmd.AddCommand(fieldDeleteCmd)
}
