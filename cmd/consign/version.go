package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the consign CLI version.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the consign version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("consign v%s\n", version)
	},
}
