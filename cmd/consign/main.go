// Package main provides the consign CLI: a factory consignment tracker
// with an admin-extensible field library and opaque text measurements.
package main

import (
	"os"

	"github.com/fabline/consign/internal/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(exitUserError)
	}
}
