package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lakecatsrv",
	Short: "Multi-tenant table catalog server",
	Long: `lakecatsrv serves the table catalog: warehouse-scoped table metadata
reads and atomic table reference (branch/tag) updates.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
