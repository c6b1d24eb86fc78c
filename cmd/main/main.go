package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "station-report",
		Short: "Fuel station report importer",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newServeCommand(), newExtractCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
