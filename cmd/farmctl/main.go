// Command farmctl inspects, repairs and simulates PixelFarm saves offline.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/osse101/PixelFarm_Go/internal/logger"
)

func main() {
	_ = godotenv.Load()

	var verbose bool
	rootCmd := &cobra.Command{
		Use:           "farmctl",
		Short:         "PixelFarm save and catalog tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLoggerWithWriter(logger.CLIConfig(verbose), cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log engine activity to stderr")

	rootCmd.AddCommand(
		newCatalogCmd(),
		newInspectCmd(),
		newReconcileCmd(),
		newMigrateCmd(),
		newValidateCmd(),
		newSimulateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, "✗", err)
		os.Exit(1)
	}
}
