package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title Answer Sheet Scoring API
// @version 1.0
// @description Uploads scanned answer sheets, checks they are readable PDFs and returns a simulated score.
// @BasePath /
func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gradescan",
		Short:        "Answer sheet upload and simulated scoring API",
		SilenceUsage: true,
	}

	serve := serveCmd()
	root.AddCommand(serve, scoreCmd())

	// Make "serve" the default when no subcommand is given.
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	return root
}
