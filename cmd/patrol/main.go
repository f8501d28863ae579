package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/patrol/internal/cli"
	"github.com/example/patrol/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "patrol",
		Short:   "Patrol - shift patrol logger",
		Version: version.String(),
		Long: `Patrol is a CLI tool for logging patrol rounds across a fixed list
of locations, grouped by shift, with local persistence and email-based
report submission.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.LogCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ResetCmd())
	rootCmd.AddCommand(cli.SubmitCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.LocationsCmd())
	rootCmd.AddCommand(cli.SelectCmd())
	rootCmd.AddCommand(cli.ShiftCmd())
	rootCmd.AddCommand(cli.SettingsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
