package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/patrol/internal/core/patrol"
	"github.com/example/patrol/internal/wire"
)

// StatusCmd returns the per-location status summary command.
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the status of every catalog location",
		Long: `Show one line per catalog location, in catalog order:
completed when both timestamps are set, in progress when only the
start is set, not started otherwise.

Examples:
  patrol status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := wire.PatrolService()

			sel, err := svc.ActiveSelection()
			if err != nil {
				return fmt.Errorf("failed to load active selection: %w", err)
			}
			fmt.Printf("Shift: %s\n", sel.Shift)
			fmt.Printf("Active location: %s\n\n", sel.Location)

			for _, line := range svc.StatusSummary() {
				switch patrol.Status(line.Status) {
				case patrol.StatusCompleted:
					fmt.Printf("%s Completed – %s (%s hrs to %s hrs)\n",
						color.New(color.FgHiGreen).Sprint("✔"), line.Location, line.Start, line.End)
				case patrol.StatusInProgress:
					fmt.Printf("%s In progress – %s (%s hrs)\n",
						color.New(color.FgYellow).Sprint("●"), line.Location, line.Start)
				default:
					fmt.Printf("%s Not started – %s\n",
						color.New(color.FgHiBlack).Sprint("○"), line.Location)
				}
			}

			return nil
		},
	}
}
