package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/patrol/internal/ports/primary"
	"github.com/example/patrol/internal/wire"
)

// LogCmd returns the start/end toggle command.
func LogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log [location]",
		Short: "Start or end the patrol at a location",
		Long: `Toggle the patrol at the given location, or at the active selection
when no location is given.

The first call records the start time. The next call records the end
time, appends the completed round to the history ledger under the
active shift, and advances the active location to the next catalog
entry (wrapping after the last).

Locations can be given by name or by the index shown by 'patrol locations'.

Examples:
  patrol log
  patrol log "50 Rue Victoria"
  patrol log 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := wire.PatrolService()

			var location string
			if len(args) == 1 {
				loc, err := resolveLocation(args[0])
				if err != nil {
					return err
				}
				location = loc
			} else {
				sel, err := svc.ActiveSelection()
				if err != nil {
					return fmt.Errorf("failed to load active selection: %w", err)
				}
				location = sel.Location
			}

			tr, err := svc.StartOrEnd(ctx, location, time.Now())
			if err != nil {
				return fmt.Errorf("failed to log patrol: %w", err)
			}

			if tr.Action == primary.TransitionStarted {
				fmt.Printf("✓ Started patrol at %s (%s hrs)\n", tr.Location, tr.Start)
				return nil
			}

			fmt.Printf("✓ Ended patrol at %s (%s hrs to %s hrs)\n", tr.Location, tr.Start, tr.End)
			fmt.Printf("  Next location: %s\n", tr.Next)
			return nil
		},
	}
}
